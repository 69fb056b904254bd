// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AgentRecordsColumns holds the columns for the "agent_records" table.
	AgentRecordsColumns = []*schema.Column{
		{Name: "record_id", Type: field.TypeString, Unique: true},
		{Name: "agent_name", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"ok", "warning", "error"}},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "completed_at", Type: field.TypeTime},
		{Name: "duration_ms", Type: field.TypeInt, Nullable: true},
		{Name: "payload", Type: field.TypeJSON, Nullable: true},
		{Name: "warnings", Type: field.TypeJSON, Nullable: true},
		{Name: "errors", Type: field.TypeJSON, Nullable: true},
		{Name: "recommendations", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "job_id", Type: field.TypeString},
	}
	// AgentRecordsTable holds the schema information for the "agent_records" table.
	AgentRecordsTable = &schema.Table{
		Name:       "agent_records",
		Columns:    AgentRecordsColumns,
		PrimaryKey: []*schema.Column{AgentRecordsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "agent_records_analysis_jobs_agent_records",
				Columns:    []*schema.Column{AgentRecordsColumns[11]},
				RefColumns: []*schema.Column{AnalysisJobsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "agentrecord_job_id_agent_name",
				Unique:  true,
				Columns: []*schema.Column{AgentRecordsColumns[11], AgentRecordsColumns[1]},
			},
			{
				Name:    "agentrecord_job_id",
				Unique:  false,
				Columns: []*schema.Column{AgentRecordsColumns[11]},
			},
		},
	}
	// AnalysisJobsColumns holds the columns for the "analysis_jobs" table.
	AnalysisJobsColumns = []*schema.Column{
		{Name: "job_id", Type: field.TypeString, Unique: true},
		{Name: "target", Type: field.TypeString},
		{Name: "acquirer", Type: field.TypeString, Nullable: true},
		{Name: "deal_value", Type: field.TypeFloat64, Nullable: true},
		{Name: "thesis", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"queued", "running", "synthesizing", "validating", "completed", "failed", "cancelled"}, Default: "queued"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "failed_agent", Type: field.TypeString, Nullable: true},
		{Name: "progress_percent", Type: field.TypeInt, Default: 0},
		{Name: "current_agent", Type: field.TypeString, Nullable: true},
		{Name: "synthesized_data", Type: field.TypeJSON, Nullable: true},
		{Name: "validation_issues", Type: field.TypeJSON, Nullable: true},
		{Name: "artifact_paths", Type: field.TypeJSON, Nullable: true},
		{Name: "pod_id", Type: field.TypeString, Nullable: true},
		{Name: "last_heartbeat_at", Type: field.TypeTime, Nullable: true},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
	}
	// AnalysisJobsTable holds the schema information for the "analysis_jobs" table.
	AnalysisJobsTable = &schema.Table{
		Name:       "analysis_jobs",
		Columns:    AnalysisJobsColumns,
		PrimaryKey: []*schema.Column{AnalysisJobsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "analysisjob_status",
				Unique:  false,
				Columns: []*schema.Column{AnalysisJobsColumns[5]},
			},
			{
				Name:    "analysisjob_target",
				Unique:  false,
				Columns: []*schema.Column{AnalysisJobsColumns[1]},
			},
			{
				Name:    "analysisjob_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{AnalysisJobsColumns[5], AnalysisJobsColumns[6]},
			},
			{
				Name:    "analysisjob_status_last_heartbeat_at",
				Unique:  false,
				Columns: []*schema.Column{AnalysisJobsColumns[5], AnalysisJobsColumns[17]},
			},
			{
				Name:    "analysisjob_deleted_at",
				Unique:  false,
				Columns: []*schema.Column{AnalysisJobsColumns[18]},
				Annotation: &entsql.IndexAnnotation{
					Where: "deleted_at IS NOT NULL",
				},
			},
		},
	}
	// EventsColumns holds the columns for the "events" table.
	EventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "channel", Type: field.TypeString},
		{Name: "payload", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "job_id", Type: field.TypeString},
	}
	// EventsTable holds the schema information for the "events" table.
	EventsTable = &schema.Table{
		Name:       "events",
		Columns:    EventsColumns,
		PrimaryKey: []*schema.Column{EventsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "events_analysis_jobs_events",
				Columns:    []*schema.Column{EventsColumns[4]},
				RefColumns: []*schema.Column{AnalysisJobsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "event_channel",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[1]},
			},
			{
				Name:    "event_job_id",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[4]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AgentRecordsTable,
		AnalysisJobsTable,
		EventsTable,
	}
)

func init() {
	AgentRecordsTable.ForeignKeys[0].RefTable = AnalysisJobsTable
	EventsTable.ForeignKeys[0].RefTable = AnalysisJobsTable
}
