package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnalysisJob holds the schema definition for the AnalysisJob entity.
// One row per submitted due-diligence analysis.
type AnalysisJob struct {
	ent.Schema
}

// Fields of the AnalysisJob.
func (AnalysisJob) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("job_id").
			Unique().
			Immutable(),
		field.String("target").
			Comment("Target company ticker or identifier"),
		field.String("acquirer").
			Optional().
			Nillable(),
		field.Float("deal_value").
			Optional().
			Nillable().
			Comment("User-supplied deal value in USD; absent means auto-calculated"),
		field.Text("thesis").
			Optional().
			Nillable().
			Comment("Free-text investment thesis from the submitter"),
		field.Enum("status").
			Values("queued", "running", "synthesizing", "validating", "completed", "failed", "cancelled").
			Default("queued"),
		field.Time("created_at").
			Default(time.Now).
			Comment("When the job was submitted"),
		field.Time("started_at").
			Optional().
			Nillable().
			Comment("When a worker claimed the job"),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.String("error_message").
			Optional().
			Nillable(),
		field.String("failed_agent").
			Optional().
			Nillable().
			Comment("Name of the required agent or validator check that failed the job"),
		field.Int("progress_percent").
			Default(0),
		field.String("current_agent").
			Optional().
			Nillable(),
		field.JSON("synthesized_data", map[string]interface{}{}).
			Optional().
			Comment("Canonical consolidated document; written exactly once, immutable afterwards"),
		field.JSON("validation_issues", []map[string]interface{}{}).
			Optional(),
		field.JSON("artifact_paths", []string{}).
			Optional(),
		field.String("pod_id").
			Optional().
			Nillable().
			Comment("For multi-replica coordination"),
		field.Time("last_heartbeat_at").
			Optional().
			Nillable().
			Comment("For orphan detection"),
		field.Time("deleted_at").
			Optional().
			Nillable().
			Comment("Soft delete for retention policy"),
	}
}

// Edges of the AnalysisJob.
func (AnalysisJob) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("agent_records", AgentRecord.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("events", Event.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the AnalysisJob.
func (AnalysisJob) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("target"),
		index.Fields("status", "created_at"),
		index.Fields("status", "last_heartbeat_at"),
		index.Fields("deleted_at").
			Annotations(entsql.IndexWhere("deleted_at IS NOT NULL")),
	}
}
