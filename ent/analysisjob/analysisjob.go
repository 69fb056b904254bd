// Code generated by ent, DO NOT EDIT.

package analysisjob

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the analysisjob type in the database.
	Label = "analysis_job"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "job_id"
	// FieldTarget holds the string denoting the target field in the database.
	FieldTarget = "target"
	// FieldAcquirer holds the string denoting the acquirer field in the database.
	FieldAcquirer = "acquirer"
	// FieldDealValue holds the string denoting the deal_value field in the database.
	FieldDealValue = "deal_value"
	// FieldThesis holds the string denoting the thesis field in the database.
	FieldThesis = "thesis"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldFailedAgent holds the string denoting the failed_agent field in the database.
	FieldFailedAgent = "failed_agent"
	// FieldProgressPercent holds the string denoting the progress_percent field in the database.
	FieldProgressPercent = "progress_percent"
	// FieldCurrentAgent holds the string denoting the current_agent field in the database.
	FieldCurrentAgent = "current_agent"
	// FieldSynthesizedData holds the string denoting the synthesized_data field in the database.
	FieldSynthesizedData = "synthesized_data"
	// FieldValidationIssues holds the string denoting the validation_issues field in the database.
	FieldValidationIssues = "validation_issues"
	// FieldArtifactPaths holds the string denoting the artifact_paths field in the database.
	FieldArtifactPaths = "artifact_paths"
	// FieldPodID holds the string denoting the pod_id field in the database.
	FieldPodID = "pod_id"
	// FieldLastHeartbeatAt holds the string denoting the last_heartbeat_at field in the database.
	FieldLastHeartbeatAt = "last_heartbeat_at"
	// FieldDeletedAt holds the string denoting the deleted_at field in the database.
	FieldDeletedAt = "deleted_at"
	// EdgeAgentRecords holds the string denoting the agent_records edge name in mutations.
	EdgeAgentRecords = "agent_records"
	// EdgeEvents holds the string denoting the events edge name in mutations.
	EdgeEvents = "events"
	// AgentRecordFieldID holds the string denoting the ID field of the AgentRecord.
	AgentRecordFieldID = "record_id"
	// EventFieldID holds the string denoting the ID field of the Event.
	EventFieldID = "id"
	// Table holds the table name of the analysisjob in the database.
	Table = "analysis_jobs"
	// AgentRecordsTable is the table that holds the agent_records relation/edge.
	AgentRecordsTable = "agent_records"
	// AgentRecordsInverseTable is the table name for the AgentRecord entity.
	// It exists in this package in order to avoid circular dependency with the "agentrecord" package.
	AgentRecordsInverseTable = "agent_records"
	// AgentRecordsColumn is the table column denoting the agent_records relation/edge.
	AgentRecordsColumn = "job_id"
	// EventsTable is the table that holds the events relation/edge.
	EventsTable = "events"
	// EventsInverseTable is the table name for the Event entity.
	// It exists in this package in order to avoid circular dependency with the "event" package.
	EventsInverseTable = "events"
	// EventsColumn is the table column denoting the events relation/edge.
	EventsColumn = "job_id"
)

// Columns holds all SQL columns for analysisjob fields.
var Columns = []string{
	FieldID,
	FieldTarget,
	FieldAcquirer,
	FieldDealValue,
	FieldThesis,
	FieldStatus,
	FieldCreatedAt,
	FieldStartedAt,
	FieldCompletedAt,
	FieldErrorMessage,
	FieldFailedAgent,
	FieldProgressPercent,
	FieldCurrentAgent,
	FieldSynthesizedData,
	FieldValidationIssues,
	FieldArtifactPaths,
	FieldPodID,
	FieldLastHeartbeatAt,
	FieldDeletedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultProgressPercent holds the default value on creation for the "progress_percent" field.
	DefaultProgressPercent int
)

// Status defines the type for the "status" enum field.
type Status string

// StatusQueued is the default value of the Status enum.
const DefaultStatus = StatusQueued

// Status values.
const (
	StatusQueued       Status = "queued"
	StatusRunning      Status = "running"
	StatusSynthesizing Status = "synthesizing"
	StatusValidating   Status = "validating"
	StatusCompleted    Status = "completed"
	StatusFailed       Status = "failed"
	StatusCancelled    Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusQueued, StatusRunning, StatusSynthesizing, StatusValidating, StatusCompleted, StatusFailed, StatusCancelled:
		return nil
	default:
		return fmt.Errorf("analysisjob: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the AnalysisJob queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTarget orders the results by the target field.
func ByTarget(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTarget, opts...).ToFunc()
}

// ByAcquirer orders the results by the acquirer field.
func ByAcquirer(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAcquirer, opts...).ToFunc()
}

// ByDealValue orders the results by the deal_value field.
func ByDealValue(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDealValue, opts...).ToFunc()
}

// ByThesis orders the results by the thesis field.
func ByThesis(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldThesis, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByFailedAgent orders the results by the failed_agent field.
func ByFailedAgent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFailedAgent, opts...).ToFunc()
}

// ByProgressPercent orders the results by the progress_percent field.
func ByProgressPercent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProgressPercent, opts...).ToFunc()
}

// ByCurrentAgent orders the results by the current_agent field.
func ByCurrentAgent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrentAgent, opts...).ToFunc()
}

// ByPodID orders the results by the pod_id field.
func ByPodID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPodID, opts...).ToFunc()
}

// ByLastHeartbeatAt orders the results by the last_heartbeat_at field.
func ByLastHeartbeatAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastHeartbeatAt, opts...).ToFunc()
}

// ByDeletedAt orders the results by the deleted_at field.
func ByDeletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeletedAt, opts...).ToFunc()
}

// ByAgentRecordsCount orders the results by agent_records count.
func ByAgentRecordsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newAgentRecordsStep(), opts...)
	}
}

// ByAgentRecords orders the results by agent_records terms.
func ByAgentRecords(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAgentRecordsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByEventsCount orders the results by events count.
func ByEventsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newEventsStep(), opts...)
	}
}

// ByEvents orders the results by events terms.
func ByEvents(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newEventsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newAgentRecordsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AgentRecordsInverseTable, AgentRecordFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, AgentRecordsTable, AgentRecordsColumn),
	)
}
func newEventsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(EventsInverseTable, EventFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, EventsTable, EventsColumn),
	)
}
