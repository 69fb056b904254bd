// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/dealdesk/dealdesk/ent/analysisjob"
)

// AnalysisJob is the model entity for the AnalysisJob schema.
type AnalysisJob struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Target company ticker or identifier
	Target string `json:"target,omitempty"`
	// Acquirer holds the value of the "acquirer" field.
	Acquirer *string `json:"acquirer,omitempty"`
	// User-supplied deal value in USD; absent means auto-calculated
	DealValue *float64 `json:"deal_value,omitempty"`
	// Free-text investment thesis from the submitter
	Thesis *string `json:"thesis,omitempty"`
	// Status holds the value of the "status" field.
	Status analysisjob.Status `json:"status,omitempty"`
	// When the job was submitted
	CreatedAt time.Time `json:"created_at,omitempty"`
	// When a worker claimed the job
	StartedAt *time.Time `json:"started_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// Name of the required agent or validator check that failed the job
	FailedAgent *string `json:"failed_agent,omitempty"`
	// ProgressPercent holds the value of the "progress_percent" field.
	ProgressPercent int `json:"progress_percent,omitempty"`
	// CurrentAgent holds the value of the "current_agent" field.
	CurrentAgent *string `json:"current_agent,omitempty"`
	// Canonical consolidated document; written exactly once, immutable afterwards
	SynthesizedData map[string]interface{} `json:"synthesized_data,omitempty"`
	// ValidationIssues holds the value of the "validation_issues" field.
	ValidationIssues []map[string]interface{} `json:"validation_issues,omitempty"`
	// ArtifactPaths holds the value of the "artifact_paths" field.
	ArtifactPaths []string `json:"artifact_paths,omitempty"`
	// For multi-replica coordination
	PodID *string `json:"pod_id,omitempty"`
	// For orphan detection
	LastHeartbeatAt *time.Time `json:"last_heartbeat_at,omitempty"`
	// Soft delete for retention policy
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the AnalysisJobQuery when eager-loading is set.
	Edges        AnalysisJobEdges `json:"edges"`
	selectValues sql.SelectValues
}

// AnalysisJobEdges holds the relations/edges for other nodes in the graph.
type AnalysisJobEdges struct {
	// AgentRecords holds the value of the agent_records edge.
	AgentRecords []*AgentRecord `json:"agent_records,omitempty"`
	// Events holds the value of the events edge.
	Events []*Event `json:"events,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// AgentRecordsOrErr returns the AgentRecords value or an error if the edge
// was not loaded in eager-loading.
func (e AnalysisJobEdges) AgentRecordsOrErr() ([]*AgentRecord, error) {
	if e.loadedTypes[0] {
		return e.AgentRecords, nil
	}
	return nil, &NotLoadedError{edge: "agent_records"}
}

// EventsOrErr returns the Events value or an error if the edge
// was not loaded in eager-loading.
func (e AnalysisJobEdges) EventsOrErr() ([]*Event, error) {
	if e.loadedTypes[1] {
		return e.Events, nil
	}
	return nil, &NotLoadedError{edge: "events"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AnalysisJob) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case analysisjob.FieldSynthesizedData, analysisjob.FieldValidationIssues, analysisjob.FieldArtifactPaths:
			values[i] = new([]byte)
		case analysisjob.FieldDealValue:
			values[i] = new(sql.NullFloat64)
		case analysisjob.FieldProgressPercent:
			values[i] = new(sql.NullInt64)
		case analysisjob.FieldID, analysisjob.FieldTarget, analysisjob.FieldAcquirer, analysisjob.FieldThesis, analysisjob.FieldStatus, analysisjob.FieldErrorMessage, analysisjob.FieldFailedAgent, analysisjob.FieldCurrentAgent, analysisjob.FieldPodID:
			values[i] = new(sql.NullString)
		case analysisjob.FieldCreatedAt, analysisjob.FieldStartedAt, analysisjob.FieldCompletedAt, analysisjob.FieldLastHeartbeatAt, analysisjob.FieldDeletedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AnalysisJob fields.
func (_m *AnalysisJob) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case analysisjob.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case analysisjob.FieldTarget:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field target", values[i])
			} else if value.Valid {
				_m.Target = value.String
			}
		case analysisjob.FieldAcquirer:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field acquirer", values[i])
			} else if value.Valid {
				_m.Acquirer = new(string)
				*_m.Acquirer = value.String
			}
		case analysisjob.FieldDealValue:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field deal_value", values[i])
			} else if value.Valid {
				_m.DealValue = new(float64)
				*_m.DealValue = value.Float64
			}
		case analysisjob.FieldThesis:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field thesis", values[i])
			} else if value.Valid {
				_m.Thesis = new(string)
				*_m.Thesis = value.String
			}
		case analysisjob.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = analysisjob.Status(value.String)
			}
		case analysisjob.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case analysisjob.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = new(time.Time)
				*_m.StartedAt = value.Time
			}
		case analysisjob.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		case analysisjob.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case analysisjob.FieldFailedAgent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field failed_agent", values[i])
			} else if value.Valid {
				_m.FailedAgent = new(string)
				*_m.FailedAgent = value.String
			}
		case analysisjob.FieldProgressPercent:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field progress_percent", values[i])
			} else if value.Valid {
				_m.ProgressPercent = int(value.Int64)
			}
		case analysisjob.FieldCurrentAgent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field current_agent", values[i])
			} else if value.Valid {
				_m.CurrentAgent = new(string)
				*_m.CurrentAgent = value.String
			}
		case analysisjob.FieldSynthesizedData:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field synthesized_data", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.SynthesizedData); err != nil {
					return fmt.Errorf("unmarshal field synthesized_data: %w", err)
				}
			}
		case analysisjob.FieldValidationIssues:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field validation_issues", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ValidationIssues); err != nil {
					return fmt.Errorf("unmarshal field validation_issues: %w", err)
				}
			}
		case analysisjob.FieldArtifactPaths:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field artifact_paths", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ArtifactPaths); err != nil {
					return fmt.Errorf("unmarshal field artifact_paths: %w", err)
				}
			}
		case analysisjob.FieldPodID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field pod_id", values[i])
			} else if value.Valid {
				_m.PodID = new(string)
				*_m.PodID = value.String
			}
		case analysisjob.FieldLastHeartbeatAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_heartbeat_at", values[i])
			} else if value.Valid {
				_m.LastHeartbeatAt = new(time.Time)
				*_m.LastHeartbeatAt = value.Time
			}
		case analysisjob.FieldDeletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field deleted_at", values[i])
			} else if value.Valid {
				_m.DeletedAt = new(time.Time)
				*_m.DeletedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AnalysisJob.
// This includes values selected through modifiers, order, etc.
func (_m *AnalysisJob) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryAgentRecords queries the "agent_records" edge of the AnalysisJob entity.
func (_m *AnalysisJob) QueryAgentRecords() *AgentRecordQuery {
	return NewAnalysisJobClient(_m.config).QueryAgentRecords(_m)
}

// QueryEvents queries the "events" edge of the AnalysisJob entity.
func (_m *AnalysisJob) QueryEvents() *EventQuery {
	return NewAnalysisJobClient(_m.config).QueryEvents(_m)
}

// Update returns a builder for updating this AnalysisJob.
// Note that you need to call AnalysisJob.Unwrap() before calling this method if this AnalysisJob
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AnalysisJob) Update() *AnalysisJobUpdateOne {
	return NewAnalysisJobClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AnalysisJob entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AnalysisJob) Unwrap() *AnalysisJob {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AnalysisJob is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AnalysisJob) String() string {
	var builder strings.Builder
	builder.WriteString("AnalysisJob(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("target=")
	builder.WriteString(_m.Target)
	builder.WriteString(", ")
	if v := _m.Acquirer; v != nil {
		builder.WriteString("acquirer=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.DealValue; v != nil {
		builder.WriteString("deal_value=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.Thesis; v != nil {
		builder.WriteString("thesis=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.StartedAt; v != nil {
		builder.WriteString("started_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.FailedAgent; v != nil {
		builder.WriteString("failed_agent=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("progress_percent=")
	builder.WriteString(fmt.Sprintf("%v", _m.ProgressPercent))
	builder.WriteString(", ")
	if v := _m.CurrentAgent; v != nil {
		builder.WriteString("current_agent=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("synthesized_data=")
	builder.WriteString(fmt.Sprintf("%v", _m.SynthesizedData))
	builder.WriteString(", ")
	builder.WriteString("validation_issues=")
	builder.WriteString(fmt.Sprintf("%v", _m.ValidationIssues))
	builder.WriteString(", ")
	builder.WriteString("artifact_paths=")
	builder.WriteString(fmt.Sprintf("%v", _m.ArtifactPaths))
	builder.WriteString(", ")
	if v := _m.PodID; v != nil {
		builder.WriteString("pod_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.LastHeartbeatAt; v != nil {
		builder.WriteString("last_heartbeat_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.DeletedAt; v != nil {
		builder.WriteString("deleted_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// AnalysisJobs is a parsable slice of AnalysisJob.
type AnalysisJobs []*AnalysisJob
