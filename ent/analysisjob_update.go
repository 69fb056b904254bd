// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/dealdesk/dealdesk/ent/agentrecord"
	"github.com/dealdesk/dealdesk/ent/analysisjob"
	"github.com/dealdesk/dealdesk/ent/event"
	"github.com/dealdesk/dealdesk/ent/predicate"
)

// AnalysisJobUpdate is the builder for updating AnalysisJob entities.
type AnalysisJobUpdate struct {
	config
	hooks    []Hook
	mutation *AnalysisJobMutation
}

// Where appends a list predicates to the AnalysisJobUpdate builder.
func (_u *AnalysisJobUpdate) Where(ps ...predicate.AnalysisJob) *AnalysisJobUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTarget sets the "target" field.
func (_u *AnalysisJobUpdate) SetTarget(v string) *AnalysisJobUpdate {
	_u.mutation.SetTarget(v)
	return _u
}

// SetNillableTarget sets the "target" field if the given value is not nil.
func (_u *AnalysisJobUpdate) SetNillableTarget(v *string) *AnalysisJobUpdate {
	if v != nil {
		_u.SetTarget(*v)
	}
	return _u
}

// SetAcquirer sets the "acquirer" field.
func (_u *AnalysisJobUpdate) SetAcquirer(v string) *AnalysisJobUpdate {
	_u.mutation.SetAcquirer(v)
	return _u
}

// SetNillableAcquirer sets the "acquirer" field if the given value is not nil.
func (_u *AnalysisJobUpdate) SetNillableAcquirer(v *string) *AnalysisJobUpdate {
	if v != nil {
		_u.SetAcquirer(*v)
	}
	return _u
}

// ClearAcquirer clears the value of the "acquirer" field.
func (_u *AnalysisJobUpdate) ClearAcquirer() *AnalysisJobUpdate {
	_u.mutation.ClearAcquirer()
	return _u
}

// SetDealValue sets the "deal_value" field.
func (_u *AnalysisJobUpdate) SetDealValue(v float64) *AnalysisJobUpdate {
	_u.mutation.ResetDealValue()
	_u.mutation.SetDealValue(v)
	return _u
}

// SetNillableDealValue sets the "deal_value" field if the given value is not nil.
func (_u *AnalysisJobUpdate) SetNillableDealValue(v *float64) *AnalysisJobUpdate {
	if v != nil {
		_u.SetDealValue(*v)
	}
	return _u
}

// AddDealValue adds value to the "deal_value" field.
func (_u *AnalysisJobUpdate) AddDealValue(v float64) *AnalysisJobUpdate {
	_u.mutation.AddDealValue(v)
	return _u
}

// ClearDealValue clears the value of the "deal_value" field.
func (_u *AnalysisJobUpdate) ClearDealValue() *AnalysisJobUpdate {
	_u.mutation.ClearDealValue()
	return _u
}

// SetThesis sets the "thesis" field.
func (_u *AnalysisJobUpdate) SetThesis(v string) *AnalysisJobUpdate {
	_u.mutation.SetThesis(v)
	return _u
}

// SetNillableThesis sets the "thesis" field if the given value is not nil.
func (_u *AnalysisJobUpdate) SetNillableThesis(v *string) *AnalysisJobUpdate {
	if v != nil {
		_u.SetThesis(*v)
	}
	return _u
}

// ClearThesis clears the value of the "thesis" field.
func (_u *AnalysisJobUpdate) ClearThesis() *AnalysisJobUpdate {
	_u.mutation.ClearThesis()
	return _u
}

// SetStatus sets the "status" field.
func (_u *AnalysisJobUpdate) SetStatus(v analysisjob.Status) *AnalysisJobUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AnalysisJobUpdate) SetNillableStatus(v *analysisjob.Status) *AnalysisJobUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *AnalysisJobUpdate) SetCreatedAt(v time.Time) *AnalysisJobUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *AnalysisJobUpdate) SetNillableCreatedAt(v *time.Time) *AnalysisJobUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *AnalysisJobUpdate) SetStartedAt(v time.Time) *AnalysisJobUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *AnalysisJobUpdate) SetNillableStartedAt(v *time.Time) *AnalysisJobUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *AnalysisJobUpdate) ClearStartedAt() *AnalysisJobUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *AnalysisJobUpdate) SetCompletedAt(v time.Time) *AnalysisJobUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *AnalysisJobUpdate) SetNillableCompletedAt(v *time.Time) *AnalysisJobUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *AnalysisJobUpdate) ClearCompletedAt() *AnalysisJobUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *AnalysisJobUpdate) SetErrorMessage(v string) *AnalysisJobUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *AnalysisJobUpdate) SetNillableErrorMessage(v *string) *AnalysisJobUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *AnalysisJobUpdate) ClearErrorMessage() *AnalysisJobUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetFailedAgent sets the "failed_agent" field.
func (_u *AnalysisJobUpdate) SetFailedAgent(v string) *AnalysisJobUpdate {
	_u.mutation.SetFailedAgent(v)
	return _u
}

// SetNillableFailedAgent sets the "failed_agent" field if the given value is not nil.
func (_u *AnalysisJobUpdate) SetNillableFailedAgent(v *string) *AnalysisJobUpdate {
	if v != nil {
		_u.SetFailedAgent(*v)
	}
	return _u
}

// ClearFailedAgent clears the value of the "failed_agent" field.
func (_u *AnalysisJobUpdate) ClearFailedAgent() *AnalysisJobUpdate {
	_u.mutation.ClearFailedAgent()
	return _u
}

// SetProgressPercent sets the "progress_percent" field.
func (_u *AnalysisJobUpdate) SetProgressPercent(v int) *AnalysisJobUpdate {
	_u.mutation.ResetProgressPercent()
	_u.mutation.SetProgressPercent(v)
	return _u
}

// SetNillableProgressPercent sets the "progress_percent" field if the given value is not nil.
func (_u *AnalysisJobUpdate) SetNillableProgressPercent(v *int) *AnalysisJobUpdate {
	if v != nil {
		_u.SetProgressPercent(*v)
	}
	return _u
}

// AddProgressPercent adds value to the "progress_percent" field.
func (_u *AnalysisJobUpdate) AddProgressPercent(v int) *AnalysisJobUpdate {
	_u.mutation.AddProgressPercent(v)
	return _u
}

// SetCurrentAgent sets the "current_agent" field.
func (_u *AnalysisJobUpdate) SetCurrentAgent(v string) *AnalysisJobUpdate {
	_u.mutation.SetCurrentAgent(v)
	return _u
}

// SetNillableCurrentAgent sets the "current_agent" field if the given value is not nil.
func (_u *AnalysisJobUpdate) SetNillableCurrentAgent(v *string) *AnalysisJobUpdate {
	if v != nil {
		_u.SetCurrentAgent(*v)
	}
	return _u
}

// ClearCurrentAgent clears the value of the "current_agent" field.
func (_u *AnalysisJobUpdate) ClearCurrentAgent() *AnalysisJobUpdate {
	_u.mutation.ClearCurrentAgent()
	return _u
}

// SetSynthesizedData sets the "synthesized_data" field.
func (_u *AnalysisJobUpdate) SetSynthesizedData(v map[string]interface{}) *AnalysisJobUpdate {
	_u.mutation.SetSynthesizedData(v)
	return _u
}

// ClearSynthesizedData clears the value of the "synthesized_data" field.
func (_u *AnalysisJobUpdate) ClearSynthesizedData() *AnalysisJobUpdate {
	_u.mutation.ClearSynthesizedData()
	return _u
}

// SetValidationIssues sets the "validation_issues" field.
func (_u *AnalysisJobUpdate) SetValidationIssues(v []map[string]interface{}) *AnalysisJobUpdate {
	_u.mutation.SetValidationIssues(v)
	return _u
}

// AppendValidationIssues appends value to the "validation_issues" field.
func (_u *AnalysisJobUpdate) AppendValidationIssues(v []map[string]interface{}) *AnalysisJobUpdate {
	_u.mutation.AppendValidationIssues(v)
	return _u
}

// ClearValidationIssues clears the value of the "validation_issues" field.
func (_u *AnalysisJobUpdate) ClearValidationIssues() *AnalysisJobUpdate {
	_u.mutation.ClearValidationIssues()
	return _u
}

// SetArtifactPaths sets the "artifact_paths" field.
func (_u *AnalysisJobUpdate) SetArtifactPaths(v []string) *AnalysisJobUpdate {
	_u.mutation.SetArtifactPaths(v)
	return _u
}

// AppendArtifactPaths appends value to the "artifact_paths" field.
func (_u *AnalysisJobUpdate) AppendArtifactPaths(v []string) *AnalysisJobUpdate {
	_u.mutation.AppendArtifactPaths(v)
	return _u
}

// ClearArtifactPaths clears the value of the "artifact_paths" field.
func (_u *AnalysisJobUpdate) ClearArtifactPaths() *AnalysisJobUpdate {
	_u.mutation.ClearArtifactPaths()
	return _u
}

// SetPodID sets the "pod_id" field.
func (_u *AnalysisJobUpdate) SetPodID(v string) *AnalysisJobUpdate {
	_u.mutation.SetPodID(v)
	return _u
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_u *AnalysisJobUpdate) SetNillablePodID(v *string) *AnalysisJobUpdate {
	if v != nil {
		_u.SetPodID(*v)
	}
	return _u
}

// ClearPodID clears the value of the "pod_id" field.
func (_u *AnalysisJobUpdate) ClearPodID() *AnalysisJobUpdate {
	_u.mutation.ClearPodID()
	return _u
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (_u *AnalysisJobUpdate) SetLastHeartbeatAt(v time.Time) *AnalysisJobUpdate {
	_u.mutation.SetLastHeartbeatAt(v)
	return _u
}

// SetNillableLastHeartbeatAt sets the "last_heartbeat_at" field if the given value is not nil.
func (_u *AnalysisJobUpdate) SetNillableLastHeartbeatAt(v *time.Time) *AnalysisJobUpdate {
	if v != nil {
		_u.SetLastHeartbeatAt(*v)
	}
	return _u
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (_u *AnalysisJobUpdate) ClearLastHeartbeatAt() *AnalysisJobUpdate {
	_u.mutation.ClearLastHeartbeatAt()
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *AnalysisJobUpdate) SetDeletedAt(v time.Time) *AnalysisJobUpdate {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *AnalysisJobUpdate) SetNillableDeletedAt(v *time.Time) *AnalysisJobUpdate {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *AnalysisJobUpdate) ClearDeletedAt() *AnalysisJobUpdate {
	_u.mutation.ClearDeletedAt()
	return _u
}

// AddAgentRecordIDs adds the "agent_records" edge to the AgentRecord entity by IDs.
func (_u *AnalysisJobUpdate) AddAgentRecordIDs(ids ...string) *AnalysisJobUpdate {
	_u.mutation.AddAgentRecordIDs(ids...)
	return _u
}

// AddAgentRecords adds the "agent_records" edges to the AgentRecord entity.
func (_u *AnalysisJobUpdate) AddAgentRecords(v ...*AgentRecord) *AnalysisJobUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAgentRecordIDs(ids...)
}

// AddEventIDs adds the "events" edge to the Event entity by IDs.
func (_u *AnalysisJobUpdate) AddEventIDs(ids ...int) *AnalysisJobUpdate {
	_u.mutation.AddEventIDs(ids...)
	return _u
}

// AddEvents adds the "events" edges to the Event entity.
func (_u *AnalysisJobUpdate) AddEvents(v ...*Event) *AnalysisJobUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEventIDs(ids...)
}

// Mutation returns the AnalysisJobMutation object of the builder.
func (_u *AnalysisJobUpdate) Mutation() *AnalysisJobMutation {
	return _u.mutation
}

// ClearAgentRecords clears all "agent_records" edges to the AgentRecord entity.
func (_u *AnalysisJobUpdate) ClearAgentRecords() *AnalysisJobUpdate {
	_u.mutation.ClearAgentRecords()
	return _u
}

// RemoveAgentRecordIDs removes the "agent_records" edge to AgentRecord entities by IDs.
func (_u *AnalysisJobUpdate) RemoveAgentRecordIDs(ids ...string) *AnalysisJobUpdate {
	_u.mutation.RemoveAgentRecordIDs(ids...)
	return _u
}

// RemoveAgentRecords removes "agent_records" edges to AgentRecord entities.
func (_u *AnalysisJobUpdate) RemoveAgentRecords(v ...*AgentRecord) *AnalysisJobUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAgentRecordIDs(ids...)
}

// ClearEvents clears all "events" edges to the Event entity.
func (_u *AnalysisJobUpdate) ClearEvents() *AnalysisJobUpdate {
	_u.mutation.ClearEvents()
	return _u
}

// RemoveEventIDs removes the "events" edge to Event entities by IDs.
func (_u *AnalysisJobUpdate) RemoveEventIDs(ids ...int) *AnalysisJobUpdate {
	_u.mutation.RemoveEventIDs(ids...)
	return _u
}

// RemoveEvents removes "events" edges to Event entities.
func (_u *AnalysisJobUpdate) RemoveEvents(v ...*Event) *AnalysisJobUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEventIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AnalysisJobUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnalysisJobUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AnalysisJobUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnalysisJobUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnalysisJobUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := analysisjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AnalysisJob.status": %w`, err)}
		}
	}
	return nil
}

func (_u *AnalysisJobUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(analysisjob.Table, analysisjob.Columns, sqlgraph.NewFieldSpec(analysisjob.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Target(); ok {
		_spec.SetField(analysisjob.FieldTarget, field.TypeString, value)
	}
	if value, ok := _u.mutation.Acquirer(); ok {
		_spec.SetField(analysisjob.FieldAcquirer, field.TypeString, value)
	}
	if _u.mutation.AcquirerCleared() {
		_spec.ClearField(analysisjob.FieldAcquirer, field.TypeString)
	}
	if value, ok := _u.mutation.DealValue(); ok {
		_spec.SetField(analysisjob.FieldDealValue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDealValue(); ok {
		_spec.AddField(analysisjob.FieldDealValue, field.TypeFloat64, value)
	}
	if _u.mutation.DealValueCleared() {
		_spec.ClearField(analysisjob.FieldDealValue, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Thesis(); ok {
		_spec.SetField(analysisjob.FieldThesis, field.TypeString, value)
	}
	if _u.mutation.ThesisCleared() {
		_spec.ClearField(analysisjob.FieldThesis, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(analysisjob.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(analysisjob.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(analysisjob.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(analysisjob.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(analysisjob.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(analysisjob.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(analysisjob.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(analysisjob.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.FailedAgent(); ok {
		_spec.SetField(analysisjob.FieldFailedAgent, field.TypeString, value)
	}
	if _u.mutation.FailedAgentCleared() {
		_spec.ClearField(analysisjob.FieldFailedAgent, field.TypeString)
	}
	if value, ok := _u.mutation.ProgressPercent(); ok {
		_spec.SetField(analysisjob.FieldProgressPercent, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedProgressPercent(); ok {
		_spec.AddField(analysisjob.FieldProgressPercent, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CurrentAgent(); ok {
		_spec.SetField(analysisjob.FieldCurrentAgent, field.TypeString, value)
	}
	if _u.mutation.CurrentAgentCleared() {
		_spec.ClearField(analysisjob.FieldCurrentAgent, field.TypeString)
	}
	if value, ok := _u.mutation.SynthesizedData(); ok {
		_spec.SetField(analysisjob.FieldSynthesizedData, field.TypeJSON, value)
	}
	if _u.mutation.SynthesizedDataCleared() {
		_spec.ClearField(analysisjob.FieldSynthesizedData, field.TypeJSON)
	}
	if value, ok := _u.mutation.ValidationIssues(); ok {
		_spec.SetField(analysisjob.FieldValidationIssues, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedValidationIssues(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, analysisjob.FieldValidationIssues, value)
		})
	}
	if _u.mutation.ValidationIssuesCleared() {
		_spec.ClearField(analysisjob.FieldValidationIssues, field.TypeJSON)
	}
	if value, ok := _u.mutation.ArtifactPaths(); ok {
		_spec.SetField(analysisjob.FieldArtifactPaths, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedArtifactPaths(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, analysisjob.FieldArtifactPaths, value)
		})
	}
	if _u.mutation.ArtifactPathsCleared() {
		_spec.ClearField(analysisjob.FieldArtifactPaths, field.TypeJSON)
	}
	if value, ok := _u.mutation.PodID(); ok {
		_spec.SetField(analysisjob.FieldPodID, field.TypeString, value)
	}
	if _u.mutation.PodIDCleared() {
		_spec.ClearField(analysisjob.FieldPodID, field.TypeString)
	}
	if value, ok := _u.mutation.LastHeartbeatAt(); ok {
		_spec.SetField(analysisjob.FieldLastHeartbeatAt, field.TypeTime, value)
	}
	if _u.mutation.LastHeartbeatAtCleared() {
		_spec.ClearField(analysisjob.FieldLastHeartbeatAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(analysisjob.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(analysisjob.FieldDeletedAt, field.TypeTime)
	}
	if _u.mutation.AgentRecordsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   analysisjob.AgentRecordsTable,
			Columns: []string{analysisjob.AgentRecordsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentrecord.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAgentRecordsIDs(); len(nodes) > 0 && !_u.mutation.AgentRecordsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   analysisjob.AgentRecordsTable,
			Columns: []string{analysisjob.AgentRecordsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentrecord.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AgentRecordsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   analysisjob.AgentRecordsTable,
			Columns: []string{analysisjob.AgentRecordsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentrecord.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   analysisjob.EventsTable,
			Columns: []string{analysisjob.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(event.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEventsIDs(); len(nodes) > 0 && !_u.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   analysisjob.EventsTable,
			Columns: []string{analysisjob.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(event.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EventsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   analysisjob.EventsTable,
			Columns: []string{analysisjob.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(event.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{analysisjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AnalysisJobUpdateOne is the builder for updating a single AnalysisJob entity.
type AnalysisJobUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AnalysisJobMutation
}

// SetTarget sets the "target" field.
func (_u *AnalysisJobUpdateOne) SetTarget(v string) *AnalysisJobUpdateOne {
	_u.mutation.SetTarget(v)
	return _u
}

// SetNillableTarget sets the "target" field if the given value is not nil.
func (_u *AnalysisJobUpdateOne) SetNillableTarget(v *string) *AnalysisJobUpdateOne {
	if v != nil {
		_u.SetTarget(*v)
	}
	return _u
}

// SetAcquirer sets the "acquirer" field.
func (_u *AnalysisJobUpdateOne) SetAcquirer(v string) *AnalysisJobUpdateOne {
	_u.mutation.SetAcquirer(v)
	return _u
}

// SetNillableAcquirer sets the "acquirer" field if the given value is not nil.
func (_u *AnalysisJobUpdateOne) SetNillableAcquirer(v *string) *AnalysisJobUpdateOne {
	if v != nil {
		_u.SetAcquirer(*v)
	}
	return _u
}

// ClearAcquirer clears the value of the "acquirer" field.
func (_u *AnalysisJobUpdateOne) ClearAcquirer() *AnalysisJobUpdateOne {
	_u.mutation.ClearAcquirer()
	return _u
}

// SetDealValue sets the "deal_value" field.
func (_u *AnalysisJobUpdateOne) SetDealValue(v float64) *AnalysisJobUpdateOne {
	_u.mutation.ResetDealValue()
	_u.mutation.SetDealValue(v)
	return _u
}

// SetNillableDealValue sets the "deal_value" field if the given value is not nil.
func (_u *AnalysisJobUpdateOne) SetNillableDealValue(v *float64) *AnalysisJobUpdateOne {
	if v != nil {
		_u.SetDealValue(*v)
	}
	return _u
}

// AddDealValue adds value to the "deal_value" field.
func (_u *AnalysisJobUpdateOne) AddDealValue(v float64) *AnalysisJobUpdateOne {
	_u.mutation.AddDealValue(v)
	return _u
}

// ClearDealValue clears the value of the "deal_value" field.
func (_u *AnalysisJobUpdateOne) ClearDealValue() *AnalysisJobUpdateOne {
	_u.mutation.ClearDealValue()
	return _u
}

// SetThesis sets the "thesis" field.
func (_u *AnalysisJobUpdateOne) SetThesis(v string) *AnalysisJobUpdateOne {
	_u.mutation.SetThesis(v)
	return _u
}

// SetNillableThesis sets the "thesis" field if the given value is not nil.
func (_u *AnalysisJobUpdateOne) SetNillableThesis(v *string) *AnalysisJobUpdateOne {
	if v != nil {
		_u.SetThesis(*v)
	}
	return _u
}

// ClearThesis clears the value of the "thesis" field.
func (_u *AnalysisJobUpdateOne) ClearThesis() *AnalysisJobUpdateOne {
	_u.mutation.ClearThesis()
	return _u
}

// SetStatus sets the "status" field.
func (_u *AnalysisJobUpdateOne) SetStatus(v analysisjob.Status) *AnalysisJobUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AnalysisJobUpdateOne) SetNillableStatus(v *analysisjob.Status) *AnalysisJobUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *AnalysisJobUpdateOne) SetCreatedAt(v time.Time) *AnalysisJobUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *AnalysisJobUpdateOne) SetNillableCreatedAt(v *time.Time) *AnalysisJobUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *AnalysisJobUpdateOne) SetStartedAt(v time.Time) *AnalysisJobUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *AnalysisJobUpdateOne) SetNillableStartedAt(v *time.Time) *AnalysisJobUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *AnalysisJobUpdateOne) ClearStartedAt() *AnalysisJobUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *AnalysisJobUpdateOne) SetCompletedAt(v time.Time) *AnalysisJobUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *AnalysisJobUpdateOne) SetNillableCompletedAt(v *time.Time) *AnalysisJobUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *AnalysisJobUpdateOne) ClearCompletedAt() *AnalysisJobUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *AnalysisJobUpdateOne) SetErrorMessage(v string) *AnalysisJobUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *AnalysisJobUpdateOne) SetNillableErrorMessage(v *string) *AnalysisJobUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *AnalysisJobUpdateOne) ClearErrorMessage() *AnalysisJobUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetFailedAgent sets the "failed_agent" field.
func (_u *AnalysisJobUpdateOne) SetFailedAgent(v string) *AnalysisJobUpdateOne {
	_u.mutation.SetFailedAgent(v)
	return _u
}

// SetNillableFailedAgent sets the "failed_agent" field if the given value is not nil.
func (_u *AnalysisJobUpdateOne) SetNillableFailedAgent(v *string) *AnalysisJobUpdateOne {
	if v != nil {
		_u.SetFailedAgent(*v)
	}
	return _u
}

// ClearFailedAgent clears the value of the "failed_agent" field.
func (_u *AnalysisJobUpdateOne) ClearFailedAgent() *AnalysisJobUpdateOne {
	_u.mutation.ClearFailedAgent()
	return _u
}

// SetProgressPercent sets the "progress_percent" field.
func (_u *AnalysisJobUpdateOne) SetProgressPercent(v int) *AnalysisJobUpdateOne {
	_u.mutation.ResetProgressPercent()
	_u.mutation.SetProgressPercent(v)
	return _u
}

// SetNillableProgressPercent sets the "progress_percent" field if the given value is not nil.
func (_u *AnalysisJobUpdateOne) SetNillableProgressPercent(v *int) *AnalysisJobUpdateOne {
	if v != nil {
		_u.SetProgressPercent(*v)
	}
	return _u
}

// AddProgressPercent adds value to the "progress_percent" field.
func (_u *AnalysisJobUpdateOne) AddProgressPercent(v int) *AnalysisJobUpdateOne {
	_u.mutation.AddProgressPercent(v)
	return _u
}

// SetCurrentAgent sets the "current_agent" field.
func (_u *AnalysisJobUpdateOne) SetCurrentAgent(v string) *AnalysisJobUpdateOne {
	_u.mutation.SetCurrentAgent(v)
	return _u
}

// SetNillableCurrentAgent sets the "current_agent" field if the given value is not nil.
func (_u *AnalysisJobUpdateOne) SetNillableCurrentAgent(v *string) *AnalysisJobUpdateOne {
	if v != nil {
		_u.SetCurrentAgent(*v)
	}
	return _u
}

// ClearCurrentAgent clears the value of the "current_agent" field.
func (_u *AnalysisJobUpdateOne) ClearCurrentAgent() *AnalysisJobUpdateOne {
	_u.mutation.ClearCurrentAgent()
	return _u
}

// SetSynthesizedData sets the "synthesized_data" field.
func (_u *AnalysisJobUpdateOne) SetSynthesizedData(v map[string]interface{}) *AnalysisJobUpdateOne {
	_u.mutation.SetSynthesizedData(v)
	return _u
}

// ClearSynthesizedData clears the value of the "synthesized_data" field.
func (_u *AnalysisJobUpdateOne) ClearSynthesizedData() *AnalysisJobUpdateOne {
	_u.mutation.ClearSynthesizedData()
	return _u
}

// SetValidationIssues sets the "validation_issues" field.
func (_u *AnalysisJobUpdateOne) SetValidationIssues(v []map[string]interface{}) *AnalysisJobUpdateOne {
	_u.mutation.SetValidationIssues(v)
	return _u
}

// AppendValidationIssues appends value to the "validation_issues" field.
func (_u *AnalysisJobUpdateOne) AppendValidationIssues(v []map[string]interface{}) *AnalysisJobUpdateOne {
	_u.mutation.AppendValidationIssues(v)
	return _u
}

// ClearValidationIssues clears the value of the "validation_issues" field.
func (_u *AnalysisJobUpdateOne) ClearValidationIssues() *AnalysisJobUpdateOne {
	_u.mutation.ClearValidationIssues()
	return _u
}

// SetArtifactPaths sets the "artifact_paths" field.
func (_u *AnalysisJobUpdateOne) SetArtifactPaths(v []string) *AnalysisJobUpdateOne {
	_u.mutation.SetArtifactPaths(v)
	return _u
}

// AppendArtifactPaths appends value to the "artifact_paths" field.
func (_u *AnalysisJobUpdateOne) AppendArtifactPaths(v []string) *AnalysisJobUpdateOne {
	_u.mutation.AppendArtifactPaths(v)
	return _u
}

// ClearArtifactPaths clears the value of the "artifact_paths" field.
func (_u *AnalysisJobUpdateOne) ClearArtifactPaths() *AnalysisJobUpdateOne {
	_u.mutation.ClearArtifactPaths()
	return _u
}

// SetPodID sets the "pod_id" field.
func (_u *AnalysisJobUpdateOne) SetPodID(v string) *AnalysisJobUpdateOne {
	_u.mutation.SetPodID(v)
	return _u
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_u *AnalysisJobUpdateOne) SetNillablePodID(v *string) *AnalysisJobUpdateOne {
	if v != nil {
		_u.SetPodID(*v)
	}
	return _u
}

// ClearPodID clears the value of the "pod_id" field.
func (_u *AnalysisJobUpdateOne) ClearPodID() *AnalysisJobUpdateOne {
	_u.mutation.ClearPodID()
	return _u
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (_u *AnalysisJobUpdateOne) SetLastHeartbeatAt(v time.Time) *AnalysisJobUpdateOne {
	_u.mutation.SetLastHeartbeatAt(v)
	return _u
}

// SetNillableLastHeartbeatAt sets the "last_heartbeat_at" field if the given value is not nil.
func (_u *AnalysisJobUpdateOne) SetNillableLastHeartbeatAt(v *time.Time) *AnalysisJobUpdateOne {
	if v != nil {
		_u.SetLastHeartbeatAt(*v)
	}
	return _u
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (_u *AnalysisJobUpdateOne) ClearLastHeartbeatAt() *AnalysisJobUpdateOne {
	_u.mutation.ClearLastHeartbeatAt()
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *AnalysisJobUpdateOne) SetDeletedAt(v time.Time) *AnalysisJobUpdateOne {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *AnalysisJobUpdateOne) SetNillableDeletedAt(v *time.Time) *AnalysisJobUpdateOne {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *AnalysisJobUpdateOne) ClearDeletedAt() *AnalysisJobUpdateOne {
	_u.mutation.ClearDeletedAt()
	return _u
}

// AddAgentRecordIDs adds the "agent_records" edge to the AgentRecord entity by IDs.
func (_u *AnalysisJobUpdateOne) AddAgentRecordIDs(ids ...string) *AnalysisJobUpdateOne {
	_u.mutation.AddAgentRecordIDs(ids...)
	return _u
}

// AddAgentRecords adds the "agent_records" edges to the AgentRecord entity.
func (_u *AnalysisJobUpdateOne) AddAgentRecords(v ...*AgentRecord) *AnalysisJobUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAgentRecordIDs(ids...)
}

// AddEventIDs adds the "events" edge to the Event entity by IDs.
func (_u *AnalysisJobUpdateOne) AddEventIDs(ids ...int) *AnalysisJobUpdateOne {
	_u.mutation.AddEventIDs(ids...)
	return _u
}

// AddEvents adds the "events" edges to the Event entity.
func (_u *AnalysisJobUpdateOne) AddEvents(v ...*Event) *AnalysisJobUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEventIDs(ids...)
}

// Mutation returns the AnalysisJobMutation object of the builder.
func (_u *AnalysisJobUpdateOne) Mutation() *AnalysisJobMutation {
	return _u.mutation
}

// ClearAgentRecords clears all "agent_records" edges to the AgentRecord entity.
func (_u *AnalysisJobUpdateOne) ClearAgentRecords() *AnalysisJobUpdateOne {
	_u.mutation.ClearAgentRecords()
	return _u
}

// RemoveAgentRecordIDs removes the "agent_records" edge to AgentRecord entities by IDs.
func (_u *AnalysisJobUpdateOne) RemoveAgentRecordIDs(ids ...string) *AnalysisJobUpdateOne {
	_u.mutation.RemoveAgentRecordIDs(ids...)
	return _u
}

// RemoveAgentRecords removes "agent_records" edges to AgentRecord entities.
func (_u *AnalysisJobUpdateOne) RemoveAgentRecords(v ...*AgentRecord) *AnalysisJobUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAgentRecordIDs(ids...)
}

// ClearEvents clears all "events" edges to the Event entity.
func (_u *AnalysisJobUpdateOne) ClearEvents() *AnalysisJobUpdateOne {
	_u.mutation.ClearEvents()
	return _u
}

// RemoveEventIDs removes the "events" edge to Event entities by IDs.
func (_u *AnalysisJobUpdateOne) RemoveEventIDs(ids ...int) *AnalysisJobUpdateOne {
	_u.mutation.RemoveEventIDs(ids...)
	return _u
}

// RemoveEvents removes "events" edges to Event entities.
func (_u *AnalysisJobUpdateOne) RemoveEvents(v ...*Event) *AnalysisJobUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEventIDs(ids...)
}

// Where appends a list predicates to the AnalysisJobUpdate builder.
func (_u *AnalysisJobUpdateOne) Where(ps ...predicate.AnalysisJob) *AnalysisJobUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AnalysisJobUpdateOne) Select(field string, fields ...string) *AnalysisJobUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AnalysisJob entity.
func (_u *AnalysisJobUpdateOne) Save(ctx context.Context) (*AnalysisJob, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnalysisJobUpdateOne) SaveX(ctx context.Context) *AnalysisJob {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AnalysisJobUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnalysisJobUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnalysisJobUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := analysisjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AnalysisJob.status": %w`, err)}
		}
	}
	return nil
}

func (_u *AnalysisJobUpdateOne) sqlSave(ctx context.Context) (_node *AnalysisJob, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(analysisjob.Table, analysisjob.Columns, sqlgraph.NewFieldSpec(analysisjob.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AnalysisJob.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, analysisjob.FieldID)
		for _, f := range fields {
			if !analysisjob.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != analysisjob.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Target(); ok {
		_spec.SetField(analysisjob.FieldTarget, field.TypeString, value)
	}
	if value, ok := _u.mutation.Acquirer(); ok {
		_spec.SetField(analysisjob.FieldAcquirer, field.TypeString, value)
	}
	if _u.mutation.AcquirerCleared() {
		_spec.ClearField(analysisjob.FieldAcquirer, field.TypeString)
	}
	if value, ok := _u.mutation.DealValue(); ok {
		_spec.SetField(analysisjob.FieldDealValue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDealValue(); ok {
		_spec.AddField(analysisjob.FieldDealValue, field.TypeFloat64, value)
	}
	if _u.mutation.DealValueCleared() {
		_spec.ClearField(analysisjob.FieldDealValue, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Thesis(); ok {
		_spec.SetField(analysisjob.FieldThesis, field.TypeString, value)
	}
	if _u.mutation.ThesisCleared() {
		_spec.ClearField(analysisjob.FieldThesis, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(analysisjob.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(analysisjob.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(analysisjob.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(analysisjob.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(analysisjob.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(analysisjob.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(analysisjob.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(analysisjob.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.FailedAgent(); ok {
		_spec.SetField(analysisjob.FieldFailedAgent, field.TypeString, value)
	}
	if _u.mutation.FailedAgentCleared() {
		_spec.ClearField(analysisjob.FieldFailedAgent, field.TypeString)
	}
	if value, ok := _u.mutation.ProgressPercent(); ok {
		_spec.SetField(analysisjob.FieldProgressPercent, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedProgressPercent(); ok {
		_spec.AddField(analysisjob.FieldProgressPercent, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CurrentAgent(); ok {
		_spec.SetField(analysisjob.FieldCurrentAgent, field.TypeString, value)
	}
	if _u.mutation.CurrentAgentCleared() {
		_spec.ClearField(analysisjob.FieldCurrentAgent, field.TypeString)
	}
	if value, ok := _u.mutation.SynthesizedData(); ok {
		_spec.SetField(analysisjob.FieldSynthesizedData, field.TypeJSON, value)
	}
	if _u.mutation.SynthesizedDataCleared() {
		_spec.ClearField(analysisjob.FieldSynthesizedData, field.TypeJSON)
	}
	if value, ok := _u.mutation.ValidationIssues(); ok {
		_spec.SetField(analysisjob.FieldValidationIssues, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedValidationIssues(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, analysisjob.FieldValidationIssues, value)
		})
	}
	if _u.mutation.ValidationIssuesCleared() {
		_spec.ClearField(analysisjob.FieldValidationIssues, field.TypeJSON)
	}
	if value, ok := _u.mutation.ArtifactPaths(); ok {
		_spec.SetField(analysisjob.FieldArtifactPaths, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedArtifactPaths(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, analysisjob.FieldArtifactPaths, value)
		})
	}
	if _u.mutation.ArtifactPathsCleared() {
		_spec.ClearField(analysisjob.FieldArtifactPaths, field.TypeJSON)
	}
	if value, ok := _u.mutation.PodID(); ok {
		_spec.SetField(analysisjob.FieldPodID, field.TypeString, value)
	}
	if _u.mutation.PodIDCleared() {
		_spec.ClearField(analysisjob.FieldPodID, field.TypeString)
	}
	if value, ok := _u.mutation.LastHeartbeatAt(); ok {
		_spec.SetField(analysisjob.FieldLastHeartbeatAt, field.TypeTime, value)
	}
	if _u.mutation.LastHeartbeatAtCleared() {
		_spec.ClearField(analysisjob.FieldLastHeartbeatAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(analysisjob.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(analysisjob.FieldDeletedAt, field.TypeTime)
	}
	if _u.mutation.AgentRecordsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   analysisjob.AgentRecordsTable,
			Columns: []string{analysisjob.AgentRecordsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentrecord.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAgentRecordsIDs(); len(nodes) > 0 && !_u.mutation.AgentRecordsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   analysisjob.AgentRecordsTable,
			Columns: []string{analysisjob.AgentRecordsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentrecord.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AgentRecordsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   analysisjob.AgentRecordsTable,
			Columns: []string{analysisjob.AgentRecordsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentrecord.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   analysisjob.EventsTable,
			Columns: []string{analysisjob.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(event.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEventsIDs(); len(nodes) > 0 && !_u.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   analysisjob.EventsTable,
			Columns: []string{analysisjob.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(event.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EventsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   analysisjob.EventsTable,
			Columns: []string{analysisjob.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(event.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &AnalysisJob{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{analysisjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
