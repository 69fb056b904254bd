// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/dealdesk/dealdesk/ent/agentrecord"
	"github.com/dealdesk/dealdesk/ent/analysisjob"
	"github.com/dealdesk/dealdesk/ent/event"
)

// AnalysisJobCreate is the builder for creating a AnalysisJob entity.
type AnalysisJobCreate struct {
	config
	mutation *AnalysisJobMutation
	hooks    []Hook
}

// SetTarget sets the "target" field.
func (_c *AnalysisJobCreate) SetTarget(v string) *AnalysisJobCreate {
	_c.mutation.SetTarget(v)
	return _c
}

// SetAcquirer sets the "acquirer" field.
func (_c *AnalysisJobCreate) SetAcquirer(v string) *AnalysisJobCreate {
	_c.mutation.SetAcquirer(v)
	return _c
}

// SetNillableAcquirer sets the "acquirer" field if the given value is not nil.
func (_c *AnalysisJobCreate) SetNillableAcquirer(v *string) *AnalysisJobCreate {
	if v != nil {
		_c.SetAcquirer(*v)
	}
	return _c
}

// SetDealValue sets the "deal_value" field.
func (_c *AnalysisJobCreate) SetDealValue(v float64) *AnalysisJobCreate {
	_c.mutation.SetDealValue(v)
	return _c
}

// SetNillableDealValue sets the "deal_value" field if the given value is not nil.
func (_c *AnalysisJobCreate) SetNillableDealValue(v *float64) *AnalysisJobCreate {
	if v != nil {
		_c.SetDealValue(*v)
	}
	return _c
}

// SetThesis sets the "thesis" field.
func (_c *AnalysisJobCreate) SetThesis(v string) *AnalysisJobCreate {
	_c.mutation.SetThesis(v)
	return _c
}

// SetNillableThesis sets the "thesis" field if the given value is not nil.
func (_c *AnalysisJobCreate) SetNillableThesis(v *string) *AnalysisJobCreate {
	if v != nil {
		_c.SetThesis(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *AnalysisJobCreate) SetStatus(v analysisjob.Status) *AnalysisJobCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *AnalysisJobCreate) SetNillableStatus(v *analysisjob.Status) *AnalysisJobCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AnalysisJobCreate) SetCreatedAt(v time.Time) *AnalysisJobCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AnalysisJobCreate) SetNillableCreatedAt(v *time.Time) *AnalysisJobCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *AnalysisJobCreate) SetStartedAt(v time.Time) *AnalysisJobCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *AnalysisJobCreate) SetNillableStartedAt(v *time.Time) *AnalysisJobCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *AnalysisJobCreate) SetCompletedAt(v time.Time) *AnalysisJobCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *AnalysisJobCreate) SetNillableCompletedAt(v *time.Time) *AnalysisJobCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *AnalysisJobCreate) SetErrorMessage(v string) *AnalysisJobCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *AnalysisJobCreate) SetNillableErrorMessage(v *string) *AnalysisJobCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetFailedAgent sets the "failed_agent" field.
func (_c *AnalysisJobCreate) SetFailedAgent(v string) *AnalysisJobCreate {
	_c.mutation.SetFailedAgent(v)
	return _c
}

// SetNillableFailedAgent sets the "failed_agent" field if the given value is not nil.
func (_c *AnalysisJobCreate) SetNillableFailedAgent(v *string) *AnalysisJobCreate {
	if v != nil {
		_c.SetFailedAgent(*v)
	}
	return _c
}

// SetProgressPercent sets the "progress_percent" field.
func (_c *AnalysisJobCreate) SetProgressPercent(v int) *AnalysisJobCreate {
	_c.mutation.SetProgressPercent(v)
	return _c
}

// SetNillableProgressPercent sets the "progress_percent" field if the given value is not nil.
func (_c *AnalysisJobCreate) SetNillableProgressPercent(v *int) *AnalysisJobCreate {
	if v != nil {
		_c.SetProgressPercent(*v)
	}
	return _c
}

// SetCurrentAgent sets the "current_agent" field.
func (_c *AnalysisJobCreate) SetCurrentAgent(v string) *AnalysisJobCreate {
	_c.mutation.SetCurrentAgent(v)
	return _c
}

// SetNillableCurrentAgent sets the "current_agent" field if the given value is not nil.
func (_c *AnalysisJobCreate) SetNillableCurrentAgent(v *string) *AnalysisJobCreate {
	if v != nil {
		_c.SetCurrentAgent(*v)
	}
	return _c
}

// SetSynthesizedData sets the "synthesized_data" field.
func (_c *AnalysisJobCreate) SetSynthesizedData(v map[string]interface{}) *AnalysisJobCreate {
	_c.mutation.SetSynthesizedData(v)
	return _c
}

// SetValidationIssues sets the "validation_issues" field.
func (_c *AnalysisJobCreate) SetValidationIssues(v []map[string]interface{}) *AnalysisJobCreate {
	_c.mutation.SetValidationIssues(v)
	return _c
}

// SetArtifactPaths sets the "artifact_paths" field.
func (_c *AnalysisJobCreate) SetArtifactPaths(v []string) *AnalysisJobCreate {
	_c.mutation.SetArtifactPaths(v)
	return _c
}

// SetPodID sets the "pod_id" field.
func (_c *AnalysisJobCreate) SetPodID(v string) *AnalysisJobCreate {
	_c.mutation.SetPodID(v)
	return _c
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_c *AnalysisJobCreate) SetNillablePodID(v *string) *AnalysisJobCreate {
	if v != nil {
		_c.SetPodID(*v)
	}
	return _c
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (_c *AnalysisJobCreate) SetLastHeartbeatAt(v time.Time) *AnalysisJobCreate {
	_c.mutation.SetLastHeartbeatAt(v)
	return _c
}

// SetNillableLastHeartbeatAt sets the "last_heartbeat_at" field if the given value is not nil.
func (_c *AnalysisJobCreate) SetNillableLastHeartbeatAt(v *time.Time) *AnalysisJobCreate {
	if v != nil {
		_c.SetLastHeartbeatAt(*v)
	}
	return _c
}

// SetDeletedAt sets the "deleted_at" field.
func (_c *AnalysisJobCreate) SetDeletedAt(v time.Time) *AnalysisJobCreate {
	_c.mutation.SetDeletedAt(v)
	return _c
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_c *AnalysisJobCreate) SetNillableDeletedAt(v *time.Time) *AnalysisJobCreate {
	if v != nil {
		_c.SetDeletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AnalysisJobCreate) SetID(v string) *AnalysisJobCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddAgentRecordIDs adds the "agent_records" edge to the AgentRecord entity by IDs.
func (_c *AnalysisJobCreate) AddAgentRecordIDs(ids ...string) *AnalysisJobCreate {
	_c.mutation.AddAgentRecordIDs(ids...)
	return _c
}

// AddAgentRecords adds the "agent_records" edges to the AgentRecord entity.
func (_c *AnalysisJobCreate) AddAgentRecords(v ...*AgentRecord) *AnalysisJobCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddAgentRecordIDs(ids...)
}

// AddEventIDs adds the "events" edge to the Event entity by IDs.
func (_c *AnalysisJobCreate) AddEventIDs(ids ...int) *AnalysisJobCreate {
	_c.mutation.AddEventIDs(ids...)
	return _c
}

// AddEvents adds the "events" edges to the Event entity.
func (_c *AnalysisJobCreate) AddEvents(v ...*Event) *AnalysisJobCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddEventIDs(ids...)
}

// Mutation returns the AnalysisJobMutation object of the builder.
func (_c *AnalysisJobCreate) Mutation() *AnalysisJobMutation {
	return _c.mutation
}

// Save creates the AnalysisJob in the database.
func (_c *AnalysisJobCreate) Save(ctx context.Context) (*AnalysisJob, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AnalysisJobCreate) SaveX(ctx context.Context) *AnalysisJob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AnalysisJobCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AnalysisJobCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AnalysisJobCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := analysisjob.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := analysisjob.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ProgressPercent(); !ok {
		v := analysisjob.DefaultProgressPercent
		_c.mutation.SetProgressPercent(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AnalysisJobCreate) check() error {
	if _, ok := _c.mutation.Target(); !ok {
		return &ValidationError{Name: "target", err: errors.New(`ent: missing required field "AnalysisJob.target"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "AnalysisJob.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := analysisjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AnalysisJob.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "AnalysisJob.created_at"`)}
	}
	if _, ok := _c.mutation.ProgressPercent(); !ok {
		return &ValidationError{Name: "progress_percent", err: errors.New(`ent: missing required field "AnalysisJob.progress_percent"`)}
	}
	return nil
}

func (_c *AnalysisJobCreate) sqlSave(ctx context.Context) (*AnalysisJob, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected AnalysisJob.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AnalysisJobCreate) createSpec() (*AnalysisJob, *sqlgraph.CreateSpec) {
	var (
		_node = &AnalysisJob{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(analysisjob.Table, sqlgraph.NewFieldSpec(analysisjob.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Target(); ok {
		_spec.SetField(analysisjob.FieldTarget, field.TypeString, value)
		_node.Target = value
	}
	if value, ok := _c.mutation.Acquirer(); ok {
		_spec.SetField(analysisjob.FieldAcquirer, field.TypeString, value)
		_node.Acquirer = &value
	}
	if value, ok := _c.mutation.DealValue(); ok {
		_spec.SetField(analysisjob.FieldDealValue, field.TypeFloat64, value)
		_node.DealValue = &value
	}
	if value, ok := _c.mutation.Thesis(); ok {
		_spec.SetField(analysisjob.FieldThesis, field.TypeString, value)
		_node.Thesis = &value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(analysisjob.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(analysisjob.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(analysisjob.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(analysisjob.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(analysisjob.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.FailedAgent(); ok {
		_spec.SetField(analysisjob.FieldFailedAgent, field.TypeString, value)
		_node.FailedAgent = &value
	}
	if value, ok := _c.mutation.ProgressPercent(); ok {
		_spec.SetField(analysisjob.FieldProgressPercent, field.TypeInt, value)
		_node.ProgressPercent = value
	}
	if value, ok := _c.mutation.CurrentAgent(); ok {
		_spec.SetField(analysisjob.FieldCurrentAgent, field.TypeString, value)
		_node.CurrentAgent = &value
	}
	if value, ok := _c.mutation.SynthesizedData(); ok {
		_spec.SetField(analysisjob.FieldSynthesizedData, field.TypeJSON, value)
		_node.SynthesizedData = value
	}
	if value, ok := _c.mutation.ValidationIssues(); ok {
		_spec.SetField(analysisjob.FieldValidationIssues, field.TypeJSON, value)
		_node.ValidationIssues = value
	}
	if value, ok := _c.mutation.ArtifactPaths(); ok {
		_spec.SetField(analysisjob.FieldArtifactPaths, field.TypeJSON, value)
		_node.ArtifactPaths = value
	}
	if value, ok := _c.mutation.PodID(); ok {
		_spec.SetField(analysisjob.FieldPodID, field.TypeString, value)
		_node.PodID = &value
	}
	if value, ok := _c.mutation.LastHeartbeatAt(); ok {
		_spec.SetField(analysisjob.FieldLastHeartbeatAt, field.TypeTime, value)
		_node.LastHeartbeatAt = &value
	}
	if value, ok := _c.mutation.DeletedAt(); ok {
		_spec.SetField(analysisjob.FieldDeletedAt, field.TypeTime, value)
		_node.DeletedAt = &value
	}
	if nodes := _c.mutation.AgentRecordsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.EventsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// AnalysisJobCreateBulk is the builder for creating many AnalysisJob entities in bulk.
type AnalysisJobCreateBulk struct {
	config
	err      error
	builders []*AnalysisJobCreate
}

// Save creates the AnalysisJob entities in the database.
func (_c *AnalysisJobCreateBulk) Save(ctx context.Context) ([]*AnalysisJob, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AnalysisJob, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AnalysisJobMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *AnalysisJobCreateBulk) SaveX(ctx context.Context) []*AnalysisJob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AnalysisJobCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AnalysisJobCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
