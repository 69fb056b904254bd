package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AgentRecord holds the schema definition for the AgentRecord entity.
// One append-only row per agent completion within a job. Never mutated
// after the terminal status is written.
type AgentRecord struct {
	ent.Schema
}

// Fields of the AgentRecord.
func (AgentRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("record_id").
			Unique().
			Immutable(),
		field.String("job_id").
			Immutable(),
		field.String("agent_name").
			Immutable().
			Comment("e.g. 'financial-analyst', 'legal-counsel'"),
		field.Enum("status").
			Values("ok", "warning", "error"),
		field.Time("started_at"),
		field.Time("completed_at"),
		field.Int("duration_ms").
			Optional().
			Nillable(),
		field.JSON("payload", map[string]interface{}{}).
			Optional().
			Comment("Structured agent output; plain records only, no provider-native tables"),
		field.JSON("warnings", []string{}).
			Optional(),
		field.JSON("errors", []string{}).
			Optional(),
		field.JSON("recommendations", []string{}).
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the AgentRecord.
func (AgentRecord) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("job", AnalysisJob.Type).
			Ref("agent_records").
			Field("job_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the AgentRecord.
func (AgentRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("job_id", "agent_name").
			Unique(),
		index.Fields("job_id"),
	}
}
