package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AgentSession holds the schema definition for the AgentSession entity.
// One row per agent run; session numbers are dense from 0 within a project
// and guarded by a unique (project_id, session_number) index.
type AgentSession struct {
	ent.Schema
}

// Fields of the AgentSession.
func (AgentSession) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("session_id").
			Unique().
			Immutable(),
		field.String("project_id").
			Immutable(),
		field.Int("session_number").
			Immutable().
			Comment("0 is reserved for the initializer"),
		field.Enum("type").
			Values("initializer", "coding", "review"),
		field.String("model"),
		field.Enum("status").
			Values("pending", "running", "completed", "error", "interrupted").
			Default("pending"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("started_at").
			Optional().
			Nillable(),
		field.Time("ended_at").
			Optional().
			Nillable(),
		field.String("error_message").
			Optional().
			Nillable(),
		field.String("interruption_reason").
			Optional().
			Nillable(),
		field.JSON("metrics", map[string]interface{}{}).
			Optional().
			Comment("Runner summary: tool counts, tokens, cost, duration"),
		field.Int("max_iterations").
			Optional().
			Nillable().
			Comment("Advisory; nil or 0 means unlimited"),
	}
}

// Edges of the AgentSession.
func (AgentSession) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("project", Project.Type).
			Ref("sessions").
			Field("project_id").
			Unique().
			Required().
			Immutable(),
		edge.To("quality_checks", QualityCheck.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the AgentSession.
func (AgentSession) Indexes() []ent.Index {
	return []ent.Index{
		// Guards concurrent number allocation
		index.Fields("project_id", "session_number").
			Unique(),
		index.Fields("project_id", "status"),
		index.Fields("status", "started_at"),
	}
}
