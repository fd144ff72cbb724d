package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// QualityCheck holds the schema definition for the QualityCheck entity.
// Each session carries at most one quick and one deep check.
type QualityCheck struct {
	ent.Schema
}

// Fields of the QualityCheck.
func (QualityCheck) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("check_id").
			Unique().
			Immutable(),
		field.String("session_id").
			Immutable(),
		field.Enum("kind").
			Values("quick", "deep"),
		field.Enum("status").
			Values("completed", "failed").
			Default("completed").
			Comment("failed marks a deep review whose response did not parse"),
		field.Int("overall_rating").
			Range(1, 10),
		field.JSON("metrics", map[string]interface{}{}).
			Optional(),
		field.Strings("critical_issues").
			Optional(),
		field.Strings("warnings").
			Optional(),
		field.Text("review_text").
			Optional().
			Nillable().
			Comment("Deep review narrative"),
		field.Strings("prompt_improvements").
			Optional().
			Comment("Deep review recommendations consumed by the analyzer"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the QualityCheck.
func (QualityCheck) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("session", AgentSession.Type).
			Ref("quality_checks").
			Field("session_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the QualityCheck.
func (QualityCheck) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id", "kind").
			Unique(),
		index.Fields("kind", "created_at"),
	}
}
