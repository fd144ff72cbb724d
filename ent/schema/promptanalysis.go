package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PromptAnalysis holds the schema definition for the PromptAnalysis entity.
// One row per cross-project improvement run.
type PromptAnalysis struct {
	ent.Schema
}

// Fields of the PromptAnalysis.
func (PromptAnalysis) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("analysis_id").
			Unique().
			Immutable(),
		field.Strings("projects_analyzed").
			Optional(),
		field.String("sandbox_type"),
		field.Enum("status").
			Values("running", "completed", "failed").
			Default("running"),
		field.String("triggered_by").
			Default("manual"),
		field.Time("date_range_start").
			Optional().
			Nillable(),
		field.Time("date_range_end").
			Optional().
			Nillable(),
		field.Int("sessions_analyzed").
			Default(0),
		field.JSON("patterns", map[string]interface{}{}).
			Optional(),
		field.Float("quality_impact_estimate").
			Default(0),
		field.Text("notes").
			Optional().
			Comment("Diagnostic note when the run fails"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
	}
}

// Edges of the PromptAnalysis.
func (PromptAnalysis) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("proposals", PromptProposal.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the PromptAnalysis.
func (PromptAnalysis) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("created_at"),
	}
}
