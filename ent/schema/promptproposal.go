package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PromptProposal holds the schema definition for the PromptProposal entity.
type PromptProposal struct {
	ent.Schema
}

// Fields of the PromptProposal.
func (PromptProposal) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("proposal_id").
			Unique().
			Immutable(),
		field.String("analysis_id").
			Immutable(),
		field.String("prompt_file"),
		field.String("section_name"),
		field.Enum("change_type").
			Values("addition", "modification", "deletion"),
		field.Text("original_text").
			Optional(),
		field.Text("proposed_text"),
		field.Text("rationale"),
		field.JSON("evidence", []map[string]interface{}{}).
			Optional(),
		field.Int("confidence").
			Range(1, 10),
		field.Enum("status").
			Values("proposed", "accepted", "rejected", "implemented").
			Default("proposed"),
		field.Time("applied_at").
			Optional().
			Nillable(),
		field.String("applied_by").
			Optional().
			Nillable(),
		field.String("prompt_version_id").
			Optional().
			Nillable().
			Comment("PromptVersion created when the proposal was applied"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the PromptProposal.
func (PromptProposal) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("analysis", PromptAnalysis.Type).
			Ref("proposals").
			Field("analysis_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the PromptProposal.
func (PromptProposal) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("analysis_id"),
		index.Fields("analysis_id", "status"),
	}
}
