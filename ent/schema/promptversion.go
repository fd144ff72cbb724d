package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PromptVersion holds the schema definition for the PromptVersion entity.
// A prompt file has at most one active version; activation deactivates
// siblings in the same transaction (see services.PromptVersionService).
type PromptVersion struct {
	ent.Schema
}

// Fields of the PromptVersion.
func (PromptVersion) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("version_id").
			Unique().
			Immutable(),
		field.String("prompt_file"),
		field.String("version_label"),
		field.Text("content"),
		field.Bool("active").
			Default(false),
		field.Bool("is_default").
			Default(false),
		field.JSON("performance", map[string]interface{}{}).
			Optional().
			Comment("Aggregated session quality while this version was active"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the PromptVersion.
func (PromptVersion) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("prompt_file"),
		index.Fields("prompt_file", "version_label").
			Unique(),
	}
}
