package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TestCase holds the schema definition for the TestCase entity. Tests hang
// off tasks and record the last run outcome reported by a coding session.
type TestCase struct {
	ent.Schema
}

// Fields of the TestCase.
func (TestCase) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("test_id").
			Unique().
			Immutable(),
		field.String("task_id").
			Immutable(),
		field.Text("description"),
		field.Enum("status").
			Values("pending", "passing", "failing").
			Default("pending"),
		field.Text("last_result").
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the TestCase.
func (TestCase) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("task", Task.Type).
			Ref("tests").
			Field("task_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the TestCase.
func (TestCase) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("task_id"),
	}
}
