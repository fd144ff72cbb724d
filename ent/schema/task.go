package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Task holds the schema definition for the Task entity.
type Task struct {
	ent.Schema
}

// Fields of the Task.
func (Task) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("task_id").
			Unique().
			Immutable(),
		field.String("epic_id").
			Immutable(),
		field.String("project_id").
			Immutable().
			Comment("Denormalized for progress queries"),
		field.Text("description"),
		field.Text("action").
			Optional().
			Comment("Concrete instruction text for the agent"),
		field.Enum("status").
			Values("pending", "in_progress", "done").
			Default("pending"),
		field.Int("sort_order").
			Default(0),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Task.
func (Task) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("epic", Epic.Type).
			Ref("tasks").
			Field("epic_id").
			Unique().
			Required().
			Immutable(),
		edge.From("project", Project.Type).
			Ref("tasks").
			Field("project_id").
			Unique().
			Required().
			Immutable(),
		edge.To("tests", TestCase.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Task.
func (Task) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("epic_id"),
		index.Fields("project_id", "status"),
		index.Fields("epic_id", "sort_order"),
	}
}
