package schema

import (
	"regexp"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// nameRe constrains project names to filesystem- and URL-safe identifiers.
var nameRe = regexp.MustCompile(`^[a-z0-9_-]+$`)

// Project holds the schema definition for the Project entity. A project is
// the root of the work tree (epics, tasks, tests) and owns all agent sessions.
type Project struct {
	ent.Schema
}

// Fields of the Project.
func (Project) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("project_id").
			Unique().
			Immutable(),
		field.String("name").
			Unique().
			Match(nameRe),
		field.Text("spec_content").
			Optional().
			Comment("Specification text the initializer works from"),
		field.String("spec_path").
			Optional().
			Comment("Source path the spec was loaded from, if any"),
		field.String("local_path").
			Optional().
			Comment("Workspace directory on disk"),
		field.JSON("settings", map[string]interface{}{}).
			Optional().
			Comment("sandbox_type, model overrides, max_iterations, auto_continue"),
		field.Bool("env_configured").
			Default(false),
		field.JSON("metadata", map[string]interface{}{}).
			Optional().
			Comment("Free-form blob; test_coverage report lives here"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
		field.Time("completed_at").
			Optional().
			Nillable(),
	}
}

// Edges of the Project.
func (Project) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("epics", Epic.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("tasks", Task.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("sessions", AgentSession.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Project.
func (Project) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("name").
			Unique(),
		index.Fields("created_at"),
	}
}
