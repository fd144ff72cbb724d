// Code generated by ent, DO NOT EDIT.

package project

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/autoforge-dev/autoforge/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Project {
	return predicate.Project(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Project {
	return predicate.Project(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Project {
	return predicate.Project(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Project {
	return predicate.Project(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Project {
	return predicate.Project(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Project {
	return predicate.Project(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Project {
	return predicate.Project(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Project {
	return predicate.Project(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Project {
	return predicate.Project(sql.FieldContainsFold(FieldID, id))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldName, v))
}

// SpecContent applies equality check predicate on the "spec_content" field. It's identical to SpecContentEQ.
func SpecContent(v string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldSpecContent, v))
}

// SpecPath applies equality check predicate on the "spec_path" field. It's identical to SpecPathEQ.
func SpecPath(v string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldSpecPath, v))
}

// LocalPath applies equality check predicate on the "local_path" field. It's identical to LocalPathEQ.
func LocalPath(v string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldLocalPath, v))
}

// EnvConfigured applies equality check predicate on the "env_configured" field. It's identical to EnvConfiguredEQ.
func EnvConfigured(v bool) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldEnvConfigured, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldUpdatedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldCompletedAt, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Project {
	return predicate.Project(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Project {
	return predicate.Project(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Project {
	return predicate.Project(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Project {
	return predicate.Project(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Project {
	return predicate.Project(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Project {
	return predicate.Project(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Project {
	return predicate.Project(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Project {
	return predicate.Project(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Project {
	return predicate.Project(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Project {
	return predicate.Project(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Project {
	return predicate.Project(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Project {
	return predicate.Project(sql.FieldContainsFold(FieldName, v))
}

// SpecContentEQ applies the EQ predicate on the "spec_content" field.
func SpecContentEQ(v string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldSpecContent, v))
}

// SpecContentNEQ applies the NEQ predicate on the "spec_content" field.
func SpecContentNEQ(v string) predicate.Project {
	return predicate.Project(sql.FieldNEQ(FieldSpecContent, v))
}

// SpecContentIn applies the In predicate on the "spec_content" field.
func SpecContentIn(vs ...string) predicate.Project {
	return predicate.Project(sql.FieldIn(FieldSpecContent, vs...))
}

// SpecContentNotIn applies the NotIn predicate on the "spec_content" field.
func SpecContentNotIn(vs ...string) predicate.Project {
	return predicate.Project(sql.FieldNotIn(FieldSpecContent, vs...))
}

// SpecContentGT applies the GT predicate on the "spec_content" field.
func SpecContentGT(v string) predicate.Project {
	return predicate.Project(sql.FieldGT(FieldSpecContent, v))
}

// SpecContentGTE applies the GTE predicate on the "spec_content" field.
func SpecContentGTE(v string) predicate.Project {
	return predicate.Project(sql.FieldGTE(FieldSpecContent, v))
}

// SpecContentLT applies the LT predicate on the "spec_content" field.
func SpecContentLT(v string) predicate.Project {
	return predicate.Project(sql.FieldLT(FieldSpecContent, v))
}

// SpecContentLTE applies the LTE predicate on the "spec_content" field.
func SpecContentLTE(v string) predicate.Project {
	return predicate.Project(sql.FieldLTE(FieldSpecContent, v))
}

// SpecContentContains applies the Contains predicate on the "spec_content" field.
func SpecContentContains(v string) predicate.Project {
	return predicate.Project(sql.FieldContains(FieldSpecContent, v))
}

// SpecContentHasPrefix applies the HasPrefix predicate on the "spec_content" field.
func SpecContentHasPrefix(v string) predicate.Project {
	return predicate.Project(sql.FieldHasPrefix(FieldSpecContent, v))
}

// SpecContentHasSuffix applies the HasSuffix predicate on the "spec_content" field.
func SpecContentHasSuffix(v string) predicate.Project {
	return predicate.Project(sql.FieldHasSuffix(FieldSpecContent, v))
}

// SpecContentIsNil applies the IsNil predicate on the "spec_content" field.
func SpecContentIsNil() predicate.Project {
	return predicate.Project(sql.FieldIsNull(FieldSpecContent))
}

// SpecContentNotNil applies the NotNil predicate on the "spec_content" field.
func SpecContentNotNil() predicate.Project {
	return predicate.Project(sql.FieldNotNull(FieldSpecContent))
}

// SpecContentEqualFold applies the EqualFold predicate on the "spec_content" field.
func SpecContentEqualFold(v string) predicate.Project {
	return predicate.Project(sql.FieldEqualFold(FieldSpecContent, v))
}

// SpecContentContainsFold applies the ContainsFold predicate on the "spec_content" field.
func SpecContentContainsFold(v string) predicate.Project {
	return predicate.Project(sql.FieldContainsFold(FieldSpecContent, v))
}

// SpecPathEQ applies the EQ predicate on the "spec_path" field.
func SpecPathEQ(v string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldSpecPath, v))
}

// SpecPathNEQ applies the NEQ predicate on the "spec_path" field.
func SpecPathNEQ(v string) predicate.Project {
	return predicate.Project(sql.FieldNEQ(FieldSpecPath, v))
}

// SpecPathIn applies the In predicate on the "spec_path" field.
func SpecPathIn(vs ...string) predicate.Project {
	return predicate.Project(sql.FieldIn(FieldSpecPath, vs...))
}

// SpecPathNotIn applies the NotIn predicate on the "spec_path" field.
func SpecPathNotIn(vs ...string) predicate.Project {
	return predicate.Project(sql.FieldNotIn(FieldSpecPath, vs...))
}

// SpecPathGT applies the GT predicate on the "spec_path" field.
func SpecPathGT(v string) predicate.Project {
	return predicate.Project(sql.FieldGT(FieldSpecPath, v))
}

// SpecPathGTE applies the GTE predicate on the "spec_path" field.
func SpecPathGTE(v string) predicate.Project {
	return predicate.Project(sql.FieldGTE(FieldSpecPath, v))
}

// SpecPathLT applies the LT predicate on the "spec_path" field.
func SpecPathLT(v string) predicate.Project {
	return predicate.Project(sql.FieldLT(FieldSpecPath, v))
}

// SpecPathLTE applies the LTE predicate on the "spec_path" field.
func SpecPathLTE(v string) predicate.Project {
	return predicate.Project(sql.FieldLTE(FieldSpecPath, v))
}

// SpecPathContains applies the Contains predicate on the "spec_path" field.
func SpecPathContains(v string) predicate.Project {
	return predicate.Project(sql.FieldContains(FieldSpecPath, v))
}

// SpecPathHasPrefix applies the HasPrefix predicate on the "spec_path" field.
func SpecPathHasPrefix(v string) predicate.Project {
	return predicate.Project(sql.FieldHasPrefix(FieldSpecPath, v))
}

// SpecPathHasSuffix applies the HasSuffix predicate on the "spec_path" field.
func SpecPathHasSuffix(v string) predicate.Project {
	return predicate.Project(sql.FieldHasSuffix(FieldSpecPath, v))
}

// SpecPathIsNil applies the IsNil predicate on the "spec_path" field.
func SpecPathIsNil() predicate.Project {
	return predicate.Project(sql.FieldIsNull(FieldSpecPath))
}

// SpecPathNotNil applies the NotNil predicate on the "spec_path" field.
func SpecPathNotNil() predicate.Project {
	return predicate.Project(sql.FieldNotNull(FieldSpecPath))
}

// SpecPathEqualFold applies the EqualFold predicate on the "spec_path" field.
func SpecPathEqualFold(v string) predicate.Project {
	return predicate.Project(sql.FieldEqualFold(FieldSpecPath, v))
}

// SpecPathContainsFold applies the ContainsFold predicate on the "spec_path" field.
func SpecPathContainsFold(v string) predicate.Project {
	return predicate.Project(sql.FieldContainsFold(FieldSpecPath, v))
}

// LocalPathEQ applies the EQ predicate on the "local_path" field.
func LocalPathEQ(v string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldLocalPath, v))
}

// LocalPathNEQ applies the NEQ predicate on the "local_path" field.
func LocalPathNEQ(v string) predicate.Project {
	return predicate.Project(sql.FieldNEQ(FieldLocalPath, v))
}

// LocalPathIn applies the In predicate on the "local_path" field.
func LocalPathIn(vs ...string) predicate.Project {
	return predicate.Project(sql.FieldIn(FieldLocalPath, vs...))
}

// LocalPathNotIn applies the NotIn predicate on the "local_path" field.
func LocalPathNotIn(vs ...string) predicate.Project {
	return predicate.Project(sql.FieldNotIn(FieldLocalPath, vs...))
}

// LocalPathGT applies the GT predicate on the "local_path" field.
func LocalPathGT(v string) predicate.Project {
	return predicate.Project(sql.FieldGT(FieldLocalPath, v))
}

// LocalPathGTE applies the GTE predicate on the "local_path" field.
func LocalPathGTE(v string) predicate.Project {
	return predicate.Project(sql.FieldGTE(FieldLocalPath, v))
}

// LocalPathLT applies the LT predicate on the "local_path" field.
func LocalPathLT(v string) predicate.Project {
	return predicate.Project(sql.FieldLT(FieldLocalPath, v))
}

// LocalPathLTE applies the LTE predicate on the "local_path" field.
func LocalPathLTE(v string) predicate.Project {
	return predicate.Project(sql.FieldLTE(FieldLocalPath, v))
}

// LocalPathContains applies the Contains predicate on the "local_path" field.
func LocalPathContains(v string) predicate.Project {
	return predicate.Project(sql.FieldContains(FieldLocalPath, v))
}

// LocalPathHasPrefix applies the HasPrefix predicate on the "local_path" field.
func LocalPathHasPrefix(v string) predicate.Project {
	return predicate.Project(sql.FieldHasPrefix(FieldLocalPath, v))
}

// LocalPathHasSuffix applies the HasSuffix predicate on the "local_path" field.
func LocalPathHasSuffix(v string) predicate.Project {
	return predicate.Project(sql.FieldHasSuffix(FieldLocalPath, v))
}

// LocalPathIsNil applies the IsNil predicate on the "local_path" field.
func LocalPathIsNil() predicate.Project {
	return predicate.Project(sql.FieldIsNull(FieldLocalPath))
}

// LocalPathNotNil applies the NotNil predicate on the "local_path" field.
func LocalPathNotNil() predicate.Project {
	return predicate.Project(sql.FieldNotNull(FieldLocalPath))
}

// LocalPathEqualFold applies the EqualFold predicate on the "local_path" field.
func LocalPathEqualFold(v string) predicate.Project {
	return predicate.Project(sql.FieldEqualFold(FieldLocalPath, v))
}

// LocalPathContainsFold applies the ContainsFold predicate on the "local_path" field.
func LocalPathContainsFold(v string) predicate.Project {
	return predicate.Project(sql.FieldContainsFold(FieldLocalPath, v))
}

// SettingsIsNil applies the IsNil predicate on the "settings" field.
func SettingsIsNil() predicate.Project {
	return predicate.Project(sql.FieldIsNull(FieldSettings))
}

// SettingsNotNil applies the NotNil predicate on the "settings" field.
func SettingsNotNil() predicate.Project {
	return predicate.Project(sql.FieldNotNull(FieldSettings))
}

// EnvConfiguredEQ applies the EQ predicate on the "env_configured" field.
func EnvConfiguredEQ(v bool) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldEnvConfigured, v))
}

// EnvConfiguredNEQ applies the NEQ predicate on the "env_configured" field.
func EnvConfiguredNEQ(v bool) predicate.Project {
	return predicate.Project(sql.FieldNEQ(FieldEnvConfigured, v))
}

// MetadataIsNil applies the IsNil predicate on the "metadata" field.
func MetadataIsNil() predicate.Project {
	return predicate.Project(sql.FieldIsNull(FieldMetadata))
}

// MetadataNotNil applies the NotNil predicate on the "metadata" field.
func MetadataNotNil() predicate.Project {
	return predicate.Project(sql.FieldNotNull(FieldMetadata))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Project {
	return predicate.Project(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Project {
	return predicate.Project(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Project {
	return predicate.Project(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Project {
	return predicate.Project(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldLTE(FieldUpdatedAt, v))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.Project {
	return predicate.Project(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.Project {
	return predicate.Project(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.Project {
	return predicate.Project(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.Project {
	return predicate.Project(sql.FieldNotNull(FieldCompletedAt))
}

// HasEpics applies the HasEdge predicate on the "epics" edge.
func HasEpics() predicate.Project {
	return predicate.Project(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, EpicsTable, EpicsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasEpicsWith applies the HasEdge predicate on the "epics" edge with a given conditions (other predicates).
func HasEpicsWith(preds ...predicate.Epic) predicate.Project {
	return predicate.Project(func(s *sql.Selector) {
		step := newEpicsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasTasks applies the HasEdge predicate on the "tasks" edge.
func HasTasks() predicate.Project {
	return predicate.Project(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, TasksTable, TasksColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTasksWith applies the HasEdge predicate on the "tasks" edge with a given conditions (other predicates).
func HasTasksWith(preds ...predicate.Task) predicate.Project {
	return predicate.Project(func(s *sql.Selector) {
		step := newTasksStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasSessions applies the HasEdge predicate on the "sessions" edge.
func HasSessions() predicate.Project {
	return predicate.Project(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, SessionsTable, SessionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSessionsWith applies the HasEdge predicate on the "sessions" edge with a given conditions (other predicates).
func HasSessionsWith(preds ...predicate.AgentSession) predicate.Project {
	return predicate.Project(func(s *sql.Selector) {
		step := newSessionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Project) predicate.Project {
	return predicate.Project(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Project) predicate.Project {
	return predicate.Project(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Project) predicate.Project {
	return predicate.Project(sql.NotPredicates(p))
}
