// Code generated by ent, DO NOT EDIT.

package testcase

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/autoforge-dev/autoforge/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.TestCase {
	return predicate.TestCase(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.TestCase {
	return predicate.TestCase(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.TestCase {
	return predicate.TestCase(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.TestCase {
	return predicate.TestCase(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.TestCase {
	return predicate.TestCase(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.TestCase {
	return predicate.TestCase(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.TestCase {
	return predicate.TestCase(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.TestCase {
	return predicate.TestCase(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.TestCase {
	return predicate.TestCase(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.TestCase {
	return predicate.TestCase(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.TestCase {
	return predicate.TestCase(sql.FieldContainsFold(FieldID, id))
}

// TaskID applies equality check predicate on the "task_id" field. It's identical to TaskIDEQ.
func TaskID(v string) predicate.TestCase {
	return predicate.TestCase(sql.FieldEQ(FieldTaskID, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.TestCase {
	return predicate.TestCase(sql.FieldEQ(FieldDescription, v))
}

// LastResult applies equality check predicate on the "last_result" field. It's identical to LastResultEQ.
func LastResult(v string) predicate.TestCase {
	return predicate.TestCase(sql.FieldEQ(FieldLastResult, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.TestCase {
	return predicate.TestCase(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.TestCase {
	return predicate.TestCase(sql.FieldEQ(FieldUpdatedAt, v))
}

// TaskIDEQ applies the EQ predicate on the "task_id" field.
func TaskIDEQ(v string) predicate.TestCase {
	return predicate.TestCase(sql.FieldEQ(FieldTaskID, v))
}

// TaskIDNEQ applies the NEQ predicate on the "task_id" field.
func TaskIDNEQ(v string) predicate.TestCase {
	return predicate.TestCase(sql.FieldNEQ(FieldTaskID, v))
}

// TaskIDIn applies the In predicate on the "task_id" field.
func TaskIDIn(vs ...string) predicate.TestCase {
	return predicate.TestCase(sql.FieldIn(FieldTaskID, vs...))
}

// TaskIDNotIn applies the NotIn predicate on the "task_id" field.
func TaskIDNotIn(vs ...string) predicate.TestCase {
	return predicate.TestCase(sql.FieldNotIn(FieldTaskID, vs...))
}

// TaskIDGT applies the GT predicate on the "task_id" field.
func TaskIDGT(v string) predicate.TestCase {
	return predicate.TestCase(sql.FieldGT(FieldTaskID, v))
}

// TaskIDGTE applies the GTE predicate on the "task_id" field.
func TaskIDGTE(v string) predicate.TestCase {
	return predicate.TestCase(sql.FieldGTE(FieldTaskID, v))
}

// TaskIDLT applies the LT predicate on the "task_id" field.
func TaskIDLT(v string) predicate.TestCase {
	return predicate.TestCase(sql.FieldLT(FieldTaskID, v))
}

// TaskIDLTE applies the LTE predicate on the "task_id" field.
func TaskIDLTE(v string) predicate.TestCase {
	return predicate.TestCase(sql.FieldLTE(FieldTaskID, v))
}

// TaskIDContains applies the Contains predicate on the "task_id" field.
func TaskIDContains(v string) predicate.TestCase {
	return predicate.TestCase(sql.FieldContains(FieldTaskID, v))
}

// TaskIDHasPrefix applies the HasPrefix predicate on the "task_id" field.
func TaskIDHasPrefix(v string) predicate.TestCase {
	return predicate.TestCase(sql.FieldHasPrefix(FieldTaskID, v))
}

// TaskIDHasSuffix applies the HasSuffix predicate on the "task_id" field.
func TaskIDHasSuffix(v string) predicate.TestCase {
	return predicate.TestCase(sql.FieldHasSuffix(FieldTaskID, v))
}

// TaskIDEqualFold applies the EqualFold predicate on the "task_id" field.
func TaskIDEqualFold(v string) predicate.TestCase {
	return predicate.TestCase(sql.FieldEqualFold(FieldTaskID, v))
}

// TaskIDContainsFold applies the ContainsFold predicate on the "task_id" field.
func TaskIDContainsFold(v string) predicate.TestCase {
	return predicate.TestCase(sql.FieldContainsFold(FieldTaskID, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.TestCase {
	return predicate.TestCase(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.TestCase {
	return predicate.TestCase(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.TestCase {
	return predicate.TestCase(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.TestCase {
	return predicate.TestCase(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.TestCase {
	return predicate.TestCase(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.TestCase {
	return predicate.TestCase(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.TestCase {
	return predicate.TestCase(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.TestCase {
	return predicate.TestCase(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.TestCase {
	return predicate.TestCase(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.TestCase {
	return predicate.TestCase(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.TestCase {
	return predicate.TestCase(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.TestCase {
	return predicate.TestCase(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.TestCase {
	return predicate.TestCase(sql.FieldContainsFold(FieldDescription, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.TestCase {
	return predicate.TestCase(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.TestCase {
	return predicate.TestCase(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.TestCase {
	return predicate.TestCase(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.TestCase {
	return predicate.TestCase(sql.FieldNotIn(FieldStatus, vs...))
}

// LastResultEQ applies the EQ predicate on the "last_result" field.
func LastResultEQ(v string) predicate.TestCase {
	return predicate.TestCase(sql.FieldEQ(FieldLastResult, v))
}

// LastResultNEQ applies the NEQ predicate on the "last_result" field.
func LastResultNEQ(v string) predicate.TestCase {
	return predicate.TestCase(sql.FieldNEQ(FieldLastResult, v))
}

// LastResultIn applies the In predicate on the "last_result" field.
func LastResultIn(vs ...string) predicate.TestCase {
	return predicate.TestCase(sql.FieldIn(FieldLastResult, vs...))
}

// LastResultNotIn applies the NotIn predicate on the "last_result" field.
func LastResultNotIn(vs ...string) predicate.TestCase {
	return predicate.TestCase(sql.FieldNotIn(FieldLastResult, vs...))
}

// LastResultGT applies the GT predicate on the "last_result" field.
func LastResultGT(v string) predicate.TestCase {
	return predicate.TestCase(sql.FieldGT(FieldLastResult, v))
}

// LastResultGTE applies the GTE predicate on the "last_result" field.
func LastResultGTE(v string) predicate.TestCase {
	return predicate.TestCase(sql.FieldGTE(FieldLastResult, v))
}

// LastResultLT applies the LT predicate on the "last_result" field.
func LastResultLT(v string) predicate.TestCase {
	return predicate.TestCase(sql.FieldLT(FieldLastResult, v))
}

// LastResultLTE applies the LTE predicate on the "last_result" field.
func LastResultLTE(v string) predicate.TestCase {
	return predicate.TestCase(sql.FieldLTE(FieldLastResult, v))
}

// LastResultContains applies the Contains predicate on the "last_result" field.
func LastResultContains(v string) predicate.TestCase {
	return predicate.TestCase(sql.FieldContains(FieldLastResult, v))
}

// LastResultHasPrefix applies the HasPrefix predicate on the "last_result" field.
func LastResultHasPrefix(v string) predicate.TestCase {
	return predicate.TestCase(sql.FieldHasPrefix(FieldLastResult, v))
}

// LastResultHasSuffix applies the HasSuffix predicate on the "last_result" field.
func LastResultHasSuffix(v string) predicate.TestCase {
	return predicate.TestCase(sql.FieldHasSuffix(FieldLastResult, v))
}

// LastResultIsNil applies the IsNil predicate on the "last_result" field.
func LastResultIsNil() predicate.TestCase {
	return predicate.TestCase(sql.FieldIsNull(FieldLastResult))
}

// LastResultNotNil applies the NotNil predicate on the "last_result" field.
func LastResultNotNil() predicate.TestCase {
	return predicate.TestCase(sql.FieldNotNull(FieldLastResult))
}

// LastResultEqualFold applies the EqualFold predicate on the "last_result" field.
func LastResultEqualFold(v string) predicate.TestCase {
	return predicate.TestCase(sql.FieldEqualFold(FieldLastResult, v))
}

// LastResultContainsFold applies the ContainsFold predicate on the "last_result" field.
func LastResultContainsFold(v string) predicate.TestCase {
	return predicate.TestCase(sql.FieldContainsFold(FieldLastResult, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.TestCase {
	return predicate.TestCase(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.TestCase {
	return predicate.TestCase(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.TestCase {
	return predicate.TestCase(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.TestCase {
	return predicate.TestCase(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.TestCase {
	return predicate.TestCase(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.TestCase {
	return predicate.TestCase(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.TestCase {
	return predicate.TestCase(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.TestCase {
	return predicate.TestCase(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.TestCase {
	return predicate.TestCase(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.TestCase {
	return predicate.TestCase(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.TestCase {
	return predicate.TestCase(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.TestCase {
	return predicate.TestCase(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.TestCase {
	return predicate.TestCase(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.TestCase {
	return predicate.TestCase(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.TestCase {
	return predicate.TestCase(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.TestCase {
	return predicate.TestCase(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasTask applies the HasEdge predicate on the "task" edge.
func HasTask() predicate.TestCase {
	return predicate.TestCase(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, TaskTable, TaskColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTaskWith applies the HasEdge predicate on the "task" edge with a given conditions (other predicates).
func HasTaskWith(preds ...predicate.Task) predicate.TestCase {
	return predicate.TestCase(func(s *sql.Selector) {
		step := newTaskStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TestCase) predicate.TestCase {
	return predicate.TestCase(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TestCase) predicate.TestCase {
	return predicate.TestCase(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TestCase) predicate.TestCase {
	return predicate.TestCase(sql.NotPredicates(p))
}
