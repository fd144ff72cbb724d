// Code generated by ent, DO NOT EDIT.

package qualitycheck

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/autoforge-dev/autoforge/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.QualityCheck {
	return predicate.QualityCheck(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.QualityCheck {
	return predicate.QualityCheck(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.QualityCheck {
	return predicate.QualityCheck(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.QualityCheck {
	return predicate.QualityCheck(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.QualityCheck {
	return predicate.QualityCheck(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.QualityCheck {
	return predicate.QualityCheck(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.QualityCheck {
	return predicate.QualityCheck(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.QualityCheck {
	return predicate.QualityCheck(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.QualityCheck {
	return predicate.QualityCheck(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.QualityCheck {
	return predicate.QualityCheck(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.QualityCheck {
	return predicate.QualityCheck(sql.FieldContainsFold(FieldID, id))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.QualityCheck {
	return predicate.QualityCheck(sql.FieldEQ(FieldSessionID, v))
}

// OverallRating applies equality check predicate on the "overall_rating" field. It's identical to OverallRatingEQ.
func OverallRating(v int) predicate.QualityCheck {
	return predicate.QualityCheck(sql.FieldEQ(FieldOverallRating, v))
}

// ReviewText applies equality check predicate on the "review_text" field. It's identical to ReviewTextEQ.
func ReviewText(v string) predicate.QualityCheck {
	return predicate.QualityCheck(sql.FieldEQ(FieldReviewText, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.QualityCheck {
	return predicate.QualityCheck(sql.FieldEQ(FieldCreatedAt, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.QualityCheck {
	return predicate.QualityCheck(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.QualityCheck {
	return predicate.QualityCheck(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.QualityCheck {
	return predicate.QualityCheck(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.QualityCheck {
	return predicate.QualityCheck(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.QualityCheck {
	return predicate.QualityCheck(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.QualityCheck {
	return predicate.QualityCheck(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.QualityCheck {
	return predicate.QualityCheck(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.QualityCheck {
	return predicate.QualityCheck(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.QualityCheck {
	return predicate.QualityCheck(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.QualityCheck {
	return predicate.QualityCheck(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.QualityCheck {
	return predicate.QualityCheck(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.QualityCheck {
	return predicate.QualityCheck(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.QualityCheck {
	return predicate.QualityCheck(sql.FieldContainsFold(FieldSessionID, v))
}

// KindEQ applies the EQ predicate on the "kind" field.
func KindEQ(v Kind) predicate.QualityCheck {
	return predicate.QualityCheck(sql.FieldEQ(FieldKind, v))
}

// KindNEQ applies the NEQ predicate on the "kind" field.
func KindNEQ(v Kind) predicate.QualityCheck {
	return predicate.QualityCheck(sql.FieldNEQ(FieldKind, v))
}

// KindIn applies the In predicate on the "kind" field.
func KindIn(vs ...Kind) predicate.QualityCheck {
	return predicate.QualityCheck(sql.FieldIn(FieldKind, vs...))
}

// KindNotIn applies the NotIn predicate on the "kind" field.
func KindNotIn(vs ...Kind) predicate.QualityCheck {
	return predicate.QualityCheck(sql.FieldNotIn(FieldKind, vs...))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.QualityCheck {
	return predicate.QualityCheck(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.QualityCheck {
	return predicate.QualityCheck(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.QualityCheck {
	return predicate.QualityCheck(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.QualityCheck {
	return predicate.QualityCheck(sql.FieldNotIn(FieldStatus, vs...))
}

// OverallRatingEQ applies the EQ predicate on the "overall_rating" field.
func OverallRatingEQ(v int) predicate.QualityCheck {
	return predicate.QualityCheck(sql.FieldEQ(FieldOverallRating, v))
}

// OverallRatingNEQ applies the NEQ predicate on the "overall_rating" field.
func OverallRatingNEQ(v int) predicate.QualityCheck {
	return predicate.QualityCheck(sql.FieldNEQ(FieldOverallRating, v))
}

// OverallRatingIn applies the In predicate on the "overall_rating" field.
func OverallRatingIn(vs ...int) predicate.QualityCheck {
	return predicate.QualityCheck(sql.FieldIn(FieldOverallRating, vs...))
}

// OverallRatingNotIn applies the NotIn predicate on the "overall_rating" field.
func OverallRatingNotIn(vs ...int) predicate.QualityCheck {
	return predicate.QualityCheck(sql.FieldNotIn(FieldOverallRating, vs...))
}

// OverallRatingGT applies the GT predicate on the "overall_rating" field.
func OverallRatingGT(v int) predicate.QualityCheck {
	return predicate.QualityCheck(sql.FieldGT(FieldOverallRating, v))
}

// OverallRatingGTE applies the GTE predicate on the "overall_rating" field.
func OverallRatingGTE(v int) predicate.QualityCheck {
	return predicate.QualityCheck(sql.FieldGTE(FieldOverallRating, v))
}

// OverallRatingLT applies the LT predicate on the "overall_rating" field.
func OverallRatingLT(v int) predicate.QualityCheck {
	return predicate.QualityCheck(sql.FieldLT(FieldOverallRating, v))
}

// OverallRatingLTE applies the LTE predicate on the "overall_rating" field.
func OverallRatingLTE(v int) predicate.QualityCheck {
	return predicate.QualityCheck(sql.FieldLTE(FieldOverallRating, v))
}

// MetricsIsNil applies the IsNil predicate on the "metrics" field.
func MetricsIsNil() predicate.QualityCheck {
	return predicate.QualityCheck(sql.FieldIsNull(FieldMetrics))
}

// MetricsNotNil applies the NotNil predicate on the "metrics" field.
func MetricsNotNil() predicate.QualityCheck {
	return predicate.QualityCheck(sql.FieldNotNull(FieldMetrics))
}

// CriticalIssuesIsNil applies the IsNil predicate on the "critical_issues" field.
func CriticalIssuesIsNil() predicate.QualityCheck {
	return predicate.QualityCheck(sql.FieldIsNull(FieldCriticalIssues))
}

// CriticalIssuesNotNil applies the NotNil predicate on the "critical_issues" field.
func CriticalIssuesNotNil() predicate.QualityCheck {
	return predicate.QualityCheck(sql.FieldNotNull(FieldCriticalIssues))
}

// WarningsIsNil applies the IsNil predicate on the "warnings" field.
func WarningsIsNil() predicate.QualityCheck {
	return predicate.QualityCheck(sql.FieldIsNull(FieldWarnings))
}

// WarningsNotNil applies the NotNil predicate on the "warnings" field.
func WarningsNotNil() predicate.QualityCheck {
	return predicate.QualityCheck(sql.FieldNotNull(FieldWarnings))
}

// ReviewTextEQ applies the EQ predicate on the "review_text" field.
func ReviewTextEQ(v string) predicate.QualityCheck {
	return predicate.QualityCheck(sql.FieldEQ(FieldReviewText, v))
}

// ReviewTextNEQ applies the NEQ predicate on the "review_text" field.
func ReviewTextNEQ(v string) predicate.QualityCheck {
	return predicate.QualityCheck(sql.FieldNEQ(FieldReviewText, v))
}

// ReviewTextIn applies the In predicate on the "review_text" field.
func ReviewTextIn(vs ...string) predicate.QualityCheck {
	return predicate.QualityCheck(sql.FieldIn(FieldReviewText, vs...))
}

// ReviewTextNotIn applies the NotIn predicate on the "review_text" field.
func ReviewTextNotIn(vs ...string) predicate.QualityCheck {
	return predicate.QualityCheck(sql.FieldNotIn(FieldReviewText, vs...))
}

// ReviewTextGT applies the GT predicate on the "review_text" field.
func ReviewTextGT(v string) predicate.QualityCheck {
	return predicate.QualityCheck(sql.FieldGT(FieldReviewText, v))
}

// ReviewTextGTE applies the GTE predicate on the "review_text" field.
func ReviewTextGTE(v string) predicate.QualityCheck {
	return predicate.QualityCheck(sql.FieldGTE(FieldReviewText, v))
}

// ReviewTextLT applies the LT predicate on the "review_text" field.
func ReviewTextLT(v string) predicate.QualityCheck {
	return predicate.QualityCheck(sql.FieldLT(FieldReviewText, v))
}

// ReviewTextLTE applies the LTE predicate on the "review_text" field.
func ReviewTextLTE(v string) predicate.QualityCheck {
	return predicate.QualityCheck(sql.FieldLTE(FieldReviewText, v))
}

// ReviewTextContains applies the Contains predicate on the "review_text" field.
func ReviewTextContains(v string) predicate.QualityCheck {
	return predicate.QualityCheck(sql.FieldContains(FieldReviewText, v))
}

// ReviewTextHasPrefix applies the HasPrefix predicate on the "review_text" field.
func ReviewTextHasPrefix(v string) predicate.QualityCheck {
	return predicate.QualityCheck(sql.FieldHasPrefix(FieldReviewText, v))
}

// ReviewTextHasSuffix applies the HasSuffix predicate on the "review_text" field.
func ReviewTextHasSuffix(v string) predicate.QualityCheck {
	return predicate.QualityCheck(sql.FieldHasSuffix(FieldReviewText, v))
}

// ReviewTextIsNil applies the IsNil predicate on the "review_text" field.
func ReviewTextIsNil() predicate.QualityCheck {
	return predicate.QualityCheck(sql.FieldIsNull(FieldReviewText))
}

// ReviewTextNotNil applies the NotNil predicate on the "review_text" field.
func ReviewTextNotNil() predicate.QualityCheck {
	return predicate.QualityCheck(sql.FieldNotNull(FieldReviewText))
}

// ReviewTextEqualFold applies the EqualFold predicate on the "review_text" field.
func ReviewTextEqualFold(v string) predicate.QualityCheck {
	return predicate.QualityCheck(sql.FieldEqualFold(FieldReviewText, v))
}

// ReviewTextContainsFold applies the ContainsFold predicate on the "review_text" field.
func ReviewTextContainsFold(v string) predicate.QualityCheck {
	return predicate.QualityCheck(sql.FieldContainsFold(FieldReviewText, v))
}

// PromptImprovementsIsNil applies the IsNil predicate on the "prompt_improvements" field.
func PromptImprovementsIsNil() predicate.QualityCheck {
	return predicate.QualityCheck(sql.FieldIsNull(FieldPromptImprovements))
}

// PromptImprovementsNotNil applies the NotNil predicate on the "prompt_improvements" field.
func PromptImprovementsNotNil() predicate.QualityCheck {
	return predicate.QualityCheck(sql.FieldNotNull(FieldPromptImprovements))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.QualityCheck {
	return predicate.QualityCheck(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.QualityCheck {
	return predicate.QualityCheck(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.QualityCheck {
	return predicate.QualityCheck(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.QualityCheck {
	return predicate.QualityCheck(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.QualityCheck {
	return predicate.QualityCheck(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.QualityCheck {
	return predicate.QualityCheck(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.QualityCheck {
	return predicate.QualityCheck(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.QualityCheck {
	return predicate.QualityCheck(sql.FieldLTE(FieldCreatedAt, v))
}

// HasSession applies the HasEdge predicate on the "session" edge.
func HasSession() predicate.QualityCheck {
	return predicate.QualityCheck(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SessionTable, SessionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSessionWith applies the HasEdge predicate on the "session" edge with a given conditions (other predicates).
func HasSessionWith(preds ...predicate.AgentSession) predicate.QualityCheck {
	return predicate.QualityCheck(func(s *sql.Selector) {
		step := newSessionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.QualityCheck) predicate.QualityCheck {
	return predicate.QualityCheck(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.QualityCheck) predicate.QualityCheck {
	return predicate.QualityCheck(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.QualityCheck) predicate.QualityCheck {
	return predicate.QualityCheck(sql.NotPredicates(p))
}
