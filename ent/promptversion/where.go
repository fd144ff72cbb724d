// Code generated by ent, DO NOT EDIT.

package promptversion

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/autoforge-dev/autoforge/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.PromptVersion {
	return predicate.PromptVersion(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.PromptVersion {
	return predicate.PromptVersion(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.PromptVersion {
	return predicate.PromptVersion(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.PromptVersion {
	return predicate.PromptVersion(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.PromptVersion {
	return predicate.PromptVersion(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.PromptVersion {
	return predicate.PromptVersion(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.PromptVersion {
	return predicate.PromptVersion(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.PromptVersion {
	return predicate.PromptVersion(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.PromptVersion {
	return predicate.PromptVersion(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.PromptVersion {
	return predicate.PromptVersion(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.PromptVersion {
	return predicate.PromptVersion(sql.FieldContainsFold(FieldID, id))
}

// PromptFile applies equality check predicate on the "prompt_file" field. It's identical to PromptFileEQ.
func PromptFile(v string) predicate.PromptVersion {
	return predicate.PromptVersion(sql.FieldEQ(FieldPromptFile, v))
}

// VersionLabel applies equality check predicate on the "version_label" field. It's identical to VersionLabelEQ.
func VersionLabel(v string) predicate.PromptVersion {
	return predicate.PromptVersion(sql.FieldEQ(FieldVersionLabel, v))
}

// Content applies equality check predicate on the "content" field. It's identical to ContentEQ.
func Content(v string) predicate.PromptVersion {
	return predicate.PromptVersion(sql.FieldEQ(FieldContent, v))
}

// Active applies equality check predicate on the "active" field. It's identical to ActiveEQ.
func Active(v bool) predicate.PromptVersion {
	return predicate.PromptVersion(sql.FieldEQ(FieldActive, v))
}

// IsDefault applies equality check predicate on the "is_default" field. It's identical to IsDefaultEQ.
func IsDefault(v bool) predicate.PromptVersion {
	return predicate.PromptVersion(sql.FieldEQ(FieldIsDefault, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.PromptVersion {
	return predicate.PromptVersion(sql.FieldEQ(FieldCreatedAt, v))
}

// PromptFileEQ applies the EQ predicate on the "prompt_file" field.
func PromptFileEQ(v string) predicate.PromptVersion {
	return predicate.PromptVersion(sql.FieldEQ(FieldPromptFile, v))
}

// PromptFileNEQ applies the NEQ predicate on the "prompt_file" field.
func PromptFileNEQ(v string) predicate.PromptVersion {
	return predicate.PromptVersion(sql.FieldNEQ(FieldPromptFile, v))
}

// PromptFileIn applies the In predicate on the "prompt_file" field.
func PromptFileIn(vs ...string) predicate.PromptVersion {
	return predicate.PromptVersion(sql.FieldIn(FieldPromptFile, vs...))
}

// PromptFileNotIn applies the NotIn predicate on the "prompt_file" field.
func PromptFileNotIn(vs ...string) predicate.PromptVersion {
	return predicate.PromptVersion(sql.FieldNotIn(FieldPromptFile, vs...))
}

// PromptFileGT applies the GT predicate on the "prompt_file" field.
func PromptFileGT(v string) predicate.PromptVersion {
	return predicate.PromptVersion(sql.FieldGT(FieldPromptFile, v))
}

// PromptFileGTE applies the GTE predicate on the "prompt_file" field.
func PromptFileGTE(v string) predicate.PromptVersion {
	return predicate.PromptVersion(sql.FieldGTE(FieldPromptFile, v))
}

// PromptFileLT applies the LT predicate on the "prompt_file" field.
func PromptFileLT(v string) predicate.PromptVersion {
	return predicate.PromptVersion(sql.FieldLT(FieldPromptFile, v))
}

// PromptFileLTE applies the LTE predicate on the "prompt_file" field.
func PromptFileLTE(v string) predicate.PromptVersion {
	return predicate.PromptVersion(sql.FieldLTE(FieldPromptFile, v))
}

// PromptFileContains applies the Contains predicate on the "prompt_file" field.
func PromptFileContains(v string) predicate.PromptVersion {
	return predicate.PromptVersion(sql.FieldContains(FieldPromptFile, v))
}

// PromptFileHasPrefix applies the HasPrefix predicate on the "prompt_file" field.
func PromptFileHasPrefix(v string) predicate.PromptVersion {
	return predicate.PromptVersion(sql.FieldHasPrefix(FieldPromptFile, v))
}

// PromptFileHasSuffix applies the HasSuffix predicate on the "prompt_file" field.
func PromptFileHasSuffix(v string) predicate.PromptVersion {
	return predicate.PromptVersion(sql.FieldHasSuffix(FieldPromptFile, v))
}

// PromptFileEqualFold applies the EqualFold predicate on the "prompt_file" field.
func PromptFileEqualFold(v string) predicate.PromptVersion {
	return predicate.PromptVersion(sql.FieldEqualFold(FieldPromptFile, v))
}

// PromptFileContainsFold applies the ContainsFold predicate on the "prompt_file" field.
func PromptFileContainsFold(v string) predicate.PromptVersion {
	return predicate.PromptVersion(sql.FieldContainsFold(FieldPromptFile, v))
}

// VersionLabelEQ applies the EQ predicate on the "version_label" field.
func VersionLabelEQ(v string) predicate.PromptVersion {
	return predicate.PromptVersion(sql.FieldEQ(FieldVersionLabel, v))
}

// VersionLabelNEQ applies the NEQ predicate on the "version_label" field.
func VersionLabelNEQ(v string) predicate.PromptVersion {
	return predicate.PromptVersion(sql.FieldNEQ(FieldVersionLabel, v))
}

// VersionLabelIn applies the In predicate on the "version_label" field.
func VersionLabelIn(vs ...string) predicate.PromptVersion {
	return predicate.PromptVersion(sql.FieldIn(FieldVersionLabel, vs...))
}

// VersionLabelNotIn applies the NotIn predicate on the "version_label" field.
func VersionLabelNotIn(vs ...string) predicate.PromptVersion {
	return predicate.PromptVersion(sql.FieldNotIn(FieldVersionLabel, vs...))
}

// VersionLabelGT applies the GT predicate on the "version_label" field.
func VersionLabelGT(v string) predicate.PromptVersion {
	return predicate.PromptVersion(sql.FieldGT(FieldVersionLabel, v))
}

// VersionLabelGTE applies the GTE predicate on the "version_label" field.
func VersionLabelGTE(v string) predicate.PromptVersion {
	return predicate.PromptVersion(sql.FieldGTE(FieldVersionLabel, v))
}

// VersionLabelLT applies the LT predicate on the "version_label" field.
func VersionLabelLT(v string) predicate.PromptVersion {
	return predicate.PromptVersion(sql.FieldLT(FieldVersionLabel, v))
}

// VersionLabelLTE applies the LTE predicate on the "version_label" field.
func VersionLabelLTE(v string) predicate.PromptVersion {
	return predicate.PromptVersion(sql.FieldLTE(FieldVersionLabel, v))
}

// VersionLabelContains applies the Contains predicate on the "version_label" field.
func VersionLabelContains(v string) predicate.PromptVersion {
	return predicate.PromptVersion(sql.FieldContains(FieldVersionLabel, v))
}

// VersionLabelHasPrefix applies the HasPrefix predicate on the "version_label" field.
func VersionLabelHasPrefix(v string) predicate.PromptVersion {
	return predicate.PromptVersion(sql.FieldHasPrefix(FieldVersionLabel, v))
}

// VersionLabelHasSuffix applies the HasSuffix predicate on the "version_label" field.
func VersionLabelHasSuffix(v string) predicate.PromptVersion {
	return predicate.PromptVersion(sql.FieldHasSuffix(FieldVersionLabel, v))
}

// VersionLabelEqualFold applies the EqualFold predicate on the "version_label" field.
func VersionLabelEqualFold(v string) predicate.PromptVersion {
	return predicate.PromptVersion(sql.FieldEqualFold(FieldVersionLabel, v))
}

// VersionLabelContainsFold applies the ContainsFold predicate on the "version_label" field.
func VersionLabelContainsFold(v string) predicate.PromptVersion {
	return predicate.PromptVersion(sql.FieldContainsFold(FieldVersionLabel, v))
}

// ContentEQ applies the EQ predicate on the "content" field.
func ContentEQ(v string) predicate.PromptVersion {
	return predicate.PromptVersion(sql.FieldEQ(FieldContent, v))
}

// ContentNEQ applies the NEQ predicate on the "content" field.
func ContentNEQ(v string) predicate.PromptVersion {
	return predicate.PromptVersion(sql.FieldNEQ(FieldContent, v))
}

// ContentIn applies the In predicate on the "content" field.
func ContentIn(vs ...string) predicate.PromptVersion {
	return predicate.PromptVersion(sql.FieldIn(FieldContent, vs...))
}

// ContentNotIn applies the NotIn predicate on the "content" field.
func ContentNotIn(vs ...string) predicate.PromptVersion {
	return predicate.PromptVersion(sql.FieldNotIn(FieldContent, vs...))
}

// ContentGT applies the GT predicate on the "content" field.
func ContentGT(v string) predicate.PromptVersion {
	return predicate.PromptVersion(sql.FieldGT(FieldContent, v))
}

// ContentGTE applies the GTE predicate on the "content" field.
func ContentGTE(v string) predicate.PromptVersion {
	return predicate.PromptVersion(sql.FieldGTE(FieldContent, v))
}

// ContentLT applies the LT predicate on the "content" field.
func ContentLT(v string) predicate.PromptVersion {
	return predicate.PromptVersion(sql.FieldLT(FieldContent, v))
}

// ContentLTE applies the LTE predicate on the "content" field.
func ContentLTE(v string) predicate.PromptVersion {
	return predicate.PromptVersion(sql.FieldLTE(FieldContent, v))
}

// ContentContains applies the Contains predicate on the "content" field.
func ContentContains(v string) predicate.PromptVersion {
	return predicate.PromptVersion(sql.FieldContains(FieldContent, v))
}

// ContentHasPrefix applies the HasPrefix predicate on the "content" field.
func ContentHasPrefix(v string) predicate.PromptVersion {
	return predicate.PromptVersion(sql.FieldHasPrefix(FieldContent, v))
}

// ContentHasSuffix applies the HasSuffix predicate on the "content" field.
func ContentHasSuffix(v string) predicate.PromptVersion {
	return predicate.PromptVersion(sql.FieldHasSuffix(FieldContent, v))
}

// ContentEqualFold applies the EqualFold predicate on the "content" field.
func ContentEqualFold(v string) predicate.PromptVersion {
	return predicate.PromptVersion(sql.FieldEqualFold(FieldContent, v))
}

// ContentContainsFold applies the ContainsFold predicate on the "content" field.
func ContentContainsFold(v string) predicate.PromptVersion {
	return predicate.PromptVersion(sql.FieldContainsFold(FieldContent, v))
}

// ActiveEQ applies the EQ predicate on the "active" field.
func ActiveEQ(v bool) predicate.PromptVersion {
	return predicate.PromptVersion(sql.FieldEQ(FieldActive, v))
}

// ActiveNEQ applies the NEQ predicate on the "active" field.
func ActiveNEQ(v bool) predicate.PromptVersion {
	return predicate.PromptVersion(sql.FieldNEQ(FieldActive, v))
}

// IsDefaultEQ applies the EQ predicate on the "is_default" field.
func IsDefaultEQ(v bool) predicate.PromptVersion {
	return predicate.PromptVersion(sql.FieldEQ(FieldIsDefault, v))
}

// IsDefaultNEQ applies the NEQ predicate on the "is_default" field.
func IsDefaultNEQ(v bool) predicate.PromptVersion {
	return predicate.PromptVersion(sql.FieldNEQ(FieldIsDefault, v))
}

// PerformanceIsNil applies the IsNil predicate on the "performance" field.
func PerformanceIsNil() predicate.PromptVersion {
	return predicate.PromptVersion(sql.FieldIsNull(FieldPerformance))
}

// PerformanceNotNil applies the NotNil predicate on the "performance" field.
func PerformanceNotNil() predicate.PromptVersion {
	return predicate.PromptVersion(sql.FieldNotNull(FieldPerformance))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.PromptVersion {
	return predicate.PromptVersion(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.PromptVersion {
	return predicate.PromptVersion(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.PromptVersion {
	return predicate.PromptVersion(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.PromptVersion {
	return predicate.PromptVersion(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.PromptVersion {
	return predicate.PromptVersion(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.PromptVersion {
	return predicate.PromptVersion(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.PromptVersion {
	return predicate.PromptVersion(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.PromptVersion {
	return predicate.PromptVersion(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PromptVersion) predicate.PromptVersion {
	return predicate.PromptVersion(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PromptVersion) predicate.PromptVersion {
	return predicate.PromptVersion(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PromptVersion) predicate.PromptVersion {
	return predicate.PromptVersion(sql.NotPredicates(p))
}
