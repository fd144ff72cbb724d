// Code generated by ent, DO NOT EDIT.

package promptanalysis

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/autoforge-dev/autoforge/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.PromptAnalysis {
	return predicate.PromptAnalysis(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.PromptAnalysis {
	return predicate.PromptAnalysis(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.PromptAnalysis {
	return predicate.PromptAnalysis(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.PromptAnalysis {
	return predicate.PromptAnalysis(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.PromptAnalysis {
	return predicate.PromptAnalysis(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.PromptAnalysis {
	return predicate.PromptAnalysis(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.PromptAnalysis {
	return predicate.PromptAnalysis(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.PromptAnalysis {
	return predicate.PromptAnalysis(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.PromptAnalysis {
	return predicate.PromptAnalysis(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.PromptAnalysis {
	return predicate.PromptAnalysis(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.PromptAnalysis {
	return predicate.PromptAnalysis(sql.FieldContainsFold(FieldID, id))
}

// SandboxType applies equality check predicate on the "sandbox_type" field. It's identical to SandboxTypeEQ.
func SandboxType(v string) predicate.PromptAnalysis {
	return predicate.PromptAnalysis(sql.FieldEQ(FieldSandboxType, v))
}

// TriggeredBy applies equality check predicate on the "triggered_by" field. It's identical to TriggeredByEQ.
func TriggeredBy(v string) predicate.PromptAnalysis {
	return predicate.PromptAnalysis(sql.FieldEQ(FieldTriggeredBy, v))
}

// DateRangeStart applies equality check predicate on the "date_range_start" field. It's identical to DateRangeStartEQ.
func DateRangeStart(v time.Time) predicate.PromptAnalysis {
	return predicate.PromptAnalysis(sql.FieldEQ(FieldDateRangeStart, v))
}

// DateRangeEnd applies equality check predicate on the "date_range_end" field. It's identical to DateRangeEndEQ.
func DateRangeEnd(v time.Time) predicate.PromptAnalysis {
	return predicate.PromptAnalysis(sql.FieldEQ(FieldDateRangeEnd, v))
}

// SessionsAnalyzed applies equality check predicate on the "sessions_analyzed" field. It's identical to SessionsAnalyzedEQ.
func SessionsAnalyzed(v int) predicate.PromptAnalysis {
	return predicate.PromptAnalysis(sql.FieldEQ(FieldSessionsAnalyzed, v))
}

// QualityImpactEstimate applies equality check predicate on the "quality_impact_estimate" field. It's identical to QualityImpactEstimateEQ.
func QualityImpactEstimate(v float64) predicate.PromptAnalysis {
	return predicate.PromptAnalysis(sql.FieldEQ(FieldQualityImpactEstimate, v))
}

// Notes applies equality check predicate on the "notes" field. It's identical to NotesEQ.
func Notes(v string) predicate.PromptAnalysis {
	return predicate.PromptAnalysis(sql.FieldEQ(FieldNotes, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.PromptAnalysis {
	return predicate.PromptAnalysis(sql.FieldEQ(FieldCreatedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.PromptAnalysis {
	return predicate.PromptAnalysis(sql.FieldEQ(FieldCompletedAt, v))
}

// ProjectsAnalyzedIsNil applies the IsNil predicate on the "projects_analyzed" field.
func ProjectsAnalyzedIsNil() predicate.PromptAnalysis {
	return predicate.PromptAnalysis(sql.FieldIsNull(FieldProjectsAnalyzed))
}

// ProjectsAnalyzedNotNil applies the NotNil predicate on the "projects_analyzed" field.
func ProjectsAnalyzedNotNil() predicate.PromptAnalysis {
	return predicate.PromptAnalysis(sql.FieldNotNull(FieldProjectsAnalyzed))
}

// SandboxTypeEQ applies the EQ predicate on the "sandbox_type" field.
func SandboxTypeEQ(v string) predicate.PromptAnalysis {
	return predicate.PromptAnalysis(sql.FieldEQ(FieldSandboxType, v))
}

// SandboxTypeNEQ applies the NEQ predicate on the "sandbox_type" field.
func SandboxTypeNEQ(v string) predicate.PromptAnalysis {
	return predicate.PromptAnalysis(sql.FieldNEQ(FieldSandboxType, v))
}

// SandboxTypeIn applies the In predicate on the "sandbox_type" field.
func SandboxTypeIn(vs ...string) predicate.PromptAnalysis {
	return predicate.PromptAnalysis(sql.FieldIn(FieldSandboxType, vs...))
}

// SandboxTypeNotIn applies the NotIn predicate on the "sandbox_type" field.
func SandboxTypeNotIn(vs ...string) predicate.PromptAnalysis {
	return predicate.PromptAnalysis(sql.FieldNotIn(FieldSandboxType, vs...))
}

// SandboxTypeGT applies the GT predicate on the "sandbox_type" field.
func SandboxTypeGT(v string) predicate.PromptAnalysis {
	return predicate.PromptAnalysis(sql.FieldGT(FieldSandboxType, v))
}

// SandboxTypeGTE applies the GTE predicate on the "sandbox_type" field.
func SandboxTypeGTE(v string) predicate.PromptAnalysis {
	return predicate.PromptAnalysis(sql.FieldGTE(FieldSandboxType, v))
}

// SandboxTypeLT applies the LT predicate on the "sandbox_type" field.
func SandboxTypeLT(v string) predicate.PromptAnalysis {
	return predicate.PromptAnalysis(sql.FieldLT(FieldSandboxType, v))
}

// SandboxTypeLTE applies the LTE predicate on the "sandbox_type" field.
func SandboxTypeLTE(v string) predicate.PromptAnalysis {
	return predicate.PromptAnalysis(sql.FieldLTE(FieldSandboxType, v))
}

// SandboxTypeContains applies the Contains predicate on the "sandbox_type" field.
func SandboxTypeContains(v string) predicate.PromptAnalysis {
	return predicate.PromptAnalysis(sql.FieldContains(FieldSandboxType, v))
}

// SandboxTypeHasPrefix applies the HasPrefix predicate on the "sandbox_type" field.
func SandboxTypeHasPrefix(v string) predicate.PromptAnalysis {
	return predicate.PromptAnalysis(sql.FieldHasPrefix(FieldSandboxType, v))
}

// SandboxTypeHasSuffix applies the HasSuffix predicate on the "sandbox_type" field.
func SandboxTypeHasSuffix(v string) predicate.PromptAnalysis {
	return predicate.PromptAnalysis(sql.FieldHasSuffix(FieldSandboxType, v))
}

// SandboxTypeEqualFold applies the EqualFold predicate on the "sandbox_type" field.
func SandboxTypeEqualFold(v string) predicate.PromptAnalysis {
	return predicate.PromptAnalysis(sql.FieldEqualFold(FieldSandboxType, v))
}

// SandboxTypeContainsFold applies the ContainsFold predicate on the "sandbox_type" field.
func SandboxTypeContainsFold(v string) predicate.PromptAnalysis {
	return predicate.PromptAnalysis(sql.FieldContainsFold(FieldSandboxType, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.PromptAnalysis {
	return predicate.PromptAnalysis(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.PromptAnalysis {
	return predicate.PromptAnalysis(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.PromptAnalysis {
	return predicate.PromptAnalysis(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.PromptAnalysis {
	return predicate.PromptAnalysis(sql.FieldNotIn(FieldStatus, vs...))
}

// TriggeredByEQ applies the EQ predicate on the "triggered_by" field.
func TriggeredByEQ(v string) predicate.PromptAnalysis {
	return predicate.PromptAnalysis(sql.FieldEQ(FieldTriggeredBy, v))
}

// TriggeredByNEQ applies the NEQ predicate on the "triggered_by" field.
func TriggeredByNEQ(v string) predicate.PromptAnalysis {
	return predicate.PromptAnalysis(sql.FieldNEQ(FieldTriggeredBy, v))
}

// TriggeredByIn applies the In predicate on the "triggered_by" field.
func TriggeredByIn(vs ...string) predicate.PromptAnalysis {
	return predicate.PromptAnalysis(sql.FieldIn(FieldTriggeredBy, vs...))
}

// TriggeredByNotIn applies the NotIn predicate on the "triggered_by" field.
func TriggeredByNotIn(vs ...string) predicate.PromptAnalysis {
	return predicate.PromptAnalysis(sql.FieldNotIn(FieldTriggeredBy, vs...))
}

// TriggeredByGT applies the GT predicate on the "triggered_by" field.
func TriggeredByGT(v string) predicate.PromptAnalysis {
	return predicate.PromptAnalysis(sql.FieldGT(FieldTriggeredBy, v))
}

// TriggeredByGTE applies the GTE predicate on the "triggered_by" field.
func TriggeredByGTE(v string) predicate.PromptAnalysis {
	return predicate.PromptAnalysis(sql.FieldGTE(FieldTriggeredBy, v))
}

// TriggeredByLT applies the LT predicate on the "triggered_by" field.
func TriggeredByLT(v string) predicate.PromptAnalysis {
	return predicate.PromptAnalysis(sql.FieldLT(FieldTriggeredBy, v))
}

// TriggeredByLTE applies the LTE predicate on the "triggered_by" field.
func TriggeredByLTE(v string) predicate.PromptAnalysis {
	return predicate.PromptAnalysis(sql.FieldLTE(FieldTriggeredBy, v))
}

// TriggeredByContains applies the Contains predicate on the "triggered_by" field.
func TriggeredByContains(v string) predicate.PromptAnalysis {
	return predicate.PromptAnalysis(sql.FieldContains(FieldTriggeredBy, v))
}

// TriggeredByHasPrefix applies the HasPrefix predicate on the "triggered_by" field.
func TriggeredByHasPrefix(v string) predicate.PromptAnalysis {
	return predicate.PromptAnalysis(sql.FieldHasPrefix(FieldTriggeredBy, v))
}

// TriggeredByHasSuffix applies the HasSuffix predicate on the "triggered_by" field.
func TriggeredByHasSuffix(v string) predicate.PromptAnalysis {
	return predicate.PromptAnalysis(sql.FieldHasSuffix(FieldTriggeredBy, v))
}

// TriggeredByEqualFold applies the EqualFold predicate on the "triggered_by" field.
func TriggeredByEqualFold(v string) predicate.PromptAnalysis {
	return predicate.PromptAnalysis(sql.FieldEqualFold(FieldTriggeredBy, v))
}

// TriggeredByContainsFold applies the ContainsFold predicate on the "triggered_by" field.
func TriggeredByContainsFold(v string) predicate.PromptAnalysis {
	return predicate.PromptAnalysis(sql.FieldContainsFold(FieldTriggeredBy, v))
}

// DateRangeStartEQ applies the EQ predicate on the "date_range_start" field.
func DateRangeStartEQ(v time.Time) predicate.PromptAnalysis {
	return predicate.PromptAnalysis(sql.FieldEQ(FieldDateRangeStart, v))
}

// DateRangeStartNEQ applies the NEQ predicate on the "date_range_start" field.
func DateRangeStartNEQ(v time.Time) predicate.PromptAnalysis {
	return predicate.PromptAnalysis(sql.FieldNEQ(FieldDateRangeStart, v))
}

// DateRangeStartIn applies the In predicate on the "date_range_start" field.
func DateRangeStartIn(vs ...time.Time) predicate.PromptAnalysis {
	return predicate.PromptAnalysis(sql.FieldIn(FieldDateRangeStart, vs...))
}

// DateRangeStartNotIn applies the NotIn predicate on the "date_range_start" field.
func DateRangeStartNotIn(vs ...time.Time) predicate.PromptAnalysis {
	return predicate.PromptAnalysis(sql.FieldNotIn(FieldDateRangeStart, vs...))
}

// DateRangeStartGT applies the GT predicate on the "date_range_start" field.
func DateRangeStartGT(v time.Time) predicate.PromptAnalysis {
	return predicate.PromptAnalysis(sql.FieldGT(FieldDateRangeStart, v))
}

// DateRangeStartGTE applies the GTE predicate on the "date_range_start" field.
func DateRangeStartGTE(v time.Time) predicate.PromptAnalysis {
	return predicate.PromptAnalysis(sql.FieldGTE(FieldDateRangeStart, v))
}

// DateRangeStartLT applies the LT predicate on the "date_range_start" field.
func DateRangeStartLT(v time.Time) predicate.PromptAnalysis {
	return predicate.PromptAnalysis(sql.FieldLT(FieldDateRangeStart, v))
}

// DateRangeStartLTE applies the LTE predicate on the "date_range_start" field.
func DateRangeStartLTE(v time.Time) predicate.PromptAnalysis {
	return predicate.PromptAnalysis(sql.FieldLTE(FieldDateRangeStart, v))
}

// DateRangeStartIsNil applies the IsNil predicate on the "date_range_start" field.
func DateRangeStartIsNil() predicate.PromptAnalysis {
	return predicate.PromptAnalysis(sql.FieldIsNull(FieldDateRangeStart))
}

// DateRangeStartNotNil applies the NotNil predicate on the "date_range_start" field.
func DateRangeStartNotNil() predicate.PromptAnalysis {
	return predicate.PromptAnalysis(sql.FieldNotNull(FieldDateRangeStart))
}

// DateRangeEndEQ applies the EQ predicate on the "date_range_end" field.
func DateRangeEndEQ(v time.Time) predicate.PromptAnalysis {
	return predicate.PromptAnalysis(sql.FieldEQ(FieldDateRangeEnd, v))
}

// DateRangeEndNEQ applies the NEQ predicate on the "date_range_end" field.
func DateRangeEndNEQ(v time.Time) predicate.PromptAnalysis {
	return predicate.PromptAnalysis(sql.FieldNEQ(FieldDateRangeEnd, v))
}

// DateRangeEndIn applies the In predicate on the "date_range_end" field.
func DateRangeEndIn(vs ...time.Time) predicate.PromptAnalysis {
	return predicate.PromptAnalysis(sql.FieldIn(FieldDateRangeEnd, vs...))
}

// DateRangeEndNotIn applies the NotIn predicate on the "date_range_end" field.
func DateRangeEndNotIn(vs ...time.Time) predicate.PromptAnalysis {
	return predicate.PromptAnalysis(sql.FieldNotIn(FieldDateRangeEnd, vs...))
}

// DateRangeEndGT applies the GT predicate on the "date_range_end" field.
func DateRangeEndGT(v time.Time) predicate.PromptAnalysis {
	return predicate.PromptAnalysis(sql.FieldGT(FieldDateRangeEnd, v))
}

// DateRangeEndGTE applies the GTE predicate on the "date_range_end" field.
func DateRangeEndGTE(v time.Time) predicate.PromptAnalysis {
	return predicate.PromptAnalysis(sql.FieldGTE(FieldDateRangeEnd, v))
}

// DateRangeEndLT applies the LT predicate on the "date_range_end" field.
func DateRangeEndLT(v time.Time) predicate.PromptAnalysis {
	return predicate.PromptAnalysis(sql.FieldLT(FieldDateRangeEnd, v))
}

// DateRangeEndLTE applies the LTE predicate on the "date_range_end" field.
func DateRangeEndLTE(v time.Time) predicate.PromptAnalysis {
	return predicate.PromptAnalysis(sql.FieldLTE(FieldDateRangeEnd, v))
}

// DateRangeEndIsNil applies the IsNil predicate on the "date_range_end" field.
func DateRangeEndIsNil() predicate.PromptAnalysis {
	return predicate.PromptAnalysis(sql.FieldIsNull(FieldDateRangeEnd))
}

// DateRangeEndNotNil applies the NotNil predicate on the "date_range_end" field.
func DateRangeEndNotNil() predicate.PromptAnalysis {
	return predicate.PromptAnalysis(sql.FieldNotNull(FieldDateRangeEnd))
}

// SessionsAnalyzedEQ applies the EQ predicate on the "sessions_analyzed" field.
func SessionsAnalyzedEQ(v int) predicate.PromptAnalysis {
	return predicate.PromptAnalysis(sql.FieldEQ(FieldSessionsAnalyzed, v))
}

// SessionsAnalyzedNEQ applies the NEQ predicate on the "sessions_analyzed" field.
func SessionsAnalyzedNEQ(v int) predicate.PromptAnalysis {
	return predicate.PromptAnalysis(sql.FieldNEQ(FieldSessionsAnalyzed, v))
}

// SessionsAnalyzedIn applies the In predicate on the "sessions_analyzed" field.
func SessionsAnalyzedIn(vs ...int) predicate.PromptAnalysis {
	return predicate.PromptAnalysis(sql.FieldIn(FieldSessionsAnalyzed, vs...))
}

// SessionsAnalyzedNotIn applies the NotIn predicate on the "sessions_analyzed" field.
func SessionsAnalyzedNotIn(vs ...int) predicate.PromptAnalysis {
	return predicate.PromptAnalysis(sql.FieldNotIn(FieldSessionsAnalyzed, vs...))
}

// SessionsAnalyzedGT applies the GT predicate on the "sessions_analyzed" field.
func SessionsAnalyzedGT(v int) predicate.PromptAnalysis {
	return predicate.PromptAnalysis(sql.FieldGT(FieldSessionsAnalyzed, v))
}

// SessionsAnalyzedGTE applies the GTE predicate on the "sessions_analyzed" field.
func SessionsAnalyzedGTE(v int) predicate.PromptAnalysis {
	return predicate.PromptAnalysis(sql.FieldGTE(FieldSessionsAnalyzed, v))
}

// SessionsAnalyzedLT applies the LT predicate on the "sessions_analyzed" field.
func SessionsAnalyzedLT(v int) predicate.PromptAnalysis {
	return predicate.PromptAnalysis(sql.FieldLT(FieldSessionsAnalyzed, v))
}

// SessionsAnalyzedLTE applies the LTE predicate on the "sessions_analyzed" field.
func SessionsAnalyzedLTE(v int) predicate.PromptAnalysis {
	return predicate.PromptAnalysis(sql.FieldLTE(FieldSessionsAnalyzed, v))
}

// PatternsIsNil applies the IsNil predicate on the "patterns" field.
func PatternsIsNil() predicate.PromptAnalysis {
	return predicate.PromptAnalysis(sql.FieldIsNull(FieldPatterns))
}

// PatternsNotNil applies the NotNil predicate on the "patterns" field.
func PatternsNotNil() predicate.PromptAnalysis {
	return predicate.PromptAnalysis(sql.FieldNotNull(FieldPatterns))
}

// QualityImpactEstimateEQ applies the EQ predicate on the "quality_impact_estimate" field.
func QualityImpactEstimateEQ(v float64) predicate.PromptAnalysis {
	return predicate.PromptAnalysis(sql.FieldEQ(FieldQualityImpactEstimate, v))
}

// QualityImpactEstimateNEQ applies the NEQ predicate on the "quality_impact_estimate" field.
func QualityImpactEstimateNEQ(v float64) predicate.PromptAnalysis {
	return predicate.PromptAnalysis(sql.FieldNEQ(FieldQualityImpactEstimate, v))
}

// QualityImpactEstimateIn applies the In predicate on the "quality_impact_estimate" field.
func QualityImpactEstimateIn(vs ...float64) predicate.PromptAnalysis {
	return predicate.PromptAnalysis(sql.FieldIn(FieldQualityImpactEstimate, vs...))
}

// QualityImpactEstimateNotIn applies the NotIn predicate on the "quality_impact_estimate" field.
func QualityImpactEstimateNotIn(vs ...float64) predicate.PromptAnalysis {
	return predicate.PromptAnalysis(sql.FieldNotIn(FieldQualityImpactEstimate, vs...))
}

// QualityImpactEstimateGT applies the GT predicate on the "quality_impact_estimate" field.
func QualityImpactEstimateGT(v float64) predicate.PromptAnalysis {
	return predicate.PromptAnalysis(sql.FieldGT(FieldQualityImpactEstimate, v))
}

// QualityImpactEstimateGTE applies the GTE predicate on the "quality_impact_estimate" field.
func QualityImpactEstimateGTE(v float64) predicate.PromptAnalysis {
	return predicate.PromptAnalysis(sql.FieldGTE(FieldQualityImpactEstimate, v))
}

// QualityImpactEstimateLT applies the LT predicate on the "quality_impact_estimate" field.
func QualityImpactEstimateLT(v float64) predicate.PromptAnalysis {
	return predicate.PromptAnalysis(sql.FieldLT(FieldQualityImpactEstimate, v))
}

// QualityImpactEstimateLTE applies the LTE predicate on the "quality_impact_estimate" field.
func QualityImpactEstimateLTE(v float64) predicate.PromptAnalysis {
	return predicate.PromptAnalysis(sql.FieldLTE(FieldQualityImpactEstimate, v))
}

// NotesEQ applies the EQ predicate on the "notes" field.
func NotesEQ(v string) predicate.PromptAnalysis {
	return predicate.PromptAnalysis(sql.FieldEQ(FieldNotes, v))
}

// NotesNEQ applies the NEQ predicate on the "notes" field.
func NotesNEQ(v string) predicate.PromptAnalysis {
	return predicate.PromptAnalysis(sql.FieldNEQ(FieldNotes, v))
}

// NotesIn applies the In predicate on the "notes" field.
func NotesIn(vs ...string) predicate.PromptAnalysis {
	return predicate.PromptAnalysis(sql.FieldIn(FieldNotes, vs...))
}

// NotesNotIn applies the NotIn predicate on the "notes" field.
func NotesNotIn(vs ...string) predicate.PromptAnalysis {
	return predicate.PromptAnalysis(sql.FieldNotIn(FieldNotes, vs...))
}

// NotesGT applies the GT predicate on the "notes" field.
func NotesGT(v string) predicate.PromptAnalysis {
	return predicate.PromptAnalysis(sql.FieldGT(FieldNotes, v))
}

// NotesGTE applies the GTE predicate on the "notes" field.
func NotesGTE(v string) predicate.PromptAnalysis {
	return predicate.PromptAnalysis(sql.FieldGTE(FieldNotes, v))
}

// NotesLT applies the LT predicate on the "notes" field.
func NotesLT(v string) predicate.PromptAnalysis {
	return predicate.PromptAnalysis(sql.FieldLT(FieldNotes, v))
}

// NotesLTE applies the LTE predicate on the "notes" field.
func NotesLTE(v string) predicate.PromptAnalysis {
	return predicate.PromptAnalysis(sql.FieldLTE(FieldNotes, v))
}

// NotesContains applies the Contains predicate on the "notes" field.
func NotesContains(v string) predicate.PromptAnalysis {
	return predicate.PromptAnalysis(sql.FieldContains(FieldNotes, v))
}

// NotesHasPrefix applies the HasPrefix predicate on the "notes" field.
func NotesHasPrefix(v string) predicate.PromptAnalysis {
	return predicate.PromptAnalysis(sql.FieldHasPrefix(FieldNotes, v))
}

// NotesHasSuffix applies the HasSuffix predicate on the "notes" field.
func NotesHasSuffix(v string) predicate.PromptAnalysis {
	return predicate.PromptAnalysis(sql.FieldHasSuffix(FieldNotes, v))
}

// NotesIsNil applies the IsNil predicate on the "notes" field.
func NotesIsNil() predicate.PromptAnalysis {
	return predicate.PromptAnalysis(sql.FieldIsNull(FieldNotes))
}

// NotesNotNil applies the NotNil predicate on the "notes" field.
func NotesNotNil() predicate.PromptAnalysis {
	return predicate.PromptAnalysis(sql.FieldNotNull(FieldNotes))
}

// NotesEqualFold applies the EqualFold predicate on the "notes" field.
func NotesEqualFold(v string) predicate.PromptAnalysis {
	return predicate.PromptAnalysis(sql.FieldEqualFold(FieldNotes, v))
}

// NotesContainsFold applies the ContainsFold predicate on the "notes" field.
func NotesContainsFold(v string) predicate.PromptAnalysis {
	return predicate.PromptAnalysis(sql.FieldContainsFold(FieldNotes, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.PromptAnalysis {
	return predicate.PromptAnalysis(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.PromptAnalysis {
	return predicate.PromptAnalysis(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.PromptAnalysis {
	return predicate.PromptAnalysis(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.PromptAnalysis {
	return predicate.PromptAnalysis(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.PromptAnalysis {
	return predicate.PromptAnalysis(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.PromptAnalysis {
	return predicate.PromptAnalysis(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.PromptAnalysis {
	return predicate.PromptAnalysis(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.PromptAnalysis {
	return predicate.PromptAnalysis(sql.FieldLTE(FieldCreatedAt, v))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.PromptAnalysis {
	return predicate.PromptAnalysis(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.PromptAnalysis {
	return predicate.PromptAnalysis(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.PromptAnalysis {
	return predicate.PromptAnalysis(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.PromptAnalysis {
	return predicate.PromptAnalysis(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.PromptAnalysis {
	return predicate.PromptAnalysis(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.PromptAnalysis {
	return predicate.PromptAnalysis(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.PromptAnalysis {
	return predicate.PromptAnalysis(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.PromptAnalysis {
	return predicate.PromptAnalysis(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.PromptAnalysis {
	return predicate.PromptAnalysis(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.PromptAnalysis {
	return predicate.PromptAnalysis(sql.FieldNotNull(FieldCompletedAt))
}

// HasProposals applies the HasEdge predicate on the "proposals" edge.
func HasProposals() predicate.PromptAnalysis {
	return predicate.PromptAnalysis(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ProposalsTable, ProposalsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasProposalsWith applies the HasEdge predicate on the "proposals" edge with a given conditions (other predicates).
func HasProposalsWith(preds ...predicate.PromptProposal) predicate.PromptAnalysis {
	return predicate.PromptAnalysis(func(s *sql.Selector) {
		step := newProposalsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PromptAnalysis) predicate.PromptAnalysis {
	return predicate.PromptAnalysis(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PromptAnalysis) predicate.PromptAnalysis {
	return predicate.PromptAnalysis(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PromptAnalysis) predicate.PromptAnalysis {
	return predicate.PromptAnalysis(sql.NotPredicates(p))
}
