// Code generated by ent, DO NOT EDIT.

package promptproposal

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/autoforge-dev/autoforge/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.PromptProposal {
	return predicate.PromptProposal(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.PromptProposal {
	return predicate.PromptProposal(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.PromptProposal {
	return predicate.PromptProposal(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.PromptProposal {
	return predicate.PromptProposal(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.PromptProposal {
	return predicate.PromptProposal(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.PromptProposal {
	return predicate.PromptProposal(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.PromptProposal {
	return predicate.PromptProposal(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.PromptProposal {
	return predicate.PromptProposal(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.PromptProposal {
	return predicate.PromptProposal(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.PromptProposal {
	return predicate.PromptProposal(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.PromptProposal {
	return predicate.PromptProposal(sql.FieldContainsFold(FieldID, id))
}

// AnalysisID applies equality check predicate on the "analysis_id" field. It's identical to AnalysisIDEQ.
func AnalysisID(v string) predicate.PromptProposal {
	return predicate.PromptProposal(sql.FieldEQ(FieldAnalysisID, v))
}

// PromptFile applies equality check predicate on the "prompt_file" field. It's identical to PromptFileEQ.
func PromptFile(v string) predicate.PromptProposal {
	return predicate.PromptProposal(sql.FieldEQ(FieldPromptFile, v))
}

// SectionName applies equality check predicate on the "section_name" field. It's identical to SectionNameEQ.
func SectionName(v string) predicate.PromptProposal {
	return predicate.PromptProposal(sql.FieldEQ(FieldSectionName, v))
}

// OriginalText applies equality check predicate on the "original_text" field. It's identical to OriginalTextEQ.
func OriginalText(v string) predicate.PromptProposal {
	return predicate.PromptProposal(sql.FieldEQ(FieldOriginalText, v))
}

// ProposedText applies equality check predicate on the "proposed_text" field. It's identical to ProposedTextEQ.
func ProposedText(v string) predicate.PromptProposal {
	return predicate.PromptProposal(sql.FieldEQ(FieldProposedText, v))
}

// Rationale applies equality check predicate on the "rationale" field. It's identical to RationaleEQ.
func Rationale(v string) predicate.PromptProposal {
	return predicate.PromptProposal(sql.FieldEQ(FieldRationale, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v int) predicate.PromptProposal {
	return predicate.PromptProposal(sql.FieldEQ(FieldConfidence, v))
}

// AppliedAt applies equality check predicate on the "applied_at" field. It's identical to AppliedAtEQ.
func AppliedAt(v time.Time) predicate.PromptProposal {
	return predicate.PromptProposal(sql.FieldEQ(FieldAppliedAt, v))
}

// AppliedBy applies equality check predicate on the "applied_by" field. It's identical to AppliedByEQ.
func AppliedBy(v string) predicate.PromptProposal {
	return predicate.PromptProposal(sql.FieldEQ(FieldAppliedBy, v))
}

// PromptVersionID applies equality check predicate on the "prompt_version_id" field. It's identical to PromptVersionIDEQ.
func PromptVersionID(v string) predicate.PromptProposal {
	return predicate.PromptProposal(sql.FieldEQ(FieldPromptVersionID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.PromptProposal {
	return predicate.PromptProposal(sql.FieldEQ(FieldCreatedAt, v))
}

// AnalysisIDEQ applies the EQ predicate on the "analysis_id" field.
func AnalysisIDEQ(v string) predicate.PromptProposal {
	return predicate.PromptProposal(sql.FieldEQ(FieldAnalysisID, v))
}

// AnalysisIDNEQ applies the NEQ predicate on the "analysis_id" field.
func AnalysisIDNEQ(v string) predicate.PromptProposal {
	return predicate.PromptProposal(sql.FieldNEQ(FieldAnalysisID, v))
}

// AnalysisIDIn applies the In predicate on the "analysis_id" field.
func AnalysisIDIn(vs ...string) predicate.PromptProposal {
	return predicate.PromptProposal(sql.FieldIn(FieldAnalysisID, vs...))
}

// AnalysisIDNotIn applies the NotIn predicate on the "analysis_id" field.
func AnalysisIDNotIn(vs ...string) predicate.PromptProposal {
	return predicate.PromptProposal(sql.FieldNotIn(FieldAnalysisID, vs...))
}

// AnalysisIDGT applies the GT predicate on the "analysis_id" field.
func AnalysisIDGT(v string) predicate.PromptProposal {
	return predicate.PromptProposal(sql.FieldGT(FieldAnalysisID, v))
}

// AnalysisIDGTE applies the GTE predicate on the "analysis_id" field.
func AnalysisIDGTE(v string) predicate.PromptProposal {
	return predicate.PromptProposal(sql.FieldGTE(FieldAnalysisID, v))
}

// AnalysisIDLT applies the LT predicate on the "analysis_id" field.
func AnalysisIDLT(v string) predicate.PromptProposal {
	return predicate.PromptProposal(sql.FieldLT(FieldAnalysisID, v))
}

// AnalysisIDLTE applies the LTE predicate on the "analysis_id" field.
func AnalysisIDLTE(v string) predicate.PromptProposal {
	return predicate.PromptProposal(sql.FieldLTE(FieldAnalysisID, v))
}

// AnalysisIDContains applies the Contains predicate on the "analysis_id" field.
func AnalysisIDContains(v string) predicate.PromptProposal {
	return predicate.PromptProposal(sql.FieldContains(FieldAnalysisID, v))
}

// AnalysisIDHasPrefix applies the HasPrefix predicate on the "analysis_id" field.
func AnalysisIDHasPrefix(v string) predicate.PromptProposal {
	return predicate.PromptProposal(sql.FieldHasPrefix(FieldAnalysisID, v))
}

// AnalysisIDHasSuffix applies the HasSuffix predicate on the "analysis_id" field.
func AnalysisIDHasSuffix(v string) predicate.PromptProposal {
	return predicate.PromptProposal(sql.FieldHasSuffix(FieldAnalysisID, v))
}

// AnalysisIDEqualFold applies the EqualFold predicate on the "analysis_id" field.
func AnalysisIDEqualFold(v string) predicate.PromptProposal {
	return predicate.PromptProposal(sql.FieldEqualFold(FieldAnalysisID, v))
}

// AnalysisIDContainsFold applies the ContainsFold predicate on the "analysis_id" field.
func AnalysisIDContainsFold(v string) predicate.PromptProposal {
	return predicate.PromptProposal(sql.FieldContainsFold(FieldAnalysisID, v))
}

// PromptFileEQ applies the EQ predicate on the "prompt_file" field.
func PromptFileEQ(v string) predicate.PromptProposal {
	return predicate.PromptProposal(sql.FieldEQ(FieldPromptFile, v))
}

// PromptFileNEQ applies the NEQ predicate on the "prompt_file" field.
func PromptFileNEQ(v string) predicate.PromptProposal {
	return predicate.PromptProposal(sql.FieldNEQ(FieldPromptFile, v))
}

// PromptFileIn applies the In predicate on the "prompt_file" field.
func PromptFileIn(vs ...string) predicate.PromptProposal {
	return predicate.PromptProposal(sql.FieldIn(FieldPromptFile, vs...))
}

// PromptFileNotIn applies the NotIn predicate on the "prompt_file" field.
func PromptFileNotIn(vs ...string) predicate.PromptProposal {
	return predicate.PromptProposal(sql.FieldNotIn(FieldPromptFile, vs...))
}

// PromptFileGT applies the GT predicate on the "prompt_file" field.
func PromptFileGT(v string) predicate.PromptProposal {
	return predicate.PromptProposal(sql.FieldGT(FieldPromptFile, v))
}

// PromptFileGTE applies the GTE predicate on the "prompt_file" field.
func PromptFileGTE(v string) predicate.PromptProposal {
	return predicate.PromptProposal(sql.FieldGTE(FieldPromptFile, v))
}

// PromptFileLT applies the LT predicate on the "prompt_file" field.
func PromptFileLT(v string) predicate.PromptProposal {
	return predicate.PromptProposal(sql.FieldLT(FieldPromptFile, v))
}

// PromptFileLTE applies the LTE predicate on the "prompt_file" field.
func PromptFileLTE(v string) predicate.PromptProposal {
	return predicate.PromptProposal(sql.FieldLTE(FieldPromptFile, v))
}

// PromptFileContains applies the Contains predicate on the "prompt_file" field.
func PromptFileContains(v string) predicate.PromptProposal {
	return predicate.PromptProposal(sql.FieldContains(FieldPromptFile, v))
}

// PromptFileHasPrefix applies the HasPrefix predicate on the "prompt_file" field.
func PromptFileHasPrefix(v string) predicate.PromptProposal {
	return predicate.PromptProposal(sql.FieldHasPrefix(FieldPromptFile, v))
}

// PromptFileHasSuffix applies the HasSuffix predicate on the "prompt_file" field.
func PromptFileHasSuffix(v string) predicate.PromptProposal {
	return predicate.PromptProposal(sql.FieldHasSuffix(FieldPromptFile, v))
}

// PromptFileEqualFold applies the EqualFold predicate on the "prompt_file" field.
func PromptFileEqualFold(v string) predicate.PromptProposal {
	return predicate.PromptProposal(sql.FieldEqualFold(FieldPromptFile, v))
}

// PromptFileContainsFold applies the ContainsFold predicate on the "prompt_file" field.
func PromptFileContainsFold(v string) predicate.PromptProposal {
	return predicate.PromptProposal(sql.FieldContainsFold(FieldPromptFile, v))
}

// SectionNameEQ applies the EQ predicate on the "section_name" field.
func SectionNameEQ(v string) predicate.PromptProposal {
	return predicate.PromptProposal(sql.FieldEQ(FieldSectionName, v))
}

// SectionNameNEQ applies the NEQ predicate on the "section_name" field.
func SectionNameNEQ(v string) predicate.PromptProposal {
	return predicate.PromptProposal(sql.FieldNEQ(FieldSectionName, v))
}

// SectionNameIn applies the In predicate on the "section_name" field.
func SectionNameIn(vs ...string) predicate.PromptProposal {
	return predicate.PromptProposal(sql.FieldIn(FieldSectionName, vs...))
}

// SectionNameNotIn applies the NotIn predicate on the "section_name" field.
func SectionNameNotIn(vs ...string) predicate.PromptProposal {
	return predicate.PromptProposal(sql.FieldNotIn(FieldSectionName, vs...))
}

// SectionNameGT applies the GT predicate on the "section_name" field.
func SectionNameGT(v string) predicate.PromptProposal {
	return predicate.PromptProposal(sql.FieldGT(FieldSectionName, v))
}

// SectionNameGTE applies the GTE predicate on the "section_name" field.
func SectionNameGTE(v string) predicate.PromptProposal {
	return predicate.PromptProposal(sql.FieldGTE(FieldSectionName, v))
}

// SectionNameLT applies the LT predicate on the "section_name" field.
func SectionNameLT(v string) predicate.PromptProposal {
	return predicate.PromptProposal(sql.FieldLT(FieldSectionName, v))
}

// SectionNameLTE applies the LTE predicate on the "section_name" field.
func SectionNameLTE(v string) predicate.PromptProposal {
	return predicate.PromptProposal(sql.FieldLTE(FieldSectionName, v))
}

// SectionNameContains applies the Contains predicate on the "section_name" field.
func SectionNameContains(v string) predicate.PromptProposal {
	return predicate.PromptProposal(sql.FieldContains(FieldSectionName, v))
}

// SectionNameHasPrefix applies the HasPrefix predicate on the "section_name" field.
func SectionNameHasPrefix(v string) predicate.PromptProposal {
	return predicate.PromptProposal(sql.FieldHasPrefix(FieldSectionName, v))
}

// SectionNameHasSuffix applies the HasSuffix predicate on the "section_name" field.
func SectionNameHasSuffix(v string) predicate.PromptProposal {
	return predicate.PromptProposal(sql.FieldHasSuffix(FieldSectionName, v))
}

// SectionNameEqualFold applies the EqualFold predicate on the "section_name" field.
func SectionNameEqualFold(v string) predicate.PromptProposal {
	return predicate.PromptProposal(sql.FieldEqualFold(FieldSectionName, v))
}

// SectionNameContainsFold applies the ContainsFold predicate on the "section_name" field.
func SectionNameContainsFold(v string) predicate.PromptProposal {
	return predicate.PromptProposal(sql.FieldContainsFold(FieldSectionName, v))
}

// ChangeTypeEQ applies the EQ predicate on the "change_type" field.
func ChangeTypeEQ(v ChangeType) predicate.PromptProposal {
	return predicate.PromptProposal(sql.FieldEQ(FieldChangeType, v))
}

// ChangeTypeNEQ applies the NEQ predicate on the "change_type" field.
func ChangeTypeNEQ(v ChangeType) predicate.PromptProposal {
	return predicate.PromptProposal(sql.FieldNEQ(FieldChangeType, v))
}

// ChangeTypeIn applies the In predicate on the "change_type" field.
func ChangeTypeIn(vs ...ChangeType) predicate.PromptProposal {
	return predicate.PromptProposal(sql.FieldIn(FieldChangeType, vs...))
}

// ChangeTypeNotIn applies the NotIn predicate on the "change_type" field.
func ChangeTypeNotIn(vs ...ChangeType) predicate.PromptProposal {
	return predicate.PromptProposal(sql.FieldNotIn(FieldChangeType, vs...))
}

// OriginalTextEQ applies the EQ predicate on the "original_text" field.
func OriginalTextEQ(v string) predicate.PromptProposal {
	return predicate.PromptProposal(sql.FieldEQ(FieldOriginalText, v))
}

// OriginalTextNEQ applies the NEQ predicate on the "original_text" field.
func OriginalTextNEQ(v string) predicate.PromptProposal {
	return predicate.PromptProposal(sql.FieldNEQ(FieldOriginalText, v))
}

// OriginalTextIn applies the In predicate on the "original_text" field.
func OriginalTextIn(vs ...string) predicate.PromptProposal {
	return predicate.PromptProposal(sql.FieldIn(FieldOriginalText, vs...))
}

// OriginalTextNotIn applies the NotIn predicate on the "original_text" field.
func OriginalTextNotIn(vs ...string) predicate.PromptProposal {
	return predicate.PromptProposal(sql.FieldNotIn(FieldOriginalText, vs...))
}

// OriginalTextGT applies the GT predicate on the "original_text" field.
func OriginalTextGT(v string) predicate.PromptProposal {
	return predicate.PromptProposal(sql.FieldGT(FieldOriginalText, v))
}

// OriginalTextGTE applies the GTE predicate on the "original_text" field.
func OriginalTextGTE(v string) predicate.PromptProposal {
	return predicate.PromptProposal(sql.FieldGTE(FieldOriginalText, v))
}

// OriginalTextLT applies the LT predicate on the "original_text" field.
func OriginalTextLT(v string) predicate.PromptProposal {
	return predicate.PromptProposal(sql.FieldLT(FieldOriginalText, v))
}

// OriginalTextLTE applies the LTE predicate on the "original_text" field.
func OriginalTextLTE(v string) predicate.PromptProposal {
	return predicate.PromptProposal(sql.FieldLTE(FieldOriginalText, v))
}

// OriginalTextContains applies the Contains predicate on the "original_text" field.
func OriginalTextContains(v string) predicate.PromptProposal {
	return predicate.PromptProposal(sql.FieldContains(FieldOriginalText, v))
}

// OriginalTextHasPrefix applies the HasPrefix predicate on the "original_text" field.
func OriginalTextHasPrefix(v string) predicate.PromptProposal {
	return predicate.PromptProposal(sql.FieldHasPrefix(FieldOriginalText, v))
}

// OriginalTextHasSuffix applies the HasSuffix predicate on the "original_text" field.
func OriginalTextHasSuffix(v string) predicate.PromptProposal {
	return predicate.PromptProposal(sql.FieldHasSuffix(FieldOriginalText, v))
}

// OriginalTextIsNil applies the IsNil predicate on the "original_text" field.
func OriginalTextIsNil() predicate.PromptProposal {
	return predicate.PromptProposal(sql.FieldIsNull(FieldOriginalText))
}

// OriginalTextNotNil applies the NotNil predicate on the "original_text" field.
func OriginalTextNotNil() predicate.PromptProposal {
	return predicate.PromptProposal(sql.FieldNotNull(FieldOriginalText))
}

// OriginalTextEqualFold applies the EqualFold predicate on the "original_text" field.
func OriginalTextEqualFold(v string) predicate.PromptProposal {
	return predicate.PromptProposal(sql.FieldEqualFold(FieldOriginalText, v))
}

// OriginalTextContainsFold applies the ContainsFold predicate on the "original_text" field.
func OriginalTextContainsFold(v string) predicate.PromptProposal {
	return predicate.PromptProposal(sql.FieldContainsFold(FieldOriginalText, v))
}

// ProposedTextEQ applies the EQ predicate on the "proposed_text" field.
func ProposedTextEQ(v string) predicate.PromptProposal {
	return predicate.PromptProposal(sql.FieldEQ(FieldProposedText, v))
}

// ProposedTextNEQ applies the NEQ predicate on the "proposed_text" field.
func ProposedTextNEQ(v string) predicate.PromptProposal {
	return predicate.PromptProposal(sql.FieldNEQ(FieldProposedText, v))
}

// ProposedTextIn applies the In predicate on the "proposed_text" field.
func ProposedTextIn(vs ...string) predicate.PromptProposal {
	return predicate.PromptProposal(sql.FieldIn(FieldProposedText, vs...))
}

// ProposedTextNotIn applies the NotIn predicate on the "proposed_text" field.
func ProposedTextNotIn(vs ...string) predicate.PromptProposal {
	return predicate.PromptProposal(sql.FieldNotIn(FieldProposedText, vs...))
}

// ProposedTextGT applies the GT predicate on the "proposed_text" field.
func ProposedTextGT(v string) predicate.PromptProposal {
	return predicate.PromptProposal(sql.FieldGT(FieldProposedText, v))
}

// ProposedTextGTE applies the GTE predicate on the "proposed_text" field.
func ProposedTextGTE(v string) predicate.PromptProposal {
	return predicate.PromptProposal(sql.FieldGTE(FieldProposedText, v))
}

// ProposedTextLT applies the LT predicate on the "proposed_text" field.
func ProposedTextLT(v string) predicate.PromptProposal {
	return predicate.PromptProposal(sql.FieldLT(FieldProposedText, v))
}

// ProposedTextLTE applies the LTE predicate on the "proposed_text" field.
func ProposedTextLTE(v string) predicate.PromptProposal {
	return predicate.PromptProposal(sql.FieldLTE(FieldProposedText, v))
}

// ProposedTextContains applies the Contains predicate on the "proposed_text" field.
func ProposedTextContains(v string) predicate.PromptProposal {
	return predicate.PromptProposal(sql.FieldContains(FieldProposedText, v))
}

// ProposedTextHasPrefix applies the HasPrefix predicate on the "proposed_text" field.
func ProposedTextHasPrefix(v string) predicate.PromptProposal {
	return predicate.PromptProposal(sql.FieldHasPrefix(FieldProposedText, v))
}

// ProposedTextHasSuffix applies the HasSuffix predicate on the "proposed_text" field.
func ProposedTextHasSuffix(v string) predicate.PromptProposal {
	return predicate.PromptProposal(sql.FieldHasSuffix(FieldProposedText, v))
}

// ProposedTextEqualFold applies the EqualFold predicate on the "proposed_text" field.
func ProposedTextEqualFold(v string) predicate.PromptProposal {
	return predicate.PromptProposal(sql.FieldEqualFold(FieldProposedText, v))
}

// ProposedTextContainsFold applies the ContainsFold predicate on the "proposed_text" field.
func ProposedTextContainsFold(v string) predicate.PromptProposal {
	return predicate.PromptProposal(sql.FieldContainsFold(FieldProposedText, v))
}

// RationaleEQ applies the EQ predicate on the "rationale" field.
func RationaleEQ(v string) predicate.PromptProposal {
	return predicate.PromptProposal(sql.FieldEQ(FieldRationale, v))
}

// RationaleNEQ applies the NEQ predicate on the "rationale" field.
func RationaleNEQ(v string) predicate.PromptProposal {
	return predicate.PromptProposal(sql.FieldNEQ(FieldRationale, v))
}

// RationaleIn applies the In predicate on the "rationale" field.
func RationaleIn(vs ...string) predicate.PromptProposal {
	return predicate.PromptProposal(sql.FieldIn(FieldRationale, vs...))
}

// RationaleNotIn applies the NotIn predicate on the "rationale" field.
func RationaleNotIn(vs ...string) predicate.PromptProposal {
	return predicate.PromptProposal(sql.FieldNotIn(FieldRationale, vs...))
}

// RationaleGT applies the GT predicate on the "rationale" field.
func RationaleGT(v string) predicate.PromptProposal {
	return predicate.PromptProposal(sql.FieldGT(FieldRationale, v))
}

// RationaleGTE applies the GTE predicate on the "rationale" field.
func RationaleGTE(v string) predicate.PromptProposal {
	return predicate.PromptProposal(sql.FieldGTE(FieldRationale, v))
}

// RationaleLT applies the LT predicate on the "rationale" field.
func RationaleLT(v string) predicate.PromptProposal {
	return predicate.PromptProposal(sql.FieldLT(FieldRationale, v))
}

// RationaleLTE applies the LTE predicate on the "rationale" field.
func RationaleLTE(v string) predicate.PromptProposal {
	return predicate.PromptProposal(sql.FieldLTE(FieldRationale, v))
}

// RationaleContains applies the Contains predicate on the "rationale" field.
func RationaleContains(v string) predicate.PromptProposal {
	return predicate.PromptProposal(sql.FieldContains(FieldRationale, v))
}

// RationaleHasPrefix applies the HasPrefix predicate on the "rationale" field.
func RationaleHasPrefix(v string) predicate.PromptProposal {
	return predicate.PromptProposal(sql.FieldHasPrefix(FieldRationale, v))
}

// RationaleHasSuffix applies the HasSuffix predicate on the "rationale" field.
func RationaleHasSuffix(v string) predicate.PromptProposal {
	return predicate.PromptProposal(sql.FieldHasSuffix(FieldRationale, v))
}

// RationaleEqualFold applies the EqualFold predicate on the "rationale" field.
func RationaleEqualFold(v string) predicate.PromptProposal {
	return predicate.PromptProposal(sql.FieldEqualFold(FieldRationale, v))
}

// RationaleContainsFold applies the ContainsFold predicate on the "rationale" field.
func RationaleContainsFold(v string) predicate.PromptProposal {
	return predicate.PromptProposal(sql.FieldContainsFold(FieldRationale, v))
}

// EvidenceIsNil applies the IsNil predicate on the "evidence" field.
func EvidenceIsNil() predicate.PromptProposal {
	return predicate.PromptProposal(sql.FieldIsNull(FieldEvidence))
}

// EvidenceNotNil applies the NotNil predicate on the "evidence" field.
func EvidenceNotNil() predicate.PromptProposal {
	return predicate.PromptProposal(sql.FieldNotNull(FieldEvidence))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v int) predicate.PromptProposal {
	return predicate.PromptProposal(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v int) predicate.PromptProposal {
	return predicate.PromptProposal(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...int) predicate.PromptProposal {
	return predicate.PromptProposal(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...int) predicate.PromptProposal {
	return predicate.PromptProposal(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v int) predicate.PromptProposal {
	return predicate.PromptProposal(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v int) predicate.PromptProposal {
	return predicate.PromptProposal(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v int) predicate.PromptProposal {
	return predicate.PromptProposal(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v int) predicate.PromptProposal {
	return predicate.PromptProposal(sql.FieldLTE(FieldConfidence, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.PromptProposal {
	return predicate.PromptProposal(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.PromptProposal {
	return predicate.PromptProposal(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.PromptProposal {
	return predicate.PromptProposal(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.PromptProposal {
	return predicate.PromptProposal(sql.FieldNotIn(FieldStatus, vs...))
}

// AppliedAtEQ applies the EQ predicate on the "applied_at" field.
func AppliedAtEQ(v time.Time) predicate.PromptProposal {
	return predicate.PromptProposal(sql.FieldEQ(FieldAppliedAt, v))
}

// AppliedAtNEQ applies the NEQ predicate on the "applied_at" field.
func AppliedAtNEQ(v time.Time) predicate.PromptProposal {
	return predicate.PromptProposal(sql.FieldNEQ(FieldAppliedAt, v))
}

// AppliedAtIn applies the In predicate on the "applied_at" field.
func AppliedAtIn(vs ...time.Time) predicate.PromptProposal {
	return predicate.PromptProposal(sql.FieldIn(FieldAppliedAt, vs...))
}

// AppliedAtNotIn applies the NotIn predicate on the "applied_at" field.
func AppliedAtNotIn(vs ...time.Time) predicate.PromptProposal {
	return predicate.PromptProposal(sql.FieldNotIn(FieldAppliedAt, vs...))
}

// AppliedAtGT applies the GT predicate on the "applied_at" field.
func AppliedAtGT(v time.Time) predicate.PromptProposal {
	return predicate.PromptProposal(sql.FieldGT(FieldAppliedAt, v))
}

// AppliedAtGTE applies the GTE predicate on the "applied_at" field.
func AppliedAtGTE(v time.Time) predicate.PromptProposal {
	return predicate.PromptProposal(sql.FieldGTE(FieldAppliedAt, v))
}

// AppliedAtLT applies the LT predicate on the "applied_at" field.
func AppliedAtLT(v time.Time) predicate.PromptProposal {
	return predicate.PromptProposal(sql.FieldLT(FieldAppliedAt, v))
}

// AppliedAtLTE applies the LTE predicate on the "applied_at" field.
func AppliedAtLTE(v time.Time) predicate.PromptProposal {
	return predicate.PromptProposal(sql.FieldLTE(FieldAppliedAt, v))
}

// AppliedAtIsNil applies the IsNil predicate on the "applied_at" field.
func AppliedAtIsNil() predicate.PromptProposal {
	return predicate.PromptProposal(sql.FieldIsNull(FieldAppliedAt))
}

// AppliedAtNotNil applies the NotNil predicate on the "applied_at" field.
func AppliedAtNotNil() predicate.PromptProposal {
	return predicate.PromptProposal(sql.FieldNotNull(FieldAppliedAt))
}

// AppliedByEQ applies the EQ predicate on the "applied_by" field.
func AppliedByEQ(v string) predicate.PromptProposal {
	return predicate.PromptProposal(sql.FieldEQ(FieldAppliedBy, v))
}

// AppliedByNEQ applies the NEQ predicate on the "applied_by" field.
func AppliedByNEQ(v string) predicate.PromptProposal {
	return predicate.PromptProposal(sql.FieldNEQ(FieldAppliedBy, v))
}

// AppliedByIn applies the In predicate on the "applied_by" field.
func AppliedByIn(vs ...string) predicate.PromptProposal {
	return predicate.PromptProposal(sql.FieldIn(FieldAppliedBy, vs...))
}

// AppliedByNotIn applies the NotIn predicate on the "applied_by" field.
func AppliedByNotIn(vs ...string) predicate.PromptProposal {
	return predicate.PromptProposal(sql.FieldNotIn(FieldAppliedBy, vs...))
}

// AppliedByGT applies the GT predicate on the "applied_by" field.
func AppliedByGT(v string) predicate.PromptProposal {
	return predicate.PromptProposal(sql.FieldGT(FieldAppliedBy, v))
}

// AppliedByGTE applies the GTE predicate on the "applied_by" field.
func AppliedByGTE(v string) predicate.PromptProposal {
	return predicate.PromptProposal(sql.FieldGTE(FieldAppliedBy, v))
}

// AppliedByLT applies the LT predicate on the "applied_by" field.
func AppliedByLT(v string) predicate.PromptProposal {
	return predicate.PromptProposal(sql.FieldLT(FieldAppliedBy, v))
}

// AppliedByLTE applies the LTE predicate on the "applied_by" field.
func AppliedByLTE(v string) predicate.PromptProposal {
	return predicate.PromptProposal(sql.FieldLTE(FieldAppliedBy, v))
}

// AppliedByContains applies the Contains predicate on the "applied_by" field.
func AppliedByContains(v string) predicate.PromptProposal {
	return predicate.PromptProposal(sql.FieldContains(FieldAppliedBy, v))
}

// AppliedByHasPrefix applies the HasPrefix predicate on the "applied_by" field.
func AppliedByHasPrefix(v string) predicate.PromptProposal {
	return predicate.PromptProposal(sql.FieldHasPrefix(FieldAppliedBy, v))
}

// AppliedByHasSuffix applies the HasSuffix predicate on the "applied_by" field.
func AppliedByHasSuffix(v string) predicate.PromptProposal {
	return predicate.PromptProposal(sql.FieldHasSuffix(FieldAppliedBy, v))
}

// AppliedByIsNil applies the IsNil predicate on the "applied_by" field.
func AppliedByIsNil() predicate.PromptProposal {
	return predicate.PromptProposal(sql.FieldIsNull(FieldAppliedBy))
}

// AppliedByNotNil applies the NotNil predicate on the "applied_by" field.
func AppliedByNotNil() predicate.PromptProposal {
	return predicate.PromptProposal(sql.FieldNotNull(FieldAppliedBy))
}

// AppliedByEqualFold applies the EqualFold predicate on the "applied_by" field.
func AppliedByEqualFold(v string) predicate.PromptProposal {
	return predicate.PromptProposal(sql.FieldEqualFold(FieldAppliedBy, v))
}

// AppliedByContainsFold applies the ContainsFold predicate on the "applied_by" field.
func AppliedByContainsFold(v string) predicate.PromptProposal {
	return predicate.PromptProposal(sql.FieldContainsFold(FieldAppliedBy, v))
}

// PromptVersionIDEQ applies the EQ predicate on the "prompt_version_id" field.
func PromptVersionIDEQ(v string) predicate.PromptProposal {
	return predicate.PromptProposal(sql.FieldEQ(FieldPromptVersionID, v))
}

// PromptVersionIDNEQ applies the NEQ predicate on the "prompt_version_id" field.
func PromptVersionIDNEQ(v string) predicate.PromptProposal {
	return predicate.PromptProposal(sql.FieldNEQ(FieldPromptVersionID, v))
}

// PromptVersionIDIn applies the In predicate on the "prompt_version_id" field.
func PromptVersionIDIn(vs ...string) predicate.PromptProposal {
	return predicate.PromptProposal(sql.FieldIn(FieldPromptVersionID, vs...))
}

// PromptVersionIDNotIn applies the NotIn predicate on the "prompt_version_id" field.
func PromptVersionIDNotIn(vs ...string) predicate.PromptProposal {
	return predicate.PromptProposal(sql.FieldNotIn(FieldPromptVersionID, vs...))
}

// PromptVersionIDGT applies the GT predicate on the "prompt_version_id" field.
func PromptVersionIDGT(v string) predicate.PromptProposal {
	return predicate.PromptProposal(sql.FieldGT(FieldPromptVersionID, v))
}

// PromptVersionIDGTE applies the GTE predicate on the "prompt_version_id" field.
func PromptVersionIDGTE(v string) predicate.PromptProposal {
	return predicate.PromptProposal(sql.FieldGTE(FieldPromptVersionID, v))
}

// PromptVersionIDLT applies the LT predicate on the "prompt_version_id" field.
func PromptVersionIDLT(v string) predicate.PromptProposal {
	return predicate.PromptProposal(sql.FieldLT(FieldPromptVersionID, v))
}

// PromptVersionIDLTE applies the LTE predicate on the "prompt_version_id" field.
func PromptVersionIDLTE(v string) predicate.PromptProposal {
	return predicate.PromptProposal(sql.FieldLTE(FieldPromptVersionID, v))
}

// PromptVersionIDContains applies the Contains predicate on the "prompt_version_id" field.
func PromptVersionIDContains(v string) predicate.PromptProposal {
	return predicate.PromptProposal(sql.FieldContains(FieldPromptVersionID, v))
}

// PromptVersionIDHasPrefix applies the HasPrefix predicate on the "prompt_version_id" field.
func PromptVersionIDHasPrefix(v string) predicate.PromptProposal {
	return predicate.PromptProposal(sql.FieldHasPrefix(FieldPromptVersionID, v))
}

// PromptVersionIDHasSuffix applies the HasSuffix predicate on the "prompt_version_id" field.
func PromptVersionIDHasSuffix(v string) predicate.PromptProposal {
	return predicate.PromptProposal(sql.FieldHasSuffix(FieldPromptVersionID, v))
}

// PromptVersionIDIsNil applies the IsNil predicate on the "prompt_version_id" field.
func PromptVersionIDIsNil() predicate.PromptProposal {
	return predicate.PromptProposal(sql.FieldIsNull(FieldPromptVersionID))
}

// PromptVersionIDNotNil applies the NotNil predicate on the "prompt_version_id" field.
func PromptVersionIDNotNil() predicate.PromptProposal {
	return predicate.PromptProposal(sql.FieldNotNull(FieldPromptVersionID))
}

// PromptVersionIDEqualFold applies the EqualFold predicate on the "prompt_version_id" field.
func PromptVersionIDEqualFold(v string) predicate.PromptProposal {
	return predicate.PromptProposal(sql.FieldEqualFold(FieldPromptVersionID, v))
}

// PromptVersionIDContainsFold applies the ContainsFold predicate on the "prompt_version_id" field.
func PromptVersionIDContainsFold(v string) predicate.PromptProposal {
	return predicate.PromptProposal(sql.FieldContainsFold(FieldPromptVersionID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.PromptProposal {
	return predicate.PromptProposal(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.PromptProposal {
	return predicate.PromptProposal(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.PromptProposal {
	return predicate.PromptProposal(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.PromptProposal {
	return predicate.PromptProposal(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.PromptProposal {
	return predicate.PromptProposal(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.PromptProposal {
	return predicate.PromptProposal(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.PromptProposal {
	return predicate.PromptProposal(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.PromptProposal {
	return predicate.PromptProposal(sql.FieldLTE(FieldCreatedAt, v))
}

// HasAnalysis applies the HasEdge predicate on the "analysis" edge.
func HasAnalysis() predicate.PromptProposal {
	return predicate.PromptProposal(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, AnalysisTable, AnalysisColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAnalysisWith applies the HasEdge predicate on the "analysis" edge with a given conditions (other predicates).
func HasAnalysisWith(preds ...predicate.PromptAnalysis) predicate.PromptProposal {
	return predicate.PromptProposal(func(s *sql.Selector) {
		step := newAnalysisStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PromptProposal) predicate.PromptProposal {
	return predicate.PromptProposal(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PromptProposal) predicate.PromptProposal {
	return predicate.PromptProposal(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PromptProposal) predicate.PromptProposal {
	return predicate.PromptProposal(sql.NotPredicates(p))
}
