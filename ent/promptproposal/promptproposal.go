// Code generated by ent, DO NOT EDIT.

package promptproposal

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the promptproposal type in the database.
	Label = "prompt_proposal"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "proposal_id"
	// FieldAnalysisID holds the string denoting the analysis_id field in the database.
	FieldAnalysisID = "analysis_id"
	// FieldPromptFile holds the string denoting the prompt_file field in the database.
	FieldPromptFile = "prompt_file"
	// FieldSectionName holds the string denoting the section_name field in the database.
	FieldSectionName = "section_name"
	// FieldChangeType holds the string denoting the change_type field in the database.
	FieldChangeType = "change_type"
	// FieldOriginalText holds the string denoting the original_text field in the database.
	FieldOriginalText = "original_text"
	// FieldProposedText holds the string denoting the proposed_text field in the database.
	FieldProposedText = "proposed_text"
	// FieldRationale holds the string denoting the rationale field in the database.
	FieldRationale = "rationale"
	// FieldEvidence holds the string denoting the evidence field in the database.
	FieldEvidence = "evidence"
	// FieldConfidence holds the string denoting the confidence field in the database.
	FieldConfidence = "confidence"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldAppliedAt holds the string denoting the applied_at field in the database.
	FieldAppliedAt = "applied_at"
	// FieldAppliedBy holds the string denoting the applied_by field in the database.
	FieldAppliedBy = "applied_by"
	// FieldPromptVersionID holds the string denoting the prompt_version_id field in the database.
	FieldPromptVersionID = "prompt_version_id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeAnalysis holds the string denoting the analysis edge name in mutations.
	EdgeAnalysis = "analysis"
	// PromptAnalysisFieldID holds the string denoting the ID field of the PromptAnalysis.
	PromptAnalysisFieldID = "analysis_id"
	// Table holds the table name of the promptproposal in the database.
	Table = "prompt_proposals"
	// AnalysisTable is the table that holds the analysis relation/edge.
	AnalysisTable = "prompt_proposals"
	// AnalysisInverseTable is the table name for the PromptAnalysis entity.
	// It exists in this package in order to avoid circular dependency with the "promptanalysis" package.
	AnalysisInverseTable = "prompt_analyses"
	// AnalysisColumn is the table column denoting the analysis relation/edge.
	AnalysisColumn = "analysis_id"
)

// Columns holds all SQL columns for promptproposal fields.
var Columns = []string{
	FieldID,
	FieldAnalysisID,
	FieldPromptFile,
	FieldSectionName,
	FieldChangeType,
	FieldOriginalText,
	FieldProposedText,
	FieldRationale,
	FieldEvidence,
	FieldConfidence,
	FieldStatus,
	FieldAppliedAt,
	FieldAppliedBy,
	FieldPromptVersionID,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// ConfidenceValidator is a validator for the "confidence" field. It is called by the builders before save.
	ConfidenceValidator func(int) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// ChangeType defines the type for the "change_type" enum field.
type ChangeType string

// ChangeType values.
const (
	ChangeTypeAddition     ChangeType = "addition"
	ChangeTypeModification ChangeType = "modification"
	ChangeTypeDeletion     ChangeType = "deletion"
)

func (ct ChangeType) String() string {
	return string(ct)
}

// ChangeTypeValidator is a validator for the "change_type" field enum values. It is called by the builders before save.
func ChangeTypeValidator(ct ChangeType) error {
	switch ct {
	case ChangeTypeAddition, ChangeTypeModification, ChangeTypeDeletion:
		return nil
	default:
		return fmt.Errorf("promptproposal: invalid enum value for change_type field: %q", ct)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusProposed is the default value of the Status enum.
const DefaultStatus = StatusProposed

// Status values.
const (
	StatusProposed    Status = "proposed"
	StatusAccepted    Status = "accepted"
	StatusRejected    Status = "rejected"
	StatusImplemented Status = "implemented"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusProposed, StatusAccepted, StatusRejected, StatusImplemented:
		return nil
	default:
		return fmt.Errorf("promptproposal: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the PromptProposal queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByAnalysisID orders the results by the analysis_id field.
func ByAnalysisID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAnalysisID, opts...).ToFunc()
}

// ByPromptFile orders the results by the prompt_file field.
func ByPromptFile(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPromptFile, opts...).ToFunc()
}

// BySectionName orders the results by the section_name field.
func BySectionName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSectionName, opts...).ToFunc()
}

// ByChangeType orders the results by the change_type field.
func ByChangeType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChangeType, opts...).ToFunc()
}

// ByOriginalText orders the results by the original_text field.
func ByOriginalText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOriginalText, opts...).ToFunc()
}

// ByProposedText orders the results by the proposed_text field.
func ByProposedText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProposedText, opts...).ToFunc()
}

// ByRationale orders the results by the rationale field.
func ByRationale(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRationale, opts...).ToFunc()
}

// ByConfidence orders the results by the confidence field.
func ByConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidence, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByAppliedAt orders the results by the applied_at field.
func ByAppliedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAppliedAt, opts...).ToFunc()
}

// ByAppliedBy orders the results by the applied_by field.
func ByAppliedBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAppliedBy, opts...).ToFunc()
}

// ByPromptVersionID orders the results by the prompt_version_id field.
func ByPromptVersionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPromptVersionID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByAnalysisField orders the results by analysis field.
func ByAnalysisField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAnalysisStep(), sql.OrderByField(field, opts...))
	}
}
func newAnalysisStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AnalysisInverseTable, PromptAnalysisFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, AnalysisTable, AnalysisColumn),
	)
}
