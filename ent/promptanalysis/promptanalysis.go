// Code generated by ent, DO NOT EDIT.

package promptanalysis

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the promptanalysis type in the database.
	Label = "prompt_analysis"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "analysis_id"
	// FieldProjectsAnalyzed holds the string denoting the projects_analyzed field in the database.
	FieldProjectsAnalyzed = "projects_analyzed"
	// FieldSandboxType holds the string denoting the sandbox_type field in the database.
	FieldSandboxType = "sandbox_type"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldTriggeredBy holds the string denoting the triggered_by field in the database.
	FieldTriggeredBy = "triggered_by"
	// FieldDateRangeStart holds the string denoting the date_range_start field in the database.
	FieldDateRangeStart = "date_range_start"
	// FieldDateRangeEnd holds the string denoting the date_range_end field in the database.
	FieldDateRangeEnd = "date_range_end"
	// FieldSessionsAnalyzed holds the string denoting the sessions_analyzed field in the database.
	FieldSessionsAnalyzed = "sessions_analyzed"
	// FieldPatterns holds the string denoting the patterns field in the database.
	FieldPatterns = "patterns"
	// FieldQualityImpactEstimate holds the string denoting the quality_impact_estimate field in the database.
	FieldQualityImpactEstimate = "quality_impact_estimate"
	// FieldNotes holds the string denoting the notes field in the database.
	FieldNotes = "notes"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// EdgeProposals holds the string denoting the proposals edge name in mutations.
	EdgeProposals = "proposals"
	// PromptProposalFieldID holds the string denoting the ID field of the PromptProposal.
	PromptProposalFieldID = "proposal_id"
	// Table holds the table name of the promptanalysis in the database.
	Table = "prompt_analyses"
	// ProposalsTable is the table that holds the proposals relation/edge.
	ProposalsTable = "prompt_proposals"
	// ProposalsInverseTable is the table name for the PromptProposal entity.
	// It exists in this package in order to avoid circular dependency with the "promptproposal" package.
	ProposalsInverseTable = "prompt_proposals"
	// ProposalsColumn is the table column denoting the proposals relation/edge.
	ProposalsColumn = "analysis_id"
)

// Columns holds all SQL columns for promptanalysis fields.
var Columns = []string{
	FieldID,
	FieldProjectsAnalyzed,
	FieldSandboxType,
	FieldStatus,
	FieldTriggeredBy,
	FieldDateRangeStart,
	FieldDateRangeEnd,
	FieldSessionsAnalyzed,
	FieldPatterns,
	FieldQualityImpactEstimate,
	FieldNotes,
	FieldCreatedAt,
	FieldCompletedAt,
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
	// DefaultTriggeredBy holds the default value on creation for the "triggered_by" field.
	DefaultTriggeredBy string
	// DefaultSessionsAnalyzed holds the default value on creation for the "sessions_analyzed" field.
	DefaultSessionsAnalyzed int
	// DefaultQualityImpactEstimate holds the default value on creation for the "quality_impact_estimate" field.
	DefaultQualityImpactEstimate float64
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusRunning is the default value of the Status enum.
const DefaultStatus = StatusRunning

// Status values.
const (
	StatusRunning   Status = "running"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusRunning, StatusCompleted, StatusFailed:
		return nil
	default:
		return fmt.Errorf("promptanalysis: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the PromptAnalysis queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySandboxType orders the results by the sandbox_type field.
func BySandboxType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSandboxType, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByTriggeredBy orders the results by the triggered_by field.
func ByTriggeredBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTriggeredBy, opts...).ToFunc()
}

// ByDateRangeStart orders the results by the date_range_start field.
func ByDateRangeStart(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDateRangeStart, opts...).ToFunc()
}

// ByDateRangeEnd orders the results by the date_range_end field.
func ByDateRangeEnd(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDateRangeEnd, opts...).ToFunc()
}

// BySessionsAnalyzed orders the results by the sessions_analyzed field.
func BySessionsAnalyzed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionsAnalyzed, opts...).ToFunc()
}

// ByQualityImpactEstimate orders the results by the quality_impact_estimate field.
func ByQualityImpactEstimate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQualityImpactEstimate, opts...).ToFunc()
}

// ByNotes orders the results by the notes field.
func ByNotes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNotes, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByProposalsCount orders the results by proposals count.
func ByProposalsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newProposalsStep(), opts...)
	}
}

// ByProposals orders the results by proposals terms.
func ByProposals(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newProposalsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newProposalsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ProposalsInverseTable, PromptProposalFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ProposalsTable, ProposalsColumn),
	)
}
