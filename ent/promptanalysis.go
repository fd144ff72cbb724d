// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/autoforge-dev/autoforge/ent/promptanalysis"
)

// PromptAnalysis is the model entity for the PromptAnalysis schema.
type PromptAnalysis struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// ProjectsAnalyzed holds the value of the "projects_analyzed" field.
	ProjectsAnalyzed []string `json:"projects_analyzed,omitempty"`
	// SandboxType holds the value of the "sandbox_type" field.
	SandboxType string `json:"sandbox_type,omitempty"`
	// Status holds the value of the "status" field.
	Status promptanalysis.Status `json:"status,omitempty"`
	// TriggeredBy holds the value of the "triggered_by" field.
	TriggeredBy string `json:"triggered_by,omitempty"`
	// DateRangeStart holds the value of the "date_range_start" field.
	DateRangeStart *time.Time `json:"date_range_start,omitempty"`
	// DateRangeEnd holds the value of the "date_range_end" field.
	DateRangeEnd *time.Time `json:"date_range_end,omitempty"`
	// SessionsAnalyzed holds the value of the "sessions_analyzed" field.
	SessionsAnalyzed int `json:"sessions_analyzed,omitempty"`
	// Patterns holds the value of the "patterns" field.
	Patterns map[string]interface{} `json:"patterns,omitempty"`
	// QualityImpactEstimate holds the value of the "quality_impact_estimate" field.
	QualityImpactEstimate float64 `json:"quality_impact_estimate,omitempty"`
	// Diagnostic note when the run fails
	Notes string `json:"notes,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the PromptAnalysisQuery when eager-loading is set.
	Edges        PromptAnalysisEdges `json:"edges"`
	selectValues sql.SelectValues
}

// PromptAnalysisEdges holds the relations/edges for other nodes in the graph.
type PromptAnalysisEdges struct {
	// Proposals holds the value of the proposals edge.
	Proposals []*PromptProposal `json:"proposals,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ProposalsOrErr returns the Proposals value or an error if the edge
// was not loaded in eager-loading.
func (e PromptAnalysisEdges) ProposalsOrErr() ([]*PromptProposal, error) {
	if e.loadedTypes[0] {
		return e.Proposals, nil
	}
	return nil, &NotLoadedError{edge: "proposals"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PromptAnalysis) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case promptanalysis.FieldProjectsAnalyzed, promptanalysis.FieldPatterns:
			values[i] = new([]byte)
		case promptanalysis.FieldQualityImpactEstimate:
			values[i] = new(sql.NullFloat64)
		case promptanalysis.FieldSessionsAnalyzed:
			values[i] = new(sql.NullInt64)
		case promptanalysis.FieldID, promptanalysis.FieldSandboxType, promptanalysis.FieldStatus, promptanalysis.FieldTriggeredBy, promptanalysis.FieldNotes:
			values[i] = new(sql.NullString)
		case promptanalysis.FieldDateRangeStart, promptanalysis.FieldDateRangeEnd, promptanalysis.FieldCreatedAt, promptanalysis.FieldCompletedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PromptAnalysis fields.
func (_m *PromptAnalysis) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case promptanalysis.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case promptanalysis.FieldProjectsAnalyzed:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field projects_analyzed", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ProjectsAnalyzed); err != nil {
					return fmt.Errorf("unmarshal field projects_analyzed: %w", err)
				}
			}
		case promptanalysis.FieldSandboxType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field sandbox_type", values[i])
			} else if value.Valid {
				_m.SandboxType = value.String
			}
		case promptanalysis.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = promptanalysis.Status(value.String)
			}
		case promptanalysis.FieldTriggeredBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field triggered_by", values[i])
			} else if value.Valid {
				_m.TriggeredBy = value.String
			}
		case promptanalysis.FieldDateRangeStart:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field date_range_start", values[i])
			} else if value.Valid {
				_m.DateRangeStart = new(time.Time)
				*_m.DateRangeStart = value.Time
			}
		case promptanalysis.FieldDateRangeEnd:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field date_range_end", values[i])
			} else if value.Valid {
				_m.DateRangeEnd = new(time.Time)
				*_m.DateRangeEnd = value.Time
			}
		case promptanalysis.FieldSessionsAnalyzed:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sessions_analyzed", values[i])
			} else if value.Valid {
				_m.SessionsAnalyzed = int(value.Int64)
			}
		case promptanalysis.FieldPatterns:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field patterns", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Patterns); err != nil {
					return fmt.Errorf("unmarshal field patterns: %w", err)
				}
			}
		case promptanalysis.FieldQualityImpactEstimate:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field quality_impact_estimate", values[i])
			} else if value.Valid {
				_m.QualityImpactEstimate = value.Float64
			}
		case promptanalysis.FieldNotes:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field notes", values[i])
			} else if value.Valid {
				_m.Notes = value.String
			}
		case promptanalysis.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case promptanalysis.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the PromptAnalysis.
// This includes values selected through modifiers, order, etc.
func (_m *PromptAnalysis) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryProposals queries the "proposals" edge of the PromptAnalysis entity.
func (_m *PromptAnalysis) QueryProposals() *PromptProposalQuery {
	return NewPromptAnalysisClient(_m.config).QueryProposals(_m)
}

// Update returns a builder for updating this PromptAnalysis.
// Note that you need to call PromptAnalysis.Unwrap() before calling this method if this PromptAnalysis
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PromptAnalysis) Update() *PromptAnalysisUpdateOne {
	return NewPromptAnalysisClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PromptAnalysis entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PromptAnalysis) Unwrap() *PromptAnalysis {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PromptAnalysis is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PromptAnalysis) String() string {
	var builder strings.Builder
	builder.WriteString("PromptAnalysis(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("projects_analyzed=")
	builder.WriteString(fmt.Sprintf("%v", _m.ProjectsAnalyzed))
	builder.WriteString(", ")
	builder.WriteString("sandbox_type=")
	builder.WriteString(_m.SandboxType)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("triggered_by=")
	builder.WriteString(_m.TriggeredBy)
	builder.WriteString(", ")
	if v := _m.DateRangeStart; v != nil {
		builder.WriteString("date_range_start=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.DateRangeEnd; v != nil {
		builder.WriteString("date_range_end=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("sessions_analyzed=")
	builder.WriteString(fmt.Sprintf("%v", _m.SessionsAnalyzed))
	builder.WriteString(", ")
	builder.WriteString("patterns=")
	builder.WriteString(fmt.Sprintf("%v", _m.Patterns))
	builder.WriteString(", ")
	builder.WriteString("quality_impact_estimate=")
	builder.WriteString(fmt.Sprintf("%v", _m.QualityImpactEstimate))
	builder.WriteString(", ")
	builder.WriteString("notes=")
	builder.WriteString(_m.Notes)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// PromptAnalyses is a parsable slice of PromptAnalysis.
type PromptAnalyses []*PromptAnalysis
