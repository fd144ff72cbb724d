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
	"github.com/autoforge-dev/autoforge/ent/promptproposal"
)

// PromptProposal is the model entity for the PromptProposal schema.
type PromptProposal struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// AnalysisID holds the value of the "analysis_id" field.
	AnalysisID string `json:"analysis_id,omitempty"`
	// PromptFile holds the value of the "prompt_file" field.
	PromptFile string `json:"prompt_file,omitempty"`
	// SectionName holds the value of the "section_name" field.
	SectionName string `json:"section_name,omitempty"`
	// ChangeType holds the value of the "change_type" field.
	ChangeType promptproposal.ChangeType `json:"change_type,omitempty"`
	// OriginalText holds the value of the "original_text" field.
	OriginalText string `json:"original_text,omitempty"`
	// ProposedText holds the value of the "proposed_text" field.
	ProposedText string `json:"proposed_text,omitempty"`
	// Rationale holds the value of the "rationale" field.
	Rationale string `json:"rationale,omitempty"`
	// Evidence holds the value of the "evidence" field.
	Evidence []map[string]interface{} `json:"evidence,omitempty"`
	// Confidence holds the value of the "confidence" field.
	Confidence int `json:"confidence,omitempty"`
	// Status holds the value of the "status" field.
	Status promptproposal.Status `json:"status,omitempty"`
	// AppliedAt holds the value of the "applied_at" field.
	AppliedAt *time.Time `json:"applied_at,omitempty"`
	// AppliedBy holds the value of the "applied_by" field.
	AppliedBy *string `json:"applied_by,omitempty"`
	// PromptVersion created when the proposal was applied
	PromptVersionID *string `json:"prompt_version_id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the PromptProposalQuery when eager-loading is set.
	Edges        PromptProposalEdges `json:"edges"`
	selectValues sql.SelectValues
}

// PromptProposalEdges holds the relations/edges for other nodes in the graph.
type PromptProposalEdges struct {
	// Analysis holds the value of the analysis edge.
	Analysis *PromptAnalysis `json:"analysis,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// AnalysisOrErr returns the Analysis value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e PromptProposalEdges) AnalysisOrErr() (*PromptAnalysis, error) {
	if e.Analysis != nil {
		return e.Analysis, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: promptanalysis.Label}
	}
	return nil, &NotLoadedError{edge: "analysis"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PromptProposal) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case promptproposal.FieldEvidence:
			values[i] = new([]byte)
		case promptproposal.FieldConfidence:
			values[i] = new(sql.NullInt64)
		case promptproposal.FieldID, promptproposal.FieldAnalysisID, promptproposal.FieldPromptFile, promptproposal.FieldSectionName, promptproposal.FieldChangeType, promptproposal.FieldOriginalText, promptproposal.FieldProposedText, promptproposal.FieldRationale, promptproposal.FieldStatus, promptproposal.FieldAppliedBy, promptproposal.FieldPromptVersionID:
			values[i] = new(sql.NullString)
		case promptproposal.FieldAppliedAt, promptproposal.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PromptProposal fields.
func (_m *PromptProposal) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case promptproposal.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case promptproposal.FieldAnalysisID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field analysis_id", values[i])
			} else if value.Valid {
				_m.AnalysisID = value.String
			}
		case promptproposal.FieldPromptFile:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field prompt_file", values[i])
			} else if value.Valid {
				_m.PromptFile = value.String
			}
		case promptproposal.FieldSectionName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field section_name", values[i])
			} else if value.Valid {
				_m.SectionName = value.String
			}
		case promptproposal.FieldChangeType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field change_type", values[i])
			} else if value.Valid {
				_m.ChangeType = promptproposal.ChangeType(value.String)
			}
		case promptproposal.FieldOriginalText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field original_text", values[i])
			} else if value.Valid {
				_m.OriginalText = value.String
			}
		case promptproposal.FieldProposedText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field proposed_text", values[i])
			} else if value.Valid {
				_m.ProposedText = value.String
			}
		case promptproposal.FieldRationale:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field rationale", values[i])
			} else if value.Valid {
				_m.Rationale = value.String
			}
		case promptproposal.FieldEvidence:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field evidence", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Evidence); err != nil {
					return fmt.Errorf("unmarshal field evidence: %w", err)
				}
			}
		case promptproposal.FieldConfidence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence", values[i])
			} else if value.Valid {
				_m.Confidence = int(value.Int64)
			}
		case promptproposal.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = promptproposal.Status(value.String)
			}
		case promptproposal.FieldAppliedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field applied_at", values[i])
			} else if value.Valid {
				_m.AppliedAt = new(time.Time)
				*_m.AppliedAt = value.Time
			}
		case promptproposal.FieldAppliedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field applied_by", values[i])
			} else if value.Valid {
				_m.AppliedBy = new(string)
				*_m.AppliedBy = value.String
			}
		case promptproposal.FieldPromptVersionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field prompt_version_id", values[i])
			} else if value.Valid {
				_m.PromptVersionID = new(string)
				*_m.PromptVersionID = value.String
			}
		case promptproposal.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the PromptProposal.
// This includes values selected through modifiers, order, etc.
func (_m *PromptProposal) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryAnalysis queries the "analysis" edge of the PromptProposal entity.
func (_m *PromptProposal) QueryAnalysis() *PromptAnalysisQuery {
	return NewPromptProposalClient(_m.config).QueryAnalysis(_m)
}

// Update returns a builder for updating this PromptProposal.
// Note that you need to call PromptProposal.Unwrap() before calling this method if this PromptProposal
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PromptProposal) Update() *PromptProposalUpdateOne {
	return NewPromptProposalClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PromptProposal entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PromptProposal) Unwrap() *PromptProposal {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PromptProposal is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PromptProposal) String() string {
	var builder strings.Builder
	builder.WriteString("PromptProposal(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("analysis_id=")
	builder.WriteString(_m.AnalysisID)
	builder.WriteString(", ")
	builder.WriteString("prompt_file=")
	builder.WriteString(_m.PromptFile)
	builder.WriteString(", ")
	builder.WriteString("section_name=")
	builder.WriteString(_m.SectionName)
	builder.WriteString(", ")
	builder.WriteString("change_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.ChangeType))
	builder.WriteString(", ")
	builder.WriteString("original_text=")
	builder.WriteString(_m.OriginalText)
	builder.WriteString(", ")
	builder.WriteString("proposed_text=")
	builder.WriteString(_m.ProposedText)
	builder.WriteString(", ")
	builder.WriteString("rationale=")
	builder.WriteString(_m.Rationale)
	builder.WriteString(", ")
	builder.WriteString("evidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Evidence))
	builder.WriteString(", ")
	builder.WriteString("confidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Confidence))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	if v := _m.AppliedAt; v != nil {
		builder.WriteString("applied_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.AppliedBy; v != nil {
		builder.WriteString("applied_by=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.PromptVersionID; v != nil {
		builder.WriteString("prompt_version_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// PromptProposals is a parsable slice of PromptProposal.
type PromptProposals []*PromptProposal
