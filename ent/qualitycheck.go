// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/autoforge-dev/autoforge/ent/agentsession"
	"github.com/autoforge-dev/autoforge/ent/qualitycheck"
)

// QualityCheck is the model entity for the QualityCheck schema.
type QualityCheck struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// SessionID holds the value of the "session_id" field.
	SessionID string `json:"session_id,omitempty"`
	// Kind holds the value of the "kind" field.
	Kind qualitycheck.Kind `json:"kind,omitempty"`
	// failed marks a deep review whose response did not parse
	Status qualitycheck.Status `json:"status,omitempty"`
	// OverallRating holds the value of the "overall_rating" field.
	OverallRating int `json:"overall_rating,omitempty"`
	// Metrics holds the value of the "metrics" field.
	Metrics map[string]interface{} `json:"metrics,omitempty"`
	// CriticalIssues holds the value of the "critical_issues" field.
	CriticalIssues []string `json:"critical_issues,omitempty"`
	// Warnings holds the value of the "warnings" field.
	Warnings []string `json:"warnings,omitempty"`
	// Deep review narrative
	ReviewText *string `json:"review_text,omitempty"`
	// Deep review recommendations consumed by the analyzer
	PromptImprovements []string `json:"prompt_improvements,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the QualityCheckQuery when eager-loading is set.
	Edges        QualityCheckEdges `json:"edges"`
	selectValues sql.SelectValues
}

// QualityCheckEdges holds the relations/edges for other nodes in the graph.
type QualityCheckEdges struct {
	// Session holds the value of the session edge.
	Session *AgentSession `json:"session,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// SessionOrErr returns the Session value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e QualityCheckEdges) SessionOrErr() (*AgentSession, error) {
	if e.Session != nil {
		return e.Session, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: agentsession.Label}
	}
	return nil, &NotLoadedError{edge: "session"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*QualityCheck) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case qualitycheck.FieldMetrics, qualitycheck.FieldCriticalIssues, qualitycheck.FieldWarnings, qualitycheck.FieldPromptImprovements:
			values[i] = new([]byte)
		case qualitycheck.FieldOverallRating:
			values[i] = new(sql.NullInt64)
		case qualitycheck.FieldID, qualitycheck.FieldSessionID, qualitycheck.FieldKind, qualitycheck.FieldStatus, qualitycheck.FieldReviewText:
			values[i] = new(sql.NullString)
		case qualitycheck.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the QualityCheck fields.
func (_m *QualityCheck) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case qualitycheck.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case qualitycheck.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case qualitycheck.FieldKind:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field kind", values[i])
			} else if value.Valid {
				_m.Kind = qualitycheck.Kind(value.String)
			}
		case qualitycheck.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = qualitycheck.Status(value.String)
			}
		case qualitycheck.FieldOverallRating:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field overall_rating", values[i])
			} else if value.Valid {
				_m.OverallRating = int(value.Int64)
			}
		case qualitycheck.FieldMetrics:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field metrics", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Metrics); err != nil {
					return fmt.Errorf("unmarshal field metrics: %w", err)
				}
			}
		case qualitycheck.FieldCriticalIssues:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field critical_issues", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.CriticalIssues); err != nil {
					return fmt.Errorf("unmarshal field critical_issues: %w", err)
				}
			}
		case qualitycheck.FieldWarnings:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field warnings", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Warnings); err != nil {
					return fmt.Errorf("unmarshal field warnings: %w", err)
				}
			}
		case qualitycheck.FieldReviewText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field review_text", values[i])
			} else if value.Valid {
				_m.ReviewText = new(string)
				*_m.ReviewText = value.String
			}
		case qualitycheck.FieldPromptImprovements:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field prompt_improvements", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.PromptImprovements); err != nil {
					return fmt.Errorf("unmarshal field prompt_improvements: %w", err)
				}
			}
		case qualitycheck.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the QualityCheck.
// This includes values selected through modifiers, order, etc.
func (_m *QualityCheck) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySession queries the "session" edge of the QualityCheck entity.
func (_m *QualityCheck) QuerySession() *AgentSessionQuery {
	return NewQualityCheckClient(_m.config).QuerySession(_m)
}

// Update returns a builder for updating this QualityCheck.
// Note that you need to call QualityCheck.Unwrap() before calling this method if this QualityCheck
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *QualityCheck) Update() *QualityCheckUpdateOne {
	return NewQualityCheckClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the QualityCheck entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *QualityCheck) Unwrap() *QualityCheck {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: QualityCheck is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *QualityCheck) String() string {
	var builder strings.Builder
	builder.WriteString("QualityCheck(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("kind=")
	builder.WriteString(fmt.Sprintf("%v", _m.Kind))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("overall_rating=")
	builder.WriteString(fmt.Sprintf("%v", _m.OverallRating))
	builder.WriteString(", ")
	builder.WriteString("metrics=")
	builder.WriteString(fmt.Sprintf("%v", _m.Metrics))
	builder.WriteString(", ")
	builder.WriteString("critical_issues=")
	builder.WriteString(fmt.Sprintf("%v", _m.CriticalIssues))
	builder.WriteString(", ")
	builder.WriteString("warnings=")
	builder.WriteString(fmt.Sprintf("%v", _m.Warnings))
	builder.WriteString(", ")
	if v := _m.ReviewText; v != nil {
		builder.WriteString("review_text=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("prompt_improvements=")
	builder.WriteString(fmt.Sprintf("%v", _m.PromptImprovements))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// QualityChecks is a parsable slice of QualityCheck.
type QualityChecks []*QualityCheck
