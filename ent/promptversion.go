// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/autoforge-dev/autoforge/ent/promptversion"
)

// PromptVersion is the model entity for the PromptVersion schema.
type PromptVersion struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// PromptFile holds the value of the "prompt_file" field.
	PromptFile string `json:"prompt_file,omitempty"`
	// VersionLabel holds the value of the "version_label" field.
	VersionLabel string `json:"version_label,omitempty"`
	// Content holds the value of the "content" field.
	Content string `json:"content,omitempty"`
	// Active holds the value of the "active" field.
	Active bool `json:"active,omitempty"`
	// IsDefault holds the value of the "is_default" field.
	IsDefault bool `json:"is_default,omitempty"`
	// Aggregated session quality while this version was active
	Performance map[string]interface{} `json:"performance,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PromptVersion) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case promptversion.FieldPerformance:
			values[i] = new([]byte)
		case promptversion.FieldActive, promptversion.FieldIsDefault:
			values[i] = new(sql.NullBool)
		case promptversion.FieldID, promptversion.FieldPromptFile, promptversion.FieldVersionLabel, promptversion.FieldContent:
			values[i] = new(sql.NullString)
		case promptversion.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PromptVersion fields.
func (_m *PromptVersion) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case promptversion.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case promptversion.FieldPromptFile:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field prompt_file", values[i])
			} else if value.Valid {
				_m.PromptFile = value.String
			}
		case promptversion.FieldVersionLabel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field version_label", values[i])
			} else if value.Valid {
				_m.VersionLabel = value.String
			}
		case promptversion.FieldContent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field content", values[i])
			} else if value.Valid {
				_m.Content = value.String
			}
		case promptversion.FieldActive:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field active", values[i])
			} else if value.Valid {
				_m.Active = value.Bool
			}
		case promptversion.FieldIsDefault:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_default", values[i])
			} else if value.Valid {
				_m.IsDefault = value.Bool
			}
		case promptversion.FieldPerformance:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field performance", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Performance); err != nil {
					return fmt.Errorf("unmarshal field performance: %w", err)
				}
			}
		case promptversion.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the PromptVersion.
// This includes values selected through modifiers, order, etc.
func (_m *PromptVersion) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this PromptVersion.
// Note that you need to call PromptVersion.Unwrap() before calling this method if this PromptVersion
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PromptVersion) Update() *PromptVersionUpdateOne {
	return NewPromptVersionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PromptVersion entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PromptVersion) Unwrap() *PromptVersion {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PromptVersion is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PromptVersion) String() string {
	var builder strings.Builder
	builder.WriteString("PromptVersion(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("prompt_file=")
	builder.WriteString(_m.PromptFile)
	builder.WriteString(", ")
	builder.WriteString("version_label=")
	builder.WriteString(_m.VersionLabel)
	builder.WriteString(", ")
	builder.WriteString("content=")
	builder.WriteString(_m.Content)
	builder.WriteString(", ")
	builder.WriteString("active=")
	builder.WriteString(fmt.Sprintf("%v", _m.Active))
	builder.WriteString(", ")
	builder.WriteString("is_default=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsDefault))
	builder.WriteString(", ")
	builder.WriteString("performance=")
	builder.WriteString(fmt.Sprintf("%v", _m.Performance))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// PromptVersions is a parsable slice of PromptVersion.
type PromptVersions []*PromptVersion
