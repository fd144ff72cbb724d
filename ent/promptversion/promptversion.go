// Code generated by ent, DO NOT EDIT.

package promptversion

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the promptversion type in the database.
	Label = "prompt_version"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "version_id"
	// FieldPromptFile holds the string denoting the prompt_file field in the database.
	FieldPromptFile = "prompt_file"
	// FieldVersionLabel holds the string denoting the version_label field in the database.
	FieldVersionLabel = "version_label"
	// FieldContent holds the string denoting the content field in the database.
	FieldContent = "content"
	// FieldActive holds the string denoting the active field in the database.
	FieldActive = "active"
	// FieldIsDefault holds the string denoting the is_default field in the database.
	FieldIsDefault = "is_default"
	// FieldPerformance holds the string denoting the performance field in the database.
	FieldPerformance = "performance"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the promptversion in the database.
	Table = "prompt_versions"
)

// Columns holds all SQL columns for promptversion fields.
var Columns = []string{
	FieldID,
	FieldPromptFile,
	FieldVersionLabel,
	FieldContent,
	FieldActive,
	FieldIsDefault,
	FieldPerformance,
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
	// DefaultActive holds the default value on creation for the "active" field.
	DefaultActive bool
	// DefaultIsDefault holds the default value on creation for the "is_default" field.
	DefaultIsDefault bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the PromptVersion queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByPromptFile orders the results by the prompt_file field.
func ByPromptFile(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPromptFile, opts...).ToFunc()
}

// ByVersionLabel orders the results by the version_label field.
func ByVersionLabel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVersionLabel, opts...).ToFunc()
}

// ByContent orders the results by the content field.
func ByContent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContent, opts...).ToFunc()
}

// ByActive orders the results by the active field.
func ByActive(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActive, opts...).ToFunc()
}

// ByIsDefault orders the results by the is_default field.
func ByIsDefault(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsDefault, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
