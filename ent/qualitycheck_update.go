// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/autoforge-dev/autoforge/ent/predicate"
	"github.com/autoforge-dev/autoforge/ent/qualitycheck"
)

// QualityCheckUpdate is the builder for updating QualityCheck entities.
type QualityCheckUpdate struct {
	config
	hooks    []Hook
	mutation *QualityCheckMutation
}

// Where appends a list predicates to the QualityCheckUpdate builder.
func (_u *QualityCheckUpdate) Where(ps ...predicate.QualityCheck) *QualityCheckUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetKind sets the "kind" field.
func (_u *QualityCheckUpdate) SetKind(v qualitycheck.Kind) *QualityCheckUpdate {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *QualityCheckUpdate) SetNillableKind(v *qualitycheck.Kind) *QualityCheckUpdate {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *QualityCheckUpdate) SetStatus(v qualitycheck.Status) *QualityCheckUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *QualityCheckUpdate) SetNillableStatus(v *qualitycheck.Status) *QualityCheckUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetOverallRating sets the "overall_rating" field.
func (_u *QualityCheckUpdate) SetOverallRating(v int) *QualityCheckUpdate {
	_u.mutation.ResetOverallRating()
	_u.mutation.SetOverallRating(v)
	return _u
}

// SetNillableOverallRating sets the "overall_rating" field if the given value is not nil.
func (_u *QualityCheckUpdate) SetNillableOverallRating(v *int) *QualityCheckUpdate {
	if v != nil {
		_u.SetOverallRating(*v)
	}
	return _u
}

// AddOverallRating adds value to the "overall_rating" field.
func (_u *QualityCheckUpdate) AddOverallRating(v int) *QualityCheckUpdate {
	_u.mutation.AddOverallRating(v)
	return _u
}

// SetMetrics sets the "metrics" field.
func (_u *QualityCheckUpdate) SetMetrics(v map[string]interface{}) *QualityCheckUpdate {
	_u.mutation.SetMetrics(v)
	return _u
}

// ClearMetrics clears the value of the "metrics" field.
func (_u *QualityCheckUpdate) ClearMetrics() *QualityCheckUpdate {
	_u.mutation.ClearMetrics()
	return _u
}

// SetCriticalIssues sets the "critical_issues" field.
func (_u *QualityCheckUpdate) SetCriticalIssues(v []string) *QualityCheckUpdate {
	_u.mutation.SetCriticalIssues(v)
	return _u
}

// AppendCriticalIssues appends value to the "critical_issues" field.
func (_u *QualityCheckUpdate) AppendCriticalIssues(v []string) *QualityCheckUpdate {
	_u.mutation.AppendCriticalIssues(v)
	return _u
}

// ClearCriticalIssues clears the value of the "critical_issues" field.
func (_u *QualityCheckUpdate) ClearCriticalIssues() *QualityCheckUpdate {
	_u.mutation.ClearCriticalIssues()
	return _u
}

// SetWarnings sets the "warnings" field.
func (_u *QualityCheckUpdate) SetWarnings(v []string) *QualityCheckUpdate {
	_u.mutation.SetWarnings(v)
	return _u
}

// AppendWarnings appends value to the "warnings" field.
func (_u *QualityCheckUpdate) AppendWarnings(v []string) *QualityCheckUpdate {
	_u.mutation.AppendWarnings(v)
	return _u
}

// ClearWarnings clears the value of the "warnings" field.
func (_u *QualityCheckUpdate) ClearWarnings() *QualityCheckUpdate {
	_u.mutation.ClearWarnings()
	return _u
}

// SetReviewText sets the "review_text" field.
func (_u *QualityCheckUpdate) SetReviewText(v string) *QualityCheckUpdate {
	_u.mutation.SetReviewText(v)
	return _u
}

// SetNillableReviewText sets the "review_text" field if the given value is not nil.
func (_u *QualityCheckUpdate) SetNillableReviewText(v *string) *QualityCheckUpdate {
	if v != nil {
		_u.SetReviewText(*v)
	}
	return _u
}

// ClearReviewText clears the value of the "review_text" field.
func (_u *QualityCheckUpdate) ClearReviewText() *QualityCheckUpdate {
	_u.mutation.ClearReviewText()
	return _u
}

// SetPromptImprovements sets the "prompt_improvements" field.
func (_u *QualityCheckUpdate) SetPromptImprovements(v []string) *QualityCheckUpdate {
	_u.mutation.SetPromptImprovements(v)
	return _u
}

// AppendPromptImprovements appends value to the "prompt_improvements" field.
func (_u *QualityCheckUpdate) AppendPromptImprovements(v []string) *QualityCheckUpdate {
	_u.mutation.AppendPromptImprovements(v)
	return _u
}

// ClearPromptImprovements clears the value of the "prompt_improvements" field.
func (_u *QualityCheckUpdate) ClearPromptImprovements() *QualityCheckUpdate {
	_u.mutation.ClearPromptImprovements()
	return _u
}

// Mutation returns the QualityCheckMutation object of the builder.
func (_u *QualityCheckUpdate) Mutation() *QualityCheckMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *QualityCheckUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QualityCheckUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *QualityCheckUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QualityCheckUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QualityCheckUpdate) check() error {
	if v, ok := _u.mutation.Kind(); ok {
		if err := qualitycheck.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "QualityCheck.kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := qualitycheck.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "QualityCheck.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OverallRating(); ok {
		if err := qualitycheck.OverallRatingValidator(v); err != nil {
			return &ValidationError{Name: "overall_rating", err: fmt.Errorf(`ent: validator failed for field "QualityCheck.overall_rating": %w`, err)}
		}
	}
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "QualityCheck.session"`)
	}
	return nil
}

func (_u *QualityCheckUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(qualitycheck.Table, qualitycheck.Columns, sqlgraph.NewFieldSpec(qualitycheck.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(qualitycheck.FieldKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(qualitycheck.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.OverallRating(); ok {
		_spec.SetField(qualitycheck.FieldOverallRating, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOverallRating(); ok {
		_spec.AddField(qualitycheck.FieldOverallRating, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Metrics(); ok {
		_spec.SetField(qualitycheck.FieldMetrics, field.TypeJSON, value)
	}
	if _u.mutation.MetricsCleared() {
		_spec.ClearField(qualitycheck.FieldMetrics, field.TypeJSON)
	}
	if value, ok := _u.mutation.CriticalIssues(); ok {
		_spec.SetField(qualitycheck.FieldCriticalIssues, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCriticalIssues(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, qualitycheck.FieldCriticalIssues, value)
		})
	}
	if _u.mutation.CriticalIssuesCleared() {
		_spec.ClearField(qualitycheck.FieldCriticalIssues, field.TypeJSON)
	}
	if value, ok := _u.mutation.Warnings(); ok {
		_spec.SetField(qualitycheck.FieldWarnings, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedWarnings(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, qualitycheck.FieldWarnings, value)
		})
	}
	if _u.mutation.WarningsCleared() {
		_spec.ClearField(qualitycheck.FieldWarnings, field.TypeJSON)
	}
	if value, ok := _u.mutation.ReviewText(); ok {
		_spec.SetField(qualitycheck.FieldReviewText, field.TypeString, value)
	}
	if _u.mutation.ReviewTextCleared() {
		_spec.ClearField(qualitycheck.FieldReviewText, field.TypeString)
	}
	if value, ok := _u.mutation.PromptImprovements(); ok {
		_spec.SetField(qualitycheck.FieldPromptImprovements, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPromptImprovements(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, qualitycheck.FieldPromptImprovements, value)
		})
	}
	if _u.mutation.PromptImprovementsCleared() {
		_spec.ClearField(qualitycheck.FieldPromptImprovements, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{qualitycheck.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// QualityCheckUpdateOne is the builder for updating a single QualityCheck entity.
type QualityCheckUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *QualityCheckMutation
}

// SetKind sets the "kind" field.
func (_u *QualityCheckUpdateOne) SetKind(v qualitycheck.Kind) *QualityCheckUpdateOne {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *QualityCheckUpdateOne) SetNillableKind(v *qualitycheck.Kind) *QualityCheckUpdateOne {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *QualityCheckUpdateOne) SetStatus(v qualitycheck.Status) *QualityCheckUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *QualityCheckUpdateOne) SetNillableStatus(v *qualitycheck.Status) *QualityCheckUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetOverallRating sets the "overall_rating" field.
func (_u *QualityCheckUpdateOne) SetOverallRating(v int) *QualityCheckUpdateOne {
	_u.mutation.ResetOverallRating()
	_u.mutation.SetOverallRating(v)
	return _u
}

// SetNillableOverallRating sets the "overall_rating" field if the given value is not nil.
func (_u *QualityCheckUpdateOne) SetNillableOverallRating(v *int) *QualityCheckUpdateOne {
	if v != nil {
		_u.SetOverallRating(*v)
	}
	return _u
}

// AddOverallRating adds value to the "overall_rating" field.
func (_u *QualityCheckUpdateOne) AddOverallRating(v int) *QualityCheckUpdateOne {
	_u.mutation.AddOverallRating(v)
	return _u
}

// SetMetrics sets the "metrics" field.
func (_u *QualityCheckUpdateOne) SetMetrics(v map[string]interface{}) *QualityCheckUpdateOne {
	_u.mutation.SetMetrics(v)
	return _u
}

// ClearMetrics clears the value of the "metrics" field.
func (_u *QualityCheckUpdateOne) ClearMetrics() *QualityCheckUpdateOne {
	_u.mutation.ClearMetrics()
	return _u
}

// SetCriticalIssues sets the "critical_issues" field.
func (_u *QualityCheckUpdateOne) SetCriticalIssues(v []string) *QualityCheckUpdateOne {
	_u.mutation.SetCriticalIssues(v)
	return _u
}

// AppendCriticalIssues appends value to the "critical_issues" field.
func (_u *QualityCheckUpdateOne) AppendCriticalIssues(v []string) *QualityCheckUpdateOne {
	_u.mutation.AppendCriticalIssues(v)
	return _u
}

// ClearCriticalIssues clears the value of the "critical_issues" field.
func (_u *QualityCheckUpdateOne) ClearCriticalIssues() *QualityCheckUpdateOne {
	_u.mutation.ClearCriticalIssues()
	return _u
}

// SetWarnings sets the "warnings" field.
func (_u *QualityCheckUpdateOne) SetWarnings(v []string) *QualityCheckUpdateOne {
	_u.mutation.SetWarnings(v)
	return _u
}

// AppendWarnings appends value to the "warnings" field.
func (_u *QualityCheckUpdateOne) AppendWarnings(v []string) *QualityCheckUpdateOne {
	_u.mutation.AppendWarnings(v)
	return _u
}

// ClearWarnings clears the value of the "warnings" field.
func (_u *QualityCheckUpdateOne) ClearWarnings() *QualityCheckUpdateOne {
	_u.mutation.ClearWarnings()
	return _u
}

// SetReviewText sets the "review_text" field.
func (_u *QualityCheckUpdateOne) SetReviewText(v string) *QualityCheckUpdateOne {
	_u.mutation.SetReviewText(v)
	return _u
}

// SetNillableReviewText sets the "review_text" field if the given value is not nil.
func (_u *QualityCheckUpdateOne) SetNillableReviewText(v *string) *QualityCheckUpdateOne {
	if v != nil {
		_u.SetReviewText(*v)
	}
	return _u
}

// ClearReviewText clears the value of the "review_text" field.
func (_u *QualityCheckUpdateOne) ClearReviewText() *QualityCheckUpdateOne {
	_u.mutation.ClearReviewText()
	return _u
}

// SetPromptImprovements sets the "prompt_improvements" field.
func (_u *QualityCheckUpdateOne) SetPromptImprovements(v []string) *QualityCheckUpdateOne {
	_u.mutation.SetPromptImprovements(v)
	return _u
}

// AppendPromptImprovements appends value to the "prompt_improvements" field.
func (_u *QualityCheckUpdateOne) AppendPromptImprovements(v []string) *QualityCheckUpdateOne {
	_u.mutation.AppendPromptImprovements(v)
	return _u
}

// ClearPromptImprovements clears the value of the "prompt_improvements" field.
func (_u *QualityCheckUpdateOne) ClearPromptImprovements() *QualityCheckUpdateOne {
	_u.mutation.ClearPromptImprovements()
	return _u
}

// Mutation returns the QualityCheckMutation object of the builder.
func (_u *QualityCheckUpdateOne) Mutation() *QualityCheckMutation {
	return _u.mutation
}

// Where appends a list predicates to the QualityCheckUpdate builder.
func (_u *QualityCheckUpdateOne) Where(ps ...predicate.QualityCheck) *QualityCheckUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *QualityCheckUpdateOne) Select(field string, fields ...string) *QualityCheckUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated QualityCheck entity.
func (_u *QualityCheckUpdateOne) Save(ctx context.Context) (*QualityCheck, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QualityCheckUpdateOne) SaveX(ctx context.Context) *QualityCheck {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *QualityCheckUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QualityCheckUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QualityCheckUpdateOne) check() error {
	if v, ok := _u.mutation.Kind(); ok {
		if err := qualitycheck.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "QualityCheck.kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := qualitycheck.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "QualityCheck.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OverallRating(); ok {
		if err := qualitycheck.OverallRatingValidator(v); err != nil {
			return &ValidationError{Name: "overall_rating", err: fmt.Errorf(`ent: validator failed for field "QualityCheck.overall_rating": %w`, err)}
		}
	}
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "QualityCheck.session"`)
	}
	return nil
}

func (_u *QualityCheckUpdateOne) sqlSave(ctx context.Context) (_node *QualityCheck, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(qualitycheck.Table, qualitycheck.Columns, sqlgraph.NewFieldSpec(qualitycheck.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "QualityCheck.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, qualitycheck.FieldID)
		for _, f := range fields {
			if !qualitycheck.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != qualitycheck.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(qualitycheck.FieldKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(qualitycheck.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.OverallRating(); ok {
		_spec.SetField(qualitycheck.FieldOverallRating, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOverallRating(); ok {
		_spec.AddField(qualitycheck.FieldOverallRating, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Metrics(); ok {
		_spec.SetField(qualitycheck.FieldMetrics, field.TypeJSON, value)
	}
	if _u.mutation.MetricsCleared() {
		_spec.ClearField(qualitycheck.FieldMetrics, field.TypeJSON)
	}
	if value, ok := _u.mutation.CriticalIssues(); ok {
		_spec.SetField(qualitycheck.FieldCriticalIssues, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCriticalIssues(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, qualitycheck.FieldCriticalIssues, value)
		})
	}
	if _u.mutation.CriticalIssuesCleared() {
		_spec.ClearField(qualitycheck.FieldCriticalIssues, field.TypeJSON)
	}
	if value, ok := _u.mutation.Warnings(); ok {
		_spec.SetField(qualitycheck.FieldWarnings, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedWarnings(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, qualitycheck.FieldWarnings, value)
		})
	}
	if _u.mutation.WarningsCleared() {
		_spec.ClearField(qualitycheck.FieldWarnings, field.TypeJSON)
	}
	if value, ok := _u.mutation.ReviewText(); ok {
		_spec.SetField(qualitycheck.FieldReviewText, field.TypeString, value)
	}
	if _u.mutation.ReviewTextCleared() {
		_spec.ClearField(qualitycheck.FieldReviewText, field.TypeString)
	}
	if value, ok := _u.mutation.PromptImprovements(); ok {
		_spec.SetField(qualitycheck.FieldPromptImprovements, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPromptImprovements(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, qualitycheck.FieldPromptImprovements, value)
		})
	}
	if _u.mutation.PromptImprovementsCleared() {
		_spec.ClearField(qualitycheck.FieldPromptImprovements, field.TypeJSON)
	}
	_node = &QualityCheck{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{qualitycheck.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
