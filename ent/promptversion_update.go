// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/autoforge-dev/autoforge/ent/predicate"
	"github.com/autoforge-dev/autoforge/ent/promptversion"
)

// PromptVersionUpdate is the builder for updating PromptVersion entities.
type PromptVersionUpdate struct {
	config
	hooks    []Hook
	mutation *PromptVersionMutation
}

// Where appends a list predicates to the PromptVersionUpdate builder.
func (_u *PromptVersionUpdate) Where(ps ...predicate.PromptVersion) *PromptVersionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPromptFile sets the "prompt_file" field.
func (_u *PromptVersionUpdate) SetPromptFile(v string) *PromptVersionUpdate {
	_u.mutation.SetPromptFile(v)
	return _u
}

// SetNillablePromptFile sets the "prompt_file" field if the given value is not nil.
func (_u *PromptVersionUpdate) SetNillablePromptFile(v *string) *PromptVersionUpdate {
	if v != nil {
		_u.SetPromptFile(*v)
	}
	return _u
}

// SetVersionLabel sets the "version_label" field.
func (_u *PromptVersionUpdate) SetVersionLabel(v string) *PromptVersionUpdate {
	_u.mutation.SetVersionLabel(v)
	return _u
}

// SetNillableVersionLabel sets the "version_label" field if the given value is not nil.
func (_u *PromptVersionUpdate) SetNillableVersionLabel(v *string) *PromptVersionUpdate {
	if v != nil {
		_u.SetVersionLabel(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *PromptVersionUpdate) SetContent(v string) *PromptVersionUpdate {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *PromptVersionUpdate) SetNillableContent(v *string) *PromptVersionUpdate {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetActive sets the "active" field.
func (_u *PromptVersionUpdate) SetActive(v bool) *PromptVersionUpdate {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *PromptVersionUpdate) SetNillableActive(v *bool) *PromptVersionUpdate {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// SetIsDefault sets the "is_default" field.
func (_u *PromptVersionUpdate) SetIsDefault(v bool) *PromptVersionUpdate {
	_u.mutation.SetIsDefault(v)
	return _u
}

// SetNillableIsDefault sets the "is_default" field if the given value is not nil.
func (_u *PromptVersionUpdate) SetNillableIsDefault(v *bool) *PromptVersionUpdate {
	if v != nil {
		_u.SetIsDefault(*v)
	}
	return _u
}

// SetPerformance sets the "performance" field.
func (_u *PromptVersionUpdate) SetPerformance(v map[string]interface{}) *PromptVersionUpdate {
	_u.mutation.SetPerformance(v)
	return _u
}

// ClearPerformance clears the value of the "performance" field.
func (_u *PromptVersionUpdate) ClearPerformance() *PromptVersionUpdate {
	_u.mutation.ClearPerformance()
	return _u
}

// Mutation returns the PromptVersionMutation object of the builder.
func (_u *PromptVersionUpdate) Mutation() *PromptVersionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PromptVersionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PromptVersionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PromptVersionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PromptVersionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *PromptVersionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(promptversion.Table, promptversion.Columns, sqlgraph.NewFieldSpec(promptversion.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.PromptFile(); ok {
		_spec.SetField(promptversion.FieldPromptFile, field.TypeString, value)
	}
	if value, ok := _u.mutation.VersionLabel(); ok {
		_spec.SetField(promptversion.FieldVersionLabel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(promptversion.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(promptversion.FieldActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.IsDefault(); ok {
		_spec.SetField(promptversion.FieldIsDefault, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Performance(); ok {
		_spec.SetField(promptversion.FieldPerformance, field.TypeJSON, value)
	}
	if _u.mutation.PerformanceCleared() {
		_spec.ClearField(promptversion.FieldPerformance, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{promptversion.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PromptVersionUpdateOne is the builder for updating a single PromptVersion entity.
type PromptVersionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PromptVersionMutation
}

// SetPromptFile sets the "prompt_file" field.
func (_u *PromptVersionUpdateOne) SetPromptFile(v string) *PromptVersionUpdateOne {
	_u.mutation.SetPromptFile(v)
	return _u
}

// SetNillablePromptFile sets the "prompt_file" field if the given value is not nil.
func (_u *PromptVersionUpdateOne) SetNillablePromptFile(v *string) *PromptVersionUpdateOne {
	if v != nil {
		_u.SetPromptFile(*v)
	}
	return _u
}

// SetVersionLabel sets the "version_label" field.
func (_u *PromptVersionUpdateOne) SetVersionLabel(v string) *PromptVersionUpdateOne {
	_u.mutation.SetVersionLabel(v)
	return _u
}

// SetNillableVersionLabel sets the "version_label" field if the given value is not nil.
func (_u *PromptVersionUpdateOne) SetNillableVersionLabel(v *string) *PromptVersionUpdateOne {
	if v != nil {
		_u.SetVersionLabel(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *PromptVersionUpdateOne) SetContent(v string) *PromptVersionUpdateOne {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *PromptVersionUpdateOne) SetNillableContent(v *string) *PromptVersionUpdateOne {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetActive sets the "active" field.
func (_u *PromptVersionUpdateOne) SetActive(v bool) *PromptVersionUpdateOne {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *PromptVersionUpdateOne) SetNillableActive(v *bool) *PromptVersionUpdateOne {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// SetIsDefault sets the "is_default" field.
func (_u *PromptVersionUpdateOne) SetIsDefault(v bool) *PromptVersionUpdateOne {
	_u.mutation.SetIsDefault(v)
	return _u
}

// SetNillableIsDefault sets the "is_default" field if the given value is not nil.
func (_u *PromptVersionUpdateOne) SetNillableIsDefault(v *bool) *PromptVersionUpdateOne {
	if v != nil {
		_u.SetIsDefault(*v)
	}
	return _u
}

// SetPerformance sets the "performance" field.
func (_u *PromptVersionUpdateOne) SetPerformance(v map[string]interface{}) *PromptVersionUpdateOne {
	_u.mutation.SetPerformance(v)
	return _u
}

// ClearPerformance clears the value of the "performance" field.
func (_u *PromptVersionUpdateOne) ClearPerformance() *PromptVersionUpdateOne {
	_u.mutation.ClearPerformance()
	return _u
}

// Mutation returns the PromptVersionMutation object of the builder.
func (_u *PromptVersionUpdateOne) Mutation() *PromptVersionMutation {
	return _u.mutation
}

// Where appends a list predicates to the PromptVersionUpdate builder.
func (_u *PromptVersionUpdateOne) Where(ps ...predicate.PromptVersion) *PromptVersionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PromptVersionUpdateOne) Select(field string, fields ...string) *PromptVersionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PromptVersion entity.
func (_u *PromptVersionUpdateOne) Save(ctx context.Context) (*PromptVersion, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PromptVersionUpdateOne) SaveX(ctx context.Context) *PromptVersion {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PromptVersionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PromptVersionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *PromptVersionUpdateOne) sqlSave(ctx context.Context) (_node *PromptVersion, err error) {
	_spec := sqlgraph.NewUpdateSpec(promptversion.Table, promptversion.Columns, sqlgraph.NewFieldSpec(promptversion.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PromptVersion.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, promptversion.FieldID)
		for _, f := range fields {
			if !promptversion.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != promptversion.FieldID {
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
	if value, ok := _u.mutation.PromptFile(); ok {
		_spec.SetField(promptversion.FieldPromptFile, field.TypeString, value)
	}
	if value, ok := _u.mutation.VersionLabel(); ok {
		_spec.SetField(promptversion.FieldVersionLabel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(promptversion.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(promptversion.FieldActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.IsDefault(); ok {
		_spec.SetField(promptversion.FieldIsDefault, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Performance(); ok {
		_spec.SetField(promptversion.FieldPerformance, field.TypeJSON, value)
	}
	if _u.mutation.PerformanceCleared() {
		_spec.ClearField(promptversion.FieldPerformance, field.TypeJSON)
	}
	_node = &PromptVersion{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{promptversion.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
