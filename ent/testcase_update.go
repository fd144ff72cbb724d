// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/autoforge-dev/autoforge/ent/predicate"
	"github.com/autoforge-dev/autoforge/ent/testcase"
)

// TestCaseUpdate is the builder for updating TestCase entities.
type TestCaseUpdate struct {
	config
	hooks    []Hook
	mutation *TestCaseMutation
}

// Where appends a list predicates to the TestCaseUpdate builder.
func (_u *TestCaseUpdate) Where(ps ...predicate.TestCase) *TestCaseUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDescription sets the "description" field.
func (_u *TestCaseUpdate) SetDescription(v string) *TestCaseUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *TestCaseUpdate) SetNillableDescription(v *string) *TestCaseUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *TestCaseUpdate) SetStatus(v testcase.Status) *TestCaseUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TestCaseUpdate) SetNillableStatus(v *testcase.Status) *TestCaseUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetLastResult sets the "last_result" field.
func (_u *TestCaseUpdate) SetLastResult(v string) *TestCaseUpdate {
	_u.mutation.SetLastResult(v)
	return _u
}

// SetNillableLastResult sets the "last_result" field if the given value is not nil.
func (_u *TestCaseUpdate) SetNillableLastResult(v *string) *TestCaseUpdate {
	if v != nil {
		_u.SetLastResult(*v)
	}
	return _u
}

// ClearLastResult clears the value of the "last_result" field.
func (_u *TestCaseUpdate) ClearLastResult() *TestCaseUpdate {
	_u.mutation.ClearLastResult()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TestCaseUpdate) SetUpdatedAt(v time.Time) *TestCaseUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the TestCaseMutation object of the builder.
func (_u *TestCaseUpdate) Mutation() *TestCaseMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TestCaseUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TestCaseUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TestCaseUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TestCaseUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TestCaseUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := testcase.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TestCaseUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := testcase.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "TestCase.status": %w`, err)}
		}
	}
	if _u.mutation.TaskCleared() && len(_u.mutation.TaskIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "TestCase.task"`)
	}
	return nil
}

func (_u *TestCaseUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(testcase.Table, testcase.Columns, sqlgraph.NewFieldSpec(testcase.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(testcase.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(testcase.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.LastResult(); ok {
		_spec.SetField(testcase.FieldLastResult, field.TypeString, value)
	}
	if _u.mutation.LastResultCleared() {
		_spec.ClearField(testcase.FieldLastResult, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(testcase.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{testcase.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TestCaseUpdateOne is the builder for updating a single TestCase entity.
type TestCaseUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TestCaseMutation
}

// SetDescription sets the "description" field.
func (_u *TestCaseUpdateOne) SetDescription(v string) *TestCaseUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *TestCaseUpdateOne) SetNillableDescription(v *string) *TestCaseUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *TestCaseUpdateOne) SetStatus(v testcase.Status) *TestCaseUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TestCaseUpdateOne) SetNillableStatus(v *testcase.Status) *TestCaseUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetLastResult sets the "last_result" field.
func (_u *TestCaseUpdateOne) SetLastResult(v string) *TestCaseUpdateOne {
	_u.mutation.SetLastResult(v)
	return _u
}

// SetNillableLastResult sets the "last_result" field if the given value is not nil.
func (_u *TestCaseUpdateOne) SetNillableLastResult(v *string) *TestCaseUpdateOne {
	if v != nil {
		_u.SetLastResult(*v)
	}
	return _u
}

// ClearLastResult clears the value of the "last_result" field.
func (_u *TestCaseUpdateOne) ClearLastResult() *TestCaseUpdateOne {
	_u.mutation.ClearLastResult()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TestCaseUpdateOne) SetUpdatedAt(v time.Time) *TestCaseUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the TestCaseMutation object of the builder.
func (_u *TestCaseUpdateOne) Mutation() *TestCaseMutation {
	return _u.mutation
}

// Where appends a list predicates to the TestCaseUpdate builder.
func (_u *TestCaseUpdateOne) Where(ps ...predicate.TestCase) *TestCaseUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TestCaseUpdateOne) Select(field string, fields ...string) *TestCaseUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TestCase entity.
func (_u *TestCaseUpdateOne) Save(ctx context.Context) (*TestCase, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TestCaseUpdateOne) SaveX(ctx context.Context) *TestCase {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TestCaseUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TestCaseUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TestCaseUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := testcase.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TestCaseUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := testcase.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "TestCase.status": %w`, err)}
		}
	}
	if _u.mutation.TaskCleared() && len(_u.mutation.TaskIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "TestCase.task"`)
	}
	return nil
}

func (_u *TestCaseUpdateOne) sqlSave(ctx context.Context) (_node *TestCase, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(testcase.Table, testcase.Columns, sqlgraph.NewFieldSpec(testcase.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TestCase.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, testcase.FieldID)
		for _, f := range fields {
			if !testcase.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != testcase.FieldID {
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
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(testcase.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(testcase.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.LastResult(); ok {
		_spec.SetField(testcase.FieldLastResult, field.TypeString, value)
	}
	if _u.mutation.LastResultCleared() {
		_spec.ClearField(testcase.FieldLastResult, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(testcase.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &TestCase{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{testcase.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
