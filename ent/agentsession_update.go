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
	"github.com/autoforge-dev/autoforge/ent/agentsession"
	"github.com/autoforge-dev/autoforge/ent/predicate"
	"github.com/autoforge-dev/autoforge/ent/qualitycheck"
)

// AgentSessionUpdate is the builder for updating AgentSession entities.
type AgentSessionUpdate struct {
	config
	hooks    []Hook
	mutation *AgentSessionMutation
}

// Where appends a list predicates to the AgentSessionUpdate builder.
func (_u *AgentSessionUpdate) Where(ps ...predicate.AgentSession) *AgentSessionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetType sets the "type" field.
func (_u *AgentSessionUpdate) SetType(v agentsession.Type) *AgentSessionUpdate {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *AgentSessionUpdate) SetNillableType(v *agentsession.Type) *AgentSessionUpdate {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// SetModel sets the "model" field.
func (_u *AgentSessionUpdate) SetModel(v string) *AgentSessionUpdate {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *AgentSessionUpdate) SetNillableModel(v *string) *AgentSessionUpdate {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *AgentSessionUpdate) SetStatus(v agentsession.Status) *AgentSessionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AgentSessionUpdate) SetNillableStatus(v *agentsession.Status) *AgentSessionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *AgentSessionUpdate) SetStartedAt(v time.Time) *AgentSessionUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *AgentSessionUpdate) SetNillableStartedAt(v *time.Time) *AgentSessionUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *AgentSessionUpdate) ClearStartedAt() *AgentSessionUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetEndedAt sets the "ended_at" field.
func (_u *AgentSessionUpdate) SetEndedAt(v time.Time) *AgentSessionUpdate {
	_u.mutation.SetEndedAt(v)
	return _u
}

// SetNillableEndedAt sets the "ended_at" field if the given value is not nil.
func (_u *AgentSessionUpdate) SetNillableEndedAt(v *time.Time) *AgentSessionUpdate {
	if v != nil {
		_u.SetEndedAt(*v)
	}
	return _u
}

// ClearEndedAt clears the value of the "ended_at" field.
func (_u *AgentSessionUpdate) ClearEndedAt() *AgentSessionUpdate {
	_u.mutation.ClearEndedAt()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *AgentSessionUpdate) SetErrorMessage(v string) *AgentSessionUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *AgentSessionUpdate) SetNillableErrorMessage(v *string) *AgentSessionUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *AgentSessionUpdate) ClearErrorMessage() *AgentSessionUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetInterruptionReason sets the "interruption_reason" field.
func (_u *AgentSessionUpdate) SetInterruptionReason(v string) *AgentSessionUpdate {
	_u.mutation.SetInterruptionReason(v)
	return _u
}

// SetNillableInterruptionReason sets the "interruption_reason" field if the given value is not nil.
func (_u *AgentSessionUpdate) SetNillableInterruptionReason(v *string) *AgentSessionUpdate {
	if v != nil {
		_u.SetInterruptionReason(*v)
	}
	return _u
}

// ClearInterruptionReason clears the value of the "interruption_reason" field.
func (_u *AgentSessionUpdate) ClearInterruptionReason() *AgentSessionUpdate {
	_u.mutation.ClearInterruptionReason()
	return _u
}

// SetMetrics sets the "metrics" field.
func (_u *AgentSessionUpdate) SetMetrics(v map[string]interface{}) *AgentSessionUpdate {
	_u.mutation.SetMetrics(v)
	return _u
}

// ClearMetrics clears the value of the "metrics" field.
func (_u *AgentSessionUpdate) ClearMetrics() *AgentSessionUpdate {
	_u.mutation.ClearMetrics()
	return _u
}

// SetMaxIterations sets the "max_iterations" field.
func (_u *AgentSessionUpdate) SetMaxIterations(v int) *AgentSessionUpdate {
	_u.mutation.ResetMaxIterations()
	_u.mutation.SetMaxIterations(v)
	return _u
}

// SetNillableMaxIterations sets the "max_iterations" field if the given value is not nil.
func (_u *AgentSessionUpdate) SetNillableMaxIterations(v *int) *AgentSessionUpdate {
	if v != nil {
		_u.SetMaxIterations(*v)
	}
	return _u
}

// AddMaxIterations adds value to the "max_iterations" field.
func (_u *AgentSessionUpdate) AddMaxIterations(v int) *AgentSessionUpdate {
	_u.mutation.AddMaxIterations(v)
	return _u
}

// ClearMaxIterations clears the value of the "max_iterations" field.
func (_u *AgentSessionUpdate) ClearMaxIterations() *AgentSessionUpdate {
	_u.mutation.ClearMaxIterations()
	return _u
}

// AddQualityCheckIDs adds the "quality_checks" edge to the QualityCheck entity by IDs.
func (_u *AgentSessionUpdate) AddQualityCheckIDs(ids ...string) *AgentSessionUpdate {
	_u.mutation.AddQualityCheckIDs(ids...)
	return _u
}

// AddQualityChecks adds the "quality_checks" edges to the QualityCheck entity.
func (_u *AgentSessionUpdate) AddQualityChecks(v ...*QualityCheck) *AgentSessionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddQualityCheckIDs(ids...)
}

// Mutation returns the AgentSessionMutation object of the builder.
func (_u *AgentSessionUpdate) Mutation() *AgentSessionMutation {
	return _u.mutation
}

// ClearQualityChecks clears all "quality_checks" edges to the QualityCheck entity.
func (_u *AgentSessionUpdate) ClearQualityChecks() *AgentSessionUpdate {
	_u.mutation.ClearQualityChecks()
	return _u
}

// RemoveQualityCheckIDs removes the "quality_checks" edge to QualityCheck entities by IDs.
func (_u *AgentSessionUpdate) RemoveQualityCheckIDs(ids ...string) *AgentSessionUpdate {
	_u.mutation.RemoveQualityCheckIDs(ids...)
	return _u
}

// RemoveQualityChecks removes "quality_checks" edges to QualityCheck entities.
func (_u *AgentSessionUpdate) RemoveQualityChecks(v ...*QualityCheck) *AgentSessionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveQualityCheckIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AgentSessionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentSessionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AgentSessionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentSessionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentSessionUpdate) check() error {
	if v, ok := _u.mutation.GetType(); ok {
		if err := agentsession.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "AgentSession.type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := agentsession.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AgentSession.status": %w`, err)}
		}
	}
	if _u.mutation.ProjectCleared() && len(_u.mutation.ProjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AgentSession.project"`)
	}
	return nil
}

func (_u *AgentSessionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agentsession.Table, agentsession.Columns, sqlgraph.NewFieldSpec(agentsession.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(agentsession.FieldType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(agentsession.FieldModel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(agentsession.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(agentsession.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(agentsession.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.EndedAt(); ok {
		_spec.SetField(agentsession.FieldEndedAt, field.TypeTime, value)
	}
	if _u.mutation.EndedAtCleared() {
		_spec.ClearField(agentsession.FieldEndedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(agentsession.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(agentsession.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.InterruptionReason(); ok {
		_spec.SetField(agentsession.FieldInterruptionReason, field.TypeString, value)
	}
	if _u.mutation.InterruptionReasonCleared() {
		_spec.ClearField(agentsession.FieldInterruptionReason, field.TypeString)
	}
	if value, ok := _u.mutation.Metrics(); ok {
		_spec.SetField(agentsession.FieldMetrics, field.TypeJSON, value)
	}
	if _u.mutation.MetricsCleared() {
		_spec.ClearField(agentsession.FieldMetrics, field.TypeJSON)
	}
	if value, ok := _u.mutation.MaxIterations(); ok {
		_spec.SetField(agentsession.FieldMaxIterations, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxIterations(); ok {
		_spec.AddField(agentsession.FieldMaxIterations, field.TypeInt, value)
	}
	if _u.mutation.MaxIterationsCleared() {
		_spec.ClearField(agentsession.FieldMaxIterations, field.TypeInt)
	}
	if _u.mutation.QualityChecksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentsession.QualityChecksTable,
			Columns: []string{agentsession.QualityChecksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(qualitycheck.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedQualityChecksIDs(); len(nodes) > 0 && !_u.mutation.QualityChecksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentsession.QualityChecksTable,
			Columns: []string{agentsession.QualityChecksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(qualitycheck.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.QualityChecksIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentsession.QualityChecksTable,
			Columns: []string{agentsession.QualityChecksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(qualitycheck.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agentsession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AgentSessionUpdateOne is the builder for updating a single AgentSession entity.
type AgentSessionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AgentSessionMutation
}

// SetType sets the "type" field.
func (_u *AgentSessionUpdateOne) SetType(v agentsession.Type) *AgentSessionUpdateOne {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *AgentSessionUpdateOne) SetNillableType(v *agentsession.Type) *AgentSessionUpdateOne {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// SetModel sets the "model" field.
func (_u *AgentSessionUpdateOne) SetModel(v string) *AgentSessionUpdateOne {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *AgentSessionUpdateOne) SetNillableModel(v *string) *AgentSessionUpdateOne {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *AgentSessionUpdateOne) SetStatus(v agentsession.Status) *AgentSessionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AgentSessionUpdateOne) SetNillableStatus(v *agentsession.Status) *AgentSessionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *AgentSessionUpdateOne) SetStartedAt(v time.Time) *AgentSessionUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *AgentSessionUpdateOne) SetNillableStartedAt(v *time.Time) *AgentSessionUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *AgentSessionUpdateOne) ClearStartedAt() *AgentSessionUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetEndedAt sets the "ended_at" field.
func (_u *AgentSessionUpdateOne) SetEndedAt(v time.Time) *AgentSessionUpdateOne {
	_u.mutation.SetEndedAt(v)
	return _u
}

// SetNillableEndedAt sets the "ended_at" field if the given value is not nil.
func (_u *AgentSessionUpdateOne) SetNillableEndedAt(v *time.Time) *AgentSessionUpdateOne {
	if v != nil {
		_u.SetEndedAt(*v)
	}
	return _u
}

// ClearEndedAt clears the value of the "ended_at" field.
func (_u *AgentSessionUpdateOne) ClearEndedAt() *AgentSessionUpdateOne {
	_u.mutation.ClearEndedAt()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *AgentSessionUpdateOne) SetErrorMessage(v string) *AgentSessionUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *AgentSessionUpdateOne) SetNillableErrorMessage(v *string) *AgentSessionUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *AgentSessionUpdateOne) ClearErrorMessage() *AgentSessionUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetInterruptionReason sets the "interruption_reason" field.
func (_u *AgentSessionUpdateOne) SetInterruptionReason(v string) *AgentSessionUpdateOne {
	_u.mutation.SetInterruptionReason(v)
	return _u
}

// SetNillableInterruptionReason sets the "interruption_reason" field if the given value is not nil.
func (_u *AgentSessionUpdateOne) SetNillableInterruptionReason(v *string) *AgentSessionUpdateOne {
	if v != nil {
		_u.SetInterruptionReason(*v)
	}
	return _u
}

// ClearInterruptionReason clears the value of the "interruption_reason" field.
func (_u *AgentSessionUpdateOne) ClearInterruptionReason() *AgentSessionUpdateOne {
	_u.mutation.ClearInterruptionReason()
	return _u
}

// SetMetrics sets the "metrics" field.
func (_u *AgentSessionUpdateOne) SetMetrics(v map[string]interface{}) *AgentSessionUpdateOne {
	_u.mutation.SetMetrics(v)
	return _u
}

// ClearMetrics clears the value of the "metrics" field.
func (_u *AgentSessionUpdateOne) ClearMetrics() *AgentSessionUpdateOne {
	_u.mutation.ClearMetrics()
	return _u
}

// SetMaxIterations sets the "max_iterations" field.
func (_u *AgentSessionUpdateOne) SetMaxIterations(v int) *AgentSessionUpdateOne {
	_u.mutation.ResetMaxIterations()
	_u.mutation.SetMaxIterations(v)
	return _u
}

// SetNillableMaxIterations sets the "max_iterations" field if the given value is not nil.
func (_u *AgentSessionUpdateOne) SetNillableMaxIterations(v *int) *AgentSessionUpdateOne {
	if v != nil {
		_u.SetMaxIterations(*v)
	}
	return _u
}

// AddMaxIterations adds value to the "max_iterations" field.
func (_u *AgentSessionUpdateOne) AddMaxIterations(v int) *AgentSessionUpdateOne {
	_u.mutation.AddMaxIterations(v)
	return _u
}

// ClearMaxIterations clears the value of the "max_iterations" field.
func (_u *AgentSessionUpdateOne) ClearMaxIterations() *AgentSessionUpdateOne {
	_u.mutation.ClearMaxIterations()
	return _u
}

// AddQualityCheckIDs adds the "quality_checks" edge to the QualityCheck entity by IDs.
func (_u *AgentSessionUpdateOne) AddQualityCheckIDs(ids ...string) *AgentSessionUpdateOne {
	_u.mutation.AddQualityCheckIDs(ids...)
	return _u
}

// AddQualityChecks adds the "quality_checks" edges to the QualityCheck entity.
func (_u *AgentSessionUpdateOne) AddQualityChecks(v ...*QualityCheck) *AgentSessionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddQualityCheckIDs(ids...)
}

// Mutation returns the AgentSessionMutation object of the builder.
func (_u *AgentSessionUpdateOne) Mutation() *AgentSessionMutation {
	return _u.mutation
}

// ClearQualityChecks clears all "quality_checks" edges to the QualityCheck entity.
func (_u *AgentSessionUpdateOne) ClearQualityChecks() *AgentSessionUpdateOne {
	_u.mutation.ClearQualityChecks()
	return _u
}

// RemoveQualityCheckIDs removes the "quality_checks" edge to QualityCheck entities by IDs.
func (_u *AgentSessionUpdateOne) RemoveQualityCheckIDs(ids ...string) *AgentSessionUpdateOne {
	_u.mutation.RemoveQualityCheckIDs(ids...)
	return _u
}

// RemoveQualityChecks removes "quality_checks" edges to QualityCheck entities.
func (_u *AgentSessionUpdateOne) RemoveQualityChecks(v ...*QualityCheck) *AgentSessionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveQualityCheckIDs(ids...)
}

// Where appends a list predicates to the AgentSessionUpdate builder.
func (_u *AgentSessionUpdateOne) Where(ps ...predicate.AgentSession) *AgentSessionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AgentSessionUpdateOne) Select(field string, fields ...string) *AgentSessionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AgentSession entity.
func (_u *AgentSessionUpdateOne) Save(ctx context.Context) (*AgentSession, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentSessionUpdateOne) SaveX(ctx context.Context) *AgentSession {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AgentSessionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentSessionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentSessionUpdateOne) check() error {
	if v, ok := _u.mutation.GetType(); ok {
		if err := agentsession.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "AgentSession.type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := agentsession.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AgentSession.status": %w`, err)}
		}
	}
	if _u.mutation.ProjectCleared() && len(_u.mutation.ProjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AgentSession.project"`)
	}
	return nil
}

func (_u *AgentSessionUpdateOne) sqlSave(ctx context.Context) (_node *AgentSession, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agentsession.Table, agentsession.Columns, sqlgraph.NewFieldSpec(agentsession.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AgentSession.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, agentsession.FieldID)
		for _, f := range fields {
			if !agentsession.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != agentsession.FieldID {
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
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(agentsession.FieldType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(agentsession.FieldModel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(agentsession.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(agentsession.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(agentsession.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.EndedAt(); ok {
		_spec.SetField(agentsession.FieldEndedAt, field.TypeTime, value)
	}
	if _u.mutation.EndedAtCleared() {
		_spec.ClearField(agentsession.FieldEndedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(agentsession.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(agentsession.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.InterruptionReason(); ok {
		_spec.SetField(agentsession.FieldInterruptionReason, field.TypeString, value)
	}
	if _u.mutation.InterruptionReasonCleared() {
		_spec.ClearField(agentsession.FieldInterruptionReason, field.TypeString)
	}
	if value, ok := _u.mutation.Metrics(); ok {
		_spec.SetField(agentsession.FieldMetrics, field.TypeJSON, value)
	}
	if _u.mutation.MetricsCleared() {
		_spec.ClearField(agentsession.FieldMetrics, field.TypeJSON)
	}
	if value, ok := _u.mutation.MaxIterations(); ok {
		_spec.SetField(agentsession.FieldMaxIterations, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxIterations(); ok {
		_spec.AddField(agentsession.FieldMaxIterations, field.TypeInt, value)
	}
	if _u.mutation.MaxIterationsCleared() {
		_spec.ClearField(agentsession.FieldMaxIterations, field.TypeInt)
	}
	if _u.mutation.QualityChecksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentsession.QualityChecksTable,
			Columns: []string{agentsession.QualityChecksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(qualitycheck.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedQualityChecksIDs(); len(nodes) > 0 && !_u.mutation.QualityChecksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentsession.QualityChecksTable,
			Columns: []string{agentsession.QualityChecksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(qualitycheck.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.QualityChecksIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentsession.QualityChecksTable,
			Columns: []string{agentsession.QualityChecksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(qualitycheck.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &AgentSession{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agentsession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
