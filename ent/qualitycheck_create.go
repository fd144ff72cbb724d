// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/autoforge-dev/autoforge/ent/agentsession"
	"github.com/autoforge-dev/autoforge/ent/qualitycheck"
)

// QualityCheckCreate is the builder for creating a QualityCheck entity.
type QualityCheckCreate struct {
	config
	mutation *QualityCheckMutation
	hooks    []Hook
}

// SetSessionID sets the "session_id" field.
func (_c *QualityCheckCreate) SetSessionID(v string) *QualityCheckCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetKind sets the "kind" field.
func (_c *QualityCheckCreate) SetKind(v qualitycheck.Kind) *QualityCheckCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *QualityCheckCreate) SetStatus(v qualitycheck.Status) *QualityCheckCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *QualityCheckCreate) SetNillableStatus(v *qualitycheck.Status) *QualityCheckCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetOverallRating sets the "overall_rating" field.
func (_c *QualityCheckCreate) SetOverallRating(v int) *QualityCheckCreate {
	_c.mutation.SetOverallRating(v)
	return _c
}

// SetMetrics sets the "metrics" field.
func (_c *QualityCheckCreate) SetMetrics(v map[string]interface{}) *QualityCheckCreate {
	_c.mutation.SetMetrics(v)
	return _c
}

// SetCriticalIssues sets the "critical_issues" field.
func (_c *QualityCheckCreate) SetCriticalIssues(v []string) *QualityCheckCreate {
	_c.mutation.SetCriticalIssues(v)
	return _c
}

// SetWarnings sets the "warnings" field.
func (_c *QualityCheckCreate) SetWarnings(v []string) *QualityCheckCreate {
	_c.mutation.SetWarnings(v)
	return _c
}

// SetReviewText sets the "review_text" field.
func (_c *QualityCheckCreate) SetReviewText(v string) *QualityCheckCreate {
	_c.mutation.SetReviewText(v)
	return _c
}

// SetNillableReviewText sets the "review_text" field if the given value is not nil.
func (_c *QualityCheckCreate) SetNillableReviewText(v *string) *QualityCheckCreate {
	if v != nil {
		_c.SetReviewText(*v)
	}
	return _c
}

// SetPromptImprovements sets the "prompt_improvements" field.
func (_c *QualityCheckCreate) SetPromptImprovements(v []string) *QualityCheckCreate {
	_c.mutation.SetPromptImprovements(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *QualityCheckCreate) SetCreatedAt(v time.Time) *QualityCheckCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *QualityCheckCreate) SetNillableCreatedAt(v *time.Time) *QualityCheckCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *QualityCheckCreate) SetID(v string) *QualityCheckCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetSession sets the "session" edge to the AgentSession entity.
func (_c *QualityCheckCreate) SetSession(v *AgentSession) *QualityCheckCreate {
	return _c.SetSessionID(v.ID)
}

// Mutation returns the QualityCheckMutation object of the builder.
func (_c *QualityCheckCreate) Mutation() *QualityCheckMutation {
	return _c.mutation
}

// Save creates the QualityCheck in the database.
func (_c *QualityCheckCreate) Save(ctx context.Context) (*QualityCheck, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *QualityCheckCreate) SaveX(ctx context.Context) *QualityCheck {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QualityCheckCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QualityCheckCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *QualityCheckCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := qualitycheck.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := qualitycheck.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *QualityCheckCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "QualityCheck.session_id"`)}
	}
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`ent: missing required field "QualityCheck.kind"`)}
	}
	if v, ok := _c.mutation.Kind(); ok {
		if err := qualitycheck.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "QualityCheck.kind": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "QualityCheck.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := qualitycheck.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "QualityCheck.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.OverallRating(); !ok {
		return &ValidationError{Name: "overall_rating", err: errors.New(`ent: missing required field "QualityCheck.overall_rating"`)}
	}
	if v, ok := _c.mutation.OverallRating(); ok {
		if err := qualitycheck.OverallRatingValidator(v); err != nil {
			return &ValidationError{Name: "overall_rating", err: fmt.Errorf(`ent: validator failed for field "QualityCheck.overall_rating": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "QualityCheck.created_at"`)}
	}
	if len(_c.mutation.SessionIDs()) == 0 {
		return &ValidationError{Name: "session", err: errors.New(`ent: missing required edge "QualityCheck.session"`)}
	}
	return nil
}

func (_c *QualityCheckCreate) sqlSave(ctx context.Context) (*QualityCheck, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected QualityCheck.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *QualityCheckCreate) createSpec() (*QualityCheck, *sqlgraph.CreateSpec) {
	var (
		_node = &QualityCheck{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(qualitycheck.Table, sqlgraph.NewFieldSpec(qualitycheck.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(qualitycheck.FieldKind, field.TypeEnum, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(qualitycheck.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.OverallRating(); ok {
		_spec.SetField(qualitycheck.FieldOverallRating, field.TypeInt, value)
		_node.OverallRating = value
	}
	if value, ok := _c.mutation.Metrics(); ok {
		_spec.SetField(qualitycheck.FieldMetrics, field.TypeJSON, value)
		_node.Metrics = value
	}
	if value, ok := _c.mutation.CriticalIssues(); ok {
		_spec.SetField(qualitycheck.FieldCriticalIssues, field.TypeJSON, value)
		_node.CriticalIssues = value
	}
	if value, ok := _c.mutation.Warnings(); ok {
		_spec.SetField(qualitycheck.FieldWarnings, field.TypeJSON, value)
		_node.Warnings = value
	}
	if value, ok := _c.mutation.ReviewText(); ok {
		_spec.SetField(qualitycheck.FieldReviewText, field.TypeString, value)
		_node.ReviewText = &value
	}
	if value, ok := _c.mutation.PromptImprovements(); ok {
		_spec.SetField(qualitycheck.FieldPromptImprovements, field.TypeJSON, value)
		_node.PromptImprovements = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(qualitycheck.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.SessionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   qualitycheck.SessionTable,
			Columns: []string{qualitycheck.SessionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentsession.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.SessionID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// QualityCheckCreateBulk is the builder for creating many QualityCheck entities in bulk.
type QualityCheckCreateBulk struct {
	config
	err      error
	builders []*QualityCheckCreate
}

// Save creates the QualityCheck entities in the database.
func (_c *QualityCheckCreateBulk) Save(ctx context.Context) ([]*QualityCheck, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*QualityCheck, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*QualityCheckMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *QualityCheckCreateBulk) SaveX(ctx context.Context) []*QualityCheck {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QualityCheckCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QualityCheckCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
