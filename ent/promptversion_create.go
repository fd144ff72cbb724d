// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/autoforge-dev/autoforge/ent/promptversion"
)

// PromptVersionCreate is the builder for creating a PromptVersion entity.
type PromptVersionCreate struct {
	config
	mutation *PromptVersionMutation
	hooks    []Hook
}

// SetPromptFile sets the "prompt_file" field.
func (_c *PromptVersionCreate) SetPromptFile(v string) *PromptVersionCreate {
	_c.mutation.SetPromptFile(v)
	return _c
}

// SetVersionLabel sets the "version_label" field.
func (_c *PromptVersionCreate) SetVersionLabel(v string) *PromptVersionCreate {
	_c.mutation.SetVersionLabel(v)
	return _c
}

// SetContent sets the "content" field.
func (_c *PromptVersionCreate) SetContent(v string) *PromptVersionCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetActive sets the "active" field.
func (_c *PromptVersionCreate) SetActive(v bool) *PromptVersionCreate {
	_c.mutation.SetActive(v)
	return _c
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_c *PromptVersionCreate) SetNillableActive(v *bool) *PromptVersionCreate {
	if v != nil {
		_c.SetActive(*v)
	}
	return _c
}

// SetIsDefault sets the "is_default" field.
func (_c *PromptVersionCreate) SetIsDefault(v bool) *PromptVersionCreate {
	_c.mutation.SetIsDefault(v)
	return _c
}

// SetNillableIsDefault sets the "is_default" field if the given value is not nil.
func (_c *PromptVersionCreate) SetNillableIsDefault(v *bool) *PromptVersionCreate {
	if v != nil {
		_c.SetIsDefault(*v)
	}
	return _c
}

// SetPerformance sets the "performance" field.
func (_c *PromptVersionCreate) SetPerformance(v map[string]interface{}) *PromptVersionCreate {
	_c.mutation.SetPerformance(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *PromptVersionCreate) SetCreatedAt(v time.Time) *PromptVersionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PromptVersionCreate) SetNillableCreatedAt(v *time.Time) *PromptVersionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PromptVersionCreate) SetID(v string) *PromptVersionCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the PromptVersionMutation object of the builder.
func (_c *PromptVersionCreate) Mutation() *PromptVersionMutation {
	return _c.mutation
}

// Save creates the PromptVersion in the database.
func (_c *PromptVersionCreate) Save(ctx context.Context) (*PromptVersion, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PromptVersionCreate) SaveX(ctx context.Context) *PromptVersion {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PromptVersionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PromptVersionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PromptVersionCreate) defaults() {
	if _, ok := _c.mutation.Active(); !ok {
		v := promptversion.DefaultActive
		_c.mutation.SetActive(v)
	}
	if _, ok := _c.mutation.IsDefault(); !ok {
		v := promptversion.DefaultIsDefault
		_c.mutation.SetIsDefault(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := promptversion.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PromptVersionCreate) check() error {
	if _, ok := _c.mutation.PromptFile(); !ok {
		return &ValidationError{Name: "prompt_file", err: errors.New(`ent: missing required field "PromptVersion.prompt_file"`)}
	}
	if _, ok := _c.mutation.VersionLabel(); !ok {
		return &ValidationError{Name: "version_label", err: errors.New(`ent: missing required field "PromptVersion.version_label"`)}
	}
	if _, ok := _c.mutation.Content(); !ok {
		return &ValidationError{Name: "content", err: errors.New(`ent: missing required field "PromptVersion.content"`)}
	}
	if _, ok := _c.mutation.Active(); !ok {
		return &ValidationError{Name: "active", err: errors.New(`ent: missing required field "PromptVersion.active"`)}
	}
	if _, ok := _c.mutation.IsDefault(); !ok {
		return &ValidationError{Name: "is_default", err: errors.New(`ent: missing required field "PromptVersion.is_default"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "PromptVersion.created_at"`)}
	}
	return nil
}

func (_c *PromptVersionCreate) sqlSave(ctx context.Context) (*PromptVersion, error) {
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
			return nil, fmt.Errorf("unexpected PromptVersion.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PromptVersionCreate) createSpec() (*PromptVersion, *sqlgraph.CreateSpec) {
	var (
		_node = &PromptVersion{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(promptversion.Table, sqlgraph.NewFieldSpec(promptversion.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.PromptFile(); ok {
		_spec.SetField(promptversion.FieldPromptFile, field.TypeString, value)
		_node.PromptFile = value
	}
	if value, ok := _c.mutation.VersionLabel(); ok {
		_spec.SetField(promptversion.FieldVersionLabel, field.TypeString, value)
		_node.VersionLabel = value
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(promptversion.FieldContent, field.TypeString, value)
		_node.Content = value
	}
	if value, ok := _c.mutation.Active(); ok {
		_spec.SetField(promptversion.FieldActive, field.TypeBool, value)
		_node.Active = value
	}
	if value, ok := _c.mutation.IsDefault(); ok {
		_spec.SetField(promptversion.FieldIsDefault, field.TypeBool, value)
		_node.IsDefault = value
	}
	if value, ok := _c.mutation.Performance(); ok {
		_spec.SetField(promptversion.FieldPerformance, field.TypeJSON, value)
		_node.Performance = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(promptversion.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// PromptVersionCreateBulk is the builder for creating many PromptVersion entities in bulk.
type PromptVersionCreateBulk struct {
	config
	err      error
	builders []*PromptVersionCreate
}

// Save creates the PromptVersion entities in the database.
func (_c *PromptVersionCreateBulk) Save(ctx context.Context) ([]*PromptVersion, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PromptVersion, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PromptVersionMutation)
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
func (_c *PromptVersionCreateBulk) SaveX(ctx context.Context) []*PromptVersion {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PromptVersionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PromptVersionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
