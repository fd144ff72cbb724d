// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/autoforge-dev/autoforge/ent/promptanalysis"
	"github.com/autoforge-dev/autoforge/ent/promptproposal"
)

// PromptProposalCreate is the builder for creating a PromptProposal entity.
type PromptProposalCreate struct {
	config
	mutation *PromptProposalMutation
	hooks    []Hook
}

// SetAnalysisID sets the "analysis_id" field.
func (_c *PromptProposalCreate) SetAnalysisID(v string) *PromptProposalCreate {
	_c.mutation.SetAnalysisID(v)
	return _c
}

// SetPromptFile sets the "prompt_file" field.
func (_c *PromptProposalCreate) SetPromptFile(v string) *PromptProposalCreate {
	_c.mutation.SetPromptFile(v)
	return _c
}

// SetSectionName sets the "section_name" field.
func (_c *PromptProposalCreate) SetSectionName(v string) *PromptProposalCreate {
	_c.mutation.SetSectionName(v)
	return _c
}

// SetChangeType sets the "change_type" field.
func (_c *PromptProposalCreate) SetChangeType(v promptproposal.ChangeType) *PromptProposalCreate {
	_c.mutation.SetChangeType(v)
	return _c
}

// SetOriginalText sets the "original_text" field.
func (_c *PromptProposalCreate) SetOriginalText(v string) *PromptProposalCreate {
	_c.mutation.SetOriginalText(v)
	return _c
}

// SetNillableOriginalText sets the "original_text" field if the given value is not nil.
func (_c *PromptProposalCreate) SetNillableOriginalText(v *string) *PromptProposalCreate {
	if v != nil {
		_c.SetOriginalText(*v)
	}
	return _c
}

// SetProposedText sets the "proposed_text" field.
func (_c *PromptProposalCreate) SetProposedText(v string) *PromptProposalCreate {
	_c.mutation.SetProposedText(v)
	return _c
}

// SetRationale sets the "rationale" field.
func (_c *PromptProposalCreate) SetRationale(v string) *PromptProposalCreate {
	_c.mutation.SetRationale(v)
	return _c
}

// SetEvidence sets the "evidence" field.
func (_c *PromptProposalCreate) SetEvidence(v []map[string]interface{}) *PromptProposalCreate {
	_c.mutation.SetEvidence(v)
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *PromptProposalCreate) SetConfidence(v int) *PromptProposalCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *PromptProposalCreate) SetStatus(v promptproposal.Status) *PromptProposalCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *PromptProposalCreate) SetNillableStatus(v *promptproposal.Status) *PromptProposalCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetAppliedAt sets the "applied_at" field.
func (_c *PromptProposalCreate) SetAppliedAt(v time.Time) *PromptProposalCreate {
	_c.mutation.SetAppliedAt(v)
	return _c
}

// SetNillableAppliedAt sets the "applied_at" field if the given value is not nil.
func (_c *PromptProposalCreate) SetNillableAppliedAt(v *time.Time) *PromptProposalCreate {
	if v != nil {
		_c.SetAppliedAt(*v)
	}
	return _c
}

// SetAppliedBy sets the "applied_by" field.
func (_c *PromptProposalCreate) SetAppliedBy(v string) *PromptProposalCreate {
	_c.mutation.SetAppliedBy(v)
	return _c
}

// SetNillableAppliedBy sets the "applied_by" field if the given value is not nil.
func (_c *PromptProposalCreate) SetNillableAppliedBy(v *string) *PromptProposalCreate {
	if v != nil {
		_c.SetAppliedBy(*v)
	}
	return _c
}

// SetPromptVersionID sets the "prompt_version_id" field.
func (_c *PromptProposalCreate) SetPromptVersionID(v string) *PromptProposalCreate {
	_c.mutation.SetPromptVersionID(v)
	return _c
}

// SetNillablePromptVersionID sets the "prompt_version_id" field if the given value is not nil.
func (_c *PromptProposalCreate) SetNillablePromptVersionID(v *string) *PromptProposalCreate {
	if v != nil {
		_c.SetPromptVersionID(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *PromptProposalCreate) SetCreatedAt(v time.Time) *PromptProposalCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PromptProposalCreate) SetNillableCreatedAt(v *time.Time) *PromptProposalCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PromptProposalCreate) SetID(v string) *PromptProposalCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetAnalysis sets the "analysis" edge to the PromptAnalysis entity.
func (_c *PromptProposalCreate) SetAnalysis(v *PromptAnalysis) *PromptProposalCreate {
	return _c.SetAnalysisID(v.ID)
}

// Mutation returns the PromptProposalMutation object of the builder.
func (_c *PromptProposalCreate) Mutation() *PromptProposalMutation {
	return _c.mutation
}

// Save creates the PromptProposal in the database.
func (_c *PromptProposalCreate) Save(ctx context.Context) (*PromptProposal, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PromptProposalCreate) SaveX(ctx context.Context) *PromptProposal {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PromptProposalCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PromptProposalCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PromptProposalCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := promptproposal.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := promptproposal.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PromptProposalCreate) check() error {
	if _, ok := _c.mutation.AnalysisID(); !ok {
		return &ValidationError{Name: "analysis_id", err: errors.New(`ent: missing required field "PromptProposal.analysis_id"`)}
	}
	if _, ok := _c.mutation.PromptFile(); !ok {
		return &ValidationError{Name: "prompt_file", err: errors.New(`ent: missing required field "PromptProposal.prompt_file"`)}
	}
	if _, ok := _c.mutation.SectionName(); !ok {
		return &ValidationError{Name: "section_name", err: errors.New(`ent: missing required field "PromptProposal.section_name"`)}
	}
	if _, ok := _c.mutation.ChangeType(); !ok {
		return &ValidationError{Name: "change_type", err: errors.New(`ent: missing required field "PromptProposal.change_type"`)}
	}
	if v, ok := _c.mutation.ChangeType(); ok {
		if err := promptproposal.ChangeTypeValidator(v); err != nil {
			return &ValidationError{Name: "change_type", err: fmt.Errorf(`ent: validator failed for field "PromptProposal.change_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ProposedText(); !ok {
		return &ValidationError{Name: "proposed_text", err: errors.New(`ent: missing required field "PromptProposal.proposed_text"`)}
	}
	if _, ok := _c.mutation.Rationale(); !ok {
		return &ValidationError{Name: "rationale", err: errors.New(`ent: missing required field "PromptProposal.rationale"`)}
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		return &ValidationError{Name: "confidence", err: errors.New(`ent: missing required field "PromptProposal.confidence"`)}
	}
	if v, ok := _c.mutation.Confidence(); ok {
		if err := promptproposal.ConfidenceValidator(v); err != nil {
			return &ValidationError{Name: "confidence", err: fmt.Errorf(`ent: validator failed for field "PromptProposal.confidence": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "PromptProposal.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := promptproposal.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "PromptProposal.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "PromptProposal.created_at"`)}
	}
	if len(_c.mutation.AnalysisIDs()) == 0 {
		return &ValidationError{Name: "analysis", err: errors.New(`ent: missing required edge "PromptProposal.analysis"`)}
	}
	return nil
}

func (_c *PromptProposalCreate) sqlSave(ctx context.Context) (*PromptProposal, error) {
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
			return nil, fmt.Errorf("unexpected PromptProposal.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PromptProposalCreate) createSpec() (*PromptProposal, *sqlgraph.CreateSpec) {
	var (
		_node = &PromptProposal{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(promptproposal.Table, sqlgraph.NewFieldSpec(promptproposal.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.PromptFile(); ok {
		_spec.SetField(promptproposal.FieldPromptFile, field.TypeString, value)
		_node.PromptFile = value
	}
	if value, ok := _c.mutation.SectionName(); ok {
		_spec.SetField(promptproposal.FieldSectionName, field.TypeString, value)
		_node.SectionName = value
	}
	if value, ok := _c.mutation.ChangeType(); ok {
		_spec.SetField(promptproposal.FieldChangeType, field.TypeEnum, value)
		_node.ChangeType = value
	}
	if value, ok := _c.mutation.OriginalText(); ok {
		_spec.SetField(promptproposal.FieldOriginalText, field.TypeString, value)
		_node.OriginalText = value
	}
	if value, ok := _c.mutation.ProposedText(); ok {
		_spec.SetField(promptproposal.FieldProposedText, field.TypeString, value)
		_node.ProposedText = value
	}
	if value, ok := _c.mutation.Rationale(); ok {
		_spec.SetField(promptproposal.FieldRationale, field.TypeString, value)
		_node.Rationale = value
	}
	if value, ok := _c.mutation.Evidence(); ok {
		_spec.SetField(promptproposal.FieldEvidence, field.TypeJSON, value)
		_node.Evidence = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(promptproposal.FieldConfidence, field.TypeInt, value)
		_node.Confidence = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(promptproposal.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.AppliedAt(); ok {
		_spec.SetField(promptproposal.FieldAppliedAt, field.TypeTime, value)
		_node.AppliedAt = &value
	}
	if value, ok := _c.mutation.AppliedBy(); ok {
		_spec.SetField(promptproposal.FieldAppliedBy, field.TypeString, value)
		_node.AppliedBy = &value
	}
	if value, ok := _c.mutation.PromptVersionID(); ok {
		_spec.SetField(promptproposal.FieldPromptVersionID, field.TypeString, value)
		_node.PromptVersionID = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(promptproposal.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.AnalysisIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   promptproposal.AnalysisTable,
			Columns: []string{promptproposal.AnalysisColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(promptanalysis.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.AnalysisID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// PromptProposalCreateBulk is the builder for creating many PromptProposal entities in bulk.
type PromptProposalCreateBulk struct {
	config
	err      error
	builders []*PromptProposalCreate
}

// Save creates the PromptProposal entities in the database.
func (_c *PromptProposalCreateBulk) Save(ctx context.Context) ([]*PromptProposal, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PromptProposal, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PromptProposalMutation)
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
func (_c *PromptProposalCreateBulk) SaveX(ctx context.Context) []*PromptProposal {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PromptProposalCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PromptProposalCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
