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

// PromptAnalysisCreate is the builder for creating a PromptAnalysis entity.
type PromptAnalysisCreate struct {
	config
	mutation *PromptAnalysisMutation
	hooks    []Hook
}

// SetProjectsAnalyzed sets the "projects_analyzed" field.
func (_c *PromptAnalysisCreate) SetProjectsAnalyzed(v []string) *PromptAnalysisCreate {
	_c.mutation.SetProjectsAnalyzed(v)
	return _c
}

// SetSandboxType sets the "sandbox_type" field.
func (_c *PromptAnalysisCreate) SetSandboxType(v string) *PromptAnalysisCreate {
	_c.mutation.SetSandboxType(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *PromptAnalysisCreate) SetStatus(v promptanalysis.Status) *PromptAnalysisCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *PromptAnalysisCreate) SetNillableStatus(v *promptanalysis.Status) *PromptAnalysisCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetTriggeredBy sets the "triggered_by" field.
func (_c *PromptAnalysisCreate) SetTriggeredBy(v string) *PromptAnalysisCreate {
	_c.mutation.SetTriggeredBy(v)
	return _c
}

// SetNillableTriggeredBy sets the "triggered_by" field if the given value is not nil.
func (_c *PromptAnalysisCreate) SetNillableTriggeredBy(v *string) *PromptAnalysisCreate {
	if v != nil {
		_c.SetTriggeredBy(*v)
	}
	return _c
}

// SetDateRangeStart sets the "date_range_start" field.
func (_c *PromptAnalysisCreate) SetDateRangeStart(v time.Time) *PromptAnalysisCreate {
	_c.mutation.SetDateRangeStart(v)
	return _c
}

// SetNillableDateRangeStart sets the "date_range_start" field if the given value is not nil.
func (_c *PromptAnalysisCreate) SetNillableDateRangeStart(v *time.Time) *PromptAnalysisCreate {
	if v != nil {
		_c.SetDateRangeStart(*v)
	}
	return _c
}

// SetDateRangeEnd sets the "date_range_end" field.
func (_c *PromptAnalysisCreate) SetDateRangeEnd(v time.Time) *PromptAnalysisCreate {
	_c.mutation.SetDateRangeEnd(v)
	return _c
}

// SetNillableDateRangeEnd sets the "date_range_end" field if the given value is not nil.
func (_c *PromptAnalysisCreate) SetNillableDateRangeEnd(v *time.Time) *PromptAnalysisCreate {
	if v != nil {
		_c.SetDateRangeEnd(*v)
	}
	return _c
}

// SetSessionsAnalyzed sets the "sessions_analyzed" field.
func (_c *PromptAnalysisCreate) SetSessionsAnalyzed(v int) *PromptAnalysisCreate {
	_c.mutation.SetSessionsAnalyzed(v)
	return _c
}

// SetNillableSessionsAnalyzed sets the "sessions_analyzed" field if the given value is not nil.
func (_c *PromptAnalysisCreate) SetNillableSessionsAnalyzed(v *int) *PromptAnalysisCreate {
	if v != nil {
		_c.SetSessionsAnalyzed(*v)
	}
	return _c
}

// SetPatterns sets the "patterns" field.
func (_c *PromptAnalysisCreate) SetPatterns(v map[string]interface{}) *PromptAnalysisCreate {
	_c.mutation.SetPatterns(v)
	return _c
}

// SetQualityImpactEstimate sets the "quality_impact_estimate" field.
func (_c *PromptAnalysisCreate) SetQualityImpactEstimate(v float64) *PromptAnalysisCreate {
	_c.mutation.SetQualityImpactEstimate(v)
	return _c
}

// SetNillableQualityImpactEstimate sets the "quality_impact_estimate" field if the given value is not nil.
func (_c *PromptAnalysisCreate) SetNillableQualityImpactEstimate(v *float64) *PromptAnalysisCreate {
	if v != nil {
		_c.SetQualityImpactEstimate(*v)
	}
	return _c
}

// SetNotes sets the "notes" field.
func (_c *PromptAnalysisCreate) SetNotes(v string) *PromptAnalysisCreate {
	_c.mutation.SetNotes(v)
	return _c
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_c *PromptAnalysisCreate) SetNillableNotes(v *string) *PromptAnalysisCreate {
	if v != nil {
		_c.SetNotes(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *PromptAnalysisCreate) SetCreatedAt(v time.Time) *PromptAnalysisCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PromptAnalysisCreate) SetNillableCreatedAt(v *time.Time) *PromptAnalysisCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *PromptAnalysisCreate) SetCompletedAt(v time.Time) *PromptAnalysisCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *PromptAnalysisCreate) SetNillableCompletedAt(v *time.Time) *PromptAnalysisCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PromptAnalysisCreate) SetID(v string) *PromptAnalysisCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddProposalIDs adds the "proposals" edge to the PromptProposal entity by IDs.
func (_c *PromptAnalysisCreate) AddProposalIDs(ids ...string) *PromptAnalysisCreate {
	_c.mutation.AddProposalIDs(ids...)
	return _c
}

// AddProposals adds the "proposals" edges to the PromptProposal entity.
func (_c *PromptAnalysisCreate) AddProposals(v ...*PromptProposal) *PromptAnalysisCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddProposalIDs(ids...)
}

// Mutation returns the PromptAnalysisMutation object of the builder.
func (_c *PromptAnalysisCreate) Mutation() *PromptAnalysisMutation {
	return _c.mutation
}

// Save creates the PromptAnalysis in the database.
func (_c *PromptAnalysisCreate) Save(ctx context.Context) (*PromptAnalysis, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PromptAnalysisCreate) SaveX(ctx context.Context) *PromptAnalysis {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PromptAnalysisCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PromptAnalysisCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PromptAnalysisCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := promptanalysis.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.TriggeredBy(); !ok {
		v := promptanalysis.DefaultTriggeredBy
		_c.mutation.SetTriggeredBy(v)
	}
	if _, ok := _c.mutation.SessionsAnalyzed(); !ok {
		v := promptanalysis.DefaultSessionsAnalyzed
		_c.mutation.SetSessionsAnalyzed(v)
	}
	if _, ok := _c.mutation.QualityImpactEstimate(); !ok {
		v := promptanalysis.DefaultQualityImpactEstimate
		_c.mutation.SetQualityImpactEstimate(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := promptanalysis.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PromptAnalysisCreate) check() error {
	if _, ok := _c.mutation.SandboxType(); !ok {
		return &ValidationError{Name: "sandbox_type", err: errors.New(`ent: missing required field "PromptAnalysis.sandbox_type"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "PromptAnalysis.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := promptanalysis.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "PromptAnalysis.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TriggeredBy(); !ok {
		return &ValidationError{Name: "triggered_by", err: errors.New(`ent: missing required field "PromptAnalysis.triggered_by"`)}
	}
	if _, ok := _c.mutation.SessionsAnalyzed(); !ok {
		return &ValidationError{Name: "sessions_analyzed", err: errors.New(`ent: missing required field "PromptAnalysis.sessions_analyzed"`)}
	}
	if _, ok := _c.mutation.QualityImpactEstimate(); !ok {
		return &ValidationError{Name: "quality_impact_estimate", err: errors.New(`ent: missing required field "PromptAnalysis.quality_impact_estimate"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "PromptAnalysis.created_at"`)}
	}
	return nil
}

func (_c *PromptAnalysisCreate) sqlSave(ctx context.Context) (*PromptAnalysis, error) {
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
			return nil, fmt.Errorf("unexpected PromptAnalysis.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PromptAnalysisCreate) createSpec() (*PromptAnalysis, *sqlgraph.CreateSpec) {
	var (
		_node = &PromptAnalysis{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(promptanalysis.Table, sqlgraph.NewFieldSpec(promptanalysis.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.ProjectsAnalyzed(); ok {
		_spec.SetField(promptanalysis.FieldProjectsAnalyzed, field.TypeJSON, value)
		_node.ProjectsAnalyzed = value
	}
	if value, ok := _c.mutation.SandboxType(); ok {
		_spec.SetField(promptanalysis.FieldSandboxType, field.TypeString, value)
		_node.SandboxType = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(promptanalysis.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.TriggeredBy(); ok {
		_spec.SetField(promptanalysis.FieldTriggeredBy, field.TypeString, value)
		_node.TriggeredBy = value
	}
	if value, ok := _c.mutation.DateRangeStart(); ok {
		_spec.SetField(promptanalysis.FieldDateRangeStart, field.TypeTime, value)
		_node.DateRangeStart = &value
	}
	if value, ok := _c.mutation.DateRangeEnd(); ok {
		_spec.SetField(promptanalysis.FieldDateRangeEnd, field.TypeTime, value)
		_node.DateRangeEnd = &value
	}
	if value, ok := _c.mutation.SessionsAnalyzed(); ok {
		_spec.SetField(promptanalysis.FieldSessionsAnalyzed, field.TypeInt, value)
		_node.SessionsAnalyzed = value
	}
	if value, ok := _c.mutation.Patterns(); ok {
		_spec.SetField(promptanalysis.FieldPatterns, field.TypeJSON, value)
		_node.Patterns = value
	}
	if value, ok := _c.mutation.QualityImpactEstimate(); ok {
		_spec.SetField(promptanalysis.FieldQualityImpactEstimate, field.TypeFloat64, value)
		_node.QualityImpactEstimate = value
	}
	if value, ok := _c.mutation.Notes(); ok {
		_spec.SetField(promptanalysis.FieldNotes, field.TypeString, value)
		_node.Notes = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(promptanalysis.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(promptanalysis.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if nodes := _c.mutation.ProposalsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   promptanalysis.ProposalsTable,
			Columns: []string{promptanalysis.ProposalsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(promptproposal.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// PromptAnalysisCreateBulk is the builder for creating many PromptAnalysis entities in bulk.
type PromptAnalysisCreateBulk struct {
	config
	err      error
	builders []*PromptAnalysisCreate
}

// Save creates the PromptAnalysis entities in the database.
func (_c *PromptAnalysisCreateBulk) Save(ctx context.Context) ([]*PromptAnalysis, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PromptAnalysis, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PromptAnalysisMutation)
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
func (_c *PromptAnalysisCreateBulk) SaveX(ctx context.Context) []*PromptAnalysis {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PromptAnalysisCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PromptAnalysisCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
