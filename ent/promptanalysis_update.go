// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/autoforge-dev/autoforge/ent/predicate"
	"github.com/autoforge-dev/autoforge/ent/promptanalysis"
	"github.com/autoforge-dev/autoforge/ent/promptproposal"
)

// PromptAnalysisUpdate is the builder for updating PromptAnalysis entities.
type PromptAnalysisUpdate struct {
	config
	hooks    []Hook
	mutation *PromptAnalysisMutation
}

// Where appends a list predicates to the PromptAnalysisUpdate builder.
func (_u *PromptAnalysisUpdate) Where(ps ...predicate.PromptAnalysis) *PromptAnalysisUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetProjectsAnalyzed sets the "projects_analyzed" field.
func (_u *PromptAnalysisUpdate) SetProjectsAnalyzed(v []string) *PromptAnalysisUpdate {
	_u.mutation.SetProjectsAnalyzed(v)
	return _u
}

// AppendProjectsAnalyzed appends value to the "projects_analyzed" field.
func (_u *PromptAnalysisUpdate) AppendProjectsAnalyzed(v []string) *PromptAnalysisUpdate {
	_u.mutation.AppendProjectsAnalyzed(v)
	return _u
}

// ClearProjectsAnalyzed clears the value of the "projects_analyzed" field.
func (_u *PromptAnalysisUpdate) ClearProjectsAnalyzed() *PromptAnalysisUpdate {
	_u.mutation.ClearProjectsAnalyzed()
	return _u
}

// SetSandboxType sets the "sandbox_type" field.
func (_u *PromptAnalysisUpdate) SetSandboxType(v string) *PromptAnalysisUpdate {
	_u.mutation.SetSandboxType(v)
	return _u
}

// SetNillableSandboxType sets the "sandbox_type" field if the given value is not nil.
func (_u *PromptAnalysisUpdate) SetNillableSandboxType(v *string) *PromptAnalysisUpdate {
	if v != nil {
		_u.SetSandboxType(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *PromptAnalysisUpdate) SetStatus(v promptanalysis.Status) *PromptAnalysisUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *PromptAnalysisUpdate) SetNillableStatus(v *promptanalysis.Status) *PromptAnalysisUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetTriggeredBy sets the "triggered_by" field.
func (_u *PromptAnalysisUpdate) SetTriggeredBy(v string) *PromptAnalysisUpdate {
	_u.mutation.SetTriggeredBy(v)
	return _u
}

// SetNillableTriggeredBy sets the "triggered_by" field if the given value is not nil.
func (_u *PromptAnalysisUpdate) SetNillableTriggeredBy(v *string) *PromptAnalysisUpdate {
	if v != nil {
		_u.SetTriggeredBy(*v)
	}
	return _u
}

// SetDateRangeStart sets the "date_range_start" field.
func (_u *PromptAnalysisUpdate) SetDateRangeStart(v time.Time) *PromptAnalysisUpdate {
	_u.mutation.SetDateRangeStart(v)
	return _u
}

// SetNillableDateRangeStart sets the "date_range_start" field if the given value is not nil.
func (_u *PromptAnalysisUpdate) SetNillableDateRangeStart(v *time.Time) *PromptAnalysisUpdate {
	if v != nil {
		_u.SetDateRangeStart(*v)
	}
	return _u
}

// ClearDateRangeStart clears the value of the "date_range_start" field.
func (_u *PromptAnalysisUpdate) ClearDateRangeStart() *PromptAnalysisUpdate {
	_u.mutation.ClearDateRangeStart()
	return _u
}

// SetDateRangeEnd sets the "date_range_end" field.
func (_u *PromptAnalysisUpdate) SetDateRangeEnd(v time.Time) *PromptAnalysisUpdate {
	_u.mutation.SetDateRangeEnd(v)
	return _u
}

// SetNillableDateRangeEnd sets the "date_range_end" field if the given value is not nil.
func (_u *PromptAnalysisUpdate) SetNillableDateRangeEnd(v *time.Time) *PromptAnalysisUpdate {
	if v != nil {
		_u.SetDateRangeEnd(*v)
	}
	return _u
}

// ClearDateRangeEnd clears the value of the "date_range_end" field.
func (_u *PromptAnalysisUpdate) ClearDateRangeEnd() *PromptAnalysisUpdate {
	_u.mutation.ClearDateRangeEnd()
	return _u
}

// SetSessionsAnalyzed sets the "sessions_analyzed" field.
func (_u *PromptAnalysisUpdate) SetSessionsAnalyzed(v int) *PromptAnalysisUpdate {
	_u.mutation.ResetSessionsAnalyzed()
	_u.mutation.SetSessionsAnalyzed(v)
	return _u
}

// SetNillableSessionsAnalyzed sets the "sessions_analyzed" field if the given value is not nil.
func (_u *PromptAnalysisUpdate) SetNillableSessionsAnalyzed(v *int) *PromptAnalysisUpdate {
	if v != nil {
		_u.SetSessionsAnalyzed(*v)
	}
	return _u
}

// AddSessionsAnalyzed adds value to the "sessions_analyzed" field.
func (_u *PromptAnalysisUpdate) AddSessionsAnalyzed(v int) *PromptAnalysisUpdate {
	_u.mutation.AddSessionsAnalyzed(v)
	return _u
}

// SetPatterns sets the "patterns" field.
func (_u *PromptAnalysisUpdate) SetPatterns(v map[string]interface{}) *PromptAnalysisUpdate {
	_u.mutation.SetPatterns(v)
	return _u
}

// ClearPatterns clears the value of the "patterns" field.
func (_u *PromptAnalysisUpdate) ClearPatterns() *PromptAnalysisUpdate {
	_u.mutation.ClearPatterns()
	return _u
}

// SetQualityImpactEstimate sets the "quality_impact_estimate" field.
func (_u *PromptAnalysisUpdate) SetQualityImpactEstimate(v float64) *PromptAnalysisUpdate {
	_u.mutation.ResetQualityImpactEstimate()
	_u.mutation.SetQualityImpactEstimate(v)
	return _u
}

// SetNillableQualityImpactEstimate sets the "quality_impact_estimate" field if the given value is not nil.
func (_u *PromptAnalysisUpdate) SetNillableQualityImpactEstimate(v *float64) *PromptAnalysisUpdate {
	if v != nil {
		_u.SetQualityImpactEstimate(*v)
	}
	return _u
}

// AddQualityImpactEstimate adds value to the "quality_impact_estimate" field.
func (_u *PromptAnalysisUpdate) AddQualityImpactEstimate(v float64) *PromptAnalysisUpdate {
	_u.mutation.AddQualityImpactEstimate(v)
	return _u
}

// SetNotes sets the "notes" field.
func (_u *PromptAnalysisUpdate) SetNotes(v string) *PromptAnalysisUpdate {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *PromptAnalysisUpdate) SetNillableNotes(v *string) *PromptAnalysisUpdate {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *PromptAnalysisUpdate) ClearNotes() *PromptAnalysisUpdate {
	_u.mutation.ClearNotes()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *PromptAnalysisUpdate) SetCompletedAt(v time.Time) *PromptAnalysisUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *PromptAnalysisUpdate) SetNillableCompletedAt(v *time.Time) *PromptAnalysisUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *PromptAnalysisUpdate) ClearCompletedAt() *PromptAnalysisUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// AddProposalIDs adds the "proposals" edge to the PromptProposal entity by IDs.
func (_u *PromptAnalysisUpdate) AddProposalIDs(ids ...string) *PromptAnalysisUpdate {
	_u.mutation.AddProposalIDs(ids...)
	return _u
}

// AddProposals adds the "proposals" edges to the PromptProposal entity.
func (_u *PromptAnalysisUpdate) AddProposals(v ...*PromptProposal) *PromptAnalysisUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddProposalIDs(ids...)
}

// Mutation returns the PromptAnalysisMutation object of the builder.
func (_u *PromptAnalysisUpdate) Mutation() *PromptAnalysisMutation {
	return _u.mutation
}

// ClearProposals clears all "proposals" edges to the PromptProposal entity.
func (_u *PromptAnalysisUpdate) ClearProposals() *PromptAnalysisUpdate {
	_u.mutation.ClearProposals()
	return _u
}

// RemoveProposalIDs removes the "proposals" edge to PromptProposal entities by IDs.
func (_u *PromptAnalysisUpdate) RemoveProposalIDs(ids ...string) *PromptAnalysisUpdate {
	_u.mutation.RemoveProposalIDs(ids...)
	return _u
}

// RemoveProposals removes "proposals" edges to PromptProposal entities.
func (_u *PromptAnalysisUpdate) RemoveProposals(v ...*PromptProposal) *PromptAnalysisUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveProposalIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PromptAnalysisUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PromptAnalysisUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PromptAnalysisUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PromptAnalysisUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PromptAnalysisUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := promptanalysis.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "PromptAnalysis.status": %w`, err)}
		}
	}
	return nil
}

func (_u *PromptAnalysisUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(promptanalysis.Table, promptanalysis.Columns, sqlgraph.NewFieldSpec(promptanalysis.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ProjectsAnalyzed(); ok {
		_spec.SetField(promptanalysis.FieldProjectsAnalyzed, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedProjectsAnalyzed(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, promptanalysis.FieldProjectsAnalyzed, value)
		})
	}
	if _u.mutation.ProjectsAnalyzedCleared() {
		_spec.ClearField(promptanalysis.FieldProjectsAnalyzed, field.TypeJSON)
	}
	if value, ok := _u.mutation.SandboxType(); ok {
		_spec.SetField(promptanalysis.FieldSandboxType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(promptanalysis.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.TriggeredBy(); ok {
		_spec.SetField(promptanalysis.FieldTriggeredBy, field.TypeString, value)
	}
	if value, ok := _u.mutation.DateRangeStart(); ok {
		_spec.SetField(promptanalysis.FieldDateRangeStart, field.TypeTime, value)
	}
	if _u.mutation.DateRangeStartCleared() {
		_spec.ClearField(promptanalysis.FieldDateRangeStart, field.TypeTime)
	}
	if value, ok := _u.mutation.DateRangeEnd(); ok {
		_spec.SetField(promptanalysis.FieldDateRangeEnd, field.TypeTime, value)
	}
	if _u.mutation.DateRangeEndCleared() {
		_spec.ClearField(promptanalysis.FieldDateRangeEnd, field.TypeTime)
	}
	if value, ok := _u.mutation.SessionsAnalyzed(); ok {
		_spec.SetField(promptanalysis.FieldSessionsAnalyzed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSessionsAnalyzed(); ok {
		_spec.AddField(promptanalysis.FieldSessionsAnalyzed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Patterns(); ok {
		_spec.SetField(promptanalysis.FieldPatterns, field.TypeJSON, value)
	}
	if _u.mutation.PatternsCleared() {
		_spec.ClearField(promptanalysis.FieldPatterns, field.TypeJSON)
	}
	if value, ok := _u.mutation.QualityImpactEstimate(); ok {
		_spec.SetField(promptanalysis.FieldQualityImpactEstimate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedQualityImpactEstimate(); ok {
		_spec.AddField(promptanalysis.FieldQualityImpactEstimate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(promptanalysis.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(promptanalysis.FieldNotes, field.TypeString)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(promptanalysis.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(promptanalysis.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.ProposalsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedProposalsIDs(); len(nodes) > 0 && !_u.mutation.ProposalsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProposalsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{promptanalysis.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PromptAnalysisUpdateOne is the builder for updating a single PromptAnalysis entity.
type PromptAnalysisUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PromptAnalysisMutation
}

// SetProjectsAnalyzed sets the "projects_analyzed" field.
func (_u *PromptAnalysisUpdateOne) SetProjectsAnalyzed(v []string) *PromptAnalysisUpdateOne {
	_u.mutation.SetProjectsAnalyzed(v)
	return _u
}

// AppendProjectsAnalyzed appends value to the "projects_analyzed" field.
func (_u *PromptAnalysisUpdateOne) AppendProjectsAnalyzed(v []string) *PromptAnalysisUpdateOne {
	_u.mutation.AppendProjectsAnalyzed(v)
	return _u
}

// ClearProjectsAnalyzed clears the value of the "projects_analyzed" field.
func (_u *PromptAnalysisUpdateOne) ClearProjectsAnalyzed() *PromptAnalysisUpdateOne {
	_u.mutation.ClearProjectsAnalyzed()
	return _u
}

// SetSandboxType sets the "sandbox_type" field.
func (_u *PromptAnalysisUpdateOne) SetSandboxType(v string) *PromptAnalysisUpdateOne {
	_u.mutation.SetSandboxType(v)
	return _u
}

// SetNillableSandboxType sets the "sandbox_type" field if the given value is not nil.
func (_u *PromptAnalysisUpdateOne) SetNillableSandboxType(v *string) *PromptAnalysisUpdateOne {
	if v != nil {
		_u.SetSandboxType(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *PromptAnalysisUpdateOne) SetStatus(v promptanalysis.Status) *PromptAnalysisUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *PromptAnalysisUpdateOne) SetNillableStatus(v *promptanalysis.Status) *PromptAnalysisUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetTriggeredBy sets the "triggered_by" field.
func (_u *PromptAnalysisUpdateOne) SetTriggeredBy(v string) *PromptAnalysisUpdateOne {
	_u.mutation.SetTriggeredBy(v)
	return _u
}

// SetNillableTriggeredBy sets the "triggered_by" field if the given value is not nil.
func (_u *PromptAnalysisUpdateOne) SetNillableTriggeredBy(v *string) *PromptAnalysisUpdateOne {
	if v != nil {
		_u.SetTriggeredBy(*v)
	}
	return _u
}

// SetDateRangeStart sets the "date_range_start" field.
func (_u *PromptAnalysisUpdateOne) SetDateRangeStart(v time.Time) *PromptAnalysisUpdateOne {
	_u.mutation.SetDateRangeStart(v)
	return _u
}

// SetNillableDateRangeStart sets the "date_range_start" field if the given value is not nil.
func (_u *PromptAnalysisUpdateOne) SetNillableDateRangeStart(v *time.Time) *PromptAnalysisUpdateOne {
	if v != nil {
		_u.SetDateRangeStart(*v)
	}
	return _u
}

// ClearDateRangeStart clears the value of the "date_range_start" field.
func (_u *PromptAnalysisUpdateOne) ClearDateRangeStart() *PromptAnalysisUpdateOne {
	_u.mutation.ClearDateRangeStart()
	return _u
}

// SetDateRangeEnd sets the "date_range_end" field.
func (_u *PromptAnalysisUpdateOne) SetDateRangeEnd(v time.Time) *PromptAnalysisUpdateOne {
	_u.mutation.SetDateRangeEnd(v)
	return _u
}

// SetNillableDateRangeEnd sets the "date_range_end" field if the given value is not nil.
func (_u *PromptAnalysisUpdateOne) SetNillableDateRangeEnd(v *time.Time) *PromptAnalysisUpdateOne {
	if v != nil {
		_u.SetDateRangeEnd(*v)
	}
	return _u
}

// ClearDateRangeEnd clears the value of the "date_range_end" field.
func (_u *PromptAnalysisUpdateOne) ClearDateRangeEnd() *PromptAnalysisUpdateOne {
	_u.mutation.ClearDateRangeEnd()
	return _u
}

// SetSessionsAnalyzed sets the "sessions_analyzed" field.
func (_u *PromptAnalysisUpdateOne) SetSessionsAnalyzed(v int) *PromptAnalysisUpdateOne {
	_u.mutation.ResetSessionsAnalyzed()
	_u.mutation.SetSessionsAnalyzed(v)
	return _u
}

// SetNillableSessionsAnalyzed sets the "sessions_analyzed" field if the given value is not nil.
func (_u *PromptAnalysisUpdateOne) SetNillableSessionsAnalyzed(v *int) *PromptAnalysisUpdateOne {
	if v != nil {
		_u.SetSessionsAnalyzed(*v)
	}
	return _u
}

// AddSessionsAnalyzed adds value to the "sessions_analyzed" field.
func (_u *PromptAnalysisUpdateOne) AddSessionsAnalyzed(v int) *PromptAnalysisUpdateOne {
	_u.mutation.AddSessionsAnalyzed(v)
	return _u
}

// SetPatterns sets the "patterns" field.
func (_u *PromptAnalysisUpdateOne) SetPatterns(v map[string]interface{}) *PromptAnalysisUpdateOne {
	_u.mutation.SetPatterns(v)
	return _u
}

// ClearPatterns clears the value of the "patterns" field.
func (_u *PromptAnalysisUpdateOne) ClearPatterns() *PromptAnalysisUpdateOne {
	_u.mutation.ClearPatterns()
	return _u
}

// SetQualityImpactEstimate sets the "quality_impact_estimate" field.
func (_u *PromptAnalysisUpdateOne) SetQualityImpactEstimate(v float64) *PromptAnalysisUpdateOne {
	_u.mutation.ResetQualityImpactEstimate()
	_u.mutation.SetQualityImpactEstimate(v)
	return _u
}

// SetNillableQualityImpactEstimate sets the "quality_impact_estimate" field if the given value is not nil.
func (_u *PromptAnalysisUpdateOne) SetNillableQualityImpactEstimate(v *float64) *PromptAnalysisUpdateOne {
	if v != nil {
		_u.SetQualityImpactEstimate(*v)
	}
	return _u
}

// AddQualityImpactEstimate adds value to the "quality_impact_estimate" field.
func (_u *PromptAnalysisUpdateOne) AddQualityImpactEstimate(v float64) *PromptAnalysisUpdateOne {
	_u.mutation.AddQualityImpactEstimate(v)
	return _u
}

// SetNotes sets the "notes" field.
func (_u *PromptAnalysisUpdateOne) SetNotes(v string) *PromptAnalysisUpdateOne {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *PromptAnalysisUpdateOne) SetNillableNotes(v *string) *PromptAnalysisUpdateOne {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *PromptAnalysisUpdateOne) ClearNotes() *PromptAnalysisUpdateOne {
	_u.mutation.ClearNotes()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *PromptAnalysisUpdateOne) SetCompletedAt(v time.Time) *PromptAnalysisUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *PromptAnalysisUpdateOne) SetNillableCompletedAt(v *time.Time) *PromptAnalysisUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *PromptAnalysisUpdateOne) ClearCompletedAt() *PromptAnalysisUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// AddProposalIDs adds the "proposals" edge to the PromptProposal entity by IDs.
func (_u *PromptAnalysisUpdateOne) AddProposalIDs(ids ...string) *PromptAnalysisUpdateOne {
	_u.mutation.AddProposalIDs(ids...)
	return _u
}

// AddProposals adds the "proposals" edges to the PromptProposal entity.
func (_u *PromptAnalysisUpdateOne) AddProposals(v ...*PromptProposal) *PromptAnalysisUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddProposalIDs(ids...)
}

// Mutation returns the PromptAnalysisMutation object of the builder.
func (_u *PromptAnalysisUpdateOne) Mutation() *PromptAnalysisMutation {
	return _u.mutation
}

// ClearProposals clears all "proposals" edges to the PromptProposal entity.
func (_u *PromptAnalysisUpdateOne) ClearProposals() *PromptAnalysisUpdateOne {
	_u.mutation.ClearProposals()
	return _u
}

// RemoveProposalIDs removes the "proposals" edge to PromptProposal entities by IDs.
func (_u *PromptAnalysisUpdateOne) RemoveProposalIDs(ids ...string) *PromptAnalysisUpdateOne {
	_u.mutation.RemoveProposalIDs(ids...)
	return _u
}

// RemoveProposals removes "proposals" edges to PromptProposal entities.
func (_u *PromptAnalysisUpdateOne) RemoveProposals(v ...*PromptProposal) *PromptAnalysisUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveProposalIDs(ids...)
}

// Where appends a list predicates to the PromptAnalysisUpdate builder.
func (_u *PromptAnalysisUpdateOne) Where(ps ...predicate.PromptAnalysis) *PromptAnalysisUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PromptAnalysisUpdateOne) Select(field string, fields ...string) *PromptAnalysisUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PromptAnalysis entity.
func (_u *PromptAnalysisUpdateOne) Save(ctx context.Context) (*PromptAnalysis, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PromptAnalysisUpdateOne) SaveX(ctx context.Context) *PromptAnalysis {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PromptAnalysisUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PromptAnalysisUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PromptAnalysisUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := promptanalysis.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "PromptAnalysis.status": %w`, err)}
		}
	}
	return nil
}

func (_u *PromptAnalysisUpdateOne) sqlSave(ctx context.Context) (_node *PromptAnalysis, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(promptanalysis.Table, promptanalysis.Columns, sqlgraph.NewFieldSpec(promptanalysis.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PromptAnalysis.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, promptanalysis.FieldID)
		for _, f := range fields {
			if !promptanalysis.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != promptanalysis.FieldID {
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
	if value, ok := _u.mutation.ProjectsAnalyzed(); ok {
		_spec.SetField(promptanalysis.FieldProjectsAnalyzed, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedProjectsAnalyzed(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, promptanalysis.FieldProjectsAnalyzed, value)
		})
	}
	if _u.mutation.ProjectsAnalyzedCleared() {
		_spec.ClearField(promptanalysis.FieldProjectsAnalyzed, field.TypeJSON)
	}
	if value, ok := _u.mutation.SandboxType(); ok {
		_spec.SetField(promptanalysis.FieldSandboxType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(promptanalysis.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.TriggeredBy(); ok {
		_spec.SetField(promptanalysis.FieldTriggeredBy, field.TypeString, value)
	}
	if value, ok := _u.mutation.DateRangeStart(); ok {
		_spec.SetField(promptanalysis.FieldDateRangeStart, field.TypeTime, value)
	}
	if _u.mutation.DateRangeStartCleared() {
		_spec.ClearField(promptanalysis.FieldDateRangeStart, field.TypeTime)
	}
	if value, ok := _u.mutation.DateRangeEnd(); ok {
		_spec.SetField(promptanalysis.FieldDateRangeEnd, field.TypeTime, value)
	}
	if _u.mutation.DateRangeEndCleared() {
		_spec.ClearField(promptanalysis.FieldDateRangeEnd, field.TypeTime)
	}
	if value, ok := _u.mutation.SessionsAnalyzed(); ok {
		_spec.SetField(promptanalysis.FieldSessionsAnalyzed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSessionsAnalyzed(); ok {
		_spec.AddField(promptanalysis.FieldSessionsAnalyzed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Patterns(); ok {
		_spec.SetField(promptanalysis.FieldPatterns, field.TypeJSON, value)
	}
	if _u.mutation.PatternsCleared() {
		_spec.ClearField(promptanalysis.FieldPatterns, field.TypeJSON)
	}
	if value, ok := _u.mutation.QualityImpactEstimate(); ok {
		_spec.SetField(promptanalysis.FieldQualityImpactEstimate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedQualityImpactEstimate(); ok {
		_spec.AddField(promptanalysis.FieldQualityImpactEstimate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(promptanalysis.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(promptanalysis.FieldNotes, field.TypeString)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(promptanalysis.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(promptanalysis.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.ProposalsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedProposalsIDs(); len(nodes) > 0 && !_u.mutation.ProposalsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProposalsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &PromptAnalysis{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{promptanalysis.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
