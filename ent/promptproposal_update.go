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
	"github.com/autoforge-dev/autoforge/ent/promptproposal"
)

// PromptProposalUpdate is the builder for updating PromptProposal entities.
type PromptProposalUpdate struct {
	config
	hooks    []Hook
	mutation *PromptProposalMutation
}

// Where appends a list predicates to the PromptProposalUpdate builder.
func (_u *PromptProposalUpdate) Where(ps ...predicate.PromptProposal) *PromptProposalUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPromptFile sets the "prompt_file" field.
func (_u *PromptProposalUpdate) SetPromptFile(v string) *PromptProposalUpdate {
	_u.mutation.SetPromptFile(v)
	return _u
}

// SetNillablePromptFile sets the "prompt_file" field if the given value is not nil.
func (_u *PromptProposalUpdate) SetNillablePromptFile(v *string) *PromptProposalUpdate {
	if v != nil {
		_u.SetPromptFile(*v)
	}
	return _u
}

// SetSectionName sets the "section_name" field.
func (_u *PromptProposalUpdate) SetSectionName(v string) *PromptProposalUpdate {
	_u.mutation.SetSectionName(v)
	return _u
}

// SetNillableSectionName sets the "section_name" field if the given value is not nil.
func (_u *PromptProposalUpdate) SetNillableSectionName(v *string) *PromptProposalUpdate {
	if v != nil {
		_u.SetSectionName(*v)
	}
	return _u
}

// SetChangeType sets the "change_type" field.
func (_u *PromptProposalUpdate) SetChangeType(v promptproposal.ChangeType) *PromptProposalUpdate {
	_u.mutation.SetChangeType(v)
	return _u
}

// SetNillableChangeType sets the "change_type" field if the given value is not nil.
func (_u *PromptProposalUpdate) SetNillableChangeType(v *promptproposal.ChangeType) *PromptProposalUpdate {
	if v != nil {
		_u.SetChangeType(*v)
	}
	return _u
}

// SetOriginalText sets the "original_text" field.
func (_u *PromptProposalUpdate) SetOriginalText(v string) *PromptProposalUpdate {
	_u.mutation.SetOriginalText(v)
	return _u
}

// SetNillableOriginalText sets the "original_text" field if the given value is not nil.
func (_u *PromptProposalUpdate) SetNillableOriginalText(v *string) *PromptProposalUpdate {
	if v != nil {
		_u.SetOriginalText(*v)
	}
	return _u
}

// ClearOriginalText clears the value of the "original_text" field.
func (_u *PromptProposalUpdate) ClearOriginalText() *PromptProposalUpdate {
	_u.mutation.ClearOriginalText()
	return _u
}

// SetProposedText sets the "proposed_text" field.
func (_u *PromptProposalUpdate) SetProposedText(v string) *PromptProposalUpdate {
	_u.mutation.SetProposedText(v)
	return _u
}

// SetNillableProposedText sets the "proposed_text" field if the given value is not nil.
func (_u *PromptProposalUpdate) SetNillableProposedText(v *string) *PromptProposalUpdate {
	if v != nil {
		_u.SetProposedText(*v)
	}
	return _u
}

// SetRationale sets the "rationale" field.
func (_u *PromptProposalUpdate) SetRationale(v string) *PromptProposalUpdate {
	_u.mutation.SetRationale(v)
	return _u
}

// SetNillableRationale sets the "rationale" field if the given value is not nil.
func (_u *PromptProposalUpdate) SetNillableRationale(v *string) *PromptProposalUpdate {
	if v != nil {
		_u.SetRationale(*v)
	}
	return _u
}

// SetEvidence sets the "evidence" field.
func (_u *PromptProposalUpdate) SetEvidence(v []map[string]interface{}) *PromptProposalUpdate {
	_u.mutation.SetEvidence(v)
	return _u
}

// AppendEvidence appends value to the "evidence" field.
func (_u *PromptProposalUpdate) AppendEvidence(v []map[string]interface{}) *PromptProposalUpdate {
	_u.mutation.AppendEvidence(v)
	return _u
}

// ClearEvidence clears the value of the "evidence" field.
func (_u *PromptProposalUpdate) ClearEvidence() *PromptProposalUpdate {
	_u.mutation.ClearEvidence()
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *PromptProposalUpdate) SetConfidence(v int) *PromptProposalUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *PromptProposalUpdate) SetNillableConfidence(v *int) *PromptProposalUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *PromptProposalUpdate) AddConfidence(v int) *PromptProposalUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *PromptProposalUpdate) SetStatus(v promptproposal.Status) *PromptProposalUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *PromptProposalUpdate) SetNillableStatus(v *promptproposal.Status) *PromptProposalUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAppliedAt sets the "applied_at" field.
func (_u *PromptProposalUpdate) SetAppliedAt(v time.Time) *PromptProposalUpdate {
	_u.mutation.SetAppliedAt(v)
	return _u
}

// SetNillableAppliedAt sets the "applied_at" field if the given value is not nil.
func (_u *PromptProposalUpdate) SetNillableAppliedAt(v *time.Time) *PromptProposalUpdate {
	if v != nil {
		_u.SetAppliedAt(*v)
	}
	return _u
}

// ClearAppliedAt clears the value of the "applied_at" field.
func (_u *PromptProposalUpdate) ClearAppliedAt() *PromptProposalUpdate {
	_u.mutation.ClearAppliedAt()
	return _u
}

// SetAppliedBy sets the "applied_by" field.
func (_u *PromptProposalUpdate) SetAppliedBy(v string) *PromptProposalUpdate {
	_u.mutation.SetAppliedBy(v)
	return _u
}

// SetNillableAppliedBy sets the "applied_by" field if the given value is not nil.
func (_u *PromptProposalUpdate) SetNillableAppliedBy(v *string) *PromptProposalUpdate {
	if v != nil {
		_u.SetAppliedBy(*v)
	}
	return _u
}

// ClearAppliedBy clears the value of the "applied_by" field.
func (_u *PromptProposalUpdate) ClearAppliedBy() *PromptProposalUpdate {
	_u.mutation.ClearAppliedBy()
	return _u
}

// SetPromptVersionID sets the "prompt_version_id" field.
func (_u *PromptProposalUpdate) SetPromptVersionID(v string) *PromptProposalUpdate {
	_u.mutation.SetPromptVersionID(v)
	return _u
}

// SetNillablePromptVersionID sets the "prompt_version_id" field if the given value is not nil.
func (_u *PromptProposalUpdate) SetNillablePromptVersionID(v *string) *PromptProposalUpdate {
	if v != nil {
		_u.SetPromptVersionID(*v)
	}
	return _u
}

// ClearPromptVersionID clears the value of the "prompt_version_id" field.
func (_u *PromptProposalUpdate) ClearPromptVersionID() *PromptProposalUpdate {
	_u.mutation.ClearPromptVersionID()
	return _u
}

// Mutation returns the PromptProposalMutation object of the builder.
func (_u *PromptProposalUpdate) Mutation() *PromptProposalMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PromptProposalUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PromptProposalUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PromptProposalUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PromptProposalUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PromptProposalUpdate) check() error {
	if v, ok := _u.mutation.ChangeType(); ok {
		if err := promptproposal.ChangeTypeValidator(v); err != nil {
			return &ValidationError{Name: "change_type", err: fmt.Errorf(`ent: validator failed for field "PromptProposal.change_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Confidence(); ok {
		if err := promptproposal.ConfidenceValidator(v); err != nil {
			return &ValidationError{Name: "confidence", err: fmt.Errorf(`ent: validator failed for field "PromptProposal.confidence": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := promptproposal.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "PromptProposal.status": %w`, err)}
		}
	}
	if _u.mutation.AnalysisCleared() && len(_u.mutation.AnalysisIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "PromptProposal.analysis"`)
	}
	return nil
}

func (_u *PromptProposalUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(promptproposal.Table, promptproposal.Columns, sqlgraph.NewFieldSpec(promptproposal.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.PromptFile(); ok {
		_spec.SetField(promptproposal.FieldPromptFile, field.TypeString, value)
	}
	if value, ok := _u.mutation.SectionName(); ok {
		_spec.SetField(promptproposal.FieldSectionName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ChangeType(); ok {
		_spec.SetField(promptproposal.FieldChangeType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.OriginalText(); ok {
		_spec.SetField(promptproposal.FieldOriginalText, field.TypeString, value)
	}
	if _u.mutation.OriginalTextCleared() {
		_spec.ClearField(promptproposal.FieldOriginalText, field.TypeString)
	}
	if value, ok := _u.mutation.ProposedText(); ok {
		_spec.SetField(promptproposal.FieldProposedText, field.TypeString, value)
	}
	if value, ok := _u.mutation.Rationale(); ok {
		_spec.SetField(promptproposal.FieldRationale, field.TypeString, value)
	}
	if value, ok := _u.mutation.Evidence(); ok {
		_spec.SetField(promptproposal.FieldEvidence, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedEvidence(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, promptproposal.FieldEvidence, value)
		})
	}
	if _u.mutation.EvidenceCleared() {
		_spec.ClearField(promptproposal.FieldEvidence, field.TypeJSON)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(promptproposal.FieldConfidence, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(promptproposal.FieldConfidence, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(promptproposal.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AppliedAt(); ok {
		_spec.SetField(promptproposal.FieldAppliedAt, field.TypeTime, value)
	}
	if _u.mutation.AppliedAtCleared() {
		_spec.ClearField(promptproposal.FieldAppliedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.AppliedBy(); ok {
		_spec.SetField(promptproposal.FieldAppliedBy, field.TypeString, value)
	}
	if _u.mutation.AppliedByCleared() {
		_spec.ClearField(promptproposal.FieldAppliedBy, field.TypeString)
	}
	if value, ok := _u.mutation.PromptVersionID(); ok {
		_spec.SetField(promptproposal.FieldPromptVersionID, field.TypeString, value)
	}
	if _u.mutation.PromptVersionIDCleared() {
		_spec.ClearField(promptproposal.FieldPromptVersionID, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{promptproposal.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PromptProposalUpdateOne is the builder for updating a single PromptProposal entity.
type PromptProposalUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PromptProposalMutation
}

// SetPromptFile sets the "prompt_file" field.
func (_u *PromptProposalUpdateOne) SetPromptFile(v string) *PromptProposalUpdateOne {
	_u.mutation.SetPromptFile(v)
	return _u
}

// SetNillablePromptFile sets the "prompt_file" field if the given value is not nil.
func (_u *PromptProposalUpdateOne) SetNillablePromptFile(v *string) *PromptProposalUpdateOne {
	if v != nil {
		_u.SetPromptFile(*v)
	}
	return _u
}

// SetSectionName sets the "section_name" field.
func (_u *PromptProposalUpdateOne) SetSectionName(v string) *PromptProposalUpdateOne {
	_u.mutation.SetSectionName(v)
	return _u
}

// SetNillableSectionName sets the "section_name" field if the given value is not nil.
func (_u *PromptProposalUpdateOne) SetNillableSectionName(v *string) *PromptProposalUpdateOne {
	if v != nil {
		_u.SetSectionName(*v)
	}
	return _u
}

// SetChangeType sets the "change_type" field.
func (_u *PromptProposalUpdateOne) SetChangeType(v promptproposal.ChangeType) *PromptProposalUpdateOne {
	_u.mutation.SetChangeType(v)
	return _u
}

// SetNillableChangeType sets the "change_type" field if the given value is not nil.
func (_u *PromptProposalUpdateOne) SetNillableChangeType(v *promptproposal.ChangeType) *PromptProposalUpdateOne {
	if v != nil {
		_u.SetChangeType(*v)
	}
	return _u
}

// SetOriginalText sets the "original_text" field.
func (_u *PromptProposalUpdateOne) SetOriginalText(v string) *PromptProposalUpdateOne {
	_u.mutation.SetOriginalText(v)
	return _u
}

// SetNillableOriginalText sets the "original_text" field if the given value is not nil.
func (_u *PromptProposalUpdateOne) SetNillableOriginalText(v *string) *PromptProposalUpdateOne {
	if v != nil {
		_u.SetOriginalText(*v)
	}
	return _u
}

// ClearOriginalText clears the value of the "original_text" field.
func (_u *PromptProposalUpdateOne) ClearOriginalText() *PromptProposalUpdateOne {
	_u.mutation.ClearOriginalText()
	return _u
}

// SetProposedText sets the "proposed_text" field.
func (_u *PromptProposalUpdateOne) SetProposedText(v string) *PromptProposalUpdateOne {
	_u.mutation.SetProposedText(v)
	return _u
}

// SetNillableProposedText sets the "proposed_text" field if the given value is not nil.
func (_u *PromptProposalUpdateOne) SetNillableProposedText(v *string) *PromptProposalUpdateOne {
	if v != nil {
		_u.SetProposedText(*v)
	}
	return _u
}

// SetRationale sets the "rationale" field.
func (_u *PromptProposalUpdateOne) SetRationale(v string) *PromptProposalUpdateOne {
	_u.mutation.SetRationale(v)
	return _u
}

// SetNillableRationale sets the "rationale" field if the given value is not nil.
func (_u *PromptProposalUpdateOne) SetNillableRationale(v *string) *PromptProposalUpdateOne {
	if v != nil {
		_u.SetRationale(*v)
	}
	return _u
}

// SetEvidence sets the "evidence" field.
func (_u *PromptProposalUpdateOne) SetEvidence(v []map[string]interface{}) *PromptProposalUpdateOne {
	_u.mutation.SetEvidence(v)
	return _u
}

// AppendEvidence appends value to the "evidence" field.
func (_u *PromptProposalUpdateOne) AppendEvidence(v []map[string]interface{}) *PromptProposalUpdateOne {
	_u.mutation.AppendEvidence(v)
	return _u
}

// ClearEvidence clears the value of the "evidence" field.
func (_u *PromptProposalUpdateOne) ClearEvidence() *PromptProposalUpdateOne {
	_u.mutation.ClearEvidence()
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *PromptProposalUpdateOne) SetConfidence(v int) *PromptProposalUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *PromptProposalUpdateOne) SetNillableConfidence(v *int) *PromptProposalUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *PromptProposalUpdateOne) AddConfidence(v int) *PromptProposalUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *PromptProposalUpdateOne) SetStatus(v promptproposal.Status) *PromptProposalUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *PromptProposalUpdateOne) SetNillableStatus(v *promptproposal.Status) *PromptProposalUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAppliedAt sets the "applied_at" field.
func (_u *PromptProposalUpdateOne) SetAppliedAt(v time.Time) *PromptProposalUpdateOne {
	_u.mutation.SetAppliedAt(v)
	return _u
}

// SetNillableAppliedAt sets the "applied_at" field if the given value is not nil.
func (_u *PromptProposalUpdateOne) SetNillableAppliedAt(v *time.Time) *PromptProposalUpdateOne {
	if v != nil {
		_u.SetAppliedAt(*v)
	}
	return _u
}

// ClearAppliedAt clears the value of the "applied_at" field.
func (_u *PromptProposalUpdateOne) ClearAppliedAt() *PromptProposalUpdateOne {
	_u.mutation.ClearAppliedAt()
	return _u
}

// SetAppliedBy sets the "applied_by" field.
func (_u *PromptProposalUpdateOne) SetAppliedBy(v string) *PromptProposalUpdateOne {
	_u.mutation.SetAppliedBy(v)
	return _u
}

// SetNillableAppliedBy sets the "applied_by" field if the given value is not nil.
func (_u *PromptProposalUpdateOne) SetNillableAppliedBy(v *string) *PromptProposalUpdateOne {
	if v != nil {
		_u.SetAppliedBy(*v)
	}
	return _u
}

// ClearAppliedBy clears the value of the "applied_by" field.
func (_u *PromptProposalUpdateOne) ClearAppliedBy() *PromptProposalUpdateOne {
	_u.mutation.ClearAppliedBy()
	return _u
}

// SetPromptVersionID sets the "prompt_version_id" field.
func (_u *PromptProposalUpdateOne) SetPromptVersionID(v string) *PromptProposalUpdateOne {
	_u.mutation.SetPromptVersionID(v)
	return _u
}

// SetNillablePromptVersionID sets the "prompt_version_id" field if the given value is not nil.
func (_u *PromptProposalUpdateOne) SetNillablePromptVersionID(v *string) *PromptProposalUpdateOne {
	if v != nil {
		_u.SetPromptVersionID(*v)
	}
	return _u
}

// ClearPromptVersionID clears the value of the "prompt_version_id" field.
func (_u *PromptProposalUpdateOne) ClearPromptVersionID() *PromptProposalUpdateOne {
	_u.mutation.ClearPromptVersionID()
	return _u
}

// Mutation returns the PromptProposalMutation object of the builder.
func (_u *PromptProposalUpdateOne) Mutation() *PromptProposalMutation {
	return _u.mutation
}

// Where appends a list predicates to the PromptProposalUpdate builder.
func (_u *PromptProposalUpdateOne) Where(ps ...predicate.PromptProposal) *PromptProposalUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PromptProposalUpdateOne) Select(field string, fields ...string) *PromptProposalUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PromptProposal entity.
func (_u *PromptProposalUpdateOne) Save(ctx context.Context) (*PromptProposal, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PromptProposalUpdateOne) SaveX(ctx context.Context) *PromptProposal {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PromptProposalUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PromptProposalUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PromptProposalUpdateOne) check() error {
	if v, ok := _u.mutation.ChangeType(); ok {
		if err := promptproposal.ChangeTypeValidator(v); err != nil {
			return &ValidationError{Name: "change_type", err: fmt.Errorf(`ent: validator failed for field "PromptProposal.change_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Confidence(); ok {
		if err := promptproposal.ConfidenceValidator(v); err != nil {
			return &ValidationError{Name: "confidence", err: fmt.Errorf(`ent: validator failed for field "PromptProposal.confidence": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := promptproposal.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "PromptProposal.status": %w`, err)}
		}
	}
	if _u.mutation.AnalysisCleared() && len(_u.mutation.AnalysisIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "PromptProposal.analysis"`)
	}
	return nil
}

func (_u *PromptProposalUpdateOne) sqlSave(ctx context.Context) (_node *PromptProposal, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(promptproposal.Table, promptproposal.Columns, sqlgraph.NewFieldSpec(promptproposal.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PromptProposal.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, promptproposal.FieldID)
		for _, f := range fields {
			if !promptproposal.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != promptproposal.FieldID {
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
		_spec.SetField(promptproposal.FieldPromptFile, field.TypeString, value)
	}
	if value, ok := _u.mutation.SectionName(); ok {
		_spec.SetField(promptproposal.FieldSectionName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ChangeType(); ok {
		_spec.SetField(promptproposal.FieldChangeType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.OriginalText(); ok {
		_spec.SetField(promptproposal.FieldOriginalText, field.TypeString, value)
	}
	if _u.mutation.OriginalTextCleared() {
		_spec.ClearField(promptproposal.FieldOriginalText, field.TypeString)
	}
	if value, ok := _u.mutation.ProposedText(); ok {
		_spec.SetField(promptproposal.FieldProposedText, field.TypeString, value)
	}
	if value, ok := _u.mutation.Rationale(); ok {
		_spec.SetField(promptproposal.FieldRationale, field.TypeString, value)
	}
	if value, ok := _u.mutation.Evidence(); ok {
		_spec.SetField(promptproposal.FieldEvidence, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedEvidence(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, promptproposal.FieldEvidence, value)
		})
	}
	if _u.mutation.EvidenceCleared() {
		_spec.ClearField(promptproposal.FieldEvidence, field.TypeJSON)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(promptproposal.FieldConfidence, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(promptproposal.FieldConfidence, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(promptproposal.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AppliedAt(); ok {
		_spec.SetField(promptproposal.FieldAppliedAt, field.TypeTime, value)
	}
	if _u.mutation.AppliedAtCleared() {
		_spec.ClearField(promptproposal.FieldAppliedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.AppliedBy(); ok {
		_spec.SetField(promptproposal.FieldAppliedBy, field.TypeString, value)
	}
	if _u.mutation.AppliedByCleared() {
		_spec.ClearField(promptproposal.FieldAppliedBy, field.TypeString)
	}
	if value, ok := _u.mutation.PromptVersionID(); ok {
		_spec.SetField(promptproposal.FieldPromptVersionID, field.TypeString, value)
	}
	if _u.mutation.PromptVersionIDCleared() {
		_spec.ClearField(promptproposal.FieldPromptVersionID, field.TypeString)
	}
	_node = &PromptProposal{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{promptproposal.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
