// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/autoforge-dev/autoforge/ent/agentsession"
	"github.com/autoforge-dev/autoforge/ent/epic"
	"github.com/autoforge-dev/autoforge/ent/predicate"
	"github.com/autoforge-dev/autoforge/ent/project"
	"github.com/autoforge-dev/autoforge/ent/promptanalysis"
	"github.com/autoforge-dev/autoforge/ent/promptproposal"
	"github.com/autoforge-dev/autoforge/ent/promptversion"
	"github.com/autoforge-dev/autoforge/ent/qualitycheck"
	"github.com/autoforge-dev/autoforge/ent/task"
	"github.com/autoforge-dev/autoforge/ent/testcase"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAgentSession   = "AgentSession"
	TypeEpic           = "Epic"
	TypeProject        = "Project"
	TypePromptAnalysis = "PromptAnalysis"
	TypePromptProposal = "PromptProposal"
	TypePromptVersion  = "PromptVersion"
	TypeQualityCheck   = "QualityCheck"
	TypeTask           = "Task"
	TypeTestCase       = "TestCase"
)

// AgentSessionMutation represents an operation that mutates the AgentSession nodes in the graph.
type AgentSessionMutation struct {
	config
	op                    Op
	typ                   string
	id                    *string
	session_number        *int
	addsession_number     *int
	_type                 *agentsession.Type
	model                 *string
	status                *agentsession.Status
	created_at            *time.Time
	started_at            *time.Time
	ended_at              *time.Time
	error_message         *string
	interruption_reason   *string
	metrics               *map[string]interface{}
	max_iterations        *int
	addmax_iterations     *int
	clearedFields         map[string]struct{}
	project               *string
	clearedproject        bool
	quality_checks        map[string]struct{}
	removedquality_checks map[string]struct{}
	clearedquality_checks bool
	done                  bool
	oldValue              func(context.Context) (*AgentSession, error)
	predicates            []predicate.AgentSession
}

var _ ent.Mutation = (*AgentSessionMutation)(nil)

// agentsessionOption allows management of the mutation configuration using functional options.
type agentsessionOption func(*AgentSessionMutation)

// newAgentSessionMutation creates new mutation for the AgentSession entity.
func newAgentSessionMutation(c config, op Op, opts ...agentsessionOption) *AgentSessionMutation {
	m := &AgentSessionMutation{
		config:        c,
		op:            op,
		typ:           TypeAgentSession,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAgentSessionID sets the ID field of the mutation.
func withAgentSessionID(id string) agentsessionOption {
	return func(m *AgentSessionMutation) {
		var (
			err   error
			once  sync.Once
			value *AgentSession
		)
		m.oldValue = func(ctx context.Context) (*AgentSession, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AgentSession.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAgentSession sets the old AgentSession of the mutation.
func withAgentSession(node *AgentSession) agentsessionOption {
	return func(m *AgentSessionMutation) {
		m.oldValue = func(context.Context) (*AgentSession, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AgentSessionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AgentSessionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AgentSession entities.
func (m *AgentSessionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AgentSessionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AgentSessionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AgentSession.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetProjectID sets the "project_id" field.
func (m *AgentSessionMutation) SetProjectID(s string) {
	m.project = &s
}

// ProjectID returns the value of the "project_id" field in the mutation.
func (m *AgentSessionMutation) ProjectID() (r string, exists bool) {
	v := m.project
	if v == nil {
		return
	}
	return *v, true
}

// OldProjectID returns the old "project_id" field's value of the AgentSession entity.
// If the AgentSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentSessionMutation) OldProjectID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProjectID: %w", err)
	}
	return oldValue.ProjectID, nil
}

// ResetProjectID resets all changes to the "project_id" field.
func (m *AgentSessionMutation) ResetProjectID() {
	m.project = nil
}

// SetSessionNumber sets the "session_number" field.
func (m *AgentSessionMutation) SetSessionNumber(i int) {
	m.session_number = &i
	m.addsession_number = nil
}

// SessionNumber returns the value of the "session_number" field in the mutation.
func (m *AgentSessionMutation) SessionNumber() (r int, exists bool) {
	v := m.session_number
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionNumber returns the old "session_number" field's value of the AgentSession entity.
// If the AgentSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentSessionMutation) OldSessionNumber(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionNumber: %w", err)
	}
	return oldValue.SessionNumber, nil
}

// AddSessionNumber adds i to the "session_number" field.
func (m *AgentSessionMutation) AddSessionNumber(i int) {
	if m.addsession_number != nil {
		*m.addsession_number += i
	} else {
		m.addsession_number = &i
	}
}

// AddedSessionNumber returns the value that was added to the "session_number" field in this mutation.
func (m *AgentSessionMutation) AddedSessionNumber() (r int, exists bool) {
	v := m.addsession_number
	if v == nil {
		return
	}
	return *v, true
}

// ResetSessionNumber resets all changes to the "session_number" field.
func (m *AgentSessionMutation) ResetSessionNumber() {
	m.session_number = nil
	m.addsession_number = nil
}

// SetType sets the "type" field.
func (m *AgentSessionMutation) SetType(a agentsession.Type) {
	m._type = &a
}

// GetType returns the value of the "type" field in the mutation.
func (m *AgentSessionMutation) GetType() (r agentsession.Type, exists bool) {
	v := m._type
	if v == nil {
		return
	}
	return *v, true
}

// OldType returns the old "type" field's value of the AgentSession entity.
// If the AgentSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentSessionMutation) OldType(ctx context.Context) (v agentsession.Type, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldType: %w", err)
	}
	return oldValue.Type, nil
}

// ResetType resets all changes to the "type" field.
func (m *AgentSessionMutation) ResetType() {
	m._type = nil
}

// SetModel sets the "model" field.
func (m *AgentSessionMutation) SetModel(s string) {
	m.model = &s
}

// Model returns the value of the "model" field in the mutation.
func (m *AgentSessionMutation) Model() (r string, exists bool) {
	v := m.model
	if v == nil {
		return
	}
	return *v, true
}

// OldModel returns the old "model" field's value of the AgentSession entity.
// If the AgentSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentSessionMutation) OldModel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModel: %w", err)
	}
	return oldValue.Model, nil
}

// ResetModel resets all changes to the "model" field.
func (m *AgentSessionMutation) ResetModel() {
	m.model = nil
}

// SetStatus sets the "status" field.
func (m *AgentSessionMutation) SetStatus(a agentsession.Status) {
	m.status = &a
}

// Status returns the value of the "status" field in the mutation.
func (m *AgentSessionMutation) Status() (r agentsession.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the AgentSession entity.
// If the AgentSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentSessionMutation) OldStatus(ctx context.Context) (v agentsession.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *AgentSessionMutation) ResetStatus() {
	m.status = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *AgentSessionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AgentSessionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AgentSession entity.
// If the AgentSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentSessionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AgentSessionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetStartedAt sets the "started_at" field.
func (m *AgentSessionMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *AgentSessionMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the AgentSession entity.
// If the AgentSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentSessionMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *AgentSessionMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[agentsession.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *AgentSessionMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[agentsession.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *AgentSessionMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, agentsession.FieldStartedAt)
}

// SetEndedAt sets the "ended_at" field.
func (m *AgentSessionMutation) SetEndedAt(t time.Time) {
	m.ended_at = &t
}

// EndedAt returns the value of the "ended_at" field in the mutation.
func (m *AgentSessionMutation) EndedAt() (r time.Time, exists bool) {
	v := m.ended_at
	if v == nil {
		return
	}
	return *v, true
}

// OldEndedAt returns the old "ended_at" field's value of the AgentSession entity.
// If the AgentSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentSessionMutation) OldEndedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEndedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEndedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEndedAt: %w", err)
	}
	return oldValue.EndedAt, nil
}

// ClearEndedAt clears the value of the "ended_at" field.
func (m *AgentSessionMutation) ClearEndedAt() {
	m.ended_at = nil
	m.clearedFields[agentsession.FieldEndedAt] = struct{}{}
}

// EndedAtCleared returns if the "ended_at" field was cleared in this mutation.
func (m *AgentSessionMutation) EndedAtCleared() bool {
	_, ok := m.clearedFields[agentsession.FieldEndedAt]
	return ok
}

// ResetEndedAt resets all changes to the "ended_at" field.
func (m *AgentSessionMutation) ResetEndedAt() {
	m.ended_at = nil
	delete(m.clearedFields, agentsession.FieldEndedAt)
}

// SetErrorMessage sets the "error_message" field.
func (m *AgentSessionMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *AgentSessionMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the AgentSession entity.
// If the AgentSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentSessionMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *AgentSessionMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[agentsession.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *AgentSessionMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[agentsession.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *AgentSessionMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, agentsession.FieldErrorMessage)
}

// SetInterruptionReason sets the "interruption_reason" field.
func (m *AgentSessionMutation) SetInterruptionReason(s string) {
	m.interruption_reason = &s
}

// InterruptionReason returns the value of the "interruption_reason" field in the mutation.
func (m *AgentSessionMutation) InterruptionReason() (r string, exists bool) {
	v := m.interruption_reason
	if v == nil {
		return
	}
	return *v, true
}

// OldInterruptionReason returns the old "interruption_reason" field's value of the AgentSession entity.
// If the AgentSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentSessionMutation) OldInterruptionReason(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInterruptionReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInterruptionReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInterruptionReason: %w", err)
	}
	return oldValue.InterruptionReason, nil
}

// ClearInterruptionReason clears the value of the "interruption_reason" field.
func (m *AgentSessionMutation) ClearInterruptionReason() {
	m.interruption_reason = nil
	m.clearedFields[agentsession.FieldInterruptionReason] = struct{}{}
}

// InterruptionReasonCleared returns if the "interruption_reason" field was cleared in this mutation.
func (m *AgentSessionMutation) InterruptionReasonCleared() bool {
	_, ok := m.clearedFields[agentsession.FieldInterruptionReason]
	return ok
}

// ResetInterruptionReason resets all changes to the "interruption_reason" field.
func (m *AgentSessionMutation) ResetInterruptionReason() {
	m.interruption_reason = nil
	delete(m.clearedFields, agentsession.FieldInterruptionReason)
}

// SetMetrics sets the "metrics" field.
func (m *AgentSessionMutation) SetMetrics(value map[string]interface{}) {
	m.metrics = &value
}

// Metrics returns the value of the "metrics" field in the mutation.
func (m *AgentSessionMutation) Metrics() (r map[string]interface{}, exists bool) {
	v := m.metrics
	if v == nil {
		return
	}
	return *v, true
}

// OldMetrics returns the old "metrics" field's value of the AgentSession entity.
// If the AgentSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentSessionMutation) OldMetrics(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetrics is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetrics requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetrics: %w", err)
	}
	return oldValue.Metrics, nil
}

// ClearMetrics clears the value of the "metrics" field.
func (m *AgentSessionMutation) ClearMetrics() {
	m.metrics = nil
	m.clearedFields[agentsession.FieldMetrics] = struct{}{}
}

// MetricsCleared returns if the "metrics" field was cleared in this mutation.
func (m *AgentSessionMutation) MetricsCleared() bool {
	_, ok := m.clearedFields[agentsession.FieldMetrics]
	return ok
}

// ResetMetrics resets all changes to the "metrics" field.
func (m *AgentSessionMutation) ResetMetrics() {
	m.metrics = nil
	delete(m.clearedFields, agentsession.FieldMetrics)
}

// SetMaxIterations sets the "max_iterations" field.
func (m *AgentSessionMutation) SetMaxIterations(i int) {
	m.max_iterations = &i
	m.addmax_iterations = nil
}

// MaxIterations returns the value of the "max_iterations" field in the mutation.
func (m *AgentSessionMutation) MaxIterations() (r int, exists bool) {
	v := m.max_iterations
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxIterations returns the old "max_iterations" field's value of the AgentSession entity.
// If the AgentSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentSessionMutation) OldMaxIterations(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxIterations is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxIterations requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxIterations: %w", err)
	}
	return oldValue.MaxIterations, nil
}

// AddMaxIterations adds i to the "max_iterations" field.
func (m *AgentSessionMutation) AddMaxIterations(i int) {
	if m.addmax_iterations != nil {
		*m.addmax_iterations += i
	} else {
		m.addmax_iterations = &i
	}
}

// AddedMaxIterations returns the value that was added to the "max_iterations" field in this mutation.
func (m *AgentSessionMutation) AddedMaxIterations() (r int, exists bool) {
	v := m.addmax_iterations
	if v == nil {
		return
	}
	return *v, true
}

// ClearMaxIterations clears the value of the "max_iterations" field.
func (m *AgentSessionMutation) ClearMaxIterations() {
	m.max_iterations = nil
	m.addmax_iterations = nil
	m.clearedFields[agentsession.FieldMaxIterations] = struct{}{}
}

// MaxIterationsCleared returns if the "max_iterations" field was cleared in this mutation.
func (m *AgentSessionMutation) MaxIterationsCleared() bool {
	_, ok := m.clearedFields[agentsession.FieldMaxIterations]
	return ok
}

// ResetMaxIterations resets all changes to the "max_iterations" field.
func (m *AgentSessionMutation) ResetMaxIterations() {
	m.max_iterations = nil
	m.addmax_iterations = nil
	delete(m.clearedFields, agentsession.FieldMaxIterations)
}

// ClearProject clears the "project" edge to the Project entity.
func (m *AgentSessionMutation) ClearProject() {
	m.clearedproject = true
	m.clearedFields[agentsession.FieldProjectID] = struct{}{}
}

// ProjectCleared reports if the "project" edge to the Project entity was cleared.
func (m *AgentSessionMutation) ProjectCleared() bool {
	return m.clearedproject
}

// ProjectIDs returns the "project" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ProjectID instead. It exists only for internal usage by the builders.
func (m *AgentSessionMutation) ProjectIDs() (ids []string) {
	if id := m.project; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetProject resets all changes to the "project" edge.
func (m *AgentSessionMutation) ResetProject() {
	m.project = nil
	m.clearedproject = false
}

// AddQualityCheckIDs adds the "quality_checks" edge to the QualityCheck entity by ids.
func (m *AgentSessionMutation) AddQualityCheckIDs(ids ...string) {
	if m.quality_checks == nil {
		m.quality_checks = make(map[string]struct{})
	}
	for i := range ids {
		m.quality_checks[ids[i]] = struct{}{}
	}
}

// ClearQualityChecks clears the "quality_checks" edge to the QualityCheck entity.
func (m *AgentSessionMutation) ClearQualityChecks() {
	m.clearedquality_checks = true
}

// QualityChecksCleared reports if the "quality_checks" edge to the QualityCheck entity was cleared.
func (m *AgentSessionMutation) QualityChecksCleared() bool {
	return m.clearedquality_checks
}

// RemoveQualityCheckIDs removes the "quality_checks" edge to the QualityCheck entity by IDs.
func (m *AgentSessionMutation) RemoveQualityCheckIDs(ids ...string) {
	if m.removedquality_checks == nil {
		m.removedquality_checks = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.quality_checks, ids[i])
		m.removedquality_checks[ids[i]] = struct{}{}
	}
}

// RemovedQualityChecks returns the removed IDs of the "quality_checks" edge to the QualityCheck entity.
func (m *AgentSessionMutation) RemovedQualityChecksIDs() (ids []string) {
	for id := range m.removedquality_checks {
		ids = append(ids, id)
	}
	return
}

// QualityChecksIDs returns the "quality_checks" edge IDs in the mutation.
func (m *AgentSessionMutation) QualityChecksIDs() (ids []string) {
	for id := range m.quality_checks {
		ids = append(ids, id)
	}
	return
}

// ResetQualityChecks resets all changes to the "quality_checks" edge.
func (m *AgentSessionMutation) ResetQualityChecks() {
	m.quality_checks = nil
	m.clearedquality_checks = false
	m.removedquality_checks = nil
}

// Where appends a list predicates to the AgentSessionMutation builder.
func (m *AgentSessionMutation) Where(ps ...predicate.AgentSession) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AgentSessionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AgentSessionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AgentSession, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AgentSessionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AgentSessionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AgentSession).
func (m *AgentSessionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AgentSessionMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.project != nil {
		fields = append(fields, agentsession.FieldProjectID)
	}
	if m.session_number != nil {
		fields = append(fields, agentsession.FieldSessionNumber)
	}
	if m._type != nil {
		fields = append(fields, agentsession.FieldType)
	}
	if m.model != nil {
		fields = append(fields, agentsession.FieldModel)
	}
	if m.status != nil {
		fields = append(fields, agentsession.FieldStatus)
	}
	if m.created_at != nil {
		fields = append(fields, agentsession.FieldCreatedAt)
	}
	if m.started_at != nil {
		fields = append(fields, agentsession.FieldStartedAt)
	}
	if m.ended_at != nil {
		fields = append(fields, agentsession.FieldEndedAt)
	}
	if m.error_message != nil {
		fields = append(fields, agentsession.FieldErrorMessage)
	}
	if m.interruption_reason != nil {
		fields = append(fields, agentsession.FieldInterruptionReason)
	}
	if m.metrics != nil {
		fields = append(fields, agentsession.FieldMetrics)
	}
	if m.max_iterations != nil {
		fields = append(fields, agentsession.FieldMaxIterations)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AgentSessionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case agentsession.FieldProjectID:
		return m.ProjectID()
	case agentsession.FieldSessionNumber:
		return m.SessionNumber()
	case agentsession.FieldType:
		return m.GetType()
	case agentsession.FieldModel:
		return m.Model()
	case agentsession.FieldStatus:
		return m.Status()
	case agentsession.FieldCreatedAt:
		return m.CreatedAt()
	case agentsession.FieldStartedAt:
		return m.StartedAt()
	case agentsession.FieldEndedAt:
		return m.EndedAt()
	case agentsession.FieldErrorMessage:
		return m.ErrorMessage()
	case agentsession.FieldInterruptionReason:
		return m.InterruptionReason()
	case agentsession.FieldMetrics:
		return m.Metrics()
	case agentsession.FieldMaxIterations:
		return m.MaxIterations()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AgentSessionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case agentsession.FieldProjectID:
		return m.OldProjectID(ctx)
	case agentsession.FieldSessionNumber:
		return m.OldSessionNumber(ctx)
	case agentsession.FieldType:
		return m.OldType(ctx)
	case agentsession.FieldModel:
		return m.OldModel(ctx)
	case agentsession.FieldStatus:
		return m.OldStatus(ctx)
	case agentsession.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case agentsession.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case agentsession.FieldEndedAt:
		return m.OldEndedAt(ctx)
	case agentsession.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case agentsession.FieldInterruptionReason:
		return m.OldInterruptionReason(ctx)
	case agentsession.FieldMetrics:
		return m.OldMetrics(ctx)
	case agentsession.FieldMaxIterations:
		return m.OldMaxIterations(ctx)
	}
	return nil, fmt.Errorf("unknown AgentSession field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentSessionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case agentsession.FieldProjectID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProjectID(v)
		return nil
	case agentsession.FieldSessionNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionNumber(v)
		return nil
	case agentsession.FieldType:
		v, ok := value.(agentsession.Type)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetType(v)
		return nil
	case agentsession.FieldModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModel(v)
		return nil
	case agentsession.FieldStatus:
		v, ok := value.(agentsession.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case agentsession.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case agentsession.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case agentsession.FieldEndedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEndedAt(v)
		return nil
	case agentsession.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case agentsession.FieldInterruptionReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInterruptionReason(v)
		return nil
	case agentsession.FieldMetrics:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetrics(v)
		return nil
	case agentsession.FieldMaxIterations:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxIterations(v)
		return nil
	}
	return fmt.Errorf("unknown AgentSession field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AgentSessionMutation) AddedFields() []string {
	var fields []string
	if m.addsession_number != nil {
		fields = append(fields, agentsession.FieldSessionNumber)
	}
	if m.addmax_iterations != nil {
		fields = append(fields, agentsession.FieldMaxIterations)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AgentSessionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case agentsession.FieldSessionNumber:
		return m.AddedSessionNumber()
	case agentsession.FieldMaxIterations:
		return m.AddedMaxIterations()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentSessionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case agentsession.FieldSessionNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSessionNumber(v)
		return nil
	case agentsession.FieldMaxIterations:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxIterations(v)
		return nil
	}
	return fmt.Errorf("unknown AgentSession numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AgentSessionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(agentsession.FieldStartedAt) {
		fields = append(fields, agentsession.FieldStartedAt)
	}
	if m.FieldCleared(agentsession.FieldEndedAt) {
		fields = append(fields, agentsession.FieldEndedAt)
	}
	if m.FieldCleared(agentsession.FieldErrorMessage) {
		fields = append(fields, agentsession.FieldErrorMessage)
	}
	if m.FieldCleared(agentsession.FieldInterruptionReason) {
		fields = append(fields, agentsession.FieldInterruptionReason)
	}
	if m.FieldCleared(agentsession.FieldMetrics) {
		fields = append(fields, agentsession.FieldMetrics)
	}
	if m.FieldCleared(agentsession.FieldMaxIterations) {
		fields = append(fields, agentsession.FieldMaxIterations)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AgentSessionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AgentSessionMutation) ClearField(name string) error {
	switch name {
	case agentsession.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case agentsession.FieldEndedAt:
		m.ClearEndedAt()
		return nil
	case agentsession.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case agentsession.FieldInterruptionReason:
		m.ClearInterruptionReason()
		return nil
	case agentsession.FieldMetrics:
		m.ClearMetrics()
		return nil
	case agentsession.FieldMaxIterations:
		m.ClearMaxIterations()
		return nil
	}
	return fmt.Errorf("unknown AgentSession nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AgentSessionMutation) ResetField(name string) error {
	switch name {
	case agentsession.FieldProjectID:
		m.ResetProjectID()
		return nil
	case agentsession.FieldSessionNumber:
		m.ResetSessionNumber()
		return nil
	case agentsession.FieldType:
		m.ResetType()
		return nil
	case agentsession.FieldModel:
		m.ResetModel()
		return nil
	case agentsession.FieldStatus:
		m.ResetStatus()
		return nil
	case agentsession.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case agentsession.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case agentsession.FieldEndedAt:
		m.ResetEndedAt()
		return nil
	case agentsession.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case agentsession.FieldInterruptionReason:
		m.ResetInterruptionReason()
		return nil
	case agentsession.FieldMetrics:
		m.ResetMetrics()
		return nil
	case agentsession.FieldMaxIterations:
		m.ResetMaxIterations()
		return nil
	}
	return fmt.Errorf("unknown AgentSession field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AgentSessionMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.project != nil {
		edges = append(edges, agentsession.EdgeProject)
	}
	if m.quality_checks != nil {
		edges = append(edges, agentsession.EdgeQualityChecks)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AgentSessionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case agentsession.EdgeProject:
		if id := m.project; id != nil {
			return []ent.Value{*id}
		}
	case agentsession.EdgeQualityChecks:
		ids := make([]ent.Value, 0, len(m.quality_checks))
		for id := range m.quality_checks {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AgentSessionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedquality_checks != nil {
		edges = append(edges, agentsession.EdgeQualityChecks)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AgentSessionMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case agentsession.EdgeQualityChecks:
		ids := make([]ent.Value, 0, len(m.removedquality_checks))
		for id := range m.removedquality_checks {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AgentSessionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedproject {
		edges = append(edges, agentsession.EdgeProject)
	}
	if m.clearedquality_checks {
		edges = append(edges, agentsession.EdgeQualityChecks)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AgentSessionMutation) EdgeCleared(name string) bool {
	switch name {
	case agentsession.EdgeProject:
		return m.clearedproject
	case agentsession.EdgeQualityChecks:
		return m.clearedquality_checks
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AgentSessionMutation) ClearEdge(name string) error {
	switch name {
	case agentsession.EdgeProject:
		m.ClearProject()
		return nil
	}
	return fmt.Errorf("unknown AgentSession unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AgentSessionMutation) ResetEdge(name string) error {
	switch name {
	case agentsession.EdgeProject:
		m.ResetProject()
		return nil
	case agentsession.EdgeQualityChecks:
		m.ResetQualityChecks()
		return nil
	}
	return fmt.Errorf("unknown AgentSession edge %s", name)
}

// EpicMutation represents an operation that mutates the Epic nodes in the graph.
type EpicMutation struct {
	config
	op             Op
	typ            string
	id             *string
	name           *string
	description    *string
	priority       *int
	addpriority    *int
	status         *epic.Status
	created_at     *time.Time
	clearedFields  map[string]struct{}
	project        *string
	clearedproject bool
	tasks          map[string]struct{}
	removedtasks   map[string]struct{}
	clearedtasks   bool
	done           bool
	oldValue       func(context.Context) (*Epic, error)
	predicates     []predicate.Epic
}

var _ ent.Mutation = (*EpicMutation)(nil)

// epicOption allows management of the mutation configuration using functional options.
type epicOption func(*EpicMutation)

// newEpicMutation creates new mutation for the Epic entity.
func newEpicMutation(c config, op Op, opts ...epicOption) *EpicMutation {
	m := &EpicMutation{
		config:        c,
		op:            op,
		typ:           TypeEpic,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEpicID sets the ID field of the mutation.
func withEpicID(id string) epicOption {
	return func(m *EpicMutation) {
		var (
			err   error
			once  sync.Once
			value *Epic
		)
		m.oldValue = func(ctx context.Context) (*Epic, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Epic.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEpic sets the old Epic of the mutation.
func withEpic(node *Epic) epicOption {
	return func(m *EpicMutation) {
		m.oldValue = func(context.Context) (*Epic, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EpicMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EpicMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Epic entities.
func (m *EpicMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EpicMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EpicMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Epic.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetProjectID sets the "project_id" field.
func (m *EpicMutation) SetProjectID(s string) {
	m.project = &s
}

// ProjectID returns the value of the "project_id" field in the mutation.
func (m *EpicMutation) ProjectID() (r string, exists bool) {
	v := m.project
	if v == nil {
		return
	}
	return *v, true
}

// OldProjectID returns the old "project_id" field's value of the Epic entity.
// If the Epic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EpicMutation) OldProjectID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProjectID: %w", err)
	}
	return oldValue.ProjectID, nil
}

// ResetProjectID resets all changes to the "project_id" field.
func (m *EpicMutation) ResetProjectID() {
	m.project = nil
}

// SetName sets the "name" field.
func (m *EpicMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *EpicMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Epic entity.
// If the Epic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EpicMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *EpicMutation) ResetName() {
	m.name = nil
}

// SetDescription sets the "description" field.
func (m *EpicMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *EpicMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Epic entity.
// If the Epic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EpicMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *EpicMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[epic.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *EpicMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[epic.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *EpicMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, epic.FieldDescription)
}

// SetPriority sets the "priority" field.
func (m *EpicMutation) SetPriority(i int) {
	m.priority = &i
	m.addpriority = nil
}

// Priority returns the value of the "priority" field in the mutation.
func (m *EpicMutation) Priority() (r int, exists bool) {
	v := m.priority
	if v == nil {
		return
	}
	return *v, true
}

// OldPriority returns the old "priority" field's value of the Epic entity.
// If the Epic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EpicMutation) OldPriority(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriority is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriority requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriority: %w", err)
	}
	return oldValue.Priority, nil
}

// AddPriority adds i to the "priority" field.
func (m *EpicMutation) AddPriority(i int) {
	if m.addpriority != nil {
		*m.addpriority += i
	} else {
		m.addpriority = &i
	}
}

// AddedPriority returns the value that was added to the "priority" field in this mutation.
func (m *EpicMutation) AddedPriority() (r int, exists bool) {
	v := m.addpriority
	if v == nil {
		return
	}
	return *v, true
}

// ResetPriority resets all changes to the "priority" field.
func (m *EpicMutation) ResetPriority() {
	m.priority = nil
	m.addpriority = nil
}

// SetStatus sets the "status" field.
func (m *EpicMutation) SetStatus(e epic.Status) {
	m.status = &e
}

// Status returns the value of the "status" field in the mutation.
func (m *EpicMutation) Status() (r epic.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Epic entity.
// If the Epic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EpicMutation) OldStatus(ctx context.Context) (v epic.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *EpicMutation) ResetStatus() {
	m.status = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *EpicMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *EpicMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Epic entity.
// If the Epic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EpicMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *EpicMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearProject clears the "project" edge to the Project entity.
func (m *EpicMutation) ClearProject() {
	m.clearedproject = true
	m.clearedFields[epic.FieldProjectID] = struct{}{}
}

// ProjectCleared reports if the "project" edge to the Project entity was cleared.
func (m *EpicMutation) ProjectCleared() bool {
	return m.clearedproject
}

// ProjectIDs returns the "project" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ProjectID instead. It exists only for internal usage by the builders.
func (m *EpicMutation) ProjectIDs() (ids []string) {
	if id := m.project; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetProject resets all changes to the "project" edge.
func (m *EpicMutation) ResetProject() {
	m.project = nil
	m.clearedproject = false
}

// AddTaskIDs adds the "tasks" edge to the Task entity by ids.
func (m *EpicMutation) AddTaskIDs(ids ...string) {
	if m.tasks == nil {
		m.tasks = make(map[string]struct{})
	}
	for i := range ids {
		m.tasks[ids[i]] = struct{}{}
	}
}

// ClearTasks clears the "tasks" edge to the Task entity.
func (m *EpicMutation) ClearTasks() {
	m.clearedtasks = true
}

// TasksCleared reports if the "tasks" edge to the Task entity was cleared.
func (m *EpicMutation) TasksCleared() bool {
	return m.clearedtasks
}

// RemoveTaskIDs removes the "tasks" edge to the Task entity by IDs.
func (m *EpicMutation) RemoveTaskIDs(ids ...string) {
	if m.removedtasks == nil {
		m.removedtasks = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.tasks, ids[i])
		m.removedtasks[ids[i]] = struct{}{}
	}
}

// RemovedTasks returns the removed IDs of the "tasks" edge to the Task entity.
func (m *EpicMutation) RemovedTasksIDs() (ids []string) {
	for id := range m.removedtasks {
		ids = append(ids, id)
	}
	return
}

// TasksIDs returns the "tasks" edge IDs in the mutation.
func (m *EpicMutation) TasksIDs() (ids []string) {
	for id := range m.tasks {
		ids = append(ids, id)
	}
	return
}

// ResetTasks resets all changes to the "tasks" edge.
func (m *EpicMutation) ResetTasks() {
	m.tasks = nil
	m.clearedtasks = false
	m.removedtasks = nil
}

// Where appends a list predicates to the EpicMutation builder.
func (m *EpicMutation) Where(ps ...predicate.Epic) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EpicMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EpicMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Epic, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EpicMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EpicMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Epic).
func (m *EpicMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EpicMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.project != nil {
		fields = append(fields, epic.FieldProjectID)
	}
	if m.name != nil {
		fields = append(fields, epic.FieldName)
	}
	if m.description != nil {
		fields = append(fields, epic.FieldDescription)
	}
	if m.priority != nil {
		fields = append(fields, epic.FieldPriority)
	}
	if m.status != nil {
		fields = append(fields, epic.FieldStatus)
	}
	if m.created_at != nil {
		fields = append(fields, epic.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EpicMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case epic.FieldProjectID:
		return m.ProjectID()
	case epic.FieldName:
		return m.Name()
	case epic.FieldDescription:
		return m.Description()
	case epic.FieldPriority:
		return m.Priority()
	case epic.FieldStatus:
		return m.Status()
	case epic.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EpicMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case epic.FieldProjectID:
		return m.OldProjectID(ctx)
	case epic.FieldName:
		return m.OldName(ctx)
	case epic.FieldDescription:
		return m.OldDescription(ctx)
	case epic.FieldPriority:
		return m.OldPriority(ctx)
	case epic.FieldStatus:
		return m.OldStatus(ctx)
	case epic.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Epic field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EpicMutation) SetField(name string, value ent.Value) error {
	switch name {
	case epic.FieldProjectID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProjectID(v)
		return nil
	case epic.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case epic.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case epic.FieldPriority:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriority(v)
		return nil
	case epic.FieldStatus:
		v, ok := value.(epic.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case epic.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Epic field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EpicMutation) AddedFields() []string {
	var fields []string
	if m.addpriority != nil {
		fields = append(fields, epic.FieldPriority)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EpicMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case epic.FieldPriority:
		return m.AddedPriority()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EpicMutation) AddField(name string, value ent.Value) error {
	switch name {
	case epic.FieldPriority:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPriority(v)
		return nil
	}
	return fmt.Errorf("unknown Epic numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EpicMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(epic.FieldDescription) {
		fields = append(fields, epic.FieldDescription)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EpicMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EpicMutation) ClearField(name string) error {
	switch name {
	case epic.FieldDescription:
		m.ClearDescription()
		return nil
	}
	return fmt.Errorf("unknown Epic nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EpicMutation) ResetField(name string) error {
	switch name {
	case epic.FieldProjectID:
		m.ResetProjectID()
		return nil
	case epic.FieldName:
		m.ResetName()
		return nil
	case epic.FieldDescription:
		m.ResetDescription()
		return nil
	case epic.FieldPriority:
		m.ResetPriority()
		return nil
	case epic.FieldStatus:
		m.ResetStatus()
		return nil
	case epic.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Epic field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EpicMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.project != nil {
		edges = append(edges, epic.EdgeProject)
	}
	if m.tasks != nil {
		edges = append(edges, epic.EdgeTasks)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EpicMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case epic.EdgeProject:
		if id := m.project; id != nil {
			return []ent.Value{*id}
		}
	case epic.EdgeTasks:
		ids := make([]ent.Value, 0, len(m.tasks))
		for id := range m.tasks {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EpicMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedtasks != nil {
		edges = append(edges, epic.EdgeTasks)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EpicMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case epic.EdgeTasks:
		ids := make([]ent.Value, 0, len(m.removedtasks))
		for id := range m.removedtasks {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EpicMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedproject {
		edges = append(edges, epic.EdgeProject)
	}
	if m.clearedtasks {
		edges = append(edges, epic.EdgeTasks)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EpicMutation) EdgeCleared(name string) bool {
	switch name {
	case epic.EdgeProject:
		return m.clearedproject
	case epic.EdgeTasks:
		return m.clearedtasks
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EpicMutation) ClearEdge(name string) error {
	switch name {
	case epic.EdgeProject:
		m.ClearProject()
		return nil
	}
	return fmt.Errorf("unknown Epic unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EpicMutation) ResetEdge(name string) error {
	switch name {
	case epic.EdgeProject:
		m.ResetProject()
		return nil
	case epic.EdgeTasks:
		m.ResetTasks()
		return nil
	}
	return fmt.Errorf("unknown Epic edge %s", name)
}

// ProjectMutation represents an operation that mutates the Project nodes in the graph.
type ProjectMutation struct {
	config
	op              Op
	typ             string
	id              *string
	name            *string
	spec_content    *string
	spec_path       *string
	local_path      *string
	settings        *map[string]interface{}
	env_configured  *bool
	metadata        *map[string]interface{}
	created_at      *time.Time
	updated_at      *time.Time
	completed_at    *time.Time
	clearedFields   map[string]struct{}
	epics           map[string]struct{}
	removedepics    map[string]struct{}
	clearedepics    bool
	tasks           map[string]struct{}
	removedtasks    map[string]struct{}
	clearedtasks    bool
	sessions        map[string]struct{}
	removedsessions map[string]struct{}
	clearedsessions bool
	done            bool
	oldValue        func(context.Context) (*Project, error)
	predicates      []predicate.Project
}

var _ ent.Mutation = (*ProjectMutation)(nil)

// projectOption allows management of the mutation configuration using functional options.
type projectOption func(*ProjectMutation)

// newProjectMutation creates new mutation for the Project entity.
func newProjectMutation(c config, op Op, opts ...projectOption) *ProjectMutation {
	m := &ProjectMutation{
		config:        c,
		op:            op,
		typ:           TypeProject,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withProjectID sets the ID field of the mutation.
func withProjectID(id string) projectOption {
	return func(m *ProjectMutation) {
		var (
			err   error
			once  sync.Once
			value *Project
		)
		m.oldValue = func(ctx context.Context) (*Project, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Project.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withProject sets the old Project of the mutation.
func withProject(node *Project) projectOption {
	return func(m *ProjectMutation) {
		m.oldValue = func(context.Context) (*Project, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ProjectMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ProjectMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Project entities.
func (m *ProjectMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ProjectMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ProjectMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Project.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *ProjectMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *ProjectMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *ProjectMutation) ResetName() {
	m.name = nil
}

// SetSpecContent sets the "spec_content" field.
func (m *ProjectMutation) SetSpecContent(s string) {
	m.spec_content = &s
}

// SpecContent returns the value of the "spec_content" field in the mutation.
func (m *ProjectMutation) SpecContent() (r string, exists bool) {
	v := m.spec_content
	if v == nil {
		return
	}
	return *v, true
}

// OldSpecContent returns the old "spec_content" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldSpecContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSpecContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSpecContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSpecContent: %w", err)
	}
	return oldValue.SpecContent, nil
}

// ClearSpecContent clears the value of the "spec_content" field.
func (m *ProjectMutation) ClearSpecContent() {
	m.spec_content = nil
	m.clearedFields[project.FieldSpecContent] = struct{}{}
}

// SpecContentCleared returns if the "spec_content" field was cleared in this mutation.
func (m *ProjectMutation) SpecContentCleared() bool {
	_, ok := m.clearedFields[project.FieldSpecContent]
	return ok
}

// ResetSpecContent resets all changes to the "spec_content" field.
func (m *ProjectMutation) ResetSpecContent() {
	m.spec_content = nil
	delete(m.clearedFields, project.FieldSpecContent)
}

// SetSpecPath sets the "spec_path" field.
func (m *ProjectMutation) SetSpecPath(s string) {
	m.spec_path = &s
}

// SpecPath returns the value of the "spec_path" field in the mutation.
func (m *ProjectMutation) SpecPath() (r string, exists bool) {
	v := m.spec_path
	if v == nil {
		return
	}
	return *v, true
}

// OldSpecPath returns the old "spec_path" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldSpecPath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSpecPath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSpecPath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSpecPath: %w", err)
	}
	return oldValue.SpecPath, nil
}

// ClearSpecPath clears the value of the "spec_path" field.
func (m *ProjectMutation) ClearSpecPath() {
	m.spec_path = nil
	m.clearedFields[project.FieldSpecPath] = struct{}{}
}

// SpecPathCleared returns if the "spec_path" field was cleared in this mutation.
func (m *ProjectMutation) SpecPathCleared() bool {
	_, ok := m.clearedFields[project.FieldSpecPath]
	return ok
}

// ResetSpecPath resets all changes to the "spec_path" field.
func (m *ProjectMutation) ResetSpecPath() {
	m.spec_path = nil
	delete(m.clearedFields, project.FieldSpecPath)
}

// SetLocalPath sets the "local_path" field.
func (m *ProjectMutation) SetLocalPath(s string) {
	m.local_path = &s
}

// LocalPath returns the value of the "local_path" field in the mutation.
func (m *ProjectMutation) LocalPath() (r string, exists bool) {
	v := m.local_path
	if v == nil {
		return
	}
	return *v, true
}

// OldLocalPath returns the old "local_path" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldLocalPath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLocalPath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLocalPath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLocalPath: %w", err)
	}
	return oldValue.LocalPath, nil
}

// ClearLocalPath clears the value of the "local_path" field.
func (m *ProjectMutation) ClearLocalPath() {
	m.local_path = nil
	m.clearedFields[project.FieldLocalPath] = struct{}{}
}

// LocalPathCleared returns if the "local_path" field was cleared in this mutation.
func (m *ProjectMutation) LocalPathCleared() bool {
	_, ok := m.clearedFields[project.FieldLocalPath]
	return ok
}

// ResetLocalPath resets all changes to the "local_path" field.
func (m *ProjectMutation) ResetLocalPath() {
	m.local_path = nil
	delete(m.clearedFields, project.FieldLocalPath)
}

// SetSettings sets the "settings" field.
func (m *ProjectMutation) SetSettings(value map[string]interface{}) {
	m.settings = &value
}

// Settings returns the value of the "settings" field in the mutation.
func (m *ProjectMutation) Settings() (r map[string]interface{}, exists bool) {
	v := m.settings
	if v == nil {
		return
	}
	return *v, true
}

// OldSettings returns the old "settings" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldSettings(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSettings is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSettings requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSettings: %w", err)
	}
	return oldValue.Settings, nil
}

// ClearSettings clears the value of the "settings" field.
func (m *ProjectMutation) ClearSettings() {
	m.settings = nil
	m.clearedFields[project.FieldSettings] = struct{}{}
}

// SettingsCleared returns if the "settings" field was cleared in this mutation.
func (m *ProjectMutation) SettingsCleared() bool {
	_, ok := m.clearedFields[project.FieldSettings]
	return ok
}

// ResetSettings resets all changes to the "settings" field.
func (m *ProjectMutation) ResetSettings() {
	m.settings = nil
	delete(m.clearedFields, project.FieldSettings)
}

// SetEnvConfigured sets the "env_configured" field.
func (m *ProjectMutation) SetEnvConfigured(b bool) {
	m.env_configured = &b
}

// EnvConfigured returns the value of the "env_configured" field in the mutation.
func (m *ProjectMutation) EnvConfigured() (r bool, exists bool) {
	v := m.env_configured
	if v == nil {
		return
	}
	return *v, true
}

// OldEnvConfigured returns the old "env_configured" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldEnvConfigured(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnvConfigured is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnvConfigured requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnvConfigured: %w", err)
	}
	return oldValue.EnvConfigured, nil
}

// ResetEnvConfigured resets all changes to the "env_configured" field.
func (m *ProjectMutation) ResetEnvConfigured() {
	m.env_configured = nil
}

// SetMetadata sets the "metadata" field.
func (m *ProjectMutation) SetMetadata(value map[string]interface{}) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *ProjectMutation) Metadata() (r map[string]interface{}, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *ProjectMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[project.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *ProjectMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[project.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *ProjectMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, project.FieldMetadata)
}

// SetCreatedAt sets the "created_at" field.
func (m *ProjectMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ProjectMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ProjectMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ProjectMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ProjectMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ProjectMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetCompletedAt sets the "completed_at" field.
func (m *ProjectMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *ProjectMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *ProjectMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[project.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *ProjectMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[project.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *ProjectMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, project.FieldCompletedAt)
}

// AddEpicIDs adds the "epics" edge to the Epic entity by ids.
func (m *ProjectMutation) AddEpicIDs(ids ...string) {
	if m.epics == nil {
		m.epics = make(map[string]struct{})
	}
	for i := range ids {
		m.epics[ids[i]] = struct{}{}
	}
}

// ClearEpics clears the "epics" edge to the Epic entity.
func (m *ProjectMutation) ClearEpics() {
	m.clearedepics = true
}

// EpicsCleared reports if the "epics" edge to the Epic entity was cleared.
func (m *ProjectMutation) EpicsCleared() bool {
	return m.clearedepics
}

// RemoveEpicIDs removes the "epics" edge to the Epic entity by IDs.
func (m *ProjectMutation) RemoveEpicIDs(ids ...string) {
	if m.removedepics == nil {
		m.removedepics = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.epics, ids[i])
		m.removedepics[ids[i]] = struct{}{}
	}
}

// RemovedEpics returns the removed IDs of the "epics" edge to the Epic entity.
func (m *ProjectMutation) RemovedEpicsIDs() (ids []string) {
	for id := range m.removedepics {
		ids = append(ids, id)
	}
	return
}

// EpicsIDs returns the "epics" edge IDs in the mutation.
func (m *ProjectMutation) EpicsIDs() (ids []string) {
	for id := range m.epics {
		ids = append(ids, id)
	}
	return
}

// ResetEpics resets all changes to the "epics" edge.
func (m *ProjectMutation) ResetEpics() {
	m.epics = nil
	m.clearedepics = false
	m.removedepics = nil
}

// AddTaskIDs adds the "tasks" edge to the Task entity by ids.
func (m *ProjectMutation) AddTaskIDs(ids ...string) {
	if m.tasks == nil {
		m.tasks = make(map[string]struct{})
	}
	for i := range ids {
		m.tasks[ids[i]] = struct{}{}
	}
}

// ClearTasks clears the "tasks" edge to the Task entity.
func (m *ProjectMutation) ClearTasks() {
	m.clearedtasks = true
}

// TasksCleared reports if the "tasks" edge to the Task entity was cleared.
func (m *ProjectMutation) TasksCleared() bool {
	return m.clearedtasks
}

// RemoveTaskIDs removes the "tasks" edge to the Task entity by IDs.
func (m *ProjectMutation) RemoveTaskIDs(ids ...string) {
	if m.removedtasks == nil {
		m.removedtasks = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.tasks, ids[i])
		m.removedtasks[ids[i]] = struct{}{}
	}
}

// RemovedTasks returns the removed IDs of the "tasks" edge to the Task entity.
func (m *ProjectMutation) RemovedTasksIDs() (ids []string) {
	for id := range m.removedtasks {
		ids = append(ids, id)
	}
	return
}

// TasksIDs returns the "tasks" edge IDs in the mutation.
func (m *ProjectMutation) TasksIDs() (ids []string) {
	for id := range m.tasks {
		ids = append(ids, id)
	}
	return
}

// ResetTasks resets all changes to the "tasks" edge.
func (m *ProjectMutation) ResetTasks() {
	m.tasks = nil
	m.clearedtasks = false
	m.removedtasks = nil
}

// AddSessionIDs adds the "sessions" edge to the AgentSession entity by ids.
func (m *ProjectMutation) AddSessionIDs(ids ...string) {
	if m.sessions == nil {
		m.sessions = make(map[string]struct{})
	}
	for i := range ids {
		m.sessions[ids[i]] = struct{}{}
	}
}

// ClearSessions clears the "sessions" edge to the AgentSession entity.
func (m *ProjectMutation) ClearSessions() {
	m.clearedsessions = true
}

// SessionsCleared reports if the "sessions" edge to the AgentSession entity was cleared.
func (m *ProjectMutation) SessionsCleared() bool {
	return m.clearedsessions
}

// RemoveSessionIDs removes the "sessions" edge to the AgentSession entity by IDs.
func (m *ProjectMutation) RemoveSessionIDs(ids ...string) {
	if m.removedsessions == nil {
		m.removedsessions = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.sessions, ids[i])
		m.removedsessions[ids[i]] = struct{}{}
	}
}

// RemovedSessions returns the removed IDs of the "sessions" edge to the AgentSession entity.
func (m *ProjectMutation) RemovedSessionsIDs() (ids []string) {
	for id := range m.removedsessions {
		ids = append(ids, id)
	}
	return
}

// SessionsIDs returns the "sessions" edge IDs in the mutation.
func (m *ProjectMutation) SessionsIDs() (ids []string) {
	for id := range m.sessions {
		ids = append(ids, id)
	}
	return
}

// ResetSessions resets all changes to the "sessions" edge.
func (m *ProjectMutation) ResetSessions() {
	m.sessions = nil
	m.clearedsessions = false
	m.removedsessions = nil
}

// Where appends a list predicates to the ProjectMutation builder.
func (m *ProjectMutation) Where(ps ...predicate.Project) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ProjectMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ProjectMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Project, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ProjectMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ProjectMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Project).
func (m *ProjectMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ProjectMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.name != nil {
		fields = append(fields, project.FieldName)
	}
	if m.spec_content != nil {
		fields = append(fields, project.FieldSpecContent)
	}
	if m.spec_path != nil {
		fields = append(fields, project.FieldSpecPath)
	}
	if m.local_path != nil {
		fields = append(fields, project.FieldLocalPath)
	}
	if m.settings != nil {
		fields = append(fields, project.FieldSettings)
	}
	if m.env_configured != nil {
		fields = append(fields, project.FieldEnvConfigured)
	}
	if m.metadata != nil {
		fields = append(fields, project.FieldMetadata)
	}
	if m.created_at != nil {
		fields = append(fields, project.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, project.FieldUpdatedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, project.FieldCompletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ProjectMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case project.FieldName:
		return m.Name()
	case project.FieldSpecContent:
		return m.SpecContent()
	case project.FieldSpecPath:
		return m.SpecPath()
	case project.FieldLocalPath:
		return m.LocalPath()
	case project.FieldSettings:
		return m.Settings()
	case project.FieldEnvConfigured:
		return m.EnvConfigured()
	case project.FieldMetadata:
		return m.Metadata()
	case project.FieldCreatedAt:
		return m.CreatedAt()
	case project.FieldUpdatedAt:
		return m.UpdatedAt()
	case project.FieldCompletedAt:
		return m.CompletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ProjectMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case project.FieldName:
		return m.OldName(ctx)
	case project.FieldSpecContent:
		return m.OldSpecContent(ctx)
	case project.FieldSpecPath:
		return m.OldSpecPath(ctx)
	case project.FieldLocalPath:
		return m.OldLocalPath(ctx)
	case project.FieldSettings:
		return m.OldSettings(ctx)
	case project.FieldEnvConfigured:
		return m.OldEnvConfigured(ctx)
	case project.FieldMetadata:
		return m.OldMetadata(ctx)
	case project.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case project.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case project.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Project field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProjectMutation) SetField(name string, value ent.Value) error {
	switch name {
	case project.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case project.FieldSpecContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSpecContent(v)
		return nil
	case project.FieldSpecPath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSpecPath(v)
		return nil
	case project.FieldLocalPath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLocalPath(v)
		return nil
	case project.FieldSettings:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSettings(v)
		return nil
	case project.FieldEnvConfigured:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnvConfigured(v)
		return nil
	case project.FieldMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	case project.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case project.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case project.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Project field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ProjectMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ProjectMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProjectMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Project numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ProjectMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(project.FieldSpecContent) {
		fields = append(fields, project.FieldSpecContent)
	}
	if m.FieldCleared(project.FieldSpecPath) {
		fields = append(fields, project.FieldSpecPath)
	}
	if m.FieldCleared(project.FieldLocalPath) {
		fields = append(fields, project.FieldLocalPath)
	}
	if m.FieldCleared(project.FieldSettings) {
		fields = append(fields, project.FieldSettings)
	}
	if m.FieldCleared(project.FieldMetadata) {
		fields = append(fields, project.FieldMetadata)
	}
	if m.FieldCleared(project.FieldCompletedAt) {
		fields = append(fields, project.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ProjectMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ProjectMutation) ClearField(name string) error {
	switch name {
	case project.FieldSpecContent:
		m.ClearSpecContent()
		return nil
	case project.FieldSpecPath:
		m.ClearSpecPath()
		return nil
	case project.FieldLocalPath:
		m.ClearLocalPath()
		return nil
	case project.FieldSettings:
		m.ClearSettings()
		return nil
	case project.FieldMetadata:
		m.ClearMetadata()
		return nil
	case project.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown Project nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ProjectMutation) ResetField(name string) error {
	switch name {
	case project.FieldName:
		m.ResetName()
		return nil
	case project.FieldSpecContent:
		m.ResetSpecContent()
		return nil
	case project.FieldSpecPath:
		m.ResetSpecPath()
		return nil
	case project.FieldLocalPath:
		m.ResetLocalPath()
		return nil
	case project.FieldSettings:
		m.ResetSettings()
		return nil
	case project.FieldEnvConfigured:
		m.ResetEnvConfigured()
		return nil
	case project.FieldMetadata:
		m.ResetMetadata()
		return nil
	case project.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case project.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case project.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown Project field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ProjectMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.epics != nil {
		edges = append(edges, project.EdgeEpics)
	}
	if m.tasks != nil {
		edges = append(edges, project.EdgeTasks)
	}
	if m.sessions != nil {
		edges = append(edges, project.EdgeSessions)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ProjectMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case project.EdgeEpics:
		ids := make([]ent.Value, 0, len(m.epics))
		for id := range m.epics {
			ids = append(ids, id)
		}
		return ids
	case project.EdgeTasks:
		ids := make([]ent.Value, 0, len(m.tasks))
		for id := range m.tasks {
			ids = append(ids, id)
		}
		return ids
	case project.EdgeSessions:
		ids := make([]ent.Value, 0, len(m.sessions))
		for id := range m.sessions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ProjectMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedepics != nil {
		edges = append(edges, project.EdgeEpics)
	}
	if m.removedtasks != nil {
		edges = append(edges, project.EdgeTasks)
	}
	if m.removedsessions != nil {
		edges = append(edges, project.EdgeSessions)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ProjectMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case project.EdgeEpics:
		ids := make([]ent.Value, 0, len(m.removedepics))
		for id := range m.removedepics {
			ids = append(ids, id)
		}
		return ids
	case project.EdgeTasks:
		ids := make([]ent.Value, 0, len(m.removedtasks))
		for id := range m.removedtasks {
			ids = append(ids, id)
		}
		return ids
	case project.EdgeSessions:
		ids := make([]ent.Value, 0, len(m.removedsessions))
		for id := range m.removedsessions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ProjectMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedepics {
		edges = append(edges, project.EdgeEpics)
	}
	if m.clearedtasks {
		edges = append(edges, project.EdgeTasks)
	}
	if m.clearedsessions {
		edges = append(edges, project.EdgeSessions)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ProjectMutation) EdgeCleared(name string) bool {
	switch name {
	case project.EdgeEpics:
		return m.clearedepics
	case project.EdgeTasks:
		return m.clearedtasks
	case project.EdgeSessions:
		return m.clearedsessions
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ProjectMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Project unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ProjectMutation) ResetEdge(name string) error {
	switch name {
	case project.EdgeEpics:
		m.ResetEpics()
		return nil
	case project.EdgeTasks:
		m.ResetTasks()
		return nil
	case project.EdgeSessions:
		m.ResetSessions()
		return nil
	}
	return fmt.Errorf("unknown Project edge %s", name)
}

// PromptAnalysisMutation represents an operation that mutates the PromptAnalysis nodes in the graph.
type PromptAnalysisMutation struct {
	config
	op                         Op
	typ                        string
	id                         *string
	projects_analyzed          *[]string
	appendprojects_analyzed    []string
	sandbox_type               *string
	status                     *promptanalysis.Status
	triggered_by               *string
	date_range_start           *time.Time
	date_range_end             *time.Time
	sessions_analyzed          *int
	addsessions_analyzed       *int
	patterns                   *map[string]interface{}
	quality_impact_estimate    *float64
	addquality_impact_estimate *float64
	notes                      *string
	created_at                 *time.Time
	completed_at               *time.Time
	clearedFields              map[string]struct{}
	proposals                  map[string]struct{}
	removedproposals           map[string]struct{}
	clearedproposals           bool
	done                       bool
	oldValue                   func(context.Context) (*PromptAnalysis, error)
	predicates                 []predicate.PromptAnalysis
}

var _ ent.Mutation = (*PromptAnalysisMutation)(nil)

// promptanalysisOption allows management of the mutation configuration using functional options.
type promptanalysisOption func(*PromptAnalysisMutation)

// newPromptAnalysisMutation creates new mutation for the PromptAnalysis entity.
func newPromptAnalysisMutation(c config, op Op, opts ...promptanalysisOption) *PromptAnalysisMutation {
	m := &PromptAnalysisMutation{
		config:        c,
		op:            op,
		typ:           TypePromptAnalysis,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPromptAnalysisID sets the ID field of the mutation.
func withPromptAnalysisID(id string) promptanalysisOption {
	return func(m *PromptAnalysisMutation) {
		var (
			err   error
			once  sync.Once
			value *PromptAnalysis
		)
		m.oldValue = func(ctx context.Context) (*PromptAnalysis, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PromptAnalysis.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPromptAnalysis sets the old PromptAnalysis of the mutation.
func withPromptAnalysis(node *PromptAnalysis) promptanalysisOption {
	return func(m *PromptAnalysisMutation) {
		m.oldValue = func(context.Context) (*PromptAnalysis, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PromptAnalysisMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PromptAnalysisMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of PromptAnalysis entities.
func (m *PromptAnalysisMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PromptAnalysisMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PromptAnalysisMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PromptAnalysis.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetProjectsAnalyzed sets the "projects_analyzed" field.
func (m *PromptAnalysisMutation) SetProjectsAnalyzed(s []string) {
	m.projects_analyzed = &s
	m.appendprojects_analyzed = nil
}

// ProjectsAnalyzed returns the value of the "projects_analyzed" field in the mutation.
func (m *PromptAnalysisMutation) ProjectsAnalyzed() (r []string, exists bool) {
	v := m.projects_analyzed
	if v == nil {
		return
	}
	return *v, true
}

// OldProjectsAnalyzed returns the old "projects_analyzed" field's value of the PromptAnalysis entity.
// If the PromptAnalysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromptAnalysisMutation) OldProjectsAnalyzed(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProjectsAnalyzed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProjectsAnalyzed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProjectsAnalyzed: %w", err)
	}
	return oldValue.ProjectsAnalyzed, nil
}

// AppendProjectsAnalyzed adds s to the "projects_analyzed" field.
func (m *PromptAnalysisMutation) AppendProjectsAnalyzed(s []string) {
	m.appendprojects_analyzed = append(m.appendprojects_analyzed, s...)
}

// AppendedProjectsAnalyzed returns the list of values that were appended to the "projects_analyzed" field in this mutation.
func (m *PromptAnalysisMutation) AppendedProjectsAnalyzed() ([]string, bool) {
	if len(m.appendprojects_analyzed) == 0 {
		return nil, false
	}
	return m.appendprojects_analyzed, true
}

// ClearProjectsAnalyzed clears the value of the "projects_analyzed" field.
func (m *PromptAnalysisMutation) ClearProjectsAnalyzed() {
	m.projects_analyzed = nil
	m.appendprojects_analyzed = nil
	m.clearedFields[promptanalysis.FieldProjectsAnalyzed] = struct{}{}
}

// ProjectsAnalyzedCleared returns if the "projects_analyzed" field was cleared in this mutation.
func (m *PromptAnalysisMutation) ProjectsAnalyzedCleared() bool {
	_, ok := m.clearedFields[promptanalysis.FieldProjectsAnalyzed]
	return ok
}

// ResetProjectsAnalyzed resets all changes to the "projects_analyzed" field.
func (m *PromptAnalysisMutation) ResetProjectsAnalyzed() {
	m.projects_analyzed = nil
	m.appendprojects_analyzed = nil
	delete(m.clearedFields, promptanalysis.FieldProjectsAnalyzed)
}

// SetSandboxType sets the "sandbox_type" field.
func (m *PromptAnalysisMutation) SetSandboxType(s string) {
	m.sandbox_type = &s
}

// SandboxType returns the value of the "sandbox_type" field in the mutation.
func (m *PromptAnalysisMutation) SandboxType() (r string, exists bool) {
	v := m.sandbox_type
	if v == nil {
		return
	}
	return *v, true
}

// OldSandboxType returns the old "sandbox_type" field's value of the PromptAnalysis entity.
// If the PromptAnalysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromptAnalysisMutation) OldSandboxType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSandboxType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSandboxType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSandboxType: %w", err)
	}
	return oldValue.SandboxType, nil
}

// ResetSandboxType resets all changes to the "sandbox_type" field.
func (m *PromptAnalysisMutation) ResetSandboxType() {
	m.sandbox_type = nil
}

// SetStatus sets the "status" field.
func (m *PromptAnalysisMutation) SetStatus(pr promptanalysis.Status) {
	m.status = &pr
}

// Status returns the value of the "status" field in the mutation.
func (m *PromptAnalysisMutation) Status() (r promptanalysis.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the PromptAnalysis entity.
// If the PromptAnalysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromptAnalysisMutation) OldStatus(ctx context.Context) (v promptanalysis.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *PromptAnalysisMutation) ResetStatus() {
	m.status = nil
}

// SetTriggeredBy sets the "triggered_by" field.
func (m *PromptAnalysisMutation) SetTriggeredBy(s string) {
	m.triggered_by = &s
}

// TriggeredBy returns the value of the "triggered_by" field in the mutation.
func (m *PromptAnalysisMutation) TriggeredBy() (r string, exists bool) {
	v := m.triggered_by
	if v == nil {
		return
	}
	return *v, true
}

// OldTriggeredBy returns the old "triggered_by" field's value of the PromptAnalysis entity.
// If the PromptAnalysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromptAnalysisMutation) OldTriggeredBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTriggeredBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTriggeredBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTriggeredBy: %w", err)
	}
	return oldValue.TriggeredBy, nil
}

// ResetTriggeredBy resets all changes to the "triggered_by" field.
func (m *PromptAnalysisMutation) ResetTriggeredBy() {
	m.triggered_by = nil
}

// SetDateRangeStart sets the "date_range_start" field.
func (m *PromptAnalysisMutation) SetDateRangeStart(t time.Time) {
	m.date_range_start = &t
}

// DateRangeStart returns the value of the "date_range_start" field in the mutation.
func (m *PromptAnalysisMutation) DateRangeStart() (r time.Time, exists bool) {
	v := m.date_range_start
	if v == nil {
		return
	}
	return *v, true
}

// OldDateRangeStart returns the old "date_range_start" field's value of the PromptAnalysis entity.
// If the PromptAnalysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromptAnalysisMutation) OldDateRangeStart(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDateRangeStart is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDateRangeStart requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDateRangeStart: %w", err)
	}
	return oldValue.DateRangeStart, nil
}

// ClearDateRangeStart clears the value of the "date_range_start" field.
func (m *PromptAnalysisMutation) ClearDateRangeStart() {
	m.date_range_start = nil
	m.clearedFields[promptanalysis.FieldDateRangeStart] = struct{}{}
}

// DateRangeStartCleared returns if the "date_range_start" field was cleared in this mutation.
func (m *PromptAnalysisMutation) DateRangeStartCleared() bool {
	_, ok := m.clearedFields[promptanalysis.FieldDateRangeStart]
	return ok
}

// ResetDateRangeStart resets all changes to the "date_range_start" field.
func (m *PromptAnalysisMutation) ResetDateRangeStart() {
	m.date_range_start = nil
	delete(m.clearedFields, promptanalysis.FieldDateRangeStart)
}

// SetDateRangeEnd sets the "date_range_end" field.
func (m *PromptAnalysisMutation) SetDateRangeEnd(t time.Time) {
	m.date_range_end = &t
}

// DateRangeEnd returns the value of the "date_range_end" field in the mutation.
func (m *PromptAnalysisMutation) DateRangeEnd() (r time.Time, exists bool) {
	v := m.date_range_end
	if v == nil {
		return
	}
	return *v, true
}

// OldDateRangeEnd returns the old "date_range_end" field's value of the PromptAnalysis entity.
// If the PromptAnalysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromptAnalysisMutation) OldDateRangeEnd(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDateRangeEnd is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDateRangeEnd requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDateRangeEnd: %w", err)
	}
	return oldValue.DateRangeEnd, nil
}

// ClearDateRangeEnd clears the value of the "date_range_end" field.
func (m *PromptAnalysisMutation) ClearDateRangeEnd() {
	m.date_range_end = nil
	m.clearedFields[promptanalysis.FieldDateRangeEnd] = struct{}{}
}

// DateRangeEndCleared returns if the "date_range_end" field was cleared in this mutation.
func (m *PromptAnalysisMutation) DateRangeEndCleared() bool {
	_, ok := m.clearedFields[promptanalysis.FieldDateRangeEnd]
	return ok
}

// ResetDateRangeEnd resets all changes to the "date_range_end" field.
func (m *PromptAnalysisMutation) ResetDateRangeEnd() {
	m.date_range_end = nil
	delete(m.clearedFields, promptanalysis.FieldDateRangeEnd)
}

// SetSessionsAnalyzed sets the "sessions_analyzed" field.
func (m *PromptAnalysisMutation) SetSessionsAnalyzed(i int) {
	m.sessions_analyzed = &i
	m.addsessions_analyzed = nil
}

// SessionsAnalyzed returns the value of the "sessions_analyzed" field in the mutation.
func (m *PromptAnalysisMutation) SessionsAnalyzed() (r int, exists bool) {
	v := m.sessions_analyzed
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionsAnalyzed returns the old "sessions_analyzed" field's value of the PromptAnalysis entity.
// If the PromptAnalysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromptAnalysisMutation) OldSessionsAnalyzed(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionsAnalyzed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionsAnalyzed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionsAnalyzed: %w", err)
	}
	return oldValue.SessionsAnalyzed, nil
}

// AddSessionsAnalyzed adds i to the "sessions_analyzed" field.
func (m *PromptAnalysisMutation) AddSessionsAnalyzed(i int) {
	if m.addsessions_analyzed != nil {
		*m.addsessions_analyzed += i
	} else {
		m.addsessions_analyzed = &i
	}
}

// AddedSessionsAnalyzed returns the value that was added to the "sessions_analyzed" field in this mutation.
func (m *PromptAnalysisMutation) AddedSessionsAnalyzed() (r int, exists bool) {
	v := m.addsessions_analyzed
	if v == nil {
		return
	}
	return *v, true
}

// ResetSessionsAnalyzed resets all changes to the "sessions_analyzed" field.
func (m *PromptAnalysisMutation) ResetSessionsAnalyzed() {
	m.sessions_analyzed = nil
	m.addsessions_analyzed = nil
}

// SetPatterns sets the "patterns" field.
func (m *PromptAnalysisMutation) SetPatterns(value map[string]interface{}) {
	m.patterns = &value
}

// Patterns returns the value of the "patterns" field in the mutation.
func (m *PromptAnalysisMutation) Patterns() (r map[string]interface{}, exists bool) {
	v := m.patterns
	if v == nil {
		return
	}
	return *v, true
}

// OldPatterns returns the old "patterns" field's value of the PromptAnalysis entity.
// If the PromptAnalysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromptAnalysisMutation) OldPatterns(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPatterns is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPatterns requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPatterns: %w", err)
	}
	return oldValue.Patterns, nil
}

// ClearPatterns clears the value of the "patterns" field.
func (m *PromptAnalysisMutation) ClearPatterns() {
	m.patterns = nil
	m.clearedFields[promptanalysis.FieldPatterns] = struct{}{}
}

// PatternsCleared returns if the "patterns" field was cleared in this mutation.
func (m *PromptAnalysisMutation) PatternsCleared() bool {
	_, ok := m.clearedFields[promptanalysis.FieldPatterns]
	return ok
}

// ResetPatterns resets all changes to the "patterns" field.
func (m *PromptAnalysisMutation) ResetPatterns() {
	m.patterns = nil
	delete(m.clearedFields, promptanalysis.FieldPatterns)
}

// SetQualityImpactEstimate sets the "quality_impact_estimate" field.
func (m *PromptAnalysisMutation) SetQualityImpactEstimate(f float64) {
	m.quality_impact_estimate = &f
	m.addquality_impact_estimate = nil
}

// QualityImpactEstimate returns the value of the "quality_impact_estimate" field in the mutation.
func (m *PromptAnalysisMutation) QualityImpactEstimate() (r float64, exists bool) {
	v := m.quality_impact_estimate
	if v == nil {
		return
	}
	return *v, true
}

// OldQualityImpactEstimate returns the old "quality_impact_estimate" field's value of the PromptAnalysis entity.
// If the PromptAnalysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromptAnalysisMutation) OldQualityImpactEstimate(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQualityImpactEstimate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQualityImpactEstimate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQualityImpactEstimate: %w", err)
	}
	return oldValue.QualityImpactEstimate, nil
}

// AddQualityImpactEstimate adds f to the "quality_impact_estimate" field.
func (m *PromptAnalysisMutation) AddQualityImpactEstimate(f float64) {
	if m.addquality_impact_estimate != nil {
		*m.addquality_impact_estimate += f
	} else {
		m.addquality_impact_estimate = &f
	}
}

// AddedQualityImpactEstimate returns the value that was added to the "quality_impact_estimate" field in this mutation.
func (m *PromptAnalysisMutation) AddedQualityImpactEstimate() (r float64, exists bool) {
	v := m.addquality_impact_estimate
	if v == nil {
		return
	}
	return *v, true
}

// ResetQualityImpactEstimate resets all changes to the "quality_impact_estimate" field.
func (m *PromptAnalysisMutation) ResetQualityImpactEstimate() {
	m.quality_impact_estimate = nil
	m.addquality_impact_estimate = nil
}

// SetNotes sets the "notes" field.
func (m *PromptAnalysisMutation) SetNotes(s string) {
	m.notes = &s
}

// Notes returns the value of the "notes" field in the mutation.
func (m *PromptAnalysisMutation) Notes() (r string, exists bool) {
	v := m.notes
	if v == nil {
		return
	}
	return *v, true
}

// OldNotes returns the old "notes" field's value of the PromptAnalysis entity.
// If the PromptAnalysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromptAnalysisMutation) OldNotes(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNotes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNotes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNotes: %w", err)
	}
	return oldValue.Notes, nil
}

// ClearNotes clears the value of the "notes" field.
func (m *PromptAnalysisMutation) ClearNotes() {
	m.notes = nil
	m.clearedFields[promptanalysis.FieldNotes] = struct{}{}
}

// NotesCleared returns if the "notes" field was cleared in this mutation.
func (m *PromptAnalysisMutation) NotesCleared() bool {
	_, ok := m.clearedFields[promptanalysis.FieldNotes]
	return ok
}

// ResetNotes resets all changes to the "notes" field.
func (m *PromptAnalysisMutation) ResetNotes() {
	m.notes = nil
	delete(m.clearedFields, promptanalysis.FieldNotes)
}

// SetCreatedAt sets the "created_at" field.
func (m *PromptAnalysisMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PromptAnalysisMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the PromptAnalysis entity.
// If the PromptAnalysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromptAnalysisMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PromptAnalysisMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetCompletedAt sets the "completed_at" field.
func (m *PromptAnalysisMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *PromptAnalysisMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the PromptAnalysis entity.
// If the PromptAnalysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromptAnalysisMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *PromptAnalysisMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[promptanalysis.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *PromptAnalysisMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[promptanalysis.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *PromptAnalysisMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, promptanalysis.FieldCompletedAt)
}

// AddProposalIDs adds the "proposals" edge to the PromptProposal entity by ids.
func (m *PromptAnalysisMutation) AddProposalIDs(ids ...string) {
	if m.proposals == nil {
		m.proposals = make(map[string]struct{})
	}
	for i := range ids {
		m.proposals[ids[i]] = struct{}{}
	}
}

// ClearProposals clears the "proposals" edge to the PromptProposal entity.
func (m *PromptAnalysisMutation) ClearProposals() {
	m.clearedproposals = true
}

// ProposalsCleared reports if the "proposals" edge to the PromptProposal entity was cleared.
func (m *PromptAnalysisMutation) ProposalsCleared() bool {
	return m.clearedproposals
}

// RemoveProposalIDs removes the "proposals" edge to the PromptProposal entity by IDs.
func (m *PromptAnalysisMutation) RemoveProposalIDs(ids ...string) {
	if m.removedproposals == nil {
		m.removedproposals = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.proposals, ids[i])
		m.removedproposals[ids[i]] = struct{}{}
	}
}

// RemovedProposals returns the removed IDs of the "proposals" edge to the PromptProposal entity.
func (m *PromptAnalysisMutation) RemovedProposalsIDs() (ids []string) {
	for id := range m.removedproposals {
		ids = append(ids, id)
	}
	return
}

// ProposalsIDs returns the "proposals" edge IDs in the mutation.
func (m *PromptAnalysisMutation) ProposalsIDs() (ids []string) {
	for id := range m.proposals {
		ids = append(ids, id)
	}
	return
}

// ResetProposals resets all changes to the "proposals" edge.
func (m *PromptAnalysisMutation) ResetProposals() {
	m.proposals = nil
	m.clearedproposals = false
	m.removedproposals = nil
}

// Where appends a list predicates to the PromptAnalysisMutation builder.
func (m *PromptAnalysisMutation) Where(ps ...predicate.PromptAnalysis) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PromptAnalysisMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PromptAnalysisMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PromptAnalysis, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PromptAnalysisMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PromptAnalysisMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PromptAnalysis).
func (m *PromptAnalysisMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PromptAnalysisMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.projects_analyzed != nil {
		fields = append(fields, promptanalysis.FieldProjectsAnalyzed)
	}
	if m.sandbox_type != nil {
		fields = append(fields, promptanalysis.FieldSandboxType)
	}
	if m.status != nil {
		fields = append(fields, promptanalysis.FieldStatus)
	}
	if m.triggered_by != nil {
		fields = append(fields, promptanalysis.FieldTriggeredBy)
	}
	if m.date_range_start != nil {
		fields = append(fields, promptanalysis.FieldDateRangeStart)
	}
	if m.date_range_end != nil {
		fields = append(fields, promptanalysis.FieldDateRangeEnd)
	}
	if m.sessions_analyzed != nil {
		fields = append(fields, promptanalysis.FieldSessionsAnalyzed)
	}
	if m.patterns != nil {
		fields = append(fields, promptanalysis.FieldPatterns)
	}
	if m.quality_impact_estimate != nil {
		fields = append(fields, promptanalysis.FieldQualityImpactEstimate)
	}
	if m.notes != nil {
		fields = append(fields, promptanalysis.FieldNotes)
	}
	if m.created_at != nil {
		fields = append(fields, promptanalysis.FieldCreatedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, promptanalysis.FieldCompletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PromptAnalysisMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case promptanalysis.FieldProjectsAnalyzed:
		return m.ProjectsAnalyzed()
	case promptanalysis.FieldSandboxType:
		return m.SandboxType()
	case promptanalysis.FieldStatus:
		return m.Status()
	case promptanalysis.FieldTriggeredBy:
		return m.TriggeredBy()
	case promptanalysis.FieldDateRangeStart:
		return m.DateRangeStart()
	case promptanalysis.FieldDateRangeEnd:
		return m.DateRangeEnd()
	case promptanalysis.FieldSessionsAnalyzed:
		return m.SessionsAnalyzed()
	case promptanalysis.FieldPatterns:
		return m.Patterns()
	case promptanalysis.FieldQualityImpactEstimate:
		return m.QualityImpactEstimate()
	case promptanalysis.FieldNotes:
		return m.Notes()
	case promptanalysis.FieldCreatedAt:
		return m.CreatedAt()
	case promptanalysis.FieldCompletedAt:
		return m.CompletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PromptAnalysisMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case promptanalysis.FieldProjectsAnalyzed:
		return m.OldProjectsAnalyzed(ctx)
	case promptanalysis.FieldSandboxType:
		return m.OldSandboxType(ctx)
	case promptanalysis.FieldStatus:
		return m.OldStatus(ctx)
	case promptanalysis.FieldTriggeredBy:
		return m.OldTriggeredBy(ctx)
	case promptanalysis.FieldDateRangeStart:
		return m.OldDateRangeStart(ctx)
	case promptanalysis.FieldDateRangeEnd:
		return m.OldDateRangeEnd(ctx)
	case promptanalysis.FieldSessionsAnalyzed:
		return m.OldSessionsAnalyzed(ctx)
	case promptanalysis.FieldPatterns:
		return m.OldPatterns(ctx)
	case promptanalysis.FieldQualityImpactEstimate:
		return m.OldQualityImpactEstimate(ctx)
	case promptanalysis.FieldNotes:
		return m.OldNotes(ctx)
	case promptanalysis.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case promptanalysis.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown PromptAnalysis field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PromptAnalysisMutation) SetField(name string, value ent.Value) error {
	switch name {
	case promptanalysis.FieldProjectsAnalyzed:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProjectsAnalyzed(v)
		return nil
	case promptanalysis.FieldSandboxType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSandboxType(v)
		return nil
	case promptanalysis.FieldStatus:
		v, ok := value.(promptanalysis.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case promptanalysis.FieldTriggeredBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTriggeredBy(v)
		return nil
	case promptanalysis.FieldDateRangeStart:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDateRangeStart(v)
		return nil
	case promptanalysis.FieldDateRangeEnd:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDateRangeEnd(v)
		return nil
	case promptanalysis.FieldSessionsAnalyzed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionsAnalyzed(v)
		return nil
	case promptanalysis.FieldPatterns:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPatterns(v)
		return nil
	case promptanalysis.FieldQualityImpactEstimate:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQualityImpactEstimate(v)
		return nil
	case promptanalysis.FieldNotes:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNotes(v)
		return nil
	case promptanalysis.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case promptanalysis.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown PromptAnalysis field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PromptAnalysisMutation) AddedFields() []string {
	var fields []string
	if m.addsessions_analyzed != nil {
		fields = append(fields, promptanalysis.FieldSessionsAnalyzed)
	}
	if m.addquality_impact_estimate != nil {
		fields = append(fields, promptanalysis.FieldQualityImpactEstimate)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PromptAnalysisMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case promptanalysis.FieldSessionsAnalyzed:
		return m.AddedSessionsAnalyzed()
	case promptanalysis.FieldQualityImpactEstimate:
		return m.AddedQualityImpactEstimate()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PromptAnalysisMutation) AddField(name string, value ent.Value) error {
	switch name {
	case promptanalysis.FieldSessionsAnalyzed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSessionsAnalyzed(v)
		return nil
	case promptanalysis.FieldQualityImpactEstimate:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddQualityImpactEstimate(v)
		return nil
	}
	return fmt.Errorf("unknown PromptAnalysis numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PromptAnalysisMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(promptanalysis.FieldProjectsAnalyzed) {
		fields = append(fields, promptanalysis.FieldProjectsAnalyzed)
	}
	if m.FieldCleared(promptanalysis.FieldDateRangeStart) {
		fields = append(fields, promptanalysis.FieldDateRangeStart)
	}
	if m.FieldCleared(promptanalysis.FieldDateRangeEnd) {
		fields = append(fields, promptanalysis.FieldDateRangeEnd)
	}
	if m.FieldCleared(promptanalysis.FieldPatterns) {
		fields = append(fields, promptanalysis.FieldPatterns)
	}
	if m.FieldCleared(promptanalysis.FieldNotes) {
		fields = append(fields, promptanalysis.FieldNotes)
	}
	if m.FieldCleared(promptanalysis.FieldCompletedAt) {
		fields = append(fields, promptanalysis.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PromptAnalysisMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PromptAnalysisMutation) ClearField(name string) error {
	switch name {
	case promptanalysis.FieldProjectsAnalyzed:
		m.ClearProjectsAnalyzed()
		return nil
	case promptanalysis.FieldDateRangeStart:
		m.ClearDateRangeStart()
		return nil
	case promptanalysis.FieldDateRangeEnd:
		m.ClearDateRangeEnd()
		return nil
	case promptanalysis.FieldPatterns:
		m.ClearPatterns()
		return nil
	case promptanalysis.FieldNotes:
		m.ClearNotes()
		return nil
	case promptanalysis.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown PromptAnalysis nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PromptAnalysisMutation) ResetField(name string) error {
	switch name {
	case promptanalysis.FieldProjectsAnalyzed:
		m.ResetProjectsAnalyzed()
		return nil
	case promptanalysis.FieldSandboxType:
		m.ResetSandboxType()
		return nil
	case promptanalysis.FieldStatus:
		m.ResetStatus()
		return nil
	case promptanalysis.FieldTriggeredBy:
		m.ResetTriggeredBy()
		return nil
	case promptanalysis.FieldDateRangeStart:
		m.ResetDateRangeStart()
		return nil
	case promptanalysis.FieldDateRangeEnd:
		m.ResetDateRangeEnd()
		return nil
	case promptanalysis.FieldSessionsAnalyzed:
		m.ResetSessionsAnalyzed()
		return nil
	case promptanalysis.FieldPatterns:
		m.ResetPatterns()
		return nil
	case promptanalysis.FieldQualityImpactEstimate:
		m.ResetQualityImpactEstimate()
		return nil
	case promptanalysis.FieldNotes:
		m.ResetNotes()
		return nil
	case promptanalysis.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case promptanalysis.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown PromptAnalysis field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PromptAnalysisMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.proposals != nil {
		edges = append(edges, promptanalysis.EdgeProposals)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PromptAnalysisMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case promptanalysis.EdgeProposals:
		ids := make([]ent.Value, 0, len(m.proposals))
		for id := range m.proposals {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PromptAnalysisMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedproposals != nil {
		edges = append(edges, promptanalysis.EdgeProposals)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PromptAnalysisMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case promptanalysis.EdgeProposals:
		ids := make([]ent.Value, 0, len(m.removedproposals))
		for id := range m.removedproposals {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PromptAnalysisMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedproposals {
		edges = append(edges, promptanalysis.EdgeProposals)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PromptAnalysisMutation) EdgeCleared(name string) bool {
	switch name {
	case promptanalysis.EdgeProposals:
		return m.clearedproposals
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PromptAnalysisMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown PromptAnalysis unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PromptAnalysisMutation) ResetEdge(name string) error {
	switch name {
	case promptanalysis.EdgeProposals:
		m.ResetProposals()
		return nil
	}
	return fmt.Errorf("unknown PromptAnalysis edge %s", name)
}

// PromptProposalMutation represents an operation that mutates the PromptProposal nodes in the graph.
type PromptProposalMutation struct {
	config
	op                Op
	typ               string
	id                *string
	prompt_file       *string
	section_name      *string
	change_type       *promptproposal.ChangeType
	original_text     *string
	proposed_text     *string
	rationale         *string
	evidence          *[]map[string]interface{}
	appendevidence    []map[string]interface{}
	confidence        *int
	addconfidence     *int
	status            *promptproposal.Status
	applied_at        *time.Time
	applied_by        *string
	prompt_version_id *string
	created_at        *time.Time
	clearedFields     map[string]struct{}
	analysis          *string
	clearedanalysis   bool
	done              bool
	oldValue          func(context.Context) (*PromptProposal, error)
	predicates        []predicate.PromptProposal
}

var _ ent.Mutation = (*PromptProposalMutation)(nil)

// promptproposalOption allows management of the mutation configuration using functional options.
type promptproposalOption func(*PromptProposalMutation)

// newPromptProposalMutation creates new mutation for the PromptProposal entity.
func newPromptProposalMutation(c config, op Op, opts ...promptproposalOption) *PromptProposalMutation {
	m := &PromptProposalMutation{
		config:        c,
		op:            op,
		typ:           TypePromptProposal,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPromptProposalID sets the ID field of the mutation.
func withPromptProposalID(id string) promptproposalOption {
	return func(m *PromptProposalMutation) {
		var (
			err   error
			once  sync.Once
			value *PromptProposal
		)
		m.oldValue = func(ctx context.Context) (*PromptProposal, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PromptProposal.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPromptProposal sets the old PromptProposal of the mutation.
func withPromptProposal(node *PromptProposal) promptproposalOption {
	return func(m *PromptProposalMutation) {
		m.oldValue = func(context.Context) (*PromptProposal, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PromptProposalMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PromptProposalMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of PromptProposal entities.
func (m *PromptProposalMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PromptProposalMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PromptProposalMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PromptProposal.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAnalysisID sets the "analysis_id" field.
func (m *PromptProposalMutation) SetAnalysisID(s string) {
	m.analysis = &s
}

// AnalysisID returns the value of the "analysis_id" field in the mutation.
func (m *PromptProposalMutation) AnalysisID() (r string, exists bool) {
	v := m.analysis
	if v == nil {
		return
	}
	return *v, true
}

// OldAnalysisID returns the old "analysis_id" field's value of the PromptProposal entity.
// If the PromptProposal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromptProposalMutation) OldAnalysisID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAnalysisID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAnalysisID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAnalysisID: %w", err)
	}
	return oldValue.AnalysisID, nil
}

// ResetAnalysisID resets all changes to the "analysis_id" field.
func (m *PromptProposalMutation) ResetAnalysisID() {
	m.analysis = nil
}

// SetPromptFile sets the "prompt_file" field.
func (m *PromptProposalMutation) SetPromptFile(s string) {
	m.prompt_file = &s
}

// PromptFile returns the value of the "prompt_file" field in the mutation.
func (m *PromptProposalMutation) PromptFile() (r string, exists bool) {
	v := m.prompt_file
	if v == nil {
		return
	}
	return *v, true
}

// OldPromptFile returns the old "prompt_file" field's value of the PromptProposal entity.
// If the PromptProposal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromptProposalMutation) OldPromptFile(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPromptFile is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPromptFile requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPromptFile: %w", err)
	}
	return oldValue.PromptFile, nil
}

// ResetPromptFile resets all changes to the "prompt_file" field.
func (m *PromptProposalMutation) ResetPromptFile() {
	m.prompt_file = nil
}

// SetSectionName sets the "section_name" field.
func (m *PromptProposalMutation) SetSectionName(s string) {
	m.section_name = &s
}

// SectionName returns the value of the "section_name" field in the mutation.
func (m *PromptProposalMutation) SectionName() (r string, exists bool) {
	v := m.section_name
	if v == nil {
		return
	}
	return *v, true
}

// OldSectionName returns the old "section_name" field's value of the PromptProposal entity.
// If the PromptProposal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromptProposalMutation) OldSectionName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSectionName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSectionName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSectionName: %w", err)
	}
	return oldValue.SectionName, nil
}

// ResetSectionName resets all changes to the "section_name" field.
func (m *PromptProposalMutation) ResetSectionName() {
	m.section_name = nil
}

// SetChangeType sets the "change_type" field.
func (m *PromptProposalMutation) SetChangeType(pt promptproposal.ChangeType) {
	m.change_type = &pt
}

// ChangeType returns the value of the "change_type" field in the mutation.
func (m *PromptProposalMutation) ChangeType() (r promptproposal.ChangeType, exists bool) {
	v := m.change_type
	if v == nil {
		return
	}
	return *v, true
}

// OldChangeType returns the old "change_type" field's value of the PromptProposal entity.
// If the PromptProposal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromptProposalMutation) OldChangeType(ctx context.Context) (v promptproposal.ChangeType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChangeType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChangeType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChangeType: %w", err)
	}
	return oldValue.ChangeType, nil
}

// ResetChangeType resets all changes to the "change_type" field.
func (m *PromptProposalMutation) ResetChangeType() {
	m.change_type = nil
}

// SetOriginalText sets the "original_text" field.
func (m *PromptProposalMutation) SetOriginalText(s string) {
	m.original_text = &s
}

// OriginalText returns the value of the "original_text" field in the mutation.
func (m *PromptProposalMutation) OriginalText() (r string, exists bool) {
	v := m.original_text
	if v == nil {
		return
	}
	return *v, true
}

// OldOriginalText returns the old "original_text" field's value of the PromptProposal entity.
// If the PromptProposal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromptProposalMutation) OldOriginalText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOriginalText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOriginalText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOriginalText: %w", err)
	}
	return oldValue.OriginalText, nil
}

// ClearOriginalText clears the value of the "original_text" field.
func (m *PromptProposalMutation) ClearOriginalText() {
	m.original_text = nil
	m.clearedFields[promptproposal.FieldOriginalText] = struct{}{}
}

// OriginalTextCleared returns if the "original_text" field was cleared in this mutation.
func (m *PromptProposalMutation) OriginalTextCleared() bool {
	_, ok := m.clearedFields[promptproposal.FieldOriginalText]
	return ok
}

// ResetOriginalText resets all changes to the "original_text" field.
func (m *PromptProposalMutation) ResetOriginalText() {
	m.original_text = nil
	delete(m.clearedFields, promptproposal.FieldOriginalText)
}

// SetProposedText sets the "proposed_text" field.
func (m *PromptProposalMutation) SetProposedText(s string) {
	m.proposed_text = &s
}

// ProposedText returns the value of the "proposed_text" field in the mutation.
func (m *PromptProposalMutation) ProposedText() (r string, exists bool) {
	v := m.proposed_text
	if v == nil {
		return
	}
	return *v, true
}

// OldProposedText returns the old "proposed_text" field's value of the PromptProposal entity.
// If the PromptProposal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromptProposalMutation) OldProposedText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProposedText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProposedText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProposedText: %w", err)
	}
	return oldValue.ProposedText, nil
}

// ResetProposedText resets all changes to the "proposed_text" field.
func (m *PromptProposalMutation) ResetProposedText() {
	m.proposed_text = nil
}

// SetRationale sets the "rationale" field.
func (m *PromptProposalMutation) SetRationale(s string) {
	m.rationale = &s
}

// Rationale returns the value of the "rationale" field in the mutation.
func (m *PromptProposalMutation) Rationale() (r string, exists bool) {
	v := m.rationale
	if v == nil {
		return
	}
	return *v, true
}

// OldRationale returns the old "rationale" field's value of the PromptProposal entity.
// If the PromptProposal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromptProposalMutation) OldRationale(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRationale is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRationale requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRationale: %w", err)
	}
	return oldValue.Rationale, nil
}

// ResetRationale resets all changes to the "rationale" field.
func (m *PromptProposalMutation) ResetRationale() {
	m.rationale = nil
}

// SetEvidence sets the "evidence" field.
func (m *PromptProposalMutation) SetEvidence(value []map[string]interface{}) {
	m.evidence = &value
	m.appendevidence = nil
}

// Evidence returns the value of the "evidence" field in the mutation.
func (m *PromptProposalMutation) Evidence() (r []map[string]interface{}, exists bool) {
	v := m.evidence
	if v == nil {
		return
	}
	return *v, true
}

// OldEvidence returns the old "evidence" field's value of the PromptProposal entity.
// If the PromptProposal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromptProposalMutation) OldEvidence(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEvidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEvidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEvidence: %w", err)
	}
	return oldValue.Evidence, nil
}

// AppendEvidence adds value to the "evidence" field.
func (m *PromptProposalMutation) AppendEvidence(value []map[string]interface{}) {
	m.appendevidence = append(m.appendevidence, value...)
}

// AppendedEvidence returns the list of values that were appended to the "evidence" field in this mutation.
func (m *PromptProposalMutation) AppendedEvidence() ([]map[string]interface{}, bool) {
	if len(m.appendevidence) == 0 {
		return nil, false
	}
	return m.appendevidence, true
}

// ClearEvidence clears the value of the "evidence" field.
func (m *PromptProposalMutation) ClearEvidence() {
	m.evidence = nil
	m.appendevidence = nil
	m.clearedFields[promptproposal.FieldEvidence] = struct{}{}
}

// EvidenceCleared returns if the "evidence" field was cleared in this mutation.
func (m *PromptProposalMutation) EvidenceCleared() bool {
	_, ok := m.clearedFields[promptproposal.FieldEvidence]
	return ok
}

// ResetEvidence resets all changes to the "evidence" field.
func (m *PromptProposalMutation) ResetEvidence() {
	m.evidence = nil
	m.appendevidence = nil
	delete(m.clearedFields, promptproposal.FieldEvidence)
}

// SetConfidence sets the "confidence" field.
func (m *PromptProposalMutation) SetConfidence(i int) {
	m.confidence = &i
	m.addconfidence = nil
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *PromptProposalMutation) Confidence() (r int, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the PromptProposal entity.
// If the PromptProposal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromptProposalMutation) OldConfidence(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidence: %w", err)
	}
	return oldValue.Confidence, nil
}

// AddConfidence adds i to the "confidence" field.
func (m *PromptProposalMutation) AddConfidence(i int) {
	if m.addconfidence != nil {
		*m.addconfidence += i
	} else {
		m.addconfidence = &i
	}
}

// AddedConfidence returns the value that was added to the "confidence" field in this mutation.
func (m *PromptProposalMutation) AddedConfidence() (r int, exists bool) {
	v := m.addconfidence
	if v == nil {
		return
	}
	return *v, true
}

// ResetConfidence resets all changes to the "confidence" field.
func (m *PromptProposalMutation) ResetConfidence() {
	m.confidence = nil
	m.addconfidence = nil
}

// SetStatus sets the "status" field.
func (m *PromptProposalMutation) SetStatus(pr promptproposal.Status) {
	m.status = &pr
}

// Status returns the value of the "status" field in the mutation.
func (m *PromptProposalMutation) Status() (r promptproposal.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the PromptProposal entity.
// If the PromptProposal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromptProposalMutation) OldStatus(ctx context.Context) (v promptproposal.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *PromptProposalMutation) ResetStatus() {
	m.status = nil
}

// SetAppliedAt sets the "applied_at" field.
func (m *PromptProposalMutation) SetAppliedAt(t time.Time) {
	m.applied_at = &t
}

// AppliedAt returns the value of the "applied_at" field in the mutation.
func (m *PromptProposalMutation) AppliedAt() (r time.Time, exists bool) {
	v := m.applied_at
	if v == nil {
		return
	}
	return *v, true
}

// OldAppliedAt returns the old "applied_at" field's value of the PromptProposal entity.
// If the PromptProposal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromptProposalMutation) OldAppliedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAppliedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAppliedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAppliedAt: %w", err)
	}
	return oldValue.AppliedAt, nil
}

// ClearAppliedAt clears the value of the "applied_at" field.
func (m *PromptProposalMutation) ClearAppliedAt() {
	m.applied_at = nil
	m.clearedFields[promptproposal.FieldAppliedAt] = struct{}{}
}

// AppliedAtCleared returns if the "applied_at" field was cleared in this mutation.
func (m *PromptProposalMutation) AppliedAtCleared() bool {
	_, ok := m.clearedFields[promptproposal.FieldAppliedAt]
	return ok
}

// ResetAppliedAt resets all changes to the "applied_at" field.
func (m *PromptProposalMutation) ResetAppliedAt() {
	m.applied_at = nil
	delete(m.clearedFields, promptproposal.FieldAppliedAt)
}

// SetAppliedBy sets the "applied_by" field.
func (m *PromptProposalMutation) SetAppliedBy(s string) {
	m.applied_by = &s
}

// AppliedBy returns the value of the "applied_by" field in the mutation.
func (m *PromptProposalMutation) AppliedBy() (r string, exists bool) {
	v := m.applied_by
	if v == nil {
		return
	}
	return *v, true
}

// OldAppliedBy returns the old "applied_by" field's value of the PromptProposal entity.
// If the PromptProposal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromptProposalMutation) OldAppliedBy(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAppliedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAppliedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAppliedBy: %w", err)
	}
	return oldValue.AppliedBy, nil
}

// ClearAppliedBy clears the value of the "applied_by" field.
func (m *PromptProposalMutation) ClearAppliedBy() {
	m.applied_by = nil
	m.clearedFields[promptproposal.FieldAppliedBy] = struct{}{}
}

// AppliedByCleared returns if the "applied_by" field was cleared in this mutation.
func (m *PromptProposalMutation) AppliedByCleared() bool {
	_, ok := m.clearedFields[promptproposal.FieldAppliedBy]
	return ok
}

// ResetAppliedBy resets all changes to the "applied_by" field.
func (m *PromptProposalMutation) ResetAppliedBy() {
	m.applied_by = nil
	delete(m.clearedFields, promptproposal.FieldAppliedBy)
}

// SetPromptVersionID sets the "prompt_version_id" field.
func (m *PromptProposalMutation) SetPromptVersionID(s string) {
	m.prompt_version_id = &s
}

// PromptVersionID returns the value of the "prompt_version_id" field in the mutation.
func (m *PromptProposalMutation) PromptVersionID() (r string, exists bool) {
	v := m.prompt_version_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPromptVersionID returns the old "prompt_version_id" field's value of the PromptProposal entity.
// If the PromptProposal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromptProposalMutation) OldPromptVersionID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPromptVersionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPromptVersionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPromptVersionID: %w", err)
	}
	return oldValue.PromptVersionID, nil
}

// ClearPromptVersionID clears the value of the "prompt_version_id" field.
func (m *PromptProposalMutation) ClearPromptVersionID() {
	m.prompt_version_id = nil
	m.clearedFields[promptproposal.FieldPromptVersionID] = struct{}{}
}

// PromptVersionIDCleared returns if the "prompt_version_id" field was cleared in this mutation.
func (m *PromptProposalMutation) PromptVersionIDCleared() bool {
	_, ok := m.clearedFields[promptproposal.FieldPromptVersionID]
	return ok
}

// ResetPromptVersionID resets all changes to the "prompt_version_id" field.
func (m *PromptProposalMutation) ResetPromptVersionID() {
	m.prompt_version_id = nil
	delete(m.clearedFields, promptproposal.FieldPromptVersionID)
}

// SetCreatedAt sets the "created_at" field.
func (m *PromptProposalMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PromptProposalMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the PromptProposal entity.
// If the PromptProposal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromptProposalMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PromptProposalMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearAnalysis clears the "analysis" edge to the PromptAnalysis entity.
func (m *PromptProposalMutation) ClearAnalysis() {
	m.clearedanalysis = true
	m.clearedFields[promptproposal.FieldAnalysisID] = struct{}{}
}

// AnalysisCleared reports if the "analysis" edge to the PromptAnalysis entity was cleared.
func (m *PromptProposalMutation) AnalysisCleared() bool {
	return m.clearedanalysis
}

// AnalysisIDs returns the "analysis" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AnalysisID instead. It exists only for internal usage by the builders.
func (m *PromptProposalMutation) AnalysisIDs() (ids []string) {
	if id := m.analysis; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetAnalysis resets all changes to the "analysis" edge.
func (m *PromptProposalMutation) ResetAnalysis() {
	m.analysis = nil
	m.clearedanalysis = false
}

// Where appends a list predicates to the PromptProposalMutation builder.
func (m *PromptProposalMutation) Where(ps ...predicate.PromptProposal) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PromptProposalMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PromptProposalMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PromptProposal, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PromptProposalMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PromptProposalMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PromptProposal).
func (m *PromptProposalMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PromptProposalMutation) Fields() []string {
	fields := make([]string, 0, 14)
	if m.analysis != nil {
		fields = append(fields, promptproposal.FieldAnalysisID)
	}
	if m.prompt_file != nil {
		fields = append(fields, promptproposal.FieldPromptFile)
	}
	if m.section_name != nil {
		fields = append(fields, promptproposal.FieldSectionName)
	}
	if m.change_type != nil {
		fields = append(fields, promptproposal.FieldChangeType)
	}
	if m.original_text != nil {
		fields = append(fields, promptproposal.FieldOriginalText)
	}
	if m.proposed_text != nil {
		fields = append(fields, promptproposal.FieldProposedText)
	}
	if m.rationale != nil {
		fields = append(fields, promptproposal.FieldRationale)
	}
	if m.evidence != nil {
		fields = append(fields, promptproposal.FieldEvidence)
	}
	if m.confidence != nil {
		fields = append(fields, promptproposal.FieldConfidence)
	}
	if m.status != nil {
		fields = append(fields, promptproposal.FieldStatus)
	}
	if m.applied_at != nil {
		fields = append(fields, promptproposal.FieldAppliedAt)
	}
	if m.applied_by != nil {
		fields = append(fields, promptproposal.FieldAppliedBy)
	}
	if m.prompt_version_id != nil {
		fields = append(fields, promptproposal.FieldPromptVersionID)
	}
	if m.created_at != nil {
		fields = append(fields, promptproposal.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PromptProposalMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case promptproposal.FieldAnalysisID:
		return m.AnalysisID()
	case promptproposal.FieldPromptFile:
		return m.PromptFile()
	case promptproposal.FieldSectionName:
		return m.SectionName()
	case promptproposal.FieldChangeType:
		return m.ChangeType()
	case promptproposal.FieldOriginalText:
		return m.OriginalText()
	case promptproposal.FieldProposedText:
		return m.ProposedText()
	case promptproposal.FieldRationale:
		return m.Rationale()
	case promptproposal.FieldEvidence:
		return m.Evidence()
	case promptproposal.FieldConfidence:
		return m.Confidence()
	case promptproposal.FieldStatus:
		return m.Status()
	case promptproposal.FieldAppliedAt:
		return m.AppliedAt()
	case promptproposal.FieldAppliedBy:
		return m.AppliedBy()
	case promptproposal.FieldPromptVersionID:
		return m.PromptVersionID()
	case promptproposal.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PromptProposalMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case promptproposal.FieldAnalysisID:
		return m.OldAnalysisID(ctx)
	case promptproposal.FieldPromptFile:
		return m.OldPromptFile(ctx)
	case promptproposal.FieldSectionName:
		return m.OldSectionName(ctx)
	case promptproposal.FieldChangeType:
		return m.OldChangeType(ctx)
	case promptproposal.FieldOriginalText:
		return m.OldOriginalText(ctx)
	case promptproposal.FieldProposedText:
		return m.OldProposedText(ctx)
	case promptproposal.FieldRationale:
		return m.OldRationale(ctx)
	case promptproposal.FieldEvidence:
		return m.OldEvidence(ctx)
	case promptproposal.FieldConfidence:
		return m.OldConfidence(ctx)
	case promptproposal.FieldStatus:
		return m.OldStatus(ctx)
	case promptproposal.FieldAppliedAt:
		return m.OldAppliedAt(ctx)
	case promptproposal.FieldAppliedBy:
		return m.OldAppliedBy(ctx)
	case promptproposal.FieldPromptVersionID:
		return m.OldPromptVersionID(ctx)
	case promptproposal.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown PromptProposal field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PromptProposalMutation) SetField(name string, value ent.Value) error {
	switch name {
	case promptproposal.FieldAnalysisID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAnalysisID(v)
		return nil
	case promptproposal.FieldPromptFile:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPromptFile(v)
		return nil
	case promptproposal.FieldSectionName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSectionName(v)
		return nil
	case promptproposal.FieldChangeType:
		v, ok := value.(promptproposal.ChangeType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChangeType(v)
		return nil
	case promptproposal.FieldOriginalText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOriginalText(v)
		return nil
	case promptproposal.FieldProposedText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProposedText(v)
		return nil
	case promptproposal.FieldRationale:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRationale(v)
		return nil
	case promptproposal.FieldEvidence:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEvidence(v)
		return nil
	case promptproposal.FieldConfidence:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	case promptproposal.FieldStatus:
		v, ok := value.(promptproposal.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case promptproposal.FieldAppliedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAppliedAt(v)
		return nil
	case promptproposal.FieldAppliedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAppliedBy(v)
		return nil
	case promptproposal.FieldPromptVersionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPromptVersionID(v)
		return nil
	case promptproposal.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown PromptProposal field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PromptProposalMutation) AddedFields() []string {
	var fields []string
	if m.addconfidence != nil {
		fields = append(fields, promptproposal.FieldConfidence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PromptProposalMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case promptproposal.FieldConfidence:
		return m.AddedConfidence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PromptProposalMutation) AddField(name string, value ent.Value) error {
	switch name {
	case promptproposal.FieldConfidence:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidence(v)
		return nil
	}
	return fmt.Errorf("unknown PromptProposal numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PromptProposalMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(promptproposal.FieldOriginalText) {
		fields = append(fields, promptproposal.FieldOriginalText)
	}
	if m.FieldCleared(promptproposal.FieldEvidence) {
		fields = append(fields, promptproposal.FieldEvidence)
	}
	if m.FieldCleared(promptproposal.FieldAppliedAt) {
		fields = append(fields, promptproposal.FieldAppliedAt)
	}
	if m.FieldCleared(promptproposal.FieldAppliedBy) {
		fields = append(fields, promptproposal.FieldAppliedBy)
	}
	if m.FieldCleared(promptproposal.FieldPromptVersionID) {
		fields = append(fields, promptproposal.FieldPromptVersionID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PromptProposalMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PromptProposalMutation) ClearField(name string) error {
	switch name {
	case promptproposal.FieldOriginalText:
		m.ClearOriginalText()
		return nil
	case promptproposal.FieldEvidence:
		m.ClearEvidence()
		return nil
	case promptproposal.FieldAppliedAt:
		m.ClearAppliedAt()
		return nil
	case promptproposal.FieldAppliedBy:
		m.ClearAppliedBy()
		return nil
	case promptproposal.FieldPromptVersionID:
		m.ClearPromptVersionID()
		return nil
	}
	return fmt.Errorf("unknown PromptProposal nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PromptProposalMutation) ResetField(name string) error {
	switch name {
	case promptproposal.FieldAnalysisID:
		m.ResetAnalysisID()
		return nil
	case promptproposal.FieldPromptFile:
		m.ResetPromptFile()
		return nil
	case promptproposal.FieldSectionName:
		m.ResetSectionName()
		return nil
	case promptproposal.FieldChangeType:
		m.ResetChangeType()
		return nil
	case promptproposal.FieldOriginalText:
		m.ResetOriginalText()
		return nil
	case promptproposal.FieldProposedText:
		m.ResetProposedText()
		return nil
	case promptproposal.FieldRationale:
		m.ResetRationale()
		return nil
	case promptproposal.FieldEvidence:
		m.ResetEvidence()
		return nil
	case promptproposal.FieldConfidence:
		m.ResetConfidence()
		return nil
	case promptproposal.FieldStatus:
		m.ResetStatus()
		return nil
	case promptproposal.FieldAppliedAt:
		m.ResetAppliedAt()
		return nil
	case promptproposal.FieldAppliedBy:
		m.ResetAppliedBy()
		return nil
	case promptproposal.FieldPromptVersionID:
		m.ResetPromptVersionID()
		return nil
	case promptproposal.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown PromptProposal field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PromptProposalMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.analysis != nil {
		edges = append(edges, promptproposal.EdgeAnalysis)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PromptProposalMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case promptproposal.EdgeAnalysis:
		if id := m.analysis; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PromptProposalMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PromptProposalMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PromptProposalMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedanalysis {
		edges = append(edges, promptproposal.EdgeAnalysis)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PromptProposalMutation) EdgeCleared(name string) bool {
	switch name {
	case promptproposal.EdgeAnalysis:
		return m.clearedanalysis
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PromptProposalMutation) ClearEdge(name string) error {
	switch name {
	case promptproposal.EdgeAnalysis:
		m.ClearAnalysis()
		return nil
	}
	return fmt.Errorf("unknown PromptProposal unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PromptProposalMutation) ResetEdge(name string) error {
	switch name {
	case promptproposal.EdgeAnalysis:
		m.ResetAnalysis()
		return nil
	}
	return fmt.Errorf("unknown PromptProposal edge %s", name)
}

// PromptVersionMutation represents an operation that mutates the PromptVersion nodes in the graph.
type PromptVersionMutation struct {
	config
	op            Op
	typ           string
	id            *string
	prompt_file   *string
	version_label *string
	content       *string
	active        *bool
	is_default    *bool
	performance   *map[string]interface{}
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*PromptVersion, error)
	predicates    []predicate.PromptVersion
}

var _ ent.Mutation = (*PromptVersionMutation)(nil)

// promptversionOption allows management of the mutation configuration using functional options.
type promptversionOption func(*PromptVersionMutation)

// newPromptVersionMutation creates new mutation for the PromptVersion entity.
func newPromptVersionMutation(c config, op Op, opts ...promptversionOption) *PromptVersionMutation {
	m := &PromptVersionMutation{
		config:        c,
		op:            op,
		typ:           TypePromptVersion,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPromptVersionID sets the ID field of the mutation.
func withPromptVersionID(id string) promptversionOption {
	return func(m *PromptVersionMutation) {
		var (
			err   error
			once  sync.Once
			value *PromptVersion
		)
		m.oldValue = func(ctx context.Context) (*PromptVersion, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PromptVersion.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPromptVersion sets the old PromptVersion of the mutation.
func withPromptVersion(node *PromptVersion) promptversionOption {
	return func(m *PromptVersionMutation) {
		m.oldValue = func(context.Context) (*PromptVersion, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PromptVersionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PromptVersionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of PromptVersion entities.
func (m *PromptVersionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PromptVersionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PromptVersionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PromptVersion.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetPromptFile sets the "prompt_file" field.
func (m *PromptVersionMutation) SetPromptFile(s string) {
	m.prompt_file = &s
}

// PromptFile returns the value of the "prompt_file" field in the mutation.
func (m *PromptVersionMutation) PromptFile() (r string, exists bool) {
	v := m.prompt_file
	if v == nil {
		return
	}
	return *v, true
}

// OldPromptFile returns the old "prompt_file" field's value of the PromptVersion entity.
// If the PromptVersion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromptVersionMutation) OldPromptFile(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPromptFile is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPromptFile requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPromptFile: %w", err)
	}
	return oldValue.PromptFile, nil
}

// ResetPromptFile resets all changes to the "prompt_file" field.
func (m *PromptVersionMutation) ResetPromptFile() {
	m.prompt_file = nil
}

// SetVersionLabel sets the "version_label" field.
func (m *PromptVersionMutation) SetVersionLabel(s string) {
	m.version_label = &s
}

// VersionLabel returns the value of the "version_label" field in the mutation.
func (m *PromptVersionMutation) VersionLabel() (r string, exists bool) {
	v := m.version_label
	if v == nil {
		return
	}
	return *v, true
}

// OldVersionLabel returns the old "version_label" field's value of the PromptVersion entity.
// If the PromptVersion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromptVersionMutation) OldVersionLabel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersionLabel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersionLabel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersionLabel: %w", err)
	}
	return oldValue.VersionLabel, nil
}

// ResetVersionLabel resets all changes to the "version_label" field.
func (m *PromptVersionMutation) ResetVersionLabel() {
	m.version_label = nil
}

// SetContent sets the "content" field.
func (m *PromptVersionMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *PromptVersionMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the PromptVersion entity.
// If the PromptVersion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromptVersionMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ResetContent resets all changes to the "content" field.
func (m *PromptVersionMutation) ResetContent() {
	m.content = nil
}

// SetActive sets the "active" field.
func (m *PromptVersionMutation) SetActive(b bool) {
	m.active = &b
}

// Active returns the value of the "active" field in the mutation.
func (m *PromptVersionMutation) Active() (r bool, exists bool) {
	v := m.active
	if v == nil {
		return
	}
	return *v, true
}

// OldActive returns the old "active" field's value of the PromptVersion entity.
// If the PromptVersion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromptVersionMutation) OldActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActive: %w", err)
	}
	return oldValue.Active, nil
}

// ResetActive resets all changes to the "active" field.
func (m *PromptVersionMutation) ResetActive() {
	m.active = nil
}

// SetIsDefault sets the "is_default" field.
func (m *PromptVersionMutation) SetIsDefault(b bool) {
	m.is_default = &b
}

// IsDefault returns the value of the "is_default" field in the mutation.
func (m *PromptVersionMutation) IsDefault() (r bool, exists bool) {
	v := m.is_default
	if v == nil {
		return
	}
	return *v, true
}

// OldIsDefault returns the old "is_default" field's value of the PromptVersion entity.
// If the PromptVersion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromptVersionMutation) OldIsDefault(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsDefault is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsDefault requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsDefault: %w", err)
	}
	return oldValue.IsDefault, nil
}

// ResetIsDefault resets all changes to the "is_default" field.
func (m *PromptVersionMutation) ResetIsDefault() {
	m.is_default = nil
}

// SetPerformance sets the "performance" field.
func (m *PromptVersionMutation) SetPerformance(value map[string]interface{}) {
	m.performance = &value
}

// Performance returns the value of the "performance" field in the mutation.
func (m *PromptVersionMutation) Performance() (r map[string]interface{}, exists bool) {
	v := m.performance
	if v == nil {
		return
	}
	return *v, true
}

// OldPerformance returns the old "performance" field's value of the PromptVersion entity.
// If the PromptVersion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromptVersionMutation) OldPerformance(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPerformance is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPerformance requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPerformance: %w", err)
	}
	return oldValue.Performance, nil
}

// ClearPerformance clears the value of the "performance" field.
func (m *PromptVersionMutation) ClearPerformance() {
	m.performance = nil
	m.clearedFields[promptversion.FieldPerformance] = struct{}{}
}

// PerformanceCleared returns if the "performance" field was cleared in this mutation.
func (m *PromptVersionMutation) PerformanceCleared() bool {
	_, ok := m.clearedFields[promptversion.FieldPerformance]
	return ok
}

// ResetPerformance resets all changes to the "performance" field.
func (m *PromptVersionMutation) ResetPerformance() {
	m.performance = nil
	delete(m.clearedFields, promptversion.FieldPerformance)
}

// SetCreatedAt sets the "created_at" field.
func (m *PromptVersionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PromptVersionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the PromptVersion entity.
// If the PromptVersion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromptVersionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PromptVersionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the PromptVersionMutation builder.
func (m *PromptVersionMutation) Where(ps ...predicate.PromptVersion) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PromptVersionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PromptVersionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PromptVersion, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PromptVersionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PromptVersionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PromptVersion).
func (m *PromptVersionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PromptVersionMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.prompt_file != nil {
		fields = append(fields, promptversion.FieldPromptFile)
	}
	if m.version_label != nil {
		fields = append(fields, promptversion.FieldVersionLabel)
	}
	if m.content != nil {
		fields = append(fields, promptversion.FieldContent)
	}
	if m.active != nil {
		fields = append(fields, promptversion.FieldActive)
	}
	if m.is_default != nil {
		fields = append(fields, promptversion.FieldIsDefault)
	}
	if m.performance != nil {
		fields = append(fields, promptversion.FieldPerformance)
	}
	if m.created_at != nil {
		fields = append(fields, promptversion.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PromptVersionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case promptversion.FieldPromptFile:
		return m.PromptFile()
	case promptversion.FieldVersionLabel:
		return m.VersionLabel()
	case promptversion.FieldContent:
		return m.Content()
	case promptversion.FieldActive:
		return m.Active()
	case promptversion.FieldIsDefault:
		return m.IsDefault()
	case promptversion.FieldPerformance:
		return m.Performance()
	case promptversion.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PromptVersionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case promptversion.FieldPromptFile:
		return m.OldPromptFile(ctx)
	case promptversion.FieldVersionLabel:
		return m.OldVersionLabel(ctx)
	case promptversion.FieldContent:
		return m.OldContent(ctx)
	case promptversion.FieldActive:
		return m.OldActive(ctx)
	case promptversion.FieldIsDefault:
		return m.OldIsDefault(ctx)
	case promptversion.FieldPerformance:
		return m.OldPerformance(ctx)
	case promptversion.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown PromptVersion field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PromptVersionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case promptversion.FieldPromptFile:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPromptFile(v)
		return nil
	case promptversion.FieldVersionLabel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersionLabel(v)
		return nil
	case promptversion.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case promptversion.FieldActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActive(v)
		return nil
	case promptversion.FieldIsDefault:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsDefault(v)
		return nil
	case promptversion.FieldPerformance:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPerformance(v)
		return nil
	case promptversion.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown PromptVersion field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PromptVersionMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PromptVersionMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PromptVersionMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown PromptVersion numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PromptVersionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(promptversion.FieldPerformance) {
		fields = append(fields, promptversion.FieldPerformance)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PromptVersionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PromptVersionMutation) ClearField(name string) error {
	switch name {
	case promptversion.FieldPerformance:
		m.ClearPerformance()
		return nil
	}
	return fmt.Errorf("unknown PromptVersion nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PromptVersionMutation) ResetField(name string) error {
	switch name {
	case promptversion.FieldPromptFile:
		m.ResetPromptFile()
		return nil
	case promptversion.FieldVersionLabel:
		m.ResetVersionLabel()
		return nil
	case promptversion.FieldContent:
		m.ResetContent()
		return nil
	case promptversion.FieldActive:
		m.ResetActive()
		return nil
	case promptversion.FieldIsDefault:
		m.ResetIsDefault()
		return nil
	case promptversion.FieldPerformance:
		m.ResetPerformance()
		return nil
	case promptversion.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown PromptVersion field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PromptVersionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PromptVersionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PromptVersionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PromptVersionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PromptVersionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PromptVersionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PromptVersionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown PromptVersion unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PromptVersionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown PromptVersion edge %s", name)
}

// QualityCheckMutation represents an operation that mutates the QualityCheck nodes in the graph.
type QualityCheckMutation struct {
	config
	op                        Op
	typ                       string
	id                        *string
	kind                      *qualitycheck.Kind
	status                    *qualitycheck.Status
	overall_rating            *int
	addoverall_rating         *int
	metrics                   *map[string]interface{}
	critical_issues           *[]string
	appendcritical_issues     []string
	warnings                  *[]string
	appendwarnings            []string
	review_text               *string
	prompt_improvements       *[]string
	appendprompt_improvements []string
	created_at                *time.Time
	clearedFields             map[string]struct{}
	session                   *string
	clearedsession            bool
	done                      bool
	oldValue                  func(context.Context) (*QualityCheck, error)
	predicates                []predicate.QualityCheck
}

var _ ent.Mutation = (*QualityCheckMutation)(nil)

// qualitycheckOption allows management of the mutation configuration using functional options.
type qualitycheckOption func(*QualityCheckMutation)

// newQualityCheckMutation creates new mutation for the QualityCheck entity.
func newQualityCheckMutation(c config, op Op, opts ...qualitycheckOption) *QualityCheckMutation {
	m := &QualityCheckMutation{
		config:        c,
		op:            op,
		typ:           TypeQualityCheck,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withQualityCheckID sets the ID field of the mutation.
func withQualityCheckID(id string) qualitycheckOption {
	return func(m *QualityCheckMutation) {
		var (
			err   error
			once  sync.Once
			value *QualityCheck
		)
		m.oldValue = func(ctx context.Context) (*QualityCheck, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().QualityCheck.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withQualityCheck sets the old QualityCheck of the mutation.
func withQualityCheck(node *QualityCheck) qualitycheckOption {
	return func(m *QualityCheckMutation) {
		m.oldValue = func(context.Context) (*QualityCheck, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m QualityCheckMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m QualityCheckMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of QualityCheck entities.
func (m *QualityCheckMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *QualityCheckMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *QualityCheckMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().QualityCheck.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *QualityCheckMutation) SetSessionID(s string) {
	m.session = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *QualityCheckMutation) SessionID() (r string, exists bool) {
	v := m.session
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the QualityCheck entity.
// If the QualityCheck object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QualityCheckMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *QualityCheckMutation) ResetSessionID() {
	m.session = nil
}

// SetKind sets the "kind" field.
func (m *QualityCheckMutation) SetKind(q qualitycheck.Kind) {
	m.kind = &q
}

// Kind returns the value of the "kind" field in the mutation.
func (m *QualityCheckMutation) Kind() (r qualitycheck.Kind, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the QualityCheck entity.
// If the QualityCheck object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QualityCheckMutation) OldKind(ctx context.Context) (v qualitycheck.Kind, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKind: %w", err)
	}
	return oldValue.Kind, nil
}

// ResetKind resets all changes to the "kind" field.
func (m *QualityCheckMutation) ResetKind() {
	m.kind = nil
}

// SetStatus sets the "status" field.
func (m *QualityCheckMutation) SetStatus(q qualitycheck.Status) {
	m.status = &q
}

// Status returns the value of the "status" field in the mutation.
func (m *QualityCheckMutation) Status() (r qualitycheck.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the QualityCheck entity.
// If the QualityCheck object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QualityCheckMutation) OldStatus(ctx context.Context) (v qualitycheck.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *QualityCheckMutation) ResetStatus() {
	m.status = nil
}

// SetOverallRating sets the "overall_rating" field.
func (m *QualityCheckMutation) SetOverallRating(i int) {
	m.overall_rating = &i
	m.addoverall_rating = nil
}

// OverallRating returns the value of the "overall_rating" field in the mutation.
func (m *QualityCheckMutation) OverallRating() (r int, exists bool) {
	v := m.overall_rating
	if v == nil {
		return
	}
	return *v, true
}

// OldOverallRating returns the old "overall_rating" field's value of the QualityCheck entity.
// If the QualityCheck object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QualityCheckMutation) OldOverallRating(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOverallRating is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOverallRating requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOverallRating: %w", err)
	}
	return oldValue.OverallRating, nil
}

// AddOverallRating adds i to the "overall_rating" field.
func (m *QualityCheckMutation) AddOverallRating(i int) {
	if m.addoverall_rating != nil {
		*m.addoverall_rating += i
	} else {
		m.addoverall_rating = &i
	}
}

// AddedOverallRating returns the value that was added to the "overall_rating" field in this mutation.
func (m *QualityCheckMutation) AddedOverallRating() (r int, exists bool) {
	v := m.addoverall_rating
	if v == nil {
		return
	}
	return *v, true
}

// ResetOverallRating resets all changes to the "overall_rating" field.
func (m *QualityCheckMutation) ResetOverallRating() {
	m.overall_rating = nil
	m.addoverall_rating = nil
}

// SetMetrics sets the "metrics" field.
func (m *QualityCheckMutation) SetMetrics(value map[string]interface{}) {
	m.metrics = &value
}

// Metrics returns the value of the "metrics" field in the mutation.
func (m *QualityCheckMutation) Metrics() (r map[string]interface{}, exists bool) {
	v := m.metrics
	if v == nil {
		return
	}
	return *v, true
}

// OldMetrics returns the old "metrics" field's value of the QualityCheck entity.
// If the QualityCheck object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QualityCheckMutation) OldMetrics(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetrics is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetrics requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetrics: %w", err)
	}
	return oldValue.Metrics, nil
}

// ClearMetrics clears the value of the "metrics" field.
func (m *QualityCheckMutation) ClearMetrics() {
	m.metrics = nil
	m.clearedFields[qualitycheck.FieldMetrics] = struct{}{}
}

// MetricsCleared returns if the "metrics" field was cleared in this mutation.
func (m *QualityCheckMutation) MetricsCleared() bool {
	_, ok := m.clearedFields[qualitycheck.FieldMetrics]
	return ok
}

// ResetMetrics resets all changes to the "metrics" field.
func (m *QualityCheckMutation) ResetMetrics() {
	m.metrics = nil
	delete(m.clearedFields, qualitycheck.FieldMetrics)
}

// SetCriticalIssues sets the "critical_issues" field.
func (m *QualityCheckMutation) SetCriticalIssues(s []string) {
	m.critical_issues = &s
	m.appendcritical_issues = nil
}

// CriticalIssues returns the value of the "critical_issues" field in the mutation.
func (m *QualityCheckMutation) CriticalIssues() (r []string, exists bool) {
	v := m.critical_issues
	if v == nil {
		return
	}
	return *v, true
}

// OldCriticalIssues returns the old "critical_issues" field's value of the QualityCheck entity.
// If the QualityCheck object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QualityCheckMutation) OldCriticalIssues(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCriticalIssues is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCriticalIssues requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCriticalIssues: %w", err)
	}
	return oldValue.CriticalIssues, nil
}

// AppendCriticalIssues adds s to the "critical_issues" field.
func (m *QualityCheckMutation) AppendCriticalIssues(s []string) {
	m.appendcritical_issues = append(m.appendcritical_issues, s...)
}

// AppendedCriticalIssues returns the list of values that were appended to the "critical_issues" field in this mutation.
func (m *QualityCheckMutation) AppendedCriticalIssues() ([]string, bool) {
	if len(m.appendcritical_issues) == 0 {
		return nil, false
	}
	return m.appendcritical_issues, true
}

// ClearCriticalIssues clears the value of the "critical_issues" field.
func (m *QualityCheckMutation) ClearCriticalIssues() {
	m.critical_issues = nil
	m.appendcritical_issues = nil
	m.clearedFields[qualitycheck.FieldCriticalIssues] = struct{}{}
}

// CriticalIssuesCleared returns if the "critical_issues" field was cleared in this mutation.
func (m *QualityCheckMutation) CriticalIssuesCleared() bool {
	_, ok := m.clearedFields[qualitycheck.FieldCriticalIssues]
	return ok
}

// ResetCriticalIssues resets all changes to the "critical_issues" field.
func (m *QualityCheckMutation) ResetCriticalIssues() {
	m.critical_issues = nil
	m.appendcritical_issues = nil
	delete(m.clearedFields, qualitycheck.FieldCriticalIssues)
}

// SetWarnings sets the "warnings" field.
func (m *QualityCheckMutation) SetWarnings(s []string) {
	m.warnings = &s
	m.appendwarnings = nil
}

// Warnings returns the value of the "warnings" field in the mutation.
func (m *QualityCheckMutation) Warnings() (r []string, exists bool) {
	v := m.warnings
	if v == nil {
		return
	}
	return *v, true
}

// OldWarnings returns the old "warnings" field's value of the QualityCheck entity.
// If the QualityCheck object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QualityCheckMutation) OldWarnings(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWarnings is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWarnings requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWarnings: %w", err)
	}
	return oldValue.Warnings, nil
}

// AppendWarnings adds s to the "warnings" field.
func (m *QualityCheckMutation) AppendWarnings(s []string) {
	m.appendwarnings = append(m.appendwarnings, s...)
}

// AppendedWarnings returns the list of values that were appended to the "warnings" field in this mutation.
func (m *QualityCheckMutation) AppendedWarnings() ([]string, bool) {
	if len(m.appendwarnings) == 0 {
		return nil, false
	}
	return m.appendwarnings, true
}

// ClearWarnings clears the value of the "warnings" field.
func (m *QualityCheckMutation) ClearWarnings() {
	m.warnings = nil
	m.appendwarnings = nil
	m.clearedFields[qualitycheck.FieldWarnings] = struct{}{}
}

// WarningsCleared returns if the "warnings" field was cleared in this mutation.
func (m *QualityCheckMutation) WarningsCleared() bool {
	_, ok := m.clearedFields[qualitycheck.FieldWarnings]
	return ok
}

// ResetWarnings resets all changes to the "warnings" field.
func (m *QualityCheckMutation) ResetWarnings() {
	m.warnings = nil
	m.appendwarnings = nil
	delete(m.clearedFields, qualitycheck.FieldWarnings)
}

// SetReviewText sets the "review_text" field.
func (m *QualityCheckMutation) SetReviewText(s string) {
	m.review_text = &s
}

// ReviewText returns the value of the "review_text" field in the mutation.
func (m *QualityCheckMutation) ReviewText() (r string, exists bool) {
	v := m.review_text
	if v == nil {
		return
	}
	return *v, true
}

// OldReviewText returns the old "review_text" field's value of the QualityCheck entity.
// If the QualityCheck object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QualityCheckMutation) OldReviewText(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReviewText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReviewText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReviewText: %w", err)
	}
	return oldValue.ReviewText, nil
}

// ClearReviewText clears the value of the "review_text" field.
func (m *QualityCheckMutation) ClearReviewText() {
	m.review_text = nil
	m.clearedFields[qualitycheck.FieldReviewText] = struct{}{}
}

// ReviewTextCleared returns if the "review_text" field was cleared in this mutation.
func (m *QualityCheckMutation) ReviewTextCleared() bool {
	_, ok := m.clearedFields[qualitycheck.FieldReviewText]
	return ok
}

// ResetReviewText resets all changes to the "review_text" field.
func (m *QualityCheckMutation) ResetReviewText() {
	m.review_text = nil
	delete(m.clearedFields, qualitycheck.FieldReviewText)
}

// SetPromptImprovements sets the "prompt_improvements" field.
func (m *QualityCheckMutation) SetPromptImprovements(s []string) {
	m.prompt_improvements = &s
	m.appendprompt_improvements = nil
}

// PromptImprovements returns the value of the "prompt_improvements" field in the mutation.
func (m *QualityCheckMutation) PromptImprovements() (r []string, exists bool) {
	v := m.prompt_improvements
	if v == nil {
		return
	}
	return *v, true
}

// OldPromptImprovements returns the old "prompt_improvements" field's value of the QualityCheck entity.
// If the QualityCheck object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QualityCheckMutation) OldPromptImprovements(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPromptImprovements is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPromptImprovements requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPromptImprovements: %w", err)
	}
	return oldValue.PromptImprovements, nil
}

// AppendPromptImprovements adds s to the "prompt_improvements" field.
func (m *QualityCheckMutation) AppendPromptImprovements(s []string) {
	m.appendprompt_improvements = append(m.appendprompt_improvements, s...)
}

// AppendedPromptImprovements returns the list of values that were appended to the "prompt_improvements" field in this mutation.
func (m *QualityCheckMutation) AppendedPromptImprovements() ([]string, bool) {
	if len(m.appendprompt_improvements) == 0 {
		return nil, false
	}
	return m.appendprompt_improvements, true
}

// ClearPromptImprovements clears the value of the "prompt_improvements" field.
func (m *QualityCheckMutation) ClearPromptImprovements() {
	m.prompt_improvements = nil
	m.appendprompt_improvements = nil
	m.clearedFields[qualitycheck.FieldPromptImprovements] = struct{}{}
}

// PromptImprovementsCleared returns if the "prompt_improvements" field was cleared in this mutation.
func (m *QualityCheckMutation) PromptImprovementsCleared() bool {
	_, ok := m.clearedFields[qualitycheck.FieldPromptImprovements]
	return ok
}

// ResetPromptImprovements resets all changes to the "prompt_improvements" field.
func (m *QualityCheckMutation) ResetPromptImprovements() {
	m.prompt_improvements = nil
	m.appendprompt_improvements = nil
	delete(m.clearedFields, qualitycheck.FieldPromptImprovements)
}

// SetCreatedAt sets the "created_at" field.
func (m *QualityCheckMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *QualityCheckMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the QualityCheck entity.
// If the QualityCheck object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QualityCheckMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *QualityCheckMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearSession clears the "session" edge to the AgentSession entity.
func (m *QualityCheckMutation) ClearSession() {
	m.clearedsession = true
	m.clearedFields[qualitycheck.FieldSessionID] = struct{}{}
}

// SessionCleared reports if the "session" edge to the AgentSession entity was cleared.
func (m *QualityCheckMutation) SessionCleared() bool {
	return m.clearedsession
}

// SessionIDs returns the "session" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SessionID instead. It exists only for internal usage by the builders.
func (m *QualityCheckMutation) SessionIDs() (ids []string) {
	if id := m.session; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSession resets all changes to the "session" edge.
func (m *QualityCheckMutation) ResetSession() {
	m.session = nil
	m.clearedsession = false
}

// Where appends a list predicates to the QualityCheckMutation builder.
func (m *QualityCheckMutation) Where(ps ...predicate.QualityCheck) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the QualityCheckMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *QualityCheckMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.QualityCheck, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *QualityCheckMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *QualityCheckMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (QualityCheck).
func (m *QualityCheckMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *QualityCheckMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.session != nil {
		fields = append(fields, qualitycheck.FieldSessionID)
	}
	if m.kind != nil {
		fields = append(fields, qualitycheck.FieldKind)
	}
	if m.status != nil {
		fields = append(fields, qualitycheck.FieldStatus)
	}
	if m.overall_rating != nil {
		fields = append(fields, qualitycheck.FieldOverallRating)
	}
	if m.metrics != nil {
		fields = append(fields, qualitycheck.FieldMetrics)
	}
	if m.critical_issues != nil {
		fields = append(fields, qualitycheck.FieldCriticalIssues)
	}
	if m.warnings != nil {
		fields = append(fields, qualitycheck.FieldWarnings)
	}
	if m.review_text != nil {
		fields = append(fields, qualitycheck.FieldReviewText)
	}
	if m.prompt_improvements != nil {
		fields = append(fields, qualitycheck.FieldPromptImprovements)
	}
	if m.created_at != nil {
		fields = append(fields, qualitycheck.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *QualityCheckMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case qualitycheck.FieldSessionID:
		return m.SessionID()
	case qualitycheck.FieldKind:
		return m.Kind()
	case qualitycheck.FieldStatus:
		return m.Status()
	case qualitycheck.FieldOverallRating:
		return m.OverallRating()
	case qualitycheck.FieldMetrics:
		return m.Metrics()
	case qualitycheck.FieldCriticalIssues:
		return m.CriticalIssues()
	case qualitycheck.FieldWarnings:
		return m.Warnings()
	case qualitycheck.FieldReviewText:
		return m.ReviewText()
	case qualitycheck.FieldPromptImprovements:
		return m.PromptImprovements()
	case qualitycheck.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *QualityCheckMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case qualitycheck.FieldSessionID:
		return m.OldSessionID(ctx)
	case qualitycheck.FieldKind:
		return m.OldKind(ctx)
	case qualitycheck.FieldStatus:
		return m.OldStatus(ctx)
	case qualitycheck.FieldOverallRating:
		return m.OldOverallRating(ctx)
	case qualitycheck.FieldMetrics:
		return m.OldMetrics(ctx)
	case qualitycheck.FieldCriticalIssues:
		return m.OldCriticalIssues(ctx)
	case qualitycheck.FieldWarnings:
		return m.OldWarnings(ctx)
	case qualitycheck.FieldReviewText:
		return m.OldReviewText(ctx)
	case qualitycheck.FieldPromptImprovements:
		return m.OldPromptImprovements(ctx)
	case qualitycheck.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown QualityCheck field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QualityCheckMutation) SetField(name string, value ent.Value) error {
	switch name {
	case qualitycheck.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case qualitycheck.FieldKind:
		v, ok := value.(qualitycheck.Kind)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	case qualitycheck.FieldStatus:
		v, ok := value.(qualitycheck.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case qualitycheck.FieldOverallRating:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOverallRating(v)
		return nil
	case qualitycheck.FieldMetrics:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetrics(v)
		return nil
	case qualitycheck.FieldCriticalIssues:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCriticalIssues(v)
		return nil
	case qualitycheck.FieldWarnings:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWarnings(v)
		return nil
	case qualitycheck.FieldReviewText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReviewText(v)
		return nil
	case qualitycheck.FieldPromptImprovements:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPromptImprovements(v)
		return nil
	case qualitycheck.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown QualityCheck field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *QualityCheckMutation) AddedFields() []string {
	var fields []string
	if m.addoverall_rating != nil {
		fields = append(fields, qualitycheck.FieldOverallRating)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *QualityCheckMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case qualitycheck.FieldOverallRating:
		return m.AddedOverallRating()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QualityCheckMutation) AddField(name string, value ent.Value) error {
	switch name {
	case qualitycheck.FieldOverallRating:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOverallRating(v)
		return nil
	}
	return fmt.Errorf("unknown QualityCheck numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *QualityCheckMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(qualitycheck.FieldMetrics) {
		fields = append(fields, qualitycheck.FieldMetrics)
	}
	if m.FieldCleared(qualitycheck.FieldCriticalIssues) {
		fields = append(fields, qualitycheck.FieldCriticalIssues)
	}
	if m.FieldCleared(qualitycheck.FieldWarnings) {
		fields = append(fields, qualitycheck.FieldWarnings)
	}
	if m.FieldCleared(qualitycheck.FieldReviewText) {
		fields = append(fields, qualitycheck.FieldReviewText)
	}
	if m.FieldCleared(qualitycheck.FieldPromptImprovements) {
		fields = append(fields, qualitycheck.FieldPromptImprovements)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *QualityCheckMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *QualityCheckMutation) ClearField(name string) error {
	switch name {
	case qualitycheck.FieldMetrics:
		m.ClearMetrics()
		return nil
	case qualitycheck.FieldCriticalIssues:
		m.ClearCriticalIssues()
		return nil
	case qualitycheck.FieldWarnings:
		m.ClearWarnings()
		return nil
	case qualitycheck.FieldReviewText:
		m.ClearReviewText()
		return nil
	case qualitycheck.FieldPromptImprovements:
		m.ClearPromptImprovements()
		return nil
	}
	return fmt.Errorf("unknown QualityCheck nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *QualityCheckMutation) ResetField(name string) error {
	switch name {
	case qualitycheck.FieldSessionID:
		m.ResetSessionID()
		return nil
	case qualitycheck.FieldKind:
		m.ResetKind()
		return nil
	case qualitycheck.FieldStatus:
		m.ResetStatus()
		return nil
	case qualitycheck.FieldOverallRating:
		m.ResetOverallRating()
		return nil
	case qualitycheck.FieldMetrics:
		m.ResetMetrics()
		return nil
	case qualitycheck.FieldCriticalIssues:
		m.ResetCriticalIssues()
		return nil
	case qualitycheck.FieldWarnings:
		m.ResetWarnings()
		return nil
	case qualitycheck.FieldReviewText:
		m.ResetReviewText()
		return nil
	case qualitycheck.FieldPromptImprovements:
		m.ResetPromptImprovements()
		return nil
	case qualitycheck.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown QualityCheck field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *QualityCheckMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.session != nil {
		edges = append(edges, qualitycheck.EdgeSession)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *QualityCheckMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case qualitycheck.EdgeSession:
		if id := m.session; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *QualityCheckMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *QualityCheckMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *QualityCheckMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedsession {
		edges = append(edges, qualitycheck.EdgeSession)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *QualityCheckMutation) EdgeCleared(name string) bool {
	switch name {
	case qualitycheck.EdgeSession:
		return m.clearedsession
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *QualityCheckMutation) ClearEdge(name string) error {
	switch name {
	case qualitycheck.EdgeSession:
		m.ClearSession()
		return nil
	}
	return fmt.Errorf("unknown QualityCheck unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *QualityCheckMutation) ResetEdge(name string) error {
	switch name {
	case qualitycheck.EdgeSession:
		m.ResetSession()
		return nil
	}
	return fmt.Errorf("unknown QualityCheck edge %s", name)
}

// TaskMutation represents an operation that mutates the Task nodes in the graph.
type TaskMutation struct {
	config
	op             Op
	typ            string
	id             *string
	description    *string
	action         *string
	status         *task.Status
	sort_order     *int
	addsort_order  *int
	created_at     *time.Time
	updated_at     *time.Time
	clearedFields  map[string]struct{}
	epic           *string
	clearedepic    bool
	project        *string
	clearedproject bool
	tests          map[string]struct{}
	removedtests   map[string]struct{}
	clearedtests   bool
	done           bool
	oldValue       func(context.Context) (*Task, error)
	predicates     []predicate.Task
}

var _ ent.Mutation = (*TaskMutation)(nil)

// taskOption allows management of the mutation configuration using functional options.
type taskOption func(*TaskMutation)

// newTaskMutation creates new mutation for the Task entity.
func newTaskMutation(c config, op Op, opts ...taskOption) *TaskMutation {
	m := &TaskMutation{
		config:        c,
		op:            op,
		typ:           TypeTask,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTaskID sets the ID field of the mutation.
func withTaskID(id string) taskOption {
	return func(m *TaskMutation) {
		var (
			err   error
			once  sync.Once
			value *Task
		)
		m.oldValue = func(ctx context.Context) (*Task, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Task.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTask sets the old Task of the mutation.
func withTask(node *Task) taskOption {
	return func(m *TaskMutation) {
		m.oldValue = func(context.Context) (*Task, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TaskMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TaskMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Task entities.
func (m *TaskMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TaskMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TaskMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Task.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetEpicID sets the "epic_id" field.
func (m *TaskMutation) SetEpicID(s string) {
	m.epic = &s
}

// EpicID returns the value of the "epic_id" field in the mutation.
func (m *TaskMutation) EpicID() (r string, exists bool) {
	v := m.epic
	if v == nil {
		return
	}
	return *v, true
}

// OldEpicID returns the old "epic_id" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldEpicID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEpicID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEpicID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEpicID: %w", err)
	}
	return oldValue.EpicID, nil
}

// ResetEpicID resets all changes to the "epic_id" field.
func (m *TaskMutation) ResetEpicID() {
	m.epic = nil
}

// SetProjectID sets the "project_id" field.
func (m *TaskMutation) SetProjectID(s string) {
	m.project = &s
}

// ProjectID returns the value of the "project_id" field in the mutation.
func (m *TaskMutation) ProjectID() (r string, exists bool) {
	v := m.project
	if v == nil {
		return
	}
	return *v, true
}

// OldProjectID returns the old "project_id" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldProjectID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProjectID: %w", err)
	}
	return oldValue.ProjectID, nil
}

// ResetProjectID resets all changes to the "project_id" field.
func (m *TaskMutation) ResetProjectID() {
	m.project = nil
}

// SetDescription sets the "description" field.
func (m *TaskMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *TaskMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ResetDescription resets all changes to the "description" field.
func (m *TaskMutation) ResetDescription() {
	m.description = nil
}

// SetAction sets the "action" field.
func (m *TaskMutation) SetAction(s string) {
	m.action = &s
}

// Action returns the value of the "action" field in the mutation.
func (m *TaskMutation) Action() (r string, exists bool) {
	v := m.action
	if v == nil {
		return
	}
	return *v, true
}

// OldAction returns the old "action" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldAction(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAction is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAction requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAction: %w", err)
	}
	return oldValue.Action, nil
}

// ClearAction clears the value of the "action" field.
func (m *TaskMutation) ClearAction() {
	m.action = nil
	m.clearedFields[task.FieldAction] = struct{}{}
}

// ActionCleared returns if the "action" field was cleared in this mutation.
func (m *TaskMutation) ActionCleared() bool {
	_, ok := m.clearedFields[task.FieldAction]
	return ok
}

// ResetAction resets all changes to the "action" field.
func (m *TaskMutation) ResetAction() {
	m.action = nil
	delete(m.clearedFields, task.FieldAction)
}

// SetStatus sets the "status" field.
func (m *TaskMutation) SetStatus(t task.Status) {
	m.status = &t
}

// Status returns the value of the "status" field in the mutation.
func (m *TaskMutation) Status() (r task.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldStatus(ctx context.Context) (v task.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *TaskMutation) ResetStatus() {
	m.status = nil
}

// SetSortOrder sets the "sort_order" field.
func (m *TaskMutation) SetSortOrder(i int) {
	m.sort_order = &i
	m.addsort_order = nil
}

// SortOrder returns the value of the "sort_order" field in the mutation.
func (m *TaskMutation) SortOrder() (r int, exists bool) {
	v := m.sort_order
	if v == nil {
		return
	}
	return *v, true
}

// OldSortOrder returns the old "sort_order" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldSortOrder(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSortOrder is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSortOrder requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSortOrder: %w", err)
	}
	return oldValue.SortOrder, nil
}

// AddSortOrder adds i to the "sort_order" field.
func (m *TaskMutation) AddSortOrder(i int) {
	if m.addsort_order != nil {
		*m.addsort_order += i
	} else {
		m.addsort_order = &i
	}
}

// AddedSortOrder returns the value that was added to the "sort_order" field in this mutation.
func (m *TaskMutation) AddedSortOrder() (r int, exists bool) {
	v := m.addsort_order
	if v == nil {
		return
	}
	return *v, true
}

// ResetSortOrder resets all changes to the "sort_order" field.
func (m *TaskMutation) ResetSortOrder() {
	m.sort_order = nil
	m.addsort_order = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *TaskMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TaskMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TaskMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *TaskMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *TaskMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *TaskMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearEpic clears the "epic" edge to the Epic entity.
func (m *TaskMutation) ClearEpic() {
	m.clearedepic = true
	m.clearedFields[task.FieldEpicID] = struct{}{}
}

// EpicCleared reports if the "epic" edge to the Epic entity was cleared.
func (m *TaskMutation) EpicCleared() bool {
	return m.clearedepic
}

// EpicIDs returns the "epic" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// EpicID instead. It exists only for internal usage by the builders.
func (m *TaskMutation) EpicIDs() (ids []string) {
	if id := m.epic; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetEpic resets all changes to the "epic" edge.
func (m *TaskMutation) ResetEpic() {
	m.epic = nil
	m.clearedepic = false
}

// ClearProject clears the "project" edge to the Project entity.
func (m *TaskMutation) ClearProject() {
	m.clearedproject = true
	m.clearedFields[task.FieldProjectID] = struct{}{}
}

// ProjectCleared reports if the "project" edge to the Project entity was cleared.
func (m *TaskMutation) ProjectCleared() bool {
	return m.clearedproject
}

// ProjectIDs returns the "project" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ProjectID instead. It exists only for internal usage by the builders.
func (m *TaskMutation) ProjectIDs() (ids []string) {
	if id := m.project; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetProject resets all changes to the "project" edge.
func (m *TaskMutation) ResetProject() {
	m.project = nil
	m.clearedproject = false
}

// AddTestIDs adds the "tests" edge to the TestCase entity by ids.
func (m *TaskMutation) AddTestIDs(ids ...string) {
	if m.tests == nil {
		m.tests = make(map[string]struct{})
	}
	for i := range ids {
		m.tests[ids[i]] = struct{}{}
	}
}

// ClearTests clears the "tests" edge to the TestCase entity.
func (m *TaskMutation) ClearTests() {
	m.clearedtests = true
}

// TestsCleared reports if the "tests" edge to the TestCase entity was cleared.
func (m *TaskMutation) TestsCleared() bool {
	return m.clearedtests
}

// RemoveTestIDs removes the "tests" edge to the TestCase entity by IDs.
func (m *TaskMutation) RemoveTestIDs(ids ...string) {
	if m.removedtests == nil {
		m.removedtests = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.tests, ids[i])
		m.removedtests[ids[i]] = struct{}{}
	}
}

// RemovedTests returns the removed IDs of the "tests" edge to the TestCase entity.
func (m *TaskMutation) RemovedTestsIDs() (ids []string) {
	for id := range m.removedtests {
		ids = append(ids, id)
	}
	return
}

// TestsIDs returns the "tests" edge IDs in the mutation.
func (m *TaskMutation) TestsIDs() (ids []string) {
	for id := range m.tests {
		ids = append(ids, id)
	}
	return
}

// ResetTests resets all changes to the "tests" edge.
func (m *TaskMutation) ResetTests() {
	m.tests = nil
	m.clearedtests = false
	m.removedtests = nil
}

// Where appends a list predicates to the TaskMutation builder.
func (m *TaskMutation) Where(ps ...predicate.Task) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TaskMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TaskMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Task, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TaskMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TaskMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Task).
func (m *TaskMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TaskMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.epic != nil {
		fields = append(fields, task.FieldEpicID)
	}
	if m.project != nil {
		fields = append(fields, task.FieldProjectID)
	}
	if m.description != nil {
		fields = append(fields, task.FieldDescription)
	}
	if m.action != nil {
		fields = append(fields, task.FieldAction)
	}
	if m.status != nil {
		fields = append(fields, task.FieldStatus)
	}
	if m.sort_order != nil {
		fields = append(fields, task.FieldSortOrder)
	}
	if m.created_at != nil {
		fields = append(fields, task.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, task.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TaskMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case task.FieldEpicID:
		return m.EpicID()
	case task.FieldProjectID:
		return m.ProjectID()
	case task.FieldDescription:
		return m.Description()
	case task.FieldAction:
		return m.Action()
	case task.FieldStatus:
		return m.Status()
	case task.FieldSortOrder:
		return m.SortOrder()
	case task.FieldCreatedAt:
		return m.CreatedAt()
	case task.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TaskMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case task.FieldEpicID:
		return m.OldEpicID(ctx)
	case task.FieldProjectID:
		return m.OldProjectID(ctx)
	case task.FieldDescription:
		return m.OldDescription(ctx)
	case task.FieldAction:
		return m.OldAction(ctx)
	case task.FieldStatus:
		return m.OldStatus(ctx)
	case task.FieldSortOrder:
		return m.OldSortOrder(ctx)
	case task.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case task.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Task field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskMutation) SetField(name string, value ent.Value) error {
	switch name {
	case task.FieldEpicID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEpicID(v)
		return nil
	case task.FieldProjectID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProjectID(v)
		return nil
	case task.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case task.FieldAction:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAction(v)
		return nil
	case task.FieldStatus:
		v, ok := value.(task.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case task.FieldSortOrder:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSortOrder(v)
		return nil
	case task.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case task.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Task field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TaskMutation) AddedFields() []string {
	var fields []string
	if m.addsort_order != nil {
		fields = append(fields, task.FieldSortOrder)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TaskMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case task.FieldSortOrder:
		return m.AddedSortOrder()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskMutation) AddField(name string, value ent.Value) error {
	switch name {
	case task.FieldSortOrder:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSortOrder(v)
		return nil
	}
	return fmt.Errorf("unknown Task numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TaskMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(task.FieldAction) {
		fields = append(fields, task.FieldAction)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TaskMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TaskMutation) ClearField(name string) error {
	switch name {
	case task.FieldAction:
		m.ClearAction()
		return nil
	}
	return fmt.Errorf("unknown Task nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TaskMutation) ResetField(name string) error {
	switch name {
	case task.FieldEpicID:
		m.ResetEpicID()
		return nil
	case task.FieldProjectID:
		m.ResetProjectID()
		return nil
	case task.FieldDescription:
		m.ResetDescription()
		return nil
	case task.FieldAction:
		m.ResetAction()
		return nil
	case task.FieldStatus:
		m.ResetStatus()
		return nil
	case task.FieldSortOrder:
		m.ResetSortOrder()
		return nil
	case task.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case task.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Task field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TaskMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.epic != nil {
		edges = append(edges, task.EdgeEpic)
	}
	if m.project != nil {
		edges = append(edges, task.EdgeProject)
	}
	if m.tests != nil {
		edges = append(edges, task.EdgeTests)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TaskMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case task.EdgeEpic:
		if id := m.epic; id != nil {
			return []ent.Value{*id}
		}
	case task.EdgeProject:
		if id := m.project; id != nil {
			return []ent.Value{*id}
		}
	case task.EdgeTests:
		ids := make([]ent.Value, 0, len(m.tests))
		for id := range m.tests {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TaskMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedtests != nil {
		edges = append(edges, task.EdgeTests)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TaskMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case task.EdgeTests:
		ids := make([]ent.Value, 0, len(m.removedtests))
		for id := range m.removedtests {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TaskMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedepic {
		edges = append(edges, task.EdgeEpic)
	}
	if m.clearedproject {
		edges = append(edges, task.EdgeProject)
	}
	if m.clearedtests {
		edges = append(edges, task.EdgeTests)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TaskMutation) EdgeCleared(name string) bool {
	switch name {
	case task.EdgeEpic:
		return m.clearedepic
	case task.EdgeProject:
		return m.clearedproject
	case task.EdgeTests:
		return m.clearedtests
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TaskMutation) ClearEdge(name string) error {
	switch name {
	case task.EdgeEpic:
		m.ClearEpic()
		return nil
	case task.EdgeProject:
		m.ClearProject()
		return nil
	}
	return fmt.Errorf("unknown Task unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TaskMutation) ResetEdge(name string) error {
	switch name {
	case task.EdgeEpic:
		m.ResetEpic()
		return nil
	case task.EdgeProject:
		m.ResetProject()
		return nil
	case task.EdgeTests:
		m.ResetTests()
		return nil
	}
	return fmt.Errorf("unknown Task edge %s", name)
}

// TestCaseMutation represents an operation that mutates the TestCase nodes in the graph.
type TestCaseMutation struct {
	config
	op            Op
	typ           string
	id            *string
	description   *string
	status        *testcase.Status
	last_result   *string
	created_at    *time.Time
	updated_at    *time.Time
	clearedFields map[string]struct{}
	task          *string
	clearedtask   bool
	done          bool
	oldValue      func(context.Context) (*TestCase, error)
	predicates    []predicate.TestCase
}

var _ ent.Mutation = (*TestCaseMutation)(nil)

// testcaseOption allows management of the mutation configuration using functional options.
type testcaseOption func(*TestCaseMutation)

// newTestCaseMutation creates new mutation for the TestCase entity.
func newTestCaseMutation(c config, op Op, opts ...testcaseOption) *TestCaseMutation {
	m := &TestCaseMutation{
		config:        c,
		op:            op,
		typ:           TypeTestCase,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTestCaseID sets the ID field of the mutation.
func withTestCaseID(id string) testcaseOption {
	return func(m *TestCaseMutation) {
		var (
			err   error
			once  sync.Once
			value *TestCase
		)
		m.oldValue = func(ctx context.Context) (*TestCase, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TestCase.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTestCase sets the old TestCase of the mutation.
func withTestCase(node *TestCase) testcaseOption {
	return func(m *TestCaseMutation) {
		m.oldValue = func(context.Context) (*TestCase, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TestCaseMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TestCaseMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of TestCase entities.
func (m *TestCaseMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TestCaseMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TestCaseMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TestCase.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTaskID sets the "task_id" field.
func (m *TestCaseMutation) SetTaskID(s string) {
	m.task = &s
}

// TaskID returns the value of the "task_id" field in the mutation.
func (m *TestCaseMutation) TaskID() (r string, exists bool) {
	v := m.task
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskID returns the old "task_id" field's value of the TestCase entity.
// If the TestCase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TestCaseMutation) OldTaskID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskID: %w", err)
	}
	return oldValue.TaskID, nil
}

// ResetTaskID resets all changes to the "task_id" field.
func (m *TestCaseMutation) ResetTaskID() {
	m.task = nil
}

// SetDescription sets the "description" field.
func (m *TestCaseMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *TestCaseMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the TestCase entity.
// If the TestCase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TestCaseMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ResetDescription resets all changes to the "description" field.
func (m *TestCaseMutation) ResetDescription() {
	m.description = nil
}

// SetStatus sets the "status" field.
func (m *TestCaseMutation) SetStatus(t testcase.Status) {
	m.status = &t
}

// Status returns the value of the "status" field in the mutation.
func (m *TestCaseMutation) Status() (r testcase.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the TestCase entity.
// If the TestCase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TestCaseMutation) OldStatus(ctx context.Context) (v testcase.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *TestCaseMutation) ResetStatus() {
	m.status = nil
}

// SetLastResult sets the "last_result" field.
func (m *TestCaseMutation) SetLastResult(s string) {
	m.last_result = &s
}

// LastResult returns the value of the "last_result" field in the mutation.
func (m *TestCaseMutation) LastResult() (r string, exists bool) {
	v := m.last_result
	if v == nil {
		return
	}
	return *v, true
}

// OldLastResult returns the old "last_result" field's value of the TestCase entity.
// If the TestCase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TestCaseMutation) OldLastResult(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastResult is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastResult requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastResult: %w", err)
	}
	return oldValue.LastResult, nil
}

// ClearLastResult clears the value of the "last_result" field.
func (m *TestCaseMutation) ClearLastResult() {
	m.last_result = nil
	m.clearedFields[testcase.FieldLastResult] = struct{}{}
}

// LastResultCleared returns if the "last_result" field was cleared in this mutation.
func (m *TestCaseMutation) LastResultCleared() bool {
	_, ok := m.clearedFields[testcase.FieldLastResult]
	return ok
}

// ResetLastResult resets all changes to the "last_result" field.
func (m *TestCaseMutation) ResetLastResult() {
	m.last_result = nil
	delete(m.clearedFields, testcase.FieldLastResult)
}

// SetCreatedAt sets the "created_at" field.
func (m *TestCaseMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TestCaseMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the TestCase entity.
// If the TestCase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TestCaseMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TestCaseMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *TestCaseMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *TestCaseMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the TestCase entity.
// If the TestCase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TestCaseMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *TestCaseMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearTask clears the "task" edge to the Task entity.
func (m *TestCaseMutation) ClearTask() {
	m.clearedtask = true
	m.clearedFields[testcase.FieldTaskID] = struct{}{}
}

// TaskCleared reports if the "task" edge to the Task entity was cleared.
func (m *TestCaseMutation) TaskCleared() bool {
	return m.clearedtask
}

// TaskIDs returns the "task" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TaskID instead. It exists only for internal usage by the builders.
func (m *TestCaseMutation) TaskIDs() (ids []string) {
	if id := m.task; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTask resets all changes to the "task" edge.
func (m *TestCaseMutation) ResetTask() {
	m.task = nil
	m.clearedtask = false
}

// Where appends a list predicates to the TestCaseMutation builder.
func (m *TestCaseMutation) Where(ps ...predicate.TestCase) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TestCaseMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TestCaseMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TestCase, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TestCaseMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TestCaseMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TestCase).
func (m *TestCaseMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TestCaseMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.task != nil {
		fields = append(fields, testcase.FieldTaskID)
	}
	if m.description != nil {
		fields = append(fields, testcase.FieldDescription)
	}
	if m.status != nil {
		fields = append(fields, testcase.FieldStatus)
	}
	if m.last_result != nil {
		fields = append(fields, testcase.FieldLastResult)
	}
	if m.created_at != nil {
		fields = append(fields, testcase.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, testcase.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TestCaseMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case testcase.FieldTaskID:
		return m.TaskID()
	case testcase.FieldDescription:
		return m.Description()
	case testcase.FieldStatus:
		return m.Status()
	case testcase.FieldLastResult:
		return m.LastResult()
	case testcase.FieldCreatedAt:
		return m.CreatedAt()
	case testcase.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TestCaseMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case testcase.FieldTaskID:
		return m.OldTaskID(ctx)
	case testcase.FieldDescription:
		return m.OldDescription(ctx)
	case testcase.FieldStatus:
		return m.OldStatus(ctx)
	case testcase.FieldLastResult:
		return m.OldLastResult(ctx)
	case testcase.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case testcase.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown TestCase field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TestCaseMutation) SetField(name string, value ent.Value) error {
	switch name {
	case testcase.FieldTaskID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskID(v)
		return nil
	case testcase.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case testcase.FieldStatus:
		v, ok := value.(testcase.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case testcase.FieldLastResult:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastResult(v)
		return nil
	case testcase.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case testcase.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown TestCase field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TestCaseMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TestCaseMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TestCaseMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown TestCase numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TestCaseMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(testcase.FieldLastResult) {
		fields = append(fields, testcase.FieldLastResult)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TestCaseMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TestCaseMutation) ClearField(name string) error {
	switch name {
	case testcase.FieldLastResult:
		m.ClearLastResult()
		return nil
	}
	return fmt.Errorf("unknown TestCase nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TestCaseMutation) ResetField(name string) error {
	switch name {
	case testcase.FieldTaskID:
		m.ResetTaskID()
		return nil
	case testcase.FieldDescription:
		m.ResetDescription()
		return nil
	case testcase.FieldStatus:
		m.ResetStatus()
		return nil
	case testcase.FieldLastResult:
		m.ResetLastResult()
		return nil
	case testcase.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case testcase.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown TestCase field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TestCaseMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.task != nil {
		edges = append(edges, testcase.EdgeTask)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TestCaseMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case testcase.EdgeTask:
		if id := m.task; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TestCaseMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TestCaseMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TestCaseMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedtask {
		edges = append(edges, testcase.EdgeTask)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TestCaseMutation) EdgeCleared(name string) bool {
	switch name {
	case testcase.EdgeTask:
		return m.clearedtask
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TestCaseMutation) ClearEdge(name string) error {
	switch name {
	case testcase.EdgeTask:
		m.ClearTask()
		return nil
	}
	return fmt.Errorf("unknown TestCase unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TestCaseMutation) ResetEdge(name string) error {
	switch name {
	case testcase.EdgeTask:
		m.ResetTask()
		return nil
	}
	return fmt.Errorf("unknown TestCase edge %s", name)
}
