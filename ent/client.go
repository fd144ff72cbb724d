// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/autoforge-dev/autoforge/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/autoforge-dev/autoforge/ent/agentsession"
	"github.com/autoforge-dev/autoforge/ent/epic"
	"github.com/autoforge-dev/autoforge/ent/project"
	"github.com/autoforge-dev/autoforge/ent/promptanalysis"
	"github.com/autoforge-dev/autoforge/ent/promptproposal"
	"github.com/autoforge-dev/autoforge/ent/promptversion"
	"github.com/autoforge-dev/autoforge/ent/qualitycheck"
	"github.com/autoforge-dev/autoforge/ent/task"
	"github.com/autoforge-dev/autoforge/ent/testcase"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// AgentSession is the client for interacting with the AgentSession builders.
	AgentSession *AgentSessionClient
	// Epic is the client for interacting with the Epic builders.
	Epic *EpicClient
	// Project is the client for interacting with the Project builders.
	Project *ProjectClient
	// PromptAnalysis is the client for interacting with the PromptAnalysis builders.
	PromptAnalysis *PromptAnalysisClient
	// PromptProposal is the client for interacting with the PromptProposal builders.
	PromptProposal *PromptProposalClient
	// PromptVersion is the client for interacting with the PromptVersion builders.
	PromptVersion *PromptVersionClient
	// QualityCheck is the client for interacting with the QualityCheck builders.
	QualityCheck *QualityCheckClient
	// Task is the client for interacting with the Task builders.
	Task *TaskClient
	// TestCase is the client for interacting with the TestCase builders.
	TestCase *TestCaseClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.AgentSession = NewAgentSessionClient(c.config)
	c.Epic = NewEpicClient(c.config)
	c.Project = NewProjectClient(c.config)
	c.PromptAnalysis = NewPromptAnalysisClient(c.config)
	c.PromptProposal = NewPromptProposalClient(c.config)
	c.PromptVersion = NewPromptVersionClient(c.config)
	c.QualityCheck = NewQualityCheckClient(c.config)
	c.Task = NewTaskClient(c.config)
	c.TestCase = NewTestCaseClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:            ctx,
		config:         cfg,
		AgentSession:   NewAgentSessionClient(cfg),
		Epic:           NewEpicClient(cfg),
		Project:        NewProjectClient(cfg),
		PromptAnalysis: NewPromptAnalysisClient(cfg),
		PromptProposal: NewPromptProposalClient(cfg),
		PromptVersion:  NewPromptVersionClient(cfg),
		QualityCheck:   NewQualityCheckClient(cfg),
		Task:           NewTaskClient(cfg),
		TestCase:       NewTestCaseClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:            ctx,
		config:         cfg,
		AgentSession:   NewAgentSessionClient(cfg),
		Epic:           NewEpicClient(cfg),
		Project:        NewProjectClient(cfg),
		PromptAnalysis: NewPromptAnalysisClient(cfg),
		PromptProposal: NewPromptProposalClient(cfg),
		PromptVersion:  NewPromptVersionClient(cfg),
		QualityCheck:   NewQualityCheckClient(cfg),
		Task:           NewTaskClient(cfg),
		TestCase:       NewTestCaseClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		AgentSession.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	for _, n := range []interface{ Use(...Hook) }{
		c.AgentSession, c.Epic, c.Project, c.PromptAnalysis, c.PromptProposal,
		c.PromptVersion, c.QualityCheck, c.Task, c.TestCase,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.AgentSession, c.Epic, c.Project, c.PromptAnalysis, c.PromptProposal,
		c.PromptVersion, c.QualityCheck, c.Task, c.TestCase,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AgentSessionMutation:
		return c.AgentSession.mutate(ctx, m)
	case *EpicMutation:
		return c.Epic.mutate(ctx, m)
	case *ProjectMutation:
		return c.Project.mutate(ctx, m)
	case *PromptAnalysisMutation:
		return c.PromptAnalysis.mutate(ctx, m)
	case *PromptProposalMutation:
		return c.PromptProposal.mutate(ctx, m)
	case *PromptVersionMutation:
		return c.PromptVersion.mutate(ctx, m)
	case *QualityCheckMutation:
		return c.QualityCheck.mutate(ctx, m)
	case *TaskMutation:
		return c.Task.mutate(ctx, m)
	case *TestCaseMutation:
		return c.TestCase.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AgentSessionClient is a client for the AgentSession schema.
type AgentSessionClient struct {
	config
}

// NewAgentSessionClient returns a client for the AgentSession from the given config.
func NewAgentSessionClient(c config) *AgentSessionClient {
	return &AgentSessionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `agentsession.Hooks(f(g(h())))`.
func (c *AgentSessionClient) Use(hooks ...Hook) {
	c.hooks.AgentSession = append(c.hooks.AgentSession, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `agentsession.Intercept(f(g(h())))`.
func (c *AgentSessionClient) Intercept(interceptors ...Interceptor) {
	c.inters.AgentSession = append(c.inters.AgentSession, interceptors...)
}

// Create returns a builder for creating a AgentSession entity.
func (c *AgentSessionClient) Create() *AgentSessionCreate {
	mutation := newAgentSessionMutation(c.config, OpCreate)
	return &AgentSessionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AgentSession entities.
func (c *AgentSessionClient) CreateBulk(builders ...*AgentSessionCreate) *AgentSessionCreateBulk {
	return &AgentSessionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AgentSessionClient) MapCreateBulk(slice any, setFunc func(*AgentSessionCreate, int)) *AgentSessionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AgentSessionCreateBulk{err: fmt.Errorf("calling to AgentSessionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AgentSessionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AgentSessionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AgentSession.
func (c *AgentSessionClient) Update() *AgentSessionUpdate {
	mutation := newAgentSessionMutation(c.config, OpUpdate)
	return &AgentSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AgentSessionClient) UpdateOne(_m *AgentSession) *AgentSessionUpdateOne {
	mutation := newAgentSessionMutation(c.config, OpUpdateOne, withAgentSession(_m))
	return &AgentSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AgentSessionClient) UpdateOneID(id string) *AgentSessionUpdateOne {
	mutation := newAgentSessionMutation(c.config, OpUpdateOne, withAgentSessionID(id))
	return &AgentSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AgentSession.
func (c *AgentSessionClient) Delete() *AgentSessionDelete {
	mutation := newAgentSessionMutation(c.config, OpDelete)
	return &AgentSessionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AgentSessionClient) DeleteOne(_m *AgentSession) *AgentSessionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AgentSessionClient) DeleteOneID(id string) *AgentSessionDeleteOne {
	builder := c.Delete().Where(agentsession.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AgentSessionDeleteOne{builder}
}

// Query returns a query builder for AgentSession.
func (c *AgentSessionClient) Query() *AgentSessionQuery {
	return &AgentSessionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAgentSession},
		inters: c.Interceptors(),
	}
}

// Get returns a AgentSession entity by its id.
func (c *AgentSessionClient) Get(ctx context.Context, id string) (*AgentSession, error) {
	return c.Query().Where(agentsession.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AgentSessionClient) GetX(ctx context.Context, id string) *AgentSession {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryProject queries the project edge of a AgentSession.
func (c *AgentSessionClient) QueryProject(_m *AgentSession) *ProjectQuery {
	query := (&ProjectClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(agentsession.Table, agentsession.FieldID, id),
			sqlgraph.To(project.Table, project.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, agentsession.ProjectTable, agentsession.ProjectColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryQualityChecks queries the quality_checks edge of a AgentSession.
func (c *AgentSessionClient) QueryQualityChecks(_m *AgentSession) *QualityCheckQuery {
	query := (&QualityCheckClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(agentsession.Table, agentsession.FieldID, id),
			sqlgraph.To(qualitycheck.Table, qualitycheck.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, agentsession.QualityChecksTable, agentsession.QualityChecksColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *AgentSessionClient) Hooks() []Hook {
	return c.hooks.AgentSession
}

// Interceptors returns the client interceptors.
func (c *AgentSessionClient) Interceptors() []Interceptor {
	return c.inters.AgentSession
}

func (c *AgentSessionClient) mutate(ctx context.Context, m *AgentSessionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AgentSessionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AgentSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AgentSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AgentSessionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AgentSession mutation op: %q", m.Op())
	}
}

// EpicClient is a client for the Epic schema.
type EpicClient struct {
	config
}

// NewEpicClient returns a client for the Epic from the given config.
func NewEpicClient(c config) *EpicClient {
	return &EpicClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `epic.Hooks(f(g(h())))`.
func (c *EpicClient) Use(hooks ...Hook) {
	c.hooks.Epic = append(c.hooks.Epic, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `epic.Intercept(f(g(h())))`.
func (c *EpicClient) Intercept(interceptors ...Interceptor) {
	c.inters.Epic = append(c.inters.Epic, interceptors...)
}

// Create returns a builder for creating a Epic entity.
func (c *EpicClient) Create() *EpicCreate {
	mutation := newEpicMutation(c.config, OpCreate)
	return &EpicCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Epic entities.
func (c *EpicClient) CreateBulk(builders ...*EpicCreate) *EpicCreateBulk {
	return &EpicCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *EpicClient) MapCreateBulk(slice any, setFunc func(*EpicCreate, int)) *EpicCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &EpicCreateBulk{err: fmt.Errorf("calling to EpicClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*EpicCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &EpicCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Epic.
func (c *EpicClient) Update() *EpicUpdate {
	mutation := newEpicMutation(c.config, OpUpdate)
	return &EpicUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *EpicClient) UpdateOne(_m *Epic) *EpicUpdateOne {
	mutation := newEpicMutation(c.config, OpUpdateOne, withEpic(_m))
	return &EpicUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *EpicClient) UpdateOneID(id string) *EpicUpdateOne {
	mutation := newEpicMutation(c.config, OpUpdateOne, withEpicID(id))
	return &EpicUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Epic.
func (c *EpicClient) Delete() *EpicDelete {
	mutation := newEpicMutation(c.config, OpDelete)
	return &EpicDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *EpicClient) DeleteOne(_m *Epic) *EpicDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *EpicClient) DeleteOneID(id string) *EpicDeleteOne {
	builder := c.Delete().Where(epic.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &EpicDeleteOne{builder}
}

// Query returns a query builder for Epic.
func (c *EpicClient) Query() *EpicQuery {
	return &EpicQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeEpic},
		inters: c.Interceptors(),
	}
}

// Get returns a Epic entity by its id.
func (c *EpicClient) Get(ctx context.Context, id string) (*Epic, error) {
	return c.Query().Where(epic.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *EpicClient) GetX(ctx context.Context, id string) *Epic {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryProject queries the project edge of a Epic.
func (c *EpicClient) QueryProject(_m *Epic) *ProjectQuery {
	query := (&ProjectClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(epic.Table, epic.FieldID, id),
			sqlgraph.To(project.Table, project.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, epic.ProjectTable, epic.ProjectColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryTasks queries the tasks edge of a Epic.
func (c *EpicClient) QueryTasks(_m *Epic) *TaskQuery {
	query := (&TaskClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(epic.Table, epic.FieldID, id),
			sqlgraph.To(task.Table, task.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, epic.TasksTable, epic.TasksColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *EpicClient) Hooks() []Hook {
	return c.hooks.Epic
}

// Interceptors returns the client interceptors.
func (c *EpicClient) Interceptors() []Interceptor {
	return c.inters.Epic
}

func (c *EpicClient) mutate(ctx context.Context, m *EpicMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&EpicCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&EpicUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&EpicUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&EpicDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Epic mutation op: %q", m.Op())
	}
}

// ProjectClient is a client for the Project schema.
type ProjectClient struct {
	config
}

// NewProjectClient returns a client for the Project from the given config.
func NewProjectClient(c config) *ProjectClient {
	return &ProjectClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `project.Hooks(f(g(h())))`.
func (c *ProjectClient) Use(hooks ...Hook) {
	c.hooks.Project = append(c.hooks.Project, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `project.Intercept(f(g(h())))`.
func (c *ProjectClient) Intercept(interceptors ...Interceptor) {
	c.inters.Project = append(c.inters.Project, interceptors...)
}

// Create returns a builder for creating a Project entity.
func (c *ProjectClient) Create() *ProjectCreate {
	mutation := newProjectMutation(c.config, OpCreate)
	return &ProjectCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Project entities.
func (c *ProjectClient) CreateBulk(builders ...*ProjectCreate) *ProjectCreateBulk {
	return &ProjectCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ProjectClient) MapCreateBulk(slice any, setFunc func(*ProjectCreate, int)) *ProjectCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ProjectCreateBulk{err: fmt.Errorf("calling to ProjectClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ProjectCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ProjectCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Project.
func (c *ProjectClient) Update() *ProjectUpdate {
	mutation := newProjectMutation(c.config, OpUpdate)
	return &ProjectUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ProjectClient) UpdateOne(_m *Project) *ProjectUpdateOne {
	mutation := newProjectMutation(c.config, OpUpdateOne, withProject(_m))
	return &ProjectUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ProjectClient) UpdateOneID(id string) *ProjectUpdateOne {
	mutation := newProjectMutation(c.config, OpUpdateOne, withProjectID(id))
	return &ProjectUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Project.
func (c *ProjectClient) Delete() *ProjectDelete {
	mutation := newProjectMutation(c.config, OpDelete)
	return &ProjectDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ProjectClient) DeleteOne(_m *Project) *ProjectDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ProjectClient) DeleteOneID(id string) *ProjectDeleteOne {
	builder := c.Delete().Where(project.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ProjectDeleteOne{builder}
}

// Query returns a query builder for Project.
func (c *ProjectClient) Query() *ProjectQuery {
	return &ProjectQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeProject},
		inters: c.Interceptors(),
	}
}

// Get returns a Project entity by its id.
func (c *ProjectClient) Get(ctx context.Context, id string) (*Project, error) {
	return c.Query().Where(project.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ProjectClient) GetX(ctx context.Context, id string) *Project {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryEpics queries the epics edge of a Project.
func (c *ProjectClient) QueryEpics(_m *Project) *EpicQuery {
	query := (&EpicClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(project.Table, project.FieldID, id),
			sqlgraph.To(epic.Table, epic.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, project.EpicsTable, project.EpicsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryTasks queries the tasks edge of a Project.
func (c *ProjectClient) QueryTasks(_m *Project) *TaskQuery {
	query := (&TaskClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(project.Table, project.FieldID, id),
			sqlgraph.To(task.Table, task.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, project.TasksTable, project.TasksColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QuerySessions queries the sessions edge of a Project.
func (c *ProjectClient) QuerySessions(_m *Project) *AgentSessionQuery {
	query := (&AgentSessionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(project.Table, project.FieldID, id),
			sqlgraph.To(agentsession.Table, agentsession.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, project.SessionsTable, project.SessionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ProjectClient) Hooks() []Hook {
	return c.hooks.Project
}

// Interceptors returns the client interceptors.
func (c *ProjectClient) Interceptors() []Interceptor {
	return c.inters.Project
}

func (c *ProjectClient) mutate(ctx context.Context, m *ProjectMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ProjectCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ProjectUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ProjectUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ProjectDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Project mutation op: %q", m.Op())
	}
}

// PromptAnalysisClient is a client for the PromptAnalysis schema.
type PromptAnalysisClient struct {
	config
}

// NewPromptAnalysisClient returns a client for the PromptAnalysis from the given config.
func NewPromptAnalysisClient(c config) *PromptAnalysisClient {
	return &PromptAnalysisClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `promptanalysis.Hooks(f(g(h())))`.
func (c *PromptAnalysisClient) Use(hooks ...Hook) {
	c.hooks.PromptAnalysis = append(c.hooks.PromptAnalysis, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `promptanalysis.Intercept(f(g(h())))`.
func (c *PromptAnalysisClient) Intercept(interceptors ...Interceptor) {
	c.inters.PromptAnalysis = append(c.inters.PromptAnalysis, interceptors...)
}

// Create returns a builder for creating a PromptAnalysis entity.
func (c *PromptAnalysisClient) Create() *PromptAnalysisCreate {
	mutation := newPromptAnalysisMutation(c.config, OpCreate)
	return &PromptAnalysisCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PromptAnalysis entities.
func (c *PromptAnalysisClient) CreateBulk(builders ...*PromptAnalysisCreate) *PromptAnalysisCreateBulk {
	return &PromptAnalysisCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PromptAnalysisClient) MapCreateBulk(slice any, setFunc func(*PromptAnalysisCreate, int)) *PromptAnalysisCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PromptAnalysisCreateBulk{err: fmt.Errorf("calling to PromptAnalysisClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PromptAnalysisCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PromptAnalysisCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PromptAnalysis.
func (c *PromptAnalysisClient) Update() *PromptAnalysisUpdate {
	mutation := newPromptAnalysisMutation(c.config, OpUpdate)
	return &PromptAnalysisUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PromptAnalysisClient) UpdateOne(_m *PromptAnalysis) *PromptAnalysisUpdateOne {
	mutation := newPromptAnalysisMutation(c.config, OpUpdateOne, withPromptAnalysis(_m))
	return &PromptAnalysisUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PromptAnalysisClient) UpdateOneID(id string) *PromptAnalysisUpdateOne {
	mutation := newPromptAnalysisMutation(c.config, OpUpdateOne, withPromptAnalysisID(id))
	return &PromptAnalysisUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PromptAnalysis.
func (c *PromptAnalysisClient) Delete() *PromptAnalysisDelete {
	mutation := newPromptAnalysisMutation(c.config, OpDelete)
	return &PromptAnalysisDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PromptAnalysisClient) DeleteOne(_m *PromptAnalysis) *PromptAnalysisDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PromptAnalysisClient) DeleteOneID(id string) *PromptAnalysisDeleteOne {
	builder := c.Delete().Where(promptanalysis.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PromptAnalysisDeleteOne{builder}
}

// Query returns a query builder for PromptAnalysis.
func (c *PromptAnalysisClient) Query() *PromptAnalysisQuery {
	return &PromptAnalysisQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePromptAnalysis},
		inters: c.Interceptors(),
	}
}

// Get returns a PromptAnalysis entity by its id.
func (c *PromptAnalysisClient) Get(ctx context.Context, id string) (*PromptAnalysis, error) {
	return c.Query().Where(promptanalysis.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PromptAnalysisClient) GetX(ctx context.Context, id string) *PromptAnalysis {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryProposals queries the proposals edge of a PromptAnalysis.
func (c *PromptAnalysisClient) QueryProposals(_m *PromptAnalysis) *PromptProposalQuery {
	query := (&PromptProposalClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(promptanalysis.Table, promptanalysis.FieldID, id),
			sqlgraph.To(promptproposal.Table, promptproposal.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, promptanalysis.ProposalsTable, promptanalysis.ProposalsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *PromptAnalysisClient) Hooks() []Hook {
	return c.hooks.PromptAnalysis
}

// Interceptors returns the client interceptors.
func (c *PromptAnalysisClient) Interceptors() []Interceptor {
	return c.inters.PromptAnalysis
}

func (c *PromptAnalysisClient) mutate(ctx context.Context, m *PromptAnalysisMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PromptAnalysisCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PromptAnalysisUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PromptAnalysisUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PromptAnalysisDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PromptAnalysis mutation op: %q", m.Op())
	}
}

// PromptProposalClient is a client for the PromptProposal schema.
type PromptProposalClient struct {
	config
}

// NewPromptProposalClient returns a client for the PromptProposal from the given config.
func NewPromptProposalClient(c config) *PromptProposalClient {
	return &PromptProposalClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `promptproposal.Hooks(f(g(h())))`.
func (c *PromptProposalClient) Use(hooks ...Hook) {
	c.hooks.PromptProposal = append(c.hooks.PromptProposal, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `promptproposal.Intercept(f(g(h())))`.
func (c *PromptProposalClient) Intercept(interceptors ...Interceptor) {
	c.inters.PromptProposal = append(c.inters.PromptProposal, interceptors...)
}

// Create returns a builder for creating a PromptProposal entity.
func (c *PromptProposalClient) Create() *PromptProposalCreate {
	mutation := newPromptProposalMutation(c.config, OpCreate)
	return &PromptProposalCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PromptProposal entities.
func (c *PromptProposalClient) CreateBulk(builders ...*PromptProposalCreate) *PromptProposalCreateBulk {
	return &PromptProposalCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PromptProposalClient) MapCreateBulk(slice any, setFunc func(*PromptProposalCreate, int)) *PromptProposalCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PromptProposalCreateBulk{err: fmt.Errorf("calling to PromptProposalClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PromptProposalCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PromptProposalCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PromptProposal.
func (c *PromptProposalClient) Update() *PromptProposalUpdate {
	mutation := newPromptProposalMutation(c.config, OpUpdate)
	return &PromptProposalUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PromptProposalClient) UpdateOne(_m *PromptProposal) *PromptProposalUpdateOne {
	mutation := newPromptProposalMutation(c.config, OpUpdateOne, withPromptProposal(_m))
	return &PromptProposalUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PromptProposalClient) UpdateOneID(id string) *PromptProposalUpdateOne {
	mutation := newPromptProposalMutation(c.config, OpUpdateOne, withPromptProposalID(id))
	return &PromptProposalUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PromptProposal.
func (c *PromptProposalClient) Delete() *PromptProposalDelete {
	mutation := newPromptProposalMutation(c.config, OpDelete)
	return &PromptProposalDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PromptProposalClient) DeleteOne(_m *PromptProposal) *PromptProposalDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PromptProposalClient) DeleteOneID(id string) *PromptProposalDeleteOne {
	builder := c.Delete().Where(promptproposal.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PromptProposalDeleteOne{builder}
}

// Query returns a query builder for PromptProposal.
func (c *PromptProposalClient) Query() *PromptProposalQuery {
	return &PromptProposalQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePromptProposal},
		inters: c.Interceptors(),
	}
}

// Get returns a PromptProposal entity by its id.
func (c *PromptProposalClient) Get(ctx context.Context, id string) (*PromptProposal, error) {
	return c.Query().Where(promptproposal.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PromptProposalClient) GetX(ctx context.Context, id string) *PromptProposal {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryAnalysis queries the analysis edge of a PromptProposal.
func (c *PromptProposalClient) QueryAnalysis(_m *PromptProposal) *PromptAnalysisQuery {
	query := (&PromptAnalysisClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(promptproposal.Table, promptproposal.FieldID, id),
			sqlgraph.To(promptanalysis.Table, promptanalysis.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, promptproposal.AnalysisTable, promptproposal.AnalysisColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *PromptProposalClient) Hooks() []Hook {
	return c.hooks.PromptProposal
}

// Interceptors returns the client interceptors.
func (c *PromptProposalClient) Interceptors() []Interceptor {
	return c.inters.PromptProposal
}

func (c *PromptProposalClient) mutate(ctx context.Context, m *PromptProposalMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PromptProposalCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PromptProposalUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PromptProposalUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PromptProposalDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PromptProposal mutation op: %q", m.Op())
	}
}

// PromptVersionClient is a client for the PromptVersion schema.
type PromptVersionClient struct {
	config
}

// NewPromptVersionClient returns a client for the PromptVersion from the given config.
func NewPromptVersionClient(c config) *PromptVersionClient {
	return &PromptVersionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `promptversion.Hooks(f(g(h())))`.
func (c *PromptVersionClient) Use(hooks ...Hook) {
	c.hooks.PromptVersion = append(c.hooks.PromptVersion, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `promptversion.Intercept(f(g(h())))`.
func (c *PromptVersionClient) Intercept(interceptors ...Interceptor) {
	c.inters.PromptVersion = append(c.inters.PromptVersion, interceptors...)
}

// Create returns a builder for creating a PromptVersion entity.
func (c *PromptVersionClient) Create() *PromptVersionCreate {
	mutation := newPromptVersionMutation(c.config, OpCreate)
	return &PromptVersionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PromptVersion entities.
func (c *PromptVersionClient) CreateBulk(builders ...*PromptVersionCreate) *PromptVersionCreateBulk {
	return &PromptVersionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PromptVersionClient) MapCreateBulk(slice any, setFunc func(*PromptVersionCreate, int)) *PromptVersionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PromptVersionCreateBulk{err: fmt.Errorf("calling to PromptVersionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PromptVersionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PromptVersionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PromptVersion.
func (c *PromptVersionClient) Update() *PromptVersionUpdate {
	mutation := newPromptVersionMutation(c.config, OpUpdate)
	return &PromptVersionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PromptVersionClient) UpdateOne(_m *PromptVersion) *PromptVersionUpdateOne {
	mutation := newPromptVersionMutation(c.config, OpUpdateOne, withPromptVersion(_m))
	return &PromptVersionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PromptVersionClient) UpdateOneID(id string) *PromptVersionUpdateOne {
	mutation := newPromptVersionMutation(c.config, OpUpdateOne, withPromptVersionID(id))
	return &PromptVersionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PromptVersion.
func (c *PromptVersionClient) Delete() *PromptVersionDelete {
	mutation := newPromptVersionMutation(c.config, OpDelete)
	return &PromptVersionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PromptVersionClient) DeleteOne(_m *PromptVersion) *PromptVersionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PromptVersionClient) DeleteOneID(id string) *PromptVersionDeleteOne {
	builder := c.Delete().Where(promptversion.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PromptVersionDeleteOne{builder}
}

// Query returns a query builder for PromptVersion.
func (c *PromptVersionClient) Query() *PromptVersionQuery {
	return &PromptVersionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePromptVersion},
		inters: c.Interceptors(),
	}
}

// Get returns a PromptVersion entity by its id.
func (c *PromptVersionClient) Get(ctx context.Context, id string) (*PromptVersion, error) {
	return c.Query().Where(promptversion.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PromptVersionClient) GetX(ctx context.Context, id string) *PromptVersion {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *PromptVersionClient) Hooks() []Hook {
	return c.hooks.PromptVersion
}

// Interceptors returns the client interceptors.
func (c *PromptVersionClient) Interceptors() []Interceptor {
	return c.inters.PromptVersion
}

func (c *PromptVersionClient) mutate(ctx context.Context, m *PromptVersionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PromptVersionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PromptVersionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PromptVersionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PromptVersionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PromptVersion mutation op: %q", m.Op())
	}
}

// QualityCheckClient is a client for the QualityCheck schema.
type QualityCheckClient struct {
	config
}

// NewQualityCheckClient returns a client for the QualityCheck from the given config.
func NewQualityCheckClient(c config) *QualityCheckClient {
	return &QualityCheckClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `qualitycheck.Hooks(f(g(h())))`.
func (c *QualityCheckClient) Use(hooks ...Hook) {
	c.hooks.QualityCheck = append(c.hooks.QualityCheck, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `qualitycheck.Intercept(f(g(h())))`.
func (c *QualityCheckClient) Intercept(interceptors ...Interceptor) {
	c.inters.QualityCheck = append(c.inters.QualityCheck, interceptors...)
}

// Create returns a builder for creating a QualityCheck entity.
func (c *QualityCheckClient) Create() *QualityCheckCreate {
	mutation := newQualityCheckMutation(c.config, OpCreate)
	return &QualityCheckCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of QualityCheck entities.
func (c *QualityCheckClient) CreateBulk(builders ...*QualityCheckCreate) *QualityCheckCreateBulk {
	return &QualityCheckCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *QualityCheckClient) MapCreateBulk(slice any, setFunc func(*QualityCheckCreate, int)) *QualityCheckCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &QualityCheckCreateBulk{err: fmt.Errorf("calling to QualityCheckClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*QualityCheckCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &QualityCheckCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for QualityCheck.
func (c *QualityCheckClient) Update() *QualityCheckUpdate {
	mutation := newQualityCheckMutation(c.config, OpUpdate)
	return &QualityCheckUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *QualityCheckClient) UpdateOne(_m *QualityCheck) *QualityCheckUpdateOne {
	mutation := newQualityCheckMutation(c.config, OpUpdateOne, withQualityCheck(_m))
	return &QualityCheckUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *QualityCheckClient) UpdateOneID(id string) *QualityCheckUpdateOne {
	mutation := newQualityCheckMutation(c.config, OpUpdateOne, withQualityCheckID(id))
	return &QualityCheckUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for QualityCheck.
func (c *QualityCheckClient) Delete() *QualityCheckDelete {
	mutation := newQualityCheckMutation(c.config, OpDelete)
	return &QualityCheckDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *QualityCheckClient) DeleteOne(_m *QualityCheck) *QualityCheckDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *QualityCheckClient) DeleteOneID(id string) *QualityCheckDeleteOne {
	builder := c.Delete().Where(qualitycheck.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &QualityCheckDeleteOne{builder}
}

// Query returns a query builder for QualityCheck.
func (c *QualityCheckClient) Query() *QualityCheckQuery {
	return &QualityCheckQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeQualityCheck},
		inters: c.Interceptors(),
	}
}

// Get returns a QualityCheck entity by its id.
func (c *QualityCheckClient) Get(ctx context.Context, id string) (*QualityCheck, error) {
	return c.Query().Where(qualitycheck.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *QualityCheckClient) GetX(ctx context.Context, id string) *QualityCheck {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySession queries the session edge of a QualityCheck.
func (c *QualityCheckClient) QuerySession(_m *QualityCheck) *AgentSessionQuery {
	query := (&AgentSessionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(qualitycheck.Table, qualitycheck.FieldID, id),
			sqlgraph.To(agentsession.Table, agentsession.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, qualitycheck.SessionTable, qualitycheck.SessionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *QualityCheckClient) Hooks() []Hook {
	return c.hooks.QualityCheck
}

// Interceptors returns the client interceptors.
func (c *QualityCheckClient) Interceptors() []Interceptor {
	return c.inters.QualityCheck
}

func (c *QualityCheckClient) mutate(ctx context.Context, m *QualityCheckMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&QualityCheckCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&QualityCheckUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&QualityCheckUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&QualityCheckDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown QualityCheck mutation op: %q", m.Op())
	}
}

// TaskClient is a client for the Task schema.
type TaskClient struct {
	config
}

// NewTaskClient returns a client for the Task from the given config.
func NewTaskClient(c config) *TaskClient {
	return &TaskClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `task.Hooks(f(g(h())))`.
func (c *TaskClient) Use(hooks ...Hook) {
	c.hooks.Task = append(c.hooks.Task, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `task.Intercept(f(g(h())))`.
func (c *TaskClient) Intercept(interceptors ...Interceptor) {
	c.inters.Task = append(c.inters.Task, interceptors...)
}

// Create returns a builder for creating a Task entity.
func (c *TaskClient) Create() *TaskCreate {
	mutation := newTaskMutation(c.config, OpCreate)
	return &TaskCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Task entities.
func (c *TaskClient) CreateBulk(builders ...*TaskCreate) *TaskCreateBulk {
	return &TaskCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TaskClient) MapCreateBulk(slice any, setFunc func(*TaskCreate, int)) *TaskCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TaskCreateBulk{err: fmt.Errorf("calling to TaskClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TaskCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TaskCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Task.
func (c *TaskClient) Update() *TaskUpdate {
	mutation := newTaskMutation(c.config, OpUpdate)
	return &TaskUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TaskClient) UpdateOne(_m *Task) *TaskUpdateOne {
	mutation := newTaskMutation(c.config, OpUpdateOne, withTask(_m))
	return &TaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TaskClient) UpdateOneID(id string) *TaskUpdateOne {
	mutation := newTaskMutation(c.config, OpUpdateOne, withTaskID(id))
	return &TaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Task.
func (c *TaskClient) Delete() *TaskDelete {
	mutation := newTaskMutation(c.config, OpDelete)
	return &TaskDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TaskClient) DeleteOne(_m *Task) *TaskDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TaskClient) DeleteOneID(id string) *TaskDeleteOne {
	builder := c.Delete().Where(task.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TaskDeleteOne{builder}
}

// Query returns a query builder for Task.
func (c *TaskClient) Query() *TaskQuery {
	return &TaskQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTask},
		inters: c.Interceptors(),
	}
}

// Get returns a Task entity by its id.
func (c *TaskClient) Get(ctx context.Context, id string) (*Task, error) {
	return c.Query().Where(task.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TaskClient) GetX(ctx context.Context, id string) *Task {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryEpic queries the epic edge of a Task.
func (c *TaskClient) QueryEpic(_m *Task) *EpicQuery {
	query := (&EpicClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(task.Table, task.FieldID, id),
			sqlgraph.To(epic.Table, epic.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, task.EpicTable, task.EpicColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryProject queries the project edge of a Task.
func (c *TaskClient) QueryProject(_m *Task) *ProjectQuery {
	query := (&ProjectClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(task.Table, task.FieldID, id),
			sqlgraph.To(project.Table, project.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, task.ProjectTable, task.ProjectColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryTests queries the tests edge of a Task.
func (c *TaskClient) QueryTests(_m *Task) *TestCaseQuery {
	query := (&TestCaseClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(task.Table, task.FieldID, id),
			sqlgraph.To(testcase.Table, testcase.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, task.TestsTable, task.TestsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *TaskClient) Hooks() []Hook {
	return c.hooks.Task
}

// Interceptors returns the client interceptors.
func (c *TaskClient) Interceptors() []Interceptor {
	return c.inters.Task
}

func (c *TaskClient) mutate(ctx context.Context, m *TaskMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TaskCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TaskUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TaskDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Task mutation op: %q", m.Op())
	}
}

// TestCaseClient is a client for the TestCase schema.
type TestCaseClient struct {
	config
}

// NewTestCaseClient returns a client for the TestCase from the given config.
func NewTestCaseClient(c config) *TestCaseClient {
	return &TestCaseClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `testcase.Hooks(f(g(h())))`.
func (c *TestCaseClient) Use(hooks ...Hook) {
	c.hooks.TestCase = append(c.hooks.TestCase, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `testcase.Intercept(f(g(h())))`.
func (c *TestCaseClient) Intercept(interceptors ...Interceptor) {
	c.inters.TestCase = append(c.inters.TestCase, interceptors...)
}

// Create returns a builder for creating a TestCase entity.
func (c *TestCaseClient) Create() *TestCaseCreate {
	mutation := newTestCaseMutation(c.config, OpCreate)
	return &TestCaseCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TestCase entities.
func (c *TestCaseClient) CreateBulk(builders ...*TestCaseCreate) *TestCaseCreateBulk {
	return &TestCaseCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TestCaseClient) MapCreateBulk(slice any, setFunc func(*TestCaseCreate, int)) *TestCaseCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TestCaseCreateBulk{err: fmt.Errorf("calling to TestCaseClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TestCaseCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TestCaseCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TestCase.
func (c *TestCaseClient) Update() *TestCaseUpdate {
	mutation := newTestCaseMutation(c.config, OpUpdate)
	return &TestCaseUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TestCaseClient) UpdateOne(_m *TestCase) *TestCaseUpdateOne {
	mutation := newTestCaseMutation(c.config, OpUpdateOne, withTestCase(_m))
	return &TestCaseUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TestCaseClient) UpdateOneID(id string) *TestCaseUpdateOne {
	mutation := newTestCaseMutation(c.config, OpUpdateOne, withTestCaseID(id))
	return &TestCaseUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TestCase.
func (c *TestCaseClient) Delete() *TestCaseDelete {
	mutation := newTestCaseMutation(c.config, OpDelete)
	return &TestCaseDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TestCaseClient) DeleteOne(_m *TestCase) *TestCaseDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TestCaseClient) DeleteOneID(id string) *TestCaseDeleteOne {
	builder := c.Delete().Where(testcase.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TestCaseDeleteOne{builder}
}

// Query returns a query builder for TestCase.
func (c *TestCaseClient) Query() *TestCaseQuery {
	return &TestCaseQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTestCase},
		inters: c.Interceptors(),
	}
}

// Get returns a TestCase entity by its id.
func (c *TestCaseClient) Get(ctx context.Context, id string) (*TestCase, error) {
	return c.Query().Where(testcase.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TestCaseClient) GetX(ctx context.Context, id string) *TestCase {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryTask queries the task edge of a TestCase.
func (c *TestCaseClient) QueryTask(_m *TestCase) *TaskQuery {
	query := (&TaskClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(testcase.Table, testcase.FieldID, id),
			sqlgraph.To(task.Table, task.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, testcase.TaskTable, testcase.TaskColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *TestCaseClient) Hooks() []Hook {
	return c.hooks.TestCase
}

// Interceptors returns the client interceptors.
func (c *TestCaseClient) Interceptors() []Interceptor {
	return c.inters.TestCase
}

func (c *TestCaseClient) mutate(ctx context.Context, m *TestCaseMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TestCaseCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TestCaseUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TestCaseUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TestCaseDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown TestCase mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		AgentSession, Epic, Project, PromptAnalysis, PromptProposal, PromptVersion,
		QualityCheck, Task, TestCase []ent.Hook
	}
	inters struct {
		AgentSession, Epic, Project, PromptAnalysis, PromptProposal, PromptVersion,
		QualityCheck, Task, TestCase []ent.Interceptor
	}
)
