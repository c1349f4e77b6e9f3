// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/abhisek/tutorlens/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/tutorlens/ent/analysisevent"
	"github.com/abhisek/tutorlens/ent/llmrequestevent"
	"github.com/abhisek/tutorlens/ent/mentalblock"
	"github.com/abhisek/tutorlens/ent/topicstate"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// AnalysisEvent is the client for interacting with the AnalysisEvent builders.
	AnalysisEvent *AnalysisEventClient
	// LLMRequestEvent is the client for interacting with the LLMRequestEvent builders.
	LLMRequestEvent *LLMRequestEventClient
	// MentalBlock is the client for interacting with the MentalBlock builders.
	MentalBlock *MentalBlockClient
	// TopicState is the client for interacting with the TopicState builders.
	TopicState *TopicStateClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.AnalysisEvent = NewAnalysisEventClient(c.config)
	c.LLMRequestEvent = NewLLMRequestEventClient(c.config)
	c.MentalBlock = NewMentalBlockClient(c.config)
	c.TopicState = NewTopicStateClient(c.config)
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
		ctx:             ctx,
		config:          cfg,
		AnalysisEvent:   NewAnalysisEventClient(cfg),
		LLMRequestEvent: NewLLMRequestEventClient(cfg),
		MentalBlock:     NewMentalBlockClient(cfg),
		TopicState:      NewTopicStateClient(cfg),
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
		ctx:             ctx,
		config:          cfg,
		AnalysisEvent:   NewAnalysisEventClient(cfg),
		LLMRequestEvent: NewLLMRequestEventClient(cfg),
		MentalBlock:     NewMentalBlockClient(cfg),
		TopicState:      NewTopicStateClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		AnalysisEvent.
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
	c.AnalysisEvent.Use(hooks...)
	c.LLMRequestEvent.Use(hooks...)
	c.MentalBlock.Use(hooks...)
	c.TopicState.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.AnalysisEvent.Intercept(interceptors...)
	c.LLMRequestEvent.Intercept(interceptors...)
	c.MentalBlock.Intercept(interceptors...)
	c.TopicState.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AnalysisEventMutation:
		return c.AnalysisEvent.mutate(ctx, m)
	case *LLMRequestEventMutation:
		return c.LLMRequestEvent.mutate(ctx, m)
	case *MentalBlockMutation:
		return c.MentalBlock.mutate(ctx, m)
	case *TopicStateMutation:
		return c.TopicState.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AnalysisEventClient is a client for the AnalysisEvent schema.
type AnalysisEventClient struct {
	config
}

// NewAnalysisEventClient returns a client for the AnalysisEvent from the given config.
func NewAnalysisEventClient(c config) *AnalysisEventClient {
	return &AnalysisEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `analysisevent.Hooks(f(g(h())))`.
func (c *AnalysisEventClient) Use(hooks ...Hook) {
	c.hooks.AnalysisEvent = append(c.hooks.AnalysisEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `analysisevent.Intercept(f(g(h())))`.
func (c *AnalysisEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.AnalysisEvent = append(c.inters.AnalysisEvent, interceptors...)
}

// Create returns a builder for creating a AnalysisEvent entity.
func (c *AnalysisEventClient) Create() *AnalysisEventCreate {
	mutation := newAnalysisEventMutation(c.config, OpCreate)
	return &AnalysisEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AnalysisEvent entities.
func (c *AnalysisEventClient) CreateBulk(builders ...*AnalysisEventCreate) *AnalysisEventCreateBulk {
	return &AnalysisEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AnalysisEventClient) MapCreateBulk(slice any, setFunc func(*AnalysisEventCreate, int)) *AnalysisEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AnalysisEventCreateBulk{err: fmt.Errorf("calling to AnalysisEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AnalysisEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AnalysisEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AnalysisEvent.
func (c *AnalysisEventClient) Update() *AnalysisEventUpdate {
	mutation := newAnalysisEventMutation(c.config, OpUpdate)
	return &AnalysisEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AnalysisEventClient) UpdateOne(_m *AnalysisEvent) *AnalysisEventUpdateOne {
	mutation := newAnalysisEventMutation(c.config, OpUpdateOne, withAnalysisEvent(_m))
	return &AnalysisEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AnalysisEventClient) UpdateOneID(id int) *AnalysisEventUpdateOne {
	mutation := newAnalysisEventMutation(c.config, OpUpdateOne, withAnalysisEventID(id))
	return &AnalysisEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AnalysisEvent.
func (c *AnalysisEventClient) Delete() *AnalysisEventDelete {
	mutation := newAnalysisEventMutation(c.config, OpDelete)
	return &AnalysisEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AnalysisEventClient) DeleteOne(_m *AnalysisEvent) *AnalysisEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AnalysisEventClient) DeleteOneID(id int) *AnalysisEventDeleteOne {
	builder := c.Delete().Where(analysisevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AnalysisEventDeleteOne{builder}
}

// Query returns a query builder for AnalysisEvent.
func (c *AnalysisEventClient) Query() *AnalysisEventQuery {
	return &AnalysisEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAnalysisEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a AnalysisEvent entity by its id.
func (c *AnalysisEventClient) Get(ctx context.Context, id int) (*AnalysisEvent, error) {
	return c.Query().Where(analysisevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AnalysisEventClient) GetX(ctx context.Context, id int) *AnalysisEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AnalysisEventClient) Hooks() []Hook {
	return c.hooks.AnalysisEvent
}

// Interceptors returns the client interceptors.
func (c *AnalysisEventClient) Interceptors() []Interceptor {
	return c.inters.AnalysisEvent
}

func (c *AnalysisEventClient) mutate(ctx context.Context, m *AnalysisEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AnalysisEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AnalysisEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AnalysisEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AnalysisEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AnalysisEvent mutation op: %q", m.Op())
	}
}

// LLMRequestEventClient is a client for the LLMRequestEvent schema.
type LLMRequestEventClient struct {
	config
}

// NewLLMRequestEventClient returns a client for the LLMRequestEvent from the given config.
func NewLLMRequestEventClient(c config) *LLMRequestEventClient {
	return &LLMRequestEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `llmrequestevent.Hooks(f(g(h())))`.
func (c *LLMRequestEventClient) Use(hooks ...Hook) {
	c.hooks.LLMRequestEvent = append(c.hooks.LLMRequestEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `llmrequestevent.Intercept(f(g(h())))`.
func (c *LLMRequestEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.LLMRequestEvent = append(c.inters.LLMRequestEvent, interceptors...)
}

// Create returns a builder for creating a LLMRequestEvent entity.
func (c *LLMRequestEventClient) Create() *LLMRequestEventCreate {
	mutation := newLLMRequestEventMutation(c.config, OpCreate)
	return &LLMRequestEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of LLMRequestEvent entities.
func (c *LLMRequestEventClient) CreateBulk(builders ...*LLMRequestEventCreate) *LLMRequestEventCreateBulk {
	return &LLMRequestEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LLMRequestEventClient) MapCreateBulk(slice any, setFunc func(*LLMRequestEventCreate, int)) *LLMRequestEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LLMRequestEventCreateBulk{err: fmt.Errorf("calling to LLMRequestEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LLMRequestEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LLMRequestEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Update() *LLMRequestEventUpdate {
	mutation := newLLMRequestEventMutation(c.config, OpUpdate)
	return &LLMRequestEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LLMRequestEventClient) UpdateOne(_m *LLMRequestEvent) *LLMRequestEventUpdateOne {
	mutation := newLLMRequestEventMutation(c.config, OpUpdateOne, withLLMRequestEvent(_m))
	return &LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LLMRequestEventClient) UpdateOneID(id int) *LLMRequestEventUpdateOne {
	mutation := newLLMRequestEventMutation(c.config, OpUpdateOne, withLLMRequestEventID(id))
	return &LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Delete() *LLMRequestEventDelete {
	mutation := newLLMRequestEventMutation(c.config, OpDelete)
	return &LLMRequestEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LLMRequestEventClient) DeleteOne(_m *LLMRequestEvent) *LLMRequestEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LLMRequestEventClient) DeleteOneID(id int) *LLMRequestEventDeleteOne {
	builder := c.Delete().Where(llmrequestevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LLMRequestEventDeleteOne{builder}
}

// Query returns a query builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Query() *LLMRequestEventQuery {
	return &LLMRequestEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLLMRequestEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a LLMRequestEvent entity by its id.
func (c *LLMRequestEventClient) Get(ctx context.Context, id int) (*LLMRequestEvent, error) {
	return c.Query().Where(llmrequestevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LLMRequestEventClient) GetX(ctx context.Context, id int) *LLMRequestEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *LLMRequestEventClient) Hooks() []Hook {
	return c.hooks.LLMRequestEvent
}

// Interceptors returns the client interceptors.
func (c *LLMRequestEventClient) Interceptors() []Interceptor {
	return c.inters.LLMRequestEvent
}

func (c *LLMRequestEventClient) mutate(ctx context.Context, m *LLMRequestEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LLMRequestEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LLMRequestEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LLMRequestEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown LLMRequestEvent mutation op: %q", m.Op())
	}
}

// MentalBlockClient is a client for the MentalBlock schema.
type MentalBlockClient struct {
	config
}

// NewMentalBlockClient returns a client for the MentalBlock from the given config.
func NewMentalBlockClient(c config) *MentalBlockClient {
	return &MentalBlockClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `mentalblock.Hooks(f(g(h())))`.
func (c *MentalBlockClient) Use(hooks ...Hook) {
	c.hooks.MentalBlock = append(c.hooks.MentalBlock, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `mentalblock.Intercept(f(g(h())))`.
func (c *MentalBlockClient) Intercept(interceptors ...Interceptor) {
	c.inters.MentalBlock = append(c.inters.MentalBlock, interceptors...)
}

// Create returns a builder for creating a MentalBlock entity.
func (c *MentalBlockClient) Create() *MentalBlockCreate {
	mutation := newMentalBlockMutation(c.config, OpCreate)
	return &MentalBlockCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of MentalBlock entities.
func (c *MentalBlockClient) CreateBulk(builders ...*MentalBlockCreate) *MentalBlockCreateBulk {
	return &MentalBlockCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MentalBlockClient) MapCreateBulk(slice any, setFunc func(*MentalBlockCreate, int)) *MentalBlockCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MentalBlockCreateBulk{err: fmt.Errorf("calling to MentalBlockClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MentalBlockCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MentalBlockCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for MentalBlock.
func (c *MentalBlockClient) Update() *MentalBlockUpdate {
	mutation := newMentalBlockMutation(c.config, OpUpdate)
	return &MentalBlockUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MentalBlockClient) UpdateOne(_m *MentalBlock) *MentalBlockUpdateOne {
	mutation := newMentalBlockMutation(c.config, OpUpdateOne, withMentalBlock(_m))
	return &MentalBlockUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MentalBlockClient) UpdateOneID(id int) *MentalBlockUpdateOne {
	mutation := newMentalBlockMutation(c.config, OpUpdateOne, withMentalBlockID(id))
	return &MentalBlockUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for MentalBlock.
func (c *MentalBlockClient) Delete() *MentalBlockDelete {
	mutation := newMentalBlockMutation(c.config, OpDelete)
	return &MentalBlockDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MentalBlockClient) DeleteOne(_m *MentalBlock) *MentalBlockDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MentalBlockClient) DeleteOneID(id int) *MentalBlockDeleteOne {
	builder := c.Delete().Where(mentalblock.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MentalBlockDeleteOne{builder}
}

// Query returns a query builder for MentalBlock.
func (c *MentalBlockClient) Query() *MentalBlockQuery {
	return &MentalBlockQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMentalBlock},
		inters: c.Interceptors(),
	}
}

// Get returns a MentalBlock entity by its id.
func (c *MentalBlockClient) Get(ctx context.Context, id int) (*MentalBlock, error) {
	return c.Query().Where(mentalblock.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MentalBlockClient) GetX(ctx context.Context, id int) *MentalBlock {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *MentalBlockClient) Hooks() []Hook {
	return c.hooks.MentalBlock
}

// Interceptors returns the client interceptors.
func (c *MentalBlockClient) Interceptors() []Interceptor {
	return c.inters.MentalBlock
}

func (c *MentalBlockClient) mutate(ctx context.Context, m *MentalBlockMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MentalBlockCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MentalBlockUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MentalBlockUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MentalBlockDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown MentalBlock mutation op: %q", m.Op())
	}
}

// TopicStateClient is a client for the TopicState schema.
type TopicStateClient struct {
	config
}

// NewTopicStateClient returns a client for the TopicState from the given config.
func NewTopicStateClient(c config) *TopicStateClient {
	return &TopicStateClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `topicstate.Hooks(f(g(h())))`.
func (c *TopicStateClient) Use(hooks ...Hook) {
	c.hooks.TopicState = append(c.hooks.TopicState, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `topicstate.Intercept(f(g(h())))`.
func (c *TopicStateClient) Intercept(interceptors ...Interceptor) {
	c.inters.TopicState = append(c.inters.TopicState, interceptors...)
}

// Create returns a builder for creating a TopicState entity.
func (c *TopicStateClient) Create() *TopicStateCreate {
	mutation := newTopicStateMutation(c.config, OpCreate)
	return &TopicStateCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TopicState entities.
func (c *TopicStateClient) CreateBulk(builders ...*TopicStateCreate) *TopicStateCreateBulk {
	return &TopicStateCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TopicStateClient) MapCreateBulk(slice any, setFunc func(*TopicStateCreate, int)) *TopicStateCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TopicStateCreateBulk{err: fmt.Errorf("calling to TopicStateClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TopicStateCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TopicStateCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TopicState.
func (c *TopicStateClient) Update() *TopicStateUpdate {
	mutation := newTopicStateMutation(c.config, OpUpdate)
	return &TopicStateUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TopicStateClient) UpdateOne(_m *TopicState) *TopicStateUpdateOne {
	mutation := newTopicStateMutation(c.config, OpUpdateOne, withTopicState(_m))
	return &TopicStateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TopicStateClient) UpdateOneID(id int) *TopicStateUpdateOne {
	mutation := newTopicStateMutation(c.config, OpUpdateOne, withTopicStateID(id))
	return &TopicStateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TopicState.
func (c *TopicStateClient) Delete() *TopicStateDelete {
	mutation := newTopicStateMutation(c.config, OpDelete)
	return &TopicStateDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TopicStateClient) DeleteOne(_m *TopicState) *TopicStateDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TopicStateClient) DeleteOneID(id int) *TopicStateDeleteOne {
	builder := c.Delete().Where(topicstate.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TopicStateDeleteOne{builder}
}

// Query returns a query builder for TopicState.
func (c *TopicStateClient) Query() *TopicStateQuery {
	return &TopicStateQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTopicState},
		inters: c.Interceptors(),
	}
}

// Get returns a TopicState entity by its id.
func (c *TopicStateClient) Get(ctx context.Context, id int) (*TopicState, error) {
	return c.Query().Where(topicstate.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TopicStateClient) GetX(ctx context.Context, id int) *TopicState {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *TopicStateClient) Hooks() []Hook {
	return c.hooks.TopicState
}

// Interceptors returns the client interceptors.
func (c *TopicStateClient) Interceptors() []Interceptor {
	return c.inters.TopicState
}

func (c *TopicStateClient) mutate(ctx context.Context, m *TopicStateMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TopicStateCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TopicStateUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TopicStateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TopicStateDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown TopicState mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		AnalysisEvent, LLMRequestEvent, MentalBlock, TopicState []ent.Hook
	}
	inters struct {
		AnalysisEvent, LLMRequestEvent, MentalBlock, TopicState []ent.Interceptor
	}
)
