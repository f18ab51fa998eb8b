// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/fleetsense/fleetsense/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/fleetsense/fleetsense/ent/anomalycase"
	"github.com/fleetsense/fleetsense/ent/booking"
	"github.com/fleetsense/fleetsense/ent/busmessage"
	"github.com/fleetsense/fleetsense/ent/callcontext"
	"github.com/fleetsense/fleetsense/ent/communicationcase"
	"github.com/fleetsense/fleetsense/ent/diagnosiscase"
	"github.com/fleetsense/fleetsense/ent/engagementcase"
	"github.com/fleetsense/fleetsense/ent/feedbackcase"
	"github.com/fleetsense/fleetsense/ent/humanreview"
	"github.com/fleetsense/fleetsense/ent/manufacturingcase"
	"github.com/fleetsense/fleetsense/ent/pipelinestate"
	"github.com/fleetsense/fleetsense/ent/rcacase"
	"github.com/fleetsense/fleetsense/ent/schedulingcase"
	"github.com/fleetsense/fleetsense/ent/telemetryevent"
	"github.com/fleetsense/fleetsense/ent/vehicle"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// AnomalyCase is the client for interacting with the AnomalyCase builders.
	AnomalyCase *AnomalyCaseClient
	// Booking is the client for interacting with the Booking builders.
	Booking *BookingClient
	// BusMessage is the client for interacting with the BusMessage builders.
	BusMessage *BusMessageClient
	// CallContext is the client for interacting with the CallContext builders.
	CallContext *CallContextClient
	// CommunicationCase is the client for interacting with the CommunicationCase builders.
	CommunicationCase *CommunicationCaseClient
	// DiagnosisCase is the client for interacting with the DiagnosisCase builders.
	DiagnosisCase *DiagnosisCaseClient
	// EngagementCase is the client for interacting with the EngagementCase builders.
	EngagementCase *EngagementCaseClient
	// FeedbackCase is the client for interacting with the FeedbackCase builders.
	FeedbackCase *FeedbackCaseClient
	// HumanReview is the client for interacting with the HumanReview builders.
	HumanReview *HumanReviewClient
	// ManufacturingCase is the client for interacting with the ManufacturingCase builders.
	ManufacturingCase *ManufacturingCaseClient
	// PipelineState is the client for interacting with the PipelineState builders.
	PipelineState *PipelineStateClient
	// RcaCase is the client for interacting with the RcaCase builders.
	RcaCase *RcaCaseClient
	// SchedulingCase is the client for interacting with the SchedulingCase builders.
	SchedulingCase *SchedulingCaseClient
	// TelemetryEvent is the client for interacting with the TelemetryEvent builders.
	TelemetryEvent *TelemetryEventClient
	// Vehicle is the client for interacting with the Vehicle builders.
	Vehicle *VehicleClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.AnomalyCase = NewAnomalyCaseClient(c.config)
	c.Booking = NewBookingClient(c.config)
	c.BusMessage = NewBusMessageClient(c.config)
	c.CallContext = NewCallContextClient(c.config)
	c.CommunicationCase = NewCommunicationCaseClient(c.config)
	c.DiagnosisCase = NewDiagnosisCaseClient(c.config)
	c.EngagementCase = NewEngagementCaseClient(c.config)
	c.FeedbackCase = NewFeedbackCaseClient(c.config)
	c.HumanReview = NewHumanReviewClient(c.config)
	c.ManufacturingCase = NewManufacturingCaseClient(c.config)
	c.PipelineState = NewPipelineStateClient(c.config)
	c.RcaCase = NewRcaCaseClient(c.config)
	c.SchedulingCase = NewSchedulingCaseClient(c.config)
	c.TelemetryEvent = NewTelemetryEventClient(c.config)
	c.Vehicle = NewVehicleClient(c.config)
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
		ctx:               ctx,
		config:            cfg,
		AnomalyCase:       NewAnomalyCaseClient(cfg),
		Booking:           NewBookingClient(cfg),
		BusMessage:        NewBusMessageClient(cfg),
		CallContext:       NewCallContextClient(cfg),
		CommunicationCase: NewCommunicationCaseClient(cfg),
		DiagnosisCase:     NewDiagnosisCaseClient(cfg),
		EngagementCase:    NewEngagementCaseClient(cfg),
		FeedbackCase:      NewFeedbackCaseClient(cfg),
		HumanReview:       NewHumanReviewClient(cfg),
		ManufacturingCase: NewManufacturingCaseClient(cfg),
		PipelineState:     NewPipelineStateClient(cfg),
		RcaCase:           NewRcaCaseClient(cfg),
		SchedulingCase:    NewSchedulingCaseClient(cfg),
		TelemetryEvent:    NewTelemetryEventClient(cfg),
		Vehicle:           NewVehicleClient(cfg),
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
		ctx:               ctx,
		config:            cfg,
		AnomalyCase:       NewAnomalyCaseClient(cfg),
		Booking:           NewBookingClient(cfg),
		BusMessage:        NewBusMessageClient(cfg),
		CallContext:       NewCallContextClient(cfg),
		CommunicationCase: NewCommunicationCaseClient(cfg),
		DiagnosisCase:     NewDiagnosisCaseClient(cfg),
		EngagementCase:    NewEngagementCaseClient(cfg),
		FeedbackCase:      NewFeedbackCaseClient(cfg),
		HumanReview:       NewHumanReviewClient(cfg),
		ManufacturingCase: NewManufacturingCaseClient(cfg),
		PipelineState:     NewPipelineStateClient(cfg),
		RcaCase:           NewRcaCaseClient(cfg),
		SchedulingCase:    NewSchedulingCaseClient(cfg),
		TelemetryEvent:    NewTelemetryEventClient(cfg),
		Vehicle:           NewVehicleClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		AnomalyCase.
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
		c.AnomalyCase, c.Booking, c.BusMessage, c.CallContext, c.CommunicationCase,
		c.DiagnosisCase, c.EngagementCase, c.FeedbackCase, c.HumanReview,
		c.ManufacturingCase, c.PipelineState, c.RcaCase, c.SchedulingCase,
		c.TelemetryEvent, c.Vehicle,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.AnomalyCase, c.Booking, c.BusMessage, c.CallContext, c.CommunicationCase,
		c.DiagnosisCase, c.EngagementCase, c.FeedbackCase, c.HumanReview,
		c.ManufacturingCase, c.PipelineState, c.RcaCase, c.SchedulingCase,
		c.TelemetryEvent, c.Vehicle,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AnomalyCaseMutation:
		return c.AnomalyCase.mutate(ctx, m)
	case *BookingMutation:
		return c.Booking.mutate(ctx, m)
	case *BusMessageMutation:
		return c.BusMessage.mutate(ctx, m)
	case *CallContextMutation:
		return c.CallContext.mutate(ctx, m)
	case *CommunicationCaseMutation:
		return c.CommunicationCase.mutate(ctx, m)
	case *DiagnosisCaseMutation:
		return c.DiagnosisCase.mutate(ctx, m)
	case *EngagementCaseMutation:
		return c.EngagementCase.mutate(ctx, m)
	case *FeedbackCaseMutation:
		return c.FeedbackCase.mutate(ctx, m)
	case *HumanReviewMutation:
		return c.HumanReview.mutate(ctx, m)
	case *ManufacturingCaseMutation:
		return c.ManufacturingCase.mutate(ctx, m)
	case *PipelineStateMutation:
		return c.PipelineState.mutate(ctx, m)
	case *RcaCaseMutation:
		return c.RcaCase.mutate(ctx, m)
	case *SchedulingCaseMutation:
		return c.SchedulingCase.mutate(ctx, m)
	case *TelemetryEventMutation:
		return c.TelemetryEvent.mutate(ctx, m)
	case *VehicleMutation:
		return c.Vehicle.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AnomalyCaseClient is a client for the AnomalyCase schema.
type AnomalyCaseClient struct {
	config
}

// NewAnomalyCaseClient returns a client for the AnomalyCase from the given config.
func NewAnomalyCaseClient(c config) *AnomalyCaseClient {
	return &AnomalyCaseClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `anomalycase.Hooks(f(g(h())))`.
func (c *AnomalyCaseClient) Use(hooks ...Hook) {
	c.hooks.AnomalyCase = append(c.hooks.AnomalyCase, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `anomalycase.Intercept(f(g(h())))`.
func (c *AnomalyCaseClient) Intercept(interceptors ...Interceptor) {
	c.inters.AnomalyCase = append(c.inters.AnomalyCase, interceptors...)
}

// Create returns a builder for creating a AnomalyCase entity.
func (c *AnomalyCaseClient) Create() *AnomalyCaseCreate {
	mutation := newAnomalyCaseMutation(c.config, OpCreate)
	return &AnomalyCaseCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AnomalyCase entities.
func (c *AnomalyCaseClient) CreateBulk(builders ...*AnomalyCaseCreate) *AnomalyCaseCreateBulk {
	return &AnomalyCaseCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AnomalyCaseClient) MapCreateBulk(slice any, setFunc func(*AnomalyCaseCreate, int)) *AnomalyCaseCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AnomalyCaseCreateBulk{err: fmt.Errorf("calling to AnomalyCaseClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AnomalyCaseCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AnomalyCaseCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AnomalyCase.
func (c *AnomalyCaseClient) Update() *AnomalyCaseUpdate {
	mutation := newAnomalyCaseMutation(c.config, OpUpdate)
	return &AnomalyCaseUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AnomalyCaseClient) UpdateOne(_m *AnomalyCase) *AnomalyCaseUpdateOne {
	mutation := newAnomalyCaseMutation(c.config, OpUpdateOne, withAnomalyCase(_m))
	return &AnomalyCaseUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AnomalyCaseClient) UpdateOneID(id string) *AnomalyCaseUpdateOne {
	mutation := newAnomalyCaseMutation(c.config, OpUpdateOne, withAnomalyCaseID(id))
	return &AnomalyCaseUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AnomalyCase.
func (c *AnomalyCaseClient) Delete() *AnomalyCaseDelete {
	mutation := newAnomalyCaseMutation(c.config, OpDelete)
	return &AnomalyCaseDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AnomalyCaseClient) DeleteOne(_m *AnomalyCase) *AnomalyCaseDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AnomalyCaseClient) DeleteOneID(id string) *AnomalyCaseDeleteOne {
	builder := c.Delete().Where(anomalycase.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AnomalyCaseDeleteOne{builder}
}

// Query returns a query builder for AnomalyCase.
func (c *AnomalyCaseClient) Query() *AnomalyCaseQuery {
	return &AnomalyCaseQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAnomalyCase},
		inters: c.Interceptors(),
	}
}

// Get returns a AnomalyCase entity by its id.
func (c *AnomalyCaseClient) Get(ctx context.Context, id string) (*AnomalyCase, error) {
	return c.Query().Where(anomalycase.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AnomalyCaseClient) GetX(ctx context.Context, id string) *AnomalyCase {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AnomalyCaseClient) Hooks() []Hook {
	return c.hooks.AnomalyCase
}

// Interceptors returns the client interceptors.
func (c *AnomalyCaseClient) Interceptors() []Interceptor {
	return c.inters.AnomalyCase
}

func (c *AnomalyCaseClient) mutate(ctx context.Context, m *AnomalyCaseMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AnomalyCaseCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AnomalyCaseUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AnomalyCaseUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AnomalyCaseDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AnomalyCase mutation op: %q", m.Op())
	}
}

// BookingClient is a client for the Booking schema.
type BookingClient struct {
	config
}

// NewBookingClient returns a client for the Booking from the given config.
func NewBookingClient(c config) *BookingClient {
	return &BookingClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `booking.Hooks(f(g(h())))`.
func (c *BookingClient) Use(hooks ...Hook) {
	c.hooks.Booking = append(c.hooks.Booking, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `booking.Intercept(f(g(h())))`.
func (c *BookingClient) Intercept(interceptors ...Interceptor) {
	c.inters.Booking = append(c.inters.Booking, interceptors...)
}

// Create returns a builder for creating a Booking entity.
func (c *BookingClient) Create() *BookingCreate {
	mutation := newBookingMutation(c.config, OpCreate)
	return &BookingCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Booking entities.
func (c *BookingClient) CreateBulk(builders ...*BookingCreate) *BookingCreateBulk {
	return &BookingCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *BookingClient) MapCreateBulk(slice any, setFunc func(*BookingCreate, int)) *BookingCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &BookingCreateBulk{err: fmt.Errorf("calling to BookingClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*BookingCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &BookingCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Booking.
func (c *BookingClient) Update() *BookingUpdate {
	mutation := newBookingMutation(c.config, OpUpdate)
	return &BookingUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *BookingClient) UpdateOne(_m *Booking) *BookingUpdateOne {
	mutation := newBookingMutation(c.config, OpUpdateOne, withBooking(_m))
	return &BookingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *BookingClient) UpdateOneID(id string) *BookingUpdateOne {
	mutation := newBookingMutation(c.config, OpUpdateOne, withBookingID(id))
	return &BookingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Booking.
func (c *BookingClient) Delete() *BookingDelete {
	mutation := newBookingMutation(c.config, OpDelete)
	return &BookingDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *BookingClient) DeleteOne(_m *Booking) *BookingDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *BookingClient) DeleteOneID(id string) *BookingDeleteOne {
	builder := c.Delete().Where(booking.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &BookingDeleteOne{builder}
}

// Query returns a query builder for Booking.
func (c *BookingClient) Query() *BookingQuery {
	return &BookingQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeBooking},
		inters: c.Interceptors(),
	}
}

// Get returns a Booking entity by its id.
func (c *BookingClient) Get(ctx context.Context, id string) (*Booking, error) {
	return c.Query().Where(booking.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *BookingClient) GetX(ctx context.Context, id string) *Booking {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *BookingClient) Hooks() []Hook {
	return c.hooks.Booking
}

// Interceptors returns the client interceptors.
func (c *BookingClient) Interceptors() []Interceptor {
	return c.inters.Booking
}

func (c *BookingClient) mutate(ctx context.Context, m *BookingMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&BookingCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&BookingUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&BookingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&BookingDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Booking mutation op: %q", m.Op())
	}
}

// BusMessageClient is a client for the BusMessage schema.
type BusMessageClient struct {
	config
}

// NewBusMessageClient returns a client for the BusMessage from the given config.
func NewBusMessageClient(c config) *BusMessageClient {
	return &BusMessageClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `busmessage.Hooks(f(g(h())))`.
func (c *BusMessageClient) Use(hooks ...Hook) {
	c.hooks.BusMessage = append(c.hooks.BusMessage, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `busmessage.Intercept(f(g(h())))`.
func (c *BusMessageClient) Intercept(interceptors ...Interceptor) {
	c.inters.BusMessage = append(c.inters.BusMessage, interceptors...)
}

// Create returns a builder for creating a BusMessage entity.
func (c *BusMessageClient) Create() *BusMessageCreate {
	mutation := newBusMessageMutation(c.config, OpCreate)
	return &BusMessageCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of BusMessage entities.
func (c *BusMessageClient) CreateBulk(builders ...*BusMessageCreate) *BusMessageCreateBulk {
	return &BusMessageCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *BusMessageClient) MapCreateBulk(slice any, setFunc func(*BusMessageCreate, int)) *BusMessageCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &BusMessageCreateBulk{err: fmt.Errorf("calling to BusMessageClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*BusMessageCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &BusMessageCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for BusMessage.
func (c *BusMessageClient) Update() *BusMessageUpdate {
	mutation := newBusMessageMutation(c.config, OpUpdate)
	return &BusMessageUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *BusMessageClient) UpdateOne(_m *BusMessage) *BusMessageUpdateOne {
	mutation := newBusMessageMutation(c.config, OpUpdateOne, withBusMessage(_m))
	return &BusMessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *BusMessageClient) UpdateOneID(id int64) *BusMessageUpdateOne {
	mutation := newBusMessageMutation(c.config, OpUpdateOne, withBusMessageID(id))
	return &BusMessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for BusMessage.
func (c *BusMessageClient) Delete() *BusMessageDelete {
	mutation := newBusMessageMutation(c.config, OpDelete)
	return &BusMessageDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *BusMessageClient) DeleteOne(_m *BusMessage) *BusMessageDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *BusMessageClient) DeleteOneID(id int64) *BusMessageDeleteOne {
	builder := c.Delete().Where(busmessage.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &BusMessageDeleteOne{builder}
}

// Query returns a query builder for BusMessage.
func (c *BusMessageClient) Query() *BusMessageQuery {
	return &BusMessageQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeBusMessage},
		inters: c.Interceptors(),
	}
}

// Get returns a BusMessage entity by its id.
func (c *BusMessageClient) Get(ctx context.Context, id int64) (*BusMessage, error) {
	return c.Query().Where(busmessage.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *BusMessageClient) GetX(ctx context.Context, id int64) *BusMessage {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *BusMessageClient) Hooks() []Hook {
	return c.hooks.BusMessage
}

// Interceptors returns the client interceptors.
func (c *BusMessageClient) Interceptors() []Interceptor {
	return c.inters.BusMessage
}

func (c *BusMessageClient) mutate(ctx context.Context, m *BusMessageMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&BusMessageCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&BusMessageUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&BusMessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&BusMessageDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown BusMessage mutation op: %q", m.Op())
	}
}

// CallContextClient is a client for the CallContext schema.
type CallContextClient struct {
	config
}

// NewCallContextClient returns a client for the CallContext from the given config.
func NewCallContextClient(c config) *CallContextClient {
	return &CallContextClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `callcontext.Hooks(f(g(h())))`.
func (c *CallContextClient) Use(hooks ...Hook) {
	c.hooks.CallContext = append(c.hooks.CallContext, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `callcontext.Intercept(f(g(h())))`.
func (c *CallContextClient) Intercept(interceptors ...Interceptor) {
	c.inters.CallContext = append(c.inters.CallContext, interceptors...)
}

// Create returns a builder for creating a CallContext entity.
func (c *CallContextClient) Create() *CallContextCreate {
	mutation := newCallContextMutation(c.config, OpCreate)
	return &CallContextCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of CallContext entities.
func (c *CallContextClient) CreateBulk(builders ...*CallContextCreate) *CallContextCreateBulk {
	return &CallContextCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CallContextClient) MapCreateBulk(slice any, setFunc func(*CallContextCreate, int)) *CallContextCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CallContextCreateBulk{err: fmt.Errorf("calling to CallContextClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CallContextCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CallContextCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for CallContext.
func (c *CallContextClient) Update() *CallContextUpdate {
	mutation := newCallContextMutation(c.config, OpUpdate)
	return &CallContextUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CallContextClient) UpdateOne(_m *CallContext) *CallContextUpdateOne {
	mutation := newCallContextMutation(c.config, OpUpdateOne, withCallContext(_m))
	return &CallContextUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CallContextClient) UpdateOneID(id string) *CallContextUpdateOne {
	mutation := newCallContextMutation(c.config, OpUpdateOne, withCallContextID(id))
	return &CallContextUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for CallContext.
func (c *CallContextClient) Delete() *CallContextDelete {
	mutation := newCallContextMutation(c.config, OpDelete)
	return &CallContextDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CallContextClient) DeleteOne(_m *CallContext) *CallContextDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CallContextClient) DeleteOneID(id string) *CallContextDeleteOne {
	builder := c.Delete().Where(callcontext.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CallContextDeleteOne{builder}
}

// Query returns a query builder for CallContext.
func (c *CallContextClient) Query() *CallContextQuery {
	return &CallContextQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCallContext},
		inters: c.Interceptors(),
	}
}

// Get returns a CallContext entity by its id.
func (c *CallContextClient) Get(ctx context.Context, id string) (*CallContext, error) {
	return c.Query().Where(callcontext.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CallContextClient) GetX(ctx context.Context, id string) *CallContext {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *CallContextClient) Hooks() []Hook {
	return c.hooks.CallContext
}

// Interceptors returns the client interceptors.
func (c *CallContextClient) Interceptors() []Interceptor {
	return c.inters.CallContext
}

func (c *CallContextClient) mutate(ctx context.Context, m *CallContextMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CallContextCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CallContextUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CallContextUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CallContextDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown CallContext mutation op: %q", m.Op())
	}
}

// CommunicationCaseClient is a client for the CommunicationCase schema.
type CommunicationCaseClient struct {
	config
}

// NewCommunicationCaseClient returns a client for the CommunicationCase from the given config.
func NewCommunicationCaseClient(c config) *CommunicationCaseClient {
	return &CommunicationCaseClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `communicationcase.Hooks(f(g(h())))`.
func (c *CommunicationCaseClient) Use(hooks ...Hook) {
	c.hooks.CommunicationCase = append(c.hooks.CommunicationCase, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `communicationcase.Intercept(f(g(h())))`.
func (c *CommunicationCaseClient) Intercept(interceptors ...Interceptor) {
	c.inters.CommunicationCase = append(c.inters.CommunicationCase, interceptors...)
}

// Create returns a builder for creating a CommunicationCase entity.
func (c *CommunicationCaseClient) Create() *CommunicationCaseCreate {
	mutation := newCommunicationCaseMutation(c.config, OpCreate)
	return &CommunicationCaseCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of CommunicationCase entities.
func (c *CommunicationCaseClient) CreateBulk(builders ...*CommunicationCaseCreate) *CommunicationCaseCreateBulk {
	return &CommunicationCaseCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CommunicationCaseClient) MapCreateBulk(slice any, setFunc func(*CommunicationCaseCreate, int)) *CommunicationCaseCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CommunicationCaseCreateBulk{err: fmt.Errorf("calling to CommunicationCaseClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CommunicationCaseCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CommunicationCaseCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for CommunicationCase.
func (c *CommunicationCaseClient) Update() *CommunicationCaseUpdate {
	mutation := newCommunicationCaseMutation(c.config, OpUpdate)
	return &CommunicationCaseUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CommunicationCaseClient) UpdateOne(_m *CommunicationCase) *CommunicationCaseUpdateOne {
	mutation := newCommunicationCaseMutation(c.config, OpUpdateOne, withCommunicationCase(_m))
	return &CommunicationCaseUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CommunicationCaseClient) UpdateOneID(id string) *CommunicationCaseUpdateOne {
	mutation := newCommunicationCaseMutation(c.config, OpUpdateOne, withCommunicationCaseID(id))
	return &CommunicationCaseUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for CommunicationCase.
func (c *CommunicationCaseClient) Delete() *CommunicationCaseDelete {
	mutation := newCommunicationCaseMutation(c.config, OpDelete)
	return &CommunicationCaseDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CommunicationCaseClient) DeleteOne(_m *CommunicationCase) *CommunicationCaseDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CommunicationCaseClient) DeleteOneID(id string) *CommunicationCaseDeleteOne {
	builder := c.Delete().Where(communicationcase.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CommunicationCaseDeleteOne{builder}
}

// Query returns a query builder for CommunicationCase.
func (c *CommunicationCaseClient) Query() *CommunicationCaseQuery {
	return &CommunicationCaseQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCommunicationCase},
		inters: c.Interceptors(),
	}
}

// Get returns a CommunicationCase entity by its id.
func (c *CommunicationCaseClient) Get(ctx context.Context, id string) (*CommunicationCase, error) {
	return c.Query().Where(communicationcase.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CommunicationCaseClient) GetX(ctx context.Context, id string) *CommunicationCase {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *CommunicationCaseClient) Hooks() []Hook {
	return c.hooks.CommunicationCase
}

// Interceptors returns the client interceptors.
func (c *CommunicationCaseClient) Interceptors() []Interceptor {
	return c.inters.CommunicationCase
}

func (c *CommunicationCaseClient) mutate(ctx context.Context, m *CommunicationCaseMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CommunicationCaseCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CommunicationCaseUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CommunicationCaseUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CommunicationCaseDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown CommunicationCase mutation op: %q", m.Op())
	}
}

// DiagnosisCaseClient is a client for the DiagnosisCase schema.
type DiagnosisCaseClient struct {
	config
}

// NewDiagnosisCaseClient returns a client for the DiagnosisCase from the given config.
func NewDiagnosisCaseClient(c config) *DiagnosisCaseClient {
	return &DiagnosisCaseClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `diagnosiscase.Hooks(f(g(h())))`.
func (c *DiagnosisCaseClient) Use(hooks ...Hook) {
	c.hooks.DiagnosisCase = append(c.hooks.DiagnosisCase, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `diagnosiscase.Intercept(f(g(h())))`.
func (c *DiagnosisCaseClient) Intercept(interceptors ...Interceptor) {
	c.inters.DiagnosisCase = append(c.inters.DiagnosisCase, interceptors...)
}

// Create returns a builder for creating a DiagnosisCase entity.
func (c *DiagnosisCaseClient) Create() *DiagnosisCaseCreate {
	mutation := newDiagnosisCaseMutation(c.config, OpCreate)
	return &DiagnosisCaseCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of DiagnosisCase entities.
func (c *DiagnosisCaseClient) CreateBulk(builders ...*DiagnosisCaseCreate) *DiagnosisCaseCreateBulk {
	return &DiagnosisCaseCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DiagnosisCaseClient) MapCreateBulk(slice any, setFunc func(*DiagnosisCaseCreate, int)) *DiagnosisCaseCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DiagnosisCaseCreateBulk{err: fmt.Errorf("calling to DiagnosisCaseClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DiagnosisCaseCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DiagnosisCaseCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for DiagnosisCase.
func (c *DiagnosisCaseClient) Update() *DiagnosisCaseUpdate {
	mutation := newDiagnosisCaseMutation(c.config, OpUpdate)
	return &DiagnosisCaseUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DiagnosisCaseClient) UpdateOne(_m *DiagnosisCase) *DiagnosisCaseUpdateOne {
	mutation := newDiagnosisCaseMutation(c.config, OpUpdateOne, withDiagnosisCase(_m))
	return &DiagnosisCaseUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DiagnosisCaseClient) UpdateOneID(id string) *DiagnosisCaseUpdateOne {
	mutation := newDiagnosisCaseMutation(c.config, OpUpdateOne, withDiagnosisCaseID(id))
	return &DiagnosisCaseUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for DiagnosisCase.
func (c *DiagnosisCaseClient) Delete() *DiagnosisCaseDelete {
	mutation := newDiagnosisCaseMutation(c.config, OpDelete)
	return &DiagnosisCaseDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DiagnosisCaseClient) DeleteOne(_m *DiagnosisCase) *DiagnosisCaseDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DiagnosisCaseClient) DeleteOneID(id string) *DiagnosisCaseDeleteOne {
	builder := c.Delete().Where(diagnosiscase.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DiagnosisCaseDeleteOne{builder}
}

// Query returns a query builder for DiagnosisCase.
func (c *DiagnosisCaseClient) Query() *DiagnosisCaseQuery {
	return &DiagnosisCaseQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDiagnosisCase},
		inters: c.Interceptors(),
	}
}

// Get returns a DiagnosisCase entity by its id.
func (c *DiagnosisCaseClient) Get(ctx context.Context, id string) (*DiagnosisCase, error) {
	return c.Query().Where(diagnosiscase.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DiagnosisCaseClient) GetX(ctx context.Context, id string) *DiagnosisCase {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *DiagnosisCaseClient) Hooks() []Hook {
	return c.hooks.DiagnosisCase
}

// Interceptors returns the client interceptors.
func (c *DiagnosisCaseClient) Interceptors() []Interceptor {
	return c.inters.DiagnosisCase
}

func (c *DiagnosisCaseClient) mutate(ctx context.Context, m *DiagnosisCaseMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DiagnosisCaseCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DiagnosisCaseUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DiagnosisCaseUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DiagnosisCaseDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown DiagnosisCase mutation op: %q", m.Op())
	}
}

// EngagementCaseClient is a client for the EngagementCase schema.
type EngagementCaseClient struct {
	config
}

// NewEngagementCaseClient returns a client for the EngagementCase from the given config.
func NewEngagementCaseClient(c config) *EngagementCaseClient {
	return &EngagementCaseClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `engagementcase.Hooks(f(g(h())))`.
func (c *EngagementCaseClient) Use(hooks ...Hook) {
	c.hooks.EngagementCase = append(c.hooks.EngagementCase, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `engagementcase.Intercept(f(g(h())))`.
func (c *EngagementCaseClient) Intercept(interceptors ...Interceptor) {
	c.inters.EngagementCase = append(c.inters.EngagementCase, interceptors...)
}

// Create returns a builder for creating a EngagementCase entity.
func (c *EngagementCaseClient) Create() *EngagementCaseCreate {
	mutation := newEngagementCaseMutation(c.config, OpCreate)
	return &EngagementCaseCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of EngagementCase entities.
func (c *EngagementCaseClient) CreateBulk(builders ...*EngagementCaseCreate) *EngagementCaseCreateBulk {
	return &EngagementCaseCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *EngagementCaseClient) MapCreateBulk(slice any, setFunc func(*EngagementCaseCreate, int)) *EngagementCaseCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &EngagementCaseCreateBulk{err: fmt.Errorf("calling to EngagementCaseClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*EngagementCaseCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &EngagementCaseCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for EngagementCase.
func (c *EngagementCaseClient) Update() *EngagementCaseUpdate {
	mutation := newEngagementCaseMutation(c.config, OpUpdate)
	return &EngagementCaseUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *EngagementCaseClient) UpdateOne(_m *EngagementCase) *EngagementCaseUpdateOne {
	mutation := newEngagementCaseMutation(c.config, OpUpdateOne, withEngagementCase(_m))
	return &EngagementCaseUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *EngagementCaseClient) UpdateOneID(id string) *EngagementCaseUpdateOne {
	mutation := newEngagementCaseMutation(c.config, OpUpdateOne, withEngagementCaseID(id))
	return &EngagementCaseUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for EngagementCase.
func (c *EngagementCaseClient) Delete() *EngagementCaseDelete {
	mutation := newEngagementCaseMutation(c.config, OpDelete)
	return &EngagementCaseDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *EngagementCaseClient) DeleteOne(_m *EngagementCase) *EngagementCaseDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *EngagementCaseClient) DeleteOneID(id string) *EngagementCaseDeleteOne {
	builder := c.Delete().Where(engagementcase.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &EngagementCaseDeleteOne{builder}
}

// Query returns a query builder for EngagementCase.
func (c *EngagementCaseClient) Query() *EngagementCaseQuery {
	return &EngagementCaseQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeEngagementCase},
		inters: c.Interceptors(),
	}
}

// Get returns a EngagementCase entity by its id.
func (c *EngagementCaseClient) Get(ctx context.Context, id string) (*EngagementCase, error) {
	return c.Query().Where(engagementcase.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *EngagementCaseClient) GetX(ctx context.Context, id string) *EngagementCase {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *EngagementCaseClient) Hooks() []Hook {
	return c.hooks.EngagementCase
}

// Interceptors returns the client interceptors.
func (c *EngagementCaseClient) Interceptors() []Interceptor {
	return c.inters.EngagementCase
}

func (c *EngagementCaseClient) mutate(ctx context.Context, m *EngagementCaseMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&EngagementCaseCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&EngagementCaseUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&EngagementCaseUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&EngagementCaseDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown EngagementCase mutation op: %q", m.Op())
	}
}

// FeedbackCaseClient is a client for the FeedbackCase schema.
type FeedbackCaseClient struct {
	config
}

// NewFeedbackCaseClient returns a client for the FeedbackCase from the given config.
func NewFeedbackCaseClient(c config) *FeedbackCaseClient {
	return &FeedbackCaseClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `feedbackcase.Hooks(f(g(h())))`.
func (c *FeedbackCaseClient) Use(hooks ...Hook) {
	c.hooks.FeedbackCase = append(c.hooks.FeedbackCase, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `feedbackcase.Intercept(f(g(h())))`.
func (c *FeedbackCaseClient) Intercept(interceptors ...Interceptor) {
	c.inters.FeedbackCase = append(c.inters.FeedbackCase, interceptors...)
}

// Create returns a builder for creating a FeedbackCase entity.
func (c *FeedbackCaseClient) Create() *FeedbackCaseCreate {
	mutation := newFeedbackCaseMutation(c.config, OpCreate)
	return &FeedbackCaseCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of FeedbackCase entities.
func (c *FeedbackCaseClient) CreateBulk(builders ...*FeedbackCaseCreate) *FeedbackCaseCreateBulk {
	return &FeedbackCaseCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *FeedbackCaseClient) MapCreateBulk(slice any, setFunc func(*FeedbackCaseCreate, int)) *FeedbackCaseCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &FeedbackCaseCreateBulk{err: fmt.Errorf("calling to FeedbackCaseClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*FeedbackCaseCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &FeedbackCaseCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for FeedbackCase.
func (c *FeedbackCaseClient) Update() *FeedbackCaseUpdate {
	mutation := newFeedbackCaseMutation(c.config, OpUpdate)
	return &FeedbackCaseUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *FeedbackCaseClient) UpdateOne(_m *FeedbackCase) *FeedbackCaseUpdateOne {
	mutation := newFeedbackCaseMutation(c.config, OpUpdateOne, withFeedbackCase(_m))
	return &FeedbackCaseUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *FeedbackCaseClient) UpdateOneID(id string) *FeedbackCaseUpdateOne {
	mutation := newFeedbackCaseMutation(c.config, OpUpdateOne, withFeedbackCaseID(id))
	return &FeedbackCaseUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for FeedbackCase.
func (c *FeedbackCaseClient) Delete() *FeedbackCaseDelete {
	mutation := newFeedbackCaseMutation(c.config, OpDelete)
	return &FeedbackCaseDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *FeedbackCaseClient) DeleteOne(_m *FeedbackCase) *FeedbackCaseDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *FeedbackCaseClient) DeleteOneID(id string) *FeedbackCaseDeleteOne {
	builder := c.Delete().Where(feedbackcase.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &FeedbackCaseDeleteOne{builder}
}

// Query returns a query builder for FeedbackCase.
func (c *FeedbackCaseClient) Query() *FeedbackCaseQuery {
	return &FeedbackCaseQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeFeedbackCase},
		inters: c.Interceptors(),
	}
}

// Get returns a FeedbackCase entity by its id.
func (c *FeedbackCaseClient) Get(ctx context.Context, id string) (*FeedbackCase, error) {
	return c.Query().Where(feedbackcase.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *FeedbackCaseClient) GetX(ctx context.Context, id string) *FeedbackCase {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *FeedbackCaseClient) Hooks() []Hook {
	return c.hooks.FeedbackCase
}

// Interceptors returns the client interceptors.
func (c *FeedbackCaseClient) Interceptors() []Interceptor {
	return c.inters.FeedbackCase
}

func (c *FeedbackCaseClient) mutate(ctx context.Context, m *FeedbackCaseMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&FeedbackCaseCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&FeedbackCaseUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&FeedbackCaseUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&FeedbackCaseDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown FeedbackCase mutation op: %q", m.Op())
	}
}

// HumanReviewClient is a client for the HumanReview schema.
type HumanReviewClient struct {
	config
}

// NewHumanReviewClient returns a client for the HumanReview from the given config.
func NewHumanReviewClient(c config) *HumanReviewClient {
	return &HumanReviewClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `humanreview.Hooks(f(g(h())))`.
func (c *HumanReviewClient) Use(hooks ...Hook) {
	c.hooks.HumanReview = append(c.hooks.HumanReview, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `humanreview.Intercept(f(g(h())))`.
func (c *HumanReviewClient) Intercept(interceptors ...Interceptor) {
	c.inters.HumanReview = append(c.inters.HumanReview, interceptors...)
}

// Create returns a builder for creating a HumanReview entity.
func (c *HumanReviewClient) Create() *HumanReviewCreate {
	mutation := newHumanReviewMutation(c.config, OpCreate)
	return &HumanReviewCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of HumanReview entities.
func (c *HumanReviewClient) CreateBulk(builders ...*HumanReviewCreate) *HumanReviewCreateBulk {
	return &HumanReviewCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *HumanReviewClient) MapCreateBulk(slice any, setFunc func(*HumanReviewCreate, int)) *HumanReviewCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &HumanReviewCreateBulk{err: fmt.Errorf("calling to HumanReviewClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*HumanReviewCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &HumanReviewCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for HumanReview.
func (c *HumanReviewClient) Update() *HumanReviewUpdate {
	mutation := newHumanReviewMutation(c.config, OpUpdate)
	return &HumanReviewUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *HumanReviewClient) UpdateOne(_m *HumanReview) *HumanReviewUpdateOne {
	mutation := newHumanReviewMutation(c.config, OpUpdateOne, withHumanReview(_m))
	return &HumanReviewUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *HumanReviewClient) UpdateOneID(id string) *HumanReviewUpdateOne {
	mutation := newHumanReviewMutation(c.config, OpUpdateOne, withHumanReviewID(id))
	return &HumanReviewUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for HumanReview.
func (c *HumanReviewClient) Delete() *HumanReviewDelete {
	mutation := newHumanReviewMutation(c.config, OpDelete)
	return &HumanReviewDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *HumanReviewClient) DeleteOne(_m *HumanReview) *HumanReviewDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *HumanReviewClient) DeleteOneID(id string) *HumanReviewDeleteOne {
	builder := c.Delete().Where(humanreview.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &HumanReviewDeleteOne{builder}
}

// Query returns a query builder for HumanReview.
func (c *HumanReviewClient) Query() *HumanReviewQuery {
	return &HumanReviewQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeHumanReview},
		inters: c.Interceptors(),
	}
}

// Get returns a HumanReview entity by its id.
func (c *HumanReviewClient) Get(ctx context.Context, id string) (*HumanReview, error) {
	return c.Query().Where(humanreview.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *HumanReviewClient) GetX(ctx context.Context, id string) *HumanReview {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *HumanReviewClient) Hooks() []Hook {
	return c.hooks.HumanReview
}

// Interceptors returns the client interceptors.
func (c *HumanReviewClient) Interceptors() []Interceptor {
	return c.inters.HumanReview
}

func (c *HumanReviewClient) mutate(ctx context.Context, m *HumanReviewMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&HumanReviewCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&HumanReviewUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&HumanReviewUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&HumanReviewDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown HumanReview mutation op: %q", m.Op())
	}
}

// ManufacturingCaseClient is a client for the ManufacturingCase schema.
type ManufacturingCaseClient struct {
	config
}

// NewManufacturingCaseClient returns a client for the ManufacturingCase from the given config.
func NewManufacturingCaseClient(c config) *ManufacturingCaseClient {
	return &ManufacturingCaseClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `manufacturingcase.Hooks(f(g(h())))`.
func (c *ManufacturingCaseClient) Use(hooks ...Hook) {
	c.hooks.ManufacturingCase = append(c.hooks.ManufacturingCase, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `manufacturingcase.Intercept(f(g(h())))`.
func (c *ManufacturingCaseClient) Intercept(interceptors ...Interceptor) {
	c.inters.ManufacturingCase = append(c.inters.ManufacturingCase, interceptors...)
}

// Create returns a builder for creating a ManufacturingCase entity.
func (c *ManufacturingCaseClient) Create() *ManufacturingCaseCreate {
	mutation := newManufacturingCaseMutation(c.config, OpCreate)
	return &ManufacturingCaseCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ManufacturingCase entities.
func (c *ManufacturingCaseClient) CreateBulk(builders ...*ManufacturingCaseCreate) *ManufacturingCaseCreateBulk {
	return &ManufacturingCaseCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ManufacturingCaseClient) MapCreateBulk(slice any, setFunc func(*ManufacturingCaseCreate, int)) *ManufacturingCaseCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ManufacturingCaseCreateBulk{err: fmt.Errorf("calling to ManufacturingCaseClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ManufacturingCaseCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ManufacturingCaseCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ManufacturingCase.
func (c *ManufacturingCaseClient) Update() *ManufacturingCaseUpdate {
	mutation := newManufacturingCaseMutation(c.config, OpUpdate)
	return &ManufacturingCaseUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ManufacturingCaseClient) UpdateOne(_m *ManufacturingCase) *ManufacturingCaseUpdateOne {
	mutation := newManufacturingCaseMutation(c.config, OpUpdateOne, withManufacturingCase(_m))
	return &ManufacturingCaseUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ManufacturingCaseClient) UpdateOneID(id string) *ManufacturingCaseUpdateOne {
	mutation := newManufacturingCaseMutation(c.config, OpUpdateOne, withManufacturingCaseID(id))
	return &ManufacturingCaseUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ManufacturingCase.
func (c *ManufacturingCaseClient) Delete() *ManufacturingCaseDelete {
	mutation := newManufacturingCaseMutation(c.config, OpDelete)
	return &ManufacturingCaseDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ManufacturingCaseClient) DeleteOne(_m *ManufacturingCase) *ManufacturingCaseDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ManufacturingCaseClient) DeleteOneID(id string) *ManufacturingCaseDeleteOne {
	builder := c.Delete().Where(manufacturingcase.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ManufacturingCaseDeleteOne{builder}
}

// Query returns a query builder for ManufacturingCase.
func (c *ManufacturingCaseClient) Query() *ManufacturingCaseQuery {
	return &ManufacturingCaseQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeManufacturingCase},
		inters: c.Interceptors(),
	}
}

// Get returns a ManufacturingCase entity by its id.
func (c *ManufacturingCaseClient) Get(ctx context.Context, id string) (*ManufacturingCase, error) {
	return c.Query().Where(manufacturingcase.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ManufacturingCaseClient) GetX(ctx context.Context, id string) *ManufacturingCase {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ManufacturingCaseClient) Hooks() []Hook {
	return c.hooks.ManufacturingCase
}

// Interceptors returns the client interceptors.
func (c *ManufacturingCaseClient) Interceptors() []Interceptor {
	return c.inters.ManufacturingCase
}

func (c *ManufacturingCaseClient) mutate(ctx context.Context, m *ManufacturingCaseMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ManufacturingCaseCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ManufacturingCaseUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ManufacturingCaseUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ManufacturingCaseDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ManufacturingCase mutation op: %q", m.Op())
	}
}

// PipelineStateClient is a client for the PipelineState schema.
type PipelineStateClient struct {
	config
}

// NewPipelineStateClient returns a client for the PipelineState from the given config.
func NewPipelineStateClient(c config) *PipelineStateClient {
	return &PipelineStateClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `pipelinestate.Hooks(f(g(h())))`.
func (c *PipelineStateClient) Use(hooks ...Hook) {
	c.hooks.PipelineState = append(c.hooks.PipelineState, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `pipelinestate.Intercept(f(g(h())))`.
func (c *PipelineStateClient) Intercept(interceptors ...Interceptor) {
	c.inters.PipelineState = append(c.inters.PipelineState, interceptors...)
}

// Create returns a builder for creating a PipelineState entity.
func (c *PipelineStateClient) Create() *PipelineStateCreate {
	mutation := newPipelineStateMutation(c.config, OpCreate)
	return &PipelineStateCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PipelineState entities.
func (c *PipelineStateClient) CreateBulk(builders ...*PipelineStateCreate) *PipelineStateCreateBulk {
	return &PipelineStateCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PipelineStateClient) MapCreateBulk(slice any, setFunc func(*PipelineStateCreate, int)) *PipelineStateCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PipelineStateCreateBulk{err: fmt.Errorf("calling to PipelineStateClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PipelineStateCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PipelineStateCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PipelineState.
func (c *PipelineStateClient) Update() *PipelineStateUpdate {
	mutation := newPipelineStateMutation(c.config, OpUpdate)
	return &PipelineStateUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PipelineStateClient) UpdateOne(_m *PipelineState) *PipelineStateUpdateOne {
	mutation := newPipelineStateMutation(c.config, OpUpdateOne, withPipelineState(_m))
	return &PipelineStateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PipelineStateClient) UpdateOneID(id string) *PipelineStateUpdateOne {
	mutation := newPipelineStateMutation(c.config, OpUpdateOne, withPipelineStateID(id))
	return &PipelineStateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PipelineState.
func (c *PipelineStateClient) Delete() *PipelineStateDelete {
	mutation := newPipelineStateMutation(c.config, OpDelete)
	return &PipelineStateDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PipelineStateClient) DeleteOne(_m *PipelineState) *PipelineStateDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PipelineStateClient) DeleteOneID(id string) *PipelineStateDeleteOne {
	builder := c.Delete().Where(pipelinestate.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PipelineStateDeleteOne{builder}
}

// Query returns a query builder for PipelineState.
func (c *PipelineStateClient) Query() *PipelineStateQuery {
	return &PipelineStateQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePipelineState},
		inters: c.Interceptors(),
	}
}

// Get returns a PipelineState entity by its id.
func (c *PipelineStateClient) Get(ctx context.Context, id string) (*PipelineState, error) {
	return c.Query().Where(pipelinestate.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PipelineStateClient) GetX(ctx context.Context, id string) *PipelineState {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *PipelineStateClient) Hooks() []Hook {
	return c.hooks.PipelineState
}

// Interceptors returns the client interceptors.
func (c *PipelineStateClient) Interceptors() []Interceptor {
	return c.inters.PipelineState
}

func (c *PipelineStateClient) mutate(ctx context.Context, m *PipelineStateMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PipelineStateCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PipelineStateUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PipelineStateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PipelineStateDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PipelineState mutation op: %q", m.Op())
	}
}

// RcaCaseClient is a client for the RcaCase schema.
type RcaCaseClient struct {
	config
}

// NewRcaCaseClient returns a client for the RcaCase from the given config.
func NewRcaCaseClient(c config) *RcaCaseClient {
	return &RcaCaseClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `rcacase.Hooks(f(g(h())))`.
func (c *RcaCaseClient) Use(hooks ...Hook) {
	c.hooks.RcaCase = append(c.hooks.RcaCase, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `rcacase.Intercept(f(g(h())))`.
func (c *RcaCaseClient) Intercept(interceptors ...Interceptor) {
	c.inters.RcaCase = append(c.inters.RcaCase, interceptors...)
}

// Create returns a builder for creating a RcaCase entity.
func (c *RcaCaseClient) Create() *RcaCaseCreate {
	mutation := newRcaCaseMutation(c.config, OpCreate)
	return &RcaCaseCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of RcaCase entities.
func (c *RcaCaseClient) CreateBulk(builders ...*RcaCaseCreate) *RcaCaseCreateBulk {
	return &RcaCaseCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *RcaCaseClient) MapCreateBulk(slice any, setFunc func(*RcaCaseCreate, int)) *RcaCaseCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &RcaCaseCreateBulk{err: fmt.Errorf("calling to RcaCaseClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*RcaCaseCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &RcaCaseCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for RcaCase.
func (c *RcaCaseClient) Update() *RcaCaseUpdate {
	mutation := newRcaCaseMutation(c.config, OpUpdate)
	return &RcaCaseUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *RcaCaseClient) UpdateOne(_m *RcaCase) *RcaCaseUpdateOne {
	mutation := newRcaCaseMutation(c.config, OpUpdateOne, withRcaCase(_m))
	return &RcaCaseUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *RcaCaseClient) UpdateOneID(id string) *RcaCaseUpdateOne {
	mutation := newRcaCaseMutation(c.config, OpUpdateOne, withRcaCaseID(id))
	return &RcaCaseUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for RcaCase.
func (c *RcaCaseClient) Delete() *RcaCaseDelete {
	mutation := newRcaCaseMutation(c.config, OpDelete)
	return &RcaCaseDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *RcaCaseClient) DeleteOne(_m *RcaCase) *RcaCaseDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *RcaCaseClient) DeleteOneID(id string) *RcaCaseDeleteOne {
	builder := c.Delete().Where(rcacase.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &RcaCaseDeleteOne{builder}
}

// Query returns a query builder for RcaCase.
func (c *RcaCaseClient) Query() *RcaCaseQuery {
	return &RcaCaseQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeRcaCase},
		inters: c.Interceptors(),
	}
}

// Get returns a RcaCase entity by its id.
func (c *RcaCaseClient) Get(ctx context.Context, id string) (*RcaCase, error) {
	return c.Query().Where(rcacase.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *RcaCaseClient) GetX(ctx context.Context, id string) *RcaCase {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *RcaCaseClient) Hooks() []Hook {
	return c.hooks.RcaCase
}

// Interceptors returns the client interceptors.
func (c *RcaCaseClient) Interceptors() []Interceptor {
	return c.inters.RcaCase
}

func (c *RcaCaseClient) mutate(ctx context.Context, m *RcaCaseMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&RcaCaseCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&RcaCaseUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&RcaCaseUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&RcaCaseDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown RcaCase mutation op: %q", m.Op())
	}
}

// SchedulingCaseClient is a client for the SchedulingCase schema.
type SchedulingCaseClient struct {
	config
}

// NewSchedulingCaseClient returns a client for the SchedulingCase from the given config.
func NewSchedulingCaseClient(c config) *SchedulingCaseClient {
	return &SchedulingCaseClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `schedulingcase.Hooks(f(g(h())))`.
func (c *SchedulingCaseClient) Use(hooks ...Hook) {
	c.hooks.SchedulingCase = append(c.hooks.SchedulingCase, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `schedulingcase.Intercept(f(g(h())))`.
func (c *SchedulingCaseClient) Intercept(interceptors ...Interceptor) {
	c.inters.SchedulingCase = append(c.inters.SchedulingCase, interceptors...)
}

// Create returns a builder for creating a SchedulingCase entity.
func (c *SchedulingCaseClient) Create() *SchedulingCaseCreate {
	mutation := newSchedulingCaseMutation(c.config, OpCreate)
	return &SchedulingCaseCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SchedulingCase entities.
func (c *SchedulingCaseClient) CreateBulk(builders ...*SchedulingCaseCreate) *SchedulingCaseCreateBulk {
	return &SchedulingCaseCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SchedulingCaseClient) MapCreateBulk(slice any, setFunc func(*SchedulingCaseCreate, int)) *SchedulingCaseCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SchedulingCaseCreateBulk{err: fmt.Errorf("calling to SchedulingCaseClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SchedulingCaseCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SchedulingCaseCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SchedulingCase.
func (c *SchedulingCaseClient) Update() *SchedulingCaseUpdate {
	mutation := newSchedulingCaseMutation(c.config, OpUpdate)
	return &SchedulingCaseUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SchedulingCaseClient) UpdateOne(_m *SchedulingCase) *SchedulingCaseUpdateOne {
	mutation := newSchedulingCaseMutation(c.config, OpUpdateOne, withSchedulingCase(_m))
	return &SchedulingCaseUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SchedulingCaseClient) UpdateOneID(id string) *SchedulingCaseUpdateOne {
	mutation := newSchedulingCaseMutation(c.config, OpUpdateOne, withSchedulingCaseID(id))
	return &SchedulingCaseUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SchedulingCase.
func (c *SchedulingCaseClient) Delete() *SchedulingCaseDelete {
	mutation := newSchedulingCaseMutation(c.config, OpDelete)
	return &SchedulingCaseDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SchedulingCaseClient) DeleteOne(_m *SchedulingCase) *SchedulingCaseDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SchedulingCaseClient) DeleteOneID(id string) *SchedulingCaseDeleteOne {
	builder := c.Delete().Where(schedulingcase.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SchedulingCaseDeleteOne{builder}
}

// Query returns a query builder for SchedulingCase.
func (c *SchedulingCaseClient) Query() *SchedulingCaseQuery {
	return &SchedulingCaseQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSchedulingCase},
		inters: c.Interceptors(),
	}
}

// Get returns a SchedulingCase entity by its id.
func (c *SchedulingCaseClient) Get(ctx context.Context, id string) (*SchedulingCase, error) {
	return c.Query().Where(schedulingcase.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SchedulingCaseClient) GetX(ctx context.Context, id string) *SchedulingCase {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SchedulingCaseClient) Hooks() []Hook {
	return c.hooks.SchedulingCase
}

// Interceptors returns the client interceptors.
func (c *SchedulingCaseClient) Interceptors() []Interceptor {
	return c.inters.SchedulingCase
}

func (c *SchedulingCaseClient) mutate(ctx context.Context, m *SchedulingCaseMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SchedulingCaseCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SchedulingCaseUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SchedulingCaseUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SchedulingCaseDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SchedulingCase mutation op: %q", m.Op())
	}
}

// TelemetryEventClient is a client for the TelemetryEvent schema.
type TelemetryEventClient struct {
	config
}

// NewTelemetryEventClient returns a client for the TelemetryEvent from the given config.
func NewTelemetryEventClient(c config) *TelemetryEventClient {
	return &TelemetryEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `telemetryevent.Hooks(f(g(h())))`.
func (c *TelemetryEventClient) Use(hooks ...Hook) {
	c.hooks.TelemetryEvent = append(c.hooks.TelemetryEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `telemetryevent.Intercept(f(g(h())))`.
func (c *TelemetryEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.TelemetryEvent = append(c.inters.TelemetryEvent, interceptors...)
}

// Create returns a builder for creating a TelemetryEvent entity.
func (c *TelemetryEventClient) Create() *TelemetryEventCreate {
	mutation := newTelemetryEventMutation(c.config, OpCreate)
	return &TelemetryEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TelemetryEvent entities.
func (c *TelemetryEventClient) CreateBulk(builders ...*TelemetryEventCreate) *TelemetryEventCreateBulk {
	return &TelemetryEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TelemetryEventClient) MapCreateBulk(slice any, setFunc func(*TelemetryEventCreate, int)) *TelemetryEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TelemetryEventCreateBulk{err: fmt.Errorf("calling to TelemetryEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TelemetryEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TelemetryEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TelemetryEvent.
func (c *TelemetryEventClient) Update() *TelemetryEventUpdate {
	mutation := newTelemetryEventMutation(c.config, OpUpdate)
	return &TelemetryEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TelemetryEventClient) UpdateOne(_m *TelemetryEvent) *TelemetryEventUpdateOne {
	mutation := newTelemetryEventMutation(c.config, OpUpdateOne, withTelemetryEvent(_m))
	return &TelemetryEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TelemetryEventClient) UpdateOneID(id string) *TelemetryEventUpdateOne {
	mutation := newTelemetryEventMutation(c.config, OpUpdateOne, withTelemetryEventID(id))
	return &TelemetryEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TelemetryEvent.
func (c *TelemetryEventClient) Delete() *TelemetryEventDelete {
	mutation := newTelemetryEventMutation(c.config, OpDelete)
	return &TelemetryEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TelemetryEventClient) DeleteOne(_m *TelemetryEvent) *TelemetryEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TelemetryEventClient) DeleteOneID(id string) *TelemetryEventDeleteOne {
	builder := c.Delete().Where(telemetryevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TelemetryEventDeleteOne{builder}
}

// Query returns a query builder for TelemetryEvent.
func (c *TelemetryEventClient) Query() *TelemetryEventQuery {
	return &TelemetryEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTelemetryEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a TelemetryEvent entity by its id.
func (c *TelemetryEventClient) Get(ctx context.Context, id string) (*TelemetryEvent, error) {
	return c.Query().Where(telemetryevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TelemetryEventClient) GetX(ctx context.Context, id string) *TelemetryEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *TelemetryEventClient) Hooks() []Hook {
	return c.hooks.TelemetryEvent
}

// Interceptors returns the client interceptors.
func (c *TelemetryEventClient) Interceptors() []Interceptor {
	return c.inters.TelemetryEvent
}

func (c *TelemetryEventClient) mutate(ctx context.Context, m *TelemetryEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TelemetryEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TelemetryEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TelemetryEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TelemetryEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown TelemetryEvent mutation op: %q", m.Op())
	}
}

// VehicleClient is a client for the Vehicle schema.
type VehicleClient struct {
	config
}

// NewVehicleClient returns a client for the Vehicle from the given config.
func NewVehicleClient(c config) *VehicleClient {
	return &VehicleClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `vehicle.Hooks(f(g(h())))`.
func (c *VehicleClient) Use(hooks ...Hook) {
	c.hooks.Vehicle = append(c.hooks.Vehicle, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `vehicle.Intercept(f(g(h())))`.
func (c *VehicleClient) Intercept(interceptors ...Interceptor) {
	c.inters.Vehicle = append(c.inters.Vehicle, interceptors...)
}

// Create returns a builder for creating a Vehicle entity.
func (c *VehicleClient) Create() *VehicleCreate {
	mutation := newVehicleMutation(c.config, OpCreate)
	return &VehicleCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Vehicle entities.
func (c *VehicleClient) CreateBulk(builders ...*VehicleCreate) *VehicleCreateBulk {
	return &VehicleCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *VehicleClient) MapCreateBulk(slice any, setFunc func(*VehicleCreate, int)) *VehicleCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &VehicleCreateBulk{err: fmt.Errorf("calling to VehicleClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*VehicleCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &VehicleCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Vehicle.
func (c *VehicleClient) Update() *VehicleUpdate {
	mutation := newVehicleMutation(c.config, OpUpdate)
	return &VehicleUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *VehicleClient) UpdateOne(_m *Vehicle) *VehicleUpdateOne {
	mutation := newVehicleMutation(c.config, OpUpdateOne, withVehicle(_m))
	return &VehicleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *VehicleClient) UpdateOneID(id string) *VehicleUpdateOne {
	mutation := newVehicleMutation(c.config, OpUpdateOne, withVehicleID(id))
	return &VehicleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Vehicle.
func (c *VehicleClient) Delete() *VehicleDelete {
	mutation := newVehicleMutation(c.config, OpDelete)
	return &VehicleDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *VehicleClient) DeleteOne(_m *Vehicle) *VehicleDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *VehicleClient) DeleteOneID(id string) *VehicleDeleteOne {
	builder := c.Delete().Where(vehicle.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &VehicleDeleteOne{builder}
}

// Query returns a query builder for Vehicle.
func (c *VehicleClient) Query() *VehicleQuery {
	return &VehicleQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeVehicle},
		inters: c.Interceptors(),
	}
}

// Get returns a Vehicle entity by its id.
func (c *VehicleClient) Get(ctx context.Context, id string) (*Vehicle, error) {
	return c.Query().Where(vehicle.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *VehicleClient) GetX(ctx context.Context, id string) *Vehicle {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *VehicleClient) Hooks() []Hook {
	return c.hooks.Vehicle
}

// Interceptors returns the client interceptors.
func (c *VehicleClient) Interceptors() []Interceptor {
	return c.inters.Vehicle
}

func (c *VehicleClient) mutate(ctx context.Context, m *VehicleMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&VehicleCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&VehicleUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&VehicleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&VehicleDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Vehicle mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		AnomalyCase, Booking, BusMessage, CallContext, CommunicationCase, DiagnosisCase,
		EngagementCase, FeedbackCase, HumanReview, ManufacturingCase, PipelineState,
		RcaCase, SchedulingCase, TelemetryEvent, Vehicle []ent.Hook
	}
	inters struct {
		AnomalyCase, Booking, BusMessage, CallContext, CommunicationCase, DiagnosisCase,
		EngagementCase, FeedbackCase, HumanReview, ManufacturingCase, PipelineState,
		RcaCase, SchedulingCase, TelemetryEvent, Vehicle []ent.Interceptor
	}
)
