// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/google/uuid"
	"github.com/tabmate/outings-tracker/gen/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/tabmate/outings-tracker/gen/ent/orderitem"
	"github.com/tabmate/outings-tracker/gen/ent/otherfee"
	"github.com/tabmate/outings-tracker/gen/ent/outing"
	"github.com/tabmate/outings-tracker/gen/ent/receipt"
	"github.com/tabmate/outings-tracker/gen/ent/receiptimage"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// OrderItem is the client for interacting with the OrderItem builders.
	OrderItem *OrderItemClient
	// OtherFee is the client for interacting with the OtherFee builders.
	OtherFee *OtherFeeClient
	// Outing is the client for interacting with the Outing builders.
	Outing *OutingClient
	// Receipt is the client for interacting with the Receipt builders.
	Receipt *ReceiptClient
	// ReceiptImage is the client for interacting with the ReceiptImage builders.
	ReceiptImage *ReceiptImageClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.OrderItem = NewOrderItemClient(c.config)
	c.OtherFee = NewOtherFeeClient(c.config)
	c.Outing = NewOutingClient(c.config)
	c.Receipt = NewReceiptClient(c.config)
	c.ReceiptImage = NewReceiptImageClient(c.config)
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
		ctx:          ctx,
		config:       cfg,
		OrderItem:    NewOrderItemClient(cfg),
		OtherFee:     NewOtherFeeClient(cfg),
		Outing:       NewOutingClient(cfg),
		Receipt:      NewReceiptClient(cfg),
		ReceiptImage: NewReceiptImageClient(cfg),
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
		ctx:          ctx,
		config:       cfg,
		OrderItem:    NewOrderItemClient(cfg),
		OtherFee:     NewOtherFeeClient(cfg),
		Outing:       NewOutingClient(cfg),
		Receipt:      NewReceiptClient(cfg),
		ReceiptImage: NewReceiptImageClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		OrderItem.
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
	c.OrderItem.Use(hooks...)
	c.OtherFee.Use(hooks...)
	c.Outing.Use(hooks...)
	c.Receipt.Use(hooks...)
	c.ReceiptImage.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.OrderItem.Intercept(interceptors...)
	c.OtherFee.Intercept(interceptors...)
	c.Outing.Intercept(interceptors...)
	c.Receipt.Intercept(interceptors...)
	c.ReceiptImage.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *OrderItemMutation:
		return c.OrderItem.mutate(ctx, m)
	case *OtherFeeMutation:
		return c.OtherFee.mutate(ctx, m)
	case *OutingMutation:
		return c.Outing.mutate(ctx, m)
	case *ReceiptMutation:
		return c.Receipt.mutate(ctx, m)
	case *ReceiptImageMutation:
		return c.ReceiptImage.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// OrderItemClient is a client for the OrderItem schema.
type OrderItemClient struct {
	config
}

// NewOrderItemClient returns a client for the OrderItem from the given config.
func NewOrderItemClient(c config) *OrderItemClient {
	return &OrderItemClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `orderitem.Hooks(f(g(h())))`.
func (c *OrderItemClient) Use(hooks ...Hook) {
	c.hooks.OrderItem = append(c.hooks.OrderItem, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `orderitem.Intercept(f(g(h())))`.
func (c *OrderItemClient) Intercept(interceptors ...Interceptor) {
	c.inters.OrderItem = append(c.inters.OrderItem, interceptors...)
}

// Create returns a builder for creating a OrderItem entity.
func (c *OrderItemClient) Create() *OrderItemCreate {
	mutation := newOrderItemMutation(c.config, OpCreate)
	return &OrderItemCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of OrderItem entities.
func (c *OrderItemClient) CreateBulk(builders ...*OrderItemCreate) *OrderItemCreateBulk {
	return &OrderItemCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *OrderItemClient) MapCreateBulk(slice any, setFunc func(*OrderItemCreate, int)) *OrderItemCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &OrderItemCreateBulk{err: fmt.Errorf("calling to OrderItemClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*OrderItemCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &OrderItemCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for OrderItem.
func (c *OrderItemClient) Update() *OrderItemUpdate {
	mutation := newOrderItemMutation(c.config, OpUpdate)
	return &OrderItemUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *OrderItemClient) UpdateOne(_m *OrderItem) *OrderItemUpdateOne {
	mutation := newOrderItemMutation(c.config, OpUpdateOne, withOrderItem(_m))
	return &OrderItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *OrderItemClient) UpdateOneID(id uuid.UUID) *OrderItemUpdateOne {
	mutation := newOrderItemMutation(c.config, OpUpdateOne, withOrderItemID(id))
	return &OrderItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for OrderItem.
func (c *OrderItemClient) Delete() *OrderItemDelete {
	mutation := newOrderItemMutation(c.config, OpDelete)
	return &OrderItemDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *OrderItemClient) DeleteOne(_m *OrderItem) *OrderItemDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *OrderItemClient) DeleteOneID(id uuid.UUID) *OrderItemDeleteOne {
	builder := c.Delete().Where(orderitem.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &OrderItemDeleteOne{builder}
}

// Query returns a query builder for OrderItem.
func (c *OrderItemClient) Query() *OrderItemQuery {
	return &OrderItemQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeOrderItem},
		inters: c.Interceptors(),
	}
}

// Get returns a OrderItem entity by its id.
func (c *OrderItemClient) Get(ctx context.Context, id uuid.UUID) (*OrderItem, error) {
	return c.Query().Where(orderitem.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *OrderItemClient) GetX(ctx context.Context, id uuid.UUID) *OrderItem {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryReceipt queries the receipt edge of a OrderItem.
func (c *OrderItemClient) QueryReceipt(_m *OrderItem) *ReceiptQuery {
	query := (&ReceiptClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(orderitem.Table, orderitem.FieldID, id),
			sqlgraph.To(receipt.Table, receipt.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, orderitem.ReceiptTable, orderitem.ReceiptColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *OrderItemClient) Hooks() []Hook {
	return c.hooks.OrderItem
}

// Interceptors returns the client interceptors.
func (c *OrderItemClient) Interceptors() []Interceptor {
	return c.inters.OrderItem
}

func (c *OrderItemClient) mutate(ctx context.Context, m *OrderItemMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&OrderItemCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&OrderItemUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&OrderItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&OrderItemDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown OrderItem mutation op: %q", m.Op())
	}
}

// OtherFeeClient is a client for the OtherFee schema.
type OtherFeeClient struct {
	config
}

// NewOtherFeeClient returns a client for the OtherFee from the given config.
func NewOtherFeeClient(c config) *OtherFeeClient {
	return &OtherFeeClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `otherfee.Hooks(f(g(h())))`.
func (c *OtherFeeClient) Use(hooks ...Hook) {
	c.hooks.OtherFee = append(c.hooks.OtherFee, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `otherfee.Intercept(f(g(h())))`.
func (c *OtherFeeClient) Intercept(interceptors ...Interceptor) {
	c.inters.OtherFee = append(c.inters.OtherFee, interceptors...)
}

// Create returns a builder for creating a OtherFee entity.
func (c *OtherFeeClient) Create() *OtherFeeCreate {
	mutation := newOtherFeeMutation(c.config, OpCreate)
	return &OtherFeeCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of OtherFee entities.
func (c *OtherFeeClient) CreateBulk(builders ...*OtherFeeCreate) *OtherFeeCreateBulk {
	return &OtherFeeCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *OtherFeeClient) MapCreateBulk(slice any, setFunc func(*OtherFeeCreate, int)) *OtherFeeCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &OtherFeeCreateBulk{err: fmt.Errorf("calling to OtherFeeClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*OtherFeeCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &OtherFeeCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for OtherFee.
func (c *OtherFeeClient) Update() *OtherFeeUpdate {
	mutation := newOtherFeeMutation(c.config, OpUpdate)
	return &OtherFeeUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *OtherFeeClient) UpdateOne(_m *OtherFee) *OtherFeeUpdateOne {
	mutation := newOtherFeeMutation(c.config, OpUpdateOne, withOtherFee(_m))
	return &OtherFeeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *OtherFeeClient) UpdateOneID(id uuid.UUID) *OtherFeeUpdateOne {
	mutation := newOtherFeeMutation(c.config, OpUpdateOne, withOtherFeeID(id))
	return &OtherFeeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for OtherFee.
func (c *OtherFeeClient) Delete() *OtherFeeDelete {
	mutation := newOtherFeeMutation(c.config, OpDelete)
	return &OtherFeeDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *OtherFeeClient) DeleteOne(_m *OtherFee) *OtherFeeDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *OtherFeeClient) DeleteOneID(id uuid.UUID) *OtherFeeDeleteOne {
	builder := c.Delete().Where(otherfee.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &OtherFeeDeleteOne{builder}
}

// Query returns a query builder for OtherFee.
func (c *OtherFeeClient) Query() *OtherFeeQuery {
	return &OtherFeeQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeOtherFee},
		inters: c.Interceptors(),
	}
}

// Get returns a OtherFee entity by its id.
func (c *OtherFeeClient) Get(ctx context.Context, id uuid.UUID) (*OtherFee, error) {
	return c.Query().Where(otherfee.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *OtherFeeClient) GetX(ctx context.Context, id uuid.UUID) *OtherFee {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryReceipt queries the receipt edge of a OtherFee.
func (c *OtherFeeClient) QueryReceipt(_m *OtherFee) *ReceiptQuery {
	query := (&ReceiptClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(otherfee.Table, otherfee.FieldID, id),
			sqlgraph.To(receipt.Table, receipt.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, otherfee.ReceiptTable, otherfee.ReceiptColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *OtherFeeClient) Hooks() []Hook {
	return c.hooks.OtherFee
}

// Interceptors returns the client interceptors.
func (c *OtherFeeClient) Interceptors() []Interceptor {
	return c.inters.OtherFee
}

func (c *OtherFeeClient) mutate(ctx context.Context, m *OtherFeeMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&OtherFeeCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&OtherFeeUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&OtherFeeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&OtherFeeDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown OtherFee mutation op: %q", m.Op())
	}
}

// OutingClient is a client for the Outing schema.
type OutingClient struct {
	config
}

// NewOutingClient returns a client for the Outing from the given config.
func NewOutingClient(c config) *OutingClient {
	return &OutingClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `outing.Hooks(f(g(h())))`.
func (c *OutingClient) Use(hooks ...Hook) {
	c.hooks.Outing = append(c.hooks.Outing, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `outing.Intercept(f(g(h())))`.
func (c *OutingClient) Intercept(interceptors ...Interceptor) {
	c.inters.Outing = append(c.inters.Outing, interceptors...)
}

// Create returns a builder for creating a Outing entity.
func (c *OutingClient) Create() *OutingCreate {
	mutation := newOutingMutation(c.config, OpCreate)
	return &OutingCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Outing entities.
func (c *OutingClient) CreateBulk(builders ...*OutingCreate) *OutingCreateBulk {
	return &OutingCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *OutingClient) MapCreateBulk(slice any, setFunc func(*OutingCreate, int)) *OutingCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &OutingCreateBulk{err: fmt.Errorf("calling to OutingClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*OutingCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &OutingCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Outing.
func (c *OutingClient) Update() *OutingUpdate {
	mutation := newOutingMutation(c.config, OpUpdate)
	return &OutingUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *OutingClient) UpdateOne(_m *Outing) *OutingUpdateOne {
	mutation := newOutingMutation(c.config, OpUpdateOne, withOuting(_m))
	return &OutingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *OutingClient) UpdateOneID(id uuid.UUID) *OutingUpdateOne {
	mutation := newOutingMutation(c.config, OpUpdateOne, withOutingID(id))
	return &OutingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Outing.
func (c *OutingClient) Delete() *OutingDelete {
	mutation := newOutingMutation(c.config, OpDelete)
	return &OutingDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *OutingClient) DeleteOne(_m *Outing) *OutingDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *OutingClient) DeleteOneID(id uuid.UUID) *OutingDeleteOne {
	builder := c.Delete().Where(outing.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &OutingDeleteOne{builder}
}

// Query returns a query builder for Outing.
func (c *OutingClient) Query() *OutingQuery {
	return &OutingQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeOuting},
		inters: c.Interceptors(),
	}
}

// Get returns a Outing entity by its id.
func (c *OutingClient) Get(ctx context.Context, id uuid.UUID) (*Outing, error) {
	return c.Query().Where(outing.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *OutingClient) GetX(ctx context.Context, id uuid.UUID) *Outing {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryImages queries the images edge of a Outing.
func (c *OutingClient) QueryImages(_m *Outing) *ReceiptImageQuery {
	query := (&ReceiptImageClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(outing.Table, outing.FieldID, id),
			sqlgraph.To(receiptimage.Table, receiptimage.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, outing.ImagesTable, outing.ImagesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *OutingClient) Hooks() []Hook {
	return c.hooks.Outing
}

// Interceptors returns the client interceptors.
func (c *OutingClient) Interceptors() []Interceptor {
	return c.inters.Outing
}

func (c *OutingClient) mutate(ctx context.Context, m *OutingMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&OutingCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&OutingUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&OutingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&OutingDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Outing mutation op: %q", m.Op())
	}
}

// ReceiptClient is a client for the Receipt schema.
type ReceiptClient struct {
	config
}

// NewReceiptClient returns a client for the Receipt from the given config.
func NewReceiptClient(c config) *ReceiptClient {
	return &ReceiptClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `receipt.Hooks(f(g(h())))`.
func (c *ReceiptClient) Use(hooks ...Hook) {
	c.hooks.Receipt = append(c.hooks.Receipt, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `receipt.Intercept(f(g(h())))`.
func (c *ReceiptClient) Intercept(interceptors ...Interceptor) {
	c.inters.Receipt = append(c.inters.Receipt, interceptors...)
}

// Create returns a builder for creating a Receipt entity.
func (c *ReceiptClient) Create() *ReceiptCreate {
	mutation := newReceiptMutation(c.config, OpCreate)
	return &ReceiptCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Receipt entities.
func (c *ReceiptClient) CreateBulk(builders ...*ReceiptCreate) *ReceiptCreateBulk {
	return &ReceiptCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ReceiptClient) MapCreateBulk(slice any, setFunc func(*ReceiptCreate, int)) *ReceiptCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ReceiptCreateBulk{err: fmt.Errorf("calling to ReceiptClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ReceiptCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ReceiptCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Receipt.
func (c *ReceiptClient) Update() *ReceiptUpdate {
	mutation := newReceiptMutation(c.config, OpUpdate)
	return &ReceiptUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ReceiptClient) UpdateOne(_m *Receipt) *ReceiptUpdateOne {
	mutation := newReceiptMutation(c.config, OpUpdateOne, withReceipt(_m))
	return &ReceiptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ReceiptClient) UpdateOneID(id uuid.UUID) *ReceiptUpdateOne {
	mutation := newReceiptMutation(c.config, OpUpdateOne, withReceiptID(id))
	return &ReceiptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Receipt.
func (c *ReceiptClient) Delete() *ReceiptDelete {
	mutation := newReceiptMutation(c.config, OpDelete)
	return &ReceiptDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ReceiptClient) DeleteOne(_m *Receipt) *ReceiptDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ReceiptClient) DeleteOneID(id uuid.UUID) *ReceiptDeleteOne {
	builder := c.Delete().Where(receipt.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ReceiptDeleteOne{builder}
}

// Query returns a query builder for Receipt.
func (c *ReceiptClient) Query() *ReceiptQuery {
	return &ReceiptQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeReceipt},
		inters: c.Interceptors(),
	}
}

// Get returns a Receipt entity by its id.
func (c *ReceiptClient) Get(ctx context.Context, id uuid.UUID) (*Receipt, error) {
	return c.Query().Where(receipt.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ReceiptClient) GetX(ctx context.Context, id uuid.UUID) *Receipt {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryImage queries the image edge of a Receipt.
func (c *ReceiptClient) QueryImage(_m *Receipt) *ReceiptImageQuery {
	query := (&ReceiptImageClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(receipt.Table, receipt.FieldID, id),
			sqlgraph.To(receiptimage.Table, receiptimage.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, receipt.ImageTable, receipt.ImageColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryItems queries the items edge of a Receipt.
func (c *ReceiptClient) QueryItems(_m *Receipt) *OrderItemQuery {
	query := (&OrderItemClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(receipt.Table, receipt.FieldID, id),
			sqlgraph.To(orderitem.Table, orderitem.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, receipt.ItemsTable, receipt.ItemsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryFees queries the fees edge of a Receipt.
func (c *ReceiptClient) QueryFees(_m *Receipt) *OtherFeeQuery {
	query := (&OtherFeeClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(receipt.Table, receipt.FieldID, id),
			sqlgraph.To(otherfee.Table, otherfee.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, receipt.FeesTable, receipt.FeesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ReceiptClient) Hooks() []Hook {
	return c.hooks.Receipt
}

// Interceptors returns the client interceptors.
func (c *ReceiptClient) Interceptors() []Interceptor {
	return c.inters.Receipt
}

func (c *ReceiptClient) mutate(ctx context.Context, m *ReceiptMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ReceiptCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ReceiptUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ReceiptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ReceiptDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Receipt mutation op: %q", m.Op())
	}
}

// ReceiptImageClient is a client for the ReceiptImage schema.
type ReceiptImageClient struct {
	config
}

// NewReceiptImageClient returns a client for the ReceiptImage from the given config.
func NewReceiptImageClient(c config) *ReceiptImageClient {
	return &ReceiptImageClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `receiptimage.Hooks(f(g(h())))`.
func (c *ReceiptImageClient) Use(hooks ...Hook) {
	c.hooks.ReceiptImage = append(c.hooks.ReceiptImage, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `receiptimage.Intercept(f(g(h())))`.
func (c *ReceiptImageClient) Intercept(interceptors ...Interceptor) {
	c.inters.ReceiptImage = append(c.inters.ReceiptImage, interceptors...)
}

// Create returns a builder for creating a ReceiptImage entity.
func (c *ReceiptImageClient) Create() *ReceiptImageCreate {
	mutation := newReceiptImageMutation(c.config, OpCreate)
	return &ReceiptImageCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ReceiptImage entities.
func (c *ReceiptImageClient) CreateBulk(builders ...*ReceiptImageCreate) *ReceiptImageCreateBulk {
	return &ReceiptImageCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ReceiptImageClient) MapCreateBulk(slice any, setFunc func(*ReceiptImageCreate, int)) *ReceiptImageCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ReceiptImageCreateBulk{err: fmt.Errorf("calling to ReceiptImageClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ReceiptImageCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ReceiptImageCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ReceiptImage.
func (c *ReceiptImageClient) Update() *ReceiptImageUpdate {
	mutation := newReceiptImageMutation(c.config, OpUpdate)
	return &ReceiptImageUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ReceiptImageClient) UpdateOne(_m *ReceiptImage) *ReceiptImageUpdateOne {
	mutation := newReceiptImageMutation(c.config, OpUpdateOne, withReceiptImage(_m))
	return &ReceiptImageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ReceiptImageClient) UpdateOneID(id uuid.UUID) *ReceiptImageUpdateOne {
	mutation := newReceiptImageMutation(c.config, OpUpdateOne, withReceiptImageID(id))
	return &ReceiptImageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ReceiptImage.
func (c *ReceiptImageClient) Delete() *ReceiptImageDelete {
	mutation := newReceiptImageMutation(c.config, OpDelete)
	return &ReceiptImageDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ReceiptImageClient) DeleteOne(_m *ReceiptImage) *ReceiptImageDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ReceiptImageClient) DeleteOneID(id uuid.UUID) *ReceiptImageDeleteOne {
	builder := c.Delete().Where(receiptimage.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ReceiptImageDeleteOne{builder}
}

// Query returns a query builder for ReceiptImage.
func (c *ReceiptImageClient) Query() *ReceiptImageQuery {
	return &ReceiptImageQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeReceiptImage},
		inters: c.Interceptors(),
	}
}

// Get returns a ReceiptImage entity by its id.
func (c *ReceiptImageClient) Get(ctx context.Context, id uuid.UUID) (*ReceiptImage, error) {
	return c.Query().Where(receiptimage.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ReceiptImageClient) GetX(ctx context.Context, id uuid.UUID) *ReceiptImage {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryOuting queries the outing edge of a ReceiptImage.
func (c *ReceiptImageClient) QueryOuting(_m *ReceiptImage) *OutingQuery {
	query := (&OutingClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(receiptimage.Table, receiptimage.FieldID, id),
			sqlgraph.To(outing.Table, outing.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, receiptimage.OutingTable, receiptimage.OutingColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryReceipt queries the receipt edge of a ReceiptImage.
func (c *ReceiptImageClient) QueryReceipt(_m *ReceiptImage) *ReceiptQuery {
	query := (&ReceiptClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(receiptimage.Table, receiptimage.FieldID, id),
			sqlgraph.To(receipt.Table, receipt.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, receiptimage.ReceiptTable, receiptimage.ReceiptColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ReceiptImageClient) Hooks() []Hook {
	return c.hooks.ReceiptImage
}

// Interceptors returns the client interceptors.
func (c *ReceiptImageClient) Interceptors() []Interceptor {
	return c.inters.ReceiptImage
}

func (c *ReceiptImageClient) mutate(ctx context.Context, m *ReceiptImageMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ReceiptImageCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ReceiptImageUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ReceiptImageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ReceiptImageDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ReceiptImage mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		OrderItem, OtherFee, Outing, Receipt, ReceiptImage []ent.Hook
	}
	inters struct {
		OrderItem, OtherFee, Outing, Receipt, ReceiptImage []ent.Interceptor
	}
)
