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
	"github.com/google/uuid"
	"github.com/tabmate/outings-tracker/gen/ent/orderitem"
	"github.com/tabmate/outings-tracker/gen/ent/otherfee"
	"github.com/tabmate/outings-tracker/gen/ent/outing"
	"github.com/tabmate/outings-tracker/gen/ent/predicate"
	"github.com/tabmate/outings-tracker/gen/ent/receipt"
	"github.com/tabmate/outings-tracker/gen/ent/receiptimage"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeOrderItem    = "OrderItem"
	TypeOtherFee     = "OtherFee"
	TypeOuting       = "Outing"
	TypeReceipt      = "Receipt"
	TypeReceiptImage = "ReceiptImage"
)

// OrderItemMutation represents an operation that mutates the OrderItem nodes in the graph.
type OrderItemMutation struct {
	config
	op             Op
	typ            string
	id             *uuid.UUID
	name           *string
	price          *float64
	addprice       *float64
	quantity       *int
	addquantity    *int
	clearedFields  map[string]struct{}
	receipt        *uuid.UUID
	clearedreceipt bool
	done           bool
	oldValue       func(context.Context) (*OrderItem, error)
	predicates     []predicate.OrderItem
}

var _ ent.Mutation = (*OrderItemMutation)(nil)

// orderitemOption allows management of the mutation configuration using functional options.
type orderitemOption func(*OrderItemMutation)

// newOrderItemMutation creates new mutation for the OrderItem entity.
func newOrderItemMutation(c config, op Op, opts ...orderitemOption) *OrderItemMutation {
	m := &OrderItemMutation{
		config:        c,
		op:            op,
		typ:           TypeOrderItem,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withOrderItemID sets the ID field of the mutation.
func withOrderItemID(id uuid.UUID) orderitemOption {
	return func(m *OrderItemMutation) {
		var (
			err   error
			once  sync.Once
			value *OrderItem
		)
		m.oldValue = func(ctx context.Context) (*OrderItem, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().OrderItem.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withOrderItem sets the old OrderItem of the mutation.
func withOrderItem(node *OrderItem) orderitemOption {
	return func(m *OrderItemMutation) {
		m.oldValue = func(context.Context) (*OrderItem, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m OrderItemMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m OrderItemMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of OrderItem entities.
func (m *OrderItemMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *OrderItemMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *OrderItemMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().OrderItem.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *OrderItemMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *OrderItemMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the OrderItem entity.
// If the OrderItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderItemMutation) OldName(ctx context.Context) (v string, err error) {
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
func (m *OrderItemMutation) ResetName() {
	m.name = nil
}

// SetPrice sets the "price" field.
func (m *OrderItemMutation) SetPrice(f float64) {
	m.price = &f
	m.addprice = nil
}

// Price returns the value of the "price" field in the mutation.
func (m *OrderItemMutation) Price() (r float64, exists bool) {
	v := m.price
	if v == nil {
		return
	}
	return *v, true
}

// OldPrice returns the old "price" field's value of the OrderItem entity.
// If the OrderItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderItemMutation) OldPrice(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrice is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrice requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrice: %w", err)
	}
	return oldValue.Price, nil
}

// AddPrice adds f to the "price" field.
func (m *OrderItemMutation) AddPrice(f float64) {
	if m.addprice != nil {
		*m.addprice += f
	} else {
		m.addprice = &f
	}
}

// AddedPrice returns the value that was added to the "price" field in this mutation.
func (m *OrderItemMutation) AddedPrice() (r float64, exists bool) {
	v := m.addprice
	if v == nil {
		return
	}
	return *v, true
}

// ResetPrice resets all changes to the "price" field.
func (m *OrderItemMutation) ResetPrice() {
	m.price = nil
	m.addprice = nil
}

// SetQuantity sets the "quantity" field.
func (m *OrderItemMutation) SetQuantity(i int) {
	m.quantity = &i
	m.addquantity = nil
}

// Quantity returns the value of the "quantity" field in the mutation.
func (m *OrderItemMutation) Quantity() (r int, exists bool) {
	v := m.quantity
	if v == nil {
		return
	}
	return *v, true
}

// OldQuantity returns the old "quantity" field's value of the OrderItem entity.
// If the OrderItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderItemMutation) OldQuantity(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuantity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuantity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuantity: %w", err)
	}
	return oldValue.Quantity, nil
}

// AddQuantity adds i to the "quantity" field.
func (m *OrderItemMutation) AddQuantity(i int) {
	if m.addquantity != nil {
		*m.addquantity += i
	} else {
		m.addquantity = &i
	}
}

// AddedQuantity returns the value that was added to the "quantity" field in this mutation.
func (m *OrderItemMutation) AddedQuantity() (r int, exists bool) {
	v := m.addquantity
	if v == nil {
		return
	}
	return *v, true
}

// ResetQuantity resets all changes to the "quantity" field.
func (m *OrderItemMutation) ResetQuantity() {
	m.quantity = nil
	m.addquantity = nil
}

// SetReceiptID sets the "receipt" edge to the Receipt entity by id.
func (m *OrderItemMutation) SetReceiptID(id uuid.UUID) {
	m.receipt = &id
}

// ClearReceipt clears the "receipt" edge to the Receipt entity.
func (m *OrderItemMutation) ClearReceipt() {
	m.clearedreceipt = true
}

// ReceiptCleared reports if the "receipt" edge to the Receipt entity was cleared.
func (m *OrderItemMutation) ReceiptCleared() bool {
	return m.clearedreceipt
}

// ReceiptID returns the "receipt" edge ID in the mutation.
func (m *OrderItemMutation) ReceiptID() (id uuid.UUID, exists bool) {
	if m.receipt != nil {
		return *m.receipt, true
	}
	return
}

// ReceiptIDs returns the "receipt" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ReceiptID instead. It exists only for internal usage by the builders.
func (m *OrderItemMutation) ReceiptIDs() (ids []uuid.UUID) {
	if id := m.receipt; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetReceipt resets all changes to the "receipt" edge.
func (m *OrderItemMutation) ResetReceipt() {
	m.receipt = nil
	m.clearedreceipt = false
}

// Where appends a list predicates to the OrderItemMutation builder.
func (m *OrderItemMutation) Where(ps ...predicate.OrderItem) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the OrderItemMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *OrderItemMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.OrderItem, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *OrderItemMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *OrderItemMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (OrderItem).
func (m *OrderItemMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *OrderItemMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.name != nil {
		fields = append(fields, orderitem.FieldName)
	}
	if m.price != nil {
		fields = append(fields, orderitem.FieldPrice)
	}
	if m.quantity != nil {
		fields = append(fields, orderitem.FieldQuantity)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *OrderItemMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case orderitem.FieldName:
		return m.Name()
	case orderitem.FieldPrice:
		return m.Price()
	case orderitem.FieldQuantity:
		return m.Quantity()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *OrderItemMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case orderitem.FieldName:
		return m.OldName(ctx)
	case orderitem.FieldPrice:
		return m.OldPrice(ctx)
	case orderitem.FieldQuantity:
		return m.OldQuantity(ctx)
	}
	return nil, fmt.Errorf("unknown OrderItem field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *OrderItemMutation) SetField(name string, value ent.Value) error {
	switch name {
	case orderitem.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case orderitem.FieldPrice:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrice(v)
		return nil
	case orderitem.FieldQuantity:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuantity(v)
		return nil
	}
	return fmt.Errorf("unknown OrderItem field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *OrderItemMutation) AddedFields() []string {
	var fields []string
	if m.addprice != nil {
		fields = append(fields, orderitem.FieldPrice)
	}
	if m.addquantity != nil {
		fields = append(fields, orderitem.FieldQuantity)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *OrderItemMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case orderitem.FieldPrice:
		return m.AddedPrice()
	case orderitem.FieldQuantity:
		return m.AddedQuantity()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *OrderItemMutation) AddField(name string, value ent.Value) error {
	switch name {
	case orderitem.FieldPrice:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPrice(v)
		return nil
	case orderitem.FieldQuantity:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddQuantity(v)
		return nil
	}
	return fmt.Errorf("unknown OrderItem numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *OrderItemMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *OrderItemMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *OrderItemMutation) ClearField(name string) error {
	return fmt.Errorf("unknown OrderItem nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *OrderItemMutation) ResetField(name string) error {
	switch name {
	case orderitem.FieldName:
		m.ResetName()
		return nil
	case orderitem.FieldPrice:
		m.ResetPrice()
		return nil
	case orderitem.FieldQuantity:
		m.ResetQuantity()
		return nil
	}
	return fmt.Errorf("unknown OrderItem field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *OrderItemMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.receipt != nil {
		edges = append(edges, orderitem.EdgeReceipt)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *OrderItemMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case orderitem.EdgeReceipt:
		if id := m.receipt; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *OrderItemMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *OrderItemMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *OrderItemMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedreceipt {
		edges = append(edges, orderitem.EdgeReceipt)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *OrderItemMutation) EdgeCleared(name string) bool {
	switch name {
	case orderitem.EdgeReceipt:
		return m.clearedreceipt
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *OrderItemMutation) ClearEdge(name string) error {
	switch name {
	case orderitem.EdgeReceipt:
		m.ClearReceipt()
		return nil
	}
	return fmt.Errorf("unknown OrderItem unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *OrderItemMutation) ResetEdge(name string) error {
	switch name {
	case orderitem.EdgeReceipt:
		m.ResetReceipt()
		return nil
	}
	return fmt.Errorf("unknown OrderItem edge %s", name)
}

// OtherFeeMutation represents an operation that mutates the OtherFee nodes in the graph.
type OtherFeeMutation struct {
	config
	op             Op
	typ            string
	id             *uuid.UUID
	name           *string
	price          *float64
	addprice       *float64
	clearedFields  map[string]struct{}
	receipt        *uuid.UUID
	clearedreceipt bool
	done           bool
	oldValue       func(context.Context) (*OtherFee, error)
	predicates     []predicate.OtherFee
}

var _ ent.Mutation = (*OtherFeeMutation)(nil)

// otherfeeOption allows management of the mutation configuration using functional options.
type otherfeeOption func(*OtherFeeMutation)

// newOtherFeeMutation creates new mutation for the OtherFee entity.
func newOtherFeeMutation(c config, op Op, opts ...otherfeeOption) *OtherFeeMutation {
	m := &OtherFeeMutation{
		config:        c,
		op:            op,
		typ:           TypeOtherFee,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withOtherFeeID sets the ID field of the mutation.
func withOtherFeeID(id uuid.UUID) otherfeeOption {
	return func(m *OtherFeeMutation) {
		var (
			err   error
			once  sync.Once
			value *OtherFee
		)
		m.oldValue = func(ctx context.Context) (*OtherFee, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().OtherFee.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withOtherFee sets the old OtherFee of the mutation.
func withOtherFee(node *OtherFee) otherfeeOption {
	return func(m *OtherFeeMutation) {
		m.oldValue = func(context.Context) (*OtherFee, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m OtherFeeMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m OtherFeeMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of OtherFee entities.
func (m *OtherFeeMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *OtherFeeMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *OtherFeeMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().OtherFee.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *OtherFeeMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *OtherFeeMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the OtherFee entity.
// If the OtherFee object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OtherFeeMutation) OldName(ctx context.Context) (v string, err error) {
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
func (m *OtherFeeMutation) ResetName() {
	m.name = nil
}

// SetPrice sets the "price" field.
func (m *OtherFeeMutation) SetPrice(f float64) {
	m.price = &f
	m.addprice = nil
}

// Price returns the value of the "price" field in the mutation.
func (m *OtherFeeMutation) Price() (r float64, exists bool) {
	v := m.price
	if v == nil {
		return
	}
	return *v, true
}

// OldPrice returns the old "price" field's value of the OtherFee entity.
// If the OtherFee object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OtherFeeMutation) OldPrice(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrice is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrice requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrice: %w", err)
	}
	return oldValue.Price, nil
}

// AddPrice adds f to the "price" field.
func (m *OtherFeeMutation) AddPrice(f float64) {
	if m.addprice != nil {
		*m.addprice += f
	} else {
		m.addprice = &f
	}
}

// AddedPrice returns the value that was added to the "price" field in this mutation.
func (m *OtherFeeMutation) AddedPrice() (r float64, exists bool) {
	v := m.addprice
	if v == nil {
		return
	}
	return *v, true
}

// ResetPrice resets all changes to the "price" field.
func (m *OtherFeeMutation) ResetPrice() {
	m.price = nil
	m.addprice = nil
}

// SetReceiptID sets the "receipt" edge to the Receipt entity by id.
func (m *OtherFeeMutation) SetReceiptID(id uuid.UUID) {
	m.receipt = &id
}

// ClearReceipt clears the "receipt" edge to the Receipt entity.
func (m *OtherFeeMutation) ClearReceipt() {
	m.clearedreceipt = true
}

// ReceiptCleared reports if the "receipt" edge to the Receipt entity was cleared.
func (m *OtherFeeMutation) ReceiptCleared() bool {
	return m.clearedreceipt
}

// ReceiptID returns the "receipt" edge ID in the mutation.
func (m *OtherFeeMutation) ReceiptID() (id uuid.UUID, exists bool) {
	if m.receipt != nil {
		return *m.receipt, true
	}
	return
}

// ReceiptIDs returns the "receipt" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ReceiptID instead. It exists only for internal usage by the builders.
func (m *OtherFeeMutation) ReceiptIDs() (ids []uuid.UUID) {
	if id := m.receipt; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetReceipt resets all changes to the "receipt" edge.
func (m *OtherFeeMutation) ResetReceipt() {
	m.receipt = nil
	m.clearedreceipt = false
}

// Where appends a list predicates to the OtherFeeMutation builder.
func (m *OtherFeeMutation) Where(ps ...predicate.OtherFee) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the OtherFeeMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *OtherFeeMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.OtherFee, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *OtherFeeMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *OtherFeeMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (OtherFee).
func (m *OtherFeeMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *OtherFeeMutation) Fields() []string {
	fields := make([]string, 0, 2)
	if m.name != nil {
		fields = append(fields, otherfee.FieldName)
	}
	if m.price != nil {
		fields = append(fields, otherfee.FieldPrice)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *OtherFeeMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case otherfee.FieldName:
		return m.Name()
	case otherfee.FieldPrice:
		return m.Price()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *OtherFeeMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case otherfee.FieldName:
		return m.OldName(ctx)
	case otherfee.FieldPrice:
		return m.OldPrice(ctx)
	}
	return nil, fmt.Errorf("unknown OtherFee field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *OtherFeeMutation) SetField(name string, value ent.Value) error {
	switch name {
	case otherfee.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case otherfee.FieldPrice:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrice(v)
		return nil
	}
	return fmt.Errorf("unknown OtherFee field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *OtherFeeMutation) AddedFields() []string {
	var fields []string
	if m.addprice != nil {
		fields = append(fields, otherfee.FieldPrice)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *OtherFeeMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case otherfee.FieldPrice:
		return m.AddedPrice()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *OtherFeeMutation) AddField(name string, value ent.Value) error {
	switch name {
	case otherfee.FieldPrice:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPrice(v)
		return nil
	}
	return fmt.Errorf("unknown OtherFee numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *OtherFeeMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *OtherFeeMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *OtherFeeMutation) ClearField(name string) error {
	return fmt.Errorf("unknown OtherFee nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *OtherFeeMutation) ResetField(name string) error {
	switch name {
	case otherfee.FieldName:
		m.ResetName()
		return nil
	case otherfee.FieldPrice:
		m.ResetPrice()
		return nil
	}
	return fmt.Errorf("unknown OtherFee field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *OtherFeeMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.receipt != nil {
		edges = append(edges, otherfee.EdgeReceipt)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *OtherFeeMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case otherfee.EdgeReceipt:
		if id := m.receipt; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *OtherFeeMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *OtherFeeMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *OtherFeeMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedreceipt {
		edges = append(edges, otherfee.EdgeReceipt)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *OtherFeeMutation) EdgeCleared(name string) bool {
	switch name {
	case otherfee.EdgeReceipt:
		return m.clearedreceipt
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *OtherFeeMutation) ClearEdge(name string) error {
	switch name {
	case otherfee.EdgeReceipt:
		m.ClearReceipt()
		return nil
	}
	return fmt.Errorf("unknown OtherFee unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *OtherFeeMutation) ResetEdge(name string) error {
	switch name {
	case otherfee.EdgeReceipt:
		m.ResetReceipt()
		return nil
	}
	return fmt.Errorf("unknown OtherFee edge %s", name)
}

// OutingMutation represents an operation that mutates the Outing nodes in the graph.
type OutingMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	name          *string
	created_at    *time.Time
	updated_at    *time.Time
	deleted_at    *time.Time
	clearedFields map[string]struct{}
	images        map[uuid.UUID]struct{}
	removedimages map[uuid.UUID]struct{}
	clearedimages bool
	done          bool
	oldValue      func(context.Context) (*Outing, error)
	predicates    []predicate.Outing
}

var _ ent.Mutation = (*OutingMutation)(nil)

// outingOption allows management of the mutation configuration using functional options.
type outingOption func(*OutingMutation)

// newOutingMutation creates new mutation for the Outing entity.
func newOutingMutation(c config, op Op, opts ...outingOption) *OutingMutation {
	m := &OutingMutation{
		config:        c,
		op:            op,
		typ:           TypeOuting,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withOutingID sets the ID field of the mutation.
func withOutingID(id uuid.UUID) outingOption {
	return func(m *OutingMutation) {
		var (
			err   error
			once  sync.Once
			value *Outing
		)
		m.oldValue = func(ctx context.Context) (*Outing, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Outing.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withOuting sets the old Outing of the mutation.
func withOuting(node *Outing) outingOption {
	return func(m *OutingMutation) {
		m.oldValue = func(context.Context) (*Outing, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m OutingMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m OutingMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Outing entities.
func (m *OutingMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *OutingMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *OutingMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Outing.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *OutingMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *OutingMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Outing entity.
// If the Outing object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OutingMutation) OldName(ctx context.Context) (v string, err error) {
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
func (m *OutingMutation) ResetName() {
	m.name = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *OutingMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *OutingMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Outing entity.
// If the Outing object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OutingMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *OutingMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *OutingMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *OutingMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Outing entity.
// If the Outing object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OutingMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *OutingMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetDeletedAt sets the "deleted_at" field.
func (m *OutingMutation) SetDeletedAt(t time.Time) {
	m.deleted_at = &t
}

// DeletedAt returns the value of the "deleted_at" field in the mutation.
func (m *OutingMutation) DeletedAt() (r time.Time, exists bool) {
	v := m.deleted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeletedAt returns the old "deleted_at" field's value of the Outing entity.
// If the Outing object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OutingMutation) OldDeletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeletedAt: %w", err)
	}
	return oldValue.DeletedAt, nil
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (m *OutingMutation) ClearDeletedAt() {
	m.deleted_at = nil
	m.clearedFields[outing.FieldDeletedAt] = struct{}{}
}

// DeletedAtCleared returns if the "deleted_at" field was cleared in this mutation.
func (m *OutingMutation) DeletedAtCleared() bool {
	_, ok := m.clearedFields[outing.FieldDeletedAt]
	return ok
}

// ResetDeletedAt resets all changes to the "deleted_at" field.
func (m *OutingMutation) ResetDeletedAt() {
	m.deleted_at = nil
	delete(m.clearedFields, outing.FieldDeletedAt)
}

// AddImageIDs adds the "images" edge to the ReceiptImage entity by ids.
func (m *OutingMutation) AddImageIDs(ids ...uuid.UUID) {
	if m.images == nil {
		m.images = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.images[ids[i]] = struct{}{}
	}
}

// ClearImages clears the "images" edge to the ReceiptImage entity.
func (m *OutingMutation) ClearImages() {
	m.clearedimages = true
}

// ImagesCleared reports if the "images" edge to the ReceiptImage entity was cleared.
func (m *OutingMutation) ImagesCleared() bool {
	return m.clearedimages
}

// RemoveImageIDs removes the "images" edge to the ReceiptImage entity by IDs.
func (m *OutingMutation) RemoveImageIDs(ids ...uuid.UUID) {
	if m.removedimages == nil {
		m.removedimages = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.images, ids[i])
		m.removedimages[ids[i]] = struct{}{}
	}
}

// RemovedImages returns the removed IDs of the "images" edge to the ReceiptImage entity.
func (m *OutingMutation) RemovedImagesIDs() (ids []uuid.UUID) {
	for id := range m.removedimages {
		ids = append(ids, id)
	}
	return
}

// ImagesIDs returns the "images" edge IDs in the mutation.
func (m *OutingMutation) ImagesIDs() (ids []uuid.UUID) {
	for id := range m.images {
		ids = append(ids, id)
	}
	return
}

// ResetImages resets all changes to the "images" edge.
func (m *OutingMutation) ResetImages() {
	m.images = nil
	m.clearedimages = false
	m.removedimages = nil
}

// Where appends a list predicates to the OutingMutation builder.
func (m *OutingMutation) Where(ps ...predicate.Outing) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the OutingMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *OutingMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Outing, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *OutingMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *OutingMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Outing).
func (m *OutingMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *OutingMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.name != nil {
		fields = append(fields, outing.FieldName)
	}
	if m.created_at != nil {
		fields = append(fields, outing.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, outing.FieldUpdatedAt)
	}
	if m.deleted_at != nil {
		fields = append(fields, outing.FieldDeletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *OutingMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case outing.FieldName:
		return m.Name()
	case outing.FieldCreatedAt:
		return m.CreatedAt()
	case outing.FieldUpdatedAt:
		return m.UpdatedAt()
	case outing.FieldDeletedAt:
		return m.DeletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *OutingMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case outing.FieldName:
		return m.OldName(ctx)
	case outing.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case outing.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case outing.FieldDeletedAt:
		return m.OldDeletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Outing field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *OutingMutation) SetField(name string, value ent.Value) error {
	switch name {
	case outing.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case outing.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case outing.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case outing.FieldDeletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Outing field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *OutingMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *OutingMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *OutingMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Outing numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *OutingMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(outing.FieldDeletedAt) {
		fields = append(fields, outing.FieldDeletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *OutingMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *OutingMutation) ClearField(name string) error {
	switch name {
	case outing.FieldDeletedAt:
		m.ClearDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown Outing nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *OutingMutation) ResetField(name string) error {
	switch name {
	case outing.FieldName:
		m.ResetName()
		return nil
	case outing.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case outing.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case outing.FieldDeletedAt:
		m.ResetDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown Outing field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *OutingMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.images != nil {
		edges = append(edges, outing.EdgeImages)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *OutingMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case outing.EdgeImages:
		ids := make([]ent.Value, 0, len(m.images))
		for id := range m.images {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *OutingMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedimages != nil {
		edges = append(edges, outing.EdgeImages)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *OutingMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case outing.EdgeImages:
		ids := make([]ent.Value, 0, len(m.removedimages))
		for id := range m.removedimages {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *OutingMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedimages {
		edges = append(edges, outing.EdgeImages)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *OutingMutation) EdgeCleared(name string) bool {
	switch name {
	case outing.EdgeImages:
		return m.clearedimages
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *OutingMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Outing unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *OutingMutation) ResetEdge(name string) error {
	switch name {
	case outing.EdgeImages:
		m.ResetImages()
		return nil
	}
	return fmt.Errorf("unknown Outing edge %s", name)
}

// ReceiptMutation represents an operation that mutates the Receipt nodes in the graph.
type ReceiptMutation struct {
	config
	op                     Op
	typ                    string
	id                     *uuid.UUID
	restaurant             *string
	address                *string
	opened                 *time.Time
	order_number           *string
	order_type             *string
	table_number           *string
	server                 *string
	subtotal               *float64
	addsubtotal            *float64
	sales_tax              *float64
	addsales_tax           *float64
	total                  *float64
	addtotal               *float64
	payment_method         *string
	payment_amount_paid    *float64
	addpayment_amount_paid *float64
	payment_tip            *float64
	addpayment_tip         *float64
	copy                   *string
	created_at             *time.Time
	clearedFields          map[string]struct{}
	image                  *uuid.UUID
	clearedimage           bool
	items                  map[uuid.UUID]struct{}
	removeditems           map[uuid.UUID]struct{}
	cleareditems           bool
	fees                   map[uuid.UUID]struct{}
	removedfees            map[uuid.UUID]struct{}
	clearedfees            bool
	done                   bool
	oldValue               func(context.Context) (*Receipt, error)
	predicates             []predicate.Receipt
}

var _ ent.Mutation = (*ReceiptMutation)(nil)

// receiptOption allows management of the mutation configuration using functional options.
type receiptOption func(*ReceiptMutation)

// newReceiptMutation creates new mutation for the Receipt entity.
func newReceiptMutation(c config, op Op, opts ...receiptOption) *ReceiptMutation {
	m := &ReceiptMutation{
		config:        c,
		op:            op,
		typ:           TypeReceipt,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withReceiptID sets the ID field of the mutation.
func withReceiptID(id uuid.UUID) receiptOption {
	return func(m *ReceiptMutation) {
		var (
			err   error
			once  sync.Once
			value *Receipt
		)
		m.oldValue = func(ctx context.Context) (*Receipt, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Receipt.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withReceipt sets the old Receipt of the mutation.
func withReceipt(node *Receipt) receiptOption {
	return func(m *ReceiptMutation) {
		m.oldValue = func(context.Context) (*Receipt, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ReceiptMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ReceiptMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Receipt entities.
func (m *ReceiptMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ReceiptMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ReceiptMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Receipt.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRestaurant sets the "restaurant" field.
func (m *ReceiptMutation) SetRestaurant(s string) {
	m.restaurant = &s
}

// Restaurant returns the value of the "restaurant" field in the mutation.
func (m *ReceiptMutation) Restaurant() (r string, exists bool) {
	v := m.restaurant
	if v == nil {
		return
	}
	return *v, true
}

// OldRestaurant returns the old "restaurant" field's value of the Receipt entity.
// If the Receipt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReceiptMutation) OldRestaurant(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRestaurant is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRestaurant requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRestaurant: %w", err)
	}
	return oldValue.Restaurant, nil
}

// ResetRestaurant resets all changes to the "restaurant" field.
func (m *ReceiptMutation) ResetRestaurant() {
	m.restaurant = nil
}

// SetAddress sets the "address" field.
func (m *ReceiptMutation) SetAddress(s string) {
	m.address = &s
}

// Address returns the value of the "address" field in the mutation.
func (m *ReceiptMutation) Address() (r string, exists bool) {
	v := m.address
	if v == nil {
		return
	}
	return *v, true
}

// OldAddress returns the old "address" field's value of the Receipt entity.
// If the Receipt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReceiptMutation) OldAddress(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAddress is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAddress requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAddress: %w", err)
	}
	return oldValue.Address, nil
}

// ResetAddress resets all changes to the "address" field.
func (m *ReceiptMutation) ResetAddress() {
	m.address = nil
}

// SetOpened sets the "opened" field.
func (m *ReceiptMutation) SetOpened(t time.Time) {
	m.opened = &t
}

// Opened returns the value of the "opened" field in the mutation.
func (m *ReceiptMutation) Opened() (r time.Time, exists bool) {
	v := m.opened
	if v == nil {
		return
	}
	return *v, true
}

// OldOpened returns the old "opened" field's value of the Receipt entity.
// If the Receipt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReceiptMutation) OldOpened(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOpened is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOpened requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOpened: %w", err)
	}
	return oldValue.Opened, nil
}

// ClearOpened clears the value of the "opened" field.
func (m *ReceiptMutation) ClearOpened() {
	m.opened = nil
	m.clearedFields[receipt.FieldOpened] = struct{}{}
}

// OpenedCleared returns if the "opened" field was cleared in this mutation.
func (m *ReceiptMutation) OpenedCleared() bool {
	_, ok := m.clearedFields[receipt.FieldOpened]
	return ok
}

// ResetOpened resets all changes to the "opened" field.
func (m *ReceiptMutation) ResetOpened() {
	m.opened = nil
	delete(m.clearedFields, receipt.FieldOpened)
}

// SetOrderNumber sets the "order_number" field.
func (m *ReceiptMutation) SetOrderNumber(s string) {
	m.order_number = &s
}

// OrderNumber returns the value of the "order_number" field in the mutation.
func (m *ReceiptMutation) OrderNumber() (r string, exists bool) {
	v := m.order_number
	if v == nil {
		return
	}
	return *v, true
}

// OldOrderNumber returns the old "order_number" field's value of the Receipt entity.
// If the Receipt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReceiptMutation) OldOrderNumber(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrderNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrderNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrderNumber: %w", err)
	}
	return oldValue.OrderNumber, nil
}

// ResetOrderNumber resets all changes to the "order_number" field.
func (m *ReceiptMutation) ResetOrderNumber() {
	m.order_number = nil
}

// SetOrderType sets the "order_type" field.
func (m *ReceiptMutation) SetOrderType(s string) {
	m.order_type = &s
}

// OrderType returns the value of the "order_type" field in the mutation.
func (m *ReceiptMutation) OrderType() (r string, exists bool) {
	v := m.order_type
	if v == nil {
		return
	}
	return *v, true
}

// OldOrderType returns the old "order_type" field's value of the Receipt entity.
// If the Receipt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReceiptMutation) OldOrderType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrderType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrderType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrderType: %w", err)
	}
	return oldValue.OrderType, nil
}

// ResetOrderType resets all changes to the "order_type" field.
func (m *ReceiptMutation) ResetOrderType() {
	m.order_type = nil
}

// SetTableNumber sets the "table_number" field.
func (m *ReceiptMutation) SetTableNumber(s string) {
	m.table_number = &s
}

// TableNumber returns the value of the "table_number" field in the mutation.
func (m *ReceiptMutation) TableNumber() (r string, exists bool) {
	v := m.table_number
	if v == nil {
		return
	}
	return *v, true
}

// OldTableNumber returns the old "table_number" field's value of the Receipt entity.
// If the Receipt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReceiptMutation) OldTableNumber(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTableNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTableNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTableNumber: %w", err)
	}
	return oldValue.TableNumber, nil
}

// ResetTableNumber resets all changes to the "table_number" field.
func (m *ReceiptMutation) ResetTableNumber() {
	m.table_number = nil
}

// SetServer sets the "server" field.
func (m *ReceiptMutation) SetServer(s string) {
	m.server = &s
}

// Server returns the value of the "server" field in the mutation.
func (m *ReceiptMutation) Server() (r string, exists bool) {
	v := m.server
	if v == nil {
		return
	}
	return *v, true
}

// OldServer returns the old "server" field's value of the Receipt entity.
// If the Receipt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReceiptMutation) OldServer(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldServer is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldServer requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldServer: %w", err)
	}
	return oldValue.Server, nil
}

// ResetServer resets all changes to the "server" field.
func (m *ReceiptMutation) ResetServer() {
	m.server = nil
}

// SetSubtotal sets the "subtotal" field.
func (m *ReceiptMutation) SetSubtotal(f float64) {
	m.subtotal = &f
	m.addsubtotal = nil
}

// Subtotal returns the value of the "subtotal" field in the mutation.
func (m *ReceiptMutation) Subtotal() (r float64, exists bool) {
	v := m.subtotal
	if v == nil {
		return
	}
	return *v, true
}

// OldSubtotal returns the old "subtotal" field's value of the Receipt entity.
// If the Receipt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReceiptMutation) OldSubtotal(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubtotal is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubtotal requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubtotal: %w", err)
	}
	return oldValue.Subtotal, nil
}

// AddSubtotal adds f to the "subtotal" field.
func (m *ReceiptMutation) AddSubtotal(f float64) {
	if m.addsubtotal != nil {
		*m.addsubtotal += f
	} else {
		m.addsubtotal = &f
	}
}

// AddedSubtotal returns the value that was added to the "subtotal" field in this mutation.
func (m *ReceiptMutation) AddedSubtotal() (r float64, exists bool) {
	v := m.addsubtotal
	if v == nil {
		return
	}
	return *v, true
}

// ResetSubtotal resets all changes to the "subtotal" field.
func (m *ReceiptMutation) ResetSubtotal() {
	m.subtotal = nil
	m.addsubtotal = nil
}

// SetSalesTax sets the "sales_tax" field.
func (m *ReceiptMutation) SetSalesTax(f float64) {
	m.sales_tax = &f
	m.addsales_tax = nil
}

// SalesTax returns the value of the "sales_tax" field in the mutation.
func (m *ReceiptMutation) SalesTax() (r float64, exists bool) {
	v := m.sales_tax
	if v == nil {
		return
	}
	return *v, true
}

// OldSalesTax returns the old "sales_tax" field's value of the Receipt entity.
// If the Receipt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReceiptMutation) OldSalesTax(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSalesTax is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSalesTax requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSalesTax: %w", err)
	}
	return oldValue.SalesTax, nil
}

// AddSalesTax adds f to the "sales_tax" field.
func (m *ReceiptMutation) AddSalesTax(f float64) {
	if m.addsales_tax != nil {
		*m.addsales_tax += f
	} else {
		m.addsales_tax = &f
	}
}

// AddedSalesTax returns the value that was added to the "sales_tax" field in this mutation.
func (m *ReceiptMutation) AddedSalesTax() (r float64, exists bool) {
	v := m.addsales_tax
	if v == nil {
		return
	}
	return *v, true
}

// ResetSalesTax resets all changes to the "sales_tax" field.
func (m *ReceiptMutation) ResetSalesTax() {
	m.sales_tax = nil
	m.addsales_tax = nil
}

// SetTotal sets the "total" field.
func (m *ReceiptMutation) SetTotal(f float64) {
	m.total = &f
	m.addtotal = nil
}

// Total returns the value of the "total" field in the mutation.
func (m *ReceiptMutation) Total() (r float64, exists bool) {
	v := m.total
	if v == nil {
		return
	}
	return *v, true
}

// OldTotal returns the old "total" field's value of the Receipt entity.
// If the Receipt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReceiptMutation) OldTotal(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotal is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotal requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotal: %w", err)
	}
	return oldValue.Total, nil
}

// AddTotal adds f to the "total" field.
func (m *ReceiptMutation) AddTotal(f float64) {
	if m.addtotal != nil {
		*m.addtotal += f
	} else {
		m.addtotal = &f
	}
}

// AddedTotal returns the value that was added to the "total" field in this mutation.
func (m *ReceiptMutation) AddedTotal() (r float64, exists bool) {
	v := m.addtotal
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotal resets all changes to the "total" field.
func (m *ReceiptMutation) ResetTotal() {
	m.total = nil
	m.addtotal = nil
}

// SetPaymentMethod sets the "payment_method" field.
func (m *ReceiptMutation) SetPaymentMethod(s string) {
	m.payment_method = &s
}

// PaymentMethod returns the value of the "payment_method" field in the mutation.
func (m *ReceiptMutation) PaymentMethod() (r string, exists bool) {
	v := m.payment_method
	if v == nil {
		return
	}
	return *v, true
}

// OldPaymentMethod returns the old "payment_method" field's value of the Receipt entity.
// If the Receipt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReceiptMutation) OldPaymentMethod(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPaymentMethod is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPaymentMethod requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPaymentMethod: %w", err)
	}
	return oldValue.PaymentMethod, nil
}

// ResetPaymentMethod resets all changes to the "payment_method" field.
func (m *ReceiptMutation) ResetPaymentMethod() {
	m.payment_method = nil
}

// SetPaymentAmountPaid sets the "payment_amount_paid" field.
func (m *ReceiptMutation) SetPaymentAmountPaid(f float64) {
	m.payment_amount_paid = &f
	m.addpayment_amount_paid = nil
}

// PaymentAmountPaid returns the value of the "payment_amount_paid" field in the mutation.
func (m *ReceiptMutation) PaymentAmountPaid() (r float64, exists bool) {
	v := m.payment_amount_paid
	if v == nil {
		return
	}
	return *v, true
}

// OldPaymentAmountPaid returns the old "payment_amount_paid" field's value of the Receipt entity.
// If the Receipt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReceiptMutation) OldPaymentAmountPaid(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPaymentAmountPaid is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPaymentAmountPaid requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPaymentAmountPaid: %w", err)
	}
	return oldValue.PaymentAmountPaid, nil
}

// AddPaymentAmountPaid adds f to the "payment_amount_paid" field.
func (m *ReceiptMutation) AddPaymentAmountPaid(f float64) {
	if m.addpayment_amount_paid != nil {
		*m.addpayment_amount_paid += f
	} else {
		m.addpayment_amount_paid = &f
	}
}

// AddedPaymentAmountPaid returns the value that was added to the "payment_amount_paid" field in this mutation.
func (m *ReceiptMutation) AddedPaymentAmountPaid() (r float64, exists bool) {
	v := m.addpayment_amount_paid
	if v == nil {
		return
	}
	return *v, true
}

// ResetPaymentAmountPaid resets all changes to the "payment_amount_paid" field.
func (m *ReceiptMutation) ResetPaymentAmountPaid() {
	m.payment_amount_paid = nil
	m.addpayment_amount_paid = nil
}

// SetPaymentTip sets the "payment_tip" field.
func (m *ReceiptMutation) SetPaymentTip(f float64) {
	m.payment_tip = &f
	m.addpayment_tip = nil
}

// PaymentTip returns the value of the "payment_tip" field in the mutation.
func (m *ReceiptMutation) PaymentTip() (r float64, exists bool) {
	v := m.payment_tip
	if v == nil {
		return
	}
	return *v, true
}

// OldPaymentTip returns the old "payment_tip" field's value of the Receipt entity.
// If the Receipt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReceiptMutation) OldPaymentTip(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPaymentTip is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPaymentTip requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPaymentTip: %w", err)
	}
	return oldValue.PaymentTip, nil
}

// AddPaymentTip adds f to the "payment_tip" field.
func (m *ReceiptMutation) AddPaymentTip(f float64) {
	if m.addpayment_tip != nil {
		*m.addpayment_tip += f
	} else {
		m.addpayment_tip = &f
	}
}

// AddedPaymentTip returns the value that was added to the "payment_tip" field in this mutation.
func (m *ReceiptMutation) AddedPaymentTip() (r float64, exists bool) {
	v := m.addpayment_tip
	if v == nil {
		return
	}
	return *v, true
}

// ResetPaymentTip resets all changes to the "payment_tip" field.
func (m *ReceiptMutation) ResetPaymentTip() {
	m.payment_tip = nil
	m.addpayment_tip = nil
}

// SetCopy sets the "copy" field.
func (m *ReceiptMutation) SetCopy(s string) {
	m.copy = &s
}

// Copy returns the value of the "copy" field in the mutation.
func (m *ReceiptMutation) Copy() (r string, exists bool) {
	v := m.copy
	if v == nil {
		return
	}
	return *v, true
}

// OldCopy returns the old "copy" field's value of the Receipt entity.
// If the Receipt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReceiptMutation) OldCopy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCopy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCopy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCopy: %w", err)
	}
	return oldValue.Copy, nil
}

// ResetCopy resets all changes to the "copy" field.
func (m *ReceiptMutation) ResetCopy() {
	m.copy = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ReceiptMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ReceiptMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Receipt entity.
// If the Receipt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReceiptMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *ReceiptMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetImageID sets the "image" edge to the ReceiptImage entity by id.
func (m *ReceiptMutation) SetImageID(id uuid.UUID) {
	m.image = &id
}

// ClearImage clears the "image" edge to the ReceiptImage entity.
func (m *ReceiptMutation) ClearImage() {
	m.clearedimage = true
}

// ImageCleared reports if the "image" edge to the ReceiptImage entity was cleared.
func (m *ReceiptMutation) ImageCleared() bool {
	return m.clearedimage
}

// ImageID returns the "image" edge ID in the mutation.
func (m *ReceiptMutation) ImageID() (id uuid.UUID, exists bool) {
	if m.image != nil {
		return *m.image, true
	}
	return
}

// ImageIDs returns the "image" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ImageID instead. It exists only for internal usage by the builders.
func (m *ReceiptMutation) ImageIDs() (ids []uuid.UUID) {
	if id := m.image; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetImage resets all changes to the "image" edge.
func (m *ReceiptMutation) ResetImage() {
	m.image = nil
	m.clearedimage = false
}

// AddItemIDs adds the "items" edge to the OrderItem entity by ids.
func (m *ReceiptMutation) AddItemIDs(ids ...uuid.UUID) {
	if m.items == nil {
		m.items = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.items[ids[i]] = struct{}{}
	}
}

// ClearItems clears the "items" edge to the OrderItem entity.
func (m *ReceiptMutation) ClearItems() {
	m.cleareditems = true
}

// ItemsCleared reports if the "items" edge to the OrderItem entity was cleared.
func (m *ReceiptMutation) ItemsCleared() bool {
	return m.cleareditems
}

// RemoveItemIDs removes the "items" edge to the OrderItem entity by IDs.
func (m *ReceiptMutation) RemoveItemIDs(ids ...uuid.UUID) {
	if m.removeditems == nil {
		m.removeditems = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.items, ids[i])
		m.removeditems[ids[i]] = struct{}{}
	}
}

// RemovedItems returns the removed IDs of the "items" edge to the OrderItem entity.
func (m *ReceiptMutation) RemovedItemsIDs() (ids []uuid.UUID) {
	for id := range m.removeditems {
		ids = append(ids, id)
	}
	return
}

// ItemsIDs returns the "items" edge IDs in the mutation.
func (m *ReceiptMutation) ItemsIDs() (ids []uuid.UUID) {
	for id := range m.items {
		ids = append(ids, id)
	}
	return
}

// ResetItems resets all changes to the "items" edge.
func (m *ReceiptMutation) ResetItems() {
	m.items = nil
	m.cleareditems = false
	m.removeditems = nil
}

// AddFeeIDs adds the "fees" edge to the OtherFee entity by ids.
func (m *ReceiptMutation) AddFeeIDs(ids ...uuid.UUID) {
	if m.fees == nil {
		m.fees = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.fees[ids[i]] = struct{}{}
	}
}

// ClearFees clears the "fees" edge to the OtherFee entity.
func (m *ReceiptMutation) ClearFees() {
	m.clearedfees = true
}

// FeesCleared reports if the "fees" edge to the OtherFee entity was cleared.
func (m *ReceiptMutation) FeesCleared() bool {
	return m.clearedfees
}

// RemoveFeeIDs removes the "fees" edge to the OtherFee entity by IDs.
func (m *ReceiptMutation) RemoveFeeIDs(ids ...uuid.UUID) {
	if m.removedfees == nil {
		m.removedfees = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.fees, ids[i])
		m.removedfees[ids[i]] = struct{}{}
	}
}

// RemovedFees returns the removed IDs of the "fees" edge to the OtherFee entity.
func (m *ReceiptMutation) RemovedFeesIDs() (ids []uuid.UUID) {
	for id := range m.removedfees {
		ids = append(ids, id)
	}
	return
}

// FeesIDs returns the "fees" edge IDs in the mutation.
func (m *ReceiptMutation) FeesIDs() (ids []uuid.UUID) {
	for id := range m.fees {
		ids = append(ids, id)
	}
	return
}

// ResetFees resets all changes to the "fees" edge.
func (m *ReceiptMutation) ResetFees() {
	m.fees = nil
	m.clearedfees = false
	m.removedfees = nil
}

// Where appends a list predicates to the ReceiptMutation builder.
func (m *ReceiptMutation) Where(ps ...predicate.Receipt) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ReceiptMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ReceiptMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Receipt, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ReceiptMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ReceiptMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Receipt).
func (m *ReceiptMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ReceiptMutation) Fields() []string {
	fields := make([]string, 0, 15)
	if m.restaurant != nil {
		fields = append(fields, receipt.FieldRestaurant)
	}
	if m.address != nil {
		fields = append(fields, receipt.FieldAddress)
	}
	if m.opened != nil {
		fields = append(fields, receipt.FieldOpened)
	}
	if m.order_number != nil {
		fields = append(fields, receipt.FieldOrderNumber)
	}
	if m.order_type != nil {
		fields = append(fields, receipt.FieldOrderType)
	}
	if m.table_number != nil {
		fields = append(fields, receipt.FieldTableNumber)
	}
	if m.server != nil {
		fields = append(fields, receipt.FieldServer)
	}
	if m.subtotal != nil {
		fields = append(fields, receipt.FieldSubtotal)
	}
	if m.sales_tax != nil {
		fields = append(fields, receipt.FieldSalesTax)
	}
	if m.total != nil {
		fields = append(fields, receipt.FieldTotal)
	}
	if m.payment_method != nil {
		fields = append(fields, receipt.FieldPaymentMethod)
	}
	if m.payment_amount_paid != nil {
		fields = append(fields, receipt.FieldPaymentAmountPaid)
	}
	if m.payment_tip != nil {
		fields = append(fields, receipt.FieldPaymentTip)
	}
	if m.copy != nil {
		fields = append(fields, receipt.FieldCopy)
	}
	if m.created_at != nil {
		fields = append(fields, receipt.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ReceiptMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case receipt.FieldRestaurant:
		return m.Restaurant()
	case receipt.FieldAddress:
		return m.Address()
	case receipt.FieldOpened:
		return m.Opened()
	case receipt.FieldOrderNumber:
		return m.OrderNumber()
	case receipt.FieldOrderType:
		return m.OrderType()
	case receipt.FieldTableNumber:
		return m.TableNumber()
	case receipt.FieldServer:
		return m.Server()
	case receipt.FieldSubtotal:
		return m.Subtotal()
	case receipt.FieldSalesTax:
		return m.SalesTax()
	case receipt.FieldTotal:
		return m.Total()
	case receipt.FieldPaymentMethod:
		return m.PaymentMethod()
	case receipt.FieldPaymentAmountPaid:
		return m.PaymentAmountPaid()
	case receipt.FieldPaymentTip:
		return m.PaymentTip()
	case receipt.FieldCopy:
		return m.Copy()
	case receipt.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ReceiptMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case receipt.FieldRestaurant:
		return m.OldRestaurant(ctx)
	case receipt.FieldAddress:
		return m.OldAddress(ctx)
	case receipt.FieldOpened:
		return m.OldOpened(ctx)
	case receipt.FieldOrderNumber:
		return m.OldOrderNumber(ctx)
	case receipt.FieldOrderType:
		return m.OldOrderType(ctx)
	case receipt.FieldTableNumber:
		return m.OldTableNumber(ctx)
	case receipt.FieldServer:
		return m.OldServer(ctx)
	case receipt.FieldSubtotal:
		return m.OldSubtotal(ctx)
	case receipt.FieldSalesTax:
		return m.OldSalesTax(ctx)
	case receipt.FieldTotal:
		return m.OldTotal(ctx)
	case receipt.FieldPaymentMethod:
		return m.OldPaymentMethod(ctx)
	case receipt.FieldPaymentAmountPaid:
		return m.OldPaymentAmountPaid(ctx)
	case receipt.FieldPaymentTip:
		return m.OldPaymentTip(ctx)
	case receipt.FieldCopy:
		return m.OldCopy(ctx)
	case receipt.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Receipt field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReceiptMutation) SetField(name string, value ent.Value) error {
	switch name {
	case receipt.FieldRestaurant:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRestaurant(v)
		return nil
	case receipt.FieldAddress:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAddress(v)
		return nil
	case receipt.FieldOpened:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOpened(v)
		return nil
	case receipt.FieldOrderNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrderNumber(v)
		return nil
	case receipt.FieldOrderType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrderType(v)
		return nil
	case receipt.FieldTableNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTableNumber(v)
		return nil
	case receipt.FieldServer:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetServer(v)
		return nil
	case receipt.FieldSubtotal:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubtotal(v)
		return nil
	case receipt.FieldSalesTax:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSalesTax(v)
		return nil
	case receipt.FieldTotal:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotal(v)
		return nil
	case receipt.FieldPaymentMethod:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPaymentMethod(v)
		return nil
	case receipt.FieldPaymentAmountPaid:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPaymentAmountPaid(v)
		return nil
	case receipt.FieldPaymentTip:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPaymentTip(v)
		return nil
	case receipt.FieldCopy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCopy(v)
		return nil
	case receipt.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Receipt field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ReceiptMutation) AddedFields() []string {
	var fields []string
	if m.addsubtotal != nil {
		fields = append(fields, receipt.FieldSubtotal)
	}
	if m.addsales_tax != nil {
		fields = append(fields, receipt.FieldSalesTax)
	}
	if m.addtotal != nil {
		fields = append(fields, receipt.FieldTotal)
	}
	if m.addpayment_amount_paid != nil {
		fields = append(fields, receipt.FieldPaymentAmountPaid)
	}
	if m.addpayment_tip != nil {
		fields = append(fields, receipt.FieldPaymentTip)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ReceiptMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case receipt.FieldSubtotal:
		return m.AddedSubtotal()
	case receipt.FieldSalesTax:
		return m.AddedSalesTax()
	case receipt.FieldTotal:
		return m.AddedTotal()
	case receipt.FieldPaymentAmountPaid:
		return m.AddedPaymentAmountPaid()
	case receipt.FieldPaymentTip:
		return m.AddedPaymentTip()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReceiptMutation) AddField(name string, value ent.Value) error {
	switch name {
	case receipt.FieldSubtotal:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSubtotal(v)
		return nil
	case receipt.FieldSalesTax:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSalesTax(v)
		return nil
	case receipt.FieldTotal:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotal(v)
		return nil
	case receipt.FieldPaymentAmountPaid:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPaymentAmountPaid(v)
		return nil
	case receipt.FieldPaymentTip:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPaymentTip(v)
		return nil
	}
	return fmt.Errorf("unknown Receipt numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ReceiptMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(receipt.FieldOpened) {
		fields = append(fields, receipt.FieldOpened)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ReceiptMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ReceiptMutation) ClearField(name string) error {
	switch name {
	case receipt.FieldOpened:
		m.ClearOpened()
		return nil
	}
	return fmt.Errorf("unknown Receipt nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ReceiptMutation) ResetField(name string) error {
	switch name {
	case receipt.FieldRestaurant:
		m.ResetRestaurant()
		return nil
	case receipt.FieldAddress:
		m.ResetAddress()
		return nil
	case receipt.FieldOpened:
		m.ResetOpened()
		return nil
	case receipt.FieldOrderNumber:
		m.ResetOrderNumber()
		return nil
	case receipt.FieldOrderType:
		m.ResetOrderType()
		return nil
	case receipt.FieldTableNumber:
		m.ResetTableNumber()
		return nil
	case receipt.FieldServer:
		m.ResetServer()
		return nil
	case receipt.FieldSubtotal:
		m.ResetSubtotal()
		return nil
	case receipt.FieldSalesTax:
		m.ResetSalesTax()
		return nil
	case receipt.FieldTotal:
		m.ResetTotal()
		return nil
	case receipt.FieldPaymentMethod:
		m.ResetPaymentMethod()
		return nil
	case receipt.FieldPaymentAmountPaid:
		m.ResetPaymentAmountPaid()
		return nil
	case receipt.FieldPaymentTip:
		m.ResetPaymentTip()
		return nil
	case receipt.FieldCopy:
		m.ResetCopy()
		return nil
	case receipt.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Receipt field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ReceiptMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.image != nil {
		edges = append(edges, receipt.EdgeImage)
	}
	if m.items != nil {
		edges = append(edges, receipt.EdgeItems)
	}
	if m.fees != nil {
		edges = append(edges, receipt.EdgeFees)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ReceiptMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case receipt.EdgeImage:
		if id := m.image; id != nil {
			return []ent.Value{*id}
		}
	case receipt.EdgeItems:
		ids := make([]ent.Value, 0, len(m.items))
		for id := range m.items {
			ids = append(ids, id)
		}
		return ids
	case receipt.EdgeFees:
		ids := make([]ent.Value, 0, len(m.fees))
		for id := range m.fees {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ReceiptMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removeditems != nil {
		edges = append(edges, receipt.EdgeItems)
	}
	if m.removedfees != nil {
		edges = append(edges, receipt.EdgeFees)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ReceiptMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case receipt.EdgeItems:
		ids := make([]ent.Value, 0, len(m.removeditems))
		for id := range m.removeditems {
			ids = append(ids, id)
		}
		return ids
	case receipt.EdgeFees:
		ids := make([]ent.Value, 0, len(m.removedfees))
		for id := range m.removedfees {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ReceiptMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedimage {
		edges = append(edges, receipt.EdgeImage)
	}
	if m.cleareditems {
		edges = append(edges, receipt.EdgeItems)
	}
	if m.clearedfees {
		edges = append(edges, receipt.EdgeFees)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ReceiptMutation) EdgeCleared(name string) bool {
	switch name {
	case receipt.EdgeImage:
		return m.clearedimage
	case receipt.EdgeItems:
		return m.cleareditems
	case receipt.EdgeFees:
		return m.clearedfees
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ReceiptMutation) ClearEdge(name string) error {
	switch name {
	case receipt.EdgeImage:
		m.ClearImage()
		return nil
	}
	return fmt.Errorf("unknown Receipt unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ReceiptMutation) ResetEdge(name string) error {
	switch name {
	case receipt.EdgeImage:
		m.ResetImage()
		return nil
	case receipt.EdgeItems:
		m.ResetItems()
		return nil
	case receipt.EdgeFees:
		m.ResetFees()
		return nil
	}
	return fmt.Errorf("unknown Receipt edge %s", name)
}

// ReceiptImageMutation represents an operation that mutates the ReceiptImage nodes in the graph.
type ReceiptImageMutation struct {
	config
	op             Op
	typ            string
	id             *uuid.UUID
	bucket         *string
	key            *string
	raw_text       *string
	file_name      *string
	hash           *string
	uploaded_at    *time.Time
	clearedFields  map[string]struct{}
	outing         *uuid.UUID
	clearedouting  bool
	receipt        *uuid.UUID
	clearedreceipt bool
	done           bool
	oldValue       func(context.Context) (*ReceiptImage, error)
	predicates     []predicate.ReceiptImage
}

var _ ent.Mutation = (*ReceiptImageMutation)(nil)

// receiptimageOption allows management of the mutation configuration using functional options.
type receiptimageOption func(*ReceiptImageMutation)

// newReceiptImageMutation creates new mutation for the ReceiptImage entity.
func newReceiptImageMutation(c config, op Op, opts ...receiptimageOption) *ReceiptImageMutation {
	m := &ReceiptImageMutation{
		config:        c,
		op:            op,
		typ:           TypeReceiptImage,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withReceiptImageID sets the ID field of the mutation.
func withReceiptImageID(id uuid.UUID) receiptimageOption {
	return func(m *ReceiptImageMutation) {
		var (
			err   error
			once  sync.Once
			value *ReceiptImage
		)
		m.oldValue = func(ctx context.Context) (*ReceiptImage, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ReceiptImage.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withReceiptImage sets the old ReceiptImage of the mutation.
func withReceiptImage(node *ReceiptImage) receiptimageOption {
	return func(m *ReceiptImageMutation) {
		m.oldValue = func(context.Context) (*ReceiptImage, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ReceiptImageMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ReceiptImageMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ReceiptImage entities.
func (m *ReceiptImageMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ReceiptImageMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ReceiptImageMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ReceiptImage.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetOutingID sets the "outing_id" field.
func (m *ReceiptImageMutation) SetOutingID(u uuid.UUID) {
	m.outing = &u
}

// OutingID returns the value of the "outing_id" field in the mutation.
func (m *ReceiptImageMutation) OutingID() (r uuid.UUID, exists bool) {
	v := m.outing
	if v == nil {
		return
	}
	return *v, true
}

// OldOutingID returns the old "outing_id" field's value of the ReceiptImage entity.
// If the ReceiptImage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReceiptImageMutation) OldOutingID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutingID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutingID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutingID: %w", err)
	}
	return oldValue.OutingID, nil
}

// ResetOutingID resets all changes to the "outing_id" field.
func (m *ReceiptImageMutation) ResetOutingID() {
	m.outing = nil
}

// SetBucket sets the "bucket" field.
func (m *ReceiptImageMutation) SetBucket(s string) {
	m.bucket = &s
}

// Bucket returns the value of the "bucket" field in the mutation.
func (m *ReceiptImageMutation) Bucket() (r string, exists bool) {
	v := m.bucket
	if v == nil {
		return
	}
	return *v, true
}

// OldBucket returns the old "bucket" field's value of the ReceiptImage entity.
// If the ReceiptImage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReceiptImageMutation) OldBucket(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBucket is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBucket requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBucket: %w", err)
	}
	return oldValue.Bucket, nil
}

// ResetBucket resets all changes to the "bucket" field.
func (m *ReceiptImageMutation) ResetBucket() {
	m.bucket = nil
}

// SetKey sets the "key" field.
func (m *ReceiptImageMutation) SetKey(s string) {
	m.key = &s
}

// Key returns the value of the "key" field in the mutation.
func (m *ReceiptImageMutation) Key() (r string, exists bool) {
	v := m.key
	if v == nil {
		return
	}
	return *v, true
}

// OldKey returns the old "key" field's value of the ReceiptImage entity.
// If the ReceiptImage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReceiptImageMutation) OldKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKey: %w", err)
	}
	return oldValue.Key, nil
}

// ResetKey resets all changes to the "key" field.
func (m *ReceiptImageMutation) ResetKey() {
	m.key = nil
}

// SetRawText sets the "raw_text" field.
func (m *ReceiptImageMutation) SetRawText(s string) {
	m.raw_text = &s
}

// RawText returns the value of the "raw_text" field in the mutation.
func (m *ReceiptImageMutation) RawText() (r string, exists bool) {
	v := m.raw_text
	if v == nil {
		return
	}
	return *v, true
}

// OldRawText returns the old "raw_text" field's value of the ReceiptImage entity.
// If the ReceiptImage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReceiptImageMutation) OldRawText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRawText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRawText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRawText: %w", err)
	}
	return oldValue.RawText, nil
}

// ResetRawText resets all changes to the "raw_text" field.
func (m *ReceiptImageMutation) ResetRawText() {
	m.raw_text = nil
}

// SetFileName sets the "file_name" field.
func (m *ReceiptImageMutation) SetFileName(s string) {
	m.file_name = &s
}

// FileName returns the value of the "file_name" field in the mutation.
func (m *ReceiptImageMutation) FileName() (r string, exists bool) {
	v := m.file_name
	if v == nil {
		return
	}
	return *v, true
}

// OldFileName returns the old "file_name" field's value of the ReceiptImage entity.
// If the ReceiptImage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReceiptImageMutation) OldFileName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileName: %w", err)
	}
	return oldValue.FileName, nil
}

// ResetFileName resets all changes to the "file_name" field.
func (m *ReceiptImageMutation) ResetFileName() {
	m.file_name = nil
}

// SetHash sets the "hash" field.
func (m *ReceiptImageMutation) SetHash(s string) {
	m.hash = &s
}

// Hash returns the value of the "hash" field in the mutation.
func (m *ReceiptImageMutation) Hash() (r string, exists bool) {
	v := m.hash
	if v == nil {
		return
	}
	return *v, true
}

// OldHash returns the old "hash" field's value of the ReceiptImage entity.
// If the ReceiptImage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReceiptImageMutation) OldHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHash: %w", err)
	}
	return oldValue.Hash, nil
}

// ResetHash resets all changes to the "hash" field.
func (m *ReceiptImageMutation) ResetHash() {
	m.hash = nil
}

// SetUploadedAt sets the "uploaded_at" field.
func (m *ReceiptImageMutation) SetUploadedAt(t time.Time) {
	m.uploaded_at = &t
}

// UploadedAt returns the value of the "uploaded_at" field in the mutation.
func (m *ReceiptImageMutation) UploadedAt() (r time.Time, exists bool) {
	v := m.uploaded_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUploadedAt returns the old "uploaded_at" field's value of the ReceiptImage entity.
// If the ReceiptImage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReceiptImageMutation) OldUploadedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUploadedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUploadedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUploadedAt: %w", err)
	}
	return oldValue.UploadedAt, nil
}

// ResetUploadedAt resets all changes to the "uploaded_at" field.
func (m *ReceiptImageMutation) ResetUploadedAt() {
	m.uploaded_at = nil
}

// ClearOuting clears the "outing" edge to the Outing entity.
func (m *ReceiptImageMutation) ClearOuting() {
	m.clearedouting = true
	m.clearedFields[receiptimage.FieldOutingID] = struct{}{}
}

// OutingCleared reports if the "outing" edge to the Outing entity was cleared.
func (m *ReceiptImageMutation) OutingCleared() bool {
	return m.clearedouting
}

// OutingIDs returns the "outing" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// OutingID instead. It exists only for internal usage by the builders.
func (m *ReceiptImageMutation) OutingIDs() (ids []uuid.UUID) {
	if id := m.outing; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetOuting resets all changes to the "outing" edge.
func (m *ReceiptImageMutation) ResetOuting() {
	m.outing = nil
	m.clearedouting = false
}

// SetReceiptID sets the "receipt" edge to the Receipt entity by id.
func (m *ReceiptImageMutation) SetReceiptID(id uuid.UUID) {
	m.receipt = &id
}

// ClearReceipt clears the "receipt" edge to the Receipt entity.
func (m *ReceiptImageMutation) ClearReceipt() {
	m.clearedreceipt = true
}

// ReceiptCleared reports if the "receipt" edge to the Receipt entity was cleared.
func (m *ReceiptImageMutation) ReceiptCleared() bool {
	return m.clearedreceipt
}

// ReceiptID returns the "receipt" edge ID in the mutation.
func (m *ReceiptImageMutation) ReceiptID() (id uuid.UUID, exists bool) {
	if m.receipt != nil {
		return *m.receipt, true
	}
	return
}

// ReceiptIDs returns the "receipt" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ReceiptID instead. It exists only for internal usage by the builders.
func (m *ReceiptImageMutation) ReceiptIDs() (ids []uuid.UUID) {
	if id := m.receipt; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetReceipt resets all changes to the "receipt" edge.
func (m *ReceiptImageMutation) ResetReceipt() {
	m.receipt = nil
	m.clearedreceipt = false
}

// Where appends a list predicates to the ReceiptImageMutation builder.
func (m *ReceiptImageMutation) Where(ps ...predicate.ReceiptImage) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ReceiptImageMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ReceiptImageMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ReceiptImage, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ReceiptImageMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ReceiptImageMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ReceiptImage).
func (m *ReceiptImageMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ReceiptImageMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.outing != nil {
		fields = append(fields, receiptimage.FieldOutingID)
	}
	if m.bucket != nil {
		fields = append(fields, receiptimage.FieldBucket)
	}
	if m.key != nil {
		fields = append(fields, receiptimage.FieldKey)
	}
	if m.raw_text != nil {
		fields = append(fields, receiptimage.FieldRawText)
	}
	if m.file_name != nil {
		fields = append(fields, receiptimage.FieldFileName)
	}
	if m.hash != nil {
		fields = append(fields, receiptimage.FieldHash)
	}
	if m.uploaded_at != nil {
		fields = append(fields, receiptimage.FieldUploadedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ReceiptImageMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case receiptimage.FieldOutingID:
		return m.OutingID()
	case receiptimage.FieldBucket:
		return m.Bucket()
	case receiptimage.FieldKey:
		return m.Key()
	case receiptimage.FieldRawText:
		return m.RawText()
	case receiptimage.FieldFileName:
		return m.FileName()
	case receiptimage.FieldHash:
		return m.Hash()
	case receiptimage.FieldUploadedAt:
		return m.UploadedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ReceiptImageMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case receiptimage.FieldOutingID:
		return m.OldOutingID(ctx)
	case receiptimage.FieldBucket:
		return m.OldBucket(ctx)
	case receiptimage.FieldKey:
		return m.OldKey(ctx)
	case receiptimage.FieldRawText:
		return m.OldRawText(ctx)
	case receiptimage.FieldFileName:
		return m.OldFileName(ctx)
	case receiptimage.FieldHash:
		return m.OldHash(ctx)
	case receiptimage.FieldUploadedAt:
		return m.OldUploadedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ReceiptImage field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReceiptImageMutation) SetField(name string, value ent.Value) error {
	switch name {
	case receiptimage.FieldOutingID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutingID(v)
		return nil
	case receiptimage.FieldBucket:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBucket(v)
		return nil
	case receiptimage.FieldKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKey(v)
		return nil
	case receiptimage.FieldRawText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRawText(v)
		return nil
	case receiptimage.FieldFileName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileName(v)
		return nil
	case receiptimage.FieldHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHash(v)
		return nil
	case receiptimage.FieldUploadedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUploadedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ReceiptImage field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ReceiptImageMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ReceiptImageMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReceiptImageMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ReceiptImage numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ReceiptImageMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ReceiptImageMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ReceiptImageMutation) ClearField(name string) error {
	return fmt.Errorf("unknown ReceiptImage nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ReceiptImageMutation) ResetField(name string) error {
	switch name {
	case receiptimage.FieldOutingID:
		m.ResetOutingID()
		return nil
	case receiptimage.FieldBucket:
		m.ResetBucket()
		return nil
	case receiptimage.FieldKey:
		m.ResetKey()
		return nil
	case receiptimage.FieldRawText:
		m.ResetRawText()
		return nil
	case receiptimage.FieldFileName:
		m.ResetFileName()
		return nil
	case receiptimage.FieldHash:
		m.ResetHash()
		return nil
	case receiptimage.FieldUploadedAt:
		m.ResetUploadedAt()
		return nil
	}
	return fmt.Errorf("unknown ReceiptImage field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ReceiptImageMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.outing != nil {
		edges = append(edges, receiptimage.EdgeOuting)
	}
	if m.receipt != nil {
		edges = append(edges, receiptimage.EdgeReceipt)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ReceiptImageMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case receiptimage.EdgeOuting:
		if id := m.outing; id != nil {
			return []ent.Value{*id}
		}
	case receiptimage.EdgeReceipt:
		if id := m.receipt; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ReceiptImageMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ReceiptImageMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ReceiptImageMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedouting {
		edges = append(edges, receiptimage.EdgeOuting)
	}
	if m.clearedreceipt {
		edges = append(edges, receiptimage.EdgeReceipt)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ReceiptImageMutation) EdgeCleared(name string) bool {
	switch name {
	case receiptimage.EdgeOuting:
		return m.clearedouting
	case receiptimage.EdgeReceipt:
		return m.clearedreceipt
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ReceiptImageMutation) ClearEdge(name string) error {
	switch name {
	case receiptimage.EdgeOuting:
		m.ClearOuting()
		return nil
	case receiptimage.EdgeReceipt:
		m.ClearReceipt()
		return nil
	}
	return fmt.Errorf("unknown ReceiptImage unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ReceiptImageMutation) ResetEdge(name string) error {
	switch name {
	case receiptimage.EdgeOuting:
		m.ResetOuting()
		return nil
	case receiptimage.EdgeReceipt:
		m.ResetReceipt()
		return nil
	}
	return fmt.Errorf("unknown ReceiptImage edge %s", name)
}
