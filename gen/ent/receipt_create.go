// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/tabmate/outings-tracker/gen/ent/orderitem"
	"github.com/tabmate/outings-tracker/gen/ent/otherfee"
	"github.com/tabmate/outings-tracker/gen/ent/receipt"
	"github.com/tabmate/outings-tracker/gen/ent/receiptimage"
)

// ReceiptCreate is the builder for creating a Receipt entity.
type ReceiptCreate struct {
	config
	mutation *ReceiptMutation
	hooks    []Hook
}

// SetRestaurant sets the "restaurant" field.
func (_c *ReceiptCreate) SetRestaurant(v string) *ReceiptCreate {
	_c.mutation.SetRestaurant(v)
	return _c
}

// SetAddress sets the "address" field.
func (_c *ReceiptCreate) SetAddress(v string) *ReceiptCreate {
	_c.mutation.SetAddress(v)
	return _c
}

// SetOpened sets the "opened" field.
func (_c *ReceiptCreate) SetOpened(v time.Time) *ReceiptCreate {
	_c.mutation.SetOpened(v)
	return _c
}

// SetNillableOpened sets the "opened" field if the given value is not nil.
func (_c *ReceiptCreate) SetNillableOpened(v *time.Time) *ReceiptCreate {
	if v != nil {
		_c.SetOpened(*v)
	}
	return _c
}

// SetOrderNumber sets the "order_number" field.
func (_c *ReceiptCreate) SetOrderNumber(v string) *ReceiptCreate {
	_c.mutation.SetOrderNumber(v)
	return _c
}

// SetOrderType sets the "order_type" field.
func (_c *ReceiptCreate) SetOrderType(v string) *ReceiptCreate {
	_c.mutation.SetOrderType(v)
	return _c
}

// SetTableNumber sets the "table_number" field.
func (_c *ReceiptCreate) SetTableNumber(v string) *ReceiptCreate {
	_c.mutation.SetTableNumber(v)
	return _c
}

// SetServer sets the "server" field.
func (_c *ReceiptCreate) SetServer(v string) *ReceiptCreate {
	_c.mutation.SetServer(v)
	return _c
}

// SetSubtotal sets the "subtotal" field.
func (_c *ReceiptCreate) SetSubtotal(v float64) *ReceiptCreate {
	_c.mutation.SetSubtotal(v)
	return _c
}

// SetSalesTax sets the "sales_tax" field.
func (_c *ReceiptCreate) SetSalesTax(v float64) *ReceiptCreate {
	_c.mutation.SetSalesTax(v)
	return _c
}

// SetTotal sets the "total" field.
func (_c *ReceiptCreate) SetTotal(v float64) *ReceiptCreate {
	_c.mutation.SetTotal(v)
	return _c
}

// SetPaymentMethod sets the "payment_method" field.
func (_c *ReceiptCreate) SetPaymentMethod(v string) *ReceiptCreate {
	_c.mutation.SetPaymentMethod(v)
	return _c
}

// SetPaymentAmountPaid sets the "payment_amount_paid" field.
func (_c *ReceiptCreate) SetPaymentAmountPaid(v float64) *ReceiptCreate {
	_c.mutation.SetPaymentAmountPaid(v)
	return _c
}

// SetPaymentTip sets the "payment_tip" field.
func (_c *ReceiptCreate) SetPaymentTip(v float64) *ReceiptCreate {
	_c.mutation.SetPaymentTip(v)
	return _c
}

// SetCopy sets the "copy" field.
func (_c *ReceiptCreate) SetCopy(v string) *ReceiptCreate {
	_c.mutation.SetCopy(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ReceiptCreate) SetCreatedAt(v time.Time) *ReceiptCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ReceiptCreate) SetNillableCreatedAt(v *time.Time) *ReceiptCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ReceiptCreate) SetID(v uuid.UUID) *ReceiptCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ReceiptCreate) SetNillableID(v *uuid.UUID) *ReceiptCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetImageID sets the "image" edge to the ReceiptImage entity by ID.
func (_c *ReceiptCreate) SetImageID(id uuid.UUID) *ReceiptCreate {
	_c.mutation.SetImageID(id)
	return _c
}

// SetImage sets the "image" edge to the ReceiptImage entity.
func (_c *ReceiptCreate) SetImage(v *ReceiptImage) *ReceiptCreate {
	return _c.SetImageID(v.ID)
}

// AddItemIDs adds the "items" edge to the OrderItem entity by IDs.
func (_c *ReceiptCreate) AddItemIDs(ids ...uuid.UUID) *ReceiptCreate {
	_c.mutation.AddItemIDs(ids...)
	return _c
}

// AddItems adds the "items" edges to the OrderItem entity.
func (_c *ReceiptCreate) AddItems(v ...*OrderItem) *ReceiptCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddItemIDs(ids...)
}

// AddFeeIDs adds the "fees" edge to the OtherFee entity by IDs.
func (_c *ReceiptCreate) AddFeeIDs(ids ...uuid.UUID) *ReceiptCreate {
	_c.mutation.AddFeeIDs(ids...)
	return _c
}

// AddFees adds the "fees" edges to the OtherFee entity.
func (_c *ReceiptCreate) AddFees(v ...*OtherFee) *ReceiptCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddFeeIDs(ids...)
}

// Mutation returns the ReceiptMutation object of the builder.
func (_c *ReceiptCreate) Mutation() *ReceiptMutation {
	return _c.mutation
}

// Save creates the Receipt in the database.
func (_c *ReceiptCreate) Save(ctx context.Context) (*Receipt, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ReceiptCreate) SaveX(ctx context.Context) *Receipt {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReceiptCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReceiptCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ReceiptCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := receipt.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := receipt.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ReceiptCreate) check() error {
	if _, ok := _c.mutation.Restaurant(); !ok {
		return &ValidationError{Name: "restaurant", err: errors.New(`ent: missing required field "Receipt.restaurant"`)}
	}
	if _, ok := _c.mutation.Address(); !ok {
		return &ValidationError{Name: "address", err: errors.New(`ent: missing required field "Receipt.address"`)}
	}
	if _, ok := _c.mutation.OrderNumber(); !ok {
		return &ValidationError{Name: "order_number", err: errors.New(`ent: missing required field "Receipt.order_number"`)}
	}
	if _, ok := _c.mutation.OrderType(); !ok {
		return &ValidationError{Name: "order_type", err: errors.New(`ent: missing required field "Receipt.order_type"`)}
	}
	if _, ok := _c.mutation.TableNumber(); !ok {
		return &ValidationError{Name: "table_number", err: errors.New(`ent: missing required field "Receipt.table_number"`)}
	}
	if _, ok := _c.mutation.Server(); !ok {
		return &ValidationError{Name: "server", err: errors.New(`ent: missing required field "Receipt.server"`)}
	}
	if _, ok := _c.mutation.Subtotal(); !ok {
		return &ValidationError{Name: "subtotal", err: errors.New(`ent: missing required field "Receipt.subtotal"`)}
	}
	if _, ok := _c.mutation.SalesTax(); !ok {
		return &ValidationError{Name: "sales_tax", err: errors.New(`ent: missing required field "Receipt.sales_tax"`)}
	}
	if _, ok := _c.mutation.Total(); !ok {
		return &ValidationError{Name: "total", err: errors.New(`ent: missing required field "Receipt.total"`)}
	}
	if _, ok := _c.mutation.PaymentMethod(); !ok {
		return &ValidationError{Name: "payment_method", err: errors.New(`ent: missing required field "Receipt.payment_method"`)}
	}
	if _, ok := _c.mutation.PaymentAmountPaid(); !ok {
		return &ValidationError{Name: "payment_amount_paid", err: errors.New(`ent: missing required field "Receipt.payment_amount_paid"`)}
	}
	if _, ok := _c.mutation.PaymentTip(); !ok {
		return &ValidationError{Name: "payment_tip", err: errors.New(`ent: missing required field "Receipt.payment_tip"`)}
	}
	if _, ok := _c.mutation.Copy(); !ok {
		return &ValidationError{Name: "copy", err: errors.New(`ent: missing required field "Receipt.copy"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Receipt.created_at"`)}
	}
	if len(_c.mutation.ImageIDs()) == 0 {
		return &ValidationError{Name: "image", err: errors.New(`ent: missing required edge "Receipt.image"`)}
	}
	return nil
}

func (_c *ReceiptCreate) sqlSave(ctx context.Context) (*Receipt, error) {
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
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ReceiptCreate) createSpec() (*Receipt, *sqlgraph.CreateSpec) {
	var (
		_node = &Receipt{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(receipt.Table, sqlgraph.NewFieldSpec(receipt.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Restaurant(); ok {
		_spec.SetField(receipt.FieldRestaurant, field.TypeString, value)
		_node.Restaurant = value
	}
	if value, ok := _c.mutation.Address(); ok {
		_spec.SetField(receipt.FieldAddress, field.TypeString, value)
		_node.Address = value
	}
	if value, ok := _c.mutation.Opened(); ok {
		_spec.SetField(receipt.FieldOpened, field.TypeTime, value)
		_node.Opened = &value
	}
	if value, ok := _c.mutation.OrderNumber(); ok {
		_spec.SetField(receipt.FieldOrderNumber, field.TypeString, value)
		_node.OrderNumber = value
	}
	if value, ok := _c.mutation.OrderType(); ok {
		_spec.SetField(receipt.FieldOrderType, field.TypeString, value)
		_node.OrderType = value
	}
	if value, ok := _c.mutation.TableNumber(); ok {
		_spec.SetField(receipt.FieldTableNumber, field.TypeString, value)
		_node.TableNumber = value
	}
	if value, ok := _c.mutation.Server(); ok {
		_spec.SetField(receipt.FieldServer, field.TypeString, value)
		_node.Server = value
	}
	if value, ok := _c.mutation.Subtotal(); ok {
		_spec.SetField(receipt.FieldSubtotal, field.TypeFloat64, value)
		_node.Subtotal = value
	}
	if value, ok := _c.mutation.SalesTax(); ok {
		_spec.SetField(receipt.FieldSalesTax, field.TypeFloat64, value)
		_node.SalesTax = value
	}
	if value, ok := _c.mutation.Total(); ok {
		_spec.SetField(receipt.FieldTotal, field.TypeFloat64, value)
		_node.Total = value
	}
	if value, ok := _c.mutation.PaymentMethod(); ok {
		_spec.SetField(receipt.FieldPaymentMethod, field.TypeString, value)
		_node.PaymentMethod = value
	}
	if value, ok := _c.mutation.PaymentAmountPaid(); ok {
		_spec.SetField(receipt.FieldPaymentAmountPaid, field.TypeFloat64, value)
		_node.PaymentAmountPaid = value
	}
	if value, ok := _c.mutation.PaymentTip(); ok {
		_spec.SetField(receipt.FieldPaymentTip, field.TypeFloat64, value)
		_node.PaymentTip = value
	}
	if value, ok := _c.mutation.Copy(); ok {
		_spec.SetField(receipt.FieldCopy, field.TypeString, value)
		_node.Copy = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(receipt.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.ImageIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   receipt.ImageTable,
			Columns: []string{receipt.ImageColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(receiptimage.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.receipt_image_receipt = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ItemsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   receipt.ItemsTable,
			Columns: []string{receipt.ItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(orderitem.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.FeesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   receipt.FeesTable,
			Columns: []string{receipt.FeesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(otherfee.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ReceiptCreateBulk is the builder for creating many Receipt entities in bulk.
type ReceiptCreateBulk struct {
	config
	err      error
	builders []*ReceiptCreate
}

// Save creates the Receipt entities in the database.
func (_c *ReceiptCreateBulk) Save(ctx context.Context) ([]*Receipt, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Receipt, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ReceiptMutation)
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
func (_c *ReceiptCreateBulk) SaveX(ctx context.Context) []*Receipt {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReceiptCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReceiptCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
