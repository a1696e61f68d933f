// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/tabmate/outings-tracker/gen/ent/orderitem"
	"github.com/tabmate/outings-tracker/gen/ent/otherfee"
	"github.com/tabmate/outings-tracker/gen/ent/predicate"
	"github.com/tabmate/outings-tracker/gen/ent/receipt"
	"github.com/tabmate/outings-tracker/gen/ent/receiptimage"
)

// ReceiptUpdate is the builder for updating Receipt entities.
type ReceiptUpdate struct {
	config
	hooks    []Hook
	mutation *ReceiptMutation
}

// Where appends a list predicates to the ReceiptUpdate builder.
func (_u *ReceiptUpdate) Where(ps ...predicate.Receipt) *ReceiptUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRestaurant sets the "restaurant" field.
func (_u *ReceiptUpdate) SetRestaurant(v string) *ReceiptUpdate {
	_u.mutation.SetRestaurant(v)
	return _u
}

// SetNillableRestaurant sets the "restaurant" field if the given value is not nil.
func (_u *ReceiptUpdate) SetNillableRestaurant(v *string) *ReceiptUpdate {
	if v != nil {
		_u.SetRestaurant(*v)
	}
	return _u
}

// SetAddress sets the "address" field.
func (_u *ReceiptUpdate) SetAddress(v string) *ReceiptUpdate {
	_u.mutation.SetAddress(v)
	return _u
}

// SetNillableAddress sets the "address" field if the given value is not nil.
func (_u *ReceiptUpdate) SetNillableAddress(v *string) *ReceiptUpdate {
	if v != nil {
		_u.SetAddress(*v)
	}
	return _u
}

// SetOpened sets the "opened" field.
func (_u *ReceiptUpdate) SetOpened(v time.Time) *ReceiptUpdate {
	_u.mutation.SetOpened(v)
	return _u
}

// SetNillableOpened sets the "opened" field if the given value is not nil.
func (_u *ReceiptUpdate) SetNillableOpened(v *time.Time) *ReceiptUpdate {
	if v != nil {
		_u.SetOpened(*v)
	}
	return _u
}

// ClearOpened clears the value of the "opened" field.
func (_u *ReceiptUpdate) ClearOpened() *ReceiptUpdate {
	_u.mutation.ClearOpened()
	return _u
}

// SetOrderNumber sets the "order_number" field.
func (_u *ReceiptUpdate) SetOrderNumber(v string) *ReceiptUpdate {
	_u.mutation.SetOrderNumber(v)
	return _u
}

// SetNillableOrderNumber sets the "order_number" field if the given value is not nil.
func (_u *ReceiptUpdate) SetNillableOrderNumber(v *string) *ReceiptUpdate {
	if v != nil {
		_u.SetOrderNumber(*v)
	}
	return _u
}

// SetOrderType sets the "order_type" field.
func (_u *ReceiptUpdate) SetOrderType(v string) *ReceiptUpdate {
	_u.mutation.SetOrderType(v)
	return _u
}

// SetNillableOrderType sets the "order_type" field if the given value is not nil.
func (_u *ReceiptUpdate) SetNillableOrderType(v *string) *ReceiptUpdate {
	if v != nil {
		_u.SetOrderType(*v)
	}
	return _u
}

// SetTableNumber sets the "table_number" field.
func (_u *ReceiptUpdate) SetTableNumber(v string) *ReceiptUpdate {
	_u.mutation.SetTableNumber(v)
	return _u
}

// SetNillableTableNumber sets the "table_number" field if the given value is not nil.
func (_u *ReceiptUpdate) SetNillableTableNumber(v *string) *ReceiptUpdate {
	if v != nil {
		_u.SetTableNumber(*v)
	}
	return _u
}

// SetServer sets the "server" field.
func (_u *ReceiptUpdate) SetServer(v string) *ReceiptUpdate {
	_u.mutation.SetServer(v)
	return _u
}

// SetNillableServer sets the "server" field if the given value is not nil.
func (_u *ReceiptUpdate) SetNillableServer(v *string) *ReceiptUpdate {
	if v != nil {
		_u.SetServer(*v)
	}
	return _u
}

// SetSubtotal sets the "subtotal" field.
func (_u *ReceiptUpdate) SetSubtotal(v float64) *ReceiptUpdate {
	_u.mutation.ResetSubtotal()
	_u.mutation.SetSubtotal(v)
	return _u
}

// SetNillableSubtotal sets the "subtotal" field if the given value is not nil.
func (_u *ReceiptUpdate) SetNillableSubtotal(v *float64) *ReceiptUpdate {
	if v != nil {
		_u.SetSubtotal(*v)
	}
	return _u
}

// AddSubtotal adds value to the "subtotal" field.
func (_u *ReceiptUpdate) AddSubtotal(v float64) *ReceiptUpdate {
	_u.mutation.AddSubtotal(v)
	return _u
}

// SetSalesTax sets the "sales_tax" field.
func (_u *ReceiptUpdate) SetSalesTax(v float64) *ReceiptUpdate {
	_u.mutation.ResetSalesTax()
	_u.mutation.SetSalesTax(v)
	return _u
}

// SetNillableSalesTax sets the "sales_tax" field if the given value is not nil.
func (_u *ReceiptUpdate) SetNillableSalesTax(v *float64) *ReceiptUpdate {
	if v != nil {
		_u.SetSalesTax(*v)
	}
	return _u
}

// AddSalesTax adds value to the "sales_tax" field.
func (_u *ReceiptUpdate) AddSalesTax(v float64) *ReceiptUpdate {
	_u.mutation.AddSalesTax(v)
	return _u
}

// SetTotal sets the "total" field.
func (_u *ReceiptUpdate) SetTotal(v float64) *ReceiptUpdate {
	_u.mutation.ResetTotal()
	_u.mutation.SetTotal(v)
	return _u
}

// SetNillableTotal sets the "total" field if the given value is not nil.
func (_u *ReceiptUpdate) SetNillableTotal(v *float64) *ReceiptUpdate {
	if v != nil {
		_u.SetTotal(*v)
	}
	return _u
}

// AddTotal adds value to the "total" field.
func (_u *ReceiptUpdate) AddTotal(v float64) *ReceiptUpdate {
	_u.mutation.AddTotal(v)
	return _u
}

// SetPaymentMethod sets the "payment_method" field.
func (_u *ReceiptUpdate) SetPaymentMethod(v string) *ReceiptUpdate {
	_u.mutation.SetPaymentMethod(v)
	return _u
}

// SetNillablePaymentMethod sets the "payment_method" field if the given value is not nil.
func (_u *ReceiptUpdate) SetNillablePaymentMethod(v *string) *ReceiptUpdate {
	if v != nil {
		_u.SetPaymentMethod(*v)
	}
	return _u
}

// SetPaymentAmountPaid sets the "payment_amount_paid" field.
func (_u *ReceiptUpdate) SetPaymentAmountPaid(v float64) *ReceiptUpdate {
	_u.mutation.ResetPaymentAmountPaid()
	_u.mutation.SetPaymentAmountPaid(v)
	return _u
}

// SetNillablePaymentAmountPaid sets the "payment_amount_paid" field if the given value is not nil.
func (_u *ReceiptUpdate) SetNillablePaymentAmountPaid(v *float64) *ReceiptUpdate {
	if v != nil {
		_u.SetPaymentAmountPaid(*v)
	}
	return _u
}

// AddPaymentAmountPaid adds value to the "payment_amount_paid" field.
func (_u *ReceiptUpdate) AddPaymentAmountPaid(v float64) *ReceiptUpdate {
	_u.mutation.AddPaymentAmountPaid(v)
	return _u
}

// SetPaymentTip sets the "payment_tip" field.
func (_u *ReceiptUpdate) SetPaymentTip(v float64) *ReceiptUpdate {
	_u.mutation.ResetPaymentTip()
	_u.mutation.SetPaymentTip(v)
	return _u
}

// SetNillablePaymentTip sets the "payment_tip" field if the given value is not nil.
func (_u *ReceiptUpdate) SetNillablePaymentTip(v *float64) *ReceiptUpdate {
	if v != nil {
		_u.SetPaymentTip(*v)
	}
	return _u
}

// AddPaymentTip adds value to the "payment_tip" field.
func (_u *ReceiptUpdate) AddPaymentTip(v float64) *ReceiptUpdate {
	_u.mutation.AddPaymentTip(v)
	return _u
}

// SetCopy sets the "copy" field.
func (_u *ReceiptUpdate) SetCopy(v string) *ReceiptUpdate {
	_u.mutation.SetCopy(v)
	return _u
}

// SetNillableCopy sets the "copy" field if the given value is not nil.
func (_u *ReceiptUpdate) SetNillableCopy(v *string) *ReceiptUpdate {
	if v != nil {
		_u.SetCopy(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ReceiptUpdate) SetCreatedAt(v time.Time) *ReceiptUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ReceiptUpdate) SetNillableCreatedAt(v *time.Time) *ReceiptUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetImageID sets the "image" edge to the ReceiptImage entity by ID.
func (_u *ReceiptUpdate) SetImageID(id uuid.UUID) *ReceiptUpdate {
	_u.mutation.SetImageID(id)
	return _u
}

// SetImage sets the "image" edge to the ReceiptImage entity.
func (_u *ReceiptUpdate) SetImage(v *ReceiptImage) *ReceiptUpdate {
	return _u.SetImageID(v.ID)
}

// AddItemIDs adds the "items" edge to the OrderItem entity by IDs.
func (_u *ReceiptUpdate) AddItemIDs(ids ...uuid.UUID) *ReceiptUpdate {
	_u.mutation.AddItemIDs(ids...)
	return _u
}

// AddItems adds the "items" edges to the OrderItem entity.
func (_u *ReceiptUpdate) AddItems(v ...*OrderItem) *ReceiptUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddItemIDs(ids...)
}

// AddFeeIDs adds the "fees" edge to the OtherFee entity by IDs.
func (_u *ReceiptUpdate) AddFeeIDs(ids ...uuid.UUID) *ReceiptUpdate {
	_u.mutation.AddFeeIDs(ids...)
	return _u
}

// AddFees adds the "fees" edges to the OtherFee entity.
func (_u *ReceiptUpdate) AddFees(v ...*OtherFee) *ReceiptUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddFeeIDs(ids...)
}

// Mutation returns the ReceiptMutation object of the builder.
func (_u *ReceiptUpdate) Mutation() *ReceiptMutation {
	return _u.mutation
}

// ClearImage clears the "image" edge to the ReceiptImage entity.
func (_u *ReceiptUpdate) ClearImage() *ReceiptUpdate {
	_u.mutation.ClearImage()
	return _u
}

// ClearItems clears all "items" edges to the OrderItem entity.
func (_u *ReceiptUpdate) ClearItems() *ReceiptUpdate {
	_u.mutation.ClearItems()
	return _u
}

// RemoveItemIDs removes the "items" edge to OrderItem entities by IDs.
func (_u *ReceiptUpdate) RemoveItemIDs(ids ...uuid.UUID) *ReceiptUpdate {
	_u.mutation.RemoveItemIDs(ids...)
	return _u
}

// RemoveItems removes "items" edges to OrderItem entities.
func (_u *ReceiptUpdate) RemoveItems(v ...*OrderItem) *ReceiptUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveItemIDs(ids...)
}

// ClearFees clears all "fees" edges to the OtherFee entity.
func (_u *ReceiptUpdate) ClearFees() *ReceiptUpdate {
	_u.mutation.ClearFees()
	return _u
}

// RemoveFeeIDs removes the "fees" edge to OtherFee entities by IDs.
func (_u *ReceiptUpdate) RemoveFeeIDs(ids ...uuid.UUID) *ReceiptUpdate {
	_u.mutation.RemoveFeeIDs(ids...)
	return _u
}

// RemoveFees removes "fees" edges to OtherFee entities.
func (_u *ReceiptUpdate) RemoveFees(v ...*OtherFee) *ReceiptUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveFeeIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ReceiptUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReceiptUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ReceiptUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReceiptUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReceiptUpdate) check() error {
	if _u.mutation.ImageCleared() && len(_u.mutation.ImageIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Receipt.image"`)
	}
	return nil
}

func (_u *ReceiptUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(receipt.Table, receipt.Columns, sqlgraph.NewFieldSpec(receipt.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Restaurant(); ok {
		_spec.SetField(receipt.FieldRestaurant, field.TypeString, value)
	}
	if value, ok := _u.mutation.Address(); ok {
		_spec.SetField(receipt.FieldAddress, field.TypeString, value)
	}
	if value, ok := _u.mutation.Opened(); ok {
		_spec.SetField(receipt.FieldOpened, field.TypeTime, value)
	}
	if _u.mutation.OpenedCleared() {
		_spec.ClearField(receipt.FieldOpened, field.TypeTime)
	}
	if value, ok := _u.mutation.OrderNumber(); ok {
		_spec.SetField(receipt.FieldOrderNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.OrderType(); ok {
		_spec.SetField(receipt.FieldOrderType, field.TypeString, value)
	}
	if value, ok := _u.mutation.TableNumber(); ok {
		_spec.SetField(receipt.FieldTableNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.Server(); ok {
		_spec.SetField(receipt.FieldServer, field.TypeString, value)
	}
	if value, ok := _u.mutation.Subtotal(); ok {
		_spec.SetField(receipt.FieldSubtotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSubtotal(); ok {
		_spec.AddField(receipt.FieldSubtotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.SalesTax(); ok {
		_spec.SetField(receipt.FieldSalesTax, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSalesTax(); ok {
		_spec.AddField(receipt.FieldSalesTax, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Total(); ok {
		_spec.SetField(receipt.FieldTotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotal(); ok {
		_spec.AddField(receipt.FieldTotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.PaymentMethod(); ok {
		_spec.SetField(receipt.FieldPaymentMethod, field.TypeString, value)
	}
	if value, ok := _u.mutation.PaymentAmountPaid(); ok {
		_spec.SetField(receipt.FieldPaymentAmountPaid, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPaymentAmountPaid(); ok {
		_spec.AddField(receipt.FieldPaymentAmountPaid, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.PaymentTip(); ok {
		_spec.SetField(receipt.FieldPaymentTip, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPaymentTip(); ok {
		_spec.AddField(receipt.FieldPaymentTip, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Copy(); ok {
		_spec.SetField(receipt.FieldCopy, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(receipt.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.ImageCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ImageIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ItemsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedItemsIDs(); len(nodes) > 0 && !_u.mutation.ItemsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ItemsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.FeesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedFeesIDs(); len(nodes) > 0 && !_u.mutation.FeesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FeesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{receipt.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ReceiptUpdateOne is the builder for updating a single Receipt entity.
type ReceiptUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ReceiptMutation
}

// SetRestaurant sets the "restaurant" field.
func (_u *ReceiptUpdateOne) SetRestaurant(v string) *ReceiptUpdateOne {
	_u.mutation.SetRestaurant(v)
	return _u
}

// SetNillableRestaurant sets the "restaurant" field if the given value is not nil.
func (_u *ReceiptUpdateOne) SetNillableRestaurant(v *string) *ReceiptUpdateOne {
	if v != nil {
		_u.SetRestaurant(*v)
	}
	return _u
}

// SetAddress sets the "address" field.
func (_u *ReceiptUpdateOne) SetAddress(v string) *ReceiptUpdateOne {
	_u.mutation.SetAddress(v)
	return _u
}

// SetNillableAddress sets the "address" field if the given value is not nil.
func (_u *ReceiptUpdateOne) SetNillableAddress(v *string) *ReceiptUpdateOne {
	if v != nil {
		_u.SetAddress(*v)
	}
	return _u
}

// SetOpened sets the "opened" field.
func (_u *ReceiptUpdateOne) SetOpened(v time.Time) *ReceiptUpdateOne {
	_u.mutation.SetOpened(v)
	return _u
}

// SetNillableOpened sets the "opened" field if the given value is not nil.
func (_u *ReceiptUpdateOne) SetNillableOpened(v *time.Time) *ReceiptUpdateOne {
	if v != nil {
		_u.SetOpened(*v)
	}
	return _u
}

// ClearOpened clears the value of the "opened" field.
func (_u *ReceiptUpdateOne) ClearOpened() *ReceiptUpdateOne {
	_u.mutation.ClearOpened()
	return _u
}

// SetOrderNumber sets the "order_number" field.
func (_u *ReceiptUpdateOne) SetOrderNumber(v string) *ReceiptUpdateOne {
	_u.mutation.SetOrderNumber(v)
	return _u
}

// SetNillableOrderNumber sets the "order_number" field if the given value is not nil.
func (_u *ReceiptUpdateOne) SetNillableOrderNumber(v *string) *ReceiptUpdateOne {
	if v != nil {
		_u.SetOrderNumber(*v)
	}
	return _u
}

// SetOrderType sets the "order_type" field.
func (_u *ReceiptUpdateOne) SetOrderType(v string) *ReceiptUpdateOne {
	_u.mutation.SetOrderType(v)
	return _u
}

// SetNillableOrderType sets the "order_type" field if the given value is not nil.
func (_u *ReceiptUpdateOne) SetNillableOrderType(v *string) *ReceiptUpdateOne {
	if v != nil {
		_u.SetOrderType(*v)
	}
	return _u
}

// SetTableNumber sets the "table_number" field.
func (_u *ReceiptUpdateOne) SetTableNumber(v string) *ReceiptUpdateOne {
	_u.mutation.SetTableNumber(v)
	return _u
}

// SetNillableTableNumber sets the "table_number" field if the given value is not nil.
func (_u *ReceiptUpdateOne) SetNillableTableNumber(v *string) *ReceiptUpdateOne {
	if v != nil {
		_u.SetTableNumber(*v)
	}
	return _u
}

// SetServer sets the "server" field.
func (_u *ReceiptUpdateOne) SetServer(v string) *ReceiptUpdateOne {
	_u.mutation.SetServer(v)
	return _u
}

// SetNillableServer sets the "server" field if the given value is not nil.
func (_u *ReceiptUpdateOne) SetNillableServer(v *string) *ReceiptUpdateOne {
	if v != nil {
		_u.SetServer(*v)
	}
	return _u
}

// SetSubtotal sets the "subtotal" field.
func (_u *ReceiptUpdateOne) SetSubtotal(v float64) *ReceiptUpdateOne {
	_u.mutation.ResetSubtotal()
	_u.mutation.SetSubtotal(v)
	return _u
}

// SetNillableSubtotal sets the "subtotal" field if the given value is not nil.
func (_u *ReceiptUpdateOne) SetNillableSubtotal(v *float64) *ReceiptUpdateOne {
	if v != nil {
		_u.SetSubtotal(*v)
	}
	return _u
}

// AddSubtotal adds value to the "subtotal" field.
func (_u *ReceiptUpdateOne) AddSubtotal(v float64) *ReceiptUpdateOne {
	_u.mutation.AddSubtotal(v)
	return _u
}

// SetSalesTax sets the "sales_tax" field.
func (_u *ReceiptUpdateOne) SetSalesTax(v float64) *ReceiptUpdateOne {
	_u.mutation.ResetSalesTax()
	_u.mutation.SetSalesTax(v)
	return _u
}

// SetNillableSalesTax sets the "sales_tax" field if the given value is not nil.
func (_u *ReceiptUpdateOne) SetNillableSalesTax(v *float64) *ReceiptUpdateOne {
	if v != nil {
		_u.SetSalesTax(*v)
	}
	return _u
}

// AddSalesTax adds value to the "sales_tax" field.
func (_u *ReceiptUpdateOne) AddSalesTax(v float64) *ReceiptUpdateOne {
	_u.mutation.AddSalesTax(v)
	return _u
}

// SetTotal sets the "total" field.
func (_u *ReceiptUpdateOne) SetTotal(v float64) *ReceiptUpdateOne {
	_u.mutation.ResetTotal()
	_u.mutation.SetTotal(v)
	return _u
}

// SetNillableTotal sets the "total" field if the given value is not nil.
func (_u *ReceiptUpdateOne) SetNillableTotal(v *float64) *ReceiptUpdateOne {
	if v != nil {
		_u.SetTotal(*v)
	}
	return _u
}

// AddTotal adds value to the "total" field.
func (_u *ReceiptUpdateOne) AddTotal(v float64) *ReceiptUpdateOne {
	_u.mutation.AddTotal(v)
	return _u
}

// SetPaymentMethod sets the "payment_method" field.
func (_u *ReceiptUpdateOne) SetPaymentMethod(v string) *ReceiptUpdateOne {
	_u.mutation.SetPaymentMethod(v)
	return _u
}

// SetNillablePaymentMethod sets the "payment_method" field if the given value is not nil.
func (_u *ReceiptUpdateOne) SetNillablePaymentMethod(v *string) *ReceiptUpdateOne {
	if v != nil {
		_u.SetPaymentMethod(*v)
	}
	return _u
}

// SetPaymentAmountPaid sets the "payment_amount_paid" field.
func (_u *ReceiptUpdateOne) SetPaymentAmountPaid(v float64) *ReceiptUpdateOne {
	_u.mutation.ResetPaymentAmountPaid()
	_u.mutation.SetPaymentAmountPaid(v)
	return _u
}

// SetNillablePaymentAmountPaid sets the "payment_amount_paid" field if the given value is not nil.
func (_u *ReceiptUpdateOne) SetNillablePaymentAmountPaid(v *float64) *ReceiptUpdateOne {
	if v != nil {
		_u.SetPaymentAmountPaid(*v)
	}
	return _u
}

// AddPaymentAmountPaid adds value to the "payment_amount_paid" field.
func (_u *ReceiptUpdateOne) AddPaymentAmountPaid(v float64) *ReceiptUpdateOne {
	_u.mutation.AddPaymentAmountPaid(v)
	return _u
}

// SetPaymentTip sets the "payment_tip" field.
func (_u *ReceiptUpdateOne) SetPaymentTip(v float64) *ReceiptUpdateOne {
	_u.mutation.ResetPaymentTip()
	_u.mutation.SetPaymentTip(v)
	return _u
}

// SetNillablePaymentTip sets the "payment_tip" field if the given value is not nil.
func (_u *ReceiptUpdateOne) SetNillablePaymentTip(v *float64) *ReceiptUpdateOne {
	if v != nil {
		_u.SetPaymentTip(*v)
	}
	return _u
}

// AddPaymentTip adds value to the "payment_tip" field.
func (_u *ReceiptUpdateOne) AddPaymentTip(v float64) *ReceiptUpdateOne {
	_u.mutation.AddPaymentTip(v)
	return _u
}

// SetCopy sets the "copy" field.
func (_u *ReceiptUpdateOne) SetCopy(v string) *ReceiptUpdateOne {
	_u.mutation.SetCopy(v)
	return _u
}

// SetNillableCopy sets the "copy" field if the given value is not nil.
func (_u *ReceiptUpdateOne) SetNillableCopy(v *string) *ReceiptUpdateOne {
	if v != nil {
		_u.SetCopy(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ReceiptUpdateOne) SetCreatedAt(v time.Time) *ReceiptUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ReceiptUpdateOne) SetNillableCreatedAt(v *time.Time) *ReceiptUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetImageID sets the "image" edge to the ReceiptImage entity by ID.
func (_u *ReceiptUpdateOne) SetImageID(id uuid.UUID) *ReceiptUpdateOne {
	_u.mutation.SetImageID(id)
	return _u
}

// SetImage sets the "image" edge to the ReceiptImage entity.
func (_u *ReceiptUpdateOne) SetImage(v *ReceiptImage) *ReceiptUpdateOne {
	return _u.SetImageID(v.ID)
}

// AddItemIDs adds the "items" edge to the OrderItem entity by IDs.
func (_u *ReceiptUpdateOne) AddItemIDs(ids ...uuid.UUID) *ReceiptUpdateOne {
	_u.mutation.AddItemIDs(ids...)
	return _u
}

// AddItems adds the "items" edges to the OrderItem entity.
func (_u *ReceiptUpdateOne) AddItems(v ...*OrderItem) *ReceiptUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddItemIDs(ids...)
}

// AddFeeIDs adds the "fees" edge to the OtherFee entity by IDs.
func (_u *ReceiptUpdateOne) AddFeeIDs(ids ...uuid.UUID) *ReceiptUpdateOne {
	_u.mutation.AddFeeIDs(ids...)
	return _u
}

// AddFees adds the "fees" edges to the OtherFee entity.
func (_u *ReceiptUpdateOne) AddFees(v ...*OtherFee) *ReceiptUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddFeeIDs(ids...)
}

// Mutation returns the ReceiptMutation object of the builder.
func (_u *ReceiptUpdateOne) Mutation() *ReceiptMutation {
	return _u.mutation
}

// ClearImage clears the "image" edge to the ReceiptImage entity.
func (_u *ReceiptUpdateOne) ClearImage() *ReceiptUpdateOne {
	_u.mutation.ClearImage()
	return _u
}

// ClearItems clears all "items" edges to the OrderItem entity.
func (_u *ReceiptUpdateOne) ClearItems() *ReceiptUpdateOne {
	_u.mutation.ClearItems()
	return _u
}

// RemoveItemIDs removes the "items" edge to OrderItem entities by IDs.
func (_u *ReceiptUpdateOne) RemoveItemIDs(ids ...uuid.UUID) *ReceiptUpdateOne {
	_u.mutation.RemoveItemIDs(ids...)
	return _u
}

// RemoveItems removes "items" edges to OrderItem entities.
func (_u *ReceiptUpdateOne) RemoveItems(v ...*OrderItem) *ReceiptUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveItemIDs(ids...)
}

// ClearFees clears all "fees" edges to the OtherFee entity.
func (_u *ReceiptUpdateOne) ClearFees() *ReceiptUpdateOne {
	_u.mutation.ClearFees()
	return _u
}

// RemoveFeeIDs removes the "fees" edge to OtherFee entities by IDs.
func (_u *ReceiptUpdateOne) RemoveFeeIDs(ids ...uuid.UUID) *ReceiptUpdateOne {
	_u.mutation.RemoveFeeIDs(ids...)
	return _u
}

// RemoveFees removes "fees" edges to OtherFee entities.
func (_u *ReceiptUpdateOne) RemoveFees(v ...*OtherFee) *ReceiptUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveFeeIDs(ids...)
}

// Where appends a list predicates to the ReceiptUpdate builder.
func (_u *ReceiptUpdateOne) Where(ps ...predicate.Receipt) *ReceiptUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ReceiptUpdateOne) Select(field string, fields ...string) *ReceiptUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Receipt entity.
func (_u *ReceiptUpdateOne) Save(ctx context.Context) (*Receipt, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReceiptUpdateOne) SaveX(ctx context.Context) *Receipt {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ReceiptUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReceiptUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReceiptUpdateOne) check() error {
	if _u.mutation.ImageCleared() && len(_u.mutation.ImageIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Receipt.image"`)
	}
	return nil
}

func (_u *ReceiptUpdateOne) sqlSave(ctx context.Context) (_node *Receipt, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(receipt.Table, receipt.Columns, sqlgraph.NewFieldSpec(receipt.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Receipt.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, receipt.FieldID)
		for _, f := range fields {
			if !receipt.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != receipt.FieldID {
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
	if value, ok := _u.mutation.Restaurant(); ok {
		_spec.SetField(receipt.FieldRestaurant, field.TypeString, value)
	}
	if value, ok := _u.mutation.Address(); ok {
		_spec.SetField(receipt.FieldAddress, field.TypeString, value)
	}
	if value, ok := _u.mutation.Opened(); ok {
		_spec.SetField(receipt.FieldOpened, field.TypeTime, value)
	}
	if _u.mutation.OpenedCleared() {
		_spec.ClearField(receipt.FieldOpened, field.TypeTime)
	}
	if value, ok := _u.mutation.OrderNumber(); ok {
		_spec.SetField(receipt.FieldOrderNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.OrderType(); ok {
		_spec.SetField(receipt.FieldOrderType, field.TypeString, value)
	}
	if value, ok := _u.mutation.TableNumber(); ok {
		_spec.SetField(receipt.FieldTableNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.Server(); ok {
		_spec.SetField(receipt.FieldServer, field.TypeString, value)
	}
	if value, ok := _u.mutation.Subtotal(); ok {
		_spec.SetField(receipt.FieldSubtotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSubtotal(); ok {
		_spec.AddField(receipt.FieldSubtotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.SalesTax(); ok {
		_spec.SetField(receipt.FieldSalesTax, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSalesTax(); ok {
		_spec.AddField(receipt.FieldSalesTax, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Total(); ok {
		_spec.SetField(receipt.FieldTotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotal(); ok {
		_spec.AddField(receipt.FieldTotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.PaymentMethod(); ok {
		_spec.SetField(receipt.FieldPaymentMethod, field.TypeString, value)
	}
	if value, ok := _u.mutation.PaymentAmountPaid(); ok {
		_spec.SetField(receipt.FieldPaymentAmountPaid, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPaymentAmountPaid(); ok {
		_spec.AddField(receipt.FieldPaymentAmountPaid, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.PaymentTip(); ok {
		_spec.SetField(receipt.FieldPaymentTip, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPaymentTip(); ok {
		_spec.AddField(receipt.FieldPaymentTip, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Copy(); ok {
		_spec.SetField(receipt.FieldCopy, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(receipt.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.ImageCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ImageIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ItemsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedItemsIDs(); len(nodes) > 0 && !_u.mutation.ItemsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ItemsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.FeesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedFeesIDs(); len(nodes) > 0 && !_u.mutation.FeesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FeesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Receipt{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{receipt.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
