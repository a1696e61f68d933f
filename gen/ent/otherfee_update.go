// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/tabmate/outings-tracker/gen/ent/otherfee"
	"github.com/tabmate/outings-tracker/gen/ent/predicate"
	"github.com/tabmate/outings-tracker/gen/ent/receipt"
)

// OtherFeeUpdate is the builder for updating OtherFee entities.
type OtherFeeUpdate struct {
	config
	hooks    []Hook
	mutation *OtherFeeMutation
}

// Where appends a list predicates to the OtherFeeUpdate builder.
func (_u *OtherFeeUpdate) Where(ps ...predicate.OtherFee) *OtherFeeUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *OtherFeeUpdate) SetName(v string) *OtherFeeUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *OtherFeeUpdate) SetNillableName(v *string) *OtherFeeUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetPrice sets the "price" field.
func (_u *OtherFeeUpdate) SetPrice(v float64) *OtherFeeUpdate {
	_u.mutation.ResetPrice()
	_u.mutation.SetPrice(v)
	return _u
}

// SetNillablePrice sets the "price" field if the given value is not nil.
func (_u *OtherFeeUpdate) SetNillablePrice(v *float64) *OtherFeeUpdate {
	if v != nil {
		_u.SetPrice(*v)
	}
	return _u
}

// AddPrice adds value to the "price" field.
func (_u *OtherFeeUpdate) AddPrice(v float64) *OtherFeeUpdate {
	_u.mutation.AddPrice(v)
	return _u
}

// SetReceiptID sets the "receipt" edge to the Receipt entity by ID.
func (_u *OtherFeeUpdate) SetReceiptID(id uuid.UUID) *OtherFeeUpdate {
	_u.mutation.SetReceiptID(id)
	return _u
}

// SetReceipt sets the "receipt" edge to the Receipt entity.
func (_u *OtherFeeUpdate) SetReceipt(v *Receipt) *OtherFeeUpdate {
	return _u.SetReceiptID(v.ID)
}

// Mutation returns the OtherFeeMutation object of the builder.
func (_u *OtherFeeUpdate) Mutation() *OtherFeeMutation {
	return _u.mutation
}

// ClearReceipt clears the "receipt" edge to the Receipt entity.
func (_u *OtherFeeUpdate) ClearReceipt() *OtherFeeUpdate {
	_u.mutation.ClearReceipt()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *OtherFeeUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OtherFeeUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *OtherFeeUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OtherFeeUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *OtherFeeUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := otherfee.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "OtherFee.name": %w`, err)}
		}
	}
	if _u.mutation.ReceiptCleared() && len(_u.mutation.ReceiptIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "OtherFee.receipt"`)
	}
	return nil
}

func (_u *OtherFeeUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(otherfee.Table, otherfee.Columns, sqlgraph.NewFieldSpec(otherfee.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(otherfee.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Price(); ok {
		_spec.SetField(otherfee.FieldPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPrice(); ok {
		_spec.AddField(otherfee.FieldPrice, field.TypeFloat64, value)
	}
	if _u.mutation.ReceiptCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   otherfee.ReceiptTable,
			Columns: []string{otherfee.ReceiptColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(receipt.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ReceiptIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   otherfee.ReceiptTable,
			Columns: []string{otherfee.ReceiptColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(receipt.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{otherfee.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// OtherFeeUpdateOne is the builder for updating a single OtherFee entity.
type OtherFeeUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *OtherFeeMutation
}

// SetName sets the "name" field.
func (_u *OtherFeeUpdateOne) SetName(v string) *OtherFeeUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *OtherFeeUpdateOne) SetNillableName(v *string) *OtherFeeUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetPrice sets the "price" field.
func (_u *OtherFeeUpdateOne) SetPrice(v float64) *OtherFeeUpdateOne {
	_u.mutation.ResetPrice()
	_u.mutation.SetPrice(v)
	return _u
}

// SetNillablePrice sets the "price" field if the given value is not nil.
func (_u *OtherFeeUpdateOne) SetNillablePrice(v *float64) *OtherFeeUpdateOne {
	if v != nil {
		_u.SetPrice(*v)
	}
	return _u
}

// AddPrice adds value to the "price" field.
func (_u *OtherFeeUpdateOne) AddPrice(v float64) *OtherFeeUpdateOne {
	_u.mutation.AddPrice(v)
	return _u
}

// SetReceiptID sets the "receipt" edge to the Receipt entity by ID.
func (_u *OtherFeeUpdateOne) SetReceiptID(id uuid.UUID) *OtherFeeUpdateOne {
	_u.mutation.SetReceiptID(id)
	return _u
}

// SetReceipt sets the "receipt" edge to the Receipt entity.
func (_u *OtherFeeUpdateOne) SetReceipt(v *Receipt) *OtherFeeUpdateOne {
	return _u.SetReceiptID(v.ID)
}

// Mutation returns the OtherFeeMutation object of the builder.
func (_u *OtherFeeUpdateOne) Mutation() *OtherFeeMutation {
	return _u.mutation
}

// ClearReceipt clears the "receipt" edge to the Receipt entity.
func (_u *OtherFeeUpdateOne) ClearReceipt() *OtherFeeUpdateOne {
	_u.mutation.ClearReceipt()
	return _u
}

// Where appends a list predicates to the OtherFeeUpdate builder.
func (_u *OtherFeeUpdateOne) Where(ps ...predicate.OtherFee) *OtherFeeUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *OtherFeeUpdateOne) Select(field string, fields ...string) *OtherFeeUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated OtherFee entity.
func (_u *OtherFeeUpdateOne) Save(ctx context.Context) (*OtherFee, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OtherFeeUpdateOne) SaveX(ctx context.Context) *OtherFee {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *OtherFeeUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OtherFeeUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *OtherFeeUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := otherfee.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "OtherFee.name": %w`, err)}
		}
	}
	if _u.mutation.ReceiptCleared() && len(_u.mutation.ReceiptIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "OtherFee.receipt"`)
	}
	return nil
}

func (_u *OtherFeeUpdateOne) sqlSave(ctx context.Context) (_node *OtherFee, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(otherfee.Table, otherfee.Columns, sqlgraph.NewFieldSpec(otherfee.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "OtherFee.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, otherfee.FieldID)
		for _, f := range fields {
			if !otherfee.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != otherfee.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(otherfee.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Price(); ok {
		_spec.SetField(otherfee.FieldPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPrice(); ok {
		_spec.AddField(otherfee.FieldPrice, field.TypeFloat64, value)
	}
	if _u.mutation.ReceiptCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   otherfee.ReceiptTable,
			Columns: []string{otherfee.ReceiptColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(receipt.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ReceiptIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   otherfee.ReceiptTable,
			Columns: []string{otherfee.ReceiptColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(receipt.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &OtherFee{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{otherfee.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
