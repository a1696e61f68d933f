// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/tabmate/outings-tracker/gen/ent/otherfee"
	"github.com/tabmate/outings-tracker/gen/ent/receipt"
)

// OtherFeeCreate is the builder for creating a OtherFee entity.
type OtherFeeCreate struct {
	config
	mutation *OtherFeeMutation
	hooks    []Hook
}

// SetName sets the "name" field.
func (_c *OtherFeeCreate) SetName(v string) *OtherFeeCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetPrice sets the "price" field.
func (_c *OtherFeeCreate) SetPrice(v float64) *OtherFeeCreate {
	_c.mutation.SetPrice(v)
	return _c
}

// SetID sets the "id" field.
func (_c *OtherFeeCreate) SetID(v uuid.UUID) *OtherFeeCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *OtherFeeCreate) SetNillableID(v *uuid.UUID) *OtherFeeCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetReceiptID sets the "receipt" edge to the Receipt entity by ID.
func (_c *OtherFeeCreate) SetReceiptID(id uuid.UUID) *OtherFeeCreate {
	_c.mutation.SetReceiptID(id)
	return _c
}

// SetReceipt sets the "receipt" edge to the Receipt entity.
func (_c *OtherFeeCreate) SetReceipt(v *Receipt) *OtherFeeCreate {
	return _c.SetReceiptID(v.ID)
}

// Mutation returns the OtherFeeMutation object of the builder.
func (_c *OtherFeeCreate) Mutation() *OtherFeeMutation {
	return _c.mutation
}

// Save creates the OtherFee in the database.
func (_c *OtherFeeCreate) Save(ctx context.Context) (*OtherFee, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *OtherFeeCreate) SaveX(ctx context.Context) *OtherFee {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *OtherFeeCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *OtherFeeCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *OtherFeeCreate) defaults() {
	if _, ok := _c.mutation.ID(); !ok {
		v := otherfee.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *OtherFeeCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "OtherFee.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := otherfee.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "OtherFee.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Price(); !ok {
		return &ValidationError{Name: "price", err: errors.New(`ent: missing required field "OtherFee.price"`)}
	}
	if len(_c.mutation.ReceiptIDs()) == 0 {
		return &ValidationError{Name: "receipt", err: errors.New(`ent: missing required edge "OtherFee.receipt"`)}
	}
	return nil
}

func (_c *OtherFeeCreate) sqlSave(ctx context.Context) (*OtherFee, error) {
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

func (_c *OtherFeeCreate) createSpec() (*OtherFee, *sqlgraph.CreateSpec) {
	var (
		_node = &OtherFee{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(otherfee.Table, sqlgraph.NewFieldSpec(otherfee.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(otherfee.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Price(); ok {
		_spec.SetField(otherfee.FieldPrice, field.TypeFloat64, value)
		_node.Price = value
	}
	if nodes := _c.mutation.ReceiptIDs(); len(nodes) > 0 {
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
		_node.receipt_fees = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OtherFeeCreateBulk is the builder for creating many OtherFee entities in bulk.
type OtherFeeCreateBulk struct {
	config
	err      error
	builders []*OtherFeeCreate
}

// Save creates the OtherFee entities in the database.
func (_c *OtherFeeCreateBulk) Save(ctx context.Context) ([]*OtherFee, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*OtherFee, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*OtherFeeMutation)
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
func (_c *OtherFeeCreateBulk) SaveX(ctx context.Context) []*OtherFee {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *OtherFeeCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *OtherFeeCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
