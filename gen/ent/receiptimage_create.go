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
	"github.com/tabmate/outings-tracker/gen/ent/outing"
	"github.com/tabmate/outings-tracker/gen/ent/receipt"
	"github.com/tabmate/outings-tracker/gen/ent/receiptimage"
)

// ReceiptImageCreate is the builder for creating a ReceiptImage entity.
type ReceiptImageCreate struct {
	config
	mutation *ReceiptImageMutation
	hooks    []Hook
}

// SetOutingID sets the "outing_id" field.
func (_c *ReceiptImageCreate) SetOutingID(v uuid.UUID) *ReceiptImageCreate {
	_c.mutation.SetOutingID(v)
	return _c
}

// SetBucket sets the "bucket" field.
func (_c *ReceiptImageCreate) SetBucket(v string) *ReceiptImageCreate {
	_c.mutation.SetBucket(v)
	return _c
}

// SetKey sets the "key" field.
func (_c *ReceiptImageCreate) SetKey(v string) *ReceiptImageCreate {
	_c.mutation.SetKey(v)
	return _c
}

// SetRawText sets the "raw_text" field.
func (_c *ReceiptImageCreate) SetRawText(v string) *ReceiptImageCreate {
	_c.mutation.SetRawText(v)
	return _c
}

// SetFileName sets the "file_name" field.
func (_c *ReceiptImageCreate) SetFileName(v string) *ReceiptImageCreate {
	_c.mutation.SetFileName(v)
	return _c
}

// SetHash sets the "hash" field.
func (_c *ReceiptImageCreate) SetHash(v string) *ReceiptImageCreate {
	_c.mutation.SetHash(v)
	return _c
}

// SetUploadedAt sets the "uploaded_at" field.
func (_c *ReceiptImageCreate) SetUploadedAt(v time.Time) *ReceiptImageCreate {
	_c.mutation.SetUploadedAt(v)
	return _c
}

// SetNillableUploadedAt sets the "uploaded_at" field if the given value is not nil.
func (_c *ReceiptImageCreate) SetNillableUploadedAt(v *time.Time) *ReceiptImageCreate {
	if v != nil {
		_c.SetUploadedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ReceiptImageCreate) SetID(v uuid.UUID) *ReceiptImageCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ReceiptImageCreate) SetNillableID(v *uuid.UUID) *ReceiptImageCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetOuting sets the "outing" edge to the Outing entity.
func (_c *ReceiptImageCreate) SetOuting(v *Outing) *ReceiptImageCreate {
	return _c.SetOutingID(v.ID)
}

// SetReceiptID sets the "receipt" edge to the Receipt entity by ID.
func (_c *ReceiptImageCreate) SetReceiptID(id uuid.UUID) *ReceiptImageCreate {
	_c.mutation.SetReceiptID(id)
	return _c
}

// SetNillableReceiptID sets the "receipt" edge to the Receipt entity by ID if the given value is not nil.
func (_c *ReceiptImageCreate) SetNillableReceiptID(id *uuid.UUID) *ReceiptImageCreate {
	if id != nil {
		_c = _c.SetReceiptID(*id)
	}
	return _c
}

// SetReceipt sets the "receipt" edge to the Receipt entity.
func (_c *ReceiptImageCreate) SetReceipt(v *Receipt) *ReceiptImageCreate {
	return _c.SetReceiptID(v.ID)
}

// Mutation returns the ReceiptImageMutation object of the builder.
func (_c *ReceiptImageCreate) Mutation() *ReceiptImageMutation {
	return _c.mutation
}

// Save creates the ReceiptImage in the database.
func (_c *ReceiptImageCreate) Save(ctx context.Context) (*ReceiptImage, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ReceiptImageCreate) SaveX(ctx context.Context) *ReceiptImage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReceiptImageCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReceiptImageCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ReceiptImageCreate) defaults() {
	if _, ok := _c.mutation.UploadedAt(); !ok {
		v := receiptimage.DefaultUploadedAt()
		_c.mutation.SetUploadedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := receiptimage.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ReceiptImageCreate) check() error {
	if _, ok := _c.mutation.OutingID(); !ok {
		return &ValidationError{Name: "outing_id", err: errors.New(`ent: missing required field "ReceiptImage.outing_id"`)}
	}
	if _, ok := _c.mutation.Bucket(); !ok {
		return &ValidationError{Name: "bucket", err: errors.New(`ent: missing required field "ReceiptImage.bucket"`)}
	}
	if v, ok := _c.mutation.Bucket(); ok {
		if err := receiptimage.BucketValidator(v); err != nil {
			return &ValidationError{Name: "bucket", err: fmt.Errorf(`ent: validator failed for field "ReceiptImage.bucket": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Key(); !ok {
		return &ValidationError{Name: "key", err: errors.New(`ent: missing required field "ReceiptImage.key"`)}
	}
	if v, ok := _c.mutation.Key(); ok {
		if err := receiptimage.KeyValidator(v); err != nil {
			return &ValidationError{Name: "key", err: fmt.Errorf(`ent: validator failed for field "ReceiptImage.key": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RawText(); !ok {
		return &ValidationError{Name: "raw_text", err: errors.New(`ent: missing required field "ReceiptImage.raw_text"`)}
	}
	if _, ok := _c.mutation.FileName(); !ok {
		return &ValidationError{Name: "file_name", err: errors.New(`ent: missing required field "ReceiptImage.file_name"`)}
	}
	if v, ok := _c.mutation.FileName(); ok {
		if err := receiptimage.FileNameValidator(v); err != nil {
			return &ValidationError{Name: "file_name", err: fmt.Errorf(`ent: validator failed for field "ReceiptImage.file_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Hash(); !ok {
		return &ValidationError{Name: "hash", err: errors.New(`ent: missing required field "ReceiptImage.hash"`)}
	}
	if v, ok := _c.mutation.Hash(); ok {
		if err := receiptimage.HashValidator(v); err != nil {
			return &ValidationError{Name: "hash", err: fmt.Errorf(`ent: validator failed for field "ReceiptImage.hash": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UploadedAt(); !ok {
		return &ValidationError{Name: "uploaded_at", err: errors.New(`ent: missing required field "ReceiptImage.uploaded_at"`)}
	}
	if len(_c.mutation.OutingIDs()) == 0 {
		return &ValidationError{Name: "outing", err: errors.New(`ent: missing required edge "ReceiptImage.outing"`)}
	}
	return nil
}

func (_c *ReceiptImageCreate) sqlSave(ctx context.Context) (*ReceiptImage, error) {
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

func (_c *ReceiptImageCreate) createSpec() (*ReceiptImage, *sqlgraph.CreateSpec) {
	var (
		_node = &ReceiptImage{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(receiptimage.Table, sqlgraph.NewFieldSpec(receiptimage.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Bucket(); ok {
		_spec.SetField(receiptimage.FieldBucket, field.TypeString, value)
		_node.Bucket = value
	}
	if value, ok := _c.mutation.Key(); ok {
		_spec.SetField(receiptimage.FieldKey, field.TypeString, value)
		_node.Key = value
	}
	if value, ok := _c.mutation.RawText(); ok {
		_spec.SetField(receiptimage.FieldRawText, field.TypeString, value)
		_node.RawText = value
	}
	if value, ok := _c.mutation.FileName(); ok {
		_spec.SetField(receiptimage.FieldFileName, field.TypeString, value)
		_node.FileName = value
	}
	if value, ok := _c.mutation.Hash(); ok {
		_spec.SetField(receiptimage.FieldHash, field.TypeString, value)
		_node.Hash = value
	}
	if value, ok := _c.mutation.UploadedAt(); ok {
		_spec.SetField(receiptimage.FieldUploadedAt, field.TypeTime, value)
		_node.UploadedAt = value
	}
	if nodes := _c.mutation.OutingIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   receiptimage.OutingTable,
			Columns: []string{receiptimage.OutingColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(outing.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.OutingID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ReceiptIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   receiptimage.ReceiptTable,
			Columns: []string{receiptimage.ReceiptColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(receipt.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ReceiptImageCreateBulk is the builder for creating many ReceiptImage entities in bulk.
type ReceiptImageCreateBulk struct {
	config
	err      error
	builders []*ReceiptImageCreate
}

// Save creates the ReceiptImage entities in the database.
func (_c *ReceiptImageCreateBulk) Save(ctx context.Context) ([]*ReceiptImage, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ReceiptImage, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ReceiptImageMutation)
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
func (_c *ReceiptImageCreateBulk) SaveX(ctx context.Context) []*ReceiptImage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReceiptImageCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReceiptImageCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
