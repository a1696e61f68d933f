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
	"github.com/tabmate/outings-tracker/gen/ent/outing"
	"github.com/tabmate/outings-tracker/gen/ent/predicate"
	"github.com/tabmate/outings-tracker/gen/ent/receipt"
	"github.com/tabmate/outings-tracker/gen/ent/receiptimage"
)

// ReceiptImageUpdate is the builder for updating ReceiptImage entities.
type ReceiptImageUpdate struct {
	config
	hooks    []Hook
	mutation *ReceiptImageMutation
}

// Where appends a list predicates to the ReceiptImageUpdate builder.
func (_u *ReceiptImageUpdate) Where(ps ...predicate.ReceiptImage) *ReceiptImageUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetOutingID sets the "outing_id" field.
func (_u *ReceiptImageUpdate) SetOutingID(v uuid.UUID) *ReceiptImageUpdate {
	_u.mutation.SetOutingID(v)
	return _u
}

// SetNillableOutingID sets the "outing_id" field if the given value is not nil.
func (_u *ReceiptImageUpdate) SetNillableOutingID(v *uuid.UUID) *ReceiptImageUpdate {
	if v != nil {
		_u.SetOutingID(*v)
	}
	return _u
}

// SetBucket sets the "bucket" field.
func (_u *ReceiptImageUpdate) SetBucket(v string) *ReceiptImageUpdate {
	_u.mutation.SetBucket(v)
	return _u
}

// SetNillableBucket sets the "bucket" field if the given value is not nil.
func (_u *ReceiptImageUpdate) SetNillableBucket(v *string) *ReceiptImageUpdate {
	if v != nil {
		_u.SetBucket(*v)
	}
	return _u
}

// SetKey sets the "key" field.
func (_u *ReceiptImageUpdate) SetKey(v string) *ReceiptImageUpdate {
	_u.mutation.SetKey(v)
	return _u
}

// SetNillableKey sets the "key" field if the given value is not nil.
func (_u *ReceiptImageUpdate) SetNillableKey(v *string) *ReceiptImageUpdate {
	if v != nil {
		_u.SetKey(*v)
	}
	return _u
}

// SetRawText sets the "raw_text" field.
func (_u *ReceiptImageUpdate) SetRawText(v string) *ReceiptImageUpdate {
	_u.mutation.SetRawText(v)
	return _u
}

// SetNillableRawText sets the "raw_text" field if the given value is not nil.
func (_u *ReceiptImageUpdate) SetNillableRawText(v *string) *ReceiptImageUpdate {
	if v != nil {
		_u.SetRawText(*v)
	}
	return _u
}

// SetFileName sets the "file_name" field.
func (_u *ReceiptImageUpdate) SetFileName(v string) *ReceiptImageUpdate {
	_u.mutation.SetFileName(v)
	return _u
}

// SetNillableFileName sets the "file_name" field if the given value is not nil.
func (_u *ReceiptImageUpdate) SetNillableFileName(v *string) *ReceiptImageUpdate {
	if v != nil {
		_u.SetFileName(*v)
	}
	return _u
}

// SetHash sets the "hash" field.
func (_u *ReceiptImageUpdate) SetHash(v string) *ReceiptImageUpdate {
	_u.mutation.SetHash(v)
	return _u
}

// SetNillableHash sets the "hash" field if the given value is not nil.
func (_u *ReceiptImageUpdate) SetNillableHash(v *string) *ReceiptImageUpdate {
	if v != nil {
		_u.SetHash(*v)
	}
	return _u
}

// SetUploadedAt sets the "uploaded_at" field.
func (_u *ReceiptImageUpdate) SetUploadedAt(v time.Time) *ReceiptImageUpdate {
	_u.mutation.SetUploadedAt(v)
	return _u
}

// SetNillableUploadedAt sets the "uploaded_at" field if the given value is not nil.
func (_u *ReceiptImageUpdate) SetNillableUploadedAt(v *time.Time) *ReceiptImageUpdate {
	if v != nil {
		_u.SetUploadedAt(*v)
	}
	return _u
}

// SetOuting sets the "outing" edge to the Outing entity.
func (_u *ReceiptImageUpdate) SetOuting(v *Outing) *ReceiptImageUpdate {
	return _u.SetOutingID(v.ID)
}

// SetReceiptID sets the "receipt" edge to the Receipt entity by ID.
func (_u *ReceiptImageUpdate) SetReceiptID(id uuid.UUID) *ReceiptImageUpdate {
	_u.mutation.SetReceiptID(id)
	return _u
}

// SetNillableReceiptID sets the "receipt" edge to the Receipt entity by ID if the given value is not nil.
func (_u *ReceiptImageUpdate) SetNillableReceiptID(id *uuid.UUID) *ReceiptImageUpdate {
	if id != nil {
		_u = _u.SetReceiptID(*id)
	}
	return _u
}

// SetReceipt sets the "receipt" edge to the Receipt entity.
func (_u *ReceiptImageUpdate) SetReceipt(v *Receipt) *ReceiptImageUpdate {
	return _u.SetReceiptID(v.ID)
}

// Mutation returns the ReceiptImageMutation object of the builder.
func (_u *ReceiptImageUpdate) Mutation() *ReceiptImageMutation {
	return _u.mutation
}

// ClearOuting clears the "outing" edge to the Outing entity.
func (_u *ReceiptImageUpdate) ClearOuting() *ReceiptImageUpdate {
	_u.mutation.ClearOuting()
	return _u
}

// ClearReceipt clears the "receipt" edge to the Receipt entity.
func (_u *ReceiptImageUpdate) ClearReceipt() *ReceiptImageUpdate {
	_u.mutation.ClearReceipt()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ReceiptImageUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReceiptImageUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ReceiptImageUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReceiptImageUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReceiptImageUpdate) check() error {
	if v, ok := _u.mutation.Bucket(); ok {
		if err := receiptimage.BucketValidator(v); err != nil {
			return &ValidationError{Name: "bucket", err: fmt.Errorf(`ent: validator failed for field "ReceiptImage.bucket": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Key(); ok {
		if err := receiptimage.KeyValidator(v); err != nil {
			return &ValidationError{Name: "key", err: fmt.Errorf(`ent: validator failed for field "ReceiptImage.key": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileName(); ok {
		if err := receiptimage.FileNameValidator(v); err != nil {
			return &ValidationError{Name: "file_name", err: fmt.Errorf(`ent: validator failed for field "ReceiptImage.file_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Hash(); ok {
		if err := receiptimage.HashValidator(v); err != nil {
			return &ValidationError{Name: "hash", err: fmt.Errorf(`ent: validator failed for field "ReceiptImage.hash": %w`, err)}
		}
	}
	if _u.mutation.OutingCleared() && len(_u.mutation.OutingIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ReceiptImage.outing"`)
	}
	return nil
}

func (_u *ReceiptImageUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(receiptimage.Table, receiptimage.Columns, sqlgraph.NewFieldSpec(receiptimage.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Bucket(); ok {
		_spec.SetField(receiptimage.FieldBucket, field.TypeString, value)
	}
	if value, ok := _u.mutation.Key(); ok {
		_spec.SetField(receiptimage.FieldKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.RawText(); ok {
		_spec.SetField(receiptimage.FieldRawText, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileName(); ok {
		_spec.SetField(receiptimage.FieldFileName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Hash(); ok {
		_spec.SetField(receiptimage.FieldHash, field.TypeString, value)
	}
	if value, ok := _u.mutation.UploadedAt(); ok {
		_spec.SetField(receiptimage.FieldUploadedAt, field.TypeTime, value)
	}
	if _u.mutation.OutingCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OutingIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ReceiptCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ReceiptIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{receiptimage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ReceiptImageUpdateOne is the builder for updating a single ReceiptImage entity.
type ReceiptImageUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ReceiptImageMutation
}

// SetOutingID sets the "outing_id" field.
func (_u *ReceiptImageUpdateOne) SetOutingID(v uuid.UUID) *ReceiptImageUpdateOne {
	_u.mutation.SetOutingID(v)
	return _u
}

// SetNillableOutingID sets the "outing_id" field if the given value is not nil.
func (_u *ReceiptImageUpdateOne) SetNillableOutingID(v *uuid.UUID) *ReceiptImageUpdateOne {
	if v != nil {
		_u.SetOutingID(*v)
	}
	return _u
}

// SetBucket sets the "bucket" field.
func (_u *ReceiptImageUpdateOne) SetBucket(v string) *ReceiptImageUpdateOne {
	_u.mutation.SetBucket(v)
	return _u
}

// SetNillableBucket sets the "bucket" field if the given value is not nil.
func (_u *ReceiptImageUpdateOne) SetNillableBucket(v *string) *ReceiptImageUpdateOne {
	if v != nil {
		_u.SetBucket(*v)
	}
	return _u
}

// SetKey sets the "key" field.
func (_u *ReceiptImageUpdateOne) SetKey(v string) *ReceiptImageUpdateOne {
	_u.mutation.SetKey(v)
	return _u
}

// SetNillableKey sets the "key" field if the given value is not nil.
func (_u *ReceiptImageUpdateOne) SetNillableKey(v *string) *ReceiptImageUpdateOne {
	if v != nil {
		_u.SetKey(*v)
	}
	return _u
}

// SetRawText sets the "raw_text" field.
func (_u *ReceiptImageUpdateOne) SetRawText(v string) *ReceiptImageUpdateOne {
	_u.mutation.SetRawText(v)
	return _u
}

// SetNillableRawText sets the "raw_text" field if the given value is not nil.
func (_u *ReceiptImageUpdateOne) SetNillableRawText(v *string) *ReceiptImageUpdateOne {
	if v != nil {
		_u.SetRawText(*v)
	}
	return _u
}

// SetFileName sets the "file_name" field.
func (_u *ReceiptImageUpdateOne) SetFileName(v string) *ReceiptImageUpdateOne {
	_u.mutation.SetFileName(v)
	return _u
}

// SetNillableFileName sets the "file_name" field if the given value is not nil.
func (_u *ReceiptImageUpdateOne) SetNillableFileName(v *string) *ReceiptImageUpdateOne {
	if v != nil {
		_u.SetFileName(*v)
	}
	return _u
}

// SetHash sets the "hash" field.
func (_u *ReceiptImageUpdateOne) SetHash(v string) *ReceiptImageUpdateOne {
	_u.mutation.SetHash(v)
	return _u
}

// SetNillableHash sets the "hash" field if the given value is not nil.
func (_u *ReceiptImageUpdateOne) SetNillableHash(v *string) *ReceiptImageUpdateOne {
	if v != nil {
		_u.SetHash(*v)
	}
	return _u
}

// SetUploadedAt sets the "uploaded_at" field.
func (_u *ReceiptImageUpdateOne) SetUploadedAt(v time.Time) *ReceiptImageUpdateOne {
	_u.mutation.SetUploadedAt(v)
	return _u
}

// SetNillableUploadedAt sets the "uploaded_at" field if the given value is not nil.
func (_u *ReceiptImageUpdateOne) SetNillableUploadedAt(v *time.Time) *ReceiptImageUpdateOne {
	if v != nil {
		_u.SetUploadedAt(*v)
	}
	return _u
}

// SetOuting sets the "outing" edge to the Outing entity.
func (_u *ReceiptImageUpdateOne) SetOuting(v *Outing) *ReceiptImageUpdateOne {
	return _u.SetOutingID(v.ID)
}

// SetReceiptID sets the "receipt" edge to the Receipt entity by ID.
func (_u *ReceiptImageUpdateOne) SetReceiptID(id uuid.UUID) *ReceiptImageUpdateOne {
	_u.mutation.SetReceiptID(id)
	return _u
}

// SetNillableReceiptID sets the "receipt" edge to the Receipt entity by ID if the given value is not nil.
func (_u *ReceiptImageUpdateOne) SetNillableReceiptID(id *uuid.UUID) *ReceiptImageUpdateOne {
	if id != nil {
		_u = _u.SetReceiptID(*id)
	}
	return _u
}

// SetReceipt sets the "receipt" edge to the Receipt entity.
func (_u *ReceiptImageUpdateOne) SetReceipt(v *Receipt) *ReceiptImageUpdateOne {
	return _u.SetReceiptID(v.ID)
}

// Mutation returns the ReceiptImageMutation object of the builder.
func (_u *ReceiptImageUpdateOne) Mutation() *ReceiptImageMutation {
	return _u.mutation
}

// ClearOuting clears the "outing" edge to the Outing entity.
func (_u *ReceiptImageUpdateOne) ClearOuting() *ReceiptImageUpdateOne {
	_u.mutation.ClearOuting()
	return _u
}

// ClearReceipt clears the "receipt" edge to the Receipt entity.
func (_u *ReceiptImageUpdateOne) ClearReceipt() *ReceiptImageUpdateOne {
	_u.mutation.ClearReceipt()
	return _u
}

// Where appends a list predicates to the ReceiptImageUpdate builder.
func (_u *ReceiptImageUpdateOne) Where(ps ...predicate.ReceiptImage) *ReceiptImageUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ReceiptImageUpdateOne) Select(field string, fields ...string) *ReceiptImageUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ReceiptImage entity.
func (_u *ReceiptImageUpdateOne) Save(ctx context.Context) (*ReceiptImage, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReceiptImageUpdateOne) SaveX(ctx context.Context) *ReceiptImage {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ReceiptImageUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReceiptImageUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReceiptImageUpdateOne) check() error {
	if v, ok := _u.mutation.Bucket(); ok {
		if err := receiptimage.BucketValidator(v); err != nil {
			return &ValidationError{Name: "bucket", err: fmt.Errorf(`ent: validator failed for field "ReceiptImage.bucket": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Key(); ok {
		if err := receiptimage.KeyValidator(v); err != nil {
			return &ValidationError{Name: "key", err: fmt.Errorf(`ent: validator failed for field "ReceiptImage.key": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileName(); ok {
		if err := receiptimage.FileNameValidator(v); err != nil {
			return &ValidationError{Name: "file_name", err: fmt.Errorf(`ent: validator failed for field "ReceiptImage.file_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Hash(); ok {
		if err := receiptimage.HashValidator(v); err != nil {
			return &ValidationError{Name: "hash", err: fmt.Errorf(`ent: validator failed for field "ReceiptImage.hash": %w`, err)}
		}
	}
	if _u.mutation.OutingCleared() && len(_u.mutation.OutingIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ReceiptImage.outing"`)
	}
	return nil
}

func (_u *ReceiptImageUpdateOne) sqlSave(ctx context.Context) (_node *ReceiptImage, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(receiptimage.Table, receiptimage.Columns, sqlgraph.NewFieldSpec(receiptimage.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ReceiptImage.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, receiptimage.FieldID)
		for _, f := range fields {
			if !receiptimage.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != receiptimage.FieldID {
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
	if value, ok := _u.mutation.Bucket(); ok {
		_spec.SetField(receiptimage.FieldBucket, field.TypeString, value)
	}
	if value, ok := _u.mutation.Key(); ok {
		_spec.SetField(receiptimage.FieldKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.RawText(); ok {
		_spec.SetField(receiptimage.FieldRawText, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileName(); ok {
		_spec.SetField(receiptimage.FieldFileName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Hash(); ok {
		_spec.SetField(receiptimage.FieldHash, field.TypeString, value)
	}
	if value, ok := _u.mutation.UploadedAt(); ok {
		_spec.SetField(receiptimage.FieldUploadedAt, field.TypeTime, value)
	}
	if _u.mutation.OutingCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OutingIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ReceiptCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ReceiptIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ReceiptImage{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{receiptimage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
