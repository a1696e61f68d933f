// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/tabmate/outings-tracker/db/ent/schema"
	"github.com/tabmate/outings-tracker/gen/ent/orderitem"
	"github.com/tabmate/outings-tracker/gen/ent/otherfee"
	"github.com/tabmate/outings-tracker/gen/ent/outing"
	"github.com/tabmate/outings-tracker/gen/ent/receipt"
	"github.com/tabmate/outings-tracker/gen/ent/receiptimage"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	orderitemFields := schema.OrderItem{}.Fields()
	_ = orderitemFields
	// orderitemDescName is the schema descriptor for name field.
	orderitemDescName := orderitemFields[1].Descriptor()
	// orderitem.NameValidator is a validator for the "name" field. It is called by the builders before save.
	orderitem.NameValidator = orderitemDescName.Validators[0].(func(string) error)
	// orderitemDescQuantity is the schema descriptor for quantity field.
	orderitemDescQuantity := orderitemFields[3].Descriptor()
	// orderitem.QuantityValidator is a validator for the "quantity" field. It is called by the builders before save.
	orderitem.QuantityValidator = orderitemDescQuantity.Validators[0].(func(int) error)
	// orderitemDescID is the schema descriptor for id field.
	orderitemDescID := orderitemFields[0].Descriptor()
	// orderitem.DefaultID holds the default value on creation for the id field.
	orderitem.DefaultID = orderitemDescID.Default.(func() uuid.UUID)
	otherfeeFields := schema.OtherFee{}.Fields()
	_ = otherfeeFields
	// otherfeeDescName is the schema descriptor for name field.
	otherfeeDescName := otherfeeFields[1].Descriptor()
	// otherfee.NameValidator is a validator for the "name" field. It is called by the builders before save.
	otherfee.NameValidator = otherfeeDescName.Validators[0].(func(string) error)
	// otherfeeDescID is the schema descriptor for id field.
	otherfeeDescID := otherfeeFields[0].Descriptor()
	// otherfee.DefaultID holds the default value on creation for the id field.
	otherfee.DefaultID = otherfeeDescID.Default.(func() uuid.UUID)
	outingFields := schema.Outing{}.Fields()
	_ = outingFields
	// outingDescName is the schema descriptor for name field.
	outingDescName := outingFields[1].Descriptor()
	// outing.NameValidator is a validator for the "name" field. It is called by the builders before save.
	outing.NameValidator = outingDescName.Validators[0].(func(string) error)
	// outingDescCreatedAt is the schema descriptor for created_at field.
	outingDescCreatedAt := outingFields[2].Descriptor()
	// outing.DefaultCreatedAt holds the default value on creation for the created_at field.
	outing.DefaultCreatedAt = outingDescCreatedAt.Default.(func() time.Time)
	// outingDescUpdatedAt is the schema descriptor for updated_at field.
	outingDescUpdatedAt := outingFields[3].Descriptor()
	// outing.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	outing.DefaultUpdatedAt = outingDescUpdatedAt.Default.(func() time.Time)
	// outing.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	outing.UpdateDefaultUpdatedAt = outingDescUpdatedAt.UpdateDefault.(func() time.Time)
	// outingDescID is the schema descriptor for id field.
	outingDescID := outingFields[0].Descriptor()
	// outing.DefaultID holds the default value on creation for the id field.
	outing.DefaultID = outingDescID.Default.(func() uuid.UUID)
	receiptFields := schema.Receipt{}.Fields()
	_ = receiptFields
	// receiptDescCreatedAt is the schema descriptor for created_at field.
	receiptDescCreatedAt := receiptFields[15].Descriptor()
	// receipt.DefaultCreatedAt holds the default value on creation for the created_at field.
	receipt.DefaultCreatedAt = receiptDescCreatedAt.Default.(func() time.Time)
	// receiptDescID is the schema descriptor for id field.
	receiptDescID := receiptFields[0].Descriptor()
	// receipt.DefaultID holds the default value on creation for the id field.
	receipt.DefaultID = receiptDescID.Default.(func() uuid.UUID)
	receiptimageFields := schema.ReceiptImage{}.Fields()
	_ = receiptimageFields
	// receiptimageDescBucket is the schema descriptor for bucket field.
	receiptimageDescBucket := receiptimageFields[2].Descriptor()
	// receiptimage.BucketValidator is a validator for the "bucket" field. It is called by the builders before save.
	receiptimage.BucketValidator = receiptimageDescBucket.Validators[0].(func(string) error)
	// receiptimageDescKey is the schema descriptor for key field.
	receiptimageDescKey := receiptimageFields[3].Descriptor()
	// receiptimage.KeyValidator is a validator for the "key" field. It is called by the builders before save.
	receiptimage.KeyValidator = receiptimageDescKey.Validators[0].(func(string) error)
	// receiptimageDescFileName is the schema descriptor for file_name field.
	receiptimageDescFileName := receiptimageFields[5].Descriptor()
	// receiptimage.FileNameValidator is a validator for the "file_name" field. It is called by the builders before save.
	receiptimage.FileNameValidator = receiptimageDescFileName.Validators[0].(func(string) error)
	// receiptimageDescHash is the schema descriptor for hash field.
	receiptimageDescHash := receiptimageFields[6].Descriptor()
	// receiptimage.HashValidator is a validator for the "hash" field. It is called by the builders before save.
	receiptimage.HashValidator = func() func(string) error {
		validators := receiptimageDescHash.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
			validators[2].(func(string) error),
		}
		return func(hash string) error {
			for _, fn := range fns {
				if err := fn(hash); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// receiptimageDescUploadedAt is the schema descriptor for uploaded_at field.
	receiptimageDescUploadedAt := receiptimageFields[7].Descriptor()
	// receiptimage.DefaultUploadedAt holds the default value on creation for the uploaded_at field.
	receiptimage.DefaultUploadedAt = receiptimageDescUploadedAt.Default.(func() time.Time)
	// receiptimageDescID is the schema descriptor for id field.
	receiptimageDescID := receiptimageFields[0].Descriptor()
	// receiptimage.DefaultID holds the default value on creation for the id field.
	receiptimage.DefaultID = receiptimageDescID.Default.(func() uuid.UUID)
}
