// Code generated by ent, DO NOT EDIT.

package receiptimage

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/tabmate/outings-tracker/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.ReceiptImage {
	return predicate.ReceiptImage(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.ReceiptImage {
	return predicate.ReceiptImage(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.ReceiptImage {
	return predicate.ReceiptImage(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.ReceiptImage {
	return predicate.ReceiptImage(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.ReceiptImage {
	return predicate.ReceiptImage(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.ReceiptImage {
	return predicate.ReceiptImage(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.ReceiptImage {
	return predicate.ReceiptImage(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.ReceiptImage {
	return predicate.ReceiptImage(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.ReceiptImage {
	return predicate.ReceiptImage(sql.FieldLTE(FieldID, id))
}

// OutingID applies equality check predicate on the "outing_id" field. It's identical to OutingIDEQ.
func OutingID(v uuid.UUID) predicate.ReceiptImage {
	return predicate.ReceiptImage(sql.FieldEQ(FieldOutingID, v))
}

// Bucket applies equality check predicate on the "bucket" field. It's identical to BucketEQ.
func Bucket(v string) predicate.ReceiptImage {
	return predicate.ReceiptImage(sql.FieldEQ(FieldBucket, v))
}

// Key applies equality check predicate on the "key" field. It's identical to KeyEQ.
func Key(v string) predicate.ReceiptImage {
	return predicate.ReceiptImage(sql.FieldEQ(FieldKey, v))
}

// RawText applies equality check predicate on the "raw_text" field. It's identical to RawTextEQ.
func RawText(v string) predicate.ReceiptImage {
	return predicate.ReceiptImage(sql.FieldEQ(FieldRawText, v))
}

// FileName applies equality check predicate on the "file_name" field. It's identical to FileNameEQ.
func FileName(v string) predicate.ReceiptImage {
	return predicate.ReceiptImage(sql.FieldEQ(FieldFileName, v))
}

// Hash applies equality check predicate on the "hash" field. It's identical to HashEQ.
func Hash(v string) predicate.ReceiptImage {
	return predicate.ReceiptImage(sql.FieldEQ(FieldHash, v))
}

// UploadedAt applies equality check predicate on the "uploaded_at" field. It's identical to UploadedAtEQ.
func UploadedAt(v time.Time) predicate.ReceiptImage {
	return predicate.ReceiptImage(sql.FieldEQ(FieldUploadedAt, v))
}

// OutingIDEQ applies the EQ predicate on the "outing_id" field.
func OutingIDEQ(v uuid.UUID) predicate.ReceiptImage {
	return predicate.ReceiptImage(sql.FieldEQ(FieldOutingID, v))
}

// OutingIDNEQ applies the NEQ predicate on the "outing_id" field.
func OutingIDNEQ(v uuid.UUID) predicate.ReceiptImage {
	return predicate.ReceiptImage(sql.FieldNEQ(FieldOutingID, v))
}

// OutingIDIn applies the In predicate on the "outing_id" field.
func OutingIDIn(vs ...uuid.UUID) predicate.ReceiptImage {
	return predicate.ReceiptImage(sql.FieldIn(FieldOutingID, vs...))
}

// OutingIDNotIn applies the NotIn predicate on the "outing_id" field.
func OutingIDNotIn(vs ...uuid.UUID) predicate.ReceiptImage {
	return predicate.ReceiptImage(sql.FieldNotIn(FieldOutingID, vs...))
}

// BucketEQ applies the EQ predicate on the "bucket" field.
func BucketEQ(v string) predicate.ReceiptImage {
	return predicate.ReceiptImage(sql.FieldEQ(FieldBucket, v))
}

// BucketNEQ applies the NEQ predicate on the "bucket" field.
func BucketNEQ(v string) predicate.ReceiptImage {
	return predicate.ReceiptImage(sql.FieldNEQ(FieldBucket, v))
}

// BucketIn applies the In predicate on the "bucket" field.
func BucketIn(vs ...string) predicate.ReceiptImage {
	return predicate.ReceiptImage(sql.FieldIn(FieldBucket, vs...))
}

// BucketNotIn applies the NotIn predicate on the "bucket" field.
func BucketNotIn(vs ...string) predicate.ReceiptImage {
	return predicate.ReceiptImage(sql.FieldNotIn(FieldBucket, vs...))
}

// BucketGT applies the GT predicate on the "bucket" field.
func BucketGT(v string) predicate.ReceiptImage {
	return predicate.ReceiptImage(sql.FieldGT(FieldBucket, v))
}

// BucketGTE applies the GTE predicate on the "bucket" field.
func BucketGTE(v string) predicate.ReceiptImage {
	return predicate.ReceiptImage(sql.FieldGTE(FieldBucket, v))
}

// BucketLT applies the LT predicate on the "bucket" field.
func BucketLT(v string) predicate.ReceiptImage {
	return predicate.ReceiptImage(sql.FieldLT(FieldBucket, v))
}

// BucketLTE applies the LTE predicate on the "bucket" field.
func BucketLTE(v string) predicate.ReceiptImage {
	return predicate.ReceiptImage(sql.FieldLTE(FieldBucket, v))
}

// BucketContains applies the Contains predicate on the "bucket" field.
func BucketContains(v string) predicate.ReceiptImage {
	return predicate.ReceiptImage(sql.FieldContains(FieldBucket, v))
}

// BucketHasPrefix applies the HasPrefix predicate on the "bucket" field.
func BucketHasPrefix(v string) predicate.ReceiptImage {
	return predicate.ReceiptImage(sql.FieldHasPrefix(FieldBucket, v))
}

// BucketHasSuffix applies the HasSuffix predicate on the "bucket" field.
func BucketHasSuffix(v string) predicate.ReceiptImage {
	return predicate.ReceiptImage(sql.FieldHasSuffix(FieldBucket, v))
}

// BucketEqualFold applies the EqualFold predicate on the "bucket" field.
func BucketEqualFold(v string) predicate.ReceiptImage {
	return predicate.ReceiptImage(sql.FieldEqualFold(FieldBucket, v))
}

// BucketContainsFold applies the ContainsFold predicate on the "bucket" field.
func BucketContainsFold(v string) predicate.ReceiptImage {
	return predicate.ReceiptImage(sql.FieldContainsFold(FieldBucket, v))
}

// KeyEQ applies the EQ predicate on the "key" field.
func KeyEQ(v string) predicate.ReceiptImage {
	return predicate.ReceiptImage(sql.FieldEQ(FieldKey, v))
}

// KeyNEQ applies the NEQ predicate on the "key" field.
func KeyNEQ(v string) predicate.ReceiptImage {
	return predicate.ReceiptImage(sql.FieldNEQ(FieldKey, v))
}

// KeyIn applies the In predicate on the "key" field.
func KeyIn(vs ...string) predicate.ReceiptImage {
	return predicate.ReceiptImage(sql.FieldIn(FieldKey, vs...))
}

// KeyNotIn applies the NotIn predicate on the "key" field.
func KeyNotIn(vs ...string) predicate.ReceiptImage {
	return predicate.ReceiptImage(sql.FieldNotIn(FieldKey, vs...))
}

// KeyGT applies the GT predicate on the "key" field.
func KeyGT(v string) predicate.ReceiptImage {
	return predicate.ReceiptImage(sql.FieldGT(FieldKey, v))
}

// KeyGTE applies the GTE predicate on the "key" field.
func KeyGTE(v string) predicate.ReceiptImage {
	return predicate.ReceiptImage(sql.FieldGTE(FieldKey, v))
}

// KeyLT applies the LT predicate on the "key" field.
func KeyLT(v string) predicate.ReceiptImage {
	return predicate.ReceiptImage(sql.FieldLT(FieldKey, v))
}

// KeyLTE applies the LTE predicate on the "key" field.
func KeyLTE(v string) predicate.ReceiptImage {
	return predicate.ReceiptImage(sql.FieldLTE(FieldKey, v))
}

// KeyContains applies the Contains predicate on the "key" field.
func KeyContains(v string) predicate.ReceiptImage {
	return predicate.ReceiptImage(sql.FieldContains(FieldKey, v))
}

// KeyHasPrefix applies the HasPrefix predicate on the "key" field.
func KeyHasPrefix(v string) predicate.ReceiptImage {
	return predicate.ReceiptImage(sql.FieldHasPrefix(FieldKey, v))
}

// KeyHasSuffix applies the HasSuffix predicate on the "key" field.
func KeyHasSuffix(v string) predicate.ReceiptImage {
	return predicate.ReceiptImage(sql.FieldHasSuffix(FieldKey, v))
}

// KeyEqualFold applies the EqualFold predicate on the "key" field.
func KeyEqualFold(v string) predicate.ReceiptImage {
	return predicate.ReceiptImage(sql.FieldEqualFold(FieldKey, v))
}

// KeyContainsFold applies the ContainsFold predicate on the "key" field.
func KeyContainsFold(v string) predicate.ReceiptImage {
	return predicate.ReceiptImage(sql.FieldContainsFold(FieldKey, v))
}

// RawTextEQ applies the EQ predicate on the "raw_text" field.
func RawTextEQ(v string) predicate.ReceiptImage {
	return predicate.ReceiptImage(sql.FieldEQ(FieldRawText, v))
}

// RawTextNEQ applies the NEQ predicate on the "raw_text" field.
func RawTextNEQ(v string) predicate.ReceiptImage {
	return predicate.ReceiptImage(sql.FieldNEQ(FieldRawText, v))
}

// RawTextIn applies the In predicate on the "raw_text" field.
func RawTextIn(vs ...string) predicate.ReceiptImage {
	return predicate.ReceiptImage(sql.FieldIn(FieldRawText, vs...))
}

// RawTextNotIn applies the NotIn predicate on the "raw_text" field.
func RawTextNotIn(vs ...string) predicate.ReceiptImage {
	return predicate.ReceiptImage(sql.FieldNotIn(FieldRawText, vs...))
}

// RawTextGT applies the GT predicate on the "raw_text" field.
func RawTextGT(v string) predicate.ReceiptImage {
	return predicate.ReceiptImage(sql.FieldGT(FieldRawText, v))
}

// RawTextGTE applies the GTE predicate on the "raw_text" field.
func RawTextGTE(v string) predicate.ReceiptImage {
	return predicate.ReceiptImage(sql.FieldGTE(FieldRawText, v))
}

// RawTextLT applies the LT predicate on the "raw_text" field.
func RawTextLT(v string) predicate.ReceiptImage {
	return predicate.ReceiptImage(sql.FieldLT(FieldRawText, v))
}

// RawTextLTE applies the LTE predicate on the "raw_text" field.
func RawTextLTE(v string) predicate.ReceiptImage {
	return predicate.ReceiptImage(sql.FieldLTE(FieldRawText, v))
}

// RawTextContains applies the Contains predicate on the "raw_text" field.
func RawTextContains(v string) predicate.ReceiptImage {
	return predicate.ReceiptImage(sql.FieldContains(FieldRawText, v))
}

// RawTextHasPrefix applies the HasPrefix predicate on the "raw_text" field.
func RawTextHasPrefix(v string) predicate.ReceiptImage {
	return predicate.ReceiptImage(sql.FieldHasPrefix(FieldRawText, v))
}

// RawTextHasSuffix applies the HasSuffix predicate on the "raw_text" field.
func RawTextHasSuffix(v string) predicate.ReceiptImage {
	return predicate.ReceiptImage(sql.FieldHasSuffix(FieldRawText, v))
}

// RawTextEqualFold applies the EqualFold predicate on the "raw_text" field.
func RawTextEqualFold(v string) predicate.ReceiptImage {
	return predicate.ReceiptImage(sql.FieldEqualFold(FieldRawText, v))
}

// RawTextContainsFold applies the ContainsFold predicate on the "raw_text" field.
func RawTextContainsFold(v string) predicate.ReceiptImage {
	return predicate.ReceiptImage(sql.FieldContainsFold(FieldRawText, v))
}

// FileNameEQ applies the EQ predicate on the "file_name" field.
func FileNameEQ(v string) predicate.ReceiptImage {
	return predicate.ReceiptImage(sql.FieldEQ(FieldFileName, v))
}

// FileNameNEQ applies the NEQ predicate on the "file_name" field.
func FileNameNEQ(v string) predicate.ReceiptImage {
	return predicate.ReceiptImage(sql.FieldNEQ(FieldFileName, v))
}

// FileNameIn applies the In predicate on the "file_name" field.
func FileNameIn(vs ...string) predicate.ReceiptImage {
	return predicate.ReceiptImage(sql.FieldIn(FieldFileName, vs...))
}

// FileNameNotIn applies the NotIn predicate on the "file_name" field.
func FileNameNotIn(vs ...string) predicate.ReceiptImage {
	return predicate.ReceiptImage(sql.FieldNotIn(FieldFileName, vs...))
}

// FileNameGT applies the GT predicate on the "file_name" field.
func FileNameGT(v string) predicate.ReceiptImage {
	return predicate.ReceiptImage(sql.FieldGT(FieldFileName, v))
}

// FileNameGTE applies the GTE predicate on the "file_name" field.
func FileNameGTE(v string) predicate.ReceiptImage {
	return predicate.ReceiptImage(sql.FieldGTE(FieldFileName, v))
}

// FileNameLT applies the LT predicate on the "file_name" field.
func FileNameLT(v string) predicate.ReceiptImage {
	return predicate.ReceiptImage(sql.FieldLT(FieldFileName, v))
}

// FileNameLTE applies the LTE predicate on the "file_name" field.
func FileNameLTE(v string) predicate.ReceiptImage {
	return predicate.ReceiptImage(sql.FieldLTE(FieldFileName, v))
}

// FileNameContains applies the Contains predicate on the "file_name" field.
func FileNameContains(v string) predicate.ReceiptImage {
	return predicate.ReceiptImage(sql.FieldContains(FieldFileName, v))
}

// FileNameHasPrefix applies the HasPrefix predicate on the "file_name" field.
func FileNameHasPrefix(v string) predicate.ReceiptImage {
	return predicate.ReceiptImage(sql.FieldHasPrefix(FieldFileName, v))
}

// FileNameHasSuffix applies the HasSuffix predicate on the "file_name" field.
func FileNameHasSuffix(v string) predicate.ReceiptImage {
	return predicate.ReceiptImage(sql.FieldHasSuffix(FieldFileName, v))
}

// FileNameEqualFold applies the EqualFold predicate on the "file_name" field.
func FileNameEqualFold(v string) predicate.ReceiptImage {
	return predicate.ReceiptImage(sql.FieldEqualFold(FieldFileName, v))
}

// FileNameContainsFold applies the ContainsFold predicate on the "file_name" field.
func FileNameContainsFold(v string) predicate.ReceiptImage {
	return predicate.ReceiptImage(sql.FieldContainsFold(FieldFileName, v))
}

// HashEQ applies the EQ predicate on the "hash" field.
func HashEQ(v string) predicate.ReceiptImage {
	return predicate.ReceiptImage(sql.FieldEQ(FieldHash, v))
}

// HashNEQ applies the NEQ predicate on the "hash" field.
func HashNEQ(v string) predicate.ReceiptImage {
	return predicate.ReceiptImage(sql.FieldNEQ(FieldHash, v))
}

// HashIn applies the In predicate on the "hash" field.
func HashIn(vs ...string) predicate.ReceiptImage {
	return predicate.ReceiptImage(sql.FieldIn(FieldHash, vs...))
}

// HashNotIn applies the NotIn predicate on the "hash" field.
func HashNotIn(vs ...string) predicate.ReceiptImage {
	return predicate.ReceiptImage(sql.FieldNotIn(FieldHash, vs...))
}

// HashGT applies the GT predicate on the "hash" field.
func HashGT(v string) predicate.ReceiptImage {
	return predicate.ReceiptImage(sql.FieldGT(FieldHash, v))
}

// HashGTE applies the GTE predicate on the "hash" field.
func HashGTE(v string) predicate.ReceiptImage {
	return predicate.ReceiptImage(sql.FieldGTE(FieldHash, v))
}

// HashLT applies the LT predicate on the "hash" field.
func HashLT(v string) predicate.ReceiptImage {
	return predicate.ReceiptImage(sql.FieldLT(FieldHash, v))
}

// HashLTE applies the LTE predicate on the "hash" field.
func HashLTE(v string) predicate.ReceiptImage {
	return predicate.ReceiptImage(sql.FieldLTE(FieldHash, v))
}

// HashContains applies the Contains predicate on the "hash" field.
func HashContains(v string) predicate.ReceiptImage {
	return predicate.ReceiptImage(sql.FieldContains(FieldHash, v))
}

// HashHasPrefix applies the HasPrefix predicate on the "hash" field.
func HashHasPrefix(v string) predicate.ReceiptImage {
	return predicate.ReceiptImage(sql.FieldHasPrefix(FieldHash, v))
}

// HashHasSuffix applies the HasSuffix predicate on the "hash" field.
func HashHasSuffix(v string) predicate.ReceiptImage {
	return predicate.ReceiptImage(sql.FieldHasSuffix(FieldHash, v))
}

// HashEqualFold applies the EqualFold predicate on the "hash" field.
func HashEqualFold(v string) predicate.ReceiptImage {
	return predicate.ReceiptImage(sql.FieldEqualFold(FieldHash, v))
}

// HashContainsFold applies the ContainsFold predicate on the "hash" field.
func HashContainsFold(v string) predicate.ReceiptImage {
	return predicate.ReceiptImage(sql.FieldContainsFold(FieldHash, v))
}

// UploadedAtEQ applies the EQ predicate on the "uploaded_at" field.
func UploadedAtEQ(v time.Time) predicate.ReceiptImage {
	return predicate.ReceiptImage(sql.FieldEQ(FieldUploadedAt, v))
}

// UploadedAtNEQ applies the NEQ predicate on the "uploaded_at" field.
func UploadedAtNEQ(v time.Time) predicate.ReceiptImage {
	return predicate.ReceiptImage(sql.FieldNEQ(FieldUploadedAt, v))
}

// UploadedAtIn applies the In predicate on the "uploaded_at" field.
func UploadedAtIn(vs ...time.Time) predicate.ReceiptImage {
	return predicate.ReceiptImage(sql.FieldIn(FieldUploadedAt, vs...))
}

// UploadedAtNotIn applies the NotIn predicate on the "uploaded_at" field.
func UploadedAtNotIn(vs ...time.Time) predicate.ReceiptImage {
	return predicate.ReceiptImage(sql.FieldNotIn(FieldUploadedAt, vs...))
}

// UploadedAtGT applies the GT predicate on the "uploaded_at" field.
func UploadedAtGT(v time.Time) predicate.ReceiptImage {
	return predicate.ReceiptImage(sql.FieldGT(FieldUploadedAt, v))
}

// UploadedAtGTE applies the GTE predicate on the "uploaded_at" field.
func UploadedAtGTE(v time.Time) predicate.ReceiptImage {
	return predicate.ReceiptImage(sql.FieldGTE(FieldUploadedAt, v))
}

// UploadedAtLT applies the LT predicate on the "uploaded_at" field.
func UploadedAtLT(v time.Time) predicate.ReceiptImage {
	return predicate.ReceiptImage(sql.FieldLT(FieldUploadedAt, v))
}

// UploadedAtLTE applies the LTE predicate on the "uploaded_at" field.
func UploadedAtLTE(v time.Time) predicate.ReceiptImage {
	return predicate.ReceiptImage(sql.FieldLTE(FieldUploadedAt, v))
}

// HasOuting applies the HasEdge predicate on the "outing" edge.
func HasOuting() predicate.ReceiptImage {
	return predicate.ReceiptImage(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, OutingTable, OutingColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasOutingWith applies the HasEdge predicate on the "outing" edge with a given conditions (other predicates).
func HasOutingWith(preds ...predicate.Outing) predicate.ReceiptImage {
	return predicate.ReceiptImage(func(s *sql.Selector) {
		step := newOutingStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasReceipt applies the HasEdge predicate on the "receipt" edge.
func HasReceipt() predicate.ReceiptImage {
	return predicate.ReceiptImage(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, ReceiptTable, ReceiptColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasReceiptWith applies the HasEdge predicate on the "receipt" edge with a given conditions (other predicates).
func HasReceiptWith(preds ...predicate.Receipt) predicate.ReceiptImage {
	return predicate.ReceiptImage(func(s *sql.Selector) {
		step := newReceiptStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ReceiptImage) predicate.ReceiptImage {
	return predicate.ReceiptImage(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ReceiptImage) predicate.ReceiptImage {
	return predicate.ReceiptImage(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ReceiptImage) predicate.ReceiptImage {
	return predicate.ReceiptImage(sql.NotPredicates(p))
}
