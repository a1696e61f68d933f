// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/tabmate/outings-tracker/gen/ent/outing"
	"github.com/tabmate/outings-tracker/gen/ent/receipt"
	"github.com/tabmate/outings-tracker/gen/ent/receiptimage"
)

// ReceiptImage is the model entity for the ReceiptImage schema.
type ReceiptImage struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// OutingID holds the value of the "outing_id" field.
	OutingID uuid.UUID `json:"outing_id,omitempty"`
	// Bucket holds the value of the "bucket" field.
	Bucket string `json:"bucket,omitempty"`
	// Key holds the value of the "key" field.
	Key string `json:"key,omitempty"`
	// RawText holds the value of the "raw_text" field.
	RawText string `json:"raw_text,omitempty"`
	// FileName holds the value of the "file_name" field.
	FileName string `json:"file_name,omitempty"`
	// Hash holds the value of the "hash" field.
	Hash string `json:"hash,omitempty"`
	// UploadedAt holds the value of the "uploaded_at" field.
	UploadedAt time.Time `json:"uploaded_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ReceiptImageQuery when eager-loading is set.
	Edges        ReceiptImageEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ReceiptImageEdges holds the relations/edges for other nodes in the graph.
type ReceiptImageEdges struct {
	// Outing holds the value of the outing edge.
	Outing *Outing `json:"outing,omitempty"`
	// Receipt holds the value of the receipt edge.
	Receipt *Receipt `json:"receipt,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// OutingOrErr returns the Outing value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ReceiptImageEdges) OutingOrErr() (*Outing, error) {
	if e.Outing != nil {
		return e.Outing, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: outing.Label}
	}
	return nil, &NotLoadedError{edge: "outing"}
}

// ReceiptOrErr returns the Receipt value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ReceiptImageEdges) ReceiptOrErr() (*Receipt, error) {
	if e.Receipt != nil {
		return e.Receipt, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: receipt.Label}
	}
	return nil, &NotLoadedError{edge: "receipt"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ReceiptImage) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case receiptimage.FieldBucket, receiptimage.FieldKey, receiptimage.FieldRawText, receiptimage.FieldFileName, receiptimage.FieldHash:
			values[i] = new(sql.NullString)
		case receiptimage.FieldUploadedAt:
			values[i] = new(sql.NullTime)
		case receiptimage.FieldID, receiptimage.FieldOutingID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ReceiptImage fields.
func (_m *ReceiptImage) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case receiptimage.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case receiptimage.FieldOutingID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field outing_id", values[i])
			} else if value != nil {
				_m.OutingID = *value
			}
		case receiptimage.FieldBucket:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field bucket", values[i])
			} else if value.Valid {
				_m.Bucket = value.String
			}
		case receiptimage.FieldKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field key", values[i])
			} else if value.Valid {
				_m.Key = value.String
			}
		case receiptimage.FieldRawText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field raw_text", values[i])
			} else if value.Valid {
				_m.RawText = value.String
			}
		case receiptimage.FieldFileName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field file_name", values[i])
			} else if value.Valid {
				_m.FileName = value.String
			}
		case receiptimage.FieldHash:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field hash", values[i])
			} else if value.Valid {
				_m.Hash = value.String
			}
		case receiptimage.FieldUploadedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field uploaded_at", values[i])
			} else if value.Valid {
				_m.UploadedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ReceiptImage.
// This includes values selected through modifiers, order, etc.
func (_m *ReceiptImage) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryOuting queries the "outing" edge of the ReceiptImage entity.
func (_m *ReceiptImage) QueryOuting() *OutingQuery {
	return NewReceiptImageClient(_m.config).QueryOuting(_m)
}

// QueryReceipt queries the "receipt" edge of the ReceiptImage entity.
func (_m *ReceiptImage) QueryReceipt() *ReceiptQuery {
	return NewReceiptImageClient(_m.config).QueryReceipt(_m)
}

// Update returns a builder for updating this ReceiptImage.
// Note that you need to call ReceiptImage.Unwrap() before calling this method if this ReceiptImage
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ReceiptImage) Update() *ReceiptImageUpdateOne {
	return NewReceiptImageClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ReceiptImage entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ReceiptImage) Unwrap() *ReceiptImage {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ReceiptImage is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ReceiptImage) String() string {
	var builder strings.Builder
	builder.WriteString("ReceiptImage(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("outing_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.OutingID))
	builder.WriteString(", ")
	builder.WriteString("bucket=")
	builder.WriteString(_m.Bucket)
	builder.WriteString(", ")
	builder.WriteString("key=")
	builder.WriteString(_m.Key)
	builder.WriteString(", ")
	builder.WriteString("raw_text=")
	builder.WriteString(_m.RawText)
	builder.WriteString(", ")
	builder.WriteString("file_name=")
	builder.WriteString(_m.FileName)
	builder.WriteString(", ")
	builder.WriteString("hash=")
	builder.WriteString(_m.Hash)
	builder.WriteString(", ")
	builder.WriteString("uploaded_at=")
	builder.WriteString(_m.UploadedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ReceiptImages is a parsable slice of ReceiptImage.
type ReceiptImages []*ReceiptImage
