// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/tabmate/outings-tracker/gen/ent/otherfee"
	"github.com/tabmate/outings-tracker/gen/ent/receipt"
)

// OtherFee is the model entity for the OtherFee schema.
type OtherFee struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Price holds the value of the "price" field.
	Price float64 `json:"price,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the OtherFeeQuery when eager-loading is set.
	Edges        OtherFeeEdges `json:"edges"`
	receipt_fees *uuid.UUID
	selectValues sql.SelectValues
}

// OtherFeeEdges holds the relations/edges for other nodes in the graph.
type OtherFeeEdges struct {
	// Receipt holds the value of the receipt edge.
	Receipt *Receipt `json:"receipt,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ReceiptOrErr returns the Receipt value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e OtherFeeEdges) ReceiptOrErr() (*Receipt, error) {
	if e.Receipt != nil {
		return e.Receipt, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: receipt.Label}
	}
	return nil, &NotLoadedError{edge: "receipt"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*OtherFee) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case otherfee.FieldPrice:
			values[i] = new(sql.NullFloat64)
		case otherfee.FieldName:
			values[i] = new(sql.NullString)
		case otherfee.FieldID:
			values[i] = new(uuid.UUID)
		case otherfee.ForeignKeys[0]: // receipt_fees
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the OtherFee fields.
func (_m *OtherFee) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case otherfee.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case otherfee.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case otherfee.FieldPrice:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field price", values[i])
			} else if value.Valid {
				_m.Price = value.Float64
			}
		case otherfee.ForeignKeys[0]:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field receipt_fees", values[i])
			} else if value.Valid {
				_m.receipt_fees = new(uuid.UUID)
				*_m.receipt_fees = *value.S.(*uuid.UUID)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the OtherFee.
// This includes values selected through modifiers, order, etc.
func (_m *OtherFee) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryReceipt queries the "receipt" edge of the OtherFee entity.
func (_m *OtherFee) QueryReceipt() *ReceiptQuery {
	return NewOtherFeeClient(_m.config).QueryReceipt(_m)
}

// Update returns a builder for updating this OtherFee.
// Note that you need to call OtherFee.Unwrap() before calling this method if this OtherFee
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *OtherFee) Update() *OtherFeeUpdateOne {
	return NewOtherFeeClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the OtherFee entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *OtherFee) Unwrap() *OtherFee {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: OtherFee is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *OtherFee) String() string {
	var builder strings.Builder
	builder.WriteString("OtherFee(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("price=")
	builder.WriteString(fmt.Sprintf("%v", _m.Price))
	builder.WriteByte(')')
	return builder.String()
}

// OtherFees is a parsable slice of OtherFee.
type OtherFees []*OtherFee
