// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/tabmate/outings-tracker/gen/ent/receipt"
	"github.com/tabmate/outings-tracker/gen/ent/receiptimage"
)

// Receipt is the model entity for the Receipt schema.
type Receipt struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// Restaurant holds the value of the "restaurant" field.
	Restaurant string `json:"restaurant,omitempty"`
	// Address holds the value of the "address" field.
	Address string `json:"address,omitempty"`
	// Opened holds the value of the "opened" field.
	Opened *time.Time `json:"opened,omitempty"`
	// OrderNumber holds the value of the "order_number" field.
	OrderNumber string `json:"order_number,omitempty"`
	// OrderType holds the value of the "order_type" field.
	OrderType string `json:"order_type,omitempty"`
	// TableNumber holds the value of the "table_number" field.
	TableNumber string `json:"table_number,omitempty"`
	// Server holds the value of the "server" field.
	Server string `json:"server,omitempty"`
	// Subtotal holds the value of the "subtotal" field.
	Subtotal float64 `json:"subtotal,omitempty"`
	// SalesTax holds the value of the "sales_tax" field.
	SalesTax float64 `json:"sales_tax,omitempty"`
	// Total holds the value of the "total" field.
	Total float64 `json:"total,omitempty"`
	// PaymentMethod holds the value of the "payment_method" field.
	PaymentMethod string `json:"payment_method,omitempty"`
	// PaymentAmountPaid holds the value of the "payment_amount_paid" field.
	PaymentAmountPaid float64 `json:"payment_amount_paid,omitempty"`
	// PaymentTip holds the value of the "payment_tip" field.
	PaymentTip float64 `json:"payment_tip,omitempty"`
	// Copy holds the value of the "copy" field.
	Copy string `json:"copy,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ReceiptQuery when eager-loading is set.
	Edges                 ReceiptEdges `json:"edges"`
	receipt_image_receipt *uuid.UUID
	selectValues          sql.SelectValues
}

// ReceiptEdges holds the relations/edges for other nodes in the graph.
type ReceiptEdges struct {
	// Image holds the value of the image edge.
	Image *ReceiptImage `json:"image,omitempty"`
	// Items holds the value of the items edge.
	Items []*OrderItem `json:"items,omitempty"`
	// Fees holds the value of the fees edge.
	Fees []*OtherFee `json:"fees,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// ImageOrErr returns the Image value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ReceiptEdges) ImageOrErr() (*ReceiptImage, error) {
	if e.Image != nil {
		return e.Image, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: receiptimage.Label}
	}
	return nil, &NotLoadedError{edge: "image"}
}

// ItemsOrErr returns the Items value or an error if the edge
// was not loaded in eager-loading.
func (e ReceiptEdges) ItemsOrErr() ([]*OrderItem, error) {
	if e.loadedTypes[1] {
		return e.Items, nil
	}
	return nil, &NotLoadedError{edge: "items"}
}

// FeesOrErr returns the Fees value or an error if the edge
// was not loaded in eager-loading.
func (e ReceiptEdges) FeesOrErr() ([]*OtherFee, error) {
	if e.loadedTypes[2] {
		return e.Fees, nil
	}
	return nil, &NotLoadedError{edge: "fees"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Receipt) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case receipt.FieldSubtotal, receipt.FieldSalesTax, receipt.FieldTotal, receipt.FieldPaymentAmountPaid, receipt.FieldPaymentTip:
			values[i] = new(sql.NullFloat64)
		case receipt.FieldRestaurant, receipt.FieldAddress, receipt.FieldOrderNumber, receipt.FieldOrderType, receipt.FieldTableNumber, receipt.FieldServer, receipt.FieldPaymentMethod, receipt.FieldCopy:
			values[i] = new(sql.NullString)
		case receipt.FieldOpened, receipt.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case receipt.FieldID:
			values[i] = new(uuid.UUID)
		case receipt.ForeignKeys[0]: // receipt_image_receipt
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Receipt fields.
func (_m *Receipt) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case receipt.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case receipt.FieldRestaurant:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field restaurant", values[i])
			} else if value.Valid {
				_m.Restaurant = value.String
			}
		case receipt.FieldAddress:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field address", values[i])
			} else if value.Valid {
				_m.Address = value.String
			}
		case receipt.FieldOpened:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field opened", values[i])
			} else if value.Valid {
				_m.Opened = new(time.Time)
				*_m.Opened = value.Time
			}
		case receipt.FieldOrderNumber:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field order_number", values[i])
			} else if value.Valid {
				_m.OrderNumber = value.String
			}
		case receipt.FieldOrderType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field order_type", values[i])
			} else if value.Valid {
				_m.OrderType = value.String
			}
		case receipt.FieldTableNumber:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field table_number", values[i])
			} else if value.Valid {
				_m.TableNumber = value.String
			}
		case receipt.FieldServer:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field server", values[i])
			} else if value.Valid {
				_m.Server = value.String
			}
		case receipt.FieldSubtotal:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field subtotal", values[i])
			} else if value.Valid {
				_m.Subtotal = value.Float64
			}
		case receipt.FieldSalesTax:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field sales_tax", values[i])
			} else if value.Valid {
				_m.SalesTax = value.Float64
			}
		case receipt.FieldTotal:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field total", values[i])
			} else if value.Valid {
				_m.Total = value.Float64
			}
		case receipt.FieldPaymentMethod:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field payment_method", values[i])
			} else if value.Valid {
				_m.PaymentMethod = value.String
			}
		case receipt.FieldPaymentAmountPaid:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field payment_amount_paid", values[i])
			} else if value.Valid {
				_m.PaymentAmountPaid = value.Float64
			}
		case receipt.FieldPaymentTip:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field payment_tip", values[i])
			} else if value.Valid {
				_m.PaymentTip = value.Float64
			}
		case receipt.FieldCopy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field copy", values[i])
			} else if value.Valid {
				_m.Copy = value.String
			}
		case receipt.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case receipt.ForeignKeys[0]:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field receipt_image_receipt", values[i])
			} else if value.Valid {
				_m.receipt_image_receipt = new(uuid.UUID)
				*_m.receipt_image_receipt = *value.S.(*uuid.UUID)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Receipt.
// This includes values selected through modifiers, order, etc.
func (_m *Receipt) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryImage queries the "image" edge of the Receipt entity.
func (_m *Receipt) QueryImage() *ReceiptImageQuery {
	return NewReceiptClient(_m.config).QueryImage(_m)
}

// QueryItems queries the "items" edge of the Receipt entity.
func (_m *Receipt) QueryItems() *OrderItemQuery {
	return NewReceiptClient(_m.config).QueryItems(_m)
}

// QueryFees queries the "fees" edge of the Receipt entity.
func (_m *Receipt) QueryFees() *OtherFeeQuery {
	return NewReceiptClient(_m.config).QueryFees(_m)
}

// Update returns a builder for updating this Receipt.
// Note that you need to call Receipt.Unwrap() before calling this method if this Receipt
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Receipt) Update() *ReceiptUpdateOne {
	return NewReceiptClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Receipt entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Receipt) Unwrap() *Receipt {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Receipt is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Receipt) String() string {
	var builder strings.Builder
	builder.WriteString("Receipt(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("restaurant=")
	builder.WriteString(_m.Restaurant)
	builder.WriteString(", ")
	builder.WriteString("address=")
	builder.WriteString(_m.Address)
	builder.WriteString(", ")
	if v := _m.Opened; v != nil {
		builder.WriteString("opened=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("order_number=")
	builder.WriteString(_m.OrderNumber)
	builder.WriteString(", ")
	builder.WriteString("order_type=")
	builder.WriteString(_m.OrderType)
	builder.WriteString(", ")
	builder.WriteString("table_number=")
	builder.WriteString(_m.TableNumber)
	builder.WriteString(", ")
	builder.WriteString("server=")
	builder.WriteString(_m.Server)
	builder.WriteString(", ")
	builder.WriteString("subtotal=")
	builder.WriteString(fmt.Sprintf("%v", _m.Subtotal))
	builder.WriteString(", ")
	builder.WriteString("sales_tax=")
	builder.WriteString(fmt.Sprintf("%v", _m.SalesTax))
	builder.WriteString(", ")
	builder.WriteString("total=")
	builder.WriteString(fmt.Sprintf("%v", _m.Total))
	builder.WriteString(", ")
	builder.WriteString("payment_method=")
	builder.WriteString(_m.PaymentMethod)
	builder.WriteString(", ")
	builder.WriteString("payment_amount_paid=")
	builder.WriteString(fmt.Sprintf("%v", _m.PaymentAmountPaid))
	builder.WriteString(", ")
	builder.WriteString("payment_tip=")
	builder.WriteString(fmt.Sprintf("%v", _m.PaymentTip))
	builder.WriteString(", ")
	builder.WriteString("copy=")
	builder.WriteString(_m.Copy)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Receipts is a parsable slice of Receipt.
type Receipts []*Receipt
