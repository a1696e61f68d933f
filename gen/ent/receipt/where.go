// Code generated by ent, DO NOT EDIT.

package receipt

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/tabmate/outings-tracker/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Receipt {
	return predicate.Receipt(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Receipt {
	return predicate.Receipt(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Receipt {
	return predicate.Receipt(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Receipt {
	return predicate.Receipt(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Receipt {
	return predicate.Receipt(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Receipt {
	return predicate.Receipt(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Receipt {
	return predicate.Receipt(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Receipt {
	return predicate.Receipt(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Receipt {
	return predicate.Receipt(sql.FieldLTE(FieldID, id))
}

// Restaurant applies equality check predicate on the "restaurant" field. It's identical to RestaurantEQ.
func Restaurant(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldEQ(FieldRestaurant, v))
}

// Address applies equality check predicate on the "address" field. It's identical to AddressEQ.
func Address(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldEQ(FieldAddress, v))
}

// Opened applies equality check predicate on the "opened" field. It's identical to OpenedEQ.
func Opened(v time.Time) predicate.Receipt {
	return predicate.Receipt(sql.FieldEQ(FieldOpened, v))
}

// OrderNumber applies equality check predicate on the "order_number" field. It's identical to OrderNumberEQ.
func OrderNumber(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldEQ(FieldOrderNumber, v))
}

// OrderType applies equality check predicate on the "order_type" field. It's identical to OrderTypeEQ.
func OrderType(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldEQ(FieldOrderType, v))
}

// TableNumber applies equality check predicate on the "table_number" field. It's identical to TableNumberEQ.
func TableNumber(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldEQ(FieldTableNumber, v))
}

// Server applies equality check predicate on the "server" field. It's identical to ServerEQ.
func Server(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldEQ(FieldServer, v))
}

// Subtotal applies equality check predicate on the "subtotal" field. It's identical to SubtotalEQ.
func Subtotal(v float64) predicate.Receipt {
	return predicate.Receipt(sql.FieldEQ(FieldSubtotal, v))
}

// SalesTax applies equality check predicate on the "sales_tax" field. It's identical to SalesTaxEQ.
func SalesTax(v float64) predicate.Receipt {
	return predicate.Receipt(sql.FieldEQ(FieldSalesTax, v))
}

// Total applies equality check predicate on the "total" field. It's identical to TotalEQ.
func Total(v float64) predicate.Receipt {
	return predicate.Receipt(sql.FieldEQ(FieldTotal, v))
}

// PaymentMethod applies equality check predicate on the "payment_method" field. It's identical to PaymentMethodEQ.
func PaymentMethod(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldEQ(FieldPaymentMethod, v))
}

// PaymentAmountPaid applies equality check predicate on the "payment_amount_paid" field. It's identical to PaymentAmountPaidEQ.
func PaymentAmountPaid(v float64) predicate.Receipt {
	return predicate.Receipt(sql.FieldEQ(FieldPaymentAmountPaid, v))
}

// PaymentTip applies equality check predicate on the "payment_tip" field. It's identical to PaymentTipEQ.
func PaymentTip(v float64) predicate.Receipt {
	return predicate.Receipt(sql.FieldEQ(FieldPaymentTip, v))
}

// Copy applies equality check predicate on the "copy" field. It's identical to CopyEQ.
func Copy(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldEQ(FieldCopy, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Receipt {
	return predicate.Receipt(sql.FieldEQ(FieldCreatedAt, v))
}

// RestaurantEQ applies the EQ predicate on the "restaurant" field.
func RestaurantEQ(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldEQ(FieldRestaurant, v))
}

// RestaurantNEQ applies the NEQ predicate on the "restaurant" field.
func RestaurantNEQ(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldNEQ(FieldRestaurant, v))
}

// RestaurantIn applies the In predicate on the "restaurant" field.
func RestaurantIn(vs ...string) predicate.Receipt {
	return predicate.Receipt(sql.FieldIn(FieldRestaurant, vs...))
}

// RestaurantNotIn applies the NotIn predicate on the "restaurant" field.
func RestaurantNotIn(vs ...string) predicate.Receipt {
	return predicate.Receipt(sql.FieldNotIn(FieldRestaurant, vs...))
}

// RestaurantGT applies the GT predicate on the "restaurant" field.
func RestaurantGT(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldGT(FieldRestaurant, v))
}

// RestaurantGTE applies the GTE predicate on the "restaurant" field.
func RestaurantGTE(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldGTE(FieldRestaurant, v))
}

// RestaurantLT applies the LT predicate on the "restaurant" field.
func RestaurantLT(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldLT(FieldRestaurant, v))
}

// RestaurantLTE applies the LTE predicate on the "restaurant" field.
func RestaurantLTE(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldLTE(FieldRestaurant, v))
}

// RestaurantContains applies the Contains predicate on the "restaurant" field.
func RestaurantContains(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldContains(FieldRestaurant, v))
}

// RestaurantHasPrefix applies the HasPrefix predicate on the "restaurant" field.
func RestaurantHasPrefix(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldHasPrefix(FieldRestaurant, v))
}

// RestaurantHasSuffix applies the HasSuffix predicate on the "restaurant" field.
func RestaurantHasSuffix(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldHasSuffix(FieldRestaurant, v))
}

// RestaurantEqualFold applies the EqualFold predicate on the "restaurant" field.
func RestaurantEqualFold(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldEqualFold(FieldRestaurant, v))
}

// RestaurantContainsFold applies the ContainsFold predicate on the "restaurant" field.
func RestaurantContainsFold(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldContainsFold(FieldRestaurant, v))
}

// AddressEQ applies the EQ predicate on the "address" field.
func AddressEQ(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldEQ(FieldAddress, v))
}

// AddressNEQ applies the NEQ predicate on the "address" field.
func AddressNEQ(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldNEQ(FieldAddress, v))
}

// AddressIn applies the In predicate on the "address" field.
func AddressIn(vs ...string) predicate.Receipt {
	return predicate.Receipt(sql.FieldIn(FieldAddress, vs...))
}

// AddressNotIn applies the NotIn predicate on the "address" field.
func AddressNotIn(vs ...string) predicate.Receipt {
	return predicate.Receipt(sql.FieldNotIn(FieldAddress, vs...))
}

// AddressGT applies the GT predicate on the "address" field.
func AddressGT(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldGT(FieldAddress, v))
}

// AddressGTE applies the GTE predicate on the "address" field.
func AddressGTE(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldGTE(FieldAddress, v))
}

// AddressLT applies the LT predicate on the "address" field.
func AddressLT(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldLT(FieldAddress, v))
}

// AddressLTE applies the LTE predicate on the "address" field.
func AddressLTE(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldLTE(FieldAddress, v))
}

// AddressContains applies the Contains predicate on the "address" field.
func AddressContains(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldContains(FieldAddress, v))
}

// AddressHasPrefix applies the HasPrefix predicate on the "address" field.
func AddressHasPrefix(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldHasPrefix(FieldAddress, v))
}

// AddressHasSuffix applies the HasSuffix predicate on the "address" field.
func AddressHasSuffix(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldHasSuffix(FieldAddress, v))
}

// AddressEqualFold applies the EqualFold predicate on the "address" field.
func AddressEqualFold(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldEqualFold(FieldAddress, v))
}

// AddressContainsFold applies the ContainsFold predicate on the "address" field.
func AddressContainsFold(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldContainsFold(FieldAddress, v))
}

// OpenedEQ applies the EQ predicate on the "opened" field.
func OpenedEQ(v time.Time) predicate.Receipt {
	return predicate.Receipt(sql.FieldEQ(FieldOpened, v))
}

// OpenedNEQ applies the NEQ predicate on the "opened" field.
func OpenedNEQ(v time.Time) predicate.Receipt {
	return predicate.Receipt(sql.FieldNEQ(FieldOpened, v))
}

// OpenedIn applies the In predicate on the "opened" field.
func OpenedIn(vs ...time.Time) predicate.Receipt {
	return predicate.Receipt(sql.FieldIn(FieldOpened, vs...))
}

// OpenedNotIn applies the NotIn predicate on the "opened" field.
func OpenedNotIn(vs ...time.Time) predicate.Receipt {
	return predicate.Receipt(sql.FieldNotIn(FieldOpened, vs...))
}

// OpenedGT applies the GT predicate on the "opened" field.
func OpenedGT(v time.Time) predicate.Receipt {
	return predicate.Receipt(sql.FieldGT(FieldOpened, v))
}

// OpenedGTE applies the GTE predicate on the "opened" field.
func OpenedGTE(v time.Time) predicate.Receipt {
	return predicate.Receipt(sql.FieldGTE(FieldOpened, v))
}

// OpenedLT applies the LT predicate on the "opened" field.
func OpenedLT(v time.Time) predicate.Receipt {
	return predicate.Receipt(sql.FieldLT(FieldOpened, v))
}

// OpenedLTE applies the LTE predicate on the "opened" field.
func OpenedLTE(v time.Time) predicate.Receipt {
	return predicate.Receipt(sql.FieldLTE(FieldOpened, v))
}

// OpenedIsNil applies the IsNil predicate on the "opened" field.
func OpenedIsNil() predicate.Receipt {
	return predicate.Receipt(sql.FieldIsNull(FieldOpened))
}

// OpenedNotNil applies the NotNil predicate on the "opened" field.
func OpenedNotNil() predicate.Receipt {
	return predicate.Receipt(sql.FieldNotNull(FieldOpened))
}

// OrderNumberEQ applies the EQ predicate on the "order_number" field.
func OrderNumberEQ(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldEQ(FieldOrderNumber, v))
}

// OrderNumberNEQ applies the NEQ predicate on the "order_number" field.
func OrderNumberNEQ(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldNEQ(FieldOrderNumber, v))
}

// OrderNumberIn applies the In predicate on the "order_number" field.
func OrderNumberIn(vs ...string) predicate.Receipt {
	return predicate.Receipt(sql.FieldIn(FieldOrderNumber, vs...))
}

// OrderNumberNotIn applies the NotIn predicate on the "order_number" field.
func OrderNumberNotIn(vs ...string) predicate.Receipt {
	return predicate.Receipt(sql.FieldNotIn(FieldOrderNumber, vs...))
}

// OrderNumberGT applies the GT predicate on the "order_number" field.
func OrderNumberGT(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldGT(FieldOrderNumber, v))
}

// OrderNumberGTE applies the GTE predicate on the "order_number" field.
func OrderNumberGTE(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldGTE(FieldOrderNumber, v))
}

// OrderNumberLT applies the LT predicate on the "order_number" field.
func OrderNumberLT(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldLT(FieldOrderNumber, v))
}

// OrderNumberLTE applies the LTE predicate on the "order_number" field.
func OrderNumberLTE(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldLTE(FieldOrderNumber, v))
}

// OrderNumberContains applies the Contains predicate on the "order_number" field.
func OrderNumberContains(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldContains(FieldOrderNumber, v))
}

// OrderNumberHasPrefix applies the HasPrefix predicate on the "order_number" field.
func OrderNumberHasPrefix(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldHasPrefix(FieldOrderNumber, v))
}

// OrderNumberHasSuffix applies the HasSuffix predicate on the "order_number" field.
func OrderNumberHasSuffix(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldHasSuffix(FieldOrderNumber, v))
}

// OrderNumberEqualFold applies the EqualFold predicate on the "order_number" field.
func OrderNumberEqualFold(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldEqualFold(FieldOrderNumber, v))
}

// OrderNumberContainsFold applies the ContainsFold predicate on the "order_number" field.
func OrderNumberContainsFold(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldContainsFold(FieldOrderNumber, v))
}

// OrderTypeEQ applies the EQ predicate on the "order_type" field.
func OrderTypeEQ(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldEQ(FieldOrderType, v))
}

// OrderTypeNEQ applies the NEQ predicate on the "order_type" field.
func OrderTypeNEQ(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldNEQ(FieldOrderType, v))
}

// OrderTypeIn applies the In predicate on the "order_type" field.
func OrderTypeIn(vs ...string) predicate.Receipt {
	return predicate.Receipt(sql.FieldIn(FieldOrderType, vs...))
}

// OrderTypeNotIn applies the NotIn predicate on the "order_type" field.
func OrderTypeNotIn(vs ...string) predicate.Receipt {
	return predicate.Receipt(sql.FieldNotIn(FieldOrderType, vs...))
}

// OrderTypeGT applies the GT predicate on the "order_type" field.
func OrderTypeGT(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldGT(FieldOrderType, v))
}

// OrderTypeGTE applies the GTE predicate on the "order_type" field.
func OrderTypeGTE(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldGTE(FieldOrderType, v))
}

// OrderTypeLT applies the LT predicate on the "order_type" field.
func OrderTypeLT(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldLT(FieldOrderType, v))
}

// OrderTypeLTE applies the LTE predicate on the "order_type" field.
func OrderTypeLTE(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldLTE(FieldOrderType, v))
}

// OrderTypeContains applies the Contains predicate on the "order_type" field.
func OrderTypeContains(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldContains(FieldOrderType, v))
}

// OrderTypeHasPrefix applies the HasPrefix predicate on the "order_type" field.
func OrderTypeHasPrefix(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldHasPrefix(FieldOrderType, v))
}

// OrderTypeHasSuffix applies the HasSuffix predicate on the "order_type" field.
func OrderTypeHasSuffix(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldHasSuffix(FieldOrderType, v))
}

// OrderTypeEqualFold applies the EqualFold predicate on the "order_type" field.
func OrderTypeEqualFold(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldEqualFold(FieldOrderType, v))
}

// OrderTypeContainsFold applies the ContainsFold predicate on the "order_type" field.
func OrderTypeContainsFold(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldContainsFold(FieldOrderType, v))
}

// TableNumberEQ applies the EQ predicate on the "table_number" field.
func TableNumberEQ(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldEQ(FieldTableNumber, v))
}

// TableNumberNEQ applies the NEQ predicate on the "table_number" field.
func TableNumberNEQ(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldNEQ(FieldTableNumber, v))
}

// TableNumberIn applies the In predicate on the "table_number" field.
func TableNumberIn(vs ...string) predicate.Receipt {
	return predicate.Receipt(sql.FieldIn(FieldTableNumber, vs...))
}

// TableNumberNotIn applies the NotIn predicate on the "table_number" field.
func TableNumberNotIn(vs ...string) predicate.Receipt {
	return predicate.Receipt(sql.FieldNotIn(FieldTableNumber, vs...))
}

// TableNumberGT applies the GT predicate on the "table_number" field.
func TableNumberGT(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldGT(FieldTableNumber, v))
}

// TableNumberGTE applies the GTE predicate on the "table_number" field.
func TableNumberGTE(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldGTE(FieldTableNumber, v))
}

// TableNumberLT applies the LT predicate on the "table_number" field.
func TableNumberLT(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldLT(FieldTableNumber, v))
}

// TableNumberLTE applies the LTE predicate on the "table_number" field.
func TableNumberLTE(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldLTE(FieldTableNumber, v))
}

// TableNumberContains applies the Contains predicate on the "table_number" field.
func TableNumberContains(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldContains(FieldTableNumber, v))
}

// TableNumberHasPrefix applies the HasPrefix predicate on the "table_number" field.
func TableNumberHasPrefix(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldHasPrefix(FieldTableNumber, v))
}

// TableNumberHasSuffix applies the HasSuffix predicate on the "table_number" field.
func TableNumberHasSuffix(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldHasSuffix(FieldTableNumber, v))
}

// TableNumberEqualFold applies the EqualFold predicate on the "table_number" field.
func TableNumberEqualFold(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldEqualFold(FieldTableNumber, v))
}

// TableNumberContainsFold applies the ContainsFold predicate on the "table_number" field.
func TableNumberContainsFold(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldContainsFold(FieldTableNumber, v))
}

// ServerEQ applies the EQ predicate on the "server" field.
func ServerEQ(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldEQ(FieldServer, v))
}

// ServerNEQ applies the NEQ predicate on the "server" field.
func ServerNEQ(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldNEQ(FieldServer, v))
}

// ServerIn applies the In predicate on the "server" field.
func ServerIn(vs ...string) predicate.Receipt {
	return predicate.Receipt(sql.FieldIn(FieldServer, vs...))
}

// ServerNotIn applies the NotIn predicate on the "server" field.
func ServerNotIn(vs ...string) predicate.Receipt {
	return predicate.Receipt(sql.FieldNotIn(FieldServer, vs...))
}

// ServerGT applies the GT predicate on the "server" field.
func ServerGT(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldGT(FieldServer, v))
}

// ServerGTE applies the GTE predicate on the "server" field.
func ServerGTE(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldGTE(FieldServer, v))
}

// ServerLT applies the LT predicate on the "server" field.
func ServerLT(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldLT(FieldServer, v))
}

// ServerLTE applies the LTE predicate on the "server" field.
func ServerLTE(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldLTE(FieldServer, v))
}

// ServerContains applies the Contains predicate on the "server" field.
func ServerContains(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldContains(FieldServer, v))
}

// ServerHasPrefix applies the HasPrefix predicate on the "server" field.
func ServerHasPrefix(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldHasPrefix(FieldServer, v))
}

// ServerHasSuffix applies the HasSuffix predicate on the "server" field.
func ServerHasSuffix(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldHasSuffix(FieldServer, v))
}

// ServerEqualFold applies the EqualFold predicate on the "server" field.
func ServerEqualFold(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldEqualFold(FieldServer, v))
}

// ServerContainsFold applies the ContainsFold predicate on the "server" field.
func ServerContainsFold(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldContainsFold(FieldServer, v))
}

// SubtotalEQ applies the EQ predicate on the "subtotal" field.
func SubtotalEQ(v float64) predicate.Receipt {
	return predicate.Receipt(sql.FieldEQ(FieldSubtotal, v))
}

// SubtotalNEQ applies the NEQ predicate on the "subtotal" field.
func SubtotalNEQ(v float64) predicate.Receipt {
	return predicate.Receipt(sql.FieldNEQ(FieldSubtotal, v))
}

// SubtotalIn applies the In predicate on the "subtotal" field.
func SubtotalIn(vs ...float64) predicate.Receipt {
	return predicate.Receipt(sql.FieldIn(FieldSubtotal, vs...))
}

// SubtotalNotIn applies the NotIn predicate on the "subtotal" field.
func SubtotalNotIn(vs ...float64) predicate.Receipt {
	return predicate.Receipt(sql.FieldNotIn(FieldSubtotal, vs...))
}

// SubtotalGT applies the GT predicate on the "subtotal" field.
func SubtotalGT(v float64) predicate.Receipt {
	return predicate.Receipt(sql.FieldGT(FieldSubtotal, v))
}

// SubtotalGTE applies the GTE predicate on the "subtotal" field.
func SubtotalGTE(v float64) predicate.Receipt {
	return predicate.Receipt(sql.FieldGTE(FieldSubtotal, v))
}

// SubtotalLT applies the LT predicate on the "subtotal" field.
func SubtotalLT(v float64) predicate.Receipt {
	return predicate.Receipt(sql.FieldLT(FieldSubtotal, v))
}

// SubtotalLTE applies the LTE predicate on the "subtotal" field.
func SubtotalLTE(v float64) predicate.Receipt {
	return predicate.Receipt(sql.FieldLTE(FieldSubtotal, v))
}

// SalesTaxEQ applies the EQ predicate on the "sales_tax" field.
func SalesTaxEQ(v float64) predicate.Receipt {
	return predicate.Receipt(sql.FieldEQ(FieldSalesTax, v))
}

// SalesTaxNEQ applies the NEQ predicate on the "sales_tax" field.
func SalesTaxNEQ(v float64) predicate.Receipt {
	return predicate.Receipt(sql.FieldNEQ(FieldSalesTax, v))
}

// SalesTaxIn applies the In predicate on the "sales_tax" field.
func SalesTaxIn(vs ...float64) predicate.Receipt {
	return predicate.Receipt(sql.FieldIn(FieldSalesTax, vs...))
}

// SalesTaxNotIn applies the NotIn predicate on the "sales_tax" field.
func SalesTaxNotIn(vs ...float64) predicate.Receipt {
	return predicate.Receipt(sql.FieldNotIn(FieldSalesTax, vs...))
}

// SalesTaxGT applies the GT predicate on the "sales_tax" field.
func SalesTaxGT(v float64) predicate.Receipt {
	return predicate.Receipt(sql.FieldGT(FieldSalesTax, v))
}

// SalesTaxGTE applies the GTE predicate on the "sales_tax" field.
func SalesTaxGTE(v float64) predicate.Receipt {
	return predicate.Receipt(sql.FieldGTE(FieldSalesTax, v))
}

// SalesTaxLT applies the LT predicate on the "sales_tax" field.
func SalesTaxLT(v float64) predicate.Receipt {
	return predicate.Receipt(sql.FieldLT(FieldSalesTax, v))
}

// SalesTaxLTE applies the LTE predicate on the "sales_tax" field.
func SalesTaxLTE(v float64) predicate.Receipt {
	return predicate.Receipt(sql.FieldLTE(FieldSalesTax, v))
}

// TotalEQ applies the EQ predicate on the "total" field.
func TotalEQ(v float64) predicate.Receipt {
	return predicate.Receipt(sql.FieldEQ(FieldTotal, v))
}

// TotalNEQ applies the NEQ predicate on the "total" field.
func TotalNEQ(v float64) predicate.Receipt {
	return predicate.Receipt(sql.FieldNEQ(FieldTotal, v))
}

// TotalIn applies the In predicate on the "total" field.
func TotalIn(vs ...float64) predicate.Receipt {
	return predicate.Receipt(sql.FieldIn(FieldTotal, vs...))
}

// TotalNotIn applies the NotIn predicate on the "total" field.
func TotalNotIn(vs ...float64) predicate.Receipt {
	return predicate.Receipt(sql.FieldNotIn(FieldTotal, vs...))
}

// TotalGT applies the GT predicate on the "total" field.
func TotalGT(v float64) predicate.Receipt {
	return predicate.Receipt(sql.FieldGT(FieldTotal, v))
}

// TotalGTE applies the GTE predicate on the "total" field.
func TotalGTE(v float64) predicate.Receipt {
	return predicate.Receipt(sql.FieldGTE(FieldTotal, v))
}

// TotalLT applies the LT predicate on the "total" field.
func TotalLT(v float64) predicate.Receipt {
	return predicate.Receipt(sql.FieldLT(FieldTotal, v))
}

// TotalLTE applies the LTE predicate on the "total" field.
func TotalLTE(v float64) predicate.Receipt {
	return predicate.Receipt(sql.FieldLTE(FieldTotal, v))
}

// PaymentMethodEQ applies the EQ predicate on the "payment_method" field.
func PaymentMethodEQ(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldEQ(FieldPaymentMethod, v))
}

// PaymentMethodNEQ applies the NEQ predicate on the "payment_method" field.
func PaymentMethodNEQ(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldNEQ(FieldPaymentMethod, v))
}

// PaymentMethodIn applies the In predicate on the "payment_method" field.
func PaymentMethodIn(vs ...string) predicate.Receipt {
	return predicate.Receipt(sql.FieldIn(FieldPaymentMethod, vs...))
}

// PaymentMethodNotIn applies the NotIn predicate on the "payment_method" field.
func PaymentMethodNotIn(vs ...string) predicate.Receipt {
	return predicate.Receipt(sql.FieldNotIn(FieldPaymentMethod, vs...))
}

// PaymentMethodGT applies the GT predicate on the "payment_method" field.
func PaymentMethodGT(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldGT(FieldPaymentMethod, v))
}

// PaymentMethodGTE applies the GTE predicate on the "payment_method" field.
func PaymentMethodGTE(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldGTE(FieldPaymentMethod, v))
}

// PaymentMethodLT applies the LT predicate on the "payment_method" field.
func PaymentMethodLT(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldLT(FieldPaymentMethod, v))
}

// PaymentMethodLTE applies the LTE predicate on the "payment_method" field.
func PaymentMethodLTE(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldLTE(FieldPaymentMethod, v))
}

// PaymentMethodContains applies the Contains predicate on the "payment_method" field.
func PaymentMethodContains(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldContains(FieldPaymentMethod, v))
}

// PaymentMethodHasPrefix applies the HasPrefix predicate on the "payment_method" field.
func PaymentMethodHasPrefix(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldHasPrefix(FieldPaymentMethod, v))
}

// PaymentMethodHasSuffix applies the HasSuffix predicate on the "payment_method" field.
func PaymentMethodHasSuffix(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldHasSuffix(FieldPaymentMethod, v))
}

// PaymentMethodEqualFold applies the EqualFold predicate on the "payment_method" field.
func PaymentMethodEqualFold(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldEqualFold(FieldPaymentMethod, v))
}

// PaymentMethodContainsFold applies the ContainsFold predicate on the "payment_method" field.
func PaymentMethodContainsFold(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldContainsFold(FieldPaymentMethod, v))
}

// PaymentAmountPaidEQ applies the EQ predicate on the "payment_amount_paid" field.
func PaymentAmountPaidEQ(v float64) predicate.Receipt {
	return predicate.Receipt(sql.FieldEQ(FieldPaymentAmountPaid, v))
}

// PaymentAmountPaidNEQ applies the NEQ predicate on the "payment_amount_paid" field.
func PaymentAmountPaidNEQ(v float64) predicate.Receipt {
	return predicate.Receipt(sql.FieldNEQ(FieldPaymentAmountPaid, v))
}

// PaymentAmountPaidIn applies the In predicate on the "payment_amount_paid" field.
func PaymentAmountPaidIn(vs ...float64) predicate.Receipt {
	return predicate.Receipt(sql.FieldIn(FieldPaymentAmountPaid, vs...))
}

// PaymentAmountPaidNotIn applies the NotIn predicate on the "payment_amount_paid" field.
func PaymentAmountPaidNotIn(vs ...float64) predicate.Receipt {
	return predicate.Receipt(sql.FieldNotIn(FieldPaymentAmountPaid, vs...))
}

// PaymentAmountPaidGT applies the GT predicate on the "payment_amount_paid" field.
func PaymentAmountPaidGT(v float64) predicate.Receipt {
	return predicate.Receipt(sql.FieldGT(FieldPaymentAmountPaid, v))
}

// PaymentAmountPaidGTE applies the GTE predicate on the "payment_amount_paid" field.
func PaymentAmountPaidGTE(v float64) predicate.Receipt {
	return predicate.Receipt(sql.FieldGTE(FieldPaymentAmountPaid, v))
}

// PaymentAmountPaidLT applies the LT predicate on the "payment_amount_paid" field.
func PaymentAmountPaidLT(v float64) predicate.Receipt {
	return predicate.Receipt(sql.FieldLT(FieldPaymentAmountPaid, v))
}

// PaymentAmountPaidLTE applies the LTE predicate on the "payment_amount_paid" field.
func PaymentAmountPaidLTE(v float64) predicate.Receipt {
	return predicate.Receipt(sql.FieldLTE(FieldPaymentAmountPaid, v))
}

// PaymentTipEQ applies the EQ predicate on the "payment_tip" field.
func PaymentTipEQ(v float64) predicate.Receipt {
	return predicate.Receipt(sql.FieldEQ(FieldPaymentTip, v))
}

// PaymentTipNEQ applies the NEQ predicate on the "payment_tip" field.
func PaymentTipNEQ(v float64) predicate.Receipt {
	return predicate.Receipt(sql.FieldNEQ(FieldPaymentTip, v))
}

// PaymentTipIn applies the In predicate on the "payment_tip" field.
func PaymentTipIn(vs ...float64) predicate.Receipt {
	return predicate.Receipt(sql.FieldIn(FieldPaymentTip, vs...))
}

// PaymentTipNotIn applies the NotIn predicate on the "payment_tip" field.
func PaymentTipNotIn(vs ...float64) predicate.Receipt {
	return predicate.Receipt(sql.FieldNotIn(FieldPaymentTip, vs...))
}

// PaymentTipGT applies the GT predicate on the "payment_tip" field.
func PaymentTipGT(v float64) predicate.Receipt {
	return predicate.Receipt(sql.FieldGT(FieldPaymentTip, v))
}

// PaymentTipGTE applies the GTE predicate on the "payment_tip" field.
func PaymentTipGTE(v float64) predicate.Receipt {
	return predicate.Receipt(sql.FieldGTE(FieldPaymentTip, v))
}

// PaymentTipLT applies the LT predicate on the "payment_tip" field.
func PaymentTipLT(v float64) predicate.Receipt {
	return predicate.Receipt(sql.FieldLT(FieldPaymentTip, v))
}

// PaymentTipLTE applies the LTE predicate on the "payment_tip" field.
func PaymentTipLTE(v float64) predicate.Receipt {
	return predicate.Receipt(sql.FieldLTE(FieldPaymentTip, v))
}

// CopyEQ applies the EQ predicate on the "copy" field.
func CopyEQ(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldEQ(FieldCopy, v))
}

// CopyNEQ applies the NEQ predicate on the "copy" field.
func CopyNEQ(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldNEQ(FieldCopy, v))
}

// CopyIn applies the In predicate on the "copy" field.
func CopyIn(vs ...string) predicate.Receipt {
	return predicate.Receipt(sql.FieldIn(FieldCopy, vs...))
}

// CopyNotIn applies the NotIn predicate on the "copy" field.
func CopyNotIn(vs ...string) predicate.Receipt {
	return predicate.Receipt(sql.FieldNotIn(FieldCopy, vs...))
}

// CopyGT applies the GT predicate on the "copy" field.
func CopyGT(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldGT(FieldCopy, v))
}

// CopyGTE applies the GTE predicate on the "copy" field.
func CopyGTE(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldGTE(FieldCopy, v))
}

// CopyLT applies the LT predicate on the "copy" field.
func CopyLT(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldLT(FieldCopy, v))
}

// CopyLTE applies the LTE predicate on the "copy" field.
func CopyLTE(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldLTE(FieldCopy, v))
}

// CopyContains applies the Contains predicate on the "copy" field.
func CopyContains(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldContains(FieldCopy, v))
}

// CopyHasPrefix applies the HasPrefix predicate on the "copy" field.
func CopyHasPrefix(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldHasPrefix(FieldCopy, v))
}

// CopyHasSuffix applies the HasSuffix predicate on the "copy" field.
func CopyHasSuffix(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldHasSuffix(FieldCopy, v))
}

// CopyEqualFold applies the EqualFold predicate on the "copy" field.
func CopyEqualFold(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldEqualFold(FieldCopy, v))
}

// CopyContainsFold applies the ContainsFold predicate on the "copy" field.
func CopyContainsFold(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldContainsFold(FieldCopy, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Receipt {
	return predicate.Receipt(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Receipt {
	return predicate.Receipt(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Receipt {
	return predicate.Receipt(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Receipt {
	return predicate.Receipt(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Receipt {
	return predicate.Receipt(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Receipt {
	return predicate.Receipt(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Receipt {
	return predicate.Receipt(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Receipt {
	return predicate.Receipt(sql.FieldLTE(FieldCreatedAt, v))
}

// HasImage applies the HasEdge predicate on the "image" edge.
func HasImage() predicate.Receipt {
	return predicate.Receipt(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, ImageTable, ImageColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasImageWith applies the HasEdge predicate on the "image" edge with a given conditions (other predicates).
func HasImageWith(preds ...predicate.ReceiptImage) predicate.Receipt {
	return predicate.Receipt(func(s *sql.Selector) {
		step := newImageStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasItems applies the HasEdge predicate on the "items" edge.
func HasItems() predicate.Receipt {
	return predicate.Receipt(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ItemsTable, ItemsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasItemsWith applies the HasEdge predicate on the "items" edge with a given conditions (other predicates).
func HasItemsWith(preds ...predicate.OrderItem) predicate.Receipt {
	return predicate.Receipt(func(s *sql.Selector) {
		step := newItemsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasFees applies the HasEdge predicate on the "fees" edge.
func HasFees() predicate.Receipt {
	return predicate.Receipt(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, FeesTable, FeesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasFeesWith applies the HasEdge predicate on the "fees" edge with a given conditions (other predicates).
func HasFeesWith(preds ...predicate.OtherFee) predicate.Receipt {
	return predicate.Receipt(func(s *sql.Selector) {
		step := newFeesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Receipt) predicate.Receipt {
	return predicate.Receipt(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Receipt) predicate.Receipt {
	return predicate.Receipt(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Receipt) predicate.Receipt {
	return predicate.Receipt(sql.NotPredicates(p))
}
