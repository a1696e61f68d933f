// Code generated by ent, DO NOT EDIT.

package receipt

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the receipt type in the database.
	Label = "receipt"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldRestaurant holds the string denoting the restaurant field in the database.
	FieldRestaurant = "restaurant"
	// FieldAddress holds the string denoting the address field in the database.
	FieldAddress = "address"
	// FieldOpened holds the string denoting the opened field in the database.
	FieldOpened = "opened"
	// FieldOrderNumber holds the string denoting the order_number field in the database.
	FieldOrderNumber = "order_number"
	// FieldOrderType holds the string denoting the order_type field in the database.
	FieldOrderType = "order_type"
	// FieldTableNumber holds the string denoting the table_number field in the database.
	FieldTableNumber = "table_number"
	// FieldServer holds the string denoting the server field in the database.
	FieldServer = "server"
	// FieldSubtotal holds the string denoting the subtotal field in the database.
	FieldSubtotal = "subtotal"
	// FieldSalesTax holds the string denoting the sales_tax field in the database.
	FieldSalesTax = "sales_tax"
	// FieldTotal holds the string denoting the total field in the database.
	FieldTotal = "total"
	// FieldPaymentMethod holds the string denoting the payment_method field in the database.
	FieldPaymentMethod = "payment_method"
	// FieldPaymentAmountPaid holds the string denoting the payment_amount_paid field in the database.
	FieldPaymentAmountPaid = "payment_amount_paid"
	// FieldPaymentTip holds the string denoting the payment_tip field in the database.
	FieldPaymentTip = "payment_tip"
	// FieldCopy holds the string denoting the copy field in the database.
	FieldCopy = "copy"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeImage holds the string denoting the image edge name in mutations.
	EdgeImage = "image"
	// EdgeItems holds the string denoting the items edge name in mutations.
	EdgeItems = "items"
	// EdgeFees holds the string denoting the fees edge name in mutations.
	EdgeFees = "fees"
	// Table holds the table name of the receipt in the database.
	Table = "receipts"
	// ImageTable is the table that holds the image relation/edge.
	ImageTable = "receipts"
	// ImageInverseTable is the table name for the ReceiptImage entity.
	// It exists in this package in order to avoid circular dependency with the "receiptimage" package.
	ImageInverseTable = "receipt_images"
	// ImageColumn is the table column denoting the image relation/edge.
	ImageColumn = "receipt_image_receipt"
	// ItemsTable is the table that holds the items relation/edge.
	ItemsTable = "order_items"
	// ItemsInverseTable is the table name for the OrderItem entity.
	// It exists in this package in order to avoid circular dependency with the "orderitem" package.
	ItemsInverseTable = "order_items"
	// ItemsColumn is the table column denoting the items relation/edge.
	ItemsColumn = "receipt_items"
	// FeesTable is the table that holds the fees relation/edge.
	FeesTable = "other_fees"
	// FeesInverseTable is the table name for the OtherFee entity.
	// It exists in this package in order to avoid circular dependency with the "otherfee" package.
	FeesInverseTable = "other_fees"
	// FeesColumn is the table column denoting the fees relation/edge.
	FeesColumn = "receipt_fees"
)

// Columns holds all SQL columns for receipt fields.
var Columns = []string{
	FieldID,
	FieldRestaurant,
	FieldAddress,
	FieldOpened,
	FieldOrderNumber,
	FieldOrderType,
	FieldTableNumber,
	FieldServer,
	FieldSubtotal,
	FieldSalesTax,
	FieldTotal,
	FieldPaymentMethod,
	FieldPaymentAmountPaid,
	FieldPaymentTip,
	FieldCopy,
	FieldCreatedAt,
}

// ForeignKeys holds the SQL foreign-keys that are owned by the "receipts"
// table and are not defined as standalone fields in the schema.
var ForeignKeys = []string{
	"receipt_image_receipt",
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	for i := range ForeignKeys {
		if column == ForeignKeys[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Receipt queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByRestaurant orders the results by the restaurant field.
func ByRestaurant(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRestaurant, opts...).ToFunc()
}

// ByAddress orders the results by the address field.
func ByAddress(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAddress, opts...).ToFunc()
}

// ByOpened orders the results by the opened field.
func ByOpened(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOpened, opts...).ToFunc()
}

// ByOrderNumber orders the results by the order_number field.
func ByOrderNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOrderNumber, opts...).ToFunc()
}

// ByOrderType orders the results by the order_type field.
func ByOrderType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOrderType, opts...).ToFunc()
}

// ByTableNumber orders the results by the table_number field.
func ByTableNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTableNumber, opts...).ToFunc()
}

// ByServer orders the results by the server field.
func ByServer(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldServer, opts...).ToFunc()
}

// BySubtotal orders the results by the subtotal field.
func BySubtotal(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubtotal, opts...).ToFunc()
}

// BySalesTax orders the results by the sales_tax field.
func BySalesTax(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSalesTax, opts...).ToFunc()
}

// ByTotal orders the results by the total field.
func ByTotal(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotal, opts...).ToFunc()
}

// ByPaymentMethod orders the results by the payment_method field.
func ByPaymentMethod(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPaymentMethod, opts...).ToFunc()
}

// ByPaymentAmountPaid orders the results by the payment_amount_paid field.
func ByPaymentAmountPaid(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPaymentAmountPaid, opts...).ToFunc()
}

// ByPaymentTip orders the results by the payment_tip field.
func ByPaymentTip(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPaymentTip, opts...).ToFunc()
}

// ByCopy orders the results by the copy field.
func ByCopy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCopy, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByImageField orders the results by image field.
func ByImageField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newImageStep(), sql.OrderByField(field, opts...))
	}
}

// ByItemsCount orders the results by items count.
func ByItemsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newItemsStep(), opts...)
	}
}

// ByItems orders the results by items terms.
func ByItems(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newItemsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByFeesCount orders the results by fees count.
func ByFeesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newFeesStep(), opts...)
	}
}

// ByFees orders the results by fees terms.
func ByFees(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newFeesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newImageStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ImageInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2O, true, ImageTable, ImageColumn),
	)
}
func newItemsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ItemsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ItemsTable, ItemsColumn),
	)
}
func newFeesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(FeesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, FeesTable, FeesColumn),
	)
}
