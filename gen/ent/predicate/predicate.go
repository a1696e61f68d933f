// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// OrderItem is the predicate function for orderitem builders.
type OrderItem func(*sql.Selector)

// OtherFee is the predicate function for otherfee builders.
type OtherFee func(*sql.Selector)

// Outing is the predicate function for outing builders.
type Outing func(*sql.Selector)

// Receipt is the predicate function for receipt builders.
type Receipt func(*sql.Selector)

// ReceiptImage is the predicate function for receiptimage builders.
type ReceiptImage func(*sql.Selector)
