// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// OrderItemsColumns holds the columns for the "order_items" table.
	OrderItemsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "price", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "quantity", Type: field.TypeInt},
		{Name: "receipt_items", Type: field.TypeUUID},
	}
	// OrderItemsTable holds the schema information for the "order_items" table.
	OrderItemsTable = &schema.Table{
		Name:       "order_items",
		Columns:    OrderItemsColumns,
		PrimaryKey: []*schema.Column{OrderItemsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "order_items_receipts_items",
				Columns:    []*schema.Column{OrderItemsColumns[4]},
				RefColumns: []*schema.Column{ReceiptsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// OtherFeesColumns holds the columns for the "other_fees" table.
	OtherFeesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "price", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "receipt_fees", Type: field.TypeUUID},
	}
	// OtherFeesTable holds the schema information for the "other_fees" table.
	OtherFeesTable = &schema.Table{
		Name:       "other_fees",
		Columns:    OtherFeesColumns,
		PrimaryKey: []*schema.Column{OtherFeesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "other_fees_receipts_fees",
				Columns:    []*schema.Column{OtherFeesColumns[3]},
				RefColumns: []*schema.Column{ReceiptsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// OutingsColumns holds the columns for the "outings" table.
	OutingsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
	}
	// OutingsTable holds the schema information for the "outings" table.
	OutingsTable = &schema.Table{
		Name:       "outings",
		Columns:    OutingsColumns,
		PrimaryKey: []*schema.Column{OutingsColumns[0]},
	}
	// ReceiptsColumns holds the columns for the "receipts" table.
	ReceiptsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "restaurant", Type: field.TypeString},
		{Name: "address", Type: field.TypeString},
		{Name: "opened", Type: field.TypeTime, Nullable: true},
		{Name: "order_number", Type: field.TypeString},
		{Name: "order_type", Type: field.TypeString},
		{Name: "table_number", Type: field.TypeString},
		{Name: "server", Type: field.TypeString},
		{Name: "subtotal", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "sales_tax", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "total", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "payment_method", Type: field.TypeString},
		{Name: "payment_amount_paid", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "payment_tip", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "copy", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "receipt_image_receipt", Type: field.TypeUUID, Unique: true},
	}
	// ReceiptsTable holds the schema information for the "receipts" table.
	ReceiptsTable = &schema.Table{
		Name:       "receipts",
		Columns:    ReceiptsColumns,
		PrimaryKey: []*schema.Column{ReceiptsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "receipts_receipt_images_receipt",
				Columns:    []*schema.Column{ReceiptsColumns[16]},
				RefColumns: []*schema.Column{ReceiptImagesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// ReceiptImagesColumns holds the columns for the "receipt_images" table.
	ReceiptImagesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "bucket", Type: field.TypeString},
		{Name: "key", Type: field.TypeString},
		{Name: "raw_text", Type: field.TypeString, Size: 2147483647},
		{Name: "file_name", Type: field.TypeString},
		{Name: "hash", Type: field.TypeString, Size: 64, SchemaType: map[string]string{"postgres": "char(64)"}},
		{Name: "uploaded_at", Type: field.TypeTime},
		{Name: "outing_id", Type: field.TypeUUID},
	}
	// ReceiptImagesTable holds the schema information for the "receipt_images" table.
	ReceiptImagesTable = &schema.Table{
		Name:       "receipt_images",
		Columns:    ReceiptImagesColumns,
		PrimaryKey: []*schema.Column{ReceiptImagesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "receipt_images_outings_images",
				Columns:    []*schema.Column{ReceiptImagesColumns[7]},
				RefColumns: []*schema.Column{OutingsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "receiptimage_hash",
				Unique:  true,
				Columns: []*schema.Column{ReceiptImagesColumns[5]},
			},
			{
				Name:    "receiptimage_outing_id_uploaded_at",
				Unique:  false,
				Columns: []*schema.Column{ReceiptImagesColumns[7], ReceiptImagesColumns[6]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		OrderItemsTable,
		OtherFeesTable,
		OutingsTable,
		ReceiptsTable,
		ReceiptImagesTable,
	}
)

func init() {
	OrderItemsTable.ForeignKeys[0].RefTable = ReceiptsTable
	OrderItemsTable.Annotation = &entsql.Annotation{
		Table: "order_items",
	}
	OtherFeesTable.ForeignKeys[0].RefTable = ReceiptsTable
	OtherFeesTable.Annotation = &entsql.Annotation{
		Table: "other_fees",
	}
	OutingsTable.Annotation = &entsql.Annotation{
		Table: "outings",
	}
	ReceiptsTable.ForeignKeys[0].RefTable = ReceiptImagesTable
	ReceiptsTable.Annotation = &entsql.Annotation{
		Table: "receipts",
	}
	ReceiptImagesTable.ForeignKeys[0].RefTable = OutingsTable
	ReceiptImagesTable.Annotation = &entsql.Annotation{
		Table: "receipt_images",
	}
}
