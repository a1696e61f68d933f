package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"

	"github.com/google/uuid"
)

// Receipt is the structured record extracted from one receipt image.
type Receipt struct{ ent.Schema }

func (Receipt) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "receipts"},
	}
}

func (Receipt) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.String("restaurant"),
		field.String("address"),
		// nil when the extracted date string could not be parsed
		field.Time("opened").Optional().Nillable(),
		field.String("order_number"),
		field.String("order_type"),
		// "table" collides with SQL; column keeps the original name
		field.String("table_number"),
		field.String("server"),
		field.Float("subtotal").
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.Float("sales_tax").
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.Float("total").
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.String("payment_method"),
		field.Float("payment_amount_paid").
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.Float("payment_tip").
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.String("copy"),
		field.Time("created_at").Default(time.Now),
	}
}

func (Receipt) Edges() []ent.Edge {
	return []ent.Edge{
		// ONE receipt <- ONE image
		edge.From("image", ReceiptImage.Type).
			Ref("receipt").
			Unique().
			Required(),
		// ONE receipt -> MANY order items / fees
		edge.To("items", OrderItem.Type),
		edge.To("fees", OtherFee.Type),
	}
}
