package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// ReceiptImage is one uploaded receipt photo: its object-storage location,
// reconstructed text, and content hash. The hash is unique — it is the
// deduplication key the upload handler checks before extracting.
type ReceiptImage struct{ ent.Schema }

func (ReceiptImage) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "receipt_images"},
	}
}

func (ReceiptImage) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.UUID("outing_id", uuid.UUID{}),
		field.String("bucket").NotEmpty(),
		field.String("key").NotEmpty(),
		field.Text("raw_text"),
		field.String("file_name").NotEmpty(),
		field.String("hash").NotEmpty().
			MinLen(64).MaxLen(64).
			SchemaType(map[string]string{dialect.Postgres: "char(64)"}),
		field.Time("uploaded_at").Default(time.Now),
	}
}

func (ReceiptImage) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY images -> ONE outing (FK: receipt_images.outing_id)
		edge.From("outing", Outing.Type).
			Ref("images").
			Field("outing_id").
			Required().
			Unique(),
		// ONE image -> ONE receipt
		edge.To("receipt", Receipt.Type).
			Unique(),
	}
}

func (ReceiptImage) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("hash").Unique(),
		index.Fields("outing_id", "uploaded_at"),
	}
}
