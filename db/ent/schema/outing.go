package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"

	"github.com/google/uuid"
)

// Outing is a group event that receipts are filed under.
type Outing struct{ ent.Schema }

func (Outing) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "outings"},
	}
}

func (Outing) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.String("name").NotEmpty(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
		// soft delete
		field.Time("deleted_at").Optional().Nillable(),
	}
}

func (Outing) Edges() []ent.Edge {
	return []ent.Edge{
		// ONE outing -> MANY receipt images
		edge.To("images", ReceiptImage.Type),
	}
}
