package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"

	"github.com/google/uuid"
)

// OtherFee is a non-tax, non-tip surcharge on a receipt.
type OtherFee struct{ ent.Schema }

func (OtherFee) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "other_fees"},
	}
}

func (OtherFee) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.String("name").NotEmpty(),
		field.Float("price").
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
	}
}

func (OtherFee) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("receipt", Receipt.Type).
			Ref("fees").
			Unique().
			Required(),
	}
}
