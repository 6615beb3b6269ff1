package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

type Report struct {
	ent.Schema
}

func (Report) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(newUUIDv7),

		field.String("title").NotEmpty(),
		field.Text("description").NotEmpty(),

		field.Enum("category").
			Values("jalan", "jembatan", "drainase", "lampu", "lainnya").
			Default("jalan"),

		field.Float("latitude"),
		field.Float("longitude"),

		field.String("address").Default(""),

		// Either an inline data URI or a public object URL, depending on
		// the configured photo storage mode.
		field.Text("photo_url").Optional().Nillable(),

		// Creation time. Nullable so rows written without one can still be
		// decoded; edits never touch it.
		field.Time("timestamp").Optional().Nillable().Immutable(),
	}
}

func (Report) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("category"),
		index.Fields("timestamp"),
	}
}
