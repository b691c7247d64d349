package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Extraction holds the schema definition for the Extraction entity:
// the parsed JSON result of one prompt revision against one document.
type Extraction struct {
	ent.Schema
}

// Fields of the Extraction.
func (Extraction) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("extraction_id").
			Unique().
			Immutable(),
		field.String("document_id"),
		field.String("prompt_rev_id"),
		field.JSON("result", map[string]interface{}{}),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Extraction.
func (Extraction) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("document", Document.Type).
			Ref("extractions").
			Field("document_id").
			Unique().
			Required(),
	}
}

// Indexes of the Extraction.
func (Extraction) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("document_id", "prompt_rev_id").
			Unique(),
	}
}
