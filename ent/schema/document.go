package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Document holds the schema definition for the Document entity.
type Document struct {
	ent.Schema
}

// Fields of the Document.
func (Document) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("document_id").
			Unique().
			Immutable().
			Comment("Opaque 24-char hex identifier"),
		field.String("organization_id"),
		field.String("user_file_name").
			Comment("File name as uploaded by the user"),
		field.String("stored_file_name").
			Comment("Internal blob key of the original upload"),
		field.String("pdf_file_name").
			Comment("Blob key of the PDF rendition consumed by OCR"),
		field.JSON("tag_ids", []string{}).
			Optional(),
		field.Enum("state").
			Values(
				"uploaded",
				"ocr_processing", "ocr_completed", "ocr_failed",
				"llm_processing", "llm_completed", "llm_failed",
				"kb_index_processing", "kb_index_completed", "kb_index_failed",
			).
			Default("uploaded"),
		field.Time("state_updated_at").
			Default(time.Now),
		field.Time("upload_date").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Document.
func (Document) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("extractions", Extraction.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Document.
func (Document) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("organization_id"),
		index.Fields("state"),
		index.Fields("upload_date"),
	}
}
