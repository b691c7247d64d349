package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// BlobObject holds the schema definition for the BlobObject entity.
// The object row is written after all chunks, so a row's existence
// means the full payload is readable.
type BlobObject struct {
	ent.Schema
}

// Fields of the BlobObject.
func (BlobObject) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("blob_id").
			Unique().
			Immutable(),
		field.String("bucket"),
		field.String("key"),
		field.Int64("size"),
		field.Int("chunk_count"),
		field.JSON("metadata", map[string]string{}).
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the BlobObject.
func (BlobObject) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("chunks", BlobChunk.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the BlobObject.
func (BlobObject) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("bucket", "key").
			Unique(),
	}
}
