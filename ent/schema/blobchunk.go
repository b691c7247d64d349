package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// BlobChunk holds the schema definition for the BlobChunk entity.
type BlobChunk struct {
	ent.Schema
}

// Fields of the BlobChunk.
func (BlobChunk) Fields() []ent.Field {
	return []ent.Field{
		field.String("blob_id"),
		field.Int("seq"),
		field.Bytes("data"),
	}
}

// Edges of the BlobChunk.
func (BlobChunk) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("object", BlobObject.Type).
			Ref("chunks").
			Field("blob_id").
			Unique().
			Required(),
	}
}

// Indexes of the BlobChunk.
func (BlobChunk) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("blob_id", "seq").
			Unique(),
	}
}
