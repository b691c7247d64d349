// Package kb defines the knowledge-base indexing port.
package kb

import "context"

// Chunk is one indexable slice of a document's text.
type Chunk struct {
	DocumentID string `json:"document_id"`
	Seq        int    `json:"seq"`
	Text       string `json:"text"`
}

// Indexer pushes document text into the knowledge base and removes it
// when documents are deleted.
type Indexer interface {
	Index(ctx context.Context, orgID string, chunks []Chunk) error
	Remove(ctx context.Context, orgID, documentID string) error
}

// NoOpIndexer satisfies Indexer without a backing knowledge base.
type NoOpIndexer struct{}

// Index implements Indexer.
func (NoOpIndexer) Index(ctx context.Context, orgID string, chunks []Chunk) error { return nil }

// Remove implements Indexer.
func (NoOpIndexer) Remove(ctx context.Context, orgID, documentID string) error { return nil }
