// Package blob provides durable byte storage keyed by (bucket, key),
// chunked in PostgreSQL so single objects are unbounded in size.
package blob

import (
	"context"
	"fmt"
	"time"

	"github.com/docpipe/docpipe/ent"
	"github.com/docpipe/docpipe/ent/blobchunk"
	"github.com/docpipe/docpipe/ent/blobobject"
	"github.com/google/uuid"
)

// ChunkSize is the maximum bytes stored per chunk row.
const ChunkSize = 64 << 20 // 64 MiB

// Object is a stored blob with its sidecar metadata.
type Object struct {
	Data      []byte
	Metadata  map[string]string
	Size      int64
	CreatedAt time.Time
}

// Store reads and writes blobs.
type Store struct {
	client *ent.Client
}

// NewStore creates a blob store over the shared ent client.
func NewStore(client *ent.Client) *Store {
	return &Store{client: client}
}

// Put writes data under (bucket, key). An existing object is deleted
// first (overwrite is delete-then-insert, never in-place). The object row
// and its chunks commit together, so readers never observe a partial
// object; last writer wins under concurrent puts of the same key.
func (s *Store) Put(ctx context.Context, bucket, key string, data []byte, metadata map[string]string) error {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.BlobObject.Delete().
		Where(
			blobobject.BucketEQ(bucket),
			blobobject.KeyEQ(key),
		).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete previous object: %w", err)
	}

	chunks := splitChunks(data, ChunkSize)

	obj := tx.BlobObject.Create().
		SetID(uuid.New().String()).
		SetBucket(bucket).
		SetKey(key).
		SetSize(int64(len(data))).
		SetChunkCount(len(chunks))
	if metadata != nil {
		obj = obj.SetMetadata(metadata)
	}
	created, err := obj.Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to create blob object: %w", err)
	}

	for seq, chunk := range chunks {
		_, err := tx.BlobChunk.Create().
			SetBlobID(created.ID).
			SetSeq(seq).
			SetData(chunk).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("failed to write chunk %d: %w", seq, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit blob: %w", err)
	}
	return nil
}

// Get returns the object under (bucket, key), or nil when missing.
// Missing is not an error.
func (s *Store) Get(ctx context.Context, bucket, key string) (*Object, error) {
	obj, err := s.client.BlobObject.Query().
		Where(
			blobobject.BucketEQ(bucket),
			blobobject.KeyEQ(key),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query blob object: %w", err)
	}

	chunks, err := s.client.BlobChunk.Query().
		Where(blobchunk.BlobIDEQ(obj.ID)).
		Order(ent.Asc(blobchunk.FieldSeq)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query blob chunks: %w", err)
	}

	data := make([]byte, 0, obj.Size)
	for _, c := range chunks {
		data = append(data, c.Data...)
	}

	return &Object{
		Data:      data,
		Metadata:  obj.Metadata,
		Size:      obj.Size,
		CreatedAt: obj.CreatedAt,
	}, nil
}

// Delete removes the object under (bucket, key). No-op when missing;
// chunks go with the object via the cascade.
func (s *Store) Delete(ctx context.Context, bucket, key string) error {
	_, err := s.client.BlobObject.Delete().
		Where(
			blobobject.BucketEQ(bucket),
			blobobject.KeyEQ(key),
		).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete blob object: %w", err)
	}
	return nil
}

// splitChunks cuts data into size-bounded chunks. Empty data yields a
// single empty chunk so every object has at least one row.
func splitChunks(data []byte, size int) [][]byte {
	if len(data) == 0 {
		return [][]byte{{}}
	}
	var chunks [][]byte
	for off := 0; off < len(data); off += size {
		end := off + size
		if end > len(data) {
			end = len(data)
		}
		chunks = append(chunks, data[off:end])
	}
	return chunks
}
