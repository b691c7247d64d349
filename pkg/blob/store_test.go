package blob

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	testdb "github.com/docpipe/docpipe/test/database"
)

func TestSplitChunks(t *testing.T) {
	tests := []struct {
		name     string
		data     []byte
		size     int
		wantLens []int
	}{
		{
			name:     "empty data yields one empty chunk",
			data:     nil,
			size:     4,
			wantLens: []int{0},
		},
		{
			name:     "exact multiple",
			data:     []byte("abcdefgh"),
			size:     4,
			wantLens: []int{4, 4},
		},
		{
			name:     "remainder chunk",
			data:     []byte("abcdefghi"),
			size:     4,
			wantLens: []int{4, 4, 1},
		},
		{
			name:     "single chunk when smaller than size",
			data:     []byte("ab"),
			size:     4,
			wantLens: []int{2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chunks := splitChunks(tt.data, tt.size)
			require.Len(t, chunks, len(tt.wantLens))

			var total []byte
			for i, c := range chunks {
				assert.Len(t, c, tt.wantLens[i])
				total = append(total, c...)
			}
			if len(tt.data) > 0 {
				assert.Equal(t, tt.data, total)
			}
		})
	}
}

func TestStore(t *testing.T) {
	client := testdb.NewTestClient(t)
	store := NewStore(client.Client)
	ctx := context.Background()

	t.Run("get missing returns nil", func(t *testing.T) {
		obj, err := store.Get(ctx, BucketDocuments, "missing/original.pdf")
		require.NoError(t, err)
		assert.Nil(t, obj)
	})

	t.Run("put then get round-trips data and metadata", func(t *testing.T) {
		data := []byte("%PDF-1.7 hello")
		err := store.Put(ctx, BucketDocuments, KeyOriginal("doc-1"), data,
			map[string]string{"file_name": "report.pdf"})
		require.NoError(t, err)

		obj, err := store.Get(ctx, BucketDocuments, KeyOriginal("doc-1"))
		require.NoError(t, err)
		require.NotNil(t, obj)
		assert.Equal(t, data, obj.Data)
		assert.Equal(t, int64(len(data)), obj.Size)
		assert.Equal(t, "report.pdf", obj.Metadata["file_name"])
	})

	t.Run("overwrite replaces the object", func(t *testing.T) {
		require.NoError(t, store.Put(ctx, BucketOCR, KeyOCRText("doc-1"), []byte("first"), nil))
		require.NoError(t, store.Put(ctx, BucketOCR, KeyOCRText("doc-1"), []byte("second"), nil))

		obj, err := store.Get(ctx, BucketOCR, KeyOCRText("doc-1"))
		require.NoError(t, err)
		require.NotNil(t, obj)
		assert.Equal(t, "second", string(obj.Data))
	})

	t.Run("large object round-trips", func(t *testing.T) {
		data := bytes.Repeat([]byte("0123456789"), 100_000) // 1 MB
		require.NoError(t, store.Put(ctx, BucketDocuments, KeyOriginal("doc-big"), data, nil))

		obj, err := store.Get(ctx, BucketDocuments, KeyOriginal("doc-big"))
		require.NoError(t, err)
		require.NotNil(t, obj)
		assert.True(t, bytes.Equal(data, obj.Data))
	})

	t.Run("empty object round-trips", func(t *testing.T) {
		require.NoError(t, store.Put(ctx, BucketOCR, KeyOCRText("doc-empty"), nil, nil))
		obj, err := store.Get(ctx, BucketOCR, KeyOCRText("doc-empty"))
		require.NoError(t, err)
		require.NotNil(t, obj)
		assert.Empty(t, obj.Data)
		assert.Equal(t, int64(0), obj.Size)
	})

	t.Run("delete removes the object", func(t *testing.T) {
		require.NoError(t, store.Put(ctx, BucketOCR, KeyOCRBlocks("doc-1"), []byte("[]"), nil))
		require.NoError(t, store.Delete(ctx, BucketOCR, KeyOCRBlocks("doc-1")))

		obj, err := store.Get(ctx, BucketOCR, KeyOCRBlocks("doc-1"))
		require.NoError(t, err)
		assert.Nil(t, obj)

		// Deleting again is a no-op.
		require.NoError(t, store.Delete(ctx, BucketOCR, KeyOCRBlocks("doc-1")))
	})

	t.Run("same key in different buckets is distinct", func(t *testing.T) {
		require.NoError(t, store.Put(ctx, BucketDocuments, "shared/key", []byte("docs"), nil))
		require.NoError(t, store.Put(ctx, BucketOCR, "shared/key", []byte("ocr"), nil))

		obj, err := store.Get(ctx, BucketDocuments, "shared/key")
		require.NoError(t, err)
		assert.Equal(t, "docs", string(obj.Data))
		obj, err = store.Get(ctx, BucketOCR, "shared/key")
		require.NoError(t, err)
		assert.Equal(t, "ocr", string(obj.Data))
	})
}
