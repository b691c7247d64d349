package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docpipe/docpipe/ent/document"
	"github.com/docpipe/docpipe/pkg/blob"
	"github.com/docpipe/docpipe/pkg/database"
	"github.com/docpipe/docpipe/pkg/kb"
	"github.com/docpipe/docpipe/pkg/models"
	testdb "github.com/docpipe/docpipe/test/database"
)

// recordingIndexer records Remove calls and optionally fails them.
type recordingIndexer struct {
	kb.NoOpIndexer
	removed   []string
	removeErr error
}

func (r *recordingIndexer) Remove(ctx context.Context, orgID, documentID string) error {
	r.removed = append(r.removed, documentID)
	return r.removeErr
}

func setupTestDocumentService(t *testing.T) (*DocumentService, *blob.Store, *recordingIndexer, *database.Client) {
	t.Helper()
	client := testdb.NewTestClient(t)
	blobs := blob.NewStore(client.Client)
	indexer := &recordingIndexer{}
	return NewDocumentService(client.Client, blobs, indexer), blobs, indexer, client
}

func TestDocumentService_Create(t *testing.T) {
	svc, _, _, _ := setupTestDocumentService(t)
	ctx := context.Background()

	t.Run("requires organization", func(t *testing.T) {
		_, err := svc.Create(ctx, CreateDocumentRequest{UserFileName: "a.pdf"})
		assert.True(t, IsValidationError(err))
	})

	t.Run("requires file name", func(t *testing.T) {
		_, err := svc.Create(ctx, CreateDocumentRequest{OrganizationID: "org-1"})
		assert.True(t, IsValidationError(err))
	})

	t.Run("generates an id when absent", func(t *testing.T) {
		doc, err := svc.Create(ctx, CreateDocumentRequest{
			OrganizationID: "org-1",
			UserFileName:   "report.pdf",
		})
		require.NoError(t, err)
		assert.Len(t, doc.ID, 24)
		assert.Equal(t, document.State(models.StateUploaded), doc.State)
		assert.False(t, doc.StateUpdatedAt.IsZero())
	})

	t.Run("honors a caller-provided id", func(t *testing.T) {
		id := models.NewDocumentID()
		doc, err := svc.Create(ctx, CreateDocumentRequest{
			ID:             id,
			OrganizationID: "org-1",
			UserFileName:   "report.pdf",
			StoredFileName: id + ".pdf",
			PDFFileName:    id + ".pdf",
			TagIDs:         []string{"tag-a"},
		})
		require.NoError(t, err)
		assert.Equal(t, id, doc.ID)
		assert.Equal(t, []string{"tag-a"}, doc.TagIds)
	})
}

func TestDocumentService_Get(t *testing.T) {
	svc, _, _, _ := setupTestDocumentService(t)
	ctx := context.Background()

	doc, err := svc.Get(ctx, "missing")
	require.NoError(t, err)
	assert.Nil(t, doc)

	created, err := svc.Create(ctx, CreateDocumentRequest{
		OrganizationID: "org-1", UserFileName: "a.pdf",
	})
	require.NoError(t, err)

	doc, err = svc.Get(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, doc)
	assert.Equal(t, created.ID, doc.ID)
}

func TestDocumentService_List(t *testing.T) {
	svc, _, _, _ := setupTestDocumentService(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := svc.Create(ctx, CreateDocumentRequest{
			OrganizationID: "org-1",
			UserFileName:   fmt.Sprintf("doc-%d.pdf", i),
		})
		require.NoError(t, err)
	}
	_, err := svc.Create(ctx, CreateDocumentRequest{
		OrganizationID: "org-other", UserFileName: "x.pdf",
	})
	require.NoError(t, err)

	docs, total, err := svc.List(ctx, "org-1", 0, 3)
	require.NoError(t, err)
	assert.Equal(t, 5, total)
	assert.Len(t, docs, 3)

	rest, total, err := svc.List(ctx, "org-1", 3, 3)
	require.NoError(t, err)
	assert.Equal(t, 5, total)
	assert.Len(t, rest, 2)

	// Pages do not overlap.
	seen := map[string]bool{}
	for _, d := range append(docs, rest...) {
		assert.False(t, seen[d.ID])
		seen[d.ID] = true
	}
}

func TestDocumentService_UpdateState(t *testing.T) {
	svc, _, _, _ := setupTestDocumentService(t)
	ctx := context.Background()

	doc, err := svc.Create(ctx, CreateDocumentRequest{
		OrganizationID: "org-1", UserFileName: "a.pdf",
	})
	require.NoError(t, err)

	t.Run("unknown document is a no-op", func(t *testing.T) {
		updated, err := svc.UpdateState(ctx, "missing", models.StateOCRProcessing)
		require.NoError(t, err)
		assert.Nil(t, updated)
	})

	t.Run("valid transition", func(t *testing.T) {
		updated, err := svc.UpdateState(ctx, doc.ID, models.StateOCRProcessing)
		require.NoError(t, err)
		require.NotNil(t, updated)
		assert.Equal(t, document.State(models.StateOCRProcessing), updated.State)
		assert.True(t, updated.StateUpdatedAt.After(doc.StateUpdatedAt) ||
			updated.StateUpdatedAt.Equal(doc.StateUpdatedAt))
	})

	t.Run("invalid transition", func(t *testing.T) {
		_, err := svc.UpdateState(ctx, doc.ID, models.StateUploaded)
		assert.True(t, errors.Is(err, ErrInvalidTransition))
	})
}

func TestDocumentService_Delete(t *testing.T) {
	svc, blobs, indexer, client := setupTestDocumentService(t)
	ctx := context.Background()

	t.Run("unknown document is a no-op", func(t *testing.T) {
		require.NoError(t, svc.Delete(ctx, "missing"))
	})

	doc, err := svc.Create(ctx, CreateDocumentRequest{
		OrganizationID: "org-1", UserFileName: "a.pdf",
	})
	require.NoError(t, err)

	require.NoError(t, blobs.Put(ctx, blob.BucketDocuments, blob.KeyOriginal(doc.ID), []byte("%PDF-"), nil))
	require.NoError(t, blobs.Put(ctx, blob.BucketOCR, blob.KeyOCRText(doc.ID), []byte("hello"), nil))

	require.NoError(t, svc.Delete(ctx, doc.ID))

	gone, err := svc.Get(ctx, doc.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)

	obj, err := blobs.Get(ctx, blob.BucketDocuments, blob.KeyOriginal(doc.ID))
	require.NoError(t, err)
	assert.Nil(t, obj)

	assert.Equal(t, []string{doc.ID}, indexer.removed)

	n, err := client.Document.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestDocumentService_DeleteSurvivesKBFailure(t *testing.T) {
	svc, _, indexer, _ := setupTestDocumentService(t)
	ctx := context.Background()

	indexer.removeErr = errors.New("kb unreachable")

	doc, err := svc.Create(ctx, CreateDocumentRequest{
		OrganizationID: "org-1", UserFileName: "a.pdf",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, doc.ID))

	gone, err := svc.Get(ctx, doc.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)
}
