package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/docpipe/docpipe/ent"
	"github.com/docpipe/docpipe/ent/document"
	"github.com/docpipe/docpipe/ent/webhookdelivery"
	"github.com/docpipe/docpipe/pkg/blob"
	"github.com/docpipe/docpipe/pkg/kb"
	"github.com/docpipe/docpipe/pkg/models"
)

// DocumentService manages document rows and their derived artifacts.
type DocumentService struct {
	client *ent.Client
	blobs  *blob.Store
	kb     kb.Indexer
}

// NewDocumentService creates a new DocumentService.
func NewDocumentService(client *ent.Client, blobs *blob.Store, indexer kb.Indexer) *DocumentService {
	return &DocumentService{client: client, blobs: blobs, kb: indexer}
}

// CreateDocumentRequest carries the fields of a new document.
type CreateDocumentRequest struct {
	// ID is optional; a fresh document id is generated when empty.
	ID             string
	OrganizationID string
	UserFileName   string
	StoredFileName string
	PDFFileName    string
	TagIDs         []string
}

// Create inserts a document in the uploaded state and returns it.
func (s *DocumentService) Create(ctx context.Context, req CreateDocumentRequest) (*ent.Document, error) {
	if req.OrganizationID == "" {
		return nil, NewValidationError("organization_id", "required")
	}
	if req.UserFileName == "" {
		return nil, NewValidationError("user_file_name", "required")
	}

	id := req.ID
	if id == "" {
		id = models.NewDocumentID()
	}

	now := time.Now().UTC()
	builder := s.client.Document.Create().
		SetID(id).
		SetOrganizationID(req.OrganizationID).
		SetUserFileName(req.UserFileName).
		SetStoredFileName(req.StoredFileName).
		SetPdfFileName(req.PDFFileName).
		SetState(document.State(models.StateUploaded)).
		SetStateUpdatedAt(now).
		SetUploadDate(now)
	if req.TagIDs != nil {
		builder = builder.SetTagIds(req.TagIDs)
	}

	doc, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create document: %w", err)
	}
	return doc, nil
}

// Get returns the document or nil when missing. Missing is not an error.
func (s *DocumentService) Get(ctx context.Context, id string) (*ent.Document, error) {
	doc, err := s.client.Document.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get document: %w", err)
	}
	return doc, nil
}

// List returns one page of an organization's documents ordered by upload
// date ascending, plus the total count.
func (s *DocumentService) List(ctx context.Context, orgID string, skip, limit int) ([]*ent.Document, int, error) {
	base := s.client.Document.Query().
		Where(document.OrganizationIDEQ(orgID))

	total, err := base.Clone().Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count documents: %w", err)
	}

	q := base.Order(ent.Asc(document.FieldUploadDate), ent.Asc(document.FieldID))
	if skip > 0 {
		q = q.Offset(skip)
	}
	if limit > 0 {
		q = q.Limit(limit)
	}
	docs, err := q.All(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list documents: %w", err)
	}
	return docs, total, nil
}

// UpdateState moves a document along the pipeline DAG, stamping
// state_updated_at (UTC). Unknown ids are a no-op returning nil;
// transitions against the DAG return ErrInvalidTransition.
func (s *DocumentService) UpdateState(ctx context.Context, id, state string) (*ent.Document, error) {
	doc, err := s.client.Document.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get document: %w", err)
	}

	from := string(doc.State)
	if !models.CanTransition(from, state) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, state)
	}

	updated, err := doc.Update().
		SetState(document.State(state)).
		SetStateUpdatedAt(time.Now().UTC()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update document state: %w", err)
	}
	return updated, nil
}

// Delete removes a document and everything derived from it: blobs,
// extractions (FK cascade), delivery history, and the knowledge-base
// entries. No-op when the document is unknown.
func (s *DocumentService) Delete(ctx context.Context, id string) error {
	doc, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if doc == nil {
		return nil
	}

	if err := s.blobs.Delete(ctx, blob.BucketDocuments, blob.KeyOriginal(id)); err != nil {
		return fmt.Errorf("failed to delete original blob: %w", err)
	}
	if err := s.blobs.Delete(ctx, blob.BucketOCR, blob.KeyOCRBlocks(id)); err != nil {
		return fmt.Errorf("failed to delete ocr blocks blob: %w", err)
	}
	if err := s.blobs.Delete(ctx, blob.BucketOCR, blob.KeyOCRText(id)); err != nil {
		return fmt.Errorf("failed to delete ocr text blob: %w", err)
	}

	if _, err := s.client.WebhookDelivery.Delete().
		Where(webhookdelivery.DocumentIDEQ(id)).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete delivery history: %w", err)
	}

	// Removal from the knowledge base is best-effort: the document row
	// must go even when the KB is unreachable.
	if err := s.kb.Remove(ctx, doc.OrganizationID, id); err != nil {
		slog.Warn("Failed to remove document from knowledge base",
			"document_id", id, "error", err)
	}

	if err := s.client.Document.DeleteOneID(id).Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return nil
		}
		return fmt.Errorf("failed to delete document: %w", err)
	}
	return nil
}
