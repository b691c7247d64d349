package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/docpipe/docpipe/ent"
	"github.com/docpipe/docpipe/pkg/accounting"
	"github.com/docpipe/docpipe/pkg/blob"
	"github.com/docpipe/docpipe/pkg/models"
	"github.com/docpipe/docpipe/pkg/queue"
	"github.com/docpipe/docpipe/pkg/services"
	"github.com/docpipe/docpipe/pkg/webhook"
)

// passthroughExts are text-native formats that skip the OCR call; their
// content goes to the downstream stages as-is.
var passthroughExts = map[string]bool{
	".csv":  true,
	".tsv":  true,
	".xlsx": true,
	".json": true,
	".txt":  true,
	".md":   true,
}

// Blob fetch retry against the upload-commit race: the ocr message can
// arrive before the uploader's blob transaction commits.
const (
	blobFetchAttempts = 5
	blobFetchBase     = time.Second
)

// OCRHandler runs the OCR stage for one document.
type OCRHandler struct {
	deps *Deps
}

// Handle processes one ocr message. Errors never cross the message
// boundary: failures land in the document row, the error event, and the
// dead-letter queue.
func (h *OCRHandler) Handle(ctx context.Context, msg *queue.Message) error {
	task, err := models.DecodeDocumentTask(msg.Payload)
	if err != nil {
		slog.Warn("Skipping undecodable ocr message", "msg_id", msg.ID, "error", err)
		return nil
	}
	log := slog.With("document_id", task.DocumentID, "stage", "ocr")

	doc, err := h.deps.Docs.Get(ctx, task.DocumentID)
	if err != nil {
		return err
	}
	if doc == nil {
		log.Info("Document gone, dropping ocr message")
		return nil
	}

	ext := strings.ToLower(filepath.Ext(doc.UserFileName))
	if passthroughExts[ext] {
		log.Info("Text-native format, skipping OCR", "ext", ext)
		return h.succeed(ctx, doc, task)
	}

	if _, err := h.deps.Docs.UpdateState(ctx, doc.ID, models.StateOCRProcessing); err != nil {
		if errors.Is(err, services.ErrInvalidTransition) {
			log.Info("Document past the ocr stage, dropping message")
			return nil
		}
		return err
	}

	if !task.Force {
		existing, err := h.deps.Blobs.Get(ctx, blob.BucketOCR, blob.KeyOCRBlocks(doc.ID))
		if err != nil {
			return err
		}
		if existing != nil {
			log.Info("OCR artifact cached, skipping provider call")
			return h.succeed(ctx, doc, task)
		}
	}

	pdf, err := h.fetchOriginal(ctx, doc.ID)
	if err != nil {
		return h.fail(ctx, doc, msg, fmt.Sprintf("fetch original: %v", err))
	}

	result, err := h.deps.OCR.Process(ctx, pdf, doc.UserFileName)
	if err != nil {
		return h.fail(ctx, doc, msg, fmt.Sprintf("ocr provider: %v", err))
	}

	blocksJSON, err := json.Marshal(result.Blocks)
	if err != nil {
		return h.fail(ctx, doc, msg, fmt.Sprintf("encode blocks: %v", err))
	}
	flat := strings.Join(result.Pages, "\n\n")

	if err := h.deps.Blobs.Put(ctx, blob.BucketOCR, blob.KeyOCRBlocks(doc.ID), blocksJSON,
		map[string]string{"content-type": "application/json"}); err != nil {
		return h.fail(ctx, doc, msg, fmt.Sprintf("store blocks: %v", err))
	}
	if err := h.deps.Blobs.Put(ctx, blob.BucketOCR, blob.KeyOCRText(doc.ID), []byte(flat),
		map[string]string{"content-type": "text/plain"}); err != nil {
		return h.fail(ctx, doc, msg, fmt.Sprintf("store text: %v", err))
	}

	if err := h.deps.Accounting.Record(ctx, accounting.Usage{
		OrganizationID: doc.OrganizationID,
		DocumentID:     doc.ID,
		Operation:      "ocr",
		Pages:          len(result.Pages),
	}); err != nil {
		log.Warn("Failed to record ocr usage", "error", err)
	}

	return h.succeed(ctx, doc, task)
}

// fetchOriginal reads the uploaded PDF, retrying while the upload
// transaction may still be committing.
func (h *OCRHandler) fetchOriginal(ctx context.Context, documentID string) ([]byte, error) {
	var lastErr error
	for attempt := 1; attempt <= blobFetchAttempts; attempt++ {
		obj, err := h.deps.Blobs.Get(ctx, blob.BucketDocuments, blob.KeyOriginal(documentID))
		if err == nil && obj != nil {
			return obj.Data, nil
		}
		if err != nil {
			lastErr = err
		} else {
			lastErr = fmt.Errorf("original blob not found")
		}
		if attempt < blobFetchAttempts {
			delay := blobFetchBase << (attempt - 1)
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(delay):
			}
		}
	}
	return nil, lastErr
}

// succeed marks the stage complete and fans out to the llm and kb_index
// stages.
func (h *OCRHandler) succeed(ctx context.Context, doc *ent.Document, task models.DocumentTask) error {
	if _, err := h.deps.Docs.UpdateState(ctx, doc.ID, models.StateOCRCompleted); err != nil {
		if errors.Is(err, services.ErrInvalidTransition) {
			slog.Info("Document already past ocr_completed", "document_id", doc.ID)
		} else {
			return err
		}
	}

	next := models.DocumentTask{DocumentID: doc.ID, Force: task.Force}.Payload()
	if _, err := h.deps.Queue.Send(ctx, models.QueueLLM, next); err != nil {
		return fmt.Errorf("failed to enqueue llm: %w", err)
	}
	if _, err := h.deps.Queue.Send(ctx, models.QueueKBIndex, next); err != nil {
		return fmt.Errorf("failed to enqueue kb_index: %w", err)
	}
	return nil
}

// fail marks the document ocr_failed, emits the error event, and dead
// letters the message payload.
func (h *OCRHandler) fail(ctx context.Context, doc *ent.Document, msg *queue.Message, reason string) error {
	slog.Error("OCR stage failed", "document_id", doc.ID, "reason", reason)

	if _, err := h.deps.Docs.UpdateState(ctx, doc.ID, models.StateOCRFailed); err != nil {
		slog.Error("Failed to mark document ocr_failed", "document_id", doc.ID, "error", err)
	}

	if _, err := h.deps.Webhooks.Publish(ctx, doc.OrganizationID, webhook.EventDocumentError, doc.ID,
		map[string]interface{}{"stage": "ocr", "message": reason}); err != nil {
		slog.Error("Failed to publish document.error", "document_id", doc.ID, "error", err)
	}

	dead := make(map[string]interface{}, len(msg.Payload)+1)
	for k, v := range msg.Payload {
		dead[k] = v
	}
	dead["error"] = reason
	if _, err := h.deps.Queue.Send(ctx, models.QueueOCRErr, dead); err != nil {
		slog.Error("Failed to dead-letter ocr message", "document_id", doc.ID, "error", err)
	}
	return nil
}
