package pipeline

import (
	"context"
	"errors"
	"log/slog"

	"github.com/docpipe/docpipe/ent"
	"github.com/docpipe/docpipe/pkg/blob"
	"github.com/docpipe/docpipe/pkg/kb"
	"github.com/docpipe/docpipe/pkg/models"
	"github.com/docpipe/docpipe/pkg/queue"
	"github.com/docpipe/docpipe/pkg/services"
	"github.com/docpipe/docpipe/pkg/webhook"
)

// chunkRunes bounds the size of one knowledge-base chunk.
const chunkRunes = 2000

// KBIndexHandler pushes a document's text into the knowledge base. The
// stage runs beside llm and never gates it.
type KBIndexHandler struct {
	deps *Deps
}

// Handle processes one kb_index message.
func (h *KBIndexHandler) Handle(ctx context.Context, msg *queue.Message) error {
	task, err := models.DecodeDocumentTask(msg.Payload)
	if err != nil {
		slog.Warn("Skipping undecodable kb_index message", "msg_id", msg.ID, "error", err)
		return nil
	}
	log := slog.With("document_id", task.DocumentID, "stage", "kb_index")

	doc, err := h.deps.Docs.Get(ctx, task.DocumentID)
	if err != nil {
		return err
	}
	if doc == nil {
		log.Info("Document gone, dropping kb_index message")
		return nil
	}

	if _, err := h.deps.Docs.UpdateState(ctx, doc.ID, models.StateKBIndexProcessing); err != nil {
		if errors.Is(err, services.ErrInvalidTransition) {
			log.Info("Document not ready for kb_index stage, dropping message")
			return nil
		}
		return err
	}

	text, err := h.documentText(ctx, doc.ID)
	if err != nil {
		return h.fail(ctx, doc, err.Error())
	}

	chunks := chunkText(doc.ID, text)
	if err := h.deps.KB.Index(ctx, doc.OrganizationID, chunks); err != nil {
		return h.fail(ctx, doc, err.Error())
	}

	if _, err := h.deps.Docs.UpdateState(ctx, doc.ID, models.StateKBIndexCompleted); err != nil {
		if !errors.Is(err, services.ErrInvalidTransition) {
			return err
		}
	}
	log.Info("Document indexed", "chunks", len(chunks))
	return nil
}

func (h *KBIndexHandler) documentText(ctx context.Context, documentID string) (string, error) {
	obj, err := h.deps.Blobs.Get(ctx, blob.BucketOCR, blob.KeyOCRText(documentID))
	if err != nil {
		return "", err
	}
	if obj == nil {
		obj, err = h.deps.Blobs.Get(ctx, blob.BucketDocuments, blob.KeyOriginal(documentID))
		if err != nil {
			return "", err
		}
	}
	if obj == nil {
		return "", errors.New("no text available for document")
	}
	return string(obj.Data), nil
}

func (h *KBIndexHandler) fail(ctx context.Context, doc *ent.Document, reason string) error {
	slog.Error("KB index stage failed", "document_id", doc.ID, "reason", reason)

	if _, err := h.deps.Docs.UpdateState(ctx, doc.ID, models.StateKBIndexFailed); err != nil {
		slog.Error("Failed to mark document kb_index_failed", "document_id", doc.ID, "error", err)
	}
	if _, err := h.deps.Webhooks.Publish(ctx, doc.OrganizationID, webhook.EventDocumentError, doc.ID,
		map[string]interface{}{"stage": "kb_index", "message": reason}); err != nil {
		slog.Error("Failed to publish document.error", "document_id", doc.ID, "error", err)
	}
	return nil
}

// chunkText slices text into rune-bounded chunks.
func chunkText(documentID, text string) []kb.Chunk {
	runes := []rune(text)
	var chunks []kb.Chunk
	for off := 0; off < len(runes); off += chunkRunes {
		end := off + chunkRunes
		if end > len(runes) {
			end = len(runes)
		}
		chunks = append(chunks, kb.Chunk{
			DocumentID: documentID,
			Seq:        len(chunks),
			Text:       string(runes[off:end]),
		})
	}
	return chunks
}
