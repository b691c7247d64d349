package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqljson"
	"github.com/google/uuid"

	"github.com/docpipe/docpipe/ent"
	"github.com/docpipe/docpipe/ent/extraction"
	"github.com/docpipe/docpipe/ent/predicate"
	"github.com/docpipe/docpipe/ent/prompt"
	"github.com/docpipe/docpipe/pkg/accounting"
	"github.com/docpipe/docpipe/pkg/blob"
	"github.com/docpipe/docpipe/pkg/models"
	"github.com/docpipe/docpipe/pkg/queue"
	"github.com/docpipe/docpipe/pkg/services"
	"github.com/docpipe/docpipe/pkg/webhook"
)

// defaultPromptName is always resolved first, ahead of tag-bound prompts.
const defaultPromptName = "default"

// LLMHandler runs structured extraction for one document.
type LLMHandler struct {
	deps *Deps
}

// Handle processes one llm message.
func (h *LLMHandler) Handle(ctx context.Context, msg *queue.Message) error {
	task, err := models.DecodeDocumentTask(msg.Payload)
	if err != nil {
		slog.Warn("Skipping undecodable llm message", "msg_id", msg.ID, "error", err)
		return nil
	}
	log := slog.With("document_id", task.DocumentID, "stage", "llm")

	doc, err := h.deps.Docs.Get(ctx, task.DocumentID)
	if err != nil {
		return err
	}
	if doc == nil {
		log.Info("Document gone, dropping llm message")
		return nil
	}

	if _, err := h.deps.Docs.UpdateState(ctx, doc.ID, models.StateLLMProcessing); err != nil {
		if errors.Is(err, services.ErrInvalidTransition) {
			log.Info("Document not ready for llm stage, dropping message")
			return nil
		}
		return err
	}

	text, err := h.documentText(ctx, doc.ID)
	if err != nil {
		return h.fail(ctx, doc, err.Error())
	}

	prompts, err := h.resolvePrompts(ctx, doc.TagIds)
	if err != nil {
		return h.fail(ctx, doc, fmt.Sprintf("resolve prompts: %v", err))
	}
	if len(prompts) == 0 {
		log.Info("No prompts bound, completing llm stage")
		return h.succeed(ctx, doc, nil)
	}

	ranIDs := make([]string, 0, len(prompts))
	for _, p := range prompts {
		skipped, err := h.runPrompt(ctx, doc, p, text, task.Force)
		if err != nil {
			return h.fail(ctx, doc, fmt.Sprintf("prompt %s: %v", p.ID, err))
		}
		if !skipped {
			ranIDs = append(ranIDs, p.ID)
		}
	}

	if len(ranIDs) > 0 {
		if err := h.deps.Accounting.Record(ctx, accounting.Usage{
			OrganizationID: doc.OrganizationID,
			DocumentID:     doc.ID,
			Operation:      "llm",
			Tokens:         len(text) / 4 * len(ranIDs),
		}); err != nil {
			log.Warn("Failed to record llm usage", "error", err)
		}
	}

	return h.succeed(ctx, doc, ranIDs)
}

// documentText loads the OCR flat text, falling back to the original
// blob for text-native formats that bypassed OCR.
func (h *LLMHandler) documentText(ctx context.Context, documentID string) (string, error) {
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
		return "", fmt.Errorf("no text available for document")
	}
	return string(obj.Data), nil
}

// resolvePrompts returns the prompt revisions to run: the latest
// revision named "default" first, then the latest revision of each
// prompt bound to one of the document's tags.
func (h *LLMHandler) resolvePrompts(ctx context.Context, tagIDs []string) ([]*ent.Prompt, error) {
	var out []*ent.Prompt
	seen := make(map[string]bool)

	def, err := h.deps.Client.Prompt.Query().
		Where(prompt.NameEQ(defaultPromptName)).
		Order(ent.Desc(prompt.FieldCreatedAt)).
		First(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to query default prompt: %w", err)
	}
	if def != nil {
		out = append(out, def)
		seen[def.Name] = true
	}

	for _, tag := range tagIDs {
		bound, err := h.deps.Client.Prompt.Query().
			Where(predicate.Prompt(hasTagPredicate(tag))).
			Order(ent.Desc(prompt.FieldCreatedAt)).
			All(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to query prompts for tag %s: %w", tag, err)
		}
		// All() is newest-first, so the first hit per name is the
		// latest revision.
		for _, p := range bound {
			if seen[p.Name] {
				continue
			}
			seen[p.Name] = true
			out = append(out, p)
		}
	}
	return out, nil
}

// runPrompt executes one prompt revision against the document unless a
// cached extraction satisfies it. Returns whether the run was skipped.
func (h *LLMHandler) runPrompt(ctx context.Context, doc *ent.Document, p *ent.Prompt, text string, force bool) (bool, error) {
	if !force {
		exists, err := h.deps.Client.Extraction.Query().
			Where(
				extraction.DocumentIDEQ(doc.ID),
				extraction.PromptRevIDEQ(p.ID),
			).
			Exist(ctx)
		if err != nil {
			return false, fmt.Errorf("failed to check cached extraction: %w", err)
		}
		if exists {
			return true, nil
		}
	}

	completion, err := h.deps.LLM.Complete(ctx, p.Content+"\n\n"+text, p.Model)
	if err != nil {
		return false, err
	}

	result, err := parseExtraction(completion)
	if err != nil {
		return false, err
	}

	err = h.deps.Client.Extraction.Create().
		SetID(uuid.New().String()).
		SetDocumentID(doc.ID).
		SetPromptRevID(p.ID).
		SetResult(result).
		OnConflict(
			sql.ConflictColumns(extraction.FieldDocumentID, extraction.FieldPromptRevID),
		).
		UpdateNewValues().
		Exec(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to store extraction: %w", err)
	}
	return false, nil
}

// parseExtraction decodes the completion as a JSON object, tolerating a
// markdown code fence around it.
func parseExtraction(completion string) (map[string]interface{}, error) {
	trimmed := strings.TrimSpace(completion)
	if strings.HasPrefix(trimmed, "```") {
		trimmed = strings.TrimPrefix(trimmed, "```json")
		trimmed = strings.TrimPrefix(trimmed, "```")
		trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")
		trimmed = strings.TrimSpace(trimmed)
	}

	var result map[string]interface{}
	if err := json.Unmarshal([]byte(trimmed), &result); err != nil {
		return nil, fmt.Errorf("completion is not a JSON object: %w", err)
	}
	return result, nil
}

// succeed marks the stage complete and emits llm.completed carrying the
// prompt revision ids that actually ran.
func (h *LLMHandler) succeed(ctx context.Context, doc *ent.Document, promptIDs []string) error {
	if _, err := h.deps.Docs.UpdateState(ctx, doc.ID, models.StateLLMCompleted); err != nil {
		if !errors.Is(err, services.ErrInvalidTransition) {
			return err
		}
	}
	if promptIDs == nil {
		promptIDs = []string{}
	}
	if _, err := h.deps.Webhooks.Publish(ctx, doc.OrganizationID, webhook.EventLLMCompleted, doc.ID,
		map[string]interface{}{"prompt_ids": promptIDs}); err != nil {
		slog.Error("Failed to publish llm.completed", "document_id", doc.ID, "error", err)
	}
	return nil
}

func (h *LLMHandler) fail(ctx context.Context, doc *ent.Document, reason string) error {
	slog.Error("LLM stage failed", "document_id", doc.ID, "reason", reason)

	if _, err := h.deps.Docs.UpdateState(ctx, doc.ID, models.StateLLMFailed); err != nil {
		slog.Error("Failed to mark document llm_failed", "document_id", doc.ID, "error", err)
	}
	if _, err := h.deps.Webhooks.Publish(ctx, doc.OrganizationID, webhook.EventLLMError, doc.ID,
		map[string]interface{}{"message": reason}); err != nil {
		slog.Error("Failed to publish llm.error", "document_id", doc.ID, "error", err)
	}
	return nil
}

// hasTagPredicate matches prompts whose tag_ids JSON array contains the
// tag.
func hasTagPredicate(tag string) func(*sql.Selector) {
	return func(s *sql.Selector) {
		s.Where(sqljson.ValueContains(prompt.FieldTagIds, tag))
	}
}
