package pipeline

import (
	"context"
	"log/slog"

	"github.com/docpipe/docpipe/pkg/models"
	"github.com/docpipe/docpipe/pkg/queue"
)

// WebhookHandler executes one delivery attempt per webhook message.
type WebhookHandler struct {
	deps *Deps
}

// Handle claims the delivery named by the message and runs one attempt.
// A nil claim means the delivery is gone, already claimed, or not due —
// all cases where this message has nothing to do.
func (h *WebhookHandler) Handle(ctx context.Context, msg *queue.Message) error {
	task, err := models.DecodeDeliveryTask(msg.Payload)
	if err != nil {
		slog.Warn("Skipping undecodable webhook message", "msg_id", msg.ID, "error", err)
		return nil
	}

	d, err := h.deps.Webhooks.ClaimByID(ctx, task.DeliveryID)
	if err != nil {
		return err
	}
	if d == nil {
		return nil
	}

	if err := h.deps.Webhooks.Send(ctx, d); err != nil {
		slog.Error("Failed to record delivery attempt", "delivery_id", d.ID, "error", err)
	}
	return nil
}
