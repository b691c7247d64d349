package models

import (
	"errors"
	"fmt"
)

// Queue names used by the pipeline.
const (
	QueueOCR     = "ocr"
	QueueOCRErr  = "ocr_err"
	QueueLLM     = "llm"
	QueueKBIndex = "kb_index"
	QueueWebhook = "webhook"
)

// Message payload kinds. Payloads are stored as JSON objects with a
// "kind" discriminator so unknown variants can be skipped safely.
const (
	KindDocument = "document"
	KindDelivery = "delivery"
)

// ErrUnknownKind indicates a payload whose discriminator this build does
// not understand. Handlers treat such messages as no-op completions.
var ErrUnknownKind = errors.New("unknown message kind")

// DocumentTask is the payload of ocr, ocr_err, llm, and kb_index messages.
type DocumentTask struct {
	DocumentID string
	// Force re-runs the stage even when a cached artifact exists.
	Force bool
}

// Payload encodes the task as a queue message payload.
func (t DocumentTask) Payload() map[string]interface{} {
	m := map[string]interface{}{
		"kind":        KindDocument,
		"document_id": t.DocumentID,
	}
	if t.Force {
		m["force"] = true
	}
	return m
}

// DeliveryTask is the payload of webhook messages.
type DeliveryTask struct {
	DeliveryID string
}

// Payload encodes the task as a queue message payload.
func (t DeliveryTask) Payload() map[string]interface{} {
	return map[string]interface{}{
		"kind":        KindDelivery,
		"delivery_id": t.DeliveryID,
	}
}

// DecodeDocumentTask extracts a DocumentTask from a message payload.
func DecodeDocumentTask(m map[string]interface{}) (DocumentTask, error) {
	if err := checkKind(m, KindDocument); err != nil {
		return DocumentTask{}, err
	}
	id, _ := m["document_id"].(string)
	if id == "" {
		return DocumentTask{}, fmt.Errorf("document task missing document_id")
	}
	force, _ := m["force"].(bool)
	return DocumentTask{DocumentID: id, Force: force}, nil
}

// DecodeDeliveryTask extracts a DeliveryTask from a message payload.
func DecodeDeliveryTask(m map[string]interface{}) (DeliveryTask, error) {
	if err := checkKind(m, KindDelivery); err != nil {
		return DeliveryTask{}, err
	}
	id, _ := m["delivery_id"].(string)
	if id == "" {
		return DeliveryTask{}, fmt.Errorf("delivery task missing delivery_id")
	}
	return DeliveryTask{DeliveryID: id}, nil
}

func checkKind(m map[string]interface{}, want string) error {
	kind, _ := m["kind"].(string)
	if kind != want {
		return fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	return nil
}
