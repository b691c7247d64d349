// Package pipeline contains the queue handlers that move documents
// through OCR, extraction, knowledge-base indexing, and webhook
// delivery. Every dependency a handler touches arrives through Deps;
// there are no package globals, so tests wire fakes freely.
package pipeline

import (
	"time"

	"github.com/docpipe/docpipe/ent"
	"github.com/docpipe/docpipe/pkg/accounting"
	"github.com/docpipe/docpipe/pkg/blob"
	"github.com/docpipe/docpipe/pkg/kb"
	"github.com/docpipe/docpipe/pkg/llm"
	"github.com/docpipe/docpipe/pkg/models"
	"github.com/docpipe/docpipe/pkg/ocr"
	"github.com/docpipe/docpipe/pkg/queue"
	"github.com/docpipe/docpipe/pkg/services"
	"github.com/docpipe/docpipe/pkg/webhook"
)

// Deps carries everything the handlers need.
type Deps struct {
	Client     *ent.Client
	Docs       *services.DocumentService
	Blobs      *blob.Store
	Queue      *queue.Service
	OCR        ocr.Provider
	LLM        llm.Completer
	KB         kb.Indexer
	Accounting accounting.Recorder
	Webhooks   *webhook.Engine

	// Clock is stubbed in tests; nil means time.Now.
	Clock func() time.Time
}

func (d *Deps) now() time.Time {
	if d.Clock != nil {
		return d.Clock()
	}
	return time.Now()
}

// Handlers binds each pipeline queue to its handler. The ocr_err queue
// has no in-process consumer: it is a dead-letter queue whose messages
// stay pending for out-of-band inspection and requeue.
func (d *Deps) Handlers() map[string]queue.Handler {
	return map[string]queue.Handler{
		models.QueueOCR:     &OCRHandler{deps: d},
		models.QueueLLM:     &LLMHandler{deps: d},
		models.QueueKBIndex: &KBIndexHandler{deps: d},
		models.QueueWebhook: &WebhookHandler{deps: d},
	}
}
