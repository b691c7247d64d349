package pipeline

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docpipe/docpipe/ent"
	"github.com/docpipe/docpipe/ent/document"
	"github.com/docpipe/docpipe/ent/extraction"
	"github.com/docpipe/docpipe/ent/webhookdelivery"
	"github.com/docpipe/docpipe/pkg/accounting"
	"github.com/docpipe/docpipe/pkg/blob"
	"github.com/docpipe/docpipe/pkg/config"
	"github.com/docpipe/docpipe/pkg/database"
	"github.com/docpipe/docpipe/pkg/kb"
	"github.com/docpipe/docpipe/pkg/models"
	"github.com/docpipe/docpipe/pkg/ocr"
	"github.com/docpipe/docpipe/pkg/queue"
	"github.com/docpipe/docpipe/pkg/secrets"
	"github.com/docpipe/docpipe/pkg/services"
	"github.com/docpipe/docpipe/pkg/webhook"
	testdb "github.com/docpipe/docpipe/test/database"
)

type fakeOCR struct {
	result ocr.Result
	err    error
	calls  int
}

func (f *fakeOCR) Process(ctx context.Context, pdf []byte, fileName string) (*ocr.Result, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return &f.result, nil
}

type fakeLLM struct {
	completion string
	err        error
	calls      int
}

func (f *fakeLLM) Complete(ctx context.Context, prompt, model string) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.completion, nil
}

type fakeKB struct {
	kb.NoOpIndexer
	indexed  []kb.Chunk
	indexErr error
}

func (f *fakeKB) Index(ctx context.Context, orgID string, chunks []kb.Chunk) error {
	if f.indexErr != nil {
		return f.indexErr
	}
	f.indexed = append(f.indexed, chunks...)
	return nil
}

type testPipeline struct {
	deps    *Deps
	client  *database.Client
	configs *services.WebhookService
	ocr     *fakeOCR
	llm     *fakeLLM
	kb      *fakeKB
}

// enableWebhook points org-1's webhook at a black-hole URL so handlers
// record deliveries the tests can inspect.
func (tp *testPipeline) enableWebhook(t *testing.T) {
	t.Helper()
	_, err := tp.configs.Upsert(context.Background(), "org-1", services.UpsertWebhookRequest{
		Enabled: true,
		URL:     "https://receiver.test/hook",
	})
	require.NoError(t, err)
}

// lastDelivery returns the single recorded delivery of the given event
// type and its data object.
func (tp *testPipeline) lastDelivery(t *testing.T, eventType string) (*ent.WebhookDelivery, map[string]interface{}) {
	t.Helper()
	d, err := tp.client.WebhookDelivery.Query().
		Where(webhookdelivery.EventTypeEQ(eventType)).
		Only(context.Background())
	require.NoError(t, err)
	data, ok := d.Payload["data"].(map[string]interface{})
	require.True(t, ok)
	return d, data
}

func setupTestPipeline(t *testing.T) *testPipeline {
	t.Helper()
	client := testdb.NewTestClient(t)

	cipher, err := secrets.NewCipher("test-master-secret")
	require.NoError(t, err)

	blobs := blob.NewStore(client.Client)
	q := queue.NewService(client.Client, client.DB(), nil, 50*time.Millisecond)
	fkb := &fakeKB{}
	docs := services.NewDocumentService(client.Client, blobs, fkb)
	configs := services.NewWebhookService(client.Client, cipher)
	engine := webhook.NewEngine(client.Client, q, configs, cipher, config.DefaultWebhookConfig())

	focr := &fakeOCR{result: ocr.Result{
		Blocks: []ocr.Block{{Page: 1, Text: "hello", Conf: 0.99}},
		Pages:  []string{"hello world"},
	}}
	fllm := &fakeLLM{completion: `{"total": 42}`}

	deps := &Deps{
		Client:     client.Client,
		Docs:       docs,
		Blobs:      blobs,
		Queue:      q,
		OCR:        focr,
		LLM:        fllm,
		KB:         fkb,
		Accounting: accounting.NoOpRecorder{},
		Webhooks:   engine,
	}
	return &testPipeline{deps: deps, client: client, configs: configs, ocr: focr, llm: fllm, kb: fkb}
}

func (tp *testPipeline) createDocument(t *testing.T, fileName string, tagIDs ...string) *services.CreateDocumentRequest {
	t.Helper()
	id := models.NewDocumentID()
	req := services.CreateDocumentRequest{
		ID:             id,
		OrganizationID: "org-1",
		UserFileName:   fileName,
		StoredFileName: id + ".pdf",
		PDFFileName:    id + ".pdf",
		TagIDs:         tagIDs,
	}
	_, err := tp.deps.Docs.Create(context.Background(), req)
	require.NoError(t, err)
	return &req
}

func (tp *testPipeline) state(t *testing.T, id string) string {
	t.Helper()
	doc, err := tp.client.Document.Get(context.Background(), id)
	require.NoError(t, err)
	return string(doc.State)
}

func docMessage(id string, force bool) *queue.Message {
	return &queue.Message{
		ID:      "msg-1",
		Payload: models.DocumentTask{DocumentID: id, Force: force}.Payload(),
	}
}

func TestOCRHandler(t *testing.T) {
	ctx := context.Background()

	t.Run("processes a pdf and fans out", func(t *testing.T) {
		tp := setupTestPipeline(t)
		req := tp.createDocument(t, "report.pdf")
		require.NoError(t, tp.deps.Blobs.Put(ctx, blob.BucketDocuments, blob.KeyOriginal(req.ID), []byte("%PDF-"), nil))

		h := &OCRHandler{deps: tp.deps}
		require.NoError(t, h.Handle(ctx, docMessage(req.ID, false)))

		assert.Equal(t, 1, tp.ocr.calls)
		assert.Equal(t, models.StateOCRCompleted, tp.state(t, req.ID))

		text, err := tp.deps.Blobs.Get(ctx, blob.BucketOCR, blob.KeyOCRText(req.ID))
		require.NoError(t, err)
		require.NotNil(t, text)
		assert.Equal(t, "hello world", string(text.Data))

		blocks, err := tp.deps.Blobs.Get(ctx, blob.BucketOCR, blob.KeyOCRBlocks(req.ID))
		require.NoError(t, err)
		require.NotNil(t, blocks)

		// One message on each downstream queue.
		llmMsg, err := tp.deps.Queue.Recv(ctx, models.QueueLLM)
		require.NoError(t, err)
		require.NotNil(t, llmMsg)
		kbMsg, err := tp.deps.Queue.Recv(ctx, models.QueueKBIndex)
		require.NoError(t, err)
		require.NotNil(t, kbMsg)
	})

	t.Run("text-native format skips the provider", func(t *testing.T) {
		tp := setupTestPipeline(t)
		req := tp.createDocument(t, "data.csv")

		h := &OCRHandler{deps: tp.deps}
		require.NoError(t, h.Handle(ctx, docMessage(req.ID, false)))

		assert.Equal(t, 0, tp.ocr.calls)
		assert.Equal(t, models.StateOCRCompleted, tp.state(t, req.ID))
	})

	t.Run("cached artifact skips the provider", func(t *testing.T) {
		tp := setupTestPipeline(t)
		req := tp.createDocument(t, "report.pdf")
		require.NoError(t, tp.deps.Blobs.Put(ctx, blob.BucketOCR, blob.KeyOCRBlocks(req.ID), []byte("[]"), nil))

		h := &OCRHandler{deps: tp.deps}
		require.NoError(t, h.Handle(ctx, docMessage(req.ID, false)))

		assert.Equal(t, 0, tp.ocr.calls)
		assert.Equal(t, models.StateOCRCompleted, tp.state(t, req.ID))
	})

	t.Run("force reruns past the cache", func(t *testing.T) {
		tp := setupTestPipeline(t)
		req := tp.createDocument(t, "report.pdf")
		require.NoError(t, tp.deps.Blobs.Put(ctx, blob.BucketDocuments, blob.KeyOriginal(req.ID), []byte("%PDF-"), nil))
		require.NoError(t, tp.deps.Blobs.Put(ctx, blob.BucketOCR, blob.KeyOCRBlocks(req.ID), []byte("[]"), nil))

		h := &OCRHandler{deps: tp.deps}
		require.NoError(t, h.Handle(ctx, docMessage(req.ID, true)))

		assert.Equal(t, 1, tp.ocr.calls)

		// Force propagates to the fan-out messages.
		llmMsg, err := tp.deps.Queue.Recv(ctx, models.QueueLLM)
		require.NoError(t, err)
		require.NotNil(t, llmMsg)
		task, err := models.DecodeDocumentTask(llmMsg.Payload)
		require.NoError(t, err)
		assert.True(t, task.Force)
	})

	t.Run("provider failure dead-letters and marks the document", func(t *testing.T) {
		tp := setupTestPipeline(t)
		tp.enableWebhook(t)
		req := tp.createDocument(t, "report.pdf")
		require.NoError(t, tp.deps.Blobs.Put(ctx, blob.BucketDocuments, blob.KeyOriginal(req.ID), []byte("%PDF-"), nil))
		tp.ocr.err = errors.New("provider exploded")

		h := &OCRHandler{deps: tp.deps}
		// Handler errors never cross the message boundary.
		require.NoError(t, h.Handle(ctx, docMessage(req.ID, false)))

		assert.Equal(t, models.StateOCRFailed, tp.state(t, req.ID))

		dead, err := tp.deps.Queue.Recv(ctx, models.QueueOCRErr)
		require.NoError(t, err)
		require.NotNil(t, dead)
		assert.Equal(t, req.ID, dead.Payload["document_id"])
		assert.Contains(t, dead.Payload["error"], "provider exploded")

		_, data := tp.lastDelivery(t, webhook.EventDocumentError)
		assert.Equal(t, req.ID, data["document_id"])
		assert.Equal(t, "ocr", data["stage"])
		assert.Contains(t, data["message"], "provider exploded")
	})

	t.Run("unknown document drops the message", func(t *testing.T) {
		tp := setupTestPipeline(t)
		h := &OCRHandler{deps: tp.deps}
		require.NoError(t, h.Handle(ctx, docMessage("missing", false)))
	})

	t.Run("undecodable payload drops the message", func(t *testing.T) {
		tp := setupTestPipeline(t)
		h := &OCRHandler{deps: tp.deps}
		require.NoError(t, h.Handle(ctx, &queue.Message{ID: "m", Payload: map[string]interface{}{"kind": "junk"}}))
	})
}

func TestLLMHandler(t *testing.T) {
	ctx := context.Background()

	// advance puts a fresh document at ocr_completed with a text artifact.
	advance := func(t *testing.T, tp *testPipeline, text string, tagIDs ...string) string {
		req := tp.createDocument(t, "report.pdf", tagIDs...)
		require.NoError(t, tp.deps.Blobs.Put(ctx, blob.BucketOCR, blob.KeyOCRText(req.ID), []byte(text), nil))
		_, err := tp.deps.Docs.UpdateState(ctx, req.ID, models.StateOCRProcessing)
		require.NoError(t, err)
		_, err = tp.deps.Docs.UpdateState(ctx, req.ID, models.StateOCRCompleted)
		require.NoError(t, err)
		return req.ID
	}

	createPrompt := func(t *testing.T, tp *testPipeline, id, name, content string, tagIDs ...string) {
		builder := tp.client.Prompt.Create().
			SetID(id).
			SetName(name).
			SetContent(content).
			SetModel("test-model")
		if len(tagIDs) > 0 {
			builder = builder.SetTagIds(tagIDs)
		}
		_, err := builder.Save(ctx)
		require.NoError(t, err)
	}

	t.Run("no prompts completes without running", func(t *testing.T) {
		tp := setupTestPipeline(t)
		id := advance(t, tp, "some text")

		h := &LLMHandler{deps: tp.deps}
		require.NoError(t, h.Handle(ctx, docMessage(id, false)))

		assert.Equal(t, 0, tp.llm.calls)
		assert.Equal(t, models.StateLLMCompleted, tp.state(t, id))
	})

	t.Run("runs the default prompt and stores the extraction", func(t *testing.T) {
		tp := setupTestPipeline(t)
		tp.enableWebhook(t)
		id := advance(t, tp, "invoice text")
		createPrompt(t, tp, "rev-1", "default", "Extract totals.")

		h := &LLMHandler{deps: tp.deps}
		require.NoError(t, h.Handle(ctx, docMessage(id, false)))

		assert.Equal(t, 1, tp.llm.calls)
		assert.Equal(t, models.StateLLMCompleted, tp.state(t, id))

		ex, err := tp.client.Extraction.Query().
			Where(extraction.DocumentIDEQ(id)).
			Only(ctx)
		require.NoError(t, err)
		assert.Equal(t, "rev-1", ex.PromptRevID)
		assert.Equal(t, float64(42), ex.Result["total"])

		// llm.completed carries the prompt revisions that ran.
		_, data := tp.lastDelivery(t, webhook.EventLLMCompleted)
		assert.Equal(t, id, data["document_id"])
		assert.Equal(t, []interface{}{"rev-1"}, data["prompt_ids"])
	})

	t.Run("tag-bound prompts run alongside the default", func(t *testing.T) {
		tp := setupTestPipeline(t)
		id := advance(t, tp, "invoice text", "tag-a")
		createPrompt(t, tp, "rev-default", "default", "Extract totals.")
		createPrompt(t, tp, "rev-tag", "invoice-fields", "Extract fields.", "tag-a")
		createPrompt(t, tp, "rev-other", "other", "Unrelated.", "tag-z")

		h := &LLMHandler{deps: tp.deps}
		require.NoError(t, h.Handle(ctx, docMessage(id, false)))

		assert.Equal(t, 2, tp.llm.calls)
		n, err := tp.client.Extraction.Query().
			Where(extraction.DocumentIDEQ(id)).
			Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, n)
	})

	t.Run("cached extraction skips the completion", func(t *testing.T) {
		tp := setupTestPipeline(t)
		id := advance(t, tp, "invoice text")
		createPrompt(t, tp, "rev-1", "default", "Extract totals.")

		h := &LLMHandler{deps: tp.deps}
		require.NoError(t, h.Handle(ctx, docMessage(id, false)))
		require.Equal(t, 1, tp.llm.calls)

		// Walk the document back through a retry so the transition holds.
		_, err := tp.client.Document.UpdateOneID(id).
			SetState(document.State(models.StateOCRCompleted)).
			Save(ctx)
		require.NoError(t, err)

		require.NoError(t, h.Handle(ctx, docMessage(id, false)))
		assert.Equal(t, 1, tp.llm.calls)

		_, err = tp.client.Document.UpdateOneID(id).
			SetState(document.State(models.StateOCRCompleted)).
			Save(ctx)
		require.NoError(t, err)

		require.NoError(t, h.Handle(ctx, docMessage(id, true)))
		assert.Equal(t, 2, tp.llm.calls)
	})

	t.Run("fenced completion parses", func(t *testing.T) {
		tp := setupTestPipeline(t)
		tp.llm.completion = "```json\n{\"total\": 7}\n```"
		id := advance(t, tp, "invoice text")
		createPrompt(t, tp, "rev-1", "default", "Extract totals.")

		h := &LLMHandler{deps: tp.deps}
		require.NoError(t, h.Handle(ctx, docMessage(id, false)))

		ex, err := tp.client.Extraction.Query().
			Where(extraction.DocumentIDEQ(id)).
			Only(ctx)
		require.NoError(t, err)
		assert.Equal(t, float64(7), ex.Result["total"])
	})

	t.Run("completion failure marks llm_failed", func(t *testing.T) {
		tp := setupTestPipeline(t)
		tp.enableWebhook(t)
		tp.llm.err = errors.New("model unavailable")
		id := advance(t, tp, "invoice text")
		createPrompt(t, tp, "rev-1", "default", "Extract totals.")

		h := &LLMHandler{deps: tp.deps}
		require.NoError(t, h.Handle(ctx, docMessage(id, false)))

		assert.Equal(t, models.StateLLMFailed, tp.state(t, id))

		_, data := tp.lastDelivery(t, webhook.EventLLMError)
		assert.Equal(t, id, data["document_id"])
		assert.Contains(t, data["message"], "model unavailable")
	})

	t.Run("missing text marks llm_failed", func(t *testing.T) {
		tp := setupTestPipeline(t)
		req := tp.createDocument(t, "report.pdf")
		_, err := tp.deps.Docs.UpdateState(ctx, req.ID, models.StateOCRProcessing)
		require.NoError(t, err)
		_, err = tp.deps.Docs.UpdateState(ctx, req.ID, models.StateOCRCompleted)
		require.NoError(t, err)

		h := &LLMHandler{deps: tp.deps}
		require.NoError(t, h.Handle(ctx, docMessage(req.ID, false)))

		assert.Equal(t, models.StateLLMFailed, tp.state(t, req.ID))
	})

	t.Run("document in uploaded state is not ready", func(t *testing.T) {
		tp := setupTestPipeline(t)
		req := tp.createDocument(t, "report.pdf")

		h := &LLMHandler{deps: tp.deps}
		require.NoError(t, h.Handle(ctx, docMessage(req.ID, false)))

		assert.Equal(t, models.StateUploaded, tp.state(t, req.ID))
	})
}

func TestKBIndexHandler(t *testing.T) {
	ctx := context.Background()

	advance := func(t *testing.T, tp *testPipeline, text string) string {
		req := tp.createDocument(t, "report.pdf")
		require.NoError(t, tp.deps.Blobs.Put(ctx, blob.BucketOCR, blob.KeyOCRText(req.ID), []byte(text), nil))
		_, err := tp.deps.Docs.UpdateState(ctx, req.ID, models.StateOCRProcessing)
		require.NoError(t, err)
		_, err = tp.deps.Docs.UpdateState(ctx, req.ID, models.StateOCRCompleted)
		require.NoError(t, err)
		return req.ID
	}

	t.Run("indexes chunked text", func(t *testing.T) {
		tp := setupTestPipeline(t)
		id := advance(t, tp, "hello knowledge base")

		h := &KBIndexHandler{deps: tp.deps}
		require.NoError(t, h.Handle(ctx, docMessage(id, false)))

		assert.Equal(t, models.StateKBIndexCompleted, tp.state(t, id))
		require.Len(t, tp.kb.indexed, 1)
		assert.Equal(t, "hello knowledge base", tp.kb.indexed[0].Text)
		assert.Equal(t, id, tp.kb.indexed[0].DocumentID)
	})

	t.Run("indexer failure marks kb_index_failed", func(t *testing.T) {
		tp := setupTestPipeline(t)
		tp.kb.indexErr = errors.New("kb unreachable")
		id := advance(t, tp, "hello")

		h := &KBIndexHandler{deps: tp.deps}
		require.NoError(t, h.Handle(ctx, docMessage(id, false)))

		assert.Equal(t, models.StateKBIndexFailed, tp.state(t, id))
	})
}

func TestChunkText(t *testing.T) {
	t.Run("empty text yields no chunks", func(t *testing.T) {
		assert.Empty(t, chunkText("doc", ""))
	})

	t.Run("short text is one chunk", func(t *testing.T) {
		chunks := chunkText("doc", "hello")
		require.Len(t, chunks, 1)
		assert.Equal(t, 0, chunks[0].Seq)
	})

	t.Run("long text splits on rune boundaries", func(t *testing.T) {
		var text string
		for i := 0; i < chunkRunes+100; i++ {
			text += "é"
		}
		chunks := chunkText("doc", text)
		require.Len(t, chunks, 2)
		assert.Equal(t, chunkRunes, len([]rune(chunks[0].Text)))
		assert.Equal(t, 100, len([]rune(chunks[1].Text)))
		assert.Equal(t, 1, chunks[1].Seq)
	})
}

func TestWebhookHandler(t *testing.T) {
	ctx := context.Background()

	t.Run("claim miss is a no-op", func(t *testing.T) {
		tp := setupTestPipeline(t)
		h := &WebhookHandler{deps: tp.deps}
		msg := &queue.Message{
			ID:      "m",
			Payload: models.DeliveryTask{DeliveryID: "missing"}.Payload(),
		}
		require.NoError(t, h.Handle(ctx, msg))
	})
}

func TestHandlersCoverPipelineQueues(t *testing.T) {
	tp := setupTestPipeline(t)
	handlers := tp.deps.Handlers()

	for _, q := range []string{models.QueueOCR, models.QueueLLM, models.QueueKBIndex, models.QueueWebhook} {
		assert.Contains(t, handlers, q, fmt.Sprintf("queue %s has no handler", q))
	}
	// The dead-letter queue keeps its messages for manual inspection.
	assert.NotContains(t, handlers, models.QueueOCRErr)
}
