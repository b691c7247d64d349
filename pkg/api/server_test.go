package api

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docpipe/docpipe/pkg/accounting"
	"github.com/docpipe/docpipe/pkg/blob"
	"github.com/docpipe/docpipe/pkg/config"
	"github.com/docpipe/docpipe/pkg/database"
	"github.com/docpipe/docpipe/pkg/kb"
	"github.com/docpipe/docpipe/pkg/models"
	"github.com/docpipe/docpipe/pkg/ocr"
	"github.com/docpipe/docpipe/pkg/pipeline"
	"github.com/docpipe/docpipe/pkg/queue"
	"github.com/docpipe/docpipe/pkg/secrets"
	"github.com/docpipe/docpipe/pkg/services"
	"github.com/docpipe/docpipe/pkg/webhook"
	testdb "github.com/docpipe/docpipe/test/database"
)

type testServer struct {
	router *gin.Engine
	client *database.Client
	queue  *queue.Service
	blobs  *blob.Store
}

func setupTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	client := testdb.NewTestClient(t)
	cipher, err := secrets.NewCipher("test-master-secret")
	require.NoError(t, err)

	blobs := blob.NewStore(client.Client)
	q := queue.NewService(client.Client, client.DB(), nil, 50*time.Millisecond)
	docs := services.NewDocumentService(client.Client, blobs, kb.NoOpIndexer{})
	webhooks := services.NewWebhookService(client.Client, cipher)
	engine := webhook.NewEngine(client.Client, q, webhooks, cipher, config.DefaultWebhookConfig())

	srv := NewServer(client, docs, webhooks, engine, blobs, q, nil)
	return &testServer{router: srv.Router(), client: client, queue: q, blobs: blobs}
}

func (ts *testServer) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	ts.router.ServeHTTP(w, req)
	return w
}

func uploadBody(fileName string) map[string]interface{} {
	return map[string]interface{}{
		"organization_id": "org-1",
		"file_name":       fileName,
		"content_base64":  base64.StdEncoding.EncodeToString([]byte("%PDF-1.7 test")),
	}
}

func TestUploadDocument(t *testing.T) {
	ts := setupTestServer(t)
	ctx := context.Background()

	t.Run("creates the document and enqueues ocr", func(t *testing.T) {
		w := ts.do(t, http.MethodPost, "/api/v1/documents", uploadBody("report.pdf"))
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var resp DocumentResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Len(t, resp.ID, 24)
		assert.Equal(t, "report.pdf", resp.UserFileName)
		assert.Equal(t, resp.ID+".pdf", resp.StoredFileName)
		assert.Equal(t, models.StateUploaded, resp.State)

		obj, err := ts.blobs.Get(ctx, blob.BucketDocuments, blob.KeyOriginal(resp.ID))
		require.NoError(t, err)
		require.NotNil(t, obj)
		assert.Equal(t, "%PDF-1.7 test", string(obj.Data))
		assert.Equal(t, "report.pdf", obj.Metadata["file_name"])

		msg, err := ts.queue.Recv(ctx, models.QueueOCR)
		require.NoError(t, err)
		require.NotNil(t, msg)
		task, err := models.DecodeDocumentTask(msg.Payload)
		require.NoError(t, err)
		assert.Equal(t, resp.ID, task.DocumentID)
		assert.False(t, task.Force)
	})

	t.Run("missing fields are rejected", func(t *testing.T) {
		w := ts.do(t, http.MethodPost, "/api/v1/documents", map[string]interface{}{
			"file_name": "report.pdf",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("invalid base64 is rejected", func(t *testing.T) {
		body := uploadBody("report.pdf")
		body["content_base64"] = "not base64!!!"
		w := ts.do(t, http.MethodPost, "/api/v1/documents", body)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("empty content is rejected", func(t *testing.T) {
		body := uploadBody("report.pdf")
		body["content_base64"] = ""
		w := ts.do(t, http.MethodPost, "/api/v1/documents", body)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestGetDocument(t *testing.T) {
	ts := setupTestServer(t)

	w := ts.do(t, http.MethodPost, "/api/v1/documents", uploadBody("report.pdf"))
	require.Equal(t, http.StatusCreated, w.Code)
	var created DocumentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	t.Run("found", func(t *testing.T) {
		w := ts.do(t, http.MethodGet, "/api/v1/documents/"+created.ID, nil)
		require.Equal(t, http.StatusOK, w.Code)
		var got DocumentResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, created.ID, got.ID)
	})

	t.Run("missing", func(t *testing.T) {
		w := ts.do(t, http.MethodGet, "/api/v1/documents/ffffffffffffffffffffffff", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestListDocuments(t *testing.T) {
	ts := setupTestServer(t)

	for i := 0; i < 4; i++ {
		w := ts.do(t, http.MethodPost, "/api/v1/documents", uploadBody(fmt.Sprintf("doc-%d.pdf", i)))
		require.Equal(t, http.StatusCreated, w.Code)
	}

	t.Run("requires organization_id", func(t *testing.T) {
		w := ts.do(t, http.MethodGet, "/api/v1/documents", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("paginates", func(t *testing.T) {
		w := ts.do(t, http.MethodGet, "/api/v1/documents?organization_id=org-1&limit=3", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Documents []DocumentResponse `json:"documents"`
			Total     int                `json:"total"`
			Skip      int                `json:"skip"`
			Limit     int                `json:"limit"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, 4, resp.Total)
		assert.Len(t, resp.Documents, 3)
		assert.Equal(t, 3, resp.Limit)

		w = ts.do(t, http.MethodGet, "/api/v1/documents?organization_id=org-1&limit=3&skip=3", nil)
		require.Equal(t, http.StatusOK, w.Code)
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Len(t, resp.Documents, 1)
	})

	t.Run("other org sees nothing", func(t *testing.T) {
		w := ts.do(t, http.MethodGet, "/api/v1/documents?organization_id=org-2", nil)
		require.Equal(t, http.StatusOK, w.Code)
		var resp struct {
			Total int `json:"total"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, 0, resp.Total)
	})
}

func TestDeleteDocument(t *testing.T) {
	ts := setupTestServer(t)
	ctx := context.Background()

	w := ts.do(t, http.MethodPost, "/api/v1/documents", uploadBody("report.pdf"))
	require.Equal(t, http.StatusCreated, w.Code)
	var created DocumentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = ts.do(t, http.MethodDelete, "/api/v1/documents/"+created.ID, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = ts.do(t, http.MethodGet, "/api/v1/documents/"+created.ID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	obj, err := ts.blobs.Get(ctx, blob.BucketDocuments, blob.KeyOriginal(created.ID))
	require.NoError(t, err)
	assert.Nil(t, obj)

	// Deleting again is still a 204.
	w = ts.do(t, http.MethodDelete, "/api/v1/documents/"+created.ID, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestRetryDocument(t *testing.T) {
	ts := setupTestServer(t)
	ctx := context.Background()

	w := ts.do(t, http.MethodPost, "/api/v1/documents", uploadBody("report.pdf"))
	require.Equal(t, http.StatusCreated, w.Code)
	var created DocumentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	// Drain the upload's ocr message first.
	msg, err := ts.queue.Recv(ctx, models.QueueOCR)
	require.NoError(t, err)
	require.NotNil(t, msg)

	t.Run("enqueues a forced run", func(t *testing.T) {
		w := ts.do(t, http.MethodPost, "/api/v1/documents/"+created.ID+"/retry", nil)
		require.Equal(t, http.StatusAccepted, w.Code)

		msg, err := ts.queue.Recv(ctx, models.QueueOCR)
		require.NoError(t, err)
		require.NotNil(t, msg)
		task, err := models.DecodeDocumentTask(msg.Payload)
		require.NoError(t, err)
		assert.Equal(t, created.ID, task.DocumentID)
		assert.True(t, task.Force)
	})

	t.Run("missing document", func(t *testing.T) {
		w := ts.do(t, http.MethodPost, "/api/v1/documents/ffffffffffffffffffffffff/retry", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

// scriptedLLM fails until err is cleared, then answers with a fixed
// extraction.
type scriptedLLM struct{ err error }

func (s *scriptedLLM) Complete(ctx context.Context, prompt, model string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return `{"total": 42}`, nil
}

type unusedOCR struct{}

func (unusedOCR) Process(ctx context.Context, pdf []byte, fileName string) (*ocr.Result, error) {
	return nil, errors.New("ocr provider not expected")
}

func TestRetryDocumentRecoversFailedLLMStage(t *testing.T) {
	ts := setupTestServer(t)
	ctx := context.Background()

	cipher, err := secrets.NewCipher("test-master-secret")
	require.NoError(t, err)
	docs := services.NewDocumentService(ts.client.Client, ts.blobs, kb.NoOpIndexer{})
	webhooks := services.NewWebhookService(ts.client.Client, cipher)
	engine := webhook.NewEngine(ts.client.Client, ts.queue, webhooks, cipher, config.DefaultWebhookConfig())
	provider := &scriptedLLM{err: errors.New("model unavailable")}
	deps := &pipeline.Deps{
		Client:     ts.client.Client,
		Docs:       docs,
		Blobs:      ts.blobs,
		Queue:      ts.queue,
		OCR:        unusedOCR{},
		LLM:        provider,
		KB:         kb.NoOpIndexer{},
		Accounting: accounting.NoOpRecorder{},
		Webhooks:   engine,
	}
	handlers := deps.Handlers()

	_, err = ts.client.Client.Prompt.Create().
		SetID("rev-1").
		SetName("default").
		SetContent("Extract totals.").
		SetModel("test-model").
		Save(ctx)
	require.NoError(t, err)

	// A text-native file passes straight through the ocr stage.
	w := ts.do(t, http.MethodPost, "/api/v1/documents", uploadBody("notes.txt"))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var created DocumentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	runOne := func(queueName string) {
		msg, err := ts.queue.Recv(ctx, queueName)
		require.NoError(t, err)
		require.NotNil(t, msg)
		require.NoError(t, handlers[queueName].Handle(ctx, msg))
		require.NoError(t, ts.queue.Complete(ctx, queueName, msg.ID, queue.StatusCompleted))
	}

	state := func() string {
		w := ts.do(t, http.MethodGet, "/api/v1/documents/"+created.ID, nil)
		require.Equal(t, http.StatusOK, w.Code)
		var got DocumentResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		return got.State
	}

	runOne(models.QueueOCR)
	runOne(models.QueueKBIndex)
	runOne(models.QueueLLM)
	require.Equal(t, models.StateLLMFailed, state())

	// The retry lands on the llm queue: the ocr queue stays empty.
	w = ts.do(t, http.MethodPost, "/api/v1/documents/"+created.ID+"/retry", nil)
	require.Equal(t, http.StatusAccepted, w.Code)

	ocrMsg, err := ts.queue.Recv(ctx, models.QueueOCR)
	require.NoError(t, err)
	assert.Nil(t, ocrMsg)

	msg, err := ts.queue.Recv(ctx, models.QueueLLM)
	require.NoError(t, err)
	require.NotNil(t, msg)
	task, err := models.DecodeDocumentTask(msg.Payload)
	require.NoError(t, err)
	assert.True(t, task.Force)

	// With the provider back, the forced run reaches a terminal success.
	provider.err = nil
	require.NoError(t, handlers[models.QueueLLM].Handle(ctx, msg))
	assert.Equal(t, models.StateLLMCompleted, state())
}

func TestHealth(t *testing.T) {
	ts := setupTestServer(t)

	w := ts.do(t, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Status string `json:"status"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp.Status)
}

func TestWebhookEndpoints(t *testing.T) {
	ts := setupTestServer(t)

	t.Run("get before configure is 404", func(t *testing.T) {
		w := ts.do(t, http.MethodGet, "/api/v1/orgs/org-1/webhook", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("test before configure is 409", func(t *testing.T) {
		w := ts.do(t, http.MethodPost, "/api/v1/orgs/org-1/webhook/test", nil)
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("put then get", func(t *testing.T) {
		w := ts.do(t, http.MethodPut, "/api/v1/orgs/org-1/webhook", map[string]interface{}{
			"enabled":           true,
			"url":               "https://receiver.test/hook",
			"signature_enabled": true,
		})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var settings services.WebhookSettings
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &settings))
		assert.True(t, settings.HasSecret)
		assert.NotEmpty(t, settings.GeneratedSecret)

		w = ts.do(t, http.MethodGet, "/api/v1/orgs/org-1/webhook", nil)
		require.Equal(t, http.StatusOK, w.Code)
		settings = services.WebhookSettings{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &settings))
		assert.True(t, settings.HasSecret)
		// The secret never comes back on reads.
		assert.Empty(t, settings.GeneratedSecret)
	})

	t.Run("validation error is 400", func(t *testing.T) {
		w := ts.do(t, http.MethodPut, "/api/v1/orgs/org-1/webhook", map[string]interface{}{
			"enabled": true,
			"url":     "ftp://nope",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("test fires through the delivery path", func(t *testing.T) {
		w := ts.do(t, http.MethodPost, "/api/v1/orgs/org-1/webhook/test", nil)
		require.Equal(t, http.StatusAccepted, w.Code)

		var resp struct {
			DeliveryID string `json:"delivery_id"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp.DeliveryID)

		msg, err := ts.queue.Recv(context.Background(), models.QueueWebhook)
		require.NoError(t, err)
		require.NotNil(t, msg)
	})
}
