// Package webhook implements the outbound delivery engine: durable
// delivery rows, signed HTTP POSTs, retry classification with capped
// exponential backoff, and the due-delivery scheduler sweep.
package webhook

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"slices"
	"strconv"
	"time"

	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/docpipe/docpipe/ent"
	"github.com/docpipe/docpipe/ent/webhookdelivery"
	"github.com/docpipe/docpipe/pkg/config"
	"github.com/docpipe/docpipe/pkg/models"
	"github.com/docpipe/docpipe/pkg/queue"
	"github.com/docpipe/docpipe/pkg/secrets"
	"github.com/docpipe/docpipe/pkg/services"
)

// Event types emitted by the pipeline.
const (
	EventDocumentUploaded = "document.uploaded"
	EventDocumentError    = "document.error"
	EventLLMCompleted     = "llm.completed"
	EventLLMError         = "llm.error"
	EventTest             = "webhook.test"
)

const userAgent = "docpipe-webhook/1.0"

// Engine publishes events as durable deliveries and executes the HTTP
// attempts.
type Engine struct {
	client     *ent.Client
	queue      *queue.Service
	configs    *services.WebhookService
	cipher     *secrets.Cipher
	cfg        *config.WebhookConfig
	httpClient *http.Client

	// offloadSem bounds concurrent canonicalization/signing of large
	// bodies so worker loops are not starved by CPU-heavy payloads.
	offloadSem chan struct{}
}

// NewEngine creates a delivery engine.
func NewEngine(client *ent.Client, q *queue.Service, configs *services.WebhookService, cipher *secrets.Cipher, cfg *config.WebhookConfig) *Engine {
	return &Engine{
		client:  client,
		queue:   q,
		configs: configs,
		cipher:  cipher,
		cfg:     cfg,
		httpClient: &http.Client{
			Timeout: cfg.HTTPTimeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		offloadSem: make(chan struct{}, cfg.OffloadWorkers),
	}
}

// Publish records a delivery obligation for the organization and
// enqueues it. Returns the delivery id, or "" when the organization has
// no enabled config or the event is filtered out. Configuration is read
// fresh on every publish; there is no cache to invalidate.
func (e *Engine) Publish(ctx context.Context, orgID, eventType, documentID string, data map[string]interface{}) (string, error) {
	cfg, err := e.configs.GetRawConfig(ctx, orgID)
	if err != nil {
		return "", err
	}
	if cfg == nil || !cfg.Enabled || cfg.URL == "" {
		return "", nil
	}
	// The test event bypasses the allowlist: it exists to verify the
	// endpoint regardless of subscription. An absent allowlist means all
	// events; an empty one delivers nothing.
	if eventType != EventTest && cfg.Events != nil && !slices.Contains(cfg.Events, eventType) {
		return "", nil
	}

	eventID := uuid.New().String()
	eventData := make(map[string]interface{}, len(data)+1)
	for k, v := range data {
		eventData[k] = v
	}
	if documentID != "" {
		eventData["document_id"] = documentID
	}
	payload := map[string]interface{}{
		"event_id":        eventID,
		"event_type":      eventType,
		"created_at":      time.Now().UTC().Format(time.RFC3339),
		"organization_id": orgID,
		"data":            eventData,
	}

	// Snapshot auth material onto the delivery row, so a config change
	// or secret rotation does not disturb deliveries already in flight.
	builder := e.client.WebhookDelivery.Create().
		SetID(uuid.New().String()).
		SetOrganizationID(orgID).
		SetEventType(eventType).
		SetEventID(eventID).
		SetPayload(payload).
		SetTargetURL(cfg.URL).
		SetAuthType(webhookdelivery.AuthType(cfg.AuthType)).
		SetAttempts(0).
		SetNextAttemptAt(time.Now().UTC()).
		SetStatus(webhookdelivery.StatusPending)
	if documentID != "" {
		builder = builder.SetDocumentID(documentID)
	}
	if cfg.AuthHeaderName != nil {
		builder = builder.SetAuthHeaderName(*cfg.AuthHeaderName)
	}
	if cfg.AuthHeaderValueEncrypted != nil {
		builder = builder.SetAuthHeaderValueEncrypted(*cfg.AuthHeaderValueEncrypted)
	}
	if cfg.SignatureEnabled || cfg.AuthType == "hmac" {
		if cfg.SecretEncrypted != nil {
			builder = builder.SetSecretEncrypted(*cfg.SecretEncrypted)
		}
	}

	delivery, err := builder.Save(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to create delivery: %w", err)
	}

	if _, err := e.queue.Send(ctx, models.QueueWebhook, models.DeliveryTask{DeliveryID: delivery.ID}.Payload()); err != nil {
		return "", fmt.Errorf("failed to enqueue delivery: %w", err)
	}

	slog.Info("Webhook delivery published",
		"delivery_id", delivery.ID, "org_id", orgID, "event_type", eventType)
	return delivery.ID, nil
}

// ClaimByID atomically moves a due pending delivery to in_flight and
// returns it. Returns nil when the delivery is missing, not due yet, or
// already claimed — duplicate queue messages land here harmlessly.
func (e *Engine) ClaimByID(ctx context.Context, deliveryID string) (*ent.WebhookDelivery, error) {
	tx, err := e.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	d, err := tx.WebhookDelivery.Query().
		Where(
			webhookdelivery.IDEQ(deliveryID),
			webhookdelivery.StatusEQ(webhookdelivery.StatusPending),
			webhookdelivery.NextAttemptAtLTE(time.Now().UTC()),
		).
		ForUpdate(entsql.WithLockAction(entsql.SkipLocked)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query delivery: %w", err)
	}

	claimed, err := tx.WebhookDelivery.UpdateOne(d).
		SetStatus(webhookdelivery.StatusInFlight).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to claim delivery: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit claim: %w", err)
	}
	return claimed, nil
}

// Send executes one HTTP attempt for a claimed delivery and records the
// result: succeeded, rescheduled pending, giving_up, or failed once
// attempts are exhausted.
func (e *Engine) Send(ctx context.Context, d *ent.WebhookDelivery) error {
	body, err := e.canonicalize(ctx, d.Payload)
	if err != nil {
		return e.recordResult(ctx, d, 0, nil, fmt.Errorf("failed to canonicalize payload: %w", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.TargetURL, bytes.NewReader(body))
	if err != nil {
		return e.recordResult(ctx, d, 0, nil, fmt.Errorf("failed to build request: %w", err))
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("X-Event-Id", d.EventID)
	req.Header.Set("X-Event-Type", d.EventType)

	if err := e.applyAuth(req, d, body); err != nil {
		// Undecryptable auth material never fixes itself on retry.
		return e.terminal(ctx, d, webhookdelivery.StatusGivingUp, 0, err.Error())
	}

	resp, err := e.httpClient.Do(req)
	if err != nil {
		return e.recordResult(ctx, d, 0, nil, err)
	}
	defer func() { _ = resp.Body.Close() }()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))

	return e.recordResult(ctx, d, resp.StatusCode, resp, nil)
}

// canonicalize renders the payload, routing large bodies through the
// bounded offload pool.
func (e *Engine) canonicalize(ctx context.Context, payload map[string]interface{}) ([]byte, error) {
	if e.cfg.OffloadThreshold > 0 && estimateSize(payload) >= e.cfg.OffloadThreshold {
		select {
		case e.offloadSem <- struct{}{}:
			defer func() { <-e.offloadSem }()
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return CanonicalJSON(payload)
}

// estimateSize guesses the rendered payload size from its string values.
// Only used to route bodies to the offload pool, so rough is fine.
func estimateSize(v interface{}) int {
	switch t := v.(type) {
	case string:
		return len(t)
	case map[string]interface{}:
		n := 0
		for k, e := range t {
			n += len(k) + estimateSize(e)
		}
		return n
	case []interface{}:
		n := 0
		for _, e := range t {
			n += estimateSize(e)
		}
		return n
	default:
		return 8
	}
}

// applyAuth decorates the request with the delivery's snapshotted auth:
// a static header, an HMAC signature, or both.
func (e *Engine) applyAuth(req *http.Request, d *ent.WebhookDelivery, body []byte) error {
	if string(d.AuthType) == services.AuthHeader && d.AuthHeaderName != nil && d.AuthHeaderValueEncrypted != nil {
		value, err := e.cipher.Decrypt(*d.AuthHeaderValueEncrypted)
		if err != nil {
			return fmt.Errorf("failed to decrypt auth header: %w", err)
		}
		req.Header.Set(*d.AuthHeaderName, value)
	}

	if d.SecretEncrypted != nil && *d.SecretEncrypted != "" {
		secret, err := e.cipher.Decrypt(*d.SecretEncrypted)
		if err != nil {
			return fmt.Errorf("failed to decrypt signing secret: %w", err)
		}
		ts := strconv.FormatInt(time.Now().Unix(), 10)
		sig := secrets.ComputeSignature(secret, ts, body)
		req.Header.Set("X-Webhook-Timestamp", ts)
		req.Header.Set("X-Signature-256", "sha256="+sig)
	}
	return nil
}

// recordResult classifies one attempt and writes the delivery's next
// state.
func (e *Engine) recordResult(ctx context.Context, d *ent.WebhookDelivery, statusCode int, resp *http.Response, attemptErr error) error {
	attempts := d.Attempts + 1
	log := slog.With("delivery_id", d.ID, "event_type", d.EventType, "attempt", attempts)

	var out outcome
	if attemptErr != nil {
		out = outcomeRetry
	} else {
		out = classify(statusCode)
	}

	switch out {
	case outcomeSucceeded:
		log.Info("Webhook delivered", "status_code", statusCode)
		return e.terminalWithAttempts(ctx, d, webhookdelivery.StatusSucceeded, attempts, statusCode, "")

	case outcomeGivingUp:
		log.Warn("Webhook rejected, giving up", "status_code", statusCode)
		return e.terminalWithAttempts(ctx, d, webhookdelivery.StatusGivingUp, attempts, statusCode, "")

	default:
		errMsg := ""
		if attemptErr != nil {
			errMsg = attemptErr.Error()
		}
		if attempts >= e.cfg.MaxAttempts {
			log.Warn("Webhook retries exhausted", "status_code", statusCode, "error", errMsg)
			return e.terminalWithAttempts(ctx, d, webhookdelivery.StatusFailed, attempts, statusCode, errMsg)
		}

		retryAfter := time.Duration(0)
		if statusCode == http.StatusTooManyRequests {
			retryAfter = parseRetryAfter(resp)
		}
		delay := backoffDelay(attempts, e.cfg.BackoffBase, e.cfg.BackoffCap, e.cfg.JitterFraction, retryAfter)
		next := time.Now().UTC().Add(delay)

		log.Info("Webhook attempt failed, rescheduling",
			"status_code", statusCode, "error", errMsg, "next_attempt_in", delay)

		update := e.client.WebhookDelivery.UpdateOneID(d.ID).
			SetStatus(webhookdelivery.StatusPending).
			SetAttempts(attempts).
			SetNextAttemptAt(next)
		if statusCode > 0 {
			update = update.SetLastStatusCode(statusCode)
		}
		if errMsg != "" {
			update = update.SetLastError(errMsg)
		}
		if err := update.Exec(ctx); err != nil {
			return fmt.Errorf("failed to reschedule delivery: %w", err)
		}
		return nil
	}
}

func (e *Engine) terminal(ctx context.Context, d *ent.WebhookDelivery, status webhookdelivery.Status, statusCode int, errMsg string) error {
	return e.terminalWithAttempts(ctx, d, status, d.Attempts+1, statusCode, errMsg)
}

func (e *Engine) terminalWithAttempts(ctx context.Context, d *ent.WebhookDelivery, status webhookdelivery.Status, attempts, statusCode int, errMsg string) error {
	update := e.client.WebhookDelivery.UpdateOneID(d.ID).
		SetStatus(status).
		SetAttempts(attempts)
	if statusCode > 0 {
		update = update.SetLastStatusCode(statusCode)
	}
	if errMsg != "" {
		update = update.SetLastError(errMsg)
	}
	if err := update.Exec(ctx); err != nil {
		return fmt.Errorf("failed to record delivery result: %w", err)
	}
	return nil
}
