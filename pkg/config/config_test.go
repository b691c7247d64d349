package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeDefaults(t *testing.T) {
	t.Setenv("MASTER_SECRET", "test-master")

	cfg, err := Initialize()
	require.NoError(t, err)

	assert.Equal(t, 2, cfg.Queue.WorkersPerQueue)
	assert.Equal(t, 500*time.Millisecond, cfg.Queue.PollInterval)
	assert.Equal(t, 10*time.Minute, cfg.Queue.VisibilityTimeout)
	assert.Equal(t, 8, cfg.Webhook.MaxAttempts)
	assert.Equal(t, 30*time.Second, cfg.Webhook.BackoffBase)
	assert.Equal(t, time.Hour, cfg.Webhook.BackoffCap)
	assert.Equal(t, "test-master", cfg.MasterSecret)
}

func TestInitializeEnvOverrides(t *testing.T) {
	t.Setenv("MASTER_SECRET", "test-master")
	t.Setenv("QUEUE_POLL_INTERVAL", "250ms")
	t.Setenv("QUEUE_WORKERS_PER_QUEUE", "5")
	t.Setenv("WEBHOOK_MAX_ATTEMPTS", "3")
	t.Setenv("WEBHOOK_BACKOFF_BASE", "10s")

	cfg, err := Initialize()
	require.NoError(t, err)

	assert.Equal(t, 250*time.Millisecond, cfg.Queue.PollInterval)
	assert.Equal(t, 5, cfg.Queue.WorkersPerQueue)
	assert.Equal(t, 3, cfg.Webhook.MaxAttempts)
	assert.Equal(t, 10*time.Second, cfg.Webhook.BackoffBase)
}

func TestInitializeRequiresMasterSecret(t *testing.T) {
	t.Setenv("MASTER_SECRET", "")

	_, err := Initialize()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "MASTER_SECRET")
}

func TestInitializeIgnoresMalformedEnv(t *testing.T) {
	t.Setenv("MASTER_SECRET", "test-master")
	t.Setenv("QUEUE_POLL_INTERVAL", "not-a-duration")
	t.Setenv("QUEUE_WORKERS_PER_QUEUE", "many")

	cfg, err := Initialize()
	require.NoError(t, err)
	assert.Equal(t, 500*time.Millisecond, cfg.Queue.PollInterval)
	assert.Equal(t, 2, cfg.Queue.WorkersPerQueue)
}

func TestQueueConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*QueueConfig)
		wantErr string
	}{
		{"defaults are valid", func(q *QueueConfig) {}, ""},
		{"zero workers", func(q *QueueConfig) { q.WorkersPerQueue = 0 }, "workers_per_queue"},
		{"too many workers", func(q *QueueConfig) { q.WorkersPerQueue = 51 }, "workers_per_queue"},
		{"zero poll interval", func(q *QueueConfig) { q.PollInterval = 0 }, "poll_interval"},
		{"negative retention", func(q *QueueConfig) { q.CompletedRetention = -time.Hour }, "completed_retention"},
		{"zero retention is allowed", func(q *QueueConfig) { q.CompletedRetention = 0 }, ""},
		{
			"visibility must exceed handler timeout",
			func(q *QueueConfig) { q.VisibilityTimeout = q.HandlerTimeout },
			"visibility_timeout must be greater than handler_timeout",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := DefaultQueueConfig()
			tt.mutate(q)
			err := q.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestWebhookConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*WebhookConfig)
		wantErr string
	}{
		{"defaults are valid", func(w *WebhookConfig) {}, ""},
		{"zero base", func(w *WebhookConfig) { w.BackoffBase = 0 }, "backoff_base"},
		{"cap below base", func(w *WebhookConfig) { w.BackoffCap = w.BackoffBase - time.Second }, "backoff_cap"},
		{"jitter of 1 is too much", func(w *WebhookConfig) { w.JitterFraction = 1 }, "jitter_fraction"},
		{"negative jitter", func(w *WebhookConfig) { w.JitterFraction = -0.1 }, "jitter_fraction"},
		{"zero attempts", func(w *WebhookConfig) { w.MaxAttempts = 0 }, "max_attempts"},
		{"zero offload workers", func(w *WebhookConfig) { w.OffloadWorkers = 0 }, "offload_workers"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := DefaultWebhookConfig()
			tt.mutate(w)
			err := w.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}
