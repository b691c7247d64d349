// Package config holds process configuration: queue and worker tuning,
// webhook delivery policy, and the at-rest encryption master secret.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config is the umbrella configuration object returned by Initialize()
// and passed to every component at startup.
type Config struct {
	// Queue and worker pool configuration
	Queue *QueueConfig

	// Webhook delivery engine configuration
	Webhook *WebhookConfig

	// MasterSecret derives the at-rest encryption key. Required:
	// a process without it cannot decrypt stored webhook auth material.
	MasterSecret string
}

// Initialize loads configuration from the environment and validates it.
// A missing or empty MASTER_SECRET is a fatal configuration error.
func Initialize() (*Config, error) {
	cfg := &Config{
		Queue:        DefaultQueueConfig(),
		Webhook:      DefaultWebhookConfig(),
		MasterSecret: os.Getenv("MASTER_SECRET"),
	}

	if d, ok := envDuration("QUEUE_POLL_INTERVAL"); ok {
		cfg.Queue.PollInterval = d
	}
	if d, ok := envDuration("QUEUE_VISIBILITY_TIMEOUT"); ok {
		cfg.Queue.VisibilityTimeout = d
	}
	if d, ok := envDuration("QUEUE_COMPLETED_RETENTION"); ok {
		cfg.Queue.CompletedRetention = d
	}
	if n, ok := envInt("QUEUE_WORKERS_PER_QUEUE"); ok {
		cfg.Queue.WorkersPerQueue = n
	}
	if n, ok := envInt("WEBHOOK_MAX_ATTEMPTS"); ok {
		cfg.Webhook.MaxAttempts = n
	}
	if d, ok := envDuration("WEBHOOK_BACKOFF_BASE"); ok {
		cfg.Webhook.BackoffBase = d
	}
	if d, ok := envDuration("WEBHOOK_BACKOFF_CAP"); ok {
		cfg.Webhook.BackoffCap = d
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the full configuration, failing fast on startup errors.
func (c *Config) Validate() error {
	if c.MasterSecret == "" {
		return fmt.Errorf("MASTER_SECRET is required")
	}
	if err := c.Queue.Validate(); err != nil {
		return fmt.Errorf("queue config: %w", err)
	}
	if err := c.Webhook.Validate(); err != nil {
		return fmt.Errorf("webhook config: %w", err)
	}
	return nil
}

func envDuration(key string) (time.Duration, bool) {
	val := os.Getenv(key)
	if val == "" {
		return 0, false
	}
	d, err := time.ParseDuration(val)
	if err != nil {
		return 0, false
	}
	return d, true
}

func envInt(key string) (int, bool) {
	val := os.Getenv(key)
	if val == "" {
		return 0, false
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return 0, false
	}
	return n, true
}
