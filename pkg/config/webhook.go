package config

import (
	"fmt"
	"time"
)

// WebhookConfig contains webhook delivery engine configuration.
type WebhookConfig struct {
	// BackoffBase is the first retry delay; delay doubles per attempt.
	BackoffBase time.Duration `yaml:"backoff_base"`

	// BackoffCap is the upper bound on the retry delay before jitter.
	BackoffCap time.Duration `yaml:"backoff_cap"`

	// JitterFraction adds [0, JitterFraction*delay) of random jitter.
	JitterFraction float64 `yaml:"jitter_fraction"`

	// MaxAttempts is the attempt count after which a delivery gives up.
	MaxAttempts int `yaml:"max_attempts"`

	// HTTPTimeout bounds a single delivery POST (connect + read).
	HTTPTimeout time.Duration `yaml:"http_timeout"`

	// SchedulerInterval is how often the sweep re-enqueues due deliveries.
	SchedulerInterval time.Duration `yaml:"scheduler_interval"`

	// OffloadThreshold is the body size at which canonicalization and
	// signing are pushed to the offload pool instead of the worker loop.
	OffloadThreshold int `yaml:"offload_threshold"`

	// OffloadWorkers is the size of the CPU offload pool.
	OffloadWorkers int `yaml:"offload_workers"`
}

// DefaultWebhookConfig returns the built-in delivery defaults.
func DefaultWebhookConfig() *WebhookConfig {
	return &WebhookConfig{
		BackoffBase:       30 * time.Second,
		BackoffCap:        1 * time.Hour,
		JitterFraction:    0.2,
		MaxAttempts:       8,
		HTTPTimeout:       15 * time.Second,
		SchedulerInterval: 15 * time.Second,
		OffloadThreshold:  1 << 20,
		OffloadWorkers:    4,
	}
}

// Validate checks webhook configuration bounds.
func (w *WebhookConfig) Validate() error {
	if w == nil {
		return fmt.Errorf("webhook configuration is nil")
	}
	if w.BackoffBase <= 0 {
		return fmt.Errorf("backoff_base must be positive")
	}
	if w.BackoffCap < w.BackoffBase {
		return fmt.Errorf("backoff_cap must be at least backoff_base")
	}
	if w.JitterFraction < 0 || w.JitterFraction >= 1 {
		return fmt.Errorf("jitter_fraction must be in [0, 1)")
	}
	if w.MaxAttempts < 1 {
		return fmt.Errorf("max_attempts must be at least 1")
	}
	if w.HTTPTimeout <= 0 {
		return fmt.Errorf("http_timeout must be positive")
	}
	if w.SchedulerInterval <= 0 {
		return fmt.Errorf("scheduler_interval must be positive")
	}
	if w.OffloadThreshold < 0 {
		return fmt.Errorf("offload_threshold must be non-negative")
	}
	if w.OffloadWorkers < 1 {
		return fmt.Errorf("offload_workers must be at least 1")
	}
	return nil
}
