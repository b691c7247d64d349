package config

import (
	"fmt"
	"time"
)

// QueueConfig contains queue and worker pool configuration.
// These values control how messages are claimed, recovered, and retired.
type QueueConfig struct {
	// WorkersPerQueue is the number of worker goroutines per queue per replica.
	WorkersPerQueue int `yaml:"workers_per_queue"`

	// PollInterval is the polling cadence of RecvWithTimeout when LISTEN/NOTIFY
	// is unavailable, and the idle re-check cadence of workers.
	PollInterval time.Duration `yaml:"poll_interval"`

	// VisibilityTimeout is how long a message may sit in processing before the
	// recovery sweep assumes its worker died and resets it to pending.
	VisibilityTimeout time.Duration `yaml:"visibility_timeout"`

	// RecoveryInterval is how often the recovery sweep runs.
	RecoveryInterval time.Duration `yaml:"recovery_interval"`

	// CompletedRetention is how long terminal messages are kept for audit
	// before the retention sweep deletes them. Zero disables deletion.
	CompletedRetention time.Duration `yaml:"completed_retention"`

	// RetentionInterval is how often the retention sweep runs.
	RetentionInterval time.Duration `yaml:"retention_interval"`

	// HandlerTimeout bounds a single message handler invocation.
	HandlerTimeout time.Duration `yaml:"handler_timeout"`

	// GracefulShutdownTimeout is the max time to wait for in-flight handlers
	// during shutdown. Unfinished messages stay processing for recovery.
	GracefulShutdownTimeout time.Duration `yaml:"graceful_shutdown_timeout"`
}

// DefaultQueueConfig returns the built-in queue defaults.
func DefaultQueueConfig() *QueueConfig {
	return &QueueConfig{
		WorkersPerQueue:         2,
		PollInterval:            500 * time.Millisecond,
		VisibilityTimeout:       10 * time.Minute,
		RecoveryInterval:        1 * time.Minute,
		CompletedRetention:      7 * 24 * time.Hour,
		RetentionInterval:       1 * time.Hour,
		HandlerTimeout:          10 * time.Minute,
		GracefulShutdownTimeout: 30 * time.Second,
	}
}

// Validate checks queue configuration bounds.
func (q *QueueConfig) Validate() error {
	if q == nil {
		return fmt.Errorf("queue configuration is nil")
	}
	if q.WorkersPerQueue < 1 || q.WorkersPerQueue > 50 {
		return fmt.Errorf("workers_per_queue must be between 1 and 50")
	}
	if q.PollInterval <= 0 {
		return fmt.Errorf("poll_interval must be positive")
	}
	if q.VisibilityTimeout <= 0 {
		return fmt.Errorf("visibility_timeout must be positive")
	}
	if q.RecoveryInterval <= 0 {
		return fmt.Errorf("recovery_interval must be positive")
	}
	if q.CompletedRetention < 0 {
		return fmt.Errorf("completed_retention must be non-negative")
	}
	if q.RetentionInterval <= 0 {
		return fmt.Errorf("retention_interval must be positive")
	}
	if q.HandlerTimeout <= 0 {
		return fmt.Errorf("handler_timeout must be positive")
	}
	if q.GracefulShutdownTimeout <= 0 {
		return fmt.Errorf("graceful_shutdown_timeout must be positive")
	}
	if q.VisibilityTimeout <= q.HandlerTimeout {
		return fmt.Errorf("visibility_timeout must be greater than handler_timeout")
	}
	return nil
}
