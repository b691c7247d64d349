// Package queue provides named durable message queues over PostgreSQL
// with atomic claims, blocking receive, and crash recovery sweeps.
package queue

import (
	"context"
	"time"
)

// Message status values, mirrored by the queue_messages schema enum.
const (
	StatusPending    = "pending"
	StatusProcessing = "processing"
	StatusCompleted  = "completed"
	StatusFailed     = "failed"
)

// Message is a claimed or inspected queue message.
type Message struct {
	ID        string
	Queue     string
	Status    string
	Payload   map[string]interface{}
	CreatedAt time.Time
}

// Handler processes one claimed message. Returning an error never fails
// the message: the worker logs it and completes the message anyway, so
// the queue does not loop on poison messages. Handlers own all domain
// state transitions (document states, delivery rows) themselves.
type Handler interface {
	Handle(ctx context.Context, msg *Message) error
}

// HandlerFunc adapts a function to the Handler interface.
type HandlerFunc func(ctx context.Context, msg *Message) error

// Handle implements Handler.
func (f HandlerFunc) Handle(ctx context.Context, msg *Message) error {
	return f(ctx, msg)
}

// WorkerHealth contains health information for a single worker.
type WorkerHealth struct {
	ID                string    `json:"id"`
	Queue             string    `json:"queue"`
	Status            string    `json:"status"` // "idle" or "working"
	CurrentMessageID  string    `json:"current_message_id,omitempty"`
	MessagesProcessed int       `json:"messages_processed"`
	LastActivity      time.Time `json:"last_activity"`
}

// PoolHealth contains health information for the entire worker pool.
type PoolHealth struct {
	IsHealthy        bool           `json:"is_healthy"`
	PodID            string         `json:"pod_id"`
	ActiveWorkers    int            `json:"active_workers"`
	TotalWorkers     int            `json:"total_workers"`
	WorkerStats      []WorkerHealth `json:"worker_stats"`
	LastRecoverySweep time.Time     `json:"last_recovery_sweep"`
	MessagesRecovered int           `json:"messages_recovered"`
}
