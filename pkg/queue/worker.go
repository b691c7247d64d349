package queue

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/docpipe/docpipe/pkg/config"
)

// WorkerStatus represents the current state of a worker.
type WorkerStatus string

// Worker status constants.
const (
	WorkerStatusIdle    WorkerStatus = "idle"
	WorkerStatusWorking WorkerStatus = "working"
)

// recvWindow bounds each blocking receive so the worker re-checks its
// stop channel between waits.
const recvWindow = 5 * time.Second

// Worker drains one named queue, dispatching each claimed message to
// the queue's handler.
type Worker struct {
	id       string
	podID    string
	queue    string
	svc      *Service
	config   *config.QueueConfig
	handler  Handler
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup

	// Health tracking
	mu                sync.RWMutex
	status            WorkerStatus
	currentMessageID  string
	messagesProcessed int
	lastActivity      time.Time
}

// NewWorker creates a worker bound to one queue and handler.
func NewWorker(id, podID, queue string, svc *Service, cfg *config.QueueConfig, handler Handler) *Worker {
	return &Worker{
		id:           id,
		podID:        podID,
		queue:        queue,
		svc:          svc,
		config:       cfg,
		handler:      handler,
		stopCh:       make(chan struct{}),
		status:       WorkerStatusIdle,
		lastActivity: time.Now(),
	}
}

// Start begins the worker receive loop in a goroutine.
func (w *Worker) Start(ctx context.Context) {
	w.wg.Add(1)
	go w.run(ctx)
}

// Stop signals the worker to stop and waits for it to finish.
// It is safe to call Stop multiple times.
func (w *Worker) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
	w.wg.Wait()
}

// Health returns the current worker health status.
func (w *Worker) Health() WorkerHealth {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return WorkerHealth{
		ID:                w.id,
		Queue:             w.queue,
		Status:            string(w.status),
		CurrentMessageID:  w.currentMessageID,
		MessagesProcessed: w.messagesProcessed,
		LastActivity:      w.lastActivity,
	}
}

// run is the main worker loop.
func (w *Worker) run(ctx context.Context) {
	defer w.wg.Done()

	log := slog.With("worker_id", w.id, "queue", w.queue, "pod_id", w.podID)
	log.Info("Worker started")

	for {
		select {
		case <-w.stopCh:
			log.Info("Worker shutting down")
			return
		case <-ctx.Done():
			log.Info("Context cancelled, worker shutting down")
			return
		default:
			msg, err := w.svc.RecvWithTimeout(ctx, w.queue, recvWindow)
			if err != nil {
				if ctx.Err() != nil {
					continue
				}
				log.Error("Error receiving message", "error", err)
				w.sleep(time.Second) // Brief backoff on error
				continue
			}
			if msg == nil {
				continue
			}
			w.process(ctx, msg)
		}
	}
}

// sleep waits for the given duration or until stop is signalled.
func (w *Worker) sleep(d time.Duration) {
	select {
	case <-w.stopCh:
	case <-time.After(d):
	}
}

// process dispatches one claimed message to the handler and completes
// it. Handlers absorb domain failures themselves (failed states live in
// their own tables) and return an error only for transient faults, so
// an errored message is left in processing for the recovery sweep to
// redeliver after the visibility timeout.
func (w *Worker) process(ctx context.Context, msg *Message) {
	log := slog.With("worker_id", w.id, "queue", w.queue, "msg_id", msg.ID)
	log.Info("Message claimed")

	w.setStatus(WorkerStatusWorking, msg.ID)
	defer w.setStatus(WorkerStatusIdle, "")

	handlerCtx, cancel := context.WithTimeout(ctx, w.config.HandlerTimeout)
	defer cancel()

	if err := w.handler.Handle(handlerCtx, msg); err != nil {
		log.Error("Handler failed, leaving message for redelivery", "error", err)
		return
	}

	// Use background context — worker ctx may be cancelled during shutdown.
	if err := w.svc.Complete(context.Background(), w.queue, msg.ID, StatusCompleted); err != nil {
		log.Error("Failed to complete message", "error", err)
		return
	}

	w.mu.Lock()
	w.messagesProcessed++
	w.mu.Unlock()

	log.Info("Message processing complete")
}

// setStatus updates the worker's health tracking state.
func (w *Worker) setStatus(status WorkerStatus, messageID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.status = status
	w.currentMessageID = messageID
	w.lastActivity = time.Now()
}
