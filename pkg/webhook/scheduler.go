package webhook

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/docpipe/docpipe/ent"
	"github.com/docpipe/docpipe/ent/webhookdelivery"
	"github.com/docpipe/docpipe/pkg/models"
	"github.com/docpipe/docpipe/pkg/queue"
)

// sweepBatch bounds how many due deliveries one sweep re-enqueues.
const sweepBatch = 100

// inFlightTimeout is how long a delivery may sit in_flight before the
// sweep assumes its pod died and returns it to pending. Attempts are
// bounded by the HTTP timeout, so minutes of in_flight means a crash.
const inFlightTimeout = 5 * time.Minute

// Scheduler periodically re-enqueues deliveries whose next_attempt_at
// has arrived. Rescheduled retries have no queue message of their own;
// this sweep is what brings them back. Duplicate enqueues are harmless:
// ClaimByID admits each delivery once.
type Scheduler struct {
	client   *ent.Client
	queue    *queue.Service
	interval time.Duration
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewScheduler creates a scheduler sweeping every interval.
func NewScheduler(client *ent.Client, q *queue.Service, interval time.Duration) *Scheduler {
	return &Scheduler{
		client:   client,
		queue:    q,
		interval: interval,
		stopCh:   make(chan struct{}),
	}
}

// Start begins the sweep loop in a goroutine.
func (s *Scheduler) Start(ctx context.Context) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.run(ctx)
	}()
	slog.Info("Webhook scheduler started", "interval", s.interval)
}

// Stop signals the sweep loop to exit and waits for it.
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() { close(s.stopCh) })
	s.wg.Wait()
}

func (s *Scheduler) run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-s.stopCh:
			return
		case <-ticker.C:
			if err := s.sweep(ctx); err != nil {
				slog.Error("Webhook scheduler sweep failed", "error", err)
			}
		}
	}
}

// sweep returns crash-stranded in_flight deliveries to pending, then
// enqueues a webhook message for every due pending delivery.
func (s *Scheduler) sweep(ctx context.Context) error {
	stuck, err := s.client.WebhookDelivery.Update().
		Where(
			webhookdelivery.StatusEQ(webhookdelivery.StatusInFlight),
			webhookdelivery.UpdatedAtLT(time.Now().UTC().Add(-inFlightTimeout)),
		).
		SetStatus(webhookdelivery.StatusPending).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to reset stuck deliveries: %w", err)
	}
	if stuck > 0 {
		slog.Warn("Recovered stuck in-flight deliveries", "count", stuck)
	}

	due, err := s.client.WebhookDelivery.Query().
		Where(
			webhookdelivery.StatusEQ(webhookdelivery.StatusPending),
			webhookdelivery.NextAttemptAtLTE(time.Now().UTC()),
		).
		Order(ent.Asc(webhookdelivery.FieldNextAttemptAt)).
		Limit(sweepBatch).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query due deliveries: %w", err)
	}

	for _, d := range due {
		if _, err := s.queue.Send(ctx, models.QueueWebhook, models.DeliveryTask{DeliveryID: d.ID}.Payload()); err != nil {
			slog.Error("Failed to enqueue due delivery", "delivery_id", d.ID, "error", err)
		}
	}
	if len(due) > 0 {
		slog.Debug("Re-enqueued due deliveries", "count", len(due))
	}
	return nil
}
