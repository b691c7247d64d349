package queue

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/docpipe/docpipe/ent"
	"github.com/docpipe/docpipe/ent/queuemessage"
)

// channelPrefix namespaces the NOTIFY channels used for queue wakeups.
const channelPrefix = "docpipe_queue_"

// ChannelFor returns the NOTIFY channel name for a queue.
func ChannelFor(queue string) string {
	return channelPrefix + queue
}

// Service is the durable queue API. All operations are safe for
// concurrent use from multiple processes sharing one database.
type Service struct {
	client       *ent.Client
	db           *sql.DB
	notifier     *Notifier // nil when LISTEN/NOTIFY is unavailable
	pollInterval time.Duration
}

// NewService creates a queue service. notifier may be nil, in which case
// blocking receives fall back to pure polling at pollInterval.
func NewService(client *ent.Client, db *sql.DB, notifier *Notifier, pollInterval time.Duration) *Service {
	if pollInterval <= 0 {
		pollInterval = 500 * time.Millisecond
	}
	return &Service{
		client:       client,
		db:           db,
		notifier:     notifier,
		pollInterval: pollInterval,
	}
}

// Send enqueues payload on the named queue and returns the message id.
// The insert and the wakeup NOTIFY share one transaction: a receiver
// woken by the notification always finds the row.
func (s *Service) Send(ctx context.Context, queue string, payload map[string]interface{}) (string, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal payload: %w", err)
	}

	id := uuid.New().String()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO queue_messages (msg_id, queue, status, msg, created_at)
		 VALUES ($1, $2, $3, $4, NOW())`,
		id, queue, StatusPending, raw)
	if err != nil {
		return "", fmt.Errorf("failed to insert message: %w", err)
	}

	_, err = tx.ExecContext(ctx, `SELECT pg_notify($1, $2)`, ChannelFor(queue), id)
	if err != nil {
		return "", fmt.Errorf("failed to notify queue channel: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("failed to commit message: %w", err)
	}
	return id, nil
}

// Recv claims the oldest pending message on the named queue, marking it
// processing, or returns nil when the queue is empty. The claim uses
// FOR UPDATE SKIP LOCKED so concurrent receivers never claim the same
// message and never block on each other's claims.
func (s *Service) Recv(ctx context.Context, queue string) (*Message, error) {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	row, err := tx.QueueMessage.Query().
		Where(
			queuemessage.QueueEQ(queue),
			queuemessage.StatusEQ(queuemessage.StatusPending),
		).
		Order(ent.Asc(queuemessage.FieldCreatedAt), ent.Asc(queuemessage.FieldID)).
		Limit(1).
		ForUpdate(entsql.WithLockAction(entsql.SkipLocked)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query pending messages: %w", err)
	}

	claimed, err := tx.QueueMessage.UpdateOne(row).
		SetStatus(queuemessage.StatusProcessing).
		SetClaimedAt(time.Now().UTC()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to claim message %s: %w", row.ID, err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit claim: %w", err)
	}

	return &Message{
		ID:        claimed.ID,
		Queue:     claimed.Queue,
		Status:    StatusProcessing,
		Payload:   claimed.Msg,
		CreatedAt: claimed.CreatedAt,
	}, nil
}

// RecvWithTimeout blocks up to timeout for a message on the named queue.
// When the notifier is connected it wakes on NOTIFY; either way it
// re-polls every pollInterval so a missed notification delays a message
// by at most one interval. Returns nil at the deadline.
func (s *Service) RecvWithTimeout(ctx context.Context, queue string, timeout time.Duration) (*Message, error) {
	deadline := time.Now().Add(timeout)

	msg, err := s.Recv(ctx, queue)
	if err != nil || msg != nil {
		return msg, err
	}

	var wake <-chan struct{}
	if s.notifier != nil {
		ch, cancel := s.notifier.Wakeups(queue)
		defer cancel()
		wake = ch
	}

	for {
		remaining := time.Until(deadline)
		if remaining <= 0 {
			return nil, nil
		}
		wait := s.pollInterval
		if wait > remaining {
			wait = remaining
		}

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-wake:
			timer.Stop()
		case <-timer.C:
		}

		msg, err := s.Recv(ctx, queue)
		if err != nil || msg != nil {
			return msg, err
		}
	}
}

// Complete moves a processing message to a terminal status. Completing a
// message that is already terminal (or was reclaimed by a recovery
// sweep) is a no-op, so handlers may call it more than once.
func (s *Service) Complete(ctx context.Context, queue, id, status string) error {
	if status != StatusCompleted && status != StatusFailed {
		return fmt.Errorf("invalid terminal status %q", status)
	}
	_, err := s.client.QueueMessage.Update().
		Where(
			queuemessage.IDEQ(id),
			queuemessage.QueueEQ(queue),
			queuemessage.StatusEQ(queuemessage.StatusProcessing),
		).
		SetStatus(queuemessage.Status(status)).
		SetCompletedAt(time.Now().UTC()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to complete message %s: %w", id, err)
	}
	return nil
}

// ResetStuck returns messages claimed longer than olderThan ago to
// pending. This is the crash-recovery path: a worker that died mid
// message leaves it in processing, and the sweep makes it claimable
// again after the visibility timeout.
func (s *Service) ResetStuck(ctx context.Context, olderThan time.Duration) (int, error) {
	cutoff := time.Now().UTC().Add(-olderThan)
	n, err := s.client.QueueMessage.Update().
		Where(
			queuemessage.StatusEQ(queuemessage.StatusProcessing),
			queuemessage.ClaimedAtLT(cutoff),
		).
		SetStatus(queuemessage.StatusPending).
		ClearClaimedAt().
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to reset stuck messages: %w", err)
	}
	return n, nil
}

// PurgeTerminal deletes completed and failed messages older than
// olderThan, keyed on completion time.
func (s *Service) PurgeTerminal(ctx context.Context, olderThan time.Duration) (int, error) {
	cutoff := time.Now().UTC().Add(-olderThan)
	n, err := s.client.QueueMessage.Delete().
		Where(
			queuemessage.StatusIn(queuemessage.StatusCompleted, queuemessage.StatusFailed),
			queuemessage.CompletedAtLT(cutoff),
		).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to purge terminal messages: %w", err)
	}
	return n, nil
}

// Depth returns the number of pending messages on the named queue.
func (s *Service) Depth(ctx context.Context, queue string) (int, error) {
	n, err := s.client.QueueMessage.Query().
		Where(
			queuemessage.QueueEQ(queue),
			queuemessage.StatusEQ(queuemessage.StatusPending),
		).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count pending messages: %w", err)
	}
	return n, nil
}
