package queue

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"
)

// Notifier holds a dedicated LISTEN connection and fans queue wakeups
// out to blocked receivers. The set of queues is fixed at construction;
// the receive loop is the sole goroutine that touches the pgx
// connection, which avoids concurrent access races between
// WaitForNotification and Exec.
type Notifier struct {
	connString string
	queues     []string

	conn   *pgx.Conn
	connMu sync.Mutex

	subs   map[string]map[int]chan struct{} // queue -> subscriber id -> wakeup
	nextID int
	subsMu sync.Mutex

	// cancelLoop and loopDone coordinate graceful shutdown of the receive loop.
	cancelLoop context.CancelFunc
	loopDone   chan struct{}
}

// NewNotifier creates a notifier for the given queues. Start must
// succeed before wakeups are delivered; a service constructed with a
// nil notifier simply polls.
func NewNotifier(connString string, queues []string) *Notifier {
	return &Notifier{
		connString: connString,
		queues:     queues,
		subs:       make(map[string]map[int]chan struct{}),
	}
}

// Start establishes the dedicated connection, issues LISTEN for every
// queue channel, and begins the receive loop. An error here means the
// server cannot deliver notifications (or the connection failed);
// callers should log it and run without a notifier.
func (n *Notifier) Start(ctx context.Context) error {
	conn, err := pgx.Connect(ctx, n.connString)
	if err != nil {
		return fmt.Errorf("failed to connect for LISTEN: %w", err)
	}

	for _, q := range n.queues {
		sanitized := pgx.Identifier{ChannelFor(q)}.Sanitize()
		if _, err := conn.Exec(ctx, "LISTEN "+sanitized); err != nil {
			_ = conn.Close(ctx)
			return fmt.Errorf("LISTEN %s failed: %w", sanitized, err)
		}
	}

	n.connMu.Lock()
	n.conn = conn
	n.connMu.Unlock()

	loopCtx, cancel := context.WithCancel(context.Background())
	n.cancelLoop = cancel
	n.loopDone = make(chan struct{})
	go func() {
		defer close(n.loopDone)
		n.receiveLoop(loopCtx)
	}()

	slog.Info("Queue notifier started", "queues", len(n.queues))
	return nil
}

// Wakeups registers a wakeup channel for the named queue. The channel
// has capacity one and coalesces bursts; the returned cancel func must
// be called when the receiver stops waiting.
func (n *Notifier) Wakeups(queue string) (<-chan struct{}, func()) {
	ch := make(chan struct{}, 1)

	n.subsMu.Lock()
	id := n.nextID
	n.nextID++
	if n.subs[queue] == nil {
		n.subs[queue] = make(map[int]chan struct{})
	}
	n.subs[queue][id] = ch
	n.subsMu.Unlock()

	cancel := func() {
		n.subsMu.Lock()
		delete(n.subs[queue], id)
		n.subsMu.Unlock()
	}
	return ch, cancel
}

// receiveLoop waits for notifications and wakes subscribers. On
// connection errors it reconnects with backoff and re-issues LISTEN.
func (n *Notifier) receiveLoop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		n.connMu.Lock()
		conn := n.conn
		n.connMu.Unlock()

		if conn == nil {
			n.reconnect(ctx)
			continue
		}

		notification, err := conn.WaitForNotification(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return // shutting down
			}
			slog.Error("NOTIFY receive error", "error", err)
			n.reconnect(ctx)
			continue
		}

		queue := strings.TrimPrefix(notification.Channel, channelPrefix)
		n.wake(queue)
	}
}

// wake nudges every subscriber of the queue. Sends are non-blocking; a
// subscriber with a pending wakeup needs no second one.
func (n *Notifier) wake(queue string) {
	n.subsMu.Lock()
	defer n.subsMu.Unlock()
	for _, ch := range n.subs[queue] {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

// reconnect re-establishes the LISTEN connection with exponential
// backoff and re-issues LISTEN for every queue channel.
func (n *Notifier) reconnect(ctx context.Context) {
	n.connMu.Lock()
	defer n.connMu.Unlock()

	if n.conn != nil {
		_ = n.conn.Close(ctx)
		n.conn = nil
	}

	backoff := time.Second
	for {
		select {
		case <-ctx.Done():
			return
		case <-time.After(backoff):
		}

		conn, err := pgx.Connect(ctx, n.connString)
		if err != nil {
			slog.Error("LISTEN reconnect failed", "error", err, "backoff", backoff)
			backoff = min(backoff*2, 30*time.Second)
			continue
		}

		ok := true
		for _, q := range n.queues {
			sanitized := pgx.Identifier{ChannelFor(q)}.Sanitize()
			if _, err := conn.Exec(ctx, "LISTEN "+sanitized); err != nil {
				slog.Error("Re-LISTEN failed", "queue", q, "error", err)
				ok = false
				break
			}
		}
		if !ok {
			_ = conn.Close(ctx)
			backoff = min(backoff*2, 30*time.Second)
			continue
		}

		n.conn = conn
		slog.Info("Queue notifier reconnected")
		return
	}
}

// Stop signals the receive loop to exit, waits for it, then closes the
// connection.
func (n *Notifier) Stop(ctx context.Context) {
	if n.cancelLoop != nil {
		n.cancelLoop()
	}
	if n.loopDone != nil {
		<-n.loopDone
	}

	n.connMu.Lock()
	defer n.connMu.Unlock()
	if n.conn != nil {
		_ = n.conn.Close(ctx)
		n.conn = nil
	}
}
