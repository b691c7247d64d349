package queue

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docpipe/docpipe/ent/queuemessage"
	"github.com/docpipe/docpipe/pkg/config"
	testdb "github.com/docpipe/docpipe/test/database"
)

// collectingHandler records every message it sees. The first `failures`
// calls return an error, simulating transient faults.
type collectingHandler struct {
	mu       sync.Mutex
	seen     []string
	err      error
	failures int
	done     chan struct{} // closed externally to signal expected count reached
}

func (h *collectingHandler) Handle(ctx context.Context, msg *Message) error {
	h.mu.Lock()
	h.seen = append(h.seen, msg.ID)
	fail := h.failures > 0
	if fail {
		h.failures--
	}
	h.mu.Unlock()
	if fail {
		return errors.New("transient failure")
	}
	return h.err
}

func (h *collectingHandler) count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.seen)
}

func testQueueConfig() *config.QueueConfig {
	cfg := config.DefaultQueueConfig()
	cfg.WorkersPerQueue = 2
	cfg.PollInterval = 50 * time.Millisecond
	cfg.RecoveryInterval = 100 * time.Millisecond
	cfg.RetentionInterval = 100 * time.Millisecond
	return cfg
}

func waitFor(t *testing.T, timeout time.Duration, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(20 * time.Millisecond)
	}
	t.Fatal("condition not met before timeout")
}

func TestWorker_ProcessesMessages(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewService(client.Client, client.DB(), nil, 50*time.Millisecond)
	ctx := context.Background()

	handler := &collectingHandler{}
	worker := NewWorker("w-1", "pod-test", "ocr", svc, testQueueConfig(), handler)
	worker.Start(ctx)
	defer worker.Stop()

	_, err := svc.Send(ctx, "ocr", map[string]interface{}{"document_id": "doc-1"})
	require.NoError(t, err)

	waitFor(t, 5*time.Second, func() bool { return handler.count() >= 1 })
}

func TestWorkerPool(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewService(client.Client, client.DB(), nil, 50*time.Millisecond)
	ctx := context.Background()

	handler := &collectingHandler{}
	pool := NewWorkerPool("pod-test", svc, testQueueConfig(), map[string]Handler{
		"ocr": handler,
	})
	require.NoError(t, pool.Start(ctx))
	defer pool.Stop()

	const messages = 5
	ids := make(map[string]bool)
	for i := 0; i < messages; i++ {
		id, err := svc.Send(ctx, "ocr", map[string]interface{}{"seq": i})
		require.NoError(t, err)
		ids[id] = true
	}

	waitFor(t, 10*time.Second, func() bool { return handler.count() >= messages })

	// Every message completed exactly once.
	handler.mu.Lock()
	seen := append([]string(nil), handler.seen...)
	handler.mu.Unlock()
	assert.Len(t, seen, messages)
	for _, id := range seen {
		assert.True(t, ids[id])
	}

	waitFor(t, 5*time.Second, func() bool {
		n, err := client.QueueMessage.Query().
			Where(queuemessage.StatusEQ(queuemessage.StatusCompleted)).
			Count(ctx)
		require.NoError(t, err)
		return n == messages
	})

	health := pool.Health()
	assert.True(t, health.IsHealthy)
	assert.Equal(t, 2, health.TotalWorkers)
	assert.Equal(t, "pod-test", health.PodID)
}

func TestWorker_HandlerErrorLeavesMessageForRedelivery(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewService(client.Client, client.DB(), nil, 50*time.Millisecond)
	ctx := context.Background()

	handler := &collectingHandler{err: errors.New("db blip")}
	worker := NewWorker("w-1", "pod-test", "ocr", svc, testQueueConfig(), handler)
	worker.Start(ctx)

	id, err := svc.Send(ctx, "ocr", map[string]interface{}{"document_id": "doc-1"})
	require.NoError(t, err)

	waitFor(t, 5*time.Second, func() bool { return handler.count() >= 1 })
	worker.Stop()

	// The errored message is neither completed nor failed: it stays
	// claimed until the visibility timeout makes it pending again.
	row, err := client.QueueMessage.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, queuemessage.StatusProcessing, row.Status)

	n, err := svc.ResetStuck(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	row, err = client.QueueMessage.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, queuemessage.StatusPending, row.Status)
}

func TestWorkerPool_RedeliversAfterTransientError(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewService(client.Client, client.DB(), nil, 50*time.Millisecond)
	ctx := context.Background()

	cfg := testQueueConfig()
	cfg.VisibilityTimeout = 300 * time.Millisecond
	cfg.HandlerTimeout = 200 * time.Millisecond

	handler := &collectingHandler{failures: 1}
	pool := NewWorkerPool("pod-test", svc, cfg, map[string]Handler{
		"ocr": handler,
	})
	require.NoError(t, pool.Start(ctx))
	defer pool.Stop()

	id, err := svc.Send(ctx, "ocr", map[string]interface{}{"document_id": "doc-1"})
	require.NoError(t, err)

	// First attempt errors, the recovery sweep returns the message to
	// pending, and the second attempt completes it.
	waitFor(t, 10*time.Second, func() bool {
		row, err := client.QueueMessage.Get(ctx, id)
		require.NoError(t, err)
		return row.Status == queuemessage.StatusCompleted
	})
	assert.GreaterOrEqual(t, handler.count(), 2)
}

func TestWorkerPool_StartIsIdempotent(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewService(client.Client, client.DB(), nil, 50*time.Millisecond)

	pool := NewWorkerPool("pod-test", svc, testQueueConfig(), map[string]Handler{
		"ocr": &collectingHandler{},
	})
	ctx := context.Background()
	require.NoError(t, pool.Start(ctx))
	require.NoError(t, pool.Start(ctx))
	defer pool.Stop()

	assert.Equal(t, 2, pool.Health().TotalWorkers)
}

func TestRecoverStartupBacklog(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewService(client.Client, client.DB(), nil, 50*time.Millisecond)
	ctx := context.Background()

	id, err := svc.Send(ctx, "ocr", map[string]interface{}{"document_id": "doc-1"})
	require.NoError(t, err)
	msg, err := svc.Recv(ctx, "ocr")
	require.NoError(t, err)
	require.NotNil(t, msg)

	_, err = client.QueueMessage.UpdateOneID(id).
		SetClaimedAt(time.Now().UTC().Add(-time.Hour)).
		Save(ctx)
	require.NoError(t, err)

	require.NoError(t, RecoverStartupBacklog(ctx, svc, 10*time.Minute))

	row, err := client.QueueMessage.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, queuemessage.StatusPending, row.Status)
}
