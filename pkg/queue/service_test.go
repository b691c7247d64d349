package queue

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docpipe/docpipe/ent/queuemessage"
	"github.com/docpipe/docpipe/pkg/database"
	testdb "github.com/docpipe/docpipe/test/database"
)

func setupTestService(t *testing.T) (*Service, *database.Client) {
	t.Helper()
	client := testdb.NewTestClient(t)
	svc := NewService(client.Client, client.DB(), nil, 50*time.Millisecond)
	return svc, client
}

func TestService_SendRecv(t *testing.T) {
	svc, _ := setupTestService(t)
	ctx := context.Background()

	id, err := svc.Send(ctx, "ocr", map[string]interface{}{"document_id": "doc-1"})
	require.NoError(t, err)
	require.NotEmpty(t, id)

	msg, err := svc.Recv(ctx, "ocr")
	require.NoError(t, err)
	require.NotNil(t, msg)
	assert.Equal(t, id, msg.ID)
	assert.Equal(t, "ocr", msg.Queue)
	assert.Equal(t, StatusProcessing, msg.Status)
	assert.Equal(t, "doc-1", msg.Payload["document_id"])

	// The claim is exclusive: a second receive finds nothing.
	again, err := svc.Recv(ctx, "ocr")
	require.NoError(t, err)
	assert.Nil(t, again)
}

func TestService_RecvEmptyQueue(t *testing.T) {
	svc, _ := setupTestService(t)

	msg, err := svc.Recv(context.Background(), "ocr")
	require.NoError(t, err)
	assert.Nil(t, msg)
}

func TestService_RecvIsolatedPerQueue(t *testing.T) {
	svc, _ := setupTestService(t)
	ctx := context.Background()

	_, err := svc.Send(ctx, "llm", map[string]interface{}{"document_id": "doc-1"})
	require.NoError(t, err)

	msg, err := svc.Recv(ctx, "ocr")
	require.NoError(t, err)
	assert.Nil(t, msg)

	msg, err = svc.Recv(ctx, "llm")
	require.NoError(t, err)
	require.NotNil(t, msg)
}

func TestService_RecvOrderedOldestFirst(t *testing.T) {
	svc, _ := setupTestService(t)
	ctx := context.Background()

	var sent []string
	for i := 0; i < 5; i++ {
		id, err := svc.Send(ctx, "ocr", map[string]interface{}{"seq": i})
		require.NoError(t, err)
		sent = append(sent, id)
		// created_at has finite resolution; the (created_at, id) order
		// still holds but spacing keeps the intent of the test obvious.
		time.Sleep(5 * time.Millisecond)
	}

	var got []string
	for range sent {
		msg, err := svc.Recv(ctx, "ocr")
		require.NoError(t, err)
		require.NotNil(t, msg)
		got = append(got, msg.ID)
	}
	assert.Equal(t, sent, got)
}

func TestService_ConcurrentRecvNoDoubleClaim(t *testing.T) {
	svc, _ := setupTestService(t)
	ctx := context.Background()

	const messages = 20
	for i := 0; i < messages; i++ {
		_, err := svc.Send(ctx, "ocr", map[string]interface{}{"seq": i})
		require.NoError(t, err)
	}

	var mu sync.Mutex
	claimed := make(map[string]int)

	var wg sync.WaitGroup
	for w := 0; w < 4; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				msg, err := svc.Recv(ctx, "ocr")
				require.NoError(t, err)
				if msg == nil {
					return
				}
				mu.Lock()
				claimed[msg.ID]++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Len(t, claimed, messages)
	for id, n := range claimed {
		assert.Equal(t, 1, n, "message %s claimed more than once", id)
	}
}

func TestService_Complete(t *testing.T) {
	svc, client := setupTestService(t)
	ctx := context.Background()

	id, err := svc.Send(ctx, "ocr", map[string]interface{}{"document_id": "doc-1"})
	require.NoError(t, err)

	t.Run("rejects non-terminal status", func(t *testing.T) {
		err := svc.Complete(ctx, "ocr", id, StatusPending)
		require.Error(t, err)
	})

	t.Run("completing a pending message is a no-op", func(t *testing.T) {
		require.NoError(t, svc.Complete(ctx, "ocr", id, StatusCompleted))
		row, err := client.QueueMessage.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, queuemessage.StatusPending, row.Status)
	})

	msg, err := svc.Recv(ctx, "ocr")
	require.NoError(t, err)
	require.NotNil(t, msg)

	t.Run("moves processing to terminal", func(t *testing.T) {
		require.NoError(t, svc.Complete(ctx, "ocr", id, StatusCompleted))
		row, err := client.QueueMessage.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, queuemessage.StatusCompleted, row.Status)
		assert.NotNil(t, row.CompletedAt)
	})

	t.Run("idempotent once terminal", func(t *testing.T) {
		require.NoError(t, svc.Complete(ctx, "ocr", id, StatusFailed))
		row, err := client.QueueMessage.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, queuemessage.StatusCompleted, row.Status)
	})
}

func TestService_ResetStuck(t *testing.T) {
	svc, client := setupTestService(t)
	ctx := context.Background()

	id, err := svc.Send(ctx, "ocr", map[string]interface{}{"document_id": "doc-1"})
	require.NoError(t, err)
	msg, err := svc.Recv(ctx, "ocr")
	require.NoError(t, err)
	require.NotNil(t, msg)

	// A freshly claimed message is not stuck.
	n, err := svc.ResetStuck(ctx, time.Minute)
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	// Backdate the claim past the visibility timeout.
	_, err = client.QueueMessage.UpdateOneID(id).
		SetClaimedAt(time.Now().UTC().Add(-2 * time.Minute)).
		Save(ctx)
	require.NoError(t, err)

	n, err = svc.ResetStuck(ctx, time.Minute)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	// The message is claimable again.
	msg, err = svc.Recv(ctx, "ocr")
	require.NoError(t, err)
	require.NotNil(t, msg)
	assert.Equal(t, id, msg.ID)
}

func TestService_PurgeTerminal(t *testing.T) {
	svc, client := setupTestService(t)
	ctx := context.Background()

	oldID, err := svc.Send(ctx, "ocr", map[string]interface{}{"seq": 1})
	require.NoError(t, err)
	freshID, err := svc.Send(ctx, "ocr", map[string]interface{}{"seq": 2})
	require.NoError(t, err)
	pendingID, err := svc.Send(ctx, "ocr", map[string]interface{}{"seq": 3})
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		msg, err := svc.Recv(ctx, "ocr")
		require.NoError(t, err)
		require.NotNil(t, msg)
		require.NoError(t, svc.Complete(ctx, "ocr", msg.ID, StatusCompleted))
	}

	// Backdate one completion past the retention window.
	_, err = client.QueueMessage.UpdateOneID(oldID).
		SetCompletedAt(time.Now().UTC().Add(-48 * time.Hour)).
		Save(ctx)
	require.NoError(t, err)

	n, err := svc.PurgeTerminal(ctx, 24*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	_, err = client.QueueMessage.Get(ctx, oldID)
	assert.Error(t, err)
	_, err = client.QueueMessage.Get(ctx, freshID)
	assert.NoError(t, err)
	_, err = client.QueueMessage.Get(ctx, pendingID)
	assert.NoError(t, err)
}

func TestService_Depth(t *testing.T) {
	svc, _ := setupTestService(t)
	ctx := context.Background()

	n, err := svc.Depth(ctx, "ocr")
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	for i := 0; i < 3; i++ {
		_, err := svc.Send(ctx, "ocr", map[string]interface{}{"seq": i})
		require.NoError(t, err)
	}

	n, err = svc.Depth(ctx, "ocr")
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	msg, err := svc.Recv(ctx, "ocr")
	require.NoError(t, err)
	require.NotNil(t, msg)

	n, err = svc.Depth(ctx, "ocr")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestService_RecvWithTimeout(t *testing.T) {
	t.Run("returns immediately when a message is pending", func(t *testing.T) {
		svc, _ := setupTestService(t)
		ctx := context.Background()

		_, err := svc.Send(ctx, "ocr", map[string]interface{}{"document_id": "doc-1"})
		require.NoError(t, err)

		start := time.Now()
		msg, err := svc.RecvWithTimeout(ctx, "ocr", 5*time.Second)
		require.NoError(t, err)
		require.NotNil(t, msg)
		assert.Less(t, time.Since(start), time.Second)
	})

	t.Run("returns nil at the deadline", func(t *testing.T) {
		svc, _ := setupTestService(t)

		start := time.Now()
		msg, err := svc.RecvWithTimeout(context.Background(), "ocr", 200*time.Millisecond)
		require.NoError(t, err)
		assert.Nil(t, msg)
		assert.GreaterOrEqual(t, time.Since(start), 200*time.Millisecond)
	})

	t.Run("picks up a message sent while blocked", func(t *testing.T) {
		svc, _ := setupTestService(t)
		ctx := context.Background()

		go func() {
			time.Sleep(100 * time.Millisecond)
			_, _ = svc.Send(ctx, "ocr", map[string]interface{}{"document_id": "doc-late"})
		}()

		msg, err := svc.RecvWithTimeout(ctx, "ocr", 3*time.Second)
		require.NoError(t, err)
		require.NotNil(t, msg)
		assert.Equal(t, "doc-late", msg.Payload["document_id"])
	})

	t.Run("honors context cancellation", func(t *testing.T) {
		svc, _ := setupTestService(t)

		ctx, cancel := context.WithCancel(context.Background())
		go func() {
			time.Sleep(50 * time.Millisecond)
			cancel()
		}()

		_, err := svc.RecvWithTimeout(ctx, "ocr", 5*time.Second)
		assert.ErrorIs(t, err, context.Canceled)
	})
}
