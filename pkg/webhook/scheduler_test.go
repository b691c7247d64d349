package webhook

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docpipe/docpipe/ent/webhookdelivery"
	"github.com/docpipe/docpipe/pkg/models"
	"github.com/docpipe/docpipe/pkg/queue"
	"github.com/docpipe/docpipe/pkg/services"
)

func TestScheduler_Sweep(t *testing.T) {
	engine, configs, q, client := setupTestEngine(t)
	ctx := context.Background()

	upsertConfig(t, configs, "org-1", "https://receiver.test/hook", services.UpsertWebhookRequest{})

	dueID, err := engine.Publish(ctx, "org-1", EventDocumentUploaded, "doc-due", nil)
	require.NoError(t, err)
	futureID, err := engine.Publish(ctx, "org-1", EventDocumentUploaded, "doc-future", nil)
	require.NoError(t, err)
	stuckID, err := engine.Publish(ctx, "org-1", EventDocumentUploaded, "doc-stuck", nil)
	require.NoError(t, err)

	// Drain the publish-time queue messages so only sweep output remains.
	for {
		msg, err := q.Recv(ctx, models.QueueWebhook)
		require.NoError(t, err)
		if msg == nil {
			break
		}
		require.NoError(t, q.Complete(ctx, models.QueueWebhook, msg.ID, queue.StatusCompleted))
	}

	// One delivery is not due yet, one is stranded in_flight from a pod
	// that died longer ago than the in-flight timeout.
	_, err = client.WebhookDelivery.UpdateOneID(futureID).
		SetNextAttemptAt(time.Now().UTC().Add(time.Hour)).
		Save(ctx)
	require.NoError(t, err)
	_, err = client.WebhookDelivery.UpdateOneID(stuckID).
		SetStatus(webhookdelivery.StatusInFlight).
		SetUpdatedAt(time.Now().UTC().Add(-10 * time.Minute)).
		Save(ctx)
	require.NoError(t, err)

	sched := NewScheduler(client.Client, q, time.Minute)
	require.NoError(t, sched.sweep(ctx))

	// The stuck delivery is pending again.
	stuck, err := client.WebhookDelivery.Get(ctx, stuckID)
	require.NoError(t, err)
	assert.Equal(t, webhookdelivery.StatusPending, stuck.Status)

	// The sweep enqueued exactly the due deliveries: the original one and
	// the recovered one, but not the future one.
	enqueued := map[string]bool{}
	for {
		msg, err := q.Recv(ctx, models.QueueWebhook)
		require.NoError(t, err)
		if msg == nil {
			break
		}
		task, err := models.DecodeDeliveryTask(msg.Payload)
		require.NoError(t, err)
		enqueued[task.DeliveryID] = true
	}
	assert.True(t, enqueued[dueID])
	assert.True(t, enqueued[stuckID])
	assert.False(t, enqueued[futureID])
}

func TestScheduler_StartStop(t *testing.T) {
	_, _, q, client := setupTestEngine(t)

	sched := NewScheduler(client.Client, q, 50*time.Millisecond)
	sched.Start(context.Background())
	time.Sleep(150 * time.Millisecond)
	sched.Stop()
	// Stop is idempotent.
	sched.Stop()
}
