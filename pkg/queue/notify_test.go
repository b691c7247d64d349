package queue

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	testdb "github.com/docpipe/docpipe/test/database"
	"github.com/docpipe/docpipe/test/util"
)

func TestChannelFor(t *testing.T) {
	assert.Equal(t, "docpipe_queue_ocr", ChannelFor("ocr"))
	assert.Equal(t, "docpipe_queue_webhook", ChannelFor("webhook"))
}

func TestNotifier_WakesOnSend(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	notifier := NewNotifier(util.GetBaseConnectionString(t), []string{"ocr"})
	require.NoError(t, notifier.Start(ctx))
	t.Cleanup(func() { notifier.Stop(context.Background()) })

	svc := NewService(client.Client, client.DB(), notifier, 10*time.Second)

	wake, cancel := notifier.Wakeups("ocr")
	defer cancel()

	_, err := svc.Send(ctx, "ocr", map[string]interface{}{"document_id": "doc-1"})
	require.NoError(t, err)

	select {
	case <-wake:
	case <-time.After(5 * time.Second):
		t.Fatal("no wakeup after Send")
	}
}

func TestNotifier_RecvWithTimeoutWakesBeforePoll(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	notifier := NewNotifier(util.GetBaseConnectionString(t), []string{"ocr"})
	require.NoError(t, notifier.Start(ctx))
	t.Cleanup(func() { notifier.Stop(context.Background()) })

	// A long poll interval: only the notification can deliver the message
	// in time.
	svc := NewService(client.Client, client.DB(), notifier, time.Minute)

	go func() {
		time.Sleep(200 * time.Millisecond)
		_, _ = svc.Send(ctx, "ocr", map[string]interface{}{"document_id": "doc-1"})
	}()

	start := time.Now()
	msg, err := svc.RecvWithTimeout(ctx, "ocr", 10*time.Second)
	require.NoError(t, err)
	require.NotNil(t, msg)
	assert.Less(t, time.Since(start), 5*time.Second)
}

func TestNotifier_WakeupsCoalesce(t *testing.T) {
	notifier := NewNotifier("", []string{"ocr"})

	wake, cancel := notifier.Wakeups("ocr")
	defer cancel()

	// Bursts collapse into one pending wakeup.
	notifier.wake("ocr")
	notifier.wake("ocr")
	notifier.wake("ocr")

	select {
	case <-wake:
	default:
		t.Fatal("expected a pending wakeup")
	}
	select {
	case <-wake:
		t.Fatal("wakeups did not coalesce")
	default:
	}
}

func TestNotifier_CancelUnsubscribes(t *testing.T) {
	notifier := NewNotifier("", []string{"ocr"})

	wake, cancel := notifier.Wakeups("ocr")
	cancel()

	notifier.wake("ocr")
	select {
	case <-wake:
		t.Fatal("cancelled subscriber still woken")
	default:
	}
}
