package models

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentTaskRoundTrip(t *testing.T) {
	task := DocumentTask{DocumentID: "0123456789abcdef01234567", Force: true}
	decoded, err := DecodeDocumentTask(task.Payload())
	require.NoError(t, err)
	assert.Equal(t, task, decoded)

	// Force is omitted from the payload when false.
	plain := DocumentTask{DocumentID: "0123456789abcdef01234567"}
	payload := plain.Payload()
	_, hasForce := payload["force"]
	assert.False(t, hasForce)
	decoded, err = DecodeDocumentTask(payload)
	require.NoError(t, err)
	assert.False(t, decoded.Force)
}

func TestDeliveryTaskRoundTrip(t *testing.T) {
	task := DeliveryTask{DeliveryID: "d-1"}
	decoded, err := DecodeDeliveryTask(task.Payload())
	require.NoError(t, err)
	assert.Equal(t, task, decoded)
}

func TestDecodeRejectsUnknownKind(t *testing.T) {
	payload := map[string]interface{}{"kind": "mystery", "document_id": "x"}

	_, err := DecodeDocumentTask(payload)
	assert.True(t, errors.Is(err, ErrUnknownKind))

	_, err = DecodeDeliveryTask(payload)
	assert.True(t, errors.Is(err, ErrUnknownKind))
}

func TestDecodeRejectsMissingIDs(t *testing.T) {
	_, err := DecodeDocumentTask(map[string]interface{}{"kind": KindDocument})
	require.Error(t, err)

	_, err = DecodeDeliveryTask(map[string]interface{}{"kind": KindDelivery})
	require.Error(t, err)
}
