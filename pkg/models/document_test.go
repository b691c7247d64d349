package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name string
		from string
		to   string
		want bool
	}{
		{"upload into ocr", StateUploaded, StateOCRProcessing, true},
		{"passthrough skips ocr", StateUploaded, StateOCRCompleted, true},
		{"ocr completes", StateOCRProcessing, StateOCRCompleted, true},
		{"ocr fails", StateOCRProcessing, StateOCRFailed, true},
		{"ocr retry after failure", StateOCRFailed, StateOCRProcessing, true},
		{"ocr rerun after completion", StateOCRCompleted, StateOCRProcessing, true},
		{"llm retry after failure", StateLLMFailed, StateLLMProcessing, true},
		{"kb retry after failure", StateKBIndexFailed, StateKBIndexProcessing, true},
		{"ocr fans into llm", StateOCRCompleted, StateLLMProcessing, true},
		{"ocr fans into kb", StateOCRCompleted, StateKBIndexProcessing, true},
		{"llm completes", StateLLMProcessing, StateLLMCompleted, true},
		{"kb runs after llm", StateLLMCompleted, StateKBIndexProcessing, true},
		{"self transition is idempotent", StateLLMProcessing, StateLLMProcessing, true},

		// Backwards moves are rejected: the pipeline is monotonic.
		{"no return to uploaded", StateOCRCompleted, StateUploaded, false},
		{"no ocr after llm", StateLLMCompleted, StateOCRProcessing, false},
		{"no llm from uploaded", StateUploaded, StateLLMProcessing, false},
		{"no skipping ocr outcome", StateOCRProcessing, StateLLMCompleted, false},
		{"unknown state goes nowhere", "bogus", StateOCRProcessing, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanTransition(tt.from, tt.to))
		})
	}
}

func TestTransitionsNeverReachUploaded(t *testing.T) {
	// uploaded is the unique entry state: nothing may transition into it.
	for from, tos := range transitions {
		assert.False(t, tos[StateUploaded], "state %s must not reach uploaded", from)
	}
}

func TestRetryQueue(t *testing.T) {
	assert.Equal(t, QueueOCR, RetryQueue(StateUploaded))
	assert.Equal(t, QueueOCR, RetryQueue(StateOCRFailed))
	assert.Equal(t, QueueOCR, RetryQueue(StateOCRCompleted))
	assert.Equal(t, QueueLLM, RetryQueue(StateLLMFailed))
	assert.Equal(t, QueueLLM, RetryQueue(StateLLMCompleted))
	assert.Equal(t, QueueKBIndex, RetryQueue(StateKBIndexFailed))
}

func TestRetryQueueReentersItsStage(t *testing.T) {
	// A forced re-run must land on a queue whose handler can move the
	// document back into that stage's processing state.
	reentry := map[string]string{
		QueueOCR:     StateOCRProcessing,
		QueueLLM:     StateLLMProcessing,
		QueueKBIndex: StateKBIndexProcessing,
	}
	for _, state := range []string{
		StateUploaded,
		StateOCRProcessing, StateOCRCompleted, StateOCRFailed,
		StateLLMProcessing, StateLLMCompleted, StateLLMFailed,
		StateKBIndexProcessing, StateKBIndexCompleted, StateKBIndexFailed,
	} {
		target := reentry[RetryQueue(state)]
		assert.True(t, CanTransition(state, target),
			"retry from %s cannot enter %s", state, target)
	}
}

func TestStageOfState(t *testing.T) {
	assert.Equal(t, "", StageOfState(StateUploaded))
	assert.Equal(t, "ocr", StageOfState(StateOCRFailed))
	assert.Equal(t, "llm", StageOfState(StateLLMCompleted))
	assert.Equal(t, "kb_index", StageOfState(StateKBIndexProcessing))
	assert.Equal(t, "", StageOfState("bogus"))
}
