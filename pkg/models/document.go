// Package models defines domain types shared by the pipeline, queue,
// services, and API layers.
package models

// Document pipeline states. The pipeline only ever moves a document
// forward along this DAG; a *_failed state is terminal for its stage
// until an explicit re-run enqueues a fresh message.
//
//	uploaded
//	  └─→ ocr_processing ─→ ocr_completed ─→ llm_processing ─→ llm_completed
//	                      └→ ocr_failed                      └→ llm_failed
//
// kb_index_* states track the side-effect indexing stage and do not
// gate the llm stage.
const (
	StateUploaded          = "uploaded"
	StateOCRProcessing     = "ocr_processing"
	StateOCRCompleted      = "ocr_completed"
	StateOCRFailed         = "ocr_failed"
	StateLLMProcessing     = "llm_processing"
	StateLLMCompleted      = "llm_completed"
	StateLLMFailed         = "llm_failed"
	StateKBIndexProcessing = "kb_index_processing"
	StateKBIndexCompleted  = "kb_index_completed"
	StateKBIndexFailed     = "kb_index_failed"
)

// transitions maps each state to the set of states reachable from it.
// A re-entry into a stage's processing state is allowed from that stage's
// failed state (explicit re-run) and from its own processing state
// (message redelivery under the at-least-once contract).
var transitions = map[string]map[string]bool{
	StateUploaded: {
		StateOCRProcessing: true,
		// Unsupported extensions pass straight through OCR.
		StateOCRCompleted: true,
	},
	StateOCRProcessing: {
		StateOCRProcessing: true,
		StateOCRCompleted:  true,
		StateOCRFailed:     true,
	},
	StateOCRCompleted: {
		StateLLMProcessing:     true,
		StateKBIndexProcessing: true,
		// Explicit re-runs re-enter the stage, like redeliveries do for
		// llm and kb_index.
		StateOCRProcessing: true,
	},
	StateOCRFailed: {
		StateOCRProcessing: true,
	},
	StateLLMProcessing: {
		StateLLMProcessing:     true,
		StateLLMCompleted:      true,
		StateLLMFailed:         true,
		StateKBIndexProcessing: true,
	},
	StateLLMCompleted: {
		StateKBIndexProcessing: true,
		// Redelivered llm messages re-enter processing idempotently.
		StateLLMProcessing: true,
	},
	StateLLMFailed: {
		StateLLMProcessing: true,
	},
	StateKBIndexProcessing: {
		StateKBIndexProcessing: true,
		StateKBIndexCompleted:  true,
		StateKBIndexFailed:     true,
		// llm runs concurrently with kb_index and may finish either side.
		StateLLMProcessing: true,
		StateLLMCompleted:  true,
		StateLLMFailed:     true,
	},
	StateKBIndexCompleted: {
		StateKBIndexProcessing: true,
		StateLLMProcessing:     true,
		StateLLMCompleted:      true,
		StateLLMFailed:         true,
	},
	StateKBIndexFailed: {
		StateKBIndexProcessing: true,
		StateLLMProcessing:     true,
		StateLLMCompleted:      true,
		StateLLMFailed:         true,
	},
}

// CanTransition reports whether moving a document from one state to
// another follows the pipeline DAG.
func CanTransition(from, to string) bool {
	if from == to {
		return true
	}
	return transitions[from][to]
}

// RetryQueue returns the queue a forced re-run of a document in the
// given state must land on. Re-runs re-enter the document's current
// stage: a document past ocr has no edge back into ocr_processing, so
// sending its retry to the ocr queue would be dropped by the handler.
func RetryQueue(state string) string {
	switch StageOfState(state) {
	case "llm":
		return QueueLLM
	case "kb_index":
		return QueueKBIndex
	default:
		return QueueOCR
	}
}

// StageOfState returns the pipeline stage a state belongs to: "ocr",
// "llm", "kb_index", or "" for the initial state.
func StageOfState(state string) string {
	switch state {
	case StateOCRProcessing, StateOCRCompleted, StateOCRFailed:
		return "ocr"
	case StateLLMProcessing, StateLLMCompleted, StateLLMFailed:
		return "llm"
	case StateKBIndexProcessing, StateKBIndexCompleted, StateKBIndexFailed:
		return "kb_index"
	}
	return ""
}
