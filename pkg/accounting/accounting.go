// Package accounting defines the usage-recording port. Billing lives in
// another system; the pipeline only reports what it consumed.
package accounting

import "context"

// Usage is one billable unit of pipeline work.
type Usage struct {
	OrganizationID string
	DocumentID     string
	Operation      string // "ocr", "llm", "kb_index"
	Pages          int
	Tokens         int
}

// Recorder receives usage reports. Failures must not fail the pipeline;
// callers log and continue.
type Recorder interface {
	Record(ctx context.Context, u Usage) error
}

// NoOpRecorder drops usage reports.
type NoOpRecorder struct{}

// Record implements Recorder.
func (NoOpRecorder) Record(ctx context.Context, u Usage) error { return nil }
