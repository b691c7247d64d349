// Package ocr defines the OCR provider port.
package ocr

import "context"

// Block is one recognized text region.
type Block struct {
	Page int     `json:"page"`
	Text string  `json:"text"`
	Conf float64 `json:"conf,omitempty"`
}

// Result is the output of processing one document.
type Result struct {
	Blocks []Block
	// Pages holds the flat text of each page, index 0 = page 1.
	Pages []string
}

// Provider converts a PDF into text. Implementations wrap an external
// OCR service; the pipeline treats any error as a stage failure.
type Provider interface {
	Process(ctx context.Context, pdf []byte, fileName string) (*Result, error)
}
