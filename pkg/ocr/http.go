package ocr

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// HTTPProvider is a Provider backed by the OCR service's HTTP API.
type HTTPProvider struct {
	baseURL    string
	httpClient *http.Client
}

// NewHTTPProvider creates a provider for the OCR service at baseURL.
func NewHTTPProvider(baseURL string) *HTTPProvider {
	return &HTTPProvider{
		baseURL: baseURL,
		// OCR of large PDFs is slow; the pipeline's handler timeout is
		// the real bound.
		httpClient: &http.Client{Timeout: 10 * time.Minute},
	}
}

type processResponse struct {
	Blocks []Block  `json:"blocks"`
	Pages  []string `json:"pages"`
	Error  string   `json:"error,omitempty"`
}

// Process posts the PDF and returns the recognized text.
func (p *HTTPProvider) Process(ctx context.Context, pdf []byte, fileName string) (*Result, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/v1/process", bytes.NewReader(pdf))
	if err != nil {
		return nil, fmt.Errorf("failed to build ocr request: %w", err)
	}
	req.Header.Set("Content-Type", "application/pdf")
	req.Header.Set("X-File-Name", fileName)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ocr request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 256<<20))
	if err != nil {
		return nil, fmt.Errorf("failed to read ocr response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("ocr service returned %d: %s", resp.StatusCode, truncate(raw, 512))
	}

	var parsed processResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("failed to decode ocr response: %w", err)
	}
	if parsed.Error != "" {
		return nil, fmt.Errorf("ocr service error: %s", parsed.Error)
	}
	return &Result{Blocks: parsed.Blocks, Pages: parsed.Pages}, nil
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
