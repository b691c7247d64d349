// Package llm talks to the completion service used for structured
// extraction.
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"time"
)

// Completer produces a completion for a prompt. The pipeline only needs
// this one call; tests substitute fakes.
type Completer interface {
	Complete(ctx context.Context, prompt, model string) (string, error)
}

// Client is an HTTP Completer against the completion service.
type Client struct {
	baseURL     string
	httpClient  *http.Client
	model       string
	temperature *float32
	maxTokens   *int32
}

// NewClient creates a client for the completion service at baseURL.
// Model defaults and sampling knobs come from the environment.
func NewClient(baseURL string) *Client {
	model := os.Getenv("LLM_MODEL")
	if model == "" {
		model = "gemini-2.0-flash"
	}

	var temperature *float32
	if tempStr := os.Getenv("LLM_TEMPERATURE"); tempStr != "" {
		if temp, err := strconv.ParseFloat(tempStr, 32); err == nil {
			temp32 := float32(temp)
			temperature = &temp32
		}
	}

	var maxTokens *int32
	if maxStr := os.Getenv("LLM_MAX_TOKENS"); maxStr != "" {
		if max, err := strconv.ParseInt(maxStr, 10, 32); err == nil {
			max32 := int32(max)
			maxTokens = &max32
		}
	}

	return &Client{
		baseURL:     baseURL,
		httpClient:  &http.Client{Timeout: 120 * time.Second},
		model:       model,
		temperature: temperature,
		maxTokens:   maxTokens,
	}
}

// DefaultModel returns the model used when a prompt revision does not
// pin one.
func (c *Client) DefaultModel() string {
	return c.model
}

type completeRequest struct {
	Model       string   `json:"model"`
	Prompt      string   `json:"prompt"`
	Temperature *float32 `json:"temperature,omitempty"`
	MaxTokens   *int32   `json:"max_tokens,omitempty"`
}

type completeResponse struct {
	Content string `json:"content"`
	Error   string `json:"error,omitempty"`
}

// Complete posts the prompt and returns the raw completion text.
func (c *Client) Complete(ctx context.Context, prompt, model string) (string, error) {
	if model == "" {
		model = c.model
	}

	body, err := json.Marshal(completeRequest{
		Model:       model,
		Prompt:      prompt,
		Temperature: c.temperature,
		MaxTokens:   c.maxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal completion request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/complete", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build completion request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("completion request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 16<<20))
	if err != nil {
		return "", fmt.Errorf("failed to read completion response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("completion service returned %d: %s", resp.StatusCode, raw)
	}

	var parsed completeResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", fmt.Errorf("failed to decode completion response: %w", err)
	}
	if parsed.Error != "" {
		return "", fmt.Errorf("completion service error: %s", parsed.Error)
	}
	return parsed.Content, nil
}
