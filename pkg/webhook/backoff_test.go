package webhook

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   outcome
	}{
		{"200 ok", 200, outcomeSucceeded},
		{"201 created", 201, outcomeSucceeded},
		{"204 no content", 204, outcomeSucceeded},
		{"400 bad request", 400, outcomeGivingUp},
		{"401 unauthorized", 401, outcomeGivingUp},
		{"404 not found", 404, outcomeGivingUp},
		{"408 request timeout", 408, outcomeRetry},
		{"410 gone", 410, outcomeGivingUp},
		{"429 too many requests", 429, outcomeRetry},
		{"500 internal", 500, outcomeRetry},
		{"502 bad gateway", 502, outcomeRetry},
		{"503 unavailable", 503, outcomeRetry},
		{"transport error", 0, outcomeRetry},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classify(tt.status))
		})
	}
}

func TestBackoffDelay(t *testing.T) {
	base := 30 * time.Second
	cap := time.Hour

	t.Run("doubles per attempt without jitter", func(t *testing.T) {
		assert.Equal(t, 30*time.Second, backoffDelay(1, base, cap, 0, 0))
		assert.Equal(t, 60*time.Second, backoffDelay(2, base, cap, 0, 0))
		assert.Equal(t, 120*time.Second, backoffDelay(3, base, cap, 0, 0))
		assert.Equal(t, 240*time.Second, backoffDelay(4, base, cap, 0, 0))
	})

	t.Run("caps at the ceiling", func(t *testing.T) {
		// 30s * 2^7 = 64m > 1h
		assert.Equal(t, cap, backoffDelay(8, base, cap, 0, 0))
		assert.Equal(t, cap, backoffDelay(20, base, cap, 0, 0))
	})

	t.Run("jitter stays within the fraction", func(t *testing.T) {
		for i := 0; i < 100; i++ {
			d := backoffDelay(2, base, cap, 0.2, 0)
			assert.GreaterOrEqual(t, d, 60*time.Second)
			assert.Less(t, d, 72*time.Second)
		}
	})

	t.Run("retry-after floors the delay", func(t *testing.T) {
		d := backoffDelay(1, base, cap, 0, 5*time.Minute)
		assert.Equal(t, 5*time.Minute, d)

		// A Retry-After below the computed delay changes nothing.
		d = backoffDelay(4, base, cap, 0, time.Second)
		assert.Equal(t, 240*time.Second, d)
	})

	t.Run("zero attempts treated as first", func(t *testing.T) {
		assert.Equal(t, base, backoffDelay(0, base, cap, 0, 0))
	})
}

func TestParseRetryAfter(t *testing.T) {
	t.Run("seconds", func(t *testing.T) {
		resp := &http.Response{Header: http.Header{"Retry-After": []string{"120"}}}
		assert.Equal(t, 2*time.Minute, parseRetryAfter(resp))
	})

	t.Run("http date", func(t *testing.T) {
		future := time.Now().Add(90 * time.Second).UTC().Format(http.TimeFormat)
		resp := &http.Response{Header: http.Header{"Retry-After": []string{future}}}
		d := parseRetryAfter(resp)
		assert.Greater(t, d, 80*time.Second)
		assert.LessOrEqual(t, d, 90*time.Second)
	})

	t.Run("absent or garbage", func(t *testing.T) {
		assert.Equal(t, time.Duration(0), parseRetryAfter(nil))
		resp := &http.Response{Header: http.Header{}}
		assert.Equal(t, time.Duration(0), parseRetryAfter(resp))
		resp.Header.Set("Retry-After", "soon")
		assert.Equal(t, time.Duration(0), parseRetryAfter(resp))
	})
}
