package webhook

import (
	"math/rand/v2"
	"net/http"
	"strconv"
	"time"
)

// Delivery outcomes after one attempt.
type outcome int

const (
	outcomeSucceeded outcome = iota
	outcomeRetry
	outcomeGivingUp
)

// classify maps an attempt result to an outcome. statusCode 0 means the
// request never produced a response (transport error), which is always
// retryable. 408 and 429 are the only 4xx codes worth retrying.
func classify(statusCode int) outcome {
	switch {
	case statusCode >= 200 && statusCode < 300:
		return outcomeSucceeded
	case statusCode == http.StatusRequestTimeout, statusCode == http.StatusTooManyRequests:
		return outcomeRetry
	case statusCode >= 400 && statusCode < 500:
		return outcomeGivingUp
	default:
		return outcomeRetry
	}
}

// backoffDelay returns the wait before the next attempt: exponential in
// the attempt count (1-based), capped, plus jitter in [0, jitterFrac·d).
// retryAfter, when positive, floors the pre-jitter delay so a 429's
// Retry-After header is honored.
func backoffDelay(attempts int, base, cap time.Duration, jitterFrac float64, retryAfter time.Duration) time.Duration {
	if attempts < 1 {
		attempts = 1
	}

	delay := base
	for i := 1; i < attempts; i++ {
		delay *= 2
		if delay >= cap {
			delay = cap
			break
		}
	}
	if delay > cap {
		delay = cap
	}
	if retryAfter > delay {
		delay = retryAfter
	}

	if jitterFrac > 0 {
		jitter := time.Duration(rand.Int64N(int64(float64(delay) * jitterFrac)))
		delay += jitter
	}
	return delay
}

// parseRetryAfter reads a Retry-After header as delay seconds or an
// HTTP date. Returns 0 when absent or unparseable.
func parseRetryAfter(resp *http.Response) time.Duration {
	if resp == nil {
		return 0
	}
	raw := resp.Header.Get("Retry-After")
	if raw == "" {
		return 0
	}
	if secs, err := strconv.Atoi(raw); err == nil && secs > 0 {
		return time.Duration(secs) * time.Second
	}
	if t, err := http.ParseTime(raw); err == nil {
		if d := time.Until(t); d > 0 {
			return d
		}
	}
	return 0
}
