// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides HTTP helpers shared by the API clients.
package httputil

import (
	"fmt"
	"io"
	"math"
	"net/http"
	"os"
	"time"
)

// RetryBaseDelay controls the base duration for exponential backoff on
// HTTP 429 responses. Tests override this to avoid real sleeps.
var RetryBaseDelay = 10 * time.Second

const defaultMaxRetries = 3

// RateLimitTransport retries HTTP 429 (Too Many Requests) responses
// with exponential backoff. The delay starts at RetryBaseDelay and
// doubles each attempt: 10 s, 20 s, 40 s. Clients are built without it
// by default; it implements the opt-in wait-on-rate-limit behavior.
//
// Only suitable for requests without a body: attempts re-send a clone
// of the original request and bodies are not replayed.
type RateLimitTransport struct {
	// Base is the wrapped transport. nil means http.DefaultTransport.
	Base http.RoundTripper

	// MaxRetries caps retry attempts. Zero means the default (3).
	MaxRetries int
}

// RoundTrip implements http.RoundTripper. On each 429 the response body
// is drained and closed before sleeping. If the request context is
// cancelled during a backoff wait the context error is returned. After
// exhausting retries the last 429 response is returned so the caller
// can inspect it.
func (t *RateLimitTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := t.Base
	if base == nil {
		base = http.DefaultTransport
	}
	maxRetries := t.MaxRetries
	if maxRetries <= 0 {
		maxRetries = defaultMaxRetries
	}

	ctx := req.Context()
	for attempt := 0; ; attempt++ {
		resp, err := base.RoundTrip(req.Clone(ctx))
		if err != nil {
			return nil, err
		}

		if resp.StatusCode != http.StatusTooManyRequests {
			return resp, nil
		}

		// Out of retries: hand back the 429 as-is.
		if attempt >= maxRetries {
			return resp, nil
		}

		// The body must be drained and closed before the retry.
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()

		backoff := time.Duration(math.Pow(2, float64(attempt))) * RetryBaseDelay
		fmt.Fprintf(os.Stderr, "rate limited, retrying in %v (attempt %d/%d)\n", backoff, attempt+1, maxRetries)

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(backoff):
		}
	}
}

// RetryBudget returns the total time a RateLimitTransport may spend in
// backoff sleeps across maxRetries attempts (zero means the default).
// Backoffs double per attempt, so the budget is (2^maxRetries - 1)
// times RetryBaseDelay. Callers that put an overall deadline on an
// exchange must allow for this on top of the request time.
func RetryBudget(maxRetries int) time.Duration {
	if maxRetries <= 0 {
		maxRetries = defaultMaxRetries
	}
	var total time.Duration
	for attempt := 0; attempt < maxRetries; attempt++ {
		total += time.Duration(math.Pow(2, float64(attempt))) * RetryBaseDelay
	}
	return total
}
