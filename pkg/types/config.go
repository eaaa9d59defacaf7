package types

import "time"

// HTTPConfig holds shared HTTP settings used by components that make
// network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "coinage/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// SearchConfig holds settings for one recent-search run.
type SearchConfig struct {
	HTTPConfig `yaml:",inline"`

	// MaxResults is the number of results requested from the search
	// endpoint. Zero omits the parameter so the API default (10)
	// applies. The endpoint accepts 10 through 100; set values are
	// clamped into that window.
	MaxResults int `json:"max_results" yaml:"max_results"`

	// TweetFields lists the optional per-tweet fields requested from
	// the search endpoint. Empty means the client default.
	TweetFields []string `json:"tweet_fields" yaml:"tweet_fields"`

	// UserAuth selects OAuth1 user-context authentication instead of
	// the default app-only bearer token.
	UserAuth bool `json:"user_auth" yaml:"user_auth"`

	// WaitOnRateLimit waits out HTTP 429 responses with exponential
	// backoff instead of failing the run.
	WaitOnRateLimit bool `json:"wait_on_rate_limit" yaml:"wait_on_rate_limit"`

	// RateLimitRetries caps 429 retries when WaitOnRateLimit is set.
	// Zero means the default (3).
	RateLimitRetries int `json:"rate_limit_retries" yaml:"rate_limit_retries"`
}
