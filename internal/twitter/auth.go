// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package twitter

import (
	"context"
	"net/http"

	"github.com/dghubble/oauth1"
	"golang.org/x/oauth2"

	"github.com/sociolex/coinage/internal/httputil"
	"github.com/sociolex/coinage/pkg/types"
)

// NewBearerClient returns an http.Client that authorizes requests with
// the app-only bearer token, the API's default read-only credential.
func NewBearerClient(ctx context.Context, bearerToken string, cfg types.SearchConfig) *http.Client {
	src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: bearerToken})
	client := oauth2.NewClient(ctx, src)
	client.Timeout = cfg.Timeout
	return withRateLimitWait(client, cfg)
}

// NewUserAuthClient returns an http.Client that signs requests with
// OAuth1 user-context credentials.
func NewUserAuthClient(ctx context.Context, consumerKey, consumerSecret, accessToken, accessSecret string, cfg types.SearchConfig) *http.Client {
	config := oauth1.NewConfig(consumerKey, consumerSecret)
	token := oauth1.NewToken(accessToken, accessSecret)
	client := config.Client(ctx, token)
	client.Timeout = cfg.Timeout
	return withRateLimitWait(client, cfg)
}

// withRateLimitWait wraps the client's transport so HTTP 429 responses
// are waited out and retried. Retried attempts pass back through the
// signing transport, so each retry is signed fresh. Requests carry no
// body, which keeps the replay safe.
func withRateLimitWait(client *http.Client, cfg types.SearchConfig) *http.Client {
	if !cfg.WaitOnRateLimit {
		return client
	}
	client.Transport = &httputil.RateLimitTransport{
		Base:       client.Transport,
		MaxRetries: cfg.RateLimitRetries,
	}
	// The client timeout spans every attempt plus the backoff sleeps
	// between them; stretch it by the worst-case sleep budget so
	// waiting out the limit cannot trip the deadline.
	if client.Timeout > 0 {
		client.Timeout += httputil.RetryBudget(cfg.RateLimitRetries)
	}
	return client
}
