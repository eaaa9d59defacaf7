// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package twitter is a minimal client for the Twitter API v2 endpoints
// the coinage report needs: recent search and single-user lookup.
//
// Authorized HTTP clients come from NewBearerClient (app-only, the
// default) or NewUserAuthClient (OAuth1 user context). Both honor the
// opt-in wait-on-rate-limit setting.
package twitter

import (
	"net/http"

	"github.com/dghubble/sling"
)

// apiBase is the Twitter API v2 root. Declared as a var so tests can
// substitute an httptest server.
var apiBase = "https://api.twitter.com/2/"

// defaultUserAgent identifies the tool when a run does not configure one.
const defaultUserAgent = "coinage/0.1"

// Client bundles the v2 endpoint services behind one sling base.
type Client struct {
	sling *sling.Sling

	Tweets *TweetService
	Users  *UserService
}

// NewClient returns a Client that sends requests through httpClient.
// Pass a client from NewBearerClient or NewUserAuthClient; nil falls
// back to http.DefaultClient.
func NewClient(httpClient *http.Client) *Client {
	base := sling.New().Client(httpClient).Base(apiBase).Set("User-Agent", defaultUserAgent)
	return &Client{
		sling:  base,
		Tweets: newTweetService(base.New()),
		Users:  newUserService(base.New()),
	}
}
