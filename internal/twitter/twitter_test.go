// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package twitter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sociolex/coinage/pkg/types"
)

// newTestClient points the package at an httptest server and returns a
// Client that talks to it.
func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	old := apiBase
	apiBase = ts.URL + "/"
	t.Cleanup(func() { apiBase = old })

	return NewClient(ts.Client())
}

func TestNewClientNilHTTPClient(t *testing.T) {
	c := NewClient(nil)
	if c.Tweets == nil || c.Users == nil {
		t.Fatal("NewClient(nil) should still wire both services")
	}
}

func TestNewClientDefaultUserAgent(t *testing.T) {
	var gotUA string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":{"id":"7","name":"Bob","username":"bob"}}`))
	}))

	_, err := client.Users.Lookup(context.Background(), "7", types.SearchConfig{})
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if gotUA != defaultUserAgent {
		t.Errorf("User-Agent = %q, want %q", gotUA, defaultUserAgent)
	}
}
