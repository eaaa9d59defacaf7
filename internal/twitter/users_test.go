// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package twitter

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/sociolex/coinage/pkg/types"
)

// --- UserService.Lookup ---

func TestLookup(t *testing.T) {
	var gotPath string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"data":{"id":"7","name":"Bob Example","username":"bob"}}`)
	}))

	user, err := client.Users.Lookup(context.Background(), "7", types.SearchConfig{})
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if gotPath != "/users/7" {
		t.Errorf("path = %q, want /users/7", gotPath)
	}
	if user.ID != "7" || user.Name != "Bob Example" || user.Username != "bob" {
		t.Errorf("user = %+v", user)
	}
}

func TestLookupCustomUserAgent(t *testing.T) {
	var gotUA string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"data":{"id":"7","name":"Bob Example","username":"bob"}}`)
	}))

	cfg := types.SearchConfig{HTTPConfig: types.HTTPConfig{UserAgent: "fieldwork/2.0"}}
	if _, err := client.Users.Lookup(context.Background(), "7", cfg); err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if gotUA != "fieldwork/2.0" {
		t.Errorf("User-Agent = %q, want fieldwork/2.0", gotUA)
	}
}

func TestLookupEmptyID(t *testing.T) {
	client := NewClient(&http.Client{})
	_, err := client.Users.Lookup(context.Background(), "", types.SearchConfig{})
	if err == nil || !strings.Contains(err.Error(), "empty") {
		t.Errorf("expected empty id error, got: %v", err)
	}
}

// The users endpoint reports unknown IDs inside a 200 response.
func TestLookupUnknownUser(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"errors":[{"value":"999","detail":"Could not find user with id: [999].","title":"Not Found Error","type":"https://api.twitter.com/2/problems/resource-not-found"}]}`)
	}))

	_, err := client.Users.Lookup(context.Background(), "999", types.SearchConfig{})
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "999") || !strings.Contains(err.Error(), "Not Found Error") {
		t.Errorf("error = %q, should name the id and the failure", err.Error())
	}
}

func TestLookupAPIError(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		fmt.Fprint(w, `{"title":"Forbidden","type":"about:blank","status":403,"detail":"Forbidden"}`)
	}))

	_, err := client.Users.Lookup(context.Background(), "7", types.SearchConfig{})
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "403") || !strings.Contains(err.Error(), "Forbidden") {
		t.Errorf("error = %q, should carry status and title", err.Error())
	}
}

func TestLookupEmptyResponse(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"data":{}}`)
	}))

	_, err := client.Users.Lookup(context.Background(), "7", types.SearchConfig{})
	if err == nil || !strings.Contains(err.Error(), "no profile") {
		t.Errorf("expected empty profile error, got: %v", err)
	}
}

// --- APIError ---

func TestAPIErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  APIError
		want string
	}{
		{
			name: "detail repeats title",
			err:  APIError{Title: "Unauthorized", Detail: "Unauthorized", Status: 401},
			want: "twitter: 401 Unauthorized",
		},
		{
			name: "distinct detail",
			err:  APIError{Title: "Invalid Request", Detail: "One or more parameters to your request was invalid.", Status: 400},
			want: "twitter: 400 Invalid Request: One or more parameters to your request was invalid.",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAPIErrorEmpty(t *testing.T) {
	if !(APIError{}).Empty() {
		t.Error("zero APIError should be empty")
	}
	if (APIError{Title: "Unauthorized", Status: 401}).Empty() {
		t.Error("populated APIError should not be empty")
	}
}
