// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package twitter

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/dghubble/sling"

	"github.com/sociolex/coinage/pkg/types"
)

// DefaultTweetFields are the optional per-tweet fields the report needs
// beyond the always-present id and text.
var DefaultTweetFields = []string{"author_id", "created_at", "referenced_tweets"}

// Result counts the recent-search endpoint accepts.
const (
	minSearchResults = 10
	maxSearchResults = 100
)

// TweetService provides access to the v2 tweet endpoints.
type TweetService struct {
	sling *sling.Sling
}

func newTweetService(base *sling.Sling) *TweetService {
	return &TweetService{
		sling: base.Path("tweets/"),
	}
}

// searchRecentParams are the query parameters for the recent-search
// endpoint.
type searchRecentParams struct {
	Query       string   `url:"query"`
	TweetFields []string `url:"tweet.fields,comma,omitempty"`
	MaxResults  int      `url:"max_results,omitempty"`
}

// SearchRecent runs one query against the recent-search endpoint and
// returns the matching tweets with the endpoint's summary metadata.
// cfg.TweetFields defaults to DefaultTweetFields; cfg.MaxResults of
// zero leaves the count to the API.
func (s *TweetService) SearchRecent(ctx context.Context, query string, cfg types.SearchConfig) ([]types.Tweet, types.SearchMeta, error) {
	if strings.TrimSpace(query) == "" {
		return nil, types.SearchMeta{}, fmt.Errorf("empty search query")
	}

	fields := cfg.TweetFields
	if len(fields) == 0 {
		fields = DefaultTweetFields
	}

	params := &searchRecentParams{
		Query:       query,
		TweetFields: fields,
	}
	if cfg.MaxResults > 0 {
		params.MaxResults = clampResults(cfg.MaxResults)
	}

	success := new(searchRecentResponse)
	apiError := new(APIError)

	req, err := s.sling.New().Get("search/recent").QueryStruct(params).Request()
	if err != nil {
		return nil, types.SearchMeta{}, fmt.Errorf("creating search request: %w", err)
	}
	if cfg.UserAgent != "" {
		req.Header.Set("User-Agent", cfg.UserAgent)
	}

	resp, err := s.sling.Do(req.WithContext(ctx), success, apiError)
	if rerr := relevantError(err, *apiError); rerr != nil {
		return nil, types.SearchMeta{}, fmt.Errorf("recent search: %w", rerr)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, types.SearchMeta{}, fmt.Errorf("recent search: API returned HTTP %d", resp.StatusCode)
	}

	tweets := make([]types.Tweet, 0, len(success.Data))
	for _, tw := range success.Data {
		t := types.Tweet{
			ID:       tw.ID,
			Text:     tw.Text,
			AuthorID: tw.AuthorID,
		}
		if tw.CreatedAt != "" {
			if ts, parseErr := time.Parse(time.RFC3339, tw.CreatedAt); parseErr == nil {
				t.CreatedAt = ts
			}
		}
		for _, ref := range tw.ReferencedTweets {
			t.Referenced = append(t.Referenced, types.ReferencedTweet{Type: ref.Type, ID: ref.ID})
		}
		tweets = append(tweets, t)
	}

	meta := types.SearchMeta{
		NewestID:    success.Meta.NewestID,
		OldestID:    success.Meta.OldestID,
		ResultCount: success.Meta.ResultCount,
		NextToken:   success.Meta.NextToken,
	}
	return tweets, meta, nil
}

// clampResults forces n into the window the endpoint accepts.
func clampResults(n int) int {
	if n < minSearchResults {
		return minSearchResults
	}
	if n > maxSearchResults {
		return maxSearchResults
	}
	return n
}

// Recent search API JSON structures.
type searchRecentResponse struct {
	Data []apiTweet    `json:"data"`
	Meta apiSearchMeta `json:"meta"`
}

type apiTweet struct {
	ID               string         `json:"id"`
	Text             string         `json:"text"`
	AuthorID         string         `json:"author_id"`
	CreatedAt        string         `json:"created_at"`
	ReferencedTweets []apiReference `json:"referenced_tweets"`
}

type apiReference struct {
	Type string `json:"type"`
	ID   string `json:"id"`
}

type apiSearchMeta struct {
	NewestID    string `json:"newest_id"`
	OldestID    string `json:"oldest_id"`
	ResultCount int    `json:"result_count"`
	NextToken   string `json:"next_token"`
}
