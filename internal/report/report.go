// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report turns recent-search results into the printed
// attestation report: run the query, resolve each author, render.
package report

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/sociolex/coinage/pkg/types"
)

// permalinkBase is the URL prefix a tweet ID is appended to. The site
// redirects the generic /user/ path to the author's real handle.
const permalinkBase = "https://www.twitter.com/user/status/"

// timeLayout renders post timestamps, e.g. "2026-08-20 17:03:09+00:00".
const timeLayout = "2006-01-02 15:04:05-07:00"

// Searcher runs one recent-search query.
type Searcher interface {
	SearchRecent(ctx context.Context, query string, cfg types.SearchConfig) ([]types.Tweet, types.SearchMeta, error)
}

// UserResolver fetches the profile behind an author ID.
type UserResolver interface {
	Lookup(ctx context.Context, id string, cfg types.SearchConfig) (types.User, error)
}

// Session holds one query and the posts composed from its results.
// Run overwrites both, so a session tracks at most one query at a time.
type Session struct {
	Query string
	Posts []types.Post
}

// Run executes the query, resolves every author, and stores the
// composed posts. Authors are resolved sequentially in result order,
// one lookup per tweet; repeated authors are looked up repeatedly since
// batches are small. The first failed lookup aborts the run and leaves
// no posts behind.
func (s *Session) Run(ctx context.Context, searcher Searcher, resolver UserResolver, query string, cfg types.SearchConfig) error {
	s.Query = query
	s.Posts = nil

	tweets, _, err := searcher.SearchRecent(ctx, query, cfg)
	if err != nil {
		return fmt.Errorf("searching %q: %w", query, err)
	}

	posts := make([]types.Post, 0, len(tweets))
	for _, tw := range tweets {
		user, err := resolver.Lookup(ctx, tw.AuthorID, cfg)
		if err != nil {
			return fmt.Errorf("resolving author of tweet %s: %w", tw.ID, err)
		}
		posts = append(posts, Compose(tw, user))
	}

	s.Posts = posts
	return nil
}

// Compose joins a tweet with its resolved author into a printable post.
func Compose(tweet types.Tweet, user types.User) types.Post {
	return types.Post{
		ID:         tweet.ID,
		Text:       tweet.Text,
		Permalink:  Permalink(tweet.ID),
		AuthorID:   tweet.AuthorID,
		Username:   user.Username,
		CreatedAt:  tweet.CreatedAt,
		Referenced: tweet.Referenced,
	}
}

// Permalink returns the web link for a tweet ID.
func Permalink(id string) string {
	return permalinkBase + id
}

// Render writes each post as an optional referenced-context line, the
// attestation line, and an indented permalink:
//
//	context: replied_to/41
//	bob at 2026-08-20 17:03:09+00:00:	what a cussy day
//		https://www.twitter.com/user/status/43
func (s *Session) Render(w io.Writer) {
	for _, p := range s.Posts {
		if len(p.Referenced) > 0 {
			fmt.Fprintf(w, "context: %s\n", formatReferences(p.Referenced))
		}
		fmt.Fprintf(w, "%s at %s:\t%s\n\t%s\n", p.Username, p.CreatedAt.Format(timeLayout), p.Text, p.Permalink)
	}
}

// formatReferences renders reference pairs as "replied_to/41, quoted/40".
func formatReferences(refs []types.ReferencedTweet) string {
	parts := make([]string, len(refs))
	for i, r := range refs {
		parts[i] = r.Type + "/" + r.ID
	}
	return strings.Join(parts, ", ")
}
