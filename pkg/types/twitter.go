// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the coinage CLI.
package types

import "time"

// Tweet is a single post returned by the recent-search endpoint.
type Tweet struct {
	// ID is the post's unique identifier, a decimal string.
	ID string `json:"id" yaml:"id"`

	// Text is the post body.
	Text string `json:"text" yaml:"text"`

	// AuthorID identifies the posting account. The search endpoint
	// returns only the ID; the profile comes from a separate lookup.
	AuthorID string `json:"author_id" yaml:"author_id"`

	// CreatedAt is the post timestamp reported by the API (UTC).
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`

	// Referenced lists posts this one replies to, quotes, or retweets.
	// Empty for standalone posts.
	Referenced []ReferencedTweet `json:"referenced_tweets,omitempty" yaml:"referenced_tweets,omitempty"`
}

// ReferencedTweet records a relationship from one post to another.
type ReferencedTweet struct {
	// Type is the relationship kind: "replied_to", "quoted", or "retweeted".
	Type string `json:"type" yaml:"type"`

	// ID identifies the post being referenced.
	ID string `json:"id" yaml:"id"`
}

// User is an account profile from the users lookup endpoint.
type User struct {
	// ID is the account's unique identifier, a decimal string.
	ID string `json:"id" yaml:"id"`

	// Name is the account's display name.
	Name string `json:"name" yaml:"name"`

	// Username is the account's handle, without the leading @.
	Username string `json:"username" yaml:"username"`
}

// SearchMeta is the summary block the search endpoint returns alongside
// results. NextToken would drive pagination; this tool reads one page.
type SearchMeta struct {
	NewestID    string `json:"newest_id" yaml:"newest_id"`
	OldestID    string `json:"oldest_id" yaml:"oldest_id"`
	ResultCount int    `json:"result_count" yaml:"result_count"`
	NextToken   string `json:"next_token,omitempty" yaml:"next_token,omitempty"`
}

// Post is a printable attestation: one tweet joined with its author's
// resolved profile and a permalink. Posts are built once per tweet,
// never mutated, and discarded after printing.
type Post struct {
	// ID is the tweet identifier the permalink derives from.
	ID string `json:"id" yaml:"id"`

	// Text is the tweet body.
	Text string `json:"text" yaml:"text"`

	// Permalink is the canonical web link to the tweet.
	Permalink string `json:"permalink" yaml:"permalink"`

	// AuthorID is the posting account's identifier, copied from the tweet.
	AuthorID string `json:"author_id" yaml:"author_id"`

	// Username is the author's resolved handle.
	Username string `json:"username" yaml:"username"`

	// CreatedAt is the post timestamp.
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`

	// Referenced lists the posts this one replies to, quotes, or retweets.
	Referenced []ReferencedTweet `json:"referenced_tweets,omitempty" yaml:"referenced_tweets,omitempty"`
}
