// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package query builds the recent-search query for coinage candidates.
//
// The pattern under study is the productive suffix "ussy" attached to
// single-consonant onsets. The query ORs every stem+suffix form and
// restricts matches to English-language posts.
package query

import "strings"

// Suffix is the coinage suffix appended to every stem.
const Suffix = "ussy"

// Stems are the single-consonant onsets searched by default, in the
// order they appear in the query.
var Stems = []string{"c", "d", "g", "j", "k", "l", "m", "n", "q", "r", "t", "v", "x", "y", "z"}

// Build returns the search query for the given stems:
//
//	(cussy OR dussy OR ...) lang:en
//
// Alternation order follows stem order. Build returns "" for an empty
// stem list; callers treat that as a usage error.
func Build(stems []string) string {
	if len(stems) == 0 {
		return ""
	}
	words := make([]string, len(stems))
	for i, s := range stems {
		words[i] = s + Suffix
	}
	return "(" + strings.Join(words, " OR ") + ") lang:en"
}

// Default returns the query for the built-in stem list.
func Default() string {
	return Build(Stems)
}
