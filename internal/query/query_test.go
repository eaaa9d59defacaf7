// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package query

import (
	"regexp"
	"strings"
	"testing"
)

func TestBuild(t *testing.T) {
	tests := []struct {
		name  string
		stems []string
		want  string
	}{
		{
			name:  "two stems",
			stems: []string{"a", "b"},
			want:  "(aussy OR bussy) lang:en",
		},
		{
			name:  "single stem",
			stems: []string{"c"},
			want:  "(cussy) lang:en",
		},
		{
			name:  "order follows stem order",
			stems: []string{"z", "c"},
			want:  "(zussy OR cussy) lang:en",
		},
		{
			name:  "nil stems",
			stems: nil,
			want:  "",
		},
		{
			name:  "empty stems",
			stems: []string{},
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Build(tt.stems); got != tt.want {
				t.Errorf("Build(%v) = %q, want %q", tt.stems, got, tt.want)
			}
		})
	}
}

func TestDefault(t *testing.T) {
	want := "(cussy OR dussy OR gussy OR jussy OR kussy OR lussy OR mussy OR nussy OR qussy OR russy OR tussy OR vussy OR xussy OR yussy OR zussy) lang:en"
	if got := Default(); got != want {
		t.Errorf("Default() = %q, want %q", got, want)
	}
}

func TestDefaultDeterministic(t *testing.T) {
	if Default() != Default() {
		t.Error("Default() returned different strings across calls")
	}
}

func TestDefaultShape(t *testing.T) {
	pattern := regexp.MustCompile(`^\(\w+ussy( OR \w+ussy)*\) lang:en$`)
	got := Default()
	if !pattern.MatchString(got) {
		t.Errorf("Default() = %q does not match %s", got, pattern)
	}
	if n := strings.Count(got, Suffix); n != len(Stems) {
		t.Errorf("Default() contains %d coinage terms, want %d", n, len(Stems))
	}
}

func TestDefaultLength(t *testing.T) {
	// The recent-search endpoint rejects queries over 512 characters.
	if n := len(Default()); n > 512 {
		t.Errorf("default query is %d characters, over the endpoint's 512 limit", n)
	}
}
