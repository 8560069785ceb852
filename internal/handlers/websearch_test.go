package handlers

import (
	"strings"
	"testing"

	"github.com/khanglvm/launchd/internal/config"
)

type stubOpener struct {
	opened []string
	err    error
}

func (o *stubOpener) OpenURL(url string) error {
	o.opened = append(o.opened, url)
	return o.err
}

func newWebSearch() (*WebSearch, *stubOpener, *int) {
	opener := &stubOpener{}
	closed := 0
	h := NewWebSearch(config.NewConfig(), opener, func() { closed++ })
	return h, opener, &closed
}

func TestWebSearchPrefixBoundary(t *testing.T) {
	h, _, _ := newWebSearch()

	tests := []struct {
		query string
		want  bool
	}{
		{"?", false}, // prefix alone never matches
		{"? ", false},
		{"? x", true},
		{"?x", true},
		{"g:", false},
		{"g: golang", true},
		{"gh: bleve", true},
		{"firefox", false},
	}
	for _, tt := range tests {
		if got := h.Matches(tt.query); got != tt.want {
			t.Errorf("Matches(%q) = %v, want %v", tt.query, got, tt.want)
		}
	}
}

func TestWebSearchSingleResultWithActivation(t *testing.T) {
	h, _, _ := newWebSearch()

	results := h.Results("? x")
	if len(results) != 1 {
		t.Fatalf("expected exactly one result, got %d", len(results))
	}
	if results[0].OnActivate == nil {
		t.Error("expected populated activation")
	}
}

func TestWebSearchBuildsEscapedURL(t *testing.T) {
	h, opener, closed := newWebSearch()

	results := h.Results("g: hello world")
	if len(results) != 1 || results[0].OnActivate == nil {
		t.Fatalf("expected activatable result, got %v", results)
	}

	results[0].OnActivate()

	if len(opener.opened) != 1 {
		t.Fatalf("expected one URL opened, got %v", opener.opened)
	}
	url := opener.opened[0]
	if !strings.HasPrefix(url, "https://www.google.com/search?q=") {
		t.Errorf("unexpected URL %q", url)
	}
	if !strings.Contains(url, "hello+world") {
		t.Errorf("expected percent-encoded query, got %q", url)
	}
	if *closed != 1 {
		t.Errorf("expected launcher close requested, got %d", *closed)
	}
}

func TestWebSearchLongestPrefixWins(t *testing.T) {
	h, opener, _ := newWebSearch()

	results := h.Results("gh: bleve")
	if len(results) != 1 {
		t.Fatalf("expected one result, got %d", len(results))
	}
	if !strings.Contains(results[0].Title, "GitHub") {
		t.Errorf(`expected "gh:" to hit GitHub, not Google: %q`, results[0].Title)
	}

	results[0].OnActivate()
	if len(opener.opened) != 1 || !strings.Contains(opener.opened[0], "github.com") {
		t.Errorf("expected github URL, got %v", opener.opened)
	}
}

func TestWebSearchEmptyTermPrompt(t *testing.T) {
	h, _, _ := newWebSearch()

	// Results called directly with a bare prefix shows a prompt row instead
	// of silently returning nothing.
	results := h.Results("g:")
	if len(results) != 1 {
		t.Fatalf("expected prompt row, got %d results", len(results))
	}
	if results[0].OnActivate != nil {
		t.Error("prompt row must be inert")
	}
	if !strings.Contains(results[0].Title, "Google") {
		t.Errorf("expected engine name in prompt, got %q", results[0].Title)
	}
}

func TestWebSearchCustomEngineTable(t *testing.T) {
	cfg := config.NewConfig()
	cfg.Engines = map[string]*config.Engine{
		"d:": {Name: "DuckDuckGo", URL: "https://duckduckgo.com/?q={query}"},
	}

	opener := &stubOpener{}
	h := NewWebSearch(cfg, opener, nil)

	if h.Matches("g: query") {
		t.Error("default prefixes must not match with a custom table")
	}
	if !h.Matches("d: query") {
		t.Error("custom prefix must match")
	}
}
