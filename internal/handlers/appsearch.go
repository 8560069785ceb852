package handlers

import (
	"strings"

	"github.com/khanglvm/launchd/internal/search"
)

const (
	appSearchPriority = 1000

	// emptyQueryLimit caps the default listing shown before any input.
	emptyQueryLimit = 20
)

// AppSearch is the always-matching fallback: rank the application catalog
// against the query. The matching strategy (fuzzy, substring, indexed) is
// fixed at construction.
type AppSearch struct {
	provider   func() []search.Item
	matcher    search.Matcher
	maxResults int
	threshold  int
}

// NewAppSearch creates the fallback handler. provider returns the full item
// catalog in its native order.
func NewAppSearch(provider func() []search.Item, matcher search.Matcher, maxResults, threshold int) *AppSearch {
	return &AppSearch{
		provider:   provider,
		matcher:    matcher,
		maxResults: maxResults,
		threshold:  threshold,
	}
}

func (h *AppSearch) Name() string  { return search.FallbackName }
func (h *AppSearch) Priority() int { return appSearchPriority }

// Matches always reports true; app search owns everything no other handler
// claimed.
func (h *AppSearch) Matches(string) bool { return true }

func (h *AppSearch) Results(query string) []search.ResultItem {
	items := h.provider()

	if strings.TrimSpace(query) == "" {
		if len(items) > emptyQueryLimit {
			items = items[:emptyQueryLimit]
		}
		return itemsToResults(items)
	}

	// Rank against the primary label only; descriptions dilute relevance.
	candidates := make([]search.Candidate, len(items))
	byID := make(map[string]search.Item, len(items))
	for i, it := range items {
		candidates[i] = search.Candidate{ID: it.ID, Label: it.Name}
		byID[it.ID] = it
	}

	matches := h.matcher.Rank(query, candidates, h.maxResults, h.threshold)

	results := make([]search.ResultItem, 0, len(matches))
	for _, m := range matches {
		if it, ok := byID[m.ID]; ok {
			results = append(results, itemToResult(it))
		}
	}
	return results
}

func itemsToResults(items []search.Item) []search.ResultItem {
	results := make([]search.ResultItem, 0, len(items))
	for _, it := range items {
		results = append(results, itemToResult(it))
	}
	return results
}

func itemToResult(it search.Item) search.ResultItem {
	return search.ResultItem{
		Title:       it.Name,
		Description: it.Description,
		Icon:        it.Icon,
		Type:        search.TypeApp,
		Target:      it.Target,
	}
}
