package search

import (
	"sort"
	"strings"

	"github.com/sahilm/fuzzy"
)

// Candidate is one label to rank, e.g. an application name keyed by its
// desktop-entry id.
type Candidate struct {
	ID    string
	Label string
}

// Match is a ranked candidate. Score is in the 0-100 domain, higher is
// better; an identical string always scores 100.
type Match struct {
	ID    string
	Label string
	Score int
}

// Matcher ranks candidate labels against a query. Implementations are chosen
// once at construction time, not per call: FuzzyMatcher is the default,
// SubstringMatcher is the degraded mode, IndexMatcher trades startup cost for
// full-text matching on large catalogs.
type Matcher interface {
	// Rank returns up to limit matches with Score >= threshold, sorted by
	// Score descending.
	Rank(query string, candidates []Candidate, limit, threshold int) []Match
}

// FuzzyMatcher ranks labels with sahilm/fuzzy's subsequence scoring,
// normalized so that a label equal to the query scores 100.
type FuzzyMatcher struct{}

// NewFuzzyMatcher returns the default matcher.
func NewFuzzyMatcher() *FuzzyMatcher {
	return &FuzzyMatcher{}
}

type candidateSource []Candidate

func (s candidateSource) String(i int) string { return s[i].Label }
func (s candidateSource) Len() int            { return len(s) }

// Rank implements Matcher. Matching is only against the primary label;
// secondary text would dilute relevance.
func (m *FuzzyMatcher) Rank(query string, candidates []Candidate, limit, threshold int) []Match {
	query = strings.TrimSpace(query)
	if query == "" || len(candidates) == 0 {
		return nil
	}

	// The score of the query matching itself is the best achievable score
	// for this query; raw scores are scaled against it.
	self := fuzzy.Find(query, []string{query})
	if len(self) == 0 || self[0].Score <= 0 {
		return nil
	}
	best := self[0].Score

	found := fuzzy.FindFrom(query, candidateSource(candidates))

	matches := make([]Match, 0, len(found))
	for _, f := range found {
		score := f.Score * 100 / best
		if score > 100 {
			score = 100
		}
		if score < 0 {
			score = 0
		}
		if score < threshold {
			continue
		}
		matches = append(matches, Match{
			ID:    candidates[f.Index].ID,
			Label: f.Str,
			Score: score,
		})
	}

	// fuzzy.FindFrom already sorts by raw score; re-sort on the normalized
	// score to keep the contract explicit.
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	if limit >= 0 && len(matches) > limit {
		matches = matches[:limit]
	}
	return matches
}

// SubstringMatcher is the degraded mode used when fuzzy matching is disabled:
// a plain case-insensitive filter with no similarity scoring. Labels with a
// prefix match rank before interior matches; within each group input order is
// preserved. Threshold is ignored (all scores are 0).
type SubstringMatcher struct{}

// NewSubstringMatcher returns the degraded matcher.
func NewSubstringMatcher() *SubstringMatcher {
	return &SubstringMatcher{}
}

// Rank implements Matcher.
func (m *SubstringMatcher) Rank(query string, candidates []Candidate, limit, _ int) []Match {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}

	var prefix, interior []Match
	for _, c := range candidates {
		label := strings.ToLower(c.Label)
		switch {
		case strings.HasPrefix(label, q):
			prefix = append(prefix, Match{ID: c.ID, Label: c.Label})
		case strings.Contains(label, q):
			interior = append(interior, Match{ID: c.ID, Label: c.Label})
		}
	}

	matches := append(prefix, interior...)
	if limit >= 0 && len(matches) > limit {
		matches = matches[:limit]
	}
	return matches
}
