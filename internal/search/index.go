package search

import (
	"fmt"
	"log"
	"sync"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/mapping"
)

// IndexMatcher ranks labels through an in-memory Bleve full-text index. It is
// the strategy for large catalogs where per-query subsequence scans get
// expensive; the index is rebuilt only when the candidate set changes.
type IndexMatcher struct {
	mu      sync.Mutex
	index   bleve.Index
	indexed []Candidate
}

// NewIndexMatcher creates the matcher with an empty mem-only index.
func NewIndexMatcher() (*IndexMatcher, error) {
	index, err := bleve.NewMemOnly(buildIndexMapping())
	if err != nil {
		return nil, fmt.Errorf("failed to create bleve index: %w", err)
	}
	return &IndexMatcher{index: index}, nil
}

func buildIndexMapping() mapping.IndexMapping {
	labelMapping := bleve.NewTextFieldMapping()

	docMapping := bleve.NewDocumentMapping()
	docMapping.AddFieldMappingsAt("name", labelMapping)

	indexMapping := bleve.NewIndexMapping()
	indexMapping.AddDocumentMapping("_default", docMapping)
	return indexMapping
}

// Rank implements Matcher. Scores are min-max normalized into the 0-100
// domain; when every hit scores the same they all map to 100.
func (m *IndexMatcher) Rank(query string, candidates []Candidate, limit, threshold int) []Match {
	if query == "" || len(candidates) == 0 {
		return nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.ensureIndexed(candidates); err != nil {
		log.Printf("Warning: failed to index candidates: %v", err)
		return nil
	}

	if limit <= 0 {
		limit = 10
	}

	matchQuery := bleve.NewMatchQuery(query)
	matchQuery.SetField("name")
	matchQuery.SetFuzziness(1)

	request := bleve.NewSearchRequestOptions(matchQuery, limit, 0, false)
	request.Fields = []string{"name"}

	result, err := m.index.Search(request)
	if err != nil {
		log.Printf("Warning: bleve search failed: %v", err)
		return nil
	}
	if len(result.Hits) == 0 {
		return nil
	}

	minScore, maxScore := result.Hits[0].Score, result.Hits[0].Score
	for _, hit := range result.Hits {
		if hit.Score < minScore {
			minScore = hit.Score
		}
		if hit.Score > maxScore {
			maxScore = hit.Score
		}
	}

	matches := make([]Match, 0, len(result.Hits))
	for _, hit := range result.Hits {
		label, _ := hit.Fields["name"].(string)

		score := 100
		if maxScore > minScore {
			score = int((hit.Score - minScore) / (maxScore - minScore) * 100)
		}
		if score < threshold {
			continue
		}
		matches = append(matches, Match{ID: hit.ID, Label: label, Score: score})
	}
	return matches
}

// ensureIndexed rebuilds the index if the candidate set differs from the one
// indexed last. Catalogs are stable within a session, so this is a cheap
// comparison on the hot path and a one-time batch on change.
func (m *IndexMatcher) ensureIndexed(candidates []Candidate) error {
	if sameCandidates(m.indexed, candidates) {
		return nil
	}

	batch := m.index.NewBatch()
	for _, old := range m.indexed {
		batch.Delete(old.ID)
	}
	for _, c := range candidates {
		doc := map[string]interface{}{"name": c.Label}
		if err := batch.Index(c.ID, doc); err != nil {
			return fmt.Errorf("failed to index %s: %w", c.ID, err)
		}
	}
	if err := m.index.Batch(batch); err != nil {
		return fmt.Errorf("failed to apply index batch: %w", err)
	}

	m.indexed = make([]Candidate, len(candidates))
	copy(m.indexed, candidates)
	return nil
}

func sameCandidates(a, b []Candidate) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Close releases the index resources.
func (m *IndexMatcher) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.index != nil {
		return m.index.Close()
	}
	return nil
}
