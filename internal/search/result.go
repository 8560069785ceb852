/*
Package search implements the query routing layer of the launcher.

A free-text query is classified into exactly one semantic domain by a
priority-ordered registry of handlers (first match wins) and turned into a
uniform list of result items. The package also provides the label-matching
strategies used by the fallback application search and a debounce helper for
keystroke-driven callers.
*/
package search

// Result types, one per handler domain.
const (
	TypeApp        = "app"
	TypeCalculator = "calculator"
	TypeControl    = "control"
	TypeWeb        = "web"
	TypeCommand    = "command"
)

// Launchable is an externally-owned item that can be started. The core never
// constructs these; it only receives them from the item catalog.
type Launchable interface {
	ID() string
	Launch() error
}

// Item is the catalog boundary shape consumed by the fallback app search.
type Item struct {
	ID          string
	Name        string
	Description string
	Icon        string

	// Target starts the item when the result is activated.
	Target Launchable
}

// ResultItem is the uniform output of every handler. It is constructed fresh
// per query and never mutated afterwards.
//
// At most one of Target and OnActivate is set. A result with neither is
// inert, informational only ("type an expression").
type ResultItem struct {
	Title       string
	Description string
	Icon        string
	Type        string

	Target     Launchable
	OnActivate func()
}

// Handler classifies queries for one semantic domain and produces results.
// Lower Priority values are checked first.
type Handler interface {
	Name() string
	Priority() int
	Matches(query string) bool
	Results(query string) []ResultItem
}
