package search

import (
	"testing"
)

// fakeHandler is a configurable Handler for router tests.
type fakeHandler struct {
	name     string
	priority int
	matches  bool
	results  []ResultItem
}

func (h *fakeHandler) Name() string                { return h.name }
func (h *fakeHandler) Priority() int               { return h.priority }
func (h *fakeHandler) Matches(string) bool         { return h.matches }
func (h *fakeHandler) Results(string) []ResultItem { return h.results }

func TestRouteFirstMatchWins(t *testing.T) {
	low := &fakeHandler{name: "low", priority: 100, matches: true,
		results: []ResultItem{{Title: "from low"}}}
	high := &fakeHandler{name: "high", priority: 200, matches: true,
		results: []ResultItem{{Title: "from high"}}}

	// Registration order must not matter, only priority.
	for _, order := range [][]Handler{{low, high}, {high, low}} {
		r := NewRouter()
		for _, h := range order {
			r.Register(h)
		}

		name, results := r.Route("anything")
		if name != "low" {
			t.Errorf("expected priority-100 handler to win, got %q", name)
		}
		if len(results) != 1 || results[0].Title != "from low" {
			t.Errorf("expected low handler results, got %v", results)
		}
	}
}

func TestRouteSkipsNonMatching(t *testing.T) {
	r := NewRouter()
	r.Register(&fakeHandler{name: "first", priority: 50, matches: false})
	r.Register(&fakeHandler{name: "second", priority: 100, matches: true,
		results: []ResultItem{{Title: "ok"}}})

	name, _ := r.Route("query")
	if name != "second" {
		t.Errorf("expected second handler, got %q", name)
	}
}

func TestRouteEmptyQueryFallback(t *testing.T) {
	app := &fakeHandler{name: FallbackName, priority: 1000, matches: true,
		results: []ResultItem{{Title: "default app"}}}
	other := &fakeHandler{name: "other", priority: 50, matches: true,
		results: []ResultItem{{Title: "other"}}}

	r := NewRouter()
	r.Register(other)
	r.Register(app)

	for _, q := range []string{"", "   ", "\t "} {
		name, results := r.Route(q)
		if name != FallbackName {
			t.Errorf("Route(%q): expected %q, got %q", q, FallbackName, name)
		}
		if len(results) != 1 || results[0].Title != "default app" {
			t.Errorf("Route(%q): expected fallback defaults, got %v", q, results)
		}
	}
}

func TestRouteEmptyQueryWithoutFallback(t *testing.T) {
	r := NewRouter()
	r.Register(&fakeHandler{name: "other", priority: 50, matches: true})

	name, results := r.Route("")
	if name != NoHandler {
		t.Errorf("expected %q, got %q", NoHandler, name)
	}
	if len(results) != 0 {
		t.Errorf("expected no results, got %v", results)
	}
}

func TestRouteNoHandlerMatches(t *testing.T) {
	r := NewRouter()
	r.Register(&fakeHandler{name: "a", priority: 100, matches: false})
	r.Register(&fakeHandler{name: "b", priority: 200, matches: false})

	name, results := r.Route("query")
	if name != NoHandler || results != nil {
		t.Errorf("expected (%q, nil), got (%q, %v)", NoHandler, name, results)
	}
}

func TestRegisterStableForEqualPriority(t *testing.T) {
	first := &fakeHandler{name: "first", priority: 100, matches: true,
		results: []ResultItem{{Title: "first"}}}
	second := &fakeHandler{name: "second", priority: 100, matches: true,
		results: []ResultItem{{Title: "second"}}}

	r := NewRouter()
	r.Register(first)
	r.Register(second)

	name, _ := r.Route("q")
	if name != "first" {
		t.Errorf("equal priorities must keep registration order, got %q", name)
	}
}
