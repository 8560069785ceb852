package search

import (
	"sort"
	"strings"
)

// FallbackName is the handler that owns empty queries.
const FallbackName = "app_search"

// NoHandler is returned by Route when no registered handler matches.
const NoHandler = "none"

// Router dispatches each query to the first matching handler in ascending
// priority order. Exactly one handler owns the response to any query; results
// are never merged across handlers.
//
// Register all handlers at startup. Route is read-only and cheap, safe to call
// once per debounced keystroke.
type Router struct {
	handlers []Handler
}

// NewRouter returns an empty router.
func NewRouter() *Router {
	return &Router{}
}

// Register appends a handler and re-sorts the registry by ascending priority.
// The sort is stable: handlers with equal priority keep registration order.
func (r *Router) Register(h Handler) {
	r.handlers = append(r.handlers, h)
	sort.SliceStable(r.handlers, func(i, j int) bool {
		return r.handlers[i].Priority() < r.handlers[j].Priority()
	})
}

// Handlers returns the registered handlers in dispatch order.
func (r *Router) Handlers() []Handler {
	return r.handlers
}

// Route returns the name of the handler that claimed the query and its
// results.
//
// Empty and whitespace-only queries bypass matching and go to the handler
// named "app_search" with an empty query, so the fallback can show its
// defaults. (NoHandler, nil) is returned if nothing claims the query, which
// only happens with a partially-configured registry.
func (r *Router) Route(query string) (string, []ResultItem) {
	if strings.TrimSpace(query) == "" {
		for _, h := range r.handlers {
			if h.Name() == FallbackName {
				return h.Name(), h.Results("")
			}
		}
		return NoHandler, nil
	}

	for _, h := range r.handlers {
		if h.Matches(query) {
			return h.Name(), h.Results(query)
		}
	}

	return NoHandler, nil
}
