package handlers

import (
	"log"
	"net/url"
	"strings"

	"github.com/khanglvm/launchd/internal/config"
	"github.com/khanglvm/launchd/internal/search"
)

const (
	webSearchName     = "web_search"
	webSearchPriority = 200

	webIcon = "web-browser"
)

// WebSearch opens prefixed queries ("? weather", "gh: bleve") in the browser.
type WebSearch struct {
	engines  map[string]*config.Engine
	prefixes []string
	opener   URLOpener
	closer   func()
}

// NewWebSearch creates the handler over an engine table keyed by prefix.
// Prefixes are matched longest first so "gh:" wins over "g:".
func NewWebSearch(cfg *config.Config, opener URLOpener, closer func()) *WebSearch {
	return &WebSearch{
		engines:  cfg.Engines,
		prefixes: cfg.SortedPrefixes(),
		opener:   opener,
		closer:   closer,
	}
}

func (h *WebSearch) Name() string  { return webSearchName }
func (h *WebSearch) Priority() int { return webSearchPriority }

// Matches requires non-whitespace content after the prefix: a bare "?" is not
// a web search.
func (h *WebSearch) Matches(query string) bool {
	q := strings.TrimSpace(query)
	for _, prefix := range h.prefixes {
		if strings.HasPrefix(q, prefix) && len(q) > len(prefix) {
			return true
		}
	}
	return false
}

func (h *WebSearch) Results(query string) []search.ResultItem {
	q := strings.TrimSpace(query)

	for _, prefix := range h.prefixes {
		if !strings.HasPrefix(q, prefix) {
			continue
		}
		engine := h.engines[prefix]

		term := strings.TrimSpace(q[len(prefix):])
		if term == "" {
			return []search.ResultItem{{
				Title:       "Search " + engine.Name + "...",
				Description: "Type a query after '" + prefix + "'",
				Icon:        engineIcon(engine),
				Type:        search.TypeWeb,
			}}
		}

		target := strings.Replace(engine.URL, "{query}", url.QueryEscape(term), 1)

		return []search.ResultItem{{
			Title:       "Search " + engine.Name + ": " + term,
			Description: hostOf(engine.URL),
			Icon:        engineIcon(engine),
			Type:        search.TypeWeb,
			OnActivate: func() {
				if err := h.opener.OpenURL(target); err != nil {
					log.Printf("Warning: failed to open URL: %v", err)
				}
				if h.closer != nil {
					h.closer()
				}
			},
		}}
	}

	return nil
}

func engineIcon(e *config.Engine) string {
	if e.Icon != "" {
		return e.Icon
	}
	return webIcon
}

// hostOf extracts the host from a URL template for the description line.
func hostOf(template string) string {
	parts := strings.SplitN(template, "/", 4)
	if len(parts) > 2 {
		return parts[2]
	}
	return template
}
