/*
Package config handles loading, saving and validating launchd configuration.

Configuration is a single JSON file at ~/.launchd.json covering tunables, the
web-search engine table and the custom command table:

	{
	  "settings": {
	    "maxResults": 30,
	    "fuzzyThreshold": 50,
	    "minLaunches": 2,
	    "closeDelayMs": 300,
	    "matcher": "fuzzy"
	  },
	  "engines": {
	    "g:": {"name": "Google", "url": "https://www.google.com/search?q={query}"}
	  },
	  "commands": {
	    "lock": {"description": "Lock screen", "exec": "hyprlock"}
	  }
	}

Malformed command entries (missing exec) are dropped at load with a logged
warning; a missing or unreadable file falls back to defaults rather than
failing startup.
*/
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// Matcher strategy names accepted in Settings.Matcher.
const (
	MatcherFuzzy     = "fuzzy"
	MatcherSubstring = "substring"
	MatcherIndex     = "index"
)

// Config is the root configuration structure.
type Config struct {
	// Settings contains the core tunables.
	Settings *Settings `json:"settings,omitempty"`

	// Engines maps a query prefix (e.g. "g:") to a web search engine.
	Engines map[string]*Engine `json:"engines,omitempty"`

	// Commands maps a command name to a user-defined command.
	Commands map[string]*Command `json:"commands,omitempty"`
}

// Settings contains the core tunables with documented defaults.
type Settings struct {
	// MaxResults caps result lists produced by the fallback app search.
	MaxResults int `json:"maxResults,omitempty"`

	// FuzzyThreshold is the minimum 0-100 match score to include a result.
	FuzzyThreshold int `json:"fuzzyThreshold,omitempty"`

	// MinLaunches is the minimum launch count for the frequent list.
	MinLaunches int `json:"minLaunches,omitempty"`

	// CloseDelayMs is how long the shell waits before closing after an
	// activation.
	CloseDelayMs int `json:"closeDelayMs,omitempty"`

	// Matcher selects the app search matching strategy
	// ("fuzzy", "substring" or "index").
	Matcher string `json:"matcher,omitempty"`
}

// Engine is one web search engine bound to a query prefix.
type Engine struct {
	// Name is the display name ("Google").
	Name string `json:"name"`

	// URL is the search template with one {query} substitution slot.
	URL string `json:"url"`

	// Icon is an opaque icon reference.
	Icon string `json:"icon,omitempty"`
}

// Command is one user-defined command triggered via the "!" prefix.
type Command struct {
	// Description is shown next to the command name.
	Description string `json:"description,omitempty"`

	// Exec is the shell command to spawn. Required; entries without it are
	// dropped at load.
	Exec string `json:"exec"`

	// Icon is an opaque icon reference.
	Icon string `json:"icon,omitempty"`
}

// NewConfig returns a configuration populated with every default.
func NewConfig() *Config {
	return &Config{
		Settings: DefaultSettings(),
		Engines:  DefaultEngines(),
		Commands: map[string]*Command{},
	}
}

// DefaultSettings returns the documented default tunables.
func DefaultSettings() *Settings {
	return &Settings{
		MaxResults:     30,
		FuzzyThreshold: 50,
		MinLaunches:    2,
		CloseDelayMs:   300,
		Matcher:        MatcherFuzzy,
	}
}

// DefaultEngines returns the built-in web search engine table: a general
// search default plus Google, Wikipedia, GitHub and YouTube.
func DefaultEngines() map[string]*Engine {
	return map[string]*Engine{
		"?":   {Name: "Kagi", URL: "https://kagi.com/search?q={query}", Icon: "web-browser"},
		"g:":  {Name: "Google", URL: "https://www.google.com/search?q={query}", Icon: "web-browser"},
		"w:":  {Name: "Wikipedia", URL: "https://en.wikipedia.org/w/index.php?search={query}", Icon: "accessories-dictionary"},
		"gh:": {Name: "GitHub", URL: "https://github.com/search?q={query}", Icon: "web-browser"},
		"yt:": {Name: "YouTube", URL: "https://www.youtube.com/results?search_query={query}", Icon: "applications-multimedia"},
	}
}

// GetDefaultConfigPath returns the path to ~/.launchd.json.
func GetDefaultConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".launchd.json"), nil
}

// SortedPrefixes returns the engine prefixes longest first (ties
// lexicographic), the order prefix matching must use so that "gh:" is tried
// before "g:".
func (c *Config) SortedPrefixes() []string {
	prefixes := make([]string, 0, len(c.Engines))
	for p := range c.Engines {
		prefixes = append(prefixes, p)
	}
	sort.Slice(prefixes, func(i, j int) bool {
		if len(prefixes[i]) != len(prefixes[j]) {
			return len(prefixes[i]) > len(prefixes[j])
		}
		return prefixes[i] < prefixes[j]
	})
	return prefixes
}
