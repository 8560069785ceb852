/*
Package cli implements the launchd command line interface.

Every command wires the same core: configuration from ~/.launchd.json, the
frecency store, the application catalog and the query router. Commands are
one-shot, so there is no surface to close after an activation.
*/
package cli

import (
	"log"
	"os"
	"time"

	"github.com/khanglvm/launchd/internal/applications"
	"github.com/khanglvm/launchd/internal/config"
	"github.com/khanglvm/launchd/internal/frecency"
	"github.com/khanglvm/launchd/internal/handlers"
	"github.com/khanglvm/launchd/internal/launch"
	"github.com/khanglvm/launchd/internal/search"
)

// app bundles the wired core shared by the CLI commands.
type app struct {
	cfg     *config.Config
	store   *frecency.Store
	catalog *applications.Catalog
	router  *search.Router
	runner  *launch.Runner
}

// newApp loads configuration, opens the usage store and registers the full
// handler chain. Store and config failures degrade rather than abort.
func newApp() *app {
	cfg := config.LoadOrCreate()

	dbPath, err := frecency.DefaultPath()
	if err != nil {
		log.Printf("Warning: failed to resolve data directory: %v", err)
	}
	store := frecency.New(dbPath)
	if err := store.Init(); err != nil {
		log.Printf("Warning: usage tracking disabled: %v", err)
	}

	runner := launch.NewRunner()
	catalog := applications.ScanDefault(runner)

	a := &app{
		cfg:     cfg,
		store:   store,
		catalog: catalog,
		router:  search.NewRouter(),
		runner:  runner,
	}

	a.router.Register(handlers.NewControls(controlsBackend()))
	a.router.Register(handlers.NewCalculator(runner, nil))
	a.router.Register(handlers.NewWebSearch(cfg, runner, nil))
	a.router.Register(handlers.NewCommands(cfg, runner, nil))
	a.router.Register(handlers.NewAppSearch(
		a.catalog.Items,
		a.matcher(),
		cfg.Settings.MaxResults,
		cfg.Settings.FuzzyThreshold,
	))

	return a
}

// matcher builds the app search matching strategy from settings. An index
// matcher that fails to initialize falls back to fuzzy with a warning.
func (a *app) matcher() search.Matcher {
	switch a.cfg.Settings.Matcher {
	case config.MatcherSubstring:
		return search.NewSubstringMatcher()
	case config.MatcherIndex:
		m, err := search.NewIndexMatcher()
		if err != nil {
			log.Printf("Warning: index matcher unavailable, using fuzzy: %v", err)
			return search.NewFuzzyMatcher()
		}
		return m
	default:
		return search.NewFuzzyMatcher()
	}
}

func (a *app) close() {
	if err := a.store.Close(); err != nil {
		log.Printf("Warning: failed to close usage store: %v", err)
	}
}

// launchCoordinator builds the coordinator used for activations. There is
// no window to dismiss from the CLI, so no close callback is wired.
func launchCoordinator(a *app) *launch.Coordinator {
	delay := time.Duration(a.cfg.Settings.CloseDelayMs) * time.Millisecond
	return launch.NewCoordinator(a.store, nil, delay)
}

// controlsBackend selects the system control backend. One-shot CLI
// invocations carry no mixer or backlight session, so the default backend
// reports both subsystems unavailable and the controls handler falls
// through. Setting LAUNCHD_SIMULATE_CONTROLS wires a simulated backend so
// control queries can be exercised from the command line.
func controlsBackend() handlers.ControlsBackend {
	if os.Getenv("LAUNCHD_SIMULATE_CONTROLS") != "" {
		return simulatedControls{}
	}
	return noopControls{}
}

// noopControls reports no audio or backlight subsystem, so the controls
// handler never claims a query in one-shot CLI mode.
type noopControls struct{}

func (noopControls) AudioAvailable() bool     { return false }
func (noopControls) BacklightAvailable() bool { return false }
func (noopControls) Volume() int              { return 0 }
func (noopControls) Muted() bool              { return false }
func (noopControls) ToggleMute() error        { return nil }
func (noopControls) Brightness() int          { return 0 }

// simulatedControls answers control queries with fixed values and accepts
// mute toggles without touching any hardware.
type simulatedControls struct{}

func (simulatedControls) AudioAvailable() bool     { return true }
func (simulatedControls) BacklightAvailable() bool { return true }
func (simulatedControls) Volume() int              { return 50 }
func (simulatedControls) Muted() bool              { return false }
func (simulatedControls) ToggleMute() error        { return nil }
func (simulatedControls) Brightness() int          { return 75 }
