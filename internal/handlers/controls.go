package handlers

import (
	"fmt"
	"log"
	"strings"

	"github.com/khanglvm/launchd/internal/search"
)

const (
	controlsName     = "controls"
	controlsPriority = 50 // checked before everything else

	volumeIcon     = "audio-volume-high"
	brightnessIcon = "display-brightness"
)

// Keyword sets are whole-query matches, not substrings: "volume" triggers,
// "volume up" falls through to app search.
var (
	volumeKeywords     = keywordSet("vol", "volume", "sound", "audio", "speaker")
	brightnessKeywords = keywordSet("bright", "brightness", "backlight", "screen")
	muteKeywords       = keywordSet("mute", "unmute")
)

func keywordSet(words ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

// ControlsBackend is the system control subsystem (audio mixer, backlight).
// The handler only matches when the relevant subsystem reports itself
// available.
type ControlsBackend interface {
	AudioAvailable() bool
	BacklightAvailable() bool

	Volume() int
	Muted() bool
	ToggleMute() error

	Brightness() int
}

// Controls produces inline volume/brightness results for exact keyword
// queries.
type Controls struct {
	backend ControlsBackend
}

// NewControls creates the handler around a control backend.
func NewControls(backend ControlsBackend) *Controls {
	return &Controls{backend: backend}
}

func (h *Controls) Name() string  { return controlsName }
func (h *Controls) Priority() int { return controlsPriority }

func (h *Controls) Matches(query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))

	if _, ok := volumeKeywords[q]; ok {
		return h.backend.AudioAvailable()
	}
	if _, ok := muteKeywords[q]; ok {
		return h.backend.AudioAvailable()
	}
	if _, ok := brightnessKeywords[q]; ok {
		return h.backend.BacklightAvailable()
	}
	return false
}

func (h *Controls) Results(query string) []search.ResultItem {
	q := strings.ToLower(strings.TrimSpace(query))

	var results []search.ResultItem

	_, isVolume := volumeKeywords[q]
	_, isMute := muteKeywords[q]
	if isVolume || isMute {
		desc := fmt.Sprintf("%d%%", h.backend.Volume())
		if h.backend.Muted() {
			desc += ", muted"
		}
		results = append(results, search.ResultItem{
			Title:       "Volume",
			Description: desc + " (activate to toggle mute)",
			Icon:        volumeIcon,
			Type:        search.TypeControl,
			OnActivate: func() {
				if err := h.backend.ToggleMute(); err != nil {
					log.Printf("Warning: failed to toggle mute: %v", err)
				}
			},
		})
	}

	if _, ok := brightnessKeywords[q]; ok {
		results = append(results, search.ResultItem{
			Title:       "Brightness",
			Description: fmt.Sprintf("%d%%", h.backend.Brightness()),
			Icon:        brightnessIcon,
			Type:        search.TypeControl,
		})
	}

	return results
}
