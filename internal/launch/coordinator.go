// Package launch ties item activation to usage recording and window close
// scheduling.
package launch

import (
	"fmt"
	"log"
	"time"

	"github.com/khanglvm/launchd/internal/search"
)

// Recorder receives a usage event after a successful launch.
type Recorder interface {
	RecordLaunch(itemID string) error
}

// Coordinator launches items, records usage, and schedules the close
// callback. Recording only happens when the launch itself succeeded, so
// failed launches never inflate an item's score.
type Coordinator struct {
	recorder Recorder
	closer   func()
	delay    time.Duration
}

// NewCoordinator creates a coordinator. closer may be nil when there is no
// surface to dismiss (e.g. one-shot CLI invocations).
func NewCoordinator(recorder Recorder, closer func(), delay time.Duration) *Coordinator {
	return &Coordinator{
		recorder: recorder,
		closer:   closer,
		delay:    delay,
	}
}

// Launch starts the item, records the usage event, and schedules the close.
func (c *Coordinator) Launch(item search.Launchable) error {
	if item == nil {
		return fmt.Errorf("nothing to launch")
	}

	if err := item.Launch(); err != nil {
		return fmt.Errorf("failed to launch %s: %w", item.ID(), err)
	}

	if c.recorder != nil {
		if err := c.recorder.RecordLaunch(item.ID()); err != nil {
			log.Printf("Warning: failed to record launch of %s: %v", item.ID(), err)
		}
	}

	c.scheduleClose()
	return nil
}

// CloseAfterDelay schedules the close callback without launching anything.
// Handlers that finish their own side effect (copy, open URL) use this.
func (c *Coordinator) CloseAfterDelay() {
	c.scheduleClose()
}

func (c *Coordinator) scheduleClose() {
	if c.closer == nil {
		return
	}
	if c.delay <= 0 {
		c.closer()
		return
	}
	time.AfterFunc(c.delay, c.closer)
}
