package benchmark

import (
	"github.com/benny779/Logger/core"
	"github.com/benny779/Logger/destination"
)

// noopDestination accepts every entry and discards it, isolating the
// dispatch path from sink I/O.
type noopDestination struct {
	min core.Level
}

func newNoopDestination(min core.Level) destination.Destination {
	return &noopDestination{min: min}
}

func (d *noopDestination) ID() string                 { return "noop" }
func (d *noopDestination) Enabled() bool              { return true }
func (d *noopDestination) SetEnabled(bool)            {}
func (d *noopDestination) MinimumLevel() core.Level   { return d.min }
func (d *noopDestination) SetMinimumLevel(core.Level) {}

func (d *noopDestination) Write(e *core.Entry) {
	_ = len(e.Line)
}
