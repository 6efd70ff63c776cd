package destination

import (
	"io"
	"os"
	"sync"

	"github.com/benny779/Logger/core"
)

// Trace writes the full formatted line verbatim to a trace stream
// (default: standard error).
type Trace struct {
	state
	mu sync.Mutex
	w  io.Writer
}

// TraceConfig holds configuration for the trace destination.
type TraceConfig struct {
	// Writer is the trace stream (default: os.Stderr).
	Writer io.Writer
	// MinimumLevel is the severity filter (default: Debug).
	MinimumLevel core.Level
}

// NewTrace creates a trace destination.
func NewTrace(id string, cfg TraceConfig) (*Trace, error) {
	t := &Trace{w: cfg.Writer}
	if err := t.state.init(id, cfg.MinimumLevel, core.DebugLevel); err != nil {
		return nil, err
	}
	if t.w == nil {
		t.w = os.Stderr
	}
	return t, nil
}

// Write delivers the full line to the trace stream.
func (t *Trace) Write(e *core.Entry) {
	line := e.Line
	t.record(Attempt(func() error {
		t.mu.Lock()
		defer t.mu.Unlock()
		return writeLine(t.w, line)
	}))
}
