package destination

import (
	"io"
	"os"
	"sync"

	"github.com/mattn/go-isatty"

	"github.com/benny779/Logger/core"
)

// interactive reports whether stdout is attached to a terminal. It is a
// variable to allow overriding in tests.
var interactive = func() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Console writes the full formatted line verbatim to standard output.
type Console struct {
	state
	mu sync.Mutex
	w  io.Writer
}

// ConsoleConfig holds configuration for the console destination.
type ConsoleConfig struct {
	// Writer overrides the output stream (default: os.Stdout).
	Writer io.Writer
	// MinimumLevel is the severity filter (default: Info).
	MinimumLevel core.Level
}

// NewConsole creates a console destination. Construction fails when the
// process does not run in an interactive context.
func NewConsole(id string, cfg ConsoleConfig) (*Console, error) {
	if !interactive() {
		return nil, core.Configf("console destination requires an interactive session")
	}
	c := &Console{w: cfg.Writer}
	if err := c.state.init(id, cfg.MinimumLevel, core.InfoLevel); err != nil {
		return nil, err
	}
	if c.w == nil {
		c.w = os.Stdout
	}
	return c, nil
}

// Write delivers the full line to the console stream.
func (c *Console) Write(e *core.Entry) {
	line := e.Line
	c.record(Attempt(func() error {
		c.mu.Lock()
		defer c.mu.Unlock()
		return writeLine(c.w, line)
	}))
}
