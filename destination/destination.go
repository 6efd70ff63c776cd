package destination

import (
	"io"
	"strings"
	"sync/atomic"

	"github.com/benny779/Logger/core"
)

// Destination is an output channel with its own severity filter, enabled
// flag, and write operation. The registry is the only caller of Write.
type Destination interface {
	// ID returns the unique identifier the registry keys this destination by.
	ID() string

	// Enabled reports whether the destination currently accepts entries.
	Enabled() bool
	SetEnabled(enabled bool)

	// MinimumLevel is the lowest severity this destination accepts.
	MinimumLevel() core.Level
	SetMinimumLevel(level core.Level)

	// Write delivers one formatted entry. It never returns an error:
	// underlying failures are absorbed by the Attempt policy.
	Write(e *core.Entry)
}

// Attempt runs fn and reports whether it completed without error. Errors
// and panics are discarded. This is the deliberate best-effort contract at
// every destination boundary: logging infrastructure must not be able to
// crash or block the host application on transient sink failures.
func Attempt(fn func() error) (ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()
	return fn() == nil
}

// Stats is a snapshot of one destination's write outcomes.
type Stats struct {
	// Written counts writes that completed.
	Written uint64
	// Discarded counts writes whose failure was absorbed by Attempt.
	Discarded uint64
}

// state carries the identity and the two externally mutable flags shared by
// every built-in destination, plus the outcome counters.
type state struct {
	id        string
	enabled   atomic.Bool
	minimum   atomic.Int32
	written   atomic.Uint64
	discarded atomic.Uint64
}

// init validates the identifier and applies the type default when no
// minimum level was configured.
func (s *state) init(id string, minimum, def core.Level) error {
	if id == "" {
		return core.Configf("destination identifier must not be empty")
	}
	if minimum == 0 {
		minimum = def
	}
	s.id = id
	s.enabled.Store(true)
	s.minimum.Store(int32(minimum))
	return nil
}

func (s *state) ID() string { return s.id }

func (s *state) Enabled() bool { return s.enabled.Load() }

func (s *state) SetEnabled(enabled bool) { s.enabled.Store(enabled) }

func (s *state) MinimumLevel() core.Level { return core.Level(s.minimum.Load()) }

func (s *state) SetMinimumLevel(level core.Level) { s.minimum.Store(int32(level)) }

// record tallies one Attempt outcome.
func (s *state) record(ok bool) {
	if ok {
		s.written.Add(1)
	} else {
		s.discarded.Add(1)
	}
}

// Stats returns the current outcome counters.
func (s *state) Stats() Stats {
	return Stats{Written: s.written.Load(), Discarded: s.discarded.Load()}
}

// writeLine writes one line to w, newline-terminated.
func writeLine(w io.Writer, line string) error {
	if !strings.HasSuffix(line, "\n") {
		line += "\n"
	}
	_, err := io.WriteString(w, line)
	return err
}
