package registry

import (
	"context"
	"log/slog"
	"strings"

	"github.com/benny779/Logger/core"
)

// SlogHandler is an adapter that implements slog.Handler on top of a
// Registry, so Logger can serve as a drop-in backend for log/slog.
// Attributes are flattened into the message text; the dispatch timestamp
// is taken when the registry builds the entry.
type SlogHandler struct {
	reg   *Registry
	level core.Level
	attrs []slog.Attr
	group string
}

// NewSlogHandler creates a slog.Handler adapter around the registry.
// Records below level are reported as disabled.
func NewSlogHandler(r *Registry, level core.Level) *SlogHandler {
	return &SlogHandler{reg: r, level: level}
}

// Enabled reports whether the handler handles records at the given level.
func (s *SlogHandler) Enabled(_ context.Context, level slog.Level) bool {
	return slogLevel(level) >= s.level
}

// Handle converts the record into a plain text payload and dispatches it.
func (s *SlogHandler) Handle(_ context.Context, record slog.Record) error {
	var b strings.Builder
	b.WriteString(record.Message)

	write := func(key string, v slog.Value) {
		b.WriteByte(' ')
		b.WriteString(key)
		b.WriteByte('=')
		b.WriteString(v.Resolve().String())
	}
	for _, a := range s.attrs {
		write(a.Key, a.Value)
	}
	record.Attrs(func(a slog.Attr) bool {
		key := a.Key
		if s.group != "" {
			key = s.group + "." + key
		}
		write(key, a.Value)
		return true
	})

	s.reg.log(slogLevel(record.Level), b.String())
	return nil
}

// WithAttrs returns a new handler carrying additional attributes. The
// current group prefix is baked into the keys, since attributes bound
// before a group is opened do not belong to it.
func (s *SlogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	merged := make([]slog.Attr, len(s.attrs), len(s.attrs)+len(attrs))
	copy(merged, s.attrs)
	for _, a := range attrs {
		if s.group != "" {
			a.Key = s.group + "." + a.Key
		}
		merged = append(merged, a)
	}
	return &SlogHandler{reg: s.reg, level: s.level, attrs: merged, group: s.group}
}

// WithGroup returns a new handler that prefixes attribute keys with the
// group name.
func (s *SlogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return s
	}
	group := name
	if s.group != "" {
		group = s.group + "." + name
	}
	return &SlogHandler{reg: s.reg, level: s.level, attrs: s.attrs, group: group}
}

// slogLevel converts a slog.Level to a core.Level.
func slogLevel(level slog.Level) core.Level {
	switch {
	case level >= slog.LevelError:
		return core.ErrorLevel
	case level >= slog.LevelWarn:
		return core.WarnLevel
	case level >= slog.LevelInfo:
		return core.InfoLevel
	default:
		return core.DebugLevel
	}
}
