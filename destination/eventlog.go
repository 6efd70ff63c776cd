package destination

import "github.com/benny779/Logger/core"

// EventSink is the external platform event-log collaborator. Messages are
// delivered by coarse category, matching how platform event logs classify
// entries.
type EventSink interface {
	Report(source string, category core.Category, message string) error
}

// EventLog delivers log entries to a platform event sink.
type EventLog struct {
	state
	source string
	sink   EventSink
}

// EventLogConfig holds configuration for the event-log destination.
type EventLogConfig struct {
	// Source identifies the reporting application (default: the process's
	// executable name).
	Source string
	// Sink is the platform collaborator. Required.
	Sink EventSink
	// MinimumLevel is the severity filter (default: Warn).
	MinimumLevel core.Level
}

// NewEventLog creates an event-log destination.
func NewEventLog(id string, cfg EventLogConfig) (*EventLog, error) {
	l := &EventLog{source: cfg.Source, sink: cfg.Sink}
	if err := l.state.init(id, cfg.MinimumLevel, core.WarnLevel); err != nil {
		return nil, err
	}
	if l.sink == nil {
		return nil, core.Configf("event log destination requires a sink")
	}
	if l.source == "" {
		l.source = core.Identity().App
	}
	return l, nil
}

// Write reports the entry under its mapped category.
func (l *EventLog) Write(e *core.Entry) {
	l.record(Attempt(func() error {
		return l.sink.Report(l.source, e.Level.Category(), e.Line)
	}))
}
