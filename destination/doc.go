// Package destination provides the Destination interface and its built-in
// implementations: File (with rotation), Console, Trace, Database (tabular
// store), Mail (notification), and EventLog (platform event sink).
//
// A destination is constructed with an identifier and a minimum severity
// (each type has its own default) and exposes two externally mutable flags,
// enabled and minimum level. Construction validates all configuration and
// fails with a core.ConfigError on bad input; nothing is deferred to the
// write path.
//
// Write never returns an error. Every built-in routes its work through
// Attempt, the explicit attempt-and-discard policy: I/O and transport
// failures during a write are absorbed at the destination boundary and only
// visible through the per-destination Stats counters. A slow or failing
// sink can therefore never crash the host application.
//
// Destinations whose writes touch shared mutable state (file maintenance,
// stream writers) serialize Write calls with an internal mutex, so
// concurrent dispatches never interleave rotation and appends.
package destination
