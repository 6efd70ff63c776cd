// Package registry is the public API of Logger. Most users only need to
// import this package.
//
// A Registry owns a set of destinations keyed by identifier and performs
// the fan-out for every leveled log call: it builds the entry, formats it
// exactly once, selects destinations whose severity filter the entry
// passes, and dispatches to them either concurrently (one goroutine per
// qualifying destination, joined before the call returns) or sequentially
// in insertion order. A failing or panicking destination is isolated and
// never affects its siblings or the caller.
//
// The registry is caller-owned state with an explicit lifetime:
//
//	log := registry.New()
//	f, _ := destination.NewFile("file", destination.FileConfig{Dir: "/var/log/app"})
//	log.AddOrReplace(f)
//	log.Error(err)
//
// For programs that want a process-wide instance, Default returns a shared
// registry (initially without destinations) and the package-level Debug,
// Info, Warn, Error, and Critical functions delegate to it.
//
// A bounded in-memory history of formatted lines can be enabled with
// EnableHistory; it records every dispatched line regardless of any
// destination's outcome.
//
// NewSlogHandler adapts a Registry to log/slog.Handler, allowing Logger to
// serve as a drop-in backend for the standard library.
package registry
