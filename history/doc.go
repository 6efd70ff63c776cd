// Package history provides the bounded in-memory buffer of formatted log
// lines kept by the registry.
//
// The buffer is a fixed-capacity ring with strict drop-oldest eviction:
// an append over capacity evicts exactly the single oldest line. Snapshot
// returns an independent copy of the contents at call time, so readers are
// never affected by concurrent appends. Capacity is fixed for the buffer's
// lifetime; the registry constructs a new buffer when history is re-enabled
// after being disabled.
package history
