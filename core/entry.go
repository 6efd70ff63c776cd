package core

import (
	"sync"
	"time"
)

// Entry represents a single log event. It is created by one dispatch call,
// shared read-only with every qualifying destination, and discarded (or
// recycled) once the dispatch returns.
type Entry struct {
	Time    time.Time
	Level   Level
	Payload interface{} // raw message payload, formatted exactly once

	// Body and Line are filled by the formatter before fan-out and are the
	// only fields destinations read besides Time and Level.
	Body string
	Line string
}

// entryPool is a pool of Entry objects to reduce allocations
var entryPool = sync.Pool{
	New: func() interface{} {
		return new(Entry)
	},
}

// GetEntry retrieves an Entry from the pool, stamped with the current time.
func GetEntry(level Level, payload interface{}) *Entry {
	e := entryPool.Get().(*Entry)
	e.Time = time.Now()
	e.Level = level
	e.Payload = payload
	e.Body = ""
	e.Line = ""
	return e
}

// PutEntry returns an Entry to the pool. Callers must not touch the entry
// afterwards.
func PutEntry(e *Entry) {
	if e == nil {
		return
	}
	e.Payload = nil
	e.Body = ""
	e.Line = ""
	entryPool.Put(e)
}
