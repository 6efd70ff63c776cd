package registry

import (
	"sync"

	"github.com/benny779/Logger/core"
	"github.com/benny779/Logger/destination"
	"github.com/benny779/Logger/formatter"
	"github.com/benny779/Logger/history"
)

// Registry owns destinations keyed by identifier, applies global and
// per-destination filtering, and performs the fan-out for every log call.
type Registry struct {
	mu         sync.RWMutex
	order      []destination.Destination // insertion order, used by sequential mode
	enabled    bool
	layout     string
	concurrent bool
	hist       *history.Buffer
	histPaused bool
}

// New creates an empty registry: globally enabled, concurrent dispatch,
// default timestamp layout, no destinations, no history.
func New() *Registry {
	return &Registry{
		enabled:    true,
		layout:     formatter.DefaultLayout,
		concurrent: true,
	}
}

// find returns the position of id in the dispatch order, or -1.
// Callers hold r.mu.
func (r *Registry) find(id string) int {
	for i, d := range r.order {
		if d.ID() == id {
			return i
		}
	}
	return -1
}

// AddOrReplace registers the destination under its identifier. A
// destination already registered under the same identifier is fully
// replaced, including its configuration, keeping its position in the
// dispatch order.
func (r *Registry) AddOrReplace(d destination.Destination) {
	if d == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if i := r.find(d.ID()); i >= 0 {
		r.order[i] = d
		return
	}
	r.order = append(r.order, d)
}

// Remove deletes the destination and reports whether it was present.
func (r *Registry) Remove(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.find(id)
	if i < 0 {
		return false
	}
	r.order = append(r.order[:i], r.order[i+1:]...)
	return true
}

// RemoveAll drops every destination.
func (r *Registry) RemoveAll() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.order = nil
}

// Get returns the destination registered under id.
func (r *Registry) Get(id string) (destination.Destination, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if i := r.find(id); i >= 0 {
		return r.order[i], true
	}
	return nil, false
}

// Enable marks the destination enabled. An unknown identifier is a silent
// no-op: the logging path never throws over a typo'd id.
func (r *Registry) Enable(id string) { r.setEnabled(id, true) }

// Disable marks the destination disabled. Unknown identifiers are a
// silent no-op.
func (r *Registry) Disable(id string) { r.setEnabled(id, false) }

func (r *Registry) setEnabled(id string, enabled bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if i := r.find(id); i >= 0 {
		r.order[i].SetEnabled(enabled)
	}
}

// SetMinimumLevel changes the destination's severity filter. Unknown
// identifiers are a silent no-op.
func (r *Registry) SetMinimumLevel(id string, level core.Level) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if i := r.find(id); i >= 0 {
		r.order[i].SetMinimumLevel(level)
	}
}

// SetGlobalEnabled turns all dispatching on or off. While disabled, log
// calls return before the payload is touched or any formatting happens.
func (r *Registry) SetGlobalEnabled(enabled bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.enabled = enabled
}

// SetTimeFormat sets the timestamp layout for formatted lines. An empty
// layout falls back to formatter.DefaultLayout.
func (r *Registry) SetTimeFormat(layout string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.layout = layout
}

// SetTimePattern renders the builder and applies its layout, surfacing any
// error the builder recorded.
func (r *Registry) SetTimePattern(b *formatter.PatternBuilder) error {
	layout, err := b.Layout()
	if err != nil {
		return err
	}
	r.SetTimeFormat(layout)
	return nil
}

// SetConcurrentDispatch switches between concurrent fan-out (default) and
// sequential dispatch in insertion order.
func (r *Registry) SetConcurrentDispatch(concurrent bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.concurrent = concurrent
}

// EnableHistory starts retaining formatted lines in a bounded buffer.
// Re-enabling after a pause with the same capacity resumes with contents
// preserved; any other case constructs a fresh buffer, since capacity is
// fixed for a buffer's lifetime.
func (r *Registry) EnableHistory(capacity int) error {
	if capacity < 1 {
		return core.Configf("history capacity must be positive, got %d", capacity)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.hist == nil || r.hist.Cap() != capacity {
		r.hist = history.NewBuffer(capacity)
	}
	r.histPaused = false
	return nil
}

// DisableHistory stops retention and discards the buffer entirely.
func (r *Registry) DisableHistory() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.hist = nil
	r.histPaused = false
}

// PauseHistory stops appends but keeps the current contents.
func (r *Registry) PauseHistory() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.hist != nil {
		r.histPaused = true
	}
}

// ClearHistory empties the buffer immediately.
func (r *Registry) ClearHistory() {
	r.mu.RLock()
	h := r.hist
	r.mu.RUnlock()
	if h != nil {
		h.Clear()
	}
}

// HistorySnapshot returns a copy of the retained lines, oldest first.
func (r *Registry) HistorySnapshot() []string {
	r.mu.RLock()
	h := r.hist
	r.mu.RUnlock()
	if h == nil {
		return nil
	}
	return h.Snapshot()
}

// Debug logs a debug payload.
func (r *Registry) Debug(payload interface{}) { r.log(core.DebugLevel, payload) }

// Info logs an informational payload.
func (r *Registry) Info(payload interface{}) { r.log(core.InfoLevel, payload) }

// Warn logs a warning payload.
func (r *Registry) Warn(payload interface{}) { r.log(core.WarnLevel, payload) }

// Error logs an error payload.
func (r *Registry) Error(payload interface{}) { r.log(core.ErrorLevel, payload) }

// Critical logs a critical payload.
func (r *Registry) Critical(payload interface{}) { r.log(core.CriticalLevel, payload) }

// log is the single dispatch routine behind every leveled method.
func (r *Registry) log(level core.Level, payload interface{}) {
	r.mu.RLock()
	if !r.enabled {
		r.mu.RUnlock()
		return
	}
	layout := r.layout
	concurrent := r.concurrent
	hist := r.hist
	paused := r.histPaused
	var targets []destination.Destination
	for _, d := range r.order {
		if d.Enabled() && level >= d.MinimumLevel() {
			targets = append(targets, d)
		}
	}
	r.mu.RUnlock()

	e := core.GetEntry(level, payload)
	formatter.Render(e, layout)

	if concurrent && len(targets) > 1 {
		var wg sync.WaitGroup
		wg.Add(len(targets))
		for _, d := range targets {
			go func(d destination.Destination) {
				defer wg.Done()
				dispatchOne(d, e)
			}(d)
		}
		wg.Wait()
	} else {
		for _, d := range targets {
			dispatchOne(d, e)
		}
	}

	// History records the line regardless of destination outcomes.
	if hist != nil && !paused {
		hist.Append(e.Line)
	}
	core.PutEntry(e)
}

// dispatchOne isolates a single destination: a panicking sink must never
// affect its siblings or the logging caller.
func dispatchOne(d destination.Destination, e *core.Entry) {
	defer func() {
		_ = recover()
	}()
	d.Write(e)
}
