package history

import "sync"

// Buffer is a bounded FIFO of formatted log lines. It is safe for
// concurrent use by multiple in-flight dispatches.
type Buffer struct {
	mu    sync.Mutex
	lines []string
	head  int // index of the oldest element
	size  int
}

// NewBuffer creates a buffer holding at most capacity lines. Capacity must
// be positive; the registry validates it before construction.
func NewBuffer(capacity int) *Buffer {
	if capacity < 1 {
		capacity = 1
	}
	return &Buffer{lines: make([]string, capacity)}
}

// Append inserts a line at the tail, evicting the single oldest line when
// the buffer is full.
func (b *Buffer) Append(line string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.size == len(b.lines) {
		// Overwrite the oldest slot and advance the head.
		b.lines[b.head] = line
		b.head = (b.head + 1) % len(b.lines)
		return
	}
	b.lines[(b.head+b.size)%len(b.lines)] = line
	b.size++
}

// Clear empties the buffer immediately.
func (b *Buffer) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i := range b.lines {
		b.lines[i] = ""
	}
	b.head = 0
	b.size = 0
}

// Snapshot returns the current contents oldest-first. The returned slice is
// an independent copy and does not reflect later mutations.
func (b *Buffer) Snapshot() []string {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]string, b.size)
	for i := 0; i < b.size; i++ {
		out[i] = b.lines[(b.head+i)%len(b.lines)]
	}
	return out
}

// Len returns the number of buffered lines.
func (b *Buffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.size
}

// Cap returns the fixed capacity.
func (b *Buffer) Cap() int {
	return len(b.lines)
}
