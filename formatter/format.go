package formatter

import (
	"bytes"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/benny779/Logger/core"
)

// DefaultLayout is the timestamp layout used when none is configured.
const DefaultLayout = "2006-01-02 15:04:05.000"

// bufferPool is a pool of bytes.Buffer to reduce allocations
var bufferPool = &sync.Pool{
	New: func() interface{} {
		b := new(bytes.Buffer)
		b.Grow(256)
		return b
	},
}

func getBuffer() *bytes.Buffer {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > 64*1024 { // Don't keep very large buffers
		return
	}
	bufferPool.Put(buf)
}

// Body converts a raw payload into its display text.
//
// nil yields the empty string. Errors are rendered as their cause chain,
// one message per line. A *core.QueryCommand is rendered as its kind, its
// text, and one "<name>, <value>" line per parameter. Everything else falls
// back to fmt.Stringer or fmt.Sprint.
func Body(payload interface{}) string {
	switch p := payload.(type) {
	case nil:
		return ""
	case *core.QueryCommand:
		return commandBody(p)
	case core.QueryCommand:
		return commandBody(&p)
	case error:
		return errorBody(p)
	case string:
		return p
	case fmt.Stringer:
		return p.String()
	default:
		return fmt.Sprint(payload)
	}
}

// causer is the cause-chain contract used by github.com/pkg/errors.
type causer interface {
	Cause() error
}

func unwrapOnce(err error) error {
	switch e := err.(type) {
	case interface{ Unwrap() error }:
		return e.Unwrap()
	case causer:
		return e.Cause()
	}
	return nil
}

// errorBody walks the chain from outermost to innermost cause, emitting one
// newline-terminated line of message text per link. Links whose message is
// entirely the cause's own message (pure stack annotations) are skipped.
func errorBody(err error) string {
	buf := getBuffer()
	defer putBuffer(buf)

	for err != nil {
		next := unwrapOnce(err)
		msg := err.Error()
		if next != nil {
			if msg == next.Error() {
				err = next
				continue
			}
			msg = strings.TrimSuffix(msg, ": "+next.Error())
		}
		buf.WriteString(msg)
		buf.WriteByte('\n')
		err = next
	}
	return buf.String()
}

func commandBody(cmd *core.QueryCommand) string {
	buf := getBuffer()
	defer putBuffer(buf)

	buf.WriteString(string(cmd.Kind))
	buf.WriteByte('\n')
	buf.WriteString(cmd.Text)
	buf.WriteByte('\n')
	for _, p := range cmd.Params {
		buf.WriteString(p.Name)
		buf.WriteString(", ")
		buf.WriteString(fmt.Sprint(p.Value))
		buf.WriteByte('\n')
	}
	return buf.String()
}

// Line composes the full formatted line:
// "<timestamp> [<3-letter code>] <body>".
func Line(t time.Time, level core.Level, body, layout string) string {
	if layout == "" {
		layout = DefaultLayout
	}

	buf := getBuffer()
	defer putBuffer(buf)

	// Timestamp - use AppendFormat to avoid string allocation
	buf.Write(t.AppendFormat(buf.AvailableBuffer(), layout))
	buf.WriteString(" [")
	buf.WriteString(level.Short())
	buf.WriteString("] ")
	buf.WriteString(body)
	return buf.String()
}

// Render fills the entry's Body and Line. The registry calls it exactly once
// per dispatch, before fan-out.
func Render(e *core.Entry, layout string) {
	e.Body = Body(e.Payload)
	e.Line = Line(e.Time, e.Level, e.Body, layout)
}
