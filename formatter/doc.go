// Package formatter turns a log entry's raw payload into display text and
// composes the final timestamped line.
//
// Body handles the closed set of known payload shapes: nil, error chains
// (one line of message text per link, outermost first, stack traces
// excluded), *core.QueryCommand (kind, command text, one line per bound
// parameter), fmt.Stringer, and a generic stringify fallback. Line prefixes
// the body with the formatted timestamp and the 3-letter level code. Render
// computes both exactly once per entry; the fan-out reuses the result for
// every destination, so formatting cost is never paid per destination.
//
// PatternBuilder is a fluent composer of timestamp layouts over Go
// reference-time fragments. Token arguments are validated as the pattern is
// built and the first error sticks until Clear.
//
// Formatting uses a pooled bytes.Buffer. Buffers larger than 64 KiB are not
// returned to the pool to prevent a single large log line from permanently
// inflating memory usage.
package formatter
