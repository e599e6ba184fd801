// Package formatter defines how log records are rendered into lines.
//
// The Formatter interface is a pure function from core.Record to a
// string. TextFormatter produces the de facto wire format consumed by
// anything parsing logtree output:
//
//	ERROR [2026-02-18T13:00:00Z] [main.go:42][main.run] app.db: connection lost
//
// The bracketed location segment is rendered only for records whose
// MethodName is set; records without location metadata go straight
// from the timestamp to the logger name. The line terminator is the
// sink's responsibility.
//
// TextFormatter uses a pooled bytes.Buffer internally. Buffers larger
// than 64 KiB are not returned to the pool to prevent a single large
// log line from permanently inflating memory usage.
package formatter
