// Package sink provides the destinations that receive formatted log lines.
//
// A Sink has a single method, Write(line). Loggers call it once for
// every logger in a cascade that accepts the record, so one event can
// produce several writes to the same sink.
//
// WriterSink appends a line terminator and writes to any io.Writer
// (default: os.Stdout) with one Write call per line. Writes to writers
// that are not known to be goroutine-safe are serialized with a mutex;
// *os.File and io.Discard bypass the lock.
//
// WriterSink counts written and failed lines in a Stats value, which a
// Collector can publish to Prometheus.
package sink
