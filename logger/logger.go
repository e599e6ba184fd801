package logger

import (
	"fmt"
	"strings"
	"sync"

	"github.com/cockroachdb/errors"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/philipp01105/logtree/core"
	"github.com/philipp01105/logtree/sink"
)

// Logger is a named node of a registry's logger tree. Loggers are only
// created by a Registry; the zero value is not usable.
type Logger struct {
	name     string
	registry *Registry

	mu        sync.RWMutex
	level     core.Level
	parent    *Logger
	useParent bool
	sink      sink.Sink
}

func newLogger(name string, r *Registry) *Logger {
	return &Logger{
		name:     name,
		registry: r,
		level:    r.rootLevel,
	}
}

// Name returns the registry key of the logger. The root logger's name is
// the empty string.
func (l *Logger) Name() string {
	return l.name
}

// IsRoot reports whether l is its registry's root logger.
func (l *Logger) IsRoot() bool {
	return l.name == RootName
}

// Level returns the logger's threshold
func (l *Logger) Level() core.Level {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.level
}

// SetLevel sets the logger's threshold. Children created earlier keep
// the level they copied at creation.
func (l *Logger) SetLevel(level core.Level) {
	l.mu.Lock()
	l.level = level
	l.mu.Unlock()
}

// Parent returns the logger l cascades to, or nil.
func (l *Logger) Parent() *Logger {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.parent
}

// SetParent replaces the parent link. It has no effect on the root logger,
// which never has a parent.
func (l *Logger) SetParent(parent *Logger) {
	if l.IsRoot() {
		return
	}
	l.setParent(parent)
}

func (l *Logger) setParent(parent *Logger) {
	l.mu.Lock()
	l.parent = parent
	l.mu.Unlock()
}

// UseParent reports whether children of l cascade into l.
func (l *Logger) UseParent() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.useParent
}

// SetUseParent controls whether records emitted by children of l are
// re-emitted by l. The flag is read on the parent side of a cascade: a
// logger forwards to its parent only when the parent's flag is set. It has
// no effect on the root logger, whose flag is always false.
func (l *Logger) SetUseParent(useParent bool) {
	if l.IsRoot() {
		return
	}
	l.setUseParent(useParent)
}

func (l *Logger) setUseParent(useParent bool) {
	l.mu.Lock()
	l.useParent = useParent
	l.mu.Unlock()
}

// Sink returns the sink l writes to: its own override if set, otherwise
// the registry's.
func (l *Logger) Sink() sink.Sink {
	l.mu.RLock()
	s := l.sink
	l.mu.RUnlock()
	if s == nil {
		return l.registry.sink
	}
	return s
}

// SetSink overrides the registry sink for l alone. nil restores the
// registry sink.
func (l *Logger) SetSink(s sink.Sink) {
	l.mu.Lock()
	l.sink = s
	l.mu.Unlock()
}

// Enabled reports whether a record at level passes l's threshold.
func (l *Logger) Enabled(level core.Level) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return level.Enabled(l.level)
}

// Log logs msg at level under l's name.
func (l *Logger) Log(level core.Level, msg string) error {
	if !l.Enabled(level) {
		return nil
	}
	return l.LogRecord(level, core.NewRecord(level, l.name, msg))
}

// LogRecord emits rec if level passes l's threshold, then cascades to the
// parent as long as the parent exists, has UseParent set, and accepts level
// itself. Every accepting logger writes the same record to its own sink.
//
// The level argument, not rec.Level, gates every step. A failed write does
// not stop the cascade; all failures are returned combined.
func (l *Logger) LogRecord(level core.Level, rec core.Record) error {
	if !l.Enabled(level) {
		return nil
	}
	if rec.Timestamp == "" {
		rec.Timestamp = l.registry.timestamp()
	}

	var (
		errs    error
		visited [8]*Logger
		seen    = visited[:0]
	)
	for cur := l; ; {
		if err := cur.write(rec); err != nil {
			errs = multierr.Append(errs, err)
		}
		seen = append(seen, cur)

		next := cur.Parent()
		if next == nil || !next.UseParent() || !next.Enabled(level) || containsLogger(seen, next) {
			break
		}
		cur = next
	}
	return errs
}

func containsLogger(list []*Logger, l *Logger) bool {
	for _, x := range list {
		if x == l {
			return true
		}
	}
	return false
}

// write formats rec and hands the line to l's sink, reporting failures to
// the registry fallback logger.
func (l *Logger) write(rec core.Record) error {
	line := l.registry.formatter.Format(rec)
	if err := l.Sink().Write(line); err != nil {
		l.registry.fallback.Warn("sink write failed",
			zap.String("logger", l.name),
			zap.String("origin", rec.LoggerName),
			zap.String("level", rec.Level.Name()),
			zap.Error(err),
		)
		return &SinkError{Logger: l.name, Err: err}
	}
	return nil
}

// Trace logs a trace message
func (l *Logger) Trace(msg string) error {
	return l.Log(core.TraceLevel, msg)
}

// Debug logs a debug message
func (l *Logger) Debug(msg string) error {
	return l.Log(core.DebugLevel, msg)
}

// Info logs an info message
func (l *Logger) Info(msg string) error {
	return l.Log(core.InfoLevel, msg)
}

// Warning logs a warning message
func (l *Logger) Warning(msg string) error {
	return l.Log(core.WarningLevel, msg)
}

// Error logs an error message
func (l *Logger) Error(msg string) error {
	return l.Log(core.ErrorLevel, msg)
}

// Fatal logs a fatal message. It does not exit the program.
func (l *Logger) Fatal(msg string) error {
	return l.Log(core.FatalLevel, msg)
}

// Tracef logs rec at trace level with a formatted message
func (l *Logger) Tracef(rec core.Record, format string, args ...any) error {
	return l.logf(core.TraceLevel, rec, format, args)
}

// Debugf logs rec at debug level with a formatted message
func (l *Logger) Debugf(rec core.Record, format string, args ...any) error {
	return l.logf(core.DebugLevel, rec, format, args)
}

// Infof logs rec at info level with a formatted message
func (l *Logger) Infof(rec core.Record, format string, args ...any) error {
	return l.logf(core.InfoLevel, rec, format, args)
}

// Warningf logs rec at warning level with a formatted message
func (l *Logger) Warningf(rec core.Record, format string, args ...any) error {
	return l.logf(core.WarningLevel, rec, format, args)
}

// Errorf logs rec at error level with a formatted message
func (l *Logger) Errorf(rec core.Record, format string, args ...any) error {
	return l.logf(core.ErrorLevel, rec, format, args)
}

// Fatalf logs rec at fatal level with a formatted message. It does not
// exit the program.
func (l *Logger) Fatalf(rec core.Record, format string, args ...any) error {
	return l.logf(core.FatalLevel, rec, format, args)
}

// logf renders format into rec's message and logs it at level. Filtered
// calls skip rendering. A record without a level or logger name gets
// level and l's name.
func (l *Logger) logf(level core.Level, rec core.Record, format string, args []any) error {
	if !l.Enabled(level) {
		return nil
	}

	msg, err := render(format, args)
	if err != nil {
		return err
	}

	rec.Message = msg
	if rec.Level == (core.Level{}) {
		rec.Level = level
	}
	if rec.LoggerName == "" {
		rec.LoggerName = l.name
	}
	return l.LogRecord(level, rec)
}

// render formats args with fmt and rejects results carrying fmt's
// "%!" error markers (missing, extra or mistyped arguments).
func render(format string, args []any) (string, error) {
	msg := fmt.Sprintf(format, args...)
	if strings.Contains(msg, "%!") && !strings.Contains(format, "%!") {
		return "", errors.Wrapf(ErrInvalidFormat, "format %q with %d args renders %q", format, len(args), msg)
	}
	return msg, nil
}

// Here returns a record carrying the caller's source location, for use
// with the formatted logging methods:
//
//	log.Errorf(logger.Here(), "query failed after %d retries", n)
func Here() core.Record {
	return core.GetCaller(1).Locate(core.Record{})
}
