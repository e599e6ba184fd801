package logger

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/philipp01105/logtree/core"
)

// SlogHandler is an adapter that implements slog.Handler on top of a
// Logger, so that slog records take part in level filtering and cascade
// like any other record.
type SlogHandler struct {
	logger *Logger
	attrs  []slog.Attr
	group  string
}

// NewSlogHandler creates a new slog.Handler adapter logging through l.
func NewSlogHandler(l *Logger) *SlogHandler {
	return &SlogHandler{logger: l}
}

// Enabled reports whether the logger accepts records at the given level.
func (s *SlogHandler) Enabled(_ context.Context, level slog.Level) bool {
	return s.logger.Enabled(levelFromSlog(level))
}

// Handle converts a slog.Record to a core.Record and logs it. Attributes
// are appended to the message as " key=value"; the source location comes
// from the record's program counter.
func (s *SlogHandler) Handle(_ context.Context, r slog.Record) error {
	level := levelFromSlog(r.Level)

	var b strings.Builder
	b.WriteString(r.Message)
	for _, a := range s.attrs {
		appendAttr(&b, "", a)
	}
	r.Attrs(func(a slog.Attr) bool {
		appendAttr(&b, s.group, a)
		return true
	})

	rec := core.NewRecord(level, s.logger.Name(), b.String())
	if !r.Time.IsZero() {
		rec.Timestamp = r.Time.Format(s.logger.registry.timestampFormat)
	}
	rec = core.CallerFromPC(r.PC).Locate(rec)

	return s.logger.LogRecord(level, rec)
}

// WithAttrs returns a new SlogHandler with additional attributes.
func (s *SlogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newAttrs := make([]slog.Attr, len(s.attrs), len(s.attrs)+len(attrs))
	copy(newAttrs, s.attrs)
	for _, a := range attrs {
		if s.group != "" {
			a.Key = s.group + "." + a.Key
		}
		newAttrs = append(newAttrs, a)
	}
	return &SlogHandler{
		logger: s.logger,
		attrs:  newAttrs,
		group:  s.group,
	}
}

// WithGroup returns a new SlogHandler with the given group name.
func (s *SlogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return s
	}
	newGroup := name
	if s.group != "" {
		newGroup = s.group + "." + name
	}
	return &SlogHandler{
		logger: s.logger,
		attrs:  s.attrs,
		group:  newGroup,
	}
}

// levelFromSlog maps slog's numeric levels onto the standard levels.
func levelFromSlog(level slog.Level) core.Level {
	switch {
	case level >= slog.LevelError+4:
		return core.FatalLevel
	case level >= slog.LevelError:
		return core.ErrorLevel
	case level >= slog.LevelWarn:
		return core.WarningLevel
	case level >= slog.LevelInfo:
		return core.InfoLevel
	case level >= slog.LevelDebug:
		return core.DebugLevel
	default:
		return core.TraceLevel
	}
}

// appendAttr writes a as " key=value", flattening groups into dotted keys.
func appendAttr(b *strings.Builder, prefix string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}

	key := a.Key
	if prefix != "" && key != "" {
		key = prefix + "." + key
	} else if key == "" {
		key = prefix
	}

	if a.Value.Kind() == slog.KindGroup {
		for _, ga := range a.Value.Group() {
			appendAttr(b, key, ga)
		}
		return
	}

	fmt.Fprintf(b, " %s=%s", key, a.Value.String())
}
