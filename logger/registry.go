package logger

import (
	"os"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/logtree/core"
	"github.com/philipp01105/logtree/formatter"
	"github.com/philipp01105/logtree/sink"
)

// RootName is the reserved name of the root logger.
const RootName = ""

// Registry maps logger names to the one Logger instance per name and owns
// the root logger. A Registry is safe for concurrent use.
type Registry struct {
	sink            sink.Sink
	formatter       formatter.Formatter
	rootLevel       core.Level
	now             func() time.Time
	timestampFormat string
	fallback        *zap.Logger

	mu      sync.Mutex // guards loggers and root
	loggers map[string]*Logger
	root    *Logger
}

// Builder provides a fluent API for building Registry instances
type Builder struct {
	sink            sink.Sink
	formatter       formatter.Formatter
	rootLevel       core.Level
	now             func() time.Time
	timestampFormat string
	fallback        *zap.Logger
}

// NewBuilder creates a new registry builder
func NewBuilder() *Builder {
	return &Builder{
		rootLevel:       core.WarningLevel, // Default level of a fresh root
		timestampFormat: time.RFC3339,
	}
}

// WithSink sets the sink shared by every logger without an override
// (default: stdout)
func (b *Builder) WithSink(s sink.Sink) *Builder {
	b.sink = s
	return b
}

// WithFormatter sets the line formatter (default: TextFormatter)
func (b *Builder) WithFormatter(f formatter.Formatter) *Builder {
	b.formatter = f
	return b
}

// WithRootLevel sets the level the root logger starts with
func (b *Builder) WithRootLevel(level core.Level) *Builder {
	b.rootLevel = level
	return b
}

// WithClock sets the time source used to stamp records
func (b *Builder) WithClock(now func() time.Time) *Builder {
	b.now = now
	return b
}

// WithTimestampFormat sets the time layout of stamped records
// (default: time.RFC3339)
func (b *Builder) WithTimestampFormat(layout string) *Builder {
	b.timestampFormat = layout
	return b
}

// WithFallback sets the logger that receives sink failures
// (default: warnings to stderr)
func (b *Builder) WithFallback(l *zap.Logger) *Builder {
	b.fallback = l
	return b
}

// Build creates the Registry instance
func (b *Builder) Build() *Registry {
	r := &Registry{
		sink:            b.sink,
		formatter:       b.formatter,
		rootLevel:       b.rootLevel,
		now:             b.now,
		timestampFormat: b.timestampFormat,
		fallback:        b.fallback,
		loggers:         make(map[string]*Logger),
	}
	if r.sink == nil {
		r.sink = sink.Console()
	}
	if r.formatter == nil {
		r.formatter = formatter.NewTextFormatter(formatter.Config{})
	}
	if r.now == nil {
		r.now = time.Now
	}
	if r.timestampFormat == "" {
		r.timestampFormat = time.RFC3339
	}
	if r.fallback == nil {
		r.fallback = newFallback()
	}
	return r
}

// NewRegistry creates a registry with default settings
func NewRegistry() *Registry {
	return NewBuilder().Build()
}

func newFallback() *zap.Logger {
	enc := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	zc := zapcore.NewCore(enc, zapcore.Lock(os.Stderr), zapcore.WarnLevel)
	return zap.New(zc).Named("logtree")
}

// GetLogger returns the logger registered under name, creating it on first
// use. A new non-root logger is parented to the root, cascades into it, and
// starts with the root's current level. The logger is fully wired before
// any caller can observe it.
func (r *Registry) GetLogger(name string) *Logger {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.getLocked(name)
}

func (r *Registry) getLocked(name string) *Logger {
	if l, ok := r.loggers[name]; ok {
		return l
	}

	l := newLogger(name, r)
	if name != RootName {
		root := r.rootLocked()
		l.parent = root
		l.useParent = true
		l.level = root.Level()
	}
	r.loggers[name] = l
	return l
}

// RootLogger returns the root logger. The first call detaches it from any
// parent and disables its UseParent flag; later calls return it unchanged.
func (r *Registry) RootLogger() *Logger {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rootLocked()
}

func (r *Registry) rootLocked() *Logger {
	if r.root == nil {
		root := r.getLocked(RootName)
		root.setParent(nil)
		root.setUseParent(false)
		r.root = root
	}
	return r.root
}

// Names returns the sorted names of all loggers created so far.
func (r *Registry) Names() []string {
	r.mu.Lock()
	names := make([]string, 0, len(r.loggers))
	for name := range r.loggers {
		names = append(names, name)
	}
	r.mu.Unlock()

	sort.Strings(names)
	return names
}

// timestamp renders the current time for record stamping
func (r *Registry) timestamp() string {
	return r.now().Format(r.timestampFormat)
}
