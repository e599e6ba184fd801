package logger

import (
	"sync"

	"github.com/philipp01105/logtree/core"
)

var (
	defaultRegistry = NewRegistry()
	defaultMu       sync.RWMutex
)

// Default returns the process-wide registry
func Default() *Registry {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultRegistry
}

// SetDefault replaces the process-wide registry. Loggers obtained from
// the previous registry keep working against it.
func SetDefault(r *Registry) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultRegistry = r
}

// GetLogger returns the named logger of the default registry
func GetLogger(name string) *Logger {
	return Default().GetLogger(name)
}

// RootLogger returns the root logger of the default registry
func RootLogger() *Logger {
	return Default().RootLogger()
}

// Package-level convenience functions using the default root logger

// Trace logs a trace message using the default root logger
func Trace(msg string) error {
	return RootLogger().Log(core.TraceLevel, msg)
}

// Debug logs a debug message using the default root logger
func Debug(msg string) error {
	return RootLogger().Log(core.DebugLevel, msg)
}

// Info logs an info message using the default root logger
func Info(msg string) error {
	return RootLogger().Log(core.InfoLevel, msg)
}

// Warning logs a warning message using the default root logger
func Warning(msg string) error {
	return RootLogger().Log(core.WarningLevel, msg)
}

// Error logs an error message using the default root logger
func Error(msg string) error {
	return RootLogger().Log(core.ErrorLevel, msg)
}

// Fatal logs a fatal message using the default root logger
func Fatal(msg string) error {
	return RootLogger().Log(core.FatalLevel, msg)
}
