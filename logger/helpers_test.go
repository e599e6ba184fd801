package logger

import (
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

const testTimestamp = "2026-02-18T13:00:00Z"

var testTime = time.Date(2026, 2, 18, 13, 0, 0, 0, time.UTC)

// recordingSink captures lines in memory and optionally fails every write.
type recordingSink struct {
	mu    sync.Mutex
	lines []string
	err   error
}

func (s *recordingSink) Write(line string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.lines = append(s.lines, line)
	return nil
}

func (s *recordingSink) Lines() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.lines))
	copy(out, s.lines)
	return out
}

type testEnv struct {
	reg      *Registry
	sink     *recordingSink
	observed *observer.ObservedLogs
}

func newTestEnv(t testing.TB) *testEnv {
	t.Helper()
	zc, observed := observer.New(zapcore.DebugLevel)
	s := &recordingSink{}
	reg := NewBuilder().
		WithSink(s).
		WithClock(func() time.Time { return testTime }).
		WithFallback(zap.New(zc)).
		Build()
	return &testEnv{reg: reg, sink: s, observed: observed}
}
