package logger_test

import (
	"os"
	"time"

	"github.com/philipp01105/logtree/core"
	"github.com/philipp01105/logtree/logger"
	"github.com/philipp01105/logtree/sink"
)

func fixedClock() time.Time {
	return time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)
}

// Build a registry and log through named loggers.
func ExampleNewBuilder() {
	reg := logger.NewBuilder().
		WithSink(sink.New(sink.Config{Writer: os.Stdout})).
		WithRootLevel(logger.InfoLevel).
		WithClock(fixedClock).
		Build()

	db := reg.GetLogger("app.db")
	_ = db.Debug("filtered")
	_ = db.Info("connected")
	_ = db.Errorf(core.Record{}.WithLocation("pool.go", 88, "db.(*Pool).Get"), "pool exhausted after %d waits", 3)
	// Output:
	// INFO [2026-01-15T12:00:00Z] app.db: connected
	// ERROR [2026-01-15T12:00:00Z] [pool.go:88][db.(*Pool).Get] app.db: pool exhausted after 3 waits
}

// Records cascade into a parent whose UseParent flag is set.
func ExampleLogger_SetParent() {
	reg := logger.NewBuilder().
		WithSink(sink.New(sink.Config{Writer: os.Stdout})).
		WithClock(fixedClock).
		Build()

	app := reg.GetLogger("app")
	http := reg.GetLogger("app.http")
	http.SetParent(app)

	_ = http.Error("handler panicked")
	// Output:
	// ERROR [2026-01-15T12:00:00Z] app.http: handler panicked
	// ERROR [2026-01-15T12:00:00Z] app.http: handler panicked
}
