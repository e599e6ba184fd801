package formatter_test

import (
	"fmt"

	"github.com/philipp01105/logtree/core"
	"github.com/philipp01105/logtree/formatter"
)

func ExampleNewTextFormatter() {
	f := formatter.NewTextFormatter(formatter.Config{})

	rec := core.NewRecord(core.InfoLevel, "app", "hello world")
	rec.Timestamp = "2026-01-15T12:00:00Z"
	fmt.Println(f.Format(rec))

	fmt.Println(f.Format(rec.WithLocation("main.go", 42, "main.run")))
	// Output:
	// INFO [2026-01-15T12:00:00Z] app: hello world
	// INFO [2026-01-15T12:00:00Z] [main.go:42][main.run] app: hello world
}
