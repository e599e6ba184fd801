package sink

import (
	"bytes"
	"io"
	"os"
	"sync"
)

// isConcurrentSafeWriter returns true if the writer is known to be safe for
// concurrent Write calls, allowing the sink to skip write-level locking.
func isConcurrentSafeWriter(w io.Writer) bool {
	if w == io.Discard {
		return true
	}
	_, ok := w.(*os.File)
	return ok
}

// Config holds configuration for a writer sink
type Config struct {
	// Writer to write to (default: os.Stdout)
	Writer io.Writer
	// Newline is appended to every line (default: "\n")
	Newline string
	// ConcurrentWriter indicates the Writer supports concurrent Write calls.
	// When true, the sink skips its write lock. Automatically detected for
	// io.Discard and *os.File; set true for other goroutine-safe writers.
	ConcurrentWriter bool
}

// applyDefaults fills in zero-value fields with defaults.
func applyDefaults(cfg *Config) {
	if cfg.Writer == nil {
		cfg.Writer = os.Stdout
	}
	if cfg.Newline == "" {
		cfg.Newline = "\n"
	}
}

// WriterSink writes each line followed by a terminator to an io.Writer
// with a single Write call.
type WriterSink struct {
	writer         io.Writer
	newline        string
	concurrentSafe bool // true if writer is safe for concurrent Write calls
	stats          *Stats
	mu             sync.Mutex // protects buf and writer
	buf            bytes.Buffer
	bufPool        sync.Pool // line buffers for the lock-free path
}

// New creates a writer sink.
func New(cfg Config) *WriterSink {
	applyDefaults(&cfg)
	s := &WriterSink{
		writer:         cfg.Writer,
		newline:        cfg.Newline,
		concurrentSafe: cfg.ConcurrentWriter || isConcurrentSafeWriter(cfg.Writer),
		stats:          NewStats(),
	}
	s.buf.Grow(256)
	s.bufPool = sync.Pool{
		New: func() interface{} {
			b := new(bytes.Buffer)
			b.Grow(256)
			return b
		},
	}
	return s
}

// Console returns a sink writing to standard output.
func Console() *WriterSink {
	return New(Config{})
}

// Write writes line and the terminator.
func (s *WriterSink) Write(line string) error {
	if s.concurrentSafe {
		b := s.bufPool.Get().(*bytes.Buffer)
		b.Reset()
		b.WriteString(line)
		b.WriteString(s.newline)
		_, err := s.writer.Write(b.Bytes())
		if b.Cap() <= 64*1024 {
			s.bufPool.Put(b)
		}
		return s.record(err)
	}

	s.mu.Lock()
	s.buf.Reset()
	s.buf.WriteString(line)
	s.buf.WriteString(s.newline)
	_, err := s.writer.Write(s.buf.Bytes())
	s.mu.Unlock()
	return s.record(err)
}

func (s *WriterSink) record(err error) error {
	if err != nil {
		s.stats.IncrementFailed()
		return err
	}
	s.stats.IncrementWritten()
	return nil
}

// Stats returns a snapshot of the current statistics
func (s *WriterSink) Stats() Snapshot {
	return s.stats.GetSnapshot()
}

// StatsCounter exposes the live counters, e.g. for NewCollector.
func (s *WriterSink) StatsCounter() *Stats {
	return s.stats
}
