package formatter

import (
	"bytes"
	"sync"

	"github.com/philipp01105/logtree/core"
)

// Formatter defines the interface for record formatters
type Formatter interface {
	// Format renders a record as a single display line without the
	// trailing line terminator.
	Format(rec core.Record) string
}

// Func adapts an ordinary function to the Formatter interface.
type Func func(rec core.Record) string

// Format calls f(rec).
func (f Func) Format(rec core.Record) string {
	return f(rec)
}

// Config holds formatter configuration
type Config struct {
	// HideLocation drops the [file:line][method] segment even for
	// records that carry location metadata.
	HideLocation bool
}

// bufferPool is a pool of bytes.Buffer to reduce allocations
var bufferPool = &sync.Pool{
	New: func() interface{} {
		b := new(bytes.Buffer)
		b.Grow(256)
		return b
	},
}

func getBuffer() *bytes.Buffer {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > 64*1024 { // Don't keep very large buffers
		return
	}
	bufferPool.Put(buf)
}
