package logger

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

var (
	// ErrSinkWrite matches every *SinkError via errors.Is.
	ErrSinkWrite = errors.New("sink write failed")

	// ErrInvalidFormat indicates a format string whose verbs do not match
	// the supplied arguments.
	ErrInvalidFormat = errors.New("invalid format")
)

// SinkError reports a failed write by one logger of a cascade.
type SinkError struct {
	// Logger is the name of the logger whose sink failed.
	Logger string
	// Err is the error returned by the sink.
	Err error
}

func (e *SinkError) Error() string {
	return fmt.Sprintf("logger %q: %s: %v", e.Logger, ErrSinkWrite, e.Err)
}

// Unwrap returns the sink's error.
func (e *SinkError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrSinkWrite.
func (e *SinkError) Is(target error) bool {
	return target == ErrSinkWrite
}
