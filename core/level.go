package core

import (
	"strings"

	"github.com/cockroachdb/errors"
)

// ErrUnknownLevel is returned by ParseLevel for names that match no standard level.
var ErrUnknownLevel = errors.New("unknown level")

// Level is an ordered severity with a display name. Levels compare by
// rank only; two levels with the same rank but different names filter
// identically.
type Level struct {
	rank int
	name string
}

// NewLevel creates a level with an arbitrary rank.
func NewLevel(rank int, name string) Level {
	return Level{rank: rank, name: name}
}

var (
	// TraceLevel for ultra-verbose diagnostics
	TraceLevel = NewLevel(0, "TRACE")
	// DebugLevel for detailed debugging information
	DebugLevel = NewLevel(1, "DEBUG")
	// InfoLevel for general informational messages
	InfoLevel = NewLevel(2, "INFO")
	// WarningLevel for warning messages (default threshold of a new root)
	WarningLevel = NewLevel(3, "WARNING")
	// ErrorLevel for error messages
	ErrorLevel = NewLevel(4, "ERROR")
	// FatalLevel for fatal messages. Logging at this level does not exit.
	FatalLevel = NewLevel(5, "FATAL")
)

// Levels returns the six standard levels in ascending order.
func Levels() []Level {
	return []Level{TraceLevel, DebugLevel, InfoLevel, WarningLevel, ErrorLevel, FatalLevel}
}

// Rank returns the numeric rank of the level
func (l Level) Rank() int {
	return l.rank
}

// Name returns the display name of the level
func (l Level) Name() string {
	return l.name
}

// String returns the display name of the level
func (l Level) String() string {
	return l.name
}

// Compare returns -1, 0 or +1 depending on whether l ranks below,
// equal to or above other.
func (l Level) Compare(other Level) int {
	switch {
	case l.rank < other.rank:
		return -1
	case l.rank > other.rank:
		return 1
	default:
		return 0
	}
}

// Enabled reports whether a message at level l passes a logger whose
// threshold is threshold.
func (l Level) Enabled(threshold Level) bool {
	return l.rank >= threshold.rank
}

// ParseLevel converts a standard level name to a Level. Matching is
// case-insensitive and WARN is accepted for WARNING.
func ParseLevel(s string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "TRACE":
		return TraceLevel, nil
	case "DEBUG":
		return DebugLevel, nil
	case "INFO":
		return InfoLevel, nil
	case "WARN", "WARNING":
		return WarningLevel, nil
	case "ERROR":
		return ErrorLevel, nil
	case "FATAL":
		return FatalLevel, nil
	default:
		return Level{}, errors.Wrapf(ErrUnknownLevel, "parse %q", s)
	}
}
