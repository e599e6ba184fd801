// Package core defines the shared types used across logtree.
//
// It provides the Level type for severity filtering, the Record type
// that represents a single log event, and CallerInfo for capturing the
// source location a record was produced at.
//
// Level is a (rank, name) pair rather than a bare integer so that
// applications can define their own severities between the six standard
// ones. Filtering only ever looks at the rank.
//
// Record is a value type. A logger receives a copy, and the same copy is
// handed to every ancestor in a cascade, so ancestor lines always carry
// the originating logger's name.
package core
