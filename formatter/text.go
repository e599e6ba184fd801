package formatter

import (
	"bytes"
	"strconv"

	"github.com/philipp01105/logtree/core"
)

// TextFormatter renders records in the line layout
//
//	<LEVEL> [<timestamp>] [<file>:<line>][<method>] <logger>: <message>
//
// where the location segment is present only for records with a
// non-empty MethodName.
type TextFormatter struct {
	Config
}

// NewTextFormatter creates a new text formatter
func NewTextFormatter(cfg Config) *TextFormatter {
	return &TextFormatter{Config: cfg}
}

// Format formats a record as text
func (f *TextFormatter) Format(rec core.Record) string {
	buf := getBuffer()
	f.FormatRecord(rec, buf)
	line := buf.String()
	putBuffer(buf)
	return line
}

// FormatRecord writes the formatted record into buf. Fields are
// inserted verbatim, with no escaping or truncation.
func (f *TextFormatter) FormatRecord(rec core.Record, buf *bytes.Buffer) {
	buf.WriteString(rec.Level.Name())
	buf.WriteString(" [")
	buf.WriteString(rec.Timestamp)
	buf.WriteString("] ")

	if rec.HasLocation() && !f.HideLocation {
		buf.WriteByte('[')
		buf.WriteString(rec.FileName)
		buf.WriteByte(':')
		buf.Write(strconv.AppendInt(buf.AvailableBuffer(), int64(rec.LineNumber), 10))
		buf.WriteString("][")
		buf.WriteString(rec.MethodName)
		buf.WriteString("] ")
	}

	buf.WriteString(rec.LoggerName)
	buf.WriteString(": ")
	buf.WriteString(rec.Message)
}
