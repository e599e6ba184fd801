package core

// Record is the data of one log event prior to formatting. It is a
// plain value: fields are set by the call site before the record is
// handed to a logger, and loggers never modify a record they cascade.
type Record struct {
	Level      Level
	LoggerName string
	Message    string
	// Timestamp is assigned by the producer. Loggers stamp records that
	// arrive with an empty timestamp.
	Timestamp  string
	FileName   string
	LineNumber int
	// MethodName gates location rendering: a record has location
	// metadata only when MethodName is non-empty.
	MethodName string
}

// NewRecord builds a record without location metadata
func NewRecord(level Level, loggerName, message string) Record {
	return Record{
		Level:      level,
		LoggerName: loggerName,
		Message:    message,
	}
}

// WithLocation returns a copy of r carrying the given source location.
func (r Record) WithLocation(file string, line int, method string) Record {
	r.FileName = file
	r.LineNumber = line
	r.MethodName = method
	return r
}

// HasLocation reports whether the record carries source location metadata.
func (r Record) HasLocation() bool {
	return r.MethodName != ""
}
