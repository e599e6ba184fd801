package sink

// Sink receives formatted log lines. Write is called once per logger
// in a cascade whose filter accepts the record; the line carries no
// terminator.
type Sink interface {
	Write(line string) error
}

// Func adapts an ordinary function to the Sink interface.
type Func func(line string) error

// Write calls f(line).
func (f Func) Write(line string) error {
	return f(line)
}

// StatsProvider is implemented by sinks that track write statistics.
type StatsProvider interface {
	Stats() Snapshot
}
