package core

// Handler is the sink side of the logging contract. Exactly one Handler is
// installed per process (see Registry); every record emitted anywhere is
// routed to it.
type Handler interface {
	// Enabled reports whether records at the given level would be written
	Enabled(level Level) bool

	// Log writes a single record. Implementations must never return or
	// panic on write failure; logging is best-effort.
	Log(r *Record)

	// Flush forces any buffered output to the sink
	Flush()
}
