// Package core defines the contract shared by record producers and the
// installed handler: severity levels, the Record value, the Handler
// interface, and the set-once Registry that holds the process-wide handler.
//
// The Registry refuses a second installation instead of replacing the
// first: which handler wins a race would otherwise depend on init order,
// and silently swapping sinks mid-process loses output. Callers that get
// ErrAlreadyInit decide for themselves whether that is fatal.
//
// Levels are ordered by urgency, ErrorLevel first. OffLevel sorts above
// ErrorLevel and is valid only as a threshold; no record carries it.
package core
