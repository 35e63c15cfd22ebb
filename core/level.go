package core

import "strings"

// Level represents the severity of a log record. Smaller values are more
// severe: ErrorLevel is the most urgent, TraceLevel the least. OffLevel is
// only meaningful as a threshold and disables all records.
type Level int8

const (
	// OffLevel disables all logging when used as a threshold
	OffLevel Level = iota
	// ErrorLevel for error messages (most severe)
	ErrorLevel
	// WarnLevel for warning messages
	WarnLevel
	// InfoLevel for general informational messages (default)
	InfoLevel
	// DebugLevel for detailed debugging information
	DebugLevel
	// TraceLevel for very fine-grained tracing (least severe)
	TraceLevel
)

// String returns the string representation of the level
func (l Level) String() string {
	switch l {
	case OffLevel:
		return "OFF"
	case ErrorLevel:
		return "ERROR"
	case WarnLevel:
		return "WARN"
	case InfoLevel:
		return "INFO"
	case DebugLevel:
		return "DEBUG"
	case TraceLevel:
		return "TRACE"
	default:
		return "UNKNOWN"
	}
}

// Label returns the fixed-width, space-padded display label for the level.
// All labels are exactly five characters so columns line up.
func (l Level) Label() string {
	switch l {
	case ErrorLevel:
		return "ERROR"
	case WarnLevel:
		return "WARN "
	case InfoLevel:
		return "INFO "
	case DebugLevel:
		return "DEBUG"
	case TraceLevel:
		return "TRACE"
	default:
		return "     "
	}
}

// ParseLevel converts a string to a Level
func ParseLevel(s string) Level {
	switch strings.ToUpper(s) {
	case "OFF":
		return OffLevel
	case "ERROR":
		return ErrorLevel
	case "WARN", "WARNING":
		return WarnLevel
	case "INFO":
		return InfoLevel
	case "DEBUG":
		return DebugLevel
	case "TRACE":
		return TraceLevel
	default:
		return InfoLevel
	}
}
