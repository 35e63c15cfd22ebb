package logger

import (
	"fmt"

	"github.com/philipp01105/prettylog/core"
)

// TargetLogger emits records whose target differs from the module they
// originate in, e.g. when logging on behalf of another component. Records
// keep the caller's module path but carry the explicit target.
type TargetLogger struct {
	target string
}

// Target returns a logger whose records carry the given target.
func Target(name string) TargetLogger {
	return TargetLogger{target: name}
}

// Error logs an error message with the explicit target
func (t TargetLogger) Error(args ...interface{}) {
	if h, ok := active(core.ErrorLevel); ok {
		dispatch(h, core.ErrorLevel, t.target, fmt.Sprint(args...))
	}
}

// Warn logs a warning message with the explicit target
func (t TargetLogger) Warn(args ...interface{}) {
	if h, ok := active(core.WarnLevel); ok {
		dispatch(h, core.WarnLevel, t.target, fmt.Sprint(args...))
	}
}

// Info logs an info message with the explicit target
func (t TargetLogger) Info(args ...interface{}) {
	if h, ok := active(core.InfoLevel); ok {
		dispatch(h, core.InfoLevel, t.target, fmt.Sprint(args...))
	}
}

// Debug logs a debug message with the explicit target
func (t TargetLogger) Debug(args ...interface{}) {
	if h, ok := active(core.DebugLevel); ok {
		dispatch(h, core.DebugLevel, t.target, fmt.Sprint(args...))
	}
}

// Trace logs a trace message with the explicit target
func (t TargetLogger) Trace(args ...interface{}) {
	if h, ok := active(core.TraceLevel); ok {
		dispatch(h, core.TraceLevel, t.target, fmt.Sprint(args...))
	}
}

// Errorf logs a formatted error message with the explicit target
func (t TargetLogger) Errorf(format string, args ...interface{}) {
	if h, ok := active(core.ErrorLevel); ok {
		dispatch(h, core.ErrorLevel, t.target, fmt.Sprintf(format, args...))
	}
}

// Warnf logs a formatted warning message with the explicit target
func (t TargetLogger) Warnf(format string, args ...interface{}) {
	if h, ok := active(core.WarnLevel); ok {
		dispatch(h, core.WarnLevel, t.target, fmt.Sprintf(format, args...))
	}
}

// Infof logs a formatted info message with the explicit target
func (t TargetLogger) Infof(format string, args ...interface{}) {
	if h, ok := active(core.InfoLevel); ok {
		dispatch(h, core.InfoLevel, t.target, fmt.Sprintf(format, args...))
	}
}

// Debugf logs a formatted debug message with the explicit target
func (t TargetLogger) Debugf(format string, args ...interface{}) {
	if h, ok := active(core.DebugLevel); ok {
		dispatch(h, core.DebugLevel, t.target, fmt.Sprintf(format, args...))
	}
}

// Tracef logs a formatted trace message with the explicit target
func (t TargetLogger) Tracef(format string, args ...interface{}) {
	if h, ok := active(core.TraceLevel); ok {
		dispatch(h, core.TraceLevel, t.target, fmt.Sprintf(format, args...))
	}
}
