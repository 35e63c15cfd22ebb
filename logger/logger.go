package logger

import (
	"fmt"

	"github.com/philipp01105/prettylog/core"
)

// dispatch builds a record attributed to the calling package and hands it
// to the active handler. Callers have already confirmed the level is
// enabled, so message formatting cost is only paid for records that will
// actually be written.
func dispatch(h core.Handler, level core.Level, target, msg string) {
	module := callerModule(dispatchDepth)
	if target == "" {
		target = module
	}
	h.Log(&core.Record{
		Level:   level,
		Module:  module,
		Target:  target,
		Message: msg,
	})
}

func active(level core.Level) (core.Handler, bool) {
	h := core.Active()
	if h == nil || !h.Enabled(level) {
		return nil, false
	}
	return h, true
}

// Error logs an error message
func Error(args ...interface{}) {
	if h, ok := active(core.ErrorLevel); ok {
		dispatch(h, core.ErrorLevel, "", fmt.Sprint(args...))
	}
}

// Warn logs a warning message
func Warn(args ...interface{}) {
	if h, ok := active(core.WarnLevel); ok {
		dispatch(h, core.WarnLevel, "", fmt.Sprint(args...))
	}
}

// Info logs an info message
func Info(args ...interface{}) {
	if h, ok := active(core.InfoLevel); ok {
		dispatch(h, core.InfoLevel, "", fmt.Sprint(args...))
	}
}

// Debug logs a debug message
func Debug(args ...interface{}) {
	if h, ok := active(core.DebugLevel); ok {
		dispatch(h, core.DebugLevel, "", fmt.Sprint(args...))
	}
}

// Trace logs a trace message
func Trace(args ...interface{}) {
	if h, ok := active(core.TraceLevel); ok {
		dispatch(h, core.TraceLevel, "", fmt.Sprint(args...))
	}
}

// Errorf logs a formatted error message
func Errorf(format string, args ...interface{}) {
	if h, ok := active(core.ErrorLevel); ok {
		dispatch(h, core.ErrorLevel, "", fmt.Sprintf(format, args...))
	}
}

// Warnf logs a formatted warning message
func Warnf(format string, args ...interface{}) {
	if h, ok := active(core.WarnLevel); ok {
		dispatch(h, core.WarnLevel, "", fmt.Sprintf(format, args...))
	}
}

// Infof logs a formatted info message
func Infof(format string, args ...interface{}) {
	if h, ok := active(core.InfoLevel); ok {
		dispatch(h, core.InfoLevel, "", fmt.Sprintf(format, args...))
	}
}

// Debugf logs a formatted debug message
func Debugf(format string, args ...interface{}) {
	if h, ok := active(core.DebugLevel); ok {
		dispatch(h, core.DebugLevel, "", fmt.Sprintf(format, args...))
	}
}

// Tracef logs a formatted trace message
func Tracef(format string, args ...interface{}) {
	if h, ok := active(core.TraceLevel); ok {
		dispatch(h, core.TraceLevel, "", fmt.Sprintf(format, args...))
	}
}

// Flush asks the active handler to flush buffered output, if any.
func Flush() {
	if h := core.Active(); h != nil {
		h.Flush()
	}
}
