package console

import (
	"github.com/fatih/color"

	"github.com/philipp01105/prettylog/core"
)

// Theme maps each severity to a display style for its level label, plus one
// reserved slot for the module name. A nil slot means no styling at all:
// the text is emitted without any escape sequences. Themes are plain values;
// build one, hand it to New, and never mutate it afterwards.
type Theme struct {
	// Error is the style for the "ERROR" label
	Error *color.Color
	// Warn is the style for the "WARN " label
	Warn *color.Color
	// Info is the style for the "INFO " label
	Info *color.Color
	// Debug is the style for the "DEBUG" label
	Debug *color.Color
	// Trace is the style for the "TRACE" label
	Trace *color.Color
	// Module is the style for the module name. Reserved; the current line
	// format emits the module unstyled.
	Module *color.Color
}

// EmptyTheme returns a theme that does not highlight anything.
func EmptyTheme() Theme {
	return Theme{}
}

// DefaultTheme returns the standard color scheme:
//
//   - ERROR in bold red
//   - WARN  in bold yellow
//   - INFO  in cyan
//   - DEBUG in white
//   - TRACE in dimmed white
//   - the module name unstyled
//
// Styles are force-enabled so that an explicitly chosen DefaultTheme
// colorizes even when the process is not attached to a terminal.
func DefaultTheme() Theme {
	return Theme{
		Error: enabled(color.New(color.FgRed, color.Bold)),
		Warn:  enabled(color.New(color.FgYellow, color.Bold)),
		Info:  enabled(color.New(color.FgCyan)),
		Debug: enabled(color.New(color.FgWhite)),
		Trace: enabled(color.New(color.FgWhite, color.Faint)),
	}
}

func enabled(c *color.Color) *color.Color {
	c.EnableColor()
	return c
}

// renderLevel returns the five-character level label wrapped in the theme's
// style for that severity. Total over the five record levels; any other
// value renders as blank padding.
func (t Theme) renderLevel(level core.Level) string {
	label := level.Label()
	var style *color.Color
	switch level {
	case core.ErrorLevel:
		style = t.Error
	case core.WarnLevel:
		style = t.Warn
	case core.InfoLevel:
		style = t.Info
	case core.DebugLevel:
		style = t.Debug
	case core.TraceLevel:
		style = t.Trace
	}
	if style == nil {
		return label
	}
	return style.Sprint(label)
}
