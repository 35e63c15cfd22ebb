package console

import "github.com/philipp01105/prettylog/core"

// Init constructs a Logger with full control over destination, threshold,
// and theme, and installs it as the process-wide handler. It fails with
// core.ErrAlreadyInit if a handler was installed before.
func Init(destination Destination, level core.Level, theme Theme) error {
	return New(destination, level, theme).Install()
}

// InitLevel installs a Logger with the given threshold and defaults for
// everything else: stderr, colored iff stderr is a terminal.
func InitLevel(level core.Level) error {
	destination := Stderr
	theme := EmptyTheme()
	if destination.IsTTY() {
		theme = DefaultTheme()
	}
	return New(destination, level, theme).Install()
}

// InitToDefaults installs a Logger with the full default configuration
// (stderr, info threshold, theme by TTY detection).
func InitToDefaults() error {
	return NewDefault().Install()
}
