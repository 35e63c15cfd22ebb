package logger_test

import (
	"github.com/philipp01105/prettylog/console"
	"github.com/philipp01105/prettylog/core"
	"github.com/philipp01105/prettylog/logger"
)

// Typical startup: install the console handler once, then log from
// anywhere in the process.
func Example() {
	if err := console.InitToDefaults(); err != nil {
		panic(err)
	}

	logger.Error("Error")
	logger.Warn("Warn")
	logger.Info("Info")
	logger.Debug("Debug")
	logger.Trace("Trace")
}

// Full control over destination, threshold, and theme.
func Example_custom() {
	err := console.Init(console.Stdout, core.DebugLevel, console.DefaultTheme())
	if err != nil {
		panic(err)
	}

	logger.Debugf("pid %d ready", 1234)
	logger.Target("app/upstream").Info("connected")
}
