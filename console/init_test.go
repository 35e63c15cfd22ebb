package console

import (
	"testing"

	"github.com/pkg/errors"

	"github.com/philipp01105/prettylog/core"
)

// The process-wide registry accepts exactly one handler, so this is the
// only test in the package that calls the Init functions for real.
func TestInit_SecondCallFails(t *testing.T) {
	if err := InitLevel(core.DebugLevel); err != nil {
		t.Fatalf("first init error = %v", err)
	}

	h := core.Active()
	if h == nil {
		t.Fatal("no handler installed after InitLevel")
	}
	if !h.Enabled(core.DebugLevel) {
		t.Error("installed handler does not honor the requested threshold")
	}

	if err := InitToDefaults(); !errors.Is(err, core.ErrAlreadyInit) {
		t.Errorf("second init error = %v, want ErrAlreadyInit", err)
	}
	if err := Init(Stdout, core.TraceLevel, EmptyTheme()); !errors.Is(err, core.ErrAlreadyInit) {
		t.Errorf("third init error = %v, want ErrAlreadyInit", err)
	}

	// The first logger stays installed.
	if core.Active() != h {
		t.Error("rejected init replaced the installed handler")
	}
}

func TestNewDefault(t *testing.T) {
	l := NewDefault()

	if l.destination != Stderr {
		t.Errorf("destination = %v, want Stderr", l.destination)
	}
	if l.level != core.InfoLevel {
		t.Errorf("level = %v, want Info", l.level)
	}
	if !l.Enabled(core.InfoLevel) || l.Enabled(core.DebugLevel) {
		t.Error("default logger does not filter at the info threshold")
	}

	// Under `go test` stderr is normally not a TTY, so the auto-selected
	// theme must degrade to unstyled output.
	if Stderr.IsTTY() {
		t.Skip("stderr is a terminal; theme auto-selection not observable")
	}
	if l.theme != EmptyTheme() {
		t.Error("non-TTY stderr should select the empty theme")
	}
}

func TestDestination_String(t *testing.T) {
	if got := Stderr.String(); got != "stderr" {
		t.Errorf("Stderr.String() = %q", got)
	}
	if got := Stdout.String(); got != "stdout" {
		t.Errorf("Stdout.String() = %q", got)
	}
}

func TestDestination_Writer(t *testing.T) {
	if Stderr.Writer() == nil || Stdout.Writer() == nil {
		t.Error("Writer() returned nil sink")
	}
}
