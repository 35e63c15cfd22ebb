package console

import (
	"io"
	"os"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
)

// Destination selects which standard stream the logger writes to.
// The zero value is Stderr.
type Destination int

const (
	// Stderr writes to standard error (the default)
	Stderr Destination = iota
	// Stdout writes to standard output
	Stdout
)

// String returns the name of the destination stream
func (d Destination) String() string {
	if d == Stdout {
		return "stdout"
	}
	return "stderr"
}

func (d Destination) file() *os.File {
	if d == Stdout {
		return os.Stdout
	}
	return os.Stderr
}

// IsTTY reports whether the destination stream is attached to an
// interactive terminal.
func (d Destination) IsTTY() bool {
	fd := d.file().Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Writer returns the writable sink for the destination. The returned
// writer interprets ANSI escape sequences on platforms whose console does
// not do so natively; when that setup is impossible the writer degrades to
// passing escapes through untouched, never to an error.
func (d Destination) Writer() io.Writer {
	if d == Stdout {
		return colorable.NewColorableStdout()
	}
	return colorable.NewColorableStderr()
}
