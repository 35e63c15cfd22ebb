package console

import (
	"bytes"
	"io"
	"strings"
	"sync"

	"github.com/rivo/uniseg"

	"github.com/philipp01105/prettylog/core"
)

// Logger renders each accepted record as one colorized line on a standard
// stream. Immutable after construction except for the two width trackers,
// which grow atomically; a single instance is safe for concurrent use from
// any number of goroutines without locking.
type Logger struct {
	destination Destination
	level       core.Level
	theme       Theme
	out         io.Writer

	moduleWidth widthTracker
	targetWidth widthTracker
}

// New creates a Logger writing to the given destination, dropping records
// less severe than level, styling labels with theme. The destination's sink
// is resolved once, here; resolution also arranges ANSI interpretation on
// consoles that need it.
func New(destination Destination, level core.Level, theme Theme) *Logger {
	return &Logger{
		destination: destination,
		level:       level,
		theme:       theme,
		out:         destination.Writer(),
	}
}

// NewWriter creates a Logger writing to an arbitrary sink instead of a
// standard stream. Intended for tests and benchmarks; no TTY detection or
// ANSI setup happens on the given writer.
func NewWriter(w io.Writer, level core.Level, theme Theme) *Logger {
	return &Logger{
		destination: Stderr,
		level:       level,
		theme:       theme,
		out:         w,
	}
}

// NewDefault creates a Logger with the default configuration: stderr, the
// info threshold, and the colored theme iff stderr is a terminal.
func NewDefault() *Logger {
	destination := Stderr
	theme := EmptyTheme()
	if destination.IsTTY() {
		theme = DefaultTheme()
	}
	return New(destination, core.InfoLevel, theme)
}

// Install registers the logger as the process-wide handler. It fails with
// core.ErrAlreadyInit if any handler was installed before.
func (l *Logger) Install() error {
	return core.Set(l)
}

// Enabled reports whether records at the given level pass the threshold.
// A record passes when it is at least as severe as the threshold; an
// OffLevel threshold rejects everything.
func (l *Logger) Enabled(level core.Level) bool {
	return level <= l.level && l.level != core.OffLevel
}

// Log formats and writes one record. Disabled records return before any
// width bookkeeping. Write failures are discarded; logging never propagates
// an error to the call site.
func (l *Logger) Log(r *core.Record) {
	if !l.Enabled(r.Level) {
		return
	}

	moduleCount := uniseg.GraphemeClusterCount(r.Module)
	moduleWidth := l.moduleWidth.observe(moduleCount)
	target := r.EffectiveTarget()

	buf := getBuffer()
	buf.WriteString(l.theme.renderLevel(r.Level))
	buf.WriteByte('|')
	pad(buf, r.Module, moduleCount, moduleWidth)
	buf.WriteByte('|')
	if target != r.Module {
		targetCount := uniseg.GraphemeClusterCount(target)
		targetWidth := l.targetWidth.observe(targetCount)
		pad(buf, target, targetCount, targetWidth)
		buf.WriteByte('|')
	}
	buf.WriteString(r.Message)
	buf.WriteByte('\n')

	// One Write per line; the platform keeps individual writes to a
	// character device from interleaving mid-line.
	_, _ = l.out.Write(buf.Bytes())
	putBuffer(buf)
}

// Flush is a no-op; every line is written immediately.
func (l *Logger) Flush() {}

// pad writes s, whose display width is count grapheme clusters,
// right-padded with spaces to the given field width. The width is a
// minimum, never a cap: text wider than the column is written in full.
func pad(buf *bytes.Buffer, s string, count, width int) {
	buf.WriteString(s)
	if n := width - count; n > 0 {
		buf.WriteString(strings.Repeat(" ", n))
	}
}

// bufferPool recycles line buffers so the per-record hot path does not
// allocate once warm.
var bufferPool = sync.Pool{
	New: func() interface{} {
		b := new(bytes.Buffer)
		b.Grow(256)
		return b
	},
}

func getBuffer() *bytes.Buffer {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > 64*1024 { // Don't keep very large buffers
		return
	}
	bufferPool.Put(buf)
}
