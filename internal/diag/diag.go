// Package diag implements the interpreter's trace logger, used by the
// executor to report structured TraceEvents when tracing is enabled. It
// follows the teacher repository's own functional-options style (WithTracing
// on the lexer) by providing a single injectable sink rather than ad hoc
// println calls; the lexer does not log.
package diag

import (
	"fmt"
	"io"
)

// TraceEvent is one structured trace record: the line and program counter
// it relates to, a short kind tag ("jump", "assign", "call", ...), and a
// free-form detail string.
type TraceEvent struct {
	Line   int
	PC     int
	Kind   string
	Detail string
}

// Logger receives TraceEvents. NoOp is the default sink and discards every
// event; the executor still builds each event before handing it over.
type Logger interface {
	Trace(ev TraceEvent)
}

// noop is the zero-cost default sink.
type noop struct{}

func (noop) Trace(TraceEvent) {}

// NoOp is the shared no-op Logger instance.
var NoOp Logger = noop{}

// writerLogger renders each TraceEvent as one line to an io.Writer.
type writerLogger struct {
	w io.Writer
}

// NewWriterLogger returns a Logger that writes one formatted line per
// TraceEvent to w, used when --trace is passed to the CLI.
func NewWriterLogger(w io.Writer) Logger {
	return &writerLogger{w: w}
}

func (l *writerLogger) Trace(ev TraceEvent) {
	fmt.Fprintf(l.w, "[trace] line=%d pc=%d %s: %s\n", ev.Line+1, ev.PC, ev.Kind, ev.Detail)
}
