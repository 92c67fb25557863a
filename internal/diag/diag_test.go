package diag

import (
	"bytes"
	"testing"
)

func TestNoOpIsTrulyNoOp(t *testing.T) {
	// NoOp must not panic and must produce no observable effect for any
	// TraceEvent; there is nothing to assert against but that it returns.
	NoOp.Trace(TraceEvent{Line: 3, PC: 9, Kind: "jump", Detail: "GOTO 10"})
}

func TestWriterLoggerFormatsLine(t *testing.T) {
	var buf bytes.Buffer
	l := NewWriterLogger(&buf)
	l.Trace(TraceEvent{Line: 2, PC: 5, Kind: "assign", Detail: "x = 1"})

	const want = "[trace] line=3 pc=5 assign: x = 1\n"
	if got := buf.String(); got != want {
		t.Errorf("Trace wrote %q, want %q", got, want)
	}
}

func TestWriterLoggerAccumulatesMultipleEvents(t *testing.T) {
	var buf bytes.Buffer
	l := NewWriterLogger(&buf)
	l.Trace(TraceEvent{Line: 0, PC: 0, Kind: "jump", Detail: "GOTO 10"})
	l.Trace(TraceEvent{Line: 1, PC: 2, Kind: "assign", Detail: "y = 2"})

	const want = "[trace] line=1 pc=0 jump: GOTO 10\n[trace] line=2 pc=2 assign: y = 2\n"
	if got := buf.String(); got != want {
		t.Errorf("Trace wrote %q, want %q", got, want)
	}
}
