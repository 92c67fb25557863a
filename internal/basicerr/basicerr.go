// Package basicerr implements the executor's structured error type: one
// Kind drawn from the fixed error taxonomy, plus the line and token
// position it occurred at, plus enough of the source to render a
// caret-style message, in the style of the teacher repository's
// CompilerError.
package basicerr

import (
	"fmt"
	"strings"

	"golang.org/x/text/width"
)

// Kind is one entry of the error taxonomy.
type Kind int

const (
	UnexpectedToken Kind = iota
	BadFactor
	BadStatement
	DelegateNotSet
	UninitializedSymbol
	UnknownLabel
	BadMath
	BadComparison
	IntegerOverflow
	CannotSubscript
	BadSubscript
	BadFunctionArgument
	CannotReturn
	CannotIterate
	BadIndex
	BadRangeBound
	InternalDowncastError
	UnknownSymbolError
	ProgramEndedManually // internal only; swallowed by the run loop
	UnknownError
)

var kindNames = map[Kind]string{
	UnexpectedToken: "unexpected-token", BadFactor: "bad-factor", BadStatement: "bad-statement",
	DelegateNotSet: "delegate-not-set", UninitializedSymbol: "uninitialized-symbol",
	UnknownLabel: "unknown-label", BadMath: "bad-math", BadComparison: "bad-comparison",
	IntegerOverflow: "integer-over-or-underflow", CannotSubscript: "cannot-subscript",
	BadSubscript: "bad-subscript", BadFunctionArgument: "bad-function-argument",
	CannotReturn: "cannot-return", CannotIterate: "cannot-iterate", BadIndex: "bad-index",
	BadRangeBound: "bad-range-bound", InternalDowncastError: "internal-downcast-error",
	UnknownSymbolError: "unknown-symbol-error", ProgramEndedManually: "program-ended-manually",
	UnknownError: "unknown-error",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown-error"
}

// Error is the executor's single structured error type. Every non-internal
// error the executor returns from Run is an *Error.
type Error struct {
	Kind       Kind
	Line       int // 0-based, matching Program's line indexing
	TokenIndex int
	Column     int // 0-based rune offset into Source of the offending token
	Message    string
	Source     string // the offending source line, for display
}

func (e *Error) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s at line %d: %s", e.Kind, e.Line+1, e.Message)
	if e.Source != "" {
		fmt.Fprintf(&b, "\n  %s\n  %s", e.Source, e.caret())
	}
	return b.String()
}

// caret renders a "^" under the offending column, accounting for east-Asian
// wide and fullwidth runes (which occupy two display columns) using the
// same table the teacher's rendering would need for any grapheme wider
// than ASCII.
func (e *Error) caret() string {
	runes := []rune(e.Source)
	col := e.Column
	if col < 0 {
		col = 0
	}
	if col > len(runes) {
		col = len(runes)
	}
	pad := 0
	for _, r := range runes[:col] {
		pad += runeWidth(r)
	}
	return strings.Repeat(" ", pad) + "^"
}

func runeWidth(r rune) int {
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return 2
	default:
		return 1
	}
}

// New builds an *Error of the given kind and message, without position
// information (filled in by WithPosition once the caller knows the current
// line/token).
func New(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// WithPosition returns a copy of e annotated with the current line, token
// index, and source line text. Column defaults to 0 (rendered as a caret
// at the start of the line); use WithColumn to refine it.
func (e *Error) WithPosition(line, tokenIndex int, source string) *Error {
	cp := *e
	cp.Line = line
	cp.TokenIndex = tokenIndex
	cp.Source = source
	return &cp
}

// WithColumn returns a copy of e with its caret column set to col (0-based,
// counted in runes of Source).
func (e *Error) WithColumn(col int) *Error {
	cp := *e
	cp.Column = col
	return &cp
}

// IsProgramEndedManually reports whether err is the internal cancellation
// signal that the run loop swallows rather than surfacing to the caller.
func IsProgramEndedManually(err error) bool {
	e, ok := err.(*Error)
	return ok && e.Kind == ProgramEndedManually
}
