package executor

import "github.com/macosten/swiftbasic-core/internal/token"

// current returns the token at the current cursor position on the current
// line, or a synthetic NEWLINE token if the cursor has run past the end of
// the line or the program counter lies outside the program (as after
// EndProgram moves it past the last line). Every line ends in an explicit
// NEWLINE token, so this fallback keeps lookups total.
func (e *Executor) current() token.Token {
	if e.pc < 0 || e.pc >= len(e.lines) {
		return token.Token{Kind: token.NEWLINE, Text: "\n"}
	}
	line := e.lines[e.pc]
	if e.tokenCursor >= len(line) {
		return token.Token{Kind: token.NEWLINE, Text: "\n"}
	}
	return line[e.tokenCursor]
}

// advance returns the current token and moves the cursor past it, first
// checking the cancellation flag: every token consumption is a
// cancellation observation point, per the concurrency contract.
func (e *Executor) advance() (token.Token, error) {
	if !e.Running() {
		return token.Token{}, e.programEndedManually()
	}
	t := e.current()
	e.tokenCursor++
	return t, nil
}

// expect consumes the current token, failing with UnexpectedToken if its
// kind does not match want.
func (e *Executor) expect(want token.Kind) (token.Token, error) {
	t := e.current()
	if t.Kind != want {
		return token.Token{}, e.unexpectedToken(want, t)
	}
	return e.advance()
}

// sourceLineText returns the raw source text of the current line, for
// error rendering.
func (e *Executor) sourceLineText() string {
	if e.pc >= 0 && e.pc < len(e.sourceLines) {
		return e.sourceLines[e.pc]
	}
	return ""
}
