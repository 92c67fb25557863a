// Package executor implements the interpreter's core run loop: loading and
// label-indexing a program, and then driving a recursive-descent
// statement/expression parser over a program counter that GOTO, GOSUB,
// RETURN, and FOR/NEXT may move arbitrarily.
package executor

import (
	"strconv"
	"strings"
	"sync"

	"github.com/macosten/swiftbasic-core/internal/basicerr"
	"github.com/macosten/swiftbasic-core/internal/diag"
	"github.com/macosten/swiftbasic-core/internal/label"
	"github.com/macosten/swiftbasic-core/internal/lexer"
	"github.com/macosten/swiftbasic-core/internal/stack"
	"github.com/macosten/swiftbasic-core/internal/symboltable"
	"github.com/macosten/swiftbasic-core/internal/token"
)

// Executor owns every piece of mutable interpreter state: the tokenized
// program, the program counter, the symbol/label tables, the gosub and
// for-loop stacks, and the host Delegate. A given Executor must be driven
// by at most one goroutine calling Run at a time; endProgram is the one
// operation safe to call from another goroutine concurrently with Run.
type Executor struct {
	lines       [][]token.Token
	sourceLines []string

	pc          int
	tokenCursor int

	symbols  *symboltable.SymbolTable
	labels   *label.Table
	gosub    stack.IntStack
	forStack stack.LoopStack

	delegate Delegate
	logger   diag.Logger

	mu      sync.Mutex
	running bool
}

// New returns an Executor with no program loaded, using delegate for I/O. If
// delegate is nil, one must be set with SetDelegate before Run is called, or
// statements requiring I/O fail with DelegateNotSet.
func New(delegate Delegate) *Executor {
	return &Executor{
		symbols:  symboltable.New(),
		labels:   label.New(),
		delegate: delegate,
		logger:   diag.NoOp,
	}
}

// SetDelegate replaces the Executor's Delegate.
func (e *Executor) SetDelegate(d Delegate) { e.delegate = d }

// SetLogger replaces the Executor's trace sink. Passing nil restores the
// zero-cost no-op logger.
func (e *Executor) SetLogger(l diag.Logger) {
	if l == nil {
		l = diag.NoOp
	}
	e.logger = l
}

// Symbols returns the Executor's symbol table, a read/write snapshot used
// by tests.
func (e *Executor) Symbols() *symboltable.SymbolTable { return e.symbols }

// Labels returns the Executor's label table, populated by LoadCode, used by
// the host CLI's `labels` command.
func (e *Executor) Labels() *label.Table { return e.labels }

// Running reports whether a Run call is currently executing (or has not
// yet returned from its final statement).
func (e *Executor) Running() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.running
}

func (e *Executor) setRunning(v bool) {
	e.mu.Lock()
	e.running = v
	e.mu.Unlock()
}

// EndProgram is the thread-safe external cancellation entry point: it
// atomically clears the running flag and sets the program counter past the
// end of the program. The executor thread observes this at its very next
// token consumption.
func (e *Executor) EndProgram() {
	e.mu.Lock()
	e.running = false
	e.pc = len(e.lines)
	e.mu.Unlock()
}

// LoadCode resets all executor state, re-lexes source, and re-scans labels.
func (e *Executor) LoadCode(source string) error {
	e.lines = lexer.New(source).Lex()
	e.sourceLines = strings.Split(source, "\n")
	e.pc = -1
	e.tokenCursor = 0
	e.symbols.Clear()
	e.labels.Reset()
	e.gosub.Reset()
	e.forStack.Reset()
	e.scanLabels()
	return nil
}

// scanLabels performs the pre-run label pass described by the label
// indexing rule: an integer-literal first token is always a label; an
// identifier first token is a label unless it is immediately followed by
// an assignment operator or '[' (which would make it the target of an
// assignment, not a label).
func (e *Executor) scanLabels() {
	for i, line := range e.lines {
		if len(line) == 0 {
			continue
		}
		first := line[0]
		switch first.Kind {
		case token.INT:
			if n, err := strconv.ParseInt(first.Text, 10, 64); err == nil {
				e.lines[i][0].IsLabel = true
				e.labels.SetInt(n, i)
			}
		case token.IDENT:
			next := token.Token{Kind: token.NEWLINE}
			if len(line) > 1 {
				next = line[1]
			}
			if !next.IsAssignment() && next.Kind != token.LBRACKET {
				e.lines[i][0].IsLabel = true
				e.labels.SetIdent(first.Text, i)
			}
		}
	}
}

// Run executes the loaded program until it terminates naturally, executes
// END, or is cancelled by EndProgram, returning the first executor-level
// error encountered (program-ended-manually is swallowed, not returned).
func (e *Executor) Run() error {
	e.setRunning(true)
	for {
		if !e.Running() {
			break
		}
		e.tokenCursor = 0
		e.pc++
		if e.pc >= len(e.lines) {
			break
		}
		if err := e.parseLine(); err != nil {
			e.setRunning(false)
			if basicerr.IsProgramEndedManually(err) {
				return nil
			}
			return err
		}
	}
	e.setRunning(false)
	return nil
}
