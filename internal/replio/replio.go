// Package replio implements a line-oriented REPL front end: it reads
// lines from a reader, reloads one shared executor.Executor with all lines
// entered so far and runs it, and renders output through the same
// Delegate contract the executor uses for scripted runs. The read loop and
// the executor both run on the caller's goroutine; EndProgram is the only
// thread-safe entry point for external cancellation (e.g. a Ctrl-C
// handler), matching the single-writer-thread contract the core promises.
//
// Grounded on the line-buffered prompt loop the sentra pack repo uses for
// its own REPL, generalized here to drive an executor.Executor instead of
// a fixed VM.
package replio

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/macosten/swiftbasic-core/internal/executor"
)

// REPL reads statement groups from in and writes the prompt to out.
type REPL struct {
	in     *bufio.Scanner
	out    io.Writer
	prompt string
	exec   *executor.Executor
	lines  []string
}

// New returns a REPL reading from in and writing prompts and program output
// to out. The REPL's own line scanner is shared with the executor's INPUT
// delegate so the two never race over buffering the same underlying reader.
func New(in io.Reader, out io.Writer, prompt string) *REPL {
	scanner := bufio.NewScanner(in)
	delegate := executor.NewStdioDelegateScanner(scanner, out)
	return &REPL{
		in:     scanner,
		out:    out,
		prompt: prompt,
		exec:   executor.New(delegate),
	}
}

// Run drives the read-eval-print loop until the input reader is exhausted
// or the line "exit" or "quit" is entered. Load and run errors are printed
// to out and the loop continues; Run always returns nil.
func (r *REPL) Run() error {
	for {
		fmt.Fprint(r.out, r.prompt)
		if !r.in.Scan() {
			return nil
		}
		line := r.in.Text()
		trimmed := strings.TrimSpace(line)
		if trimmed == "exit" || trimmed == "quit" {
			return nil
		}
		if trimmed == "" {
			continue
		}
		// Re-running the full accumulated source on each new line (rather
		// than executing only the new line against carried-over state)
		// keeps GOTO/label targets entered on earlier lines resolvable;
		// it also means PRINT output from earlier lines repeats each run.
		r.lines = append(r.lines, line)
		source := strings.Join(r.lines, "\n") + "\n"
		if err := r.exec.LoadCode(source); err != nil {
			fmt.Fprintf(r.out, "load error: %v\n", err)
			r.lines = r.lines[:len(r.lines)-1]
			continue
		}
		if err := r.exec.Run(); err != nil {
			fmt.Fprintf(r.out, "%v\n", err)
		}
	}
}

// Executor exposes the REPL's underlying Executor, e.g. so the host CLI can
// wire a diag.Logger or call EndProgram from a signal handler.
func (r *REPL) Executor() *executor.Executor { return r.exec }
