package executor

import (
	"bufio"
	"fmt"
	"io"
)

// StdioDelegate is the default host Delegate: PRINT goes to Out, INPUT reads
// a line from In, CLEAR emits a form-feed, and LIST renders a sorted
// "name = value" line per symbol.
type StdioDelegate struct {
	Out io.Writer
	in  *bufio.Scanner
}

// NewStdioDelegate returns a StdioDelegate reading from in and writing to out.
func NewStdioDelegate(in io.Reader, out io.Writer) *StdioDelegate {
	return &StdioDelegate{Out: out, in: bufio.NewScanner(in)}
}

// NewStdioDelegateScanner returns a StdioDelegate that reads INPUT lines
// from an already-constructed scanner, so a caller that also reads
// top-level input from the same stream (the REPL's own prompt loop) can
// share one bufio.Scanner instead of racing two buffered readers over one
// underlying reader.
func NewStdioDelegateScanner(in *bufio.Scanner, out io.Writer) *StdioDelegate {
	return &StdioDelegate{Out: out, in: in}
}

func (d *StdioDelegate) HandlePrint(line string) {
	fmt.Fprint(d.Out, line)
}

func (d *StdioDelegate) HandleInput() string {
	if !d.in.Scan() {
		return ""
	}
	return d.in.Text()
}

func (d *StdioDelegate) HandleClear() {
	fmt.Fprint(d.Out, "\f")
}

func (d *StdioDelegate) HandleList(entries []ListEntry) {
	for _, e := range entries {
		fmt.Fprintf(d.Out, "%s = %s\n", e.Name, e.Display)
	}
}
