// Command basic is the CLI front end for the interpreter core: it can run
// a script file, drop into a line-oriented REPL, or dump the lexer's token
// array and label table for debugging.
package main

import (
	"fmt"
	"os"

	"github.com/macosten/swiftbasic-core/cmd/basic/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
