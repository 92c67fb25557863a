package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/macosten/swiftbasic-core/internal/config"
	"github.com/macosten/swiftbasic-core/internal/diag"
	"github.com/macosten/swiftbasic-core/internal/executor"
	"github.com/macosten/swiftbasic-core/internal/jsonreport"
)

var (
	traceFlag     bool
	traceJSONFlag bool
)

var runCmd = &cobra.Command{
	Use:   "run <file>",
	Short: "Run a BASIC program",
	Long: `Execute a BASIC program from a file.

Examples:
  basic run program.bas
  basic run --trace program.bas
  basic run --trace-json program.bas`,
	Args: cobra.ExactArgs(1),
	RunE: runScript,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().BoolVar(&traceFlag, "trace", false, "print a trace line for every GOTO/GOSUB jump and plain variable assignment")
	runCmd.Flags().BoolVar(&traceJSONFlag, "trace-json", false, "emit the execution trace as a JSON array instead of text lines")
}

func runScript(_ *cobra.Command, args []string) error {
	filename := args[0]
	content, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	cfg, err := config.Load(configPath, config.WithTracing(traceFlag || traceJSONFlag))
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	delegate := executor.NewStdioDelegate(os.Stdin, os.Stdout)
	exec := executor.New(delegate)

	var events []diag.TraceEvent
	if cfg.TracingEnabled {
		if traceJSONFlag {
			exec.SetLogger(collectingLogger{events: &events})
		} else {
			exec.SetLogger(diag.NewWriterLogger(os.Stderr))
		}
	}

	if err := exec.LoadCode(string(content)); err != nil {
		return fmt.Errorf("failed to load %s: %w", filename, err)
	}

	runErr := exec.Run()

	if traceJSONFlag {
		report, err := jsonreport.Trace(events)
		if err != nil {
			return err
		}
		fmt.Fprintln(os.Stderr, report)
	}

	if runErr != nil {
		return runErr
	}
	return nil
}

// collectingLogger buffers TraceEvents for the --trace-json report instead
// of rendering them as it receives them.
type collectingLogger struct {
	events *[]diag.TraceEvent
}

func (l collectingLogger) Trace(ev diag.TraceEvent) {
	*l.events = append(*l.events, ev)
}
