package cmd

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/macosten/swiftbasic-core/internal/config"
	"github.com/macosten/swiftbasic-core/internal/replio"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start a line-oriented REPL",
	Long:  `Enter one BASIC line at a time; each Enter re-runs the accumulated program.`,
	Args:  cobra.NoArgs,
	RunE:  runRepl,
}

func init() {
	rootCmd.AddCommand(replCmd)
}

func runRepl(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	r := replio.New(os.Stdin, os.Stdout, cfg.Prompt)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt)
	defer signal.Stop(sigCh)
	go func() {
		for range sigCh {
			// A program is mid-run on the REPL's own goroutine: EndProgram
			// is the thread-safe cancellation entry point, observed at the
			// executor's next token consumption. Idle at the prompt (the
			// read loop blocked in Scan), there is nothing EndProgram could
			// interrupt, so Ctrl-C falls back to terminating the process.
			if r.Executor().Running() {
				r.Executor().EndProgram()
				continue
			}
			os.Exit(130)
		}
	}()

	return r.Run()
}
