package cmd

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/macosten/swiftbasic-core/internal/executor"
	"github.com/macosten/swiftbasic-core/internal/natsort"
)

var labelsNatural bool

var labelsCmd = &cobra.Command{
	Use:   "labels <file>",
	Short: "Lex, label-scan, and print a file's label table",
	Long: `Print every label (integer or identifier) a program defines and the
0-based line it marks, lexicographic by default.

Examples:
  basic labels program.bas
  basic labels --natural program.bas`,
	Args: cobra.ExactArgs(1),
	RunE: runLabels,
}

func init() {
	rootCmd.AddCommand(labelsCmd)

	labelsCmd.Flags().BoolVar(&labelsNatural, "natural", false, "order labels in natural (human) order instead of lexicographic")
}

func runLabels(_ *cobra.Command, args []string) error {
	content, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", args[0], err)
	}

	exec := executor.New(nil)
	if err := exec.LoadCode(string(content)); err != nil {
		return fmt.Errorf("failed to load %s: %w", args[0], err)
	}

	entries := exec.Labels().Entries()
	names := make([]string, len(entries))
	byName := make(map[string]int, len(entries))
	for i, e := range entries {
		names[i] = e.Name
		byName[e.Name] = e.Line
	}

	if labelsNatural {
		names = natsort.Sort(names)
	} else {
		sort.Strings(names)
	}

	for _, name := range names {
		fmt.Printf("%s -> line %d\n", name, byName[name])
	}
	return nil
}
