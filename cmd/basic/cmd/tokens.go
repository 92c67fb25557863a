package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/macosten/swiftbasic-core/internal/jsonreport"
	"github.com/macosten/swiftbasic-core/internal/lexer"
)

var (
	tokensJSON   bool
	tokensFilter string
)

var tokensCmd = &cobra.Command{
	Use:   "tokens <file>",
	Short: "Lex a file and print its token array",
	Long: `Tokenize (lex) a BASIC program and print the resulting 2-D token array.

Examples:
  basic tokens program.bas
  basic tokens --json program.bas
  basic tokens --json --filter "lines.0.tokens.#.kind" program.bas`,
	Args: cobra.ExactArgs(1),
	RunE: runTokens,
}

func init() {
	rootCmd.AddCommand(tokensCmd)

	tokensCmd.Flags().BoolVar(&tokensJSON, "json", false, "print a JSON tokenization report instead of plain text")
	tokensCmd.Flags().StringVar(&tokensFilter, "filter", "", "a gjson path query applied to the JSON report (implies --json)")
}

func runTokens(_ *cobra.Command, args []string) error {
	content, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", args[0], err)
	}

	lines := lexer.New(string(content)).Lex()

	if tokensJSON || tokensFilter != "" {
		report, err := jsonreport.Tokens(lines)
		if err != nil {
			return err
		}
		if tokensFilter != "" {
			report = jsonreport.Filter(report, tokensFilter)
		}
		fmt.Println(report)
		return nil
	}

	for i, line := range lines {
		fmt.Printf("%3d: ", i)
		for _, tok := range line {
			fmt.Printf("%s(%q) ", tok.Kind, tok.Text)
		}
		fmt.Println()
	}
	return nil
}
