package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "basic",
	Short: "A line-numbered, emoji-friendly BASIC interpreter",
	Long: `basic runs programs written in a small line-oriented BASIC dialect:
Unicode and emoji identifiers, GOTO/GOSUB/RETURN control flow over a
label table, FOR/NEXT loops, and a dynamically typed Int/Float/Str/Dict
value system.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "accepted for compatibility; currently has no effect")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a basic.yaml run configuration file")
}
