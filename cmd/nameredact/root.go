package nameredact

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagJSON    bool
	flagNoColor bool
	flagConfig  string

	version = "0.1.0"
)

// rootCmd is the base Cobra command for the nameredact CLI.
var rootCmd = &cobra.Command{
	Use:           "nameredact",
	Short:         "Anonymize person names in text and CSV columns",
	Long:          "nameredact detects person-name mentions (plus an optional deny list of exact strings) and replaces them with a fixed redaction marker, in free text or in a CSV column.",
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the nameredact CLI. It should be called by the main package.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(2)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "emit JSON")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "disable colorized output")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to config file (default: search .nameredact.yml in cwd)")
}
