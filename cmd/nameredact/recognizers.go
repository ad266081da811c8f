package nameredact

import (
	"os"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/nameredact/nameredact/internal/recognizers"
)

func init() {
	cmd := &cobra.Command{
		Use:   "recognizers",
		Short: "List the predefined recognizers and their entity types",
		RunE:  runRecognizers,
	}
	rootCmd.AddCommand(cmd)
}

func runRecognizers(cmd *cobra.Command, args []string) error {
	registry := recognizers.NewRegistry()
	registry.LoadPredefined()

	tbl := tablewriter.NewWriter(os.Stdout)
	tbl.Header("RECOGNIZER", "ENTITIES")
	for _, rec := range registry.All() {
		tbl.Append([]string{rec.Name(), strings.Join(rec.Supported(), ", ")})
	}
	tbl.Render()
	return nil
}
