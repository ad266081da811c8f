package nameredact

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nameredact/nameredact/internal/engine"
	"github.com/nameredact/nameredact/internal/report"
	"github.com/nameredact/nameredact/internal/types"
)

var (
	flagTextDenyList     []string
	flagTextDenyListFile string
	flagTextShow         bool
)

func init() {
	cmd := &cobra.Command{
		Use:   "text [TEXT|-]",
		Short: "Anonymize names in one text",
		Long:  "Anonymize names in the given text, or in stdin when TEXT is '-'. The redacted text goes to stdout; detection details go to stderr with --show.",
		Args:  cobra.ExactArgs(1),
		RunE:  runText,
	}
	rootCmd.AddCommand(cmd)

	cmd.Flags().StringSliceVar(&flagTextDenyList, "deny-list", nil, "exact strings to always redact (repeatable)")
	cmd.Flags().StringVar(&flagTextDenyListFile, "deny-list-file", "", "file with one deny-list entry per line")
	cmd.Flags().BoolVar(&flagTextShow, "show", false, "print the detection table to stderr")
}

func runText(cmd *cobra.Command, args []string) error {
	text, err := readInput(args[0])
	if err != nil {
		return err
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	bundle, err := buildBundle(cfg, flagTextDenyList, flagTextDenyListFile)
	if err != nil {
		return err
	}

	redacted, detections := engine.AnonymizeText(text, bundle)

	if flagJSON {
		return json.NewEncoder(os.Stdout).Encode(struct {
			Text       string            `json:"text"`
			Detections []types.Detection `json:"detections"`
		}{redacted, detections})
	}
	fmt.Println(redacted)
	if flagTextShow {
		report.PrintDetections(os.Stderr, detections, report.PrintOptions{NoColor: noColor(cfg.NoColor)})
	}
	return nil
}
