package nameredact

import (
	"fmt"
	"os"
	"time"

	doublestar "github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/nameredact/nameredact/internal/engine"
	"github.com/nameredact/nameredact/internal/report"
	"github.com/nameredact/nameredact/internal/table"
	"github.com/nameredact/nameredact/internal/types"
)

var (
	flagCSVIn           string
	flagCSVOut          string
	flagCSVColumn       string
	flagCSVOutputColumn string
	flagCSVColumns      string
	flagCSVDenyList     []string
	flagCSVDenyListFile string
)

func init() {
	cmd := &cobra.Command{
		Use:   "csv",
		Short: "Anonymize names in CSV columns",
		Long:  "Read a CSV file, anonymize one column (--column) or every column matching a glob (--columns), and write the table back with the anonymized columns appended.",
		RunE:  runCSV,
	}
	rootCmd.AddCommand(cmd)

	cmd.Flags().StringVar(&flagCSVIn, "in", "", "input CSV file (required)")
	cmd.Flags().StringVar(&flagCSVOut, "out", "", "output CSV file (default: stdout)")
	cmd.Flags().StringVar(&flagCSVColumn, "column", "", "source column name")
	cmd.Flags().StringVar(&flagCSVOutputColumn, "output-column", "", "target column name (default: <column>_anonymized; single --column only)")
	cmd.Flags().StringVar(&flagCSVColumns, "columns", "", "glob selecting several source columns (e.g. 'name*')")
	cmd.Flags().StringSliceVar(&flagCSVDenyList, "deny-list", nil, "exact strings to always redact (repeatable)")
	cmd.Flags().StringVar(&flagCSVDenyListFile, "deny-list-file", "", "file with one deny-list entry per line")
	_ = cmd.MarkFlagRequired("in")
}

func runCSV(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	bundle, err := buildBundle(cfg, flagCSVDenyList, flagCSVDenyListFile)
	if err != nil {
		return err
	}

	f, err := os.Open(flagCSVIn)
	if err != nil {
		return err
	}
	tbl, err := table.ReadCSV(f)
	f.Close()
	if err != nil {
		return err
	}

	sources, err := selectColumns(tbl, cfg.SourceColumn, cfg.Columns)
	if err != nil {
		return err
	}
	if flagCSVOutputColumn != "" && len(sources) != 1 {
		return fmt.Errorf("--output-column requires exactly one source column, got %d", len(sources))
	}

	tty := term.IsTerminal(int(os.Stderr.Fd()))
	start := time.Now()
	var notices []report.Notice
	for _, src := range sources {
		dst := flagCSVOutputColumn
		if dst == "" {
			dst = src + "_anonymized"
			if cfg.TargetColumn != nil && len(sources) == 1 {
				dst = *cfg.TargetColumn
			}
		}
		hooks := engine.Hooks{
			Notice: func(row int, d types.Detection) {
				notices = append(notices, report.Notice{Row: row, Detection: d})
			},
		}
		if tty {
			hooks.Progress = func(row, total int) {
				fmt.Fprintf(os.Stderr, "\rAnonymizing %s: %d/%d", src, row, total)
				if row == total {
					fmt.Fprintln(os.Stderr)
				}
			}
		}
		if err := engine.AnonymizeColumn(tbl, src, dst, bundle, hooks); err != nil {
			return err
		}
	}

	out := os.Stdout
	if flagCSVOut != "" {
		out, err = os.Create(flagCSVOut)
		if err != nil {
			return err
		}
		defer out.Close()
	}
	if err := tbl.WriteCSV(out); err != nil {
		return err
	}

	opts := report.PrintOptions{NoColor: noColor(cfg.NoColor)}
	report.PrintNotices(os.Stderr, notices, opts)
	report.PrintSummary(os.Stderr, report.Stats{
		Rows:     tbl.Len() * len(sources),
		Notices:  len(notices),
		Duration: time.Since(start),
	})
	return nil
}

// selectColumns resolves --column/--columns (falling back to the config
// file) against the table header. Globs use doublestar syntax.
func selectColumns(tbl *table.Table, cfgColumn, cfgColumns *string) ([]string, error) {
	column := flagCSVColumn
	if column == "" && cfgColumn != nil {
		column = *cfgColumn
	}
	pattern := flagCSVColumns
	if pattern == "" && cfgColumns != nil {
		pattern = *cfgColumns
	}
	switch {
	case column != "" && pattern != "":
		return nil, fmt.Errorf("--column and --columns are mutually exclusive")
	case column != "":
		if _, err := tbl.Column(column); err != nil {
			return nil, err
		}
		return []string{column}, nil
	case pattern != "":
		var out []string
		for _, name := range tbl.Columns() {
			ok, err := doublestar.Match(pattern, name)
			if err != nil {
				return nil, fmt.Errorf("bad --columns pattern: %w", err)
			}
			if ok {
				out = append(out, name)
			}
		}
		if len(out) == 0 {
			return nil, fmt.Errorf("no column matches %q", pattern)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("one of --column or --columns is required")
	}
}
