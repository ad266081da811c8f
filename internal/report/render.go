package report

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"

	"github.com/nameredact/nameredact/internal/types"
)

// PrintOptions controls rendering.
type PrintOptions struct {
	NoColor  bool
	Duration time.Duration
}

// Notice is one unexpected-entity diagnostic raised during a column run:
// a detection whose entity type has no redaction rule.
type Notice struct {
	Row       int             `json:"row"`
	Detection types.Detection `json:"detection"`
}

// PrintDetections renders the detections found in one text.
func PrintDetections(w io.Writer, detections []types.Detection, opts PrintOptions) {
	if len(detections) == 0 {
		fmt.Fprintln(w, "No names found")
		return
	}
	tbl := tablewriter.NewWriter(w)
	tbl.Header("ENTITY", "START", "END", "SCORE", "RECOGNIZER")
	for _, d := range detections {
		tbl.Append([]string{
			colorEntity(d.EntityType, opts.NoColor),
			strconv.Itoa(d.Start),
			strconv.Itoa(d.End),
			fmt.Sprintf("%.2f", d.Score),
			d.Recognizer,
		})
	}
	tbl.Render()
}

// PrintNotices renders the unexpected-entity diagnostics of a column run.
func PrintNotices(w io.Writer, notices []Notice, opts PrintOptions) {
	if len(notices) == 0 {
		return
	}
	fmt.Fprintf(w, "Unexpected entity types: %d\n", len(notices))
	tbl := tablewriter.NewWriter(w)
	tbl.Header("ROW", "ENTITY", "START", "END", "SCORE", "RECOGNIZER")
	for _, n := range notices {
		tbl.Append([]string{
			strconv.Itoa(n.Row),
			colorEntity(n.Detection.EntityType, opts.NoColor),
			strconv.Itoa(n.Detection.Start),
			strconv.Itoa(n.Detection.End),
			fmt.Sprintf("%.2f", n.Detection.Score),
			n.Detection.Recognizer,
		})
	}
	tbl.Render()
}

// Stats summarizes one column run.
type Stats struct {
	Rows     int
	Notices  int
	Duration time.Duration
}

// PrintSummary renders the column-run footer.
func PrintSummary(w io.Writer, s Stats) {
	fmt.Fprintf(w, "Rows anonymized: %d\n", s.Rows)
	if s.Notices > 0 {
		fmt.Fprintf(w, "Unexpected entity types: %d\n", s.Notices)
	}
	if s.Duration > 0 {
		fmt.Fprintf(w, "Duration: %.2fs\n", s.Duration.Seconds())
	}
}

// colorEntity highlights the managed entity types; everything else renders
// yellow as a cue that it has no redaction rule.
func colorEntity(entity string, noColor bool) string {
	if noColor {
		return entity
	}
	switch entity {
	case types.EntityPerson, types.EntityPredefinedName:
		return "\x1b[32m" + entity + "\x1b[0m" // green
	default:
		return "\x1b[33m" + entity + "\x1b[0m" // yellow
	}
}
