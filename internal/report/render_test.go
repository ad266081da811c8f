package report

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/nameredact/nameredact/internal/types"
)

func TestPrintDetectionsEmpty(t *testing.T) {
	var buf bytes.Buffer
	PrintDetections(&buf, nil, PrintOptions{NoColor: true})
	if !strings.Contains(buf.String(), "No names found") {
		t.Fatalf("unexpected output: %q", buf.String())
	}
}

func TestPrintDetectionsTable(t *testing.T) {
	var buf bytes.Buffer
	ds := []types.Detection{
		{EntityType: "PERSON", Start: 0, End: 10, Score: 0.85, Recognizer: "person_recognizer"},
	}
	PrintDetections(&buf, ds, PrintOptions{NoColor: true})
	out := buf.String()
	if !strings.Contains(out, "PERSON") || !strings.Contains(out, "person_recognizer") {
		t.Fatalf("missing detection fields: %q", out)
	}
	if strings.Contains(out, "\x1b[") {
		t.Fatalf("NoColor output must not contain ANSI codes: %q", out)
	}
}

func TestPrintNoticesSilentWhenEmpty(t *testing.T) {
	var buf bytes.Buffer
	PrintNotices(&buf, nil, PrintOptions{NoColor: true})
	if buf.Len() != 0 {
		t.Fatalf("expected no output, got %q", buf.String())
	}
}

func TestPrintSummary(t *testing.T) {
	var buf bytes.Buffer
	PrintSummary(&buf, Stats{Rows: 10, Notices: 2, Duration: 1500 * time.Millisecond})
	out := buf.String()
	for _, want := range []string{"Rows anonymized: 10", "Unexpected entity types: 2", "Duration: 1.50s"} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in %q", want, out)
		}
	}
}
