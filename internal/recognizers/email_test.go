package recognizers

import "testing"

func TestEmailRecognizer(t *testing.T) {
	text := "reach me at jane.roe@example.com today"
	ds := NewEmailRecognizer().Analyze(text, "en")
	if len(ds) != 1 || text[ds[0].Start:ds[0].End] != "jane.roe@example.com" {
		t.Fatalf("expected email detection, got %v", ds)
	}
}
