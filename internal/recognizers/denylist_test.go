package recognizers

import "testing"

func TestDenyListAllOccurrences(t *testing.T) {
	text := "ACME Corp bought ACME Corp stock"
	rec := NewPatternRecognizer("PREDEFINED_NAME", []string{"ACME Corp"})
	ds := rec.Analyze(text, "en")
	if len(ds) != 2 {
		t.Fatalf("expected 2 detections, got %d: %v", len(ds), ds)
	}
	for _, d := range ds {
		if text[d.Start:d.End] != "ACME Corp" {
			t.Fatalf("bad span %q", text[d.Start:d.End])
		}
		if d.Score != 1.0 {
			t.Fatalf("deny list matches are exact, expected score 1.0, got %v", d.Score)
		}
	}
}

func TestDenyListWordBoundary(t *testing.T) {
	rec := NewPatternRecognizer("PREDEFINED_NAME", []string{"Ann"})
	if ds := rec.Analyze("Annual report", "en"); len(ds) != 0 {
		t.Fatalf("expected no match inside a word, got %v", ds)
	}
	if ds := rec.Analyze("Ann wrote the report", "en"); len(ds) != 1 {
		t.Fatalf("expected word-bounded match, got %v", ds)
	}
}

func TestDenyListIgnoresEmptyEntries(t *testing.T) {
	rec := NewPatternRecognizer("PREDEFINED_NAME", []string{"", "Bob"})
	ds := rec.Analyze("Bob", "en")
	if len(ds) != 1 {
		t.Fatalf("expected 1 detection, got %v", ds)
	}
}
