package core

import (
	"testing"
)

func TestAnonymizeText_Smoke(t *testing.T) {
	b := Initialize(WithDenyList([]string{"ACME Corp"}))
	out, detections := AnonymizeText("John Smith joined ACME Corp", b)
	if out != "[name redacted] joined [name redacted]" {
		t.Fatalf("unexpected output: %q", out)
	}
	if len(detections) != 2 {
		t.Fatalf("expected 2 detections, got %d", len(detections))
	}
}

func TestAnonymizeColumn_Smoke(t *testing.T) {
	tbl := newTable(t, "notes", []any{"Mary was here", nil})

	b := Initialize()
	if err := AnonymizeColumn(tbl, "notes", "notes_anon", b, Hooks{}); err != nil {
		t.Fatalf("AnonymizeColumn error: %v", err)
	}
	col, err := tbl.Column("notes_anon")
	if err != nil {
		t.Fatal(err)
	}
	if col[0] != "[name redacted] was here" || col[1] != "None" {
		t.Fatalf("unexpected column: %v", col)
	}
}

func newTable(t *testing.T, name string, values []any) *Table {
	t.Helper()
	tbl := NewTable()
	if err := tbl.SetColumn(name, values); err != nil {
		t.Fatal(err)
	}
	return tbl
}
