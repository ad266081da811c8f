package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "cfg.yml")
	data := "deny_list:\n  - ACME Corp\n  - Jane Roe\nsource_column: notes\nno_color: true\n"
	if err := os.WriteFile(p, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFile(p)
	if err != nil {
		t.Fatal(err)
	}
	if len(cfg.DenyList) != 2 || cfg.DenyList[0] != "ACME Corp" {
		t.Fatalf("bad deny_list: %v", cfg.DenyList)
	}
	if cfg.SourceColumn == nil || *cfg.SourceColumn != "notes" {
		t.Fatalf("bad source_column: %v", cfg.SourceColumn)
	}
	if cfg.NoColor == nil || !*cfg.NoColor {
		t.Fatalf("bad no_color: %v", cfg.NoColor)
	}
	if cfg.TargetColumn != nil {
		t.Fatalf("unset field should stay nil")
	}
}

func TestLoadLocal(t *testing.T) {
	dir := t.TempDir()
	if _, err := LoadLocal(dir); err == nil {
		t.Fatal("expected error with no config present")
	}
	if err := os.WriteFile(filepath.Join(dir, ".nameredact.yml"), []byte("columns: 'name*'\n"), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadLocal(dir)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Columns == nil || *cfg.Columns != "name*" {
		t.Fatalf("bad columns: %v", cfg.Columns)
	}
}

func TestResolveDenyList(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "deny.txt")
	if err := os.WriteFile(p, []byte("# comment\nACME Corp\n\nJane Roe\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg := FileConfig{DenyList: []string{"Initech"}, DenyListFile: &p}
	got, err := cfg.ResolveDenyList()
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"Initech", "ACME Corp", "Jane Roe"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestResolveDenyListMissingFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.txt")
	cfg := FileConfig{DenyListFile: &missing}
	if _, err := cfg.ResolveDenyList(); err == nil {
		t.Fatal("expected error for missing deny list file")
	}
}
