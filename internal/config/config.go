package config

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// FileConfig is the on-disk YAML configuration shape for nameredact.
type FileConfig struct {
	DenyList     []string `yaml:"deny_list"`
	DenyListFile *string  `yaml:"deny_list_file"`
	SourceColumn *string  `yaml:"source_column"`
	TargetColumn *string  `yaml:"target_column"`
	Columns      *string  `yaml:"columns"`
	NoColor      *bool    `yaml:"no_color"`
	JSON         *bool    `yaml:"json"`
}

// LoadFile reads a YAML config file from the provided path.
func LoadFile(path string) (FileConfig, error) {
	var cfg FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadLocal searches for a config file in the given directory. It supports
// .nameredact.yml/.yaml and nameredact.yml/.yaml.
func LoadLocal(dir string) (FileConfig, error) {
	var cfg FileConfig
	for _, name := range []string{".nameredact.yml", ".nameredact.yaml", "nameredact.yml", "nameredact.yaml"} {
		p := filepath.Join(dir, name)
		if _, err := os.Stat(p); err == nil {
			return LoadFile(p)
		}
	}
	return cfg, errors.New("no local config")
}

// ResolveDenyList merges the inline deny list with the entries of the deny
// list file, one entry per line, blank lines and #-comments skipped. Inline
// entries come first.
func (fc FileConfig) ResolveDenyList() ([]string, error) {
	out := append([]string(nil), fc.DenyList...)
	if fc.DenyListFile == nil || *fc.DenyListFile == "" {
		return out, nil
	}
	f, err := os.Open(*fc.DenyListFile)
	if err != nil {
		return nil, fmt.Errorf("deny list file: %w", err)
	}
	defer f.Close()
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		out = append(out, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("deny list file: %w", err)
	}
	return out, nil
}
