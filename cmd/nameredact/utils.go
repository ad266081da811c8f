package nameredact

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/nameredact/nameredact/internal/config"
	"github.com/nameredact/nameredact/internal/engine"
)

// loadConfig reads the explicit --config file if given, otherwise searches
// the working directory. A missing local config is not an error.
func loadConfig() (config.FileConfig, error) {
	if flagConfig != "" {
		return config.LoadFile(flagConfig)
	}
	cfg, err := config.LoadLocal(".")
	if err != nil {
		return config.FileConfig{}, nil
	}
	return cfg, nil
}

// buildBundle merges deny-list flags with the config file and initializes
// the engine bundle. Flag entries come after config entries.
func buildBundle(cfg config.FileConfig, denyFlag []string, denyFileFlag string) (*engine.Bundle, error) {
	if denyFileFlag != "" {
		cfg.DenyListFile = &denyFileFlag
	}
	denyList, err := cfg.ResolveDenyList()
	if err != nil {
		return nil, err
	}
	denyList = append(denyList, denyFlag...)

	var opts []engine.Option
	if len(denyList) > 0 {
		opts = append(opts, engine.WithDenyList(denyList))
	}
	return engine.Initialize(opts...), nil
}

// readInput returns arg unless it is "-", in which case stdin is read whole.
func readInput(arg string) (string, error) {
	if arg != "-" {
		return arg, nil
	}
	var sb strings.Builder
	sc := bufio.NewScanner(os.Stdin)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	first := true
	for sc.Scan() {
		if !first {
			sb.WriteByte('\n')
		}
		first = false
		sb.WriteString(sc.Text())
	}
	if err := sc.Err(); err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return sb.String(), nil
}

func noColor(cfgNoColor *bool) bool {
	if flagNoColor {
		return true
	}
	if cfgNoColor != nil {
		return *cfgNoColor
	}
	return false
}
