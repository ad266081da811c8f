package engine

import (
	"fmt"

	"github.com/nameredact/nameredact/internal/analyzer"
	"github.com/nameredact/nameredact/internal/anonymizer"
	"github.com/nameredact/nameredact/internal/recognizers"
	"github.com/nameredact/nameredact/internal/types"
)

// Marker is the fixed redaction marker substituted for every managed
// entity type.
const Marker = "[name redacted]"

// Language is the language tag analysis runs with.
const Language = "en"

// Bundle holds the configured detection and replacement engines together
// with the entity scan list and the per-entity redaction operators. It is
// immutable after Initialize and safe to share across calls.
type Bundle struct {
	Analyzer   *analyzer.Engine
	Anonymizer *anonymizer.Engine
	Operators  map[string]anonymizer.OperatorConfig
	Entities   []string
}

// Option adjusts Initialize.
type Option func(*options)

type options struct {
	denyList  []string
	auxiliary []recognizers.Recognizer
}

// WithDenyList adds exact strings that are always treated as names. A
// non-empty list registers a pattern recognizer for PREDEFINED_NAME and a
// matching redaction rule; an empty list is a no-op.
func WithDenyList(denyList []string) Option {
	return func(o *options) { o.denyList = denyList }
}

// WithRecognizer registers an extra recognizer. Its supported entity types
// join the scan list so its detections surface, but they get no redaction
// rule: they are reported, never replaced.
func WithRecognizer(r recognizers.Recognizer) Option {
	return func(o *options) { o.auxiliary = append(o.auxiliary, r) }
}

// Initialize builds a configuration bundle from the predefined recognizer
// set plus the given options. Construction cannot fail.
func Initialize(opts ...Option) *Bundle {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	registry := recognizers.NewRegistry()
	registry.LoadPredefined()

	entities := []string{types.EntityPerson}
	operators := map[string]anonymizer.OperatorConfig{
		types.EntityPerson: anonymizer.Replace(Marker),
	}

	if len(o.denyList) > 0 {
		registry.Add(recognizers.NewPatternRecognizer(types.EntityPredefinedName, o.denyList))
		entities = append(entities, types.EntityPredefinedName)
		operators[types.EntityPredefinedName] = anonymizer.Replace(Marker)
	}

	for _, aux := range o.auxiliary {
		registry.Add(aux)
		for _, ent := range aux.Supported() {
			if !contains(entities, ent) {
				entities = append(entities, ent)
			}
		}
	}

	return &Bundle{
		Analyzer:   analyzer.New(registry),
		Anonymizer: anonymizer.New(),
		Operators:  operators,
		Entities:   entities,
	}
}

// Validate checks that every managed entity type in the scan list has a
// redaction operator. Detection for a type without an operator would run
// but never redact.
func (b *Bundle) Validate() error {
	for _, ent := range b.Entities {
		if ent != types.EntityPerson && ent != types.EntityPredefinedName {
			continue // auxiliary types are report-only
		}
		if _, ok := b.Operators[ent]; !ok {
			return fmt.Errorf("entity %q is scanned but has no redaction operator", ent)
		}
	}
	return nil
}

func contains(ss []string, s string) bool {
	for _, v := range ss {
		if v == s {
			return true
		}
	}
	return false
}
