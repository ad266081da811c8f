package core

import (
	"github.com/nameredact/nameredact/internal/engine"
	"github.com/nameredact/nameredact/internal/recognizers"
	"github.com/nameredact/nameredact/internal/table"
	"github.com/nameredact/nameredact/internal/types"
)

// Re-export selected internal types as a stable public API surface.
// These are type aliases so external consumers can depend on a stable path.
type Bundle = engine.Bundle
type Detection = types.Detection
type Hooks = engine.Hooks
type Option = engine.Option
type Recognizer = recognizers.Recognizer
type Table = table.Table

// Marker is the fixed redaction marker.
const Marker = engine.Marker

// NewTable returns an empty table for AnonymizeColumn.
func NewTable() *Table { return table.New() }

// WithDenyList adds exact strings that are always redacted as names.
func WithDenyList(denyList []string) Option { return engine.WithDenyList(denyList) }

// WithRecognizer registers an auxiliary recognizer; its entity types are
// scanned and reported but not redacted.
func WithRecognizer(r Recognizer) Option { return engine.WithRecognizer(r) }

// Initialize builds a configuration bundle for AnonymizeText and
// AnonymizeColumn.
func Initialize(opts ...Option) *Bundle { return engine.Initialize(opts...) }

// AnonymizeText returns text with detected names replaced by Marker, plus
// the full detection list.
func AnonymizeText(text string, b *Bundle) (string, []Detection) {
	return engine.AnonymizeText(text, b)
}

// AnonymizeColumn anonymizes the src column of tbl into the dst column.
func AnonymizeColumn(tbl *Table, src, dst string, b *Bundle, h Hooks) error {
	return engine.AnonymizeColumn(tbl, src, dst, b, h)
}
