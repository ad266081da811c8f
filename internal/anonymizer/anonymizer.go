// Package anonymizer replaces detected spans in a text according to
// per-entity-type operator configuration. It is internal; CLI and library
// consumers reach it through internal/engine and pkg/core.
package anonymizer

import (
	"sort"
	"strings"

	"github.com/nameredact/nameredact/internal/types"
)

// OperatorReplace substitutes the detected span with a fixed string. It is
// the only operator nameredact configures, but the descriptor keeps the
// operator name explicit so output records say what was done.
const OperatorReplace = "replace"

// OperatorConfig describes how to redact spans of one entity type.
type OperatorConfig struct {
	Operator string `json:"operator"`
	NewValue string `json:"new_value"`
}

// Replace returns the operator config that substitutes spans with v.
func Replace(v string) OperatorConfig {
	return OperatorConfig{Operator: OperatorReplace, NewValue: v}
}

// ReplacedItem records one applied replacement, with offsets into the
// output text.
type ReplacedItem struct {
	EntityType string `json:"entity_type"`
	Operator   string `json:"operator"`
	Start      int    `json:"start"`
	End        int    `json:"end"`
}

// Result is the outcome of one Anonymize call.
type Result struct {
	Text  string         `json:"text"`
	Items []ReplacedItem `json:"items"`
}

// Engine applies operator configs to detections.
type Engine struct{}

// New returns an anonymizer engine.
func New() *Engine {
	return &Engine{}
}

// Anonymize replaces every detection whose entity type has an operator
// config. Detections without a config are left untouched in the output.
// Overlapping or out-of-range spans are skipped (the analyzer never emits
// them); Items in the result are reported left to right with offsets into
// the output text.
func (e *Engine) Anonymize(text string, detections []types.Detection, operators map[string]OperatorConfig) Result {
	var applicable []types.Detection
	for _, d := range detections {
		if _, ok := operators[d.EntityType]; ok {
			applicable = append(applicable, d)
		}
	}
	sort.Slice(applicable, func(a, b int) bool { return applicable[a].Start < applicable[b].Start })

	var b strings.Builder
	var items []ReplacedItem
	last := 0
	for _, d := range applicable {
		if d.Start < last || d.End > len(text) {
			continue // overlapping or out-of-range span, keep the text intact
		}
		op := operators[d.EntityType]
		b.WriteString(text[last:d.Start])
		start := b.Len()
		b.WriteString(op.NewValue)
		items = append(items, ReplacedItem{
			EntityType: d.EntityType,
			Operator:   op.Operator,
			Start:      start,
			End:        b.Len(),
		})
		last = d.End
	}
	b.WriteString(text[last:])
	return Result{Text: b.String(), Items: items}
}
