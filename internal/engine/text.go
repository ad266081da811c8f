package engine

import "github.com/nameredact/nameredact/internal/types"

// AnonymizeText detects entities in text using the bundle's scan list and
// replaces the redactable ones with the fixed marker. It returns the
// replaced text and the full detection list, including detections whose
// entity type has no redaction rule and therefore passed through unredacted.
func AnonymizeText(text string, b *Bundle) (string, []types.Detection) {
	detections := b.Analyzer.Analyze(text, b.Entities, Language)
	result := b.Anonymizer.Anonymize(text, detections, b.Operators)
	return result.Text, detections
}
