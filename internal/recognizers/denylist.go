package recognizers

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/nameredact/nameredact/internal/types"
)

// PatternRecognizer matches an explicit deny list of exact strings and tags
// every occurrence with a fixed entity type at full confidence. Matches
// require word boundaries so "Ann" does not fire inside "Annual".
type PatternRecognizer struct {
	entity   string
	denyList []string
}

// NewPatternRecognizer builds a deny-list recognizer emitting the given
// entity type. Empty deny-list entries are ignored.
func NewPatternRecognizer(entity string, denyList []string) *PatternRecognizer {
	var kept []string
	for _, s := range denyList {
		if s != "" {
			kept = append(kept, s)
		}
	}
	return &PatternRecognizer{entity: entity, denyList: kept}
}

func (p *PatternRecognizer) Name() string { return "deny_list_recognizer" }

func (p *PatternRecognizer) Supported() []string { return []string{p.entity} }

// Analyze reports every word-bounded occurrence of every deny-list entry.
// The deny list is language-independent: exact strings match regardless of
// the language tag.
func (p *PatternRecognizer) Analyze(text, language string) []types.Detection {
	var out []types.Detection
	for _, term := range p.denyList {
		for start := 0; ; {
			i := strings.Index(text[start:], term)
			if i < 0 {
				break
			}
			at := start + i
			end := at + len(term)
			if wordBounded(text, at, end) {
				out = append(out, types.Detection{
					EntityType: p.entity,
					Start:      at,
					End:        end,
					Score:      1.0,
					Recognizer: p.Name(),
				})
			}
			start = at + len(term)
		}
	}
	return out
}

// wordBounded reports whether text[start:end] is not flanked by letters or
// digits on either side.
func wordBounded(text string, start, end int) bool {
	if start > 0 {
		r, _ := utf8.DecodeLastRuneInString(text[:start])
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return false
		}
	}
	if end < len(text) {
		r, _ := utf8.DecodeRuneInString(text[end:])
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
