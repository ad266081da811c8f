package recognizers

import (
	"regexp"

	"github.com/nameredact/nameredact/internal/types"
)

// Recognizer produces entity detections over a text given a language tag.
// Implementations must be safe for concurrent use and must return detections
// whose offsets are valid byte offsets into the input text.
type Recognizer interface {
	// Name identifies the recognizer in detection output.
	Name() string
	// Supported lists the entity types this recognizer can emit.
	Supported() []string
	// Analyze scans text and returns detections for the supported entity
	// types. language is a BCP-47-ish tag such as "en"; recognizers that
	// do not handle the language return nil.
	Analyze(text, language string) []types.Detection
}

// Registry is an ordered collection of recognizers. Order is preserved so
// ties between overlapping detections resolve deterministically.
type Registry struct {
	recognizers []Recognizer
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// LoadPredefined installs the built-in recognizer set.
func (r *Registry) LoadPredefined() {
	r.Add(NewPersonRecognizer())
	r.Add(NewEmailRecognizer())
	r.Add(NewPhoneRecognizer())
	r.Add(NewURLRecognizer())
}

// Add appends a recognizer to the registry.
func (r *Registry) Add(rec Recognizer) {
	r.recognizers = append(r.recognizers, rec)
}

// All returns the registered recognizers in registration order.
func (r *Registry) All() []Recognizer {
	return r.recognizers
}

// findPattern is the shared helper for regex recognizers: every match of re
// becomes one detection with the given entity type, recognizer name, and score.
func findPattern(text string, re *regexp.Regexp, entity, name string, score float64) []types.Detection {
	var out []types.Detection
	for _, m := range re.FindAllStringIndex(text, -1) {
		out = append(out, types.Detection{
			EntityType: entity,
			Start:      m[0],
			End:        m[1],
			Score:      score,
			Recognizer: name,
		})
	}
	return out
}
