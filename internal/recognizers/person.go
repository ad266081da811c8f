package recognizers

import (
	"regexp"
	"strings"

	"github.com/nameredact/nameredact/internal/types"
)

// PersonRecognizer finds person-name mentions with capitalization rules, a
// small honorific grammar, and a lexicon of common given names. It is a
// rule-based stand-in for model-backed NER: precision comes from requiring
// either an honorific or a lexicon hit before a full-name match is accepted.
type PersonRecognizer struct{}

func NewPersonRecognizer() *PersonRecognizer { return &PersonRecognizer{} }

func (p *PersonRecognizer) Name() string { return "person_recognizer" }

func (p *PersonRecognizer) Supported() []string { return []string{types.EntityPerson} }

var (
	// Honorific followed by one or two capitalized tokens, e.g. "Dr. Jane Roe".
	reHonorificName = regexp.MustCompile(`\b(?:Mr|Mrs|Ms|Dr|Prof|Sir|Dame)\.?\s+[A-Z][a-z]+(?:\s+[A-Z][a-z]+)?\b`)

	// Two to three capitalized tokens, e.g. "John Smith", "Mary Jane Watson".
	reFullName = regexp.MustCompile(`\b[A-Z][a-z]+(?:\s+[A-Z][a-z]+){1,2}\b`)

	// Capitalized words that start name-looking sequences but are not names.
	nameStopwords = map[string]bool{
		"The": true, "This": true, "That": true, "These": true, "Those": true,
		"New": true, "Old": true, "North": true, "South": true, "East": true, "West": true,
		"Monday": true, "Tuesday": true, "Wednesday": true, "Thursday": true,
		"Friday": true, "Saturday": true, "Sunday": true,
		"January": true, "February": true, "March": true, "April": true, "May": true,
		"June": true, "July": true, "August": true, "September": true,
		"October": true, "November": true, "December": true,
		"United": true, "Great": true, "Saint": true, "Lake": true, "Mount": true,
	}
)

// givenNames is a lexicon of frequent English given names. A full-name match
// whose first token is in the lexicon is accepted without an honorific.
var givenNames = map[string]bool{}

func init() {
	for _, n := range []string{
		"James", "John", "Robert", "Michael", "William", "David", "Richard",
		"Joseph", "Thomas", "Charles", "Christopher", "Daniel", "Matthew",
		"Anthony", "Donald", "Mark", "Paul", "Steven", "Andrew", "Kenneth",
		"George", "Joshua", "Kevin", "Brian", "Edward", "Ronald", "Timothy",
		"Jason", "Jeffrey", "Ryan", "Jacob", "Gary", "Nicholas", "Eric",
		"Stephen", "Jonathan", "Larry", "Justin", "Scott", "Brandon", "Frank",
		"Benjamin", "Gregory", "Samuel", "Raymond", "Patrick", "Alexander",
		"Jack", "Dennis", "Jerry", "Henry", "Peter", "Adam", "Harold", "Carl",
		"Mary", "Patricia", "Jennifer", "Linda", "Elizabeth", "Barbara",
		"Susan", "Jessica", "Sarah", "Karen", "Nancy", "Lisa", "Margaret",
		"Betty", "Sandra", "Ashley", "Dorothy", "Kimberly", "Emily", "Donna",
		"Michelle", "Carol", "Amanda", "Melissa", "Deborah", "Stephanie",
		"Rebecca", "Laura", "Sharon", "Cynthia", "Kathleen", "Amy", "Shirley",
		"Angela", "Helen", "Anna", "Brenda", "Pamela", "Nicole", "Ruth",
		"Katherine", "Samantha", "Christine", "Emma", "Catherine", "Rachel",
		"Alice", "Jane", "Julia", "Grace", "Rose", "Diana", "Sophia", "Olivia",
	} {
		givenNames[n] = true
	}
}

// Analyze finds person names in English text. Honorific matches score 0.9,
// lexicon-anchored full names 0.85, and bare lexicon given names 0.6.
func (p *PersonRecognizer) Analyze(text, language string) []types.Detection {
	if language != "" && language != "en" {
		return nil
	}
	var out []types.Detection

	for _, m := range reHonorificName.FindAllStringIndex(text, -1) {
		out = append(out, p.detection(m[0], m[1], 0.9))
	}

	for _, m := range reFullName.FindAllStringIndex(text, -1) {
		tokens := strings.Fields(text[m[0]:m[1]])
		if nameStopwords[tokens[0]] || !givenNames[tokens[0]] {
			continue
		}
		out = append(out, p.detection(m[0], m[1], 0.85))
	}

	// Bare given names, lower confidence. Skip ones already inside a
	// full-name or honorific match.
	for _, m := range reCapitalizedWord.FindAllStringIndex(text, -1) {
		if !givenNames[text[m[0]:m[1]]] {
			continue
		}
		if coveredBy(out, m[0], m[1]) {
			continue
		}
		out = append(out, p.detection(m[0], m[1], 0.6))
	}
	return out
}

var reCapitalizedWord = regexp.MustCompile(`\b[A-Z][a-z]+\b`)

func (p *PersonRecognizer) detection(start, end int, score float64) types.Detection {
	return types.Detection{
		EntityType: types.EntityPerson,
		Start:      start,
		End:        end,
		Score:      score,
		Recognizer: p.Name(),
	}
}

func coveredBy(ds []types.Detection, start, end int) bool {
	for _, d := range ds {
		if start >= d.Start && end <= d.End {
			return true
		}
	}
	return false
}
