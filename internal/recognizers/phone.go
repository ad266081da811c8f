package recognizers

import (
	"regexp"

	"github.com/nameredact/nameredact/internal/types"
)

var rePhone = regexp.MustCompile(`\+?\d{1,3}[-.\s]?\(?\d{2,4}\)?(?:[-.\s]?\d{2,4}){1,3}`)

// PhoneRecognizer finds phone numbers in common international and
// North American layouts.
type PhoneRecognizer struct{}

func NewPhoneRecognizer() *PhoneRecognizer { return &PhoneRecognizer{} }

func (p *PhoneRecognizer) Name() string { return "phone_recognizer" }

func (p *PhoneRecognizer) Supported() []string { return []string{types.EntityPhone} }

func (p *PhoneRecognizer) Analyze(text, language string) []types.Detection {
	return findPattern(text, rePhone, types.EntityPhone, p.Name(), 0.7)
}
