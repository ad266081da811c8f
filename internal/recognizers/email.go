package recognizers

import (
	"regexp"

	"github.com/nameredact/nameredact/internal/types"
)

var reEmail = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)

// EmailRecognizer finds email addresses.
type EmailRecognizer struct{}

func NewEmailRecognizer() *EmailRecognizer { return &EmailRecognizer{} }

func (e *EmailRecognizer) Name() string { return "email_recognizer" }

func (e *EmailRecognizer) Supported() []string { return []string{types.EntityEmail} }

func (e *EmailRecognizer) Analyze(text, language string) []types.Detection {
	return findPattern(text, reEmail, types.EntityEmail, e.Name(), 0.95)
}
