package recognizers

import (
	"regexp"

	"github.com/nameredact/nameredact/internal/types"
)

var reURL = regexp.MustCompile(`\bhttps?://[^\s<>"']+`)

// URLRecognizer finds HTTP and HTTPS URLs.
type URLRecognizer struct{}

func NewURLRecognizer() *URLRecognizer { return &URLRecognizer{} }

func (u *URLRecognizer) Name() string { return "url_recognizer" }

func (u *URLRecognizer) Supported() []string { return []string{types.EntityURL} }

func (u *URLRecognizer) Analyze(text, language string) []types.Detection {
	return findPattern(text, reURL, types.EntityURL, u.Name(), 0.9)
}
