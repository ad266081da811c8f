package engine

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nameredact/nameredact/internal/recognizers"
	"github.com/nameredact/nameredact/internal/types"
)

func TestAnonymizeTextNoNames(t *testing.T) {
	b := Initialize()
	text := "the quarterly report is due on the 3rd"
	out, ds := AnonymizeText(text, b)
	assert.Equal(t, text, out)
	assert.Empty(t, ds)
}

func TestAnonymizeTextPerson(t *testing.T) {
	b := Initialize()
	out, ds := AnonymizeText("John Smith works here", b)
	assert.Equal(t, "[name redacted] works here", out)
	require.Len(t, ds, 1)
	assert.Equal(t, types.EntityPerson, ds[0].EntityType)
}

func TestAnonymizeTextDenyList(t *testing.T) {
	b := Initialize(WithDenyList([]string{"ACME Corp"}))
	out, _ := AnonymizeText("ACME Corp bought ACME Corp stock", b)
	assert.Equal(t, "[name redacted] bought [name redacted] stock", out)
}

func TestAnonymizeTextWithoutDenyListLeavesTerm(t *testing.T) {
	b := Initialize()
	text := "ACME Corp filed its annual report"
	out, ds := AnonymizeText(text, b)
	assert.Equal(t, text, out)
	assert.Empty(t, ds)
}

func TestAnonymizeTextIdempotent(t *testing.T) {
	b := Initialize(WithDenyList([]string{"ACME Corp"}))
	once, _ := AnonymizeText("John Smith of ACME Corp", b)
	twice, ds := AnonymizeText(once, b)
	assert.Equal(t, once, twice)
	assert.Empty(t, ds)
}

func TestAnonymizeTextReportsUnredactedDetections(t *testing.T) {
	b := Initialize(WithRecognizer(recognizers.NewEmailRecognizer()))
	text := "John Smith mailed jane.roe@example.com"
	out, ds := AnonymizeText(text, b)

	// The email is detected but has no redaction rule, so it survives in
	// the output while still appearing in the detection list.
	assert.Contains(t, out, "jane.roe@example.com")
	assert.Contains(t, out, Marker)

	replaced := strings.Count(out, Marker)
	require.GreaterOrEqual(t, len(ds), replaced)

	var kinds []string
	for _, d := range ds {
		kinds = append(kinds, d.EntityType)
	}
	assert.Contains(t, kinds, types.EntityEmail)
	assert.Contains(t, kinds, types.EntityPerson)
}
