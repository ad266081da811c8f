package types

import "fmt"

// Well-known entity types produced by the built-in recognizers.
const (
	EntityPerson         = "PERSON"
	EntityPredefinedName = "PREDEFINED_NAME"
	EntityEmail          = "EMAIL_ADDRESS"
	EntityPhone          = "PHONE_NUMBER"
	EntityURL            = "URL"
)

// Detection describes one span of text classified as an entity, with byte
// offsets into the analyzed text (text[Start:End] is the matched span),
// the recognizer that produced it, and a confidence score in [0,1].
type Detection struct {
	EntityType string  `json:"entity_type"`
	Start      int     `json:"start"`
	End        int     `json:"end"`
	Score      float64 `json:"score"`
	Recognizer string  `json:"recognizer,omitempty"`
}

// String returns a debug representation, e.g. PERSON[3:13](0.85).
func (d Detection) String() string {
	return fmt.Sprintf("%s[%d:%d](%.2f)", d.EntityType, d.Start, d.End, d.Score)
}
