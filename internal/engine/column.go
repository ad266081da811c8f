package engine

import (
	xxhash "github.com/cespare/xxhash/v2"

	"github.com/nameredact/nameredact/internal/table"
	"github.com/nameredact/nameredact/internal/types"
)

// Hooks carries the optional observability callbacks for column runs.
// Progress fires after each row. Notice fires for every detection whose
// entity type is neither PERSON nor PREDEFINED_NAME: such detections were
// scanned and found but fall outside the managed redaction rules, so they
// are surfaced rather than silently dropped. Neither hook alters output.
type Hooks struct {
	Progress func(row, total int)
	Notice   func(row int, d types.Detection)
}

// AnonymizeColumn anonymizes every cell of the src column of tbl and assigns
// the results to the dst column, creating or overwriting it. Cells are
// coerced to text first and the src column is rewritten with the coerced
// strings, so src and dst stay aligned row for row.
//
// Rows are processed strictly in order, one detection+replacement call per
// row. Identical cell texts within one run share a single analysis via an
// in-memory memo; hooks still fire per row.
func AnonymizeColumn(tbl *table.Table, src, dst string, b *Bundle, h Hooks) error {
	values, err := tbl.Column(src)
	if err != nil {
		return err
	}

	type memoEntry struct {
		input      string
		redacted   string
		detections []types.Detection
	}
	memo := map[uint64]memoEntry{}

	coerced := make([]any, len(values))
	out := make([]any, len(values))
	for row, v := range values {
		text := table.Coerce(v)
		coerced[row] = text

		key := xxhash.Sum64String(text)
		entry, ok := memo[key]
		if !ok || entry.input != text {
			redacted, detections := AnonymizeText(text, b)
			entry = memoEntry{input: text, redacted: redacted, detections: detections}
			memo[key] = entry
		}
		out[row] = entry.redacted

		for _, d := range entry.detections {
			if d.EntityType != types.EntityPerson && d.EntityType != types.EntityPredefinedName {
				if h.Notice != nil {
					h.Notice(row, d)
				}
			}
		}
		if h.Progress != nil {
			h.Progress(row+1, len(values))
		}
	}

	if err := tbl.SetColumn(src, coerced); err != nil {
		return err
	}
	return tbl.SetColumn(dst, out)
}
