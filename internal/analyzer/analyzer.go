// Package analyzer runs a recognizer registry over a text and returns the
// detections for a requested set of entity types. This package is internal;
// external consumers should use the stable facade in pkg/core.
package analyzer

import (
	"sort"

	"github.com/nameredact/nameredact/internal/recognizers"
	"github.com/nameredact/nameredact/internal/types"
)

// Engine analyzes text with the recognizers in its registry.
type Engine struct {
	registry *recognizers.Registry
}

// New returns an analyzer over the given registry.
func New(registry *recognizers.Registry) *Engine {
	return &Engine{registry: registry}
}

// Analyze runs every recognizer that supports at least one of the requested
// entity types, keeps only detections for requested types, resolves overlaps
// (higher score wins, then the longer span, then the earlier recognizer),
// and returns the survivors sorted by start offset.
//
// An empty entities slice requests nothing and returns nil.
func (e *Engine) Analyze(text string, entities []string, language string) []types.Detection {
	if text == "" || len(entities) == 0 {
		return nil
	}
	requested := make(map[string]bool, len(entities))
	for _, ent := range entities {
		requested[ent] = true
	}

	var candidates []types.Detection
	order := map[int]int{} // index in candidates -> registration rank, for tie-breaks
	for rank, rec := range e.registry.All() {
		if !supportsAny(rec, requested) {
			continue
		}
		for _, d := range rec.Analyze(text, language) {
			if !requested[d.EntityType] {
				continue
			}
			order[len(candidates)] = rank
			candidates = append(candidates, d)
		}
	}
	return resolve(candidates, order)
}

func supportsAny(rec recognizers.Recognizer, requested map[string]bool) bool {
	for _, ent := range rec.Supported() {
		if requested[ent] {
			return true
		}
	}
	return false
}

// resolve drops overlapping detections, preferring score, then span length,
// then registration order.
func resolve(candidates []types.Detection, order map[int]int) []types.Detection {
	idx := make([]int, len(candidates))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		da, db := candidates[idx[a]], candidates[idx[b]]
		if da.Score != db.Score {
			return da.Score > db.Score
		}
		if la, lb := da.End-da.Start, db.End-db.Start; la != lb {
			return la > lb
		}
		return order[idx[a]] < order[idx[b]]
	})

	var kept []types.Detection
	for _, i := range idx {
		if !overlapsAny(kept, candidates[i]) {
			kept = append(kept, candidates[i])
		}
	}
	sort.Slice(kept, func(a, b int) bool { return kept[a].Start < kept[b].Start })
	return kept
}

func overlapsAny(ds []types.Detection, d types.Detection) bool {
	for _, k := range ds {
		if d.Start < k.End && k.Start < d.End {
			return true
		}
	}
	return false
}
