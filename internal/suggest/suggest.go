package suggest

import (
	"cmp"
	"slices"
)

const (
	// Threshold is the minimum similarity a candidate needs to be offered.
	Threshold = 0.5
	// Limit caps the number of returned suggestions.
	Limit = 3
)

type scored struct {
	name  string
	score float64
}

// Closest returns up to Limit candidates whose similarity to name reaches
// Threshold, best first. Ties are broken by name so the result is stable.
func Closest(name string, candidates []string) []string {
	var ranked []scored

	for _, c := range candidates {
		if c == name {
			continue
		}

		if s := Similarity(name, c); s >= Threshold {
			ranked = append(ranked, scored{name: c, score: s})
		}
	}

	slices.SortFunc(ranked, func(a, b scored) int {
		if c := cmp.Compare(b.score, a.score); c != 0 {
			return c
		}

		return cmp.Compare(a.name, b.name)
	})

	if len(ranked) > Limit {
		ranked = ranked[:Limit]
	}

	out := make([]string, 0, len(ranked))
	for _, r := range ranked {
		out = append(out, r.name)
	}

	return out
}
