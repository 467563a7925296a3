package match

import (
	"sort"
)

// MinSimilarity is the lowest score Closest will still suggest.
const MinSimilarity = 0.5

// Closest returns up to n candidates most similar to name, best first.
// Candidates scoring below MinSimilarity are dropped; ties keep input order.
func Closest(name string, candidates []string, n int) []string {
	type scored struct {
		name  string
		score float64
	}

	var ranked []scored

	for _, c := range candidates {
		if c == name {
			continue
		}

		if s := Similarity(name, c); s >= MinSimilarity {
			ranked = append(ranked, scored{name: c, score: s})
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})

	out := make([]string, 0, min(n, len(ranked)))
	for i := 0; i < len(ranked) && i < n; i++ {
		out = append(out, ranked[i].name)
	}

	return out
}
