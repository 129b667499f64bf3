package catalog

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// Suggest returns up to limit candidates that look like query: exact
// case-insensitive matches first, then prefix and substring matches, then the
// closest edit distances within a length-scaled limit
func Suggest(query string, candidates []string, limit int) []string {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" || limit <= 0 {
		return nil
	}

	type scored struct {
		val   string
		score int
	}
	results := make([]scored, 0, len(candidates))
	for _, cand := range candidates {
		c := strings.ToLower(cand)
		var score int
		switch {
		case c == q:
			score = 0
		case strings.HasPrefix(c, q) && len(q) >= 2:
			score = 1
		case strings.Contains(c, q) && len(q) >= 3:
			score = 2
		default:
			dist := levenshtein.ComputeDistance(q, c)
			if dist > distanceLimit(len(c)) {
				continue
			}
			score = 2 + dist
		}
		results = append(results, scored{val: cand, score: score})
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].score == results[j].score {
			return results[i].val < results[j].val
		}
		return results[i].score < results[j].score
	})

	if len(results) > limit {
		results = results[:limit]
	}
	out := make([]string, len(results))
	for i, r := range results {
		out[i] = r.val
	}
	return out
}

func distanceLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}
