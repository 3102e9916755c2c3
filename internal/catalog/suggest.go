package catalog

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// suggestionLimit is the largest edit distance still offered as a
// suggestion; short names tolerate fewer typos.
func suggestionLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}

// closestName returns the candidate nearest to name, or "" when none is close
// enough. Prefix matches win over edit distance.
func closestName(name string, candidates []string) string {
	needle := strings.ToLower(strings.TrimSpace(name))
	if needle == "" {
		return ""
	}

	best, bestDist := "", -1
	for _, cand := range candidates {
		lower := strings.ToLower(cand)
		if len(needle) >= 2 && strings.HasPrefix(lower, needle) {
			return cand
		}
		dist := levenshtein.ComputeDistance(needle, lower)
		if dist > suggestionLimit(len(lower)) {
			continue
		}
		if bestDist < 0 || dist < bestDist {
			best, bestDist = cand, dist
		}
	}
	return best
}
