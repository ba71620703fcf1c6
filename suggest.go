package quickdirective

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// suggest returns the candidate closest to name, or "" if none is close
// enough to be a likely typo. Candidates are expected in a stable order; ties
// go to the first.
func suggest(name string, candidates []string) string {
	best := ""
	bestDistance := len(name)/2 + 1
	lower := strings.ToLower(name)
	for _, candidate := range candidates {
		if candidate == name {
			continue
		}
		distance := levenshtein.ComputeDistance(lower, strings.ToLower(candidate))
		if distance < bestDistance {
			best = candidate
			bestDistance = distance
		}
	}
	return best
}
