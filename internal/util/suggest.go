package util

import (
	"strings"

	"github.com/sahilm/fuzzy"
)

// Suggest returns up to limit candidates which fuzzy-match input, best first. Leading
// dashes are ignored on both sides so "--enviro" still finds "--environment".
func Suggest(input string, candidates []string, limit int) []string {
	pattern := strings.TrimLeft(input, "-")
	if pattern == "" || len(candidates) == 0 || limit <= 0 {
		return nil
	}

	stripped := make([]string, len(candidates))
	for i, c := range candidates {
		stripped[i] = strings.TrimLeft(c, "-")
	}

	matches := fuzzy.Find(pattern, stripped)
	out := make([]string, 0, min(limit, len(matches)))
	for _, m := range matches {
		if len(out) == limit {
			break
		}
		out = append(out, candidates[m.Index])
	}

	return out
}
