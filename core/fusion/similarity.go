// ABOUTME: Jaccard set-similarity over tokenized text
// ABOUTME: Pure function used by paragraph fusion to collapse near-duplicates

package fusion

import "strings"

// Similarity returns the Jaccard index of the two texts' token sets, in
// [0,1]. Tokens are lowercase whitespace-delimited words. Two empty texts
// are treated as identical (1.0); one empty text matches nothing (0.0).
// The result is symmetric and deterministic.
func Similarity(a, b string) float64 {
	tokensA := tokenSet(a)
	tokensB := tokenSet(b)

	if len(tokensA) == 0 && len(tokensB) == 0 {
		return 1.0
	}
	if len(tokensA) == 0 || len(tokensB) == 0 {
		return 0.0
	}

	intersection := 0
	for token := range tokensA {
		if _, ok := tokensB[token]; ok {
			intersection++
		}
	}

	union := len(tokensA) + len(tokensB) - intersection
	return float64(intersection) / float64(union)
}

// tokenSet splits text into a set of lowercase tokens.
func tokenSet(text string) map[string]struct{} {
	fields := strings.Fields(strings.ToLower(text))
	set := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		set[f] = struct{}{}
	}
	return set
}
