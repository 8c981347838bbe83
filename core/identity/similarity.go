package identity

import "strings"

// LevenshteinDistance computes the classic unit-cost edit distance
// between two strings, measured in runes. It is symmetric and
// case-sensitive at this layer.
func LevenshteinDistance(a, b string) int {
	ra := []rune(a)
	rb := []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	// Two-row DP keeps memory linear in the shorter dimension.
	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min(
				prev[j]+1,      // deletion
				curr[j-1]+1,    // insertion
				prev[j-1]+cost, // substitution
			)
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}

// Similarity scores two strings in [0, 1] based on edit distance over
// their lowercased forms. Two empty strings are identical (score 1);
// one empty string against a non-empty one scores 0.
func Similarity(a, b string) float64 {
	la := strings.ToLower(a)
	lb := strings.ToLower(b)
	longest := max(len([]rune(la)), len([]rune(lb)), 1)
	return 1 - float64(LevenshteinDistance(la, lb))/float64(longest)
}
