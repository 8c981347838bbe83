package identity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevenshteinDistance(t *testing.T) {
	tests := []struct {
		name     string
		a, b     string
		expected int
	}{
		{"identical", "kitten", "kitten", 0},
		{"classic", "kitten", "sitting", 3},
		{"empty vs empty", "", "", 0},
		{"empty vs word", "", "abc", 3},
		{"word vs empty", "abc", "", 3},
		{"single substitution", "cat", "bat", 1},
		{"single insertion", "cat", "cart", 1},
		{"unicode runes", "héllo", "hello", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, LevenshteinDistance(tt.a, tt.b))
		})
	}
}

func TestLevenshteinDistanceSymmetric(t *testing.T) {
	pairs := [][2]string{
		{"alice", "alicia"},
		{"kitten", "sitting"},
		{"", "word"},
		{"héllo", "hello"},
	}
	for _, p := range pairs {
		assert.Equal(t, LevenshteinDistance(p[0], p[1]), LevenshteinDistance(p[1], p[0]),
			"distance should be symmetric for %q and %q", p[0], p[1])
	}
}

func TestSimilarity(t *testing.T) {
	tests := []struct {
		name     string
		a, b     string
		expected float64
	}{
		{"identical", "alice", "alice", 1.0},
		{"case insensitive", "Alice", "ALICE", 1.0},
		{"both empty", "", "", 1.0},
		{"one empty", "", "alice", 0.0},
		{"disjoint", "abc", "xyz", 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, Similarity(tt.a, tt.b), 1e-9)
		})
	}
}

func TestSimilarityBounds(t *testing.T) {
	pairs := [][2]string{
		{"alice developer", "alice"},
		{"john", "jon"},
		{"a", "completely different name"},
		{"", ""},
	}
	for _, p := range pairs {
		score := Similarity(p[0], p[1])
		assert.GreaterOrEqual(t, score, 0.0, "score for %q vs %q", p[0], p[1])
		assert.LessOrEqual(t, score, 1.0, "score for %q vs %q", p[0], p[1])
	}
}

func TestSimilarityCloseNames(t *testing.T) {
	// One edit across four runes.
	assert.InDelta(t, 0.75, Similarity("john", "jon"), 1e-9)
	assert.Less(t, Similarity("alice", "bob"), 0.5)
}
