package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisplayName(t *testing.T) {
	tests := []struct {
		name     string
		identity string
		details  CanonicalDetails
		expected string
	}{
		{"name wins", "alice@x.com", CanonicalDetails{Name: "Alice", Email: "alice@x.com"}, "Alice"},
		{"email local part", "alice@x.com", CanonicalDetails{Email: "alice@x.com"}, "alice"},
		{"identity fallback", "mystery", CanonicalDetails{}, "mystery"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DisplayName(tt.identity, tt.details))
		})
	}
}

func TestEmailLocalPart(t *testing.T) {
	assert.Equal(t, "alice", EmailLocalPart("alice@x.com"))
	assert.Equal(t, "no-domain", EmailLocalPart("no-domain"))
	assert.Equal(t, "", EmailLocalPart("@x.com"))
}

func TestSortedIdentities(t *testing.T) {
	contributors := map[string]*Contributor{
		"charlie": {},
		"alice":   {},
		"bob":     {},
	}
	assert.Equal(t, []string{"alice", "bob", "charlie"}, SortedIdentities(contributors))
	assert.Empty(t, SortedIdentities(nil))
}

func TestHeatmapTotal(t *testing.T) {
	var h Heatmap
	assert.Zero(t, h.Total())

	h[0][0] = 3
	h[6][23] = 2
	assert.Equal(t, 5, h.Total())
}

func TestContributorAccumulator(t *testing.T) {
	acc := NewContributorAccumulator()
	acc.AddFileDelta(FileDelta{Filename: "a.go", Added: 10, Deleted: 2})
	acc.AddFileDelta(FileDelta{Filename: "a.go", Added: 1, Deleted: 1})
	acc.AddFileDelta(FileDelta{Filename: "b.go", Added: 5})

	assert.Len(t, acc.Files, 2)
	assert.Equal(t, 11, acc.Files["a.go"].Added)
	assert.Equal(t, 3, acc.Files["a.go"].Deleted)
	assert.Equal(t, 14, acc.Files["a.go"].Changes)
	assert.Equal(t, 5, acc.Files["b.go"].Changes)
}

func TestCommitRecordHasTimestamp(t *testing.T) {
	c := CommitRecord{}
	assert.False(t, c.HasTimestamp())
}
