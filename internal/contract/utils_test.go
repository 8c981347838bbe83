package contract

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetPlainShareLabel(t *testing.T) {
	tests := []struct {
		name     string
		share    float64
		expected string
	}{
		{"dominant at boundary", 0.50, DominantValue},
		{"dominant above", 0.80, DominantValue},
		{"major at boundary", 0.25, MajorValue},
		{"major below dominant", 0.49, MajorValue},
		{"regular at boundary", 0.10, RegularValue},
		{"regular below major", 0.24, RegularValue},
		{"minor below regular", 0.09, MinorValue},
		{"minor at zero", 0.0, MinorValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GetPlainShareLabel(tt.share))
		})
	}
}

func TestGetColorShareLabel(t *testing.T) {
	// The colored label always contains the plain text, with or without
	// escape codes depending on terminal detection.
	for _, share := range []float64{0.6, 0.3, 0.15, 0.01} {
		plain := GetPlainShareLabel(share)
		colored := GetColorShareLabel(share)
		assert.Contains(t, colored, plain)
	}
}

func TestTruncatePath(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		maxLen   int
		expected string
	}{
		{"short path untouched", "a.go", 20, "a.go"},
		{"exact length untouched", "abcdefghij", 10, "abcdefghij"},
		{"long path keeps tail", "internal/contract/utils.go", 13, "...t/utils.go"},
		{"tiny max returns original", "internal/contract/utils.go", 3, "internal/contract/utils.go"},
		{"zero max returns original", "a/b/c.go", 0, "a/b/c.go"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TruncatePath(tt.path, tt.maxLen)
			assert.Equal(t, tt.expected, got)
			if tt.maxLen > 3 {
				assert.LessOrEqual(t, len(got), tt.maxLen)
			}
		})
	}
}

func TestTruncatePathKeepsFilename(t *testing.T) {
	got := TruncatePath("very/long/nested/path/to/main.go", 15)
	assert.True(t, strings.HasPrefix(got, "..."))
	assert.True(t, strings.HasSuffix(got, "main.go"))
}

func TestDBFilePaths(t *testing.T) {
	cache := GetCacheDBFilePath()
	history := GetHistoryDBFilePath()

	assert.Contains(t, cache, ".gitcredit_cache.db")
	assert.Contains(t, history, ".gitcredit_history.db")
	assert.NotEqual(t, cache, history, "cache and history never share a default file")
}

func TestProcessProfilingConfig(t *testing.T) {
	var profile ProfileConfig
	require.NoError(t, ProcessProfilingConfig(&profile, ""))
	assert.False(t, profile.Enabled)

	require.NoError(t, ProcessProfilingConfig(&profile, "/tmp/prof"))
	assert.True(t, profile.Enabled)
	assert.Equal(t, "/tmp/prof", profile.Prefix)
}
