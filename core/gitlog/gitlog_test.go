package gitlog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEmptyInput(t *testing.T) {
	commits := Parse(nil)
	assert.Empty(t, commits, "nil input should yield no commits")

	commits = Parse([]byte(""))
	assert.Empty(t, commits, "empty input should yield no commits")
	assert.NotNil(t, commits, "empty input should yield an empty slice, not nil")
}

func TestParseSingleCommit(t *testing.T) {
	input := "---\n" +
		"abc123\x00Alice Developer\x00alice@x.com\x002024-03-15T10:30:00Z\n" +
		"10\t2\tsrc/main.go\n" +
		"5\t0\tREADME.md\n"

	commits := Parse([]byte(input))
	require.Len(t, commits, 1)

	c := commits[0]
	assert.Equal(t, "abc123", c.Hash)
	assert.Equal(t, "Alice Developer", c.AuthorName)
	assert.Equal(t, "alice@x.com", c.AuthorEmail)
	assert.Equal(t, time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC), c.Timestamp)
	assert.Equal(t, 15, c.Additions)
	assert.Equal(t, 2, c.Deletions)
	require.Len(t, c.Files, 2)
	assert.Equal(t, "src/main.go", c.Files[0].Filename)
	assert.Equal(t, 10, c.Files[0].Added)
	assert.Equal(t, 2, c.Files[0].Deleted)
}

func TestParseMultipleCommits(t *testing.T) {
	input := "---\n" +
		"aaa\x00Alice\x00alice@x.com\x002024-01-01T00:00:00Z\n" +
		"1\t1\ta.go\n" +
		"---\n" +
		"bbb\x00Bob\x00bob@y.com\x002024-01-02T00:00:00Z\n" +
		"2\t0\tb.go\n" +
		"---\n"

	commits := Parse([]byte(input))
	require.Len(t, commits, 2)
	assert.Equal(t, "aaa", commits[0].Hash, "input order should be preserved")
	assert.Equal(t, "bbb", commits[1].Hash)
}

func TestParseCommitWithoutFiles(t *testing.T) {
	// Empty commits (e.g. merges with no numstat lines) still count.
	input := "---\n" +
		"aaa\x00Alice\x00alice@x.com\x002024-01-01T00:00:00Z\n" +
		"---\n" +
		"bbb\x00Bob\x00bob@y.com\x002024-01-02T00:00:00Z\n" +
		"3\t1\tb.go\n"

	commits := Parse([]byte(input))
	require.Len(t, commits, 2)
	assert.Empty(t, commits[0].Files)
	assert.Zero(t, commits[0].Additions)
	assert.Len(t, commits[1].Files, 1)
}

func TestParseBinaryFileDeltas(t *testing.T) {
	input := "---\n" +
		"aaa\x00Alice\x00alice@x.com\x002024-01-01T00:00:00Z\n" +
		"-\t-\tlogo.png\n" +
		"4\t2\ta.go\n"

	commits := Parse([]byte(input))
	require.Len(t, commits, 1)
	require.Len(t, commits[0].Files, 2)
	assert.Zero(t, commits[0].Files[0].Added, "binary markers count as zero churn")
	assert.Zero(t, commits[0].Files[0].Deleted)
	assert.Equal(t, 4, commits[0].Additions)
	assert.Equal(t, 2, commits[0].Deletions)
}

func TestParseFilenameWithTabs(t *testing.T) {
	input := "---\n" +
		"aaa\x00Alice\x00alice@x.com\x002024-01-01T00:00:00Z\n" +
		"1\t1\tweird\tname.txt\n"

	commits := Parse([]byte(input))
	require.Len(t, commits, 1)
	require.Len(t, commits[0].Files, 1)
	assert.Equal(t, "weird\tname.txt", commits[0].Files[0].Filename,
		"everything after the numeric fields belongs to the filename")
}

func TestParseFilenameWithTrailingSpace(t *testing.T) {
	input := "---\n" +
		"aaa\x00Alice\x00alice@x.com\x002024-01-01T00:00:00Z\n" +
		"1\t1\todd name.txt \n"

	commits := Parse([]byte(input))
	require.Len(t, commits, 1)
	require.Len(t, commits[0].Files, 1)
	assert.Equal(t, "odd name.txt ", commits[0].Files[0].Filename,
		"filenames are kept verbatim, trailing spaces included")
}

func TestParseDiscardsHeaderWithoutHash(t *testing.T) {
	input := "---\n" +
		"\x00Ghost\x00ghost@x.com\x002024-01-01T00:00:00Z\n" +
		"1\t1\ta.go\n" +
		"---\n" +
		"bbb\x00Bob\x00bob@y.com\x002024-01-02T00:00:00Z\n" +
		"2\t0\tb.go\n"

	commits := Parse([]byte(input))
	require.Len(t, commits, 1, "a header with an empty hash is discarded")
	assert.Equal(t, "bbb", commits[0].Hash)
}

func TestParsePartialHeader(t *testing.T) {
	// A hash-only header is kept with empty author fields.
	input := "---\n" +
		"aaa\n" +
		"1\t1\ta.go\n"

	commits := Parse([]byte(input))
	require.Len(t, commits, 1)
	assert.Equal(t, "aaa", commits[0].Hash)
	assert.Empty(t, commits[0].AuthorName)
	assert.Empty(t, commits[0].AuthorEmail)
	assert.False(t, commits[0].HasTimestamp())
}

func TestParseUnparseableDate(t *testing.T) {
	input := "---\n" +
		"aaa\x00Alice\x00alice@x.com\x00not-a-date\n" +
		"1\t1\ta.go\n"

	commits := Parse([]byte(input))
	require.Len(t, commits, 1)
	assert.False(t, commits[0].HasTimestamp(), "bad dates leave a zero timestamp")
}

func TestParseSkipsMalformedNumstatLines(t *testing.T) {
	input := "---\n" +
		"aaa\x00Alice\x00alice@x.com\x002024-01-01T00:00:00Z\n" +
		"garbage line\n" +
		"1\t1\ta.go\n" +
		"2\tincomplete\n"

	commits := Parse([]byte(input))
	require.Len(t, commits, 1)
	assert.Len(t, commits[0].Files, 1, "lines without 3 tab fields are skipped")
}

func TestParseCarriageReturns(t *testing.T) {
	input := "---\r\n" +
		"aaa\x00Alice\x00alice@x.com\x002024-01-01T00:00:00Z\r\n" +
		"1\t1\ta.go\r\n"

	commits := Parse([]byte(input))
	require.Len(t, commits, 1)
	assert.Equal(t, "a.go", commits[0].Files[0].Filename)
}

func TestParseChurnValue(t *testing.T) {
	tests := []struct {
		input    string
		expected int
	}{
		{"0", 0},
		{"42", 42},
		{"-", 0},
		{"-5", 0},
		{"abc", 0},
		{"", 0},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseChurnValue(tt.input))
		})
	}
}
