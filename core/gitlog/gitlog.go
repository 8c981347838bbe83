// Package gitlog parses the raw commit-log stream produced by
// `git log --numstat` with a NUL-separated header format.
package gitlog

import (
	"strconv"
	"strings"
	"time"

	"github.com/huangsam/gitcredit/schema"
)

// Separator delimits commits in the log stream. The matching pretty
// format is defined in internal/contract's git client.
const Separator = "---"

// headerFields is hash, author name, author email, author date.
const headerFields = 4

// Parse turns the raw log blob into an ordered list of commit records.
// Commits appear in the same order as in the input; nothing is
// reordered or filtered beyond discarding headers without a hash.
// Structurally odd lines are skipped, never fatal, and empty input
// yields an empty list.
func Parse(out []byte) []schema.CommitRecord {
	if len(out) == 0 {
		return []schema.CommitRecord{}
	}

	commits := []schema.CommitRecord{}
	var current *schema.CommitRecord
	expectHeader := false

	for _, line := range strings.Split(string(out), "\n") {
		// Only CRLF tolerance here: trailing spaces may belong to a
		// filename and must survive the numstat split.
		line = strings.TrimRight(line, "\r")

		if line == Separator {
			// Close out the previous commit; the next non-empty line is
			// a commit header. A trailing separator is allowed.
			flush(&commits, &current)
			expectHeader = true
			continue
		}
		if line == "" {
			continue
		}

		if expectHeader {
			expectHeader = false
			current = parseHeader(line)
			continue
		}

		if current != nil {
			parseFileDelta(current, line)
		}
	}
	flush(&commits, &current)

	return commits
}

// flush appends the in-progress commit, if any, and resets it.
func flush(commits *[]schema.CommitRecord, current **schema.CommitRecord) {
	if *current != nil {
		*commits = append(*commits, **current)
		*current = nil
	}
}

// parseHeader parses a `hash\x00name\x00email\x00date` line. A header
// with an empty or missing hash is discarded and nil is returned.
func parseHeader(line string) *schema.CommitRecord {
	parts := strings.SplitN(line, "\x00", headerFields)
	if len(parts) == 0 || parts[0] == "" {
		return nil
	}

	commit := &schema.CommitRecord{
		Hash:  parts[0],
		Files: []schema.FileDelta{},
	}
	if len(parts) > 1 {
		commit.AuthorName = parts[1]
	}
	if len(parts) > 2 {
		commit.AuthorEmail = parts[2]
	}
	if len(parts) > 3 {
		if ts, err := time.Parse(time.RFC3339, strings.TrimSpace(parts[3])); err == nil {
			commit.Timestamp = ts
		}
	}
	return commit
}

// parseFileDelta folds one `added\tdeleted\tfilename` numstat line into
// the commit. Lines with fewer than 3 tab-separated fields are ignored.
// Filenames may contain tabs; everything after the two numeric fields
// is rejoined verbatim.
func parseFileDelta(commit *schema.CommitRecord, line string) {
	parts := strings.Split(line, "\t")
	if len(parts) < 3 {
		return
	}

	delta := schema.FileDelta{
		Added:    parseChurnValue(parts[0]),
		Deleted:  parseChurnValue(parts[1]),
		Filename: strings.Join(parts[2:], "\t"),
	}
	commit.Additions += delta.Added
	commit.Deletions += delta.Deleted
	commit.Files = append(commit.Files, delta)
}

// parseChurnValue converts a numstat field to int, handling "-" (binary
// file, unknown byte delta) as 0.
func parseChurnValue(s string) int {
	if s == "-" {
		return 0
	}
	if val, err := strconv.Atoi(s); err == nil && val >= 0 {
		return val
	}
	return 0
}
