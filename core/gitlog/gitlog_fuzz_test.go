package gitlog

import (
	"testing"
)

// FuzzParse fuzzes the commit log parser with arbitrary byte input.
// The parser must never panic and must keep its counters consistent
// no matter how mangled the input is.
func FuzzParse(f *testing.F) {
	seeds := []string{
		"",
		"---\nabc123\x00Alice\x00alice@x.com\x002024-03-15T10:30:00+00:00\n10\t2\tmain.go\n",
		"---\n\x00\x00\x00\n",
		"---\nabc123\x00Bob\x00bob@x.com\x00not-a-date\n-\t-\timage.png\n",
		"10\t2\torphan.go\n",
		"---\nabc123\x00Alice\x00alice@x.com\x002024-03-15T10:30:00+00:00\n3\t1\ta\tb\tc.go\n",
		"---\ntruncated header\n",
		"\r\n---\r\nabc\x00A\x00a@x\x002024-01-01T00:00:00Z\r\n",
	}
	for _, seed := range seeds {
		f.Add([]byte(seed))
	}

	f.Fuzz(func(t *testing.T, data []byte) {
		commits := Parse(data)
		if commits == nil {
			t.Fatal("Parse must return a non-nil slice")
		}
		for _, c := range commits {
			if c.Hash == "" {
				t.Error("parsed commit must have a non-empty hash")
			}
			var added, deleted int
			for _, fd := range c.Files {
				if fd.Added < 0 || fd.Deleted < 0 {
					t.Error("file deltas must be non-negative")
				}
				added += fd.Added
				deleted += fd.Deleted
			}
			if added != c.Additions || deleted != c.Deletions {
				t.Errorf("commit totals (%d/%d) must match file delta sums (%d/%d)",
					c.Additions, c.Deletions, added, deleted)
			}
		}
	})
}
