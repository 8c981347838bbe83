package algo

import (
	"testing"

	"github.com/huangsam/gitcredit/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ranked(id string, commits, added, deleted int) schema.RankedContributor {
	return schema.RankedContributor{
		Identity: id,
		Net:      added - deleted,
		Changes:  added + deleted,
		Contributor: schema.Contributor{
			Commits: commits,
			Added:   added,
			Deleted: deleted,
		},
	}
}

func TestMetricOf(t *testing.T) {
	c := ranked("alice", 7, 100, 40)

	assert.Equal(t, 7, MetricOf(&c, schema.SortByCommits))
	assert.Equal(t, 100, MetricOf(&c, schema.SortByAdditions))
	assert.Equal(t, 40, MetricOf(&c, schema.SortByDeletions))
	assert.Equal(t, 140, MetricOf(&c, schema.SortByChanges))
}

func TestRankContributorsByChanges(t *testing.T) {
	contributors := []schema.RankedContributor{
		ranked("small", 1, 5, 0),
		ranked("big", 2, 100, 50),
		ranked("medium", 9, 30, 10),
	}

	top := RankContributors(contributors, schema.SortByChanges, 0)
	require.Len(t, top, 3)
	assert.Equal(t, "big", top[0].Identity)
	assert.Equal(t, "medium", top[1].Identity)
	assert.Equal(t, "small", top[2].Identity)
}

func TestRankContributorsLimit(t *testing.T) {
	contributors := []schema.RankedContributor{
		ranked("a", 1, 10, 0),
		ranked("b", 1, 20, 0),
		ranked("c", 1, 30, 0),
	}

	top := RankContributors(contributors, schema.SortByChanges, 2)
	require.Len(t, top, 2)
	assert.Equal(t, "c", top[0].Identity)
	assert.Equal(t, "b", top[1].Identity)
}

func TestRankContributorsStableTies(t *testing.T) {
	contributors := []schema.RankedContributor{
		ranked("first", 3, 10, 0),
		ranked("second", 3, 10, 0),
		ranked("third", 3, 10, 0),
	}

	top := RankContributors(contributors, schema.SortByCommits, 0)
	require.Len(t, top, 3)
	assert.Equal(t, "first", top[0].Identity, "ties keep input order")
	assert.Equal(t, "second", top[1].Identity)
	assert.Equal(t, "third", top[2].Identity)
}

func TestRankContributorsEmpty(t *testing.T) {
	assert.Empty(t, RankContributors(nil, schema.SortByChanges, 10))
}

func TestTopFilesOf(t *testing.T) {
	files := map[string]*schema.FileStat{
		"busy.go":  {Added: 50, Deleted: 50, Changes: 100},
		"quiet.go": {Added: 1, Deleted: 0, Changes: 1},
		"mid.go":   {Added: 5, Deleted: 5, Changes: 10},
	}

	owned := TopFilesOf(files, 0)
	require.Len(t, owned, 3)
	assert.Equal(t, "busy.go", owned[0].Filename)
	assert.Equal(t, "mid.go", owned[1].Filename)
	assert.Equal(t, "quiet.go", owned[2].Filename)
}

func TestTopFilesOfTiesByFilename(t *testing.T) {
	files := map[string]*schema.FileStat{
		"zeta.go":  {Changes: 10},
		"alpha.go": {Changes: 10},
	}

	owned := TopFilesOf(files, 0)
	require.Len(t, owned, 2)
	assert.Equal(t, "alpha.go", owned[0].Filename, "equal changes tie-break on filename")
	assert.Equal(t, "zeta.go", owned[1].Filename)
}

func TestTopFilesOfLimit(t *testing.T) {
	files := map[string]*schema.FileStat{
		"a.go": {Changes: 3},
		"b.go": {Changes: 2},
		"c.go": {Changes: 1},
	}

	owned := TopFilesOf(files, 2)
	require.Len(t, owned, 2)
	assert.Equal(t, "a.go", owned[0].Filename)
}
