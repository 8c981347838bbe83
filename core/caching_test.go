package core

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"
	"time"

	"github.com/huangsam/gitcredit/internal/contract"
	"github.com/huangsam/gitcredit/internal/iocache"
	"github.com/huangsam/gitcredit/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const sampleLog = "---\n" +
	"abc\x00Alice\x00alice@x.com\x002024-01-01T00:00:00Z\n" +
	"1\t0\ta.go\n"

func TestCachedCommitLogWithoutManager(t *testing.T) {
	cfg := testConfig()
	cfg.RepoPath = "/repo"

	client := new(contract.MockGitClient)
	client.On("GetCommitLog", mock.Anything, "/repo", mock.Anything, mock.Anything).
		Return([]byte(sampleLog), nil)

	commits, err := cachedCommitLog(context.Background(), cfg, client, nil)
	require.NoError(t, err)
	require.Len(t, commits, 1)
	assert.Equal(t, "abc", commits[0].Hash)
	client.AssertExpectations(t)
}

func TestCachedCommitLogMissThenStore(t *testing.T) {
	cfg := testConfig()
	cfg.RepoPath = "/repo"

	client := new(contract.MockGitClient)
	client.On("GetRepoHash", mock.Anything, "/repo").Return("headhash", nil)
	client.On("GetCommitLog", mock.Anything, "/repo", mock.Anything, mock.Anything).
		Return([]byte(sampleLog), nil)

	store := new(iocache.MockCacheStore)
	store.On("Get", mock.Anything).Return([]byte(nil), 0, int64(0), sql.ErrNoRows)
	store.On("Set", mock.Anything, mock.Anything, 1, mock.Anything).Return(nil)

	mgr := new(iocache.MockCacheManager)
	mgr.On("GetActivityStore").Return(store)

	commits, err := cachedCommitLog(context.Background(), cfg, client, mgr)
	require.NoError(t, err)
	require.Len(t, commits, 1)
	store.AssertExpectations(t)
	client.AssertExpectations(t)
}

func TestCachedCommitLogHit(t *testing.T) {
	cfg := testConfig()
	cfg.RepoPath = "/repo"

	cached := []schema.CommitRecord{{Hash: "cached", AuthorEmail: "alice@x.com", Files: []schema.FileDelta{}}}
	payload, err := json.Marshal(cached)
	require.NoError(t, err)

	client := new(contract.MockGitClient)
	client.On("GetRepoHash", mock.Anything, "/repo").Return("headhash", nil)

	store := new(iocache.MockCacheStore)
	store.On("Get", mock.Anything).Return(payload, 1, time.Now().Unix(), nil)

	mgr := new(iocache.MockCacheManager)
	mgr.On("GetActivityStore").Return(store)

	commits, err := cachedCommitLog(context.Background(), cfg, client, mgr)
	require.NoError(t, err)
	require.Len(t, commits, 1)
	assert.Equal(t, "cached", commits[0].Hash, "a valid cache entry skips git entirely")
	client.AssertNotCalled(t, "GetCommitLog", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCachedCommitLogStaleEntry(t *testing.T) {
	cfg := testConfig()
	cfg.RepoPath = "/repo"

	cached := []schema.CommitRecord{{Hash: "cached"}}
	payload, err := json.Marshal(cached)
	require.NoError(t, err)

	client := new(contract.MockGitClient)
	client.On("GetRepoHash", mock.Anything, "/repo").Return("headhash", nil)
	client.On("GetCommitLog", mock.Anything, "/repo", mock.Anything, mock.Anything).
		Return([]byte(sampleLog), nil)

	staleTS := time.Now().Add(-8 * 24 * time.Hour).Unix()
	store := new(iocache.MockCacheStore)
	store.On("Get", mock.Anything).Return(payload, 1, staleTS, nil)
	store.On("Set", mock.Anything, mock.Anything, 1, mock.Anything).Return(nil)

	mgr := new(iocache.MockCacheManager)
	mgr.On("GetActivityStore").Return(store)

	commits, err := cachedCommitLog(context.Background(), cfg, client, mgr)
	require.NoError(t, err)
	require.Len(t, commits, 1)
	assert.Equal(t, "abc", commits[0].Hash, "entries older than the max age are refetched")
}

func TestCachedCommitLogVersionMismatch(t *testing.T) {
	cfg := testConfig()
	cfg.RepoPath = "/repo"

	cached := []schema.CommitRecord{{Hash: "cached"}}
	payload, err := json.Marshal(cached)
	require.NoError(t, err)

	client := new(contract.MockGitClient)
	client.On("GetRepoHash", mock.Anything, "/repo").Return("headhash", nil)
	client.On("GetCommitLog", mock.Anything, "/repo", mock.Anything, mock.Anything).
		Return([]byte(sampleLog), nil)

	store := new(iocache.MockCacheStore)
	store.On("Get", mock.Anything).Return(payload, 99, time.Now().Unix(), nil)
	store.On("Set", mock.Anything, mock.Anything, 1, mock.Anything).Return(nil)

	mgr := new(iocache.MockCacheManager)
	mgr.On("GetActivityStore").Return(store)

	commits, err := cachedCommitLog(context.Background(), cfg, client, mgr)
	require.NoError(t, err)
	assert.Equal(t, "abc", commits[0].Hash, "a version mismatch counts as a miss")
}

func TestGenerateCacheKeyStableWithinHour(t *testing.T) {
	client := new(contract.MockGitClient)
	client.On("GetRepoHash", mock.Anything, "/repo").Return("headhash", nil)

	base := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

	cfgA := testConfig()
	cfgA.RepoPath = "/repo"
	cfgA.StartTime = base.Add(5 * time.Minute)
	cfgA.EndTime = base.Add(50 * time.Minute)

	cfgB := testConfig()
	cfgB.RepoPath = "/repo"
	cfgB.StartTime = base.Add(10 * time.Minute)
	cfgB.EndTime = base.Add(40 * time.Minute)

	keyA := generateCacheKey(context.Background(), cfgA, client)
	keyB := generateCacheKey(context.Background(), cfgB, client)
	assert.Equal(t, keyA, keyB, "times inside the same hour produce the same key")

	cfgC := testConfig()
	cfgC.RepoPath = "/repo"
	cfgC.StartTime = base.Add(2 * time.Hour)
	cfgC.EndTime = base.Add(3 * time.Hour)
	keyC := generateCacheKey(context.Background(), cfgC, client)
	assert.NotEqual(t, keyA, keyC, "a different window produces a different key")
}
