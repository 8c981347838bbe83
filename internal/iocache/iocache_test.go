package iocache

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	"github.com/huangsam/gitcredit/internal/contract"
	"github.com/huangsam/gitcredit/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheStoreManagerEmpty(t *testing.T) {
	mgr := &CacheStoreManager{}
	assert.Nil(t, mgr.GetActivityStore())
	assert.Nil(t, mgr.GetHistoryStore())
}

func TestCacheStoreManagerHoldsStores(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "cache.db")
	store, err := NewCacheStore(activityTable, schema.SQLiteBackend, dbPath)
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	mgr := &CacheStoreManager{activity: store}
	assert.Same(t, store, mgr.GetActivityStore())
	assert.Nil(t, mgr.GetHistoryStore())
}

func TestClearCacheSQLite(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "cache.db")
	require.NoError(t, os.WriteFile(dbPath, []byte("data"), 0o644))

	require.NoError(t, ClearCache(schema.SQLiteBackend, dbPath, ""))
	_, err := os.Stat(dbPath)
	assert.True(t, os.IsNotExist(err), "the database file is removed")

	// Clearing an already-missing file is fine
	assert.NoError(t, ClearCache(schema.SQLiteBackend, dbPath, ""))
}

func TestClearCacheSQLiteRequiresPath(t *testing.T) {
	assert.Error(t, ClearCache(schema.SQLiteBackend, "", ""))
}

func TestClearCacheNoneBackend(t *testing.T) {
	assert.NoError(t, ClearCache(schema.NoneBackend, "", ""))
}

func TestClearCacheUnknownBackend(t *testing.T) {
	assert.Error(t, ClearCache(schema.DatabaseBackend("redis"), "", ""))
}

func TestClearHistorySQLite(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "history.db")
	require.NoError(t, os.WriteFile(dbPath, []byte("data"), 0o644))

	require.NoError(t, ClearHistory(schema.SQLiteBackend, dbPath, ""))
	_, err := os.Stat(dbPath)
	assert.True(t, os.IsNotExist(err))
}

func TestClearHistoryNoneBackend(t *testing.T) {
	assert.NoError(t, ClearHistory(schema.NoneBackend, "", ""))
}

func TestDBFilePathsDelegate(t *testing.T) {
	assert.Equal(t, contract.GetCacheDBFilePath(), GetDBFilePath())
	assert.Equal(t, contract.GetHistoryDBFilePath(), GetHistoryDBFilePath())
}

func TestMockCacheStore(t *testing.T) {
	store := new(MockCacheStore)
	store.On("Get", "key").Return([]byte("value"), 1, int64(42), nil)
	store.On("Set", "key", []byte("value"), 1, int64(42)).Return(nil)
	store.On("Close").Return(nil)

	value, version, ts, err := store.Get("key")
	require.NoError(t, err)
	assert.Equal(t, []byte("value"), value)
	assert.Equal(t, 1, version)
	assert.Equal(t, int64(42), ts)

	assert.NoError(t, store.Set("key", []byte("value"), 1, 42))
	assert.NoError(t, store.Close())
	store.AssertExpectations(t)
}

func TestMockCacheStoreMiss(t *testing.T) {
	store := new(MockCacheStore)
	store.On("Get", "missing").Return([]byte(nil), 0, int64(0), sql.ErrNoRows)

	_, _, _, err := store.Get("missing")
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestMockHistoryStore(t *testing.T) {
	store := new(MockHistoryStore)
	record := schema.HistoryRunRecord{RepoPath: "/repo", TotalCommits: 5}
	store.On("RecordRun", record).Return(int64(7), nil)
	store.On("ListRuns", 10).Return([]schema.HistoryRunRecord{record}, nil)

	id, err := store.RecordRun(record)
	require.NoError(t, err)
	assert.Equal(t, int64(7), id)

	runs, err := store.ListRuns(10)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, "/repo", runs[0].RepoPath)
	store.AssertExpectations(t)
}

func TestMockCacheManager(t *testing.T) {
	store := new(MockCacheStore)
	history := new(MockHistoryStore)

	mgr := new(MockCacheManager)
	mgr.On("GetActivityStore").Return(store)
	mgr.On("GetHistoryStore").Return(history)

	assert.Same(t, store, mgr.GetActivityStore())
	assert.Same(t, history, mgr.GetHistoryStore())
	mgr.AssertExpectations(t)
}
