// Package contract provides interfaces and shared configuration for the
// gitcredit CLI's internal architecture.
package contract

import (
	"context"
	"time"

	"github.com/huangsam/gitcredit/schema"
)

// GitClient defines the git operations needed to collect commit history.
// This allows the core analysis logic to be tested without needing a
// real git executable.
type GitClient interface {
	// GetCommitLog returns the raw numstat log stream for the repository,
	// optionally bounded by a time window.
	GetCommitLog(ctx context.Context, repoPath string, startTime, endTime time.Time) ([]byte, error)

	// GetRepoHash returns the current HEAD commit hash.
	GetRepoHash(ctx context.Context, repoPath string) (string, error)

	// GetRepoRoot resolves the repository's top-level directory.
	GetRepoRoot(ctx context.Context, contextPath string) (string, error)
}

// CacheManager defines the interface for managing persistence stores.
type CacheManager interface {
	GetActivityStore() CacheStore
	GetHistoryStore() HistoryStore
}

// CacheStore defines the interface for cache data storage.
// This allows mocking the store for testing.
type CacheStore interface {
	Get(key string) ([]byte, int, int64, error)
	Set(key string, value []byte, version int, timestamp int64) error
	GetStatus() (schema.CacheStatus, error)
	Close() error
}

// HistoryStore records one row per completed analysis run.
type HistoryStore interface {
	RecordRun(record schema.HistoryRunRecord) (int64, error)
	ListRuns(limit int) ([]schema.HistoryRunRecord, error)
	GetStatus() (schema.HistoryStatus, error)
	Close() error
}
