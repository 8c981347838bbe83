package core

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"time"

	"github.com/huangsam/gitcredit/core/gitlog"
	"github.com/huangsam/gitcredit/internal/contract"
	"github.com/huangsam/gitcredit/schema"
)

// currentCacheVersion defines the version of the cached payload shape.
const currentCacheVersion = 1

// cacheMaxAge bounds how long a cached commit list stays usable.
const cacheMaxAge = 7 * 24 * time.Hour

// cachedCommitLog returns the parsed commit list for the configured
// window, consulting the activity cache first. The cache stores the
// parsed commits rather than raw log bytes, keyed on everything that
// affects parsing: repo path, time window, and HEAD hash. Identity
// settings do not enter the key since resolution happens downstream.
func cachedCommitLog(ctx context.Context, cfg *contract.Config, client contract.GitClient, mgr contract.CacheManager) ([]schema.CommitRecord, error) {
	var store contract.CacheStore
	if mgr != nil {
		store = mgr.GetActivityStore()
	}
	if store == nil {
		return fetchCommitLog(ctx, cfg, client)
	}

	key := generateCacheKey(ctx, cfg, client)

	if commits := checkCacheHit(store, key); commits != nil {
		return commits, nil
	}

	commits, err := fetchCommitLog(ctx, cfg, client)
	if err != nil {
		return nil, err
	}
	if data, err := json.Marshal(commits); err == nil {
		_ = store.Set(key, data, currentCacheVersion, time.Now().Unix())
	}
	return commits, nil
}

// fetchCommitLog runs git and parses the stream directly.
func fetchCommitLog(ctx context.Context, cfg *contract.Config, client contract.GitClient) ([]schema.CommitRecord, error) {
	out, err := client.GetCommitLog(ctx, cfg.RepoPath, cfg.StartTime, cfg.EndTime)
	if err != nil {
		return nil, err
	}
	return gitlog.Parse(out), nil
}

// checkCacheHit attempts to retrieve and validate a cached commit list.
func checkCacheHit(store contract.CacheStore, key string) []schema.CommitRecord {
	data, version, ts, err := store.Get(key)
	if err != nil {
		return nil // Cache miss
	}

	if version != currentCacheVersion {
		return nil
	}
	if time.Since(time.Unix(ts, 0)) > cacheMaxAge {
		return nil
	}

	var commits []schema.CommitRecord
	if err := json.Unmarshal(data, &commits); err != nil {
		return nil
	}
	return commits
}

// generateCacheKey creates a unique key based on collection parameters.
// The repo HEAD hash invalidates the cache when history changes.
func generateCacheKey(ctx context.Context, cfg *contract.Config, client contract.GitClient) string {
	repoHash, err := client.GetRepoHash(ctx, cfg.RepoPath)
	if err != nil {
		repoHash = ""
	}

	key := fmt.Sprintf("%s:%d:%d:%s",
		cfg.RepoPath,
		cfg.GetAnalysisStartTime().Unix(),
		cfg.GetAnalysisEndTime().Unix(),
		repoHash,
	)
	return fmt.Sprintf("%x", sha256.Sum256([]byte(key)))
}
