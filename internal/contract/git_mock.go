package contract

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
)

// MockGitClient is a testify mock for the GitClient interface.
type MockGitClient struct {
	mock.Mock
}

var _ GitClient = &MockGitClient{}

// GetCommitLog mocks the raw log retrieval.
func (m *MockGitClient) GetCommitLog(ctx context.Context, repoPath string, startTime, endTime time.Time) ([]byte, error) {
	args := m.Called(ctx, repoPath, startTime, endTime)
	var out []byte
	if args.Get(0) != nil {
		out = args.Get(0).([]byte)
	}
	return out, args.Error(1)
}

// GetRepoHash mocks the HEAD hash lookup.
func (m *MockGitClient) GetRepoHash(ctx context.Context, repoPath string) (string, error) {
	args := m.Called(ctx, repoPath)
	return args.String(0), args.Error(1)
}

// GetRepoRoot mocks the repository root resolution.
func (m *MockGitClient) GetRepoRoot(ctx context.Context, contextPath string) (string, error) {
	args := m.Called(ctx, contextPath)
	return args.String(0), args.Error(1)
}
