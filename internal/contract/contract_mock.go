package contract

import (
	"context"
	"time"

	"github.com/cbuntingde/gitpulse/schema"
	"github.com/stretchr/testify/mock"
)

// MockGitClient is a mock implementation of GitClient for testing.
type MockGitClient struct {
	mock.Mock
}

var _ GitClient = &MockGitClient{} // Compile-time check

// Run implements the GitClient interface.
func (m *MockGitClient) Run(ctx context.Context, repoPath string, args ...string) ([]byte, error) {
	callArgs := m.Called(ctx, repoPath, args)
	out, _ := callArgs.Get(0).([]byte)
	return out, callArgs.Error(1)
}

// RepoRoot implements the GitClient interface.
func (m *MockGitClient) RepoRoot(ctx context.Context, contextPath string) (string, error) {
	args := m.Called(ctx, contextPath)
	return args.String(0), args.Error(1)
}

// CommitLog implements the GitClient interface.
func (m *MockGitClient) CommitLog(ctx context.Context, repoPath string, startTime, endTime time.Time) ([]byte, error) {
	args := m.Called(ctx, repoPath, startTime, endTime)
	out, _ := args.Get(0).([]byte)
	return out, args.Error(1)
}

// ChangedPaths implements the GitClient interface.
func (m *MockGitClient) ChangedPaths(ctx context.Context, repoPath string, startTime, endTime time.Time) ([]string, error) {
	args := m.Called(ctx, repoPath, startTime, endTime)
	paths, _ := args.Get(0).([]string)
	return paths, args.Error(1)
}

// BlameAuthors implements the GitClient interface.
func (m *MockGitClient) BlameAuthors(ctx context.Context, repoPath, path string) ([]string, error) {
	args := m.Called(ctx, repoPath, path)
	authors, _ := args.Get(0).([]string)
	return authors, args.Error(1)
}

// AdjacentAuthors implements the GitClient interface.
func (m *MockGitClient) AdjacentAuthors(ctx context.Context, repoPath, hash string, radius int) ([]string, error) {
	args := m.Called(ctx, repoPath, hash, radius)
	authors, _ := args.Get(0).([]string)
	return authors, args.Error(1)
}

// BranchCounts implements the GitClient interface.
func (m *MockGitClient) BranchCounts(ctx context.Context, repoPath string) (schema.BranchCounts, error) {
	args := m.Called(ctx, repoPath)
	counts, _ := args.Get(0).(schema.BranchCounts)
	return counts, args.Error(1)
}
