package contract

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
)

// MockGitClient is a testify mock for the GitClient type.
type MockGitClient struct {
	mock.Mock
}

var _ GitClient = &MockGitClient{} // Compile-time check

// Run implements the GitClient interface.
func (m *MockGitClient) Run(ctx context.Context, repoPath string, args ...string) ([]byte, error) {
	mockArgs := []interface{}{ctx, repoPath}
	for _, arg := range args {
		mockArgs = append(mockArgs, arg)
	}
	ret := m.Called(mockArgs...)
	output, _ := ret.Get(0).([]byte)
	return output, ret.Error(1)
}

// GetRepoRoot implements the GitClient interface.
func (m *MockGitClient) GetRepoRoot(ctx context.Context, contextPath string) (string, error) {
	ret := m.Called(ctx, contextPath)
	root, _ := ret.Get(0).(string)
	return root, ret.Error(1)
}

// ListFileCommits implements the GitClient interface.
func (m *MockGitClient) ListFileCommits(ctx context.Context, repoPath string, path string, since, until time.Time) ([]CommitRef, error) {
	ret := m.Called(ctx, repoPath, path, since, until)
	commits, _ := ret.Get(0).([]CommitRef)
	return commits, ret.Error(1)
}

// ShowFileAtCommit implements the GitClient interface.
func (m *MockGitClient) ShowFileAtCommit(ctx context.Context, repoPath string, hash string, path string) ([]byte, error) {
	ret := m.Called(ctx, repoPath, hash, path)
	content, _ := ret.Get(0).([]byte)
	return content, ret.Error(1)
}
