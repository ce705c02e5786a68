package contract

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// LocalGitClient implements the GitClient interface by executing the
// local 'git' binary installed on the machine.
type LocalGitClient struct{}

var _ GitClient = &LocalGitClient{} // Compile-time check

// NewLocalGitClient creates a new instance of the local Git client.
func NewLocalGitClient() *LocalGitClient {
	return &LocalGitClient{}
}

// Run executes a git command and returns its stdout output.
func (c *LocalGitClient) Run(ctx context.Context, repoPath string, args ...string) ([]byte, error) {
	fullArgs := append([]string{"-C", repoPath}, args...)
	cmd := exec.CommandContext(ctx, "git", fullArgs...)
	out, err := cmd.Output()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok && exitErr.Stderr != nil {
			errMsg := strings.TrimSpace(string(exitErr.Stderr))
			return nil, fmt.Errorf("git command '%s' failed: %s: %w", strings.Join(fullArgs, " "), errMsg, err)
		}
		return nil, fmt.Errorf("could not execute git command (is git installed and in PATH?): %w", err)
	}
	return out, nil
}

// GetRepoRoot implements the GitClient interface by executing 'git rev-parse --show-toplevel'.
func (c *LocalGitClient) GetRepoRoot(ctx context.Context, contextPath string) (string, error) {
	out, err := c.Run(ctx, contextPath, "rev-parse", "--show-toplevel")
	if err != nil {
		return "", fmt.Errorf("failed to find git repository root from '%s': %w", contextPath, err)
	}
	return strings.TrimSpace(string(out)), nil
}

// ListFileCommits implements the GitClient interface. It lists commits that
// modified the given file in oldest-first order, one "hash|ISO8601" per line.
func (c *LocalGitClient) ListFileCommits(ctx context.Context, repoPath string, path string, since, until time.Time) ([]CommitRef, error) {
	args := []string{
		"log",
		"--reverse",
		"--format=%H|%cI",
	}
	if !since.IsZero() {
		args = append(args, fmt.Sprintf("--since=%s", since.Format(DateTimeFormat)))
	}
	if !until.IsZero() {
		args = append(args, fmt.Sprintf("--until=%s", until.Format(DateTimeFormat)))
	}
	args = append(args, "--", path)

	out, err := c.Run(ctx, repoPath, args...)
	if err != nil {
		return nil, err
	}

	var commits []CommitRef
	for line := range strings.SplitSeq(strings.TrimSpace(string(out)), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		hash, iso, ok := strings.Cut(line, "|")
		if !ok {
			return nil, fmt.Errorf("unexpected git log line: %q", line)
		}
		t, err := time.Parse(time.RFC3339, iso)
		if err != nil {
			return nil, fmt.Errorf("failed to parse commit time %q: %w", iso, err)
		}
		commits = append(commits, CommitRef{Hash: hash, Time: t})
	}
	return commits, nil
}

// ShowFileAtCommit implements the GitClient interface.
func (c *LocalGitClient) ShowFileAtCommit(ctx context.Context, repoPath string, hash string, path string) ([]byte, error) {
	return c.Run(ctx, repoPath, "show", hash+":"+path)
}
