package git

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
)

// OSGitClient implements GitClient using real git commands
type OSGitClient struct {
	ctx context.Context
}

// NewOSGitClient creates a new OSGitClient
func NewOSGitClient() *OSGitClient {
	return &OSGitClient{
		ctx: context.Background(),
	}
}

// WithContext returns a new client with the given context
func (g *OSGitClient) WithContext(ctx context.Context) GitClient {
	return &OSGitClient{
		ctx: ctx,
	}
}

// Init initializes a new repository in dir
// Re-initializing an existing repository is not an error
func (g *OSGitClient) Init(dir string) error {
	cmd := exec.CommandContext(g.ctx, "git", "init")
	cmd.Dir = dir

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to initialize repository in %s: %w: %s", dir, err, stderr.String())
	}

	return nil
}

// AddAll stages every file under dir
func (g *OSGitClient) AddAll(dir string) error {
	cmd := exec.CommandContext(g.ctx, "git", "add", ".")
	cmd.Dir = dir

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to stage files: %w: %s", err, stderr.String())
	}

	return nil
}

// Commit records the staged changes with the given message
func (g *OSGitClient) Commit(dir, message string) error {
	cmd := exec.CommandContext(g.ctx, "git", "commit", "-m", message)
	cmd.Dir = dir

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to commit: %w: %s", err, stderr.String())
	}

	return nil
}

// RenameBranch forces the current branch to the given name
func (g *OSGitClient) RenameBranch(dir, name string) error {
	cmd := exec.CommandContext(g.ctx, "git", "branch", "-M", name)
	cmd.Dir = dir

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to rename branch to %s: %w: %s", name, err, stderr.String())
	}

	return nil
}

// AddRemote registers a remote under the given name
// The url is kept out of error messages since it may embed a token
func (g *OSGitClient) AddRemote(dir, name, url string) error {
	cmd := exec.CommandContext(g.ctx, "git", "remote", "add", name, url)
	cmd.Dir = dir

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to add remote %s: %w: %s", name, err, stderr.String())
	}

	return nil
}

// Push uploads the branch to the remote and sets it as upstream
func (g *OSGitClient) Push(dir, remote, branch string) error {
	cmd := exec.CommandContext(g.ctx, "git", "push", "-u", remote, branch)
	cmd.Dir = dir

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to push %s to %s: %w: %s", branch, remote, err, stderr.String())
	}

	return nil
}
