// Package publish pushes a freshly generated project to a remote GitHub repository.
package publish

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"

	"github.com/codesmith-ai/codesmith/internal/git"
	"github.com/codesmith-ai/codesmith/internal/github"
)

// DefaultBranch is the branch every published project starts on
const DefaultBranch = "main"

// Publisher creates a GitHub repository and pushes a project directory into it
type Publisher struct {
	ghClient  github.GitHubClient
	gitClient git.GitClient
	token     string
	progress  io.Writer
}

// New creates a Publisher
// The token authenticates the push remote; progress may be nil for stdout
func New(ghClient github.GitHubClient, gitClient git.GitClient, token string, progress io.Writer) *Publisher {
	if progress == nil {
		progress = os.Stdout
	}
	return &Publisher{
		ghClient:  ghClient,
		gitClient: gitClient,
		token:     token,
		progress:  progress,
	}
}

// Publish creates the remote repository and pushes dir to it
//
// A repository name that is already taken is reused with a warning instead of
// failing. Any error is reported to the caller and never rolls back local
// files or an already-created remote repository.
func (p *Publisher) Publish(ctx context.Context, dir, repoName string) (*github.Repository, error) {
	fmt.Fprintf(p.progress, "📦 Creating GitHub repository %s...\n", repoName)

	repo, err := p.ghClient.CreateRepository(ctx, &github.CreateRepositoryRequest{
		Name: repoName,
	})
	if err != nil {
		if !errors.Is(err, github.ErrRepositoryExists) {
			return nil, err
		}
		fmt.Fprintf(p.progress, "⚠️ Repository %s already exists, pushing to it anyway.\n", repo.FullName)
	} else {
		fmt.Fprintln(p.progress, "✅ GitHub repository created successfully.")
	}

	fmt.Fprintln(p.progress, "🚀 Pushing project to GitHub...")

	gitClient := p.gitClient.WithContext(ctx)

	if err := gitClient.Init(dir); err != nil {
		return repo, err
	}
	if err := gitClient.AddAll(dir); err != nil {
		return repo, err
	}
	if err := gitClient.Commit(dir, "Initial commit"); err != nil {
		return repo, err
	}
	if err := gitClient.RenameBranch(dir, DefaultBranch); err != nil {
		return repo, err
	}
	if err := gitClient.AddRemote(dir, "origin", p.remoteURL(repo)); err != nil {
		return repo, err
	}
	if err := gitClient.Push(dir, "origin", DefaultBranch); err != nil {
		return repo, err
	}

	return repo, nil
}

// remoteURL builds the push URL for the repository
// The result embeds the access token and must never be logged
func (p *Publisher) remoteURL(repo *github.Repository) string {
	if p.token == "" {
		return repo.CloneURL
	}

	u, err := url.Parse(repo.CloneURL)
	if err != nil {
		return repo.CloneURL
	}
	u.User = url.User(p.token)
	return u.String()
}
