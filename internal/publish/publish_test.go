package publish_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/codesmith-ai/codesmith/internal/git"
	"github.com/codesmith-ai/codesmith/internal/github"
	"github.com/codesmith-ai/codesmith/internal/publish"
	"github.com/stretchr/testify/require"
)

func TestPublish_RunsFullGitSequence(t *testing.T) {
	ghMock := github.NewMockClient()
	gitMock := git.NewMockGitClient()
	var out bytes.Buffer

	p := publish.New(ghMock, gitMock, "s3cret", &out)

	repo, err := p.Publish(context.Background(), "/projects/demo", "demo")
	require.NoError(t, err)
	require.Equal(t, "octocat/demo", repo.FullName)

	state := gitMock.Repo("/projects/demo")
	require.NotNil(t, state)
	require.Equal(t, []string{
		"init",
		"add .",
		"commit Initial commit",
		"branch -M main",
		"remote add origin",
		"push origin main",
	}, state.Ops)
	require.Equal(t, "main", state.Branch)
	require.Equal(t, []string{"Initial commit"}, state.Commits)
	require.Equal(t, "https://s3cret@github.com/octocat/demo.git", state.Remotes["origin"])
	require.Contains(t, out.String(), "✅ GitHub repository created successfully.")
}

func TestPublish_ExistingRepositoryIsReused(t *testing.T) {
	ghMock := github.NewMockClient()
	ghMock.AddRepository("demo")
	gitMock := git.NewMockGitClient()
	var out bytes.Buffer

	p := publish.New(ghMock, gitMock, "s3cret", &out)

	repo, err := p.Publish(context.Background(), "/projects/demo", "demo")
	require.NoError(t, err)
	require.Equal(t, "octocat/demo", repo.FullName)
	require.Contains(t, out.String(), "already exists")

	// The push still happens against the existing repository
	require.Equal(t, []string{"origin main"}, gitMock.Repo("/projects/demo").Pushed)
}

func TestPublish_CreateFailureIsFatal(t *testing.T) {
	ghMock := github.NewMockClient()
	ghMock.CreateRepositoryError = errors.New("api unavailable")
	gitMock := git.NewMockGitClient()

	p := publish.New(ghMock, gitMock, "s3cret", io.Discard)

	repo, err := p.Publish(context.Background(), "/projects/demo", "demo")
	require.Error(t, err)
	require.Nil(t, repo)

	// No git operation ran
	require.Nil(t, gitMock.Repo("/projects/demo"))
}

func TestPublish_PushFailureStillReturnsRepository(t *testing.T) {
	ghMock := github.NewMockClient()
	gitMock := git.NewMockGitClient()
	pushErr := errors.New("remote rejected")
	gitMock.PushError = pushErr

	p := publish.New(ghMock, gitMock, "s3cret", io.Discard)

	repo, err := p.Publish(context.Background(), "/projects/demo", "demo")
	require.ErrorIs(t, err, pushErr)
	require.NotNil(t, repo)
	require.Equal(t, "octocat/demo", repo.FullName)
}

func TestPublish_EmptyTokenUsesPlainCloneURL(t *testing.T) {
	ghMock := github.NewMockClient()
	gitMock := git.NewMockGitClient()

	p := publish.New(ghMock, gitMock, "", io.Discard)

	_, err := p.Publish(context.Background(), "/projects/demo", "demo")
	require.NoError(t, err)
	require.Equal(t, "https://github.com/octocat/demo.git", gitMock.Repo("/projects/demo").Remotes["origin"])
}
