package git_test

import (
	"context"
	"errors"
	"testing"

	"github.com/codesmith-ai/codesmith/internal/git"
	"github.com/stretchr/testify/require"
)

func TestMockGitClient_PublishSequence(t *testing.T) {
	mock := git.NewMockGitClient()
	dir := "/projects/demo"

	require.NoError(t, mock.Init(dir))
	require.NoError(t, mock.AddAll(dir))
	require.NoError(t, mock.Commit(dir, "Initial commit"))
	require.NoError(t, mock.RenameBranch(dir, "main"))
	require.NoError(t, mock.AddRemote(dir, "origin", "https://github.com/user/demo.git"))
	require.NoError(t, mock.Push(dir, "origin", "main"))

	repo := mock.Repo(dir)
	require.NotNil(t, repo)
	require.Equal(t, []string{
		"init",
		"add .",
		"commit Initial commit",
		"branch -M main",
		"remote add origin",
		"push origin main",
	}, repo.Ops)
	require.Equal(t, "main", repo.Branch)
	require.Equal(t, []string{"Initial commit"}, repo.Commits)
	require.Equal(t, "https://github.com/user/demo.git", repo.Remotes["origin"])
	require.Equal(t, []string{"origin main"}, repo.Pushed)
}

func TestMockGitClient_CommitRequiresStagedChanges(t *testing.T) {
	mock := git.NewMockGitClient()
	dir := "/projects/demo"

	require.NoError(t, mock.Init(dir))

	err := mock.Commit(dir, "Initial commit")
	require.Error(t, err)
	require.Contains(t, err.Error(), "nothing to commit")

	// Staging clears the error, a second commit without staging fails again
	require.NoError(t, mock.AddAll(dir))
	require.NoError(t, mock.Commit(dir, "Initial commit"))
	require.Error(t, mock.Commit(dir, "again"))
}

func TestMockGitClient_OperationsRequireInit(t *testing.T) {
	mock := git.NewMockGitClient()
	dir := "/projects/demo"

	require.Error(t, mock.AddAll(dir))
	require.Error(t, mock.Commit(dir, "msg"))
	require.Error(t, mock.RenameBranch(dir, "main"))
	require.Error(t, mock.AddRemote(dir, "origin", "url"))
	require.Error(t, mock.Push(dir, "origin", "main"))
}

func TestMockGitClient_PushRequiresRemote(t *testing.T) {
	mock := git.NewMockGitClient()
	dir := "/projects/demo"

	require.NoError(t, mock.Init(dir))
	require.NoError(t, mock.AddAll(dir))
	require.NoError(t, mock.Commit(dir, "Initial commit"))

	err := mock.Push(dir, "origin", "main")
	require.Error(t, err)
	require.Contains(t, err.Error(), "origin")
}

func TestMockGitClient_ErrorHooks(t *testing.T) {
	mock := git.NewMockGitClient()
	dir := "/projects/demo"

	pushErr := errors.New("remote rejected")
	mock.PushError = pushErr

	require.NoError(t, mock.Init(dir))
	require.NoError(t, mock.AddAll(dir))
	require.NoError(t, mock.Commit(dir, "Initial commit"))
	require.NoError(t, mock.RenameBranch(dir, "main"))
	require.NoError(t, mock.AddRemote(dir, "origin", "url"))

	err := mock.Push(dir, "origin", "main")
	require.ErrorIs(t, err, pushErr)

	// The failed push is not recorded
	require.Empty(t, mock.Repo(dir).Pushed)
}

func TestMockGitClient_WithContextSharesState(t *testing.T) {
	mock := git.NewMockGitClient()
	dir := "/projects/demo"

	scoped := mock.WithContext(context.Background())
	require.NoError(t, scoped.Init(dir))
	require.NoError(t, scoped.AddAll(dir))
	require.NoError(t, scoped.Commit(dir, "Initial commit"))

	// Operations through the derived client are visible on the original
	repo := mock.Repo(dir)
	require.NotNil(t, repo)
	require.Equal(t, []string{"Initial commit"}, repo.Commits)
}
