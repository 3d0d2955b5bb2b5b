package cli

import (
	"bytes"
	"testing"

	"github.com/codesmith-ai/codesmith/internal/filesystem"
	"github.com/codesmith-ai/codesmith/internal/git"
	"github.com/codesmith-ai/codesmith/internal/scaffold"
	"github.com/stretchr/testify/require"
)

func TestRoot_RegistersSubcommands(t *testing.T) {
	rootCmd := NewRootCommand(filesystem.NewMockFileSystem(), git.NewMockGitClient())
	require.Equal(t, "codesmith", rootCmd.Use)
	require.Equal(t, scaffold.Version, rootCmd.Version)

	names := make([]string, 0, len(rootCmd.Commands()))
	for _, sub := range rootCmd.Commands() {
		names = append(names, sub.Name())
	}
	require.Contains(t, names, "generate")
	require.Contains(t, names, "serve")
}

func TestRoot_DefaultsToGenerate(t *testing.T) {
	setTestEnv(t)
	t.Setenv("OPENAI_API_KEY", "")

	var buf bytes.Buffer
	rootCmd := NewRootCommand(filesystem.NewMockFileSystem(), git.NewMockGitClient())
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs([]string{})

	err := rootCmd.Execute()
	require.Error(t, err)
	require.Contains(t, buf.String(), "❌ Error: Missing OPENAI_API_KEY in .env file")
}
