package cli

import (
	"fmt"
	"io"

	"github.com/codesmith-ai/codesmith/internal/config"
	"github.com/codesmith-ai/codesmith/internal/filesystem"
	"github.com/codesmith-ai/codesmith/internal/generator"
	"github.com/codesmith-ai/codesmith/internal/git"
	"github.com/codesmith-ai/codesmith/internal/github"
	"github.com/codesmith-ai/codesmith/internal/publish"
	"github.com/codesmith-ai/codesmith/internal/scaffold"
	"github.com/codesmith-ai/codesmith/internal/tokenizer"
	"github.com/spf13/cobra"
)

// NewRootCommand creates the root command
func NewRootCommand(fs filesystem.FileSystem, gitClient git.GitClient) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "codesmith",
		Short: "Generate complete project scaffolds from a plain-text description",
		Long: `codesmith turns a project description into a ready-to-run file tree.

It plans the files, generates each one through an LLM backend, writes the
result below the projects directory, and can push it to a fresh GitHub
repository.`,
		Version:       scaffold.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Default to `codesmith generate` when no subcommand is provided.
			return (&GenerateCommand{fs: fs, gitClient: gitClient}).Run(cmd, args)
		},
	}

	// Add subcommands
	rootCmd.AddCommand(NewGenerateCommand(fs, gitClient))
	rootCmd.AddCommand(NewServeCommand(fs, gitClient))

	return rootCmd
}

// Execute runs the root command
func Execute() error {
	fs := filesystem.NewOSFileSystem()
	gitClient := git.NewOSGitClient()

	rootCmd := NewRootCommand(fs, gitClient)

	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command failed: %w", err)
	}

	return nil
}

// buildService assembles the scaffold service behind both commands. Nil
// backend, counter, or publisher factory select the production
// implementations.
func buildService(fs filesystem.FileSystem, gitClient git.GitClient, backend generator.Backend, counter tokenizer.Counter, newPublisher scaffold.PublisherFactory, cfg *config.Config, out io.Writer) (*scaffold.Service, error) {
	if backend == nil {
		backend = generator.NewOpenAIBackend(cfg.APIKey)
	}

	if counter == nil {
		var err error
		counter, err = tokenizer.NewTiktoken()
		if err != nil {
			return nil, fmt.Errorf("failed to load tokenizer: %w", err)
		}
	}

	if newPublisher == nil {
		newPublisher = func(token string) scaffold.Publisher {
			return publish.New(github.NewClient(token), gitClient, token, out)
		}
	}

	return scaffold.NewService(fs, backend, counter, cfg, out, newPublisher), nil
}
