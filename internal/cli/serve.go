package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/codesmith-ai/codesmith/internal/config"
	"github.com/codesmith-ai/codesmith/internal/filesystem"
	"github.com/codesmith-ai/codesmith/internal/generator"
	"github.com/codesmith-ai/codesmith/internal/git"
	"github.com/codesmith-ai/codesmith/internal/scaffold"
	"github.com/codesmith-ai/codesmith/internal/server"
	"github.com/codesmith-ai/codesmith/internal/tokenizer"
	"github.com/spf13/cobra"
)

// ServeCommand handles the serve command
type ServeCommand struct {
	fs        filesystem.FileSystem
	gitClient git.GitClient

	port int

	// Test seams, nil selects the production implementations.
	backend      generator.Backend
	counter      tokenizer.Counter
	newPublisher scaffold.PublisherFactory
}

// NewServeCommand creates a new serve command
func NewServeCommand(fs filesystem.FileSystem, gitClient git.GitClient) *cobra.Command {
	cmd := &ServeCommand{fs: fs, gitClient: gitClient}

	cobraCmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the codesmith HTTP API",
		Long:  `Expose project generation over HTTP with the same pipeline the interactive flow uses.`,
		RunE:  cmd.Run,
	}

	cobraCmd.Flags().IntVar(&cmd.port, "port", 0, "HTTP port (default: PORT env or 10000)")

	return cobraCmd
}

// Run executes the serve command
func (c *ServeCommand) Run(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "\n❌ Critical error: %v\n", err)
		return err
	}
	// Every request generates code, so the server refuses to start
	// without an API key.
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(out, "❌ Error: %v\n", err)
		return err
	}
	if err := cfg.EnsureProjectsRoot(c.fs, out); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "\n❌ Critical error: %v\n", err)
		return err
	}

	port := c.port
	if port == 0 {
		port = cfg.Port
	}

	svc, err := buildService(c.fs, c.gitClient, c.backend, c.counter, c.newPublisher, cfg, out)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "\n❌ Critical error: %v\n", err)
		return err
	}

	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt)
	defer stop()

	fmt.Fprintf(out, "🚀 codesmith API listening on :%d\n", port)

	return server.New(svc).Run(ctx, port)
}
