package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/codesmith-ai/codesmith/internal/config"
	"github.com/codesmith-ai/codesmith/internal/filesystem"
	"github.com/codesmith-ai/codesmith/internal/generator"
	"github.com/codesmith-ai/codesmith/internal/git"
	"github.com/codesmith-ai/codesmith/internal/scaffold"
	"github.com/codesmith-ai/codesmith/internal/tokenizer"
	"github.com/codesmith-ai/codesmith/internal/tui/generate"
	"github.com/spf13/cobra"
)

// errCancelled makes an interrupted run exit non-zero after its message
// has already been printed.
var errCancelled = errors.New("operation cancelled by user")

// GenerateCommand handles the generate command
type GenerateCommand struct {
	fs        filesystem.FileSystem
	gitClient git.GitClient

	strict   bool
	detailed bool
	name     string
	repo     string

	// Test seams, nil selects the production implementations.
	backend      generator.Backend
	counter      tokenizer.Counter
	newPublisher scaffold.PublisherFactory
	runFlow      func(defaultName string) (*generate.Result, error)
	openEditor   func(path string) bool
}

// NewGenerateCommand creates a new generate command
func NewGenerateCommand(fs filesystem.FileSystem, gitClient git.GitClient) *cobra.Command {
	cmd := &GenerateCommand{fs: fs, gitClient: gitClient}

	cobraCmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a project from an interactive description",
		Long:  `Describe a project, pick its features and tech stack, and let codesmith generate every file.`,
		RunE:  cmd.Run,
	}

	cobraCmd.Flags().BoolVar(&cmd.strict, "strict", false, "reject files that fail the acceptance checks")
	cobraCmd.Flags().BoolVar(&cmd.detailed, "detailed", false, "request production-grade implementations")
	cobraCmd.Flags().StringVar(&cmd.name, "name", "", "project folder name (default \"project_<timestamp>\")")
	cobraCmd.Flags().StringVar(&cmd.repo, "repo", "", "GitHub repository name for the upload (default: the project name)")

	return cobraCmd
}

// Run executes the generate command
func (c *GenerateCommand) Run(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "\n❌ Critical error: %v\n", err)
		return err
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(out, "❌ Error: %v\n", err)
		return err
	}
	if err := cfg.EnsureProjectsRoot(c.fs, out); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "\n❌ Critical error: %v\n", err)
		return err
	}

	fmt.Fprint(out, generate.RenderBanner())

	defaultName := c.name
	if defaultName == "" {
		defaultName = scaffold.DefaultProjectName(time.Now())
	}

	runFlow := c.runFlow
	if runFlow == nil {
		runFlow = generate.NewFlow().Run
	}

	result, err := runFlow(defaultName)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "\n❌ Critical error: %v\n", err)
		return err
	}
	if result == nil {
		fmt.Fprintln(out, "\n🚑 Operation cancelled by user")
		return errCancelled
	}

	repoName := c.repo
	if repoName == "" {
		repoName = result.ProjectName
	}

	req := scaffold.Request{
		Prompt:      result.Prompt,
		Features:    result.Features,
		TechStack:   result.TechStack,
		ProjectName: result.ProjectName,
		RepoName:    repoName,
		Strict:      c.strict,
		Detailed:    c.detailed,
	}

	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt)
	defer stop()

	svc, err := buildService(c.fs, c.gitClient, c.backend, c.counter, c.newPublisher, cfg, out)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "\n❌ Critical error: %v\n", err)
		return err
	}

	summary, err := svc.Generate(ctx, req)
	if err != nil {
		if ctx.Err() != nil {
			// Best-effort cleanup of the partial project.
			_ = c.fs.RemoveAll(filepath.Join(cfg.ProjectsRoot, req.ProjectName))
			fmt.Fprintln(out, "\n🚑 Operation cancelled by user")
			return errCancelled
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "\n❌ Critical error: %v\n", err)
		return err
	}

	openEditor := c.openEditor
	if openEditor == nil {
		openEditor = openInVSCode
	}
	if openEditor(summary.ProjectPath) {
		fmt.Fprintln(out, "✔ Opened project in VSCode")
	}

	fmt.Fprintln(out, generate.RenderSummary(summary))

	return nil
}

// openInVSCode launches VSCode on the project when the code binary is on
// PATH. The launch is fire-and-forget, a failure only suppresses the
// confirmation line.
func openInVSCode(path string) bool {
	if _, err := exec.LookPath("code"); err != nil {
		return false
	}
	return exec.Command("code", path).Start() == nil
}
