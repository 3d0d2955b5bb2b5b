// Package scaffold orchestrates one full project generation run, from
// manifest building through file persistence and optional publishing.
package scaffold

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/codesmith-ai/codesmith/internal/config"
	"github.com/codesmith-ai/codesmith/internal/filesystem"
	"github.com/codesmith-ai/codesmith/internal/generator"
	"github.com/codesmith-ai/codesmith/internal/github"
	"github.com/codesmith-ai/codesmith/internal/manifest"
	"github.com/codesmith-ai/codesmith/internal/tokenizer"
	"github.com/codesmith-ai/codesmith/internal/writer"
)

// Version is the product version surfaced by the CLI and the API
const Version = "3.2.0"

// Publisher pushes a generated project to a remote repository
type Publisher interface {
	Publish(ctx context.Context, dir, repoName string) (*github.Repository, error)
}

// PublisherFactory builds a Publisher authenticated with the given token
type PublisherFactory func(token string) Publisher

// Request describes one project generation run
type Request struct {
	Prompt      string
	Features    string
	TechStack   string
	ProjectName string
	RepoName    string
	Token       string
	Strict      bool
	Detailed    bool
}

// Summary reports what a generation run produced
type Summary struct {
	ProjectName  string
	ProjectPath  string
	Files        []string
	TotalLines   int
	Truncated    bool
	TechStack    string
	Repository   *github.Repository
	PublishError string
}

// Service runs project generations against a fixed projects root
type Service struct {
	fs           filesystem.FileSystem
	backend      generator.Backend
	counter      tokenizer.Counter
	cfg          *config.Config
	out          io.Writer
	newPublisher PublisherFactory
}

// NewService creates a Service
// out may be nil for stdout; newPublisher may be nil to disable publishing
func NewService(fsys filesystem.FileSystem, backend generator.Backend, counter tokenizer.Counter, cfg *config.Config, out io.Writer, newPublisher PublisherFactory) *Service {
	if out == nil {
		out = os.Stdout
	}
	return &Service{
		fs:           fsys,
		backend:      backend,
		counter:      counter,
		cfg:          cfg,
		out:          out,
		newPublisher: newPublisher,
	}
}

// Generate builds the manifest, generates every file, writes the project
// below the projects root, and optionally publishes it.
//
// Publishing runs only when the request names a repository and a token is
// available (request token first, config token as fallback). A publish
// failure is recorded on the summary and never fails the run, local files
// stay written.
func (s *Service) Generate(ctx context.Context, req Request) (*Summary, error) {
	if req.ProjectName == "" {
		return nil, errors.New("project name must not be empty")
	}

	projectPath := filepath.Join(s.cfg.ProjectsRoot, req.ProjectName)

	fileWriter, err := writer.New(s.fs, projectPath, s.out)
	if err != nil {
		return nil, err
	}

	files := manifest.Build(manifest.Requirements{
		Prompt:    req.Prompt,
		Features:  req.Features,
		TechStack: req.TechStack,
	})

	fmt.Fprintf(s.out, "\n⚙️ Generating %d files...\n", files.Len())

	gen := generator.New(s.backend, s.counter, generator.Options{
		Strict:   req.Strict,
		Detailed: req.Detailed,
		Progress: s.out,
	})

	result, err := gen.GenerateProject(ctx, req.Prompt, files)
	if err != nil {
		return nil, err
	}

	if err := fileWriter.WriteAll(result.Files); err != nil {
		return nil, err
	}

	summary := &Summary{
		ProjectName: req.ProjectName,
		ProjectPath: projectPath,
		Files:       result.Paths(),
		TotalLines:  result.TotalLines,
		Truncated:   result.Truncated,
		TechStack:   req.TechStack,
	}

	if req.RepoName == "" || s.newPublisher == nil {
		return summary, nil
	}

	divider := strings.Repeat("=", 60)
	fmt.Fprintf(s.out, "\n%s\n🛠️  Post-Generation Actions\n%s\n", divider, divider)

	token := req.Token
	if token == "" {
		token = s.cfg.GitHubToken
	}
	if token == "" {
		fmt.Fprintln(s.out, "⚠️ Missing GITHUB_TOKEN in .env file. Skipping GitHub upload.")
		return summary, nil
	}

	repo, err := s.newPublisher(token).Publish(ctx, projectPath, req.RepoName)
	if repo != nil {
		summary.Repository = repo
	}
	if err != nil {
		summary.PublishError = err.Error()
		fmt.Fprintf(s.out, "⚠️ GitHub upload failed: %v\n", err)
	}

	return summary, nil
}

// DefaultProjectName builds the timestamped fallback name for a run
func DefaultProjectName(now time.Time) string {
	return "project_" + now.Format("20060102_1504")
}

// PresetProjectName builds the timestamped name for a preset run
func PresetProjectName(preset string, now time.Time) string {
	return "project_" + preset + "_" + now.Format("20060102_1504")
}
