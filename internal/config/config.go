// Package config loads runtime configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/codesmith-ai/codesmith/internal/filesystem"
)

// DefaultPort is used when PORT is not set
const DefaultPort = 10000

// projectsDirName is appended to the working directory when
// CODESMITH_PROJECTS_ROOT is not set
const projectsDirName = "projects"

// ErrMissingAPIKey reports that no OpenAI credential was provided
var ErrMissingAPIKey = errors.New("Missing OPENAI_API_KEY in .env file")

// Config carries every runtime setting codesmith reads from the environment
type Config struct {
	APIKey       string
	ProjectsRoot string
	GitHubToken  string
	Port         int
}

// Load reads configuration from a .env file (when present) and the environment
func Load() (*Config, error) {
	// A missing .env file is fine, plain environment variables still apply
	_ = godotenv.Load()

	cfg := &Config{
		APIKey:       os.Getenv("OPENAI_API_KEY"),
		ProjectsRoot: os.Getenv("CODESMITH_PROJECTS_ROOT"),
		GitHubToken:  os.Getenv("GITHUB_TOKEN"),
		Port:         DefaultPort,
	}

	if cfg.ProjectsRoot == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve working directory: %w", err)
		}
		cfg.ProjectsRoot = filepath.Join(cwd, projectsDirName)
	}

	if port := os.Getenv("PORT"); port != "" {
		parsed, err := strconv.Atoi(port)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT value %q: %w", port, err)
		}
		cfg.Port = parsed
	}

	return cfg, nil
}

// Validate checks that generation can run at all
// The GitHub token stays optional, publishing is skipped without it
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return ErrMissingAPIKey
	}
	return nil
}

// EnsureProjectsRoot creates the projects directory on first run
// progress may be nil for stdout
func (c *Config) EnsureProjectsRoot(fsys filesystem.FileSystem, progress io.Writer) error {
	if progress == nil {
		progress = os.Stdout
	}
	if fsys.Exists(c.ProjectsRoot) {
		return nil
	}
	if err := fsys.MkdirAll(c.ProjectsRoot, 0755); err != nil {
		return fmt.Errorf("failed to create projects directory %s: %w", c.ProjectsRoot, err)
	}
	fmt.Fprintf(progress, "📁 Created projects directory at %s\n", c.ProjectsRoot)
	return nil
}
