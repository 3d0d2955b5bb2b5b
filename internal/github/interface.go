package github

import (
	"context"
)

// GitHubClient provides an abstraction over GitHub API operations
type GitHubClient interface {
	// Repository operations
	CreateRepository(ctx context.Context, req *CreateRepositoryRequest) (*Repository, error)
}

// CreateRepositoryRequest represents a request to create a repository
type CreateRepositoryRequest struct {
	Name        string
	Description string
	Private     bool
}

// Repository represents a GitHub repository
type Repository struct {
	Owner         string
	Name          string
	FullName      string
	URL           string
	CloneURL      string
	DefaultBranch string
	Private       bool
}
