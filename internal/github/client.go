package github

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/go-github/v57/github"
	"golang.org/x/oauth2"
)

// Client implements GitHubClient using the real GitHub API
type Client struct {
	client *github.Client
}

// NewClient creates a new GitHub API client
func NewClient(token string) *Client {
	ctx := context.Background()
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	tc := oauth2.NewClient(ctx, ts)

	return &Client{
		client: github.NewClient(tc),
	}
}

// ErrRepositoryExists reports that creation hit a repository name that is
// already taken on the authenticated account
var ErrRepositoryExists = errors.New("repository already exists")

// CreateRepository creates a repository for the authenticated user
//
// When the name is already taken, the existing repository is resolved and
// returned together with ErrRepositoryExists so callers can decide whether
// to keep going with it.
func (c *Client) CreateRepository(ctx context.Context, req *CreateRepositoryRequest) (*Repository, error) {
	ghRepo := &github.Repository{
		Name:        &req.Name,
		Description: &req.Description,
		Private:     &req.Private,
	}

	repository, _, err := c.client.Repositories.Create(ctx, "", ghRepo)
	if err != nil {
		if isNameTakenError(err) {
			existing, lookupErr := c.lookupOwnRepository(ctx, req.Name)
			if lookupErr != nil {
				return nil, fmt.Errorf("repository %s already exists but could not be resolved: %w", req.Name, lookupErr)
			}
			return existing, ErrRepositoryExists
		}
		return nil, fmt.Errorf("failed to create repository: %w", err)
	}
	return convertRepository(repository), nil
}

// isNameTakenError reports whether err is the 422 GitHub returns for duplicate repository names
func isNameTakenError(err error) bool {
	var ghErr *github.ErrorResponse
	if !errors.As(err, &ghErr) {
		return false
	}
	if ghErr.Response == nil || ghErr.Response.StatusCode != http.StatusUnprocessableEntity {
		return false
	}
	for _, detail := range ghErr.Errors {
		if strings.Contains(detail.Message, "name already exists") {
			return true
		}
	}
	return false
}

// lookupOwnRepository resolves a repository owned by the authenticated user
func (c *Client) lookupOwnRepository(ctx context.Context, name string) (*Repository, error) {
	user, _, err := c.client.Users.Get(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("failed to get authenticated user: %w", err)
	}

	repository, _, err := c.client.Repositories.Get(ctx, user.GetLogin(), name)
	if err != nil {
		return nil, fmt.Errorf("failed to get repository: %w", err)
	}
	return convertRepository(repository), nil
}

func convertRepository(r *github.Repository) *Repository {
	return &Repository{
		Owner:         r.GetOwner().GetLogin(),
		Name:          r.GetName(),
		FullName:      r.GetFullName(),
		URL:           r.GetHTMLURL(),
		CloneURL:      r.GetCloneURL(),
		DefaultBranch: r.GetDefaultBranch(),
		Private:       r.GetPrivate(),
	}
}
