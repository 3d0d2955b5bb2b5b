package github

import (
	"context"
	"fmt"
	"sync"
)

// MockClient implements GitHubClient for testing
type MockClient struct {
	mu           sync.RWMutex
	repositories map[string]*Repository // key: "owner/repo"
	owner        string                 // login of the simulated authenticated user

	// Hooks for testing error scenarios
	CreateRepositoryError error
}

// NewMockClient creates a new MockClient
func NewMockClient() *MockClient {
	return &MockClient{
		repositories: make(map[string]*Repository),
		owner:        "octocat",
	}
}

// SetOwner sets the login of the simulated authenticated user
func (m *MockClient) SetOwner(owner string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.owner = owner
}

// AddRepository seeds an existing repository (for test setup)
func (m *MockClient) AddRepository(name string) *Repository {
	m.mu.Lock()
	defer m.mu.Unlock()

	repo := m.newRepository(name, false)
	m.repositories[repo.FullName] = repo
	return repo
}

func (m *MockClient) newRepository(name string, private bool) *Repository {
	fullName := m.owner + "/" + name
	return &Repository{
		Owner:         m.owner,
		Name:          name,
		FullName:      fullName,
		URL:           fmt.Sprintf("https://github.com/%s", fullName),
		CloneURL:      fmt.Sprintf("https://github.com/%s.git", fullName),
		DefaultBranch: "main",
		Private:       private,
	}
}

func (m *MockClient) CreateRepository(ctx context.Context, req *CreateRepositoryRequest) (*Repository, error) {
	if m.CreateRepositoryError != nil {
		return nil, m.CreateRepositoryError
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	fullName := m.owner + "/" + req.Name
	if existing, taken := m.repositories[fullName]; taken {
		return existing, ErrRepositoryExists
	}

	repo := m.newRepository(req.Name, req.Private)
	m.repositories[fullName] = repo
	return repo, nil
}

// Repositories returns all repositories (helper for testing)
func (m *MockClient) Repositories() map[string]*Repository {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make(map[string]*Repository)
	for k, v := range m.repositories {
		result[k] = v
	}
	return result
}

// Reset clears all data from the mock (helper for testing)
func (m *MockClient) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.repositories = make(map[string]*Repository)
	m.owner = "octocat"
	m.CreateRepositoryError = nil
}
