package git

import (
	"context"
	"fmt"
	"sync"
)

// MockGitClient implements GitClient for testing with per-directory repo state
type MockGitClient struct {
	mu    sync.RWMutex
	repos map[string]*MockRepo // key: repo directory
	ctx   context.Context

	// Hooks for testing error scenarios
	InitError         error
	AddAllError       error
	CommitError       error
	RenameBranchError error
	AddRemoteError    error
	PushError         error
}

// MockRepo represents the state of one repository directory
type MockRepo struct {
	Staged  bool
	Commits []string
	Branch  string
	Remotes map[string]string // remote name -> url
	Pushed  []string          // "remote branch" entries
	Ops     []string          // chronological operation log
}

// NewMockGitClient creates a new MockGitClient
func NewMockGitClient() *MockGitClient {
	return &MockGitClient{
		repos: make(map[string]*MockRepo),
		ctx:   context.Background(),
	}
}

// WithContext returns a new client with the given context
// State maps are shared so assertions on the original mock see all operations
func (m *MockGitClient) WithContext(ctx context.Context) GitClient {
	m.mu.Lock()
	defer m.mu.Unlock()

	return &MockGitClient{
		repos: m.repos,
		ctx:   ctx,

		InitError:         m.InitError,
		AddAllError:       m.AddAllError,
		CommitError:       m.CommitError,
		RenameBranchError: m.RenameBranchError,
		AddRemoteError:    m.AddRemoteError,
		PushError:         m.PushError,
	}
}

func (m *MockGitClient) Init(dir string) error {
	if m.InitError != nil {
		return m.InitError
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	repo, exists := m.repos[dir]
	if !exists {
		repo = &MockRepo{
			Branch:  "master",
			Remotes: make(map[string]string),
		}
		m.repos[dir] = repo
	}
	repo.Ops = append(repo.Ops, "init")

	return nil
}

func (m *MockGitClient) AddAll(dir string) error {
	if m.AddAllError != nil {
		return m.AddAllError
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	repo, exists := m.repos[dir]
	if !exists {
		return fmt.Errorf("not a git repository: %s", dir)
	}

	repo.Staged = true
	repo.Ops = append(repo.Ops, "add .")

	return nil
}

func (m *MockGitClient) Commit(dir, message string) error {
	if m.CommitError != nil {
		return m.CommitError
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	repo, exists := m.repos[dir]
	if !exists {
		return fmt.Errorf("not a git repository: %s", dir)
	}
	if !repo.Staged {
		return fmt.Errorf("nothing to commit in %s", dir)
	}

	repo.Commits = append(repo.Commits, message)
	repo.Staged = false
	repo.Ops = append(repo.Ops, "commit "+message)

	return nil
}

func (m *MockGitClient) RenameBranch(dir, name string) error {
	if m.RenameBranchError != nil {
		return m.RenameBranchError
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	repo, exists := m.repos[dir]
	if !exists {
		return fmt.Errorf("not a git repository: %s", dir)
	}
	if len(repo.Commits) == 0 {
		return fmt.Errorf("cannot rename branch before first commit")
	}

	repo.Branch = name
	repo.Ops = append(repo.Ops, "branch -M "+name)

	return nil
}

func (m *MockGitClient) AddRemote(dir, name, url string) error {
	if m.AddRemoteError != nil {
		return m.AddRemoteError
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	repo, exists := m.repos[dir]
	if !exists {
		return fmt.Errorf("not a git repository: %s", dir)
	}
	if _, taken := repo.Remotes[name]; taken {
		return fmt.Errorf("remote %s already exists", name)
	}

	repo.Remotes[name] = url
	repo.Ops = append(repo.Ops, "remote add "+name)

	return nil
}

func (m *MockGitClient) Push(dir, remote, branch string) error {
	if m.PushError != nil {
		return m.PushError
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	repo, exists := m.repos[dir]
	if !exists {
		return fmt.Errorf("not a git repository: %s", dir)
	}
	if _, configured := repo.Remotes[remote]; !configured {
		return fmt.Errorf("remote %s not configured", remote)
	}

	repo.Pushed = append(repo.Pushed, remote+" "+branch)
	repo.Ops = append(repo.Ops, "push "+remote+" "+branch)

	return nil
}

// Repo returns the state tracked for a directory (helper for testing)
func (m *MockGitClient) Repo(dir string) *MockRepo {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.repos[dir]
}

// Reset clears all data from the mock (helper for testing)
func (m *MockGitClient) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.repos = make(map[string]*MockRepo)
	m.ctx = context.Background()

	m.InitError = nil
	m.AddAllError = nil
	m.CommitError = nil
	m.RenameBranchError = nil
	m.AddRemoteError = nil
	m.PushError = nil
}
