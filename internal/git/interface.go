package git

import (
	"context"
)

// GitClient provides an abstraction over git operations for testability
//
// Every operation takes the repository directory explicitly, so publishing
// one project never depends on (or mutates) the process working directory.
type GitClient interface {
	// Repository lifecycle
	Init(dir string) error

	// Staging and committing
	AddAll(dir string) error
	Commit(dir, message string) error

	// Branch and remote operations
	RenameBranch(dir, name string) error
	AddRemote(dir, name, url string) error
	Push(dir, remote, branch string) error

	// Context support for network operations
	WithContext(ctx context.Context) GitClient
}
