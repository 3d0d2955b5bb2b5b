// Package generator turns manifest entries into file contents by prompting a
// generation backend and enforcing acceptance criteria.
package generator

import "context"

// Request is one outbound generation call.
type Request struct {
	System      string
	User        string
	MaxTokens   int
	Temperature float32
	TopP        float32
}

// Backend produces text for a generation request. Implementations must honor
// context cancellation.
type Backend interface {
	Generate(ctx context.Context, req Request) (string, error)
}
