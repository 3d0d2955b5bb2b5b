// Package budget holds the sizing policy for generated projects: how a global
// line budget is split across files and which files must meet the larger
// presentation-layer minimums.
package budget

import "fmt"

const (
	// MaxProjectLines is the global line budget for one generated project.
	MaxProjectLines = 50000

	// MaxTokensPerFile caps the backend's output for a single file.
	MaxTokensPerFile = 32000

	// MaxFileLines caps any single file no matter how few files share the
	// project budget.
	MaxFileLines = 5000
)

// Limits are the per-file ceilings derived from a project's line budget.
type Limits struct {
	MaxTokens int
	MaxLines  int
}

// Calculate splits globalMaxLines evenly across fileCount files, capped at
// MaxFileLines per file. The token ceiling is constant. fileCount must be at
// least 1; callers guarantee a non-empty manifest.
func Calculate(globalMaxLines, fileCount int) (Limits, error) {
	if fileCount < 1 {
		return Limits{}, fmt.Errorf("file count must be at least 1, got %d", fileCount)
	}

	perFile := globalMaxLines / fileCount
	if perFile > MaxFileLines {
		perFile = MaxFileLines
	}

	return Limits{
		MaxTokens: MaxTokensPerFile,
		MaxLines:  perFile,
	}, nil
}
