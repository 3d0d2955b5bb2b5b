package generator

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/codesmith-ai/codesmith/internal/budget"
	"github.com/codesmith-ai/codesmith/internal/models"
	"github.com/codesmith-ai/codesmith/internal/prompt"
	"github.com/codesmith-ai/codesmith/internal/tokenizer"
)

const (
	// MaxAttempts bounds the per-file retry loop. Every file gets its own
	// attempt budget; attempts are never borrowed across files.
	MaxAttempts = 3

	// Temperature and TopP bias the backend toward deterministic, focused
	// output while keeping minor variation across retries.
	Temperature = 0.2
	TopP        = 0.9

	// SoftLineLimit stops project generation once the accepted line total
	// crosses it. A soft stop returns the partial result, not an error.
	SoftLineLimit = 45000
)

// RequirementError reports that a file's content was rejected on every
// attempt. Reasons collect one diagnostic per failed attempt.
type RequirementError struct {
	Path     string
	Attempts int
	Reasons  []string
}

// Error implements error.
func (e *RequirementError) Error() string {
	msg := fmt.Sprintf("%s failed to meet size requirements after %d attempts", e.Path, e.Attempts)
	if len(e.Reasons) > 0 {
		msg += ": " + strings.Join(e.Reasons, "; ")
	}
	return msg
}

// Options configure a Generator.
type Options struct {
	// Strict requires every file to meet its minimum line and token counts
	// before it is accepted.
	Strict bool

	// Detailed asks the backend to exhaust the size budget and add
	// production polish.
	Detailed bool

	// MaxProjectLines overrides the global line budget. Defaults to
	// budget.MaxProjectLines.
	MaxProjectLines int

	// Progress receives human-readable generation progress. Defaults to
	// os.Stdout.
	Progress io.Writer
}

// Generator runs the per-file generation loop and the project-level
// orchestration. It issues one backend request at a time.
type Generator struct {
	backend  Backend
	counter  tokenizer.Counter
	strict   bool
	detailed bool
	maxLines int
	progress io.Writer
}

// New creates a Generator over the given backend and token counter.
func New(backend Backend, counter tokenizer.Counter, opts Options) *Generator {
	maxLines := opts.MaxProjectLines
	if maxLines <= 0 {
		maxLines = budget.MaxProjectLines
	}
	progress := opts.Progress
	if progress == nil {
		progress = os.Stdout
	}
	return &Generator{
		backend:  backend,
		counter:  counter,
		strict:   opts.Strict,
		detailed: opts.Detailed,
		maxLines: maxLines,
		progress: progress,
	}
}

// GenerateFile produces the accepted content for a single file. Each of the
// up-to-three attempts rebuilds the instruction text from scratch; rejected
// attempts feed nothing back to the backend. In strict mode content below the
// file's minimums is rejected; otherwise the first response is accepted as-is.
// Backend errors consume an attempt just like rejections.
func (g *Generator) GenerateFile(ctx context.Context, projectPrompt, description, path string, totalFiles int) (models.FileResult, error) {
	limits, err := budget.Calculate(g.maxLines, totalFiles)
	if err != nil {
		return models.FileResult{}, err
	}
	minimums := budget.MinimumsFor(path)

	var reasons []string
	for attempt := 1; attempt <= MaxAttempts; attempt++ {
		instruction, err := prompt.Build(prompt.Params{
			Path:        path,
			Description: description,
			MaxLines:    limits.MaxLines,
			MaxTokens:   limits.MaxTokens,
			MinLines:    minimums.Lines,
			MinTokens:   minimums.Tokens,
			Strict:      g.strict,
			Detailed:    g.detailed,
		})
		if err != nil {
			return models.FileResult{}, err
		}

		content, err := g.backend.Generate(ctx, Request{
			System:      instruction,
			User:        prompt.UserMessage(projectPrompt, description),
			MaxTokens:   limits.MaxTokens,
			Temperature: Temperature,
			TopP:        TopP,
		})
		if err != nil {
			if ctx.Err() != nil {
				return models.FileResult{}, ctx.Err()
			}
			reasons = append(reasons, fmt.Sprintf("attempt %d: backend error: %v", attempt, err))
			fmt.Fprintf(g.progress, "⚠️ Attempt %d: %s backend error (%v)... retrying.\n", attempt, path, err)
			continue
		}

		lines := models.CountLines(content)
		tokens := g.counter.Count(content)

		if g.strict && (lines < minimums.Lines || tokens < minimums.Tokens) {
			reasons = append(reasons, fmt.Sprintf("attempt %d: too short (%d lines, %d tokens)", attempt, lines, tokens))
			fmt.Fprintf(g.progress, "⚠️ Attempt %d: %s too short (%d lines, %d tokens)... retrying.\n", attempt, path, lines, tokens)
			continue
		}

		fmt.Fprintf(g.progress, "📊 Generated %d lines (%d tokens) for %s\n", lines, tokens, path)
		return models.FileResult{Path: path, Content: content, Lines: lines, Tokens: tokens}, nil
	}

	return models.FileResult{}, &RequirementError{Path: path, Attempts: MaxAttempts, Reasons: reasons}
}

// GenerateProject runs GenerateFile for every manifest entry in order. Once
// the accepted line total crosses SoftLineLimit the remaining entries are
// skipped and the partial result is returned with Truncated set. Any
// per-file failure aborts the whole project.
func (g *Generator) GenerateProject(ctx context.Context, projectPrompt string, manifest *models.Manifest) (*models.ProjectResult, error) {
	if manifest.Len() == 0 {
		return nil, fmt.Errorf("manifest has no entries")
	}

	result := &models.ProjectResult{}
	totalFiles := manifest.Len()

	for _, entry := range manifest.Entries() {
		file, err := g.GenerateFile(ctx, projectPrompt, entry.Description, entry.Path, totalFiles)
		if err != nil {
			return nil, err
		}
		result.Add(file)

		if result.TotalLines > SoftLineLimit {
			result.Truncated = true
			fmt.Fprintln(g.progress, "⚠️ Approaching 50K line limit - stopping generation")
			break
		}
	}

	return result, nil
}
