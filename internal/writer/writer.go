// Package writer persists generated project files under a base directory.
package writer

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/codesmith-ai/codesmith/internal/filesystem"
	"github.com/codesmith-ai/codesmith/internal/models"
)

// Writer writes generated files below a fixed base directory
//
// Writers targeting distinct directories are independent. Two writers sharing
// a base directory race with last-writer-wins semantics; coordinating that is
// the caller's job.
type Writer struct {
	fs       filesystem.FileSystem
	basePath string
	progress io.Writer
}

// New creates a Writer and ensures the base directory exists
// progress may be nil for stdout
func New(fsys filesystem.FileSystem, basePath string, progress io.Writer) (*Writer, error) {
	if progress == nil {
		progress = os.Stdout
	}
	if err := fsys.MkdirAll(basePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create project directory %s: %w", basePath, err)
	}
	return &Writer{
		fs:       fsys,
		basePath: basePath,
		progress: progress,
	}, nil
}

// WriteFile writes one file below the base directory, creating parent
// directories as needed. Existing files are overwritten without backup.
func (w *Writer) WriteFile(relativePath, content string) error {
	fullPath := filepath.Join(w.basePath, relativePath)

	if dir := filepath.Dir(fullPath); dir != "." {
		if err := w.fs.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	if err := w.fs.WriteFile(fullPath, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", relativePath, err)
	}

	fmt.Fprintf(w.progress, "✅ File written to: %s\n", fullPath)
	return nil
}

// WriteAll writes every generated file in order
// The first failure stops the run and leaves earlier files in place
func (w *Writer) WriteAll(files []models.FileResult) error {
	for _, file := range files {
		if err := w.WriteFile(file.Path, file.Content); err != nil {
			return err
		}
	}
	return nil
}

// Clear removes everything below the base directory, keeping the directory itself
func (w *Writer) Clear() error {
	if !w.fs.Exists(w.basePath) {
		fmt.Fprintln(w.progress, "⚠️ Project path does not exist.")
		return nil
	}

	entries, err := w.fs.ReadDir(w.basePath)
	if err != nil {
		return fmt.Errorf("failed to read project directory: %w", err)
	}

	for _, entry := range entries {
		child := filepath.Join(w.basePath, entry.Name())
		if err := w.fs.RemoveAll(child); err != nil {
			return fmt.Errorf("failed to remove %s: %w", child, err)
		}
	}

	fmt.Fprintf(w.progress, "🧹 Cleared: %s\n", w.basePath)
	return nil
}

// Path returns the base directory the writer targets
func (w *Writer) Path() string {
	return w.basePath
}
