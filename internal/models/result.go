package models

import "strings"

// FileResult is the accepted content for one generated file together with its
// measured line and token counts.
type FileResult struct {
	Path    string `json:"path"`
	Content string `json:"content"`
	Lines   int    `json:"lines"`
	Tokens  int    `json:"tokens"`
}

// ProjectResult accumulates accepted files in manifest order. Truncated is set
// when generation stopped early because the aggregate line ceiling was
// exceeded; the files collected up to that point are still valid.
type ProjectResult struct {
	Files      []FileResult `json:"files"`
	TotalLines int          `json:"total_lines"`
	Truncated  bool         `json:"truncated"`
}

// Add appends a file result and updates the running line total.
func (r *ProjectResult) Add(f FileResult) {
	r.Files = append(r.Files, f)
	r.TotalLines += f.Lines
}

// Len returns the number of accepted files.
func (r *ProjectResult) Len() int {
	return len(r.Files)
}

// Paths returns the accepted file paths in generation order.
func (r *ProjectResult) Paths() []string {
	out := make([]string, len(r.Files))
	for i, f := range r.Files {
		out[i] = f.Path
	}
	return out
}

// Content returns the content generated for a path, if present.
func (r *ProjectResult) Content(path string) (string, bool) {
	for _, f := range r.Files {
		if f.Path == path {
			return f.Content, true
		}
	}
	return "", false
}

// CountLines counts newline-delimited segments: a trailing newline does not
// open a new segment, and the empty string has zero lines.
func CountLines(s string) int {
	if s == "" {
		return 0
	}
	n := strings.Count(s, "\n")
	if !strings.HasSuffix(s, "\n") {
		n++
	}
	return n
}
