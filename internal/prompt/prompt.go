// Package prompt assembles the instruction text sent to the generation
// backend.
package prompt

import (
	"bytes"
	"fmt"
	"text/template"
)

// Params carry everything the instruction text states about one file.
type Params struct {
	Path        string
	Description string
	MaxLines    int
	MaxTokens   int
	MinLines    int
	MinTokens   int
	Strict      bool
	Detailed    bool
}

const instructionTemplate = `You are a senior developer. Generate complete, production-ready code for:
- File: {{.Path}}
- Purpose: {{.Description}}
- Max {{.MaxLines}} lines / Max {{.MaxTokens}} tokens
- Do not include TODOs, placeholders, or stub functions.
{{- if .Strict}}
- Must be ≥ {{.MinLines}} lines and ≥ {{.MinTokens}} tokens.
{{- end}}
{{- if .Detailed}}
- Use the full available line and token budget.
- Add as much functionality, UI structure, helper functions, and refinements as possible.
- Include comments to explain logic where helpful.
- Think like an engineer delivering a top-tier production file.
- Add extras like accessibility, error handling, modularity, etc., where appropriate.
{{- end}}`

var instructionTmpl = template.Must(template.New("instruction").Parse(instructionTemplate))

// Build renders the system instruction for one file. The base directives
// always state path, purpose and budget; strict mode adds the minimum size
// requirement, detailed mode adds budget-maximization directives. The two
// flags are independent.
func Build(p Params) (string, error) {
	var buf bytes.Buffer
	if err := instructionTmpl.Execute(&buf, p); err != nil {
		return "", fmt.Errorf("failed to render instruction template: %w", err)
	}
	return buf.String(), nil
}

// UserMessage renders the user-role content for one file: the shared project
// prompt followed by the per-file ask.
func UserMessage(projectPrompt, description string) string {
	return fmt.Sprintf("%s\n\nCreate this file: %s", projectPrompt, description)
}
