package generate

import (
	"fmt"
	"strings"

	"github.com/codesmith-ai/codesmith/internal/scaffold"
	"github.com/codesmith-ai/codesmith/internal/tui"
)

// RenderBanner renders the interactive header.
func RenderBanner() string {
	var b strings.Builder

	b.WriteString(tui.HeaderStyle.Render("🚀 codesmith - Enterprise Code Generator"))
	b.WriteString("\n")
	b.WriteString(tui.HelpStyle.Render("Describe a project and codesmith scaffolds it file by file."))
	b.WriteString("\n")

	return b.String()
}

// RenderSummary renders the closing block after a successful run.
func RenderSummary(summary *scaffold.Summary) string {
	var b strings.Builder

	b.WriteString(tui.SuccessStyle.Render("✅ Project generated successfully at:"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %s\n", tui.SelectedStyle.Render(summary.ProjectPath)))
	b.WriteString("\n")

	b.WriteString(fmt.Sprintf("Generated %d file(s), %d lines total:\n", len(summary.Files), summary.TotalLines))
	for i, file := range summary.Files {
		b.WriteString(tui.SubtleStyle.Render(fmt.Sprintf("  %d. %s", i+1, file)))
		b.WriteString("\n")
	}
	if summary.Truncated {
		b.WriteString(tui.ErrorStyle.Render("⚠️ Generation stopped early, the project hit the line limit."))
		b.WriteString("\n")
	}

	if summary.Repository != nil {
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("💾 Repository URL: %s\n", tui.SelectedStyle.Render(summary.Repository.URL)))
	}
	if summary.PublishError != "" {
		b.WriteString("\n")
		b.WriteString(tui.ErrorStyle.Render(fmt.Sprintf("⚠️ GitHub upload failed: %s", summary.PublishError)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(tui.TitleStyle.Render("🚀 Recommended next steps:"))
	b.WriteString("\n")
	for i, step := range nextSteps(summary) {
		b.WriteString(fmt.Sprintf("%d. %s\n", i+1, step))
	}

	return b.String()
}

// nextSteps keys the run hint on the requested tech stack.
func nextSteps(summary *scaffold.Summary) []string {
	steps := []string{
		fmt.Sprintf("cd %s", summary.ProjectPath),
		"python -m venv .venv",
		"source .venv/bin/activate",
		"pip install -r requirements.txt",
	}

	stack := strings.ToLower(summary.TechStack)
	switch {
	case strings.Contains(stack, "fastapi"):
		steps = append(steps, "uvicorn app.main:app --reload")
	case strings.Contains(stack, "flask"):
		steps = append(steps, "flask run")
	}

	return steps
}
