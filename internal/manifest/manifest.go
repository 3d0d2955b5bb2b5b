// Package manifest decides which files a project gets. The layout starts from
// a fixed base and grows through declarative keyword rules matched against the
// user's free-text tech-stack and feature answers; adding support for a new
// stack means appending a Rule, not touching control flow.
package manifest

import (
	"strings"

	"github.com/codesmith-ai/codesmith/internal/models"
)

// Requirements are the free-text inputs that shape a project manifest.
type Requirements struct {
	Prompt    string
	Features  string
	TechStack string
}

// Rule adds entries when its keyword appears in the matched field. Matching
// is a case-insensitive substring check, so "FastAPI, SQLite" triggers the
// "fastapi" rule.
type Rule struct {
	Keyword string
	Entries []models.ManifestEntry
}

var baseEntries = []models.ManifestEntry{
	{Path: "main.py", Description: "Primary application entry point"},
	{Path: "requirements.txt", Description: "Project dependencies"},
	{Path: "config/__init__.py", Description: "Configuration package"},
	{Path: "config/settings.py", Description: "Main configuration file"},
	{Path: "tests/__init__.py", Description: "Test package"},
	{Path: "README.md", Description: "Project documentation"},
}

// stackRules match against the tech stack. The first match wins, so a stack
// answer naming several frameworks still yields a single app layout.
var stackRules = []Rule{
	{
		Keyword: "fastapi",
		Entries: []models.ManifestEntry{
			{Path: "app/main.py", Description: "FastAPI application"},
			{Path: "app/routers/api_v1.py", Description: "API version 1 router"},
			{Path: "app/models/__init__.py", Description: "Data models"},
			{Path: "app/schemas/__init__.py", Description: "Pydantic schemas"},
		},
	},
	{
		Keyword: "flask",
		Entries: []models.ManifestEntry{
			{Path: "app/__init__.py", Description: "Flask application factory"},
			{Path: "app/routes.py", Description: "Main routes"},
			{Path: "app/templates/base.html", Description: "Base template"},
			{Path: "app/static/css/main.css", Description: "Main stylesheet"},
		},
	},
}

// featureRules match against the features field. Every matching rule applies.
var featureRules = []Rule{
	{
		Keyword: "docker",
		Entries: []models.ManifestEntry{
			{Path: "Dockerfile", Description: "Production container definition"},
			{Path: "docker-compose.yml", Description: "Development environment"},
			{Path: ".dockerignore", Description: "Docker ignore rules"},
		},
	},
}

// Build assembles the ordered manifest for the given requirements: base
// entries first, then the winning stack rule, then every matching feature
// rule.
func Build(req Requirements) *models.Manifest {
	m := models.NewManifest()
	for _, entry := range baseEntries {
		m.Set(entry.Path, entry.Description)
	}

	stack := strings.ToLower(req.TechStack)
	for _, rule := range stackRules {
		if strings.Contains(stack, rule.Keyword) {
			for _, entry := range rule.Entries {
				m.Set(entry.Path, entry.Description)
			}
			break
		}
	}

	features := strings.ToLower(req.Features)
	for _, rule := range featureRules {
		if strings.Contains(features, rule.Keyword) {
			for _, entry := range rule.Entries {
				m.Set(entry.Path, entry.Description)
			}
		}
	}

	return m
}
