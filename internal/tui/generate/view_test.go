package generate

import (
	"testing"

	"github.com/codesmith-ai/codesmith/internal/github"
	"github.com/codesmith-ai/codesmith/internal/scaffold"
	"github.com/stretchr/testify/require"
)

func TestRenderBanner(t *testing.T) {
	out := RenderBanner()

	require.Contains(t, out, "🚀 codesmith - Enterprise Code Generator")
	require.Contains(t, out, "scaffolds it file by file")
}

func TestRenderSummary_FastAPIRunHint(t *testing.T) {
	out := RenderSummary(&scaffold.Summary{
		ProjectName: "demo",
		ProjectPath: "/projects/demo",
		Files:       []string{"main.py", "requirements.txt"},
		TotalLines:  12,
		TechStack:   "FastAPI, SQLite",
	})

	require.Contains(t, out, "✅ Project generated successfully at:")
	require.Contains(t, out, "/projects/demo")
	require.Contains(t, out, "Generated 2 file(s), 12 lines total:")
	require.Contains(t, out, "1. main.py")
	require.Contains(t, out, "2. requirements.txt")
	require.Contains(t, out, "🚀 Recommended next steps:")
	require.Contains(t, out, "1. cd /projects/demo")
	require.Contains(t, out, "5. uvicorn app.main:app --reload")
	require.NotContains(t, out, "flask run")
}

func TestRenderSummary_FlaskRunHint(t *testing.T) {
	out := RenderSummary(&scaffold.Summary{
		ProjectPath: "/projects/demo",
		TechStack:   "Flask, SQLAlchemy",
	})

	require.Contains(t, out, "5. flask run")
	require.NotContains(t, out, "uvicorn")
}

func TestRenderSummary_UnknownStackOmitsRunHint(t *testing.T) {
	out := RenderSummary(&scaffold.Summary{
		ProjectPath: "/projects/demo",
		TechStack:   "Django, PostgreSQL",
	})

	require.Contains(t, out, "4. pip install -r requirements.txt")
	require.NotContains(t, out, "uvicorn")
	require.NotContains(t, out, "flask run")
}

func TestRenderSummary_RepositoryURL(t *testing.T) {
	out := RenderSummary(&scaffold.Summary{
		ProjectPath: "/projects/demo",
		Repository: &github.Repository{
			FullName: "octocat/demo",
			URL:      "https://github.com/octocat/demo",
		},
	})

	require.Contains(t, out, "💾 Repository URL:")
	require.Contains(t, out, "https://github.com/octocat/demo")
}

func TestRenderSummary_PublishWarning(t *testing.T) {
	out := RenderSummary(&scaffold.Summary{
		ProjectPath:  "/projects/demo",
		PublishError: "failed to push origin to main",
	})

	require.Contains(t, out, "⚠️ GitHub upload failed: failed to push origin to main")
	require.NotContains(t, out, "💾 Repository URL:")
}

func TestRenderSummary_TruncatedWarning(t *testing.T) {
	out := RenderSummary(&scaffold.Summary{
		ProjectPath: "/projects/demo",
		Truncated:   true,
	})

	require.Contains(t, out, "⚠️ Generation stopped early")
}
