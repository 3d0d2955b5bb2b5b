package preset

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSimple(t *testing.T) {
	p := Simple()
	require.Equal(t, "simple", p.Name)
	require.Equal(t, "Create a simple FastAPI app with a homepage.", p.Prompt)
	require.Equal(t, "Basic routing", p.Features)
	require.Equal(t, "FastAPI", p.TechStack)
	require.False(t, p.Strict)
	require.False(t, p.Detailed)
}

func TestAdvanced(t *testing.T) {
	p := Advanced()
	require.Equal(t, "advanced", p.Name)
	require.Contains(t, p.Prompt, "full FastAPI backend")
	require.Equal(t, "Authentication, Admin, Database, Testing, Docker", p.Features)
	require.Equal(t, "FastAPI, SQLAlchemy, SQLite, Docker, Pytest", p.TechStack)
	require.True(t, p.Strict)
	require.True(t, p.Detailed)
}

func TestExamples(t *testing.T) {
	ex := Examples()
	require.Len(t, ex, 3)

	require.Equal(t, "Create a FastAPI app with JWT authentication.", ex[0].Prompt)
	require.Equal(t, "FastAPI, SQLite", ex[0].TechStack)

	require.Equal(t, "Build a Flask app with contact form.", ex[1].Prompt)
	require.Equal(t, "Forms, Email", ex[1].Features)

	require.Equal(t, "Develop a Django CMS.", ex[2].Prompt)
	require.Equal(t, "Django, PostgreSQL", ex[2].TechStack)
}

func TestExamplesReturnsCopy(t *testing.T) {
	first := Examples()
	first[0].Prompt = "mutated"

	require.Equal(t, "Create a FastAPI app with JWT authentication.", Examples()[0].Prompt)
}
