package writer_test

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/codesmith-ai/codesmith/internal/filesystem"
	"github.com/codesmith-ai/codesmith/internal/models"
	"github.com/codesmith-ai/codesmith/internal/writer"
	"github.com/stretchr/testify/require"
)

func TestNew_CreatesBaseDirectory(t *testing.T) {
	mockFS := filesystem.NewMockFileSystem()

	w, err := writer.New(mockFS, "/projects/demo", io.Discard)
	require.NoError(t, err)
	require.True(t, mockFS.Exists("/projects/demo"))
	require.Equal(t, "/projects/demo", w.Path())
}

func TestWriteAll_CreatesParentsAndWritesInOrder(t *testing.T) {
	mockFS := filesystem.NewMockFileSystem()
	var out bytes.Buffer

	w, err := writer.New(mockFS, "/projects/demo", &out)
	require.NoError(t, err)

	files := []models.FileResult{
		{Path: "a/b.txt", Content: "X"},
		{Path: "c.txt", Content: "Y"},
	}
	require.NoError(t, w.WriteAll(files))

	content, err := mockFS.ReadFile("/projects/demo/a/b.txt")
	require.NoError(t, err)
	require.Equal(t, "X", string(content))

	content, err = mockFS.ReadFile("/projects/demo/c.txt")
	require.NoError(t, err)
	require.Equal(t, "Y", string(content))

	require.True(t, mockFS.Exists("/projects/demo/a"))
	require.Contains(t, out.String(), "✅ File written to: /projects/demo/a/b.txt")
	require.Contains(t, out.String(), "✅ File written to: /projects/demo/c.txt")
}

func TestWriteFile_OverwritesExisting(t *testing.T) {
	mockFS := filesystem.NewMockFileSystem()

	w, err := writer.New(mockFS, "/projects/demo", io.Discard)
	require.NoError(t, err)

	require.NoError(t, w.WriteFile("main.py", "print(1)"))
	require.NoError(t, w.WriteFile("main.py", "print(2)"))

	content, err := mockFS.ReadFile("/projects/demo/main.py")
	require.NoError(t, err)
	require.Equal(t, "print(2)", string(content))
}

func TestWriteAll_StopsAtFirstFailure(t *testing.T) {
	mockFS := filesystem.NewMockFileSystem()
	writeErr := errors.New("disk full")
	mockFS.WriteFileErrors["/projects/demo/c.txt"] = writeErr

	w, err := writer.New(mockFS, "/projects/demo", io.Discard)
	require.NoError(t, err)

	files := []models.FileResult{
		{Path: "a.txt", Content: "first"},
		{Path: "c.txt", Content: "second"},
		{Path: "d.txt", Content: "third"},
	}
	err = w.WriteAll(files)
	require.ErrorIs(t, err, writeErr)
	require.Contains(t, err.Error(), "c.txt")

	// Earlier files stay written, later ones were never attempted
	require.True(t, mockFS.Exists("/projects/demo/a.txt"))
	require.False(t, mockFS.Exists("/projects/demo/d.txt"))
}

func TestClear_RemovesChildrenKeepsBase(t *testing.T) {
	mockFS := filesystem.NewMockFileSystem()
	var out bytes.Buffer

	w, err := writer.New(mockFS, "/projects/demo", &out)
	require.NoError(t, err)

	require.NoError(t, w.WriteAll([]models.FileResult{
		{Path: "main.py", Content: "print(1)"},
		{Path: "config/settings.py", Content: "DEBUG = True"},
	}))

	require.NoError(t, w.Clear())

	require.True(t, mockFS.Exists("/projects/demo"))
	require.False(t, mockFS.Exists("/projects/demo/main.py"))
	require.False(t, mockFS.Exists("/projects/demo/config"))
	require.False(t, mockFS.Exists("/projects/demo/config/settings.py"))
	require.Contains(t, out.String(), "🧹 Cleared: /projects/demo")
}

func TestClear_MissingBaseIsNotAnError(t *testing.T) {
	mockFS := filesystem.NewMockFileSystem()
	var out bytes.Buffer

	w, err := writer.New(mockFS, "/projects/demo", &out)
	require.NoError(t, err)

	require.NoError(t, mockFS.RemoveAll("/projects/demo"))
	require.NoError(t, w.Clear())
	require.Contains(t, out.String(), "⚠️ Project path does not exist.")
}
