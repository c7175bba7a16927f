package tree

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
}

func TestRenderSortsAndFiltersEntries(t *testing.T) {
	root := filepath.Join(t.TempDir(), "proj")
	writeFile(t, filepath.Join(root, "b.txt"))
	writeFile(t, filepath.Join(root, "a.txt"))
	writeFile(t, filepath.Join(root, ".git", "HEAD"))

	out := Render(root)

	assert.Equal(t, strings.Join([]string{
		"└── proj",
		"    ├── a.txt",
		"    └── b.txt",
	}, "\n"), out)
}

func TestRenderSuffixPatterns(t *testing.T) {
	root := filepath.Join(t.TempDir(), "src")
	writeFile(t, filepath.Join(root, "main.py"))
	writeFile(t, filepath.Join(root, "main.pyc"))
	writeFile(t, filepath.Join(root, "util.pyo"))

	out := Render(root)

	assert.NotContains(t, out, "main.pyc")
	assert.NotContains(t, out, "util.pyo")
	assert.Contains(t, out, "main.py")
}

func TestRenderNestedDirectories(t *testing.T) {
	root := filepath.Join(t.TempDir(), "app")
	writeFile(t, filepath.Join(root, "cmd", "main.go"))
	writeFile(t, filepath.Join(root, "internal", "api", "server.go"))
	writeFile(t, filepath.Join(root, "go.mod"))

	out := Render(root)

	assert.Equal(t, strings.Join([]string{
		"└── app",
		"    ├── cmd",
		"        └── main.go",
		"    ├── go.mod",
		"    └── internal",
		"        └── api",
		"            └── server.go",
	}, "\n"), out)
}

func TestRenderIgnoredRoot(t *testing.T) {
	root := filepath.Join(t.TempDir(), "node_modules")
	writeFile(t, filepath.Join(root, "index.js"))

	assert.Equal(t, "", Render(root))
}

func TestRenderEmptyDirectory(t *testing.T) {
	root := filepath.Join(t.TempDir(), "empty")
	require.NoError(t, os.MkdirAll(root, 0o755))

	assert.Equal(t, "└── empty", Render(root))
}

func TestRenderMissingDirectoryDegradesToNameLine(t *testing.T) {
	assert.Equal(t, "└── missing", Render(filepath.Join(t.TempDir(), "missing")))
}

func TestRenderCustomIgnores(t *testing.T) {
	root := filepath.Join(t.TempDir(), "data")
	writeFile(t, filepath.Join(root, "keep.txt"))
	writeFile(t, filepath.Join(root, "drop.log"))

	out := NewRenderer([]string{"*.log"}).Render(root)

	assert.Contains(t, out, "keep.txt")
	assert.NotContains(t, out, "drop.log")
}
