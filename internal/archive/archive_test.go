package archive

import (
	"archive/tar"
	"archive/zip"
	"compress/gzip"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeZipArchive(t *testing.T, path string, files map[string]string) {
	t.Helper()

	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	w := zip.NewWriter(f)
	for name, content := range files {
		entry, err := w.Create(name)
		require.NoError(t, err)
		_, err = entry.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
}

func writeTarGzArchive(t *testing.T, path string, files map[string]string) {
	t.Helper()

	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	gz := gzip.NewWriter(f)
	tw := tar.NewWriter(gz)
	for name, content := range files {
		require.NoError(t, tw.WriteHeader(&tar.Header{
			Name:     name,
			Typeflag: tar.TypeReg,
			Mode:     0o644,
			Size:     int64(len(content)),
		}))
		_, err = tw.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, tw.Close())
	require.NoError(t, gz.Close())
}

func TestAnalyzeZip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "myproject.zip")
	writeZipArchive(t, path, map[string]string{
		"README.md":   "hello",
		"src/main.go": "package main",
	})

	structure, err := Analyze(path)
	require.NoError(t, err)

	assert.Contains(t, structure, "└── myproject")
	assert.Contains(t, structure, "README.md")
	assert.Contains(t, structure, "src")
	assert.Contains(t, structure, "main.go")
}

func TestAnalyzeTarGz(t *testing.T) {
	path := filepath.Join(t.TempDir(), "service.tar.gz")
	writeTarGzArchive(t, path, map[string]string{
		"app.py":           "print('hi')",
		"docs/overview.md": "docs",
	})

	structure, err := Analyze(path)
	require.NoError(t, err)

	assert.Contains(t, structure, "└── service")
	assert.Contains(t, structure, "app.py")
	assert.Contains(t, structure, "overview.md")
}

func TestAnalyzeFiltersIgnoredEntries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "proj.zip")
	writeZipArchive(t, path, map[string]string{
		"main.py":           "x",
		".git/HEAD":         "ref",
		"cache/mod.pyc":     "bytecode",
		"node_modules/a.js": "x",
	})

	structure, err := Analyze(path)
	require.NoError(t, err)

	assert.Contains(t, structure, "main.py")
	assert.NotContains(t, structure, ".git")
	assert.NotContains(t, structure, "mod.pyc")
	assert.NotContains(t, structure, "node_modules")
}

func TestExtractUnsupportedFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "files.rar")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	err := Extract(path, t.TempDir())
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestExtractRejectsPathTraversal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "evil.zip")
	writeZipArchive(t, path, map[string]string{
		"../escape.txt": "nope",
	})

	err := Extract(path, filepath.Join(t.TempDir(), "out"))
	assert.Error(t, err)
}

func TestAllowed(t *testing.T) {
	assert.True(t, Allowed("project.zip"))
	assert.True(t, Allowed("project.tar.gz"))
	assert.True(t, Allowed("project.TGZ"))
	assert.False(t, Allowed("project.rar"))
	assert.False(t, Allowed("project"))
}
