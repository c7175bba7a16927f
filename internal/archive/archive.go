// Package archive turns an uploaded project archive into the textual
// directory tree embedded in the generated document.
package archive

import (
	"archive/tar"
	"archive/zip"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/estevam5s/docgen/internal/tree"
)

// ErrUnsupportedFormat is returned for archives that are neither zip
// nor gzip-compressed tar
var ErrUnsupportedFormat = errors.New("unsupported archive format: use .zip or .tar.gz")

// Allowed reports whether the filename carries a supported archive
// extension
func Allowed(filename string) bool {
	name := strings.ToLower(filename)
	return strings.HasSuffix(name, ".zip") ||
		strings.HasSuffix(name, ".tar.gz") ||
		strings.HasSuffix(name, ".tgz")
}

// Analyze extracts the archive into a temporary directory, renders the
// directory tree and cleans up. The extraction directory is named
// after the archive so the tree root carries the project name.
func Analyze(archivePath string) (string, error) {
	tempDir, err := os.MkdirTemp("", "docgen-extract-")
	if err != nil {
		return "", fmt.Errorf("failed to create extraction dir: %w", err)
	}
	defer func() {
		if err := os.RemoveAll(tempDir); err != nil {
			slog.Warn("failed to remove extraction dir", "dir", tempDir, "error", err)
		}
	}()

	extractDir := filepath.Join(tempDir, stem(archivePath))
	if err := os.MkdirAll(extractDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create extraction dir: %w", err)
	}

	if err := Extract(archivePath, extractDir); err != nil {
		return "", err
	}

	return tree.Render(extractDir), nil
}

// Extract unpacks the archive at path into dest, selecting the format
// by file extension
func Extract(path, dest string) error {
	name := strings.ToLower(path)
	switch {
	case strings.HasSuffix(name, ".zip"):
		return extractZip(path, dest)
	case strings.HasSuffix(name, ".tar.gz"), strings.HasSuffix(name, ".tgz"):
		return extractTarGz(path, dest)
	}
	return ErrUnsupportedFormat
}

// stem strips the archive extension from the base filename
func stem(path string) string {
	base := filepath.Base(path)
	lower := strings.ToLower(base)
	switch {
	case strings.HasSuffix(lower, ".tar.gz"):
		return base[:len(base)-len(".tar.gz")]
	case strings.HasSuffix(lower, ".tgz"):
		return base[:len(base)-len(".tgz")]
	case strings.HasSuffix(lower, ".zip"):
		return base[:len(base)-len(".zip")]
	}
	return base
}

// securePath resolves an archive member name inside dest, rejecting
// traversal outside of it
func securePath(dest, name string) (string, error) {
	target := filepath.Join(dest, name)
	if target != filepath.Clean(dest) && !strings.HasPrefix(target, filepath.Clean(dest)+string(os.PathSeparator)) {
		return "", fmt.Errorf("archive entry escapes extraction dir: %s", name)
	}
	return target, nil
}

func extractZip(path, dest string) error {
	reader, err := zip.OpenReader(path)
	if err != nil {
		return fmt.Errorf("failed to open zip archive: %w", err)
	}
	defer reader.Close()

	for _, file := range reader.File {
		target, err := securePath(dest, file.Name)
		if err != nil {
			return err
		}

		if file.FileInfo().IsDir() {
			if err := os.MkdirAll(target, 0o755); err != nil {
				return fmt.Errorf("failed to create directory: %w", err)
			}
			continue
		}

		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}

		if err := writeZipEntry(file, target); err != nil {
			return err
		}
	}

	return nil
}

func writeZipEntry(file *zip.File, target string) error {
	src, err := file.Open()
	if err != nil {
		return fmt.Errorf("failed to open zip entry %s: %w", file.Name, err)
	}
	defer src.Close()

	dst, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, file.Mode())
	if err != nil {
		return fmt.Errorf("failed to create file %s: %w", target, err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return fmt.Errorf("failed to extract %s: %w", file.Name, err)
	}
	return nil
}

func extractTarGz(path, dest string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open archive: %w", err)
	}
	defer f.Close()

	gz, err := gzip.NewReader(f)
	if err != nil {
		return fmt.Errorf("failed to read gzip stream: %w", err)
	}
	defer gz.Close()

	tr := tar.NewReader(gz)
	for {
		header, err := tr.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read tar stream: %w", err)
		}

		target, err := securePath(dest, header.Name)
		if err != nil {
			return err
		}

		switch header.Typeflag {
		case tar.TypeDir:
			if err := os.MkdirAll(target, 0o755); err != nil {
				return fmt.Errorf("failed to create directory: %w", err)
			}
		case tar.TypeReg:
			if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
				return fmt.Errorf("failed to create directory: %w", err)
			}
			if err := writeTarEntry(tr, header, target); err != nil {
				return err
			}
		default:
			// symlinks and special files are skipped
		}
	}
}

func writeTarEntry(tr *tar.Reader, header *tar.Header, target string) error {
	dst, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, os.FileMode(header.Mode))
	if err != nil {
		return fmt.Errorf("failed to create file %s: %w", target, err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, tr); err != nil {
		return fmt.Errorf("failed to extract %s: %w", header.Name, err)
	}
	return nil
}
