// Package tree renders a directory as a box-drawing text diagram, the
// kind embedded in README "project structure" sections.
package tree

import (
	"os"
	"path/filepath"
	"strings"
)

// DefaultIgnores lists entries excluded from rendering: version
// control, IDE metadata, dependency caches, virtualenvs and compiled
// artifacts. A leading "*" marks a suffix rule.
var DefaultIgnores = []string{
	"__pycache__",
	".git",
	".idea",
	".vscode",
	"node_modules",
	".DS_Store",
	"*.pyc",
	"*.pyo",
	"*.pyd",
	".pytest_cache",
	".coverage",
	"venv",
	"env",
	".env",
}

// Renderer walks a directory tree and produces its textual diagram
type Renderer struct {
	ignores []string
}

// NewRenderer creates a renderer with the given ignore patterns. An
// empty pattern list falls back to DefaultIgnores.
func NewRenderer(ignores []string) *Renderer {
	if len(ignores) == 0 {
		ignores = DefaultIgnores
	}
	return &Renderer{ignores: ignores}
}

// Render walks the directory rooted at path depth-first and returns
// the newline-joined diagram. The walk only reads; it never follows
// symlinks into recursion (links render as leaf entries). An ignored
// root yields an empty string.
func Render(path string) string {
	return NewRenderer(nil).Render(path)
}

// Render renders the tree for a single root using this renderer's
// ignore patterns
func (r *Renderer) Render(path string) string {
	return strings.Join(r.render(path, "", true), "\n")
}

func (r *Renderer) ignored(name string) bool {
	for _, pattern := range r.ignores {
		if suffix, ok := strings.CutPrefix(pattern, "*"); ok {
			if strings.HasSuffix(name, suffix) {
				return true
			}
		} else if pattern == name {
			return true
		}
	}
	return false
}

// render emits the lines for one directory. The prefix accumulates
// continuation segments from ancestors; isLast picks the connector
// glyph and the continuation style passed to children.
func (r *Renderer) render(dir, prefix string, isLast bool) []string {
	base := filepath.Base(dir)
	if r.ignored(base) {
		return nil
	}

	head, childPrefix := "├── ", prefix+"│   "
	if isLast {
		head, childPrefix = "└── ", prefix+"    "
	}

	lines := []string{prefix + head + base}

	entries, err := os.ReadDir(dir)
	if err != nil {
		// Unreadable directories degrade to their own name line
		return lines
	}

	// ReadDir returns entries sorted by name; filter before the
	// last-sibling flag is computed so connectors stay correct
	filtered := entries[:0]
	for _, entry := range entries {
		if !r.ignored(entry.Name()) {
			filtered = append(filtered, entry)
		}
	}

	for i, entry := range filtered {
		last := i == len(filtered)-1

		if entry.IsDir() {
			lines = append(lines, r.render(filepath.Join(dir, entry.Name()), childPrefix, last)...)
			continue
		}

		// File lines take the parent prefix plus one fixed indent
		// segment instead of the propagated connector prefix
		fileHead := "├── "
		if last {
			fileHead = "└── "
		}
		lines = append(lines, prefix+"    "+fileHead+entry.Name())
	}

	return lines
}
