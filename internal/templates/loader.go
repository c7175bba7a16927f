// Package templates holds the editor's section/field catalog: which
// sections a project type offers and which fields each section asks
// for. A built-in catalog covers every type; YAML files can override
// or extend it per deployment.
package templates

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/estevam5s/docgen/internal/models"
)

// Loader manages the section catalog and its per-type overlays
type Loader struct {
	mu       sync.RWMutex
	base     []models.SectionSchema
	overlays map[models.ProjectType][]models.SectionSchema
}

// NewLoader creates a loader seeded with the built-in catalog
func NewLoader() *Loader {
	return &Loader{
		base:     baseCatalog(),
		overlays: typeOverlays(),
	}
}

// LoadFromDir loads all YAML catalog files from a directory and its
// immediate subdirectories
func (l *Loader) LoadFromDir(dir string) error {
	slog.Info("loading catalog overrides from directory", "dir", dir)

	patterns := []string{"*.yaml", "*.yml"}
	var files []string

	for _, pattern := range patterns {
		matches, err := filepath.Glob(filepath.Join(dir, pattern))
		if err != nil {
			continue
		}
		files = append(files, matches...)

		subMatches, err := filepath.Glob(filepath.Join(dir, "*", pattern))
		if err != nil {
			continue
		}
		files = append(files, subMatches...)
	}

	loaded := 0
	for _, file := range files {
		if err := l.LoadFromFile(file); err != nil {
			slog.Warn("failed to load catalog file", "file", file, "error", err)
			continue
		}
		loaded++
	}

	slog.Info("catalog overrides loaded", "count", loaded, "total_files", len(files))
	return nil
}

// LoadFromFile loads one YAML catalog file. An empty project type
// applies the sections to the shared base catalog.
func (l *Loader) LoadFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("failed to parse YAML: %w", err)
	}

	projectType := models.ProjectType(file.Type)
	if file.Type != "" && !projectType.IsValid() {
		return fmt.Errorf("unknown project type: %s", file.Type)
	}

	for _, section := range file.Sections {
		if section.ID == "" {
			return fmt.Errorf("section id is required")
		}
		if section.Title == "" {
			return fmt.Errorf("section title is required (section %s)", section.ID)
		}
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if file.Type == "" {
		l.base = mergeSections(l.base, file.Sections)
	} else {
		l.overlays[projectType] = mergeSections(l.overlays[projectType], file.Sections)
	}

	slog.Info("catalog file loaded", "file", filepath.Base(path), "type", file.Type, "sections", len(file.Sections))
	return nil
}

// ForType returns the ordered, merged section catalog for a project
// type: the base sections with the type's overlay applied. Overlay
// sections replace base sections of the same id in place; new ones
// are appended.
func (l *Loader) ForType(t models.ProjectType) []models.SectionSchema {
	l.mu.RLock()
	defer l.mu.RUnlock()

	merged := make([]models.SectionSchema, len(l.base))
	copy(merged, l.base)
	return mergeSections(merged, l.overlays[t])
}

// SectionIDs returns the catalog's section ids for a type, in order
func (l *Loader) SectionIDs(t models.ProjectType) []string {
	sections := l.ForType(t)
	ids := make([]string, 0, len(sections))
	for _, s := range sections {
		ids = append(ids, s.ID)
	}
	return ids
}

// Has reports whether the catalog for a type contains a section id
func (l *Loader) Has(t models.ProjectType, sectionID string) bool {
	for _, s := range l.ForType(t) {
		if s.ID == sectionID {
			return true
		}
	}
	return false
}

func mergeSections(base, overlay []models.SectionSchema) []models.SectionSchema {
	merged := base
	for _, section := range overlay {
		replaced := false
		for i, existing := range merged {
			if existing.ID == section.ID {
				merged[i] = section
				replaced = true
				break
			}
		}
		if !replaced {
			merged = append(merged, section)
		}
	}
	return merged
}

// catalogFile is the YAML shape of a catalog override file
type catalogFile struct {
	Type     string                 `yaml:"type"`
	Sections []models.SectionSchema `yaml:"sections"`
}
