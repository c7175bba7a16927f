// Package markdown assembles the final README document from project
// data. Generation is deterministic and side-effect free: the same
// project snapshot always produces the same byte sequence.
package markdown

import (
	"strings"

	"github.com/estevam5s/docgen/internal/models"
)

// DefaultProjectName is used when the user never filled in a name
const DefaultProjectName = "Projeto"

const backToTop = "\n\n<p align=\"right\">(<a href=\"#top\">Voltar ao topo ⬆️</a>)</p>"

// Generate renders the complete Markdown document for a project.
// Sections are emitted in a fixed order; a section that has no content
// contributes nothing, so the document never contains a bare heading.
func Generate(p *models.Project) string {
	parts := []string{headerSection(p)}

	appendPart := func(part string) {
		if part != "" {
			parts = append(parts, part)
		}
	}

	appendPart(aboutSection(p.Section("about")))
	appendPart(tableOfContents(p))
	appendPart(technologiesSection(p.Section("technology")))
	appendPart(installationSection(p.Section("installation")))
	appendPart(usageSection(p.Section("usage")))
	appendPart(structureSection(p.Structure, p.Section("structure")))
	appendPart(apiSection(p.Section("api")))

	for _, part := range typeSections(p.Type, p) {
		appendPart(part)
	}

	appendPart(roadmapSection(p.Section("roadmap")))
	appendPart(contributingSection(p.Section("contributing")))
	appendPart(licenseSection(p.Section("license")))
	appendPart(contactSection(p.Section("contact")))
	appendPart(faqSection(p.Section("faq")))
	appendPart(acknowledgementsSection(p.Section("acknowledgements")))
	appendPart(teamSection(p.Section("team")))

	parts = append(parts, backToTop)

	return strings.Join(parts, "\n\n")
}

// tocEntry pairs a section id with its table-of-contents display title
type tocEntry struct {
	ID    string
	Title string
}

// tocEntries is the fixed allow-list of sections eligible for the
// table of contents, in render order. Data order never matters.
var tocEntries = []tocEntry{
	{"about", "Sobre o Projeto"},
	{"technology", "Tecnologias Utilizadas"},
	{"installation", "Instalação e Configuração"},
	{"usage", "Como Utilizar"},
	{"structure", "Estrutura do Projeto"},
	{"api", "API e Endpoints"},
	{"roadmap", "Roadmap"},
	{"contributing", "Contribuição"},
	{"license", "Licença"},
	{"contact", "Contato e Suporte"},
	{"faq", "FAQ"},
	{"team", "Equipe"},
	{"acknowledgements", "Agradecimentos"},
}

func tableOfContents(p *models.Project) string {
	toc := []string{"## 📑 Índice\n"}

	for _, entry := range tocEntries {
		if sec, ok := p.Sections[entry.ID]; ok && sec.HasContent() {
			toc = append(toc, "- [📍 "+entry.Title+"](#"+strings.ToLower(entry.ID)+")")
		}
	}

	if len(toc) == 1 {
		return ""
	}
	return strings.Join(toc, "\n")
}

// nonEmptyLines splits a block of text into trimmed, non-blank lines
func nonEmptyLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(strings.TrimSpace(text), "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	return lines
}
