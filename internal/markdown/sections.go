package markdown

import (
	"strings"

	"github.com/estevam5s/docgen/internal/models"
)

// Marker values coming from the editor's select/radio fields
const (
	answerYes     = "Sim"
	licenseCustom = "Outra"
	licenseNone   = "Nenhuma"
)

const badgeBlock = `
<p align="center">
  <a href="https://github.com/username/repo/stargazers"><img src="https://img.shields.io/github/stars/username/repo" alt="Stars Badge"/></a>
  <a href="https://github.com/username/repo/network/members"><img src="https://img.shields.io/github/forks/username/repo" alt="Forks Badge"/></a>
  <a href="https://github.com/username/repo/pulls"><img src="https://img.shields.io/github/issues-pr/username/repo" alt="Pull Requests Badge"/></a>
  <a href="https://github.com/username/repo/issues"><img src="https://img.shields.io/github/issues/username/repo" alt="Issues Badge"/></a>
  <a href="https://github.com/username/repo/blob/master/LICENSE"><img src="https://img.shields.io/github/license/username/repo" alt="License Badge"/></a>
</p>
`

const defaultContributing = `
Contribuições são o que fazem a comunidade open source um lugar incrível para aprender, inspirar e criar. Qualquer contribuição que você fizer será **muito apreciada**.

1. Faça um Fork do projeto
2. Crie uma Branch para sua Feature (` + "`git checkout -b feature/AmazingFeature`" + `)
3. Faça commit das suas alterações (` + "`git commit -m 'Add some AmazingFeature'`" + `)
4. Faça Push para a Branch (` + "`git push origin feature/AmazingFeature`" + `)
5. Abra um Pull Request
`

// headerSection builds the document head: top anchor, optional logo,
// title, short description and the static badge block. It is the only
// part emitted even when the section is empty. The title prefers the
// project_info name field, then the project's own name.
func headerSection(p *models.Project) string {
	info := p.Section("project_info")

	name := info.Text("name")
	if name == "" {
		name = p.Name
	}
	if name == "" {
		name = DefaultProjectName
	}

	header := []string{`<a id="top"></a>`}

	if logo := info.Text("logo_url"); logo != "" {
		header = append(header,
			"<div align=\"center\">\n  <img src=\""+logo+"\" alt=\""+name+" Logo\" width=\"200\">\n</div>")
	}

	header = append(header, "# "+name)

	if desc := info.Text("short_description"); desc != "" {
		header = append(header, "> "+desc)
	}

	header = append(header, badgeBlock)

	return strings.Join(header, "\n")
}

func aboutSection(sec models.Section) string {
	if !sec.HasContent() {
		return ""
	}

	about := []string{"## 📋 Sobre o Projeto"}

	if desc := sec.Text("description"); desc != "" {
		about = append(about, desc)
	}

	if motivation := sec.Text("motivation"); motivation != "" {
		about = append(about, "\n### Motivação\n", motivation)
	}

	if features := sec.Text("key_features"); features != "" {
		about = append(about, "\n### Principais Diferenciais\n")
		for _, feature := range nonEmptyLines(features) {
			about = append(about, "- "+feature)
		}
	}

	return strings.Join(about, "\n")
}

func technologiesSection(sec models.Section) string {
	if !sec.HasContent() {
		return ""
	}

	out := []string{"## 🔧 Tecnologias Utilizadas\n"}

	if technologies := sec.Text("technologies"); strings.TrimSpace(technologies) != "" {
		var badges []string
		for _, tech := range strings.Split(strings.TrimSpace(technologies), ",") {
			tech = strings.TrimSpace(tech)
			if tech == "" {
				continue
			}
			if url, ok := badgeURLs[strings.ToLower(tech)]; ok {
				badges = append(badges, "<img src=\""+url+"\" alt=\""+tech+"\">")
			} else {
				badges = append(badges, "**"+tech+"**")
			}
		}
		out = append(out,
			"<p align=\"center\">",
			"  "+strings.Join(badges, " "),
			"</p>\n",
		)
	}

	if arch := sec.Text("architecture"); arch != "" {
		out = append(out, "### Arquitetura\n", arch)
	}

	return strings.Join(out, "\n")
}

func installationSection(sec models.Section) string {
	if !sec.HasContent() {
		return ""
	}

	out := []string{"## 🚀 Instalação e Configuração\n"}

	if prereqs := sec.Text("prerequisites"); prereqs != "" {
		out = append(out, "### Pré-requisitos\n")
		for _, req := range nonEmptyLines(prereqs) {
			out = append(out, "- "+req)
		}
		out = append(out, "")
	}

	if steps := sec.Text("installation_steps"); steps != "" {
		out = append(out, "### Passos para Instalação\n", "```bash", steps, "```\n")
	}

	if env := sec.Text("env_variables"); env != "" {
		out = append(out,
			"### Variáveis de Ambiente\n",
			"Crie um arquivo `.env` na raiz do projeto com as seguintes variáveis:\n",
			"```env", env, "```",
		)
	}

	return strings.Join(out, "\n")
}

func usageSection(sec models.Section) string {
	if !sec.HasContent() {
		return ""
	}

	out := []string{"## 📘 Como Utilizar\n"}

	if instructions := sec.Text("usage_instructions"); instructions != "" {
		out = append(out, instructions, "")
	}

	if examples := sec.Text("examples"); examples != "" {
		out = append(out, "### Exemplos\n", "```", examples, "```\n")
	}

	if commands := sec.Text("commands"); commands != "" {
		out = append(out, "### Comandos Principais\n")
		out = append(out, "| Comando | Descrição |", "| ------- | --------- |")

		for _, cmd := range strings.Split(strings.TrimSpace(commands), "\n") {
			if name, desc, ok := strings.Cut(cmd, ":"); ok {
				out = append(out, "| `"+strings.TrimSpace(name)+"` | "+strings.TrimSpace(desc)+" |")
			} else if strings.TrimSpace(cmd) != "" {
				out = append(out, "| `"+strings.TrimSpace(cmd)+"` | - |")
			}
		}
	}

	return strings.Join(out, "\n")
}

// structureSection prefers the tree derived from an uploaded archive
// over the manually typed structure field
func structureSection(structure string, sec models.Section) string {
	if structure == "" {
		structure = sec.Text("manual_structure")
	}
	if structure == "" {
		return ""
	}

	return strings.Join([]string{
		"## 📁 Estrutura do Projeto\n",
		"```", structure, "```",
	}, "\n")
}

// apiSection is emitted only when the user explicitly answered that
// the project exposes an API
func apiSection(sec models.Section) string {
	if sec.Text("has_api") != answerYes {
		return ""
	}

	doc := sec.Text("api_documentation")
	if doc == "" {
		return ""
	}

	return "## 🔌 API e Endpoints\n\n" + doc
}

// typeSections returns the additional sections selected by the project
// type, each independently gated on having content
func typeSections(t models.ProjectType, p *models.Project) []string {
	switch t {
	case models.TypeBackend:
		return []string{databaseSection(p.Section("database"))}
	case models.TypeFrontend:
		return []string{
			uiComponentsSection(p.Section("ui_components")),
			stateManagementSection(p.Section("state_management")),
		}
	case models.TypeMobile:
		return []string{platformsSection(p.Section("platforms"))}
	}
	return nil
}

func databaseSection(sec models.Section) string {
	schema := sec.Text("database_schema")
	migrations := sec.Text("migrations")
	if schema == "" && migrations == "" {
		return ""
	}

	out := []string{"## 💾 Banco de Dados\n"}

	if schema != "" {
		out = append(out, "### Esquema do Banco de Dados\n", schema, "")
	}
	if migrations != "" {
		out = append(out, "### Migrações\n", migrations)
	}

	return strings.Join(out, "\n")
}

func uiComponentsSection(sec models.Section) string {
	library := sec.Text("ui_library")
	structure := sec.Text("component_structure")
	if library == "" && structure == "" {
		return ""
	}

	out := []string{"## 🎨 Componentes de UI\n"}

	if library != "" {
		out = append(out, "Este projeto utiliza **"+library+"** para seus componentes de UI.\n")
	}
	if structure != "" {
		out = append(out, "### Estrutura de Componentes\n", structure)
	}

	return strings.Join(out, "\n")
}

func stateManagementSection(sec models.Section) string {
	solution := sec.Text("state_solution")
	description := sec.Text("state_description")
	if solution == "" && description == "" {
		return ""
	}

	out := []string{"## 🔄 Gerenciamento de Estado\n"}

	if solution != "" {
		out = append(out, "Este projeto utiliza **"+solution+"** para gerenciamento de estado.\n")
	}
	if description != "" {
		out = append(out, "### Implementação do Estado\n", description)
	}

	return strings.Join(out, "\n")
}

// platformsSection handles the checkbox-style platform list, which the
// editor may submit as a single string or as a list of strings
func platformsSection(sec models.Section) string {
	platforms := sec.List("platform_list")
	minVersions := sec.Text("min_versions")
	if len(platforms) == 0 && minVersions == "" {
		return ""
	}

	out := []string{"## 📱 Plataformas Suportadas\n"}

	if len(platforms) > 0 {
		out = append(out, strings.Join(platforms, ", "), "")
	}
	if minVersions != "" {
		out = append(out, "### Versões Mínimas Suportadas\n", minVersions)
	}

	return strings.Join(out, "\n")
}

func roadmapSection(sec models.Section) string {
	if !sec.HasContent() {
		return ""
	}

	out := []string{"## 🛣️ Roadmap\n"}

	if features := sec.Text("future_features"); features != "" {
		out = append(out, "### Funcionalidades Futuras\n")
		for _, feature := range nonEmptyLines(features) {
			out = append(out, "- [ ] "+feature)
		}
		out = append(out, "")
	}

	if issues := sec.Text("known_issues"); issues != "" {
		out = append(out, "### Problemas Conhecidos\n")
		for _, issue := range nonEmptyLines(issues) {
			out = append(out, "- "+issue)
		}
	}

	return strings.Join(out, "\n")
}

func contributingSection(sec models.Section) string {
	if !sec.HasContent() {
		return ""
	}

	out := []string{"## 👥 Contribuição\n"}

	if guidelines := sec.Text("contribution_guidelines"); guidelines != "" {
		out = append(out, guidelines, "")
	} else {
		out = append(out, defaultContributing)
	}

	if conduct := sec.Text("code_of_conduct"); conduct != "" {
		out = append(out, "### Código de Conduta\n", conduct)
	}

	return strings.Join(out, "\n")
}

// licenseSection branches three ways: a custom license rendered
// verbatim, a named license with the standard LICENSE file sentence,
// or the fixed no-license sentence
func licenseSection(sec models.Section) string {
	if !sec.HasContent() {
		return ""
	}

	licenseType := sec.Text("license_type")
	custom := sec.Text("custom_license")

	out := []string{"## 📜 Licença\n"}

	switch {
	case licenseType == licenseCustom && custom != "":
		out = append(out, custom)
	case licenseType != "" && licenseType != licenseNone:
		out = append(out, "Este projeto está licenciado sob a licença "+licenseType+" - veja o arquivo [LICENSE](LICENSE) para detalhes.")
	default:
		out = append(out, "Este projeto ainda não possui uma licença definida.")
	}

	return strings.Join(out, "\n")
}

func contactSection(sec models.Section) string {
	if !sec.HasContent() {
		return ""
	}

	out := []string{"## 📞 Contato e Suporte\n"}

	if info := sec.Text("contact_info"); info != "" {
		out = append(out, info, "")
	}

	if channels := sec.Text("support_channels"); channels != "" {
		out = append(out, "### Canais de Suporte\n")
		for _, channel := range nonEmptyLines(channels) {
			out = append(out, "- "+channel)
		}
	}

	return strings.Join(out, "\n")
}

func acknowledgementsSection(sec models.Section) string {
	acks := sec.Text("acknowledgements")
	if acks == "" {
		return ""
	}

	out := []string{"## 🙏 Agradecimentos\n"}
	for _, ack := range nonEmptyLines(acks) {
		out = append(out, "* "+ack)
	}

	return strings.Join(out, "\n")
}

func teamSection(sec models.Section) string {
	members := sec.Text("team_members")
	if members == "" {
		return ""
	}

	out := []string{"## 👨‍💻 Equipe\n"}
	for _, member := range nonEmptyLines(members) {
		if name, role, ok := strings.Cut(member, " - "); ok {
			out = append(out, "* **"+strings.TrimSpace(name)+"** - "+strings.TrimSpace(role))
		} else {
			out = append(out, "* **"+member+"**")
		}
	}

	return strings.Join(out, "\n")
}
