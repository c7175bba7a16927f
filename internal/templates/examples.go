package templates

import "github.com/estevam5s/docgen/internal/models"

// ExampleProject builds a pre-filled demo project for the given type.
// Backend and frontend get type-specific content; every type gets a
// generic technology section.
func ExampleProject(t models.ProjectType) *models.Project {
	p := models.NewProject(t, "Exemplo de "+t.Label())

	switch t {
	case models.TypeBackend:
		p.UpdateSection("project_info", models.Section{
			"name":              models.Text("API de Gerenciamento de Tarefas"),
			"short_description": models.Text("API REST para gerenciamento de tarefas e projetos com autenticação e permissões."),
			"logo_url":          models.Text("https://example.com/logo.png"),
		})
		p.UpdateSection("about", models.Section{
			"description":  models.Text("Esta API oferece endpoints para gerenciamento completo de tarefas, projetos e usuários, com autenticação JWT e controle granular de permissões."),
			"motivation":   models.Text("Criada para demonstrar boas práticas de desenvolvimento de APIs RESTful."),
			"key_features": models.Text("- Autenticação JWT\n- Permissões baseadas em funções\n- Documentação automática com Swagger\n- Testes automatizados\n- Containerização com Docker"),
		})
	case models.TypeFrontend:
		p.UpdateSection("project_info", models.Section{
			"name":              models.Text("Dashboard de Analytics"),
			"short_description": models.Text("Interface moderna para visualização de dados analíticos com gráficos interativos."),
			"logo_url":          models.Text("https://example.com/logo.png"),
		})
		p.UpdateSection("about", models.Section{
			"description":  models.Text("Dashboard moderno e responsivo para visualização de dados analíticos, com gráficos interativos e filtros avançados."),
			"motivation":   models.Text("Criado para demonstrar técnicas de visualização de dados com React e D3.js."),
			"key_features": models.Text("- Gráficos interativos\n- Temas personalizáveis\n- Filtros avançados\n- Exportação de dados\n- Responsivo para dispositivos móveis"),
		})
	}

	p.UpdateSection("technology", models.Section{
		"technologies": models.Text("Python,JavaScript,Docker,Git,GitHub Actions"),
		"architecture": models.Text("Arquitetura do projeto de exemplo."),
	})

	return p
}
