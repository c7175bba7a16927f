package templates

import "github.com/estevam5s/docgen/internal/models"

// baseCatalog returns the editor sections every project type shares,
// in editor step order
func baseCatalog() []models.SectionSchema {
	return []models.SectionSchema{
		{
			ID:    "project_info",
			Title: "Informações do Projeto",
			Fields: []models.FieldSchema{
				{ID: "name", Label: "Nome do Projeto", Type: models.FieldText, Required: true,
					Placeholder: "Ex: Sistema de Gestão de Inventário"},
				{ID: "short_description", Label: "Descrição Curta", Type: models.FieldTextarea, Required: true,
					Placeholder: "Descrição breve do projeto em 1-2 frases"},
				{ID: "logo_url", Label: "URL do Logo (opcional)", Type: models.FieldText,
					Placeholder: "https://exemplo.com/logo.png"},
			},
		},
		{
			ID:    "about",
			Title: "Sobre o Projeto",
			Fields: []models.FieldSchema{
				{ID: "description", Label: "Descrição Detalhada", Type: models.FieldTextarea, Required: true,
					Placeholder: "Descreva detalhadamente o propósito e funcionalidade do projeto"},
				{ID: "motivation", Label: "Motivação", Type: models.FieldTextarea,
					Placeholder: "O que inspirou a criação deste projeto?"},
				{ID: "key_features", Label: "Características Principais", Type: models.FieldTextarea, Required: true,
					Placeholder: "Liste as principais características separadas por linhas"},
			},
		},
		{
			ID:    "technology",
			Title: "Tecnologias Utilizadas",
			Fields: []models.FieldSchema{
				{ID: "technologies", Label: "Tecnologias", Type: models.FieldTags, Required: true,
					Placeholder: "Ex: Python, Flask, React, etc."},
				{ID: "architecture", Label: "Arquitetura", Type: models.FieldTextarea,
					Placeholder: "Descreva a arquitetura do sistema"},
			},
		},
		{
			ID:    "installation",
			Title: "Instalação e Configuração",
			Fields: []models.FieldSchema{
				{ID: "prerequisites", Label: "Pré-requisitos", Type: models.FieldTextarea, Required: true,
					Placeholder: "Liste os pré-requisitos necessários"},
				{ID: "installation_steps", Label: "Passos de Instalação", Type: models.FieldTextarea, Required: true,
					Placeholder: "Descreva os passos de instalação (em formato de lista)"},
				{ID: "env_variables", Label: "Variáveis de Ambiente", Type: models.FieldTextarea,
					Placeholder: "Liste as variáveis de ambiente necessárias"},
			},
		},
		{
			ID:    "usage",
			Title: "Como Utilizar",
			Fields: []models.FieldSchema{
				{ID: "usage_instructions", Label: "Instruções de Uso", Type: models.FieldTextarea, Required: true,
					Placeholder: "Explique como utilizar o projeto"},
				{ID: "examples", Label: "Exemplos", Type: models.FieldTextarea,
					Placeholder: "Forneça exemplos de uso"},
				{ID: "commands", Label: "Comandos Principais", Type: models.FieldTextarea,
					Placeholder: "Liste os comandos principais"},
			},
		},
		{
			ID:    "structure",
			Title: "Estrutura do Projeto",
			Fields: []models.FieldSchema{
				{ID: "upload_structure", Label: "Fazer upload da estrutura (opcional)", Type: models.FieldFile,
					Accept: ".zip,.tar.gz"},
				{ID: "manual_structure", Label: "Estrutura Manual", Type: models.FieldTextarea,
					Placeholder: "Estrutura de diretórios do projeto"},
			},
		},
		{
			ID:    "api",
			Title: "API e Endpoints",
			Fields: []models.FieldSchema{
				{ID: "has_api", Label: "O projeto tem API?", Type: models.FieldRadio, Required: true,
					Options: []string{"Sim", "Não"}},
				{ID: "api_documentation", Label: "Documentação da API", Type: models.FieldTextarea,
					Placeholder: "Descreva os endpoints da API",
					Conditional: &models.Condition{Field: "has_api", Value: "Sim"}},
			},
		},
		{
			ID:    "contributing",
			Title: "Contribuição",
			Fields: []models.FieldSchema{
				{ID: "contribution_guidelines", Label: "Diretrizes de Contribuição", Type: models.FieldTextarea,
					Placeholder: "Explique como outros desenvolvedores podem contribuir"},
				{ID: "code_of_conduct", Label: "Código de Conduta", Type: models.FieldTextarea,
					Placeholder: "Código de conduta para contribuidores"},
			},
		},
		{
			ID:    "roadmap",
			Title: "Roadmap",
			Fields: []models.FieldSchema{
				{ID: "future_features", Label: "Funcionalidades Futuras", Type: models.FieldTextarea,
					Placeholder: "Liste funcionalidades planejadas para o futuro"},
				{ID: "known_issues", Label: "Problemas Conhecidos", Type: models.FieldTextarea,
					Placeholder: "Liste problemas conhecidos"},
			},
		},
		{
			ID:    "license",
			Title: "Licença",
			Fields: []models.FieldSchema{
				{ID: "license_type", Label: "Tipo de Licença", Type: models.FieldSelect, Required: true,
					Options: []string{"MIT", "GPL-3.0", "Apache-2.0", "BSD-3-Clause", "BSD-2-Clause", "CC0-1.0", "Outra", "Nenhuma"}},
				{ID: "custom_license", Label: "Licença Personalizada", Type: models.FieldTextarea,
					Placeholder: "Detalhes da licença personalizada",
					Conditional: &models.Condition{Field: "license_type", Value: "Outra"}},
			},
		},
		{
			ID:    "contact",
			Title: "Contato e Suporte",
			Fields: []models.FieldSchema{
				{ID: "contact_info", Label: "Informações de Contato", Type: models.FieldTextarea,
					Placeholder: "Como entrar em contato com a equipe"},
				{ID: "support_channels", Label: "Canais de Suporte", Type: models.FieldTextarea,
					Placeholder: "Canais disponíveis para suporte"},
			},
		},
		{
			ID:    "faq",
			Title: "FAQ",
			Fields: []models.FieldSchema{
				{ID: "faq_items", Label: "Perguntas Frequentes", Type: models.FieldTextarea,
					Placeholder: "Liste perguntas e respostas frequentes (formato P: Pergunta / R: Resposta)"},
			},
		},
		{
			ID:    "acknowledgements",
			Title: "Agradecimentos",
			Fields: []models.FieldSchema{
				{ID: "acknowledgements", Label: "Agradecimentos", Type: models.FieldTextarea,
					Placeholder: "Agradecimentos a colaboradores, ferramentas, etc."},
			},
		},
		{
			ID:    "team",
			Title: "Equipe",
			Fields: []models.FieldSchema{
				{ID: "team_members", Label: "Membros da Equipe", Type: models.FieldTextarea,
					Placeholder: "Liste os membros da equipe e seus papéis"},
			},
		},
	}
}

// typeOverlays returns the type-specific sections. A section whose id
// already exists in the base catalog replaces it in place; new
// sections are appended.
func typeOverlays() map[models.ProjectType][]models.SectionSchema {
	return map[models.ProjectType][]models.SectionSchema{
		models.TypeBackend: {
			{
				ID:    "api",
				Title: "API e Endpoints",
				Fields: []models.FieldSchema{
					{ID: "api_documentation", Label: "Documentação da API", Type: models.FieldTextarea, Required: true,
						Placeholder: "Descreva os endpoints da API"},
					{ID: "authentication", Label: "Autenticação", Type: models.FieldTextarea,
						Placeholder: "Descreva os métodos de autenticação"},
				},
			},
			{
				ID:    "database",
				Title: "Banco de Dados",
				Fields: []models.FieldSchema{
					{ID: "database_schema", Label: "Esquema do Banco de Dados", Type: models.FieldTextarea,
						Placeholder: "Descreva o esquema do banco de dados"},
					{ID: "migrations", Label: "Migrações", Type: models.FieldTextarea,
						Placeholder: "Informações sobre migrações de banco de dados"},
				},
			},
		},
		models.TypeFrontend: {
			{
				ID:    "ui_components",
				Title: "Componentes de UI",
				Fields: []models.FieldSchema{
					{ID: "ui_library", Label: "Biblioteca de UI", Type: models.FieldText,
						Placeholder: "Ex: React Bootstrap, Material UI"},
					{ID: "component_structure", Label: "Estrutura de Componentes", Type: models.FieldTextarea,
						Placeholder: "Descreva a estrutura de componentes"},
				},
			},
			{
				ID:    "state_management",
				Title: "Gerenciamento de Estado",
				Fields: []models.FieldSchema{
					{ID: "state_solution", Label: "Solução de Gerenciamento de Estado", Type: models.FieldText,
						Placeholder: "Ex: Redux, Context API, MobX"},
					{ID: "state_description", Label: "Descrição da Arquitetura de Estado", Type: models.FieldTextarea,
						Placeholder: "Detalhes sobre a implementação do estado"},
				},
			},
			{
				ID:    "design",
				Title: "Design e Estilo",
				Fields: []models.FieldSchema{
					{ID: "design_system", Label: "Sistema de Design", Type: models.FieldText,
						Placeholder: "Ex: Design System personalizado, Tailwind"},
					{ID: "responsive_approach", Label: "Abordagem Responsiva", Type: models.FieldTextarea,
						Placeholder: "Descreva a abordagem para responsividade"},
				},
			},
		},
		models.TypeFullstack: {
			{
				ID:    "architecture",
				Title: "Arquitetura da Aplicação",
				Fields: []models.FieldSchema{
					{ID: "frontend_backend_communication", Label: "Comunicação Frontend-Backend", Type: models.FieldTextarea, Required: true,
						Placeholder: "Descreva como o frontend se comunica com o backend"},
					{ID: "deployment_architecture", Label: "Arquitetura de Implantação", Type: models.FieldTextarea,
						Placeholder: "Descreva a arquitetura de implantação"},
				},
			},
		},
		models.TypeMobile: {
			{
				ID:    "platforms",
				Title: "Plataformas Suportadas",
				Fields: []models.FieldSchema{
					{ID: "platform_list", Label: "Plataformas", Type: models.FieldCheckbox, Required: true,
						Options: []string{"Android", "iOS", "Web", "Outros"}},
					{ID: "min_versions", Label: "Versões Mínimas", Type: models.FieldTextarea,
						Placeholder: "Ex: Android 8.0+, iOS 13+"},
				},
			},
			{
				ID:    "app_stores",
				Title: "Informações de App Store",
				Fields: []models.FieldSchema{
					{ID: "app_store_links", Label: "Links de App Store", Type: models.FieldTextarea,
						Placeholder: "Links para Google Play, App Store, etc."},
					{ID: "release_process", Label: "Processo de Release", Type: models.FieldTextarea,
						Placeholder: "Descreva o processo de lançamento nas lojas"},
				},
			},
		},
		models.TypeCybersec: {
			{
				ID:    "security_features",
				Title: "Recursos de Segurança",
				Fields: []models.FieldSchema{
					{ID: "security_measures", Label: "Medidas de Segurança", Type: models.FieldTextarea, Required: true,
						Placeholder: "Descreva as medidas de segurança implementadas"},
					{ID: "threat_model", Label: "Modelo de Ameaças", Type: models.FieldTextarea,
						Placeholder: "Descreva o modelo de ameaças considerado"},
				},
			},
			{
				ID:    "compliance",
				Title: "Conformidade",
				Fields: []models.FieldSchema{
					{ID: "compliance_standards", Label: "Padrões de Conformidade", Type: models.FieldTextarea,
						Placeholder: "Ex: GDPR, HIPAA, PCI DSS"},
				},
			},
		},
		models.TypeNetwork: {
			{
				ID:    "network_topology",
				Title: "Topologia de Rede",
				Fields: []models.FieldSchema{
					{ID: "topology_description", Label: "Descrição da Topologia", Type: models.FieldTextarea, Required: true,
						Placeholder: "Descreva a topologia da rede"},
					{ID: "network_diagram", Label: "URL do Diagrama de Rede (opcional)", Type: models.FieldText,
						Placeholder: "Link para diagrama da rede"},
				},
			},
			{
				ID:    "protocols",
				Title: "Protocolos Utilizados",
				Fields: []models.FieldSchema{
					{ID: "protocol_list", Label: "Lista de Protocolos", Type: models.FieldTextarea,
						Placeholder: "Liste os protocolos utilizados"},
				},
			},
		},
		models.TypeFrameworks: {
			{
				ID:    "framework_details",
				Title: "Detalhes do Framework",
				Fields: []models.FieldSchema{
					{ID: "framework_name", Label: "Nome do Framework", Type: models.FieldText, Required: true,
						Placeholder: "Ex: Django, Angular, Laravel"},
					{ID: "framework_version", Label: "Versão do Framework", Type: models.FieldText, Required: true,
						Placeholder: "Ex: 4.2.1"},
					{ID: "custom_extensions", Label: "Extensões Personalizadas", Type: models.FieldTextarea,
						Placeholder: "Descreva extensões ou personalizações do framework"},
				},
			},
		},
	}
}
