package templates

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/estevam5s/docgen/internal/models"
)

func TestBuiltinCatalogSharedSections(t *testing.T) {
	loader := NewLoader()

	ids := loader.SectionIDs(models.TypeFullstack)
	require.NotEmpty(t, ids)

	assert.Equal(t, "project_info", ids[0])
	assert.Contains(t, ids, "about")
	assert.Contains(t, ids, "technology")
	assert.Contains(t, ids, "faq")
	assert.Contains(t, ids, "team")
}

func TestBuiltinCatalogTypeOverlays(t *testing.T) {
	loader := NewLoader()

	assert.True(t, loader.Has(models.TypeBackend, "database"))
	assert.False(t, loader.Has(models.TypeFrontend, "database"))

	assert.True(t, loader.Has(models.TypeFrontend, "ui_components"))
	assert.True(t, loader.Has(models.TypeFrontend, "state_management"))
	assert.True(t, loader.Has(models.TypeMobile, "platforms"))
	assert.True(t, loader.Has(models.TypeCybersec, "security_features"))
}

func TestBackendOverlayReplacesAPISection(t *testing.T) {
	loader := NewLoader()

	sections := loader.ForType(models.TypeBackend)
	var api *models.SectionSchema
	for i := range sections {
		if sections[i].ID == "api" {
			api = &sections[i]
			break
		}
	}
	require.NotNil(t, api)

	// The backend overlay replaces the shared api section with a
	// richer one that requires documentation.
	var doc *models.FieldSchema
	for i := range api.Fields {
		if api.Fields[i].ID == "api_documentation" {
			doc = &api.Fields[i]
			break
		}
	}
	require.NotNil(t, doc)
	assert.True(t, doc.Required)
}

func TestForTypeDoesNotMutateBase(t *testing.T) {
	loader := NewLoader()

	before := len(loader.SectionIDs(models.TypeFullstack))
	_ = loader.ForType(models.TypeBackend)
	_ = loader.ForType(models.TypeFrontend)
	after := len(loader.SectionIDs(models.TypeFullstack))

	assert.Equal(t, before, after)
	assert.False(t, loader.Has(models.TypeFullstack, "database"))
}

func TestLoadFromFileTypeOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "backend.yaml")
	content := `type: backend
sections:
  - id: database
    title: Banco de Dados Customizado
    fields:
      - id: database_schema
        label: Esquema
        type: textarea
  - id: deployment
    title: Implantação
    fields:
      - id: deploy_steps
        label: Passos de Deploy
        type: textarea
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	loader := NewLoader()
	require.NoError(t, loader.LoadFromFile(path))

	sections := loader.ForType(models.TypeBackend)
	var database, deployment *models.SectionSchema
	for i := range sections {
		switch sections[i].ID {
		case "database":
			database = &sections[i]
		case "deployment":
			deployment = &sections[i]
		}
	}

	require.NotNil(t, database)
	assert.Equal(t, "Banco de Dados Customizado", database.Title)
	require.NotNil(t, deployment)
	assert.Equal(t, "Implantação", deployment.Title)

	// Other types keep the builtin catalog only.
	assert.False(t, loader.Has(models.TypeFrontend, "deployment"))
}

func TestLoadFromFileBaseOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "base.yaml")
	content := `sections:
  - id: changelog
    title: Histórico de Mudanças
    fields:
      - id: changelog_entries
        label: Entradas
        type: textarea
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	loader := NewLoader()
	require.NoError(t, loader.LoadFromFile(path))

	// An override without a type lands in every type's catalog.
	assert.True(t, loader.Has(models.TypeBackend, "changelog"))
	assert.True(t, loader.Has(models.TypeMobile, "changelog"))
}

func TestLoadFromFileValidation(t *testing.T) {
	dir := t.TempDir()

	badType := filepath.Join(dir, "badtype.yaml")
	require.NoError(t, os.WriteFile(badType, []byte("type: desktop\nsections: []\n"), 0o644))

	noID := filepath.Join(dir, "noid.yaml")
	require.NoError(t, os.WriteFile(noID, []byte("type: backend\nsections:\n  - title: Sem ID\n"), 0o644))

	notYAML := filepath.Join(dir, "broken.yaml")
	require.NoError(t, os.WriteFile(notYAML, []byte("{{not yaml"), 0o644))

	loader := NewLoader()
	assert.Error(t, loader.LoadFromFile(badType))
	assert.Error(t, loader.LoadFromFile(noID))
	assert.Error(t, loader.LoadFromFile(notYAML))
	assert.Error(t, loader.LoadFromFile(filepath.Join(dir, "missing.yaml")))
}

func TestLoadFromDirSkipsBadFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "good.yaml"), []byte(`type: network
sections:
  - id: monitoring
    title: Monitoramento
`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.yaml"), []byte("{{nope"), 0o644))

	sub := filepath.Join(dir, "extra")
	require.NoError(t, os.Mkdir(sub, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(sub, "nested.yml"), []byte(`type: network
sections:
  - id: alerting
    title: Alertas
`), 0o644))

	loader := NewLoader()
	require.NoError(t, loader.LoadFromDir(dir))

	assert.True(t, loader.Has(models.TypeNetwork, "monitoring"))
	assert.True(t, loader.Has(models.TypeNetwork, "alerting"))
}

func TestExampleProject(t *testing.T) {
	backend := ExampleProject(models.TypeBackend)
	assert.Equal(t, "Exemplo de Aplicação Backend", backend.Name)
	assert.Equal(t, "API de Gerenciamento de Tarefas", backend.Section("project_info").Text("name"))
	assert.NotEmpty(t, backend.Section("about").Text("key_features"))
	assert.Equal(t, "Python,JavaScript,Docker,Git,GitHub Actions", backend.Section("technology").Text("technologies"))

	frontend := ExampleProject(models.TypeFrontend)
	assert.Equal(t, "Dashboard de Analytics", frontend.Section("project_info").Text("name"))

	// Other types only get the generic technology section.
	mobile := ExampleProject(models.TypeMobile)
	assert.False(t, mobile.Section("project_info").HasContent())
	assert.True(t, mobile.Section("technology").HasContent())
}
