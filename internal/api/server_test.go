package api

import (
	"archive/zip"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/estevam5s/docgen/internal/config"
	"github.com/estevam5s/docgen/internal/models"
	"github.com/estevam5s/docgen/internal/session"
	"github.com/estevam5s/docgen/internal/templates"
)

type testEnv struct {
	server *httptest.Server
	client *http.Client
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	cfg := config.Config{
		Server:  config.ServerConfig{Host: "127.0.0.1", Port: 8080},
		Session: config.SessionConfig{TTL: time.Hour, CookieName: "docgen_session"},
		Upload: config.UploadConfig{
			Dir:       t.TempDir(),
			MaxBytes:  50 * 1024 * 1024,
			Retention: time.Hour,
		},
	}

	store := session.NewMemoryStore(cfg.Session.TTL)
	srv := NewServer(cfg, store, templates.NewLoader())

	ts := httptest.NewServer(srv.Router())
	t.Cleanup(ts.Close)

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)

	return &testEnv{
		server: ts,
		client: &http.Client{Jar: jar},
	}
}

func (e *testEnv) do(t *testing.T, method, path string, body interface{}) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, e.server.URL+path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := e.client.Do(req)
	require.NoError(t, err)
	return resp
}

func decodeData(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	defer resp.Body.Close()

	var envelope struct {
		Success bool            `json:"success"`
		Data    json.RawMessage `json:"data"`
		Error   *apiError       `json:"error"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	require.True(t, envelope.Success, "expected success response, got error: %+v", envelope.Error)
	if out != nil {
		require.NoError(t, json.Unmarshal(envelope.Data, out))
	}
}

func decodeError(t *testing.T, resp *http.Response) apiError {
	t.Helper()
	defer resp.Body.Close()

	var envelope struct {
		Success bool      `json:"success"`
		Error   *apiError `json:"error"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	require.False(t, envelope.Success)
	require.NotNil(t, envelope.Error)
	return *envelope.Error
}

func createProject(t *testing.T, e *testEnv, req models.CreateProjectRequest) models.ProjectView {
	t.Helper()

	resp := e.do(t, http.MethodPost, "/api/v1/projects", req)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var view models.ProjectView
	decodeData(t, resp, &view)
	return view
}

func TestHealthAndReady(t *testing.T) {
	e := newTestEnv(t)

	resp := e.do(t, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = e.do(t, http.MethodGet, "/ready", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()
}

func TestListProjectTypes(t *testing.T) {
	e := newTestEnv(t)

	resp := e.do(t, http.MethodGet, "/api/v1/project-types", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var data struct {
		Types []models.ProjectTypeInfo `json:"types"`
		Total int                      `json:"total"`
	}
	decodeData(t, resp, &data)

	assert.Equal(t, 7, data.Total)
	assert.Equal(t, "backend", data.Types[0].ID)
	assert.Equal(t, "Aplicação Backend", data.Types[0].Label)
	assert.NotEmpty(t, data.Types[0].Description)
}

func TestGetTemplate(t *testing.T) {
	e := newTestEnv(t)

	resp := e.do(t, http.MethodGet, "/api/v1/templates/backend", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var data struct {
		Type     models.ProjectType     `json:"type"`
		Sections []models.SectionSchema `json:"sections"`
	}
	decodeData(t, resp, &data)
	assert.Equal(t, models.TypeBackend, data.Type)
	assert.NotEmpty(t, data.Sections)

	resp = e.do(t, http.MethodGet, "/api/v1/templates/desktop", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "unknown_type", decodeError(t, resp).Code)
}

func TestCreateAndGetProject(t *testing.T) {
	e := newTestEnv(t)

	view := createProject(t, e, models.CreateProjectRequest{
		Type: "backend",
		Name: "Minha API",
	})
	assert.Equal(t, models.TypeBackend, view.Project.Type)
	assert.Equal(t, "Minha API", view.Project.Name)
	assert.Equal(t, 0, view.Progress)

	resp := e.do(t, http.MethodGet, "/api/v1/project", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got models.ProjectView
	decodeData(t, resp, &got)
	assert.Equal(t, "Minha API", got.Project.Name)
}

func TestCreateProjectValidation(t *testing.T) {
	e := newTestEnv(t)

	resp := e.do(t, http.MethodPost, "/api/v1/projects", models.CreateProjectRequest{Type: "desktop"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "validation_error", decodeError(t, resp).Code)
}

func TestCreateExampleProject(t *testing.T) {
	e := newTestEnv(t)

	view := createProject(t, e, models.CreateProjectRequest{
		Type:       "backend",
		UseExample: true,
	})
	assert.Equal(t, "Exemplo de Aplicação Backend", view.Project.Name)
	assert.True(t, view.Status["project_info"])
	assert.Greater(t, view.Progress, 0)
}

func TestGetProjectWithoutSession(t *testing.T) {
	e := newTestEnv(t)

	resp := e.do(t, http.MethodGet, "/api/v1/project", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "no_project", decodeError(t, resp).Code)
}

func TestUpdateSection(t *testing.T) {
	e := newTestEnv(t)
	createProject(t, e, models.CreateProjectRequest{Type: "backend", Name: "Minha API"})

	body := map[string]interface{}{
		"description":  "Uma API de exemplo.",
		"key_features": "- Recurso um\n- Recurso dois",
	}
	resp := e.do(t, http.MethodPut, "/api/v1/project/sections/about", body)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var preview models.PreviewResponse
	decodeData(t, resp, &preview)
	assert.Contains(t, preview.Markdown, "## 📋 Sobre o Projeto")
	assert.Contains(t, preview.Markdown, "Uma API de exemplo.")
	assert.Contains(t, preview.HTML, "Sobre o Projeto")

	// Progress now counts the updated section.
	var view models.ProjectView
	getResp := e.do(t, http.MethodGet, "/api/v1/project", nil)
	decodeData(t, getResp, &view)
	assert.True(t, view.Status["about"])
	assert.Greater(t, view.Progress, 0)
}

func TestUpdateSectionUnknownID(t *testing.T) {
	e := newTestEnv(t)
	createProject(t, e, models.CreateProjectRequest{Type: "frontend"})

	// database belongs to the backend catalog only.
	resp := e.do(t, http.MethodPut, "/api/v1/project/sections/database", map[string]interface{}{
		"database_schema": "tabela usuarios",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "unknown_section", decodeError(t, resp).Code)
}

func TestUpdateSectionListValues(t *testing.T) {
	e := newTestEnv(t)
	createProject(t, e, models.CreateProjectRequest{Type: "mobile"})

	resp := e.do(t, http.MethodPut, "/api/v1/project/sections/platforms", map[string]interface{}{
		"platform_list": []string{"iOS", "Android"},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var preview models.PreviewResponse
	decodeData(t, resp, &preview)
	assert.Contains(t, preview.Markdown, "## 📱 Plataformas Suportadas")
	assert.Contains(t, preview.Markdown, "iOS, Android")
}

func TestUpdateTheme(t *testing.T) {
	e := newTestEnv(t)
	createProject(t, e, models.CreateProjectRequest{Type: "backend"})

	resp := e.do(t, http.MethodPut, "/api/v1/project/theme", models.UpdateThemeRequest{Theme: "dark"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var data map[string]string
	decodeData(t, resp, &data)
	assert.Equal(t, "dark", data["theme"])
}

func TestExport(t *testing.T) {
	e := newTestEnv(t)
	createProject(t, e, models.CreateProjectRequest{Type: "backend", Name: "Minha API"})

	resp := e.do(t, http.MethodGet, "/api/v1/project/export", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var export models.ExportResponse
	decodeData(t, resp, &export)
	assert.Equal(t, "Minha_API.md", export.Filename)
	assert.Contains(t, export.Markdown, "# Minha API")
}

func TestDownload(t *testing.T) {
	e := newTestEnv(t)
	createProject(t, e, models.CreateProjectRequest{Type: "backend", Name: "Minha API"})

	resp := e.do(t, http.MethodGet, "/api/v1/project/download", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	defer resp.Body.Close()

	assert.Equal(t, "text/markdown; charset=utf-8", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), `filename="Minha_API.md"`)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "# Minha API")
}

func TestResetProject(t *testing.T) {
	e := newTestEnv(t)
	createProject(t, e, models.CreateProjectRequest{Type: "backend"})

	resp := e.do(t, http.MethodDelete, "/api/v1/project", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = e.do(t, http.MethodGet, "/api/v1/project", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestDemo(t *testing.T) {
	e := newTestEnv(t)

	resp := e.do(t, http.MethodGet, "/api/v1/demo/frontend", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var data struct {
		ProjectType string `json:"project_type"`
		Markdown    string `json:"markdown"`
		HTML        string `json:"html_preview"`
	}
	decodeData(t, resp, &data)
	assert.Equal(t, "Aplicação Frontend", data.ProjectType)
	assert.Contains(t, data.Markdown, "# Dashboard de Analytics")
	assert.NotEmpty(t, data.HTML)

	resp = e.do(t, http.MethodGet, "/api/v1/demo/desktop", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestSessionCookieIsSet(t *testing.T) {
	e := newTestEnv(t)

	resp := e.do(t, http.MethodGet, "/api/v1/project-types", nil)
	resp.Body.Close()

	var found bool
	for _, c := range e.client.Jar.Cookies(mustParseURL(t, e.server.URL)) {
		if c.Name == "docgen_session" && c.Value != "" {
			found = true
		}
	}
	assert.True(t, found, "expected session cookie to be set")
}

func TestUploadStructure(t *testing.T) {
	e := newTestEnv(t)
	createProject(t, e, models.CreateProjectRequest{Type: "backend", Name: "Minha API"})

	// Seed the structure section so the upload mirrors into it.
	resp := e.do(t, http.MethodPut, "/api/v1/project/sections/structure", map[string]interface{}{
		"manual_structure": "placeholder",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	archivePath := writeProjectZip(t)

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("project_files", "meu-projeto.zip")
	require.NoError(t, err)
	data, err := os.ReadFile(archivePath)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req, err := http.NewRequest(http.MethodPost, e.server.URL+"/api/v1/project/structure", &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err = e.client.Do(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var structure models.StructureResponse
	decodeData(t, resp, &structure)
	assert.Contains(t, structure.Structure, "meu-projeto")
	assert.Contains(t, structure.Structure, "main.go")

	// The project now embeds the analyzed tree.
	var view models.ProjectView
	getResp := e.do(t, http.MethodGet, "/api/v1/project", nil)
	decodeData(t, getResp, &view)
	assert.Equal(t, structure.Structure, view.Project.Structure)
	assert.Equal(t, structure.Structure, view.Project.Section("structure").Text("manual_structure"))
}

func TestUploadStructureRejectsUnsupported(t *testing.T) {
	e := newTestEnv(t)
	createProject(t, e, models.CreateProjectRequest{Type: "backend"})

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("project_files", "notes.txt")
	require.NoError(t, err)
	fmt.Fprint(part, "not an archive")
	require.NoError(t, writer.Close())

	req, err := http.NewRequest(http.MethodPost, e.server.URL+"/api/v1/project/structure", &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := e.client.Do(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "unsupported_format", decodeError(t, resp).Code)
}

// writeProjectZip builds a small project archive on disk
func writeProjectZip(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "meu-projeto.zip")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	zw := zip.NewWriter(f)
	for _, name := range []string{"cmd/main.go", "go.mod", "README.md"} {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte("package main\n"))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())

	return path
}

func mustParseURL(t *testing.T, raw string) *url.URL {
	t.Helper()
	u, err := url.Parse(raw)
	require.NoError(t, err)
	return u
}
