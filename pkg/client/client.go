// Package client is a Go SDK for the docgen HTTP API. The editing
// session lives in a cookie, so one Client maps to one in-progress
// project.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/cookiejar"
	"time"

	"github.com/estevam5s/docgen/internal/models"
)

// Client is a Go SDK for the docgen API
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option configures the client
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client. The client must carry a
// cookie jar or every request will start a fresh session.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.httpClient = client
	}
}

// WithTimeout sets the client timeout
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// NewClient creates a new docgen client
func NewClient(baseURL string, opts ...Option) *Client {
	jar, _ := cookiejar.New(nil)
	c := &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			Jar:     jar,
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// ProjectTypes lists the selectable project types
func (c *Client) ProjectTypes(ctx context.Context) ([]models.ProjectTypeInfo, error) {
	resp, err := c.doRequest(ctx, "GET", "/api/v1/project-types", nil, "")
	if err != nil {
		return nil, err
	}

	var data struct {
		Types []models.ProjectTypeInfo `json:"types"`
	}
	if err := decodeData(resp, &data); err != nil {
		return nil, err
	}
	return data.Types, nil
}

// Template returns the section catalog for a project type
func (c *Client) Template(ctx context.Context, t models.ProjectType) ([]models.SectionSchema, error) {
	resp, err := c.doRequest(ctx, "GET", "/api/v1/templates/"+string(t), nil, "")
	if err != nil {
		return nil, err
	}

	var data struct {
		Sections []models.SectionSchema `json:"sections"`
	}
	if err := decodeData(resp, &data); err != nil {
		return nil, err
	}
	return data.Sections, nil
}

// CreateProject starts a new project in this client's session
func (c *Client) CreateProject(ctx context.Context, req models.CreateProjectRequest) (*models.ProjectView, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	resp, err := c.doRequest(ctx, "POST", "/api/v1/projects", bytes.NewReader(body), "application/json")
	if err != nil {
		return nil, err
	}

	var view models.ProjectView
	if err := decodeData(resp, &view); err != nil {
		return nil, err
	}
	return &view, nil
}

// Project returns the session's project with completion status
func (c *Client) Project(ctx context.Context) (*models.ProjectView, error) {
	resp, err := c.doRequest(ctx, "GET", "/api/v1/project", nil, "")
	if err != nil {
		return nil, err
	}

	var view models.ProjectView
	if err := decodeData(resp, &view); err != nil {
		return nil, err
	}
	return &view, nil
}

// UpdateSection replaces one section's field data and returns the
// refreshed preview
func (c *Client) UpdateSection(ctx context.Context, sectionID string, data models.Section) (*models.PreviewResponse, error) {
	body, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	resp, err := c.doRequest(ctx, "PUT", "/api/v1/project/sections/"+sectionID, bytes.NewReader(body), "application/json")
	if err != nil {
		return nil, err
	}

	var preview models.PreviewResponse
	if err := decodeData(resp, &preview); err != nil {
		return nil, err
	}
	return &preview, nil
}

// UpdateTheme changes the session's presentation theme
func (c *Client) UpdateTheme(ctx context.Context, theme string) error {
	body, err := json.Marshal(models.UpdateThemeRequest{Theme: theme})
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	_, err = c.doRequest(ctx, "PUT", "/api/v1/project/theme", bytes.NewReader(body), "application/json")
	return err
}

// Preview renders the current project
func (c *Client) Preview(ctx context.Context) (*models.PreviewResponse, error) {
	resp, err := c.doRequest(ctx, "GET", "/api/v1/project/preview", nil, "")
	if err != nil {
		return nil, err
	}

	var preview models.PreviewResponse
	if err := decodeData(resp, &preview); err != nil {
		return nil, err
	}
	return &preview, nil
}

// UploadStructure sends a project archive and returns the rendered
// directory tree
func (c *Client) UploadStructure(ctx context.Context, filename string, archive io.Reader) (string, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("project_files", filename)
	if err != nil {
		return "", fmt.Errorf("failed to build upload: %w", err)
	}
	if _, err := io.Copy(part, archive); err != nil {
		return "", fmt.Errorf("failed to build upload: %w", err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("failed to build upload: %w", err)
	}

	resp, err := c.doRequest(ctx, "POST", "/api/v1/project/structure", &buf, writer.FormDataContentType())
	if err != nil {
		return "", err
	}

	var structure models.StructureResponse
	if err := decodeData(resp, &structure); err != nil {
		return "", err
	}
	return structure.Structure, nil
}

// Export returns the final markdown and a suggested filename
func (c *Client) Export(ctx context.Context) (*models.ExportResponse, error) {
	resp, err := c.doRequest(ctx, "GET", "/api/v1/project/export", nil, "")
	if err != nil {
		return nil, err
	}

	var export models.ExportResponse
	if err := decodeData(resp, &export); err != nil {
		return nil, err
	}
	return &export, nil
}

// Download fetches the markdown document as served for download
func (c *Client) Download(ctx context.Context) (string, error) {
	resp, err := c.doRequest(ctx, "GET", "/api/v1/project/download", nil, "")
	if err != nil {
		return "", err
	}
	return string(resp), nil
}

// Reset discards the session's project
func (c *Client) Reset(ctx context.Context) error {
	_, err := c.doRequest(ctx, "DELETE", "/api/v1/project", nil, "")
	return err
}

// Demo returns a rendered example document for a project type
func (c *Client) Demo(ctx context.Context, t models.ProjectType) (*models.PreviewResponse, error) {
	resp, err := c.doRequest(ctx, "GET", "/api/v1/demo/"+string(t), nil, "")
	if err != nil {
		return nil, err
	}

	var data struct {
		Markdown string `json:"markdown"`
		HTML     string `json:"html_preview"`
	}
	if err := decodeData(resp, &data); err != nil {
		return nil, err
	}
	return &models.PreviewResponse{Markdown: data.Markdown, HTML: data.HTML}, nil
}

// Health checks service availability
func (c *Client) Health(ctx context.Context) error {
	_, err := c.doRequest(ctx, "GET", "/health", nil, "")
	return err
}

// doRequest performs an HTTP request
func (c *Client) doRequest(ctx context.Context, method, path string, body io.Reader, contentType string) ([]byte, error) {
	url := c.baseURL + path

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		return nil, apiErrorFromBody(resp.StatusCode, respBody)
	}

	return respBody, nil
}

// decodeData unwraps the API's response envelope
func decodeData(body []byte, out interface{}) error {
	var envelope struct {
		Success bool            `json:"success"`
		Data    json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return fmt.Errorf("failed to unmarshal response: %w", err)
	}
	if out == nil || envelope.Data == nil {
		return nil
	}
	if err := json.Unmarshal(envelope.Data, out); err != nil {
		return fmt.Errorf("failed to unmarshal response data: %w", err)
	}
	return nil
}

// apiErrorFromBody extracts the API error envelope, falling back to
// the raw body
func apiErrorFromBody(status int, body []byte) error {
	var envelope struct {
		Error *struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Error != nil {
		return fmt.Errorf("HTTP %d: %s: %s", status, envelope.Error.Code, envelope.Error.Message)
	}
	return fmt.Errorf("HTTP %d: %s", status, string(body))
}
