package api

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/estevam5s/docgen/internal/archive"
	"github.com/estevam5s/docgen/internal/markdown"
	"github.com/estevam5s/docgen/internal/models"
	"github.com/estevam5s/docgen/internal/session"
	"github.com/estevam5s/docgen/internal/templates"
)

// Response helpers

type apiResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *apiError   `json:"error,omitempty"`
}

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	resp := apiResponse{
		Success: status >= 200 && status < 300,
		Data:    data,
	}

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func respondError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	resp := apiResponse{
		Success: false,
		Error: &apiError{
			Code:    code,
			Message: message,
		},
	}

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode error response", "error", err)
	}
}

// requireProject returns the session and its project, writing the
// error response when no project has been started yet
func requireProject(w http.ResponseWriter, r *http.Request) (*session.Session, *models.Project, bool) {
	s := SessionFromContext(r.Context())
	if s == nil || s.Project == nil {
		respondError(w, http.StatusNotFound, "no_project", "no active project in this session")
		return nil, nil, false
	}
	return s, s.Project, true
}

// saveSession persists the session after a mutation
func (s *Server) saveSession(w http.ResponseWriter, r *http.Request, sess *session.Session) bool {
	sess.Touch()
	if err := s.store.Save(r.Context(), sess); err != nil {
		slog.Error("failed to save session", "error", err, "session_id", sess.ID)
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to save session")
		return false
	}
	return true
}

// preview renders the project and pushes the result to any websocket
// subscribers of the session
func (s *Server) preview(sess *session.Session) models.PreviewResponse {
	md := markdown.Generate(sess.Project)
	resp := models.PreviewResponse{
		Markdown: md,
		HTML:     markdown.ToHTML(md),
	}
	s.previews.broadcast(sess.ID, resp)
	return resp
}

// projectView builds the editor read model: completion status per
// catalog section and overall progress
func (s *Server) projectView(p *models.Project) models.ProjectView {
	ids := s.templateLoader.SectionIDs(p.Type)
	status := make(map[string]bool, len(ids))
	completed := 0
	for _, id := range ids {
		done := p.IsSectionComplete(id)
		status[id] = done
		if done {
			completed++
		}
	}

	progress := 0
	if len(ids) > 0 {
		progress = completed * 100 / len(ids)
	}

	return models.ProjectView{
		Project:  p,
		Status:   status,
		Progress: progress,
	}
}

// exportFilename derives the download filename from the project name
func exportFilename(p *models.Project) string {
	name := p.Name
	if name == "" {
		name = "README"
	}
	return strings.ReplaceAll(name, " ", "_") + ".md"
}

// Health handlers

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status": "healthy",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Ping(r.Context()); err != nil {
		respondError(w, http.StatusServiceUnavailable, "not_ready", "session store not ready")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{
		"status": "ready",
	})
}

// Catalog handlers

func (s *Server) handleListProjectTypes(w http.ResponseWriter, r *http.Request) {
	types := models.AllProjectTypes()
	infos := make([]models.ProjectTypeInfo, 0, len(types))
	for _, t := range types {
		infos = append(infos, models.ProjectTypeInfo{
			ID:          string(t),
			Label:       t.Label(),
			Description: t.Description(),
		})
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"types": infos,
		"total": len(infos),
	})
}

func (s *Server) handleGetTemplate(w http.ResponseWriter, r *http.Request) {
	t := models.ProjectType(chi.URLParam(r, "type"))
	if !t.IsValid() {
		respondError(w, http.StatusNotFound, "unknown_type", "unknown project type")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"type":     t,
		"sections": s.templateLoader.ForType(t),
	})
}

func (s *Server) handleDemo(w http.ResponseWriter, r *http.Request) {
	t := models.ProjectType(chi.URLParam(r, "type"))
	if !t.IsValid() {
		respondError(w, http.StatusNotFound, "unknown_type", "unknown project type")
		return
	}

	p := templates.ExampleProject(t)
	md := markdown.Generate(p)

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"project_type": t.Label(),
		"project":      p,
		"markdown":     md,
		"html_preview": markdown.ToHTML(md),
	})
}

// Project handlers

func (s *Server) handleCreateProject(w http.ResponseWriter, r *http.Request) {
	var req models.CreateProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	t := models.ProjectType(req.Type)
	if !t.IsValid() {
		respondError(w, http.StatusBadRequest, "validation_error", "invalid project type")
		return
	}

	sess := SessionFromContext(r.Context())

	if req.UseExample {
		sess.Project = templates.ExampleProject(t)
	} else {
		sess.Project = models.NewProject(t, req.Name)
	}

	if !s.saveSession(w, r, sess) {
		return
	}

	slog.Info("project created",
		"session_id", sess.ID,
		"type", t,
		"example", req.UseExample,
	)

	respondJSON(w, http.StatusCreated, s.projectView(sess.Project))
}

func (s *Server) handleGetProject(w http.ResponseWriter, r *http.Request) {
	_, p, ok := requireProject(w, r)
	if !ok {
		return
	}

	respondJSON(w, http.StatusOK, s.projectView(p))
}

func (s *Server) handleResetProject(w http.ResponseWriter, r *http.Request) {
	sess := SessionFromContext(r.Context())
	sess.Project = nil

	if !s.saveSession(w, r, sess) {
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{
		"message": "project reset",
	})
}

func (s *Server) handleUpdateSection(w http.ResponseWriter, r *http.Request) {
	sess, p, ok := requireProject(w, r)
	if !ok {
		return
	}

	sectionID := chi.URLParam(r, "id")
	if !s.templateLoader.Has(p.Type, sectionID) {
		respondError(w, http.StatusBadRequest, "unknown_section", "section not in this project type's catalog")
		return
	}

	var data models.Section
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	p.UpdateSection(sectionID, data)

	if !s.saveSession(w, r, sess) {
		return
	}

	respondJSON(w, http.StatusOK, s.preview(sess))
}

func (s *Server) handleUpdateTheme(w http.ResponseWriter, r *http.Request) {
	sess, p, ok := requireProject(w, r)
	if !ok {
		return
	}

	var req models.UpdateThemeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	if req.Theme == "" {
		req.Theme = "default"
	}
	p.Theme = req.Theme

	if !s.saveSession(w, r, sess) {
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{
		"theme": p.Theme,
	})
}

func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	sess, _, ok := requireProject(w, r)
	if !ok {
		return
	}

	md := markdown.Generate(sess.Project)
	respondJSON(w, http.StatusOK, models.PreviewResponse{
		Markdown: md,
		HTML:     markdown.ToHTML(md),
	})
}

func (s *Server) handleUploadStructure(w http.ResponseWriter, r *http.Request) {
	sess, p, ok := requireProject(w, r)
	if !ok {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, s.config.Upload.MaxBytes)
	if err := r.ParseMultipartForm(s.config.Upload.MaxBytes); err != nil {
		respondError(w, http.StatusRequestEntityTooLarge, "upload_too_large", "uploaded archive exceeds size limit")
		return
	}

	file, header, err := r.FormFile("project_files")
	if err != nil {
		respondError(w, http.StatusBadRequest, "missing_file", "no archive uploaded")
		return
	}
	defer file.Close()

	if !archive.Allowed(header.Filename) {
		respondError(w, http.StatusBadRequest, "unsupported_format", "unsupported archive type: use .zip or .tar.gz")
		return
	}

	uploadDir, err := os.MkdirTemp(s.config.Upload.Dir, "docgen-upload-")
	if err != nil {
		slog.Error("failed to create upload dir", "error", err)
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to store upload")
		return
	}
	defer func() {
		if err := os.RemoveAll(uploadDir); err != nil {
			slog.Warn("failed to remove upload dir", "dir", uploadDir, "error", err)
		}
	}()

	archivePath := filepath.Join(uploadDir, filepath.Base(header.Filename))
	if err := saveUpload(file, archivePath); err != nil {
		slog.Error("failed to store upload", "error", err)
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to store upload")
		return
	}

	structure, err := archive.Analyze(archivePath)
	if err != nil {
		slog.Error("failed to analyze archive", "error", err, "file", header.Filename)
		respondError(w, http.StatusUnprocessableEntity, "analysis_failed", fmt.Sprintf("failed to analyze archive: %v", err))
		return
	}

	p.Structure = structure
	if sec := p.Section("structure"); sec != nil {
		sec["manual_structure"] = models.Text(structure)
	}

	if !s.saveSession(w, r, sess) {
		return
	}

	s.preview(sess)

	slog.Info("structure uploaded",
		"session_id", sess.ID,
		"file", header.Filename,
		"size", header.Size,
	)

	respondJSON(w, http.StatusOK, models.StructureResponse{
		Structure: structure,
	})
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	_, p, ok := requireProject(w, r)
	if !ok {
		return
	}

	respondJSON(w, http.StatusOK, models.ExportResponse{
		Markdown: markdown.Generate(p),
		Filename: exportFilename(p),
	})
}

func (s *Server) handleDownload(w http.ResponseWriter, r *http.Request) {
	_, p, ok := requireProject(w, r)
	if !ok {
		return
	}

	md := markdown.Generate(p)

	w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", exportFilename(p)))
	w.WriteHeader(http.StatusOK)

	if _, err := io.WriteString(w, md); err != nil {
		slog.Error("failed to write download", "error", err)
	}
}

// saveUpload copies the uploaded archive to disk
func saveUpload(src io.Reader, path string) error {
	dst, err := os.Create(path)
	if err != nil {
		return err
	}

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		return err
	}
	return dst.Close()
}
