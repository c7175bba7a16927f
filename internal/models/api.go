package models

// CreateProjectRequest starts a new project in the caller's session
type CreateProjectRequest struct {
	Type       string `json:"type"`
	Name       string `json:"name,omitempty"`
	UseExample bool   `json:"use_example,omitempty"`
}

// UpdateThemeRequest changes the presentation theme for the session
type UpdateThemeRequest struct {
	Theme string `json:"theme"`
}

// ProjectTypeInfo describes a selectable project type
type ProjectTypeInfo struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Description string `json:"description"`
}

// ProjectView is the editor's read model: the project plus progress
type ProjectView struct {
	Project  *Project        `json:"project"`
	Status   map[string]bool `json:"status"`
	Progress int             `json:"progress"`
}

// PreviewResponse carries one render of the assembled document
type PreviewResponse struct {
	Markdown string `json:"markdown"`
	HTML     string `json:"html_preview"`
}

// StructureResponse returns the tree derived from an uploaded archive
type StructureResponse struct {
	Structure string `json:"structure"`
}

// ExportResponse carries the final document and a suggested filename
type ExportResponse struct {
	Markdown string `json:"markdown"`
	Filename string `json:"filename"`
}
