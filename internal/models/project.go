package models

// ProjectType selects which type-specific documentation sections apply
type ProjectType string

const (
	TypeBackend    ProjectType = "backend"
	TypeFrontend   ProjectType = "frontend"
	TypeFullstack  ProjectType = "fullstack"
	TypeMobile     ProjectType = "mobile"
	TypeCybersec   ProjectType = "cybersec"
	TypeNetwork    ProjectType = "network"
	TypeFrameworks ProjectType = "frameworks"
)

// AllProjectTypes lists the supported types in display order
func AllProjectTypes() []ProjectType {
	return []ProjectType{
		TypeBackend,
		TypeFrontend,
		TypeFullstack,
		TypeMobile,
		TypeCybersec,
		TypeNetwork,
		TypeFrameworks,
	}
}

// IsValid returns true if the type is one of the supported project types
func (t ProjectType) IsValid() bool {
	switch t {
	case TypeBackend, TypeFrontend, TypeFullstack, TypeMobile,
		TypeCybersec, TypeNetwork, TypeFrameworks:
		return true
	}
	return false
}

// Label returns the human-readable name of the project type
func (t ProjectType) Label() string {
	switch t {
	case TypeBackend:
		return "Aplicação Backend"
	case TypeFrontend:
		return "Aplicação Frontend"
	case TypeFullstack:
		return "Aplicação Full Stack"
	case TypeMobile:
		return "Aplicação Mobile"
	case TypeCybersec:
		return "Projeto de Cybersegurança"
	case TypeNetwork:
		return "Sistemas de Redes"
	case TypeFrameworks:
		return "Framework Específico"
	}
	return string(t)
}

// Description returns a short description of the project type
func (t ProjectType) Description() string {
	switch t {
	case TypeBackend:
		return "Sistemas, APIs e serviços com foco em processamento e armazenamento de dados."
	case TypeFrontend:
		return "Interfaces de usuário, sites e aplicações web com foco em experiência do usuário."
	case TypeFullstack:
		return "Aplicações completas que integram frontend e backend em uma solução unificada."
	case TypeMobile:
		return "Aplicativos para dispositivos móveis iOS, Android ou multiplataforma."
	case TypeCybersec:
		return "Soluções de segurança digital, análise de vulnerabilidades e proteção de dados."
	case TypeNetwork:
		return "Infraestrutura de redes, protocolos e sistemas de comunicação."
	case TypeFrameworks:
		return "Bibliotecas, frameworks e ferramentas para desenvolvimento de software."
	}
	return "Template personalizado para seu tipo específico de projeto."
}

// Section maps field ids to their submitted values
type Section map[string]FieldValue

// Text returns the text value of a field, or "" if absent
func (s Section) Text(fieldID string) string {
	return s[fieldID].String()
}

// List returns the field value normalized to a string slice
func (s Section) List(fieldID string) []string {
	return s[fieldID].List()
}

// HasContent reports whether at least one field holds a non-empty value
func (s Section) HasContent() bool {
	for _, v := range s {
		if !v.IsZero() {
			return true
		}
	}
	return false
}

// Project is the document-assembly input: one project per session.
// The assembler treats it as an immutable snapshot; only the editor
// layer mutates it between renders.
type Project struct {
	Type      ProjectType        `json:"type"`
	Name      string             `json:"name,omitempty"`
	Sections  map[string]Section `json:"sections"`
	Structure string             `json:"structure,omitempty"`
	Theme     string             `json:"theme"`
}

// NewProject creates an empty project of the given type
func NewProject(t ProjectType, name string) *Project {
	return &Project{
		Type:     t,
		Name:     name,
		Sections: make(map[string]Section),
		Theme:    "default",
	}
}

// Section returns the named section, or nil if absent
func (p *Project) Section(id string) Section {
	return p.Sections[id]
}

// UpdateSection replaces the named section's field data
func (p *Project) UpdateSection(id string, data Section) {
	if p.Sections == nil {
		p.Sections = make(map[string]Section)
	}
	p.Sections[id] = data
}

// IsSectionComplete reports whether a section has been filled in.
// Required-field enforcement is intentionally not implemented; a
// section counts as complete as soon as it exists.
func (p *Project) IsSectionComplete(id string) bool {
	_, ok := p.Sections[id]
	return ok
}
