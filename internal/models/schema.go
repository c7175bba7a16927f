package models

// FieldType enumerates the editor input kinds a field can use
type FieldType string

const (
	FieldText     FieldType = "text"
	FieldTextarea FieldType = "textarea"
	FieldTags     FieldType = "tags"
	FieldSelect   FieldType = "select"
	FieldRadio    FieldType = "radio"
	FieldCheckbox FieldType = "checkbox"
	FieldFile     FieldType = "file"
)

// Condition gates a field on the value of a sibling field
type Condition struct {
	Field string `yaml:"field" json:"field"`
	Value string `yaml:"value" json:"value"`
}

// FieldSchema describes one editable field within a section
type FieldSchema struct {
	ID          string     `yaml:"id" json:"id"`
	Label       string     `yaml:"label" json:"label"`
	Type        FieldType  `yaml:"type" json:"type"`
	Required    bool       `yaml:"required" json:"required"`
	Placeholder string     `yaml:"placeholder,omitempty" json:"placeholder,omitempty"`
	Options     []string   `yaml:"options,omitempty" json:"options,omitempty"`
	Accept      string     `yaml:"accept,omitempty" json:"accept,omitempty"`
	Conditional *Condition `yaml:"conditional,omitempty" json:"conditional,omitempty"`
}

// SectionSchema describes a section of the multi-step editor: its
// display title and the fields the user fills in
type SectionSchema struct {
	ID     string        `yaml:"id" json:"id"`
	Title  string        `yaml:"title" json:"title"`
	Fields []FieldSchema `yaml:"fields" json:"fields"`
}
