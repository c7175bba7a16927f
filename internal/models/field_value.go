package models

import (
	"encoding/json"
	"strings"
)

// FieldValue holds a single form field value. Most fields carry plain
// text; checkbox-style fields submit a list of strings. Both wire
// shapes decode into this one type so consumers never branch on the
// raw representation.
type FieldValue struct {
	text string
	list []string
}

// Text wraps a plain string value
func Text(s string) FieldValue {
	return FieldValue{text: s}
}

// List wraps a multi-value (checkbox) field
func List(values ...string) FieldValue {
	return FieldValue{list: values}
}

// IsZero reports whether the value is empty in either shape
func (v FieldValue) IsZero() bool {
	if v.list != nil {
		return len(v.list) == 0
	}
	return v.text == ""
}

// String returns the value as a single string. Multi-value fields are
// joined with ", " so they can be embedded in running text.
func (v FieldValue) String() string {
	if v.list != nil {
		return strings.Join(v.list, ", ")
	}
	return v.text
}

// List returns the value normalized to a slice: a plain string becomes
// a one-element slice, an empty value returns nil.
func (v FieldValue) List() []string {
	if v.list != nil {
		return v.list
	}
	if v.text == "" {
		return nil
	}
	return []string{v.text}
}

// MarshalJSON encodes the value in its original shape
func (v FieldValue) MarshalJSON() ([]byte, error) {
	if v.list != nil {
		return json.Marshal(v.list)
	}
	return json.Marshal(v.text)
}

// UnmarshalJSON accepts either a JSON string or an array of strings
func (v *FieldValue) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*v = FieldValue{text: s}
		return nil
	}

	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return err
	}
	*v = FieldValue{list: list}
	return nil
}
