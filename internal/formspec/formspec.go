// Package formspec describes how the contact form is presented: title, labels,
// placeholders and input kinds. The field set itself is fixed by model.Fields.
package formspec

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/givers/contact/internal/model"
)

//go:embed default.yaml
var defaultYAML []byte

// Input kinds understood by the renderers.
const (
	InputText     = "text"
	InputEmail    = "email"
	InputTextarea = "textarea"
)

var ErrInvalidSpec = errors.New("invalid form spec")

// FieldSpec is the presentation of a single input.
type FieldSpec struct {
	Name        model.Field `yaml:"name"`
	Label       string      `yaml:"label"`
	Type        string      `yaml:"type"`
	Placeholder string      `yaml:"placeholder"`
	Rows        int         `yaml:"rows"`
}

// Spec is the presentation of the whole page.
type Spec struct {
	Title        string      `yaml:"title"`
	SubmitLabel  string      `yaml:"submit_label"`
	RequiredHint string      `yaml:"required_hint"`
	Fields       []FieldSpec `yaml:"fields"`
}

// Default returns the built-in presentation.
func Default() *Spec {
	s, err := Parse(defaultYAML)
	if err != nil {
		panic(fmt.Sprintf("formspec: embedded default: %v", err))
	}
	return s
}

// Load reads a YAML spec from path. An empty path yields Default.
func Load(path string) (*Spec, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read form spec: %w", err)
	}
	return Parse(data)
}

// Parse decodes and checks a YAML spec. Missing title, submit label or hint
// fall back to the defaults; fields must describe each known input once.
func Parse(data []byte) (*Spec, error) {
	var s Spec
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSpec, err)
	}
	if s.Title == "" {
		s.Title = "Contact Us"
	}
	if s.SubmitLabel == "" {
		s.SubmitLabel = "Send Message"
	}
	if s.RequiredHint == "" {
		s.RequiredHint = "Please fill out this field."
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

func (s *Spec) validate() error {
	if len(s.Fields) != len(model.Fields) {
		return fmt.Errorf("%w: want %d fields, got %d", ErrInvalidSpec, len(model.Fields), len(s.Fields))
	}
	seen := make(map[model.Field]bool, len(s.Fields))
	for i := range s.Fields {
		f := &s.Fields[i]
		if _, err := model.ParseField(string(f.Name)); err != nil {
			return fmt.Errorf("%w: field %q: %v", ErrInvalidSpec, f.Name, err)
		}
		if seen[f.Name] {
			return fmt.Errorf("%w: field %q listed twice", ErrInvalidSpec, f.Name)
		}
		seen[f.Name] = true

		switch f.Type {
		case InputText, InputEmail:
		case InputTextarea:
			if f.Rows <= 0 {
				f.Rows = 6
			}
		case "":
			f.Type = InputText
		default:
			return fmt.Errorf("%w: field %q: unsupported type %q", ErrInvalidSpec, f.Name, f.Type)
		}
		if f.Label == "" {
			f.Label = string(f.Name)
		}
	}
	return nil
}

// Field returns the presentation of one input.
func (s *Spec) Field(name model.Field) (FieldSpec, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return FieldSpec{}, false
}
