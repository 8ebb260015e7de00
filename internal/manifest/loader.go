package manifest

import (
	"fmt"
	"os"
	"strings"
	"unicode"

	"gopkg.in/yaml.v3"
)

const (
	defaultVersion = "1"
	defaultLibrary = "bindings"
	unitExpr       = "()"
)

// LoadFile loads and parses a YAML manifest from the given path.
func LoadFile(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest %s: %w", path, err)
	}

	m, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	m.File = path

	return m, nil
}

// Parse parses YAML data into a Manifest.
func Parse(data []byte) (*Manifest, error) {
	var m Manifest

	err := yaml.Unmarshal(data, &m)
	if err != nil {
		return nil, fmt.Errorf("failed to parse manifest YAML: %w", err)
	}

	applyDefaults(&m)

	return &m, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(m *Manifest) {
	if m.Version == "" {
		m.Version = defaultVersion
	}

	if m.Library == "" {
		m.Library = defaultLibrary

		for _, s := range m.Structs {
			if s.Model {
				m.Library = SnakeCase(s.Name)
				break
			}
		}
	}

	for i := range m.Exports {
		e := &m.Exports[i]
		if e.Returns.Expr == "" {
			e.Returns.Expr = unitExpr
		}
	}
}

// Marshal serializes a Manifest to YAML.
func Marshal(m *Manifest) ([]byte, error) {
	return yaml.Marshal(m)
}

// WriteFile writes a Manifest to the given path.
func WriteFile(m *Manifest, path string) error {
	data, err := Marshal(m)
	if err != nil {
		return fmt.Errorf("failed to marshal manifest: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write manifest %s: %w", path, err)
	}

	return nil
}

// SnakeCase converts "TodoModel" to "todo_model".
func SnakeCase(s string) string {
	var sb strings.Builder

	runes := []rune(s)
	for i, r := range runes {
		if unicode.IsUpper(r) {
			if i > 0 && (unicode.IsLower(runes[i-1]) || (i+1 < len(runes) && unicode.IsLower(runes[i+1]))) {
				sb.WriteByte('_')
			}

			r = unicode.ToLower(r)
		}

		sb.WriteRune(r)
	}

	return sb.String()
}
