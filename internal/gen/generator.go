package gen

import (
	"bytes"
	"errors"
	"fmt"

	"dart-binding-generator/internal/manifest"
)

// GeneratorConfig holds configuration for code generation.
type GeneratorConfig struct {
	// FFIImport is the Dart import providing the native rid_ffi symbols.
	FFIImport string
	// IncludeSignatures emits typedefs describing the raw native signatures.
	IncludeSignatures bool
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		FFIImport:         "ffigen_binding.dart",
		IncludeSignatures: true,
	}
}

// Generator generates Dart code from a resolved manifest.
type Generator struct {
	config GeneratorConfig
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config GeneratorConfig) *Generator {
	return &Generator{config: config}
}

// GeneratedFile represents a generated Dart source file.
type GeneratedFile struct {
	// Filename is the name of the file (e.g., "todo.dart").
	Filename string
	// Content is the Dart source code.
	Content []byte
}

// Generate renders the Dart library of res.
func (g *Generator) Generate(res *manifest.Resolved) ([]GeneratedFile, error) {
	if res == nil {
		return nil, errors.New("generating library: nothing resolved")
	}

	data, err := g.buildTemplateData(res)
	if err != nil {
		return nil, fmt.Errorf("generating %s: %w", res.Library, err)
	}

	var buf bytes.Buffer

	err = libraryTemplate.Execute(&buf, data)
	if err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	return []GeneratedFile{{
		Filename: res.Library + ".dart",
		Content:  buf.Bytes(),
	}}, nil
}
