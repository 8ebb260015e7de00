package manifest

// Manifest represents the root of a YAML manifest file.
type Manifest struct {
	// Version of the manifest schema (for future compatibility).
	Version string `yaml:"version,omitempty"`

	// Library is the name of the generated Dart library.
	// Defaults to the snake_case name of the first model struct.
	Library string `yaml:"library,omitempty"`

	// Structs are the model structs in declaration order.
	Structs []StructDef `yaml:"structs,omitempty"`

	// Enums are the enums shared with the client, variants in encoding order.
	Enums []EnumDef `yaml:"enums,omitempty"`

	// Prims are custom types converted like primitives.
	Prims NameList `yaml:"prims,omitempty"`

	// Messages are the message enums a model can be updated with.
	Messages []MessageDef `yaml:"messages,omitempty"`

	// Exports are methods exported from a struct.
	Exports []ExportDef `yaml:"exports,omitempty"`

	// File is the path the manifest was loaded from.
	File string `yaml:"-"`
}

// StructDef describes a struct and its fields.
type StructDef struct {
	Name   string     `yaml:"name"`
	Model  bool       `yaml:"model,omitempty"`
	Fields []FieldDef `yaml:"fields,omitempty"`
	Pos    Position   `yaml:"-"`
}

// FieldDef is a named, typed struct field or export argument.
type FieldDef struct {
	Name string   `yaml:"name"`
	Type TypeExpr `yaml:"type"`
}

// EnumDef describes an enum. Variant order defines the raw integer codes.
type EnumDef struct {
	Name     string   `yaml:"name"`
	Variants []string `yaml:"variants"`
	Pos      Position `yaml:"-"`
}

// MessageDef describes a message enum sent to a model.
type MessageDef struct {
	Name     string       `yaml:"name"`
	Model    string       `yaml:"model"`
	Variants []VariantDef `yaml:"variants"`
	Pos      Position     `yaml:"-"`
}

// VariantDef is one message variant with its positional arguments.
type VariantDef struct {
	Name string     `yaml:"name"`
	Args []TypeExpr `yaml:"args,omitempty"`
}

// ExportDef describes an exported method.
type ExportDef struct {
	Name     string     `yaml:"name"`
	Receiver string     `yaml:"receiver"`
	Args     []FieldDef `yaml:"args,omitempty"`
	// Returns defaults to "()".
	Returns TypeExpr `yaml:"returns,omitempty"`
	Pos     Position `yaml:"-"`
}

// TypeExpr is a host type expression such as "Option<Vec<Todo>>" together
// with the position it was read from.
type TypeExpr struct {
	Expr   string
	Line   int
	Column int
}

// Position is the line and column a declaration was read from.
// Struct, enum, message and export declarations point at their name.
type Position struct {
	Line   int
	Column int
}

// Name is a declared identifier with its position.
type Name struct {
	Value string
	Pos   Position
}

// NameList represents a list of names written either as a single string or an array.
type NameList []Name
