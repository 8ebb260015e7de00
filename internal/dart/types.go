package dart

import (
	"fmt"

	"dart-binding-generator/internal/category"
	"dart-binding-generator/internal/diagnostic"
	"dart-binding-generator/internal/source"
)

// Type is the Dart projection of a source.Type.
type Type struct {
	kind     source.TypeKind
	nullable bool
	cat      category.Category
	name     string
	inner    *Type
}

// Project translates src into its Dart view. Nullability is copied level by
// level and custom categories are passed through. A Unit nested anywhere but
// the top level, or a malformed descriptor, fails with ErrUnsupportedType.
func Project(src source.Type) (Type, error) {
	if err := src.Validate(); err != nil {
		return Type{}, diagnostic.At(err, diagnostic.Location{})
	}

	return project(src), nil
}

// MustProject is like Project but panics on error.
func MustProject(src source.Type) Type {
	t, err := Project(src)
	if err != nil {
		panic(err)
	}

	return t
}

// project expects a validated descriptor.
func project(src source.Type) Type {
	t := Type{kind: src.Kind, nullable: src.Nullable}

	switch src.Kind {
	case source.TypeKindCustom:
		t.cat = src.Category
		t.name = src.Name
	case source.TypeKindCollection:
		inner := project(*src.Inner)
		t.inner = &inner
	}

	return t
}

func unsupported(format string, args ...any) error {
	return diagnostic.Errorf(diagnostic.ErrUnsupportedType, diagnostic.Location{}, format, args...)
}

// Kind returns the variant tag.
func (t Type) Kind() source.TypeKind { return t.kind }

// Nullable reports whether this level of the type is nullable.
func (t Type) Nullable() bool { return t.nullable }

// Category returns the category of a custom type, zero otherwise.
func (t Type) Category() category.Category { return t.cat }

// Name returns the name of a custom type, empty otherwise.
func (t Type) Name() string { return t.name }

// Inner returns the element type of a collection.
func (t Type) Inner() (Type, bool) {
	if t.inner == nil {
		return Type{}, false
	}

	return *t.inner, true
}

// IsUnit returns true for the Unit type.
func (t Type) IsUnit() bool { return t.kind == source.TypeKindUnit }

// IsEnum returns true for custom types of category Enum.
func (t Type) IsEnum() bool {
	return t.kind == source.TypeKindCustom && t.cat == category.Enum
}

func (t Type) String() string {
	if t.kind == source.TypeKindUnknown {
		return "dart.Type(invalid)"
	}

	return fmt.Sprintf("dart.Type(%s)", t.RenderType(false))
}
