package source

import (
	"fmt"
	"strings"

	"dart-binding-generator/internal/category"
	"dart-binding-generator/internal/common"
	"dart-binding-generator/internal/diagnostic"
	"dart-binding-generator/primitive"
)

// TypeKind is the variant tag of a type descriptor.
type TypeKind int

const (
	TypeKindUnknown TypeKind = iota
	TypeKindInt32
	TypeKindInt64
	TypeKindBool
	TypeKindString
	TypeKindUnit
	TypeKindCustom     // named enum, struct or primitive-like type
	TypeKindCollection // homogeneous ordered container
)

// String returns a human-readable representation of the TypeKind.
func (k TypeKind) String() string {
	switch k {
	case TypeKindInt32:
		return "Int32"
	case TypeKindInt64:
		return "Int64"
	case TypeKindBool:
		return "Bool"
	case TypeKindString:
		return "String"
	case TypeKindUnit:
		return "Unit"
	case TypeKindCustom:
		return "Custom"
	case TypeKindCollection:
		return "Collection"
	default:
		return common.UnknownStr
	}
}

// KindFromPrimitive maps a primitive kind to its descriptor kind.
func KindFromPrimitive(k primitive.Kind) TypeKind {
	switch k {
	case primitive.KindInt32:
		return TypeKindInt32
	case primitive.KindInt64:
		return TypeKindInt64
	case primitive.KindBool:
		return TypeKindBool
	case primitive.KindString:
		return TypeKindString
	case primitive.KindUnit:
		return TypeKindUnit
	default:
		return TypeKindUnknown
	}
}

// Primitive returns the primitive kind of a scalar or Unit kind.
func (k TypeKind) Primitive() (primitive.Kind, bool) {
	switch k {
	case TypeKindInt32:
		return primitive.KindInt32, true
	case TypeKindInt64:
		return primitive.KindInt64, true
	case TypeKindBool:
		return primitive.KindBool, true
	case TypeKindString:
		return primitive.KindString, true
	case TypeKindUnit:
		return primitive.KindUnit, true
	default:
		return 0, false
	}
}

// Type is a host type descriptor.
type Type struct {
	Kind     TypeKind
	Nullable bool
	Category category.Category // Custom only
	Name     string            // Custom only
	Inner    *Type             // Collection only
}

func Int32(nullable bool) Type  { return Type{Kind: TypeKindInt32, Nullable: nullable} }
func Int64(nullable bool) Type  { return Type{Kind: TypeKindInt64, Nullable: nullable} }
func Bool(nullable bool) Type   { return Type{Kind: TypeKindBool, Nullable: nullable} }
func String(nullable bool) Type { return Type{Kind: TypeKindString, Nullable: nullable} }
func Unit() Type                { return Type{Kind: TypeKindUnit} }

// Custom creates a named type of an already resolved category.
func Custom(nullable bool, cat category.Category, name string) Type {
	return Type{Kind: TypeKindCustom, Nullable: nullable, Category: cat, Name: name}
}

// Collection creates a collection of inner. Nullability applies to the
// collection itself and is never propagated to inner.
func Collection(nullable bool, inner Type) Type {
	return Type{Kind: TypeKindCollection, Nullable: nullable, Inner: &inner}
}

// IsUnit returns true for the Unit descriptor.
func (t Type) IsUnit() bool {
	return t.Kind == TypeKindUnit
}

// Validate checks the structural invariants of t: Unit only appears bare,
// top-level and non-nullable, custom types are named and categorized and
// collections have an element type.
func (t Type) Validate() error {
	return t.validate(true)
}

func (t Type) validate(topLevel bool) error {
	switch t.Kind {
	case TypeKindInt32, TypeKindInt64, TypeKindBool, TypeKindString:
		return nil
	case TypeKindUnit:
		if !topLevel {
			return fmt.Errorf("%w: () may only be used as a bare return type", diagnostic.ErrUnsupportedType)
		}

		if t.Nullable {
			return fmt.Errorf("%w: () cannot be nullable", diagnostic.ErrUnsupportedType)
		}

		return nil
	case TypeKindCustom:
		if t.Name == "" {
			return fmt.Errorf("%w: custom type without a name", diagnostic.ErrUnsupportedType)
		}

		if !t.Category.Valid() {
			return fmt.Errorf("%w: custom type %s has no category", diagnostic.ErrUnsupportedType, t.Name)
		}

		return nil
	case TypeKindCollection:
		if t.Inner == nil {
			return fmt.Errorf("%w: collection without element type", diagnostic.ErrUnsupportedType)
		}

		return t.Inner.validate(false)
	default:
		return fmt.Errorf("%w: kind %s", diagnostic.ErrUnsupportedType, t.Kind)
	}
}

// String renders t in host syntax, e.g. "Option<Vec<Todo>>".
func (t Type) String() string {
	var sb strings.Builder

	t.write(&sb)

	return sb.String()
}

func (t Type) write(sb *strings.Builder) {
	if t.Nullable {
		sb.WriteString("Option<")
		defer sb.WriteString(">")
	}

	switch t.Kind {
	case TypeKindInt32:
		sb.WriteString("i32")
	case TypeKindInt64:
		sb.WriteString("i64")
	case TypeKindBool:
		sb.WriteString("bool")
	case TypeKindString:
		sb.WriteString("String")
	case TypeKindUnit:
		sb.WriteString("()")
	case TypeKindCustom:
		sb.WriteString(t.Name)
	case TypeKindCollection:
		sb.WriteString("Vec<")

		if t.Inner != nil {
			t.Inner.write(sb)
		}

		sb.WriteString(">")
	default:
		sb.WriteString(common.UnknownStr)
	}
}
