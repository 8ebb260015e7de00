package dart

import (
	"fmt"

	"dart-binding-generator/internal/category"
	"dart-binding-generator/internal/common"
	"dart-binding-generator/internal/source"
)

const (
	dartInt    = "int"
	dartBool   = "bool"
	dartString = "String"
	nullMarker = "?"
)

// RenderType renders the Dart type name. With raw set, enums are spelled as
// their integer code. Nullability of a collection marks the List itself,
// never its elements. Unit renders as the empty string.
func (t Type) RenderType(raw bool) string {
	var name string

	switch t.kind {
	case source.TypeKindInt32, source.TypeKindInt64:
		name = dartInt
	case source.TypeKindBool:
		name = dartBool
	case source.TypeKindString:
		name = dartString
	case source.TypeKindCustom:
		name = t.customName(raw)
	case source.TypeKindCollection:
		name = "List<" + t.inner.RenderType(raw) + ">"
	case source.TypeKindUnit:
		return ""
	default:
		panic(fmt.Sprintf("dart: unhandled type kind %s", t.kind))
	}

	if t.nullable {
		return name + nullMarker
	}

	return name
}

func (t Type) customName(raw bool) string {
	switch t.cat {
	case category.Enum:
		if raw {
			return dartInt
		}

		return t.name
	case category.Struct, category.Prim:
		return t.name
	default:
		panic(fmt.Sprintf("dart: unhandled category %s of %s", t.cat, t.name))
	}
}

// RenderTypeAttribute returns the dart:ffi annotation pinning the wire width
// of Int32 and Int64. Other kinds have none.
func (t Type) RenderTypeAttribute() (string, bool) {
	kind, ok := t.kind.Primitive()
	if !ok || !kind.IsInteger() {
		return "", false
	}

	return fmt.Sprintf("@%s.Int%d()", common.DartFFI, kind.Bits()), true
}
