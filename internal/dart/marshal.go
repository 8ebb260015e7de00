package dart

import (
	"fmt"

	"dart-binding-generator/internal/category"
	"dart-binding-generator/internal/common"
	"dart-binding-generator/internal/source"
)

// ArgName returns the placeholder name of the parameter at slot.
func ArgName(slot int) string {
	return fmt.Sprintf("arg%d", slot)
}

// RenderFFIArg renders the expression converting Dart parameter arg<slot>
// into the raw value passed across the FFI boundary.
//
// Nullable integers as well as custom types and collections are passed
// through unchanged. A nullable argument encoding does not exist on the
// native side yet.
func (t Type) RenderFFIArg(slot int) (string, error) {
	arg := ArgName(slot)

	switch t.kind {
	case source.TypeKindBool:
		if t.nullable {
			return fmt.Sprintf("%[1]s == null ? 0 : %[1]s ? 1 : 0", arg), nil
		}

		return arg + " ? 1 : 0", nil

	case source.TypeKindString:
		if t.nullable {
			return arg + "?." + common.StringToNativeInt8 + "()", nil
		}

		return arg + "." + common.StringToNativeInt8 + "()", nil

	case source.TypeKindInt32, source.TypeKindInt64:
		return arg, nil

	case source.TypeKindCustom, source.TypeKindCollection:
		return arg, nil

	case source.TypeKindUnit:
		return "", unsupported("an argument of type () cannot be passed across the FFI boundary")

	default:
		panic(fmt.Sprintf("dart: unhandled type kind %s", t.kind))
	}
}

// RenderToDart renders the expression converting the raw FFI value snip into
// its Dart form. Enums are looked up by index in their ordered values list,
// structs and collections call their toDart conversion.
func (t Type) RenderToDart(snip string) (string, error) {
	switch t.kind {
	case source.TypeKindInt32, source.TypeKindInt64, source.TypeKindBool, source.TypeKindString:
		// raw strings are already converted to Dart strings
		if t.nullable {
			return snip + nullMarker, nil
		}

		return snip, nil

	case source.TypeKindCustom:
		return t.customToDart(snip), nil

	case source.TypeKindCollection:
		// every collection has a toDart extension mapping its items and materializing a List
		return t.convert(snip), nil

	case source.TypeKindUnit:
		return "", unsupported("converting to Dart makes no sense for a () result")

	default:
		panic(fmt.Sprintf("dart: unhandled type kind %s", t.kind))
	}
}

func (t Type) customToDart(snip string) string {
	switch t.cat {
	case category.Enum:
		if t.nullable {
			return fmt.Sprintf("() { final x = %s; return x != null ? %s.values[x] : null; }()", snip, t.name)
		}

		return fmt.Sprintf("%s.values[%s]", t.name, snip)

	case category.Struct, category.Prim:
		return t.convert(snip)

	default:
		panic(fmt.Sprintf("dart: unhandled category %s of %s", t.cat, t.name))
	}
}

func (t Type) convert(snip string) string {
	if t.nullable {
		return snip + "?." + common.ToDartMethod + "()"
	}

	return snip + "." + common.ToDartMethod + "()"
}
