package dart

// RenderOptions selects how RenderWith spells a type.
type RenderOptions struct {
	// Raw renders enums as their underlying integer code, as FFI signatures need.
	Raw bool
	// IncludeTypeAttribute prefixes integers with their dart:ffi width annotation.
	IncludeTypeAttribute bool
}

// AttrRaw is used for dart:ffi struct fields: integer codes with their width attribute.
func AttrRaw() RenderOptions {
	return RenderOptions{Raw: true, IncludeTypeAttribute: true}
}

// Raw is used for native signatures: enums as integer codes, no attributes.
func Raw() RenderOptions {
	return RenderOptions{Raw: true}
}

// Attr keeps enum names and adds width attributes.
func Attr() RenderOptions {
	return RenderOptions{IncludeTypeAttribute: true}
}

// Plain is the client-facing spelling.
func Plain() RenderOptions {
	return RenderOptions{}
}

// RenderWith renders the type name per opts, prefixed with the type attribute
// and a space when requested and available.
func (t Type) RenderWith(opts RenderOptions) string {
	name := t.RenderType(opts.Raw)

	if !opts.IncludeTypeAttribute {
		return name
	}

	if attr, ok := t.RenderTypeAttribute(); ok {
		return attr + " " + name
	}

	return name
}

// RenderWithAttribute returns the type name and, separately, its attribute.
func (t Type) RenderWithAttribute(raw bool) (string, string, bool) {
	attr, ok := t.RenderTypeAttribute()

	return t.RenderType(raw), attr, ok
}
