package category

//go:generate go tool stringer -type=Category -output=category_string.go

// Category selects the rendering and conversion strategy of a custom type.
type Category int

const (
	_ Category = iota // zero value is invalid

	Enum
	Struct
	Prim // primitive-like custom type
)

// Valid returns true if c is one of the declared categories.
func (c Category) Valid() bool {
	return c >= Enum && c <= Prim
}
