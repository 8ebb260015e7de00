package primitive

//go:generate go tool stringer -type=Kind -output=kind_string.go

// Kind is a primitive scalar kind of the host type system.
type Kind int

const (
	_ Kind = iota // skip zero value, use it as a default (invalid) value for Kind

	KindInt32
	KindInt64
	KindBool
	KindString
	KindUnit // no value, only valid as a bare return type

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

func (k Kind) IsInteger() bool {
	switch k {
	default:
		return false
	case KindInt32, KindInt64:
		return true
	}
}

// IsNullable reports whether the kind can carry a nullability flag.
func (k Kind) IsNullable() bool {
	return k != KindUnit && k > 0 && int(k) < KindTotal
}

func (k Kind) Bits() int {
	switch k {
	default:
		panic("only integer kinds has meaningful bits amount, but requested for: " + k.String())
	case KindInt32:
		return 32
	case KindInt64:
		return 64
	}
}

// FromHostName maps a host primitive spelling to its kind.
// Narrow integers widen to 32 bits, pointer-sized integers to 64 bits.
func FromHostName(name string) (Kind, bool) {
	switch name {
	case "i8", "i16", "i32", "u8", "u16", "u32":
		return KindInt32, true
	case "i64", "u64", "isize", "usize":
		return KindInt64, true
	case "bool":
		return KindBool, true
	case "String", "str", "&str":
		return KindString, true
	case "()":
		return KindUnit, true
	default:
		return 0, false
	}
}
