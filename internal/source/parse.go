package source

import (
	"errors"
	"strings"
	"unicode"

	"dart-binding-generator/internal/category"
	"dart-binding-generator/internal/diagnostic"
	"dart-binding-generator/primitive"
)

const (
	optionPrefix = "Option<"
	vecPrefix    = "Vec<"
)

// Parse parses a host type expression and resolves custom names through reg.
// Errors are *diagnostic.Error values attributed to loc.
func Parse(expr string, reg category.Registry, loc diagnostic.Location) (Type, error) {
	p := parser{reg: reg, loc: loc, expr: expr}

	t, err := p.parse(expr)
	if err != nil {
		return Type{}, err
	}

	return t, nil
}

type parser struct {
	reg  category.Registry
	loc  diagnostic.Location
	expr string
}

func (p *parser) parse(s string) (Type, error) {
	s = stripReference(strings.TrimSpace(s))

	if s == "" {
		return Type{}, p.errorf(diagnostic.ErrInvalidTypeExpr, "empty type in %q", p.expr)
	}

	if inner, ok := unwrapGeneric(s, optionPrefix); ok {
		t, err := p.parse(inner)
		if err != nil {
			return Type{}, err
		}

		if kind, ok := t.Kind.Primitive(); ok && !kind.IsNullable() {
			return Type{}, p.errorf(diagnostic.ErrUnsupportedType, "%s cannot be nullable in %q", t, p.expr)
		}

		if t.Nullable {
			return Type{}, p.errorf(diagnostic.ErrInvalidTypeExpr, "nested Option in %q", p.expr)
		}

		t.Nullable = true

		return t, nil
	}

	if inner, ok := unwrapGeneric(s, vecPrefix); ok {
		t, err := p.parse(inner)
		if err != nil {
			return Type{}, err
		}

		if t.IsUnit() {
			return Type{}, p.errorf(diagnostic.ErrUnsupportedType, "() cannot be a collection element in %q", p.expr)
		}

		return Collection(false, t), nil
	}

	// a nested () is returned as is and rejected by the enclosing Option or Vec
	if kind, ok := primitive.FromHostName(s); ok {
		return Type{Kind: KindFromPrimitive(kind)}, nil
	}

	if !isIdent(s) {
		return Type{}, p.errorf(diagnostic.ErrInvalidTypeExpr, "unsupported type %q in %q", s, p.expr)
	}

	cat, err := p.reg.Lookup(s)
	if err != nil {
		if errors.Is(err, diagnostic.ErrUnresolvedType) {
			return Type{}, p.errorf(diagnostic.ErrUnresolvedType, "%s is not a registered enum, struct or primitive", s)
		}

		return Type{}, diagnostic.Errorf(err, p.loc, "resolving %s", s)
	}

	return Custom(false, cat, s), nil
}

func (p *parser) errorf(err error, format string, args ...any) error {
	return diagnostic.Errorf(err, p.loc, format, args...)
}

// unwrapGeneric returns the argument of prefix<...> when s is exactly that shape.
func unwrapGeneric(s, prefix string) (string, bool) {
	if !strings.HasPrefix(s, prefix) || !strings.HasSuffix(s, ">") {
		return "", false
	}

	return s[len(prefix) : len(s)-1], true
}

// stripReference removes leading borrows like "&", "&mut " or "&'a ".
func stripReference(s string) string {
	for strings.HasPrefix(s, "&") && s != "&str" {
		s = strings.TrimSpace(s[1:])

		if strings.HasPrefix(s, "'") {
			if idx := strings.IndexByte(s, ' '); idx > 0 {
				s = strings.TrimSpace(s[idx:])
			}
		}

		if rest, ok := strings.CutPrefix(s, "mut "); ok {
			s = strings.TrimSpace(rest)
		}
	}

	return s
}

func isIdent(s string) bool {
	for i, r := range s {
		if r == '_' || unicode.IsLetter(r) {
			continue
		}

		if i > 0 && unicode.IsDigit(r) {
			continue
		}

		return false
	}

	return s != ""
}
