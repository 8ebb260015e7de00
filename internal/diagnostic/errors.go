package diagnostic

import (
	"errors"
	"fmt"
	"strconv"
)

// Diagnostic codes.
const (
	CodeUnresolvedType  = "UnresolvedType"
	CodeUnsupportedType = "UnsupportedType"
	CodeDuplicateType   = "DuplicateType"
	CodeInvalidManifest = "InvalidManifest"
	CodeInvalidTypeExpr = "InvalidTypeExpr"
)

var (
	// ErrUnresolvedType is returned when a custom type name has no registry entry.
	ErrUnresolvedType = errors.New("unresolved type")
	// ErrUnsupportedType is returned when a Unit type reaches a value position.
	ErrUnsupportedType = errors.New("unsupported type")
	// ErrInvalidTypeExpr is returned when a type expression cannot be parsed.
	ErrInvalidTypeExpr = errors.New("invalid type expression")
)

// Location points at a type expression in an input file.
type Location struct {
	File   string
	Line   int
	Column int
}

// IsZero returns true if no location information is present.
func (l Location) IsZero() bool {
	return l.File == "" && l.Line == 0 && l.Column == 0
}

// String returns file:line:column, omitting missing parts.
func (l Location) String() string {
	s := l.File
	if l.Line > 0 {
		if s != "" {
			s += ":"
		}

		s += strconv.Itoa(l.Line)
		if l.Column > 0 {
			s += ":" + strconv.Itoa(l.Column)
		}
	}

	return s
}

// Error is a generation error attributed to a source location.
type Error struct {
	Code     string
	Location Location
	Message  string
	Err      error
}

// Errorf creates an Error wrapping err with a formatted message.
func Errorf(err error, loc Location, format string, args ...any) *Error {
	return &Error{
		Code:     codeFor(err),
		Location: loc,
		Message:  fmt.Sprintf(format, args...),
		Err:      err,
	}
}

// At attributes err to loc unless it already carries a location.
func At(err error, loc Location) error {
	if err == nil {
		return nil
	}

	var genErr *Error
	if errors.As(err, &genErr) {
		return genErr.WithLocation(loc)
	}

	return &Error{Code: codeFor(err), Location: loc, Err: err}
}

func (e *Error) Error() string {
	msg := e.text()

	if e.Location.IsZero() {
		return msg
	}

	return e.Location.String() + ": " + msg
}

// text is the message without location.
func (e *Error) text() string {
	switch {
	case e.Err == nil:
		return e.Message
	case e.Message == "":
		return e.Err.Error()
	default:
		return e.Err.Error() + ": " + e.Message
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// WithLocation returns a copy of e attributed to loc unless e already has a location.
func (e *Error) WithLocation(loc Location) *Error {
	if !e.Location.IsZero() {
		return e
	}

	cp := *e
	cp.Location = loc

	return &cp
}

func codeFor(err error) string {
	switch {
	case errors.Is(err, ErrUnresolvedType):
		return CodeUnresolvedType
	case errors.Is(err, ErrUnsupportedType):
		return CodeUnsupportedType
	case errors.Is(err, ErrInvalidTypeExpr):
		return CodeInvalidTypeExpr
	default:
		return ""
	}
}
