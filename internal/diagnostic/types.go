package diagnostic

import (
	"errors"
	"fmt"
	"strings"

	"dart-binding-generator/internal/common"
)

// Diagnostics holds all diagnostic information from a generation pass.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity DiagnosticSeverity
	// Code is a unique identifier for this type of diagnostic.
	Code string
	// Message is the human-readable description.
	Message string
	// Declaration identifies the field, argument or return this relates to (if any).
	Declaration string
	// Location points at the offending type expression (if known).
	Location Location
	// Suggestions are potential fixes or alternatives.
	Suggestions []string
}

// DiagnosticSeverity represents the severity level of a diagnostic.
type DiagnosticSeverity int

const (
	DiagnosticInfo DiagnosticSeverity = iota
	DiagnosticWarning
	DiagnosticError
)

// String returns a human-readable severity name.
func (s DiagnosticSeverity) String() string {
	switch s {
	case DiagnosticInfo:
		return "info"
	case DiagnosticWarning:
		return "warning"
	case DiagnosticError:
		return "error"
	default:
		return common.UnknownStr
	}
}

// AddError adds an error diagnostic.
func (d *Diagnostics) AddError(code, message, declaration string, loc Location) {
	d.Errors = append(d.Errors, Diagnostic{
		Severity:    DiagnosticError,
		Code:        code,
		Message:     message,
		Declaration: declaration,
		Location:    loc,
	})
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code, message, declaration string, loc Location) {
	d.Warnings = append(d.Warnings, Diagnostic{
		Severity:    DiagnosticWarning,
		Code:        code,
		Message:     message,
		Declaration: declaration,
		Location:    loc,
	})
}

// AddInfo adds an info diagnostic.
func (d *Diagnostics) AddInfo(code, message, declaration string) {
	d.Infos = append(d.Infos, Diagnostic{
		Severity:    DiagnosticInfo,
		Code:        code,
		Message:     message,
		Declaration: declaration,
	})
}

// AddErr records err as an error diagnostic. Code and location are taken
// from a wrapped *Error when present.
func (d *Diagnostics) AddErr(err error, declaration string, suggestions ...string) {
	if err == nil {
		return
	}

	var genErr *Error
	if errors.As(err, &genErr) {
		d.AddError(genErr.Code, genErr.text(), declaration, genErr.Location)
	} else {
		d.AddError(codeFor(err), err.Error(), declaration, Location{})
	}

	if len(suggestions) > 0 {
		d.Errors[len(d.Errors)-1].Suggestions = suggestions
	}
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// Merge merges another Diagnostics instance into this one.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
	d.Infos = append(d.Infos, other.Infos...)
}

// IsValid returns true if there are no errors.
func (d *Diagnostics) IsValid() bool {
	return len(d.Errors) == 0
}

// Error returns a combined error from all error diagnostics, or nil if valid.
func (d *Diagnostics) Error() error {
	if d.IsValid() {
		return nil
	}

	var parts []string
	for _, e := range d.Errors {
		parts = append(parts, e.String())
	}

	return errors.New(strings.Join(parts, "; "))
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	var prefix []string
	if !d.Location.IsZero() {
		prefix = append(prefix, d.Location.String())
	}

	if d.Declaration != "" {
		prefix = append(prefix, d.Declaration)
	}

	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if len(prefix) > 0 {
		return strings.Join(prefix, " ") + ": " + msg
	}

	return msg
}
