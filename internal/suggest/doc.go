// Package suggest ranks declared type names by similarity to a name that
// failed to resolve, so diagnostics can offer "did you mean" alternatives.
package suggest
