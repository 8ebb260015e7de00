// Package category classifies custom (non-primitive) type names.
//
// Every custom type referenced by a type descriptor is either an enum, a
// struct or a primitive-like alias. The Registry holding that mapping is
// built once per generation pass and only read afterwards.
package category
