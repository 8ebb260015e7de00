// Package manifest handles the YAML description of the types a host
// scanner discovered.
//
// A manifest lists model structs with their fields, enums with their
// ordered variants, primitive-like custom types, messages sent to a model
// and exported methods. Resolve turns every type expression of a manifest
// into a projected dart.Type, reporting all problems with their YAML
// location instead of stopping at the first one.
package manifest
