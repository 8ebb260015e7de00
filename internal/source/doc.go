// Package source models type descriptors of the host type system.
//
// A Type is a closed variant: a primitive scalar (Int32, Int64, Bool,
// String), Unit, a named Custom type whose category was resolved through a
// category.Registry, or a homogeneous Collection of another Type. Every
// variant except Unit carries its own nullability flag.
//
// Parse turns host spellings such as "Option<Vec<&Todo>>" into a Type.
package source
