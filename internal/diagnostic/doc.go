// Package diagnostic provides structured errors and warnings for a
// generation pass.
//
// Key capabilities:
//   - Source locations for every type expression that failed to resolve
//   - Sentinel errors for the UnresolvedType and UnsupportedType taxonomy
//   - Collection of all problems of a pass instead of stopping at the first
package diagnostic
