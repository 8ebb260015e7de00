// Package gen emits the Dart side of the bindings for a resolved manifest.
//
// Generation uses text/template and is deterministic: declarations are
// emitted in manifest order. Per struct it writes the client class, the
// dart:ffi Struct mirror and a toDart extension; per message variant a
// sender method marshalling its arguments; per export a method converting
// the native result back to Dart.
package gen
