// Package dart projects host type descriptors onto Dart and renders them.
//
// A Type can only be obtained through Project, so every custom name that
// reaches a renderer has been resolved to a category first. Rendering is
// pure: the same Type always produces the same text.
//
// Four render operations are provided:
//   - RenderType: the Dart type name, raw or named enums
//   - RenderTypeAttribute: the dart:ffi width annotation of integers
//   - RenderFFIArg: Dart argument -> raw FFI argument expression
//   - RenderToDart: raw FFI result -> Dart value expression
package dart
