package common

// UnknownStr is the String() result for out-of-range enum values.
const UnknownStr = "unknown"

// DartFFI is the import alias generated code uses for dart:ffi.
const DartFFI = "dart_ffi"

// StringToNativeInt8 is the extension method turning a Dart String into a native buffer.
const StringToNativeInt8 = "toNativeInt8"

// ToDartMethod is the conversion method generated for structs and collections.
const ToDartMethod = "toDart"
