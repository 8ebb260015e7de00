package gen

import "text/template"

var libraryTemplate = template.Must(template.New("library").Parse(`// Code generated by dart-binding-generator. DO NOT EDIT.
// ignore_for_file: non_constant_identifier_names, camel_case_types, camel_case_extensions

import 'dart:ffi' as dart_ffi;
import '{{.FFIImport}}' as rid_ffi;
{{- range .Enums}}

enum {{.Name}} { {{.Variants}} }
{{- end}}
{{- range .Structs}}

class {{.Name}} {
{{- range .Fields}}
  final {{.Type}} {{.DartName}};
{{- end}}

  const {{.Name}}({{.CtorParams}});
}

class {{.RawName}} extends dart_ffi.Struct {
{{- range .Fields}}
  {{if .RawAttr}}{{.RawAttr}} {{end}}external {{.RawType}} {{.Name}};
{{- end}}
}

extension Rid_ToDart_ExtOn{{.RawName}} on dart_ffi.Pointer<{{.RawName}}> {
  {{.Name}} toDart() {
    return {{.Name}}(
{{- range .Fields}}
      {{.ToDart}},
{{- end}}
    );
  }
}
{{- end}}
{{- range .Messages}}

extension Rid_Message_ExtOn{{.RawModel}}For{{.Name}} on dart_ffi.Pointer<{{.RawModel}}> {
{{- range .Variants}}
  void {{.Method}}({{.Params}}) {
    rid_ffi.{{.Symbol}}({{.CallArgs}});
  }
{{- end}}
}
{{- end}}
{{- range .ExportGroups}}

extension Rid_Export_ExtOn{{.RawReceiver}} on dart_ffi.Pointer<{{.RawReceiver}}> {
{{- range .Exports}}
  {{.ReturnType}} {{.Method}}({{.Params}}) {
    {{.Body}};
  }
{{- end}}
}
{{- end}}
{{- if .Signatures}}

// Raw signatures of the native symbols.
{{- range .Signatures}}
typedef {{.Name}} = {{.ReturnType}} Function({{.Params}});
{{- end}}
{{- end}}
`))
