package gen

import (
	"fmt"
	"strings"

	"dart-binding-generator/internal/dart"
	"dart-binding-generator/internal/diagnostic"
	"dart-binding-generator/internal/manifest"
)

const (
	rawPrefix     = "Raw"
	symbolPrefix  = "rid_"
	ffiAlias      = "rid_ffi."
	dartVoid      = "void"
	pointerFormat = "dart_ffi.Pointer<%s>"
)

// templateData holds all data needed for the library template.
type templateData struct {
	FFIImport    string
	Enums        []enumData
	Structs      []structData
	Messages     []messageData
	ExportGroups []exportGroup
	Signatures   []signatureData
}

type enumData struct {
	Name     string
	Variants string
}

type structData struct {
	Name       string
	RawName    string
	CtorParams string
	Fields     []fieldData
}

// fieldData is one struct field in its three renderings.
type fieldData struct {
	Name     string // native (raw struct) name
	DartName string
	Type     string
	RawType  string
	RawAttr  string
	ToDart   string
}

type messageData struct {
	Name     string
	RawModel string
	Variants []variantData
}

type variantData struct {
	Method   string
	Symbol   string
	Params   string
	CallArgs string
}

type exportGroup struct {
	RawReceiver string
	Exports     []exportData
}

type exportData struct {
	Method     string
	ReturnType string
	Params     string
	Body       string
}

type signatureData struct {
	Name       string
	ReturnType string
	Params     string
}

// buildTemplateData constructs the template data from a resolved manifest.
func (g *Generator) buildTemplateData(res *manifest.Resolved) (*templateData, error) {
	data := &templateData{FFIImport: g.config.FFIImport}

	for _, e := range res.Enums {
		data.Enums = append(data.Enums, enumData{
			Name:     e.Name,
			Variants: strings.Join(e.Variants, ", "),
		})
	}

	for _, s := range res.Structs {
		sd, err := g.buildStruct(s)
		if err != nil {
			return nil, err
		}

		data.Structs = append(data.Structs, sd)
	}

	for _, m := range res.Messages {
		md, err := g.buildMessage(m, data)
		if err != nil {
			return nil, err
		}

		data.Messages = append(data.Messages, md)
	}

	groups := map[string]int{}

	for _, e := range res.Exports {
		ed, err := g.buildExport(e, data)
		if err != nil {
			return nil, err
		}

		idx, ok := groups[e.Receiver]
		if !ok {
			idx = len(data.ExportGroups)
			groups[e.Receiver] = idx
			data.ExportGroups = append(data.ExportGroups, exportGroup{RawReceiver: rawPrefix + e.Receiver})
		}

		data.ExportGroups[idx].Exports = append(data.ExportGroups[idx].Exports, ed)
	}

	if !g.config.IncludeSignatures {
		data.Signatures = nil
	}

	return data, nil
}

func (g *Generator) buildStruct(s manifest.ResolvedStruct) (structData, error) {
	sd := structData{Name: s.Name, RawName: rawPrefix + s.Name}

	params := make([]string, 0, len(s.Fields))

	for _, f := range s.Fields {
		rawType, attr, _ := f.Type.RenderWithAttribute(true)

		toDart, err := f.Type.RenderToDart("this.ref." + f.Name)
		if err != nil {
			return structData{}, fieldError(s.Name+"."+f.Name, f, err)
		}

		fd := fieldData{
			Name:     f.Name,
			DartName: camelCase(f.Name),
			Type:     f.Type.RenderWith(dart.Plain()),
			RawType:  rawType,
			RawAttr:  attr,
			ToDart:   toDart,
		}

		params = append(params, "this."+fd.DartName)
		sd.Fields = append(sd.Fields, fd)
	}

	sd.CtorParams = strings.Join(params, ", ")

	return sd, nil
}

func (g *Generator) buildMessage(m manifest.ResolvedMessage, data *templateData) (messageData, error) {
	rawModel := rawPrefix + m.Model
	md := messageData{Name: m.Name, RawModel: rawModel}

	for _, v := range m.Variants {
		params, rawParams, callArgs, err := marshalArgs(m.Name+"::"+v.Name, v.Args)
		if err != nil {
			return messageData{}, err
		}

		symbol := symbolPrefix + "msg_" + v.Name
		md.Variants = append(md.Variants, variantData{
			Method:   "msg" + upperFirst(v.Name),
			Symbol:   symbol,
			Params:   strings.Join(params, ", "),
			CallArgs: strings.Join(append([]string{"this"}, callArgs...), ", "),
		})

		data.Signatures = append(data.Signatures, signatureData{
			Name:       pascalCase(symbol),
			ReturnType: dartVoid,
			Params:     strings.Join(append([]string{fmt.Sprintf(pointerFormat, rawModel)}, rawParams...), ", "),
		})
	}

	return md, nil
}

func (g *Generator) buildExport(e manifest.ResolvedExport, data *templateData) (exportData, error) {
	decl := e.Receiver + "::" + e.Name

	params, rawParams, callArgs, err := marshalArgs(decl, e.Args)
	if err != nil {
		return exportData{}, err
	}

	symbol := symbolPrefix + "export_" + e.Receiver + "_" + e.Name
	call := ffiAlias + symbol + "(" + strings.Join(append([]string{"this"}, callArgs...), ", ") + ")"

	ed := exportData{
		Method:     camelCase(e.Name),
		ReturnType: orVoid(e.Returns.Type.RenderWith(dart.Plain())),
		Params:     strings.Join(params, ", "),
		Body:       call,
	}

	if !e.Returns.Type.IsUnit() {
		conv, err := e.Returns.Type.RenderToDart(call)
		if err != nil {
			return exportData{}, fieldError(decl, e.Returns, err)
		}

		ed.Body = "return " + conv
	}

	data.Signatures = append(data.Signatures, signatureData{
		Name:       pascalCase(symbol),
		ReturnType: orVoid(e.Returns.Type.RenderWith(dart.Raw())),
		Params:     strings.Join(append([]string{fmt.Sprintf(pointerFormat, rawPrefix+e.Receiver)}, rawParams...), ", "),
	})

	return ed, nil
}

// marshalArgs renders the Dart parameters, raw parameters and call arguments.
// Parameters are named after their slot so the call expressions line up.
func marshalArgs(decl string, args []manifest.ResolvedField) (params, rawParams, callArgs []string, err error) {
	for slot, arg := range args {
		name := dart.ArgName(slot)

		expr, renderErr := arg.Type.RenderFFIArg(slot)
		if renderErr != nil {
			return nil, nil, nil, fieldError(fmt.Sprintf("%s(%s)", decl, arg.Name), arg, renderErr)
		}

		params = append(params, arg.Type.RenderWith(dart.Plain())+" "+name)
		rawParams = append(rawParams, arg.Type.RenderWith(dart.Raw())+" "+name)
		callArgs = append(callArgs, expr)
	}

	return params, rawParams, callArgs, nil
}

func fieldError(decl string, f manifest.ResolvedField, err error) error {
	return fmt.Errorf("%s: %w", decl, diagnostic.At(err, f.Location))
}

func orVoid(typ string) string {
	if typ == "" {
		return dartVoid
	}

	return typ
}
