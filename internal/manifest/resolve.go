package manifest

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"dart-binding-generator/internal/category"
	"dart-binding-generator/internal/dart"
	"dart-binding-generator/internal/diagnostic"
	"dart-binding-generator/internal/source"
	"dart-binding-generator/internal/suggest"
	"dart-binding-generator/primitive"
)

// Resolved is a manifest whose type expressions were parsed and projected.
type Resolved struct {
	Library  string
	Registry *category.TypeInfoMap
	Enums    []EnumDef
	Structs  []ResolvedStruct
	Messages []ResolvedMessage
	Exports  []ResolvedExport
}

// ResolvedStruct is a struct with projected field types.
type ResolvedStruct struct {
	Name   string
	Model  bool
	Fields []ResolvedField
}

// ResolvedField is a named value with its projected type.
type ResolvedField struct {
	Name     string
	Type     dart.Type
	Source   source.Type
	Location diagnostic.Location
}

// ResolvedMessage is a message enum bound to its model.
type ResolvedMessage struct {
	Name     string
	Model    string
	Variants []ResolvedVariant
}

// ResolvedVariant is a message variant with projected argument types.
type ResolvedVariant struct {
	Name string
	Args []ResolvedField
}

// ResolvedExport is an exported method with projected signature.
type ResolvedExport struct {
	Name     string
	Receiver string
	Args     []ResolvedField
	Returns  ResolvedField
}

// Registry builds the category registry of all custom types declared in m.
// A name may be declared once; every later declaration is reported and the
// first one wins.
func (m *Manifest) Registry() (*category.TypeInfoMap, diagnostic.Diagnostics) {
	var diags diagnostic.Diagnostics

	reg := category.MustTypeInfoMap()

	add := func(name string, cat category.Category, pos Position) {
		loc := m.location(pos)

		if first, ok := reg.Get(name); ok {
			msg := fmt.Sprintf("type %s declared again as %s, first declared as %s", name, cat, first.Category)
			if !first.Location.IsZero() {
				msg += " at " + first.Location.String()
			}

			diags.AddError(diagnostic.CodeDuplicateType, msg, name, loc)

			return
		}

		if err := reg.Add(category.TypeInfo{Name: name, Category: cat, Location: loc}); err != nil {
			diags.AddError(diagnostic.CodeInvalidManifest, err.Error(), name, loc)
		}
	}

	for _, e := range m.Enums {
		add(e.Name, category.Enum, e.Pos)
	}

	for _, s := range m.Structs {
		add(s.Name, category.Struct, s.Pos)
	}

	for _, p := range m.Prims {
		add(p.Value, category.Prim, p.Pos)
	}

	return reg, diags
}

func (m *Manifest) location(pos Position) diagnostic.Location {
	return diagnostic.Location{File: m.File, Line: pos.Line, Column: pos.Column}
}

// Resolve parses every type expression of m against its own registry.
// All problems are collected; the returned Resolved is only complete when
// the diagnostics hold no errors.
func (m *Manifest) Resolve() (*Resolved, diagnostic.Diagnostics) {
	reg, diags := m.Registry()

	r := &resolver{manifest: m, reg: reg, diags: &diags}
	res := &Resolved{
		Library:  m.Library,
		Registry: reg,
		Enums:    m.Enums,
	}

	for _, e := range m.Enums {
		if len(e.Variants) == 0 {
			diags.AddError(diagnostic.CodeInvalidManifest, "enum has no variants", e.Name, m.location(e.Pos))
		}
	}

	for _, s := range m.Structs {
		rs := ResolvedStruct{Name: s.Name, Model: s.Model}

		for _, f := range s.Fields {
			rs.Fields = append(rs.Fields, r.value(f.Name, f.Type, s.Name+"."+f.Name))
		}

		res.Structs = append(res.Structs, rs)
	}

	for _, msg := range m.Messages {
		res.Messages = append(res.Messages, r.message(msg))
	}

	for _, e := range m.Exports {
		res.Exports = append(res.Exports, r.export(e))
	}

	return res, diags
}

type resolver struct {
	manifest *Manifest
	reg      *category.TypeInfoMap
	diags    *diagnostic.Diagnostics
}

func (r *resolver) loc(te TypeExpr) diagnostic.Location {
	return r.manifest.location(Position{Line: te.Line, Column: te.Column})
}

func (r *resolver) message(msg MessageDef) ResolvedMessage {
	info, ok := r.reg.Get(msg.Model)
	if !ok || info.Category != category.Struct || !r.isModel(msg.Model) {
		r.diags.AddError(diagnostic.CodeInvalidManifest,
			fmt.Sprintf("message target %q is not a model struct", msg.Model), msg.Name, r.manifest.location(msg.Pos))
	}

	rm := ResolvedMessage{Name: msg.Name, Model: msg.Model}

	for _, v := range msg.Variants {
		rv := ResolvedVariant{Name: v.Name}

		for i, arg := range v.Args {
			decl := fmt.Sprintf("%s::%s[%d]", msg.Name, v.Name, i)
			rv.Args = append(rv.Args, r.value(dart.ArgName(i), arg, decl))
		}

		rm.Variants = append(rm.Variants, rv)
	}

	return rm
}

func (r *resolver) export(e ExportDef) ResolvedExport {
	decl := e.Receiver + "::" + e.Name

	if info, ok := r.reg.Get(e.Receiver); !ok || info.Category != category.Struct {
		r.diags.AddError(diagnostic.CodeInvalidManifest,
			fmt.Sprintf("export receiver %q is not a struct", e.Receiver), decl, r.manifest.location(e.Pos))
	}

	re := ResolvedExport{Name: e.Name, Receiver: e.Receiver}

	for _, arg := range e.Args {
		re.Args = append(re.Args, r.value(arg.Name, arg.Type, decl+"("+arg.Name+")"))
	}

	re.Returns = r.resolve("return", e.Returns, decl+" -> "+e.Returns.Expr)

	return re
}

func (r *resolver) isModel(name string) bool {
	for _, s := range r.manifest.Structs {
		if s.Name == name {
			return s.Model
		}
	}

	return false
}

// value resolves a type that must carry a value, which excludes ().
func (r *resolver) value(name string, te TypeExpr, decl string) ResolvedField {
	f := r.resolve(name, te, decl)
	if f.Type.IsUnit() {
		r.diags.AddErr(diagnostic.Errorf(diagnostic.ErrUnsupportedType, f.Location,
			"() may only be used as a return type"), decl)
	}

	return f
}

func (r *resolver) resolve(name string, te TypeExpr, decl string) ResolvedField {
	loc := r.loc(te)
	f := ResolvedField{Name: name, Location: loc}

	src, err := source.Parse(te.Expr, r.reg, loc)
	if err != nil {
		var hints []string
		if errors.Is(err, diagnostic.ErrUnresolvedType) {
			hints = r.suggestions(te.Expr)
		}

		r.diags.AddErr(err, decl, hints...)

		return f
	}

	t, err := dart.Project(src)
	if err != nil {
		r.diags.AddErr(diagnostic.At(err, loc), decl)
		return f
	}

	f.Source = src
	f.Type = t

	return f
}

// suggestions offers registered names close to every unknown identifier
// in expr.
func (r *resolver) suggestions(expr string) []string {
	var out []string

	for _, ident := range strings.FieldsFunc(expr, notIdent) {
		if _, ok := primitive.FromHostName(ident); ok || isWrapper(ident) {
			continue
		}

		if _, ok := r.reg.Get(ident); ok {
			continue
		}

		out = append(out, suggest.Closest(ident, r.reg.Names())...)
	}

	return out
}

func isWrapper(ident string) bool {
	switch ident {
	case "Option", "Vec", "mut":
		return true
	default:
		return false
	}
}

func notIdent(r rune) bool {
	return r != '_' && !unicode.IsLetter(r) && !unicode.IsDigit(r)
}
