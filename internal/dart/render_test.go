package dart

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dart-binding-generator/internal/category"
	"dart-binding-generator/internal/source"
)

var (
	filter         = source.Custom(false, category.Enum, "Filter")
	nullableFilter = source.Custom(true, category.Enum, "Filter")
	todo           = source.Custom(false, category.Struct, "Todo")
	nullableTodo   = source.Custom(true, category.Struct, "Todo")
	uuid           = source.Custom(false, category.Prim, "Uuid")
	nullableUUID   = source.Custom(true, category.Prim, "Uuid")
)

func TestRenderType(t *testing.T) {
	tests := []struct {
		name    string
		src     source.Type
		wantRaw string
		want    string
	}{
		{"int32", source.Int32(false), "int", "int"},
		{"nullable int32", source.Int32(true), "int?", "int?"},
		{"int64", source.Int64(false), "int", "int"},
		{"nullable int64", source.Int64(true), "int?", "int?"},
		{"bool", source.Bool(false), "bool", "bool"},
		{"nullable bool", source.Bool(true), "bool?", "bool?"},
		{"string", source.String(false), "String", "String"},
		{"nullable string", source.String(true), "String?", "String?"},
		{"enum", filter, "int", "Filter"},
		{"nullable enum", nullableFilter, "int?", "Filter?"},
		{"struct", todo, "Todo", "Todo"},
		{"nullable struct", nullableTodo, "Todo?", "Todo?"},
		{"prim", uuid, "Uuid", "Uuid"},
		{"nullable prim", nullableUUID, "Uuid?", "Uuid?"},
		{"vec of int", source.Collection(false, source.Int32(false)), "List<int>", "List<int>"},
		{"nullable vec of int", source.Collection(true, source.Int32(false)), "List<int>?", "List<int>?"},
		{"vec of nullable int", source.Collection(false, source.Int32(true)), "List<int?>", "List<int?>"},
		{"vec of enums", source.Collection(false, filter), "List<int>", "List<Filter>"},
		{"nullable vec of nullable enums", source.Collection(true, nullableFilter), "List<int?>?", "List<Filter?>?"},
		{"vec of vec", source.Collection(false, source.Collection(false, source.Int32(false))), "List<List<int>>", "List<List<int>>"},
		{"unit", source.Unit(), "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			typ := MustProject(tt.src)

			assert.Equal(t, tt.wantRaw, typ.RenderType(true))
			assert.Equal(t, tt.want, typ.RenderType(false))
		})
	}
}

func TestRenderType_Deterministic(t *testing.T) {
	typ := MustProject(source.Collection(true, source.Collection(false, nullableFilter)))

	first := typ.RenderType(false)
	for range 10 {
		assert.Equal(t, first, typ.RenderType(false))
		assert.Equal(t, first, MustProject(source.Collection(true, source.Collection(false, nullableFilter))).RenderType(false))
	}
}

func TestRenderType_NullableCollectionMarksListOnly(t *testing.T) {
	for _, inner := range []source.Type{source.Int32(false), source.String(false), todo, filter, uuid} {
		got := MustProject(source.Collection(true, inner)).RenderType(false)
		innerText := MustProject(inner).RenderType(false)

		assert.Equal(t, "List<"+innerText+">?", got)
	}
}

func TestRenderTypeAttribute(t *testing.T) {
	tests := []struct {
		name     string
		src      source.Type
		wantAttr string
		wantOK   bool
	}{
		{"int32", source.Int32(false), "@dart_ffi.Int32()", true},
		{"nullable int32", source.Int32(true), "@dart_ffi.Int32()", true},
		{"int64", source.Int64(false), "@dart_ffi.Int64()", true},
		{"bool", source.Bool(false), "", false},
		{"string", source.String(false), "", false},
		{"enum", filter, "", false},
		{"struct", todo, "", false},
		{"vec", source.Collection(false, source.Int32(false)), "", false},
		{"unit", source.Unit(), "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			attr, ok := MustProject(tt.src).RenderTypeAttribute()
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantAttr, attr)
		})
	}
}

func TestRenderTypeAttribute_MatchesKindWidth(t *testing.T) {
	for _, src := range []source.Type{source.Int32(false), source.Int64(true)} {
		kind, ok := src.Kind.Primitive()
		require.True(t, ok)

		attr, ok := MustProject(src).RenderTypeAttribute()
		require.True(t, ok)
		assert.Equal(t, fmt.Sprintf("@dart_ffi.Int%d()", kind.Bits()), attr)
	}
}

func TestRenderWith(t *testing.T) {
	i64 := MustProject(source.Int64(false))
	enum := MustProject(nullableFilter)

	assert.Equal(t, "@dart_ffi.Int64() int", i64.RenderWith(AttrRaw()))
	assert.Equal(t, "int", i64.RenderWith(Raw()))
	assert.Equal(t, "@dart_ffi.Int64() int", i64.RenderWith(Attr()))
	assert.Equal(t, "int", i64.RenderWith(Plain()))

	assert.Equal(t, "int?", enum.RenderWith(AttrRaw()))
	assert.Equal(t, "int?", enum.RenderWith(Raw()))
	assert.Equal(t, "Filter?", enum.RenderWith(Attr()))
	assert.Equal(t, "Filter?", enum.RenderWith(Plain()))

	name, attr, ok := i64.RenderWithAttribute(true)
	require.True(t, ok)
	assert.Equal(t, "int", name)
	assert.Equal(t, "@dart_ffi.Int64()", attr)
}
