package dart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dart-binding-generator/internal/category"
	"dart-binding-generator/internal/diagnostic"
	"dart-binding-generator/internal/source"
)

func TestProject_MirrorsSource(t *testing.T) {
	src := source.Collection(true, source.Collection(false, source.Custom(true, category.Enum, "Filter")))

	got, err := Project(src)
	require.NoError(t, err)

	assert.Equal(t, source.TypeKindCollection, got.Kind())
	assert.True(t, got.Nullable())

	mid, ok := got.Inner()
	require.True(t, ok)
	assert.Equal(t, source.TypeKindCollection, mid.Kind())
	assert.False(t, mid.Nullable())

	leaf, ok := mid.Inner()
	require.True(t, ok)
	assert.Equal(t, source.TypeKindCustom, leaf.Kind())
	assert.True(t, leaf.Nullable())
	assert.Equal(t, category.Enum, leaf.Category())
	assert.Equal(t, "Filter", leaf.Name())
	assert.True(t, leaf.IsEnum())

	_, ok = leaf.Inner()
	assert.False(t, ok)
}

func TestProject_Scalars(t *testing.T) {
	for _, src := range []source.Type{
		source.Int32(false), source.Int32(true),
		source.Int64(false), source.Int64(true),
		source.Bool(false), source.Bool(true),
		source.String(false), source.String(true),
	} {
		got := MustProject(src)
		assert.Equal(t, src.Kind, got.Kind())
		assert.Equal(t, src.Nullable, got.Nullable())
		assert.Empty(t, got.Name())
	}

	unit := MustProject(source.Unit())
	assert.True(t, unit.IsUnit())
}

func TestProject_Rejects(t *testing.T) {
	tests := []struct {
		name string
		src  source.Type
	}{
		{"unit in collection", source.Collection(false, source.Unit())},
		{"unit deep in collection", source.Collection(true, source.Collection(false, source.Unit()))},
		{"nullable unit", source.Type{Kind: source.TypeKindUnit, Nullable: true}},
		{"custom without category", source.Type{Kind: source.TypeKindCustom, Name: "Todo"}},
		{"custom without name", source.Custom(false, category.Struct, "")},
		{"collection without inner", source.Type{Kind: source.TypeKindCollection}},
		{"zero value", source.Type{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Project(tt.src)
			require.ErrorIs(t, err, diagnostic.ErrUnsupportedType)
			assert.Equal(t, tt.src.Validate().Error(), err.Error())

			var genErr *diagnostic.Error
			require.ErrorAs(t, err, &genErr)
			assert.Equal(t, diagnostic.CodeUnsupportedType, genErr.Code)
			assert.True(t, genErr.Location.IsZero())

			assert.Panics(t, func() { MustProject(tt.src) })
		})
	}
}

func TestType_String(t *testing.T) {
	assert.Equal(t, "dart.Type(List<Todo>?)",
		MustProject(source.Collection(true, source.Custom(false, category.Struct, "Todo"))).String())
	assert.Equal(t, "dart.Type(invalid)", Type{}.String())
}
