package source

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dart-binding-generator/internal/category"
	"dart-binding-generator/internal/diagnostic"
)

func todoRegistry() *category.TypeInfoMap {
	return category.MustTypeInfoMap(
		category.TypeInfo{Name: "Filter", Category: category.Enum},
		category.TypeInfo{Name: "Todo", Category: category.Struct},
		category.TypeInfo{Name: "Uuid", Category: category.Prim},
	)
}

func TestParse(t *testing.T) {
	tests := []struct {
		expr string
		want Type
	}{
		{"u32", Int32(false)},
		{"i16", Int32(false)},
		{"usize", Int64(false)},
		{"Option<u64>", Int64(true)},
		{"bool", Bool(false)},
		{"Option<bool>", Bool(true)},
		{"String", String(false)},
		{"&str", String(false)},
		{"&'a str", String(false)},
		{"Option<String>", String(true)},
		{"()", Unit()},
		{"Filter", Custom(false, category.Enum, "Filter")},
		{"Option<Filter>", Custom(true, category.Enum, "Filter")},
		{"&Todo", Custom(false, category.Struct, "Todo")},
		{"&mut Todo", Custom(false, category.Struct, "Todo")},
		{"Uuid", Custom(false, category.Prim, "Uuid")},
		{"Vec<Todo>", Collection(false, Custom(false, category.Struct, "Todo"))},
		{"Vec<&Todo>", Collection(false, Custom(false, category.Struct, "Todo"))},
		{"Option<Vec<u32>>", Collection(true, Int32(false))},
		{"Vec<Option<u32>>", Collection(false, Int32(true))},
		{" Vec< Vec<i32> > ", Collection(false, Collection(false, Int32(false)))},
	}

	reg := todoRegistry()

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			got, err := Parse(tt.expr, reg, diagnostic.Location{})
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			require.NoError(t, got.Validate())
		})
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		expr    string
		wantErr error
	}{
		{"Missing", diagnostic.ErrUnresolvedType},
		{"Vec<Missing>", diagnostic.ErrUnresolvedType},
		{"Option<()>", diagnostic.ErrUnsupportedType},
		{"Vec<()>", diagnostic.ErrUnsupportedType},
		{"Option<Vec<()>>", diagnostic.ErrUnsupportedType},
		{"Option<Option<u32>>", diagnostic.ErrInvalidTypeExpr},
		{"HashMap<String, u32>", diagnostic.ErrInvalidTypeExpr},
		{"Vec<>", diagnostic.ErrInvalidTypeExpr},
		{"", diagnostic.ErrInvalidTypeExpr},
		{"f64", diagnostic.ErrUnresolvedType},
	}

	reg := todoRegistry()
	loc := diagnostic.Location{File: "todo.yaml", Line: 12, Column: 17}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			_, err := Parse(tt.expr, reg, loc)
			require.ErrorIs(t, err, tt.wantErr)

			var genErr *diagnostic.Error
			require.ErrorAs(t, err, &genErr)
			assert.Equal(t, loc, genErr.Location)
			assert.Contains(t, err.Error(), "todo.yaml:12:17")
		})
	}
}

func TestParse_NullableUnitMessage(t *testing.T) {
	_, err := Parse("Option<()>", todoRegistry(), diagnostic.Location{})
	require.ErrorIs(t, err, diagnostic.ErrUnsupportedType)
	assert.Contains(t, err.Error(), `() cannot be nullable in "Option<()>"`)
}

func TestParse_RoundTripsString(t *testing.T) {
	reg := todoRegistry()

	for _, expr := range []string{"Option<Vec<Option<Filter>>>", "Vec<Vec<i64>>", "Option<Uuid>", "()"} {
		got, err := Parse(expr, reg, diagnostic.Location{})
		require.NoError(t, err)
		assert.Equal(t, expr, got.String())
	}
}
