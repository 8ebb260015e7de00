package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dart-binding-generator/internal/manifest"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer

	cmd := NewRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()

	return stdout.String(), stderr.String(), err
}

func writeStarter(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "todo.yaml")
	require.NoError(t, os.WriteFile(path, manifest.Starter, 0o644))

	return path
}

func TestRender(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{
			name: "nullable collection of enums",
			args: []string{"render", "Option<Vec<Filter>>", "--enum", "Filter"},
			want: []string{
				"source:    Option<Vec<Filter>>\n",
				"type:      List<Filter>?\n",
				"attribute: -\n",
				"argument:  arg0\n",
				"return:    raw?.toDart()\n",
			},
		},
		{
			name: "raw enum",
			args: []string{"render", "Option<Filter>", "--enum", "Filter", "--raw", "--snippet", "store.filter"},
			want: []string{
				"type:      int?\n",
				"return:    () { final x = store.filter; return x != null ? Filter.values[x] : null; }()\n",
			},
		},
		{
			name: "attributed integer",
			args: []string{"render", "u32", "--attr", "--raw"},
			want: []string{
				"type:      @dart_ffi.Int32() int\n",
				"attribute: @dart_ffi.Int32()\n",
			},
		},
		{
			name: "bool slot",
			args: []string{"render", "bool", "--slot", "2"},
			want: []string{"argument:  arg2 ? 1 : 0\n", "return:    raw\n"},
		},
		{
			name: "unit",
			args: []string{"render", "()"},
			want: []string{
				"type:      \n",
				"argument:  error [UnsupportedType]",
				"return:    error [UnsupportedType]",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := execute(t, tt.args...)
			require.NoError(t, err)

			for _, w := range tt.want {
				assert.Contains(t, out, w)
			}
		})
	}
}

func TestRender_Manifest(t *testing.T) {
	path := writeStarter(t)

	out, _, err := execute(t, "render", "Vec<&Todo>", "--manifest", path, "--snippet", "store.todos")
	require.NoError(t, err)

	assert.Contains(t, out, "type:      List<Todo>\n")
	assert.Contains(t, out, "return:    store.todos.toDart()\n")
}

func TestRender_Unresolved(t *testing.T) {
	_, _, err := execute(t, "render", "Vec<Todo>")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unresolved type")
	assert.Contains(t, err.Error(), "<arg>")
}

func TestRender_ConflictingRegistration(t *testing.T) {
	_, _, err := execute(t, "render", "Todo", "--enum", "Todo", "--struct", "Todo")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already registered")
}

func TestRender_Dump(t *testing.T) {
	out, _, err := execute(t, "render", "Option<u64>", "--dump")
	require.NoError(t, err)

	assert.Contains(t, out, "--- source descriptor")
	assert.Contains(t, out, "Nullable: (bool) true")
	assert.Contains(t, out, "--- target descriptor")
}

func TestGen(t *testing.T) {
	path := writeStarter(t)
	outDir := filepath.Join(t.TempDir(), "lib")

	out, _, err := execute(t, "gen", "--manifest", path, "--output", outDir, "--no-signatures")
	require.NoError(t, err)
	assert.Contains(t, out, "wrote "+filepath.Join(outDir, "todo.dart"))

	content, err := os.ReadFile(filepath.Join(outDir, "todo.dart"))
	require.NoError(t, err)
	assert.Contains(t, string(content), "enum Filter { Completed, Pending, All }")
	assert.NotContains(t, string(content), "typedef")
}

func TestGen_RequiresManifest(t *testing.T) {
	_, _, err := execute(t, "gen")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `required flag(s) "manifest" not set`)
}

func TestCheck(t *testing.T) {
	path := writeStarter(t)

	out, _, err := execute(t, "check", "--manifest", path, "--verbose")
	require.NoError(t, err)
	assert.Contains(t, out, "ok (3 types)")
}

func TestCheck_ReportsAllDiagnostics(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	data := strings.Join([]string{
		"structs:",
		"  - name: Model",
		"    model: true",
		"    fields:",
		"      - name: a",
		"        type: Modl",
		"      - name: b",
		"        type: Vec<()>",
	}, "\n")
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	_, stderr, err := execute(t, "check", "--manifest", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "2 error(s)")
	assert.Contains(t, stderr, path+":6:15 Model.a: [UnresolvedType]")
	assert.Contains(t, stderr, "  did you mean Model?\n")
	assert.Contains(t, stderr, path+":8:15 Model.b: [UnsupportedType]")

	_, _, err = execute(t, "gen", "--manifest", path, "--output", t.TempDir())
	require.Error(t, err)
}

func TestInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bindings.yaml")

	out, _, err := execute(t, "init", "--path", path)
	require.NoError(t, err)
	assert.Contains(t, out, "wrote "+path)

	m, err := manifest.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "todo", m.Library)

	_, _, err = execute(t, "init", "--path", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	_, _, err = execute(t, "init", "--path", path, "--force")
	require.NoError(t, err)
}
