package print

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cmmoran/cstgen/internal/parser"
	"github.com/cmmoran/cstgen/pkg/printer"
)

const doc = `[
  {"type": "VariableDeclaration", "kind": "const", "declarations": [
    {"type": "VariableDeclarator", "id": {"type": "Identifier", "name": "a"}, "init": {"type": "Literal", "value": 1}}
  ]},
  {"type": "ExpressionStatement", "expression": {"type": "CallExpression",
    "callee": {"type": "Identifier", "name": "f"}, "arguments": [{"type": "Identifier", "name": "a"}]}}
]`

func TestGenerate(ttt *testing.T) {
	ttt.Run("stdin to stdout", func(t *testing.T) {
		var out bytes.Buffer
		path, err := Generate(printer.NewOptions(), strings.NewReader(doc), &out)
		require.NoError(t, err)
		require.Equal(t, "", path)
		require.Equal(t, "const a = 1;\n\nf(a);\n", out.String())
	})

	ttt.Run("file to file", func(t *testing.T) {
		dir := t.TempDir()
		in := filepath.Join(dir, "ast.json")
		require.NoError(t, os.WriteFile(in, []byte(doc), 0o644))

		o := printer.NewOptions()
		o.InFile, o.OutDir, o.OutFile, o.Verify = in, filepath.Join(dir, "out"), "a.js", true
		path, err := Generate(o, nil, nil)
		require.NoError(t, err)
		require.Equal(t, filepath.Join(dir, "out", "a.js"), path)

		got, err := os.ReadFile(path)
		require.NoError(t, err)
		require.Equal(t, "const a = 1;\n\nf(a);\n", string(got))
	})

	ttt.Run("json tree", func(t *testing.T) {
		var out bytes.Buffer
		o := printer.NewOptions()
		o.Format = printer.FormatJSON
		_, err := Generate(o, strings.NewReader(doc), &out)
		require.NoError(t, err)
		require.Contains(t, out.String(), `"name": "VariableDeclaration"`)
	})

	ttt.Run("load errors", func(t *testing.T) {
		_, err := Generate(printer.NewOptions(), strings.NewReader(`{"type": "Nope"}`), &bytes.Buffer{})
		require.ErrorIs(t, err, parser.ErrUnknownNodeType)
		require.ErrorContains(t, err, "stdin")

		_, err = Generate(printer.NewOptions(), nil, &bytes.Buffer{})
		require.Error(t, err)
	})

	ttt.Run("print errors", func(t *testing.T) {
		bad := `[{"type": "ExpressionStatement", "expression": {"type": "TSAnyKeyword"}}]`
		_, err := Generate(printer.NewOptions(), strings.NewReader(bad), &bytes.Buffer{})
		require.ErrorIs(t, err, printer.ErrUnsupportedNodeType)
	})
}
