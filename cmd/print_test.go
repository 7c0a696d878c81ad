package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPrintCommand(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "ast.json")
	doc := `[{"type": "IfStatement", "test": {"type": "Identifier", "name": "a"},
	  "consequent": {"type": "BlockStatement", "body": [{"type": "DebuggerStatement"}]}}]`
	require.NoError(t, os.WriteFile(in, []byte(doc), 0o644))

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"print", "--level", "error", "-i", in, "--indent", "\t", "--verify"})
	require.NoError(t, rootCmd.Execute())
	require.Equal(t, "if (a) {\n\tdebugger;\n}\n", out.String())
}
