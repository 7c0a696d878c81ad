package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(append(args, "--level", "error"))
	require.NoError(t, rootCmd.Execute())
	return out.String()
}

func TestSnapshotCommands(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "ast.json")
	manifestPath := filepath.Join(dir, "manifest.yaml")
	write := func(name string) {
		doc := `[{"type": "ExpressionStatement", "expression": {"type": "Identifier", "name": "` + name + `"}}]`
		require.NoError(t, os.WriteFile(in, []byte(doc), 0o644))
	}

	write("before")
	first := run(t, "snapshot", "-i", in, "-o", dir, "-m", manifestPath, "-n", "app", "-v", "v1")
	require.Equal(t, filepath.Join(dir, "app-v1.js")+"\n", first)
	require.Contains(t, run(t, "diff", "-m", manifestPath), "nothing to compare")

	write("after")
	second := run(t, "snapshot", "-i", in, "-o", dir, "-m", manifestPath, "-n", "app", "-v", "v2")
	require.Equal(t, filepath.Join(dir, "app-v2.js")+"\n", second)

	list := run(t, "snapshot", "list", "-m", manifestPath)
	require.Equal(t, "- app v1 "+filepath.Join(dir, "app-v1.js")+"\n* app v2 "+filepath.Join(dir, "app-v2.js")+"\n", list)

	diff := run(t, "diff", "-m", manifestPath)
	require.Contains(t, diff, "before")
	require.Contains(t, diff, "after")
}
