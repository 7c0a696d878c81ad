package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cmmoran/cstgen/internal/model"
	"github.com/cmmoran/cstgen/pkg/estree"
)

func TestNodeTypes(t *testing.T) {
	types, err := nodeTypes("../../../pkg/estree", "kind_gen.go")
	require.NoError(t, err)
	require.Len(t, types, int(estree.KindCount)-1)

	for i, nt := range types {
		require.Equal(t, estree.Kind(i+1).String(), nt.Name)
	}

	byName := map[string]*model.NodeType{}
	for _, nt := range types {
		byName[nt.Name] = nt
	}
	var keys []string
	for _, f := range byName["TryStatement"].Children() {
		keys = append(keys, f.Key)
	}
	require.Equal(t, []string{"block", "handler", "finalizer"}, keys)
	require.Contains(t, byName["SwitchCase"].Comment, "default")

	var src strings.Builder
	require.NoError(t, render(types).Render(&src))
	require.Contains(t, src.String(), "func Children(n Node) []Node")
	require.Contains(t, src.String(), "case *TryStatement:")
}
