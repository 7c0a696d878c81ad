package cst

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func stream() []Item {
	return []Item{
		Open("ExpressionStatement"),
		Open("CallExpression"),
		Ident("f"), Punct("("),
		Open("Literal"), Lit("1"), Close(),
		Punct(")"),
		Close(),
		Punct(";"),
		Close(),
		Space("\n"),
	}
}

func TestBuild(t *testing.T) {
	root, err := Build("File", stream())
	require.NoError(t, err)
	require.Equal(t, "File", root.Name)
	require.Equal(t, "f(1);\n", root.Text())
	require.Equal(t, Text(stream()), root.Text())

	calls := root.Find("CallExpression")
	require.Len(t, calls, 1)
	require.Equal(t, "f(1)", calls[0].Text())

	want := []Token{
		{Kind: Identifier, Text: "f"},
		{Kind: Punctuator, Text: "("},
		{Kind: Literal, Text: "1"},
		{Kind: Punctuator, Text: ")"},
		{Kind: Punctuator, Text: ";"},
		{Kind: Whitespace, Text: "\n"},
	}
	if diff := cmp.Diff(want, root.Tokens()); diff != "" {
		t.Errorf("Tokens() mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildUnbalanced(ttt *testing.T) {
	tests := []struct {
		name  string
		items []Item
	}{
		{name: "close without open", items: []Item{Punct(";"), Close()}},
		{name: "left open", items: []Item{Open("Program"), Punct(";")}},
	}
	for _, tt := range tests {
		ttt.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := Build("File", tt.items)
			require.ErrorIs(t, err, ErrUnbalanced)
		})
	}
}

func TestWalkSkipsChildren(t *testing.T) {
	root, err := Build("File", stream())
	require.NoError(t, err)

	var names []string
	root.Walk(func(c Child) bool {
		if c.Node == nil {
			return true
		}
		names = append(names, c.Node.Name)
		return c.Node.Name != "CallExpression"
	})
	require.Equal(t, []string{"ExpressionStatement", "CallExpression"}, names)
}

func TestItemWidth(t *testing.T) {
	require.Equal(t, 0, Open("X").Width())
	require.Equal(t, 0, Close().Width())
	require.Equal(t, 3, Lit("é😀a").Width())
}

func TestKindText(t *testing.T) {
	b, err := Keyword.MarshalText()
	require.NoError(t, err)
	require.Equal(t, "Keyword", string(b))

	var k Kind
	require.NoError(t, k.UnmarshalText([]byte("whitespace")))
	require.Equal(t, Whitespace, k)
	require.Error(t, k.UnmarshalText([]byte("comment")))
	require.Equal(t, "Kind(9)", Kind(9).String())
}

func TestEncode(ttt *testing.T) {
	root, err := Build("File", stream())
	require.NoError(ttt, err)

	ttt.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, root.Encode(&buf, "JSON"))
		var doc map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
		require.Equal(t, "File", doc["name"])
		require.Contains(t, buf.String(), `"kind": "Identifier"`)
	})

	ttt.Run("yaml", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, root.Encode(&buf, "yaml"))
		var doc struct {
			Name     string           `yaml:"name"`
			Children []map[string]any `yaml:"children"`
		}
		require.NoError(t, yaml.Unmarshal(buf.Bytes(), &doc))
		require.Equal(t, "File", doc.Name)
		require.Len(t, doc.Children, 2)
		require.Equal(t, "ExpressionStatement", doc.Children[0]["name"])
		require.Equal(t, "Whitespace", doc.Children[1]["kind"])
	})

	ttt.Run("text", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, root.Encode(&buf, ""))
		require.Equal(t, "f(1);\n", buf.String())
	})

	ttt.Run("unknown", func(t *testing.T) {
		require.Error(t, root.Encode(&bytes.Buffer{}, "xml"))
	})
}
