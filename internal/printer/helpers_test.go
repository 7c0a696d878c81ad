package printer

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/cmmoran/cstgen/pkg/cst"
	"github.com/cmmoran/cstgen/pkg/estree"
)

func id(name string) *estree.Identifier { return &estree.Identifier{Name: name} }
func num(v float64) *estree.Literal     { return &estree.Literal{Value: v} }
func str(s string) *estree.Literal      { return &estree.Literal{Value: s} }

func bin(op string, l, r estree.Node) *estree.BinaryExpression {
	return &estree.BinaryExpression{Operator: op, Left: l, Right: r}
}

func logical(op string, l, r estree.Node) *estree.LogicalExpression {
	return &estree.LogicalExpression{Operator: op, Left: l, Right: r}
}

func unary(op string, arg estree.Node) *estree.UnaryExpression {
	return &estree.UnaryExpression{Operator: op, Prefix: true, Argument: arg}
}

func call(callee estree.Node, args ...estree.Node) *estree.CallExpression {
	return &estree.CallExpression{Callee: callee, Arguments: args}
}

func member(obj estree.Node, prop string) *estree.MemberExpression {
	return &estree.MemberExpression{Object: obj, Property: id(prop)}
}

func stmt(e estree.Node) *estree.ExpressionStatement { return &estree.ExpressionStatement{Expression: e} }

func block(body ...estree.Node) *estree.BlockStatement { return &estree.BlockStatement{Body: body} }

func decl(kind string, pairs ...estree.Node) *estree.VariableDeclaration {
	d := &estree.VariableDeclaration{Kind: kind}
	for i := 0; i+1 < len(pairs); i += 2 {
		d.Declarations = append(d.Declarations, &estree.VariableDeclarator{ID: pairs[i], Init: pairs[i+1]})
	}
	return d
}

func line(text string) estree.Comment  { return estree.Comment{Type: estree.LineComment, Value: text} }
func blockc(text string) estree.Comment { return estree.Comment{Type: estree.BlockComment, Value: text} }

func leading[T estree.Node](n T, cs ...estree.Comment) T {
	n.Comments().LeadingComments = cs
	return n
}

func trailing[T estree.Node](n T, cs ...estree.Comment) T {
	n.Comments().TrailingComments = cs
	return n
}

func printText(t *testing.T, body ...estree.Node) string {
	t.Helper()
	items, err := PrintStatements(body, Config{})
	require.NoError(t, err)
	_, err = cst.Build("File", items)
	require.NoError(t, err)
	return cst.Text(items)
}

func requireText(t *testing.T, want, got string) {
	t.Helper()
	diff := cmp.Diff(want, got)
	if diff != "" {
		t.Logf("diff: %s", diff)
	}
	require.EqualValuesf(t, want, got, "Print() got=%q, expected=%q", got, want)
}
