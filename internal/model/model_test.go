package model

import (
	"go/ast"
	"go/parser"
	"testing"

	"github.com/stretchr/testify/require"
)

func expr(t *testing.T, src string) ast.Expr {
	t.Helper()
	e, err := parser.ParseExpr(src)
	require.NoError(t, err)
	return e
}

func TestResolve(t *testing.T) {
	catch := &NodeType{Name: "CatchClause"}
	try := &NodeType{Name: "TryStatement", Fields: []*NodeField{
		{Name: "Block", TypeExpr: expr(t, "Node")},
		{Name: "Handler", TypeExpr: expr(t, "*CatchClause")},
		{Name: "Cases", TypeExpr: expr(t, "[]*CatchClause")},
		{Name: "Body", TypeExpr: expr(t, "[]Node")},
		{Name: "Value", TypeExpr: expr(t, "*RegExp")},
		{Name: "Fixed", TypeExpr: expr(t, "[2]Node")},
		{Name: "Async", TypeExpr: expr(t, "bool")},
	}}
	Resolve([]*NodeType{catch, try})

	var kinds []FieldKind
	for _, f := range try.Fields {
		kinds = append(kinds, f.Kind)
	}
	require.Equal(t, []FieldKind{FieldNode, FieldNode, FieldNodeList, FieldNodeList, FieldOther, FieldOther, FieldOther}, kinds)

	var names []string
	for _, f := range try.Children() {
		names = append(names, f.Name)
	}
	require.Equal(t, []string{"Block", "Handler", "Cases", "Body"}, names)
}
