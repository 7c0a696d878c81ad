// Package model describes the node struct types of package estree as kindgen discovers them.
package model

import "go/ast"

type FieldKind int

const (
	FieldOther    FieldKind = iota
	FieldNode               // Node or *T where T is a node type
	FieldNodeList           // []Node or []*T where T is a node type
)

// NodeField is one named field of a node struct.
type NodeField struct {
	Name     string   // Go identifier
	Key      string   // ESTree property name, from the mapstructure tag
	TypeExpr ast.Expr // AST for the field type
	Kind     FieldKind
}

// NodeType is a struct type embedding Base.
type NodeType struct {
	Name    string
	File    string // file name within the package
	Comment string
	Fields  []*NodeField
}

// Children returns the fields holding child nodes, in declaration order.
func (t *NodeType) Children() []*NodeField {
	var out []*NodeField
	for _, f := range t.Fields {
		if f.Kind != FieldOther {
			out = append(out, f)
		}
	}
	return out
}

// Resolve classifies every field of types now that the full set of node type names is known.
func Resolve(types []*NodeType) {
	names := make(map[string]bool, len(types))
	for _, t := range types {
		names[t.Name] = true
	}
	for _, t := range types {
		for _, f := range t.Fields {
			f.Kind = classify(f.TypeExpr, names)
		}
	}
}

func classify(e ast.Expr, names map[string]bool) FieldKind {
	switch x := e.(type) {
	case *ast.Ident:
		if x.Name == "Node" {
			return FieldNode
		}
	case *ast.StarExpr:
		if id, ok := x.X.(*ast.Ident); ok && names[id.Name] {
			return FieldNode
		}
	case *ast.ArrayType:
		if x.Len == nil && classify(x.Elt, names) == FieldNode {
			return FieldNodeList
		}
	}
	return FieldOther
}
