package printer

import (
	"strings"

	"github.com/cmmoran/cstgen/pkg/cst"
	"github.com/cmmoran/cstgen/pkg/estree"
)

func (b *builder) typeAnnotation(n estree.Node) {
	b.punct(":")
	b.space()
	b.typ(n.(*estree.TSTypeAnnotation).TypeAnnotation)
}

// keywordType handles the predefined types; TSBigIntKeyword becomes `bigint`.
func (b *builder) keywordType(n estree.Node) {
	name := strings.TrimSuffix(strings.TrimPrefix(n.Type().String(), "TS"), "Keyword")
	b.word(strings.ToLower(name))
}

func (b *builder) typeReference(n estree.Node) {
	r := n.(*estree.TSTypeReference)
	b.typeName(r.TypeName)
	if r.TypeArguments != nil {
		b.typ(r.TypeArguments)
	}
}

func (b *builder) typeName(n estree.Node) {
	if n.Type() == estree.KindIdentifier {
		b.node(n)
		return
	}
	b.typ(n)
}

func (b *builder) typeArguments(n estree.Node) {
	b.punct("<")
	b.list(n.(*estree.TSTypeParameterInstantiation).Params, false, (*builder).typ, cst.Punct(","))
	b.punct(">")
}

func (b *builder) qualifiedName(n estree.Node) {
	q := n.(*estree.TSQualifiedName)
	b.typeName(q.Left)
	b.punct(".")
	b.node(q.Right)
}

func (b *builder) arrayType(n estree.Node) {
	elem := n.(*estree.TSArrayType).ElementType
	switch elem.Type() {
	case estree.KindTSUnionType, estree.KindTSIntersectionType:
		b.punct("(")
		b.typ(elem)
		b.punct(")")
	default:
		b.typ(elem)
	}
	b.punct("[]")
}

// compositeType handles union and intersection types. A union inside an intersection keeps its
// parentheses.
func (b *builder) compositeType(n estree.Node) {
	var (
		types []estree.Node
		op    = "|"
	)
	switch t := n.(type) {
	case *estree.TSUnionType:
		types = t.Types
	case *estree.TSIntersectionType:
		types, op = t.Types, "&"
	}
	for i, t := range types {
		if i > 0 {
			b.space()
			b.punct(op)
			b.space()
		}
		if op == "&" && t.Type() == estree.KindTSUnionType {
			b.punct("(")
			b.typ(t)
			b.punct(")")
			continue
		}
		b.typ(t)
	}
}

func (b *builder) literalType(n estree.Node) {
	b.node(n.(*estree.TSLiteralType).Literal)
}

func (b *builder) tupleType(n estree.Node) {
	b.punct("[")
	b.list(n.(*estree.TSTupleType).ElementTypes, false, (*builder).typ, cst.Punct(","))
	b.punct("]")
}

func (b *builder) parenthesizedType(n estree.Node) {
	b.punct("(")
	b.typ(n.(*estree.TSParenthesizedType).TypeAnnotation)
	b.punct(")")
}

func (b *builder) typeAlias(n estree.Node) {
	d := n.(*estree.TSTypeAliasDeclaration)
	if d.Declare {
		b.word("declare")
		b.space()
	}
	b.word("type")
	b.space()
	b.node(d.ID)
	b.space()
	b.punct("=")
	b.space()
	b.typ(d.TypeAnnotation)
	b.punct(";")
}
