package printer

import (
	"github.com/cmmoran/cstgen/pkg/cst"
	"github.com/cmmoran/cstgen/pkg/estree"
)

func (b *builder) importDeclaration(n estree.Node) {
	d := n.(*estree.ImportDeclaration)
	b.word("import")
	b.space()

	var named []estree.Node
	clauses := 0
	for _, s := range d.Specifiers {
		switch s.Type() {
		case estree.KindImportDefaultSpecifier, estree.KindImportNamespaceSpecifier:
			if clauses > 0 {
				b.punct(",")
				b.space()
			}
			b.node(s)
			clauses++
		default:
			named = append(named, s)
		}
	}
	if len(named) > 0 {
		if clauses > 0 {
			b.punct(",")
			b.space()
		}
		b.namedSpecifiers(named)
		clauses++
	}
	if clauses > 0 {
		b.space()
		b.word("from")
		b.space()
	}
	b.node(d.Source)
	b.attributes(d.Attributes)
	b.punct(";")
}

func (b *builder) namedSpecifiers(specs []estree.Node) {
	b.punct("{")
	b.list(specs, true, (*builder).node, cst.Punct(","))
	b.punct("}")
}

func (b *builder) attributes(attrs []*estree.ImportAttribute) {
	if len(attrs) == 0 {
		return
	}
	b.space()
	b.word("with")
	b.space()
	b.punct("{")
	b.list(nodes(attrs), true, (*builder).node, cst.Punct(","))
	b.punct("}")
}

func (b *builder) importAttribute(n estree.Node) {
	a := n.(*estree.ImportAttribute)
	b.node(a.Key)
	b.punct(":")
	b.space()
	b.node(a.Value)
}

func (b *builder) importSpecifier(n estree.Node) {
	s := n.(*estree.ImportSpecifier)
	b.node(s.Imported)
	b.alias(s.Imported, s.Local)
}

func (b *builder) importDefaultSpecifier(n estree.Node) {
	b.node(n.(*estree.ImportDefaultSpecifier).Local)
}

func (b *builder) importNamespaceSpecifier(n estree.Node) {
	b.punct("*")
	b.space()
	b.word("as")
	b.space()
	b.node(n.(*estree.ImportNamespaceSpecifier).Local)
}

// alias writes ` as to` unless both names are the same identifier.
func (b *builder) alias(from, to estree.Node) {
	if to == nil {
		return
	}
	if name := estree.Name(from); name != "" && name == estree.Name(to) {
		return
	}
	b.space()
	b.word("as")
	b.space()
	b.node(to)
}

func (b *builder) exportNamedDeclaration(n estree.Node) {
	d := n.(*estree.ExportNamedDeclaration)
	b.word("export")
	b.space()
	if d.Declaration != nil {
		b.node(d.Declaration)
		return
	}
	b.namedSpecifiers(d.Specifiers)
	if d.Source != nil {
		b.space()
		b.word("from")
		b.space()
		b.node(d.Source)
		b.attributes(d.Attributes)
	}
	b.punct(";")
}

func (b *builder) exportSpecifier(n estree.Node) {
	s := n.(*estree.ExportSpecifier)
	b.node(s.Local)
	b.alias(s.Local, s.Exported)
}

func (b *builder) exportDefaultDeclaration(n estree.Node) {
	d := n.(*estree.ExportDefaultDeclaration).Declaration
	b.word("export")
	b.space()
	b.word("default")
	b.space()
	switch d.Type() {
	case estree.KindFunctionDeclaration, estree.KindClassDeclaration:
		b.node(d)
		return
	}
	b.wrap(ambiguousAfterDefault(d), d)
	b.punct(";")
}

// ambiguousAfterDefault reports expressions that `export default` would read as a declaration or that
// hold a top-level comma.
func ambiguousAfterDefault(n estree.Node) bool {
	if n.Type() == estree.KindSequenceExpression {
		return true
	}
	l := leftmost(n)
	if l == n {
		return false
	}
	switch l.Type() {
	case estree.KindFunctionExpression, estree.KindClassExpression:
		return true
	}
	return false
}

func (b *builder) exportAllDeclaration(n estree.Node) {
	d := n.(*estree.ExportAllDeclaration)
	b.word("export")
	b.space()
	b.punct("*")
	if d.Exported != nil {
		b.space()
		b.word("as")
		b.space()
		b.node(d.Exported)
	}
	b.space()
	b.word("from")
	b.space()
	b.node(d.Source)
	b.attributes(d.Attributes)
	b.punct(";")
}
