package printer

import (
	"github.com/cmmoran/cstgen/pkg/cst"
	"github.com/cmmoran/cstgen/pkg/estree"
)

// function handles function declarations and function expressions.
func (b *builder) function(n estree.Node) {
	var (
		id, body, ret    estree.Node
		params           []estree.Node
		async, generator bool
	)
	switch f := n.(type) {
	case *estree.FunctionDeclaration:
		id, params, body, ret, async, generator = f.ID, f.Params, f.Body, f.ReturnType, f.Async, f.Generator
	case *estree.FunctionExpression:
		id, params, body, ret, async, generator = f.ID, f.Params, f.Body, f.ReturnType, f.Async, f.Generator
	}
	if async {
		b.word("async")
		b.space()
	}
	b.word("function")
	if generator {
		b.punct("*")
	}
	b.space()
	if id != nil {
		b.node(id)
	}
	b.signature(params, ret, body)
}

// signature lays out `(params): ret body`.
func (b *builder) signature(params []estree.Node, ret, body estree.Node) {
	b.params(params)
	b.annotation(ret)
	b.space()
	b.node(body)
}

func (b *builder) params(params []estree.Node) {
	b.punct("(")
	b.list(params, false, (*builder).node, cst.Punct(","))
	b.punct(")")
}

func (b *builder) arrow(n estree.Node) {
	f := n.(*estree.ArrowFunctionExpression)
	if f.Async {
		b.word("async")
		b.space()
	}
	b.params(f.Params)
	b.annotation(f.ReturnType)
	b.space()
	b.punct("=>")
	b.space()
	if f.Body.Type() == estree.KindBlockStatement {
		b.node(f.Body)
		return
	}
	_, object := leftmost(f.Body).(*estree.ObjectExpression)
	b.wrap(object || needsParens(f.Body, n, true), f.Body)
}

// class handles class declarations and class expressions.
func (b *builder) class(n estree.Node) {
	var id, super, body estree.Node
	switch c := n.(type) {
	case *estree.ClassDeclaration:
		id, super, body = c.ID, c.SuperClass, c.Body
	case *estree.ClassExpression:
		id, super, body = c.ID, c.SuperClass, c.Body
	}
	b.word("class")
	if id != nil {
		b.space()
		b.node(id)
	}
	if super != nil {
		b.space()
		b.word("extends")
		b.space()
		b.wrap(GroupOf(super) < GroupCall, super)
	}
	b.space()
	b.node(body)
}

func (b *builder) methodDefinition(n estree.Node) {
	m := n.(*estree.MethodDefinition)
	if m.Static {
		b.word("static")
		b.space()
	}
	fn, ok := m.Value.(*estree.FunctionExpression)
	if !ok {
		unsupported(m.Value, "method value")
	}
	b.method(m.Kind, m.Key, m.Computed, fn)
}

// method lays out an object or class method. kind is get, set, or anything else for a plain method.
func (b *builder) method(kind string, key estree.Node, computed bool, fn *estree.FunctionExpression) {
	b.withComments(fn, func() {
		switch {
		case kind == "get" || kind == "set":
			b.word(kind)
			b.space()
		case fn.Async:
			b.word("async")
			b.space()
		}
		if fn.Generator {
			b.punct("*")
		}
		b.key(key, computed)
		b.signature(fn.Params, fn.ReturnType, fn.Body)
	})
}

func (b *builder) propertyDefinition(n estree.Node) {
	p := n.(*estree.PropertyDefinition)
	if p.Static {
		b.word("static")
		b.space()
	}
	b.key(p.Key, p.Computed)
	b.annotation(p.TypeAnnotation)
	if p.Value != nil {
		b.space()
		b.punct("=")
		b.space()
		b.assignable(p.Value)
	}
	b.punct(";")
}
