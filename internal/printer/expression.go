package printer

import (
	"math"
	"strings"

	"github.com/cmmoran/cstgen/pkg/cst"
	"github.com/cmmoran/cstgen/pkg/estree"
)

func (b *builder) identifier(n estree.Node) {
	id := n.(*estree.Identifier)
	b.emit(cst.Ident(id.Name))
	if id.Optional {
		b.punct("?")
	}
	b.annotation(id.TypeAnnotation)
}

func (b *builder) privateIdentifier(n estree.Node) {
	b.emit(cst.Punct("#"), cst.Ident(n.(*estree.PrivateIdentifier).Name))
}

func (b *builder) literal(n estree.Node) {
	b.emit(encodeLiteral(n.(*estree.Literal), b.cfg.Regex)...)
}

// keyword handles this and super.
func (b *builder) keyword(n estree.Node) {
	switch n.(type) {
	case *estree.ThisExpression:
		b.word("this")
	case *estree.Super:
		b.word("super")
	}
}

// array handles array expressions and array patterns.
func (b *builder) array(n estree.Node) {
	var (
		elems []estree.Node
		ann   estree.Node
	)
	switch n := n.(type) {
	case *estree.ArrayExpression:
		elems = n.Elements
	case *estree.ArrayPattern:
		elems, ann = n.Elements, n.TypeAnnotation
	}
	b.punct("[")
	b.list(elems, false, (*builder).assignable, cst.Punct(","))
	b.punct("]")
	b.annotation(ann)
}

// object handles object expressions and object patterns.
func (b *builder) object(n estree.Node) {
	var (
		props []estree.Node
		ann   estree.Node
	)
	switch n := n.(type) {
	case *estree.ObjectExpression:
		props = n.Properties
	case *estree.ObjectPattern:
		props, ann = n.Properties, n.TypeAnnotation
	}
	b.punct("{")
	b.list(props, true, (*builder).node, cst.Punct(","))
	b.punct("}")
	b.annotation(ann)
}

func (b *builder) property(n estree.Node) {
	p := n.(*estree.Property)
	if p.Shorthand {
		b.node(p.Value)
		return
	}
	if fn, ok := p.Value.(*estree.FunctionExpression); ok && (p.Method || p.Kind == "get" || p.Kind == "set") {
		b.method(p.Kind, p.Key, p.Computed, fn)
		return
	}
	b.key(p.Key, p.Computed)
	b.punct(":")
	b.space()
	b.assignable(p.Value)
}

// key lays out a property or member name.
func (b *builder) key(k estree.Node, computed bool) {
	if !computed {
		b.node(k)
		return
	}
	b.punct("[")
	b.assignable(k)
	b.punct("]")
}

func (b *builder) templateLiteral(n estree.Node) {
	t := n.(*estree.TemplateLiteral)
	b.punct("`")
	for i, q := range t.Quasis {
		b.withComments(q, func() {
			if q.Value.Raw != "" {
				b.emit(cst.Lit(q.Value.Raw))
			}
		})
		if i < len(t.Expressions) {
			b.punct("${")
			b.node(t.Expressions[i])
			b.punct("}")
		}
	}
	b.punct("`")
}

func (b *builder) taggedTemplate(n estree.Node) {
	t := n.(*estree.TaggedTemplateExpression)
	b.wrap(needsParens(t.Tag, n, false) || t.Tag.Type() == estree.KindChainExpression, t.Tag)
	if t.Quasi == nil {
		invariant("tagged template without quasi")
	}
	b.node(t.Quasi)
}

func (b *builder) unary(n estree.Node) {
	u := n.(*estree.UnaryExpression)
	switch u.Operator {
	case "typeof", "void", "delete":
		b.word(u.Operator)
		b.space()
	default:
		b.punct(u.Operator)
	}
	b.wrap(needsParens(u.Argument, n, true) || startsWithSign(u.Argument, u.Operator), u.Argument)
}

// startsWithSign reports whether n renders with a leading op, which would fuse with a preceding op into
// a different token.
func startsWithSign(n estree.Node, op string) bool {
	if op != "+" && op != "-" {
		return false
	}
	switch e := n.(type) {
	case *estree.UnaryExpression:
		return e.Operator == op
	case *estree.UpdateExpression:
		return e.Prefix && strings.HasPrefix(e.Operator, op)
	case *estree.Literal:
		v, ok := e.Value.(float64)
		if !ok || e.Regex != nil || e.Bigint != "" {
			return false
		}
		return (op == "-" && (v < 0 || math.IsInf(v, -1))) || (op == "+" && math.IsInf(v, 1))
	}
	return false
}

func (b *builder) update(n estree.Node) {
	u := n.(*estree.UpdateExpression)
	if u.Prefix {
		b.punct(u.Operator)
		b.wrap(needsParens(u.Argument, n, true), u.Argument)
		return
	}
	b.operand(u.Argument, n, false)
	b.punct(u.Operator)
}

// binary handles binary and logical expressions.
func (b *builder) binary(n estree.Node) {
	var (
		op          string
		left, right estree.Node
	)
	switch e := n.(type) {
	case *estree.BinaryExpression:
		op, left, right = e.Operator, e.Left, e.Right
	case *estree.LogicalExpression:
		op, left, right = e.Operator, e.Left, e.Right
	}
	b.operand(left, n, false)
	b.space()
	if op == "in" || op == "instanceof" {
		b.word(op)
	} else {
		b.punct(op)
	}
	b.space()
	b.operand(right, n, true)
}

// assignment handles assignment expressions and default values in patterns.
func (b *builder) assignment(n estree.Node) {
	op := "="
	var left, right estree.Node
	switch e := n.(type) {
	case *estree.AssignmentExpression:
		op, left, right = e.Operator, e.Left, e.Right
	case *estree.AssignmentPattern:
		left, right = e.Left, e.Right
	}
	b.node(left)
	b.space()
	b.punct(op)
	b.space()
	b.operand(right, n, true)
}

func (b *builder) conditional(n estree.Node) {
	c := n.(*estree.ConditionalExpression)
	b.operand(c.Test, n, false)
	b.space()
	b.punct("?")
	b.space()
	b.assignable(c.Consequent)
	b.space()
	b.punct(":")
	b.space()
	b.assignable(c.Alternate)
}

// call handles call and new expressions.
func (b *builder) call(n estree.Node) {
	var (
		callee   estree.Node
		args     []estree.Node
		optional bool
		paren    bool
	)
	switch e := n.(type) {
	case *estree.CallExpression:
		callee, args, optional = e.Callee, e.Arguments, e.Optional
		paren = callee.Type() == estree.KindChainExpression
	case *estree.NewExpression:
		b.word("new")
		b.space()
		callee, args = e.Callee, e.Arguments
		paren = containsCall(callee)
	}
	b.wrap(paren || needsParens(callee, n, false), callee)
	if optional {
		b.punct("?.")
	}
	b.arguments(args)
}

func (b *builder) arguments(args []estree.Node) {
	b.punct("(")
	b.list(args, false, (*builder).assignable, cst.Punct(","))
	b.punct(")")
}

// containsCall reports a call or an optional chain in the member chain of a `new` callee. Unwrapped, the
// call would take the arguments of the `new`, and `new` does not accept an optional chain at all.
func containsCall(n estree.Node) bool {
	for {
		switch e := n.(type) {
		case *estree.CallExpression, *estree.ChainExpression:
			return true
		case *estree.MemberExpression:
			n = e.Object
		case *estree.TaggedTemplateExpression:
			n = e.Tag
		case *estree.TSNonNullExpression:
			n = e.Expression
		default:
			return false
		}
	}
}

func (b *builder) member(n estree.Node) {
	m := n.(*estree.MemberExpression)
	paren := needsParens(m.Object, n, false) || m.Object.Type() == estree.KindChainExpression || integerLiteral(m.Object)
	b.wrap(paren, m.Object)
	switch {
	case m.Computed:
		if m.Optional {
			b.punct("?.")
		}
		b.punct("[")
		b.node(m.Property)
		b.punct("]")
	case m.Optional:
		b.punct("?.")
		b.node(m.Property)
	default:
		b.punct(".")
		b.node(m.Property)
	}
}

// integerLiteral reports number literals whose text has no dot, where a following `.` would be read
// as a decimal point.
func integerLiteral(n estree.Node) bool {
	l, ok := n.(*estree.Literal)
	if !ok || l.Regex != nil || l.Bigint != "" {
		return false
	}
	v, ok := l.Value.(float64)
	if !ok || math.IsInf(v, 0) || math.IsNaN(v) {
		return false
	}
	return !strings.ContainsAny(formatNumber(v), ".e")
}

func (b *builder) chain(n estree.Node) {
	b.node(n.(*estree.ChainExpression).Expression)
}

func (b *builder) sequence(n estree.Node) {
	for i, e := range n.(*estree.SequenceExpression).Expressions {
		if i > 0 {
			b.punct(",")
			b.space()
		}
		b.operand(e, n, i > 0)
	}
}

func (b *builder) yield(n estree.Node) {
	y := n.(*estree.YieldExpression)
	b.word("yield")
	if y.Delegate {
		b.punct("*")
	}
	if y.Argument == nil {
		return
	}
	b.space()
	b.wrap(needsParens(y.Argument, n, true) || breaksBeforeFirstToken(y.Argument), y.Argument)
}

func (b *builder) await(n estree.Node) {
	a := n.(*estree.AwaitExpression)
	b.word("await")
	b.space()
	b.operand(a.Argument, n, true)
}

func (b *builder) importExpression(n estree.Node) {
	e := n.(*estree.ImportExpression)
	b.word("import")
	args := []estree.Node{e.Source}
	if e.Options != nil {
		args = append(args, e.Options)
	}
	b.arguments(args)
}

func (b *builder) metaProperty(n estree.Node) {
	m := n.(*estree.MetaProperty)
	b.node(m.Meta)
	b.punct(".")
	b.node(m.Property)
}

// spread handles spread and rest elements.
func (b *builder) spread(n estree.Node) {
	b.punct("...")
	switch e := n.(type) {
	case *estree.SpreadElement:
		b.assignable(e.Argument)
	case *estree.RestElement:
		b.node(e.Argument)
		b.annotation(e.TypeAnnotation)
	}
}

func (b *builder) nonNull(n estree.Node) {
	e := n.(*estree.TSNonNullExpression)
	b.operand(e.Expression, n, false)
	b.punct("!")
}
