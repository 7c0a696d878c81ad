package printer

import (
	"github.com/cmmoran/cstgen/pkg/estree"
)

func (b *builder) program(n estree.Node) {
	p := n.(*estree.Program)
	b.statements(p.Body)
	if hasStatements(p.Body) {
		b.newline()
	}
	b.drain()
}

// body handles block statements and class bodies.
func (b *builder) body(n estree.Node) {
	switch n := n.(type) {
	case *estree.BlockStatement:
		b.braced(n.Body)
	case *estree.ClassBody:
		b.braced(n.Body)
	}
}

func (b *builder) staticBlock(n estree.Node) {
	b.word("static")
	b.space()
	b.braced(n.(*estree.StaticBlock).Body)
}

func (b *builder) emptyStatement(estree.Node) { b.punct(";") }

func (b *builder) debuggerStatement(estree.Node) {
	b.word("debugger")
	b.punct(";")
}

func (b *builder) expressionStatement(n estree.Node) {
	s := n.(*estree.ExpressionStatement)
	b.wrap(ambiguousAtStatementStart(s.Expression), s.Expression)
	b.punct(";")
}

// ambiguousAtStatementStart reports expressions whose first token would be read as the start of a
// declaration, a block or a `let` declaration.
func ambiguousAtStatementStart(n estree.Node) bool {
	switch l := leftmost(n).(type) {
	case *estree.ObjectExpression, *estree.ObjectPattern, *estree.FunctionExpression, *estree.ClassExpression:
		return true
	case *estree.MemberExpression:
		return l.Computed && estree.Name(l.Object) == "let"
	}
	return false
}

// leftmost returns the node that provides the first token of n, stopping at any operand that gets
// parenthesized.
func leftmost(n estree.Node) estree.Node {
	for {
		switch e := n.(type) {
		case *estree.MemberExpression:
			if e.Computed && estree.Name(e.Object) == "let" {
				return n
			}
		case *estree.UpdateExpression:
			if e.Prefix {
				return n
			}
		}
		next := leftmostStep(n)
		if next == nil || next == n {
			return n
		}
		switch n.(type) {
		case *estree.AssignmentExpression, *estree.ChainExpression:
		default:
			if needsParens(next, n, false) {
				return n
			}
		}
		n = next
	}
}

// leftmostStep returns the child holding the first token of n, or n itself.
func leftmostStep(n estree.Node) estree.Node {
	switch e := n.(type) {
	case *estree.BinaryExpression:
		return e.Left
	case *estree.LogicalExpression:
		return e.Left
	case *estree.ConditionalExpression:
		return e.Test
	case *estree.AssignmentExpression:
		return e.Left
	case *estree.MemberExpression:
		return e.Object
	case *estree.CallExpression:
		return e.Callee
	case *estree.TaggedTemplateExpression:
		return e.Tag
	case *estree.SequenceExpression:
		return e.Expressions[0]
	case *estree.UpdateExpression:
		return e.Argument
	case *estree.ChainExpression:
		return e.Expression
	case *estree.TSNonNullExpression:
		return e.Expression
	}
	return n
}

// argumentStatement handles return and throw.
func (b *builder) argumentStatement(n estree.Node) {
	var arg estree.Node
	switch n := n.(type) {
	case *estree.ReturnStatement:
		b.word("return")
		arg = n.Argument
	case *estree.ThrowStatement:
		b.word("throw")
		arg = n.Argument
	}
	if arg != nil {
		b.space()
		b.wrap(breaksBeforeFirstToken(arg), arg)
	}
	b.punct(";")
}

// breaksBeforeFirstToken reports a line break ahead of n's first token, which would end a restricted
// production such as `return`.
func breaksBeforeFirstToken(n estree.Node) bool {
	for {
		for _, c := range n.Comments().LeadingComments {
			if c.NeedsNewline() {
				return true
			}
		}
		next := leftmostStep(n)
		if next == nil || next == n {
			return false
		}
		n = next
	}
}

func (b *builder) withStatement(n estree.Node) {
	s := n.(*estree.WithStatement)
	b.word("with")
	b.space()
	b.punct("(")
	b.node(s.Object)
	b.punct(")")
	b.clause(s.Body)
}

func (b *builder) labeledStatement(n estree.Node) {
	s := n.(*estree.LabeledStatement)
	b.node(s.Label)
	b.punct(":")
	b.clause(s.Body)
}

// jumpStatement handles break and continue.
func (b *builder) jumpStatement(n estree.Node) {
	var label estree.Node
	switch n := n.(type) {
	case *estree.BreakStatement:
		b.word("break")
		label = n.Label
	case *estree.ContinueStatement:
		b.word("continue")
		label = n.Label
	}
	if label != nil {
		b.space()
		b.node(label)
	}
	b.punct(";")
}

// clause lays out the body of a compound statement after its header.
func (b *builder) clause(n estree.Node) {
	if n.Type() == estree.KindEmptyStatement {
		b.node(n)
		return
	}
	b.space()
	b.node(n)
}

func (b *builder) ifStatement(n estree.Node) {
	s := n.(*estree.IfStatement)
	b.word("if")
	b.space()
	b.punct("(")
	b.node(s.Test)
	b.punct(")")
	if s.Alternate == nil {
		b.clause(s.Consequent)
		return
	}

	if s.Consequent.Type() != estree.KindBlockStatement && endsWithBareIf(s.Consequent) {
		// the else would bind to the inner if
		b.space()
		b.punct("{")
		b.indent()
		b.newline()
		b.node(s.Consequent)
		b.flushTrailing()
		b.dedent()
		b.newline()
		b.punct("}")
	} else {
		b.clause(s.Consequent)
	}
	b.space()
	b.word("else")
	b.clause(s.Alternate)
}

// endsWithBareIf reports whether the statement's last nested clause is an if without an else.
func endsWithBareIf(n estree.Node) bool {
	switch s := n.(type) {
	case *estree.IfStatement:
		if s.Alternate == nil {
			return true
		}
		return endsWithBareIf(s.Alternate)
	case *estree.WhileStatement:
		return endsWithBareIf(s.Body)
	case *estree.ForStatement:
		return endsWithBareIf(s.Body)
	case *estree.ForInStatement:
		return endsWithBareIf(s.Body)
	case *estree.ForOfStatement:
		return endsWithBareIf(s.Body)
	case *estree.LabeledStatement:
		return endsWithBareIf(s.Body)
	case *estree.WithStatement:
		return endsWithBareIf(s.Body)
	}
	return false
}

func (b *builder) switchStatement(n estree.Node) {
	s := n.(*estree.SwitchStatement)
	b.word("switch")
	b.space()
	b.punct("(")
	b.node(s.Discriminant)
	b.punct(")")
	b.space()
	b.punct("{")
	if len(s.Cases) == 0 {
		b.punct("}")
		return
	}
	b.indent()
	for _, c := range s.Cases {
		b.newline()
		b.node(c)
		b.flushTrailing()
	}
	b.dedent()
	b.newline()
	b.punct("}")
}

func (b *builder) switchCase(n estree.Node) {
	c := n.(*estree.SwitchCase)
	if c.Test == nil {
		b.word("default")
	} else {
		b.word("case")
		b.space()
		b.node(c.Test)
	}
	b.punct(":")

	switch {
	case len(c.Consequent) == 1 && c.Consequent[0].Type() == estree.KindBlockStatement:
		b.space()
		b.node(c.Consequent[0])
	case hasStatements(c.Consequent):
		b.indent()
		b.newline()
		b.statements(c.Consequent)
		b.dedent()
	default:
		b.statements(c.Consequent)
	}
}

func (b *builder) tryStatement(n estree.Node) {
	s := n.(*estree.TryStatement)
	b.word("try")
	b.space()
	b.node(s.Block)
	if s.Handler != nil {
		b.space()
		b.node(s.Handler)
	}
	if s.Finalizer != nil {
		b.space()
		b.word("finally")
		b.space()
		b.node(s.Finalizer)
	}
}

func (b *builder) catchClause(n estree.Node) {
	c := n.(*estree.CatchClause)
	b.word("catch")
	b.space()
	if c.Param != nil {
		b.punct("(")
		b.node(c.Param)
		b.punct(")")
		b.space()
	}
	b.node(c.Body)
}

func (b *builder) whileStatement(n estree.Node) {
	s := n.(*estree.WhileStatement)
	b.word("while")
	b.space()
	b.punct("(")
	b.node(s.Test)
	b.punct(")")
	b.clause(s.Body)
}

func (b *builder) doWhileStatement(n estree.Node) {
	s := n.(*estree.DoWhileStatement)
	b.word("do")
	b.clause(s.Body)
	b.space()
	b.word("while")
	b.space()
	b.punct("(")
	b.node(s.Test)
	b.punct(")")
	b.punct(";")
}

func (b *builder) forStatement(n estree.Node) {
	s := n.(*estree.ForStatement)
	b.word("for")
	b.space()
	b.punct("(")
	if s.Init != nil {
		b.forHead(s.Init)
	}
	b.punct(";")
	if s.Test != nil {
		b.space()
		b.node(s.Test)
	}
	b.punct(";")
	if s.Update != nil {
		b.space()
		b.node(s.Update)
	}
	b.punct(")")
	b.clause(s.Body)
}

// forHead lays out the init of a for statement, where a bare `in` would turn it into a for-in.
func (b *builder) forHead(init estree.Node) {
	if d, ok := init.(*estree.VariableDeclaration); ok {
		saved := b.forInit
		b.forInit = true
		b.withComments(d, func() { b.declaration(d) })
		b.forInit = saved
		return
	}
	b.wrap(containsIn(init), init)
}

// containsIn reports a top-level `in` operator inside n.
func containsIn(n estree.Node) bool {
	switch e := n.(type) {
	case *estree.BinaryExpression:
		return e.Operator == "in" || containsIn(e.Left) || containsIn(e.Right)
	case *estree.LogicalExpression:
		return containsIn(e.Left) || containsIn(e.Right)
	case *estree.ConditionalExpression:
		return containsIn(e.Test) || containsIn(e.Consequent) || containsIn(e.Alternate)
	case *estree.AssignmentExpression:
		return containsIn(e.Right)
	case *estree.SequenceExpression:
		for _, x := range e.Expressions {
			if containsIn(x) {
				return true
			}
		}
	case *estree.UnaryExpression:
		return containsIn(e.Argument)
	case *estree.AwaitExpression:
		return containsIn(e.Argument)
	case *estree.MemberExpression:
		return containsIn(e.Object)
	case *estree.CallExpression:
		return containsIn(e.Callee)
	}
	return false
}

// forInOf handles for-in and for-of.
func (b *builder) forInOf(n estree.Node) {
	var (
		left, right, body estree.Node
		op                = "in"
		await             bool
	)
	switch s := n.(type) {
	case *estree.ForInStatement:
		left, right, body = s.Left, s.Right, s.Body
	case *estree.ForOfStatement:
		left, right, body, op, await = s.Left, s.Right, s.Body, "of", s.Await
	}
	b.word("for")
	b.space()
	if await {
		b.word("await")
		b.space()
	}
	b.punct("(")
	if d, ok := left.(*estree.VariableDeclaration); ok {
		b.withComments(d, func() { b.declaration(d) })
	} else {
		b.node(left)
	}
	b.space()
	b.word(op)
	b.space()
	b.assignable(right)
	b.punct(")")
	b.clause(body)
}

func (b *builder) variableDeclaration(n estree.Node) {
	b.declaration(n.(*estree.VariableDeclaration))
	b.punct(";")
}

// declaration lays out a variable declaration without its terminating semicolon.
func (b *builder) declaration(d *estree.VariableDeclaration) {
	b.word(d.Kind)
	b.space()
	b.declarators(d.Declarations)
}

func (b *builder) variableDeclarator(n estree.Node) {
	d := n.(*estree.VariableDeclarator)
	b.node(d.ID)
	if d.Init == nil {
		return
	}
	b.space()
	b.punct("=")
	b.space()
	b.wrap(d.Init.Type() == estree.KindSequenceExpression || (b.forInit && containsIn(d.Init)), d.Init)
}
