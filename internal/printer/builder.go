package printer

import (
	"github.com/cmmoran/cstgen/pkg/cst"
	"github.com/cmmoran/cstgen/pkg/estree"
)

// handler lays out one node kind. Families sharing a layout share a handler.
type handler func(*builder, estree.Node)

var (
	handlers     [estree.KindCount]handler
	typeHandlers [estree.KindCount]handler
)

func init() {
	register(&handlers, map[estree.Kind]handler{
		estree.KindProgram:                  (*builder).program,
		estree.KindExpressionStatement:      (*builder).expressionStatement,
		estree.KindBlockStatement:           (*builder).body,
		estree.KindClassBody:                (*builder).body,
		estree.KindStaticBlock:              (*builder).staticBlock,
		estree.KindEmptyStatement:           (*builder).emptyStatement,
		estree.KindDebuggerStatement:        (*builder).debuggerStatement,
		estree.KindWithStatement:            (*builder).withStatement,
		estree.KindReturnStatement:          (*builder).argumentStatement,
		estree.KindThrowStatement:           (*builder).argumentStatement,
		estree.KindLabeledStatement:         (*builder).labeledStatement,
		estree.KindBreakStatement:           (*builder).jumpStatement,
		estree.KindContinueStatement:        (*builder).jumpStatement,
		estree.KindIfStatement:              (*builder).ifStatement,
		estree.KindSwitchStatement:          (*builder).switchStatement,
		estree.KindSwitchCase:               (*builder).switchCase,
		estree.KindTryStatement:             (*builder).tryStatement,
		estree.KindCatchClause:              (*builder).catchClause,
		estree.KindWhileStatement:           (*builder).whileStatement,
		estree.KindDoWhileStatement:         (*builder).doWhileStatement,
		estree.KindForStatement:             (*builder).forStatement,
		estree.KindForInStatement:           (*builder).forInOf,
		estree.KindForOfStatement:           (*builder).forInOf,
		estree.KindFunctionDeclaration:      (*builder).function,
		estree.KindFunctionExpression:       (*builder).function,
		estree.KindVariableDeclaration:      (*builder).variableDeclaration,
		estree.KindVariableDeclarator:       (*builder).variableDeclarator,
		estree.KindClassDeclaration:         (*builder).class,
		estree.KindClassExpression:          (*builder).class,
		estree.KindMethodDefinition:         (*builder).methodDefinition,
		estree.KindPropertyDefinition:       (*builder).propertyDefinition,
		estree.KindImportDeclaration:        (*builder).importDeclaration,
		estree.KindImportAttribute:          (*builder).importAttribute,
		estree.KindImportSpecifier:          (*builder).importSpecifier,
		estree.KindImportDefaultSpecifier:   (*builder).importDefaultSpecifier,
		estree.KindImportNamespaceSpecifier: (*builder).importNamespaceSpecifier,
		estree.KindExportNamedDeclaration:   (*builder).exportNamedDeclaration,
		estree.KindExportSpecifier:          (*builder).exportSpecifier,
		estree.KindExportDefaultDeclaration: (*builder).exportDefaultDeclaration,
		estree.KindExportAllDeclaration:     (*builder).exportAllDeclaration,
		estree.KindIdentifier:               (*builder).identifier,
		estree.KindPrivateIdentifier:        (*builder).privateIdentifier,
		estree.KindLiteral:                  (*builder).literal,
		estree.KindThisExpression:           (*builder).keyword,
		estree.KindSuper:                    (*builder).keyword,
		estree.KindArrayExpression:          (*builder).array,
		estree.KindArrayPattern:             (*builder).array,
		estree.KindObjectExpression:         (*builder).object,
		estree.KindObjectPattern:            (*builder).object,
		estree.KindProperty:                 (*builder).property,
		estree.KindArrowFunctionExpression:  (*builder).arrow,
		estree.KindTemplateLiteral:          (*builder).templateLiteral,
		estree.KindTaggedTemplateExpression: (*builder).taggedTemplate,
		estree.KindUnaryExpression:          (*builder).unary,
		estree.KindUpdateExpression:         (*builder).update,
		estree.KindBinaryExpression:         (*builder).binary,
		estree.KindLogicalExpression:        (*builder).binary,
		estree.KindAssignmentExpression:     (*builder).assignment,
		estree.KindAssignmentPattern:        (*builder).assignment,
		estree.KindConditionalExpression:    (*builder).conditional,
		estree.KindCallExpression:           (*builder).call,
		estree.KindNewExpression:            (*builder).call,
		estree.KindMemberExpression:         (*builder).member,
		estree.KindChainExpression:          (*builder).chain,
		estree.KindSequenceExpression:       (*builder).sequence,
		estree.KindYieldExpression:          (*builder).yield,
		estree.KindAwaitExpression:          (*builder).await,
		estree.KindImportExpression:         (*builder).importExpression,
		estree.KindMetaProperty:             (*builder).metaProperty,
		estree.KindSpreadElement:            (*builder).spread,
		estree.KindRestElement:              (*builder).spread,
		estree.KindTSTypeAliasDeclaration:   (*builder).typeAlias,
		estree.KindTSNonNullExpression:      (*builder).nonNull,
	})

	register(&typeHandlers, map[estree.Kind]handler{
		estree.KindTSTypeAnnotation:             (*builder).typeAnnotation,
		estree.KindTSAnyKeyword:                 (*builder).keywordType,
		estree.KindTSUnknownKeyword:             (*builder).keywordType,
		estree.KindTSNumberKeyword:              (*builder).keywordType,
		estree.KindTSStringKeyword:              (*builder).keywordType,
		estree.KindTSBooleanKeyword:             (*builder).keywordType,
		estree.KindTSBigIntKeyword:              (*builder).keywordType,
		estree.KindTSSymbolKeyword:              (*builder).keywordType,
		estree.KindTSObjectKeyword:              (*builder).keywordType,
		estree.KindTSNullKeyword:                (*builder).keywordType,
		estree.KindTSUndefinedKeyword:           (*builder).keywordType,
		estree.KindTSVoidKeyword:                (*builder).keywordType,
		estree.KindTSNeverKeyword:               (*builder).keywordType,
		estree.KindTSTypeReference:              (*builder).typeReference,
		estree.KindTSTypeParameterInstantiation: (*builder).typeArguments,
		estree.KindTSQualifiedName:              (*builder).qualifiedName,
		estree.KindTSArrayType:                  (*builder).arrayType,
		estree.KindTSUnionType:                  (*builder).compositeType,
		estree.KindTSIntersectionType:           (*builder).compositeType,
		estree.KindTSLiteralType:                (*builder).literalType,
		estree.KindTSTupleType:                  (*builder).tupleType,
		estree.KindTSParenthesizedType:          (*builder).parenthesizedType,
	})
}

func register(table *[estree.KindCount]handler, hs map[estree.Kind]handler) {
	for k, h := range hs {
		table[k] = h
	}
}

// commentQueue holds trailing comments until the nearest list or body flushes them.
type commentQueue struct {
	items []estree.Comment
}

func (q *commentQueue) push(cs ...estree.Comment) { q.items = append(q.items, cs...) }

func (q *commentQueue) drain() []estree.Comment {
	cs := q.items
	q.items = nil
	return cs
}

func (q *commentQueue) len() int { return len(q.items) }

// builder emits commands for a subtree into seq. Copies share the arena and the comment queue; the
// multiline flag belongs to the copy.
type builder struct {
	arena     *arena
	seq       int
	queue     *commentQueue
	multiline bool
	forInit   bool
	cfg       *Config
}

func newBuilder(cfg *Config) *builder {
	return &builder{arena: newArena(), queue: &commentQueue{}, cfg: cfg}
}

// observed is what an isolated sub-build reports back to its parent.
type observed struct {
	multiline bool
}

// observe runs fn on a copy of b with a cleared multiline flag. The caller decides whether to merge.
func (b *builder) observe(fn func(*builder)) observed {
	c := *b
	c.multiline = false
	fn(&c)
	return observed{multiline: c.multiline}
}

func (b *builder) merge(o observed) {
	if o.multiline {
		b.multiline = true
	}
}

func (b *builder) push(c command) int { return b.arena.push(b.seq, c) }
func (b *builder) reserve() int       { return b.arena.reserve(b.seq) }
func (b *builder) mark() int          { return b.arena.mark(b.seq) }

func (b *builder) emit(items ...cst.Item) { b.push(appendCmd(items...)) }
func (b *builder) punct(text string)      { b.emit(cst.Punct(text)) }
func (b *builder) word(text string)       { b.emit(cst.Word(text)) }
func (b *builder) space()                 { b.push(spaceCmd) }

func (b *builder) newline() {
	b.push(newlineCmd)
	b.multiline = true
}

func (b *builder) indent() { b.push(indentCmd) }
func (b *builder) dedent() { b.push(dedentCmd) }

func (b *builder) atLineStart() bool {
	k, ok := b.arena.last(b.seq)
	return !ok || k == cmdNewline
}

// node lays out n with its comments.
func (b *builder) node(n estree.Node) {
	if n == nil {
		invariant("missing node")
	}
	h := handlers[n.Type()]
	if h == nil {
		unsupported(n, "node")
	}
	b.withComments(n, func() { h(b, n) })
}

// typ lays out a type annotation node.
func (b *builder) typ(n estree.Node) {
	if n == nil {
		invariant("missing type")
	}
	h := typeHandlers[n.Type()]
	if h == nil {
		unsupported(n, "type annotation")
	}
	b.withComments(n, func() { h(b, n) })
}

// withComments wraps fn in n's structure: leading comments are flushed first, trailing comments are
// queued afterwards.
func (b *builder) withComments(n estree.Node, fn func()) {
	c := n.Comments()
	b.emit(cst.Open(n.Type().String()))
	b.leading(c.LeadingComments)
	fn()
	b.emit(cst.Close())
	b.queue.push(c.TrailingComments...)
}

func (b *builder) leading(cs []estree.Comment) {
	for _, c := range cs {
		b.comment(c)
		if c.NeedsNewline() {
			b.newline()
		} else {
			b.space()
		}
	}
}

func (b *builder) comment(c estree.Comment) {
	b.push(command{kind: cmdComment, comment: c})
}

// flushTrailing writes the queued comments after the current output and reports whether one of them
// requires a line break after it.
func (b *builder) flushTrailing() bool {
	cs := b.queue.drain()
	broken := false
	for i, c := range cs {
		if !b.atLineStart() {
			b.space()
		}
		b.comment(c)
		if c.NeedsNewline() {
			broken = true
			if i < len(cs)-1 {
				b.newline()
			}
		}
	}
	return broken
}

// drain writes every queued comment on a line of its own.
func (b *builder) drain() {
	for _, c := range b.queue.drain() {
		if !b.atLineStart() {
			b.newline()
		}
		b.comment(c)
		b.newline()
	}
}

// wrap lays out n, parenthesized when paren is set.
func (b *builder) wrap(paren bool, n estree.Node) {
	if !paren {
		b.node(n)
		return
	}
	b.punct("(")
	b.node(n)
	b.punct(")")
}

// operand lays out child as an operand of parent.
func (b *builder) operand(child, parent estree.Node, right bool) {
	b.wrap(needsParens(child, parent, right), child)
}

// assignable lays out n where a comma would end the expression.
func (b *builder) assignable(n estree.Node) {
	b.wrap(n.Type() == estree.KindSequenceExpression, n)
}

// annotation lays out an optional TSTypeAnnotation.
func (b *builder) annotation(n estree.Node) {
	if n != nil {
		b.typ(n)
	}
}
