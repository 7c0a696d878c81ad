package printer

import (
	"github.com/cmmoran/cstgen/pkg/cst"
	"github.com/cmmoran/cstgen/pkg/estree"
)

// list lays out a delimited sequence. Open, join and close slots are reserved while the items are built
// and filled once the layout is known: a list goes multi-line when an item does, when a flushed comment
// needs a line break, or when it measures wider than MaxInlineWidth.
func (b *builder) list(items []estree.Node, inner bool, item func(*builder, estree.Node), sep ...cst.Item) {
	if len(items) == 0 {
		return
	}

	start := b.mark()
	open := b.reserve()
	joins := make([]int, 0, len(items)-1)
	multi := false
	for i, it := range items {
		last := i == len(items)-1
		if it != nil {
			o := b.observe(func(c *builder) { item(c, it) })
			multi = multi || o.multiline
		}
		if !last || it == nil {
			b.emit(sep...)
		}
		if b.flushTrailing() {
			multi = true
		}
		if !last {
			joins = append(joins, b.reserve())
		}
	}
	closing := b.reserve()

	if multi || b.arena.width(b.seq, start) > b.cfg.MaxInlineWidth {
		b.arena.fill(open, indentCmd, newlineCmd)
		for _, j := range joins {
			b.arena.fill(j, newlineCmd)
		}
		b.arena.fill(closing, dedentCmd, newlineCmd)
		b.multiline = true
		return
	}

	for _, j := range joins {
		b.arena.fill(j, spaceCmd)
	}
	if inner {
		b.arena.fill(open, spaceCmd)
		b.arena.fill(closing, spaceCmd)
		return
	}
	b.arena.fill(open)
	b.arena.fill(closing)
}

// nodes converts a typed node slice for list.
func nodes[T estree.Node](xs []T) []estree.Node {
	out := make([]estree.Node, len(xs))
	for i, x := range xs {
		out[i] = x
	}
	return out
}

// declarators lays out the declarator list of a variable declaration. Continuation lines are indented
// one level.
func (b *builder) declarators(decls []*estree.VariableDeclarator) {
	start := b.mark()
	open := b.reserve()
	joins := make([]int, 0, len(decls))
	for i, d := range decls {
		b.node(d)
		if i < len(decls)-1 {
			b.punct(",")
			joins = append(joins, b.reserve())
		}
	}
	closing := b.reserve()

	if len(decls) > 1 && b.arena.width(b.seq, start) > b.cfg.MaxInlineWidth {
		b.arena.fill(open, indentCmd)
		for _, j := range joins {
			b.arena.fill(j, newlineCmd)
		}
		b.arena.fill(closing, dedentCmd)
		b.multiline = true
		return
	}
	b.arena.fill(open)
	for _, j := range joins {
		b.arena.fill(j, spaceCmd)
	}
	b.arena.fill(closing)
}

// groupable statements stay together in runs of the same kind; a blank line separates a run from its
// neighbours.
func groupable(k estree.Kind) bool {
	switch k {
	case estree.KindImportDeclaration, estree.KindVariableDeclaration, estree.KindExportNamedDeclaration,
		estree.KindExportDefaultDeclaration, estree.KindExportAllDeclaration:
		return true
	}
	return false
}

// statements lays out a statement list, one statement per line. The margin in front of each statement
// is reserved before it is built and becomes a blank line when either neighbour is multi-line or a
// groupable run starts or ends.
func (b *builder) statements(body []estree.Node) {
	var (
		prev      estree.Kind
		prevMulti bool
		first     = true
	)
	for _, s := range body {
		if s.Type() == estree.KindEmptyStatement {
			if c := s.Comments(); c.HasComments() {
				b.queue.push(c.LeadingComments...)
				b.queue.push(c.TrailingComments...)
			}
			continue
		}

		margin := -1
		if !first {
			margin = b.reserve()
		}
		o := b.observe(func(c *builder) { c.node(s) })
		b.flushTrailing()

		k := s.Type()
		if margin >= 0 {
			blank := prevMulti || o.multiline || (prev != k && (groupable(prev) || groupable(k)))
			if blank {
				b.arena.fill(margin, newlineCmd, newlineCmd)
			} else {
				b.arena.fill(margin, newlineCmd)
			}
		}
		b.merge(o)
		prev, prevMulti, first = k, o.multiline, false
	}
}

// hasStatements reports whether body holds anything but empty statements.
func hasStatements(body []estree.Node) bool {
	for _, s := range body {
		if s.Type() != estree.KindEmptyStatement {
			return true
		}
	}
	return false
}

// braced lays out a `{ ... }` statement body.
func (b *builder) braced(body []estree.Node) {
	b.punct("{")
	if !hasStatements(body) {
		b.statements(body)
		b.punct("}")
		return
	}
	b.indent()
	b.newline()
	b.statements(body)
	b.dedent()
	b.newline()
	b.punct("}")
}
