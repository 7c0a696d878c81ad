package printer

import (
	"strings"

	"github.com/cmmoran/cstgen/pkg/cst"
	"github.com/cmmoran/cstgen/pkg/estree"
)

// renderer realizes the command arena into a flat item stream. Indentation is written lazily in front of
// the first content following a newline, so blank lines carry no trailing whitespace.
type renderer struct {
	arena   *arena
	unit    string
	depth   int
	pending bool
	out     []cst.Item
}

func render(a *arena, unit string) []cst.Item {
	r := &renderer{arena: a, unit: unit}
	r.walk(0)
	if r.depth != 0 {
		invariant("indentation depth %d at end of output", r.depth)
	}
	return r.out
}

func (r *renderer) walk(id int) {
	c := &r.arena.cmds[id]
	switch c.kind {
	case cmdSequence:
		if !c.filled {
			invariant("slot %d was never filled", id)
		}
		for _, child := range c.children {
			r.walk(child)
		}
	case cmdAppend:
		if hasToken(c.items) {
			r.pad()
		}
		r.out = append(r.out, c.items...)
	case cmdNewline:
		r.out = append(r.out, cst.Space("\n"))
		r.pending = true
	case cmdIndent:
		r.depth++
	case cmdDedent:
		r.depth--
		if r.depth < 0 {
			invariant("negative indentation")
		}
	case cmdComment:
		r.pad()
		r.out = append(r.out, commentItems(c.comment)...)
	}
}

func (r *renderer) pad() {
	if !r.pending {
		return
	}
	r.pending = false
	if r.depth > 0 {
		r.out = append(r.out, cst.Space(strings.Repeat(r.unit, r.depth)))
	}
}

func commentItems(c estree.Comment) []cst.Item {
	if c.IsLine() {
		items := []cst.Item{cst.Open("LineComment"), cst.Punct("//")}
		if c.Value != "" {
			items = append(items, cst.Lit(c.Value))
		}
		return append(items, cst.Close())
	}
	items := []cst.Item{cst.Open("BlockComment"), cst.Punct("/*")}
	if c.Value != "" {
		items = append(items, cst.Lit(c.Value))
	}
	return append(items, cst.Punct("*/"), cst.Close())
}
