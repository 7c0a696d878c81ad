package printer

import (
	"github.com/cmmoran/cstgen/pkg/cst"
	"github.com/cmmoran/cstgen/pkg/estree"
)

type commandKind uint8

const (
	cmdAppend commandKind = iota
	cmdSequence
	cmdNewline
	cmdIndent
	cmdDedent
	cmdComment
)

// command is one layout instruction. Sequences refer to their children by arena index so a slot reserved
// early can be filled once the layout around it is decided.
type command struct {
	kind     commandKind
	items    []cst.Item
	children []int
	filled   bool
	comment  estree.Comment
}

func appendCmd(items ...cst.Item) command { return command{kind: cmdAppend, items: items} }

var (
	newlineCmd = command{kind: cmdNewline}
	indentCmd  = command{kind: cmdIndent}
	dedentCmd  = command{kind: cmdDedent}
	spaceCmd   = appendCmd(cst.Space(" "))
)

// arena owns every command of one print call. Index 0 is the root sequence.
type arena struct {
	cmds []command
}

func newArena() *arena {
	return &arena{cmds: []command{{kind: cmdSequence, filled: true}}}
}

// push appends c to sequence seq and returns its index.
func (a *arena) push(seq int, c command) int {
	id := len(a.cmds)
	a.cmds = append(a.cmds, c)
	a.cmds[seq].children = append(a.cmds[seq].children, id)
	return id
}

// reserve appends an empty, unfilled sequence to seq.
func (a *arena) reserve(seq int) int {
	return a.push(seq, command{kind: cmdSequence})
}

// fill resolves a reserved slot. A slot is filled exactly once.
func (a *arena) fill(slot int, cmds ...command) {
	if a.cmds[slot].kind != cmdSequence || a.cmds[slot].filled {
		invariant("slot %d filled twice", slot)
	}
	for _, c := range cmds {
		a.push(slot, c)
	}
	a.cmds[slot].filled = true
}

// mark is the position of the next command appended to seq.
func (a *arena) mark(seq int) int { return len(a.cmds[seq].children) }

// last returns the kind of the final visible command of seq, looking through filled slots. Indentation
// changes and appends carrying only structure markers are skipped.
func (a *arena) last(seq int) (commandKind, bool) {
	ch := a.cmds[seq].children
	for i := len(ch) - 1; i >= 0; i-- {
		c := a.cmds[ch[i]]
		switch c.kind {
		case cmdSequence:
			if k, ok := a.last(ch[i]); ok {
				return k, true
			}
		case cmdIndent, cmdDedent:
		case cmdAppend:
			if hasToken(c.items) {
				return c.kind, true
			}
		default:
			return c.kind, true
		}
	}
	return 0, false
}

func hasToken(items []cst.Item) bool {
	for _, it := range items {
		if it.Op == cst.OpToken {
			return true
		}
	}
	return false
}

// width estimates the rendered length of seq from position from onwards. An unfilled slot counts as 2,
// the width of the ", " it usually becomes.
func (a *arena) width(seq, from int) int {
	w := 0
	for _, id := range a.cmds[seq].children[from:] {
		w += a.measure(id)
	}
	return w
}

func (a *arena) measure(id int) int {
	c := a.cmds[id]
	switch c.kind {
	case cmdAppend:
		w := 0
		for _, it := range c.items {
			w += it.Width()
		}
		return w
	case cmdSequence:
		if !c.filled {
			return 2
		}
		return a.width(id, 0)
	case cmdComment:
		if c.comment.IsLine() {
			return len([]rune(c.comment.Value)) + 2
		}
		return len([]rune(c.comment.Value)) + 4
	}
	return 0
}
