// Package printer lays out an ESTree AST as a stream of CST items.
//
// Handlers emit commands into an arena. Separators whose shape depends on content not yet built are
// reserved as empty slots and filled once the enclosing list or statement sequence has been measured;
// the renderer then realizes the arena into tokens in a single pass.
package printer

import (
	"github.com/cmmoran/cstgen/pkg/cst"
	"github.com/cmmoran/cstgen/pkg/estree"
)

const (
	DefaultIndent         = "  "
	DefaultMaxInlineWidth = 50
)

// Config controls layout. The zero value uses the defaults.
type Config struct {
	Indent         string
	MaxInlineWidth int
	Regex          RegexRenderer
}

func (c Config) withDefaults() Config {
	if c.Indent == "" {
		c.Indent = DefaultIndent
	}
	if c.MaxInlineWidth <= 0 {
		c.MaxInlineWidth = DefaultMaxInlineWidth
	}
	if c.Regex == nil {
		c.Regex = DefaultRegex
	}
	return c
}

// Print lays out root. On error no output is returned.
func Print(root estree.Node, cfg Config) (items []cst.Item, err error) {
	defer catch(&err)
	if root == nil {
		return nil, &UnsupportedNodeTypeError{Type: "<nil>", Context: "root"}
	}

	cfg = cfg.withDefaults()
	b := newBuilder(&cfg)
	b.node(root)
	b.drain()
	if b.queue.len() != 0 {
		invariant("%d comments left unprinted", b.queue.len())
	}
	return render(b.arena, cfg.Indent), nil
}

// PrintStatements lays out top-level statements as a module.
func PrintStatements(body []estree.Node, cfg Config) ([]cst.Item, error) {
	return Print(&estree.Program{Body: body, SourceType: "module"}, cfg)
}
