// Package printer prints ESTree ASTs as concrete syntax trees whose text is formatted JavaScript or
// TypeScript source.
package printer

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/js"

	"github.com/cmmoran/cstgen/internal/printer"
	"github.com/cmmoran/cstgen/pkg/cst"
	"github.com/cmmoran/cstgen/pkg/estree"
)

// RootName names the root structure of every printed tree.
const RootName = "File"

var (
	ErrUnsupportedNodeType    = printer.ErrUnsupportedNodeType
	ErrUnsupportedLiteralKind = printer.ErrUnsupportedLiteralKind
	ErrVerify                 = errors.New("printed text is not valid JavaScript")
)

type (
	UnsupportedNodeTypeError    = printer.UnsupportedNodeTypeError
	UnsupportedLiteralKindError = printer.UnsupportedLiteralKindError
	RegexRenderer               = printer.RegexRenderer
)

// Print lays out node and builds its concrete syntax tree.
func Print(node estree.Node, opts ...Option) (*cst.Node, error) {
	o := NewOptions()
	for _, fn := range opts {
		fn(o)
	}

	return PrintWithOpts(node, o)
}

func PrintWithOpts(node estree.Node, o *Options) (*cst.Node, error) {
	if err := o.Normalize(); err != nil {
		return nil, err
	}
	l := slog.With("node", kindOf(node))

	items, err := printer.Print(node, o.config())
	if err != nil {
		l.With("error", err).Debug("print failed")
		return nil, err
	}
	root, err := cst.Build(RootName, items)
	if err != nil {
		return nil, fmt.Errorf("build tree: %w", err)
	}
	if o.Verify {
		if err = verify(node, root); err != nil {
			l.With("error", err).Debug("verification failed")
			return nil, err
		}
	}
	l.With("items", len(items)).Debug("printed")

	return root, nil
}

// PrintStatements prints body as the top-level statements of a Program.
func PrintStatements(body []estree.Node, opts ...Option) (*cst.Node, error) {
	o := NewOptions()
	for _, fn := range opts {
		fn(o)
	}
	if err := o.Normalize(); err != nil {
		return nil, err
	}

	return PrintWithOpts(&estree.Program{Body: body, SourceType: o.SourceType}, o)
}

// String prints node and returns its source text.
func String(node estree.Node, opts ...Option) (string, error) {
	root, err := Print(node, opts...)
	if err != nil {
		return "", err
	}
	return root.Text(), nil
}

// Verify re-parses text as JavaScript. TypeScript-only syntax does not verify.
func Verify(text string) error {
	if _, err := js.Parse(parse.NewInputString(text), js.Options{}); err != nil {
		return fmt.Errorf("%w: %w", ErrVerify, err)
	}
	return nil
}

// verify checks that every comment of node was printed and that the text re-parses.
func verify(node estree.Node, root *cst.Node) error {
	want := estree.CountComments(node)
	got := len(root.Find("LineComment")) + len(root.Find("BlockComment"))
	if got != want {
		return fmt.Errorf("%w: printed %d of %d comments", ErrVerify, got, want)
	}
	return Verify(root.Text())
}

func kindOf(n estree.Node) string {
	if n == nil {
		return "<nil>"
	}
	return n.Type().String()
}
