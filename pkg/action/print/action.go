// Package print loads an ESTree document, prints it and writes the result.
package print

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/jinzhu/inflection"

	"github.com/cmmoran/cstgen/internal/parser"
	"github.com/cmmoran/cstgen/pkg/cst"
	"github.com/cmmoran/cstgen/pkg/estree"
	"github.com/cmmoran/cstgen/pkg/printer"
)

// Generate prints the document named by o.InFile, or read from stdin when InFile is empty or "-", and
// writes it to o.OutPath(), or to stdout when that is empty. It returns the path written.
func Generate(o *printer.Options, stdin io.Reader, stdout io.Writer) (string, error) {
	if err := o.Normalize(); err != nil {
		return "", err
	}
	l := slog.With("in", o.InFile, "format", o.Format)

	root, err := Load(o, stdin)
	if err != nil {
		return "", err
	}
	tree, err := printer.PrintWithOpts(root, o)
	if err != nil {
		return "", fmt.Errorf("print %s: %w", name(o.InFile), err)
	}
	if prog, ok := root.(*estree.Program); ok {
		l.Info(fmt.Sprintf("printed %d %s", len(prog.Body), noun("statement", len(prog.Body))))
	}

	outFile := o.OutPath()
	if outFile == "" {
		return "", tree.Encode(stdout, o.Format)
	}
	if err = write(outFile, tree, o.Format); err != nil {
		return "", err
	}
	l.With("out", outFile).Debug("wrote output")

	return outFile, nil
}

// Load decodes the ESTree document o names.
func Load(o *printer.Options, stdin io.Reader) (estree.Node, error) {
	p, err := parser.New(parser.WithSourceType(o.SourceType))
	if err != nil {
		return nil, err
	}
	if o.InFile == "" || o.InFile == "-" {
		if stdin == nil {
			return nil, fmt.Errorf("no input file")
		}
		n, err := p.Parse(stdin)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name(o.InFile), err)
		}
		return n, nil
	}
	return p.ParseFile(o.InFile)
}

func write(outFile string, tree *cst.Node, format string) error {
	if err := os.MkdirAll(filepath.Dir(outFile), 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	ff, err := os.OpenFile(outFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("open output: %w", err)
	}
	if err = tree.Encode(ff, format); err != nil {
		_ = ff.Close()
		return fmt.Errorf("write %s: %w", outFile, err)
	}
	return ff.Close()
}

func name(in string) string {
	if in == "" || in == "-" {
		return "stdin"
	}
	return in
}

func noun(s string, n int) string {
	if n == 1 {
		return s
	}
	return inflection.Plural(s)
}
