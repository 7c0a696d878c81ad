// Package parser loads ESTree JSON, as produced by acorn, espree, babel (estree plugin) or
// typescript-estree, into estree nodes.
package parser

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/cmmoran/cstgen/pkg/estree"
)

var (
	ErrUnknownNodeType = errors.New("unknown node type")
	ErrMalformed       = errors.New("malformed ESTree document")
)

// Parser decodes ESTree documents.
type Parser struct {
	Opts Options
}

// New returns a parser configured by opts.
func New(opts ...Option) (*Parser, error) {
	o := NewOptions()
	for _, fn := range opts {
		fn(o)
	}

	return NewWithOpts(o)
}

func NewWithOpts(opts *Options) (*Parser, error) {
	if err := opts.Normalize(); err != nil {
		return nil, err
	}

	return &Parser{Opts: *opts}, nil
}

// Parse decodes one document from r. The document is a node object, a babel File wrapper or an array
// of top-level statements, which is wrapped in a Program.
func (p *Parser) Parse(r io.Reader) (estree.Node, error) {
	var doc any
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}

	switch v := doc.(type) {
	case []any:
		body, err := p.decodeList(v)
		if err != nil {
			return nil, err
		}
		return &estree.Program{Body: body, SourceType: p.Opts.SourceType}, nil
	case map[string]any:
		if t, _ := v["type"].(string); t == "File" {
			prog, ok := v["program"].(map[string]any)
			if !ok {
				return nil, fmt.Errorf("%w: File without program", ErrMalformed)
			}
			v = prog
		}
		return p.decode(v)
	}
	return nil, fmt.Errorf("%w: document is %T, want an object or an array", ErrMalformed, doc)
}

// ParseBytes decodes one document held in data.
func (p *Parser) ParseBytes(data []byte) (estree.Node, error) {
	return p.Parse(bytes.NewReader(data))
}

// ParseFile decodes the document stored at path.
func (p *Parser) ParseFile(path string) (estree.Node, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	n, err := p.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return n, nil
}

func (p *Parser) decodeList(items []any) ([]estree.Node, error) {
	out := make([]estree.Node, 0, len(items))
	for i, it := range items {
		m, ok := it.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: statement %d is %T", ErrMalformed, i, it)
		}
		n, err := p.decode(m)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}
