package parser

import (
	"fmt"
	"reflect"

	"github.com/go-viper/mapstructure/v2"

	"github.com/cmmoran/cstgen/pkg/estree"
)

var nodeType = reflect.TypeOf((*estree.Node)(nil)).Elem()

// decoder maps the generic JSON tree of one document onto estree structs. Nested nodes are decoded
// by a mapstructure hook that recurses into node; the first error raised below a hook is kept so
// it reaches the caller unwrapped by mapstructure's field path errors.
type decoder struct {
	opts  *Options
	depth int
	err   error
}

func (p *Parser) decode(m map[string]any) (estree.Node, error) {
	d := &decoder{opts: &p.Opts}
	n, err := d.node(m)
	if d.err != nil {
		return nil, d.err
	}
	return n, err
}

func (d *decoder) node(m map[string]any) (estree.Node, error) {
	d.depth++
	defer func() { d.depth-- }()
	if d.depth > d.opts.MaxDepth {
		return nil, fmt.Errorf("%w: nesting deeper than %d", ErrMalformed, d.opts.MaxDepth)
	}

	if _, ok := m["type"].(string); !ok {
		return nil, fmt.Errorf("%w: node without a type", ErrMalformed)
	}
	m = alias(m)
	name := m["type"].(string)
	k := estree.ParseKind(name)
	if !k.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownNodeType, name)
	}

	n := estree.New(k)
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: mapstructure.DecodeHookFuncType(d.hook),
		Result:     n,
		Squash:     true,
	})
	if err != nil {
		return nil, err
	}
	if err = dec.Decode(m); err != nil {
		if d.err != nil {
			return nil, d.err
		}
		return nil, fmt.Errorf("%w: %s: %w", ErrMalformed, name, err)
	}
	return n, nil
}

// hook decodes JSON objects bound for a node-typed field.
func (d *decoder) hook(_ reflect.Type, to reflect.Type, data any) (any, error) {
	m, ok := data.(map[string]any)
	if !ok || !to.Implements(nodeType) {
		return data, nil
	}
	n, err := d.node(m)
	if err == nil && !reflect.TypeOf(n).AssignableTo(to) {
		err = fmt.Errorf("%w: %s where %s is expected", ErrMalformed, n.Type(), to)
	}
	if err != nil {
		if d.err == nil {
			d.err = err
		}
		return nil, err
	}
	return n, nil
}

// alias rewrites babel's non-ESTree node shapes into their ESTree equivalents.
func alias(m map[string]any) map[string]any {
	switch m["type"] {
	case "StringLiteral", "NumericLiteral", "BooleanLiteral":
		m["type"] = "Literal"
	case "NullLiteral":
		m["type"], m["value"] = "Literal", nil
	case "RegExpLiteral":
		m["type"], m["regex"] = "Literal", map[string]any{"pattern": m["pattern"], "flags": m["flags"]}
	case "BigIntLiteral":
		m["type"], m["bigint"] = "Literal", m["value"]
		delete(m, "value")
	case "ObjectProperty":
		m["type"], m["kind"] = "Property", "init"
	}
	return m
}
