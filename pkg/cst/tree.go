package cst

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

var ErrUnbalanced = errors.New("unbalanced structure")

// Node is a CST structure: a named, ordered list of tokens and nested structures.
type Node struct {
	Name     string
	Children []Child
}

// Child is exactly one of a token or a nested structure.
type Child struct {
	Token *Token
	Node  *Node
}

// Build realizes a flat item stream into a tree rooted at a structure called name.
func Build(name string, items []Item) (*Node, error) {
	root := &Node{Name: name}
	stack := []*Node{root}
	for i, it := range items {
		top := stack[len(stack)-1]
		switch it.Op {
		case OpToken:
			tok := it.Token
			top.Children = append(top.Children, Child{Token: &tok})
		case OpOpen:
			n := &Node{Name: it.Name}
			top.Children = append(top.Children, Child{Node: n})
			stack = append(stack, n)
		case OpClose:
			if len(stack) == 1 {
				return nil, fmt.Errorf("%w: close without open at item %d", ErrUnbalanced, i)
			}
			stack = stack[:len(stack)-1]
		default:
			return nil, fmt.Errorf("unknown item op %d at item %d", it.Op, i)
		}
	}
	if len(stack) != 1 {
		return nil, fmt.Errorf("%w: %q left open", ErrUnbalanced, stack[len(stack)-1].Name)
	}
	return root, nil
}

// Text is the exact source text of the tree.
func (n *Node) Text() string {
	var sb strings.Builder
	n.write(&sb)
	return sb.String()
}

func (n *Node) write(sb *strings.Builder) {
	for _, c := range n.Children {
		if c.Token != nil {
			sb.WriteString(c.Token.Text)
		} else if c.Node != nil {
			c.Node.write(sb)
		}
	}
}

// WriteTo writes the source text of the tree to w.
func (n *Node) WriteTo(w io.Writer) (int64, error) {
	c, err := io.WriteString(w, n.Text())
	return int64(c), err
}

// Tokens returns the leaves in order.
func (n *Node) Tokens() []Token {
	var out []Token
	n.Walk(func(c Child) bool {
		if c.Token != nil {
			out = append(out, *c.Token)
		}
		return true
	})
	return out
}

// Walk visits children depth-first; returning false from fn skips a structure's children.
func (n *Node) Walk(fn func(Child) bool) {
	for _, c := range n.Children {
		if !fn(c) {
			continue
		}
		if c.Node != nil {
			c.Node.Walk(fn)
		}
	}
}

// Find returns the structures called name, in order.
func (n *Node) Find(name string) []*Node {
	var out []*Node
	n.Walk(func(c Child) bool {
		if c.Node != nil && c.Node.Name == name {
			out = append(out, c.Node)
		}
		return true
	})
	return out
}

type encodedNode struct {
	Name     string `json:"name" yaml:"name"`
	Children []any  `json:"children,omitempty" yaml:"children,omitempty"`
}

func (n *Node) encoded() encodedNode {
	e := encodedNode{Name: n.Name, Children: make([]any, 0, len(n.Children))}
	for _, c := range n.Children {
		if c.Token != nil {
			e.Children = append(e.Children, *c.Token)
		} else if c.Node != nil {
			e.Children = append(e.Children, c.Node.encoded())
		}
	}
	return e
}

func (n *Node) MarshalJSON() ([]byte, error) { return json.Marshal(n.encoded()) }

func (n *Node) MarshalYAML() (any, error) { return n.encoded(), nil }

// Encode writes the tree to w as "text", "json" or "yaml".
func (n *Node) Encode(w io.Writer, format string) error {
	switch strings.ToLower(format) {
	case "", "text":
		_, err := n.WriteTo(w)
		return err
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(n)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		defer enc.Close()
		return enc.Encode(n)
	}
	return fmt.Errorf("unknown format %q", format)
}
