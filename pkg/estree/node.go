// Package estree models the ESTree (and typescript-estree) abstract syntax tree consumed by the printer.
//
// Field names follow the ESTree property names; the mapstructure tags are the JSON keys produced by
// acorn, espree, typescript-estree and babel (with the estree plugin).
package estree

import "strings"

// Node is implemented by every supported AST node.
type Node interface {
	// Type reports the node's ESTree type.
	Type() Kind
	// Comments returns the comments attached to the node.
	Comments() *Base
}

// Comment is a source comment attached to a node. Value excludes the delimiters.
type Comment struct {
	Type  string `mapstructure:"type" json:"type" yaml:"type"`
	Value string `mapstructure:"value" json:"value" yaml:"value"`
}

const (
	LineComment  = "Line"
	BlockComment = "Block"
)

// IsLine reports whether c is a `//` comment.
func (c Comment) IsLine() bool { return c.Type == LineComment || c.Type == "CommentLine" }

// NeedsNewline reports whether the comment must be followed by a line break.
func (c Comment) NeedsNewline() bool {
	return c.IsLine() || strings.ContainsAny(c.Value, "\n\r")
}

// Base carries the comments every node may own. It is embedded in all node structs.
type Base struct {
	LeadingComments  []Comment `mapstructure:"leadingComments" json:"leadingComments,omitempty"`
	TrailingComments []Comment `mapstructure:"trailingComments" json:"trailingComments,omitempty"`
}

// Comments implements Node.
func (b *Base) Comments() *Base { return b }

// HasComments reports whether any comment is attached.
func (b *Base) HasComments() bool {
	return len(b.LeadingComments) > 0 || len(b.TrailingComments) > 0
}

// RegExp is the `regex` property of a regular expression Literal.
type RegExp struct {
	Pattern string `mapstructure:"pattern" json:"pattern"`
	Flags   string `mapstructure:"flags" json:"flags"`
}

// TemplateValue is the `value` property of a TemplateElement.
type TemplateValue struct {
	Raw    string  `mapstructure:"raw" json:"raw"`
	Cooked *string `mapstructure:"cooked" json:"cooked"`
}

// Name returns the identifier name of n, or "" when n is not an Identifier.
func Name(n Node) string {
	if id, ok := n.(*Identifier); ok {
		return id.Name
	}
	return ""
}
