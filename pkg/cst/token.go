// Package cst holds the concrete syntax tree produced by the printer: typed tokens, the flat item stream
// the printer emits, and the tree built from that stream.
package cst

import (
	"fmt"
	"strings"
)

// Kind classifies a token.
type Kind uint8

const (
	Punctuator Kind = iota
	Keyword
	Identifier
	Whitespace
	Literal
)

var kindNames = [...]string{
	Punctuator: "Punctuator",
	Keyword:    "Keyword",
	Identifier: "Identifier",
	Whitespace: "Whitespace",
	Literal:    "Literal",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

func (k Kind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

func (k *Kind) UnmarshalText(text []byte) error {
	for i, n := range kindNames {
		if strings.EqualFold(n, string(text)) {
			*k = Kind(i)
			return nil
		}
	}
	return fmt.Errorf("unknown token kind %q", text)
}

// Token is a CST leaf.
type Token struct {
	Kind Kind   `json:"kind" yaml:"kind"`
	Text string `json:"text" yaml:"text"`
}

func (t Token) String() string { return t.Kind.String() + "(" + fmt.Sprintf("%q", t.Text) + ")" }

// Op tells the tree builder what an Item does.
type Op uint8

const (
	OpToken Op = iota // append Token to the current structure
	OpOpen            // open a nested structure called Name
	OpClose           // close the innermost open structure
)

// Item is one element of the printer's output stream.
type Item struct {
	Op    Op
	Token Token
	Name  string
}

func Tok(kind Kind, text string) Item { return Item{Op: OpToken, Token: Token{Kind: kind, Text: text}} }
func Open(name string) Item           { return Item{Op: OpOpen, Name: name} }
func Close() Item                     { return Item{Op: OpClose} }

func Punct(text string) Item { return Tok(Punctuator, text) }
func Word(text string) Item  { return Tok(Keyword, text) }
func Ident(text string) Item { return Tok(Identifier, text) }
func Lit(text string) Item   { return Tok(Literal, text) }
func Space(text string) Item { return Tok(Whitespace, text) }

// Width is the number of characters the item contributes to the output text.
func (it Item) Width() int {
	if it.Op != OpToken {
		return 0
	}
	return len([]rune(it.Token.Text))
}

// Text concatenates the token text of a stream.
func Text(items []Item) string {
	var sb strings.Builder
	for _, it := range items {
		if it.Op == OpToken {
			sb.WriteString(it.Token.Text)
		}
	}
	return sb.String()
}
