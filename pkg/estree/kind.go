package estree

//go:generate go run ../../internal/cmd/kindgen -dir . -out kind_gen.go

// Kind is the closed set of node types the package models. The constants, String, ParseKind, New and the
// per-type Type methods live in kind_gen.go, generated from the struct types embedding Base.
type Kind uint8

// Valid reports whether k names a modelled node type.
func (k Kind) Valid() bool { return k > KindInvalid && k < KindCount }
