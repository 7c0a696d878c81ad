package estree

// TypeScript annotations (typescript-estree shapes). Only the subset the printer renders is modelled.

type TSTypeAnnotation struct {
	Base           `mapstructure:",squash"`
	TypeAnnotation Node `mapstructure:"typeAnnotation"`
}

type TSAnyKeyword struct {
	Base `mapstructure:",squash"`
}

type TSUnknownKeyword struct {
	Base `mapstructure:",squash"`
}

type TSNumberKeyword struct {
	Base `mapstructure:",squash"`
}

type TSStringKeyword struct {
	Base `mapstructure:",squash"`
}

type TSBooleanKeyword struct {
	Base `mapstructure:",squash"`
}

type TSBigIntKeyword struct {
	Base `mapstructure:",squash"`
}

type TSSymbolKeyword struct {
	Base `mapstructure:",squash"`
}

type TSObjectKeyword struct {
	Base `mapstructure:",squash"`
}

type TSNullKeyword struct {
	Base `mapstructure:",squash"`
}

type TSUndefinedKeyword struct {
	Base `mapstructure:",squash"`
}

type TSVoidKeyword struct {
	Base `mapstructure:",squash"`
}

type TSNeverKeyword struct {
	Base `mapstructure:",squash"`
}

type TSTypeReference struct {
	Base          `mapstructure:",squash"`
	TypeName      Node                          `mapstructure:"typeName"`
	TypeArguments *TSTypeParameterInstantiation `mapstructure:"typeArguments"`
}

type TSTypeParameterInstantiation struct {
	Base   `mapstructure:",squash"`
	Params []Node `mapstructure:"params"`
}

type TSQualifiedName struct {
	Base  `mapstructure:",squash"`
	Left  Node `mapstructure:"left"`
	Right Node `mapstructure:"right"`
}

type TSArrayType struct {
	Base        `mapstructure:",squash"`
	ElementType Node `mapstructure:"elementType"`
}

type TSUnionType struct {
	Base  `mapstructure:",squash"`
	Types []Node `mapstructure:"types"`
}

type TSIntersectionType struct {
	Base  `mapstructure:",squash"`
	Types []Node `mapstructure:"types"`
}

// TSLiteralType wraps a Literal, TemplateLiteral or negated numeric UnaryExpression.
type TSLiteralType struct {
	Base    `mapstructure:",squash"`
	Literal Node `mapstructure:"literal"`
}

type TSTupleType struct {
	Base         `mapstructure:",squash"`
	ElementTypes []Node `mapstructure:"elementTypes"`
}

type TSParenthesizedType struct {
	Base           `mapstructure:",squash"`
	TypeAnnotation Node `mapstructure:"typeAnnotation"`
}

type TSTypeAliasDeclaration struct {
	Base           `mapstructure:",squash"`
	ID             Node `mapstructure:"id"`
	TypeAnnotation Node `mapstructure:"typeAnnotation"`
	Declare        bool `mapstructure:"declare"`
}

type TSNonNullExpression struct {
	Base       `mapstructure:",squash"`
	Expression Node `mapstructure:"expression"`
}
