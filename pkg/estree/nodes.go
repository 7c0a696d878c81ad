package estree

// Program is the root of a script or module.
type Program struct {
	Base       `mapstructure:",squash"`
	Body       []Node `mapstructure:"body"`
	SourceType string `mapstructure:"sourceType"`
}

// Statements -----------------------------------------------------------------

type ExpressionStatement struct {
	Base       `mapstructure:",squash"`
	Expression Node   `mapstructure:"expression"`
	Directive  string `mapstructure:"directive"`
}

type BlockStatement struct {
	Base `mapstructure:",squash"`
	Body []Node `mapstructure:"body"`
}

type EmptyStatement struct {
	Base `mapstructure:",squash"`
}

type DebuggerStatement struct {
	Base `mapstructure:",squash"`
}

type WithStatement struct {
	Base   `mapstructure:",squash"`
	Object Node `mapstructure:"object"`
	Body   Node `mapstructure:"body"`
}

type ReturnStatement struct {
	Base     `mapstructure:",squash"`
	Argument Node `mapstructure:"argument"`
}

type LabeledStatement struct {
	Base  `mapstructure:",squash"`
	Label Node `mapstructure:"label"`
	Body  Node `mapstructure:"body"`
}

type BreakStatement struct {
	Base  `mapstructure:",squash"`
	Label Node `mapstructure:"label"`
}

type ContinueStatement struct {
	Base  `mapstructure:",squash"`
	Label Node `mapstructure:"label"`
}

type IfStatement struct {
	Base       `mapstructure:",squash"`
	Test       Node `mapstructure:"test"`
	Consequent Node `mapstructure:"consequent"`
	Alternate  Node `mapstructure:"alternate"`
}

type SwitchStatement struct {
	Base         `mapstructure:",squash"`
	Discriminant Node          `mapstructure:"discriminant"`
	Cases        []*SwitchCase `mapstructure:"cases"`
}

// SwitchCase is a `case` clause; a nil Test is the `default` clause.
type SwitchCase struct {
	Base       `mapstructure:",squash"`
	Test       Node   `mapstructure:"test"`
	Consequent []Node `mapstructure:"consequent"`
}

type ThrowStatement struct {
	Base     `mapstructure:",squash"`
	Argument Node `mapstructure:"argument"`
}

type TryStatement struct {
	Base      `mapstructure:",squash"`
	Block     Node         `mapstructure:"block"`
	Handler   *CatchClause `mapstructure:"handler"`
	Finalizer Node         `mapstructure:"finalizer"`
}

// CatchClause is the `catch` part of a TryStatement; Param is nil for `catch {}`.
type CatchClause struct {
	Base  `mapstructure:",squash"`
	Param Node `mapstructure:"param"`
	Body  Node `mapstructure:"body"`
}

type WhileStatement struct {
	Base `mapstructure:",squash"`
	Test Node `mapstructure:"test"`
	Body Node `mapstructure:"body"`
}

type DoWhileStatement struct {
	Base `mapstructure:",squash"`
	Body Node `mapstructure:"body"`
	Test Node `mapstructure:"test"`
}

type ForStatement struct {
	Base   `mapstructure:",squash"`
	Init   Node `mapstructure:"init"`
	Test   Node `mapstructure:"test"`
	Update Node `mapstructure:"update"`
	Body   Node `mapstructure:"body"`
}

type ForInStatement struct {
	Base  `mapstructure:",squash"`
	Left  Node `mapstructure:"left"`
	Right Node `mapstructure:"right"`
	Body  Node `mapstructure:"body"`
}

type ForOfStatement struct {
	Base  `mapstructure:",squash"`
	Left  Node `mapstructure:"left"`
	Right Node `mapstructure:"right"`
	Body  Node `mapstructure:"body"`
	Await bool `mapstructure:"await"`
}

// Declarations ---------------------------------------------------------------

type FunctionDeclaration struct {
	Base       `mapstructure:",squash"`
	ID         Node   `mapstructure:"id"`
	Params     []Node `mapstructure:"params"`
	Body       Node   `mapstructure:"body"`
	Generator  bool   `mapstructure:"generator"`
	Async      bool   `mapstructure:"async"`
	ReturnType Node   `mapstructure:"returnType"`
}

type VariableDeclaration struct {
	Base         `mapstructure:",squash"`
	Declarations []*VariableDeclarator `mapstructure:"declarations"`
	Kind         string                `mapstructure:"kind"`
}

type VariableDeclarator struct {
	Base `mapstructure:",squash"`
	ID   Node `mapstructure:"id"`
	Init Node `mapstructure:"init"`
}

type ClassDeclaration struct {
	Base       `mapstructure:",squash"`
	ID         Node `mapstructure:"id"`
	SuperClass Node `mapstructure:"superClass"`
	Body       Node `mapstructure:"body"`
}

type ClassBody struct {
	Base `mapstructure:",squash"`
	Body []Node `mapstructure:"body"`
}

// MethodDefinition is a class method; Kind is constructor, method, get or set.
type MethodDefinition struct {
	Base     `mapstructure:",squash"`
	Key      Node   `mapstructure:"key"`
	Value    Node   `mapstructure:"value"`
	Kind     string `mapstructure:"kind"`
	Computed bool   `mapstructure:"computed"`
	Static   bool   `mapstructure:"static"`
}

type PropertyDefinition struct {
	Base           `mapstructure:",squash"`
	Key            Node `mapstructure:"key"`
	Value          Node `mapstructure:"value"`
	Computed       bool `mapstructure:"computed"`
	Static         bool `mapstructure:"static"`
	TypeAnnotation Node `mapstructure:"typeAnnotation"`
}

type StaticBlock struct {
	Base `mapstructure:",squash"`
	Body []Node `mapstructure:"body"`
}

// Modules --------------------------------------------------------------------

type ImportDeclaration struct {
	Base       `mapstructure:",squash"`
	Specifiers []Node             `mapstructure:"specifiers"`
	Source     Node               `mapstructure:"source"`
	Attributes []*ImportAttribute `mapstructure:"attributes"`
}

type ImportAttribute struct {
	Base  `mapstructure:",squash"`
	Key   Node `mapstructure:"key"`
	Value Node `mapstructure:"value"`
}

type ImportSpecifier struct {
	Base     `mapstructure:",squash"`
	Imported Node `mapstructure:"imported"`
	Local    Node `mapstructure:"local"`
}

type ImportDefaultSpecifier struct {
	Base  `mapstructure:",squash"`
	Local Node `mapstructure:"local"`
}

type ImportNamespaceSpecifier struct {
	Base  `mapstructure:",squash"`
	Local Node `mapstructure:"local"`
}

type ExportNamedDeclaration struct {
	Base        `mapstructure:",squash"`
	Declaration Node               `mapstructure:"declaration"`
	Specifiers  []Node             `mapstructure:"specifiers"`
	Source      Node               `mapstructure:"source"`
	Attributes  []*ImportAttribute `mapstructure:"attributes"`
}

type ExportSpecifier struct {
	Base     `mapstructure:",squash"`
	Local    Node `mapstructure:"local"`
	Exported Node `mapstructure:"exported"`
}

type ExportDefaultDeclaration struct {
	Base        `mapstructure:",squash"`
	Declaration Node `mapstructure:"declaration"`
}

type ExportAllDeclaration struct {
	Base       `mapstructure:",squash"`
	Exported   Node               `mapstructure:"exported"`
	Source     Node               `mapstructure:"source"`
	Attributes []*ImportAttribute `mapstructure:"attributes"`
}

// Expressions ----------------------------------------------------------------

type Identifier struct {
	Base           `mapstructure:",squash"`
	Name           string `mapstructure:"name"`
	Optional       bool   `mapstructure:"optional"`
	TypeAnnotation Node   `mapstructure:"typeAnnotation"`
}

type PrivateIdentifier struct {
	Base `mapstructure:",squash"`
	Name string `mapstructure:"name"`
}

// Literal is a string, number, boolean, null, bigint or regular expression literal.
// Value holds the decoded JSON value; Regex and Bigint are set for the respective literal forms.
type Literal struct {
	Base   `mapstructure:",squash"`
	Value  any     `mapstructure:"value"`
	Raw    string  `mapstructure:"raw"`
	Regex  *RegExp `mapstructure:"regex"`
	Bigint string  `mapstructure:"bigint"`
}

type ThisExpression struct {
	Base `mapstructure:",squash"`
}

type Super struct {
	Base `mapstructure:",squash"`
}

type ArrayExpression struct {
	Base     `mapstructure:",squash"`
	Elements []Node `mapstructure:"elements"`
}

type ObjectExpression struct {
	Base       `mapstructure:",squash"`
	Properties []Node `mapstructure:"properties"`
}

// Property is an object literal or object pattern member; Kind is init, get or set.
type Property struct {
	Base      `mapstructure:",squash"`
	Key       Node   `mapstructure:"key"`
	Value     Node   `mapstructure:"value"`
	Kind      string `mapstructure:"kind"`
	Method    bool   `mapstructure:"method"`
	Shorthand bool   `mapstructure:"shorthand"`
	Computed  bool   `mapstructure:"computed"`
}

type FunctionExpression struct {
	Base       `mapstructure:",squash"`
	ID         Node   `mapstructure:"id"`
	Params     []Node `mapstructure:"params"`
	Body       Node   `mapstructure:"body"`
	Generator  bool   `mapstructure:"generator"`
	Async      bool   `mapstructure:"async"`
	ReturnType Node   `mapstructure:"returnType"`
}

type ArrowFunctionExpression struct {
	Base       `mapstructure:",squash"`
	Params     []Node `mapstructure:"params"`
	Body       Node   `mapstructure:"body"`
	Async      bool   `mapstructure:"async"`
	Expression bool   `mapstructure:"expression"`
	ReturnType Node   `mapstructure:"returnType"`
}

type ClassExpression struct {
	Base       `mapstructure:",squash"`
	ID         Node `mapstructure:"id"`
	SuperClass Node `mapstructure:"superClass"`
	Body       Node `mapstructure:"body"`
}

type TemplateLiteral struct {
	Base        `mapstructure:",squash"`
	Quasis      []*TemplateElement `mapstructure:"quasis"`
	Expressions []Node             `mapstructure:"expressions"`
}

type TemplateElement struct {
	Base  `mapstructure:",squash"`
	Value TemplateValue `mapstructure:"value"`
	Tail  bool          `mapstructure:"tail"`
}

type TaggedTemplateExpression struct {
	Base  `mapstructure:",squash"`
	Tag   Node             `mapstructure:"tag"`
	Quasi *TemplateLiteral `mapstructure:"quasi"`
}

type UnaryExpression struct {
	Base     `mapstructure:",squash"`
	Operator string `mapstructure:"operator"`
	Prefix   bool   `mapstructure:"prefix"`
	Argument Node   `mapstructure:"argument"`
}

type UpdateExpression struct {
	Base     `mapstructure:",squash"`
	Operator string `mapstructure:"operator"`
	Prefix   bool   `mapstructure:"prefix"`
	Argument Node   `mapstructure:"argument"`
}

type BinaryExpression struct {
	Base     `mapstructure:",squash"`
	Operator string `mapstructure:"operator"`
	Left     Node   `mapstructure:"left"`
	Right    Node   `mapstructure:"right"`
}

type LogicalExpression struct {
	Base     `mapstructure:",squash"`
	Operator string `mapstructure:"operator"`
	Left     Node   `mapstructure:"left"`
	Right    Node   `mapstructure:"right"`
}

type AssignmentExpression struct {
	Base     `mapstructure:",squash"`
	Operator string `mapstructure:"operator"`
	Left     Node   `mapstructure:"left"`
	Right    Node   `mapstructure:"right"`
}

type ConditionalExpression struct {
	Base       `mapstructure:",squash"`
	Test       Node `mapstructure:"test"`
	Consequent Node `mapstructure:"consequent"`
	Alternate  Node `mapstructure:"alternate"`
}

type CallExpression struct {
	Base      `mapstructure:",squash"`
	Callee    Node   `mapstructure:"callee"`
	Arguments []Node `mapstructure:"arguments"`
	Optional  bool   `mapstructure:"optional"`
}

type NewExpression struct {
	Base      `mapstructure:",squash"`
	Callee    Node   `mapstructure:"callee"`
	Arguments []Node `mapstructure:"arguments"`
}

type MemberExpression struct {
	Base     `mapstructure:",squash"`
	Object   Node `mapstructure:"object"`
	Property Node `mapstructure:"property"`
	Computed bool `mapstructure:"computed"`
	Optional bool `mapstructure:"optional"`
}

type ChainExpression struct {
	Base       `mapstructure:",squash"`
	Expression Node `mapstructure:"expression"`
}

type SequenceExpression struct {
	Base        `mapstructure:",squash"`
	Expressions []Node `mapstructure:"expressions"`
}

type YieldExpression struct {
	Base     `mapstructure:",squash"`
	Argument Node `mapstructure:"argument"`
	Delegate bool `mapstructure:"delegate"`
}

type AwaitExpression struct {
	Base     `mapstructure:",squash"`
	Argument Node `mapstructure:"argument"`
}

type ImportExpression struct {
	Base    `mapstructure:",squash"`
	Source  Node `mapstructure:"source"`
	Options Node `mapstructure:"options"`
}

type MetaProperty struct {
	Base     `mapstructure:",squash"`
	Meta     Node `mapstructure:"meta"`
	Property Node `mapstructure:"property"`
}

type SpreadElement struct {
	Base     `mapstructure:",squash"`
	Argument Node `mapstructure:"argument"`
}

// Patterns -------------------------------------------------------------------

type RestElement struct {
	Base           `mapstructure:",squash"`
	Argument       Node `mapstructure:"argument"`
	TypeAnnotation Node `mapstructure:"typeAnnotation"`
}

type ArrayPattern struct {
	Base           `mapstructure:",squash"`
	Elements       []Node `mapstructure:"elements"`
	TypeAnnotation Node   `mapstructure:"typeAnnotation"`
}

type ObjectPattern struct {
	Base           `mapstructure:",squash"`
	Properties     []Node `mapstructure:"properties"`
	TypeAnnotation Node   `mapstructure:"typeAnnotation"`
}

type AssignmentPattern struct {
	Base  `mapstructure:",squash"`
	Left  Node `mapstructure:"left"`
	Right Node `mapstructure:"right"`
}
