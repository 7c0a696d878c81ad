package printer

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cmmoran/cstgen/pkg/cst"
	"github.com/cmmoran/cstgen/pkg/estree"
)

func TestPrintScenarios(ttt *testing.T) {
	tests := []struct {
		name string
		body []estree.Node
		want string
	}{
		{
			name: "short declarator list stays inline",
			body: []estree.Node{decl("const", id("a"), num(1), id("b"), num(2))},
			want: "const a = 1, b = 2;\n",
		},
		{
			name: "exponent right nested",
			body: []estree.Node{stmt(bin("**", id("a"), bin("**", id("b"), id("c"))))},
			want: "a ** b ** c;\n",
		},
		{
			name: "exponent left nested",
			body: []estree.Node{stmt(bin("**", bin("**", id("a"), id("b")), id("c")))},
			want: "(a ** b) ** c;\n",
		},
		{
			name: "string with newline and quote",
			body: []estree.Node{stmt(str("it's\nfine"))},
			want: "'it\\'s\\nfine';\n",
		},
		{
			name: "multiplication binds tighter",
			body: []estree.Node{stmt(bin("+", num(1), bin("*", num(2), num(3))))},
			want: "1 + 2 * 3;\n",
		},
		{
			name: "addition grouped under multiplication",
			body: []estree.Node{stmt(bin("*", bin("+", num(1), num(2)), num(3)))},
			want: "(1 + 2) * 3;\n",
		},
		{
			name: "object at statement start",
			body: []estree.Node{stmt(&estree.ObjectExpression{Properties: []estree.Node{
				&estree.Property{Key: id("a"), Value: num(1), Kind: "init"},
			}})},
			want: "({ a: 1 });\n",
		},
		{
			name: "immediately invoked function",
			body: []estree.Node{stmt(call(&estree.FunctionExpression{Body: block()}))},
			want: "(function () {}());\n",
		},
		{
			name: "new with optional chain callee",
			body: []estree.Node{stmt(&estree.NewExpression{Callee: &estree.ChainExpression{
				Expression: &estree.MemberExpression{Object: id("a"), Property: id("b"), Optional: true},
			}})},
			want: "new (a?.b)();\n",
		},
		{
			name: "new with call in member callee",
			body: []estree.Node{stmt(&estree.NewExpression{Callee: member(call(id("f")), "g")})},
			want: "new (f().g)();\n",
		},
		{
			name: "arrow returning object",
			body: []estree.Node{stmt(&estree.ArrowFunctionExpression{
				Params: []estree.Node{id("x")},
				Body:   &estree.ObjectExpression{},
			})},
			want: "(x) => ({});\n",
		},
		{
			name: "if else inline bodies",
			body: []estree.Node{&estree.IfStatement{
				Test:       id("a"),
				Consequent: stmt(call(id("b"))),
				Alternate:  stmt(call(id("c"))),
			}},
			want: "if (a) b(); else c();\n",
		},
		{
			name: "dangling else gets braces",
			body: []estree.Node{&estree.IfStatement{
				Test:       id("a"),
				Consequent: &estree.IfStatement{Test: id("b"), Consequent: stmt(call(id("c")))},
				Alternate:  stmt(call(id("d"))),
			}},
			want: "if (a) {\n  if (b) c();\n} else d();\n",
		},
		{
			name: "function declaration",
			body: []estree.Node{&estree.FunctionDeclaration{
				ID:     id("add"),
				Params: []estree.Node{id("a"), id("b")},
				Body:   block(&estree.ReturnStatement{Argument: bin("+", id("a"), id("b"))}),
			}},
			want: "function add(a, b) {\n  return a + b;\n}\n",
		},
		{
			name: "groupable runs are separated",
			body: []estree.Node{
				&estree.ImportDeclaration{
					Specifiers: []estree.Node{&estree.ImportDefaultSpecifier{Local: id("x")}},
					Source:     str("x"),
				},
				decl("const", id("a"), num(1)),
				decl("let", id("b"), num(2)),
				stmt(call(id("f"))),
				stmt(call(id("g"))),
			},
			want: "import x from 'x';\n\nconst a = 1;\nlet b = 2;\n\nf();\ng();\n",
		},
		{
			name: "multi-line statement gets a blank line",
			body: []estree.Node{
				stmt(call(id("f"))),
				&estree.WhileStatement{Test: id("a"), Body: block(stmt(call(id("g"))))},
				stmt(call(id("h"))),
			},
			want: "f();\n\nwhile (a) {\n  g();\n}\n\nh();\n",
		},
		{
			name: "empty statements are skipped",
			body: []estree.Node{stmt(id("a")), &estree.EmptyStatement{}, stmt(id("b"))},
			want: "a;\nb;\n",
		},
		{
			name: "template literal",
			body: []estree.Node{stmt(&estree.TemplateLiteral{
				Quasis: []*estree.TemplateElement{
					{Value: estree.TemplateValue{Raw: "a"}},
					{Value: estree.TemplateValue{Raw: "c"}, Tail: true},
				},
				Expressions: []estree.Node{id("b")},
			})},
			want: "`a${b}c`;\n",
		},
		{
			name: "integer literal as member object",
			body: []estree.Node{stmt(call(member(num(1), "toString")))},
			want: "(1).toString();\n",
		},
		{
			name: "new with call in callee",
			body: []estree.Node{stmt(&estree.NewExpression{Callee: call(id("a"))})},
			want: "new (a())();\n",
		},
		{
			name: "double negation keeps parens",
			body: []estree.Node{stmt(unary("-", unary("-", id("a"))))},
			want: "-(-a);\n",
		},
		{
			name: "sequence as argument",
			body: []estree.Node{stmt(call(id("f"), &estree.SequenceExpression{Expressions: []estree.Node{id("a"), id("b")}}))},
			want: "f((a, b));\n",
		},
		{
			name: "optional chain",
			body: []estree.Node{stmt(&estree.ChainExpression{Expression: &estree.MemberExpression{
				Object: id("a"), Property: id("b"), Optional: true,
			}})},
			want: "a?.b;\n",
		},
		{
			name: "member of optional chain",
			body: []estree.Node{stmt(member(&estree.ChainExpression{Expression: &estree.MemberExpression{
				Object: id("a"), Property: id("b"), Optional: true,
			}}, "c"))},
			want: "(a?.b).c;\n",
		},
		{
			name: "nullish mixed with or",
			body: []estree.Node{stmt(logical("??", id("a"), logical("||", id("b"), id("c"))))},
			want: "a ?? (b || c);\n",
		},
		{
			name: "unary base of exponent",
			body: []estree.Node{stmt(bin("**", unary("-", id("a")), id("b")))},
			want: "(-a) ** b;\n",
		},
		{
			name: "conditional in conditional test",
			body: []estree.Node{stmt(&estree.ConditionalExpression{
				Test:       &estree.ConditionalExpression{Test: id("a"), Consequent: id("b"), Alternate: id("c")},
				Consequent: id("d"),
				Alternate:  id("e"),
			})},
			want: "(a ? b : c) ? d : e;\n",
		},
		{
			name: "for loop",
			body: []estree.Node{&estree.ForStatement{
				Init:   decl("let", id("i"), num(0)),
				Test:   bin("<", id("i"), num(10)),
				Update: &estree.UpdateExpression{Operator: "++", Argument: id("i")},
				Body:   block(),
			}},
			want: "for (let i = 0; i < 10; i++) {}\n",
		},
		{
			name: "endless for",
			body: []estree.Node{&estree.ForStatement{Body: &estree.EmptyStatement{}}},
			want: "for (;;);\n",
		},
		{
			name: "in operator inside for init",
			body: []estree.Node{&estree.ForStatement{
				Init: decl("var", id("a"), bin("in", id("b"), id("c"))),
				Body: block(),
			}},
			want: "for (var a = (b in c);;) {}\n",
		},
		{
			name: "switch",
			body: []estree.Node{&estree.SwitchStatement{
				Discriminant: id("x"),
				Cases: []*estree.SwitchCase{
					{Test: num(1), Consequent: []estree.Node{stmt(call(id("f"))), &estree.BreakStatement{}}},
					{Consequent: []estree.Node{block()}},
				},
			}},
			want: "switch (x) {\n  case 1:\n    f();\n    break;\n  default: {}\n}\n",
		},
		{
			name: "try catch finally",
			body: []estree.Node{&estree.TryStatement{
				Block:     block(),
				Handler:   &estree.CatchClause{Param: id("e"), Body: block()},
				Finalizer: block(),
			}},
			want: "try {} catch (e) {} finally {}\n",
		},
		{
			name: "class with members",
			body: []estree.Node{&estree.ClassDeclaration{
				ID:         id("A"),
				SuperClass: id("B"),
				Body: &estree.ClassBody{Body: []estree.Node{
					&estree.PropertyDefinition{Key: id("x"), Value: num(1)},
					&estree.MethodDefinition{Key: id("get"), Kind: "method", Static: true,
						Value: &estree.FunctionExpression{Body: block()}},
				}},
			}},
			want: "class A extends B {\n  x = 1;\n  static get() {}\n}\n",
		},
		{
			name: "named imports and exports",
			body: []estree.Node{
				&estree.ImportDeclaration{
					Specifiers: []estree.Node{
						&estree.ImportSpecifier{Imported: id("a"), Local: id("a")},
						&estree.ImportSpecifier{Imported: id("b"), Local: id("c")},
					},
					Source:     str("m"),
					Attributes: []*estree.ImportAttribute{{Key: id("type"), Value: str("json")}},
				},
				&estree.ExportNamedDeclaration{},
			},
			want: "import { a, b as c } from 'm' with { type: 'json' };\n\nexport {};\n",
		},
		{
			name: "export default sequence",
			body: []estree.Node{&estree.ExportDefaultDeclaration{Declaration: &estree.SequenceExpression{
				Expressions: []estree.Node{id("a"), id("b")},
			}}},
			want: "export default (a, b);\n",
		},
		{
			name: "sparse array keeps holes",
			body: []estree.Node{stmt(&estree.ArrayExpression{Elements: []estree.Node{id("a"), nil, id("b"), nil}})},
			want: "[a, , b, ,];\n",
		},
		{
			name: "type annotations",
			body: []estree.Node{
				&estree.TSTypeAliasDeclaration{ID: id("T"), TypeAnnotation: &estree.TSIntersectionType{Types: []estree.Node{
					&estree.TSUnionType{Types: []estree.Node{&estree.TSStringKeyword{}, &estree.TSNumberKeyword{}}},
					&estree.TSArrayType{ElementType: &estree.TSTypeReference{TypeName: id("U")}},
				}}},
				decl("let", &estree.Identifier{Name: "x", TypeAnnotation: &estree.TSTypeAnnotation{
					TypeAnnotation: &estree.TSTypeReference{
						TypeName:      id("Map"),
						TypeArguments: &estree.TSTypeParameterInstantiation{Params: []estree.Node{&estree.TSBigIntKeyword{}, &estree.TSNullKeyword{}}},
					},
				}}, nil),
			},
			want: "type T = (string | number) & U[];\n\nlet x: Map<bigint, null>;\n",
		},
	}
	for _, tt := range tests {
		ttt.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			requireText(t, tt.want, printText(t, tt.body...))
		})
	}
}

func TestPrintMultilineThreshold(ttt *testing.T) {
	arg := func(c byte) estree.Node { return id(strings.Repeat(string(c), 10)) }
	tests := []struct {
		name string
		args []estree.Node
		want string
	}{
		{
			name: "three arguments fit",
			args: []estree.Node{arg('a'), arg('b'), arg('c')},
			want: "f(aaaaaaaaaa, bbbbbbbbbb, cccccccccc);\n",
		},
		{
			// open and close slots 2 each, two ", " joins: 4 + 6 + 40 = 50
			name: "width exactly at the limit stays inline",
			args: []estree.Node{id(strings.Repeat("a", 14)), id(strings.Repeat("b", 13)), id(strings.Repeat("c", 13))},
			want: "f(aaaaaaaaaaaaaa, bbbbbbbbbbbbb, ccccccccccccc);\n",
		},
		{
			name: "width one past the limit breaks",
			args: []estree.Node{id(strings.Repeat("a", 14)), id(strings.Repeat("b", 14)), id(strings.Repeat("c", 13))},
			want: "f(\n  aaaaaaaaaaaaaa,\n  bbbbbbbbbbbbbb,\n  ccccccccccccc\n);\n",
		},
		{
			name: "four arguments break",
			args: []estree.Node{arg('a'), arg('b'), arg('c'), arg('d')},
			want: "f(\n  aaaaaaaaaa,\n  bbbbbbbbbb,\n  cccccccccc,\n  dddddddddd\n);\n",
		},
	}
	for _, tt := range tests {
		ttt.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			requireText(t, tt.want, printText(t, stmt(call(id("f"), tt.args...))))
		})
	}

	ttt.Run("long object breaks with inner spacing dropped", func(t *testing.T) {
		var props []estree.Node
		for _, c := range "abcde" {
			props = append(props, &estree.Property{Key: id(strings.Repeat(string(c), 10)), Value: num(1), Kind: "init"})
		}
		got := printText(t, decl("const", id("o"), &estree.ObjectExpression{Properties: props}))
		requireText(t, "const o = {\n  aaaaaaaaaa: 1,\n  bbbbbbbbbb: 1,\n  cccccccccc: 1,\n  dddddddddd: 1,\n  eeeeeeeeee: 1\n};\n", got)
	})

	ttt.Run("long declarator list breaks", func(t *testing.T) {
		var pairs []estree.Node
		for i, c := range "abcd" {
			pairs = append(pairs, id(strings.Repeat(string(c), 10)), num(float64(i+1)))
		}
		got := printText(t, decl("let", pairs...))
		requireText(t, "let aaaaaaaaaa = 1,\n  bbbbbbbbbb = 2,\n  cccccccccc = 3,\n  dddddddddd = 4;\n", got)
	})

	ttt.Run("configured width", func(t *testing.T) {
		items, err := PrintStatements([]estree.Node{stmt(call(id("f"), id("a"), id("b")))}, Config{MaxInlineWidth: 4, Indent: "\t"})
		require.NoError(t, err)
		requireText(t, "f(\n\ta,\n\tb\n);\n", cst.Text(items))
	})
}

func TestPrintComments(ttt *testing.T) {
	tests := []struct {
		name string
		body []estree.Node
		want string
	}{
		{
			name: "line comment above statement",
			body: []estree.Node{leading(stmt(call(id("f"))), line(" hi"))},
			want: "// hi\nf();\n",
		},
		{
			name: "inline block comment",
			body: []estree.Node{stmt(leading(id("a"), blockc(" x ")))},
			want: "/* x */ a;\n",
		},
		{
			name: "block comment with newline breaks",
			body: []estree.Node{leading(stmt(id("a")), blockc("*\n * doc\n "))},
			want: "/**\n * doc\n */\na;\n",
		},
		{
			name: "trailing comment on last argument",
			body: []estree.Node{stmt(call(id("f"), id("a"), trailing(id("b"), blockc(" c "))))},
			want: "f(a, b /* c */);\n",
		},
		{
			name: "trailing line comment forces break",
			body: []estree.Node{stmt(call(id("f"), id("a"), trailing(id("b"), line(" c"))))},
			want: "f(\n  a,\n  b // c\n);\n",
		},
		{
			name: "trailing comment after separator",
			body: []estree.Node{stmt(call(id("f"), trailing(id("a"), line(" c")), id("b")))},
			want: "f(\n  a, // c\n  b\n);\n",
		},
		{
			name: "trailing statement comment",
			body: []estree.Node{trailing(stmt(id("a")), line(" done")), stmt(id("b"))},
			want: "a; // done\nb;\n",
		},
		{
			name: "leading comment inside a list",
			body: []estree.Node{stmt(call(id("f"), leading(id("a"), line(" first"))))},
			want: "f(\n  // first\n  a\n);\n",
		},
		{
			name: "return argument with line comment",
			body: []estree.Node{&estree.FunctionDeclaration{ID: id("f"), Body: block(
				&estree.ReturnStatement{Argument: leading(id("a"), line(" why"))},
			)}},
			want: "function f() {\n  return (// why\n  a);\n}\n",
		},
		{
			name: "comment on an empty template quasi",
			body: []estree.Node{stmt(&estree.TemplateLiteral{
				Quasis: []*estree.TemplateElement{
					leading(&estree.TemplateElement{}, blockc(" x ")),
					{Tail: true},
				},
				Expressions: []estree.Node{id("a")},
			})},
			want: "`/* x */ ${a}`;\n",
		},
		{
			name: "comments of empty statements are kept",
			body: []estree.Node{stmt(id("a")), trailing(&estree.EmptyStatement{}, line(" gone?")), stmt(id("b"))},
			want: "a;\nb; // gone?\n",
		},
	}
	for _, tt := range tests {
		ttt.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			requireText(t, tt.want, printText(t, tt.body...))
		})
	}

	ttt.Run("leftover comments are drained", func(t *testing.T) {
		prog := trailing(&estree.Program{Body: []estree.Node{stmt(id("a"))}}, line(" end"), blockc(" eof "))
		items, err := Print(prog, Config{})
		require.NoError(t, err)
		requireText(t, "a;\n// end\n/* eof */\n", cst.Text(items))
	})
}

func TestPrintErrors(ttt *testing.T) {
	ttt.Run("unsupported node type", func(t *testing.T) {
		_, err := PrintStatements([]estree.Node{stmt(&estree.TSAnyKeyword{})}, Config{})
		require.Error(t, err)
		require.True(t, errors.Is(err, ErrUnsupportedNodeType))
		var e *UnsupportedNodeTypeError
		require.ErrorAs(t, err, &e)
		require.Equal(t, "TSAnyKeyword", e.Type)
	})

	ttt.Run("expression in type position", func(t *testing.T) {
		_, err := PrintStatements([]estree.Node{decl("let", &estree.Identifier{
			Name: "x", TypeAnnotation: &estree.TSTypeAnnotation{TypeAnnotation: id("T")},
		}, nil)}, Config{})
		require.ErrorIs(t, err, ErrUnsupportedNodeType)
	})

	ttt.Run("NaN literal", func(t *testing.T) {
		items, err := PrintStatements([]estree.Node{stmt(num(math.NaN()))}, Config{})
		require.ErrorIs(t, err, ErrUnsupportedLiteralKind)
		require.Nil(t, items)
	})

	ttt.Run("unknown literal value", func(t *testing.T) {
		_, err := PrintStatements([]estree.Node{stmt(&estree.Literal{Value: []any{1}})}, Config{})
		require.ErrorIs(t, err, ErrUnsupportedLiteralKind)
	})

	ttt.Run("unknown operator", func(t *testing.T) {
		_, err := PrintStatements([]estree.Node{stmt(bin("<=>", id("a"), bin("+", id("b"), id("c"))))}, Config{})
		require.ErrorIs(t, err, ErrUnsupportedNodeType)
	})

	ttt.Run("nil root", func(t *testing.T) {
		_, err := Print(nil, Config{})
		require.ErrorIs(t, err, ErrUnsupportedNodeType)
	})
}

func TestPrintStructures(t *testing.T) {
	items, err := PrintStatements([]estree.Node{stmt(bin("+", id("a"), str("b\tc")))}, Config{})
	require.NoError(t, err)
	root, err := cst.Build("File", items)
	require.NoError(t, err)

	require.Len(t, root.Find("Program"), 1)
	require.Len(t, root.Find("BinaryExpression"), 1)
	esc := root.Find("Escape")
	require.Len(t, esc, 1)
	require.Equal(t, `\u0009`, esc[0].Text())

	var kinds []cst.Kind
	for _, tok := range root.Find("BinaryExpression")[0].Tokens() {
		kinds = append(kinds, tok.Kind)
	}
	require.Equal(t, []cst.Kind{
		cst.Identifier, cst.Whitespace, cst.Punctuator, cst.Whitespace,
		cst.Punctuator, cst.Literal, cst.Punctuator, cst.Literal, cst.Literal, cst.Literal, cst.Punctuator,
	}, kinds)
}
