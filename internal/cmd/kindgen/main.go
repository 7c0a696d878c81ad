// Command kindgen generates the Kind enumeration and child traversal of package estree from the struct
// types that embed Base.
package main

import (
	"flag"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"strings"

	"github.com/dave/jennifer/jen"

	"github.com/cmmoran/cstgen/internal/model"
)

func main() {
	dir := flag.String("dir", ".", "directory of package estree")
	out := flag.String("out", "kind_gen.go", "output file, relative to -dir")
	flag.Parse()

	types, err := nodeTypes(*dir, *out)
	if err != nil {
		fmt.Fprintf(os.Stderr, "kindgen: %v\n", err)
		os.Exit(1)
	}
	if err = render(types).Save(filepath.Join(*dir, *out)); err != nil {
		fmt.Fprintf(os.Stderr, "kindgen: %v\n", err)
		os.Exit(1)
	}
}

// nodeTypes returns, in file then declaration order, the struct types embedding Base.
func nodeTypes(dir, skip string) ([]*model.NodeType, error) {
	fset := token.NewFileSet()
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	files := make([]string, 0, len(entries))
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || name == skip || !strings.HasSuffix(name, ".go") || strings.HasSuffix(name, "_test.go") {
			continue
		}
		files = append(files, name)
	}
	sort.Strings(files)

	var types []*model.NodeType
	for _, name := range files {
		f, err := parser.ParseFile(fset, filepath.Join(dir, name), nil, parser.ParseComments|parser.SkipObjectResolution)
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", name, err)
		}
		for _, decl := range f.Decls {
			gd, ok := decl.(*ast.GenDecl)
			if !ok || gd.Tok != token.TYPE {
				continue
			}
			for _, spec := range gd.Specs {
				ts := spec.(*ast.TypeSpec)
				st, ok := ts.Type.(*ast.StructType)
				if !ok || !embedsBase(st) {
					continue
				}
				types = append(types, nodeType(name, gd, ts, st))
			}
		}
	}
	if len(types) == 0 {
		return nil, fmt.Errorf("no node types found in %s", dir)
	}
	model.Resolve(types)
	return types, nil
}

func nodeType(file string, gd *ast.GenDecl, ts *ast.TypeSpec, st *ast.StructType) *model.NodeType {
	t := &model.NodeType{Name: ts.Name.Name, File: file}
	if doc := ts.Doc; doc != nil {
		t.Comment = doc.Text()
	} else if gd.Doc != nil && len(gd.Specs) == 1 {
		t.Comment = gd.Doc.Text()
	}
	for _, f := range st.Fields.List {
		for _, id := range f.Names {
			t.Fields = append(t.Fields, &model.NodeField{Name: id.Name, Key: tagKey(f.Tag), TypeExpr: f.Type})
		}
	}
	return t
}

func tagKey(lit *ast.BasicLit) string {
	if lit == nil {
		return ""
	}
	tag := reflect.StructTag(strings.Trim(lit.Value, "`"))
	key, _, _ := strings.Cut(tag.Get("mapstructure"), ",")
	return key
}

func embedsBase(st *ast.StructType) bool {
	for _, f := range st.Fields.List {
		if id, ok := f.Type.(*ast.Ident); ok && len(f.Names) == 0 && id.Name == "Base" {
			return true
		}
	}
	return false
}

func render(types []*model.NodeType) *jen.File {
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = t.Name
	}

	f := jen.NewFile("estree")
	f.HeaderComment("Code generated by kindgen. DO NOT EDIT.")

	f.Const().DefsFunc(func(g *jen.Group) {
		g.Id("KindInvalid").Id("Kind").Op("=").Iota()
		for _, n := range names {
			g.Id("Kind" + n)
		}
		g.Id("KindCount")
	})

	f.Func().Params(jen.Id("k").Id("Kind")).Id("String").Params().String().Block(
		jen.Switch(jen.Id("k")).BlockFunc(func(g *jen.Group) {
			g.Case(jen.Id("KindInvalid")).Block(jen.Return(jen.Lit("Invalid")))
			for _, n := range names {
				g.Case(jen.Id("Kind" + n)).Block(jen.Return(jen.Lit(n)))
			}
		}),
		jen.Return(jen.Lit("Kind(").Op("+").Qual("strconv", "Itoa").Call(jen.Int().Call(jen.Id("k"))).Op("+").Lit(")")),
	)

	f.Comment("ParseKind returns the Kind named by an ESTree type string, or KindInvalid.")
	f.Func().Id("ParseKind").Params(jen.Id("name").String()).Id("Kind").Block(
		jen.Switch(jen.Id("name")).BlockFunc(func(g *jen.Group) {
			for _, n := range names {
				g.Case(jen.Lit(n)).Block(jen.Return(jen.Id("Kind" + n)))
			}
		}),
		jen.Return(jen.Id("KindInvalid")),
	)

	f.Comment("New allocates an empty node of kind k, or returns nil when k is not a node kind.")
	f.Func().Id("New").Params(jen.Id("k").Id("Kind")).Id("Node").Block(
		jen.Switch(jen.Id("k")).BlockFunc(func(g *jen.Group) {
			for _, n := range names {
				g.Case(jen.Id("Kind" + n)).Block(jen.Return(jen.Op("&").Id(n).Values()))
			}
		}),
		jen.Return(jen.Nil()),
	)

	for _, n := range names {
		f.Func().Params(jen.Op("*").Id(n)).Id("Type").Params().Id("Kind").Block(
			jen.Return(jen.Id("Kind" + n)),
		)
	}

	f.Comment("Children returns the non-nil child nodes of n in field order.")
	f.Func().Id("Children").Params(jen.Id("n").Id("Node")).Index().Id("Node").Block(
		jen.Var().Id("out").Index().Id("Node"),
		jen.Switch(jen.Id("n").Op(":=").Id("n").Assert(jen.Type())).BlockFunc(func(g *jen.Group) {
			for _, t := range types {
				if kids := t.Children(); len(kids) > 0 {
					g.Case(jen.Op("*").Id(t.Name)).BlockFunc(func(g *jen.Group) { children(g, kids) })
				}
			}
		}),
		jen.Return(jen.Id("out")),
	)
	return f
}

func children(g *jen.Group, fields []*model.NodeField) {
	for _, fl := range fields {
		switch fl.Kind {
		case model.FieldNode:
			g.If(jen.Id("n").Dot(fl.Name).Op("!=").Nil()).Block(
				jen.Id("out").Op("=").Append(jen.Id("out"), jen.Id("n").Dot(fl.Name)),
			)
		case model.FieldNodeList:
			g.For(jen.List(jen.Id("_"), jen.Id("c")).Op(":=").Range().Id("n").Dot(fl.Name)).Block(
				jen.If(jen.Id("c").Op("!=").Nil()).Block(
					jen.Id("out").Op("=").Append(jen.Id("out"), jen.Id("c")),
				),
			)
		}
	}
}
