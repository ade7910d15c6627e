// Copyright 2026 go-purefp Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// fpgen generates the per-type named entry points for a kernel package.
// It parses a *_base.go file, finds every exported generic function with
// a single lane-type parameter, and emits one monomorphic wrapper per
// (function, concrete type) pair into z_entrypoints.go.
//
// The concrete type set comes from the function's constraint (Lanes,
// Integers, Ints, Uints, Floats) and can be narrowed with an annotation
// in the doc comment:
//
//	//fpgen:types signed,floats
//
// Usage:
//
//	fpgen -input reduce_base.go -output z_entrypoints.go -kind reduction
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/ast"
	"go/parser"
	"go/printer"
	"go/token"
	"log"
	"os"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/tools/imports"
)

var (
	inputFile  = flag.String("input", "", "base file to parse (required)")
	outputFile = flag.String("output", "z_entrypoints.go", "generated file to write")
	kindName   = flag.String("kind", "", "kernel family noun for the file comment, e.g. \"reduction\"")
)

var typeClasses = map[string][]string{
	"all":      {"int8", "int16", "int32", "int64", "uint8", "uint16", "uint32", "uint64", "float32", "float64"},
	"signed":   {"int8", "int16", "int32", "int64"},
	"unsigned": {"uint8", "uint16", "uint32", "uint64"},
	"ints":     {"int8", "int16", "int32", "int64", "uint8", "uint16", "uint32", "uint64"},
	"floats":   {"float32", "float64"},
}

// constraintClasses maps the lane constraints to default type classes.
var constraintClasses = map[string]string{
	"Lanes":    "all",
	"Integers": "ints",
	"Ints":     "signed",
	"Uints":    "unsigned",
	"Floats":   "floats",
}

func main() {
	flag.Parse()
	if *inputFile == "" {
		flag.Usage()
		os.Exit(2)
	}
	if err := run(*inputFile, *outputFile, *kindName); err != nil {
		log.Fatalf("fpgen: %v", err)
	}
}

func run(input, output, kind string) error {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, input, nil, parser.ParseComments)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "// Code generated by fpgen. DO NOT EDIT.\n\n")
	fmt.Fprintf(&buf, "package %s\n\n", file.Name.Name)
	fmt.Fprintf(&buf, "// Named per-type entry points for the %s kernels: one statically\n", kind)
	fmt.Fprintf(&buf, "// dispatched function per (operation, lane type) pair. Callers that know\n")
	fmt.Fprintf(&buf, "// their element type at the call site pay no generic instantiation noise\n")
	fmt.Fprintf(&buf, "// and get a stable, greppable symbol per kernel.\n")

	count := 0
	for _, decl := range file.Decls {
		fn, ok := decl.(*ast.FuncDecl)
		if !ok || !fn.Name.IsExported() {
			continue
		}
		types, tparam, ok := typeSetFor(fn)
		if !ok {
			continue
		}
		buf.WriteByte('\n')
		for _, concrete := range types {
			emitWrapper(&buf, fset, fn, tparam, concrete)
		}
		count++
	}
	if count == 0 {
		return fmt.Errorf("%s: no eligible generic functions", input)
	}

	// imports.Process runs the gofmt pipeline, which also aligns the
	// one-line wrapper bodies.
	formatted, err := imports.Process(output, buf.Bytes(), nil)
	if err != nil {
		return fmt.Errorf("formatting %s: %w", output, err)
	}
	return os.WriteFile(output, formatted, 0o644)
}

// typeSetFor resolves the concrete types a function should be
// instantiated at, from its annotation if present, otherwise from its
// constraint. Functions without exactly one type parameter are skipped.
func typeSetFor(fn *ast.FuncDecl) (types []string, tparam string, ok bool) {
	if fn.Type.TypeParams == nil || len(fn.Type.TypeParams.List) != 1 {
		return nil, "", false
	}
	field := fn.Type.TypeParams.List[0]
	if len(field.Names) != 1 {
		return nil, "", false
	}
	tparam = field.Names[0].Name

	if classes := annotation(fn); classes != "" {
		var set []string
		for _, c := range strings.Split(classes, ",") {
			ts, known := typeClasses[strings.TrimSpace(c)]
			if !known {
				log.Fatalf("fpgen: %s: unknown type class %q", fn.Name.Name, c)
			}
			set = append(set, ts...)
		}
		return set, tparam, true
	}

	class, known := constraintClasses[constraintName(field.Type)]
	if !known {
		return nil, "", false
	}
	return typeClasses[class], tparam, true
}

func annotation(fn *ast.FuncDecl) string {
	if fn.Doc == nil {
		return ""
	}
	for _, c := range fn.Doc.List {
		if rest, found := strings.CutPrefix(c.Text, "//fpgen:types "); found {
			return rest
		}
	}
	return ""
}

func constraintName(expr ast.Expr) string {
	switch e := expr.(type) {
	case *ast.Ident:
		return e.Name
	case *ast.SelectorExpr:
		return e.Sel.Name
	}
	return ""
}

// emitWrapper writes one monomorphic wrapper, e.g.
//
//	func AddInt8(x []int8) int8 { return Add(x) }
func emitWrapper(buf *bytes.Buffer, fset *token.FileSet, fn *ast.FuncDecl, tparam, concrete string) {
	suffix := cases.Title(language.English).String(concrete)

	var params []string
	var args []string
	for _, field := range fn.Type.Params.List {
		names := make([]string, len(field.Names))
		for i, n := range field.Names {
			names[i] = n.Name
			args = append(args, n.Name)
		}
		params = append(params, strings.Join(names, ", ")+" "+renderType(fset, field.Type, tparam, concrete))
	}

	results := ""
	if rs := fn.Type.Results; rs != nil {
		var parts []string
		for _, field := range rs.List {
			parts = append(parts, renderType(fset, field.Type, tparam, concrete))
		}
		if len(parts) == 1 {
			results = " " + parts[0]
		} else {
			results = " (" + strings.Join(parts, ", ") + ")"
		}
	}

	fmt.Fprintf(buf, "func %s%s(%s)%s { return %s(%s) }\n",
		fn.Name.Name, suffix, strings.Join(params, ", "), results,
		fn.Name.Name, strings.Join(args, ", "))
}

// renderType prints a parameter or result type with the type parameter
// substituted by a concrete type. The substitution mutates the shared
// AST only for the duration of the print.
func renderType(fset *token.FileSet, expr ast.Expr, tparam, concrete string) string {
	var renamed []*ast.Ident
	ast.Inspect(expr, func(n ast.Node) bool {
		if id, ok := n.(*ast.Ident); ok && id.Name == tparam {
			id.Name = concrete
			renamed = append(renamed, id)
		}
		return true
	})
	var buf bytes.Buffer
	if err := printer.Fprint(&buf, fset, expr); err != nil {
		log.Fatalf("fpgen: printing type: %v", err)
	}
	for _, id := range renamed {
		id.Name = tparam
	}
	return buf.String()
}
