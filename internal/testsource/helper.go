// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
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
//
// SPDX-License-Identifier: Apache-2.0

// Package testsource provides utilities for parsing and analyzing Go source code in tests.
//
// It is designed to simplify testing of the saneifelse analyzer by handling common
// boilerplate code for parsing and type-checking Go source files.
package testsource

import (
	"go/ast"
	"go/importer"
	"go/parser"
	"go/token"
	"go/types"
	"testing"

	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/saneifelse/internal/astutil"
)

const (
	testpkg  = "test"
	filename = "test.go"
)

// Check performs type checking on the provided AST files.
// It creates and returns a fully type-checked *types.Package and *types.Info.
func Check(tb testing.TB, fset *token.FileSet, f *ast.File) (*types.Package, *types.Info) {
	tb.Helper()

	info := &types.Info{
		Types:  make(map[ast.Expr]types.TypeAndValue),
		Defs:   make(map[*ast.Ident]types.Object),
		Uses:   make(map[*ast.Ident]types.Object),
		Scopes: make(map[ast.Node]*types.Scope),
	}

	conf := types.Config{Importer: importer.Default()}

	pkg, err := conf.Check(testpkg, fset, []*ast.File{f}, info)
	if err != nil {
		tb.Fatalf("failed to type Check source: %v", err)
	}

	return pkg, info
}

// Source is a parsed and type-checked Go file together with its text.
type Source struct {
	Fset *token.FileSet
	File astutil.CurrentFile
	Info *types.Info
	Root inspector.Cursor // Cursor positioned at the *ast.File
}

// Load parses and type-checks a complete Go file of package `test`.
func Load(tb testing.TB, src string) Source {
	tb.Helper()

	fset := token.NewFileSet()

	f, err := parser.ParseFile(fset, filename, src, parser.ParseComments|parser.SkipObjectResolution)
	if err != nil {
		tb.Fatalf("Failed to parse source: %v", err)
	}

	_, info := Check(tb, fset, f)

	root, ok := inspector.New([]*ast.File{f}).Root().FirstChild()
	if !ok {
		tb.Fatal("Can't find file")
	}

	return Source{
		Fset: fset,
		File: astutil.NewCurrentFile(fset, f, []byte(src)),
		Info: info,
		Root: root,
	}
}

// Func returns a cursor positioned at the function declaration with the given name.
func (s Source) Func(tb testing.TB, name string) (*ast.FuncDecl, inspector.Cursor) {
	tb.Helper()

	for c := range s.Root.Preorder((*ast.FuncDecl)(nil)) {
		if fn := c.Node().(*ast.FuncDecl); fn.Name.Name == name {
			return fn, c
		}
	}

	tb.Fatalf("Can't find function %s", name)

	return nil, inspector.Cursor{}
}
