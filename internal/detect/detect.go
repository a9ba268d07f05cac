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

// Package detect finds if/else statements at the end of a function whose
// then-branch is longer than the else-branch.
package detect

import (
	"go/ast"

	"golang.org/x/tools/go/ast/edge"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/saneifelse/internal/astutil"
)

// Message is reported for every [Candidate].
const Message = "Then branch should be shorter then else branch"

// Detector finds [Candidate]s in a single file.
type Detector struct {
	File astutil.CurrentFile
}

// New creates a [Detector] for the given file.
func New(file astutil.CurrentFile) Detector {
	return Detector{File: file}
}

// Scan checks whether the if-statement at c is a [Candidate].
//
// It does not modify the tree and can be repeated after any edit.
func (d Detector) Scan(c inspector.Cursor) (Candidate, bool) {
	ifStmt, ok := c.Node().(*ast.IfStmt)
	if !ok {
		return Candidate{}, false
	}

	// Plain if and else-if are not inverted
	elseBlock, ok := ifStmt.Else.(*ast.BlockStmt)
	if !ok {
		return Candidate{}, false
	}

	// The chain must be a statement of the function body itself
	anchor := Outermost(c)
	if kind, _ := anchor.ParentEdge(); kind != edge.BlockStmt_List {
		return Candidate{}, false
	}

	body := anchor.Parent()
	if kind, _ := body.ParentEdge(); kind != edge.FuncDecl_Body {
		return Candidate{}, false
	}

	if d.File.Lines(ifStmt.Body) <= d.File.Lines(elseBlock) {
		return Candidate{}, false
	}

	// Nothing may be executed after the chain
	if _, ok := anchor.NextSibling(); ok {
		return Candidate{}, false
	}

	if d.File.NoLintComment(ifStmt.Pos()) {
		return Candidate{}, false
	}

	fun, ok := body.Parent().Node().(*ast.FuncDecl)
	if !ok {
		return Candidate{}, false
	}

	return Candidate{If: c, Anchor: anchor, Func: fun}, true
}

// ScanAll returns all [Candidate]s below c in source order.
func (d Detector) ScanAll(c inspector.Cursor) []Candidate {
	var candidates []Candidate
	for i := range c.Preorder((*ast.IfStmt)(nil)) {
		if candidate, ok := d.Scan(i); ok {
			candidates = append(candidates, candidate)
		}
	}

	return candidates
}
