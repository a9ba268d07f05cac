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

package detect

import (
	"go/ast"

	"golang.org/x/tools/go/ast/edge"
	"golang.org/x/tools/go/ast/inspector"
)

// Candidate is an if-statement whose then-branch should become the fall-through body.
//
// It holds cursors into the syntax tree only, so it is valid as long as the
// tree it was detected in.
type Candidate struct {
	If     inspector.Cursor // The if-statement to invert
	Anchor inspector.Cursor // Outermost if-statement of the else-chain containing If
	Func   *ast.FuncDecl    // Function declaration whose body contains Anchor
}

// IfStmt returns the if-statement to invert.
func (c Candidate) IfStmt() *ast.IfStmt {
	return c.If.Node().(*ast.IfStmt)
}

// Void reports whether the enclosing function has no results.
func (c Candidate) Void() bool {
	results := c.Func.Type.Results

	return results == nil || len(results.List) == 0
}

// Chain returns the if-statements from the candidate up to and including the anchor.
func (c Candidate) Chain() []*ast.IfStmt {
	var chain []*ast.IfStmt
	for cur := c.If; ; cur = cur.Parent() {
		stmt, ok := cur.Node().(*ast.IfStmt)
		if !ok {
			return chain // anchor is not an ancestor
		}

		chain = append(chain, stmt)

		if cur.Index() == c.Anchor.Index() {
			return chain
		}
	}
}

// Outermost walks up while c occupies the else slot of its parent if-statement
// and returns the topmost if-statement reached.
func Outermost(c inspector.Cursor) inspector.Cursor {
	for {
		if kind, _ := c.ParentEdge(); kind != edge.IfStmt_Else {
			return c
		}

		c = c.Parent()
	}
}
