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

package tracker

import (
	"go/ast"
	"go/token"
	"go/types"

	"fillmore-labs.com/saneifelse/internal/astutil"
)

// Tracker classifies statements that leave the current function.
type Tracker struct {
	info  *types.Info // Type information for identifying functions that can't return
	exits bool        // Recognize log.Fatal, os.Exit and friends, not only panic
}

// New creates and returns a new Tracker.
func New(info *types.Info, exits bool) Tracker {
	return Tracker{
		info:  info,
		exits: exits,
	}
}

// CantReturn determines if the given function call expression represents a function that cannot return.
func (t Tracker) CantReturn(n *ast.CallExpr) bool {
	return CantReturn(t.info, n, t.exits)
}

// Terminator reports whether stmt unconditionally transfers control out of the
// current statement list: a return, a goto or a call that never returns.
func (t Tracker) Terminator(stmt ast.Stmt) bool {
	switch s := stmt.(type) {
	case *ast.ReturnStmt:
		return true

	case *ast.BranchStmt:
		return s.Tok == token.GOTO

	case *ast.ExprStmt:
		call, ok := ast.Unparen(s.X).(*ast.CallExpr)

		return ok && t.CantReturn(call)

	case *ast.LabeledStmt:
		return t.Terminator(s.Stmt)

	default:
		return false
	}
}

// EndsInTerminator reports whether the last statement of block is a [Tracker.Terminator].
func (t Tracker) EndsInTerminator(block *ast.BlockStmt) bool {
	last := astutil.LastStmt(block)

	return last != nil && t.Terminator(last)
}
