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

package scope

import (
	"go/ast"
	"go/types"
	"slices"
)

// Movable reports whether the statements of block keep their meaning when
// they are moved into the body of fn, after the if-statement chain.
//
// The move is blocked when the block declares a name that already exists in the
// function scope, or refers to a name declared in the init statement of an
// if-statement in chain, which is not visible after the chain.
func Movable(info *types.Info, fn *ast.FuncDecl, chain []*ast.IfStmt, block *ast.BlockStmt) bool {
	funcScope, blockScope := info.Scopes[fn.Type], info.Scopes[block]
	if funcScope == nil || blockScope == nil {
		return false
	}

	for _, name := range blockScope.Names() {
		if funcScope.Lookup(name) != nil {
			return false // redeclared or reassigned
		}
	}

	hidden := initScopes(info, chain)
	if len(hidden) == 0 {
		return true
	}

	movable := true

	ast.Inspect(block, func(n ast.Node) bool {
		if id, ok := n.(*ast.Ident); ok {
			if obj := info.Uses[id]; obj != nil && slices.Contains(hidden, obj.Parent()) {
				movable = false
			}
		}

		return movable
	})

	return movable
}

// initScopes returns the scopes of the if-statements in chain that declare names in their init statement.
func initScopes(info *types.Info, chain []*ast.IfStmt) []*types.Scope {
	var scopes []*types.Scope

	for _, stmt := range chain {
		if stmt.Init == nil {
			continue
		}

		if s := info.Scopes[stmt]; s != nil && s.Len() > 0 {
			scopes = append(scopes, s)
		}
	}

	return scopes
}
