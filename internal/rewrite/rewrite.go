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

// Package rewrite turns a detected if/else statement into an early exit.
//
// All edits are computed against the original source and never overlap, so they can
// be applied in one step.
package rewrite

import (
	"bytes"
	"go/ast"
	"go/types"
	"slices"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/saneifelse/internal/astutil"
	"fillmore-labs.com/saneifelse/internal/detect"
	"fillmore-labs.com/saneifelse/internal/invert"
	"fillmore-labs.com/saneifelse/internal/reachability/tracker"
	"fillmore-labs.com/saneifelse/internal/scope"
)

// Result is the outcome of [Rewriter.Apply].
type Result struct {
	Status FixStatus
	Edits  []analysis.TextEdit
}

// Rewriter computes suggested fixes for the [detect.Candidate]s of a single file.
type Rewriter struct {
	File    astutil.CurrentFile
	Info    *types.Info
	Tracker tracker.Tracker
}

// New creates a [Rewriter] for the given file.
func New(file astutil.CurrentFile, info *types.Info, t tracker.Tracker) Rewriter {
	return Rewriter{File: file, Info: info, Tracker: t}
}

// Apply computes the edits that invert the candidate, make the new then-branch leave the
// function and move the former then-branch after the if-statement chain.
//
// Steps that can't be performed safely are skipped, the [Result.Status] says which.
func (r Rewriter) Apply(c detect.Candidate) Result {
	if !r.File.HasSource() {
		return Result{Status: FixShapeMismatch}
	}

	stmt := c.IfStmt()

	inv, ok := r.invertIf(stmt)
	if !ok {
		return Result{Status: FixShapeMismatch}
	}

	then, terminated := r.terminate(inv.then, c.Void())

	var (
		status    FixStatus
		tail      []byte
		ancestors []analysis.TextEdit
	)

	switch {
	case !terminated:
		status, tail = FixInvertOnly, r.keepElse(inv.els)

	case !scope.Movable(r.Info, c.Func, c.Chain(), inv.els):
		status, tail = FixScopeConflict, r.keepElse(inv.els)

	default:
		status, tail = FixComplete, r.unwrap(c.Anchor.Node(), inv.els)

		if c.Void() {
			ancestors = r.guardChain(c)
		}
	}

	edits := make([]analysis.TextEdit, 0, 2+len(ancestors))
	edits = append(edits,
		analysis.TextEdit{Pos: stmt.Cond.Pos(), End: stmt.Cond.End(), NewText: inv.cond},
		analysis.TextEdit{Pos: stmt.Body.Lbrace, End: stmt.Else.End(), NewText: slices.Concat(then, tail)},
	)
	edits = append(edits, ancestors...)

	return Result{Status: status, Edits: edits}
}

// inverted is the if-statement after inverting its condition and swapping its branches.
type inverted struct {
	cond []byte
	then *ast.BlockStmt // former else-branch
	els  *ast.BlockStmt // former then-branch
}

// invertIf inverts the condition of stmt and swaps its branches.
//
// The result is only a view; later steps must read from it and not from stmt.
func (r Rewriter) invertIf(stmt *ast.IfStmt) (inverted, bool) {
	els, ok := stmt.Else.(*ast.BlockStmt)
	if !ok || stmt.Body == nil || stmt.Cond == nil {
		return inverted{}, false
	}

	cond := invert.Condition(r.Info, r.File.NodeText, stmt.Cond)

	return inverted{cond: cond, then: els, els: stmt.Body}, true
}

// terminate returns the text of block, ending in a return statement when the function has no results.
// The result is false when block does not terminate and the function has results.
func (r Rewriter) terminate(block *ast.BlockStmt, void bool) ([]byte, bool) {
	text := r.File.NodeText(block)

	if r.Tracker.EndsInTerminator(block) {
		return slices.Clone(text), true
	}

	if !void {
		return slices.Clone(text), false
	}

	edit := r.appendReturn(block)
	off := int(edit.Pos - block.Lbrace)

	return slices.Concat(text[:off], edit.NewText, text[off:]), true
}

// appendReturn returns an insertion of a return statement at the end of block.
func (r Rewriter) appendReturn(block *ast.BlockStmt) analysis.TextEdit {
	last := astutil.LastStmt(block)

	if r.File.Line(block.Rbrace) > r.File.Line(block.Lbrace) && r.File.StartsLine(block.Rbrace) {
		var indent []byte
		if last != nil && r.File.StartsLine(last.Pos()) {
			indent = r.File.Indent(last.Pos())
		} else {
			indent = append(slices.Clone(r.File.Indent(block.Rbrace)), '\t')
		}

		at := r.File.LineStart(block.Rbrace)

		return analysis.TextEdit{Pos: at, End: at, NewText: slices.Concat(indent, []byte("return\n"))}
	}

	if last != nil {
		return analysis.TextEdit{Pos: last.End(), End: last.End(), NewText: []byte("; return")}
	}

	return analysis.TextEdit{Pos: block.Rbrace, End: block.Rbrace, NewText: []byte(" return ")}
}

// keepElse returns block as the else-branch of the inverted if-statement.
func (r Rewriter) keepElse(block *ast.BlockStmt) []byte {
	return slices.Concat([]byte(" else "), r.File.NodeText(block))
}

// unwrap returns the statements of block, to be placed on the lines following anchor.
func (r Rewriter) unwrap(anchor ast.Node, block *ast.BlockStmt) []byte {
	body := bytes.TrimSpace(r.File.Text(block.Lbrace+1, block.Rbrace))
	if len(body) == 0 {
		return nil
	}

	return slices.Concat([]byte("\n"), r.File.Indent(anchor.Pos()), body)
}

// guardChain appends return statements to the then-branches of the else-chain above the candidate,
// so that the unwrapped statements are not reached from them.
func (r Rewriter) guardChain(c detect.Candidate) []analysis.TextEdit {
	chain := c.Chain()
	if len(chain) < 2 {
		return nil
	}

	var edits []analysis.TextEdit

	for _, stmt := range chain[1:] {
		if !r.Tracker.EndsInTerminator(stmt.Body) {
			edits = append(edits, r.appendReturn(stmt.Body))
		}
	}

	return edits
}
