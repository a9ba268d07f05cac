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

// Package invert negates boolean conditions on the source level.
//
// Operand text is copied from the source as authored; only operators,
// negations and the parentheses required by operator precedence change.
package invert

import (
	"go/ast"
	"go/token"
	"go/types"
)

// Source returns the text of a node as authored.
type Source func(n ast.Node) []byte

// Condition returns the source text of the logical negation of cond.
func Condition(info *types.Info, src Source, cond ast.Expr) []byte {
	i := inverter{info: info, src: src}

	return i.negate(cond).text
}

type inverter struct {
	info *types.Info
	src  Source
}

// expr is a rendered expression together with the precedence of its outermost operator.
type expr struct {
	text []byte
	prec int
}

var negations = map[token.Token]token.Token{
	token.EQL: token.NEQ,
	token.NEQ: token.EQL,
	token.LSS: token.GEQ,
	token.GEQ: token.LSS,
	token.GTR: token.LEQ,
	token.LEQ: token.GTR,

	token.LAND: token.LOR,
	token.LOR:  token.LAND,
}

func (i inverter) negate(e ast.Expr) expr {
	switch e := e.(type) {
	case *ast.Ident:
		switch i.info.Uses[e] {
		case universeTrue:
			return expr{[]byte("false"), token.HighestPrec}

		case universeFalse:
			return expr{[]byte("true"), token.HighestPrec}
		}

	case *ast.ParenExpr:
		if u, ok := ast.Unparen(e).(*ast.UnaryExpr); ok && u.Op == token.NOT {
			return i.operand(u.X) // (!x) → x
		}

	case *ast.UnaryExpr:
		if e.Op == token.NOT {
			return i.operand(e.X) // !x → x, !(x) → x
		}

	case *ast.BinaryExpr:
		switch e.Op {
		case token.LAND, token.LOR:
			return i.deMorgan(e)

		case token.LSS, token.LEQ, token.GTR, token.GEQ:
			if !i.exactlyOrdered(e.X) || !i.exactlyOrdered(e.Y) {
				break // NaN compares false in both directions
			}

			fallthrough

		case token.EQL, token.NEQ:
			op := negations[e.Op]

			return expr{i.join(i.src(e.X), op, i.src(e.Y)), op.Precedence()}
		}
	}

	return i.not(e)
}

// deMorgan negates a && b into !a || !b and a || b into !a && !b.
func (i inverter) deMorgan(e *ast.BinaryExpr) expr {
	op := negations[e.Op]
	prec := op.Precedence()

	x, y := i.negate(e.X), i.negate(e.Y)

	return expr{i.join(paren(x, prec), op, paren(y, prec)), prec}
}

// not prefixes an expression with the ! operator.
func (i inverter) not(e ast.Expr) expr {
	text := i.src(e)

	var buf []byte
	switch precedence(e) {
	case token.HighestPrec, token.UnaryPrec:
		buf = make([]byte, 0, len(text)+1)
		buf = append(buf, '!')
		buf = append(buf, text...)

	default:
		buf = make([]byte, 0, len(text)+3)
		buf = append(buf, '!', '(')
		buf = append(buf, text...)
		buf = append(buf, ')')
	}

	return expr{buf, token.UnaryPrec}
}

// operand renders the operand of a removed negation without redundant parentheses.
func (i inverter) operand(e ast.Expr) expr {
	e = ast.Unparen(e)

	return expr{i.src(e), precedence(e)}
}

// exactlyOrdered reports whether the operand's type is totally ordered, so that !(x < y) equals x >= y.
func (i inverter) exactlyOrdered(e ast.Expr) bool {
	t := i.info.TypeOf(e)
	if t == nil {
		return false
	}

	basic, ok := t.Underlying().(*types.Basic)
	if !ok {
		return false // type parameters might be floating point
	}

	return basic.Info()&(types.IsInteger|types.IsString) != 0
}

func (inverter) join(x []byte, op token.Token, y []byte) []byte {
	ops := op.String()

	buf := make([]byte, 0, len(x)+len(ops)+len(y)+2)
	buf = append(buf, x...)
	buf = append(buf, ' ')
	buf = append(buf, ops...)
	buf = append(buf, ' ')
	buf = append(buf, y...)

	return buf
}

// paren wraps e in parentheses when it binds weaker than an operator of precedence prec.
func paren(e expr, prec int) []byte {
	if e.prec >= prec {
		return e.text
	}

	buf := make([]byte, 0, len(e.text)+2)
	buf = append(buf, '(')
	buf = append(buf, e.text...)
	buf = append(buf, ')')

	return buf
}

func precedence(e ast.Expr) int {
	switch e := e.(type) {
	case *ast.BinaryExpr:
		return e.Op.Precedence()

	case *ast.UnaryExpr, *ast.StarExpr:
		return token.UnaryPrec

	default:
		return token.HighestPrec
	}
}

var (
	universeTrue  = types.Universe.Lookup("true")
	universeFalse = types.Universe.Lookup("false")
)
