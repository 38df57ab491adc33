// Copyright 2026 EngFlow Inc. All rights reserved.
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

package gen

import (
	"github.com/stackc-lang/stackc/internal/mir"
	"github.com/stackc-lang/stackc/internal/token"
)

// expression parses an assignment-expression, or (when isStmt, i.e. this
// expression is itself a statement) a `,`-separated list of them, per
// spec.md §4.3.
func (lp *LParse) expression(isStmt bool) {
	lp.assignmentExpression()
	if !isStmt {
		return
	}
	for lp.at(",") {
		lp.next()
		lp.assignmentExpression()
	}
}

var assignOps = map[token.Kind]bool{
	"=": true, "*=": true, "/=": true, "%=": true, "+=": true, "-=": true,
	"<<=": true, ">>=": true, "&=": true, "^=": true, "|=": true,
}

// assignmentExpression parses a conditional-expression (spec.md §4.3: ternary
// is to-do, so this is just bitwise-or) optionally followed by a right-
// associative assignment operator and another assignment-expression.
// Assignment codegen (a STORE_PTR into an addressable lvalue) needs a
// LOCAL pointer slot, and local-variable declarations inside function bodies
// are themselves a to-do (spec.md §4.3's "the declaration recognizer
// currently returns false") — so the operator and right-hand side are
// parsed (consumed) but nothing is emitted for the store itself yet.
func (lp *LParse) assignmentExpression() {
	lp.conditionalExpression()
	if assignOps[lp.peek().Kind] {
		lp.next()
		lp.assignmentExpression()
	}
}

// conditionalExpression is the head of the precedence-climbing chain
// (spec.md §4.3's table); the ternary `?:` level above it is reserved but
// not implemented, so this is just bitwise-or.
func (lp *LParse) conditionalExpression() { lp.bitwiseOr() }

var bitwiseOrOps = map[token.Kind]mir.Op{"|": mir.Or}

func (lp *LParse) bitwiseOr() { lp.binaryExpr(bitwiseOrOps, lp.bitwiseXor) }

var bitwiseXorOps = map[token.Kind]mir.Op{"^": mir.Xor}

func (lp *LParse) bitwiseXor() { lp.binaryExpr(bitwiseXorOps, lp.bitwiseAnd) }

var bitwiseAndOps = map[token.Kind]mir.Op{"&": mir.And}

func (lp *LParse) bitwiseAnd() { lp.binaryExpr(bitwiseAndOps, lp.equality) }

var equalityOps = map[token.Kind]mir.Op{"==": mir.Eq, "!=": mir.Neq}

func (lp *LParse) equality() { lp.binaryExpr(equalityOps, lp.relational) }

var relationalOps = map[token.Kind]mir.Op{"<": mir.Lt, ">": mir.Gt, "<=": mir.Let, ">=": mir.Get}

func (lp *LParse) relational() { lp.binaryExpr(relationalOps, lp.shift) }

var shiftOps = map[token.Kind]mir.Op{"<<": mir.Shl, ">>": mir.Shr}

func (lp *LParse) shift() { lp.binaryExpr(shiftOps, lp.additive) }

var additiveOps = map[token.Kind]mir.Op{"+": mir.Add, "-": mir.Sub}

func (lp *LParse) additive() { lp.binaryExpr(additiveOps, lp.multiplicative) }

var multiplicativeOps = map[token.Kind]mir.Op{"*": mir.Mul, "/": mir.Div, "%": mir.Rem}

func (lp *LParse) multiplicative() { lp.binaryExpr(multiplicativeOps, lp.unary) }

// binaryExpr implements one level of spec.md §4.3's `pg_binary_expression`:
// parse one next-level operand, then while the current token is one of ops,
// consume it, parse another next-level operand, and emit the matching
// opcode — left-associative, operands pushed before the operator so the
// emitted MIR directly reflects evaluation order (e.g. `a + b * c` emits
// LOAD_NAME a; LOAD_NAME b; LOAD_NAME c; MUL; ADD).
func (lp *LParse) binaryExpr(ops map[token.Kind]mir.Op, next func()) {
	next()
	for {
		op, ok := ops[lp.peek().Kind]
		if !ok {
			return
		}
		loc := lp.next().Loc
		next()
		lp.prog.Emit(op, loc, nil)
	}
}

// unary attempts the to-do cast prefix, then falls through to postfix
// (spec.md §4.3: prefix `++ -- & * + - ~ !` have no corresponding opcode in
// the closed MIR set yet, so they remain unimplemented alongside casts).
func (lp *LParse) unary() {
	if lp.tryCastPrefix() {
		return
	}
	lp.postfix()
}

// tryCastPrefix speculatively attempts a `(type-name) unary-expr` cast
// prefix using the same mark/rollback discipline as DParse's speculative
// branches. Recognizing a type-name here needs DParse's
// declaration-specifiers machinery, which LParse doesn't carry, so this
// always rolls back and reports no match — a to-do per spec.md §4.3,
// structured as the branch that will recognize it once that's wired in.
func (lp *LParse) tryCastPrefix() bool {
	m := lp.mark()
	if !lp.at("(") {
		return false
	}
	lp.rollback(m)
	return false
}

// postfix parses a primary-expression. Postfix forms (`[] () . -> ++ --`)
// have no corresponding MIR opcode (no CALL or member-access opcode exists
// in spec.md §4.3's closed set) and remain unimplemented.
func (lp *LParse) postfix() { lp.primary() }

// primary implements spec.md §4.3's primary-expression emission: a numeric
// literal pushes a constant Val, an identifier emits LOAD_NAME, and a
// parenthesized expression recurses. String/char literals are to-do.
func (lp *LParse) primary() {
	tok := lp.peek()
	switch tok.Kind {
	case token.Num:
		lp.next()
		n, _ := tok.Value.(int64)
		lp.prog.Emit(mir.Push, tok.Loc, mir.Val{Typ: mir.LitIntTyp, Meta: n, Loc: tok.Loc})
	case token.Id:
		lp.next()
		lp.prog.Emit(mir.LoadName, tok.Loc, tok.Text())
	case "(":
		lp.next()
		lp.expression(false)
		lp.expectToken(")")
	default:
		lp.expectNode("expression")
	}
}
