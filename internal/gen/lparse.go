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
	"github.com/stackc-lang/stackc/internal/diag"
	"github.com/stackc-lang/stackc/internal/dparse"
	"github.com/stackc-lang/stackc/internal/mir"
	"github.com/stackc-lang/stackc/internal/source"
	"github.com/stackc-lang/stackc/internal/symtab"
	"github.com/stackc-lang/stackc/internal/token"
)

// LParse is the body parser of spec.md §4.3: it owns an independent cursor
// over one function's captured token list plus the MIR program it emits
// into as a side effect of parsing. It uses the same recoverable
// snapshot/rollback discipline as DParse (mark/rollback below), reimplemented
// here rather than shared because it walks a plain token slice instead of
// DParse's lazily-filled tokenStream.
type LParse struct {
	toks []token.Token
	pos  int
	diag *diag.Collector
	st   *symtab.SymTable
	prog *mir.Program
}

func newLParse(toks []token.Token, st *symtab.SymTable, d *diag.Collector) *LParse {
	return &LParse{toks: toks, st: st, diag: d, prog: &mir.Program{}}
}

func (lp *LParse) peek() token.Token {
	if lp.pos < len(lp.toks) {
		return lp.toks[lp.pos]
	}
	if len(lp.toks) > 0 {
		return token.EOFAt(lp.toks[len(lp.toks)-1].Loc)
	}
	return token.EOFAt(source.Loc{})
}

func (lp *LParse) next() token.Token {
	tok := lp.peek()
	if lp.pos < len(lp.toks) {
		lp.pos++
	}
	return tok
}

func (lp *LParse) at(k token.Kind) bool { return lp.peek().Kind == k }

func (lp *LParse) expectToken(k token.Kind) token.Token {
	tok := lp.peek()
	if tok.Kind != k {
		lp.diag.Errorf(tok.Loc, "expected %q but found %q", k, tok.Kind)
		return tok
	}
	return lp.next()
}

// expectNode raises a ParsingError, the same fatal-per-scope mechanism
// DParse uses, unwound via panic/recover up to resolveFunctionBody.
func (lp *LParse) expectNode(what string) {
	tok := lp.peek()
	lp.diag.Errorf(tok.Loc, "expected %s but found %q", what, tok.Kind)
	panic(dparse.ParsingError{Loc: tok.Loc, Message: "expected " + what})
}

type lpMark struct{ pos int }

func (lp *LParse) mark() lpMark        { return lpMark{pos: lp.pos} }
func (lp *LParse) rollback(m lpMark)   { lp.pos = m.pos }

// run parses statements until the captured token list is exhausted (spec.md
// §4.3).
func (lp *LParse) run() {
	for !lp.at(token.EOF) {
		lp.statement()
	}
}

// statement dispatches the two implemented statement forms (spec.md §4.3);
// every other kind — loops, switch, compound, expression-statement, labeled —
// is marked to-do there, so anything else is a parse error at this stage.
func (lp *LParse) statement() {
	switch {
	case lp.at("return"):
		lp.returnStatement()
	case lp.at("if"):
		lp.ifStatement()
	default:
		lp.expectNode("statement")
	}
}

// returnStatement emits RET_VOID for a bare `return;`, else parses an
// expression and emits RET.
func (lp *LParse) returnStatement() {
	loc := lp.next().Loc
	if lp.at(";") {
		lp.next()
		lp.prog.Emit(mir.RetVoid, loc, nil)
		return
	}
	lp.expression(true)
	lp.expectToken(";")
	lp.prog.Emit(mir.Ret, loc, nil)
}

// ifStatement implements spec.md §4.3's forward-patched if/else: evaluate
// the condition, emit JUMP_IF_FALSE (patch1), parse the then-branch; with an
// else branch, emit JUMP (patch2) before patch1 lands just past the
// then-branch, then parse the else-branch and land patch2 just past it.
func (lp *LParse) ifStatement() {
	loc := lp.next().Loc
	lp.expectToken("(")
	lp.expression(false)
	lp.expectToken(")")

	patch1 := lp.prog.Emit(mir.JumpIfFalse, loc, nil)
	lp.statement()

	if lp.at("else") {
		elseLoc := lp.next().Loc
		patch2 := lp.prog.Emit(mir.Jump, elseLoc, nil)
		lp.prog.PatchTarget(patch1)
		lp.statement()
		lp.prog.PatchTarget(patch2)
		return
	}
	lp.prog.PatchTarget(patch1)
}
