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

// Package dparse implements DParse, the declaration-level recursive-descent
// parser of spec.md §4.2: a hand-written parser with speculative backtracking
// over a tokenized C99 grammar, restricted to declaration-level constructs.
// Function bodies are collected verbatim as brace-balanced token runs and
// parsed later by internal/gen's LParse.
//
// The token-cursor discipline is grounded on
// language/internal/cc/parser/token_reader.go's tokenReader (peek/next/
// consume primitives over a one-token lookahead buffer), generalized here
// into a fully snapshot-able cursor so branches can roll back arbitrarily far
// (spec.md §4.2, §9).
package dparse

import (
	"github.com/stackc-lang/stackc/internal/ast"
	"github.com/stackc-lang/stackc/internal/diag"
	"github.com/stackc-lang/stackc/internal/lexer"
	"github.com/stackc-lang/stackc/internal/source"
	"github.com/stackc-lang/stackc/internal/token"
)

// tokenStream lazily pulls tokens from a Lexer and caches every token it has
// ever produced, so a Parser's cursor can be any previously-visited index —
// the basis for cheap O(1) snapshot/rollback.
type tokenStream struct {
	lx   *lexer.Lexer
	toks []token.Token
	done bool
	eof  token.Token
}

func (ts *tokenStream) at(i int) token.Token {
	for !ts.done && i >= len(ts.toks) {
		tok := ts.lx.NextToken()
		if tok.Kind == token.EOF {
			ts.done = true
			ts.eof = tok
			break
		}
		ts.toks = append(ts.toks, tok)
	}
	if i < len(ts.toks) {
		return ts.toks[i]
	}
	return ts.eof
}

// Parser holds DParse's mutable state: the token cursor, the diagnostics
// sink, and the current_dspecs stack threaded between declarationSpecifiers
// and the identifier-as-type hack (spec.md §9).
type Parser struct {
	ts   *tokenStream
	pos  int
	diag *diag.Collector

	// dspecsStack holds, for each currently-open declarationSpecifiers call,
	// the nodes collected so far. The top entry is "current_dspecs"; entering
	// a nested declarationSpecifiers (e.g. for a struct member) pushes a new
	// frame so sibling specifier lists never contaminate each other, per
	// spec.md §9.
	dspecsStack [][]ast.Node
}

// New constructs a Parser reading from lx and reporting to d.
func New(lx *lexer.Lexer, d *diag.Collector) *Parser {
	return &Parser{ts: &tokenStream{lx: lx}, diag: d}
}

func (p *Parser) peek() token.Token       { return p.ts.at(p.pos) }
func (p *Parser) peekAt(n int) token.Token { return p.ts.at(p.pos + n) }

func (p *Parser) next() token.Token {
	tok := p.peek()
	if tok.Kind != token.EOF {
		p.pos++
	}
	return tok
}

func (p *Parser) at(kind token.Kind) bool { return p.peek().Kind == kind }

// expectToken implements spec.md §4.2's expect_token: on mismatch it records
// one diagnostic and returns the current (unconsumed) token; on match it
// consumes and returns the token.
func (p *Parser) expectToken(kind token.Kind) token.Token {
	tok := p.peek()
	if tok.Kind != kind {
		p.diag.Errorf(tok.Loc, "expected %q but found %q", kind, tok.Kind)
		return tok
	}
	return p.next()
}

// expectNode implements spec.md §4.2's expect_node: it records a diagnostic
// and raises a recoverable ParsingError, unwound via panic/recover — the
// idiomatic Go analogue of a thrown-and-caught exception for unwinding a deep
// recursive-descent stack to a specific catching frame (the same technique
// go/parser itself uses internally). Callers catch it at translation-unit
// granularity (ParseTranslationUnit) or function-body granularity
// (internal/gen's pass 2), per spec.md §4.3/§7.
func (p *Parser) expectNode(what string) {
	tok := p.peek()
	p.diag.Errorf(tok.Loc, "expected %s but found %q", what, tok.Kind)
	panic(ParsingError{Loc: tok.Loc, Message: "expected " + what})
}

// ParsingError is the fatal-per-scope parse failure of spec.md §7.
type ParsingError struct {
	Loc     source.Loc
	Message string
}

func (e ParsingError) Error() string { return e.Loc.String() + ": " + e.Message }

// skip advances the cursor by one token to make progress after an
// unrecoverable wedge, per spec.md §4.2's "skip() then return a
// PlaceholderNode" and §7's "always advance at least one token per error".
func (p *Parser) skip() { p.next() }

// ParseTranslationUnit is DParse's public operation: parse a translation unit
// into a MultipleNode of top-level external declarations and meta-directives
// (spec.md §4.2). It reuses the struct/union body parser with
// expect_braces=false, allow_method_mods=false, exactly as spec.md specifies,
// and catches any ParsingError that escapes a single external declaration so
// one malformed declaration doesn't abort the whole translation unit.
func ParseTranslationUnit(lx *lexer.Lexer, d *diag.Collector) *ast.MultipleNode {
	p := New(lx, d)
	loc := p.peek().Loc
	nodes := p.structOrUnionBody(false, false)
	return &ast.MultipleNode{LocV: loc, Nodes: nodes}
}

// recoverDecl runs fn (one external-declaration attempt) and, if it panics
// with a ParsingError, returns a PoisonedNode at the error's location instead
// of letting the panic propagate past this declaration (spec.md §7's
// "fatal-per-function" isolation generalizes at top level to
// fatal-per-top-level-declaration so other declarations still parse).
func (p *Parser) recoverDecl(fn func() ast.Node) (result ast.Node) {
	defer func() {
		if r := recover(); r != nil {
			pe, ok := r.(ParsingError)
			if !ok {
				panic(r)
			}
			result = ast.PoisonedNode{LocV: pe.Loc}
		}
	}()
	return fn()
}
