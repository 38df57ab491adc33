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

package dparse

import (
	"github.com/stackc-lang/stackc/internal/ast"
	"github.com/stackc-lang/stackc/internal/token"
)

// collectBalanced consumes tokens up to (but not including) the first token
// at nesting depth 0 for which stopAt reports true, tracking `(){}[]`
// nesting so a terminator nested inside a sub-expression doesn't end the
// capture early. Used to capture function bodies and initializers verbatim
// for later parsing by internal/gen's LParse (spec.md §4.2, §9).
func (p *Parser) collectBalanced(stopAt func(tok token.Token, depth int) bool) *ast.CompoundNode {
	loc := p.peek().Loc
	var toks []token.Token
	depth := 0
	for {
		tok := p.peek()
		if tok.Kind == token.EOF {
			p.expectNode("closing delimiter")
			break
		}
		if stopAt(tok, depth) {
			break
		}
		switch tok.Kind {
		case "(", "[", "{":
			depth++
		case ")", "]", "}":
			depth--
		}
		toks = append(toks, p.next())
	}
	return &ast.CompoundNode{LocV: loc, Tokens: toks}
}

// collectCompoundStatement captures a brace-balanced `{ ... }` run as a
// single opaque CompoundNode, consuming both braces (spec.md §4.2's
// "function bodies are captured verbatim").
func (p *Parser) collectCompoundStatement() *ast.CompoundNode {
	open := p.expectToken("{")
	node := p.collectBalanced(func(tok token.Token, depth int) bool {
		return depth == 0 && tok.Kind == "}"
	})
	node.LocV = open.Loc
	p.expectToken("}")
	return node
}

// collectInitializer captures tokens up to (not including) the first token
// at depth 0 whose kind is one of terminators, without consuming it. Used
// for array-size expressions (terminator `]`) and `=` initializers
// (terminator `,` or `;`).
func (p *Parser) collectInitializer(terminators ...token.Kind) *ast.CompoundNode {
	stop := make(map[token.Kind]bool, len(terminators))
	for _, t := range terminators {
		stop[t] = true
	}
	return p.collectBalanced(func(tok token.Token, depth int) bool {
		return depth == 0 && stop[tok.Kind]
	})
}
