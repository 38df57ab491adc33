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

// declarator parses the `Declarator` SyntaxNode: an optional pointer chain
// followed by a direct declarator (spec.md §4.2).
func (p *Parser) declarator() ast.Node {
	loc := p.peek().Loc
	ptr := p.pointerOpt()
	dd := p.directDeclarator()
	return ast.Declarator{LocV: loc, Pointer: ptr, DirectDeclarator: dd}
}

// pointerOpt parses a possibly-empty, right-recursive `*` chain, each `*`
// optionally followed by a type-qualifier list (spec.md §4.2's `Pointer`
// SyntaxNode). Returns nil when the current token isn't `*`.
func (p *Parser) pointerOpt() *ast.Pointer {
	if !p.at("*") {
		return nil
	}
	loc := p.next().Loc
	var quals []token.Token
	for token.TypeQualifier[p.peek().Kind] {
		quals = append(quals, p.next())
	}
	return &ast.Pointer{LocV: loc, TypeQualifierList: quals, Pointer: p.pointerOpt()}
}

// directDeclarator parses the base direct-declarator (an id, or a
// parenthesized declarator) and then loops over trailing `(...)` and `[...]`
// postfixes, building ParameterListDeclarator/ArrayDeclarator nodes
// left-to-right (spec.md §4.2).
func (p *Parser) directDeclarator() ast.Node {
	node := p.directDeclaratorBase()
	for {
		switch {
		case p.at("("):
			loc := p.next().Loc
			params, ellipsis := p.parameterTypeList()
			p.expectToken(")")
			node = ast.ParameterListDeclarator{LocV: loc, Declarator: node, ParameterList: params, Ellipsis: ellipsis}
		case p.at("["):
			loc := p.next().Loc
			var size ast.Node
			if !p.at("]") {
				size = p.collectInitializer("]")
			}
			p.expectToken("]")
			node = ast.ArrayDeclarator{LocV: loc, Declarator: node, SizeInitializer: size}
		default:
			return node
		}
	}
}

func (p *Parser) directDeclaratorBase() ast.Node {
	tok := p.peek()
	switch tok.Kind {
	case token.Id:
		p.next()
		return ast.Leaf{Token: tok}
	case "(":
		p.next()
		inner := p.declarator()
		p.expectToken(")")
		return inner
	default:
		p.expectNode("declarator")
		return nil
	}
}

// parameterTypeList parses the comma-separated parameter list inside a
// `ParameterListDeclarator`'s `(...)`, with an optional trailing `...`
// (spec.md §4.2).
func (p *Parser) parameterTypeList() ([]*ast.ParameterDeclaration, *token.Token) {
	var params []*ast.ParameterDeclaration
	var ellipsis *token.Token
	if p.at(")") {
		return params, ellipsis
	}
	for {
		if p.at("...") {
			t := p.next()
			ellipsis = &t
			break
		}
		params = append(params, p.parameterDeclaration())
		if p.at(",") {
			p.next()
			continue
		}
		break
	}
	return params, ellipsis
}

// parameterDeclaration parses one `ParameterDeclaration`: mandatory
// declaration specifiers, followed by a declarator when the next token can
// start one, else left unnamed/abstract (spec.md §4.2).
func (p *Parser) parameterDeclaration() *ast.ParameterDeclaration {
	loc := p.peek().Loc
	dspecs := p.declarationSpecifiers()
	if dspecs == nil {
		p.expectNode("parameter declaration specifiers")
	}
	var declNode ast.Node
	if p.at(token.Id) || p.at("*") || p.at("(") {
		declNode = p.declarator()
	}
	return &ast.ParameterDeclaration{LocV: loc, DeclarationSpecifiers: dspecs, Declarator: declNode}
}
