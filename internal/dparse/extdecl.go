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
	"github.com/stackc-lang/stackc/internal/source"
	"github.com/stackc-lang/stackc/internal/token"
)

// externalDeclaration parses one top-level or struct/union-member entry: a
// meta directive, a bare `;` (PlaceholderNode), or a declaration-specifiers
// sequence followed by a function definition or one-or-more comma-separated
// declarators (spec.md §4.2). allowBitfield is spec.md §4.2's single
// `allow_method_mods` flag: true inside a struct/union body, where it makes a
// trailing `: num` expected usage and permits a trailing `static`/`const`
// after a function definition's parameter list (recorded as
// `MethodModifier`); false everywhere else, where a bitfield is merely
// tolerated with a warning and no method modifier is recognized.
func (p *Parser) externalDeclaration(allowBitfield bool) ast.Node {
	if p.at(token.MetaId) {
		return p.metaDirective()
	}
	if p.at(";") {
		return ast.PlaceholderNode{LocV: p.next().Loc}
	}

	loc := p.peek().Loc
	dspecs := p.declarationSpecifiers()
	if dspecs == nil {
		p.expectNode("declaration")
	}

	if p.at(";") {
		p.next()
		return ast.EmptyDeclaration{LocV: loc, DeclarationSpecifiers: dspecs}
	}

	first := p.declarator()

	var methodMod *token.Token
	isFnDeclarator := false
	if dcl, ok := first.(ast.Declarator); ok {
		if pld, ok := dcl.DirectDeclarator.(ast.ParameterListDeclarator); ok {
			_, isFnDeclarator = pld.Declarator.(ast.Leaf)
		}
	}
	if allowBitfield && isFnDeclarator && (p.at("static") || p.at("const")) {
		t := p.next()
		methodMod = &t
	}

	if p.at("{") {
		body := p.collectCompoundStatement()
		return ast.FunctionDefinition{LocV: loc, DeclarationSpecifiers: dspecs, Declarator: first, Body: body, MethodModifier: methodMod}
	}
	if isFnDeclarator && p.at(";") {
		p.next()
		return ast.FunctionDefinition{LocV: loc, DeclarationSpecifiers: dspecs, Declarator: first, MethodModifier: methodMod}
	}

	var decls []ast.Node
	decls = append(decls, p.finishDeclaration(loc, dspecs, first, allowBitfield))
	for p.at(",") {
		p.next()
		dloc := p.peek().Loc
		decls = append(decls, p.finishDeclaration(dloc, dspecs, p.declarator(), allowBitfield))
	}
	p.expectToken(";")

	if len(decls) == 1 {
		return decls[0]
	}
	return ast.MultipleNode{LocV: loc, Nodes: decls}
}

// finishDeclaration parses the tail of one declarator in a Declaration: an
// optional `: num` bitfield suffix and an optional `= initializer`.
func (p *Parser) finishDeclaration(loc source.Loc, dspecs *ast.MultipleNode, declarator ast.Node, allowBitfield bool) ast.Node {
	var bitfield *token.Token
	if p.at(":") {
		colonLoc := p.peek().Loc
		p.next()
		t := p.expectToken(token.Num)
		bitfield = &t
		if !allowBitfield {
			p.diag.Warnf(colonLoc, "bitfield outside a struct/union body has no effect")
		}
	}
	var init ast.Node
	if p.at("=") {
		p.next()
		init = p.collectInitializer(",", ";")
	}
	return ast.Declaration{LocV: loc, DeclarationSpecifiers: dspecs, Declarator: declarator, Initializer: init, Bitfield: bitfield}
}
