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

// structOrUnionBody parses a list of member declarations, reused both for a
// translation unit (expectBraces=false, reading until eof) and for a
// struct/union body (expectBraces=true, reading until a matching `}`).
// allowMethodMods marks a trailing bitfield `: num` on a Declaration as
// expected usage (without it the bitfield is still parsed, with a warning)
// and enables method modifiers (spec.md §4.2). Each member is parsed inside recoverDecl so a
// malformed member doesn't abort the rest of the list.
func (p *Parser) structOrUnionBody(expectBraces bool, allowMethodMods bool) []ast.Node {
	var nodes []ast.Node
	if expectBraces {
		p.expectToken("{")
	}
	for {
		if expectBraces && p.at("}") {
			p.next()
			break
		}
		if !expectBraces && p.at(token.EOF) {
			break
		}
		before := p.pos
		nodes = append(nodes, p.recoverDecl(func() ast.Node {
			return p.externalDeclaration(allowMethodMods)
		}))
		if p.pos == before {
			p.skip()
		}
	}
	return nodes
}

// structOrUnionSpecifier parses `struct`/`union` [tag] [`{` members `}`],
// consuming the leading keyword itself (spec.md §4.2's `StructSpecifier`/
// `UnionSpecifier`).
func (p *Parser) structOrUnionSpecifier(isUnion bool) ast.Node {
	loc := p.next().Loc
	var name *token.Token
	if p.at(token.Id) {
		t := p.next()
		name = &t
	}
	var body *ast.MultipleNode
	switch {
	case p.at("{"):
		body = &ast.MultipleNode{LocV: p.peek().Loc, Nodes: p.structOrUnionBody(true, true)}
	case name == nil:
		p.expectNode("struct/union tag or body")
	}
	return ast.StructOrUnionSpecifier{LocV: loc, IsUnion: isUnion, Name: name, Body: body}
}

// enumSpecifier parses `enum` [`struct`] [tag] [`{` enumerator-list `}`],
// consuming the leading `enum` keyword itself (spec.md §4.2's
// `EnumSpecifier`).
func (p *Parser) enumSpecifier() ast.Node {
	loc := p.next().Loc
	isStruct := false
	if p.at("struct") {
		isStruct = true
		p.next()
	}
	var name *token.Token
	if p.at(token.Id) {
		t := p.next()
		name = &t
	}
	var body *ast.MultipleNode
	switch {
	case p.at("{"):
		bloc := p.next().Loc
		var enumerators []ast.Node
		for !p.at("}") {
			enumerators = append(enumerators, p.enumerator())
			if p.at(",") {
				p.next()
				continue
			}
			break
		}
		p.expectToken("}")
		body = &ast.MultipleNode{LocV: bloc, Nodes: enumerators}
	case name == nil:
		p.expectNode("enum tag or body")
	}
	return ast.EnumSpecifier{LocV: loc, IsStruct: isStruct, Name: name, Body: body}
}

// enumerator parses one `EnumeratorWithValue`: a name and an optional
// `= initializer`, where the initializer is captured verbatim up to the
// enclosing `,` or `}` (spec.md §4.2).
func (p *Parser) enumerator() ast.Node {
	name := p.expectToken(token.Id)
	var init ast.Node
	if p.at("=") {
		p.next()
		init = p.collectInitializer(",", "}")
	}
	return ast.EnumeratorWithValue{LocV: name.Loc, Name: name, Initializer: init}
}
