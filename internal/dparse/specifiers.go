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

func (p *Parser) addDspec(n ast.Node) {
	top := len(p.dspecsStack) - 1
	p.dspecsStack[top] = append(p.dspecsStack[top], n)
}

func (p *Parser) currentDspecs() []ast.Node {
	if len(p.dspecsStack) == 0 {
		return nil
	}
	return p.dspecsStack[len(p.dspecsStack)-1]
}

// isIdentifierAsType implements spec.md §4.2's identifier-as-type hack: an id
// (or meta_id) is a type name iff current_dspecs contains no type specifier
// yet. DeclSpecNode entries are ignored; every other entry must be a Token
// whose kind is storage-class/function/type-qualifier (the qualifier-only
// set) for the check to still succeed.
func (p *Parser) isIdentifierAsType() bool {
	frame := p.currentDspecs()
	if len(frame) == 0 {
		return true
	}
	for _, n := range frame {
		if _, ok := n.(ast.DeclSpecNode); ok {
			continue
		}
		leaf, ok := n.(ast.Leaf)
		if !ok {
			return false
		}
		if !token.IsQualifierOnly(leaf.Token.Kind) {
			return false
		}
	}
	return true
}

// declarationSpecifiers collects a maximal sequence of storage-class
// specifiers, type specifiers, type qualifiers, function specifiers, or
// `__declspec(ID)`, in any order (spec.md §4.2). An empty sequence reports
// failure via a nil *MultipleNode. While collecting, current_dspecs is
// pushed/popped on p.dspecsStack so nested declarationSpecifiers calls (e.g.
// for a struct member) don't contaminate the enclosing specifier list
// (spec.md §9).
func (p *Parser) declarationSpecifiers() *ast.MultipleNode {
	loc := p.peek().Loc
	p.dspecsStack = append(p.dspecsStack, nil)

	for p.collectOneSpecifier() {
	}

	top := len(p.dspecsStack) - 1
	frame := p.dspecsStack[top]
	p.dspecsStack = p.dspecsStack[:top]

	if len(frame) == 0 {
		return nil
	}
	return &ast.MultipleNode{LocV: loc, Nodes: frame}
}

// collectOneSpecifier consumes and records exactly one declaration
// specifier, returning false once the current token can't start another one.
func (p *Parser) collectOneSpecifier() bool {
	tok := p.peek()
	switch {
	case tok.Kind == "struct" || tok.Kind == "union":
		p.addDspec(p.structOrUnionSpecifier(tok.Kind == "union"))
		return true

	case tok.Kind == "enum":
		p.addDspec(p.enumSpecifier())
		return true

	case token.TypeSpecifierKeywords[tok.Kind]:
		p.next()
		p.addDspec(ast.Leaf{Token: tok})
		return true

	case token.StorageClass[tok.Kind], token.FunctionSpecifier[tok.Kind], token.TypeQualifier[tok.Kind]:
		p.next()
		p.addDspec(ast.Leaf{Token: tok})
		return true

	case tok.Kind == token.Id && tok.Text() == "__declspec" && p.peekAt(1).Kind == "(":
		p.next()
		p.expectToken("(")
		name := p.expectToken(token.Id)
		p.expectToken(")")
		p.addDspec(ast.DeclSpecNode{LocV: tok.Loc, Name: name.Text()})
		return true

	case tok.Kind == token.MetaId && tok.Text() == "builtin_t":
		p.next()
		p.expectToken("(")
		strTok := p.expectToken(token.Str)
		p.expectToken(")")
		p.addDspec(ast.TypeBuiltinNode{LocV: tok.Loc, Name: strTok.Text()})
		return true

	case (tok.Kind == token.Id || tok.Kind == token.MetaId) && p.isIdentifierAsType():
		p.next()
		p.addDspec(ast.Leaf{Token: tok})
		return true

	default:
		return false
	}
}
