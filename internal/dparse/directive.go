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

// metaDirective dispatches a leading meta_id token to the matching
// `@use_feature` / `@test` / `@import` parser (spec.md §4.2).
func (p *Parser) metaDirective() ast.Node {
	tok := p.peek()
	switch tok.Text() {
	case "use_feature":
		return p.useFeatureDirective()
	case "test":
		return p.testDirective()
	case "import":
		return p.importDirective()
	default:
		p.expectNode("meta directive")
		return nil
	}
}

// useFeatureDirective parses `@use_feature id (, id)* (; | { body })`.
func (p *Parser) useFeatureDirective() ast.Node {
	loc := p.next().Loc
	features := []token.Token{p.expectToken(token.Id)}
	for p.at(",") {
		p.next()
		features = append(features, p.expectToken(token.Id))
	}
	var body *ast.MultipleNode
	switch {
	case p.at(";"):
		p.next()
	case p.at("{"):
		body = &ast.MultipleNode{LocV: loc, Nodes: p.structOrUnionBody(true, false)}
	default:
		p.expectNode("`;` or `{` after use_feature feature list")
	}
	return ast.UseFeatureDirective{LocV: loc, Features: features, Body: body}
}

// testDirective parses `@test "desc" { body }`.
func (p *Parser) testDirective() ast.Node {
	loc := p.next().Loc
	desc := p.expectToken(token.Str)
	body := &ast.MultipleNode{LocV: loc, Nodes: p.structOrUnionBody(true, false)}
	return ast.TestDirective{LocV: loc, Description: desc, Body: body}
}

// importDirective parses one of `@import`'s three forms: `* = origin`,
// `{ name (= alias)?, … } = origin`, or `name [= origin]` (spec.md §4.2).
func (p *Parser) importDirective() ast.Node {
	loc := p.next().Loc
	switch {
	case p.at("*"):
		p.next()
		p.expectToken("=")
		origin := p.importOrigin()
		p.expectToken(";")
		return ast.FullImportDirective{LocV: loc, Origin: origin}

	case p.at("{"):
		p.next()
		var items []ast.PartialImportItem
		for !p.at("}") {
			name := p.expectToken(token.Id)
			var alias *token.Token
			if p.at("=") {
				p.next()
				t := p.expectToken(token.Id)
				alias = &t
			}
			items = append(items, ast.PartialImportItem{Name: name, Alias: alias})
			if p.at(",") {
				p.next()
				continue
			}
			break
		}
		p.expectToken("}")
		p.expectToken("=")
		origin := p.importOrigin()
		p.expectToken(";")
		return ast.PartialImportDirective{LocV: loc, Items: items, Origin: origin}

	default:
		name := p.expectToken(token.Id)
		origin := ast.ImportOrigin{Kind: "pkg", Value: name.Text()}
		if p.at("=") {
			p.next()
			origin = p.importOrigin()
		}
		p.expectToken(";")
		return ast.AliasedImportDirective{LocV: loc, Name: name, Origin: origin}
	}
}

// importOrigin parses the origin operand shared by all three `@import`
// forms: a bare identifier (kind "pkg"), `id(str)` (kind = the id's
// spelling, recorded verbatim and unvalidated — see SPEC_FULL.md's Open
// Question on this), or a string literal (kind "local").
func (p *Parser) importOrigin() ast.ImportOrigin {
	tok := p.peek()
	switch tok.Kind {
	case token.Str:
		p.next()
		return ast.ImportOrigin{Kind: "local", Value: tok.Text()}
	case token.Id:
		if p.peekAt(1).Kind == "(" {
			p.next()
			p.next()
			str := p.expectToken(token.Str)
			p.expectToken(")")
			return ast.ImportOrigin{Kind: tok.Text(), Value: str.Text()}
		}
		p.next()
		return ast.ImportOrigin{Kind: "pkg", Value: tok.Text()}
	default:
		p.expectNode("import origin")
		return ast.ImportOrigin{}
	}
}
