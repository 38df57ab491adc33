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

package ast

import (
	"github.com/stackc-lang/stackc/internal/source"
	"github.com/stackc-lang/stackc/internal/token"
)

// Declarator is the `Declarator` SyntaxNode: {pointer, direct_declarator}
// (spec.md §4.2).
type Declarator struct {
	LocV             source.Loc
	Pointer          *Pointer
	DirectDeclarator Node
}

func (d Declarator) Loc() source.Loc { return d.LocV }
func (Declarator) node()             {}

// Pointer is the `Pointer` SyntaxNode: {type_qualifier_list, pointer}, a
// right-recursive chain of `*` possibly interspersed with type qualifiers.
type Pointer struct {
	LocV              source.Loc
	TypeQualifierList []token.Token
	Pointer           *Pointer
}

func (p Pointer) Loc() source.Loc { return p.LocV }
func (Pointer) node()             {}

// ParameterListDeclarator is the `ParameterListDeclarator` SyntaxNode:
// {declarator, parameter_list, ellipsis}, produced by the direct-declarator
// loop on seeing `(` (spec.md §4.2).
type ParameterListDeclarator struct {
	LocV          source.Loc
	Declarator    Node
	ParameterList []*ParameterDeclaration
	Ellipsis      *token.Token
}

func (p ParameterListDeclarator) Loc() source.Loc { return p.LocV }
func (ParameterListDeclarator) node()             {}

// ArrayDeclarator is the `ArrayDeclarator` SyntaxNode: {declarator,
// size_initializer}, produced by the direct-declarator loop on seeing `[`.
type ArrayDeclarator struct {
	LocV            source.Loc
	Declarator      Node
	SizeInitializer Node // nil for `[]`, else a CompoundNode of the bracketed tokens
}

func (a ArrayDeclarator) Loc() source.Loc { return a.LocV }
func (ArrayDeclarator) node()             {}

// ParameterDeclaration is the `ParameterDeclaration` SyntaxNode:
// {declaration_specifiers, declarator}.
type ParameterDeclaration struct {
	LocV                  source.Loc
	DeclarationSpecifiers *MultipleNode
	Declarator            Node // may be nil (abstract) or an AbstractDeclarator
}

func (p ParameterDeclaration) Loc() source.Loc { return p.LocV }
func (ParameterDeclaration) node()             {}

// AbstractDeclarator is the `AbstractDeclarator` SyntaxNode: {pointer,
// direct_abstract_declarator}. Many abstract-declarator positions remain
// to-do per spec.md §1's Non-goals; this variant exists so a parameter
// declared without a name round-trips through the same schema shape as a
// named Declarator.
type AbstractDeclarator struct {
	LocV                     source.Loc
	Pointer                  *Pointer
	DirectAbstractDeclarator Node // nil if purely `pointer`
}

func (a AbstractDeclarator) Loc() source.Loc { return a.LocV }
func (AbstractDeclarator) node()             {}

// DeclaratorName walks a declarator down to its innermost `id` token, per
// spec.md §3's invariant ("a Declarator's direct_declarator is eventually
// either an id token or a ParameterListDeclarator/ArrayDeclarator whose
// innermost declarator bottoms out at an id, or is abstract") and §4.3's
// predeclaration rule ("key is the declarator name"). Returns false for an
// abstract declarator with no name.
func DeclaratorName(n Node) (token.Token, bool) {
	switch v := n.(type) {
	case Leaf:
		if v.Token.Kind == token.Id {
			return v.Token, true
		}
		return token.Token{}, false
	case Declarator:
		return DeclaratorName(v.DirectDeclarator)
	case ParameterListDeclarator:
		return DeclaratorName(v.Declarator)
	case ArrayDeclarator:
		return DeclaratorName(v.Declarator)
	default:
		return token.Token{}, false
	}
}
