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

// Declaration is the `Declaration` SyntaxNode: {declaration_specifiers,
// declarator, initializer, bitfield?} (spec.md §4.2). Bitfield is populated
// whenever a `: num` suffix follows the declarator; outside a struct/union
// body (allow_method_mods unset) the parser also reports a warning for it.
type Declaration struct {
	LocV                  source.Loc
	DeclarationSpecifiers *MultipleNode
	Declarator            Node
	Initializer           Node // nil for a weak (uninitialized) declaration
	Bitfield              *token.Token
}

func (d Declaration) Loc() source.Loc { return d.LocV }
func (Declaration) node()             {}

// EmptyDeclaration is the `EmptyDeclaration` SyntaxNode: {declaration_specifiers},
// produced when a declaration-specifier sequence is immediately followed by
// `;` with no declarator (spec.md §4.2).
type EmptyDeclaration struct {
	LocV                  source.Loc
	DeclarationSpecifiers *MultipleNode
}

func (e EmptyDeclaration) Loc() source.Loc { return e.LocV }
func (EmptyDeclaration) node()             {}

// FunctionDefinition is the `FunctionDefinition` SyntaxNode:
// {declaration_specifiers, declarator, body, method_modifier?}. Body is nil
// for a forward declaration (spec.md §3's invariant) and a *CompoundNode for
// a definition.
type FunctionDefinition struct {
	LocV                  source.Loc
	DeclarationSpecifiers *MultipleNode
	Declarator            Node
	Body                  *CompoundNode
	MethodModifier        *token.Token
}

func (f FunctionDefinition) Loc() source.Loc { return f.LocV }
func (FunctionDefinition) node()             {}

// IsWeak reports whether this FunctionDefinition is a forward declaration
// (no body) — spec.md §3, §4.3.
func (f FunctionDefinition) IsWeak() bool { return f.Body == nil }

// StructOrUnionSpecifier backs both the `StructSpecifier` and `UnionSpecifier`
// SyntaxNode variants — {name, body} — distinguished by IsUnion so the
// parser and Gen share one Go type for two closely related syntax_name tags,
// per spec.md §9's "fixed struct per variant" guidance (the variant tag here
// is IsUnion, not a second Go type, since the two share every field).
type StructOrUnionSpecifier struct {
	LocV    source.Loc
	IsUnion bool
	Name    *token.Token
	Body    *MultipleNode // nil when only a forward reference to a tag name
}

func (s StructOrUnionSpecifier) Loc() source.Loc { return s.LocV }
func (StructOrUnionSpecifier) node()             {}

// SyntaxName returns the spec.md §4.2 syntax_name tag for this node.
func (s StructOrUnionSpecifier) SyntaxName() string {
	if s.IsUnion {
		return "UnionSpecifier"
	}
	return "StructSpecifier"
}

// EnumSpecifier is the `EnumSpecifier` SyntaxNode: {is_struct, name, body}.
type EnumSpecifier struct {
	LocV     source.Loc
	IsStruct bool
	Name     *token.Token
	Body     *MultipleNode
}

func (e EnumSpecifier) Loc() source.Loc { return e.LocV }
func (EnumSpecifier) node()             {}

// EnumeratorWithValue is the `EnumeratorWithValue` SyntaxNode: {name,
// initializer}.
type EnumeratorWithValue struct {
	LocV        source.Loc
	Name        token.Token
	Initializer Node // nil when the enumerator has no explicit `= value`
}

func (e EnumeratorWithValue) Loc() source.Loc { return e.LocV }
func (EnumeratorWithValue) node()             {}
