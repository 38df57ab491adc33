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

// Package ast defines the closed Node sum type produced by internal/dparse:
// spec.md §3. Each variant is its own Go struct (not a dynamic keyed map, per
// spec.md §9's guidance), switched on with a type switch rather than virtual
// dispatch, following the sealed-interface shape of the teacher's own closed
// Directive/Expr sums in language/internal/cc/parser/{parser,expr}.go.
package ast

import (
	"github.com/stackc-lang/stackc/internal/source"
	"github.com/stackc-lang/stackc/internal/token"
)

// Node is the sealed interface every AST/tree node implements. node() is
// unexported so no type outside this package can satisfy Node, keeping the
// sum closed.
type Node interface {
	Loc() source.Loc
	node()
}

// Leaf wraps a Token so it can appear directly as a Node (spec.md §3: "Token
// (as a leaf)"). token.Token can't implement Node itself: its own Loc field
// would collide with the Loc() method.
type Leaf struct {
	Token token.Token
}

func (l Leaf) Loc() source.Loc { return l.Token.Loc }
func (Leaf) node()             {}

// CompoundNode is an opaque, brace-balanced token run: a function body, an
// array-size initializer, or an `=`-initializer, captured verbatim by DParse
// and parsed later by Gen's LParse (spec.md §3).
type CompoundNode struct {
	LocV   source.Loc
	Tokens []token.Token
}

func (c CompoundNode) Loc() source.Loc { return c.LocV }
func (CompoundNode) node()             {}

// MultipleNode is an ordered, insertion-preserving sequence of Nodes used
// both for the translation unit's top-level declarations and for internal
// lists (declaration-specifier sequences, struct/union bodies, enumerator
// lists) — spec.md §3.
type MultipleNode struct {
	LocV  source.Loc
	Nodes []Node
}

func (m MultipleNode) Loc() source.Loc { return m.LocV }
func (MultipleNode) node()             {}

// PoisonedNode is an error-recovery marker inserted where an expected node
// could not be parsed. Consumers propagate it without additional diagnostics
// (spec.md §3, GLOSSARY).
type PoisonedNode struct {
	LocV source.Loc
}

func (p PoisonedNode) Loc() source.Loc { return p.LocV }
func (PoisonedNode) node()             {}

// PlaceholderNode is empty and skipped by consumers — produced for e.g. a
// bare top-level `;` (spec.md §3, §4.2).
type PlaceholderNode struct {
	LocV source.Loc
}

func (p PlaceholderNode) Loc() source.Loc { return p.LocV }
func (PlaceholderNode) node()             {}
