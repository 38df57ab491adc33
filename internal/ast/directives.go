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

// UseFeatureDirective is `@use_feature id (, id)* (; | { body })` (spec.md
// §4.2).
type UseFeatureDirective struct {
	LocV     source.Loc
	Features []token.Token
	Body     *MultipleNode // nil for the `;` form
}

func (u UseFeatureDirective) Loc() source.Loc { return u.LocV }
func (UseFeatureDirective) node()             {}

// TestDirective is `@test "desc" { body }`.
type TestDirective struct {
	LocV        source.Loc
	Description token.Token
	Body        *MultipleNode
}

func (t TestDirective) Loc() source.Loc { return t.LocV }
func (TestDirective) node()             {}

// ImportOrigin is the `origin` operand shared by all three `@import` forms:
// a bare identifier (Kind = "pkg"), `id(str)` (Kind = the id's value,
// verbatim and unvalidated per spec.md's Open Question — see SPEC_FULL.md),
// or a string literal (Kind = "local").
type ImportOrigin struct {
	Kind  string
	Value string
}

// PartialImportItem is one `name (= alias)?` entry in the `{ ... }` form of
// `@import`.
type PartialImportItem struct {
	Name  token.Token
	Alias *token.Token
}

// AliasedImportDirective is `@import name [= origin];`.
type AliasedImportDirective struct {
	LocV   source.Loc
	Name   token.Token
	Origin ImportOrigin
}

func (a AliasedImportDirective) Loc() source.Loc { return a.LocV }
func (AliasedImportDirective) node()             {}

// FullImportDirective is `@import * = origin;`.
type FullImportDirective struct {
	LocV   source.Loc
	Origin ImportOrigin
}

func (f FullImportDirective) Loc() source.Loc { return f.LocV }
func (FullImportDirective) node()             {}

// PartialImportDirective is `@import { name (= id)?, … } = origin;`.
type PartialImportDirective struct {
	LocV   source.Loc
	Items  []PartialImportItem
	Origin ImportOrigin
}

func (p PartialImportDirective) Loc() source.Loc { return p.LocV }
func (PartialImportDirective) node()             {}
