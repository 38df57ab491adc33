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

import "github.com/stackc-lang/stackc/internal/source"

// DeclSpecNode is the `__declspec(name)` form, distinguished from ordinary
// specifier tokens so the identifier-as-type hack can ignore it cleanly
// (spec.md §3, §4.2).
type DeclSpecNode struct {
	LocV source.Loc
	Name string
}

func (d DeclSpecNode) Loc() source.Loc { return d.LocV }
func (DeclSpecNode) node()             {}

// TypeBuiltinNode is `@builtin_t("…")`.
type TypeBuiltinNode struct {
	LocV source.Loc
	Name string
}

func (t TypeBuiltinNode) Loc() source.Loc { return t.LocV }
func (TypeBuiltinNode) node()             {}

// TypeTemplatedNode is a placeholder for future templated type names
// (spec.md §3, Open Question on `template_arguments`); unimplemented.
type TypeTemplatedNode struct {
	LocV source.Loc
}

func (t TypeTemplatedNode) Loc() source.Loc { return t.LocV }
func (TypeTemplatedNode) node()             {}
