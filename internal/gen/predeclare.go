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

package gen

import (
	"github.com/stackc-lang/stackc/internal/ast"
	"github.com/stackc-lang/stackc/internal/collections"
	"github.com/stackc-lang/stackc/internal/diag"
	"github.com/stackc-lang/stackc/internal/symtab"
)

// predeclare implements spec.md §4.3's pass 1: for every top-level node,
// figure out its declarator name and weak/strong status, then declare it.
func predeclare(st *symtab.SymTable, unit *ast.MultipleNode, d *diag.Collector) {
	for _, n := range unit.Nodes {
		predeclareOne(st, n, d)
	}
}

// predeclareOne declares a single top-level node. A MultipleNode (the
// comma-separated-declarators group DParse's externalDeclaration produces
// for e.g. `int a, b;`) is unwrapped and each member declared individually
// so `a` and `b` each get their own SymTable entry, sharing the same
// declaration_specifiers.
func predeclareOne(st *symtab.SymTable, n ast.Node, d *diag.Collector) {
	switch v := n.(type) {
	case ast.Declaration:
		name, ok := ast.DeclaratorName(v.Declarator)
		if !ok {
			return
		}
		st.Declare(name.Text(), v, v.Initializer == nil, v.Loc())

	case ast.FunctionDefinition:
		name, ok := ast.DeclaratorName(v.Declarator)
		if !ok {
			return
		}
		st.Declare(name.Text(), v, v.IsWeak(), v.Loc())

	case ast.UseFeatureDirective:
		checkDuplicateFeatures(v, d)

	case ast.MultipleNode:
		for _, sub := range v.Nodes {
			predeclareOne(st, sub, d)
		}
	}
}

// checkDuplicateFeatures reports a repeated feature name within a single
// `@use_feature` directive. It does not recurse into the directive's
// `;`-less body form: spec.md §4.3's pass 1 names only Declaration and
// FunctionDefinition as predeclaration targets, and no feature-flag
// evaluator is specified, so the nested declarations of a use_feature body
// are left for whatever later pass gates on the feature (out of scope here).
func checkDuplicateFeatures(u ast.UseFeatureDirective, d *diag.Collector) {
	seen := make(collections.Set[string], len(u.Features))
	for _, feature := range u.Features {
		name := feature.Text()
		if seen.Contains(name) {
			d.Errorf(feature.Loc, "feature %q repeated in @use_feature", name)
			continue
		}
		seen.Add(name)
	}
}
