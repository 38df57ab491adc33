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

// Package gen implements spec.md §4.3: Gen's two-phase resolver and body
// parser. Pass 1 (predeclare.go) predeclares every top-level name into a
// symtab.SymTable, recording whether each declaration is weak (forward) or
// strong (defined). Pass 2 (resolve.go) walks the table's pending entries in
// insertion order, parsing each strong FunctionDefinition's captured body
// with LParse (lparse.go, expr.go) into a mir.Program. A ParsingError
// escaping one function body is caught at function granularity so other
// top-level symbols still resolve.
package gen

import (
	"github.com/stackc-lang/stackc/internal/ast"
	"github.com/stackc-lang/stackc/internal/diag"
	"github.com/stackc-lang/stackc/internal/symtab"
)

// Run executes both passes over unit and returns the populated SymTable.
func Run(unit *ast.MultipleNode, d *diag.Collector) *symtab.SymTable {
	st := symtab.New(d)
	predeclare(st, unit, d)
	resolve(st, d)
	return st
}
