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
	"github.com/stackc-lang/stackc/internal/dparse"
	"github.com/stackc-lang/stackc/internal/source"
	"github.com/stackc-lang/stackc/internal/symtab"
)

// resolve implements spec.md §4.3's pass 2: walk every still-pending name in
// insertion order. A weak entry resolves straight to ExternFnSymbol. A
// strong non-function Declaration (e.g. a defined global variable) has no
// body to parse, so it resolves to ExternFnSymbol as well — Symbol's closed
// sum has no third "resolved data" variant, and nothing downstream needs
// more than "this name is defined" for a non-function. A strong
// FunctionDefinition gets its body parsed by LParse.
func resolve(st *symtab.SymTable, d *diag.Collector) {
	for _, name := range st.Pending() {
		entry, ok := st.GetMember(name, source.Loc{})
		if !ok {
			continue
		}
		if entry.IsWeak {
			st.Resolve(name, symtab.ExternFnSymbol{Node: entry.Pending})
			continue
		}
		fn, isFn := entry.Pending.(ast.FunctionDefinition)
		if !isFn {
			st.Resolve(name, symtab.ExternFnSymbol{Node: entry.Pending})
			continue
		}
		resolveFunctionBody(st, name, fn, d)
	}
}

// resolveFunctionBody parses fn's captured body with LParse into a MIR
// program and resolves name to a FnSymbol. A ParsingError escaping the body
// parser is caught here and swallowed (spec.md §4.3: "caught and swallowed
// at function granularity — other top-level symbols still resolve"); the
// name is simply left pending rather than resolved.
func resolveFunctionBody(st *symtab.SymTable, name string, fn ast.FunctionDefinition, d *diag.Collector) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(dparse.ParsingError); ok {
				return
			}
			panic(r)
		}
	}()

	local := st.Copy()
	declareParams(local, fn.Declarator, d)

	lp := newLParse(fn.Body.Tokens, local, d)
	lp.run()

	st.Resolve(name, symtab.FnSymbol{Name: name, Loc: fn.Loc(), MIR: lp.prog})
}

// declareParams predeclares fn's named parameters into the body-local
// symbol table copy (spec.md §4.4's Copy "used to scope inside bodies"), so
// a parameter name is a known entry even though local-variable declarations
// inside bodies remain a to-do (spec.md §4.3). A parameter name repeated
// within the same list (e.g. `f(int a, int a)`) is reported rather than
// silently shadowed.
func declareParams(st *symtab.SymTable, declNode ast.Node, d *diag.Collector) {
	pld, ok := declNode.(ast.ParameterListDeclarator)
	if !ok {
		return
	}

	named := collections.FilterSlice(pld.ParameterList, func(p *ast.ParameterDeclaration) bool {
		if p.Declarator == nil {
			return false
		}
		_, ok := ast.DeclaratorName(p.Declarator)
		return ok
	})
	names := collections.MapSlice(named, func(p *ast.ParameterDeclaration) string {
		name, _ := ast.DeclaratorName(p.Declarator)
		return name.Text()
	})

	seen := make(collections.Set[string], len(named))
	for i, param := range named {
		name := names[i]
		if seen.Contains(name) {
			d.Errorf(param.Loc(), "parameter %q repeated in parameter list", name)
			continue
		}
		seen.Add(name)
		st.Declare(name, param, false, param.Loc())
	}
}
