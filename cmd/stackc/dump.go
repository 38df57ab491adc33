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

package main

import (
	"fmt"
	"io"

	"github.com/stackc-lang/stackc/internal/config"
	"github.com/stackc-lang/stackc/internal/symtab"
)

// dumpTokens implements `stackc dump tokens`: one line per token, in the
// order the lexer produced them (spec.md §6).
func dumpTokens(w io.Writer, p *phase) {
	for _, tok := range p.tokens {
		fmt.Fprintf(w, "%s\t%-12s %s\n", tok.Loc.String(), tok.Kind, tok.Text())
	}
}

// dumpRoot implements `stackc dump root`: the parsed translation unit, one
// top-level declaration per line, in Go syntax.
func dumpRoot(w io.Writer, p *phase) {
	for i, n := range p.unit.Nodes {
		fmt.Fprintf(w, "[%d] %#v\n", i, n)
	}
}

// dumpTab implements `stackc dump tab`: every symbol-table member, its
// weak/strong status and whether it resolved.
func dumpTab(w io.Writer, p *phase) {
	for _, name := range p.table.Names() {
		entry, ok := p.table.GetMember(name, p.unit.Loc())
		if !ok {
			continue
		}
		status := "pending"
		kind := "-"
		if entry.Resolved != nil {
			status = "resolved"
			switch entry.Resolved.(type) {
			case symtab.FnSymbol:
				kind = "fn"
			case symtab.ExternFnSymbol:
				kind = "extern"
			}
		}
		weak := "strong"
		if p.table.IsWeak(name) {
			weak = "weak"
		}
		fmt.Fprintf(w, "%-24s %-9s %-7s %s\n", name, status, weak, kind)
	}
}

func dumpAll(w io.Writer, cfg *config.Config, p *phase) {
	if cfg.Dump.Tokens {
		fmt.Fprintln(w, "-- tokens --")
		dumpTokens(w, p)
	}
	if cfg.Dump.Root {
		fmt.Fprintln(w, "-- root --")
		dumpRoot(w, p)
	}
	if cfg.Dump.Tab {
		fmt.Fprintln(w, "-- tab --")
		dumpTab(w, p)
	}
}
