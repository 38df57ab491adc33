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

// Package symtab implements the SymTable of spec.md §4.4: a mapping from
// declared name to either a pending (Node, is_weak) pair deposited by Gen's
// pass 1, or a resolved Symbol produced by pass 2. Every extra weak
// declaration of an already-known name is parked in heading_decls rather than
// discarded, so later (out-of-scope) verification could cross-check
// signatures.
package symtab

import (
	"github.com/stackc-lang/stackc/internal/ast"
	"github.com/stackc-lang/stackc/internal/collections"
	"github.com/stackc-lang/stackc/internal/diag"
	"github.com/stackc-lang/stackc/internal/mir"
	"github.com/stackc-lang/stackc/internal/source"
)

// Symbol is the closed resolved-entry sum type of spec.md §3: either an
// ExternFnSymbol (a declaration with no body: a weak/forward declaration or a
// strong non-function declaration) or a FnSymbol (a defined function, owning
// the MIR program its body compiled to).
type Symbol interface {
	symbol()
}

// ExternFnSymbol is a resolved declaration for which no body was ever parsed:
// a weak declaration, or a strong non-function Declaration such as a defined
// global variable.
type ExternFnSymbol struct {
	Node ast.Node
}

func (ExternFnSymbol) symbol() {}

// FnSymbol is a resolved function definition: its body has been parsed by
// LParse into a MIR program.
type FnSymbol struct {
	Name string
	Loc  source.Loc
	MIR  *mir.Program
}

func (FnSymbol) symbol() {}

type pending struct {
	node   ast.Node
	isWeak bool
}

type entry struct {
	pending  *pending // nil once resolved
	resolved Symbol   // nil until resolved
}

// SymTable is spec.md §4.4's name→entry map plus its insertion-order list and
// heading_decls side table.
type SymTable struct {
	diag          *diag.Collector
	order         []string
	members       map[string]*entry
	headingDecls  map[string][]ast.Node
	resolvedNames collections.Set[string]
}

// New returns an empty SymTable reporting declare-time conflicts to d.
func New(d *diag.Collector) *SymTable {
	return &SymTable{
		diag:          d,
		members:       make(map[string]*entry),
		headingDecls:  make(map[string][]ast.Node),
		resolvedNames: make(collections.Set[string]),
	}
}

// Declare implements spec.md §4.3's declare rule:
//   - new name: store (node, isWeak).
//   - existing weak, new strong: park the existing node in heading_decls,
//     overwrite with the strong one.
//   - existing weak, new weak: append the new node to heading_decls, keep
//     the existing pending entry (idempotent — spec.md invariant #4).
//   - existing strong, new weak: park the new node in heading_decls; the
//     strong entry is never replaced by a weak one.
//   - existing strong, new strong: report "already declared".
func (t *SymTable) Declare(name string, node ast.Node, isWeak bool, loc source.Loc) {
	existing, ok := t.members[name]
	if !ok {
		t.members[name] = &entry{pending: &pending{node: node, isWeak: isWeak}}
		t.order = append(t.order, name)
		return
	}
	if existing.resolved != nil {
		t.diag.Errorf(loc, "%q already declared", name)
		return
	}
	switch {
	case existing.pending.isWeak && !isWeak:
		t.headingDecls[name] = append(t.headingDecls[name], existing.pending.node)
		existing.pending = &pending{node: node, isWeak: false}
	case existing.pending.isWeak && isWeak:
		t.headingDecls[name] = append(t.headingDecls[name], node)
	case !existing.pending.isWeak && isWeak:
		t.headingDecls[name] = append(t.headingDecls[name], node)
	default:
		t.diag.Errorf(loc, "%q already declared", name)
	}
}

// Entry is what GetMember returns: exactly one of Resolved (non-nil) or
// Pending (non-nil) is populated.
type Entry struct {
	Resolved Symbol
	Pending  ast.Node
	IsWeak   bool
}

// GetMember looks up name, reporting (and failing) when absent, per spec.md
// §4.4: "get_member fails (reported) when the name is not present."
func (t *SymTable) GetMember(name string, loc source.Loc) (Entry, bool) {
	e, ok := t.members[name]
	if !ok {
		t.diag.Errorf(loc, "undeclared name %q", name)
		return Entry{}, false
	}
	if e.resolved != nil {
		return Entry{Resolved: e.resolved}, true
	}
	return Entry{Pending: e.pending.node, IsWeak: e.pending.isWeak}, true
}

// IsWeak reports whether name's current entry (pending or resolved) is weak.
// A name with no entry at all is reported as not weak.
func (t *SymTable) IsWeak(name string) bool {
	e, ok := t.members[name]
	if !ok {
		return false
	}
	if e.resolved != nil {
		ext, isExtern := e.resolved.(ExternFnSymbol)
		if !isExtern {
			return false
		}
		switch n := ext.Node.(type) {
		case ast.Declaration:
			return n.Initializer == nil
		case ast.FunctionDefinition:
			return n.IsWeak()
		}
		return true
	}
	return e.pending.isWeak
}

// HeadingDecls returns every extra weak declaration of name parked during
// Declare, in the order they were parked.
func (t *SymTable) HeadingDecls(name string) []ast.Node {
	return t.headingDecls[name]
}

// Resolve transitions name's pending entry to a resolved Symbol. Gen's pass 2
// calls this once per name, in insertion order.
func (t *SymTable) Resolve(name string, sym Symbol) {
	t.members[name].pending = nil
	t.members[name].resolved = sym
	t.resolvedNames.Add(name)
}

// Pending returns every name whose entry has not yet been resolved, in
// insertion (source) order — the walk Gen's pass 2 performs (spec.md §4.3,
// §5's "insertion order" requirement).
func (t *SymTable) Pending() []string {
	return collections.FilterSlice(t.order, func(name string) bool {
		return !t.resolvedNames.Contains(name)
	})
}

// Names returns every member name in insertion (source) order, resolved and
// pending alike — used by the driver's `dump tab` switch (spec.md §6) to
// render the whole table rather than just what's left to resolve.
func (t *SymTable) Names() []string {
	return append([]string(nil), t.order...)
}

// Copy returns a shallow snapshot: a new SymTable whose entries and
// heading_decls lists are independent slices/maps, but whose Node/Symbol
// values are shared. Used to scope a symbol table for body-local lookups
// without letting body parsing mutate the enclosing table (spec.md §4.4).
func (t *SymTable) Copy() *SymTable {
	c := &SymTable{
		diag:          t.diag,
		order:         append([]string(nil), t.order...),
		members:       make(map[string]*entry, len(t.members)),
		headingDecls:  make(map[string][]ast.Node, len(t.headingDecls)),
		resolvedNames: make(collections.Set[string], len(t.resolvedNames)),
	}
	c.resolvedNames.AddSeq(t.resolvedNames.All())
	for name, e := range t.members {
		ev := *e
		c.members[name] = &ev
	}
	for name, nodes := range t.headingDecls {
		c.headingDecls[name] = append([]ast.Node(nil), nodes...)
	}
	return c
}
