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

package symtab

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stackc-lang/stackc/internal/ast"
	"github.com/stackc-lang/stackc/internal/diag"
	"github.com/stackc-lang/stackc/internal/source"
)

func node(line int) ast.Node {
	return ast.PlaceholderNode{LocV: source.Loc{File: "t.c", Line: line, Column: 1}}
}

// TestIdempotentPredeclaration is spec.md §8 invariant #4: declaring the same
// name twice with is_weak=true leaves exactly one entry in SymTable.members
// and N-1 entries in heading_decls[name].
func TestIdempotentPredeclaration(t *testing.T) {
	d := diag.NewCollector()
	st := New(d)

	st.Declare("f", node(1), true, source.Loc{Line: 1})
	st.Declare("f", node(2), true, source.Loc{Line: 2})
	st.Declare("f", node(3), true, source.Loc{Line: 3})

	require.False(t, d.HasErrors())
	entry, ok := st.GetMember("f", source.Loc{})
	require.True(t, ok)
	assert.Nil(t, entry.Resolved)
	assert.True(t, entry.IsWeak)
	assert.Len(t, st.HeadingDecls("f"), 2)
	assert.Len(t, st.Pending(), 1)
}

// TestStrongOverridesWeak is spec.md §8 invariant #5: [weak(name);
// strong(name)] yields a resolved-pending strong entry and exactly one
// parked weak in heading_decls.
func TestStrongOverridesWeak(t *testing.T) {
	d := diag.NewCollector()
	st := New(d)

	weakNode := node(1)
	strongNode := node(2)
	st.Declare("f", weakNode, true, source.Loc{Line: 1})
	st.Declare("f", strongNode, false, source.Loc{Line: 2})

	require.False(t, d.HasErrors())
	entry, ok := st.GetMember("f", source.Loc{})
	require.True(t, ok)
	assert.False(t, entry.IsWeak)
	assert.Equal(t, strongNode, entry.Pending)

	headings := st.HeadingDecls("f")
	require.Len(t, headings, 1)
	assert.Equal(t, weakNode, headings[0])
}

func TestStrongNeverReplacedByWeak(t *testing.T) {
	d := diag.NewCollector()
	st := New(d)

	strongNode := node(1)
	weakNode := node(2)
	st.Declare("f", strongNode, false, source.Loc{Line: 1})
	st.Declare("f", weakNode, true, source.Loc{Line: 2})

	require.False(t, d.HasErrors())
	entry, ok := st.GetMember("f", source.Loc{})
	require.True(t, ok)
	assert.False(t, entry.IsWeak)
	assert.Equal(t, strongNode, entry.Pending)
	assert.Equal(t, []ast.Node{weakNode}, st.HeadingDecls("f"))
}

func TestDuplicateStrongDeclarationReported(t *testing.T) {
	d := diag.NewCollector()
	st := New(d)

	st.Declare("f", node(1), false, source.Loc{Line: 1})
	st.Declare("f", node(2), false, source.Loc{Line: 2})

	assert.True(t, d.HasErrors())
}

func TestGetMemberMissingNameReports(t *testing.T) {
	d := diag.NewCollector()
	st := New(d)

	_, ok := st.GetMember("nope", source.Loc{Line: 5})
	assert.False(t, ok)
	assert.True(t, d.HasErrors())
}

func TestResolveTransitionsPendingToResolved(t *testing.T) {
	d := diag.NewCollector()
	st := New(d)
	st.Declare("f", node(1), true, source.Loc{Line: 1})
	st.Resolve("f", ExternFnSymbol{Node: node(1)})

	entry, ok := st.GetMember("f", source.Loc{})
	require.True(t, ok)
	assert.NotNil(t, entry.Resolved)
	assert.Empty(t, st.Pending())
}

func TestCopyIsIndependent(t *testing.T) {
	d := diag.NewCollector()
	st := New(d)
	st.Declare("f", node(1), true, source.Loc{Line: 1})

	snap := st.Copy()
	st.Declare("g", node(2), true, source.Loc{Line: 2})

	_, ok := snap.GetMember("g", source.Loc{})
	assert.False(t, ok)
}
