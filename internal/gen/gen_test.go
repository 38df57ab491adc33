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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stackc-lang/stackc/internal/diag"
	"github.com/stackc-lang/stackc/internal/dparse"
	"github.com/stackc-lang/stackc/internal/lexer"
	"github.com/stackc-lang/stackc/internal/mir"
	"github.com/stackc-lang/stackc/internal/source"
	"github.com/stackc-lang/stackc/internal/symtab"
)

func run(t *testing.T, src string) (*symtab.SymTable, *diag.Collector) {
	t.Helper()
	d := diag.NewCollector()
	buf := source.New("t.c", src)
	lx := lexer.New(buf, d)
	unit := dparse.ParseTranslationUnit(lx, d)
	return Run(unit, d), d
}

func fnBody(t *testing.T, st *symtab.SymTable, name string) []mir.Instr {
	t.Helper()
	entry, ok := st.GetMember(name, source.Loc{})
	require.True(t, ok)
	fn, ok := entry.Resolved.(symtab.FnSymbol)
	require.True(t, ok)
	return fn.MIR.Instrs()
}

func TestWeakForwardDeclarationResolvesToExtern(t *testing.T) {
	st, d := run(t, "int add(int a, int b);")
	require.False(t, d.HasErrors())
	entry, ok := st.GetMember("add", source.Loc{})
	require.True(t, ok)
	_, isExtern := entry.Resolved.(symtab.ExternFnSymbol)
	assert.True(t, isExtern)
}

// TestOperatorPrecedence is spec.md §8 invariant #7: `a + b * c` compiles to
// LOAD_NAME a; LOAD_NAME b; LOAD_NAME c; MUL; ADD.
func TestOperatorPrecedence(t *testing.T) {
	st, d := run(t, "int f(int a, int b, int c) { return a + b * c; }")
	require.False(t, d.HasErrors())
	instrs := fnBody(t, st, "f")

	ops := make([]mir.Op, len(instrs))
	for i, in := range instrs {
		ops[i] = in.Op
	}
	assert.Equal(t, []mir.Op{
		mir.LoadName, mir.LoadName, mir.LoadName, mir.Mul, mir.Add, mir.Ret,
	}, ops)
}

// TestIfElsePatchesBothTargets is spec.md §8 invariant #6: every
// JUMP/JUMP_IF_FALSE emitted ends up with a concrete integer Ex (no
// instruction is left with its placeholder nil target).
func TestIfElsePatchesBothTargets(t *testing.T) {
	st, d := run(t, "int f(int a) { if (a) return a; else return 0; }")
	require.False(t, d.HasErrors())
	instrs := fnBody(t, st, "f")

	var sawJump, sawJumpIfFalse bool
	for _, in := range instrs {
		switch in.Op {
		case mir.JumpIfFalse:
			sawJumpIfFalse = true
			require.IsType(t, 0, in.Ex)
		case mir.Jump:
			sawJump = true
			require.IsType(t, 0, in.Ex)
		}
	}
	assert.True(t, sawJump)
	assert.True(t, sawJumpIfFalse)
}

func TestIfWithoutElsePatchesSingleTarget(t *testing.T) {
	st, d := run(t, "int f(int a) { if (a) return a; return 0; }")
	require.False(t, d.HasErrors())
	instrs := fnBody(t, st, "f")

	var found bool
	for _, in := range instrs {
		if in.Op == mir.JumpIfFalse {
			found = true
			require.IsType(t, 0, in.Ex)
		}
	}
	assert.True(t, found)
}

func TestStrongOverridesWeakEndToEnd(t *testing.T) {
	st, d := run(t, "int f(int a, int b); int f(int a, int b) { return a; }")
	require.False(t, d.HasErrors())
	entry, ok := st.GetMember("f", source.Loc{})
	require.True(t, ok)
	_, isFn := entry.Resolved.(symtab.FnSymbol)
	assert.True(t, isFn)
	require.Len(t, st.HeadingDecls("f"), 1)
}

func TestMalformedBodyIsolatedPerFunction(t *testing.T) {
	st, d := run(t, `
		int broken(int a) { return ===; }
		int ok(int a) { return a; }
	`)
	require.True(t, d.HasErrors())

	entry, ok := st.GetMember("ok", source.Loc{})
	require.True(t, ok)
	_, isFn := entry.Resolved.(symtab.FnSymbol)
	assert.True(t, isFn)

	brokenEntry, ok := st.GetMember("broken", source.Loc{})
	require.True(t, ok)
	assert.Nil(t, brokenEntry.Resolved)
}
