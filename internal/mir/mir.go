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

// Package mir implements the linear stack-machine middle representation Gen's
// LParse emits into: spec.md §4.3's closed opcode set plus forward-patched
// jump targets. Control flow has no explicit basic-block graph at this layer;
// a JUMP/JUMP_IF_FALSE's target is just another instruction index, patched in
// once the jumped-over sub-structure has been parsed.
package mir

import "github.com/stackc-lang/stackc/internal/source"

// Op is the closed MIR opcode set of spec.md §4.3.
type Op string

const (
	RetVoid     Op = "RET_VOID"
	Ret         Op = "RET"
	LoadName    Op = "LOAD_NAME"
	Push        Op = "PUSH"
	Add         Op = "ADD"
	Sub         Op = "SUB"
	Mul         Op = "MUL"
	Rem         Op = "REM"
	Div         Op = "DIV"
	Shl         Op = "SHL"
	Shr         Op = "SHR"
	Lt          Op = "LT"
	Gt          Op = "GT"
	Let         Op = "LET"
	Get         Op = "GET"
	Eq          Op = "EQ"
	Neq         Op = "NEQ"
	And         Op = "AND"
	Xor         Op = "XOR"
	Or          Op = "OR"
	Local       Op = "LOCAL"
	LoadPtr     Op = "LOAD_PTR"
	StorePtr    Op = "STORE_PTR"
	Jump        Op = "JUMP"
	JumpIfFalse Op = "JUMP_IF_FALSE"
)

// Typ tags a Val's compile-time type (spec.md §3); only the handful of kinds
// the implemented statement/expression forms actually produce.
type Typ string

const (
	LitIntTyp  Typ = "int_lit"
	PointerTyp Typ = "pointer"
)

// Val is a typed operand of a compile-time computation (spec.md §3). Meta is
// nil for a runtime value, or the constant payload (an int64 for LitIntTyp)
// when known at emit time.
type Val struct {
	Typ  Typ
	Meta any
	Loc  source.Loc
}

// Instr is one MIR instruction: an opcode, its source location, and its
// per-opcode extra payload (a string name for LOAD_NAME, a Val for PUSH, an
// int instruction index for LOCAL/JUMP/JUMP_IF_FALSE).
type Instr struct {
	Op  Op
	Loc source.Loc
	Ex  any
}

// Handle is an opaque reference to a previously emitted instruction, used to
// patch a JUMP/JUMP_IF_FALSE's target once the code it jumps over has been
// emitted (spec.md §9: "stable handles, not raw indices").
type Handle struct{ index int }

// Program is the growable, forward-patchable instruction sequence one
// LParse run emits into.
type Program struct {
	instrs []Instr
}

// Emit appends one instruction and returns a Handle to it.
func (p *Program) Emit(op Op, loc source.Loc, ex any) Handle {
	h := Handle{index: len(p.instrs)}
	p.instrs = append(p.instrs, Instr{Op: op, Loc: loc, Ex: ex})
	return h
}

// PatchTarget sets h's instruction's Ex to the current instruction count —
// "here", the next instruction to be emitted — completing a forward-patched
// JUMP/JUMP_IF_FALSE.
func (p *Program) PatchTarget(h Handle) {
	p.instrs[h.index].Ex = len(p.instrs)
}

// Len reports the current instruction count (the index the next Emit will
// use), so a caller can compute "here" without a Handle when it just needs
// the raw target for a backward jump.
func (p *Program) Len() int { return len(p.instrs) }

// Instrs returns the emitted instructions in order. The returned slice must
// not be mutated by callers other than this package.
func (p *Program) Instrs() []Instr { return p.instrs }
