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

package dparse

// mark is the scoped snapshot taken at the entry of a speculative branch: a
// single integer (the token cursor) plus the current_dspecs stack depth, so a
// rollback also undoes any dspecs frames pushed during the failed attempt
// (spec.md §5's "rollback discards no global state other than the cursor
// itself (and any current_dspecs stack that was restored at branch
// boundaries)").
type mark struct {
	pos       int
	dspecsLen int
}

func (p *Parser) mark() mark {
	return mark{pos: p.pos, dspecsLen: len(p.dspecsStack)}
}

func (p *Parser) rollback(m mark) {
	p.pos = m.pos
	p.dspecsStack = p.dspecsStack[:m.dspecsLen]
}

// recoverable runs fn as a scoped speculative branch (spec.md §4.2's
// "recoverable call"): it snapshots the cursor on entry; if fn reports
// ok=false, the cursor is rolled back and recoverable reports ok=false too;
// otherwise the attempt's cursor effects are committed. Branches nest freely
// — recoverable may be called from inside another recoverable's fn.
//
// The snapshot is released on every exit path, including when fn panics with
// a ParsingError: the deferred rollback always runs, then the panic
// re-propagates to whichever frame is set up to catch it (spec.md §5's
// "guaranteed even when the inner parser raises a fatal ParsingError").
func recoverable[T any](p *Parser, fn func() (T, bool)) (result T, ok bool) {
	m := p.mark()
	committed := false
	defer func() {
		if !committed {
			p.rollback(m)
		}
	}()
	result, ok = fn()
	committed = ok
	return result, ok
}
