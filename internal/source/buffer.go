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

// Package source tracks the location bookkeeping shared by every phase of the
// front end: the lexer advances a Buffer's cursor as it consumes bytes, and every
// Token/Node produced downstream carries a Loc snapshot taken from it.
package source

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Loc is a 1-based (file, line, column) source position, attached to every
// token and node produced by the front end.
type Loc struct {
	File   string
	Line   int
	Column int
}

// String renders a Loc as "path:line:col", the prefix diagnostics use.
func (l Loc) String() string {
	return fmt.Sprintf("%s:%d:%d", l.File, l.Line, l.Column)
}

// Buffer holds the preprocessed source text plus the cursor used to stamp
// locations onto tokens as they are scanned.
type Buffer struct {
	Text   string
	cursor Loc
}

// New creates a Buffer over the given preprocessed source, with the cursor
// starting at line 1, column 1 of filename.
func New(filename, text string) *Buffer {
	return &Buffer{Text: text, cursor: Loc{File: filename, Line: 1, Column: 1}}
}

// Loc reports the buffer's current cursor position.
func (b *Buffer) Loc() Loc { return b.cursor }

// Advance moves the cursor forward by consumed, a prefix of text that has just
// been scanned off the front of the buffer. Newlines in consumed increment the
// line and reset the column; other runes only increment the column.
func (b *Buffer) Advance(consumed string) {
	b.cursor = advance(b.cursor, consumed)
}

func advance(cur Loc, consumed string) Loc {
	newlines := strings.Count(consumed, "\n")
	if newlines == 0 {
		cur.Column += utf8.RuneCountInString(consumed)
		return cur
	}
	tailBegin := 1 + strings.LastIndex(consumed, "\n")
	cur.Line += newlines
	cur.Column = 1 + utf8.RuneCountInString(consumed[tailBegin:])
	return cur
}

// ResetTo re-anchors the cursor in response to a `# <line> "<path>"`
// cpp-linemarker (spec.md §4.1). The lexer calls this once it has consumed the
// directive's entire physical line, including its trailing newline, so the
// first token of the line that follows the directive is reported at
// declaredLine, column 1, in file.
func (b *Buffer) ResetTo(file string, declaredLine int) {
	b.cursor = Loc{File: file, Line: declaredLine, Column: 1}
}
