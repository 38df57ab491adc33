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

// Package lexer implements the front end's lexical analyzer: spec.md §4.1.
// It converts the preprocessed source text held by an internal/source.Buffer
// into a sequence of internal/token.Token values, honoring cpp-style
// `# <line> "<path>"` linemarkers so diagnostic locations stay faithful to the
// original (pre-preprocessing) sources.
package lexer

import (
	"strings"

	"github.com/stackc-lang/stackc/internal/diag"
	"github.com/stackc-lang/stackc/internal/source"
	"github.com/stackc-lang/stackc/internal/token"
)

// Lexer scans a Buffer into tokens on demand, reporting failures to a
// diag.Collector rather than throwing (spec.md §4.1's "never throws; reports
// and continues with best-effort recovery").
type Lexer struct {
	buf  *source.Buffer
	rest string
	diag *diag.Collector
}

// New constructs a Lexer over buf, reporting errors/warnings to d.
func New(buf *source.Buffer, d *diag.Collector) *Lexer {
	return &Lexer{buf: buf, rest: buf.Text, diag: d}
}

// advance consumes the first n bytes of l.rest, updating the buffer cursor.
func (l *Lexer) advance(n int) string {
	consumed := l.rest[:n]
	l.rest = l.rest[n:]
	l.buf.Advance(consumed)
	return consumed
}

func (l *Lexer) loc() source.Loc { return l.buf.Loc() }

// NextToken implements the per-call contract of spec.md §4.1. At end of input
// it returns a synthesized eof token (token.EOFAt) on every call; the Lexer
// keeps no token array itself. internal/dparse's token stream holds that eof
// token apart from its cached tokens, and internal/gen's LParse synthesizes
// its own with token.EOFAt.
func (l *Lexer) NextToken() token.Token {
	for {
		if len(l.rest) == 0 {
			return token.EOFAt(l.loc())
		}
		if l.skipWhitespaceAndNewlines() {
			continue
		}
		if l.tryLinemarker() {
			continue
		}
		break
	}

	c := l.rest[0]
	switch {
	case isIdentStart(c):
		return l.scanWord()
	case isDigit(c):
		return l.scanNumber()
	case c == '"':
		return l.scanQuoted('"', token.Str)
	case c == '\'':
		return l.scanQuoted('\'', token.Chr)
	case c == '@':
		return l.scanMetaId()
	default:
		return l.scanPunctuator()
	}
}

func (l *Lexer) skipWhitespaceAndNewlines() bool {
	i := 0
	for i < len(l.rest) {
		switch l.rest[i] {
		case '\t', ' ', '\r', '\n':
			i++
			continue
		}
		break
	}
	if i == 0 {
		return false
	}
	l.advance(i)
	return true
}

// tryLinemarker recognizes a `# <num> "<path>"` cpp linemarker at the current
// position (which must be at the start of a physical line's first non-space
// character, i.e. only '#' possibly preceded by spaces we've already
// skipped). It consumes the directive plus its trailing newline and resets
// the buffer's cursor per spec.md §4.1, producing no token.
func (l *Lexer) tryLinemarker() bool {
	if len(l.rest) == 0 || l.rest[0] != '#' {
		return false
	}
	lineEnd := strings.IndexByte(l.rest, '\n')
	line := l.rest
	hadNewline := lineEnd >= 0
	if hadNewline {
		line = l.rest[:lineEnd]
	}
	num, path, ok := parseLinemarker(line)
	if !ok {
		return false
	}
	total := len(line)
	if hadNewline {
		total++ // include the trailing '\n'
	}
	l.advance(total)
	l.buf.ResetTo(path, num)
	return true
}

// parseLinemarker parses "# <digits> \"<path>\"" (optional trailing flags are
// ignored, as gcc/clang linemarkers may carry them).
func parseLinemarker(line string) (num int, path string, ok bool) {
	rest := strings.TrimPrefix(line, "#")
	rest = strings.TrimLeft(rest, " \t")
	i := 0
	for i < len(rest) && rest[i] >= '0' && rest[i] <= '9' {
		i++
	}
	if i == 0 {
		return 0, "", false
	}
	digits := rest[:i]
	rest = strings.TrimLeft(rest[i:], " \t")
	if len(rest) == 0 || rest[0] != '"' {
		return 0, "", false
	}
	end := strings.IndexByte(rest[1:], '"')
	if end < 0 {
		return 0, "", false
	}
	path = rest[1 : 1+end]
	n := 0
	for _, ch := range digits {
		n = n*10 + int(ch-'0')
	}
	return n, path, true
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentCont(c byte) bool {
	return isIdentStart(c) || isDigit(c)
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// scanWord scans `[A-Za-z_][A-Za-z0-9_]*`, then classifies it as a keyword or
// a plain identifier (spec.md §4.1). scanMetaId scans the word following '@'
// with its own loop.
func (l *Lexer) scanWord() token.Token {
	loc := l.loc()
	i := 1
	for i < len(l.rest) && isIdentCont(l.rest[i]) {
		i++
	}
	text := l.advance(i)
	if token.Keywords[text] {
		return token.Token{Kind: token.Kind(text), Value: text, Loc: loc}
	}
	return token.Token{Kind: token.Id, Value: text, Loc: loc}
}

// scanMetaId scans '@' followed by a word lexeme, per spec.md §4.1.
func (l *Lexer) scanMetaId() token.Token {
	loc := l.loc()
	l.advance(1) // '@'
	if len(l.rest) == 0 || !isIdentStart(l.rest[0]) {
		l.diag.Errorf(loc, "bad token: '@' not followed by an identifier")
		return token.Token{Kind: token.MetaId, Value: "", Loc: loc}
	}
	i := 0
	for i < len(l.rest) && isIdentCont(l.rest[i]) {
		i++
	}
	text := l.advance(i)
	return token.Token{Kind: token.MetaId, Value: text, Loc: loc}
}
