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

package lexer

import (
	"strings"

	"github.com/stackc-lang/stackc/internal/token"
)

// escapeTable is the closed escape-sequence set spec.md §4.1 names.
var escapeTable = map[byte]byte{
	'0': 0, 'n': '\n', 't': '\t', 'r': '\r', 'b': '\b', 'f': '\f',
	'v': '\v', 'a': '\a', '\\': '\\', '\'': '\'', '"': '"',
}

// scanQuoted scans a string or char literal delimited by quote, decoding
// escapes per spec.md §4.1. Unknown escapes are reported ("bad escaped
// char") and pass through verbatim; an unterminated literal is reported
// ("string not closed") and the collected prefix is returned.
func (l *Lexer) scanQuoted(quote byte, kind token.Kind) token.Token {
	loc := l.loc()
	l.advance(1) // opening quote

	var sb strings.Builder
	closed := false
	for len(l.rest) > 0 {
		c := l.rest[0]
		if c == quote {
			l.advance(1)
			closed = true
			break
		}
		if c == '\n' {
			break // unterminated; stop at end of physical line
		}
		if c == '\\' && len(l.rest) > 1 {
			escLoc := l.loc()
			esc := l.rest[1]
			l.advance(2)
			if decoded, ok := escapeTable[esc]; ok {
				sb.WriteByte(decoded)
			} else {
				l.diag.Errorf(escLoc, "bad escaped char: '\\%c'", esc)
				sb.WriteByte('\\')
				sb.WriteByte(esc)
			}
			continue
		}
		sb.WriteByte(c)
		l.advance(1)
	}
	if !closed {
		l.diag.Errorf(loc, "string not closed")
	}
	return token.Token{Kind: kind, Value: sb.String(), Loc: loc}
}
