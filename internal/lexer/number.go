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
	"regexp"

	"github.com/stackc-lang/stackc/internal/token"
)

// reNumber matches the canonical numeric-literal forms spec.md §4.1 allows:
// hex, binary, octal and decimal integers, grounded on
// language/internal/cc/lexer/lexer.go's reLiteralInteger and extended (per
// original_source/compiler_demo/cx_lexer.py) with an optional integer-suffix
// tail so `0x10u`, `42L`, `7ull` lex as one token instead of three.
var reNumber = regexp.MustCompile(`(?i)^(0x[0-9a-f]+|0b[01]+|0[0-7]*|[1-9][0-9]*|0)(ull|llu|ul|lu|ll|u|l)?`)

// scanNumber scans a numeric literal starting at the current digit. Malformed
// suffixes (anything the regexp's suffix group doesn't recognize) still lex
// as the longest valid numeric prefix and degrade the remainder to a "bad
// token" diagnostic rather than panicking, per spec.md §4.1's failure
// semantics for numeric parsing.
func (l *Lexer) scanNumber() token.Token {
	loc := l.loc()
	match := reNumber.FindString(l.rest)
	if match == "" {
		// Lone digit the regexp somehow rejected (shouldn't happen since the
		// dispatcher only calls us on a digit byte); make one-token progress.
		text := l.advance(1)
		l.diag.Errorf(loc, "bad token: %q", text)
		return token.Token{Kind: token.Num, Value: int64(0), Loc: loc}
	}
	text := l.advance(len(match))
	if len(l.rest) > 0 && isIdentCont(l.rest[0]) {
		l.diag.Errorf(loc, "bad token: malformed numeric literal suffix after %q", text)
	}
	digits := stripSuffix(text)
	val, ok := parseIntLiteral(digits)
	if !ok {
		l.diag.Errorf(loc, "bad token: malformed numeric literal %q", text)
		return token.Token{Kind: token.Num, Value: int64(0), Loc: loc}
	}
	return token.Token{Kind: token.Num, Value: val, Loc: loc}
}

func stripSuffix(text string) string {
	i := len(text)
	for i > 0 {
		c := text[i-1]
		if c == 'u' || c == 'U' || c == 'l' || c == 'L' {
			i--
			continue
		}
		break
	}
	return text[:i]
}

func parseIntLiteral(digits string) (int64, bool) {
	switch {
	case len(digits) > 2 && (digits[:2] == "0x" || digits[:2] == "0X"):
		return parseRadix(digits[2:], 16)
	case len(digits) > 2 && (digits[:2] == "0b" || digits[:2] == "0B"):
		return parseRadix(digits[2:], 2)
	case len(digits) > 1 && digits[0] == '0':
		return parseRadix(digits[1:], 8)
	default:
		return parseRadix(digits, 10)
	}
}

func parseRadix(digits string, radix int64) (int64, bool) {
	if digits == "" {
		return 0, true // bare "0"
	}
	var v int64
	for _, ch := range digits {
		d := int64(-1)
		switch {
		case ch >= '0' && ch <= '9':
			d = int64(ch - '0')
		case ch >= 'a' && ch <= 'f':
			d = int64(ch-'a') + 10
		case ch >= 'A' && ch <= 'F':
			d = int64(ch-'A') + 10
		}
		if d < 0 || d >= radix {
			return 0, false
		}
		v = v*radix + d
	}
	return v, true
}
