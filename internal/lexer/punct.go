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
	"github.com/stackc-lang/stackc/internal/source"
	"github.com/stackc-lang/stackc/internal/token"
)

// scanPunctuator matches the longest-first punctuator, as spec.md §4.1
// requires: 3-char, then 2-char, then 1-char. If nothing matches, it reports
// "bad token" but still emits a single-character token to make progress
// (spec.md §4.1, §7's "always advance at least one token per error").
func (l *Lexer) scanPunctuator() token.Token {
	loc := l.loc()
	if tok, ok := l.tryMatch(token.Triples, loc); ok {
		return tok
	}
	if tok, ok := l.tryMatch(token.Doubles, loc); ok {
		return tok
	}
	if tok, ok := l.tryMatch(token.Singles, loc); ok {
		return tok
	}
	text := l.advance(1)
	l.diag.Errorf(loc, "bad token: %q", text)
	return token.Token{Kind: token.Kind(text), Value: text, Loc: loc}
}

func (l *Lexer) tryMatch(spellings []string, loc source.Loc) (token.Token, bool) {
	for _, s := range spellings {
		if len(l.rest) >= len(s) && l.rest[:len(s)] == s {
			text := l.advance(len(s))
			return token.Token{Kind: token.Kind(text), Value: text, Loc: loc}, true
		}
	}
	return token.Token{}, false
}
