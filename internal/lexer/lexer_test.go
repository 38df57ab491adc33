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
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/stackc-lang/stackc/internal/diag"
	"github.com/stackc-lang/stackc/internal/source"
	"github.com/stackc-lang/stackc/internal/token"
)

func allTokens(t *testing.T, input string) ([]token.Token, *diag.Collector) {
	t.Helper()
	d := diag.NewCollector()
	buf := source.New("test.c", input)
	lx := New(buf, d)
	var toks []token.Token
	for {
		tok := lx.NextToken()
		if tok.Kind == token.EOF {
			break
		}
		toks = append(toks, tok)
	}
	return toks, d
}

func TestNextToken_Keywords(t *testing.T) {
	toks, d := allTokens(t, "int x ;")
	assert.False(t, d.HasErrors())
	assert.Equal(t, []token.Kind{"int", token.Id, ";"}, kinds(toks))
	assert.Equal(t, "x", toks[1].Value)
}

func TestNextToken_Punctuators_LongestFirst(t *testing.T) {
	toks, d := allTokens(t, "a <<= b << c < d")
	assert.False(t, d.HasErrors())
	assert.Equal(t, []token.Kind{
		token.Id, "<<=", token.Id, "<<", token.Id, "<", token.Id,
	}, kinds(toks))
}

func TestNextToken_Ellipsis(t *testing.T) {
	toks, _ := allTokens(t, "f(int, ...)")
	assert.Equal(t, []token.Kind{
		token.Id, "(", "int", ",", "...", ")",
	}, kinds(toks))
}

func TestNextToken_MetaId(t *testing.T) {
	toks, d := allTokens(t, "@use_feature experimental_x;")
	assert.False(t, d.HasErrors())
	assert.Equal(t, token.MetaId, toks[0].Kind)
	assert.Equal(t, "use_feature", toks[0].Value)
}

func TestNextToken_NumericLiterals(t *testing.T) {
	cases := []struct {
		text string
		want int64
	}{
		{"0", 0},
		{"42", 42},
		{"0x2A", 42},
		{"0b101010", 42},
		{"052", 42},
		{"10u", 10},
		{"10L", 10},
	}
	for _, c := range cases {
		toks, d := allTokens(t, c.text)
		assert.False(t, d.HasErrors(), c.text)
		assert.Equal(t, token.Num, toks[0].Kind, c.text)
		assert.Equal(t, c.want, toks[0].Value, c.text)
	}
}

func TestNextToken_StringEscapes(t *testing.T) {
	toks, d := allTokens(t, `"a\nb\tc"`)
	assert.False(t, d.HasErrors())
	assert.Equal(t, "a\nb\tc", toks[0].Value)
}

func TestNextToken_UnknownEscape_Reports(t *testing.T) {
	toks, d := allTokens(t, `"a\qb"`)
	assert.True(t, d.HasErrors())
	assert.Equal(t, `a\qb`, toks[0].Value)
}

func TestNextToken_UnterminatedString_Reports(t *testing.T) {
	_, d := allTokens(t, `"abc`)
	assert.True(t, d.HasErrors())
}

func TestNextToken_BadTokenStillProgresses(t *testing.T) {
	toks, d := allTokens(t, "a $ b")
	assert.True(t, d.HasErrors())
	assert.Equal(t, []token.Kind{token.Id, "$", token.Id}, kinds(toks))
}

func TestNextToken_Linemarker(t *testing.T) {
	toks, d := allTokens(t, "int a;\n# 5 \"foo.h\"\nint b;\n")
	assert.False(t, d.HasErrors())
	// The declaration after the linemarker reports the declared file/line.
	bTok := toks[len(toks)-2]
	assert.Equal(t, "b", bTok.Value)
	assert.Equal(t, "foo.h", bTok.Loc.File)
	assert.Equal(t, 5, bTok.Loc.Line)
}

func TestNextToken_PositionalMonotonicity(t *testing.T) {
	toks, _ := allTokens(t, "int main() {\n  return 0;\n}\n")
	for i := 1; i < len(toks); i++ {
		prev, cur := toks[i-1].Loc, toks[i].Loc
		if prev.File != cur.File {
			continue
		}
		assert.True(t, cur.Line > prev.Line || (cur.Line == prev.Line && cur.Column >= prev.Column))
	}
}

func kinds(toks []token.Token) []token.Kind {
	ks := make([]token.Kind, len(toks))
	for i, t := range toks {
		ks[i] = t.Kind
	}
	return ks
}
