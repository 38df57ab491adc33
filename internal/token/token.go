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

// Package token defines the closed token-kind set produced by internal/lexer
// and consumed by internal/dparse and internal/gen.
package token

import "github.com/stackc-lang/stackc/internal/source"

// Kind is a short ASCII tag drawn from a fixed closed set: keyword spellings,
// punctuator spellings, or one of the generic kinds below.
type Kind string

// Generic kinds, set alongside the closed keyword/punctuator spelling kinds.
const (
	Id     Kind = "id"
	Num    Kind = "num"
	Str    Kind = "str"
	Chr    Kind = "chr"
	MetaId Kind = "meta_id"
	EOF    Kind = "eof"
)

// Keywords is the closed set of C99(+extension) keyword spellings; a word
// lexeme equal to one of these becomes a token whose Kind is the spelling
// itself rather than Id.
var Keywords = map[string]bool{
	"void": true, "char": true, "short": true, "int": true, "long": true,
	"float": true, "double": true, "signed": true, "unsigned": true,
	"_Bool": true, "_Complex": true, "_Imaginary": true, "_Atomic": true,
	"_Alignas": true, "_Alignof": true, "_Generic": true, "_Noreturn": true,
	"_Static_assert": true, "_Thread_local": true, "_Cdecl": true,
	"auto": true, "break": true, "case": true, "const": true,
	"continue": true, "default": true, "do": true, "else": true,
	"enum": true, "extern": true, "for": true, "goto": true, "if": true,
	"inline": true, "register": true, "restrict": true, "return": true,
	"sizeof": true, "static": true, "struct": true, "switch": true,
	"typedef": true, "union": true, "volatile": true, "while": true,
}

// StorageClass, FunctionSpecifier, and TypeQualifier are the closed
// "qualifier-only" token-kind sets consulted by the identifier-as-type hack
// (spec.md §4.2): an id is eligible to be treated as a type name only while
// every declaration specifier collected so far belongs to one of these sets.
var (
	StorageClass = map[Kind]bool{
		"typedef": true, "extern": true, "static": true, "auto": true,
		"register": true, "_Thread_local": true,
	}
	FunctionSpecifier = map[Kind]bool{
		"inline": true, "_Noreturn": true, "_Cdecl": true,
	}
	TypeQualifier = map[Kind]bool{
		"const": true, "restrict": true, "volatile": true, "_Atomic": true,
	}
)

// IsQualifierOnly reports whether kind belongs to one of the three
// qualifier-only sets (storage-class, function, type-qualifier) consulted by
// the identifier-as-type hack.
func IsQualifierOnly(k Kind) bool {
	return StorageClass[k] || FunctionSpecifier[k] || TypeQualifier[k]
}

// TypeSpecifierKeywords are keyword tokens that are themselves type
// specifiers (as opposed to qualifiers/storage-class/function specifiers).
var TypeSpecifierKeywords = map[Kind]bool{
	"void": true, "char": true, "short": true, "int": true, "long": true,
	"float": true, "double": true, "signed": true, "unsigned": true,
	"_Bool": true, "_Complex": true, "_Imaginary": true,
	"struct": true, "union": true, "enum": true,
}

// Triples, Doubles, and Singles are the closed punctuator spelling sets,
// matched longest-first by the lexer (spec.md §4.1).
var (
	Triples = []string{"...", "<<=", ">>="}
	Doubles = []string{
		"==", "!=", ">=", "<=", "&&", "||",
		"+=", "-=", "*=", "/=", "%=", "&=", "|=", "^=",
		"<<", ">>", "++", "--", "->",
	}
	Singles = []string{
		"{", "}", "(", ")", "[", "]", ";", ":", ",", "=",
		"+", "-", "*", "/", "%", "&", "|", "^", "~", "!",
		"<", ">", "?", ".", "#",
	}
)

// Value carries a token's decoded payload: a string for identifiers, string
// literals, char literals, meta-ids and punctuator spellings; an int64 for
// numeric literals; nil for eof.
type Value any

// Token is a lexical unit: a closed Kind, a decoded Value, and the Loc where
// it starts.
type Token struct {
	Kind  Kind
	Value Value
	Loc   source.Loc
}

// Text returns the token's spelling for kinds whose Value is a string
// (identifiers, meta-ids, decoded string/char literal contents, punctuators
// and keywords); for Num it formats the stored integer.
func (t Token) Text() string {
	switch v := t.Value.(type) {
	case string:
		return v
	case int64:
		return formatInt(v)
	default:
		return string(t.Kind)
	}
}

func formatInt(v int64) string {
	if v == 0 {
		return "0"
	}
	neg := v < 0
	if neg {
		v = -v
	}
	var buf [24]byte
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = byte('0' + v%10)
		v /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}

// EOFAt synthesizes the eof token at the given location. Per spec.md §4.1,
// eof is never stored in a token array — it is produced on demand whenever a
// parser reads past the end of input.
func EOFAt(loc source.Loc) Token {
	return Token{Kind: EOF, Value: nil, Loc: loc}
}
