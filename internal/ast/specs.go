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

package ast

import (
	"sort"
	"strings"

	"github.com/stackc-lang/stackc/internal/token"
)

// typeSpecifierOrder fixes a canonical ordering for the type-specifier
// keywords that may combine (e.g. "long", "long", "int" / "int", "long",
// "long"). Resolves the Open Question in spec.md ("whether `long long int`
// and `int long long` should be canonicalized identically"): yes, via this
// sort key, so both combinations produce the same canonical spelling.
var typeSpecifierOrder = map[token.Kind]int{
	"signed": 0, "unsigned": 1,
	"short": 2, "long": 3,
	"void": 4, "char": 5, "int": 6, "float": 7, "double": 8,
	"_Bool": 9, "_Complex": 10, "_Imaginary": 11,
}

// Canonical returns a whitespace-joined, order-independent spelling of the
// type-specifier keywords inside a declaration-specifier MultipleNode (as
// built by dparse.declarationSpecifiers). Non-type-specifier entries
// (qualifiers, storage class, DeclSpecNode, a named struct/union/enum/
// typedef-name specifier) are ignored; callers that need those consult the
// MultipleNode directly.
func (m *MultipleNode) Canonical() string {
	if m == nil {
		return ""
	}
	var kws []token.Kind
	for _, n := range m.Nodes {
		leaf, ok := n.(Leaf)
		if !ok {
			continue
		}
		if _, isTypeSpec := typeSpecifierOrder[leaf.Token.Kind]; isTypeSpec {
			kws = append(kws, leaf.Token.Kind)
		}
	}
	sort.SliceStable(kws, func(i, j int) bool {
		return typeSpecifierOrder[kws[i]] < typeSpecifierOrder[kws[j]]
	})
	words := make([]string, len(kws))
	for i, k := range kws {
		words[i] = string(k)
	}
	return strings.Join(words, " ")
}
