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

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stackc-lang/stackc/internal/ast"
	"github.com/stackc-lang/stackc/internal/diag"
	"github.com/stackc-lang/stackc/internal/lexer"
	"github.com/stackc-lang/stackc/internal/source"
)

func parseUnit(t *testing.T, src string) (*ast.MultipleNode, *diag.Collector) {
	t.Helper()
	d := diag.NewCollector()
	buf := source.New("t.c", src)
	lx := lexer.New(buf, d)
	return ParseTranslationUnit(lx, d), d
}

func TestFunctionForwardDeclarationIsWeak(t *testing.T) {
	unit, d := parseUnit(t, "int add(int a, int b);")
	require.False(t, d.HasErrors())
	require.Len(t, unit.Nodes, 1)
	fn, ok := unit.Nodes[0].(ast.FunctionDefinition)
	require.True(t, ok)
	assert.True(t, fn.IsWeak())
	name, ok := ast.DeclaratorName(fn.Declarator)
	require.True(t, ok)
	assert.Equal(t, "add", name.Text())
	dcl, ok := fn.Declarator.(ast.Declarator)
	require.True(t, ok)
	pld, ok := dcl.DirectDeclarator.(ast.ParameterListDeclarator)
	require.True(t, ok)
	assert.Len(t, pld.ParameterList, 2)
}

func TestFunctionDefinitionCapturesBodyVerbatim(t *testing.T) {
	unit, d := parseUnit(t, "int add(int a, int b) { return a + b; }")
	require.False(t, d.HasErrors())
	require.Len(t, unit.Nodes, 1)
	fn, ok := unit.Nodes[0].(ast.FunctionDefinition)
	require.True(t, ok)
	assert.False(t, fn.IsWeak())
	require.NotNil(t, fn.Body)
	assert.NotEmpty(t, fn.Body.Tokens)
}

// TestIdentifierAsTypeHack exercises spec.md §4.2's identifier-as-type hack:
// whether a bare identifier is read as a type name or a declarator name
// depends on whether a type specifier already appears in current_dspecs.
func TestIdentifierAsTypeHack(t *testing.T) {
	unit, d := parseUnit(t, "Foo bar;")
	require.False(t, d.HasErrors())
	require.Len(t, unit.Nodes, 1)
	decl, ok := unit.Nodes[0].(ast.Declaration)
	require.True(t, ok)
	require.Len(t, decl.DeclarationSpecifiers.Nodes, 1)
	typeLeaf, ok := decl.DeclarationSpecifiers.Nodes[0].(ast.Leaf)
	require.True(t, ok)
	assert.Equal(t, "Foo", typeLeaf.Token.Text())
	name, ok := ast.DeclaratorName(decl.Declarator)
	require.True(t, ok)
	assert.Equal(t, "bar", name.Text())
}

func TestQualifierThenIdentifierIsStillAType(t *testing.T) {
	unit, d := parseUnit(t, "const Bar baz;")
	require.False(t, d.HasErrors())
	require.Len(t, unit.Nodes, 1)
	decl, ok := unit.Nodes[0].(ast.Declaration)
	require.True(t, ok)
	require.Len(t, decl.DeclarationSpecifiers.Nodes, 2)
	name, ok := ast.DeclaratorName(decl.Declarator)
	require.True(t, ok)
	assert.Equal(t, "baz", name.Text())
}

func TestStructBodyParsesMembersAndBitfield(t *testing.T) {
	unit, d := parseUnit(t, "struct Point { int x; int y : 4; };")
	require.False(t, d.HasErrors())
	require.Len(t, unit.Nodes, 1)
	decl, ok := unit.Nodes[0].(ast.EmptyDeclaration)
	require.True(t, ok)
	require.Len(t, decl.DeclarationSpecifiers.Nodes, 1)
	spec, ok := decl.DeclarationSpecifiers.Nodes[0].(ast.StructOrUnionSpecifier)
	require.True(t, ok)
	require.NotNil(t, spec.Body)
	require.Len(t, spec.Body.Nodes, 2)
	second, ok := spec.Body.Nodes[1].(ast.Declaration)
	require.True(t, ok)
	require.NotNil(t, second.Bitfield)
}

func TestBitfieldOutsideStructWarns(t *testing.T) {
	_, d := parseUnit(t, "int x : 4;")
	all := d.All()
	require.NotEmpty(t, all)
	assert.Equal(t, diag.Warning, all[0].Severity)
}

func TestMalformedDeclarationRecoversAtNextTopLevelEntry(t *testing.T) {
	unit, d := parseUnit(t, "int === ; int ok;")
	require.True(t, d.HasErrors())
	require.GreaterOrEqual(t, len(unit.Nodes), 1)
	var found bool
	for _, n := range unit.Nodes {
		if decl, ok := n.(ast.Declaration); ok {
			if name, ok := ast.DeclaratorName(decl.Declarator); ok && name.Text() == "ok" {
				found = true
			}
		}
	}
	assert.True(t, found)
}

func TestUseFeatureDirectiveSemicolonForm(t *testing.T) {
	unit, d := parseUnit(t, "@use_feature foo, bar;")
	require.False(t, d.HasErrors())
	require.Len(t, unit.Nodes, 1)
	uf, ok := unit.Nodes[0].(ast.UseFeatureDirective)
	require.True(t, ok)
	require.Len(t, uf.Features, 2)
	assert.Equal(t, "foo", uf.Features[0].Text())
	assert.Nil(t, uf.Body)
}

func TestImportDirectiveThreeForms(t *testing.T) {
	unit, d := parseUnit(t, `
		@import mypkg;
		@import * = thirdparty("libfoo");
		@import { a, b = c } = "local/path.sc";
	`)
	require.False(t, d.HasErrors())
	require.Len(t, unit.Nodes, 3)

	aliased, ok := unit.Nodes[0].(ast.AliasedImportDirective)
	require.True(t, ok)
	assert.Equal(t, "mypkg", aliased.Name.Text())
	assert.Equal(t, "pkg", aliased.Origin.Kind)

	full, ok := unit.Nodes[1].(ast.FullImportDirective)
	require.True(t, ok)
	assert.Equal(t, "thirdparty", full.Origin.Kind)
	assert.Equal(t, "libfoo", full.Origin.Value)

	partial, ok := unit.Nodes[2].(ast.PartialImportDirective)
	require.True(t, ok)
	require.Len(t, partial.Items, 2)
	assert.Equal(t, "local", partial.Origin.Kind)
}

func TestPointerAndArrayDeclarators(t *testing.T) {
	unit, d := parseUnit(t, "int *values[10];")
	require.False(t, d.HasErrors())
	require.Len(t, unit.Nodes, 1)
	decl, ok := unit.Nodes[0].(ast.Declaration)
	require.True(t, ok)
	outer, ok := decl.Declarator.(ast.Declarator)
	require.True(t, ok)
	require.NotNil(t, outer.Pointer)
	arr, ok := outer.DirectDeclarator.(ast.ArrayDeclarator)
	require.True(t, ok)
	require.NotNil(t, arr.SizeInitializer)
}
