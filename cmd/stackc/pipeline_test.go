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

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveInputDefaultsToSample(t *testing.T) {
	path, useSample := resolveInput(nil)
	assert.True(t, useSample)
	assert.Empty(t, path)
}

func TestResolveInputFlagLikeArgDefaultsToSample(t *testing.T) {
	_, useSample := resolveInput([]string{"-o"})
	assert.True(t, useSample)
}

func TestResolveInputUsesPositionalArg(t *testing.T) {
	path, useSample := resolveInput([]string{"main.c"})
	assert.False(t, useSample)
	assert.Equal(t, "main.c", path)
}

func TestReadSourceReturnsBuiltinSample(t *testing.T) {
	name, text, err := readSource("", true)
	assert.NoError(t, err)
	assert.Equal(t, "sample.c", name)
	assert.Contains(t, text, "int add")
}

func TestRelexCountsEOF(t *testing.T) {
	toks := relex("t.c", "int a;")
	assert.NotEmpty(t, toks)
	assert.Equal(t, "eof", string(toks[len(toks)-1].Kind))
}
