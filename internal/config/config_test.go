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

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	assert.NoError(t, cfg.Validate())
}

func TestOverridesWinOverDefaults(t *testing.T) {
	cfg := Default()
	applyOverrides(cfg, &Config{
		Preprocessor: PreprocessorConfig{Path: "clang", IncludeDirs: []string{"vendor/include"}},
		Dump:         DumpConfig{Tokens: true},
	})
	assert.Equal(t, "clang", cfg.Preprocessor.Path)
	assert.Equal(t, []string{"vendor/include"}, cfg.Preprocessor.IncludeDirs)
	assert.True(t, cfg.Dump.Tokens)
	assert.False(t, cfg.Dump.Root)
}

func TestPreprocessorArgsOrdering(t *testing.T) {
	pc := PreprocessorConfig{IncludeDirs: []string{"a", "b"}, Defines: []string{"X", "Y=1"}}
	assert.Equal(t, []string{"-Ia", "-Ib", "-DX", "-DY=1"}, pc.Args())
}

func TestDumpModeIsValid(t *testing.T) {
	assert.True(t, DumpTokens.IsValid())
	assert.True(t, DumpRoot.IsValid())
	assert.True(t, DumpTab.IsValid())
	assert.False(t, DumpMode("bogus").IsValid())
}

func TestEmptyPreprocessorPathIsInvalid(t *testing.T) {
	cfg := Default()
	cfg.Preprocessor.Path = ""
	assert.Error(t, cfg.Validate())
}
