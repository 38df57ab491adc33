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
	_ "embed"
	"fmt"
	"os"
	"os/exec"

	"github.com/stackc-lang/stackc/internal/ast"
	"github.com/stackc-lang/stackc/internal/config"
	"github.com/stackc-lang/stackc/internal/diag"
	"github.com/stackc-lang/stackc/internal/dparse"
	"github.com/stackc-lang/stackc/internal/gen"
	"github.com/stackc-lang/stackc/internal/lexer"
	"github.com/stackc-lang/stackc/internal/source"
	"github.com/stackc-lang/stackc/internal/symtab"
	"github.com/stackc-lang/stackc/internal/token"
)

//go:embed sample.c
var builtinSample string

// resolveInput implements spec.md §6's "defaults to positional file or
// sample path": no positional argument, or one that looks like a flag,
// falls back to the built-in sample.
func resolveInput(args []string) (path string, useSample bool) {
	if len(args) == 0 || len(args[0]) > 0 && args[0][0] == '-' {
		return "", true
	}
	return args[0], false
}

// readSource loads either the named file or the embedded sample.
func readSource(path string, useSample bool) (name, text string, err error) {
	if useSample {
		return "sample.c", builtinSample, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", "", fmt.Errorf("reading %s: %w", path, err)
	}
	return path, string(raw), nil
}

// preprocess shells out to the external C preprocessor per spec.md §6's
// contract (`-std=c99 -nostdinc -Iinclude <src> -o <tmp>`, plus the
// config-driven -I/-D flags) and reads the result back.
func preprocess(cfg *config.Config, inputPath, rawText string) (string, error) {
	tmpIn, err := os.CreateTemp("", "stackc-in-*.c")
	if err != nil {
		return "", fmt.Errorf("creating temp input: %w", err)
	}
	defer os.Remove(tmpIn.Name())
	if _, err := tmpIn.WriteString(rawText); err != nil {
		tmpIn.Close()
		return "", fmt.Errorf("writing temp input: %w", err)
	}
	tmpIn.Close()

	tmpOut, err := os.CreateTemp("", "stackc-out-*.c")
	if err != nil {
		return "", fmt.Errorf("creating temp output: %w", err)
	}
	tmpOutPath := tmpOut.Name()
	tmpOut.Close()
	defer os.Remove(tmpOutPath)

	args := append([]string{"-std=c99", "-nostdinc", "-Iinclude"}, cfg.Preprocessor.Args()...)
	args = append(args, tmpIn.Name(), "-o", tmpOutPath)

	cmd := exec.Command(cfg.Preprocessor.Path, args...)
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("preprocessor %s failed: %w", cfg.Preprocessor.Path, err)
	}

	out, err := os.ReadFile(tmpOutPath)
	if err != nil {
		return "", fmt.Errorf("reading preprocessed output: %w", err)
	}
	_ = inputPath // retained for diagnostics location fidelity; linemarkers carry the real path
	return string(out), nil
}

// phase holds the artifacts produced by running the front end over one
// source file, enough to satisfy any of the driver's dump switches.
type phase struct {
	tokens []token.Token
	unit   *ast.MultipleNode
	table  *symtab.SymTable
	diags  *diag.Collector
}

// runFrontEnd runs lex → dparse → gen per spec.md §2's pipeline over
// already-preprocessed text, collecting every token it emits along the way
// for `dump tokens`.
func runFrontEnd(cfg *config.Config, displayName, preprocessed string) *phase {
	d := diag.NewCollector()
	buf := source.New(displayName, preprocessed)
	lx := lexer.New(buf, d)

	unit := dparse.ParseTranslationUnit(lx, d)
	tokens := relex(displayName, preprocessed)
	table := gen.Run(unit, d)

	return &phase{tokens: tokens, unit: unit, table: table, diags: d}
}

// relex re-runs the lexer alone over the same preprocessed text so `dump
// tokens` can show the raw stream independent of what dparse consumed (a
// ParsingError partway through a body must not truncate the token dump).
func relex(displayName, text string) []token.Token {
	d := diag.NewCollector()
	buf := source.New(displayName, text)
	lx := lexer.New(buf, d)
	var toks []token.Token
	for {
		tok := lx.NextToken()
		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			break
		}
	}
	return toks
}
