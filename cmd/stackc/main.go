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

// Package main implements the stackc front-end driver.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/stackc-lang/stackc/internal/config"
	"github.com/stackc-lang/stackc/internal/diag"
)

func main() {
	root := rootCmd()
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var dumpTokens, dumpRootFlag, dumpTab bool
	var includeDirs, defines []string
	var ppPath string

	cmd := &cobra.Command{
		Use:          "stackc [input-file]",
		Short:        "Compile stackc sources to MIR",
		SilenceUsage: true,
		Args:         cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			overrides := &config.Config{
				Preprocessor: config.PreprocessorConfig{IncludeDirs: includeDirs, Defines: defines, Path: ppPath},
				Dump:         config.DumpConfig{Tokens: dumpTokens, Root: dumpRootFlag, Tab: dumpTab},
			}
			return runBuild(args, overrides)
		},
	}

	addCommonFlags(cmd, &dumpTokens, &dumpRootFlag, &dumpTab, &includeDirs, &defines, &ppPath)
	cmd.AddCommand(buildCmd())
	cmd.AddCommand(dumpCmd())
	return cmd
}

func addCommonFlags(cmd *cobra.Command, dumpTokens, dumpRootFlag, dumpTab *bool, includeDirs, defines *[]string, ppPath *string) {
	cmd.Flags().BoolVar(dumpTokens, "dump-tokens", false, "print the lexed token stream")
	cmd.Flags().BoolVar(dumpRootFlag, "dump-root", false, "print the parsed translation unit")
	cmd.Flags().BoolVar(dumpTab, "dump-tab", false, "print the resolved symbol table")
	cmd.Flags().StringArrayVarP(includeDirs, "include", "I", nil, "preprocessor include directory (repeatable)")
	cmd.Flags().StringArrayVarP(defines, "define", "D", nil, "preprocessor macro definition (repeatable)")
	cmd.Flags().StringVar(ppPath, "preprocessor", "", "preprocessor executable to shell out to")
}

// buildCmd is an explicit alias for the root command's default build
// behavior, so `stackc build file.c` and `stackc file.c` are equivalent
// (spec.md §6: "build <file> [flags] (default command when no subcommand
// named)").
func buildCmd() *cobra.Command {
	var dumpTokens, dumpRootFlag, dumpTab bool
	var includeDirs, defines []string
	var ppPath string

	cmd := &cobra.Command{
		Use:   "build [input-file]",
		Short: "Compile a stackc source file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			overrides := &config.Config{
				Preprocessor: config.PreprocessorConfig{IncludeDirs: includeDirs, Defines: defines, Path: ppPath},
				Dump:         config.DumpConfig{Tokens: dumpTokens, Root: dumpRootFlag, Tab: dumpTab},
			}
			return runBuild(args, overrides)
		},
	}
	addCommonFlags(cmd, &dumpTokens, &dumpRootFlag, &dumpTab, &includeDirs, &defines, &ppPath)
	return cmd
}

// dumpCmd groups the three dump switches named in spec.md §6 as
// subcommands: `stackc dump tokens|root|tab <file>`.
func dumpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dump {tokens|root|tab} [input-file]",
		Short: "Run the front end and print one stage's output",
	}
	cmd.AddCommand(dumpModeCmd(config.DumpTokens))
	cmd.AddCommand(dumpModeCmd(config.DumpRoot))
	cmd.AddCommand(dumpModeCmd(config.DumpTab))
	return cmd
}

func dumpModeCmd(mode config.DumpMode) *cobra.Command {
	return &cobra.Command{
		Use:   string(mode) + " [input-file]",
		Short: fmt.Sprintf("print the %s dump", mode),
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			overrides := &config.Config{Dump: dumpConfigFor(mode)}
			return runBuild(args, overrides)
		},
	}
}

func dumpConfigFor(mode config.DumpMode) config.DumpConfig {
	switch mode {
	case config.DumpTokens:
		return config.DumpConfig{Tokens: true}
	case config.DumpRoot:
		return config.DumpConfig{Root: true}
	case config.DumpTab:
		return config.DumpConfig{Tab: true}
	default:
		return config.DumpConfig{}
	}
}

// runBuild is the shared entry point for every subcommand: resolve the
// input, preprocess, run the front end, render diagnostics and any
// requested dumps, and set the process exit code per spec.md §6 (nonzero on
// any error-severity diagnostic or nonzero preprocessor exit).
func runBuild(args []string, overrides *config.Config) error {
	path, useSample := resolveInput(args)

	cfg, err := config.Load(overrides)
	if err != nil {
		return err
	}

	name, text, err := readSource(path, useSample)
	if err != nil {
		return err
	}

	preprocessed, err := preprocess(cfg, name, text)
	if err != nil {
		return err
	}

	p := runFrontEnd(cfg, name, preprocessed)
	diag.Report(os.Stdout, p.diags.All())
	dumpAll(os.Stdout, cfg, p)

	if p.diags.HasErrors() {
		return fmt.Errorf("%s: compilation failed", name)
	}
	return nil
}
