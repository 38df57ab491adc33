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

// Package config provides configuration loading for the stackc driver.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// DumpMode names one of the driver's dump switches (spec.md §6).
type DumpMode string

const (
	DumpTokens DumpMode = "tokens"
	DumpRoot   DumpMode = "root"
	DumpTab    DumpMode = "tab"
)

// IsValid reports whether m is one of the recognized dump modes.
func (m DumpMode) IsValid() bool {
	switch m {
	case DumpTokens, DumpRoot, DumpTab:
		return true
	default:
		return false
	}
}

// Config is the complete stackc project configuration.
type Config struct {
	Preprocessor PreprocessorConfig `toml:"preprocessor"`
	Dump         DumpConfig         `toml:"dump"`
}

// PreprocessorConfig holds the flags passed through to the external C
// preprocessor shell-out (spec.md §6's "-std=c99 -nostdinc -Iinclude" contract).
type PreprocessorConfig struct {
	// IncludeDirs are passed as repeated -I flags.
	IncludeDirs []string `toml:"include_dirs"`
	// Defines are passed as repeated -D flags, each already in "NAME" or
	// "NAME=VALUE" form.
	Defines []string `toml:"defines"`
	// Path is the preprocessor executable to shell out to.
	Path string `toml:"path"`
}

// DumpConfig controls which dump switches (spec.md §6) are on by default;
// a CLI flag of the same name can turn a switch on but not off.
type DumpConfig struct {
	Tokens bool `toml:"tokens"`
	Root   bool `toml:"root"`
	Tab    bool `toml:"tab"`
}

// Default returns the built-in configuration used when no config file is
// present and no flags override it.
func Default() *Config {
	return &Config{
		Preprocessor: PreprocessorConfig{
			Path: "cc",
		},
	}
}

// Load reads stackc.toml from the current directory over the defaults. A
// missing file is not an error. overrides, when non-nil, is applied last so
// non-empty CLI values win over both the file and the defaults; a dump switch
// set in the file stays on even when its flag is false.
func Load(overrides *Config) (*Config, error) {
	cfg := Default()

	if err := loadFile(filepath.Join(".", "stackc.toml"), cfg); err != nil {
		return nil, fmt.Errorf("loading stackc.toml: %w", err)
	}

	if overrides != nil {
		applyOverrides(cfg, overrides)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	_, err := toml.DecodeFile(path, cfg)
	return err
}

func applyOverrides(cfg *Config, overrides *Config) {
	if len(overrides.Preprocessor.IncludeDirs) > 0 {
		cfg.Preprocessor.IncludeDirs = overrides.Preprocessor.IncludeDirs
	}
	if len(overrides.Preprocessor.Defines) > 0 {
		cfg.Preprocessor.Defines = overrides.Preprocessor.Defines
	}
	if overrides.Preprocessor.Path != "" {
		cfg.Preprocessor.Path = overrides.Preprocessor.Path
	}
	if overrides.Dump.Tokens {
		cfg.Dump.Tokens = true
	}
	if overrides.Dump.Root {
		cfg.Dump.Root = true
	}
	if overrides.Dump.Tab {
		cfg.Dump.Tab = true
	}
}

// Validate checks that cfg is internally consistent.
func (c *Config) Validate() error {
	if c.Preprocessor.Path == "" {
		return fmt.Errorf("preprocessor.path must not be empty")
	}
	return nil
}

// Args builds the positional flag list for the external preprocessor
// invocation: -I for each include dir, -D for each define, in config order.
func (c *PreprocessorConfig) Args() []string {
	var args []string
	for _, dir := range c.IncludeDirs {
		args = append(args, "-I"+dir)
	}
	for _, def := range c.Defines {
		args = append(args, "-D"+def)
	}
	return args
}
