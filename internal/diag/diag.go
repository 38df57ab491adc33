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

// Package diag collects and renders compiler diagnostics. A Collector is
// threaded explicitly through every phase's constructor (lexer, dparse, gen)
// rather than reached into as a global, per spec.md §9.
package diag

import (
	"fmt"

	"github.com/stackc-lang/stackc/internal/source"
)

// Severity distinguishes errors (which make the overall run fail, spec.md §6)
// from warnings (which do not).
type Severity int

const (
	Error Severity = iota
	Warning
)

func (s Severity) String() string {
	if s == Warning {
		return "warning"
	}
	return "error"
}

// Diagnostic is one reported problem: a severity, a message, and the source
// location it applies to.
type Diagnostic struct {
	Severity Severity
	Message  string
	Loc      source.Loc
}

// Collector accumulates diagnostics across a phase (or the whole run) in
// report order, per spec.md §7's "diagnostics are batched and printed after
// every phase" policy.
type Collector struct {
	diags []Diagnostic
}

// NewCollector returns an empty Collector.
func NewCollector() *Collector { return &Collector{} }

// Errorf records an error-severity diagnostic at loc.
func (c *Collector) Errorf(loc source.Loc, format string, args ...any) {
	c.add(Error, loc, format, args)
}

// Warnf records a warning-severity diagnostic at loc.
func (c *Collector) Warnf(loc source.Loc, format string, args ...any) {
	c.add(Warning, loc, format, args)
}

func (c *Collector) add(sev Severity, loc source.Loc, format string, args []any) {
	c.diags = append(c.diags, Diagnostic{Severity: sev, Message: fmt.Sprintf(format, args...), Loc: loc})
}

// HasErrors reports whether any Error-severity diagnostic was recorded.
// The driver (spec.md §6) uses this to decide the process exit code.
func (c *Collector) HasErrors() bool {
	for _, d := range c.diags {
		if d.Severity == Error {
			return true
		}
	}
	return false
}

// All returns every diagnostic recorded so far, in report order.
func (c *Collector) All() []Diagnostic { return c.diags }

// Reset clears every recorded diagnostic. Useful between driver phases that
// want to distinguish which phase produced which diagnostics while still
// reporting through one Collector instance.
func (c *Collector) Reset() { c.diags = nil }
