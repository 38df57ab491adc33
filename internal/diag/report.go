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

package diag

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styling follows miaomiao1992-dingo/pkg/ui/styles.go's palette approach:
// one lipgloss.Style per semantic role, composed at print time rather than
// interleaving ANSI escapes into message text by hand.
var (
	styleErrorTag   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))  // red
	styleWarningTag = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11")) // yellow
	styleLoc        = lipgloss.NewStyle().Faint(true)
)

// escapeBrackets escapes '[' and ']' in message text so it can never be
// mistaken for the renderer's own markup (spec.md §6).
func escapeBrackets(s string) string {
	r := strings.NewReplacer("[", `\[`, "]", `\]`)
	return r.Replace(s)
}

// Report prints every diagnostic in d to w as "path:line:col: severity:
// message", with the severity tag styled red for errors and yellow for
// warnings (spec.md §6).
func Report(w io.Writer, diags []Diagnostic) {
	for _, d := range diags {
		tag := styleErrorTag.Render("error:")
		if d.Severity == Warning {
			tag = styleWarningTag.Render("warning:")
		}
		fmt.Fprintf(w, "%s %s %s\n", styleLoc.Render(d.Loc.String()+":"), tag, escapeBrackets(d.Message))
	}
}
