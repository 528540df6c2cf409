// Copyright 2024 The LUCI Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package failure

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/mgutz/ansi"
)

// RenderCLI renders Summaries as text suitable for a terminal or `go test`
// output.
type RenderCLI struct {
	// If true, will render all LevelInfo findings.
	//
	// Otherwise this will print an omission message which describes how long the
	// omitted value is and to pass `-v` to see it.
	Verbose bool

	// If true, will add ANSI color codes to diff findings.
	Colorize bool

	// If true, SourceContext frames are rendered with their full path instead
	// of just the base name.
	FullFilenames bool
}

func (r RenderCLI) colorLine(hint FindingTypeHint, line string) string {
	code := ""
	switch hint {
	case HintCmpDiff, HintUnifiedDiff:
		switch {
		case strings.HasPrefix(line, "--- "):
			code = ansi.LightGreen
		case strings.HasPrefix(line, "+++ "):
			code = ansi.LightRed
		case strings.HasPrefix(line, "-"):
			code = ansi.Green
		case strings.HasPrefix(line, "+"), strings.HasPrefix(line, "@@ "):
			code = ansi.Red
		}
	case HintTextDiff:
		line = strings.NewReplacer(
			"[-", ansi.Green+"[-", "-]", "-]"+ansi.Reset,
			"{+", ansi.Red+"{+", "+}", "+}"+ansi.Reset,
		).Replace(line)
	}
	if code == "" {
		return line
	}
	return code + line + ansi.Reset
}

// Finding renders a single Finding, with every line prefixed by `prefix`.
func (r RenderCLI) Finding(prefix string, f *Finding) string {
	if len(f.Value) == 0 {
		return fmt.Sprintf("%s%s [no value]", prefix, f.Name)
	}
	if len(f.Value) == 1 && len(strings.TrimSpace(f.Value[0])) == 0 && f.Value[0] != "" {
		return fmt.Sprintf("%s%s [blank one-line value]", prefix, f.Name)
	}

	if f.Level > LevelWarn && !r.Verbose {
		valLen := len(f.Value) - 1 // one per newline
		for _, line := range f.Value {
			valLen += len(line)
		}
		return fmt.Sprintf("%s%s [verbose value len=%s (pass -v to see)]",
			prefix, f.Name, humanize.Comma(int64(valLen)))
	}

	if len(f.Value) == 1 {
		line := f.Value[0]
		if r.Colorize {
			line = r.colorLine(f.Type, line)
		}
		return fmt.Sprintf("%s%s: %s", prefix, f.Name, line)
	}

	value := make([]string, len(f.Value))
	for i, line := range f.Value {
		if r.Colorize {
			line = r.colorLine(f.Type, line)
		}
		value[i] = prefix + "    " + line
	}
	return fmt.Sprintf("%s%s: \\\n%s", prefix, f.Name, strings.Join(value, "\n"))
}

func (r RenderCLI) frame(f *Frame) string {
	name := f.Filename
	if !r.FullFilenames {
		name = filepath.Base(name)
	}
	return fmt.Sprintf("%s:%d", name, f.Lineno)
}

// Summary renders the whole Summary.
//
// The first line is "<comparison>[<type args>] FAILED", followed by one line
// per source context stack and then the findings in order.
func (r RenderCLI) Summary(prefix string, s *Summary) string {
	if s == nil {
		return ""
	}
	name := s.Comparison.Name
	if name == "" {
		name = "UNKNOWN COMPARISON"
	}
	if args := s.Comparison.TypeArguments; len(args) > 0 {
		name = fmt.Sprintf("%s[%s]", name, strings.Join(args, ", "))
	}

	lines := []string{name + " FAILED"}
	for _, stk := range s.SourceContext {
		frames := make([]string, len(stk.Frames))
		for i, f := range stk.Frames {
			frames[i] = r.frame(f)
		}
		lines = append(lines, fmt.Sprintf("%s(%s %s)", prefix, stk.Name, strings.Join(frames, ", ")))
	}
	for _, f := range s.Findings {
		lines = append(lines, r.Finding(prefix, f))
	}
	return strings.Join(lines, "\n")
}
