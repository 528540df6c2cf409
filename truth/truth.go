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

// Package truth reports assertion failures through a testing.TB.
//
// Most users will use go.chromium.org/assertables/assert or
// go.chromium.org/assertables/check, which call Report:
//
//	check.That(t, assertables.LtAsResult(got, limit))
//	assert.That(t, assertables.FsReadToStringEqXAsResult(path, "hello\n"))
package truth

import (
	"flag"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"go.chromium.org/assertables/failure"
)

// TestingTB is the subset of testing.TB used by Report, assert.That and
// check.That.
type TestingTB interface {
	Helper()
	Log(args ...any)
	Fail()
	FailNow()
}

var (
	// Colorize adds ANSI colors to diffs in reported failures.
	//
	// Defaults to true if stdout is a terminal.
	Colorize = isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())

	// Verbose reports LevelInfo findings in full.
	//
	// Reports are also verbose when the test binary runs with -test.v.
	Verbose = false

	// FullSourceContextFilenames renders full paths in "at" source contexts
	// instead of base names.
	FullSourceContextFilenames = false
)

func testVerbose() bool {
	f := flag.Lookup("test.v")
	return f != nil && f.Value.String() == "true"
}

// Render renders `summary` with the current Colorize, Verbose and
// FullSourceContextFilenames settings.
func Render(summary *failure.Summary) string {
	return failure.RenderCLI{
		Verbose:       Verbose || testVerbose(),
		Colorize:      Colorize,
		FullFilenames: FullSourceContextFilenames,
	}.Summary("", summary)
}

// Report logs `summary` to `t`, prefixed with `name` (e.g. "check.That").
//
// A custom Message on the summary is logged before the rendered findings.
// Report does not fail the test.
func Report(t TestingTB, name string, summary *failure.Summary) {
	t.Helper()
	if summary.Message != "" {
		t.Log(fmt.Sprintf("%s: %s\n%s", name, summary.Message, Render(summary)))
		return
	}
	t.Log(fmt.Sprintf("%s %s", name, Render(summary)))
}

// SummaryOf returns the failure.Summary carried by err.
//
// Errors which are not summaries (e.g. a plain error returned by the code
// under test) are wrapped in a Summary with a single "error" finding. A nil
// error returns nil.
func SummaryOf(err error) *failure.Summary {
	if err == nil {
		return nil
	}
	if s, ok := failure.From(err); ok {
		return s
	}
	return &failure.Summary{
		Comparison: failure.Comparison{Name: "non-nil error"},
		Findings: []*failure.Finding{{
			Name:  "error",
			Value: []string{err.Error()},
		}},
		Cause: err,
	}
}
