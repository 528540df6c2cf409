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
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/mgutz/ansi"
)

func TestRenderFinding(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		render  RenderCLI
		finding *Finding
		want    string
	}{
		{
			name:    "no value",
			finding: &Finding{Name: "Because"},
			want:    "Because [no value]",
		},
		{
			name:    "blank",
			finding: &Finding{Name: "a debug", Value: []string{"   "}},
			want:    "a debug [blank one-line value]",
		},
		{
			name:    "one line",
			finding: &Finding{Name: "a label", Value: []string{"x + 1"}},
			want:    "a label: x + 1",
		},
		{
			name:    "multi line",
			finding: &Finding{Name: "a stdout", Value: []string{"one", "two"}},
			want:    "a stdout: \\\n    one\n    two",
		},
		{
			name:    "verbose omitted",
			finding: &Finding{Name: "bag(a)", Value: []string{"12345", "6789"}, Level: LevelInfo},
			want:    "bag(a) [verbose value len=10 (pass -v to see)]",
		},
		{
			name:    "verbose shown",
			render:  RenderCLI{Verbose: true},
			finding: &Finding{Name: "bag(a)", Value: []string{"map[int]int{1:3}"}, Level: LevelInfo},
			want:    "bag(a): map[int]int{1:3}",
		},
		{
			name:   "colorized diff",
			render: RenderCLI{Colorize: true},
			finding: &Finding{
				Name:  "Diff",
				Value: []string{"--- a", "+++ b", "-x", "+y", " z"},
				Type:  HintUnifiedDiff,
			},
			want: strings.Join([]string{
				"Diff: \\",
				"    " + ansi.LightGreen + "--- a" + ansi.Reset,
				"    " + ansi.LightRed + "+++ b" + ansi.Reset,
				"    " + ansi.Green + "-x" + ansi.Reset,
				"    " + ansi.Red + "+y" + ansi.Reset,
				"     z",
			}, "\n"),
		},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if diff := cmp.Diff(tt.want, tt.render.Finding("", tt.finding)); diff != "" {
				t.Errorf("unexpected diff (-want +got): %s", diff)
			}
		})
	}
}

func TestRenderSummary(t *testing.T) {
	t.Parallel()

	s := &Summary{
		Comparison: Comparison{Name: "assertables.Lt", TypeArguments: []string{"int"}},
		Findings: []*Finding{
			{Name: "Because", Value: []string{"expected a < b"}},
			{Name: "a label", Value: []string{"x"}},
			{Name: "a debug", Value: []string{"2"}},
		},
		SourceContext: []*Stack{{
			Name:   "at",
			Frames: []*Frame{{Filename: "/src/thing/thing_test.go", Lineno: 12}},
		}},
	}

	t.Run("short names", func(t *testing.T) {
		t.Parallel()
		want := strings.Join([]string{
			"assertables.Lt[int] FAILED",
			"(at thing_test.go:12)",
			"Because: expected a < b",
			"a label: x",
			"a debug: 2",
		}, "\n")
		if diff := cmp.Diff(want, RenderCLI{}.Summary("", s)); diff != "" {
			t.Errorf("unexpected diff (-want +got): %s", diff)
		}
	})

	t.Run("full names", func(t *testing.T) {
		t.Parallel()
		got := RenderCLI{FullFilenames: true}.Summary("", s)
		if !strings.Contains(got, "(at /src/thing/thing_test.go:12)") {
			t.Errorf("missing full filename in %q", got)
		}
	})

	t.Run("nil", func(t *testing.T) {
		t.Parallel()
		if got := (RenderCLI{}).Summary("", nil); got != "" {
			t.Errorf("expected empty rendering, got %q", got)
		}
	})

	t.Run("unknown", func(t *testing.T) {
		t.Parallel()
		if got := (RenderCLI{}).Summary("", &Summary{}); got != "UNKNOWN COMPARISON FAILED" {
			t.Errorf("got %q", got)
		}
	})
}

func TestSummaryError(t *testing.T) {
	t.Parallel()

	t.Run("generated", func(t *testing.T) {
		t.Parallel()
		s := &Summary{
			Comparison: Comparison{Name: "assertables.Eq"},
			Findings:   []*Finding{{Name: "x", Value: []string{"1"}, Level: LevelInfo}},
		}
		// Error() is always verbose.
		if diff := cmp.Diff("assertables.Eq FAILED\nx: 1", s.Error()); diff != "" {
			t.Errorf("unexpected diff (-want +got): %s", diff)
		}
	})

	t.Run("custom message", func(t *testing.T) {
		t.Parallel()
		s := &Summary{Comparison: Comparison{Name: "assertables.Eq"}, Message: "custom"}
		if s.Error() != "custom" {
			t.Errorf("got %q", s.Error())
		}
	})

	t.Run("nil", func(t *testing.T) {
		t.Parallel()
		var s *Summary
		if s.Error() != "" || s.Unwrap() != nil || s.Finding("x") != nil {
			t.Error("nil summary should be inert")
		}
	})

	t.Run("acquisition", func(t *testing.T) {
		t.Parallel()
		var err error = &Summary{Cause: fs.ErrNotExist}
		if !errors.Is(err, fs.ErrNotExist) {
			t.Error("errors.Is should see Cause")
		}
		if !IsAcquisition(fmt.Errorf("wrapped: %w", err)) {
			t.Error("IsAcquisition should see through wrapping")
		}
		if IsAcquisition(&Summary{}) {
			t.Error("predicate failure is not an acquisition failure")
		}
		if IsAcquisition(errors.New("plain")) {
			t.Error("plain errors are not summaries")
		}
	})
}
