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

package comparison

import (
	"strings"

	"github.com/google/go-cmp/cmp"
	"github.com/pmezard/go-difflib/difflib"
	"github.com/sergi/go-diff/diffmatchpatch"

	"go.chromium.org/assertables/failure"
	"go.chromium.org/assertables/internal/typed"
)

func splitDiff(diff string) []string {
	return strings.Split(strings.TrimRight(diff, "\n"), "\n")
}

// AddCmpDiff adds a "Diff" finding which is type hinted to be the output of
// cmp.Diff.
//
// The diff is split into multiple lines, but is otherwise untouched.
func (sb *SummaryBuilder) AddCmpDiff(diff string) *SummaryBuilder {
	if diff == "" {
		return sb
	}
	return sb.add("Diff", failure.LevelWarn, failure.HintCmpDiff, splitDiff(diff)...)
}

// AddUnifiedDiff adds a "Diff" finding with a unified line diff of two
// multi-line strings.
func (sb *SummaryBuilder) AddUnifiedDiff(aName, a, bName, b string) *SummaryBuilder {
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(a),
		B:        difflib.SplitLines(b),
		FromFile: aName,
		ToFile:   bName,
		Context:  3,
	})
	if err != nil || diff == "" {
		return sb
	}
	return sb.add("Diff", failure.LevelWarn, failure.HintUnifiedDiff, splitDiff(diff)...)
}

// TextDiff renders a character diff of `a` and `b`, marking text only in `a`
// as [-text-] and text only in `b` as {+text+}.
func TextDiff(a, b string) string {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffCleanupSemantic(dmp.DiffMain(a, b, false))

	var buf strings.Builder
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			buf.WriteString("[-" + d.Text + "-]")
		case diffmatchpatch.DiffInsert:
			buf.WriteString("{+" + d.Text + "+}")
		default:
			buf.WriteString(d.Text)
		}
	}
	return buf.String()
}

// AddTextDiff adds a "Diff" finding with an inline character diff of two
// single-line strings.
func (sb *SummaryBuilder) AddTextDiff(a, b string) *SummaryBuilder {
	if a == b {
		return sb
	}
	return sb.add("Diff", failure.LevelWarn, failure.HintTextDiff, TextDiff(a, b))
}

// SmartStringDiff adds a diff of two strings if either of them is long.
//
// Multi-line strings get a unified diff, long single-line strings get an
// inline character diff.
func (sb *SummaryBuilder) SmartStringDiff(aName, a, bName, b string) *SummaryBuilder {
	long := func(s string) bool { return isLong(s) || isLong(Debug(s)) }
	if a == b || (!long(a) && !long(b)) {
		return sb
	}
	if strings.Contains(a, "\n") || strings.Contains(b, "\n") {
		return sb.AddUnifiedDiff(aName, a, bName, b)
	}
	return sb.AddTextDiff(a, b)
}

// SmartCmpDiff adds a diff of `a` and `b` if either debug rendering is long.
//
// Strings are handled by SmartStringDiff. Other values use cmp.Diff with the
// default options from the registry plus extraCmpOpts.
func (sb *SummaryBuilder) SmartCmpDiff(a, b any, extraCmpOpts ...cmp.Option) *SummaryBuilder {
	as, aok := a.(string)
	bs, bok := b.(string)
	if aok && bok {
		return sb.SmartStringDiff("a", as, "b", bs)
	}
	if !isLong(Debug(a)) && !isLong(Debug(b)) {
		return sb
	}
	return sb.AddCmpDiff(typed.Diff(a, b, extraCmpOpts...))
}
