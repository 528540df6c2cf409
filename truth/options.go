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

package truth

import (
	"fmt"
	"runtime"

	"go.chromium.org/assertables/failure"
)

// Option modifies how a failure is reported.
type Option interface {
	truthOption()
}

type summaryModifier func(*failure.Summary)

func (summaryModifier) truthOption() {}

// LineContext adds an "at" SourceContext with the file and line of the
// caller of LineContext, plus skipFrames[0] (if provided).
//
// This is useful inside test helpers using t.Helper(), to show the line of
// the assertion in the helper alongside the line of the helper call.
//
//	check.That(t, assertables.EqAsResult(got.Name, want.Name), truth.LineContext())
func LineContext(skipFrames ...int) Option {
	if len(skipFrames) > 1 {
		panic(fmt.Errorf("truth.LineContext: skipFrames has more than one value: %v", skipFrames))
	}
	skip := 1
	if len(skipFrames) > 0 {
		skip += skipFrames[0]
	}
	_, filename, lineno, ok := runtime.Caller(skip)
	return summaryModifier(func(s *failure.Summary) {
		if !ok {
			return
		}
		s.SourceContext = append(s.SourceContext, &failure.Stack{
			Name:   "at",
			Frames: []*failure.Frame{{Filename: filename, Lineno: int64(lineno)}},
		})
	})
}

// ApplyAllOptions applies opts to summary, and returns it.
//
// A nil summary is returned as nil without applying anything.
func ApplyAllOptions(summary *failure.Summary, opts []Option) *failure.Summary {
	if summary == nil {
		return nil
	}
	for _, o := range opts {
		if m, ok := o.(summaryModifier); ok {
			m(summary)
		}
	}
	return summary
}
