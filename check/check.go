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

// Package check reports a failed assertion and lets the test continue.
package check

import (
	"go.chromium.org/assertables/truth"
)

// That reports `err`, typically returned from an `...AsResult` assertion,
// with truth.Report and marks the test failed with t.Fail().
//
// Returns true iff err is nil.
//
// Example: `check.That(t, assertables.ContainsAsResult(out, "done"))`
func That(t truth.TestingTB, err error, opts ...truth.Option) bool {
	if summary := truth.ApplyAllOptions(truth.SummaryOf(err), opts); summary != nil {
		t.Helper()
		truth.Report(t, "check.That", summary)
		t.Fail()
		return false
	}
	return true
}
