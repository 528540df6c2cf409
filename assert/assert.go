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

// Package assert reports a failed assertion and stops the test.
package assert

import (
	"go.chromium.org/assertables/truth"
)

// That reports `err`, typically returned from an `...AsResult` assertion,
// with truth.Report and stops the test with t.FailNow().
//
// A nil err does nothing.
//
// Example: `assert.That(t, assertables.LenEqXAsResult(items, 3))`
func That(t truth.TestingTB, err error, opts ...truth.Option) {
	if summary := truth.ApplyAllOptions(truth.SummaryOf(err), opts); summary != nil {
		t.Helper()
		truth.Report(t, "assert.That", summary)
		t.FailNow()
	}
}
