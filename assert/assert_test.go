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

package assert

import (
	"errors"
	"testing"

	"go.chromium.org/assertables"
	"go.chromium.org/assertables/internal/testhelper"
	"go.chromium.org/assertables/truth"
)

func TestThat(t *testing.T) {
	t.Parallel()

	t.Run("pass", func(t *testing.T) {
		t.Parallel()

		That(t, assertables.LtAsResult(1, 2))
		That(t, nil)
	})

	t.Run("fail", func(t *testing.T) {
		t.Parallel()

		tb := testhelper.NewExpectFailure(t)
		x := 3
		That(tb, assertables.LtAsResult(x, 2))
		if !tb.CalledFailNow() {
			t.Error("expected FailNow")
		}
		tb.Check(
			"assert.That assertables.Lt[int] FAILED",
			"a label: x",
			"a debug: 3",
			"b debug: 2",
		)
	})

	t.Run("plain error", func(t *testing.T) {
		t.Parallel()

		tb := testhelper.NewExpectFailure(t)
		That(tb, errors.New("disk full"))
		tb.Check("non-nil error FAILED", "error: disk full")
	})

	t.Run("line context", func(t *testing.T) {
		t.Parallel()

		tb := testhelper.NewExpectFailure(t)
		That(tb, assertables.EqAsResult("a", "b"), truth.LineContext())
		tb.Check("(at assert_test.go:")
	})
}
