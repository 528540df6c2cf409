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

// Package convey adapts assertables to goconvey's `So` assertions.
//
//	Convey("greets", t, func() {
//		So(assertables.ContainsAsResult(out, "hello"), ShouldSucceed)
//		So(func() { assertables.Lt(3, 2) }, ShouldPanicLike, "expected a < b")
//	})
package convey

import (
	"errors"
	"fmt"

	"github.com/smarty/assertions"

	"go.chromium.org/assertables/truth"
)

// ShouldSucceed expects `actual` to be the nil error returned by a passing
// `...AsResult` assertion.
//
// A failed assertion is rendered with truth.Render.
func ShouldSucceed(actual any, expected ...any) string {
	if len(expected) != 0 {
		return fmt.Sprintf("ShouldSucceed requires 0 expected values, got %d", len(expected))
	}
	if actual == nil {
		return ""
	}
	err, ok := actual.(error)
	if !ok {
		return assertions.ShouldImplement(actual, (*error)(nil))
	}
	return truth.Render(truth.SummaryOf(err))
}

// ShouldFailLike expects `actual` to be a non-nil error whose text contains
// every expected value.
//
// Each expected value is a string (substring of the error text) or an error
// (which must be in the error's chain, e.g. the Cause of an acquisition
// failure).
//
//	_, err := assertables.FsReadToStringEqXAsResult(path, "")
//	So(err, ShouldFailLike, fs.ErrNotExist)
//	So(assertables.LtAsResult(3, 2), ShouldFailLike, "a debug: 3", "b debug: 2")
func ShouldFailLike(actual any, expected ...any) string {
	if actual == nil {
		return assertions.ShouldNotBeNil(actual)
	}
	err, ok := actual.(error)
	if !ok {
		return assertions.ShouldImplement(actual, (*error)(nil))
	}
	for _, exp := range expected {
		switch x := exp.(type) {
		case string:
			if msg := assertions.ShouldContainSubstring(err.Error(), x); msg != "" {
				return msg
			}
		case error:
			if !errors.Is(err, x) {
				return fmt.Sprintf("Expected error chain of %q to contain %q.", err, x)
			}
		default:
			return fmt.Sprintf("unexpected argument type %T, expected string or error", exp)
		}
	}
	return ""
}

// ShouldPanicLike is ShouldFailLike for a func() which should panic with a
// failed assertion, such as the panicking tier of an assertion.
func ShouldPanicLike(function any, expected ...any) (ret string) {
	f, ok := function.(func())
	if !ok {
		return fmt.Sprintf("unexpected argument type %T, expected `func()`", function)
	}
	defer func() {
		r := recover()
		if r == nil {
			ret = "Expected func() to panic, but it returned normally."
			return
		}
		ret = ShouldFailLike(r, expected...)
	}()
	f()
	return ""
}
