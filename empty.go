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

package assertables

import (
	"go.chromium.org/assertables/failure"
)

func empty(site callSite, want bool, a any) *failure.Summary {
	n, ok := lengthOf(a)
	if ok && (n == 0) == want {
		return nil
	}
	l := site.labels("a")
	sb := site.builder()
	switch {
	case !ok:
		sb.Because("cannot take the length of %T", a)
	case want:
		sb.Because("expected a to be empty")
	default:
		sb.Because("expected a not to be empty")
	}
	sb.Operand("a", l[0], a)
	if ok {
		sb.Derived("len(a)", n)
	}
	return sb.Summary
}

// IsEmptyAsResult is like IsEmpty, but returns the failure as an error instead
// of panicking.
func IsEmptyAsResult(a any) error {
	return result(empty(caller("IsEmptyAsResult"), true, a))
}

// IsEmpty asserts that a has length zero.
//
// Strings, slices, arrays, maps, channels and values with a `Len() int` method
// have a length.
func IsEmpty(a any, msg ...any) {
	raise(empty(caller("IsEmpty"), true, a), msg)
}

// DebugIsEmpty is IsEmpty if DebugAssertions is set, and a no-op otherwise.
func DebugIsEmpty(a any, msg ...any) {
	if DebugAssertions {
		raise(empty(caller("DebugIsEmpty"), true, a), msg)
	}
}

// NotEmptyAsResult is like NotEmpty, but returns the failure as an error
// instead of panicking.
func NotEmptyAsResult(a any) error {
	return result(empty(caller("NotEmptyAsResult"), false, a))
}

// NotEmpty asserts that a has a length greater than zero.
func NotEmpty(a any, msg ...any) {
	raise(empty(caller("NotEmpty"), false, a), msg)
}

// DebugNotEmpty is NotEmpty if DebugAssertions is set, and a no-op otherwise.
func DebugNotEmpty(a any, msg ...any) {
	if DebugAssertions {
		raise(empty(caller("DebugNotEmpty"), false, a), msg)
	}
}
