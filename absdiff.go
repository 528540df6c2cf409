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
	"go.chromium.org/assertables/comparison"
	"go.chromium.org/assertables/failure"
)

func absDiffX[T Number](site callSite, r relation, a, b, x T) (T, *failure.Summary) {
	d := absDiff(a, b)
	if d.holds(r, x) {
		return d.value, nil
	}
	l := site.labels("a", "b", "x")
	return d.value, site.builder(comparison.TypeOf[T]()).
		Because("expected |a-b| %s x", r).
		Operand("a", l[0], a).
		Operand("b", l[1], b).
		Operand("x", l[2], x).
		Derived("|a-b|", d.derived()).Summary
}

// AbsDiffEqXAsResult is like AbsDiffEqX, but returns the failure as an error
// instead of panicking.
func AbsDiffEqXAsResult[T Number](a, b, x T) (T, error) {
	d, s := absDiffX(caller("AbsDiffEqXAsResult"), relEq, a, b, x)
	return d, result(s)
}

// AbsDiffEqX asserts that |a-b| == x, and returns |a-b|.
func AbsDiffEqX[T Number](a, b, x T, msg ...any) T {
	d, s := absDiffX(caller("AbsDiffEqX"), relEq, a, b, x)
	raise(s, msg)
	return d
}

// DebugAbsDiffEqX is AbsDiffEqX if DebugAssertions is set, and a no-op
// otherwise.
func DebugAbsDiffEqX[T Number](a, b, x T, msg ...any) {
	if DebugAssertions {
		_, s := absDiffX(caller("DebugAbsDiffEqX"), relEq, a, b, x)
		raise(s, msg)
	}
}

// AbsDiffNeXAsResult is like AbsDiffNeX, but returns the failure as an error
// instead of panicking.
func AbsDiffNeXAsResult[T Number](a, b, x T) (T, error) {
	d, s := absDiffX(caller("AbsDiffNeXAsResult"), relNe, a, b, x)
	return d, result(s)
}

// AbsDiffNeX asserts that |a-b| != x, and returns |a-b|.
func AbsDiffNeX[T Number](a, b, x T, msg ...any) T {
	d, s := absDiffX(caller("AbsDiffNeX"), relNe, a, b, x)
	raise(s, msg)
	return d
}

// DebugAbsDiffNeX is AbsDiffNeX if DebugAssertions is set, and a no-op
// otherwise.
func DebugAbsDiffNeX[T Number](a, b, x T, msg ...any) {
	if DebugAssertions {
		_, s := absDiffX(caller("DebugAbsDiffNeX"), relNe, a, b, x)
		raise(s, msg)
	}
}

// AbsDiffLtXAsResult is like AbsDiffLtX, but returns the failure as an error
// instead of panicking.
func AbsDiffLtXAsResult[T Number](a, b, x T) (T, error) {
	d, s := absDiffX(caller("AbsDiffLtXAsResult"), relLt, a, b, x)
	return d, result(s)
}

// AbsDiffLtX asserts that |a-b| < x, and returns |a-b|.
func AbsDiffLtX[T Number](a, b, x T, msg ...any) T {
	d, s := absDiffX(caller("AbsDiffLtX"), relLt, a, b, x)
	raise(s, msg)
	return d
}

// DebugAbsDiffLtX is AbsDiffLtX if DebugAssertions is set, and a no-op
// otherwise.
func DebugAbsDiffLtX[T Number](a, b, x T, msg ...any) {
	if DebugAssertions {
		_, s := absDiffX(caller("DebugAbsDiffLtX"), relLt, a, b, x)
		raise(s, msg)
	}
}

// AbsDiffLeXAsResult is like AbsDiffLeX, but returns the failure as an error
// instead of panicking.
func AbsDiffLeXAsResult[T Number](a, b, x T) (T, error) {
	d, s := absDiffX(caller("AbsDiffLeXAsResult"), relLe, a, b, x)
	return d, result(s)
}

// AbsDiffLeX asserts that |a-b| <= x, and returns |a-b|.
func AbsDiffLeX[T Number](a, b, x T, msg ...any) T {
	d, s := absDiffX(caller("AbsDiffLeX"), relLe, a, b, x)
	raise(s, msg)
	return d
}

// DebugAbsDiffLeX is AbsDiffLeX if DebugAssertions is set, and a no-op
// otherwise.
func DebugAbsDiffLeX[T Number](a, b, x T, msg ...any) {
	if DebugAssertions {
		_, s := absDiffX(caller("DebugAbsDiffLeX"), relLe, a, b, x)
		raise(s, msg)
	}
}

// AbsDiffGtXAsResult is like AbsDiffGtX, but returns the failure as an error
// instead of panicking.
func AbsDiffGtXAsResult[T Number](a, b, x T) (T, error) {
	d, s := absDiffX(caller("AbsDiffGtXAsResult"), relGt, a, b, x)
	return d, result(s)
}

// AbsDiffGtX asserts that |a-b| > x, and returns |a-b|.
func AbsDiffGtX[T Number](a, b, x T, msg ...any) T {
	d, s := absDiffX(caller("AbsDiffGtX"), relGt, a, b, x)
	raise(s, msg)
	return d
}

// DebugAbsDiffGtX is AbsDiffGtX if DebugAssertions is set, and a no-op
// otherwise.
func DebugAbsDiffGtX[T Number](a, b, x T, msg ...any) {
	if DebugAssertions {
		_, s := absDiffX(caller("DebugAbsDiffGtX"), relGt, a, b, x)
		raise(s, msg)
	}
}

// AbsDiffGeXAsResult is like AbsDiffGeX, but returns the failure as an error
// instead of panicking.
func AbsDiffGeXAsResult[T Number](a, b, x T) (T, error) {
	d, s := absDiffX(caller("AbsDiffGeXAsResult"), relGe, a, b, x)
	return d, result(s)
}

// AbsDiffGeX asserts that |a-b| >= x, and returns |a-b|.
func AbsDiffGeX[T Number](a, b, x T, msg ...any) T {
	d, s := absDiffX(caller("AbsDiffGeX"), relGe, a, b, x)
	raise(s, msg)
	return d
}

// DebugAbsDiffGeX is AbsDiffGeX if DebugAssertions is set, and a no-op
// otherwise.
func DebugAbsDiffGeX[T Number](a, b, x T, msg ...any) {
	if DebugAssertions {
		_, s := absDiffX(caller("DebugAbsDiffGeX"), relGe, a, b, x)
		raise(s, msg)
	}
}
