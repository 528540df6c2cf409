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
	"cmp"

	"go.chromium.org/assertables/comparison"
	"go.chromium.org/assertables/failure"
)

// callResult evaluates a fallible f once. f must not be nil.
func callResult[T any](f func() (T, error)) Result[T] {
	return R(f())
}

func fnOkPair[T any](site callSite, r relation, a, b func() (T, error), pred func(T, T) bool) (T, T, *failure.Summary) {
	if s := nilFunc(site, comparison.TypeOf[T](), []string{"a", "b"}, a == nil, b == nil); s != nil {
		var zero T
		return zero, zero, s
	}
	ra, rb := callResult(a), callResult(b)
	if ra.IsOk() && rb.IsOk() && pred(ra.Value, rb.Value) {
		return ra.Value, rb.Value, nil
	}
	l := site.labels("a", "b")
	sb := site.builder(comparison.TypeOf[T]())
	if !ra.IsOk() || !rb.IsOk() {
		return ra.Value, rb.Value, variantMismatch(sb, "Ok", []string{"a", "b"}, l,
			[]any{ra, rb}, []bool{ra.IsOk(), rb.IsOk()})
	}
	return ra.Value, rb.Value, sb.Because("expected a() %s b()", r).
		Operand("a", l[0], ra).
		Operand("b", l[1], rb).
		SmartCmpDiff(ra.Value, rb.Value).Summary
}

func fnOkX[T any](site callSite, r relation, a func() (T, error), x T, pred func(T, T) bool) (T, *failure.Summary) {
	if s := nilFunc(site, comparison.TypeOf[T](), []string{"a", "x"}, a == nil); s != nil {
		var zero T
		return zero, s
	}
	ra := callResult(a)
	if ra.IsOk() && pred(ra.Value, x) {
		return ra.Value, nil
	}
	l := site.labels("a", "x")
	sb := site.builder(comparison.TypeOf[T]())
	if ra.IsOk() {
		sb.Because("expected a() %s x", r)
	} else {
		sb.Because("expected a() to be Ok")
	}
	return ra.Value, sb.Operand("a", l[0], ra).
		Operand("x", l[1], x).
		SmartCmpDiff(ra.Value, x).Summary
}

func eqPred[T comparable](r relation) func(T, T) bool {
	return func(a, b T) bool { return holdsEq(r, a, b) }
}

func ordPred[T cmp.Ordered](r relation) func(T, T) bool {
	return func(a, b T) bool { return holds(r, a, b) }
}

// FnOkEqAsResult is like FnOkEq, but returns the failure as an error instead of
// panicking.
func FnOkEqAsResult[T comparable](a, b func() (T, error)) (T, T, error) {
	va, vb, s := fnOkPair(caller("FnOkEqAsResult"), relEq, a, b, eqPred[T](relEq))
	return va, vb, result(s)
}

// FnOkEq asserts that a() and b() both succeed and their values satisfy a == b.
// It returns both values.
//
// Each function is called exactly once. If either returns an error the
// assertion fails and reports it.
func FnOkEq[T comparable](a, b func() (T, error), msg ...any) (T, T) {
	va, vb, s := fnOkPair(caller("FnOkEq"), relEq, a, b, eqPred[T](relEq))
	raise(s, msg)
	return va, vb
}

// DebugFnOkEq is FnOkEq if DebugAssertions is set, and a no-op otherwise.
func DebugFnOkEq[T comparable](a, b func() (T, error), msg ...any) {
	if DebugAssertions {
		_, _, s := fnOkPair(caller("DebugFnOkEq"), relEq, a, b, eqPred[T](relEq))
		raise(s, msg)
	}
}

// FnOkNeAsResult is like FnOkNe, but returns the failure as an error instead of
// panicking.
func FnOkNeAsResult[T comparable](a, b func() (T, error)) (T, T, error) {
	va, vb, s := fnOkPair(caller("FnOkNeAsResult"), relNe, a, b, eqPred[T](relNe))
	return va, vb, result(s)
}

// FnOkNe asserts that a() and b() both succeed and their values satisfy a != b.
// It returns both values.
func FnOkNe[T comparable](a, b func() (T, error), msg ...any) (T, T) {
	va, vb, s := fnOkPair(caller("FnOkNe"), relNe, a, b, eqPred[T](relNe))
	raise(s, msg)
	return va, vb
}

// DebugFnOkNe is FnOkNe if DebugAssertions is set, and a no-op otherwise.
func DebugFnOkNe[T comparable](a, b func() (T, error), msg ...any) {
	if DebugAssertions {
		_, _, s := fnOkPair(caller("DebugFnOkNe"), relNe, a, b, eqPred[T](relNe))
		raise(s, msg)
	}
}

// FnOkLtAsResult is like FnOkLt, but returns the failure as an error instead of
// panicking.
func FnOkLtAsResult[T cmp.Ordered](a, b func() (T, error)) (T, T, error) {
	va, vb, s := fnOkPair(caller("FnOkLtAsResult"), relLt, a, b, ordPred[T](relLt))
	return va, vb, result(s)
}

// FnOkLt asserts that a() and b() both succeed and their values satisfy a < b.
// It returns both values.
func FnOkLt[T cmp.Ordered](a, b func() (T, error), msg ...any) (T, T) {
	va, vb, s := fnOkPair(caller("FnOkLt"), relLt, a, b, ordPred[T](relLt))
	raise(s, msg)
	return va, vb
}

// DebugFnOkLt is FnOkLt if DebugAssertions is set, and a no-op otherwise.
func DebugFnOkLt[T cmp.Ordered](a, b func() (T, error), msg ...any) {
	if DebugAssertions {
		_, _, s := fnOkPair(caller("DebugFnOkLt"), relLt, a, b, ordPred[T](relLt))
		raise(s, msg)
	}
}

// FnOkLeAsResult is like FnOkLe, but returns the failure as an error instead of
// panicking.
func FnOkLeAsResult[T cmp.Ordered](a, b func() (T, error)) (T, T, error) {
	va, vb, s := fnOkPair(caller("FnOkLeAsResult"), relLe, a, b, ordPred[T](relLe))
	return va, vb, result(s)
}

// FnOkLe asserts that a() and b() both succeed and their values satisfy a <= b.
// It returns both values.
func FnOkLe[T cmp.Ordered](a, b func() (T, error), msg ...any) (T, T) {
	va, vb, s := fnOkPair(caller("FnOkLe"), relLe, a, b, ordPred[T](relLe))
	raise(s, msg)
	return va, vb
}

// DebugFnOkLe is FnOkLe if DebugAssertions is set, and a no-op otherwise.
func DebugFnOkLe[T cmp.Ordered](a, b func() (T, error), msg ...any) {
	if DebugAssertions {
		_, _, s := fnOkPair(caller("DebugFnOkLe"), relLe, a, b, ordPred[T](relLe))
		raise(s, msg)
	}
}

// FnOkGtAsResult is like FnOkGt, but returns the failure as an error instead of
// panicking.
func FnOkGtAsResult[T cmp.Ordered](a, b func() (T, error)) (T, T, error) {
	va, vb, s := fnOkPair(caller("FnOkGtAsResult"), relGt, a, b, ordPred[T](relGt))
	return va, vb, result(s)
}

// FnOkGt asserts that a() and b() both succeed and their values satisfy a > b.
// It returns both values.
func FnOkGt[T cmp.Ordered](a, b func() (T, error), msg ...any) (T, T) {
	va, vb, s := fnOkPair(caller("FnOkGt"), relGt, a, b, ordPred[T](relGt))
	raise(s, msg)
	return va, vb
}

// DebugFnOkGt is FnOkGt if DebugAssertions is set, and a no-op otherwise.
func DebugFnOkGt[T cmp.Ordered](a, b func() (T, error), msg ...any) {
	if DebugAssertions {
		_, _, s := fnOkPair(caller("DebugFnOkGt"), relGt, a, b, ordPred[T](relGt))
		raise(s, msg)
	}
}

// FnOkGeAsResult is like FnOkGe, but returns the failure as an error instead of
// panicking.
func FnOkGeAsResult[T cmp.Ordered](a, b func() (T, error)) (T, T, error) {
	va, vb, s := fnOkPair(caller("FnOkGeAsResult"), relGe, a, b, ordPred[T](relGe))
	return va, vb, result(s)
}

// FnOkGe asserts that a() and b() both succeed and their values satisfy a >= b.
// It returns both values.
func FnOkGe[T cmp.Ordered](a, b func() (T, error), msg ...any) (T, T) {
	va, vb, s := fnOkPair(caller("FnOkGe"), relGe, a, b, ordPred[T](relGe))
	raise(s, msg)
	return va, vb
}

// DebugFnOkGe is FnOkGe if DebugAssertions is set, and a no-op otherwise.
func DebugFnOkGe[T cmp.Ordered](a, b func() (T, error), msg ...any) {
	if DebugAssertions {
		_, _, s := fnOkPair(caller("DebugFnOkGe"), relGe, a, b, ordPred[T](relGe))
		raise(s, msg)
	}
}

// FnOkEqXAsResult is like FnOkEqX, but returns the failure as an error instead
// of panicking.
func FnOkEqXAsResult[T comparable](a func() (T, error), x T) (T, error) {
	va, s := fnOkX(caller("FnOkEqXAsResult"), relEq, a, x, eqPred[T](relEq))
	return va, result(s)
}

// FnOkEqX asserts that a() succeeds with a value == x, and returns the value.
func FnOkEqX[T comparable](a func() (T, error), x T, msg ...any) T {
	va, s := fnOkX(caller("FnOkEqX"), relEq, a, x, eqPred[T](relEq))
	raise(s, msg)
	return va
}

// DebugFnOkEqX is FnOkEqX if DebugAssertions is set, and a no-op otherwise.
func DebugFnOkEqX[T comparable](a func() (T, error), x T, msg ...any) {
	if DebugAssertions {
		_, s := fnOkX(caller("DebugFnOkEqX"), relEq, a, x, eqPred[T](relEq))
		raise(s, msg)
	}
}

// FnOkNeXAsResult is like FnOkNeX, but returns the failure as an error instead
// of panicking.
func FnOkNeXAsResult[T comparable](a func() (T, error), x T) (T, error) {
	va, s := fnOkX(caller("FnOkNeXAsResult"), relNe, a, x, eqPred[T](relNe))
	return va, result(s)
}

// FnOkNeX asserts that a() succeeds with a value != x, and returns the value.
func FnOkNeX[T comparable](a func() (T, error), x T, msg ...any) T {
	va, s := fnOkX(caller("FnOkNeX"), relNe, a, x, eqPred[T](relNe))
	raise(s, msg)
	return va
}

// DebugFnOkNeX is FnOkNeX if DebugAssertions is set, and a no-op otherwise.
func DebugFnOkNeX[T comparable](a func() (T, error), x T, msg ...any) {
	if DebugAssertions {
		_, s := fnOkX(caller("DebugFnOkNeX"), relNe, a, x, eqPred[T](relNe))
		raise(s, msg)
	}
}

// FnOkLtXAsResult is like FnOkLtX, but returns the failure as an error instead
// of panicking.
func FnOkLtXAsResult[T cmp.Ordered](a func() (T, error), x T) (T, error) {
	va, s := fnOkX(caller("FnOkLtXAsResult"), relLt, a, x, ordPred[T](relLt))
	return va, result(s)
}

// FnOkLtX asserts that a() succeeds with a value < x, and returns the value.
func FnOkLtX[T cmp.Ordered](a func() (T, error), x T, msg ...any) T {
	va, s := fnOkX(caller("FnOkLtX"), relLt, a, x, ordPred[T](relLt))
	raise(s, msg)
	return va
}

// DebugFnOkLtX is FnOkLtX if DebugAssertions is set, and a no-op otherwise.
func DebugFnOkLtX[T cmp.Ordered](a func() (T, error), x T, msg ...any) {
	if DebugAssertions {
		_, s := fnOkX(caller("DebugFnOkLtX"), relLt, a, x, ordPred[T](relLt))
		raise(s, msg)
	}
}

// FnOkLeXAsResult is like FnOkLeX, but returns the failure as an error instead
// of panicking.
func FnOkLeXAsResult[T cmp.Ordered](a func() (T, error), x T) (T, error) {
	va, s := fnOkX(caller("FnOkLeXAsResult"), relLe, a, x, ordPred[T](relLe))
	return va, result(s)
}

// FnOkLeX asserts that a() succeeds with a value <= x, and returns the value.
func FnOkLeX[T cmp.Ordered](a func() (T, error), x T, msg ...any) T {
	va, s := fnOkX(caller("FnOkLeX"), relLe, a, x, ordPred[T](relLe))
	raise(s, msg)
	return va
}

// DebugFnOkLeX is FnOkLeX if DebugAssertions is set, and a no-op otherwise.
func DebugFnOkLeX[T cmp.Ordered](a func() (T, error), x T, msg ...any) {
	if DebugAssertions {
		_, s := fnOkX(caller("DebugFnOkLeX"), relLe, a, x, ordPred[T](relLe))
		raise(s, msg)
	}
}

// FnOkGtXAsResult is like FnOkGtX, but returns the failure as an error instead
// of panicking.
func FnOkGtXAsResult[T cmp.Ordered](a func() (T, error), x T) (T, error) {
	va, s := fnOkX(caller("FnOkGtXAsResult"), relGt, a, x, ordPred[T](relGt))
	return va, result(s)
}

// FnOkGtX asserts that a() succeeds with a value > x, and returns the value.
func FnOkGtX[T cmp.Ordered](a func() (T, error), x T, msg ...any) T {
	va, s := fnOkX(caller("FnOkGtX"), relGt, a, x, ordPred[T](relGt))
	raise(s, msg)
	return va
}

// DebugFnOkGtX is FnOkGtX if DebugAssertions is set, and a no-op otherwise.
func DebugFnOkGtX[T cmp.Ordered](a func() (T, error), x T, msg ...any) {
	if DebugAssertions {
		_, s := fnOkX(caller("DebugFnOkGtX"), relGt, a, x, ordPred[T](relGt))
		raise(s, msg)
	}
}

// FnOkGeXAsResult is like FnOkGeX, but returns the failure as an error instead
// of panicking.
func FnOkGeXAsResult[T cmp.Ordered](a func() (T, error), x T) (T, error) {
	va, s := fnOkX(caller("FnOkGeXAsResult"), relGe, a, x, ordPred[T](relGe))
	return va, result(s)
}

// FnOkGeX asserts that a() succeeds with a value >= x, and returns the value.
func FnOkGeX[T cmp.Ordered](a func() (T, error), x T, msg ...any) T {
	va, s := fnOkX(caller("FnOkGeX"), relGe, a, x, ordPred[T](relGe))
	raise(s, msg)
	return va
}

// DebugFnOkGeX is FnOkGeX if DebugAssertions is set, and a no-op otherwise.
func DebugFnOkGeX[T cmp.Ordered](a func() (T, error), x T, msg ...any) {
	if DebugAssertions {
		_, s := fnOkX(caller("DebugFnOkGeX"), relGe, a, x, ordPred[T](relGe))
		raise(s, msg)
	}
}
