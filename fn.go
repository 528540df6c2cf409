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
	"reflect"

	"go.chromium.org/assertables/comparison"
	"go.chromium.org/assertables/failure"
)

// nilFunc fails naming the first nil function operand. params are the
// parameters of the assertion, for labels.
func nilFunc(site callSite, typ reflect.Type, params []string, nils ...bool) *failure.Summary {
	for i, isNil := range nils {
		if isNil {
			l := site.labels(params...)
			return site.builder(typ).
				Because("%s is nil", params[i]).
				AddFinding(params[i]+" label", l[i]).Summary
		}
	}
	return nil
}

func describeFnPair[T any](site callSite, r relation, va, vb T) *failure.Summary {
	l := site.labels("a", "b")
	return site.builder(comparison.TypeOf[T]()).
		Because("expected a() %s b()", r).
		Operand("a", l[0], va).
		Operand("b", l[1], vb).
		SmartCmpDiff(va, vb).Summary
}

func describeFnX[T any](site callSite, r relation, va, x T) *failure.Summary {
	l := site.labels("a", "x")
	return site.builder(comparison.TypeOf[T]()).
		Because("expected a() %s x", r).
		Operand("a", l[0], va).
		Operand("x", l[1], x).
		SmartCmpDiff(va, x).Summary
}

func fnPairEq[T comparable](site callSite, r relation, a, b func() T) (T, T, *failure.Summary) {
	if s := nilFunc(site, comparison.TypeOf[T](), []string{"a", "b"}, a == nil, b == nil); s != nil {
		var zero T
		return zero, zero, s
	}
	va, vb := a(), b()
	if holdsEq(r, va, vb) {
		return va, vb, nil
	}
	return va, vb, describeFnPair(site, r, va, vb)
}

func fnPairOrd[T cmp.Ordered](site callSite, r relation, a, b func() T) (T, T, *failure.Summary) {
	if s := nilFunc(site, comparison.TypeOf[T](), []string{"a", "b"}, a == nil, b == nil); s != nil {
		var zero T
		return zero, zero, s
	}
	va, vb := a(), b()
	if holds(r, va, vb) {
		return va, vb, nil
	}
	return va, vb, describeFnPair(site, r, va, vb)
}

func fnXEq[T comparable](site callSite, r relation, a func() T, x T) (T, *failure.Summary) {
	if s := nilFunc(site, comparison.TypeOf[T](), []string{"a", "x"}, a == nil); s != nil {
		var zero T
		return zero, s
	}
	va := a()
	if holdsEq(r, va, x) {
		return va, nil
	}
	return va, describeFnX(site, r, va, x)
}

func fnXOrd[T cmp.Ordered](site callSite, r relation, a func() T, x T) (T, *failure.Summary) {
	if s := nilFunc(site, comparison.TypeOf[T](), []string{"a", "x"}, a == nil); s != nil {
		var zero T
		return zero, s
	}
	va := a()
	if holds(r, va, x) {
		return va, nil
	}
	return va, describeFnX(site, r, va, x)
}

// FnEqAsResult is like FnEq, but returns the failure as an error instead of
// panicking.
func FnEqAsResult[T comparable](a, b func() T) (T, T, error) {
	va, vb, s := fnPairEq(caller("FnEqAsResult"), relEq, a, b)
	return va, vb, result(s)
}

// FnEq asserts that a() == b(), and returns both results.
//
// Each function is called exactly once.
func FnEq[T comparable](a, b func() T, msg ...any) (T, T) {
	va, vb, s := fnPairEq(caller("FnEq"), relEq, a, b)
	raise(s, msg)
	return va, vb
}

// DebugFnEq is FnEq if DebugAssertions is set, and a no-op otherwise.
func DebugFnEq[T comparable](a, b func() T, msg ...any) {
	if DebugAssertions {
		_, _, s := fnPairEq(caller("DebugFnEq"), relEq, a, b)
		raise(s, msg)
	}
}

// FnNeAsResult is like FnNe, but returns the failure as an error instead of
// panicking.
func FnNeAsResult[T comparable](a, b func() T) (T, T, error) {
	va, vb, s := fnPairEq(caller("FnNeAsResult"), relNe, a, b)
	return va, vb, result(s)
}

// FnNe asserts that a() != b(), and returns both results.
func FnNe[T comparable](a, b func() T, msg ...any) (T, T) {
	va, vb, s := fnPairEq(caller("FnNe"), relNe, a, b)
	raise(s, msg)
	return va, vb
}

// DebugFnNe is FnNe if DebugAssertions is set, and a no-op otherwise.
func DebugFnNe[T comparable](a, b func() T, msg ...any) {
	if DebugAssertions {
		_, _, s := fnPairEq(caller("DebugFnNe"), relNe, a, b)
		raise(s, msg)
	}
}

// FnLtAsResult is like FnLt, but returns the failure as an error instead of
// panicking.
func FnLtAsResult[T cmp.Ordered](a, b func() T) (T, T, error) {
	va, vb, s := fnPairOrd(caller("FnLtAsResult"), relLt, a, b)
	return va, vb, result(s)
}

// FnLt asserts that a() < b(), and returns both results.
func FnLt[T cmp.Ordered](a, b func() T, msg ...any) (T, T) {
	va, vb, s := fnPairOrd(caller("FnLt"), relLt, a, b)
	raise(s, msg)
	return va, vb
}

// DebugFnLt is FnLt if DebugAssertions is set, and a no-op otherwise.
func DebugFnLt[T cmp.Ordered](a, b func() T, msg ...any) {
	if DebugAssertions {
		_, _, s := fnPairOrd(caller("DebugFnLt"), relLt, a, b)
		raise(s, msg)
	}
}

// FnLeAsResult is like FnLe, but returns the failure as an error instead of
// panicking.
func FnLeAsResult[T cmp.Ordered](a, b func() T) (T, T, error) {
	va, vb, s := fnPairOrd(caller("FnLeAsResult"), relLe, a, b)
	return va, vb, result(s)
}

// FnLe asserts that a() <= b(), and returns both results.
func FnLe[T cmp.Ordered](a, b func() T, msg ...any) (T, T) {
	va, vb, s := fnPairOrd(caller("FnLe"), relLe, a, b)
	raise(s, msg)
	return va, vb
}

// DebugFnLe is FnLe if DebugAssertions is set, and a no-op otherwise.
func DebugFnLe[T cmp.Ordered](a, b func() T, msg ...any) {
	if DebugAssertions {
		_, _, s := fnPairOrd(caller("DebugFnLe"), relLe, a, b)
		raise(s, msg)
	}
}

// FnGtAsResult is like FnGt, but returns the failure as an error instead of
// panicking.
func FnGtAsResult[T cmp.Ordered](a, b func() T) (T, T, error) {
	va, vb, s := fnPairOrd(caller("FnGtAsResult"), relGt, a, b)
	return va, vb, result(s)
}

// FnGt asserts that a() > b(), and returns both results.
func FnGt[T cmp.Ordered](a, b func() T, msg ...any) (T, T) {
	va, vb, s := fnPairOrd(caller("FnGt"), relGt, a, b)
	raise(s, msg)
	return va, vb
}

// DebugFnGt is FnGt if DebugAssertions is set, and a no-op otherwise.
func DebugFnGt[T cmp.Ordered](a, b func() T, msg ...any) {
	if DebugAssertions {
		_, _, s := fnPairOrd(caller("DebugFnGt"), relGt, a, b)
		raise(s, msg)
	}
}

// FnGeAsResult is like FnGe, but returns the failure as an error instead of
// panicking.
func FnGeAsResult[T cmp.Ordered](a, b func() T) (T, T, error) {
	va, vb, s := fnPairOrd(caller("FnGeAsResult"), relGe, a, b)
	return va, vb, result(s)
}

// FnGe asserts that a() >= b(), and returns both results.
func FnGe[T cmp.Ordered](a, b func() T, msg ...any) (T, T) {
	va, vb, s := fnPairOrd(caller("FnGe"), relGe, a, b)
	raise(s, msg)
	return va, vb
}

// DebugFnGe is FnGe if DebugAssertions is set, and a no-op otherwise.
func DebugFnGe[T cmp.Ordered](a, b func() T, msg ...any) {
	if DebugAssertions {
		_, _, s := fnPairOrd(caller("DebugFnGe"), relGe, a, b)
		raise(s, msg)
	}
}

// FnEqXAsResult is like FnEqX, but returns the failure as an error instead of
// panicking.
func FnEqXAsResult[T comparable](a func() T, x T) (T, error) {
	va, s := fnXEq(caller("FnEqXAsResult"), relEq, a, x)
	return va, result(s)
}

// FnEqX asserts that a() == x, and returns a().
func FnEqX[T comparable](a func() T, x T, msg ...any) T {
	va, s := fnXEq(caller("FnEqX"), relEq, a, x)
	raise(s, msg)
	return va
}

// DebugFnEqX is FnEqX if DebugAssertions is set, and a no-op otherwise.
func DebugFnEqX[T comparable](a func() T, x T, msg ...any) {
	if DebugAssertions {
		_, s := fnXEq(caller("DebugFnEqX"), relEq, a, x)
		raise(s, msg)
	}
}

// FnNeXAsResult is like FnNeX, but returns the failure as an error instead of
// panicking.
func FnNeXAsResult[T comparable](a func() T, x T) (T, error) {
	va, s := fnXEq(caller("FnNeXAsResult"), relNe, a, x)
	return va, result(s)
}

// FnNeX asserts that a() != x, and returns a().
func FnNeX[T comparable](a func() T, x T, msg ...any) T {
	va, s := fnXEq(caller("FnNeX"), relNe, a, x)
	raise(s, msg)
	return va
}

// DebugFnNeX is FnNeX if DebugAssertions is set, and a no-op otherwise.
func DebugFnNeX[T comparable](a func() T, x T, msg ...any) {
	if DebugAssertions {
		_, s := fnXEq(caller("DebugFnNeX"), relNe, a, x)
		raise(s, msg)
	}
}

// FnLtXAsResult is like FnLtX, but returns the failure as an error instead of
// panicking.
func FnLtXAsResult[T cmp.Ordered](a func() T, x T) (T, error) {
	va, s := fnXOrd(caller("FnLtXAsResult"), relLt, a, x)
	return va, result(s)
}

// FnLtX asserts that a() < x, and returns a().
func FnLtX[T cmp.Ordered](a func() T, x T, msg ...any) T {
	va, s := fnXOrd(caller("FnLtX"), relLt, a, x)
	raise(s, msg)
	return va
}

// DebugFnLtX is FnLtX if DebugAssertions is set, and a no-op otherwise.
func DebugFnLtX[T cmp.Ordered](a func() T, x T, msg ...any) {
	if DebugAssertions {
		_, s := fnXOrd(caller("DebugFnLtX"), relLt, a, x)
		raise(s, msg)
	}
}

// FnLeXAsResult is like FnLeX, but returns the failure as an error instead of
// panicking.
func FnLeXAsResult[T cmp.Ordered](a func() T, x T) (T, error) {
	va, s := fnXOrd(caller("FnLeXAsResult"), relLe, a, x)
	return va, result(s)
}

// FnLeX asserts that a() <= x, and returns a().
func FnLeX[T cmp.Ordered](a func() T, x T, msg ...any) T {
	va, s := fnXOrd(caller("FnLeX"), relLe, a, x)
	raise(s, msg)
	return va
}

// DebugFnLeX is FnLeX if DebugAssertions is set, and a no-op otherwise.
func DebugFnLeX[T cmp.Ordered](a func() T, x T, msg ...any) {
	if DebugAssertions {
		_, s := fnXOrd(caller("DebugFnLeX"), relLe, a, x)
		raise(s, msg)
	}
}

// FnGtXAsResult is like FnGtX, but returns the failure as an error instead of
// panicking.
func FnGtXAsResult[T cmp.Ordered](a func() T, x T) (T, error) {
	va, s := fnXOrd(caller("FnGtXAsResult"), relGt, a, x)
	return va, result(s)
}

// FnGtX asserts that a() > x, and returns a().
func FnGtX[T cmp.Ordered](a func() T, x T, msg ...any) T {
	va, s := fnXOrd(caller("FnGtX"), relGt, a, x)
	raise(s, msg)
	return va
}

// DebugFnGtX is FnGtX if DebugAssertions is set, and a no-op otherwise.
func DebugFnGtX[T cmp.Ordered](a func() T, x T, msg ...any) {
	if DebugAssertions {
		_, s := fnXOrd(caller("DebugFnGtX"), relGt, a, x)
		raise(s, msg)
	}
}

// FnGeXAsResult is like FnGeX, but returns the failure as an error instead of
// panicking.
func FnGeXAsResult[T cmp.Ordered](a func() T, x T) (T, error) {
	va, s := fnXOrd(caller("FnGeXAsResult"), relGe, a, x)
	return va, result(s)
}

// FnGeX asserts that a() >= x, and returns a().
func FnGeX[T cmp.Ordered](a func() T, x T, msg ...any) T {
	va, s := fnXOrd(caller("FnGeX"), relGe, a, x)
	raise(s, msg)
	return va
}

// DebugFnGeX is FnGeX if DebugAssertions is set, and a no-op otherwise.
func DebugFnGeX[T cmp.Ordered](a func() T, x T, msg ...any) {
	if DebugAssertions {
		_, s := fnXOrd(caller("DebugFnGeX"), relGe, a, x)
		raise(s, msg)
	}
}
