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

func describePair(site callSite, typ reflect.Type, r relation, a, b any) *failure.Summary {
	l := site.labels("a", "b")
	return site.builder(typ).
		Because("expected a %s b", r).
		Operand("a", l[0], a).
		Operand("b", l[1], b).
		SmartCmpDiff(a, b).Summary
}

func compareEq[T comparable](site callSite, r relation, a, b T) *failure.Summary {
	if holdsEq(r, a, b) {
		return nil
	}
	return describePair(site, comparison.TypeOf[T](), r, a, b)
}

func compareOrd[T cmp.Ordered](site callSite, r relation, a, b T) *failure.Summary {
	if holds(r, a, b) {
		return nil
	}
	return describePair(site, comparison.TypeOf[T](), r, a, b)
}

// EqAsResult is like Eq, but returns the failure as an error instead of
// panicking.
func EqAsResult[T comparable](a, b T) error {
	return result(compareEq(caller("EqAsResult"), relEq, a, b))
}

// Eq asserts that a == b.
//
// On failure both operands are reported, with a diff if either is long.
func Eq[T comparable](a, b T, msg ...any) {
	raise(compareEq(caller("Eq"), relEq, a, b), msg)
}

// DebugEq is Eq if DebugAssertions is set, and a no-op otherwise.
func DebugEq[T comparable](a, b T, msg ...any) {
	if DebugAssertions {
		raise(compareEq(caller("DebugEq"), relEq, a, b), msg)
	}
}

// NeAsResult is like Ne, but returns the failure as an error instead of
// panicking.
func NeAsResult[T comparable](a, b T) error {
	return result(compareEq(caller("NeAsResult"), relNe, a, b))
}

// Ne asserts that a != b.
func Ne[T comparable](a, b T, msg ...any) {
	raise(compareEq(caller("Ne"), relNe, a, b), msg)
}

// DebugNe is Ne if DebugAssertions is set, and a no-op otherwise.
func DebugNe[T comparable](a, b T, msg ...any) {
	if DebugAssertions {
		raise(compareEq(caller("DebugNe"), relNe, a, b), msg)
	}
}

// LtAsResult is like Lt, but returns the failure as an error instead of
// panicking.
func LtAsResult[T cmp.Ordered](a, b T) error {
	return result(compareOrd(caller("LtAsResult"), relLt, a, b))
}

// Lt asserts that a < b.
//
// Floating point NaN is never less than anything.
func Lt[T cmp.Ordered](a, b T, msg ...any) {
	raise(compareOrd(caller("Lt"), relLt, a, b), msg)
}

// DebugLt is Lt if DebugAssertions is set, and a no-op otherwise.
func DebugLt[T cmp.Ordered](a, b T, msg ...any) {
	if DebugAssertions {
		raise(compareOrd(caller("DebugLt"), relLt, a, b), msg)
	}
}

// LeAsResult is like Le, but returns the failure as an error instead of
// panicking.
func LeAsResult[T cmp.Ordered](a, b T) error {
	return result(compareOrd(caller("LeAsResult"), relLe, a, b))
}

// Le asserts that a <= b.
func Le[T cmp.Ordered](a, b T, msg ...any) {
	raise(compareOrd(caller("Le"), relLe, a, b), msg)
}

// DebugLe is Le if DebugAssertions is set, and a no-op otherwise.
func DebugLe[T cmp.Ordered](a, b T, msg ...any) {
	if DebugAssertions {
		raise(compareOrd(caller("DebugLe"), relLe, a, b), msg)
	}
}

// GtAsResult is like Gt, but returns the failure as an error instead of
// panicking.
func GtAsResult[T cmp.Ordered](a, b T) error {
	return result(compareOrd(caller("GtAsResult"), relGt, a, b))
}

// Gt asserts that a > b.
func Gt[T cmp.Ordered](a, b T, msg ...any) {
	raise(compareOrd(caller("Gt"), relGt, a, b), msg)
}

// DebugGt is Gt if DebugAssertions is set, and a no-op otherwise.
func DebugGt[T cmp.Ordered](a, b T, msg ...any) {
	if DebugAssertions {
		raise(compareOrd(caller("DebugGt"), relGt, a, b), msg)
	}
}

// GeAsResult is like Ge, but returns the failure as an error instead of
// panicking.
func GeAsResult[T cmp.Ordered](a, b T) error {
	return result(compareOrd(caller("GeAsResult"), relGe, a, b))
}

// Ge asserts that a >= b.
func Ge[T cmp.Ordered](a, b T, msg ...any) {
	raise(compareOrd(caller("Ge"), relGe, a, b), msg)
}

// DebugGe is Ge if DebugAssertions is set, and a no-op otherwise.
func DebugGe[T cmp.Ordered](a, b T, msg ...any) {
	if DebugAssertions {
		raise(compareOrd(caller("DebugGe"), relGe, a, b), msg)
	}
}
