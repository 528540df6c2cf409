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

func lenPair(site callSite, r relation, a, b any) (int, int, *failure.Summary) {
	la, aok := lengthOf(a)
	lb, bok := lengthOf(b)
	if aok && bok && holds(r, la, lb) {
		return la, lb, nil
	}
	l := site.labels("a", "b")
	sb := site.builder()
	switch {
	case !aok:
		sb.Because("cannot take the length of %T", a)
	case !bok:
		sb.Because("cannot take the length of %T", b)
	default:
		sb.Because("expected len(a) %s len(b)", r)
	}
	sb.Operand("a", l[0], a).Operand("b", l[1], b)
	if aok {
		sb.Derived("len(a)", la)
	}
	if bok {
		sb.Derived("len(b)", lb)
	}
	return la, lb, sb.Summary
}

func lenX(site callSite, r relation, a any, x int) (int, *failure.Summary) {
	la, ok := lengthOf(a)
	if ok && holds(r, la, x) {
		return la, nil
	}
	l := site.labels("a", "x")
	sb := site.builder()
	if ok {
		sb.Because("expected len(a) %s x", r)
	} else {
		sb.Because("cannot take the length of %T", a)
	}
	sb.Operand("a", l[0], a).Operand("x", l[1], x)
	if ok {
		sb.Derived("len(a)", la)
	}
	return la, sb.Summary
}

// LenEqAsResult is like LenEq, but returns the failure as an error instead of
// panicking.
func LenEqAsResult(a, b any) (int, int, error) {
	la, lb, s := lenPair(caller("LenEqAsResult"), relEq, a, b)
	return la, lb, result(s)
}

// LenEq asserts that len(a) == len(b), and returns both lengths.
//
// Operands may be of different kinds, e.g. a string and a slice. See IsEmpty
// for which values have a length.
func LenEq(a, b any, msg ...any) (int, int) {
	la, lb, s := lenPair(caller("LenEq"), relEq, a, b)
	raise(s, msg)
	return la, lb
}

// DebugLenEq is LenEq if DebugAssertions is set, and a no-op otherwise.
func DebugLenEq(a, b any, msg ...any) {
	if DebugAssertions {
		_, _, s := lenPair(caller("DebugLenEq"), relEq, a, b)
		raise(s, msg)
	}
}

// LenNeAsResult is like LenNe, but returns the failure as an error instead of
// panicking.
func LenNeAsResult(a, b any) (int, int, error) {
	la, lb, s := lenPair(caller("LenNeAsResult"), relNe, a, b)
	return la, lb, result(s)
}

// LenNe asserts that len(a) != len(b), and returns both lengths.
func LenNe(a, b any, msg ...any) (int, int) {
	la, lb, s := lenPair(caller("LenNe"), relNe, a, b)
	raise(s, msg)
	return la, lb
}

// DebugLenNe is LenNe if DebugAssertions is set, and a no-op otherwise.
func DebugLenNe(a, b any, msg ...any) {
	if DebugAssertions {
		_, _, s := lenPair(caller("DebugLenNe"), relNe, a, b)
		raise(s, msg)
	}
}

// LenLtAsResult is like LenLt, but returns the failure as an error instead of
// panicking.
func LenLtAsResult(a, b any) (int, int, error) {
	la, lb, s := lenPair(caller("LenLtAsResult"), relLt, a, b)
	return la, lb, result(s)
}

// LenLt asserts that len(a) < len(b), and returns both lengths.
func LenLt(a, b any, msg ...any) (int, int) {
	la, lb, s := lenPair(caller("LenLt"), relLt, a, b)
	raise(s, msg)
	return la, lb
}

// DebugLenLt is LenLt if DebugAssertions is set, and a no-op otherwise.
func DebugLenLt(a, b any, msg ...any) {
	if DebugAssertions {
		_, _, s := lenPair(caller("DebugLenLt"), relLt, a, b)
		raise(s, msg)
	}
}

// LenLeAsResult is like LenLe, but returns the failure as an error instead of
// panicking.
func LenLeAsResult(a, b any) (int, int, error) {
	la, lb, s := lenPair(caller("LenLeAsResult"), relLe, a, b)
	return la, lb, result(s)
}

// LenLe asserts that len(a) <= len(b), and returns both lengths.
func LenLe(a, b any, msg ...any) (int, int) {
	la, lb, s := lenPair(caller("LenLe"), relLe, a, b)
	raise(s, msg)
	return la, lb
}

// DebugLenLe is LenLe if DebugAssertions is set, and a no-op otherwise.
func DebugLenLe(a, b any, msg ...any) {
	if DebugAssertions {
		_, _, s := lenPair(caller("DebugLenLe"), relLe, a, b)
		raise(s, msg)
	}
}

// LenGtAsResult is like LenGt, but returns the failure as an error instead of
// panicking.
func LenGtAsResult(a, b any) (int, int, error) {
	la, lb, s := lenPair(caller("LenGtAsResult"), relGt, a, b)
	return la, lb, result(s)
}

// LenGt asserts that len(a) > len(b), and returns both lengths.
func LenGt(a, b any, msg ...any) (int, int) {
	la, lb, s := lenPair(caller("LenGt"), relGt, a, b)
	raise(s, msg)
	return la, lb
}

// DebugLenGt is LenGt if DebugAssertions is set, and a no-op otherwise.
func DebugLenGt(a, b any, msg ...any) {
	if DebugAssertions {
		_, _, s := lenPair(caller("DebugLenGt"), relGt, a, b)
		raise(s, msg)
	}
}

// LenGeAsResult is like LenGe, but returns the failure as an error instead of
// panicking.
func LenGeAsResult(a, b any) (int, int, error) {
	la, lb, s := lenPair(caller("LenGeAsResult"), relGe, a, b)
	return la, lb, result(s)
}

// LenGe asserts that len(a) >= len(b), and returns both lengths.
func LenGe(a, b any, msg ...any) (int, int) {
	la, lb, s := lenPair(caller("LenGe"), relGe, a, b)
	raise(s, msg)
	return la, lb
}

// DebugLenGe is LenGe if DebugAssertions is set, and a no-op otherwise.
func DebugLenGe(a, b any, msg ...any) {
	if DebugAssertions {
		_, _, s := lenPair(caller("DebugLenGe"), relGe, a, b)
		raise(s, msg)
	}
}

// LenEqXAsResult is like LenEqX, but returns the failure as an error instead of
// panicking.
func LenEqXAsResult(a any, x int) (int, error) {
	la, s := lenX(caller("LenEqXAsResult"), relEq, a, x)
	return la, result(s)
}

// LenEqX asserts that len(a) == x, and returns len(a).
func LenEqX(a any, x int, msg ...any) int {
	la, s := lenX(caller("LenEqX"), relEq, a, x)
	raise(s, msg)
	return la
}

// DebugLenEqX is LenEqX if DebugAssertions is set, and a no-op otherwise.
func DebugLenEqX(a any, x int, msg ...any) {
	if DebugAssertions {
		_, s := lenX(caller("DebugLenEqX"), relEq, a, x)
		raise(s, msg)
	}
}

// LenNeXAsResult is like LenNeX, but returns the failure as an error instead of
// panicking.
func LenNeXAsResult(a any, x int) (int, error) {
	la, s := lenX(caller("LenNeXAsResult"), relNe, a, x)
	return la, result(s)
}

// LenNeX asserts that len(a) != x, and returns len(a).
func LenNeX(a any, x int, msg ...any) int {
	la, s := lenX(caller("LenNeX"), relNe, a, x)
	raise(s, msg)
	return la
}

// DebugLenNeX is LenNeX if DebugAssertions is set, and a no-op otherwise.
func DebugLenNeX(a any, x int, msg ...any) {
	if DebugAssertions {
		_, s := lenX(caller("DebugLenNeX"), relNe, a, x)
		raise(s, msg)
	}
}

// LenLtXAsResult is like LenLtX, but returns the failure as an error instead of
// panicking.
func LenLtXAsResult(a any, x int) (int, error) {
	la, s := lenX(caller("LenLtXAsResult"), relLt, a, x)
	return la, result(s)
}

// LenLtX asserts that len(a) < x, and returns len(a).
func LenLtX(a any, x int, msg ...any) int {
	la, s := lenX(caller("LenLtX"), relLt, a, x)
	raise(s, msg)
	return la
}

// DebugLenLtX is LenLtX if DebugAssertions is set, and a no-op otherwise.
func DebugLenLtX(a any, x int, msg ...any) {
	if DebugAssertions {
		_, s := lenX(caller("DebugLenLtX"), relLt, a, x)
		raise(s, msg)
	}
}

// LenLeXAsResult is like LenLeX, but returns the failure as an error instead of
// panicking.
func LenLeXAsResult(a any, x int) (int, error) {
	la, s := lenX(caller("LenLeXAsResult"), relLe, a, x)
	return la, result(s)
}

// LenLeX asserts that len(a) <= x, and returns len(a).
func LenLeX(a any, x int, msg ...any) int {
	la, s := lenX(caller("LenLeX"), relLe, a, x)
	raise(s, msg)
	return la
}

// DebugLenLeX is LenLeX if DebugAssertions is set, and a no-op otherwise.
func DebugLenLeX(a any, x int, msg ...any) {
	if DebugAssertions {
		_, s := lenX(caller("DebugLenLeX"), relLe, a, x)
		raise(s, msg)
	}
}

// LenGtXAsResult is like LenGtX, but returns the failure as an error instead of
// panicking.
func LenGtXAsResult(a any, x int) (int, error) {
	la, s := lenX(caller("LenGtXAsResult"), relGt, a, x)
	return la, result(s)
}

// LenGtX asserts that len(a) > x, and returns len(a).
func LenGtX(a any, x int, msg ...any) int {
	la, s := lenX(caller("LenGtX"), relGt, a, x)
	raise(s, msg)
	return la
}

// DebugLenGtX is LenGtX if DebugAssertions is set, and a no-op otherwise.
func DebugLenGtX(a any, x int, msg ...any) {
	if DebugAssertions {
		_, s := lenX(caller("DebugLenGtX"), relGt, a, x)
		raise(s, msg)
	}
}

// LenGeXAsResult is like LenGeX, but returns the failure as an error instead of
// panicking.
func LenGeXAsResult(a any, x int) (int, error) {
	la, s := lenX(caller("LenGeXAsResult"), relGe, a, x)
	return la, result(s)
}

// LenGeX asserts that len(a) >= x, and returns len(a).
func LenGeX(a any, x int, msg ...any) int {
	la, s := lenX(caller("LenGeX"), relGe, a, x)
	raise(s, msg)
	return la
}

// DebugLenGeX is LenGeX if DebugAssertions is set, and a no-op otherwise.
func DebugLenGeX(a any, x int, msg ...any) {
	if DebugAssertions {
		_, s := lenX(caller("DebugLenGeX"), relGe, a, x)
		raise(s, msg)
	}
}
