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
	"iter"
	"slices"

	"go.chromium.org/assertables/comparison"
	"go.chromium.org/assertables/failure"
)

// collect drains seq once. A nil seq yields nothing.
func collect[T any](seq iter.Seq[T]) []T {
	if seq == nil {
		return nil
	}
	return slices.Collect(seq)
}

func countPair[T any](site callSite, r relation, a, b iter.Seq[T]) (int, int, *failure.Summary) {
	as, bs := collect(a), collect(b)
	ca, cb := len(as), len(bs)
	if holds(r, ca, cb) {
		return ca, cb, nil
	}
	l := site.labels("a", "b")
	return ca, cb, site.builder(comparison.TypeOf[T]()).
		Because("expected count(a) %s count(b)", r).
		Operand("a", l[0], as).
		Operand("b", l[1], bs).
		Derived("count(a)", ca).
		Derived("count(b)", cb).Summary
}

func countX[T any](site callSite, r relation, a iter.Seq[T], x int) (int, *failure.Summary) {
	as := collect(a)
	ca := len(as)
	if holds(r, ca, x) {
		return ca, nil
	}
	l := site.labels("a", "x")
	return ca, site.builder(comparison.TypeOf[T]()).
		Because("expected count(a) %s x", r).
		Operand("a", l[0], as).
		Operand("x", l[1], x).
		Derived("count(a)", ca).Summary
}

// CountEqAsResult is like CountEq, but returns the failure as an error instead
// of panicking.
func CountEqAsResult[T any](a, b iter.Seq[T]) (int, int, error) {
	ca, cb, s := countPair(caller("CountEqAsResult"), relEq, a, b)
	return ca, cb, result(s)
}

// CountEq asserts that a and b yield the same number of elements, and returns
// both counts.
//
// Each sequence is iterated exactly once. The elements are kept so they can be
// shown if the assertion fails.
func CountEq[T any](a, b iter.Seq[T], msg ...any) (int, int) {
	ca, cb, s := countPair(caller("CountEq"), relEq, a, b)
	raise(s, msg)
	return ca, cb
}

// DebugCountEq is CountEq if DebugAssertions is set, and a no-op otherwise.
func DebugCountEq[T any](a, b iter.Seq[T], msg ...any) {
	if DebugAssertions {
		_, _, s := countPair(caller("DebugCountEq"), relEq, a, b)
		raise(s, msg)
	}
}

// CountNeAsResult is like CountNe, but returns the failure as an error instead
// of panicking.
func CountNeAsResult[T any](a, b iter.Seq[T]) (int, int, error) {
	ca, cb, s := countPair(caller("CountNeAsResult"), relNe, a, b)
	return ca, cb, result(s)
}

// CountNe asserts that a and b yield a different number of elements, and
// returns both counts.
func CountNe[T any](a, b iter.Seq[T], msg ...any) (int, int) {
	ca, cb, s := countPair(caller("CountNe"), relNe, a, b)
	raise(s, msg)
	return ca, cb
}

// DebugCountNe is CountNe if DebugAssertions is set, and a no-op otherwise.
func DebugCountNe[T any](a, b iter.Seq[T], msg ...any) {
	if DebugAssertions {
		_, _, s := countPair(caller("DebugCountNe"), relNe, a, b)
		raise(s, msg)
	}
}

// CountLtAsResult is like CountLt, but returns the failure as an error instead
// of panicking.
func CountLtAsResult[T any](a, b iter.Seq[T]) (int, int, error) {
	ca, cb, s := countPair(caller("CountLtAsResult"), relLt, a, b)
	return ca, cb, result(s)
}

// CountLt asserts that a yields fewer elements than b, and returns both counts.
func CountLt[T any](a, b iter.Seq[T], msg ...any) (int, int) {
	ca, cb, s := countPair(caller("CountLt"), relLt, a, b)
	raise(s, msg)
	return ca, cb
}

// DebugCountLt is CountLt if DebugAssertions is set, and a no-op otherwise.
func DebugCountLt[T any](a, b iter.Seq[T], msg ...any) {
	if DebugAssertions {
		_, _, s := countPair(caller("DebugCountLt"), relLt, a, b)
		raise(s, msg)
	}
}

// CountLeAsResult is like CountLe, but returns the failure as an error instead
// of panicking.
func CountLeAsResult[T any](a, b iter.Seq[T]) (int, int, error) {
	ca, cb, s := countPair(caller("CountLeAsResult"), relLe, a, b)
	return ca, cb, result(s)
}

// CountLe asserts that a yields no more elements than b, and returns both
// counts.
func CountLe[T any](a, b iter.Seq[T], msg ...any) (int, int) {
	ca, cb, s := countPair(caller("CountLe"), relLe, a, b)
	raise(s, msg)
	return ca, cb
}

// DebugCountLe is CountLe if DebugAssertions is set, and a no-op otherwise.
func DebugCountLe[T any](a, b iter.Seq[T], msg ...any) {
	if DebugAssertions {
		_, _, s := countPair(caller("DebugCountLe"), relLe, a, b)
		raise(s, msg)
	}
}

// CountGtAsResult is like CountGt, but returns the failure as an error instead
// of panicking.
func CountGtAsResult[T any](a, b iter.Seq[T]) (int, int, error) {
	ca, cb, s := countPair(caller("CountGtAsResult"), relGt, a, b)
	return ca, cb, result(s)
}

// CountGt asserts that a yields more elements than b, and returns both counts.
func CountGt[T any](a, b iter.Seq[T], msg ...any) (int, int) {
	ca, cb, s := countPair(caller("CountGt"), relGt, a, b)
	raise(s, msg)
	return ca, cb
}

// DebugCountGt is CountGt if DebugAssertions is set, and a no-op otherwise.
func DebugCountGt[T any](a, b iter.Seq[T], msg ...any) {
	if DebugAssertions {
		_, _, s := countPair(caller("DebugCountGt"), relGt, a, b)
		raise(s, msg)
	}
}

// CountGeAsResult is like CountGe, but returns the failure as an error instead
// of panicking.
func CountGeAsResult[T any](a, b iter.Seq[T]) (int, int, error) {
	ca, cb, s := countPair(caller("CountGeAsResult"), relGe, a, b)
	return ca, cb, result(s)
}

// CountGe asserts that a yields no fewer elements than b, and returns both
// counts.
func CountGe[T any](a, b iter.Seq[T], msg ...any) (int, int) {
	ca, cb, s := countPair(caller("CountGe"), relGe, a, b)
	raise(s, msg)
	return ca, cb
}

// DebugCountGe is CountGe if DebugAssertions is set, and a no-op otherwise.
func DebugCountGe[T any](a, b iter.Seq[T], msg ...any) {
	if DebugAssertions {
		_, _, s := countPair(caller("DebugCountGe"), relGe, a, b)
		raise(s, msg)
	}
}

// CountEqXAsResult is like CountEqX, but returns the failure as an error
// instead of panicking.
func CountEqXAsResult[T any](a iter.Seq[T], x int) (int, error) {
	ca, s := countX(caller("CountEqXAsResult"), relEq, a, x)
	return ca, result(s)
}

// CountEqX asserts that count(a) == x, and returns count(a).
func CountEqX[T any](a iter.Seq[T], x int, msg ...any) int {
	ca, s := countX(caller("CountEqX"), relEq, a, x)
	raise(s, msg)
	return ca
}

// DebugCountEqX is CountEqX if DebugAssertions is set, and a no-op otherwise.
func DebugCountEqX[T any](a iter.Seq[T], x int, msg ...any) {
	if DebugAssertions {
		_, s := countX(caller("DebugCountEqX"), relEq, a, x)
		raise(s, msg)
	}
}

// CountNeXAsResult is like CountNeX, but returns the failure as an error
// instead of panicking.
func CountNeXAsResult[T any](a iter.Seq[T], x int) (int, error) {
	ca, s := countX(caller("CountNeXAsResult"), relNe, a, x)
	return ca, result(s)
}

// CountNeX asserts that count(a) != x, and returns count(a).
func CountNeX[T any](a iter.Seq[T], x int, msg ...any) int {
	ca, s := countX(caller("CountNeX"), relNe, a, x)
	raise(s, msg)
	return ca
}

// DebugCountNeX is CountNeX if DebugAssertions is set, and a no-op otherwise.
func DebugCountNeX[T any](a iter.Seq[T], x int, msg ...any) {
	if DebugAssertions {
		_, s := countX(caller("DebugCountNeX"), relNe, a, x)
		raise(s, msg)
	}
}

// CountLtXAsResult is like CountLtX, but returns the failure as an error
// instead of panicking.
func CountLtXAsResult[T any](a iter.Seq[T], x int) (int, error) {
	ca, s := countX(caller("CountLtXAsResult"), relLt, a, x)
	return ca, result(s)
}

// CountLtX asserts that count(a) < x, and returns count(a).
func CountLtX[T any](a iter.Seq[T], x int, msg ...any) int {
	ca, s := countX(caller("CountLtX"), relLt, a, x)
	raise(s, msg)
	return ca
}

// DebugCountLtX is CountLtX if DebugAssertions is set, and a no-op otherwise.
func DebugCountLtX[T any](a iter.Seq[T], x int, msg ...any) {
	if DebugAssertions {
		_, s := countX(caller("DebugCountLtX"), relLt, a, x)
		raise(s, msg)
	}
}

// CountLeXAsResult is like CountLeX, but returns the failure as an error
// instead of panicking.
func CountLeXAsResult[T any](a iter.Seq[T], x int) (int, error) {
	ca, s := countX(caller("CountLeXAsResult"), relLe, a, x)
	return ca, result(s)
}

// CountLeX asserts that count(a) <= x, and returns count(a).
func CountLeX[T any](a iter.Seq[T], x int, msg ...any) int {
	ca, s := countX(caller("CountLeX"), relLe, a, x)
	raise(s, msg)
	return ca
}

// DebugCountLeX is CountLeX if DebugAssertions is set, and a no-op otherwise.
func DebugCountLeX[T any](a iter.Seq[T], x int, msg ...any) {
	if DebugAssertions {
		_, s := countX(caller("DebugCountLeX"), relLe, a, x)
		raise(s, msg)
	}
}

// CountGtXAsResult is like CountGtX, but returns the failure as an error
// instead of panicking.
func CountGtXAsResult[T any](a iter.Seq[T], x int) (int, error) {
	ca, s := countX(caller("CountGtXAsResult"), relGt, a, x)
	return ca, result(s)
}

// CountGtX asserts that count(a) > x, and returns count(a).
func CountGtX[T any](a iter.Seq[T], x int, msg ...any) int {
	ca, s := countX(caller("CountGtX"), relGt, a, x)
	raise(s, msg)
	return ca
}

// DebugCountGtX is CountGtX if DebugAssertions is set, and a no-op otherwise.
func DebugCountGtX[T any](a iter.Seq[T], x int, msg ...any) {
	if DebugAssertions {
		_, s := countX(caller("DebugCountGtX"), relGt, a, x)
		raise(s, msg)
	}
}

// CountGeXAsResult is like CountGeX, but returns the failure as an error
// instead of panicking.
func CountGeXAsResult[T any](a iter.Seq[T], x int) (int, error) {
	ca, s := countX(caller("CountGeXAsResult"), relGe, a, x)
	return ca, result(s)
}

// CountGeX asserts that count(a) >= x, and returns count(a).
func CountGeX[T any](a iter.Seq[T], x int, msg ...any) int {
	ca, s := countX(caller("CountGeX"), relGe, a, x)
	raise(s, msg)
	return ca
}

// DebugCountGeX is CountGeX if DebugAssertions is set, and a no-op otherwise.
func DebugCountGeX[T any](a iter.Seq[T], x int, msg ...any) {
	if DebugAssertions {
		_, s := countX(caller("DebugCountGeX"), relGe, a, x)
		raise(s, msg)
	}
}
