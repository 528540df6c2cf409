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
	"iter"
	"slices"

	"go.chromium.org/assertables/comparison"
	"go.chromium.org/assertables/failure"
)

func describeSeqs[T any](site callSite, r relation, as, bs []T) *failure.Summary {
	l := site.labels("a", "b")
	return site.builder(comparison.TypeOf[T]()).
		Because("expected a %s b, element by element", r).
		Operand("a", l[0], as).
		Operand("b", l[1], bs).
		SmartCmpDiff(as, bs).Summary
}

func iterEq[T comparable](site callSite, r relation, a, b iter.Seq[T]) *failure.Summary {
	as, bs := collect(a), collect(b)
	if slices.Equal(as, bs) == (r == relEq) {
		return nil
	}
	return describeSeqs(site, r, as, bs)
}

func iterOrd[T cmp.Ordered](site callSite, r relation, a, b iter.Seq[T]) *failure.Summary {
	as, bs := collect(a), collect(b)
	if holds(r, slices.Compare(as, bs), 0) {
		return nil
	}
	return describeSeqs(site, r, as, bs)
}

// quantify checks pred against the elements of seq. With every set it looks
// for the first element failing pred, otherwise for the first one passing it.
func quantify[T any](site callSite, every bool, seq iter.Seq[T], pred func(T) bool) *failure.Summary {
	elems := collect(seq)
	idx := -1
	if pred != nil {
		idx = slices.IndexFunc(elems, func(e T) bool { return pred(e) != every })
	}
	if pred != nil && (idx == -1) == every {
		return nil
	}
	l := site.labels("seq", "pred")
	sb := site.builder(comparison.TypeOf[T]())
	switch {
	case pred == nil:
		sb.Because("pred is nil")
	case every:
		sb.Because("expected every element to satisfy pred")
	default:
		sb.Because("expected some element to satisfy pred")
	}
	sb.Operand("seq", l[0], elems).AddFinding("pred label", l[1])
	if pred != nil && every {
		sb.Derived("first failing index", idx).Derived("first failing element", elems[idx])
	}
	return sb.Summary
}

// IterEqAsResult is like IterEq, but returns the failure as an error instead of
// panicking.
func IterEqAsResult[T comparable](a, b iter.Seq[T]) error {
	return result(iterEq(caller("IterEqAsResult"), relEq, a, b))
}

// IterEq asserts that a and b yield equal elements in the same order.
//
// Each sequence is iterated exactly once.
func IterEq[T comparable](a, b iter.Seq[T], msg ...any) {
	raise(iterEq(caller("IterEq"), relEq, a, b), msg)
}

// DebugIterEq is IterEq if DebugAssertions is set, and a no-op otherwise.
func DebugIterEq[T comparable](a, b iter.Seq[T], msg ...any) {
	if DebugAssertions {
		raise(iterEq(caller("DebugIterEq"), relEq, a, b), msg)
	}
}

// IterNeAsResult is like IterNe, but returns the failure as an error instead of
// panicking.
func IterNeAsResult[T comparable](a, b iter.Seq[T]) error {
	return result(iterEq(caller("IterNeAsResult"), relNe, a, b))
}

// IterNe asserts that a and b differ in at least one element or in length.
func IterNe[T comparable](a, b iter.Seq[T], msg ...any) {
	raise(iterEq(caller("IterNe"), relNe, a, b), msg)
}

// DebugIterNe is IterNe if DebugAssertions is set, and a no-op otherwise.
func DebugIterNe[T comparable](a, b iter.Seq[T], msg ...any) {
	if DebugAssertions {
		raise(iterEq(caller("DebugIterNe"), relNe, a, b), msg)
	}
}

// IterLtAsResult is like IterLt, but returns the failure as an error instead of
// panicking.
func IterLtAsResult[T cmp.Ordered](a, b iter.Seq[T]) error {
	return result(iterOrd(caller("IterLtAsResult"), relLt, a, b))
}

// IterLt asserts that a < b in lexicographic order.
//
// Elements are compared as by slices.Compare: the first unequal element
// decides, and a proper prefix is less than the longer sequence.
func IterLt[T cmp.Ordered](a, b iter.Seq[T], msg ...any) {
	raise(iterOrd(caller("IterLt"), relLt, a, b), msg)
}

// DebugIterLt is IterLt if DebugAssertions is set, and a no-op otherwise.
func DebugIterLt[T cmp.Ordered](a, b iter.Seq[T], msg ...any) {
	if DebugAssertions {
		raise(iterOrd(caller("DebugIterLt"), relLt, a, b), msg)
	}
}

// IterLeAsResult is like IterLe, but returns the failure as an error instead of
// panicking.
func IterLeAsResult[T cmp.Ordered](a, b iter.Seq[T]) error {
	return result(iterOrd(caller("IterLeAsResult"), relLe, a, b))
}

// IterLe asserts that a <= b in lexicographic order.
func IterLe[T cmp.Ordered](a, b iter.Seq[T], msg ...any) {
	raise(iterOrd(caller("IterLe"), relLe, a, b), msg)
}

// DebugIterLe is IterLe if DebugAssertions is set, and a no-op otherwise.
func DebugIterLe[T cmp.Ordered](a, b iter.Seq[T], msg ...any) {
	if DebugAssertions {
		raise(iterOrd(caller("DebugIterLe"), relLe, a, b), msg)
	}
}

// IterGtAsResult is like IterGt, but returns the failure as an error instead of
// panicking.
func IterGtAsResult[T cmp.Ordered](a, b iter.Seq[T]) error {
	return result(iterOrd(caller("IterGtAsResult"), relGt, a, b))
}

// IterGt asserts that a > b in lexicographic order.
func IterGt[T cmp.Ordered](a, b iter.Seq[T], msg ...any) {
	raise(iterOrd(caller("IterGt"), relGt, a, b), msg)
}

// DebugIterGt is IterGt if DebugAssertions is set, and a no-op otherwise.
func DebugIterGt[T cmp.Ordered](a, b iter.Seq[T], msg ...any) {
	if DebugAssertions {
		raise(iterOrd(caller("DebugIterGt"), relGt, a, b), msg)
	}
}

// IterGeAsResult is like IterGe, but returns the failure as an error instead of
// panicking.
func IterGeAsResult[T cmp.Ordered](a, b iter.Seq[T]) error {
	return result(iterOrd(caller("IterGeAsResult"), relGe, a, b))
}

// IterGe asserts that a >= b in lexicographic order.
func IterGe[T cmp.Ordered](a, b iter.Seq[T], msg ...any) {
	raise(iterOrd(caller("IterGe"), relGe, a, b), msg)
}

// DebugIterGe is IterGe if DebugAssertions is set, and a no-op otherwise.
func DebugIterGe[T cmp.Ordered](a, b iter.Seq[T], msg ...any) {
	if DebugAssertions {
		raise(iterOrd(caller("DebugIterGe"), relGe, a, b), msg)
	}
}

// AllAsResult is like All, but returns the failure as an error instead of
// panicking.
func AllAsResult[T any](seq iter.Seq[T], pred func(T) bool) error {
	return result(quantify(caller("AllAsResult"), true, seq, pred))
}

// All asserts that every element of seq satisfies pred.
//
// An empty sequence passes. On failure the first failing element is reported.
func All[T any](seq iter.Seq[T], pred func(T) bool, msg ...any) {
	raise(quantify(caller("All"), true, seq, pred), msg)
}

// DebugAll is All if DebugAssertions is set, and a no-op otherwise.
func DebugAll[T any](seq iter.Seq[T], pred func(T) bool, msg ...any) {
	if DebugAssertions {
		raise(quantify(caller("DebugAll"), true, seq, pred), msg)
	}
}

// AnyAsResult is like Any, but returns the failure as an error instead of
// panicking.
func AnyAsResult[T any](seq iter.Seq[T], pred func(T) bool) error {
	return result(quantify(caller("AnyAsResult"), false, seq, pred))
}

// Any asserts that at least one element of seq satisfies pred.
//
// An empty sequence fails.
func Any[T any](seq iter.Seq[T], pred func(T) bool, msg ...any) {
	raise(quantify(caller("Any"), false, seq, pred), msg)
}

// DebugAny is Any if DebugAssertions is set, and a no-op otherwise.
func DebugAny[T any](seq iter.Seq[T], pred func(T) bool, msg ...any) {
	if DebugAssertions {
		raise(quantify(caller("DebugAny"), false, seq, pred), msg)
	}
}
