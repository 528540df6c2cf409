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
	"maps"

	"go.chromium.org/assertables/comparison"
	"go.chromium.org/assertables/failure"
)

// bag counts the occurrences of each element of xs.
func bag[T comparable](xs []T) map[T]int {
	ret := make(map[T]int, len(xs))
	for _, x := range xs {
		ret[x]++
	}
	return ret
}

type bagRelation int

const (
	bagEq bagRelation = iota
	bagNe
	bagSub
	bagSuper
)

// excess returns the first element of xs (in order) which occurs more often
// in `more` than in `less`.
func excess[T comparable](xs []T, more, less map[T]int) (T, bool) {
	for _, x := range xs {
		if more[x] > less[x] {
			return x, true
		}
	}
	var zero T
	return zero, false
}

func bagCompare[T comparable](site callSite, rel bagRelation, a, b []T) *failure.Summary {
	ba, bb := bag(a), bag(b)

	var key T
	var offending bool
	switch rel {
	case bagEq:
		if maps.Equal(ba, bb) {
			return nil
		}
	case bagNe:
		if !maps.Equal(ba, bb) {
			return nil
		}
	case bagSub:
		if key, offending = excess(a, ba, bb); !offending {
			return nil
		}
	case bagSuper:
		if key, offending = excess(b, bb, ba); !offending {
			return nil
		}
	}

	l := site.labels("a", "b")
	sb := site.builder(comparison.TypeOf[T]())
	switch rel {
	case bagEq:
		sb.Because("expected bag(a) == bag(b)")
	case bagNe:
		sb.Because("expected bag(a) != bag(b)")
	case bagSub:
		sb.Because("expected bag(a) to be a subbag of bag(b): %s occurs %d times in a but %d times in b",
			comparison.Debug(key), ba[key], bb[key])
	case bagSuper:
		sb.Because("expected bag(a) to be a superbag of bag(b): %s occurs %d times in a but %d times in b",
			comparison.Debug(key), ba[key], bb[key])
	}
	sb.Operand("a", l[0], a).
		Operand("b", l[1], b).
		Derived("bag(a)", ba).
		Derived("bag(b)", bb)
	if offending {
		sb.Derived("key", key).
			Derived("count(a)", ba[key]).
			Derived("count(b)", bb[key])
	}
	return sb.Summary
}

// BagEqAsResult is like BagEq, but returns the failure as an error instead of
// panicking.
func BagEqAsResult[T comparable](a, b []T) error {
	return result(bagCompare(caller("BagEqAsResult"), bagEq, a, b))
}

// BagEq asserts that a and b hold the same elements the same number of times,
// in any order.
func BagEq[T comparable](a, b []T, msg ...any) {
	raise(bagCompare(caller("BagEq"), bagEq, a, b), msg)
}

// DebugBagEq is BagEq if DebugAssertions is set, and a no-op otherwise.
func DebugBagEq[T comparable](a, b []T, msg ...any) {
	if DebugAssertions {
		raise(bagCompare(caller("DebugBagEq"), bagEq, a, b), msg)
	}
}

// BagNeAsResult is like BagNe, but returns the failure as an error instead of
// panicking.
func BagNeAsResult[T comparable](a, b []T) error {
	return result(bagCompare(caller("BagNeAsResult"), bagNe, a, b))
}

// BagNe asserts that a and b differ as multisets.
func BagNe[T comparable](a, b []T, msg ...any) {
	raise(bagCompare(caller("BagNe"), bagNe, a, b), msg)
}

// DebugBagNe is BagNe if DebugAssertions is set, and a no-op otherwise.
func DebugBagNe[T comparable](a, b []T, msg ...any) {
	if DebugAssertions {
		raise(bagCompare(caller("DebugBagNe"), bagNe, a, b), msg)
	}
}

// BagSubbagAsResult is like BagSubbag, but returns the failure as an error
// instead of panicking.
func BagSubbagAsResult[T comparable](a, b []T) error {
	return result(bagCompare(caller("BagSubbagAsResult"), bagSub, a, b))
}

// BagSubbag asserts that every element of a occurs in b at least as many times
// as it occurs in a.
//
// On failure the first element of a (in order) which occurs too often is
// reported with both counts.
func BagSubbag[T comparable](a, b []T, msg ...any) {
	raise(bagCompare(caller("BagSubbag"), bagSub, a, b), msg)
}

// DebugBagSubbag is BagSubbag if DebugAssertions is set, and a no-op otherwise.
func DebugBagSubbag[T comparable](a, b []T, msg ...any) {
	if DebugAssertions {
		raise(bagCompare(caller("DebugBagSubbag"), bagSub, a, b), msg)
	}
}

// BagSuperbagAsResult is like BagSuperbag, but returns the failure as an error
// instead of panicking.
func BagSuperbagAsResult[T comparable](a, b []T) error {
	return result(bagCompare(caller("BagSuperbagAsResult"), bagSuper, a, b))
}

// BagSuperbag asserts that b is a subbag of a.
func BagSuperbag[T comparable](a, b []T, msg ...any) {
	raise(bagCompare(caller("BagSuperbag"), bagSuper, a, b), msg)
}

// DebugBagSuperbag is BagSuperbag if DebugAssertions is set, and a no-op
// otherwise.
func DebugBagSuperbag[T comparable](a, b []T, msg ...any) {
	if DebugAssertions {
		raise(bagCompare(caller("DebugBagSuperbag"), bagSuper, a, b), msg)
	}
}
