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
	"strconv"

	"go.chromium.org/assertables/comparison"
	"go.chromium.org/assertables/failure"
)

// difference is |a-b|.
//
// The difference of two signed integers may not fit in T. Then overflow is
// set, wide holds the exact difference and value saturates at the largest T.
type difference[T Number] struct {
	value    T
	wide     uint64
	overflow bool
}

func absDiff[T Number](a, b T) difference[T] {
	if a < b {
		a, b = b, a
	}
	d := a - b
	if d < 0 {
		// a > b and a-b wrapped, so T is a signed integer type. Sign extension
		// makes the subtraction exact modulo 2^64.
		return difference[T]{value: maxOf[T](), wide: uint64(a) - uint64(b), overflow: true}
	}
	return difference[T]{value: d}
}

// maxOf is the largest value of the signed integer type T.
func maxOf[T Number]() T {
	m := T(1)
	for m*2+1 > m {
		m = m*2 + 1
	}
	return m
}

// holds reports whether `|a-b| r x`. A difference which overflowed T is
// larger than every x.
func (d difference[T]) holds(r relation, x T) bool {
	if !d.overflow {
		return holds(r, d.value, x)
	}
	switch r {
	case relNe, relGt, relGe:
		return true
	}
	return false
}

// derived is the value reported as the "|a-b|" finding.
func (d difference[T]) derived() any {
	if d.overflow {
		return wideDiff(d.wide)
	}
	return d.value
}

// wideDiff renders in decimal, unlike %#v of an unsigned integer.
type wideDiff uint64

func (w wideDiff) GoString() string { return strconv.FormatUint(uint64(w), 10) }

func inDelta[T Number](site callSite, a, b, delta T) *failure.Summary {
	d := absDiff(a, b)
	if d.holds(relLe, delta) {
		return nil
	}
	l := site.labels("a", "b", "delta")
	return site.builder(comparison.TypeOf[T]()).
		Because("expected |a-b| <= delta").
		Operand("a", l[0], a).
		Operand("b", l[1], b).
		Operand("delta", l[2], delta).
		Derived("|a-b|", d.derived()).Summary
}

func inEpsilon[T Float](site callSite, a, b, epsilon T) *failure.Summary {
	d := absDiff(a, b).value
	bound := epsilon * min(abs(a), abs(b))
	if d <= bound {
		return nil
	}
	l := site.labels("a", "b", "epsilon")
	return site.builder(comparison.TypeOf[T]()).
		Because("expected |a-b| <= epsilon * min(|a|, |b|)").
		Operand("a", l[0], a).
		Operand("b", l[1], b).
		Operand("epsilon", l[2], epsilon).
		Derived("|a-b|", d).
		Derived("epsilon * min(|a|, |b|)", bound).Summary
}

func abs[T Float](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// InDeltaAsResult is like InDelta, but returns the failure as an error instead
// of panicking.
func InDeltaAsResult[T Number](a, b, delta T) error {
	return result(inDelta(caller("InDeltaAsResult"), a, b, delta))
}

// InDelta asserts that |a-b| <= delta.
func InDelta[T Number](a, b, delta T, msg ...any) {
	raise(inDelta(caller("InDelta"), a, b, delta), msg)
}

// DebugInDelta is InDelta if DebugAssertions is set, and a no-op otherwise.
func DebugInDelta[T Number](a, b, delta T, msg ...any) {
	if DebugAssertions {
		raise(inDelta(caller("DebugInDelta"), a, b, delta), msg)
	}
}

// InEpsilonAsResult is like InEpsilon, but returns the failure as an error
// instead of panicking.
func InEpsilonAsResult[T Float](a, b, epsilon T) error {
	return result(inEpsilon(caller("InEpsilonAsResult"), a, b, epsilon))
}

// InEpsilon asserts that a and b are within a relative tolerance of each other:
// |a-b| <= epsilon * min(|a|, |b|).
func InEpsilon[T Float](a, b, epsilon T, msg ...any) {
	raise(inEpsilon(caller("InEpsilon"), a, b, epsilon), msg)
}

// DebugInEpsilon is InEpsilon if DebugAssertions is set, and a no-op otherwise.
func DebugInEpsilon[T Float](a, b, epsilon T, msg ...any) {
	if DebugAssertions {
		raise(inEpsilon(caller("DebugInEpsilon"), a, b, epsilon), msg)
	}
}
