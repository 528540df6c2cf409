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
	"slices"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"

	"go.chromium.org/assertables/comparison"
	"go.chromium.org/assertables/failure"
)

type setRelation int

const (
	setEq setRelation = iota
	setNe
	setSubset
	setSuperset
	setJoint
	setDisjoint
)

var setBecause = map[setRelation]string{
	setEq:       "expected set(a) == set(b)",
	setNe:       "expected set(a) != set(b)",
	setSubset:   "expected set(a) to be a subset of set(b)",
	setSuperset: "expected set(a) to be a superset of set(b)",
	setJoint:    "expected set(a) and set(b) to have an element in common",
	setDisjoint: "expected set(a) and set(b) to have no element in common",
}

// setDebug renders a set with its elements in a stable order.
func setDebug[T comparable](s mapset.Set[T]) goString {
	elems := make([]string, 0, s.Cardinality())
	for _, e := range s.ToSlice() {
		elems = append(elems, comparison.Debug(e))
	}
	slices.Sort(elems)
	return goString("{" + strings.Join(elems, ", ") + "}")
}

func setCompare[T comparable](site callSite, rel setRelation, a, b []T) *failure.Summary {
	sa := mapset.NewThreadUnsafeSet(a...)
	sb := mapset.NewThreadUnsafeSet(b...)

	var ok bool
	switch rel {
	case setEq:
		ok = sa.Equal(sb)
	case setNe:
		ok = !sa.Equal(sb)
	case setSubset:
		ok = sa.IsSubset(sb)
	case setSuperset:
		ok = sa.IsSuperset(sb)
	case setJoint:
		ok = sa.Intersect(sb).Cardinality() > 0
	case setDisjoint:
		ok = sa.Intersect(sb).Cardinality() == 0
	}
	if ok {
		return nil
	}

	l := site.labels("a", "b")
	bld := site.builder(comparison.TypeOf[T]()).
		Because(setBecause[rel]).
		Operand("a", l[0], a).
		Operand("b", l[1], b).
		Derived("set(a)", setDebug(sa)).
		Derived("set(b)", setDebug(sb))
	switch rel {
	case setEq, setSubset:
		bld.Derived("set(a) - set(b)", setDebug(sa.Difference(sb)))
	case setSuperset:
		bld.Derived("set(b) - set(a)", setDebug(sb.Difference(sa)))
	case setDisjoint:
		bld.Derived("set(a) & set(b)", setDebug(sa.Intersect(sb)))
	}
	if rel == setEq {
		bld.Derived("set(b) - set(a)", setDebug(sb.Difference(sa)))
	}
	return bld.Summary
}

// SetEqAsResult is like SetEq, but returns the failure as an error instead of
// panicking.
func SetEqAsResult[T comparable](a, b []T) error {
	return result(setCompare(caller("SetEqAsResult"), setEq, a, b))
}

// SetEq asserts that a and b hold the same distinct elements, ignoring order
// and repetition.
func SetEq[T comparable](a, b []T, msg ...any) {
	raise(setCompare(caller("SetEq"), setEq, a, b), msg)
}

// DebugSetEq is SetEq if DebugAssertions is set, and a no-op otherwise.
func DebugSetEq[T comparable](a, b []T, msg ...any) {
	if DebugAssertions {
		raise(setCompare(caller("DebugSetEq"), setEq, a, b), msg)
	}
}

// SetNeAsResult is like SetNe, but returns the failure as an error instead of
// panicking.
func SetNeAsResult[T comparable](a, b []T) error {
	return result(setCompare(caller("SetNeAsResult"), setNe, a, b))
}

// SetNe asserts that the distinct elements of a and b differ.
func SetNe[T comparable](a, b []T, msg ...any) {
	raise(setCompare(caller("SetNe"), setNe, a, b), msg)
}

// DebugSetNe is SetNe if DebugAssertions is set, and a no-op otherwise.
func DebugSetNe[T comparable](a, b []T, msg ...any) {
	if DebugAssertions {
		raise(setCompare(caller("DebugSetNe"), setNe, a, b), msg)
	}
}

// SetSubsetAsResult is like SetSubset, but returns the failure as an error
// instead of panicking.
func SetSubsetAsResult[T comparable](a, b []T) error {
	return result(setCompare(caller("SetSubsetAsResult"), setSubset, a, b))
}

// SetSubset asserts that every element of a is in b.
func SetSubset[T comparable](a, b []T, msg ...any) {
	raise(setCompare(caller("SetSubset"), setSubset, a, b), msg)
}

// DebugSetSubset is SetSubset if DebugAssertions is set, and a no-op otherwise.
func DebugSetSubset[T comparable](a, b []T, msg ...any) {
	if DebugAssertions {
		raise(setCompare(caller("DebugSetSubset"), setSubset, a, b), msg)
	}
}

// SetSupersetAsResult is like SetSuperset, but returns the failure as an error
// instead of panicking.
func SetSupersetAsResult[T comparable](a, b []T) error {
	return result(setCompare(caller("SetSupersetAsResult"), setSuperset, a, b))
}

// SetSuperset asserts that every element of b is in a.
func SetSuperset[T comparable](a, b []T, msg ...any) {
	raise(setCompare(caller("SetSuperset"), setSuperset, a, b), msg)
}

// DebugSetSuperset is SetSuperset if DebugAssertions is set, and a no-op
// otherwise.
func DebugSetSuperset[T comparable](a, b []T, msg ...any) {
	if DebugAssertions {
		raise(setCompare(caller("DebugSetSuperset"), setSuperset, a, b), msg)
	}
}

// SetJointAsResult is like SetJoint, but returns the failure as an error
// instead of panicking.
func SetJointAsResult[T comparable](a, b []T) error {
	return result(setCompare(caller("SetJointAsResult"), setJoint, a, b))
}

// SetJoint asserts that a and b have at least one element in common.
func SetJoint[T comparable](a, b []T, msg ...any) {
	raise(setCompare(caller("SetJoint"), setJoint, a, b), msg)
}

// DebugSetJoint is SetJoint if DebugAssertions is set, and a no-op otherwise.
func DebugSetJoint[T comparable](a, b []T, msg ...any) {
	if DebugAssertions {
		raise(setCompare(caller("DebugSetJoint"), setJoint, a, b), msg)
	}
}

// SetDisjointAsResult is like SetDisjoint, but returns the failure as an error
// instead of panicking.
func SetDisjointAsResult[T comparable](a, b []T) error {
	return result(setCompare(caller("SetDisjointAsResult"), setDisjoint, a, b))
}

// SetDisjoint asserts that a and b have no element in common.
func SetDisjoint[T comparable](a, b []T, msg ...any) {
	raise(setCompare(caller("SetDisjoint"), setDisjoint, a, b), msg)
}

// DebugSetDisjoint is SetDisjoint if DebugAssertions is set, and a no-op
// otherwise.
func DebugSetDisjoint[T comparable](a, b []T, msg ...any) {
	if DebugAssertions {
		raise(setCompare(caller("DebugSetDisjoint"), setDisjoint, a, b), msg)
	}
}
