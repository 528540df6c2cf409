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

// option renders a *T as Some(value) or None.
type option[T any] struct {
	p *T
}

func (o option[T]) GoString() string {
	if o.p == nil {
		return "None"
	}
	return "Some(" + comparison.Debug(*o.p) + ")"
}

func expectSome[T any](site callSite, a *T) (T, *failure.Summary) {
	if a != nil {
		return *a, nil
	}
	var zero T
	return zero, site.builder(comparison.TypeOf[T]()).
		Because("expected a to be Some").
		Operand("a", site.labels("a")[0], option[T]{a}).Summary
}

func expectNone[T any](site callSite, a *T) *failure.Summary {
	if a == nil {
		return nil
	}
	return site.builder(comparison.TypeOf[T]()).
		Because("expected a to be None").
		Operand("a", site.labels("a")[0], option[T]{a}).Summary
}

func deref[T any](p *T) T {
	if p == nil {
		var zero T
		return zero
	}
	return *p
}

func somePair[T comparable](site callSite, r relation, a, b *T) (T, T, *failure.Summary) {
	va, vb := deref(a), deref(b)
	if a != nil && b != nil && holdsEq(r, va, vb) {
		return va, vb, nil
	}
	l := site.labels("a", "b")
	sb := site.builder(comparison.TypeOf[T]())
	if a == nil || b == nil {
		return va, vb, variantMismatch(sb, "Some", []string{"a", "b"}, l,
			[]any{option[T]{a}, option[T]{b}}, []bool{a != nil, b != nil})
	}
	return va, vb, sb.Because("expected a's value %s b's value", r).
		Operand("a", l[0], option[T]{a}).
		Operand("b", l[1], option[T]{b}).
		SmartCmpDiff(va, vb).Summary
}

func someX[T comparable](site callSite, r relation, a *T, x T) (T, *failure.Summary) {
	va := deref(a)
	if a != nil && holdsEq(r, va, x) {
		return va, nil
	}
	l := site.labels("a", "x")
	sb := site.builder(comparison.TypeOf[T]())
	if a == nil {
		sb.Because("expected a to be Some")
	} else {
		sb.Because("expected a's value %s x", r)
	}
	return va, sb.Operand("a", l[0], option[T]{a}).
		Operand("x", l[1], x).
		SmartCmpDiff(va, x).Summary
}

// SomeAsResult is like Some, but returns the failure as an error instead of
// panicking.
func SomeAsResult[T any](a *T) (T, error) {
	v, s := expectSome(caller("SomeAsResult"), a)
	return v, result(s)
}

// Some asserts that a is not nil, and returns *a.
//
// Optional values are represented as pointers: nil is None.
func Some[T any](a *T, msg ...any) T {
	v, s := expectSome(caller("Some"), a)
	raise(s, msg)
	return v
}

// DebugSome is Some if DebugAssertions is set, and a no-op otherwise.
func DebugSome[T any](a *T, msg ...any) {
	if DebugAssertions {
		_, s := expectSome(caller("DebugSome"), a)
		raise(s, msg)
	}
}

// NoneAsResult is like None, but returns the failure as an error instead of
// panicking.
func NoneAsResult[T any](a *T) error {
	return result(expectNone(caller("NoneAsResult"), a))
}

// None asserts that a is nil.
func None[T any](a *T, msg ...any) {
	raise(expectNone(caller("None"), a), msg)
}

// DebugNone is None if DebugAssertions is set, and a no-op otherwise.
func DebugNone[T any](a *T, msg ...any) {
	if DebugAssertions {
		raise(expectNone(caller("DebugNone"), a), msg)
	}
}

// SomeEqAsResult is like SomeEq, but returns the failure as an error instead of
// panicking.
func SomeEqAsResult[T comparable](a, b *T) (T, T, error) {
	va, vb, s := somePair(caller("SomeEqAsResult"), relEq, a, b)
	return va, vb, result(s)
}

// SomeEq asserts that a and b are both non-nil and *a == *b, and returns both
// values.
func SomeEq[T comparable](a, b *T, msg ...any) (T, T) {
	va, vb, s := somePair(caller("SomeEq"), relEq, a, b)
	raise(s, msg)
	return va, vb
}

// DebugSomeEq is SomeEq if DebugAssertions is set, and a no-op otherwise.
func DebugSomeEq[T comparable](a, b *T, msg ...any) {
	if DebugAssertions {
		_, _, s := somePair(caller("DebugSomeEq"), relEq, a, b)
		raise(s, msg)
	}
}

// SomeNeAsResult is like SomeNe, but returns the failure as an error instead of
// panicking.
func SomeNeAsResult[T comparable](a, b *T) (T, T, error) {
	va, vb, s := somePair(caller("SomeNeAsResult"), relNe, a, b)
	return va, vb, result(s)
}

// SomeNe asserts that a and b are both non-nil and *a != *b, and returns both
// values.
func SomeNe[T comparable](a, b *T, msg ...any) (T, T) {
	va, vb, s := somePair(caller("SomeNe"), relNe, a, b)
	raise(s, msg)
	return va, vb
}

// DebugSomeNe is SomeNe if DebugAssertions is set, and a no-op otherwise.
func DebugSomeNe[T comparable](a, b *T, msg ...any) {
	if DebugAssertions {
		_, _, s := somePair(caller("DebugSomeNe"), relNe, a, b)
		raise(s, msg)
	}
}

// SomeEqXAsResult is like SomeEqX, but returns the failure as an error instead
// of panicking.
func SomeEqXAsResult[T comparable](a *T, x T) (T, error) {
	v, s := someX(caller("SomeEqXAsResult"), relEq, a, x)
	return v, result(s)
}

// SomeEqX asserts that a is non-nil and *a == x, and returns *a.
func SomeEqX[T comparable](a *T, x T, msg ...any) T {
	v, s := someX(caller("SomeEqX"), relEq, a, x)
	raise(s, msg)
	return v
}

// DebugSomeEqX is SomeEqX if DebugAssertions is set, and a no-op otherwise.
func DebugSomeEqX[T comparable](a *T, x T, msg ...any) {
	if DebugAssertions {
		_, s := someX(caller("DebugSomeEqX"), relEq, a, x)
		raise(s, msg)
	}
}

// SomeNeXAsResult is like SomeNeX, but returns the failure as an error instead
// of panicking.
func SomeNeXAsResult[T comparable](a *T, x T) (T, error) {
	v, s := someX(caller("SomeNeXAsResult"), relNe, a, x)
	return v, result(s)
}

// SomeNeX asserts that a is non-nil and *a != x, and returns *a.
func SomeNeX[T comparable](a *T, x T, msg ...any) T {
	v, s := someX(caller("SomeNeX"), relNe, a, x)
	raise(s, msg)
	return v
}

// DebugSomeNeX is SomeNeX if DebugAssertions is set, and a no-op otherwise.
func DebugSomeNeX[T comparable](a *T, x T, msg ...any) {
	if DebugAssertions {
		_, s := someX(caller("DebugSomeNeX"), relNe, a, x)
		raise(s, msg)
	}
}
