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
	"fmt"

	"go.chromium.org/assertables/comparison"
	"go.chromium.org/assertables/failure"
)

// Container is anything which can report whether it holds a value.
//
// Span implements Container.
type Container[T any] interface {
	Contains(v T) bool
}

// Span is an interval of ordered values.
type Span[T cmp.Ordered] struct {
	Start T
	End   T

	// Inclusive includes End in the Span.
	Inclusive bool
}

// Range returns the half-open Span [start, end).
func Range[T cmp.Ordered](start, end T) Span[T] {
	return Span[T]{Start: start, End: end}
}

// RangeInclusive returns the closed Span [start, end].
func RangeInclusive[T cmp.Ordered](start, end T) Span[T] {
	return Span[T]{Start: start, End: end, Inclusive: true}
}

// Contains implements Container.
func (s Span[T]) Contains(v T) bool {
	if s.Inclusive {
		return s.Start <= v && v <= s.End
	}
	return s.Start <= v && v < s.End
}

// String renders the span as "start..end", or "start..=end" if it is
// inclusive.
func (s Span[T]) String() string {
	sep := ".."
	if s.Inclusive {
		sep = "..="
	}
	return fmt.Sprintf("%v%s%v", s.Start, sep, s.End)
}

// GoString is the same as String.
func (s Span[T]) GoString() string {
	return s.String()
}

func in[T any](site callSite, want bool, a T, container Container[T]) *failure.Summary {
	if container != nil && container.Contains(a) == want {
		return nil
	}
	l := site.labels("a", "container")
	sb := site.builder(comparison.TypeOf[T]())
	switch {
	case container == nil:
		sb.Because("container is nil")
	case want:
		sb.Because("expected a to be in container")
	default:
		sb.Because("expected a not to be in container")
	}
	return sb.Operand("a", l[0], a).
		Operand("container", l[1], container).Summary
}

// InAsResult is like In, but returns the failure as an error instead of
// panicking.
func InAsResult[T any](a T, container Container[T]) error {
	return result(in(caller("InAsResult"), true, a, container))
}

// In asserts that container contains a.
//
// For example:
//
//	assertables.In(1, assertables.Range(0, 2))           // passes
//	assertables.In(2, assertables.RangeInclusive(0, 2))  // passes
//	assertables.In(1, assertables.Range(2, 4))           // fails
func In[T any](a T, container Container[T], msg ...any) {
	raise(in(caller("In"), true, a, container), msg)
}

// DebugIn is In if DebugAssertions is set, and a no-op otherwise.
func DebugIn[T any](a T, container Container[T], msg ...any) {
	if DebugAssertions {
		raise(in(caller("DebugIn"), true, a, container), msg)
	}
}

// NotInAsResult is like NotIn, but returns the failure as an error instead of
// panicking.
func NotInAsResult[T any](a T, container Container[T]) error {
	return result(in(caller("NotInAsResult"), false, a, container))
}

// NotIn asserts that container does not contain a.
func NotIn[T any](a T, container Container[T], msg ...any) {
	raise(in(caller("NotIn"), false, a, container), msg)
}

// DebugNotIn is NotIn if DebugAssertions is set, and a no-op otherwise.
func DebugNotIn[T any](a T, container Container[T], msg ...any) {
	if DebugAssertions {
		raise(in(caller("DebugNotIn"), false, a, container), msg)
	}
}
