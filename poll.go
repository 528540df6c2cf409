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

type pollState int

const (
	pollPending pollState = iota
	pollReady
	pollClosed
)

// polled is the outcome of a non-blocking receive.
type polled[T any] struct {
	state pollState
	value T
}

func (p polled[T]) GoString() string {
	switch p.state {
	case pollReady:
		return "Ready(" + comparison.Debug(p.value) + ")"
	case pollClosed:
		return "Closed"
	}
	return "Pending"
}

// poll receives from ch without blocking. A nil channel is always pending.
func poll[T any](ch <-chan T) polled[T] {
	select {
	case v, ok := <-ch:
		if !ok {
			return polled[T]{state: pollClosed}
		}
		return polled[T]{state: pollReady, value: v}
	default:
		return polled[T]{state: pollPending}
	}
}

func expectReady[T any](site callSite, a <-chan T) (T, *failure.Summary) {
	p := poll(a)
	if p.state == pollReady {
		return p.value, nil
	}
	return p.value, site.builder(comparison.TypeOf[T]()).
		Because("expected a to be Ready").
		Operand("a", site.labels("a")[0], p).Summary
}

func expectPending[T any](site callSite, a <-chan T) *failure.Summary {
	p := poll(a)
	if p.state == pollPending {
		return nil
	}
	return site.builder(comparison.TypeOf[T]()).
		Because("expected a to be Pending").
		Operand("a", site.labels("a")[0], p).Summary
}

func readyPair[T comparable](site callSite, r relation, a, b <-chan T) (T, T, *failure.Summary) {
	pa, pb := poll(a), poll(b)
	aok, bok := pa.state == pollReady, pb.state == pollReady
	if aok && bok && holdsEq(r, pa.value, pb.value) {
		return pa.value, pb.value, nil
	}
	l := site.labels("a", "b")
	sb := site.builder(comparison.TypeOf[T]())
	if !aok || !bok {
		return pa.value, pb.value, variantMismatch(sb, "Ready", []string{"a", "b"}, l,
			[]any{pa, pb}, []bool{aok, bok})
	}
	return pa.value, pb.value, sb.Because("expected a's value %s b's value", r).
		Operand("a", l[0], pa).
		Operand("b", l[1], pb).
		SmartCmpDiff(pa.value, pb.value).Summary
}

func readyX[T comparable](site callSite, r relation, a <-chan T, x T) (T, *failure.Summary) {
	pa := poll(a)
	ok := pa.state == pollReady
	if ok && holdsEq(r, pa.value, x) {
		return pa.value, nil
	}
	l := site.labels("a", "x")
	sb := site.builder(comparison.TypeOf[T]())
	if ok {
		sb.Because("expected a's value %s x", r)
	} else {
		sb.Because("expected a to be Ready")
	}
	return pa.value, sb.Operand("a", l[0], pa).
		Operand("x", l[1], x).
		SmartCmpDiff(pa.value, x).Summary
}

// ReadyAsResult is like Ready, but returns the failure as an error instead of
// panicking.
func ReadyAsResult[T any](a <-chan T) (T, error) {
	v, s := expectReady(caller("ReadyAsResult"), a)
	return v, result(s)
}

// Ready asserts that a value can be received from a without blocking, and
// returns it.
//
// A closed channel is not Ready. The received value is consumed.
func Ready[T any](a <-chan T, msg ...any) T {
	v, s := expectReady(caller("Ready"), a)
	raise(s, msg)
	return v
}

// DebugReady is Ready if DebugAssertions is set, and a no-op otherwise.
func DebugReady[T any](a <-chan T, msg ...any) {
	if DebugAssertions {
		_, s := expectReady(caller("DebugReady"), a)
		raise(s, msg)
	}
}

// PendingAsResult is like Pending, but returns the failure as an error instead
// of panicking.
func PendingAsResult[T any](a <-chan T) error {
	return result(expectPending(caller("PendingAsResult"), a))
}

// Pending asserts that receiving from a would block.
//
// If a value is available it is consumed and the assertion fails.
func Pending[T any](a <-chan T, msg ...any) {
	raise(expectPending(caller("Pending"), a), msg)
}

// DebugPending is Pending if DebugAssertions is set, and a no-op otherwise.
func DebugPending[T any](a <-chan T, msg ...any) {
	if DebugAssertions {
		raise(expectPending(caller("DebugPending"), a), msg)
	}
}

// ReadyEqAsResult is like ReadyEq, but returns the failure as an error instead
// of panicking.
func ReadyEqAsResult[T comparable](a, b <-chan T) (T, T, error) {
	va, vb, s := readyPair(caller("ReadyEqAsResult"), relEq, a, b)
	return va, vb, result(s)
}

// ReadyEq asserts that a and b are both Ready with equal values, and returns
// both values.
func ReadyEq[T comparable](a, b <-chan T, msg ...any) (T, T) {
	va, vb, s := readyPair(caller("ReadyEq"), relEq, a, b)
	raise(s, msg)
	return va, vb
}

// DebugReadyEq is ReadyEq if DebugAssertions is set, and a no-op otherwise.
func DebugReadyEq[T comparable](a, b <-chan T, msg ...any) {
	if DebugAssertions {
		_, _, s := readyPair(caller("DebugReadyEq"), relEq, a, b)
		raise(s, msg)
	}
}

// ReadyNeAsResult is like ReadyNe, but returns the failure as an error instead
// of panicking.
func ReadyNeAsResult[T comparable](a, b <-chan T) (T, T, error) {
	va, vb, s := readyPair(caller("ReadyNeAsResult"), relNe, a, b)
	return va, vb, result(s)
}

// ReadyNe asserts that a and b are both Ready with different values, and
// returns both values.
func ReadyNe[T comparable](a, b <-chan T, msg ...any) (T, T) {
	va, vb, s := readyPair(caller("ReadyNe"), relNe, a, b)
	raise(s, msg)
	return va, vb
}

// DebugReadyNe is ReadyNe if DebugAssertions is set, and a no-op otherwise.
func DebugReadyNe[T comparable](a, b <-chan T, msg ...any) {
	if DebugAssertions {
		_, _, s := readyPair(caller("DebugReadyNe"), relNe, a, b)
		raise(s, msg)
	}
}

// ReadyEqXAsResult is like ReadyEqX, but returns the failure as an error
// instead of panicking.
func ReadyEqXAsResult[T comparable](a <-chan T, x T) (T, error) {
	v, s := readyX(caller("ReadyEqXAsResult"), relEq, a, x)
	return v, result(s)
}

// ReadyEqX asserts that a is Ready with a value equal to x, and returns the
// value.
func ReadyEqX[T comparable](a <-chan T, x T, msg ...any) T {
	v, s := readyX(caller("ReadyEqX"), relEq, a, x)
	raise(s, msg)
	return v
}

// DebugReadyEqX is ReadyEqX if DebugAssertions is set, and a no-op otherwise.
func DebugReadyEqX[T comparable](a <-chan T, x T, msg ...any) {
	if DebugAssertions {
		_, s := readyX(caller("DebugReadyEqX"), relEq, a, x)
		raise(s, msg)
	}
}

// ReadyNeXAsResult is like ReadyNeX, but returns the failure as an error
// instead of panicking.
func ReadyNeXAsResult[T comparable](a <-chan T, x T) (T, error) {
	v, s := readyX(caller("ReadyNeXAsResult"), relNe, a, x)
	return v, result(s)
}

// ReadyNeX asserts that a is Ready with a value different from x, and returns
// the value.
func ReadyNeX[T comparable](a <-chan T, x T, msg ...any) T {
	v, s := readyX(caller("ReadyNeX"), relNe, a, x)
	raise(s, msg)
	return v
}

// DebugReadyNeX is ReadyNeX if DebugAssertions is set, and a no-op otherwise.
func DebugReadyNeX[T comparable](a <-chan T, x T, msg ...any) {
	if DebugAssertions {
		_, s := readyX(caller("DebugReadyNeX"), relNe, a, x)
		raise(s, msg)
	}
}
