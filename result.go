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
	"errors"
	"fmt"

	"go.chromium.org/assertables/comparison"
	"go.chromium.org/assertables/failure"
)

// Result is the (value, error) pair returned by a fallible Go function, held
// as a single value.
//
// A Result with a nil Err is "Ok"; otherwise it is "Err" and Value is
// ignored.
type Result[T any] struct {
	Value T
	Err   error
}

// R builds a Result, typically from a function call: R(strconv.Atoi(s)).
func R[T any](v T, err error) Result[T] {
	return Result[T]{Value: v, Err: err}
}

// IsOk returns true if r holds no error.
func (r Result[T]) IsOk() bool {
	return r.Err == nil
}

// GoString renders the Result as Ok(value) or Err("message").
func (r Result[T]) GoString() string {
	if r.Err != nil {
		return fmt.Sprintf("Err(%q)", r.Err.Error())
	}
	return "Ok(" + comparison.Debug(r.Value) + ")"
}

func (r Result[T]) variant() string {
	if r.IsOk() {
		return "Ok"
	}
	return "Err"
}

func expectOk[T any](site callSite, a Result[T]) (T, *failure.Summary) {
	if a.IsOk() {
		return a.Value, nil
	}
	var zero T
	return zero, site.builder(comparison.TypeOf[T]()).
		Because("expected a to be Ok").
		Operand("a", site.pairLabel("a"), a).Summary
}

func expectErr[T any](site callSite, a Result[T]) (error, *failure.Summary) {
	if !a.IsOk() {
		return a.Err, nil
	}
	return nil, site.builder(comparison.TypeOf[T]()).
		Because("expected a to be Err").
		Operand("a", site.pairLabel("a"), a).Summary
}

// variantMismatch describes operands which are not all of the wanted variant.
func variantMismatch(sb *comparison.SummaryBuilder, want string, roles, labels []string, values []any, isWant []bool) *failure.Summary {
	for i, ok := range isWant {
		if !ok {
			sb.Because("expected %s to be %s", roles[i], want)
			break
		}
	}
	for i := range roles {
		sb.Operand(roles[i], labels[i], values[i])
	}
	return sb.Summary
}

func okPair[T comparable](site callSite, r relation, a, b Result[T]) (T, T, *failure.Summary) {
	if a.IsOk() && b.IsOk() && holdsEq(r, a.Value, b.Value) {
		return a.Value, b.Value, nil
	}
	l := site.labels("a", "b")
	sb := site.builder(comparison.TypeOf[T]())
	if !a.IsOk() || !b.IsOk() {
		return a.Value, b.Value, variantMismatch(sb, "Ok", []string{"a", "b"}, l,
			[]any{a, b}, []bool{a.IsOk(), b.IsOk()})
	}
	return a.Value, b.Value, sb.Because("expected a's value %s b's value", r).
		Operand("a", l[0], a).
		Operand("b", l[1], b).
		SmartCmpDiff(a.Value, b.Value).Summary
}

func okX[T comparable](site callSite, r relation, a Result[T], x T) (T, *failure.Summary) {
	if a.IsOk() && holdsEq(r, a.Value, x) {
		return a.Value, nil
	}
	l := site.labels("a", "x")
	sb := site.builder(comparison.TypeOf[T]())
	if a.IsOk() {
		sb.Because("expected a's value %s x", r)
	} else {
		sb.Because("expected a to be Ok")
	}
	return a.Value, sb.Operand("a", l[0], a).
		Operand("x", l[1], x).
		SmartCmpDiff(a.Value, x).Summary
}

func errPair[T any](site callSite, r relation, a, b Result[T]) (error, error, *failure.Summary) {
	if !a.IsOk() && !b.IsOk() && holdsEq(r, a.Err.Error(), b.Err.Error()) {
		return a.Err, b.Err, nil
	}
	l := site.labels("a", "b")
	sb := site.builder(comparison.TypeOf[T]())
	if a.IsOk() || b.IsOk() {
		return a.Err, b.Err, variantMismatch(sb, "Err", []string{"a", "b"}, l,
			[]any{a, b}, []bool{!a.IsOk(), !b.IsOk()})
	}
	return a.Err, b.Err, sb.Because("expected a's error text %s b's error text", r).
		Operand("a", l[0], a).
		Operand("b", l[1], b).Summary
}

func errX[T any](site callSite, r relation, a Result[T], x string) (error, *failure.Summary) {
	if !a.IsOk() && holdsEq(r, a.Err.Error(), x) {
		return a.Err, nil
	}
	l := site.labels("a", "x")
	sb := site.builder(comparison.TypeOf[T]())
	if a.IsOk() {
		sb.Because("expected a to be Err")
	} else {
		sb.Because("expected a's error text %s x", r)
	}
	return a.Err, sb.Operand("a", l[0], a).
		Operand("x", l[1], x).Summary
}

func errIs[T any](site callSite, a Result[T], target error) (error, *failure.Summary) {
	if !a.IsOk() && errors.Is(a.Err, target) {
		return a.Err, nil
	}
	l := site.labels("a", "target")
	sb := site.builder(comparison.TypeOf[T]())
	if a.IsOk() {
		sb.Because("expected a to be Err")
	} else {
		sb.Because("expected errors.Is(a, target)")
	}
	return a.Err, sb.Operand("a", l[0], a).
		Operand("target", l[1], target).Summary
}

// OkAsResult is like Ok, but returns the failure as an error instead of
// panicking.
func OkAsResult[T any](v T, err error) (T, error) {
	v, s := expectOk(caller("OkAsResult"), R(v, err))
	return v, result(s)
}

// Ok asserts that err is nil, and returns v.
//
// It is usually called directly on a function's results:
//
//	n := assertables.Ok(strconv.Atoi("12"))
func Ok[T any](v T, err error, msg ...any) T {
	v, s := expectOk(caller("Ok"), R(v, err))
	raise(s, msg)
	return v
}

// DebugOk is Ok if DebugAssertions is set, and a no-op otherwise.
func DebugOk[T any](v T, err error, msg ...any) {
	if DebugAssertions {
		_, s := expectOk(caller("DebugOk"), R(v, err))
		raise(s, msg)
	}
}

// ErrAsResult is like Err, but returns the failure as an error instead of
// panicking.
func ErrAsResult[T any](v T, err error) (error, error) {
	err, s := expectErr(caller("ErrAsResult"), R(v, err))
	return err, result(s)
}

// Err asserts that err is not nil, and returns it.
func Err[T any](v T, err error, msg ...any) error {
	err, s := expectErr(caller("Err"), R(v, err))
	raise(s, msg)
	return err
}

// DebugErr is Err if DebugAssertions is set, and a no-op otherwise.
func DebugErr[T any](v T, err error, msg ...any) {
	if DebugAssertions {
		_, s := expectErr(caller("DebugErr"), R(v, err))
		raise(s, msg)
	}
}

// OkEqAsResult is like OkEq, but returns the failure as an error instead of
// panicking.
func OkEqAsResult[T comparable](a, b Result[T]) (T, T, error) {
	va, vb, s := okPair(caller("OkEqAsResult"), relEq, a, b)
	return va, vb, result(s)
}

// OkEq asserts that a and b are both Ok with equal values, and returns the
// values.
func OkEq[T comparable](a, b Result[T], msg ...any) (T, T) {
	va, vb, s := okPair(caller("OkEq"), relEq, a, b)
	raise(s, msg)
	return va, vb
}

// DebugOkEq is OkEq if DebugAssertions is set, and a no-op otherwise.
func DebugOkEq[T comparable](a, b Result[T], msg ...any) {
	if DebugAssertions {
		_, _, s := okPair(caller("DebugOkEq"), relEq, a, b)
		raise(s, msg)
	}
}

// OkNeAsResult is like OkNe, but returns the failure as an error instead of
// panicking.
func OkNeAsResult[T comparable](a, b Result[T]) (T, T, error) {
	va, vb, s := okPair(caller("OkNeAsResult"), relNe, a, b)
	return va, vb, result(s)
}

// OkNe asserts that a and b are both Ok with different values, and returns the
// values.
func OkNe[T comparable](a, b Result[T], msg ...any) (T, T) {
	va, vb, s := okPair(caller("OkNe"), relNe, a, b)
	raise(s, msg)
	return va, vb
}

// DebugOkNe is OkNe if DebugAssertions is set, and a no-op otherwise.
func DebugOkNe[T comparable](a, b Result[T], msg ...any) {
	if DebugAssertions {
		_, _, s := okPair(caller("DebugOkNe"), relNe, a, b)
		raise(s, msg)
	}
}

// OkEqXAsResult is like OkEqX, but returns the failure as an error instead of
// panicking.
func OkEqXAsResult[T comparable](a Result[T], x T) (T, error) {
	v, s := okX(caller("OkEqXAsResult"), relEq, a, x)
	return v, result(s)
}

// OkEqX asserts that a is Ok with a value equal to x, and returns the value.
func OkEqX[T comparable](a Result[T], x T, msg ...any) T {
	v, s := okX(caller("OkEqX"), relEq, a, x)
	raise(s, msg)
	return v
}

// DebugOkEqX is OkEqX if DebugAssertions is set, and a no-op otherwise.
func DebugOkEqX[T comparable](a Result[T], x T, msg ...any) {
	if DebugAssertions {
		_, s := okX(caller("DebugOkEqX"), relEq, a, x)
		raise(s, msg)
	}
}

// OkNeXAsResult is like OkNeX, but returns the failure as an error instead of
// panicking.
func OkNeXAsResult[T comparable](a Result[T], x T) (T, error) {
	v, s := okX(caller("OkNeXAsResult"), relNe, a, x)
	return v, result(s)
}

// OkNeX asserts that a is Ok with a value different from x, and returns the
// value.
func OkNeX[T comparable](a Result[T], x T, msg ...any) T {
	v, s := okX(caller("OkNeX"), relNe, a, x)
	raise(s, msg)
	return v
}

// DebugOkNeX is OkNeX if DebugAssertions is set, and a no-op otherwise.
func DebugOkNeX[T comparable](a Result[T], x T, msg ...any) {
	if DebugAssertions {
		_, s := okX(caller("DebugOkNeX"), relNe, a, x)
		raise(s, msg)
	}
}

// ErrEqAsResult is like ErrEq, but returns the failure as an error instead of
// panicking.
func ErrEqAsResult[T any](a, b Result[T]) (error, error, error) {
	ea, eb, s := errPair(caller("ErrEqAsResult"), relEq, a, b)
	return ea, eb, result(s)
}

// ErrEq asserts that a and b are both Err with the same error text, and returns
// the errors.
func ErrEq[T any](a, b Result[T], msg ...any) (error, error) {
	ea, eb, s := errPair(caller("ErrEq"), relEq, a, b)
	raise(s, msg)
	return ea, eb
}

// DebugErrEq is ErrEq if DebugAssertions is set, and a no-op otherwise.
func DebugErrEq[T any](a, b Result[T], msg ...any) {
	if DebugAssertions {
		_, _, s := errPair(caller("DebugErrEq"), relEq, a, b)
		raise(s, msg)
	}
}

// ErrNeAsResult is like ErrNe, but returns the failure as an error instead of
// panicking.
func ErrNeAsResult[T any](a, b Result[T]) (error, error, error) {
	ea, eb, s := errPair(caller("ErrNeAsResult"), relNe, a, b)
	return ea, eb, result(s)
}

// ErrNe asserts that a and b are both Err with different error text, and
// returns the errors.
func ErrNe[T any](a, b Result[T], msg ...any) (error, error) {
	ea, eb, s := errPair(caller("ErrNe"), relNe, a, b)
	raise(s, msg)
	return ea, eb
}

// DebugErrNe is ErrNe if DebugAssertions is set, and a no-op otherwise.
func DebugErrNe[T any](a, b Result[T], msg ...any) {
	if DebugAssertions {
		_, _, s := errPair(caller("DebugErrNe"), relNe, a, b)
		raise(s, msg)
	}
}

// ErrEqXAsResult is like ErrEqX, but returns the failure as an error instead of
// panicking.
func ErrEqXAsResult[T any](a Result[T], x string) (error, error) {
	err, s := errX(caller("ErrEqXAsResult"), relEq, a, x)
	return err, result(s)
}

// ErrEqX asserts that a is Err and its error text is x, and returns the error.
func ErrEqX[T any](a Result[T], x string, msg ...any) error {
	err, s := errX(caller("ErrEqX"), relEq, a, x)
	raise(s, msg)
	return err
}

// DebugErrEqX is ErrEqX if DebugAssertions is set, and a no-op otherwise.
func DebugErrEqX[T any](a Result[T], x string, msg ...any) {
	if DebugAssertions {
		_, s := errX(caller("DebugErrEqX"), relEq, a, x)
		raise(s, msg)
	}
}

// ErrNeXAsResult is like ErrNeX, but returns the failure as an error instead of
// panicking.
func ErrNeXAsResult[T any](a Result[T], x string) (error, error) {
	err, s := errX(caller("ErrNeXAsResult"), relNe, a, x)
	return err, result(s)
}

// ErrNeX asserts that a is Err and its error text is not x, and returns the
// error.
func ErrNeX[T any](a Result[T], x string, msg ...any) error {
	err, s := errX(caller("ErrNeX"), relNe, a, x)
	raise(s, msg)
	return err
}

// DebugErrNeX is ErrNeX if DebugAssertions is set, and a no-op otherwise.
func DebugErrNeX[T any](a Result[T], x string, msg ...any) {
	if DebugAssertions {
		_, s := errX(caller("DebugErrNeX"), relNe, a, x)
		raise(s, msg)
	}
}

// ErrIsAsResult is like ErrIs, but returns the failure as an error instead of
// panicking.
func ErrIsAsResult[T any](a Result[T], target error) (error, error) {
	err, s := errIs(caller("ErrIsAsResult"), a, target)
	return err, result(s)
}

// ErrIs asserts that a is Err and errors.Is(a.Err, target), and returns the
// error.
func ErrIs[T any](a Result[T], target error, msg ...any) error {
	err, s := errIs(caller("ErrIs"), a, target)
	raise(s, msg)
	return err
}

// DebugErrIs is ErrIs if DebugAssertions is set, and a no-op otherwise.
func DebugErrIs[T any](a Result[T], target error, msg ...any) {
	if DebugAssertions {
		_, s := errIs(caller("DebugErrIs"), a, target)
		raise(s, msg)
	}
}
