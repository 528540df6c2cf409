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

func fnErrPair[T any](site callSite, r relation, a, b func() (T, error)) (error, error, *failure.Summary) {
	if s := nilFunc(site, comparison.TypeOf[T](), []string{"a", "b"}, a == nil, b == nil); s != nil {
		return nil, nil, s
	}
	ra, rb := callResult(a), callResult(b)
	if !ra.IsOk() && !rb.IsOk() && holdsEq(r, ra.Err.Error(), rb.Err.Error()) {
		return ra.Err, rb.Err, nil
	}
	l := site.labels("a", "b")
	sb := site.builder(comparison.TypeOf[T]())
	if ra.IsOk() || rb.IsOk() {
		return ra.Err, rb.Err, variantMismatch(sb, "Err", []string{"a", "b"}, l,
			[]any{ra, rb}, []bool{!ra.IsOk(), !rb.IsOk()})
	}
	return ra.Err, rb.Err, sb.Because("expected a()'s error text %s b()'s error text", r).
		Operand("a", l[0], ra).
		Operand("b", l[1], rb).Summary
}

func fnErrX[T any](site callSite, r relation, a func() (T, error), x string) (error, *failure.Summary) {
	if s := nilFunc(site, comparison.TypeOf[T](), []string{"a", "x"}, a == nil); s != nil {
		return nil, s
	}
	ra := callResult(a)
	if !ra.IsOk() && holdsEq(r, ra.Err.Error(), x) {
		return ra.Err, nil
	}
	l := site.labels("a", "x")
	sb := site.builder(comparison.TypeOf[T]())
	if ra.IsOk() {
		sb.Because("expected a() to be Err")
	} else {
		sb.Because("expected a()'s error text %s x", r)
	}
	return ra.Err, sb.Operand("a", l[0], ra).
		Operand("x", l[1], x).Summary
}

// FnErrEqAsResult is like FnErrEq, but returns the failure as an error instead
// of panicking.
func FnErrEqAsResult[T any](a, b func() (T, error)) (error, error, error) {
	ea, eb, s := fnErrPair(caller("FnErrEqAsResult"), relEq, a, b)
	return ea, eb, result(s)
}

// FnErrEq asserts that a() and b() both fail with the same error text, and
// returns both errors.
func FnErrEq[T any](a, b func() (T, error), msg ...any) (error, error) {
	ea, eb, s := fnErrPair(caller("FnErrEq"), relEq, a, b)
	raise(s, msg)
	return ea, eb
}

// DebugFnErrEq is FnErrEq if DebugAssertions is set, and a no-op otherwise.
func DebugFnErrEq[T any](a, b func() (T, error), msg ...any) {
	if DebugAssertions {
		_, _, s := fnErrPair(caller("DebugFnErrEq"), relEq, a, b)
		raise(s, msg)
	}
}

// FnErrNeAsResult is like FnErrNe, but returns the failure as an error instead
// of panicking.
func FnErrNeAsResult[T any](a, b func() (T, error)) (error, error, error) {
	ea, eb, s := fnErrPair(caller("FnErrNeAsResult"), relNe, a, b)
	return ea, eb, result(s)
}

// FnErrNe asserts that a() and b() both fail with different error text, and
// returns both errors.
func FnErrNe[T any](a, b func() (T, error), msg ...any) (error, error) {
	ea, eb, s := fnErrPair(caller("FnErrNe"), relNe, a, b)
	raise(s, msg)
	return ea, eb
}

// DebugFnErrNe is FnErrNe if DebugAssertions is set, and a no-op otherwise.
func DebugFnErrNe[T any](a, b func() (T, error), msg ...any) {
	if DebugAssertions {
		_, _, s := fnErrPair(caller("DebugFnErrNe"), relNe, a, b)
		raise(s, msg)
	}
}

// FnErrEqXAsResult is like FnErrEqX, but returns the failure as an error
// instead of panicking.
func FnErrEqXAsResult[T any](a func() (T, error), x string) (error, error) {
	err, s := fnErrX(caller("FnErrEqXAsResult"), relEq, a, x)
	return err, result(s)
}

// FnErrEqX asserts that a() fails with error text x, and returns the error.
func FnErrEqX[T any](a func() (T, error), x string, msg ...any) error {
	err, s := fnErrX(caller("FnErrEqX"), relEq, a, x)
	raise(s, msg)
	return err
}

// DebugFnErrEqX is FnErrEqX if DebugAssertions is set, and a no-op otherwise.
func DebugFnErrEqX[T any](a func() (T, error), x string, msg ...any) {
	if DebugAssertions {
		_, s := fnErrX(caller("DebugFnErrEqX"), relEq, a, x)
		raise(s, msg)
	}
}

// FnErrNeXAsResult is like FnErrNeX, but returns the failure as an error
// instead of panicking.
func FnErrNeXAsResult[T any](a func() (T, error), x string) (error, error) {
	err, s := fnErrX(caller("FnErrNeXAsResult"), relNe, a, x)
	return err, result(s)
}

// FnErrNeX asserts that a() fails with error text other than x, and returns the
// error.
func FnErrNeX[T any](a func() (T, error), x string, msg ...any) error {
	err, s := fnErrX(caller("FnErrNeX"), relNe, a, x)
	raise(s, msg)
	return err
}

// DebugFnErrNeX is FnErrNeX if DebugAssertions is set, and a no-op otherwise.
func DebugFnErrNeX[T any](a func() (T, error), x string, msg ...any) {
	if DebugAssertions {
		_, s := fnErrX(caller("DebugFnErrNeX"), relNe, a, x)
		raise(s, msg)
	}
}
