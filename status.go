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
	"os/exec"

	"go.chromium.org/assertables/comparison"
	"go.chromium.org/assertables/failure"
	"go.chromium.org/assertables/internal/errors"
)

// ErrSignaled is the Cause of status code failures for processes which were
// terminated by a signal and so have no exit code.
var ErrSignaled = errors.New("terminated by a signal")

// status is the exit code of a command run by an assertion.
type status struct {
	role string
	cmd  *exec.Cmd
	code int
	err  error
}

// runStatus runs cmd. With needCode, a process terminated by a signal is an
// error, since it has no exit code.
func runStatus(role string, cmd *exec.Cmd, needCode bool) status {
	st := status{role: role, cmd: cmd, code: -1}
	out, err := runCmd(cmd)
	switch {
	case err != nil:
		st.err = err
	case out.ExitCode < 0 && needCode:
		st.err = ErrSignaled
	default:
		st.code = out.ExitCode
	}
	return st
}

func (st *status) describe(sb *comparison.SummaryBuilder, label string) {
	sb.Operand(st.role, label, cmdDebug(st.cmd))
	if st.err != nil {
		sb.AddFindingf(st.role+" error", "%s", st.err).Cause(st.err)
		return
	}
	sb.Derived(st.role+" code", st.code)
}

func (st *status) unavailable(sb *comparison.SummaryBuilder) bool {
	if st.err == nil {
		return false
	}
	sb.Because("could not obtain the exit code of %s", st.role)
	return true
}

func statusIs(site callSite, success bool, a *exec.Cmd) (int, *failure.Summary) {
	st := runStatus("a", a, false)
	if st.err == nil && (st.code == 0) == success {
		return st.code, nil
	}
	sb := site.builder()
	if !st.unavailable(sb) {
		if success {
			sb.Because("expected a to exit successfully")
		} else {
			sb.Because("expected a to fail")
		}
	}
	st.describe(sb, site.labels("a")[0])
	return st.code, sb.Summary
}

func statusPair(site callSite, r relation, a, b *exec.Cmd) (int, int, *failure.Summary) {
	sa, sb := runStatus("a", a, true), runStatus("b", b, true)
	if sa.err == nil && sb.err == nil && holds(r, sa.code, sb.code) {
		return sa.code, sb.code, nil
	}
	l := site.labels("a", "b")
	bld := site.builder()
	if !sa.unavailable(bld) && !sb.unavailable(bld) {
		bld.Because("expected a code %s b code", r)
	}
	sa.describe(bld, l[0])
	sb.describe(bld, l[1])
	return sa.code, sb.code, bld.Summary
}

func statusX(site callSite, r relation, a *exec.Cmd, x int) (int, *failure.Summary) {
	st := runStatus("a", a, true)
	if st.err == nil && holds(r, st.code, x) {
		return st.code, nil
	}
	l := site.labels("a", "x")
	sb := site.builder()
	if !st.unavailable(sb) {
		sb.Because("expected a code %s x", r)
	}
	st.describe(sb, l[0])
	return st.code, sb.Operand("x", l[1], x).Summary
}

// StatusSuccessAsResult is like StatusSuccess, but returns the failure as an
// error instead of panicking.
func StatusSuccessAsResult(a *exec.Cmd) (int, error) {
	code, s := statusIs(caller("StatusSuccessAsResult"), true, a)
	return code, result(s)
}

// StatusSuccess runs a and asserts that it exits with status 0. It returns the
// exit code.
//
// The command runs exactly once, to completion, with its output discarded.
func StatusSuccess(a *exec.Cmd, msg ...any) int {
	code, s := statusIs(caller("StatusSuccess"), true, a)
	raise(s, msg)
	return code
}

// DebugStatusSuccess is StatusSuccess if DebugAssertions is set, and a no-op
// otherwise.
func DebugStatusSuccess(a *exec.Cmd, msg ...any) {
	if DebugAssertions {
		_, s := statusIs(caller("DebugStatusSuccess"), true, a)
		raise(s, msg)
	}
}

// StatusFailureAsResult is like StatusFailure, but returns the failure as an
// error instead of panicking.
func StatusFailureAsResult(a *exec.Cmd) (int, error) {
	code, s := statusIs(caller("StatusFailureAsResult"), false, a)
	return code, result(s)
}

// StatusFailure runs a and asserts that it does not exit with status 0. It
// returns the exit code, which is -1 if the process was terminated by a signal.
//
// A command which cannot be started fails this assertion too.
func StatusFailure(a *exec.Cmd, msg ...any) int {
	code, s := statusIs(caller("StatusFailure"), false, a)
	raise(s, msg)
	return code
}

// DebugStatusFailure is StatusFailure if DebugAssertions is set, and a no-op
// otherwise.
func DebugStatusFailure(a *exec.Cmd, msg ...any) {
	if DebugAssertions {
		_, s := statusIs(caller("DebugStatusFailure"), false, a)
		raise(s, msg)
	}
}

// StatusCodeValueEqAsResult is like StatusCodeValueEq, but returns the failure
// as an error instead of panicking.
func StatusCodeValueEqAsResult(a, b *exec.Cmd) (int, int, error) {
	ca, cb, s := statusPair(caller("StatusCodeValueEqAsResult"), relEq, a, b)
	return ca, cb, result(s)
}

// StatusCodeValueEq runs a and b and asserts that the exit code of a == that of
// b. It returns both codes.
//
// A process terminated by a signal has no exit code and fails the assertion
// with ErrSignaled as the Cause.
func StatusCodeValueEq(a, b *exec.Cmd, msg ...any) (int, int) {
	ca, cb, s := statusPair(caller("StatusCodeValueEq"), relEq, a, b)
	raise(s, msg)
	return ca, cb
}

// DebugStatusCodeValueEq is StatusCodeValueEq if DebugAssertions is set, and a
// no-op otherwise.
func DebugStatusCodeValueEq(a, b *exec.Cmd, msg ...any) {
	if DebugAssertions {
		_, _, s := statusPair(caller("DebugStatusCodeValueEq"), relEq, a, b)
		raise(s, msg)
	}
}

// StatusCodeValueNeAsResult is like StatusCodeValueNe, but returns the failure
// as an error instead of panicking.
func StatusCodeValueNeAsResult(a, b *exec.Cmd) (int, int, error) {
	ca, cb, s := statusPair(caller("StatusCodeValueNeAsResult"), relNe, a, b)
	return ca, cb, result(s)
}

// StatusCodeValueNe runs a and b and asserts that the exit code of a != that of
// b. It returns both codes.
func StatusCodeValueNe(a, b *exec.Cmd, msg ...any) (int, int) {
	ca, cb, s := statusPair(caller("StatusCodeValueNe"), relNe, a, b)
	raise(s, msg)
	return ca, cb
}

// DebugStatusCodeValueNe is StatusCodeValueNe if DebugAssertions is set, and a
// no-op otherwise.
func DebugStatusCodeValueNe(a, b *exec.Cmd, msg ...any) {
	if DebugAssertions {
		_, _, s := statusPair(caller("DebugStatusCodeValueNe"), relNe, a, b)
		raise(s, msg)
	}
}

// StatusCodeValueLtAsResult is like StatusCodeValueLt, but returns the failure
// as an error instead of panicking.
func StatusCodeValueLtAsResult(a, b *exec.Cmd) (int, int, error) {
	ca, cb, s := statusPair(caller("StatusCodeValueLtAsResult"), relLt, a, b)
	return ca, cb, result(s)
}

// StatusCodeValueLt runs a and b and asserts that the exit code of a < that of
// b. It returns both codes.
func StatusCodeValueLt(a, b *exec.Cmd, msg ...any) (int, int) {
	ca, cb, s := statusPair(caller("StatusCodeValueLt"), relLt, a, b)
	raise(s, msg)
	return ca, cb
}

// DebugStatusCodeValueLt is StatusCodeValueLt if DebugAssertions is set, and a
// no-op otherwise.
func DebugStatusCodeValueLt(a, b *exec.Cmd, msg ...any) {
	if DebugAssertions {
		_, _, s := statusPair(caller("DebugStatusCodeValueLt"), relLt, a, b)
		raise(s, msg)
	}
}

// StatusCodeValueLeAsResult is like StatusCodeValueLe, but returns the failure
// as an error instead of panicking.
func StatusCodeValueLeAsResult(a, b *exec.Cmd) (int, int, error) {
	ca, cb, s := statusPair(caller("StatusCodeValueLeAsResult"), relLe, a, b)
	return ca, cb, result(s)
}

// StatusCodeValueLe runs a and b and asserts that the exit code of a <= that of
// b. It returns both codes.
func StatusCodeValueLe(a, b *exec.Cmd, msg ...any) (int, int) {
	ca, cb, s := statusPair(caller("StatusCodeValueLe"), relLe, a, b)
	raise(s, msg)
	return ca, cb
}

// DebugStatusCodeValueLe is StatusCodeValueLe if DebugAssertions is set, and a
// no-op otherwise.
func DebugStatusCodeValueLe(a, b *exec.Cmd, msg ...any) {
	if DebugAssertions {
		_, _, s := statusPair(caller("DebugStatusCodeValueLe"), relLe, a, b)
		raise(s, msg)
	}
}

// StatusCodeValueGtAsResult is like StatusCodeValueGt, but returns the failure
// as an error instead of panicking.
func StatusCodeValueGtAsResult(a, b *exec.Cmd) (int, int, error) {
	ca, cb, s := statusPair(caller("StatusCodeValueGtAsResult"), relGt, a, b)
	return ca, cb, result(s)
}

// StatusCodeValueGt runs a and b and asserts that the exit code of a > that of
// b. It returns both codes.
func StatusCodeValueGt(a, b *exec.Cmd, msg ...any) (int, int) {
	ca, cb, s := statusPair(caller("StatusCodeValueGt"), relGt, a, b)
	raise(s, msg)
	return ca, cb
}

// DebugStatusCodeValueGt is StatusCodeValueGt if DebugAssertions is set, and a
// no-op otherwise.
func DebugStatusCodeValueGt(a, b *exec.Cmd, msg ...any) {
	if DebugAssertions {
		_, _, s := statusPair(caller("DebugStatusCodeValueGt"), relGt, a, b)
		raise(s, msg)
	}
}

// StatusCodeValueGeAsResult is like StatusCodeValueGe, but returns the failure
// as an error instead of panicking.
func StatusCodeValueGeAsResult(a, b *exec.Cmd) (int, int, error) {
	ca, cb, s := statusPair(caller("StatusCodeValueGeAsResult"), relGe, a, b)
	return ca, cb, result(s)
}

// StatusCodeValueGe runs a and b and asserts that the exit code of a >= that of
// b. It returns both codes.
func StatusCodeValueGe(a, b *exec.Cmd, msg ...any) (int, int) {
	ca, cb, s := statusPair(caller("StatusCodeValueGe"), relGe, a, b)
	raise(s, msg)
	return ca, cb
}

// DebugStatusCodeValueGe is StatusCodeValueGe if DebugAssertions is set, and a
// no-op otherwise.
func DebugStatusCodeValueGe(a, b *exec.Cmd, msg ...any) {
	if DebugAssertions {
		_, _, s := statusPair(caller("DebugStatusCodeValueGe"), relGe, a, b)
		raise(s, msg)
	}
}

// StatusCodeValueEqXAsResult is like StatusCodeValueEqX, but returns the
// failure as an error instead of panicking.
func StatusCodeValueEqXAsResult(a *exec.Cmd, x int) (int, error) {
	ca, s := statusX(caller("StatusCodeValueEqXAsResult"), relEq, a, x)
	return ca, result(s)
}

// StatusCodeValueEqX runs a and asserts that its exit code == x. It returns the
// code.
func StatusCodeValueEqX(a *exec.Cmd, x int, msg ...any) int {
	ca, s := statusX(caller("StatusCodeValueEqX"), relEq, a, x)
	raise(s, msg)
	return ca
}

// DebugStatusCodeValueEqX is StatusCodeValueEqX if DebugAssertions is set, and
// a no-op otherwise.
func DebugStatusCodeValueEqX(a *exec.Cmd, x int, msg ...any) {
	if DebugAssertions {
		_, s := statusX(caller("DebugStatusCodeValueEqX"), relEq, a, x)
		raise(s, msg)
	}
}

// StatusCodeValueNeXAsResult is like StatusCodeValueNeX, but returns the
// failure as an error instead of panicking.
func StatusCodeValueNeXAsResult(a *exec.Cmd, x int) (int, error) {
	ca, s := statusX(caller("StatusCodeValueNeXAsResult"), relNe, a, x)
	return ca, result(s)
}

// StatusCodeValueNeX runs a and asserts that its exit code != x. It returns the
// code.
func StatusCodeValueNeX(a *exec.Cmd, x int, msg ...any) int {
	ca, s := statusX(caller("StatusCodeValueNeX"), relNe, a, x)
	raise(s, msg)
	return ca
}

// DebugStatusCodeValueNeX is StatusCodeValueNeX if DebugAssertions is set, and
// a no-op otherwise.
func DebugStatusCodeValueNeX(a *exec.Cmd, x int, msg ...any) {
	if DebugAssertions {
		_, s := statusX(caller("DebugStatusCodeValueNeX"), relNe, a, x)
		raise(s, msg)
	}
}

// StatusCodeValueLtXAsResult is like StatusCodeValueLtX, but returns the
// failure as an error instead of panicking.
func StatusCodeValueLtXAsResult(a *exec.Cmd, x int) (int, error) {
	ca, s := statusX(caller("StatusCodeValueLtXAsResult"), relLt, a, x)
	return ca, result(s)
}

// StatusCodeValueLtX runs a and asserts that its exit code < x. It returns the
// code.
func StatusCodeValueLtX(a *exec.Cmd, x int, msg ...any) int {
	ca, s := statusX(caller("StatusCodeValueLtX"), relLt, a, x)
	raise(s, msg)
	return ca
}

// DebugStatusCodeValueLtX is StatusCodeValueLtX if DebugAssertions is set, and
// a no-op otherwise.
func DebugStatusCodeValueLtX(a *exec.Cmd, x int, msg ...any) {
	if DebugAssertions {
		_, s := statusX(caller("DebugStatusCodeValueLtX"), relLt, a, x)
		raise(s, msg)
	}
}

// StatusCodeValueLeXAsResult is like StatusCodeValueLeX, but returns the
// failure as an error instead of panicking.
func StatusCodeValueLeXAsResult(a *exec.Cmd, x int) (int, error) {
	ca, s := statusX(caller("StatusCodeValueLeXAsResult"), relLe, a, x)
	return ca, result(s)
}

// StatusCodeValueLeX runs a and asserts that its exit code <= x. It returns the
// code.
func StatusCodeValueLeX(a *exec.Cmd, x int, msg ...any) int {
	ca, s := statusX(caller("StatusCodeValueLeX"), relLe, a, x)
	raise(s, msg)
	return ca
}

// DebugStatusCodeValueLeX is StatusCodeValueLeX if DebugAssertions is set, and
// a no-op otherwise.
func DebugStatusCodeValueLeX(a *exec.Cmd, x int, msg ...any) {
	if DebugAssertions {
		_, s := statusX(caller("DebugStatusCodeValueLeX"), relLe, a, x)
		raise(s, msg)
	}
}

// StatusCodeValueGtXAsResult is like StatusCodeValueGtX, but returns the
// failure as an error instead of panicking.
func StatusCodeValueGtXAsResult(a *exec.Cmd, x int) (int, error) {
	ca, s := statusX(caller("StatusCodeValueGtXAsResult"), relGt, a, x)
	return ca, result(s)
}

// StatusCodeValueGtX runs a and asserts that its exit code > x. It returns the
// code.
func StatusCodeValueGtX(a *exec.Cmd, x int, msg ...any) int {
	ca, s := statusX(caller("StatusCodeValueGtX"), relGt, a, x)
	raise(s, msg)
	return ca
}

// DebugStatusCodeValueGtX is StatusCodeValueGtX if DebugAssertions is set, and
// a no-op otherwise.
func DebugStatusCodeValueGtX(a *exec.Cmd, x int, msg ...any) {
	if DebugAssertions {
		_, s := statusX(caller("DebugStatusCodeValueGtX"), relGt, a, x)
		raise(s, msg)
	}
}

// StatusCodeValueGeXAsResult is like StatusCodeValueGeX, but returns the
// failure as an error instead of panicking.
func StatusCodeValueGeXAsResult(a *exec.Cmd, x int) (int, error) {
	ca, s := statusX(caller("StatusCodeValueGeXAsResult"), relGe, a, x)
	return ca, result(s)
}

// StatusCodeValueGeX runs a and asserts that its exit code >= x. It returns the
// code.
func StatusCodeValueGeX(a *exec.Cmd, x int, msg ...any) int {
	ca, s := statusX(caller("StatusCodeValueGeX"), relGe, a, x)
	raise(s, msg)
	return ca
}

// DebugStatusCodeValueGeX is StatusCodeValueGeX if DebugAssertions is set, and
// a no-op otherwise.
func DebugStatusCodeValueGeX(a *exec.Cmd, x int, msg ...any) {
	if DebugAssertions {
		_, s := statusX(caller("DebugStatusCodeValueGeX"), relGe, a, x)
		raise(s, msg)
	}
}
