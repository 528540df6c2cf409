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
)

// CommandStdoutEqAsResult is like CommandStdoutEq, but returns the failure as
// an error instead of panicking.
func CommandStdoutEqAsResult(a, b *exec.Cmd) (string, string, error) {
	sa, sb, s := textPair(caller("CommandStdoutEqAsResult"), relEq, commandText("a", []string{"a"}, a, stdout), commandText("b", []string{"b"}, b, stdout))
	return sa, sb, result(s)
}

// CommandStdoutEq runs a and b and asserts that they wrote the same stdout. It
// returns both outputs.
//
// Each command runs exactly once, to completion. Its exit status is ignored; a
// command which cannot be started fails the assertion with the spawn error as
// the failure's Cause.
func CommandStdoutEq(a, b *exec.Cmd, msg ...any) (string, string) {
	sa, sb, s := textPair(caller("CommandStdoutEq"), relEq, commandText("a", []string{"a"}, a, stdout), commandText("b", []string{"b"}, b, stdout))
	raise(s, msg)
	return sa, sb
}

// DebugCommandStdoutEq is CommandStdoutEq if DebugAssertions is set, and a no-
// op otherwise.
func DebugCommandStdoutEq(a, b *exec.Cmd, msg ...any) {
	if DebugAssertions {
		_, _, s := textPair(caller("DebugCommandStdoutEq"), relEq, commandText("a", []string{"a"}, a, stdout), commandText("b", []string{"b"}, b, stdout))
		raise(s, msg)
	}
}

// CommandStdoutNeAsResult is like CommandStdoutNe, but returns the failure as
// an error instead of panicking.
func CommandStdoutNeAsResult(a, b *exec.Cmd) (string, string, error) {
	sa, sb, s := textPair(caller("CommandStdoutNeAsResult"), relNe, commandText("a", []string{"a"}, a, stdout), commandText("b", []string{"b"}, b, stdout))
	return sa, sb, result(s)
}

// CommandStdoutNe asserts that the stdout of a != the stdout of b, and returns
// both.
func CommandStdoutNe(a, b *exec.Cmd, msg ...any) (string, string) {
	sa, sb, s := textPair(caller("CommandStdoutNe"), relNe, commandText("a", []string{"a"}, a, stdout), commandText("b", []string{"b"}, b, stdout))
	raise(s, msg)
	return sa, sb
}

// DebugCommandStdoutNe is CommandStdoutNe if DebugAssertions is set, and a no-
// op otherwise.
func DebugCommandStdoutNe(a, b *exec.Cmd, msg ...any) {
	if DebugAssertions {
		_, _, s := textPair(caller("DebugCommandStdoutNe"), relNe, commandText("a", []string{"a"}, a, stdout), commandText("b", []string{"b"}, b, stdout))
		raise(s, msg)
	}
}

// CommandStdoutLtAsResult is like CommandStdoutLt, but returns the failure as
// an error instead of panicking.
func CommandStdoutLtAsResult(a, b *exec.Cmd) (string, string, error) {
	sa, sb, s := textPair(caller("CommandStdoutLtAsResult"), relLt, commandText("a", []string{"a"}, a, stdout), commandText("b", []string{"b"}, b, stdout))
	return sa, sb, result(s)
}

// CommandStdoutLt asserts that the stdout of a < the stdout of b, and returns
// both.
func CommandStdoutLt(a, b *exec.Cmd, msg ...any) (string, string) {
	sa, sb, s := textPair(caller("CommandStdoutLt"), relLt, commandText("a", []string{"a"}, a, stdout), commandText("b", []string{"b"}, b, stdout))
	raise(s, msg)
	return sa, sb
}

// DebugCommandStdoutLt is CommandStdoutLt if DebugAssertions is set, and a no-
// op otherwise.
func DebugCommandStdoutLt(a, b *exec.Cmd, msg ...any) {
	if DebugAssertions {
		_, _, s := textPair(caller("DebugCommandStdoutLt"), relLt, commandText("a", []string{"a"}, a, stdout), commandText("b", []string{"b"}, b, stdout))
		raise(s, msg)
	}
}

// CommandStdoutLeAsResult is like CommandStdoutLe, but returns the failure as
// an error instead of panicking.
func CommandStdoutLeAsResult(a, b *exec.Cmd) (string, string, error) {
	sa, sb, s := textPair(caller("CommandStdoutLeAsResult"), relLe, commandText("a", []string{"a"}, a, stdout), commandText("b", []string{"b"}, b, stdout))
	return sa, sb, result(s)
}

// CommandStdoutLe asserts that the stdout of a <= the stdout of b, and returns
// both.
func CommandStdoutLe(a, b *exec.Cmd, msg ...any) (string, string) {
	sa, sb, s := textPair(caller("CommandStdoutLe"), relLe, commandText("a", []string{"a"}, a, stdout), commandText("b", []string{"b"}, b, stdout))
	raise(s, msg)
	return sa, sb
}

// DebugCommandStdoutLe is CommandStdoutLe if DebugAssertions is set, and a no-
// op otherwise.
func DebugCommandStdoutLe(a, b *exec.Cmd, msg ...any) {
	if DebugAssertions {
		_, _, s := textPair(caller("DebugCommandStdoutLe"), relLe, commandText("a", []string{"a"}, a, stdout), commandText("b", []string{"b"}, b, stdout))
		raise(s, msg)
	}
}

// CommandStdoutGtAsResult is like CommandStdoutGt, but returns the failure as
// an error instead of panicking.
func CommandStdoutGtAsResult(a, b *exec.Cmd) (string, string, error) {
	sa, sb, s := textPair(caller("CommandStdoutGtAsResult"), relGt, commandText("a", []string{"a"}, a, stdout), commandText("b", []string{"b"}, b, stdout))
	return sa, sb, result(s)
}

// CommandStdoutGt asserts that the stdout of a > the stdout of b, and returns
// both.
func CommandStdoutGt(a, b *exec.Cmd, msg ...any) (string, string) {
	sa, sb, s := textPair(caller("CommandStdoutGt"), relGt, commandText("a", []string{"a"}, a, stdout), commandText("b", []string{"b"}, b, stdout))
	raise(s, msg)
	return sa, sb
}

// DebugCommandStdoutGt is CommandStdoutGt if DebugAssertions is set, and a no-
// op otherwise.
func DebugCommandStdoutGt(a, b *exec.Cmd, msg ...any) {
	if DebugAssertions {
		_, _, s := textPair(caller("DebugCommandStdoutGt"), relGt, commandText("a", []string{"a"}, a, stdout), commandText("b", []string{"b"}, b, stdout))
		raise(s, msg)
	}
}

// CommandStdoutGeAsResult is like CommandStdoutGe, but returns the failure as
// an error instead of panicking.
func CommandStdoutGeAsResult(a, b *exec.Cmd) (string, string, error) {
	sa, sb, s := textPair(caller("CommandStdoutGeAsResult"), relGe, commandText("a", []string{"a"}, a, stdout), commandText("b", []string{"b"}, b, stdout))
	return sa, sb, result(s)
}

// CommandStdoutGe asserts that the stdout of a >= the stdout of b, and returns
// both.
func CommandStdoutGe(a, b *exec.Cmd, msg ...any) (string, string) {
	sa, sb, s := textPair(caller("CommandStdoutGe"), relGe, commandText("a", []string{"a"}, a, stdout), commandText("b", []string{"b"}, b, stdout))
	raise(s, msg)
	return sa, sb
}

// DebugCommandStdoutGe is CommandStdoutGe if DebugAssertions is set, and a no-
// op otherwise.
func DebugCommandStdoutGe(a, b *exec.Cmd, msg ...any) {
	if DebugAssertions {
		_, _, s := textPair(caller("DebugCommandStdoutGe"), relGe, commandText("a", []string{"a"}, a, stdout), commandText("b", []string{"b"}, b, stdout))
		raise(s, msg)
	}
}

// CommandStdoutEqXAsResult is like CommandStdoutEqX, but returns the failure as
// an error instead of panicking.
func CommandStdoutEqXAsResult(a *exec.Cmd, x string) (string, error) {
	sa, s := textX(caller("CommandStdoutEqXAsResult"), relEq, commandText("a", []string{"a"}, a, stdout), x)
	return sa, result(s)
}

// CommandStdoutEqX asserts that the stdout of a == x, and returns it.
func CommandStdoutEqX(a *exec.Cmd, x string, msg ...any) string {
	sa, s := textX(caller("CommandStdoutEqX"), relEq, commandText("a", []string{"a"}, a, stdout), x)
	raise(s, msg)
	return sa
}

// DebugCommandStdoutEqX is CommandStdoutEqX if DebugAssertions is set, and a
// no-op otherwise.
func DebugCommandStdoutEqX(a *exec.Cmd, x string, msg ...any) {
	if DebugAssertions {
		_, s := textX(caller("DebugCommandStdoutEqX"), relEq, commandText("a", []string{"a"}, a, stdout), x)
		raise(s, msg)
	}
}

// CommandStdoutNeXAsResult is like CommandStdoutNeX, but returns the failure as
// an error instead of panicking.
func CommandStdoutNeXAsResult(a *exec.Cmd, x string) (string, error) {
	sa, s := textX(caller("CommandStdoutNeXAsResult"), relNe, commandText("a", []string{"a"}, a, stdout), x)
	return sa, result(s)
}

// CommandStdoutNeX asserts that the stdout of a != x, and returns it.
func CommandStdoutNeX(a *exec.Cmd, x string, msg ...any) string {
	sa, s := textX(caller("CommandStdoutNeX"), relNe, commandText("a", []string{"a"}, a, stdout), x)
	raise(s, msg)
	return sa
}

// DebugCommandStdoutNeX is CommandStdoutNeX if DebugAssertions is set, and a
// no-op otherwise.
func DebugCommandStdoutNeX(a *exec.Cmd, x string, msg ...any) {
	if DebugAssertions {
		_, s := textX(caller("DebugCommandStdoutNeX"), relNe, commandText("a", []string{"a"}, a, stdout), x)
		raise(s, msg)
	}
}

// CommandStdoutLtXAsResult is like CommandStdoutLtX, but returns the failure as
// an error instead of panicking.
func CommandStdoutLtXAsResult(a *exec.Cmd, x string) (string, error) {
	sa, s := textX(caller("CommandStdoutLtXAsResult"), relLt, commandText("a", []string{"a"}, a, stdout), x)
	return sa, result(s)
}

// CommandStdoutLtX asserts that the stdout of a < x, and returns it.
func CommandStdoutLtX(a *exec.Cmd, x string, msg ...any) string {
	sa, s := textX(caller("CommandStdoutLtX"), relLt, commandText("a", []string{"a"}, a, stdout), x)
	raise(s, msg)
	return sa
}

// DebugCommandStdoutLtX is CommandStdoutLtX if DebugAssertions is set, and a
// no-op otherwise.
func DebugCommandStdoutLtX(a *exec.Cmd, x string, msg ...any) {
	if DebugAssertions {
		_, s := textX(caller("DebugCommandStdoutLtX"), relLt, commandText("a", []string{"a"}, a, stdout), x)
		raise(s, msg)
	}
}

// CommandStdoutLeXAsResult is like CommandStdoutLeX, but returns the failure as
// an error instead of panicking.
func CommandStdoutLeXAsResult(a *exec.Cmd, x string) (string, error) {
	sa, s := textX(caller("CommandStdoutLeXAsResult"), relLe, commandText("a", []string{"a"}, a, stdout), x)
	return sa, result(s)
}

// CommandStdoutLeX asserts that the stdout of a <= x, and returns it.
func CommandStdoutLeX(a *exec.Cmd, x string, msg ...any) string {
	sa, s := textX(caller("CommandStdoutLeX"), relLe, commandText("a", []string{"a"}, a, stdout), x)
	raise(s, msg)
	return sa
}

// DebugCommandStdoutLeX is CommandStdoutLeX if DebugAssertions is set, and a
// no-op otherwise.
func DebugCommandStdoutLeX(a *exec.Cmd, x string, msg ...any) {
	if DebugAssertions {
		_, s := textX(caller("DebugCommandStdoutLeX"), relLe, commandText("a", []string{"a"}, a, stdout), x)
		raise(s, msg)
	}
}

// CommandStdoutGtXAsResult is like CommandStdoutGtX, but returns the failure as
// an error instead of panicking.
func CommandStdoutGtXAsResult(a *exec.Cmd, x string) (string, error) {
	sa, s := textX(caller("CommandStdoutGtXAsResult"), relGt, commandText("a", []string{"a"}, a, stdout), x)
	return sa, result(s)
}

// CommandStdoutGtX asserts that the stdout of a > x, and returns it.
func CommandStdoutGtX(a *exec.Cmd, x string, msg ...any) string {
	sa, s := textX(caller("CommandStdoutGtX"), relGt, commandText("a", []string{"a"}, a, stdout), x)
	raise(s, msg)
	return sa
}

// DebugCommandStdoutGtX is CommandStdoutGtX if DebugAssertions is set, and a
// no-op otherwise.
func DebugCommandStdoutGtX(a *exec.Cmd, x string, msg ...any) {
	if DebugAssertions {
		_, s := textX(caller("DebugCommandStdoutGtX"), relGt, commandText("a", []string{"a"}, a, stdout), x)
		raise(s, msg)
	}
}

// CommandStdoutGeXAsResult is like CommandStdoutGeX, but returns the failure as
// an error instead of panicking.
func CommandStdoutGeXAsResult(a *exec.Cmd, x string) (string, error) {
	sa, s := textX(caller("CommandStdoutGeXAsResult"), relGe, commandText("a", []string{"a"}, a, stdout), x)
	return sa, result(s)
}

// CommandStdoutGeX asserts that the stdout of a >= x, and returns it.
func CommandStdoutGeX(a *exec.Cmd, x string, msg ...any) string {
	sa, s := textX(caller("CommandStdoutGeX"), relGe, commandText("a", []string{"a"}, a, stdout), x)
	raise(s, msg)
	return sa
}

// DebugCommandStdoutGeX is CommandStdoutGeX if DebugAssertions is set, and a
// no-op otherwise.
func DebugCommandStdoutGeX(a *exec.Cmd, x string, msg ...any) {
	if DebugAssertions {
		_, s := textX(caller("DebugCommandStdoutGeX"), relGe, commandText("a", []string{"a"}, a, stdout), x)
		raise(s, msg)
	}
}

// CommandStdoutContainsAsResult is like CommandStdoutContains, but returns the
// failure as an error instead of panicking.
func CommandStdoutContainsAsResult(a *exec.Cmd, containee string) (string, error) {
	sa, s := textContains(caller("CommandStdoutContainsAsResult"), commandText("a", []string{"a"}, a, stdout), containee)
	return sa, result(s)
}

// CommandStdoutContains asserts that the stdout of a contains containee, and
// returns it.
func CommandStdoutContains(a *exec.Cmd, containee string, msg ...any) string {
	sa, s := textContains(caller("CommandStdoutContains"), commandText("a", []string{"a"}, a, stdout), containee)
	raise(s, msg)
	return sa
}

// DebugCommandStdoutContains is CommandStdoutContains if DebugAssertions is
// set, and a no-op otherwise.
func DebugCommandStdoutContains(a *exec.Cmd, containee string, msg ...any) {
	if DebugAssertions {
		_, s := textContains(caller("DebugCommandStdoutContains"), commandText("a", []string{"a"}, a, stdout), containee)
		raise(s, msg)
	}
}

// CommandStdoutIsMatchAsResult is like CommandStdoutIsMatch, but returns the
// failure as an error instead of panicking.
func CommandStdoutIsMatchAsResult(a *exec.Cmd, matcher Matcher) (string, error) {
	sa, s := textMatch(caller("CommandStdoutIsMatchAsResult"), commandText("a", []string{"a"}, a, stdout), matcher)
	return sa, result(s)
}

// CommandStdoutIsMatch asserts that matcher matches the stdout of a, and
// returns it.
func CommandStdoutIsMatch(a *exec.Cmd, matcher Matcher, msg ...any) string {
	sa, s := textMatch(caller("CommandStdoutIsMatch"), commandText("a", []string{"a"}, a, stdout), matcher)
	raise(s, msg)
	return sa
}

// DebugCommandStdoutIsMatch is CommandStdoutIsMatch if DebugAssertions is set,
// and a no-op otherwise.
func DebugCommandStdoutIsMatch(a *exec.Cmd, matcher Matcher, msg ...any) {
	if DebugAssertions {
		_, s := textMatch(caller("DebugCommandStdoutIsMatch"), commandText("a", []string{"a"}, a, stdout), matcher)
		raise(s, msg)
	}
}

// CommandStderrEqAsResult is like CommandStderrEq, but returns the failure as
// an error instead of panicking.
func CommandStderrEqAsResult(a, b *exec.Cmd) (string, string, error) {
	sa, sb, s := textPair(caller("CommandStderrEqAsResult"), relEq, commandText("a", []string{"a"}, a, stderr), commandText("b", []string{"b"}, b, stderr))
	return sa, sb, result(s)
}

// CommandStderrEq runs a and b and asserts that they wrote the same stderr. It
// returns both outputs.
//
// Each command runs exactly once, to completion. Its exit status is ignored; a
// command which cannot be started fails the assertion with the spawn error as
// the failure's Cause.
func CommandStderrEq(a, b *exec.Cmd, msg ...any) (string, string) {
	sa, sb, s := textPair(caller("CommandStderrEq"), relEq, commandText("a", []string{"a"}, a, stderr), commandText("b", []string{"b"}, b, stderr))
	raise(s, msg)
	return sa, sb
}

// DebugCommandStderrEq is CommandStderrEq if DebugAssertions is set, and a no-
// op otherwise.
func DebugCommandStderrEq(a, b *exec.Cmd, msg ...any) {
	if DebugAssertions {
		_, _, s := textPair(caller("DebugCommandStderrEq"), relEq, commandText("a", []string{"a"}, a, stderr), commandText("b", []string{"b"}, b, stderr))
		raise(s, msg)
	}
}

// CommandStderrNeAsResult is like CommandStderrNe, but returns the failure as
// an error instead of panicking.
func CommandStderrNeAsResult(a, b *exec.Cmd) (string, string, error) {
	sa, sb, s := textPair(caller("CommandStderrNeAsResult"), relNe, commandText("a", []string{"a"}, a, stderr), commandText("b", []string{"b"}, b, stderr))
	return sa, sb, result(s)
}

// CommandStderrNe asserts that the stderr of a != the stderr of b, and returns
// both.
func CommandStderrNe(a, b *exec.Cmd, msg ...any) (string, string) {
	sa, sb, s := textPair(caller("CommandStderrNe"), relNe, commandText("a", []string{"a"}, a, stderr), commandText("b", []string{"b"}, b, stderr))
	raise(s, msg)
	return sa, sb
}

// DebugCommandStderrNe is CommandStderrNe if DebugAssertions is set, and a no-
// op otherwise.
func DebugCommandStderrNe(a, b *exec.Cmd, msg ...any) {
	if DebugAssertions {
		_, _, s := textPair(caller("DebugCommandStderrNe"), relNe, commandText("a", []string{"a"}, a, stderr), commandText("b", []string{"b"}, b, stderr))
		raise(s, msg)
	}
}

// CommandStderrLtAsResult is like CommandStderrLt, but returns the failure as
// an error instead of panicking.
func CommandStderrLtAsResult(a, b *exec.Cmd) (string, string, error) {
	sa, sb, s := textPair(caller("CommandStderrLtAsResult"), relLt, commandText("a", []string{"a"}, a, stderr), commandText("b", []string{"b"}, b, stderr))
	return sa, sb, result(s)
}

// CommandStderrLt asserts that the stderr of a < the stderr of b, and returns
// both.
func CommandStderrLt(a, b *exec.Cmd, msg ...any) (string, string) {
	sa, sb, s := textPair(caller("CommandStderrLt"), relLt, commandText("a", []string{"a"}, a, stderr), commandText("b", []string{"b"}, b, stderr))
	raise(s, msg)
	return sa, sb
}

// DebugCommandStderrLt is CommandStderrLt if DebugAssertions is set, and a no-
// op otherwise.
func DebugCommandStderrLt(a, b *exec.Cmd, msg ...any) {
	if DebugAssertions {
		_, _, s := textPair(caller("DebugCommandStderrLt"), relLt, commandText("a", []string{"a"}, a, stderr), commandText("b", []string{"b"}, b, stderr))
		raise(s, msg)
	}
}

// CommandStderrLeAsResult is like CommandStderrLe, but returns the failure as
// an error instead of panicking.
func CommandStderrLeAsResult(a, b *exec.Cmd) (string, string, error) {
	sa, sb, s := textPair(caller("CommandStderrLeAsResult"), relLe, commandText("a", []string{"a"}, a, stderr), commandText("b", []string{"b"}, b, stderr))
	return sa, sb, result(s)
}

// CommandStderrLe asserts that the stderr of a <= the stderr of b, and returns
// both.
func CommandStderrLe(a, b *exec.Cmd, msg ...any) (string, string) {
	sa, sb, s := textPair(caller("CommandStderrLe"), relLe, commandText("a", []string{"a"}, a, stderr), commandText("b", []string{"b"}, b, stderr))
	raise(s, msg)
	return sa, sb
}

// DebugCommandStderrLe is CommandStderrLe if DebugAssertions is set, and a no-
// op otherwise.
func DebugCommandStderrLe(a, b *exec.Cmd, msg ...any) {
	if DebugAssertions {
		_, _, s := textPair(caller("DebugCommandStderrLe"), relLe, commandText("a", []string{"a"}, a, stderr), commandText("b", []string{"b"}, b, stderr))
		raise(s, msg)
	}
}

// CommandStderrGtAsResult is like CommandStderrGt, but returns the failure as
// an error instead of panicking.
func CommandStderrGtAsResult(a, b *exec.Cmd) (string, string, error) {
	sa, sb, s := textPair(caller("CommandStderrGtAsResult"), relGt, commandText("a", []string{"a"}, a, stderr), commandText("b", []string{"b"}, b, stderr))
	return sa, sb, result(s)
}

// CommandStderrGt asserts that the stderr of a > the stderr of b, and returns
// both.
func CommandStderrGt(a, b *exec.Cmd, msg ...any) (string, string) {
	sa, sb, s := textPair(caller("CommandStderrGt"), relGt, commandText("a", []string{"a"}, a, stderr), commandText("b", []string{"b"}, b, stderr))
	raise(s, msg)
	return sa, sb
}

// DebugCommandStderrGt is CommandStderrGt if DebugAssertions is set, and a no-
// op otherwise.
func DebugCommandStderrGt(a, b *exec.Cmd, msg ...any) {
	if DebugAssertions {
		_, _, s := textPair(caller("DebugCommandStderrGt"), relGt, commandText("a", []string{"a"}, a, stderr), commandText("b", []string{"b"}, b, stderr))
		raise(s, msg)
	}
}

// CommandStderrGeAsResult is like CommandStderrGe, but returns the failure as
// an error instead of panicking.
func CommandStderrGeAsResult(a, b *exec.Cmd) (string, string, error) {
	sa, sb, s := textPair(caller("CommandStderrGeAsResult"), relGe, commandText("a", []string{"a"}, a, stderr), commandText("b", []string{"b"}, b, stderr))
	return sa, sb, result(s)
}

// CommandStderrGe asserts that the stderr of a >= the stderr of b, and returns
// both.
func CommandStderrGe(a, b *exec.Cmd, msg ...any) (string, string) {
	sa, sb, s := textPair(caller("CommandStderrGe"), relGe, commandText("a", []string{"a"}, a, stderr), commandText("b", []string{"b"}, b, stderr))
	raise(s, msg)
	return sa, sb
}

// DebugCommandStderrGe is CommandStderrGe if DebugAssertions is set, and a no-
// op otherwise.
func DebugCommandStderrGe(a, b *exec.Cmd, msg ...any) {
	if DebugAssertions {
		_, _, s := textPair(caller("DebugCommandStderrGe"), relGe, commandText("a", []string{"a"}, a, stderr), commandText("b", []string{"b"}, b, stderr))
		raise(s, msg)
	}
}

// CommandStderrEqXAsResult is like CommandStderrEqX, but returns the failure as
// an error instead of panicking.
func CommandStderrEqXAsResult(a *exec.Cmd, x string) (string, error) {
	sa, s := textX(caller("CommandStderrEqXAsResult"), relEq, commandText("a", []string{"a"}, a, stderr), x)
	return sa, result(s)
}

// CommandStderrEqX asserts that the stderr of a == x, and returns it.
func CommandStderrEqX(a *exec.Cmd, x string, msg ...any) string {
	sa, s := textX(caller("CommandStderrEqX"), relEq, commandText("a", []string{"a"}, a, stderr), x)
	raise(s, msg)
	return sa
}

// DebugCommandStderrEqX is CommandStderrEqX if DebugAssertions is set, and a
// no-op otherwise.
func DebugCommandStderrEqX(a *exec.Cmd, x string, msg ...any) {
	if DebugAssertions {
		_, s := textX(caller("DebugCommandStderrEqX"), relEq, commandText("a", []string{"a"}, a, stderr), x)
		raise(s, msg)
	}
}

// CommandStderrNeXAsResult is like CommandStderrNeX, but returns the failure as
// an error instead of panicking.
func CommandStderrNeXAsResult(a *exec.Cmd, x string) (string, error) {
	sa, s := textX(caller("CommandStderrNeXAsResult"), relNe, commandText("a", []string{"a"}, a, stderr), x)
	return sa, result(s)
}

// CommandStderrNeX asserts that the stderr of a != x, and returns it.
func CommandStderrNeX(a *exec.Cmd, x string, msg ...any) string {
	sa, s := textX(caller("CommandStderrNeX"), relNe, commandText("a", []string{"a"}, a, stderr), x)
	raise(s, msg)
	return sa
}

// DebugCommandStderrNeX is CommandStderrNeX if DebugAssertions is set, and a
// no-op otherwise.
func DebugCommandStderrNeX(a *exec.Cmd, x string, msg ...any) {
	if DebugAssertions {
		_, s := textX(caller("DebugCommandStderrNeX"), relNe, commandText("a", []string{"a"}, a, stderr), x)
		raise(s, msg)
	}
}

// CommandStderrLtXAsResult is like CommandStderrLtX, but returns the failure as
// an error instead of panicking.
func CommandStderrLtXAsResult(a *exec.Cmd, x string) (string, error) {
	sa, s := textX(caller("CommandStderrLtXAsResult"), relLt, commandText("a", []string{"a"}, a, stderr), x)
	return sa, result(s)
}

// CommandStderrLtX asserts that the stderr of a < x, and returns it.
func CommandStderrLtX(a *exec.Cmd, x string, msg ...any) string {
	sa, s := textX(caller("CommandStderrLtX"), relLt, commandText("a", []string{"a"}, a, stderr), x)
	raise(s, msg)
	return sa
}

// DebugCommandStderrLtX is CommandStderrLtX if DebugAssertions is set, and a
// no-op otherwise.
func DebugCommandStderrLtX(a *exec.Cmd, x string, msg ...any) {
	if DebugAssertions {
		_, s := textX(caller("DebugCommandStderrLtX"), relLt, commandText("a", []string{"a"}, a, stderr), x)
		raise(s, msg)
	}
}

// CommandStderrLeXAsResult is like CommandStderrLeX, but returns the failure as
// an error instead of panicking.
func CommandStderrLeXAsResult(a *exec.Cmd, x string) (string, error) {
	sa, s := textX(caller("CommandStderrLeXAsResult"), relLe, commandText("a", []string{"a"}, a, stderr), x)
	return sa, result(s)
}

// CommandStderrLeX asserts that the stderr of a <= x, and returns it.
func CommandStderrLeX(a *exec.Cmd, x string, msg ...any) string {
	sa, s := textX(caller("CommandStderrLeX"), relLe, commandText("a", []string{"a"}, a, stderr), x)
	raise(s, msg)
	return sa
}

// DebugCommandStderrLeX is CommandStderrLeX if DebugAssertions is set, and a
// no-op otherwise.
func DebugCommandStderrLeX(a *exec.Cmd, x string, msg ...any) {
	if DebugAssertions {
		_, s := textX(caller("DebugCommandStderrLeX"), relLe, commandText("a", []string{"a"}, a, stderr), x)
		raise(s, msg)
	}
}

// CommandStderrGtXAsResult is like CommandStderrGtX, but returns the failure as
// an error instead of panicking.
func CommandStderrGtXAsResult(a *exec.Cmd, x string) (string, error) {
	sa, s := textX(caller("CommandStderrGtXAsResult"), relGt, commandText("a", []string{"a"}, a, stderr), x)
	return sa, result(s)
}

// CommandStderrGtX asserts that the stderr of a > x, and returns it.
func CommandStderrGtX(a *exec.Cmd, x string, msg ...any) string {
	sa, s := textX(caller("CommandStderrGtX"), relGt, commandText("a", []string{"a"}, a, stderr), x)
	raise(s, msg)
	return sa
}

// DebugCommandStderrGtX is CommandStderrGtX if DebugAssertions is set, and a
// no-op otherwise.
func DebugCommandStderrGtX(a *exec.Cmd, x string, msg ...any) {
	if DebugAssertions {
		_, s := textX(caller("DebugCommandStderrGtX"), relGt, commandText("a", []string{"a"}, a, stderr), x)
		raise(s, msg)
	}
}

// CommandStderrGeXAsResult is like CommandStderrGeX, but returns the failure as
// an error instead of panicking.
func CommandStderrGeXAsResult(a *exec.Cmd, x string) (string, error) {
	sa, s := textX(caller("CommandStderrGeXAsResult"), relGe, commandText("a", []string{"a"}, a, stderr), x)
	return sa, result(s)
}

// CommandStderrGeX asserts that the stderr of a >= x, and returns it.
func CommandStderrGeX(a *exec.Cmd, x string, msg ...any) string {
	sa, s := textX(caller("CommandStderrGeX"), relGe, commandText("a", []string{"a"}, a, stderr), x)
	raise(s, msg)
	return sa
}

// DebugCommandStderrGeX is CommandStderrGeX if DebugAssertions is set, and a
// no-op otherwise.
func DebugCommandStderrGeX(a *exec.Cmd, x string, msg ...any) {
	if DebugAssertions {
		_, s := textX(caller("DebugCommandStderrGeX"), relGe, commandText("a", []string{"a"}, a, stderr), x)
		raise(s, msg)
	}
}

// CommandStderrContainsAsResult is like CommandStderrContains, but returns the
// failure as an error instead of panicking.
func CommandStderrContainsAsResult(a *exec.Cmd, containee string) (string, error) {
	sa, s := textContains(caller("CommandStderrContainsAsResult"), commandText("a", []string{"a"}, a, stderr), containee)
	return sa, result(s)
}

// CommandStderrContains asserts that the stderr of a contains containee, and
// returns it.
func CommandStderrContains(a *exec.Cmd, containee string, msg ...any) string {
	sa, s := textContains(caller("CommandStderrContains"), commandText("a", []string{"a"}, a, stderr), containee)
	raise(s, msg)
	return sa
}

// DebugCommandStderrContains is CommandStderrContains if DebugAssertions is
// set, and a no-op otherwise.
func DebugCommandStderrContains(a *exec.Cmd, containee string, msg ...any) {
	if DebugAssertions {
		_, s := textContains(caller("DebugCommandStderrContains"), commandText("a", []string{"a"}, a, stderr), containee)
		raise(s, msg)
	}
}

// CommandStderrIsMatchAsResult is like CommandStderrIsMatch, but returns the
// failure as an error instead of panicking.
func CommandStderrIsMatchAsResult(a *exec.Cmd, matcher Matcher) (string, error) {
	sa, s := textMatch(caller("CommandStderrIsMatchAsResult"), commandText("a", []string{"a"}, a, stderr), matcher)
	return sa, result(s)
}

// CommandStderrIsMatch asserts that matcher matches the stderr of a, and
// returns it.
func CommandStderrIsMatch(a *exec.Cmd, matcher Matcher, msg ...any) string {
	sa, s := textMatch(caller("CommandStderrIsMatch"), commandText("a", []string{"a"}, a, stderr), matcher)
	raise(s, msg)
	return sa
}

// DebugCommandStderrIsMatch is CommandStderrIsMatch if DebugAssertions is set,
// and a no-op otherwise.
func DebugCommandStderrIsMatch(a *exec.Cmd, matcher Matcher, msg ...any) {
	if DebugAssertions {
		_, s := textMatch(caller("DebugCommandStderrIsMatch"), commandText("a", []string{"a"}, a, stderr), matcher)
		raise(s, msg)
	}
}
