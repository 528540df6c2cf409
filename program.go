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

// ProgramArgsStdoutEqAsResult is like ProgramArgsStdoutEq, but returns the
// failure as an error instead of panicking.
func ProgramArgsStdoutEqAsResult(aProgram string, aArgs []string, bProgram string, bArgs []string) (string, string, error) {
	sa, sb, s := textPair(caller("ProgramArgsStdoutEqAsResult"), relEq, programText("a", aProgram, aArgs, stdout), programText("b", bProgram, bArgs, stdout))
	return sa, sb, result(s)
}

// ProgramArgsStdoutEq runs `aProgram aArgs...` and `bProgram bArgs...` and
// asserts that they wrote the same stdout. It returns both outputs.
//
// Programs are resolved like exec.Command does.
func ProgramArgsStdoutEq(aProgram string, aArgs []string, bProgram string, bArgs []string, msg ...any) (string, string) {
	sa, sb, s := textPair(caller("ProgramArgsStdoutEq"), relEq, programText("a", aProgram, aArgs, stdout), programText("b", bProgram, bArgs, stdout))
	raise(s, msg)
	return sa, sb
}

// DebugProgramArgsStdoutEq is ProgramArgsStdoutEq if DebugAssertions is set,
// and a no-op otherwise.
func DebugProgramArgsStdoutEq(aProgram string, aArgs []string, bProgram string, bArgs []string, msg ...any) {
	if DebugAssertions {
		_, _, s := textPair(caller("DebugProgramArgsStdoutEq"), relEq, programText("a", aProgram, aArgs, stdout), programText("b", bProgram, bArgs, stdout))
		raise(s, msg)
	}
}

// ProgramArgsStdoutEqXAsResult is like ProgramArgsStdoutEqX, but returns the
// failure as an error instead of panicking.
func ProgramArgsStdoutEqXAsResult(program string, args []string, x string) (string, error) {
	sa, s := textX(caller("ProgramArgsStdoutEqXAsResult"), relEq, programText("a", program, args, stdout), x)
	return sa, result(s)
}

// ProgramArgsStdoutEqX runs `program args...` and asserts that its stdout is x.
func ProgramArgsStdoutEqX(program string, args []string, x string, msg ...any) string {
	sa, s := textX(caller("ProgramArgsStdoutEqX"), relEq, programText("a", program, args, stdout), x)
	raise(s, msg)
	return sa
}

// DebugProgramArgsStdoutEqX is ProgramArgsStdoutEqX if DebugAssertions is set,
// and a no-op otherwise.
func DebugProgramArgsStdoutEqX(program string, args []string, x string, msg ...any) {
	if DebugAssertions {
		_, s := textX(caller("DebugProgramArgsStdoutEqX"), relEq, programText("a", program, args, stdout), x)
		raise(s, msg)
	}
}

// ProgramArgsStdoutContainsAsResult is like ProgramArgsStdoutContains, but
// returns the failure as an error instead of panicking.
func ProgramArgsStdoutContainsAsResult(program string, args []string, containee string) (string, error) {
	sa, s := textContains(caller("ProgramArgsStdoutContainsAsResult"), programText("a", program, args, stdout), containee)
	return sa, result(s)
}

// ProgramArgsStdoutContains runs `program args...` and asserts that its stdout
// contains containee.
func ProgramArgsStdoutContains(program string, args []string, containee string, msg ...any) string {
	sa, s := textContains(caller("ProgramArgsStdoutContains"), programText("a", program, args, stdout), containee)
	raise(s, msg)
	return sa
}

// DebugProgramArgsStdoutContains is ProgramArgsStdoutContains if
// DebugAssertions is set, and a no-op otherwise.
func DebugProgramArgsStdoutContains(program string, args []string, containee string, msg ...any) {
	if DebugAssertions {
		_, s := textContains(caller("DebugProgramArgsStdoutContains"), programText("a", program, args, stdout), containee)
		raise(s, msg)
	}
}

// ProgramArgsStdoutIsMatchAsResult is like ProgramArgsStdoutIsMatch, but
// returns the failure as an error instead of panicking.
func ProgramArgsStdoutIsMatchAsResult(program string, args []string, matcher Matcher) (string, error) {
	sa, s := textMatch(caller("ProgramArgsStdoutIsMatchAsResult"), programText("a", program, args, stdout), matcher)
	return sa, result(s)
}

// ProgramArgsStdoutIsMatch runs `program args...` and asserts that matcher
// matches its stdout.
func ProgramArgsStdoutIsMatch(program string, args []string, matcher Matcher, msg ...any) string {
	sa, s := textMatch(caller("ProgramArgsStdoutIsMatch"), programText("a", program, args, stdout), matcher)
	raise(s, msg)
	return sa
}

// DebugProgramArgsStdoutIsMatch is ProgramArgsStdoutIsMatch if DebugAssertions
// is set, and a no-op otherwise.
func DebugProgramArgsStdoutIsMatch(program string, args []string, matcher Matcher, msg ...any) {
	if DebugAssertions {
		_, s := textMatch(caller("DebugProgramArgsStdoutIsMatch"), programText("a", program, args, stdout), matcher)
		raise(s, msg)
	}
}

// ProgramArgsStderrEqAsResult is like ProgramArgsStderrEq, but returns the
// failure as an error instead of panicking.
func ProgramArgsStderrEqAsResult(aProgram string, aArgs []string, bProgram string, bArgs []string) (string, string, error) {
	sa, sb, s := textPair(caller("ProgramArgsStderrEqAsResult"), relEq, programText("a", aProgram, aArgs, stderr), programText("b", bProgram, bArgs, stderr))
	return sa, sb, result(s)
}

// ProgramArgsStderrEq runs `aProgram aArgs...` and `bProgram bArgs...` and
// asserts that they wrote the same stderr. It returns both outputs.
func ProgramArgsStderrEq(aProgram string, aArgs []string, bProgram string, bArgs []string, msg ...any) (string, string) {
	sa, sb, s := textPair(caller("ProgramArgsStderrEq"), relEq, programText("a", aProgram, aArgs, stderr), programText("b", bProgram, bArgs, stderr))
	raise(s, msg)
	return sa, sb
}

// DebugProgramArgsStderrEq is ProgramArgsStderrEq if DebugAssertions is set,
// and a no-op otherwise.
func DebugProgramArgsStderrEq(aProgram string, aArgs []string, bProgram string, bArgs []string, msg ...any) {
	if DebugAssertions {
		_, _, s := textPair(caller("DebugProgramArgsStderrEq"), relEq, programText("a", aProgram, aArgs, stderr), programText("b", bProgram, bArgs, stderr))
		raise(s, msg)
	}
}

// ProgramArgsStderrEqXAsResult is like ProgramArgsStderrEqX, but returns the
// failure as an error instead of panicking.
func ProgramArgsStderrEqXAsResult(program string, args []string, x string) (string, error) {
	sa, s := textX(caller("ProgramArgsStderrEqXAsResult"), relEq, programText("a", program, args, stderr), x)
	return sa, result(s)
}

// ProgramArgsStderrEqX runs `program args...` and asserts that its stderr is x.
func ProgramArgsStderrEqX(program string, args []string, x string, msg ...any) string {
	sa, s := textX(caller("ProgramArgsStderrEqX"), relEq, programText("a", program, args, stderr), x)
	raise(s, msg)
	return sa
}

// DebugProgramArgsStderrEqX is ProgramArgsStderrEqX if DebugAssertions is set,
// and a no-op otherwise.
func DebugProgramArgsStderrEqX(program string, args []string, x string, msg ...any) {
	if DebugAssertions {
		_, s := textX(caller("DebugProgramArgsStderrEqX"), relEq, programText("a", program, args, stderr), x)
		raise(s, msg)
	}
}

// ProgramArgsStderrContainsAsResult is like ProgramArgsStderrContains, but
// returns the failure as an error instead of panicking.
func ProgramArgsStderrContainsAsResult(program string, args []string, containee string) (string, error) {
	sa, s := textContains(caller("ProgramArgsStderrContainsAsResult"), programText("a", program, args, stderr), containee)
	return sa, result(s)
}

// ProgramArgsStderrContains runs `program args...` and asserts that its stderr
// contains containee.
func ProgramArgsStderrContains(program string, args []string, containee string, msg ...any) string {
	sa, s := textContains(caller("ProgramArgsStderrContains"), programText("a", program, args, stderr), containee)
	raise(s, msg)
	return sa
}

// DebugProgramArgsStderrContains is ProgramArgsStderrContains if
// DebugAssertions is set, and a no-op otherwise.
func DebugProgramArgsStderrContains(program string, args []string, containee string, msg ...any) {
	if DebugAssertions {
		_, s := textContains(caller("DebugProgramArgsStderrContains"), programText("a", program, args, stderr), containee)
		raise(s, msg)
	}
}

// ProgramArgsStderrIsMatchAsResult is like ProgramArgsStderrIsMatch, but
// returns the failure as an error instead of panicking.
func ProgramArgsStderrIsMatchAsResult(program string, args []string, matcher Matcher) (string, error) {
	sa, s := textMatch(caller("ProgramArgsStderrIsMatchAsResult"), programText("a", program, args, stderr), matcher)
	return sa, result(s)
}

// ProgramArgsStderrIsMatch runs `program args...` and asserts that matcher
// matches its stderr.
func ProgramArgsStderrIsMatch(program string, args []string, matcher Matcher, msg ...any) string {
	sa, s := textMatch(caller("ProgramArgsStderrIsMatch"), programText("a", program, args, stderr), matcher)
	raise(s, msg)
	return sa
}

// DebugProgramArgsStderrIsMatch is ProgramArgsStderrIsMatch if DebugAssertions
// is set, and a no-op otherwise.
func DebugProgramArgsStderrIsMatch(program string, args []string, matcher Matcher, msg ...any) {
	if DebugAssertions {
		_, s := textMatch(caller("DebugProgramArgsStderrIsMatch"), programText("a", program, args, stderr), matcher)
		raise(s, msg)
	}
}
