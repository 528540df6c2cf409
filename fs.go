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

// FsReadToStringEqAsResult is like FsReadToStringEq, but returns the failure as
// an error instead of panicking.
func FsReadToStringEqAsResult(a, b string) (string, string, error) {
	sa, sb, s := textPair(caller("FsReadToStringEqAsResult"), relEq, fileText("a", a), fileText("b", b))
	return sa, sb, result(s)
}

// FsReadToStringEq asserts that the files at paths a and b have the same
// contents, and returns both.
//
// A file which cannot be read, or which is not valid UTF-8, fails the
// assertion; the failure's Cause is the underlying error.
func FsReadToStringEq(a, b string, msg ...any) (string, string) {
	sa, sb, s := textPair(caller("FsReadToStringEq"), relEq, fileText("a", a), fileText("b", b))
	raise(s, msg)
	return sa, sb
}

// DebugFsReadToStringEq is FsReadToStringEq if DebugAssertions is set, and a
// no-op otherwise.
func DebugFsReadToStringEq(a, b string, msg ...any) {
	if DebugAssertions {
		_, _, s := textPair(caller("DebugFsReadToStringEq"), relEq, fileText("a", a), fileText("b", b))
		raise(s, msg)
	}
}

// FsReadToStringNeAsResult is like FsReadToStringNe, but returns the failure as
// an error instead of panicking.
func FsReadToStringNeAsResult(a, b string) (string, string, error) {
	sa, sb, s := textPair(caller("FsReadToStringNeAsResult"), relNe, fileText("a", a), fileText("b", b))
	return sa, sb, result(s)
}

// FsReadToStringNe asserts that the contents of file a != the contents of file
// b, and returns both.
func FsReadToStringNe(a, b string, msg ...any) (string, string) {
	sa, sb, s := textPair(caller("FsReadToStringNe"), relNe, fileText("a", a), fileText("b", b))
	raise(s, msg)
	return sa, sb
}

// DebugFsReadToStringNe is FsReadToStringNe if DebugAssertions is set, and a
// no-op otherwise.
func DebugFsReadToStringNe(a, b string, msg ...any) {
	if DebugAssertions {
		_, _, s := textPair(caller("DebugFsReadToStringNe"), relNe, fileText("a", a), fileText("b", b))
		raise(s, msg)
	}
}

// FsReadToStringLtAsResult is like FsReadToStringLt, but returns the failure as
// an error instead of panicking.
func FsReadToStringLtAsResult(a, b string) (string, string, error) {
	sa, sb, s := textPair(caller("FsReadToStringLtAsResult"), relLt, fileText("a", a), fileText("b", b))
	return sa, sb, result(s)
}

// FsReadToStringLt asserts that the contents of file a < the contents of file
// b, and returns both.
func FsReadToStringLt(a, b string, msg ...any) (string, string) {
	sa, sb, s := textPair(caller("FsReadToStringLt"), relLt, fileText("a", a), fileText("b", b))
	raise(s, msg)
	return sa, sb
}

// DebugFsReadToStringLt is FsReadToStringLt if DebugAssertions is set, and a
// no-op otherwise.
func DebugFsReadToStringLt(a, b string, msg ...any) {
	if DebugAssertions {
		_, _, s := textPair(caller("DebugFsReadToStringLt"), relLt, fileText("a", a), fileText("b", b))
		raise(s, msg)
	}
}

// FsReadToStringLeAsResult is like FsReadToStringLe, but returns the failure as
// an error instead of panicking.
func FsReadToStringLeAsResult(a, b string) (string, string, error) {
	sa, sb, s := textPair(caller("FsReadToStringLeAsResult"), relLe, fileText("a", a), fileText("b", b))
	return sa, sb, result(s)
}

// FsReadToStringLe asserts that the contents of file a <= the contents of file
// b, and returns both.
func FsReadToStringLe(a, b string, msg ...any) (string, string) {
	sa, sb, s := textPair(caller("FsReadToStringLe"), relLe, fileText("a", a), fileText("b", b))
	raise(s, msg)
	return sa, sb
}

// DebugFsReadToStringLe is FsReadToStringLe if DebugAssertions is set, and a
// no-op otherwise.
func DebugFsReadToStringLe(a, b string, msg ...any) {
	if DebugAssertions {
		_, _, s := textPair(caller("DebugFsReadToStringLe"), relLe, fileText("a", a), fileText("b", b))
		raise(s, msg)
	}
}

// FsReadToStringGtAsResult is like FsReadToStringGt, but returns the failure as
// an error instead of panicking.
func FsReadToStringGtAsResult(a, b string) (string, string, error) {
	sa, sb, s := textPair(caller("FsReadToStringGtAsResult"), relGt, fileText("a", a), fileText("b", b))
	return sa, sb, result(s)
}

// FsReadToStringGt asserts that the contents of file a > the contents of file
// b, and returns both.
func FsReadToStringGt(a, b string, msg ...any) (string, string) {
	sa, sb, s := textPair(caller("FsReadToStringGt"), relGt, fileText("a", a), fileText("b", b))
	raise(s, msg)
	return sa, sb
}

// DebugFsReadToStringGt is FsReadToStringGt if DebugAssertions is set, and a
// no-op otherwise.
func DebugFsReadToStringGt(a, b string, msg ...any) {
	if DebugAssertions {
		_, _, s := textPair(caller("DebugFsReadToStringGt"), relGt, fileText("a", a), fileText("b", b))
		raise(s, msg)
	}
}

// FsReadToStringGeAsResult is like FsReadToStringGe, but returns the failure as
// an error instead of panicking.
func FsReadToStringGeAsResult(a, b string) (string, string, error) {
	sa, sb, s := textPair(caller("FsReadToStringGeAsResult"), relGe, fileText("a", a), fileText("b", b))
	return sa, sb, result(s)
}

// FsReadToStringGe asserts that the contents of file a >= the contents of file
// b, and returns both.
func FsReadToStringGe(a, b string, msg ...any) (string, string) {
	sa, sb, s := textPair(caller("FsReadToStringGe"), relGe, fileText("a", a), fileText("b", b))
	raise(s, msg)
	return sa, sb
}

// DebugFsReadToStringGe is FsReadToStringGe if DebugAssertions is set, and a
// no-op otherwise.
func DebugFsReadToStringGe(a, b string, msg ...any) {
	if DebugAssertions {
		_, _, s := textPair(caller("DebugFsReadToStringGe"), relGe, fileText("a", a), fileText("b", b))
		raise(s, msg)
	}
}

// FsReadToStringEqXAsResult is like FsReadToStringEqX, but returns the failure
// as an error instead of panicking.
func FsReadToStringEqXAsResult(a string, x string) (string, error) {
	sa, s := textX(caller("FsReadToStringEqXAsResult"), relEq, fileText("a", a), x)
	return sa, result(s)
}

// FsReadToStringEqX asserts that the contents of file a == x, and returns it.
func FsReadToStringEqX(a string, x string, msg ...any) string {
	sa, s := textX(caller("FsReadToStringEqX"), relEq, fileText("a", a), x)
	raise(s, msg)
	return sa
}

// DebugFsReadToStringEqX is FsReadToStringEqX if DebugAssertions is set, and a
// no-op otherwise.
func DebugFsReadToStringEqX(a string, x string, msg ...any) {
	if DebugAssertions {
		_, s := textX(caller("DebugFsReadToStringEqX"), relEq, fileText("a", a), x)
		raise(s, msg)
	}
}

// FsReadToStringNeXAsResult is like FsReadToStringNeX, but returns the failure
// as an error instead of panicking.
func FsReadToStringNeXAsResult(a string, x string) (string, error) {
	sa, s := textX(caller("FsReadToStringNeXAsResult"), relNe, fileText("a", a), x)
	return sa, result(s)
}

// FsReadToStringNeX asserts that the contents of file a != x, and returns it.
func FsReadToStringNeX(a string, x string, msg ...any) string {
	sa, s := textX(caller("FsReadToStringNeX"), relNe, fileText("a", a), x)
	raise(s, msg)
	return sa
}

// DebugFsReadToStringNeX is FsReadToStringNeX if DebugAssertions is set, and a
// no-op otherwise.
func DebugFsReadToStringNeX(a string, x string, msg ...any) {
	if DebugAssertions {
		_, s := textX(caller("DebugFsReadToStringNeX"), relNe, fileText("a", a), x)
		raise(s, msg)
	}
}

// FsReadToStringLtXAsResult is like FsReadToStringLtX, but returns the failure
// as an error instead of panicking.
func FsReadToStringLtXAsResult(a string, x string) (string, error) {
	sa, s := textX(caller("FsReadToStringLtXAsResult"), relLt, fileText("a", a), x)
	return sa, result(s)
}

// FsReadToStringLtX asserts that the contents of file a < x, and returns it.
func FsReadToStringLtX(a string, x string, msg ...any) string {
	sa, s := textX(caller("FsReadToStringLtX"), relLt, fileText("a", a), x)
	raise(s, msg)
	return sa
}

// DebugFsReadToStringLtX is FsReadToStringLtX if DebugAssertions is set, and a
// no-op otherwise.
func DebugFsReadToStringLtX(a string, x string, msg ...any) {
	if DebugAssertions {
		_, s := textX(caller("DebugFsReadToStringLtX"), relLt, fileText("a", a), x)
		raise(s, msg)
	}
}

// FsReadToStringLeXAsResult is like FsReadToStringLeX, but returns the failure
// as an error instead of panicking.
func FsReadToStringLeXAsResult(a string, x string) (string, error) {
	sa, s := textX(caller("FsReadToStringLeXAsResult"), relLe, fileText("a", a), x)
	return sa, result(s)
}

// FsReadToStringLeX asserts that the contents of file a <= x, and returns it.
func FsReadToStringLeX(a string, x string, msg ...any) string {
	sa, s := textX(caller("FsReadToStringLeX"), relLe, fileText("a", a), x)
	raise(s, msg)
	return sa
}

// DebugFsReadToStringLeX is FsReadToStringLeX if DebugAssertions is set, and a
// no-op otherwise.
func DebugFsReadToStringLeX(a string, x string, msg ...any) {
	if DebugAssertions {
		_, s := textX(caller("DebugFsReadToStringLeX"), relLe, fileText("a", a), x)
		raise(s, msg)
	}
}

// FsReadToStringGtXAsResult is like FsReadToStringGtX, but returns the failure
// as an error instead of panicking.
func FsReadToStringGtXAsResult(a string, x string) (string, error) {
	sa, s := textX(caller("FsReadToStringGtXAsResult"), relGt, fileText("a", a), x)
	return sa, result(s)
}

// FsReadToStringGtX asserts that the contents of file a > x, and returns it.
func FsReadToStringGtX(a string, x string, msg ...any) string {
	sa, s := textX(caller("FsReadToStringGtX"), relGt, fileText("a", a), x)
	raise(s, msg)
	return sa
}

// DebugFsReadToStringGtX is FsReadToStringGtX if DebugAssertions is set, and a
// no-op otherwise.
func DebugFsReadToStringGtX(a string, x string, msg ...any) {
	if DebugAssertions {
		_, s := textX(caller("DebugFsReadToStringGtX"), relGt, fileText("a", a), x)
		raise(s, msg)
	}
}

// FsReadToStringGeXAsResult is like FsReadToStringGeX, but returns the failure
// as an error instead of panicking.
func FsReadToStringGeXAsResult(a string, x string) (string, error) {
	sa, s := textX(caller("FsReadToStringGeXAsResult"), relGe, fileText("a", a), x)
	return sa, result(s)
}

// FsReadToStringGeX asserts that the contents of file a >= x, and returns it.
func FsReadToStringGeX(a string, x string, msg ...any) string {
	sa, s := textX(caller("FsReadToStringGeX"), relGe, fileText("a", a), x)
	raise(s, msg)
	return sa
}

// DebugFsReadToStringGeX is FsReadToStringGeX if DebugAssertions is set, and a
// no-op otherwise.
func DebugFsReadToStringGeX(a string, x string, msg ...any) {
	if DebugAssertions {
		_, s := textX(caller("DebugFsReadToStringGeX"), relGe, fileText("a", a), x)
		raise(s, msg)
	}
}

// FsReadToStringContainsAsResult is like FsReadToStringContains, but returns
// the failure as an error instead of panicking.
func FsReadToStringContainsAsResult(a string, containee string) (string, error) {
	sa, s := textContains(caller("FsReadToStringContainsAsResult"), fileText("a", a), containee)
	return sa, result(s)
}

// FsReadToStringContains asserts that the contents of file a contains
// containee, and returns it.
func FsReadToStringContains(a string, containee string, msg ...any) string {
	sa, s := textContains(caller("FsReadToStringContains"), fileText("a", a), containee)
	raise(s, msg)
	return sa
}

// DebugFsReadToStringContains is FsReadToStringContains if DebugAssertions is
// set, and a no-op otherwise.
func DebugFsReadToStringContains(a string, containee string, msg ...any) {
	if DebugAssertions {
		_, s := textContains(caller("DebugFsReadToStringContains"), fileText("a", a), containee)
		raise(s, msg)
	}
}

// FsReadToStringIsMatchAsResult is like FsReadToStringIsMatch, but returns the
// failure as an error instead of panicking.
func FsReadToStringIsMatchAsResult(a string, matcher Matcher) (string, error) {
	sa, s := textMatch(caller("FsReadToStringIsMatchAsResult"), fileText("a", a), matcher)
	return sa, result(s)
}

// FsReadToStringIsMatch asserts that matcher matches the contents of file a,
// and returns it.
func FsReadToStringIsMatch(a string, matcher Matcher, msg ...any) string {
	sa, s := textMatch(caller("FsReadToStringIsMatch"), fileText("a", a), matcher)
	raise(s, msg)
	return sa
}

// DebugFsReadToStringIsMatch is FsReadToStringIsMatch if DebugAssertions is
// set, and a no-op otherwise.
func DebugFsReadToStringIsMatch(a string, matcher Matcher, msg ...any) {
	if DebugAssertions {
		_, s := textMatch(caller("DebugFsReadToStringIsMatch"), fileText("a", a), matcher)
		raise(s, msg)
	}
}
