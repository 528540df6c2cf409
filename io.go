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
	"io"
)

// IoReadToStringEqAsResult is like IoReadToStringEq, but returns the failure as
// an error instead of panicking.
func IoReadToStringEqAsResult(a, b io.Reader) (string, string, error) {
	sa, sb, s := textPair(caller("IoReadToStringEqAsResult"), relEq, readerText("a", a), readerText("b", b))
	return sa, sb, result(s)
}

// IoReadToStringEq asserts that a and b yield the same text when read to the
// end, and returns both.
//
// A read error or invalid UTF-8 fails the assertion; the failure's Cause is the
// underlying error.
func IoReadToStringEq(a, b io.Reader, msg ...any) (string, string) {
	sa, sb, s := textPair(caller("IoReadToStringEq"), relEq, readerText("a", a), readerText("b", b))
	raise(s, msg)
	return sa, sb
}

// DebugIoReadToStringEq is IoReadToStringEq if DebugAssertions is set, and a
// no-op otherwise.
func DebugIoReadToStringEq(a, b io.Reader, msg ...any) {
	if DebugAssertions {
		_, _, s := textPair(caller("DebugIoReadToStringEq"), relEq, readerText("a", a), readerText("b", b))
		raise(s, msg)
	}
}

// IoReadToStringNeAsResult is like IoReadToStringNe, but returns the failure as
// an error instead of panicking.
func IoReadToStringNeAsResult(a, b io.Reader) (string, string, error) {
	sa, sb, s := textPair(caller("IoReadToStringNeAsResult"), relNe, readerText("a", a), readerText("b", b))
	return sa, sb, result(s)
}

// IoReadToStringNe asserts that the text read from a != the text read from b,
// and returns both.
func IoReadToStringNe(a, b io.Reader, msg ...any) (string, string) {
	sa, sb, s := textPair(caller("IoReadToStringNe"), relNe, readerText("a", a), readerText("b", b))
	raise(s, msg)
	return sa, sb
}

// DebugIoReadToStringNe is IoReadToStringNe if DebugAssertions is set, and a
// no-op otherwise.
func DebugIoReadToStringNe(a, b io.Reader, msg ...any) {
	if DebugAssertions {
		_, _, s := textPair(caller("DebugIoReadToStringNe"), relNe, readerText("a", a), readerText("b", b))
		raise(s, msg)
	}
}

// IoReadToStringLtAsResult is like IoReadToStringLt, but returns the failure as
// an error instead of panicking.
func IoReadToStringLtAsResult(a, b io.Reader) (string, string, error) {
	sa, sb, s := textPair(caller("IoReadToStringLtAsResult"), relLt, readerText("a", a), readerText("b", b))
	return sa, sb, result(s)
}

// IoReadToStringLt asserts that the text read from a < the text read from b,
// and returns both.
func IoReadToStringLt(a, b io.Reader, msg ...any) (string, string) {
	sa, sb, s := textPair(caller("IoReadToStringLt"), relLt, readerText("a", a), readerText("b", b))
	raise(s, msg)
	return sa, sb
}

// DebugIoReadToStringLt is IoReadToStringLt if DebugAssertions is set, and a
// no-op otherwise.
func DebugIoReadToStringLt(a, b io.Reader, msg ...any) {
	if DebugAssertions {
		_, _, s := textPair(caller("DebugIoReadToStringLt"), relLt, readerText("a", a), readerText("b", b))
		raise(s, msg)
	}
}

// IoReadToStringLeAsResult is like IoReadToStringLe, but returns the failure as
// an error instead of panicking.
func IoReadToStringLeAsResult(a, b io.Reader) (string, string, error) {
	sa, sb, s := textPair(caller("IoReadToStringLeAsResult"), relLe, readerText("a", a), readerText("b", b))
	return sa, sb, result(s)
}

// IoReadToStringLe asserts that the text read from a <= the text read from b,
// and returns both.
func IoReadToStringLe(a, b io.Reader, msg ...any) (string, string) {
	sa, sb, s := textPair(caller("IoReadToStringLe"), relLe, readerText("a", a), readerText("b", b))
	raise(s, msg)
	return sa, sb
}

// DebugIoReadToStringLe is IoReadToStringLe if DebugAssertions is set, and a
// no-op otherwise.
func DebugIoReadToStringLe(a, b io.Reader, msg ...any) {
	if DebugAssertions {
		_, _, s := textPair(caller("DebugIoReadToStringLe"), relLe, readerText("a", a), readerText("b", b))
		raise(s, msg)
	}
}

// IoReadToStringGtAsResult is like IoReadToStringGt, but returns the failure as
// an error instead of panicking.
func IoReadToStringGtAsResult(a, b io.Reader) (string, string, error) {
	sa, sb, s := textPair(caller("IoReadToStringGtAsResult"), relGt, readerText("a", a), readerText("b", b))
	return sa, sb, result(s)
}

// IoReadToStringGt asserts that the text read from a > the text read from b,
// and returns both.
func IoReadToStringGt(a, b io.Reader, msg ...any) (string, string) {
	sa, sb, s := textPair(caller("IoReadToStringGt"), relGt, readerText("a", a), readerText("b", b))
	raise(s, msg)
	return sa, sb
}

// DebugIoReadToStringGt is IoReadToStringGt if DebugAssertions is set, and a
// no-op otherwise.
func DebugIoReadToStringGt(a, b io.Reader, msg ...any) {
	if DebugAssertions {
		_, _, s := textPair(caller("DebugIoReadToStringGt"), relGt, readerText("a", a), readerText("b", b))
		raise(s, msg)
	}
}

// IoReadToStringGeAsResult is like IoReadToStringGe, but returns the failure as
// an error instead of panicking.
func IoReadToStringGeAsResult(a, b io.Reader) (string, string, error) {
	sa, sb, s := textPair(caller("IoReadToStringGeAsResult"), relGe, readerText("a", a), readerText("b", b))
	return sa, sb, result(s)
}

// IoReadToStringGe asserts that the text read from a >= the text read from b,
// and returns both.
func IoReadToStringGe(a, b io.Reader, msg ...any) (string, string) {
	sa, sb, s := textPair(caller("IoReadToStringGe"), relGe, readerText("a", a), readerText("b", b))
	raise(s, msg)
	return sa, sb
}

// DebugIoReadToStringGe is IoReadToStringGe if DebugAssertions is set, and a
// no-op otherwise.
func DebugIoReadToStringGe(a, b io.Reader, msg ...any) {
	if DebugAssertions {
		_, _, s := textPair(caller("DebugIoReadToStringGe"), relGe, readerText("a", a), readerText("b", b))
		raise(s, msg)
	}
}

// IoReadToStringEqXAsResult is like IoReadToStringEqX, but returns the failure
// as an error instead of panicking.
func IoReadToStringEqXAsResult(a io.Reader, x string) (string, error) {
	sa, s := textX(caller("IoReadToStringEqXAsResult"), relEq, readerText("a", a), x)
	return sa, result(s)
}

// IoReadToStringEqX asserts that the text read from a == x, and returns it.
func IoReadToStringEqX(a io.Reader, x string, msg ...any) string {
	sa, s := textX(caller("IoReadToStringEqX"), relEq, readerText("a", a), x)
	raise(s, msg)
	return sa
}

// DebugIoReadToStringEqX is IoReadToStringEqX if DebugAssertions is set, and a
// no-op otherwise.
func DebugIoReadToStringEqX(a io.Reader, x string, msg ...any) {
	if DebugAssertions {
		_, s := textX(caller("DebugIoReadToStringEqX"), relEq, readerText("a", a), x)
		raise(s, msg)
	}
}

// IoReadToStringNeXAsResult is like IoReadToStringNeX, but returns the failure
// as an error instead of panicking.
func IoReadToStringNeXAsResult(a io.Reader, x string) (string, error) {
	sa, s := textX(caller("IoReadToStringNeXAsResult"), relNe, readerText("a", a), x)
	return sa, result(s)
}

// IoReadToStringNeX asserts that the text read from a != x, and returns it.
func IoReadToStringNeX(a io.Reader, x string, msg ...any) string {
	sa, s := textX(caller("IoReadToStringNeX"), relNe, readerText("a", a), x)
	raise(s, msg)
	return sa
}

// DebugIoReadToStringNeX is IoReadToStringNeX if DebugAssertions is set, and a
// no-op otherwise.
func DebugIoReadToStringNeX(a io.Reader, x string, msg ...any) {
	if DebugAssertions {
		_, s := textX(caller("DebugIoReadToStringNeX"), relNe, readerText("a", a), x)
		raise(s, msg)
	}
}

// IoReadToStringLtXAsResult is like IoReadToStringLtX, but returns the failure
// as an error instead of panicking.
func IoReadToStringLtXAsResult(a io.Reader, x string) (string, error) {
	sa, s := textX(caller("IoReadToStringLtXAsResult"), relLt, readerText("a", a), x)
	return sa, result(s)
}

// IoReadToStringLtX asserts that the text read from a < x, and returns it.
func IoReadToStringLtX(a io.Reader, x string, msg ...any) string {
	sa, s := textX(caller("IoReadToStringLtX"), relLt, readerText("a", a), x)
	raise(s, msg)
	return sa
}

// DebugIoReadToStringLtX is IoReadToStringLtX if DebugAssertions is set, and a
// no-op otherwise.
func DebugIoReadToStringLtX(a io.Reader, x string, msg ...any) {
	if DebugAssertions {
		_, s := textX(caller("DebugIoReadToStringLtX"), relLt, readerText("a", a), x)
		raise(s, msg)
	}
}

// IoReadToStringLeXAsResult is like IoReadToStringLeX, but returns the failure
// as an error instead of panicking.
func IoReadToStringLeXAsResult(a io.Reader, x string) (string, error) {
	sa, s := textX(caller("IoReadToStringLeXAsResult"), relLe, readerText("a", a), x)
	return sa, result(s)
}

// IoReadToStringLeX asserts that the text read from a <= x, and returns it.
func IoReadToStringLeX(a io.Reader, x string, msg ...any) string {
	sa, s := textX(caller("IoReadToStringLeX"), relLe, readerText("a", a), x)
	raise(s, msg)
	return sa
}

// DebugIoReadToStringLeX is IoReadToStringLeX if DebugAssertions is set, and a
// no-op otherwise.
func DebugIoReadToStringLeX(a io.Reader, x string, msg ...any) {
	if DebugAssertions {
		_, s := textX(caller("DebugIoReadToStringLeX"), relLe, readerText("a", a), x)
		raise(s, msg)
	}
}

// IoReadToStringGtXAsResult is like IoReadToStringGtX, but returns the failure
// as an error instead of panicking.
func IoReadToStringGtXAsResult(a io.Reader, x string) (string, error) {
	sa, s := textX(caller("IoReadToStringGtXAsResult"), relGt, readerText("a", a), x)
	return sa, result(s)
}

// IoReadToStringGtX asserts that the text read from a > x, and returns it.
func IoReadToStringGtX(a io.Reader, x string, msg ...any) string {
	sa, s := textX(caller("IoReadToStringGtX"), relGt, readerText("a", a), x)
	raise(s, msg)
	return sa
}

// DebugIoReadToStringGtX is IoReadToStringGtX if DebugAssertions is set, and a
// no-op otherwise.
func DebugIoReadToStringGtX(a io.Reader, x string, msg ...any) {
	if DebugAssertions {
		_, s := textX(caller("DebugIoReadToStringGtX"), relGt, readerText("a", a), x)
		raise(s, msg)
	}
}

// IoReadToStringGeXAsResult is like IoReadToStringGeX, but returns the failure
// as an error instead of panicking.
func IoReadToStringGeXAsResult(a io.Reader, x string) (string, error) {
	sa, s := textX(caller("IoReadToStringGeXAsResult"), relGe, readerText("a", a), x)
	return sa, result(s)
}

// IoReadToStringGeX asserts that the text read from a >= x, and returns it.
func IoReadToStringGeX(a io.Reader, x string, msg ...any) string {
	sa, s := textX(caller("IoReadToStringGeX"), relGe, readerText("a", a), x)
	raise(s, msg)
	return sa
}

// DebugIoReadToStringGeX is IoReadToStringGeX if DebugAssertions is set, and a
// no-op otherwise.
func DebugIoReadToStringGeX(a io.Reader, x string, msg ...any) {
	if DebugAssertions {
		_, s := textX(caller("DebugIoReadToStringGeX"), relGe, readerText("a", a), x)
		raise(s, msg)
	}
}

// IoReadToStringContainsAsResult is like IoReadToStringContains, but returns
// the failure as an error instead of panicking.
func IoReadToStringContainsAsResult(a io.Reader, containee string) (string, error) {
	sa, s := textContains(caller("IoReadToStringContainsAsResult"), readerText("a", a), containee)
	return sa, result(s)
}

// IoReadToStringContains asserts that the text read from a contains containee,
// and returns it.
func IoReadToStringContains(a io.Reader, containee string, msg ...any) string {
	sa, s := textContains(caller("IoReadToStringContains"), readerText("a", a), containee)
	raise(s, msg)
	return sa
}

// DebugIoReadToStringContains is IoReadToStringContains if DebugAssertions is
// set, and a no-op otherwise.
func DebugIoReadToStringContains(a io.Reader, containee string, msg ...any) {
	if DebugAssertions {
		_, s := textContains(caller("DebugIoReadToStringContains"), readerText("a", a), containee)
		raise(s, msg)
	}
}

// IoReadToStringIsMatchAsResult is like IoReadToStringIsMatch, but returns the
// failure as an error instead of panicking.
func IoReadToStringIsMatchAsResult(a io.Reader, matcher Matcher) (string, error) {
	sa, s := textMatch(caller("IoReadToStringIsMatchAsResult"), readerText("a", a), matcher)
	return sa, result(s)
}

// IoReadToStringIsMatch asserts that matcher matches the text read from a, and
// returns it.
func IoReadToStringIsMatch(a io.Reader, matcher Matcher, msg ...any) string {
	sa, s := textMatch(caller("IoReadToStringIsMatch"), readerText("a", a), matcher)
	raise(s, msg)
	return sa
}

// DebugIoReadToStringIsMatch is IoReadToStringIsMatch if DebugAssertions is
// set, and a no-op otherwise.
func DebugIoReadToStringIsMatch(a io.Reader, matcher Matcher, msg ...any) {
	if DebugAssertions {
		_, s := textMatch(caller("DebugIoReadToStringIsMatch"), readerText("a", a), matcher)
		raise(s, msg)
	}
}
