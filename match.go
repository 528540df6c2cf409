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
	"fmt"
	"regexp"

	"github.com/bmatcuk/doublestar"

	"go.chromium.org/assertables/failure"
)

// Matcher is implemented by *regexp.Regexp and Glob.
type Matcher interface {
	MatchString(s string) bool
}

// Glob is a Matcher for doublestar glob patterns, such as "**/*.go".
type Glob string

// Match reports whether s matches the pattern, or an error if the pattern is
// malformed.
func (g Glob) Match(s string) (bool, error) {
	return doublestar.Match(string(g), s)
}

// MatchString implements Matcher. A malformed pattern matches nothing.
func (g Glob) MatchString(s string) bool {
	ok, err := g.Match(s)
	return err == nil && ok
}

// GoString renders the Glob the way it would be written in Go.
func (g Glob) GoString() string {
	return fmt.Sprintf("Glob(%q)", string(g))
}

// goString is a preformatted debug rendering.
type goString string

func (s goString) GoString() string { return string(s) }

func matcherDebug(m Matcher) any {
	if re, ok := m.(*regexp.Regexp); ok && re != nil {
		return goString(fmt.Sprintf("regexp.MustCompile(%q)", re.String()))
	}
	return m
}

// matches runs matcher against matchee, surfacing malformed patterns.
func matches(matcher Matcher, matchee string) (bool, error) {
	if m, ok := matcher.(interface {
		Match(string) (bool, error)
	}); ok {
		return m.Match(matchee)
	}
	return matcher.MatchString(matchee), nil
}

func isMatch(site callSite, want bool, matcher Matcher, matchee string) *failure.Summary {
	var ok bool
	var err error
	if matcher != nil {
		ok, err = matches(matcher, matchee)
		if err == nil && ok == want {
			return nil
		}
	}
	l := site.labels("matcher", "matchee")
	sb := site.builder()
	switch {
	case matcher == nil:
		sb.Because("matcher is nil")
	case err != nil:
		sb.Because("invalid pattern: %s", err)
	case want:
		sb.Because("expected matcher to match matchee")
	default:
		sb.Because("expected matcher not to match matchee")
	}
	return sb.Operand("matcher", l[0], matcherDebug(matcher)).
		Operand("matchee", l[1], matchee).Summary
}

// IsMatchAsResult is like IsMatch, but returns the failure as an error instead
// of panicking.
func IsMatchAsResult(matcher Matcher, matchee string) error {
	return result(isMatch(caller("IsMatchAsResult"), true, matcher, matchee))
}

// IsMatch asserts that matcher matches matchee.
//
// The matcher is usually a *regexp.Regexp or a Glob.
func IsMatch(matcher Matcher, matchee string, msg ...any) {
	raise(isMatch(caller("IsMatch"), true, matcher, matchee), msg)
}

// DebugIsMatch is IsMatch if DebugAssertions is set, and a no-op otherwise.
func DebugIsMatch(matcher Matcher, matchee string, msg ...any) {
	if DebugAssertions {
		raise(isMatch(caller("DebugIsMatch"), true, matcher, matchee), msg)
	}
}

// NotMatchAsResult is like NotMatch, but returns the failure as an error
// instead of panicking.
func NotMatchAsResult(matcher Matcher, matchee string) error {
	return result(isMatch(caller("NotMatchAsResult"), false, matcher, matchee))
}

// NotMatch asserts that matcher does not match matchee.
func NotMatch(matcher Matcher, matchee string, msg ...any) {
	raise(isMatch(caller("NotMatch"), false, matcher, matchee), msg)
}

// DebugNotMatch is NotMatch if DebugAssertions is set, and a no-op otherwise.
func DebugNotMatch(matcher Matcher, matchee string, msg ...any) {
	if DebugAssertions {
		raise(isMatch(caller("DebugNotMatch"), false, matcher, matchee), msg)
	}
}
