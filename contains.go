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
	"go.chromium.org/assertables/failure"
)

func contains(site callSite, want bool, container, containee any) *failure.Summary {
	found, ok := containsValue(container, containee)
	if ok && found == want {
		return nil
	}
	l := site.labels("container", "containee")
	sb := site.builder()
	switch {
	case !ok:
		sb.Because("cannot check containment of %T in %T", containee, container)
	case want:
		sb.Because("expected container to contain containee")
	default:
		sb.Because("expected container not to contain containee")
	}
	return sb.Operand("container", l[0], container).
		Operand("containee", l[1], containee).Summary
}

// ContainsAsResult is like Contains, but returns the failure as an error
// instead of panicking.
func ContainsAsResult(container, containee any) error {
	return result(contains(caller("ContainsAsResult"), true, container, containee))
}

// Contains asserts that container contains containee.
//
// A string contains its substrings and runes, a slice or array contains its
// elements, a map contains its keys, and any value with a `Contains(T) bool`
// method (such as a Span or a mapset.Set) is asked directly. Any other
// container fails the assertion.
func Contains(container, containee any, msg ...any) {
	raise(contains(caller("Contains"), true, container, containee), msg)
}

// DebugContains is Contains if DebugAssertions is set, and a no-op otherwise.
func DebugContains(container, containee any, msg ...any) {
	if DebugAssertions {
		raise(contains(caller("DebugContains"), true, container, containee), msg)
	}
}

// NotContainsAsResult is like NotContains, but returns the failure as an error
// instead of panicking.
func NotContainsAsResult(container, containee any) error {
	return result(contains(caller("NotContainsAsResult"), false, container, containee))
}

// NotContains asserts that container does not contain containee.
//
// See Contains for which containers are supported.
func NotContains(container, containee any, msg ...any) {
	raise(contains(caller("NotContains"), false, container, containee), msg)
}

// DebugNotContains is NotContains if DebugAssertions is set, and a no-op
// otherwise.
func DebugNotContains(container, containee any, msg ...any) {
	if DebugAssertions {
		raise(contains(caller("DebugNotContains"), false, container, containee), msg)
	}
}
