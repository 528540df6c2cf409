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

func affix(site callSite, suffix, want bool, whole, part any) *failure.Summary {
	found, ok := hasAffix(whole, part, suffix)
	if ok && found == want {
		return nil
	}
	verb := "start"
	if suffix {
		verb = "end"
	}
	l := site.labels("whole", "part")
	sb := site.builder()
	switch {
	case !ok:
		sb.Because("cannot check whether %T values %s with %T values", whole, verb, part)
	case want:
		sb.Because("expected whole to %s with part", verb)
	default:
		sb.Because("expected whole not to %s with part", verb)
	}
	return sb.Operand("whole", l[0], whole).
		Operand("part", l[1], part).Summary
}

// StartsWithAsResult is like StartsWith, but returns the failure as an error
// instead of panicking.
func StartsWithAsResult(whole, part any) error {
	return result(affix(caller("StartsWithAsResult"), false, true, whole, part))
}

// StartsWith asserts that whole begins with part.
//
// Both must be strings, or both must be slices or arrays whose elements are
// compared with reflect.DeepEqual.
func StartsWith(whole, part any, msg ...any) {
	raise(affix(caller("StartsWith"), false, true, whole, part), msg)
}

// DebugStartsWith is StartsWith if DebugAssertions is set, and a no-op
// otherwise.
func DebugStartsWith(whole, part any, msg ...any) {
	if DebugAssertions {
		raise(affix(caller("DebugStartsWith"), false, true, whole, part), msg)
	}
}

// NotStartsWithAsResult is like NotStartsWith, but returns the failure as an
// error instead of panicking.
func NotStartsWithAsResult(whole, part any) error {
	return result(affix(caller("NotStartsWithAsResult"), false, false, whole, part))
}

// NotStartsWith asserts that whole does not begin with part.
func NotStartsWith(whole, part any, msg ...any) {
	raise(affix(caller("NotStartsWith"), false, false, whole, part), msg)
}

// DebugNotStartsWith is NotStartsWith if DebugAssertions is set, and a no-op
// otherwise.
func DebugNotStartsWith(whole, part any, msg ...any) {
	if DebugAssertions {
		raise(affix(caller("DebugNotStartsWith"), false, false, whole, part), msg)
	}
}

// EndsWithAsResult is like EndsWith, but returns the failure as an error
// instead of panicking.
func EndsWithAsResult(whole, part any) error {
	return result(affix(caller("EndsWithAsResult"), true, true, whole, part))
}

// EndsWith asserts that whole finishes with part.
//
// See StartsWith for the supported types.
func EndsWith(whole, part any, msg ...any) {
	raise(affix(caller("EndsWith"), true, true, whole, part), msg)
}

// DebugEndsWith is EndsWith if DebugAssertions is set, and a no-op otherwise.
func DebugEndsWith(whole, part any, msg ...any) {
	if DebugAssertions {
		raise(affix(caller("DebugEndsWith"), true, true, whole, part), msg)
	}
}

// NotEndsWithAsResult is like NotEndsWith, but returns the failure as an error
// instead of panicking.
func NotEndsWithAsResult(whole, part any) error {
	return result(affix(caller("NotEndsWithAsResult"), true, false, whole, part))
}

// NotEndsWith asserts that whole does not finish with part.
func NotEndsWith(whole, part any, msg ...any) {
	raise(affix(caller("NotEndsWith"), true, false, whole, part), msg)
}

// DebugNotEndsWith is NotEndsWith if DebugAssertions is set, and a no-op
// otherwise.
func DebugNotEndsWith(whole, part any, msg ...any) {
	if DebugAssertions {
		raise(affix(caller("DebugNotEndsWith"), true, false, whole, part), msg)
	}
}
