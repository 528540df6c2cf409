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
	"cmp"

	"go.chromium.org/assertables/comparison"
	"go.chromium.org/assertables/failure"
)

func infix[T cmp.Ordered](site callSite, a T, op string, b T) *failure.Summary {
	r, ok := parseRelation(op)
	if ok && holds(r, a, b) {
		return nil
	}
	l := site.labels("a", "op", "b")
	sb := site.builder(comparison.TypeOf[T]())
	if ok {
		sb.Because("expected a %s b", r)
	} else {
		sb.Because("unknown operator %q", op)
	}
	return sb.Operand("a", l[0], a).
		AddFinding("op", op).
		Operand("b", l[2], b).Summary
}

// InfixAsResult is like Infix, but returns the failure as an error instead of
// panicking.
func InfixAsResult[T cmp.Ordered](a T, op string, b T) error {
	return result(infix(caller("InfixAsResult"), a, op, b))
}

// Infix asserts that `a op b` holds, where op is one of "==", "!=", "<", "<=",
// ">" or ">=".
//
// An unknown operator always fails.
func Infix[T cmp.Ordered](a T, op string, b T, msg ...any) {
	raise(infix(caller("Infix"), a, op, b), msg)
}

// DebugInfix is Infix if DebugAssertions is set, and a no-op otherwise.
func DebugInfix[T cmp.Ordered](a T, op string, b T, msg ...any) {
	if DebugAssertions {
		raise(infix(caller("DebugInfix"), a, op, b), msg)
	}
}
