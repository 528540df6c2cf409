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
	"gonum.org/v1/gonum/floats/scalar"

	"go.chromium.org/assertables/comparison"
	"go.chromium.org/assertables/failure"
)

// ApproxThreshold is the absolute tolerance used by ApproxEq and ApproxNe.
const ApproxThreshold = 1e-6

func approx[T Float](site callSite, want bool, a, b T) *failure.Summary {
	if scalar.EqualWithinAbs(float64(a), float64(b), ApproxThreshold) == want {
		return nil
	}
	l := site.labels("a", "b")
	sb := site.builder(comparison.TypeOf[T]())
	if want {
		sb.Because("expected |a-b| <= %g", ApproxThreshold)
	} else {
		sb.Because("expected |a-b| > %g", ApproxThreshold)
	}
	return sb.Operand("a", l[0], a).
		Operand("b", l[1], b).
		Derived("|a-b|", absDiff(a, b)).Summary
}

// ApproxEqAsResult is like ApproxEq, but returns the failure as an error
// instead of panicking.
func ApproxEqAsResult[T Float](a, b T) error {
	return result(approx(caller("ApproxEqAsResult"), true, a, b))
}

// ApproxEq asserts that a and b are within ApproxThreshold of each other.
func ApproxEq[T Float](a, b T, msg ...any) {
	raise(approx(caller("ApproxEq"), true, a, b), msg)
}

// DebugApproxEq is ApproxEq if DebugAssertions is set, and a no-op otherwise.
func DebugApproxEq[T Float](a, b T, msg ...any) {
	if DebugAssertions {
		raise(approx(caller("DebugApproxEq"), true, a, b), msg)
	}
}

// ApproxNeAsResult is like ApproxNe, but returns the failure as an error
// instead of panicking.
func ApproxNeAsResult[T Float](a, b T) error {
	return result(approx(caller("ApproxNeAsResult"), false, a, b))
}

// ApproxNe asserts that a and b differ by more than ApproxThreshold.
func ApproxNe[T Float](a, b T, msg ...any) {
	raise(approx(caller("ApproxNe"), false, a, b), msg)
}

// DebugApproxNe is ApproxNe if DebugAssertions is set, and a no-op otherwise.
func DebugApproxNe[T Float](a, b T, msg ...any) {
	if DebugAssertions {
		raise(approx(caller("DebugApproxNe"), false, a, b), msg)
	}
}
