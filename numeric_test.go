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
	"math"
	"testing"
)

func TestApprox(t *testing.T) {
	t.Parallel()

	t.Run("ApproxEq", shouldPass(ApproxEqAsResult(1.0, 1.0+1e-7)))
	t.Run("ApproxEq float32", shouldPass(ApproxEqAsResult[float32](0.5, 0.5)))
	t.Run("ApproxEq fail", shouldFail(ApproxEqAsResult(1.0, 1.1),
		"assertables.ApproxEq[float64] FAILED",
		"expected |a-b| <= 1e-06",
		"|a-b|: ",
	))
	t.Run("ApproxEq NaN", shouldFail(ApproxEqAsResult(math.NaN(), math.NaN()), "expected |a-b| <= 1e-06"))
	t.Run("ApproxNe", shouldPass(ApproxNeAsResult(1.0, 1.1)))
	t.Run("ApproxNe fail", shouldFail(ApproxNeAsResult(1.0, 1.0), "expected |a-b| > 1e-06"))
}

func TestDelta(t *testing.T) {
	t.Parallel()

	t.Run("InDelta", shouldPass(InDeltaAsResult(10, 12, 2)))
	t.Run("InDelta fail", shouldFail(InDeltaAsResult(10, 13, 2),
		"expected |a-b| <= delta",
		"delta debug: 2",
		"|a-b|: 3",
	))
	t.Run("InDelta unsigned", shouldPass(InDeltaAsResult[uint8](250, 3, 255)))

	t.Run("InEpsilon", shouldPass(InEpsilonAsResult(100.0, 101.0, 0.02)))
	t.Run("InEpsilon fail", shouldFail(InEpsilonAsResult(100.0, 110.0, 0.05),
		"expected |a-b| <= epsilon * min(|a|, |b|)",
		"epsilon * min(|a|, |b|): ",
	))
}

func TestAbsDiffWide(t *testing.T) {
	t.Parallel()

	t.Run("InDelta int8", shouldFail(InDeltaAsResult(int8(100), int8(-100), int8(5)),
		"assertables.InDelta[int8] FAILED",
		"|a-b|: 200",
	))
	t.Run("InDelta int8 max delta", shouldFail(InDeltaAsResult(int8(-100), int8(100), int8(127)), "|a-b|: 200"))
	t.Run("InDelta int64", shouldFail(
		InDeltaAsResult(int64(math.MaxInt64), int64(math.MinInt64), int64(math.MaxInt64)),
		"|a-b|: 18446744073709551615",
	))
	t.Run("InDelta int64 fits", shouldPass(InDeltaAsResult(int64(math.MaxInt64), int64(0), int64(math.MaxInt64))))
	t.Run("LtX int8", shouldFail(errOf(AbsDiffLtXAsResult(int8(100), int8(-100), int8(1))), "|a-b|: 200"))
	t.Run("EqX int8", shouldFail(errOf(AbsDiffEqXAsResult(int8(-128), int8(127), int8(127))), "|a-b|: 255"))
	t.Run("EqX int8 fits", shouldPass(errOf(AbsDiffEqXAsResult(int8(-100), int8(20), int8(120)))))

	t.Run("GtX saturates", func(t *testing.T) {
		t.Parallel()

		d, err := AbsDiffGtXAsResult(int8(100), int8(-100), int8(126))
		if err != nil {
			t.Fatalf("unexpected failure:\n%s", err)
		}
		if d != math.MaxInt8 {
			t.Errorf("payload = %d, want %d", d, math.MaxInt8)
		}
	})
	t.Run("NeX int64", func(t *testing.T) {
		t.Parallel()

		d, err := AbsDiffNeXAsResult(int64(math.MinInt64), int64(1), int64(0))
		if err != nil {
			t.Fatalf("unexpected failure:\n%s", err)
		}
		if d != math.MaxInt64 {
			t.Errorf("payload = %d, want %d", d, int64(math.MaxInt64))
		}
	})
}

func TestAbsDiff(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		f    func(a, b, x int) (int, error)
		pass bool
	}{
		{"EqX", AbsDiffEqXAsResult[int], true},
		{"NeX", AbsDiffNeXAsResult[int], false},
		{"LtX", AbsDiffLtXAsResult[int], false},
		{"LeX", AbsDiffLeXAsResult[int], true},
		{"GtX", AbsDiffGtXAsResult[int], false},
		{"GeX", AbsDiffGeXAsResult[int], true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			d, err := tc.f(10, 13, 3)
			if d != 3 {
				t.Errorf("payload = %d, want 3", d)
			}
			if (err == nil) != tc.pass {
				t.Errorf("err = %v", err)
			}
		})
	}

	t.Run("findings", shouldFail(errOf(AbsDiffGtXAsResult(10, 13, 5)),
		"assertables.AbsDiffGtX[int] FAILED",
		"expected |a-b| > x",
		"x debug: 5",
		"|a-b|: 3",
	))

	t.Run("panicking", func(t *testing.T) {
		if d := AbsDiffLtX(2.5, 1.0, 2.0); d != 1.5 {
			t.Errorf("AbsDiffLtX = %v", d)
		}
	})
}
