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
	"bytes"
	"iter"
	"maps"
	"regexp"
	"slices"
	"testing"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/google/go-cmp/cmp"
)

func TestContains(t *testing.T) {
	t.Parallel()

	t.Run("substring", shouldPass(ContainsAsResult("alfa", "lf")))
	t.Run("rune", shouldPass(ContainsAsResult("alfa", 'f')))
	t.Run("bytes", shouldPass(ContainsAsResult([]byte("alfa"), []byte("lf"))))
	t.Run("slice", shouldPass(ContainsAsResult([]int{1, 2, 3}, 2)))
	t.Run("map key", shouldPass(ContainsAsResult(map[string]int{"a": 1}, "a")))
	t.Run("span", shouldPass(ContainsAsResult(RangeInclusive(1, 3), 3)))
	t.Run("mapset", shouldPass(ContainsAsResult(mapset.NewSet(1, 2), 2)))

	t.Run("fail", shouldFail(ContainsAsResult("alfa", "zz"),
		"assertables.Contains FAILED",
		"Because: expected container to contain containee",
		`container debug: "alfa"`,
		`containee debug: "zz"`,
	))
	t.Run("undefined", shouldFail(ContainsAsResult(42, 1), "cannot check containment of int in int"))
	t.Run("NotContains", shouldPass(NotContainsAsResult([]string{"a"}, "b")))
	t.Run("NotContains fail", shouldFail(NotContainsAsResult(Range(0, 10), 5),
		"expected container not to contain containee",
		"container debug: 0..10",
	))
}

func TestAffixes(t *testing.T) {
	t.Parallel()

	t.Run("StartsWith", shouldPass(StartsWithAsResult("alfa", "al")))
	t.Run("StartsWith slice", shouldPass(StartsWithAsResult([]int{1, 2, 3}, []int{1, 2})))
	t.Run("StartsWith fail", shouldFail(StartsWithAsResult("alfa", "fa"),
		"assertables.StartsWith FAILED",
		"expected whole to start with part",
		`part debug: "fa"`,
	))
	t.Run("StartsWith mixed", shouldFail(StartsWithAsResult("alfa", 1),
		"cannot check whether string values start with int values"))
	t.Run("NotStartsWith", shouldPass(NotStartsWithAsResult("alfa", "fa")))
	t.Run("EndsWith", shouldPass(EndsWithAsResult([]int{1, 2, 3}, []int{2, 3})))
	t.Run("EndsWith long part", shouldFail(EndsWithAsResult([]int{3}, []int{2, 3}), "expected whole to end with part"))
	t.Run("NotEndsWith", shouldPass(NotEndsWithAsResult("alfa", "al")))
	t.Run("NotEndsWith fail", shouldFail(NotEndsWithAsResult("alfa", "fa"), "expected whole not to end with part"))
}

func TestMatch(t *testing.T) {
	t.Parallel()

	t.Run("regexp", shouldPass(IsMatchAsResult(regexp.MustCompile(`^a.f`), "alfa")))
	t.Run("regexp fail", shouldFail(IsMatchAsResult(regexp.MustCompile(`^z`), "alfa"),
		"assertables.IsMatch FAILED",
		"expected matcher to match matchee",
		`matcher debug: regexp.MustCompile("^z")`,
		`matchee debug: "alfa"`,
	))
	t.Run("glob", shouldPass(IsMatchAsResult(Glob("**/*.go"), "a/b/c.go")))
	t.Run("glob fail", shouldFail(IsMatchAsResult(Glob("*.go"), "a/b.go"), `matcher debug: Glob("*.go")`))
	t.Run("bad glob", shouldFail(IsMatchAsResult(Glob("[a-"), "a"), "invalid pattern"))
	t.Run("NotMatch", shouldPass(NotMatchAsResult(Glob("*.txt"), "b.go")))
	t.Run("NotMatch fail", shouldFail(NotMatchAsResult(regexp.MustCompile(`l`), "alfa"),
		"expected matcher not to match matchee"))
	t.Run("NotMatch bad glob", shouldFail(NotMatchAsResult(Glob("[a-"), "a"), "invalid pattern"))
}

func TestEmpty(t *testing.T) {
	t.Parallel()

	t.Run("string", shouldPass(IsEmptyAsResult("")))
	t.Run("slice", shouldPass(IsEmptyAsResult([]int(nil))))
	t.Run("map", shouldPass(IsEmptyAsResult(map[string]int{})))
	t.Run("fail", shouldFail(IsEmptyAsResult("x"), "expected a to be empty", "len(a): 1"))
	t.Run("no length", shouldFail(IsEmptyAsResult(3), "cannot take the length of int"))
	t.Run("NotEmpty", shouldPass(NotEmptyAsResult([]string{"x"})))
	t.Run("NotEmpty fail", shouldFail(NotEmptyAsResult(""), "expected a not to be empty", "len(a): 0"))
}

func TestLen(t *testing.T) {
	t.Parallel()

	t.Run("LenEq payload", func(t *testing.T) {
		la, lb, err := LenEqAsResult("x", "x")
		if err != nil || la != 1 || lb != 1 {
			t.Errorf("LenEqAsResult = %d, %d, %v", la, lb, err)
		}
	})
	t.Run("LenEq fail", shouldFail(errOf2(LenEqAsResult("x", "xx")),
		"assertables.LenEq FAILED",
		"expected len(a) == len(b)",
		"len(a): 1",
		"len(b): 2",
	))
	t.Run("LenLt", shouldPass(errOf2(LenLtAsResult([]int{1}, map[int]int{1: 1, 2: 2}))))
	t.Run("LenGe", shouldPass(errOf2(LenGeAsResult(&[3]int{}, "abc"))))
	t.Run("Len method", shouldPass(errOf(LenEqXAsResult(bytes.NewBufferString("abcd"), 4))))
	t.Run("no length", shouldFail(errOf2(LenNeAsResult(1, "x")), "cannot take the length of int"))

	t.Run("LenGtX", func(t *testing.T) {
		if n := LenGtX([]int{1, 2}, 1); n != 2 {
			t.Errorf("LenGtX = %d", n)
		}
	})
	t.Run("LenLeX fail", shouldFail(errOf(LenLeXAsResult("abc", 2)), "expected len(a) <= x", "x debug: 2", "len(a): 3"))
}

func TestCount(t *testing.T) {
	t.Parallel()

	three := func() iter.Seq[int] { return slices.Values([]int{1, 2, 3}) }

	t.Run("CountEqX", func(t *testing.T) {
		n, err := CountEqXAsResult(three(), 3)
		if n != 3 || err != nil {
			t.Errorf("CountEqXAsResult = %d, %v", n, err)
		}
	})
	t.Run("CountLt", shouldPass(errOf2(CountLtAsResult(slices.Values([]int{1}), maps.Keys(map[int]bool{1: true, 2: true})))))
	t.Run("CountGe fail", shouldFail(errOf2(CountGeAsResult(slices.Values([]string{"a"}), slices.Values([]string{"a", "b"}))),
		"assertables.CountGe[string] FAILED",
		"expected count(a) >= count(b)",
		`a debug: []string{"a"}`,
		"count(a): 1",
		"count(b): 2",
	))
	t.Run("CountNeX fail", shouldFail(errOf(CountNeXAsResult(three(), 3)), "count(a): 3"))
	t.Run("nil seq", shouldPass(errOf(CountEqXAsResult[int](nil, 0))))
}

func TestIter(t *testing.T) {
	t.Parallel()

	seq := slices.Values[[]int]

	t.Run("IterEq", shouldPass(IterEqAsResult(seq([]int{1, 2}), seq([]int{1, 2}))))
	t.Run("IterEq fail", shouldFail(IterEqAsResult(seq([]int{1, 2}), seq([]int{1, 3})),
		"expected a == b, element by element",
		"a debug: []int{1, 2}",
		"b debug: []int{1, 3}",
	))
	t.Run("IterNe", shouldPass(IterNeAsResult(seq([]int{1}), seq([]int{1, 1}))))
	t.Run("IterLt", shouldPass(IterLtAsResult(seq([]int{1, 2}), seq([]int{1, 3}))))
	t.Run("IterLt prefix", shouldPass(IterLtAsResult(seq([]int{1}), seq([]int{1, 0}))))
	t.Run("IterLe", shouldPass(IterLeAsResult(seq([]int{1}), seq([]int{1}))))
	t.Run("IterGt fail", shouldFail(IterGtAsResult(seq([]int{1}), seq([]int{2})), "expected a > b, element by element"))
	t.Run("IterGe", shouldPass(IterGeAsResult(seq([]int{2}), seq([]int{1, 9}))))

	even := func(n int) bool { return n%2 == 0 }
	t.Run("All", shouldPass(AllAsResult(seq([]int{2, 4}), even)))
	t.Run("All empty", shouldPass(AllAsResult(seq(nil), even)))
	t.Run("All fail", shouldFail(AllAsResult(seq([]int{2, 4, 5, 7}), even),
		"assertables.All[int] FAILED",
		"expected every element to satisfy pred",
		"pred label: even",
		"first failing index: 2",
		"first failing element: 5",
	))
	t.Run("Any", shouldPass(AnyAsResult(seq([]int{1, 2}), even)))
	t.Run("Any fail", shouldFail(AnyAsResult(seq([]int{1, 3}), even), "expected some element to satisfy pred"))
	t.Run("nil pred", shouldFail(AllAsResult(seq([]int{1}), nil), "pred is nil"))
}

func TestBag(t *testing.T) {
	t.Parallel()

	t.Run("BagEq", shouldPass(BagEqAsResult([]string{"a", "b", "a"}, []string{"a", "a", "b"})))
	t.Run("BagEq fail", shouldFail(BagEqAsResult([]int{1, 1}, []int{1}),
		"expected bag(a) == bag(b)",
		"bag(a): map[int]int{1:2}",
		"bag(b): map[int]int{1:1}",
	))
	t.Run("BagNe", shouldPass(BagNeAsResult([]int{1, 1}, []int{1})))
	t.Run("BagSubbag", shouldPass(BagSubbagAsResult([]int{1, 1}, []int{1, 1, 1})))
	t.Run("BagSubbag fail", shouldFail(BagSubbagAsResult([]int{1, 1, 1}, []int{1, 1}),
		"assertables.BagSubbag[int] FAILED",
		"1 occurs 3 times in a but 2 times in b",
		"key: 1",
		"count(a): 3",
		"count(b): 2",
	))
	t.Run("BagSuperbag", shouldPass(BagSuperbagAsResult([]int{3, 1, 3}, []int{3})))
	t.Run("BagSuperbag fail", shouldFail(BagSuperbagAsResult([]string{"x"}, []string{"x", "y"}),
		`"y" occurs 0 times in a but 1 times in b`))
}

func TestSet(t *testing.T) {
	t.Parallel()

	t.Run("SetEq", shouldPass(SetEqAsResult([]int{1, 2, 2}, []int{2, 1})))
	t.Run("SetEq fail", shouldFail(SetEqAsResult([]int{1, 2}, []int{2, 3}),
		"expected set(a) == set(b)",
		"set(a): {1, 2}",
		"set(a) - set(b): {1}",
		"set(b) - set(a): {3}",
	))
	t.Run("SetNe", shouldPass(SetNeAsResult([]int{1}, []int{2})))
	t.Run("SetSubset", shouldPass(SetSubsetAsResult([]int{1}, []int{1, 2})))
	t.Run("SetSubset fail", shouldFail(SetSubsetAsResult([]int{1, 4}, []int{1, 2, 3}), "set(a) - set(b): {4}"))
	t.Run("SetSuperset", shouldPass(SetSupersetAsResult([]string{"a", "b"}, []string{"b"})))
	t.Run("SetSuperset fail", shouldFail(SetSupersetAsResult([]string{"a"}, []string{"a", "b"}), `set(b) - set(a): {"b"}`))
	t.Run("SetJoint", shouldPass(SetJointAsResult([]int{1, 2}, []int{2, 3})))
	t.Run("SetJoint fail", shouldFail(SetJointAsResult([]int{1}, []int{2}), "to have an element in common"))
	t.Run("SetDisjoint", shouldPass(SetDisjointAsResult([]int{1}, []int{2})))
	t.Run("SetDisjoint fail", shouldFail(SetDisjointAsResult([]int{1, 2}, []int{2, 3}), "set(a) & set(b): {2}"))
}

func TestIn(t *testing.T) {
	t.Parallel()

	t.Run("In", shouldPass(InAsResult(1, Range(0, 2))))
	t.Run("In fail", shouldFail(InAsResult(1, Range(2, 4)),
		"assertables.In[int] FAILED",
		"expected a to be in container",
		"a debug: 1",
		"container label: Range(2, 4)",
		"container debug: 2..4",
	))
	t.Run("In end excluded", shouldFail(InAsResult(4, Range(2, 4)), "container debug: 2..4"))
	t.Run("In inclusive", shouldPass(InAsResult(4, RangeInclusive(2, 4))))
	t.Run("In strings", shouldPass(InAsResult("m", Range("a", "z"))))
	t.Run("NotIn", shouldPass(NotInAsResult(4, Range(2, 4))))
	t.Run("NotIn fail", shouldFail(NotInAsResult(3, RangeInclusive(2, 4)),
		"expected a not to be in container",
		"container debug: 2..=4",
	))

	t.Run("Span strings", func(t *testing.T) {
		got := []string{Range(1, 2).String(), RangeInclusive(1.5, 2.5).GoString()}
		if diff := cmp.Diff([]string{"1..2", "1.5..=2.5"}, got); diff != "" {
			t.Errorf("unexpected diff (-want +got): %s", diff)
		}
	})
}
