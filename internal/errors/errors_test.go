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

package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"go.chromium.org/assertables"
	"go.chromium.org/assertables/assert"
	"go.chromium.org/assertables/check"
	"go.chromium.org/assertables/internal/errors"
)

func TestAnnotate(t *testing.T) {
	t.Parallel()

	t.Run("nil", func(t *testing.T) {
		check.That(t, assertables.EqAsResult(errors.Annotate(nil, "reason").Err(), nil))
	})

	t.Run("reason", func(t *testing.T) {
		inner := stderrors.New("inner")
		err := errors.Annotate(inner, "doing %s", "stuff").Err()
		check.That(t, assertables.EqAsResult(err.Error(), "doing stuff: inner"))
		check.That(t, assertables.EqAsResult(errors.Is(err, inner), true))
		check.That(t, assertables.EqAsResult(errors.Unwrap(err), inner))
	})

	t.Run("empty reason", func(t *testing.T) {
		inner := stderrors.New("inner")
		check.That(t, assertables.EqAsResult(errors.Annotate(inner, "").Err().Error(), "inner"))
	})

	t.Run("Reason", func(t *testing.T) {
		err := errors.Reason("bad %d", 3).Err()
		check.That(t, assertables.EqAsResult(err.Error(), "bad 3"))
		check.That(t, assertables.EqAsResult(errors.Unwrap(err), nil))
	})

	t.Run("As", func(t *testing.T) {
		var target *testErr
		err := errors.Annotate(&testErr{"x"}, "outer").Err()
		assert.That(t, assertables.EqAsResult(errors.As(err, &target), true))
		check.That(t, assertables.EqAsResult(target.msg, "x"))
	})
}

type testErr struct{ msg string }

func (e *testErr) Error() string { return e.msg }

func TestTags(t *testing.T) {
	t.Parallel()

	flaky := errors.NewBoolTag("flaky")
	owner := errors.NewTagKey("owner")

	t.Run("bool tag", func(t *testing.T) {
		err := errors.Reason("boom").Tag(flaky).Err()
		check.That(t, assertables.EqAsResult(flaky.In(err), true))
		check.That(t, assertables.EqAsResult(flaky.In(stderrors.New("boom")), false))
		check.That(t, assertables.EqAsResult(flaky.In(nil), false))
	})

	t.Run("through wrapping", func(t *testing.T) {
		err := fmt.Errorf("wrapped: %w", errors.Annotate(flaky.Apply(stderrors.New("x")), "outer").Err())
		check.That(t, assertables.EqAsResult(flaky.In(err), true))
	})

	t.Run("value tag", func(t *testing.T) {
		err := errors.New("boom", errors.TagValue{Key: owner, Value: "infra"})
		v, ok := errors.TagValueIn(owner, err)
		check.That(t, assertables.EqAsResult(ok, true))
		check.That(t, assertables.EqAsResult(v, any("infra")))

		_, ok = errors.TagValueIn(owner, errors.New("plain"))
		check.That(t, assertables.EqAsResult(ok, false))
	})

	t.Run("outermost wins", func(t *testing.T) {
		inner := errors.TagValue{Key: owner, Value: "inner"}.Apply(stderrors.New("x"))
		err := errors.Annotate(inner, "outer").Tag(errors.TagValue{Key: owner, Value: "outer"}).Err()
		v, _ := errors.TagValueIn(owner, err)
		check.That(t, assertables.EqAsResult(v, any("outer")))
	})
}

func TestMultiError(t *testing.T) {
	t.Parallel()

	sup, what := stderrors.New("sup"), stderrors.New("what")

	cases := []struct {
		name string
		me   errors.MultiError
		want string
	}{
		{"none", nil, "(0 errors)"},
		{"one", errors.MultiError{sup}, "sup"},
		{"two", errors.MultiError{sup, what}, "sup (and 1 other error)"},
		{"more", errors.MultiError{nil, sup, what, stderrors.New("nerds")}, "sup (and 2 other errors)"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			check.That(t, assertables.EqAsResult(tc.me.Error(), tc.want))
		})
	}

	t.Run("MaybeAdd", func(t *testing.T) {
		var me errors.MultiError
		me.MaybeAdd(nil)
		check.That(t, assertables.EqAsResult(me.AsError(), nil))
		me.MaybeAdd(sup)
		check.That(t, errOf(assertables.LenEqXAsResult(me, 1)))
		check.That(t, assertables.EqAsResult(me.First(), sup))
	})

	t.Run("Is and As", func(t *testing.T) {
		inner := &testErr{"hello"}
		var err error = errors.MultiError{errors.Annotate(inner, "annotated").Err(), what}
		check.That(t, assertables.EqAsResult(errors.Is(err, what), true))

		var target *testErr
		check.That(t, assertables.EqAsResult(errors.As(err, &target), true))
		check.That(t, assertables.EqAsResult(errors.Contains(err, what), true))
		check.That(t, assertables.EqAsResult(errors.Contains(err, sup), false))
	})
}

func TestWalk(t *testing.T) {
	t.Parallel()

	a, b := stderrors.New("a"), stderrors.New("b")
	err := errors.Annotate(errors.MultiError{a, fmt.Errorf("wrap: %w", b)}, "outer").Err()

	var seen []string
	errors.Walk(err, func(e error) bool {
		seen = append(seen, e.Error())
		return true
	})
	check.That(t, assertables.EqAsResult(len(seen), 5))
	check.That(t, assertables.EqAsResult(seen[len(seen)-1], "b"))

	var visited int
	errors.Walk(err, func(error) bool {
		visited++
		return false
	})
	check.That(t, assertables.EqAsResult(visited, 1))

	check.That(t, assertables.EqAsResult(errors.Any(err, func(e error) bool { return e == a }), true))
}

func errOf[T any](_ T, err error) error { return err }
