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
	"errors"
	"io/fs"
	"strconv"
	"testing"
)

func TestResult(t *testing.T) {
	t.Parallel()

	t.Run("Ok", func(t *testing.T) {
		if n := Ok(1, nil); n != 1 {
			t.Errorf("Ok = %d", n)
		}
		if n := Ok(strconv.Atoi("12")); n != 12 {
			t.Errorf("Ok = %d", n)
		}
	})
	t.Run("Ok fail", shouldFail(errOf(OkAsResult(0, errors.New("1"))),
		"assertables.Ok[int] FAILED",
		"expected a to be Ok",
		`a label: 0, errors.New("1")`,
		`a debug: Err("1")`,
	))
	t.Run("Ok label from call", shouldFail(errOf(OkAsResult(strconv.Atoi("x"))),
		`a label: strconv.Atoi("x")`))

	t.Run("Err", func(t *testing.T) {
		err := Err(strconv.Atoi("x"))
		if !errors.Is(err, strconv.ErrSyntax) {
			t.Errorf("Err = %v", err)
		}
	})
	t.Run("Err fail", shouldFail(errOf(ErrAsResult(1, nil)), "expected a to be Err", "a debug: Ok(1)"))

	ok1, ok2, bad := R(1, nil), R(2, nil), R(0, errors.New("nope"))

	t.Run("OkEq", shouldPass(errOf2(OkEqAsResult(ok1, R(1, nil)))))
	t.Run("OkEq fail", shouldFail(errOf2(OkEqAsResult(ok1, ok2)),
		"expected a's value == b's value",
		"a debug: Ok(1)",
		"b debug: Ok(2)",
	))
	t.Run("OkEq variant", shouldFail(errOf2(OkEqAsResult(ok1, bad)),
		"expected b to be Ok",
		`b debug: Err("nope")`,
	))
	t.Run("OkNe", shouldPass(errOf2(OkNeAsResult(ok1, ok2))))
	t.Run("OkEqX", func(t *testing.T) {
		if v, err := OkEqXAsResult(ok2, 2); v != 2 || err != nil {
			t.Errorf("OkEqXAsResult = %d, %v", v, err)
		}
	})
	t.Run("OkNeX fail", shouldFail(errOf(OkNeXAsResult(ok2, 2)), "expected a's value != x"))
	t.Run("OkEqX Err", shouldFail(errOf(OkEqXAsResult(bad, 0)), "expected a to be Ok"))

	e1, e2 := R(0, errors.New("x")), R(0, errors.New("y"))
	t.Run("ErrEq", shouldPass(errOf2(ErrEqAsResult(e1, R(5, errors.New("x"))))))
	t.Run("ErrEq fail", shouldFail(errOf2(ErrEqAsResult(e1, e2)), "expected a's error text == b's error text"))
	t.Run("ErrEq variant", shouldFail(errOf2(ErrEqAsResult(ok1, e1)), "expected a to be Err"))
	t.Run("ErrNe", shouldPass(errOf2(ErrNeAsResult(e1, e2))))
	t.Run("ErrEqX", shouldPass(errOf(ErrEqXAsResult(e1, "x"))))
	t.Run("ErrNeX fail", shouldFail(errOf(ErrNeXAsResult(e1, "x")), "expected a's error text != x", `x debug: "x"`))

	t.Run("ErrIs", func(t *testing.T) {
		wrapped := R("", &fs.PathError{Op: "open", Path: "f", Err: fs.ErrNotExist})
		if err := ErrIs(wrapped, fs.ErrNotExist); !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("ErrIs = %v", err)
		}
	})
	t.Run("ErrIs fail", shouldFail(errOf(ErrIsAsResult(e1, fs.ErrExist)),
		"expected errors.Is(a, target)",
		`target debug: error("file already exists")`,
	))
}

func TestOption(t *testing.T) {
	t.Parallel()

	one, two := 1, 2

	t.Run("Some", func(t *testing.T) {
		if v := Some(&one); v != 1 {
			t.Errorf("Some = %d", v)
		}
	})
	t.Run("Some fail", shouldFail(errOf(SomeAsResult[int](nil)),
		"assertables.Some[int] FAILED",
		"expected a to be Some",
		"a debug: None",
	))
	t.Run("None", shouldPass(NoneAsResult[string](nil)))
	t.Run("None fail", shouldFail(NoneAsResult(&one), "expected a to be None", "a debug: Some(1)"))
	t.Run("SomeEq", shouldPass(errOf2(SomeEqAsResult(&one, &one))))
	t.Run("SomeEq fail", shouldFail(errOf2(SomeEqAsResult(&one, &two)),
		"expected a's value == b's value",
		"b debug: Some(2)",
	))
	t.Run("SomeEq None", shouldFail(errOf2(SomeEqAsResult(&one, nil)), "expected b to be Some"))
	t.Run("SomeNe", shouldPass(errOf2(SomeNeAsResult(&one, &two))))
	t.Run("SomeEqX", shouldPass(errOf(SomeEqXAsResult(&two, 2))))
	t.Run("SomeNeX fail", shouldFail(errOf(SomeNeXAsResult(&two, 2)), "expected a's value != x"))
	t.Run("SomeEqX None", shouldFail(errOf(SomeEqXAsResult(nil, 2)), "expected a to be Some"))
}

// ready returns a receive-only channel holding v.
func ready[T any](v T) <-chan T {
	ch := make(chan T, 1)
	ch <- v
	return ch
}

func pending[T any]() <-chan T {
	return make(chan T)
}

func closed[T any]() <-chan T {
	ch := make(chan T)
	close(ch)
	return ch
}

func TestPoll(t *testing.T) {
	t.Parallel()

	t.Run("Ready", func(t *testing.T) {
		if v := Ready(ready("x")); v != "x" {
			t.Errorf("Ready = %q", v)
		}
	})
	t.Run("Ready pending", shouldFail(errOf(ReadyAsResult(pending[int]())),
		"assertables.Ready[int] FAILED",
		"expected a to be Ready",
		"a debug: Pending",
	))
	t.Run("Ready closed", shouldFail(errOf(ReadyAsResult(closed[int]())), "a debug: Closed"))
	t.Run("Ready nil", shouldFail(errOf(ReadyAsResult[int](nil)), "a debug: Pending"))
	t.Run("Pending", shouldPass(PendingAsResult(pending[int]())))
	t.Run("Pending fail", shouldFail(PendingAsResult(ready(3)), "expected a to be Pending", "a debug: Ready(3)"))

	t.Run("ReadyEq", shouldPass(errOf2(ReadyEqAsResult(ready(1), ready(1)))))
	t.Run("ReadyEq fail", shouldFail(errOf2(ReadyEqAsResult(ready(1), ready(2))),
		"expected a's value == b's value",
		"a debug: Ready(1)",
		"b debug: Ready(2)",
	))
	t.Run("ReadyEq pending", shouldFail(errOf2(ReadyEqAsResult(ready(1), pending[int]())), "expected b to be Ready"))
	t.Run("ReadyNe", shouldPass(errOf2(ReadyNeAsResult(ready(1), ready(2)))))
	t.Run("ReadyEqX", shouldPass(errOf(ReadyEqXAsResult(ready("a"), "a"))))
	t.Run("ReadyNeX fail", shouldFail(errOf(ReadyNeXAsResult(ready("a"), "a")), "expected a's value != x"))

	t.Run("receives once", func(t *testing.T) {
		ch := make(chan int, 2)
		ch <- 1
		ch <- 2
		if v := ReadyEqX((<-chan int)(ch), 1); v != 1 {
			t.Errorf("ReadyEqX = %d", v)
		}
		if v := Ready((<-chan int)(ch)); v != 2 {
			t.Errorf("second Ready = %d", v)
		}
	})
}
