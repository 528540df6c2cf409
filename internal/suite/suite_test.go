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

package suite

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"go.chromium.org/assertables"
	"go.chromium.org/assertables/assert"
	"go.chromium.org/assertables/check"
	"go.chromium.org/assertables/failure"
	"go.chromium.org/assertables/internal/errors"
)

const greets = `
checks:
  - name: greets
    program: printf
    args: ["%s", "hello"]
    stdout: {eq: hello}
    stderr: {eq: ""}
    status: {success: true}
  - name: complains
    program: sh
    args: ["-c", "echo 'no such thing' >&2; exit 3"]
    stderr: {matches: "^no such"}
    status: {code: 3}
`

func TestParse(t *testing.T) {
	t.Parallel()

	t.Run("valid", func(t *testing.T) {
		t.Parallel()

		s, err := Parse([]byte(greets), "greets.yaml")
		assert.That(t, assertables.EqAsResult(err, nil))
		assert.That(t, errOf(assertables.LenEqXAsResult(s.Checks, 2)))

		c := s.Checks[0]
		check.That(t, assertables.EqAsResult(c.Name, "greets"))
		check.That(t, assertables.EqAsResult(*c.Stdout.Eq, "hello"))
		check.That(t, assertables.EqAsResult(c.Status.Success, true))
		check.That(t, assertables.EqAsResult(*s.Checks[1].Status.Code, 3))
		check.That(t, assertables.IsMatchAsResult(s.Checks[1].Stderr.Matcher(), "no such thing"))
	})

	cases := []struct {
		name string
		yaml string
		want string
	}{
		{"empty", ``, "invalid suite"},
		{"no checks", `checks: []`, "invalid suite"},
		{"unknown key", "checks:\n  - {name: a, program: b, status: {success: true}, shell: x}\n", "invalid suite"},
		{"no assertion", "checks:\n  - {name: a, program: b}\n", "invalid suite"},
		{"two text ops", "checks:\n  - {name: a, program: b, stdout: {eq: x, ne: y}}\n", "invalid suite"},
		{"bad code", "checks:\n  - {name: a, program: b, status: {code: 300}}\n", "invalid suite"},
		{"success false", "checks:\n  - {name: a, program: b, status: {success: false}}\n", "invalid suite"},
		{"bad yaml", "checks: [", "parsing YAML"},
		{"bad regexp", "checks:\n  - {name: a, program: b, stdout: {matches: \"(\"}}\n", `check "a"`},
		{"duplicate", "checks:\n  - {name: a, program: b, status: {code: 0}}\n  - {name: a, program: c, status: {code: 0}}\n",
			`duplicate check name "a"`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := Parse([]byte(tc.yaml), "bad.yaml")
			assert.That(t, assertables.NeAsResult(err, nil))
			check.That(t, assertables.ContainsAsResult(err.Error(), tc.want))
			check.That(t, assertables.EqAsResult(InvalidSuite.In(err), true))
		})
	}
}

func TestLoad(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "suite.yaml")
	assert.That(t, assertables.EqAsResult(os.WriteFile(path, []byte(greets), 0o644), nil))

	s, err := Load(path)
	assert.That(t, assertables.EqAsResult(err, nil))
	check.That(t, errOf(assertables.LenEqXAsResult(s.Checks, 2)))

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	check.That(t, assertables.EqAsResult(InvalidSuite.In(err), true))
	check.That(t, assertables.EqAsResult(errors.Is(err, os.ErrNotExist), true))
}

func TestCommand(t *testing.T) {
	t.Parallel()

	c := &Check{
		Program: "env",
		Args:    []string{"-i"},
		Dir:     "/tmp",
		Env:     map[string]string{"B": "2", "A": "1"},
		Stdin:   "input",
	}
	cmd := c.Command()
	check.That(t, assertables.EqAsResult(cmd.Dir, "/tmp"))
	check.That(t, assertables.EndsWithAsResult(cmd.Env, []string{"A=1", "B=2"}))
	check.That(t, assertables.NeAsResult(cmd.Stdin, nil))
	check.That(t, assertables.NeAsResult(c.Command(), cmd))
}

func TestRun(t *testing.T) {
	t.Parallel()

	for _, p := range []string{"printf", "sh"} {
		if _, err := exec.LookPath(p); err != nil {
			t.Skipf("%s not available", p)
		}
	}

	t.Run("passing", func(t *testing.T) {
		t.Parallel()

		s, err := Parse([]byte(greets), "greets.yaml")
		assert.That(t, assertables.EqAsResult(err, nil))
		results, err := Run(context.Background(), s)
		check.That(t, assertables.EqAsResult(err, nil))
		for _, r := range results {
			check.That(t, assertables.EqAsResult(r.Passed(), true))
		}
	})

	t.Run("failing", func(t *testing.T) {
		t.Parallel()

		s, err := Parse([]byte(`
checks:
  - name: wrong greeting
    program: printf
    args: ["%s", "hello"]
    stdout: {glob: "w*"}
    status: {failure: true}
  - name: fine
    program: sh
    args: ["-c", "exit 0"]
    status: {success: true}
  - name: missing program
    program: assertables-no-such-program
    stdout: {contains: ""}
`), "failing.yaml")
		assert.That(t, assertables.EqAsResult(err, nil))

		results, err := Run(context.Background(), s)
		assert.That(t, errOf(assertables.LenEqXAsResult(results, 3)))

		var me errors.MultiError
		assert.That(t, assertables.EqAsResult(errors.As(err, &me), true))
		check.That(t, errOf(assertables.LenEqXAsResult(me, 2)))
		check.That(t, assertables.ContainsAsResult(err.Error(), `check "wrong greeting"`))

		wrong := results[0]
		check.That(t, assertables.EqAsResult(wrong.Passed(), false))
		check.That(t, errOf(assertables.LenEqXAsResult(wrong.Failures, 2)))
		s0, ok := failure.From(wrong.Failures[0])
		assert.That(t, assertables.EqAsResult(ok, true))
		check.That(t, assertables.EqAsResult(s0.Comparison.Name, "assertables.IoReadToStringIsMatch"))

		check.That(t, assertables.ContainsAsResult(s0.Error(), "a debug: stdout"))
		s1, ok := failure.From(wrong.Failures[1])
		assert.That(t, assertables.EqAsResult(ok, true))
		check.That(t, assertables.ContainsAsResult(s1.Error(), "a label: exitCode"))

		check.That(t, assertables.EqAsResult(results[1].Passed(), true))

		missing := results[2]
		check.That(t, errOf(assertables.LenEqXAsResult(missing.Failures, 1)))
		check.That(t, assertables.EqAsResult(failure.IsAcquisition(missing.Failures[0]), true))
		check.That(t, assertables.ContainsAsResult(missing.Failures[0].Error(), "could not run assertables-no-such-program"))
	})

	t.Run("runs the program once", func(t *testing.T) {
		t.Parallel()

		log := filepath.Join(t.TempDir(), "runs")
		c := &Check{
			Name:    "counts",
			Program: "sh",
			Args:    []string{"-c", `echo run >> "$0"; printf hi; printf oops >&2; exit 3`, log},
			Stdout:  &Text{Eq: ptr("hi")},
			Stderr:  &Text{Contains: ptr("oops")},
			Status:  &Status{Code: ptr(3)},
		}
		r := RunCheck(context.Background(), c)
		check.That(t, assertables.EqAsResult(r.Passed(), true))

		runs, err := os.ReadFile(log)
		assert.That(t, err)
		check.That(t, assertables.EqAsResult(string(runs), "run\n"))
	})

	t.Run("failure status", func(t *testing.T) {
		t.Parallel()

		c := &Check{Name: "fails", Program: "sh", Args: []string{"-c", "exit 0"}, Status: &Status{Failure: true}}
		r := RunCheck(context.Background(), c)
		check.That(t, errOf(assertables.LenEqXAsResult(r.Failures, 1)))
		check.That(t, assertables.ContainsAsResult(r.Failures[0].Error(), "expected a != b"))
	})

	t.Run("cancelled", func(t *testing.T) {
		t.Parallel()

		s, err := Parse([]byte(greets), "greets.yaml")
		assert.That(t, assertables.EqAsResult(err, nil))
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		results, err := Run(ctx, s)
		check.That(t, errOf(assertables.LenEqXAsResult(results, 0)))
		check.That(t, assertables.EqAsResult(errors.Is(err, context.Canceled), true))
	})
}

func errOf[T any](_ T, err error) error { return err }

func ptr[T any](v T) *T { return &v }
