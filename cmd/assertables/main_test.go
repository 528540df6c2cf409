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

package main

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/maruel/subcommands"

	"go.chromium.org/assertables"
	"go.chromium.org/assertables/assert"
	"go.chromium.org/assertables/check"
)

func needs(t *testing.T, programs ...string) {
	t.Helper()
	for _, p := range programs {
		if _, err := exec.LookPath(p); err != nil {
			t.Skipf("%s not available: %s", p, err)
		}
	}
}

// invoke runs the CLI with args and returns its exit code, stdout and stderr.
func invoke(args ...string) (int, string, string) {
	var out, errOut bytes.Buffer
	app := newApplication()
	app.out, app.err = &out, &errOut
	code := subcommands.Run(app, append([]string{args[0], "-color", "never"}, args[1:]...))
	return code, out.String(), errOut.String()
}

func TestResolveColor(t *testing.T) {
	t.Parallel()

	terminal := func() bool { return true }
	cases := []struct {
		flag, env string
		want      bool
	}{
		{"", "", true},
		{"auto", "never", true},
		{"", "never", false},
		{"always", "", true},
		{"never", "always", false},
	}
	for _, tc := range cases {
		got, err := resolveColor(tc.flag, tc.env, terminal)
		check.That(t, assertables.EqAsResult(err, nil))
		check.That(t, assertables.EqAsResult(got, tc.want))
	}

	_, err := resolveColor("sometimes", "", terminal)
	check.That(t, assertables.ContainsAsResult(err.Error(), `invalid color mode "sometimes"`))
}

func TestStdout(t *testing.T) {
	needs(t, "sh")

	t.Run("pass", func(t *testing.T) {
		code, out, _ := invoke("stdout", "-contains", "hello", "--", "sh", "-c", "echo hello world")
		check.That(t, assertables.EqAsResult(code, exitPass))
		check.That(t, assertables.EqAsResult(out, ""))
	})

	t.Run("fail", func(t *testing.T) {
		code, out, _ := invoke("stdout", "-eq", "bye", "--", "sh", "-c", "printf hello")
		check.That(t, assertables.EqAsResult(code, exitFail))
		check.That(t, assertables.StartsWithAsResult(out, "FAIL stdout sh\n"))
		check.That(t, assertables.ContainsAsResult(out, "FAILED"))
	})

	t.Run("glob", func(t *testing.T) {
		code, _, _ := invoke("stdout", "-glob", "hel*", "--", "sh", "-c", "printf hello")
		check.That(t, assertables.EqAsResult(code, exitPass))
	})

	t.Run("no assertion", func(t *testing.T) {
		code, _, errOut := invoke("stdout", "--", "sh", "-c", "true")
		check.That(t, assertables.EqAsResult(code, exitConfig))
		check.That(t, assertables.ContainsAsResult(errOut, "exactly one of -eq"))
	})

	t.Run("two assertions", func(t *testing.T) {
		code, _, _ := invoke("stdout", "-eq", "a", "-ne", "b", "--", "sh", "-c", "true")
		check.That(t, assertables.EqAsResult(code, exitConfig))
	})

	t.Run("bad regexp", func(t *testing.T) {
		code, _, errOut := invoke("stdout", "-matches", "(", "--", "sh", "-c", "true")
		check.That(t, assertables.EqAsResult(code, exitConfig))
		check.That(t, assertables.ContainsAsResult(errOut, "-matches"))
	})

	t.Run("no program", func(t *testing.T) {
		code, _, _ := invoke("stdout", "-eq", "a")
		check.That(t, assertables.EqAsResult(code, exitConfig))
	})
}

func TestStderr(t *testing.T) {
	needs(t, "sh")

	code, _, _ := invoke("stderr", "-matches", "^oops$", "--", "sh", "-c", "echo oops >&2")
	check.That(t, assertables.EqAsResult(code, exitFail))

	code, _, _ = invoke("stderr", "-matches", "^oops", "--", "sh", "-c", "echo oops >&2")
	check.That(t, assertables.EqAsResult(code, exitPass))
}

func TestStatus(t *testing.T) {
	needs(t, "sh")

	cases := []struct {
		name   string
		args   []string
		script string
		want   int
	}{
		{"success", []string{"-success"}, "true", exitPass},
		{"success fails", []string{"-success"}, "exit 1", exitFail},
		{"failure", []string{"-failure"}, "exit 4", exitPass},
		{"failure fails", []string{"-failure"}, "true", exitFail},
		{"code", []string{"-code", "3"}, "exit 3", exitPass},
		{"code zero", []string{"-code", "0"}, "true", exitPass},
		{"code fails", []string{"-code", "3"}, "exit 2", exitFail},
		{"none", nil, "true", exitConfig},
		{"two", []string{"-success", "-code", "0"}, "true", exitConfig},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			args := append([]string{"status"}, tc.args...)
			args = append(args, "--", "sh", "-c", tc.script)
			code, _, _ := invoke(args...)
			check.That(t, assertables.EqAsResult(code, tc.want))
		})
	}
}

func TestRun(t *testing.T) {
	needs(t, "sh", "printf")

	write := func(t *testing.T, body string) string {
		t.Helper()
		path := filepath.Join(t.TempDir(), "suite.yaml")
		assert.That(t, os.WriteFile(path, []byte(body), 0o644))
		return path
	}

	t.Run("pass", func(t *testing.T) {
		path := write(t, `
checks:
  - name: greets
    program: printf
    args: ["%s", "hello"]
    stdout: {eq: hello}
    status: {success: true}
`)
		code, out, _ := invoke("run", path)
		check.That(t, assertables.EqAsResult(code, exitPass))
		check.That(t, assertables.EqAsResult(out, "1 of 1 checks passed\n"))
	})

	t.Run("verbose", func(t *testing.T) {
		path := write(t, `
checks:
  - name: greets
    program: sh
    args: ["-c", "true"]
    status: {success: true}
`)
		code, out, _ := invoke("run", "-v", path)
		check.That(t, assertables.EqAsResult(code, exitPass))
		check.That(t, assertables.StartsWithAsResult(out, "ok   greets\n"))
	})

	t.Run("fail", func(t *testing.T) {
		path := write(t, `
checks:
  - name: ok
    program: sh
    args: ["-c", "true"]
    status: {success: true}
  - name: broken
    program: sh
    args: ["-c", "exit 7"]
    status: {code: 3}
`)
		code, out, _ := invoke("run", path)
		check.That(t, assertables.EqAsResult(code, exitFail))
		check.That(t, assertables.ContainsAsResult(out, "FAIL broken\n"))
		check.That(t, assertables.NotContainsAsResult(out, "FAIL ok"))
		check.That(t, assertables.EndsWithAsResult(out, "1 of 2 checks passed\n"))
	})

	t.Run("invalid suite", func(t *testing.T) {
		path := write(t, "checks: []\n")
		code, _, errOut := invoke("run", path)
		check.That(t, assertables.EqAsResult(code, exitConfig))
		check.That(t, assertables.ContainsAsResult(errOut, "invalid suite"))
	})

	t.Run("missing suite", func(t *testing.T) {
		code, _, _ := invoke("run", filepath.Join(t.TempDir(), "nope.yaml"))
		check.That(t, assertables.EqAsResult(code, exitConfig))
	})

	t.Run("no args", func(t *testing.T) {
		code, _, _ := invoke("run")
		check.That(t, assertables.EqAsResult(code, exitConfig))
	})
}
