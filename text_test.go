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
	"io"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
	"testing/iotest"

	"go.chromium.org/assertables/failure"
)

func writeFile(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

// needs skips the test if any of the programs is missing.
func needs(t *testing.T, programs ...string) {
	t.Helper()
	for _, p := range programs {
		if _, err := exec.LookPath(p); err != nil {
			t.Skipf("%s not available: %s", p, err)
		}
	}
}

func sh(script string) *exec.Cmd {
	return exec.Command("sh", "-c", script)
}

// shouldFailWith is shouldFail for acquisition failures caused by `cause`.
func shouldFailWith(err error, cause error, substrings ...string) func(*testing.T) {
	return func(t *testing.T) {
		t.Helper()
		shouldFail(err, substrings...)(t)
		if !failure.IsAcquisition(err) {
			t.Errorf("expected an acquisition failure, got:\n%s", err)
		}
		if !errors.Is(err, cause) {
			t.Errorf("expected Cause %v, got:\n%s", cause, err)
		}
	}
}

func TestFsReadToString(t *testing.T) {
	t.Parallel()

	hello := writeFile(t, "hello.txt", "hello\n")
	world := writeFile(t, "world.txt", "world\n")
	missing := filepath.Join(t.TempDir(), "missing.txt")
	binary := writeFile(t, "binary", "\xff\xfe")

	t.Run("Eq", func(t *testing.T) {
		a, b, err := FsReadToStringEqAsResult(hello, hello)
		if a != "hello\n" || b != "hello\n" || err != nil {
			t.Errorf("FsReadToStringEqAsResult = %q, %q, %v", a, b, err)
		}
	})
	t.Run("Eq fail", shouldFail(errOf2(FsReadToStringEqAsResult(hello, world)),
		"assertables.FsReadToStringEq FAILED",
		"expected a contents == b contents",
		"a label: hello",
		`a contents: "hello\n"`,
		`b contents: "world\n"`,
		"Diff: \\",
		"--- a contents",
		"+++ b contents",
		"-hello",
		"+world",
	))
	t.Run("Ne", shouldPass(errOf2(FsReadToStringNeAsResult(hello, world))))
	t.Run("Lt", shouldPass(errOf2(FsReadToStringLtAsResult(hello, world))))
	t.Run("Le", shouldPass(errOf2(FsReadToStringLeAsResult(hello, hello))))
	t.Run("Gt fail", shouldFail(errOf2(FsReadToStringGtAsResult(hello, world)), "expected a contents > b contents"))
	t.Run("Ge", shouldPass(errOf2(FsReadToStringGeAsResult(world, hello))))

	t.Run("EqX", shouldPass(errOf(FsReadToStringEqXAsResult(hello, "hello\n"))))
	t.Run("NeX fail", shouldFail(errOf(FsReadToStringNeXAsResult(hello, "hello\n")), "expected a contents != x"))
	t.Run("LtX", shouldPass(errOf(FsReadToStringLtXAsResult(hello, "i"))))
	t.Run("LeX", shouldPass(errOf(FsReadToStringLeXAsResult(hello, "hello\n"))))
	t.Run("GtX", shouldPass(errOf(FsReadToStringGtXAsResult(hello, "a"))))
	t.Run("GeX fail", shouldFail(errOf(FsReadToStringGeXAsResult(hello, "z")), "expected a contents >= x"))
	t.Run("Contains", shouldPass(errOf(FsReadToStringContainsAsResult(hello, "ell"))))
	t.Run("Contains fail", shouldFail(errOf(FsReadToStringContainsAsResult(hello, "xyz")),
		"expected a contents to contain containee", `containee debug: "xyz"`))
	t.Run("IsMatch", shouldPass(errOf(FsReadToStringIsMatchAsResult(hello, regexp.MustCompile(`(?m)^h.*o$`)))))
	t.Run("IsMatch end of text", shouldFail(errOf(FsReadToStringIsMatchAsResult(hello, regexp.MustCompile(`^h.*o$`))),
		"expected matcher to match a contents"))
	t.Run("IsMatch fail", shouldFail(errOf(FsReadToStringIsMatchAsResult(hello, regexp.MustCompile(`^w`))),
		"expected matcher to match a contents"))

	t.Run("missing", shouldFailWith(errOf(FsReadToStringEqXAsResult(missing, "")), fs.ErrNotExist,
		"could not obtain the contents of a",
		"a error: reading file",
	))
	t.Run("missing b", shouldFailWith(errOf2(FsReadToStringEqAsResult(hello, missing)), fs.ErrNotExist,
		"could not obtain the contents of b",
	))
	t.Run("invalid UTF-8", shouldFailWith(errOf(FsReadToStringContainsAsResult(binary, "x")), ErrInvalidUTF8,
		"a error: decoding",
	))

	t.Run("panics with Cause", func(t *testing.T) {
		s := recoverSummary(t, func() { FsReadToStringEqX(missing, "") })
		if !errors.Is(s, fs.ErrNotExist) {
			t.Errorf("got %v", s)
		}
	})
}

// namedReader renders as a name instead of its type.
type namedReader struct{ *strings.Reader }

func (namedReader) GoString() string { return "captured" }

func TestIoReadToString(t *testing.T) {
	t.Parallel()

	r := strings.NewReader

	t.Run("Eq", shouldPass(errOf2(IoReadToStringEqAsResult(r("abc"), r("abc")))))
	t.Run("Eq fail", shouldFail(errOf2(IoReadToStringEqAsResult(r("abc"), r("abd"))),
		"assertables.IoReadToStringEq FAILED",
		"a debug: *strings.Reader",
		`a contents: "abc"`,
		`b contents: "abd"`,
	))
	t.Run("GoStringer reader", shouldFail(errOf(IoReadToStringEqXAsResult(namedReader{r("abc")}, "abd")),
		"a debug: captured",
		`a contents: "abc"`,
	))
	t.Run("Ne", shouldPass(errOf2(IoReadToStringNeAsResult(r("a"), r("b")))))
	t.Run("Lt", shouldPass(errOf2(IoReadToStringLtAsResult(r("a"), r("b")))))
	t.Run("Le fail", shouldFail(errOf2(IoReadToStringLeAsResult(r("b"), r("a"))), "expected a contents <= b contents"))
	t.Run("Gt", shouldPass(errOf2(IoReadToStringGtAsResult(r("b"), r("a")))))
	t.Run("Ge", shouldPass(errOf2(IoReadToStringGeAsResult(r("b"), r("b")))))

	t.Run("EqX", func(t *testing.T) {
		if s := IoReadToStringEqX(r("alfa"), "alfa"); s != "alfa" {
			t.Errorf("IoReadToStringEqX = %q", s)
		}
	})
	t.Run("NeX", shouldPass(errOf(IoReadToStringNeXAsResult(r("alfa"), "beta"))))
	t.Run("LtX fail", shouldFail(errOf(IoReadToStringLtXAsResult(r("b"), "a")), "expected a contents < x"))
	t.Run("LeX", shouldPass(errOf(IoReadToStringLeXAsResult(r("a"), "a"))))
	t.Run("GtX", shouldPass(errOf(IoReadToStringGtXAsResult(r("b"), "a"))))
	t.Run("GeX", shouldPass(errOf(IoReadToStringGeXAsResult(r("b"), "b"))))
	t.Run("Contains", shouldPass(errOf(IoReadToStringContainsAsResult(r("alfa"), "lf"))))
	t.Run("IsMatch", shouldPass(errOf(IoReadToStringIsMatchAsResult(r("a.go"), Glob("*.go")))))

	broken := errors.New("broken pipe")
	t.Run("read error", shouldFailWith(errOf(IoReadToStringEqXAsResult(iotest.ErrReader(broken), "")), broken,
		"could not obtain the contents of a",
	))
	t.Run("nil reader", shouldFail(errOf(IoReadToStringEqXAsResult(nil, "")), "a error: nil reader"))
	t.Run("invalid UTF-8", shouldFailWith(errOf(IoReadToStringEqXAsResult(r("\xc3"), "")), ErrInvalidUTF8))

	t.Run("reads to EOF", func(t *testing.T) {
		rd := io.MultiReader(r("ab"), r("cd"))
		if s := IoReadToStringEqX(rd, "abcd"); s != "abcd" {
			t.Errorf("got %q", s)
		}
	})
}

func TestCommand(t *testing.T) {
	t.Parallel()
	needs(t, "printf", "sh")

	printf := func(s string) *exec.Cmd { return exec.Command("printf", "%s", s) }

	t.Run("StdoutEqX", func(t *testing.T) {
		if s := CommandStdoutEqX(printf("hello"), "hello"); s != "hello" {
			t.Errorf("CommandStdoutEqX = %q", s)
		}
	})
	t.Run("StdoutEqX fail", shouldFail(errOf(CommandStdoutEqXAsResult(printf("hello"), "world")),
		"assertables.CommandStdoutEqX FAILED",
		"expected a stdout == x",
		`a label: printf("hello")`,
		`a debug: exec.Command("printf", "%s", "hello")`,
		`a stdout: "hello"`,
		`x debug: "world"`,
	))
	t.Run("StdoutEq", shouldPass(errOf2(CommandStdoutEqAsResult(printf("a"), printf("a")))))
	t.Run("StdoutNe", shouldPass(errOf2(CommandStdoutNeAsResult(printf("a"), printf("b")))))
	t.Run("StdoutLt", shouldPass(errOf2(CommandStdoutLtAsResult(printf("a"), printf("b")))))
	t.Run("StdoutLe", shouldPass(errOf2(CommandStdoutLeAsResult(printf("a"), printf("a")))))
	t.Run("StdoutGt fail", shouldFail(errOf2(CommandStdoutGtAsResult(printf("a"), printf("b"))),
		"expected a stdout > b stdout"))
	t.Run("StdoutGe", shouldPass(errOf2(CommandStdoutGeAsResult(printf("b"), printf("a")))))
	t.Run("StdoutNeX", shouldPass(errOf(CommandStdoutNeXAsResult(printf("a"), "b"))))
	t.Run("StdoutLtX", shouldPass(errOf(CommandStdoutLtXAsResult(printf("a"), "b"))))
	t.Run("StdoutLeX", shouldPass(errOf(CommandStdoutLeXAsResult(printf("a"), "a"))))
	t.Run("StdoutGtX", shouldPass(errOf(CommandStdoutGtXAsResult(printf("b"), "a"))))
	t.Run("StdoutGeX fail", shouldFail(errOf(CommandStdoutGeXAsResult(printf("a"), "b")), "expected a stdout >= x"))
	t.Run("StdoutContains", shouldPass(errOf(CommandStdoutContainsAsResult(printf("alfa"), "lf"))))
	t.Run("StdoutIsMatch", shouldPass(errOf(CommandStdoutIsMatchAsResult(printf("alfa"), regexp.MustCompile(`^al`)))))

	t.Run("StderrEqX", shouldPass(errOf(CommandStderrEqXAsResult(sh("printf oops >&2"), "oops"))))
	t.Run("StderrEqX fail", shouldFail(errOf(CommandStderrEqXAsResult(sh("printf oops >&2"), "")),
		`a stderr: "oops"`,
	))
	t.Run("StderrEq", shouldPass(errOf2(CommandStderrEqAsResult(sh("true"), printf("x")))))
	t.Run("StderrContains", shouldPass(errOf(CommandStderrContainsAsResult(sh("echo 'bad thing' >&2; exit 1"), "bad"))))
	t.Run("StderrIsMatch fail", shouldFail(errOf(CommandStderrIsMatchAsResult(sh("true"), Glob("?*"))),
		"expected matcher to match a stderr"))

	t.Run("nonzero exit is fine", shouldPass(errOf(CommandStdoutEqXAsResult(sh("printf x; exit 3"), "x"))))

	t.Run("spawn failure", shouldFailWith(
		errOf(CommandStdoutEqXAsResult(exec.Command("assertables-no-such-program"), "")), exec.ErrNotFound,
		"could not obtain the stdout of a",
		"a error: ",
	))
	t.Run("nil command", shouldFail(errOf(CommandStdoutEqXAsResult(nil, "")), "a debug: nil"))
	t.Run("invalid UTF-8", shouldFailWith(errOf(CommandStdoutContainsAsResult(sh(`printf '\377'`), "")), ErrInvalidUTF8))
}

func TestProgramArgs(t *testing.T) {
	t.Parallel()
	needs(t, "printf")

	args := []string{"%s", "hi"}

	t.Run("StdoutEq", shouldPass(errOf2(ProgramArgsStdoutEqAsResult("printf", args, "printf", []string{"hi"}))))
	t.Run("StdoutEqX", shouldPass(errOf(ProgramArgsStdoutEqXAsResult("printf", args, "hi"))))
	t.Run("StdoutEqX fail", shouldFail(errOf(ProgramArgsStdoutEqXAsResult("printf", args, "ho")),
		"assertables.ProgramArgsStdoutEqX FAILED",
		`a label: "printf", args`,
		`a stdout: "hi"`,
	))
	t.Run("StdoutContains", shouldPass(errOf(ProgramArgsStdoutContainsAsResult("printf", args, "h"))))
	t.Run("StdoutIsMatch", shouldPass(errOf(ProgramArgsStdoutIsMatchAsResult("printf", args, regexp.MustCompile(`^hi$`)))))
	t.Run("missing program", shouldFailWith(
		errOf(ProgramArgsStdoutEqXAsResult("assertables-no-such-program", nil, "")), exec.ErrNotFound))
}

func TestStatus(t *testing.T) {
	t.Parallel()
	needs(t, "sh")

	t.Run("Success", func(t *testing.T) {
		if code := StatusSuccess(sh("exit 0")); code != 0 {
			t.Errorf("StatusSuccess = %d", code)
		}
	})
	t.Run("Success fail", shouldFail(errOf(StatusSuccessAsResult(sh("exit 2"))),
		"assertables.StatusSuccess FAILED",
		"expected a to exit successfully",
		"a code: 2",
	))
	t.Run("Failure", func(t *testing.T) {
		code, err := StatusFailureAsResult(sh("exit 4"))
		if code != 4 || err != nil {
			t.Errorf("StatusFailureAsResult = %d, %v", code, err)
		}
	})
	t.Run("Failure fail", shouldFail(errOf(StatusFailureAsResult(sh("true"))), "expected a to fail", "a code: 0"))
	t.Run("Failure spawn", shouldFailWith(
		errOf(StatusFailureAsResult(exec.Command("assertables-no-such-program"))), exec.ErrNotFound,
		"could not obtain the exit code of a",
	))

	t.Run("CodeValueEq", shouldPass(errOf2(StatusCodeValueEqAsResult(sh("exit 1"), sh("exit 1")))))
	t.Run("CodeValueEq fail", shouldFail(errOf2(StatusCodeValueEqAsResult(sh("exit 1"), sh("exit 2"))),
		"expected a code == b code",
		"a code: 1",
		"b code: 2",
	))
	t.Run("CodeValueNe", shouldPass(errOf2(StatusCodeValueNeAsResult(sh("exit 1"), sh("exit 2")))))
	t.Run("CodeValueLt", shouldPass(errOf2(StatusCodeValueLtAsResult(sh("exit 0"), sh("exit 1")))))
	t.Run("CodeValueLe", shouldPass(errOf2(StatusCodeValueLeAsResult(sh("exit 1"), sh("exit 1")))))
	t.Run("CodeValueGt fail", shouldFail(errOf2(StatusCodeValueGtAsResult(sh("exit 0"), sh("exit 1"))),
		"expected a code > b code"))
	t.Run("CodeValueGe", shouldPass(errOf2(StatusCodeValueGeAsResult(sh("exit 3"), sh("exit 1")))))

	t.Run("CodeValueEqX", func(t *testing.T) {
		if code := StatusCodeValueEqX(sh("exit 3"), 3); code != 3 {
			t.Errorf("StatusCodeValueEqX = %d", code)
		}
	})
	t.Run("CodeValueNeX fail", shouldFail(errOf(StatusCodeValueNeXAsResult(sh("exit 3"), 3)),
		"expected a code != x", "x debug: 3"))
	t.Run("CodeValueLtX", shouldPass(errOf(StatusCodeValueLtXAsResult(sh("exit 3"), 4))))
	t.Run("CodeValueLeX", shouldPass(errOf(StatusCodeValueLeXAsResult(sh("exit 3"), 3))))
	t.Run("CodeValueGtX", shouldPass(errOf(StatusCodeValueGtXAsResult(sh("exit 3"), 2))))
	t.Run("CodeValueGeX fail", shouldFail(errOf(StatusCodeValueGeXAsResult(sh("exit 3"), 4)), "expected a code >= x"))

	t.Run("signaled", shouldFailWith(errOf(StatusCodeValueEqXAsResult(sh("kill -9 $$"), 0)), ErrSignaled,
		"could not obtain the exit code of a"))
}
