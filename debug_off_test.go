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

//go:build assertables_nodebug

package assertables

import (
	"errors"
	"os/exec"
	"testing"
)

// Run with `go test -tags assertables_nodebug`.
func TestDebugTierDisabled(t *testing.T) {
	t.Parallel()

	if DebugAssertions {
		t.Fatal("DebugAssertions is set under assertables_nodebug")
	}

	t.Run("values", func(t *testing.T) {
		t.Parallel()
		if s := recoverSummary(t, func() { DebugLt(2, 1) }); s != nil {
			t.Errorf("DebugLt panicked:\n%s", s)
		}
		if s := recoverSummary(t, func() { DebugEq("a", "b", "custom %s", "message") }); s != nil {
			t.Errorf("DebugEq panicked:\n%s", s)
		}
	})

	t.Run("variants", func(t *testing.T) {
		t.Parallel()
		if s := recoverSummary(t, func() { DebugOk(0, errors.New("boom")) }); s != nil {
			t.Errorf("DebugOk panicked:\n%s", s)
		}
		if s := recoverSummary(t, func() { DebugSome[int](nil) }); s != nil {
			t.Errorf("DebugSome panicked:\n%s", s)
		}
	})

	t.Run("operands are not evaluated", func(t *testing.T) {
		t.Parallel()
		calls := 0
		DebugFnEqX(func() int { calls++; return 1 }, 2)
		if calls != 0 {
			t.Errorf("function operand called %d times", calls)
		}

		cmd := exec.Command("assertables-no-such-program")
		DebugCommandStdoutEqX(cmd, "x")
		if cmd.ProcessState != nil || cmd.Stdout != nil {
			t.Error("command operand was run")
		}
	})
}
