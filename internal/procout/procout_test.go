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

package procout

import (
	"context"
	"os/exec"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"go.chromium.org/assertables/internal/errors"
)

func TestRun(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("captures both streams", func(t *testing.T) {
		t.Parallel()
		out, err := Run(ctx, exec.Command("sh", "-c", "printf out; printf err >&2"))
		if err != nil {
			t.Fatal(err)
		}
		want := &Output{Stdout: []byte("out"), Stderr: []byte("err"), ExitCode: 0}
		if diff := cmp.Diff(want, out); diff != "" {
			t.Errorf("unexpected diff (-want +got): %s", diff)
		}
		if !out.Success() {
			t.Error("expected success")
		}
	})

	t.Run("non-zero exit is not an error", func(t *testing.T) {
		t.Parallel()
		out, err := Run(ctx, exec.Command("sh", "-c", "printf partial; exit 3"))
		if err != nil {
			t.Fatal(err)
		}
		if out.ExitCode != 3 || string(out.Stdout) != "partial" {
			t.Errorf("got %+v", out)
		}
	})

	t.Run("spawn failure", func(t *testing.T) {
		t.Parallel()
		_, err := Run(ctx, exec.Command("/definitely/not/a/program"))
		if err == nil {
			t.Fatal("expected an error")
		}
		if !SpawnFailure.In(err) {
			t.Errorf("expected SpawnFailure tag on %v", err)
		}
		if !strings.Contains(err.Error(), "/definitely/not/a/program") {
			t.Errorf("error should name the program: %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()
		_, err := Run(ctx, exec.Command("assertables-no-such-program"))
		if !errors.Is(err, exec.ErrNotFound) {
			t.Errorf("expected exec.ErrNotFound, got %v", err)
		}
	})

	t.Run("nil command", func(t *testing.T) {
		t.Parallel()
		if _, err := Run(ctx, nil); !SpawnFailure.In(err) {
			t.Errorf("expected SpawnFailure, got %v", err)
		}
	})
}
