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

// Package procout runs a command once and captures what it wrote.
package procout

import (
	"bytes"
	"context"
	"os/exec"
	"time"

	"github.com/dustin/go-humanize"

	"go.chromium.org/assertables/internal/errors"
	"go.chromium.org/assertables/internal/logging"
)

// SpawnFailure tags errors for commands which could not be started (or
// waited for) at all, as opposed to commands which ran and exited non-zero.
var SpawnFailure = errors.NewBoolTag("procout.SpawnFailure")

// Output is what a finished command produced.
type Output struct {
	Stdout   []byte
	Stderr   []byte
	ExitCode int
}

// Success returns true if the command exited with status 0.
func (o *Output) Success() bool {
	return o.ExitCode == 0
}

// Run runs cmd to completion, capturing its stdout and stderr.
//
// Any Stdout/Stderr already set on cmd are replaced. A non-zero exit status is
// a normal outcome recorded in Output.ExitCode; only a failure to start or
// wait for the process is returned as an error, tagged with SpawnFailure.
// ExitCode is -1 if the process was terminated by a signal.
func Run(ctx context.Context, cmd *exec.Cmd) (*Output, error) {
	if cmd == nil {
		return nil, errors.Reason("nil command").Tag(SpawnFailure).Err()
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	logging.Debugf(ctx, "running %q", cmd.Args)
	start := time.Now()
	err := cmd.Run()

	var exitErr *exec.ExitError
	if err != nil && !errors.As(err, &exitErr) {
		return nil, errors.Annotate(err, "running %q", cmd.Path).Tag(SpawnFailure).Err()
	}
	out := &Output{
		Stdout:   stdout.Bytes(),
		Stderr:   stderr.Bytes(),
		ExitCode: cmd.ProcessState.ExitCode(),
	}

	logging.Debugf(ctx, "%q exited with %d after %s (stdout %s, stderr %s)",
		cmd.Args, out.ExitCode, time.Since(start),
		humanize.Bytes(uint64(len(out.Stdout))), humanize.Bytes(uint64(len(out.Stderr))))
	return out, nil
}
