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
	"bytes"
	"context"

	"go.chromium.org/assertables"
	"go.chromium.org/assertables/comparison"
	"go.chromium.org/assertables/failure"
	"go.chromium.org/assertables/internal/errors"
	"go.chromium.org/assertables/internal/logging"
	"go.chromium.org/assertables/internal/procout"
)

// stream is one captured output stream of a check. It renders as its name.
type stream struct {
	*bytes.Reader
	name string
}

func (s stream) GoString() string { return s.name }

func (t *Text) check(output stream) (err error) {
	switch {
	case t.Eq != nil:
		_, err = assertables.IoReadToStringEqXAsResult(output, *t.Eq)
	case t.Ne != nil:
		_, err = assertables.IoReadToStringNeXAsResult(output, *t.Ne)
	case t.Contains != nil:
		_, err = assertables.IoReadToStringContainsAsResult(output, *t.Contains)
	default:
		_, err = assertables.IoReadToStringIsMatchAsResult(output, t.Matcher())
	}
	return
}

func (s *Status) check(exitCode int) error {
	switch {
	case s.Code != nil:
		return assertables.EqAsResult(exitCode, *s.Code)
	case s.Failure:
		return assertables.NeAsResult(exitCode, 0)
	}
	return assertables.EqAsResult(exitCode, 0)
}

// spawnFailure describes a check whose program could not be run at all.
func spawnFailure(c *Check, err error) *failure.Summary {
	return comparison.NewSummaryBuilder("suite.Check").
		Because("could not run %s", c.Program).
		AddFinding("check", c.Name).
		AddFindingf("error", "%s", err).
		Cause(err).GetSummary()
}

// Result is the outcome of one Check.
type Result struct {
	Check *Check

	// Failures has one *failure.Summary per failed assertion.
	Failures errors.MultiError
}

// Passed returns true if every assertion of the check held.
func (r *Result) Passed() bool {
	return r.Failures.First() == nil
}

// RunCheck runs the program of c once and asserts on what it produced, in
// order: stdout, stderr, status.
func RunCheck(ctx context.Context, c *Check) *Result {
	ctx = logging.SetField(ctx, "check", c.Name)
	logging.Debugf(ctx, "running %s %q", c.Program, c.Args)

	r := &Result{Check: c}
	out, err := procout.Run(ctx, c.Command())
	if err != nil {
		r.Failures.MaybeAdd(spawnFailure(c, err))
		logging.Warningf(ctx, "could not run: %s", err)
		return r
	}

	if c.Stdout != nil {
		r.Failures.MaybeAdd(c.Stdout.check(stream{bytes.NewReader(out.Stdout), "stdout"}))
	}
	if c.Stderr != nil {
		r.Failures.MaybeAdd(c.Stderr.check(stream{bytes.NewReader(out.Stderr), "stderr"}))
	}
	if c.Status != nil {
		r.Failures.MaybeAdd(c.Status.check(out.ExitCode))
	}

	if r.Passed() {
		logging.Infof(ctx, "passed")
	} else {
		logging.Warningf(ctx, "failed %d assertion(s)", len(r.Failures))
	}
	return r
}

// Run runs every check of s in order.
//
// The returned error is an errors.MultiError with one entry per failed check,
// or nil if all of them passed.
func Run(ctx context.Context, s *Suite) ([]*Result, error) {
	results := make([]*Result, 0, len(s.Checks))
	var failed errors.MultiError
	for _, c := range s.Checks {
		if err := ctx.Err(); err != nil {
			return results, errors.Annotate(err, "before check %q", c.Name).Err()
		}
		r := RunCheck(ctx, c)
		results = append(results, r)
		failed.MaybeAdd(errors.Annotate(r.Failures.AsError(), "check %q", c.Name).Err())
	}
	logging.Infof(ctx, "%d of %d checks passed", len(results)-len(failed), len(results))
	return results, failed.AsError()
}
