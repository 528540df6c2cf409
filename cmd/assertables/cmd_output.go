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
	"fmt"
	"regexp"

	"github.com/maruel/subcommands"

	"go.chromium.org/assertables/internal/errors"
	"go.chromium.org/assertables/internal/suite"
)

var cmdStdout = newOutputCommand("stdout")
var cmdStderr = newOutputCommand("stderr")

func newOutputCommand(stream string) *subcommands.Command {
	return &subcommands.Command{
		UsageLine: stream + " [flags] (-eq S | -ne S | -contains S | -matches RE | -glob G) -- <program> [args...]",
		ShortDesc: "asserts on the " + stream + " of a program",
		LongDesc: fmt.Sprintf(`Runs a program and asserts on its %s.

Exactly one of -eq, -ne, -contains, -matches or -glob must be given.`, stream),
		CommandRun: func() subcommands.CommandRun {
			c := &outputRun{stream: stream}
			c.registerBaseFlags()
			c.Flags.Func("eq", "Output must equal `S`.", c.set(&c.text.Eq))
			c.Flags.Func("ne", "Output must not equal `S`.", c.set(&c.text.Ne))
			c.Flags.Func("contains", "Output must contain `S`.", c.set(&c.text.Contains))
			c.Flags.Func("matches", "Output must match the regular expression `RE`.", c.set(&c.text.Matches))
			c.Flags.Func("glob", "Output must match the glob pattern `G`.", c.set(&c.text.Glob))
			c.Flags.StringVar(&c.dir, "dir", "", "Working directory of the program.")
			return c
		},
	}
}

type outputRun struct {
	commandRun

	stream string
	text   suite.Text
	ops    int
	dir    string
}

func (c *outputRun) set(dst **string) func(string) error {
	return func(v string) error {
		c.ops++
		*dst = &v
		return nil
	}
}

func (c *outputRun) Run(a subcommands.Application, args []string, env subcommands.Env) int {
	if c.ops != 1 {
		return c.usageError(a, errors.New("exactly one of -eq, -ne, -contains, -matches or -glob is required"))
	}
	if len(args) == 0 {
		return c.usageError(a, errors.New("expected a program to run"))
	}
	if c.text.Matches != nil {
		if _, err := regexp.Compile(*c.text.Matches); err != nil {
			return c.usageError(a, errors.Annotate(err, "-matches").Err())
		}
	}
	r, err := c.renderer(env)
	if err != nil {
		return c.usageError(a, err)
	}

	chk := &suite.Check{
		Name:    fmt.Sprintf("%s %s", c.stream, args[0]),
		Program: args[0],
		Args:    args[1:],
		Dir:     c.dir,
	}
	if c.stream == "stdout" {
		chk.Stdout = &c.text
	} else {
		chk.Stderr = &c.text
	}
	return report(a, r, []*suite.Result{suite.RunCheck(c.newContext(a), chk)})
}
