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

	"github.com/maruel/subcommands"

	"go.chromium.org/assertables/internal/errors"
	"go.chromium.org/assertables/internal/suite"
)

var cmdStatus = &subcommands.Command{
	UsageLine: "status [flags] (-success | -failure | -code N) -- <program> [args...]",
	ShortDesc: "asserts on the exit status of a program",
	LongDesc: `Runs a program and asserts on its exit status.

Exactly one of -success, -failure or -code must be given. -failure holds for
any non-zero exit code.`,
	CommandRun: func() subcommands.CommandRun {
		c := &statusRun{}
		c.registerBaseFlags()
		c.Flags.BoolVar(&c.status.Success, "success", false, "The program must exit with code 0.")
		c.Flags.BoolVar(&c.status.Failure, "failure", false, "The program must exit with a non-zero code.")
		c.Flags.IntVar(&c.code, "code", -1, "The program must exit with code `N`.")
		c.Flags.StringVar(&c.dir, "dir", "", "Working directory of the program.")
		return c
	},
}

type statusRun struct {
	commandRun

	status suite.Status
	code   int
	dir    string
}

func (c *statusRun) Run(a subcommands.Application, args []string, env subcommands.Env) int {
	if c.code >= 0 {
		c.status.Code = &c.code
	}
	ops := 0
	for _, set := range []bool{c.status.Success, c.status.Failure, c.status.Code != nil} {
		if set {
			ops++
		}
	}
	if ops != 1 {
		return c.usageError(a, errors.New("exactly one of -success, -failure or -code is required"))
	}
	if len(args) == 0 {
		return c.usageError(a, errors.New("expected a program to run"))
	}
	r, err := c.renderer(env)
	if err != nil {
		return c.usageError(a, err)
	}

	chk := &suite.Check{
		Name:    fmt.Sprintf("status %s", args[0]),
		Program: args[0],
		Args:    args[1:],
		Dir:     c.dir,
		Status:  &c.status,
	}
	return report(a, r, []*suite.Result{suite.RunCheck(c.newContext(a), chk)})
}
