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
	"go.chromium.org/assertables/internal/logging"
	"go.chromium.org/assertables/internal/suite"
)

var cmdRun = &subcommands.Command{
	UsageLine: "run [flags] <suite.yaml>...",
	ShortDesc: "runs the checks of one or more suite files",
	LongDesc: `Runs the checks of one or more YAML suite files.

Every suite is loaded and validated before any check runs. Checks run in
file order.`,
	CommandRun: func() subcommands.CommandRun {
		c := &runRun{}
		c.registerBaseFlags()
		return c
	},
}

type runRun struct {
	commandRun
}

func (c *runRun) Run(a subcommands.Application, args []string, env subcommands.Env) int {
	if len(args) == 0 {
		return c.usageError(a, errors.New("expected at least one suite file"))
	}
	r, err := c.renderer(env)
	if err != nil {
		return c.usageError(a, err)
	}
	ctx := c.newContext(a)

	suites := make([]*suite.Suite, len(args))
	for i, path := range args {
		if suites[i], err = suite.Load(path); err != nil {
			return c.usageError(a, err)
		}
	}

	var all []*suite.Result
	for i, s := range suites {
		results, err := suite.Run(ctx, s)
		if err != nil {
			logging.Infof(ctx, "%s: %s", args[i], err)
		}
		all = append(all, results...)
	}

	code := report(a, r, all)
	passed := 0
	for _, res := range all {
		if res.Passed() {
			passed++
		}
	}
	fmt.Fprintf(a.GetOut(), "%d of %d checks passed\n", passed, len(all))
	return code
}
