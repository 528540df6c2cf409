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
	"context"
	"fmt"
	"os"

	"github.com/maruel/subcommands"
	"github.com/mattn/go-isatty"

	"go.chromium.org/assertables/failure"
	"go.chromium.org/assertables/internal/logging"
	"go.chromium.org/assertables/internal/logging/gologger"
	"go.chromium.org/assertables/internal/suite"
)

// commandRun holds the flags shared by every subcommand.
type commandRun struct {
	subcommands.CommandRunBase

	logLevel logging.Level
	color    string
	verbose  bool
}

func (c *commandRun) registerBaseFlags() {
	c.logLevel = logging.Warning
	c.Flags.Var(&c.logLevel, "log-level", "Logging level: debug, info, warning or error.")
	c.Flags.StringVar(&c.color, "color", "", "Colorize diffs: auto, always or never. Defaults to $"+colorEnvVar+".")
	c.Flags.BoolVar(&c.verbose, "v", false, "Render verbose findings in full.")
}

// newContext returns the root context with a logger writing to the app's stderr.
func (c *commandRun) newContext(app subcommands.Application) context.Context {
	cfg := gologger.LoggerConfig{Out: app.GetErr()}
	ctx := cfg.Use(context.Background())
	return logging.SetLevel(ctx, c.logLevel)
}

// renderer resolves -color against the environment.
func (c *commandRun) renderer(env subcommands.Env) (failure.RenderCLI, error) {
	color, err := resolveColor(c.color, env[colorEnvVar].Value, func() bool {
		fd := os.Stdout.Fd()
		return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
	})
	return failure.RenderCLI{Verbose: c.verbose, Colorize: color}, err
}

func resolveColor(flagValue, envValue string, terminal func() bool) (bool, error) {
	mode := flagValue
	if mode == "" {
		mode = envValue
	}
	switch mode {
	case "", "auto":
		return terminal(), nil
	case "always":
		return true, nil
	case "never":
		return false, nil
	}
	return false, fmt.Errorf("invalid color mode %q, want auto, always or never", mode)
}

func (c *commandRun) usageError(app subcommands.Application, err error) int {
	fmt.Fprintf(app.GetErr(), "%s: %s\n", app.GetName(), err)
	return exitConfig
}

// report prints the outcome of each result and returns the exit code.
func report(app subcommands.Application, r failure.RenderCLI, results []*suite.Result) int {
	out := app.GetOut()
	code := exitPass
	for _, res := range results {
		if res.Passed() {
			if r.Verbose {
				fmt.Fprintf(out, "ok   %s\n", res.Check.Name)
			}
			continue
		}
		code = exitFail
		fmt.Fprintf(out, "FAIL %s\n", res.Check.Name)
		for _, err := range res.Failures {
			if s, ok := failure.From(err); ok {
				fmt.Fprintf(out, "  %s\n", r.Summary("  ", s))
			} else {
				fmt.Fprintf(out, "  %s\n", err)
			}
		}
	}
	return code
}
