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

// Command assertables runs declarative checks against external programs.
//
// A check runs a program and asserts on its standard output, its standard
// error or its exit status. Checks are given either on the command line:
//
//	assertables stdout -contains "usage:" -- mytool -h
//	assertables status -code 2 -- mytool bogus
//
// or as a YAML suite file:
//
//	assertables run checks.yaml
//
// The exit code is 0 if every check passed, 1 if any check failed and 2 on
// usage or configuration errors.
package main

import (
	"io"
	"os"

	"github.com/maruel/subcommands"
)

const colorEnvVar = "ASSERTABLES_COLOR"

// Exit codes.
const (
	exitPass   = 0
	exitFail   = 1
	exitConfig = 2
)

type application struct {
	subcommands.DefaultApplication

	// Overridden in tests.
	out, err io.Writer
}

func (a *application) GetOut() io.Writer {
	if a.out != nil {
		return a.out
	}
	return os.Stdout
}

func (a *application) GetErr() io.Writer {
	if a.err != nil {
		return a.err
	}
	return os.Stderr
}

func newApplication() *application {
	return &application{
		DefaultApplication: subcommands.DefaultApplication{
			Name:  "assertables",
			Title: "Runs declarative checks against the output and exit status of programs.",
			// Keep in alphabetical order of their name.
			Commands: []*subcommands.Command{
				subcommands.CmdHelp,
				cmdRun,
				cmdStatus,
				cmdStderr,
				cmdStdout,
			},
			EnvVars: map[string]subcommands.EnvVarDefinition{
				colorEnvVar: {
					ShortDesc: "Default for -color: auto, always or never.",
					Default:   "auto",
				},
			},
		},
	}
}

func main() {
	os.Exit(subcommands.Run(newApplication(), nil))
}
