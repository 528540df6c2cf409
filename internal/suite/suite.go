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

// Package suite loads and runs YAML files of command-output checks.
//
// A suite looks like:
//
//	checks:
//	  - name: greets
//	    program: printf
//	    args: ["%s", "hello"]
//	    stdout: {eq: hello}      # one of eq, ne, contains, matches, glob
//	    stderr: {eq: ""}
//	    status: {success: true}  # or {failure: true} or {code: 3}
//
// Files are validated against an embedded JSON schema before they are
// decoded.
package suite

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"os"
	"os/exec"
	"regexp"
	"slices"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"

	"go.chromium.org/assertables"
	"go.chromium.org/assertables/internal/errors"
)

// InvalidSuite tags errors for suite files which cannot be loaded: unreadable,
// malformed YAML, schema violations and bad patterns.
var InvalidSuite = errors.NewBoolTag("suite.InvalidSuite")

//go:embed suite.schema.json
var schemaJSON []byte

const schemaURL = "suite.schema.json"

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
)

func suiteSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaJSON))
		if err != nil {
			compileErr = errors.Annotate(err, "unmarshal suite schema").Err()
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, doc); err != nil {
			compileErr = errors.Annotate(err, "add suite schema resource").Err()
			return
		}
		if compiled, err = c.Compile(schemaURL); err != nil {
			compileErr = errors.Annotate(err, "compile suite schema").Err()
		}
	})
	return compiled, compileErr
}

// Suite is a list of checks.
type Suite struct {
	Checks []*Check `yaml:"checks"`
}

// Check runs one program and asserts on what it did.
type Check struct {
	Name    string            `yaml:"name"`
	Program string            `yaml:"program"`
	Args    []string          `yaml:"args"`
	Dir     string            `yaml:"dir"`
	Env     map[string]string `yaml:"env"`
	Stdin   string            `yaml:"stdin"`

	Stdout *Text   `yaml:"stdout"`
	Stderr *Text   `yaml:"stderr"`
	Status *Status `yaml:"status"`
}

// Text is an assertion on captured output. Exactly one field is set.
type Text struct {
	Eq       *string `yaml:"eq"`
	Ne       *string `yaml:"ne"`
	Contains *string `yaml:"contains"`
	Matches  *string `yaml:"matches"`
	Glob     *string `yaml:"glob"`

	re *regexp.Regexp
}

// Status is an assertion on the exit code. Exactly one field is set.
type Status struct {
	Success bool `yaml:"success"`
	Failure bool `yaml:"failure"`
	Code    *int `yaml:"code"`
}

// Command builds a fresh *exec.Cmd for the check.
func (c *Check) Command() *exec.Cmd {
	cmd := exec.Command(c.Program, c.Args...)
	cmd.Dir = c.Dir
	if len(c.Env) > 0 {
		keys := make([]string, 0, len(c.Env))
		for k := range c.Env {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		cmd.Env = os.Environ()
		for _, k := range keys {
			cmd.Env = append(cmd.Env, k+"="+c.Env[k])
		}
	}
	if c.Stdin != "" {
		cmd.Stdin = strings.NewReader(c.Stdin)
	}
	return cmd
}

// Load reads and parses the suite file at path.
func Load(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Annotate(err, "reading suite").Tag(InvalidSuite).Err()
	}
	return Parse(data, path)
}

// Parse validates and decodes a YAML suite. `name` is used in errors.
func Parse(data []byte, name string) (*Suite, error) {
	if err := validate(data); err != nil {
		return nil, errors.Annotate(err, "invalid suite %s", name).Tag(InvalidSuite).Err()
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	s := &Suite{}
	if err := dec.Decode(s); err != nil {
		return nil, errors.Annotate(err, "decoding suite %s", name).Tag(InvalidSuite).Err()
	}
	if err := s.prepare(); err != nil {
		return nil, errors.Annotate(err, "invalid suite %s", name).Tag(InvalidSuite).Err()
	}
	return s, nil
}

// validate checks the YAML document against the suite schema.
//
// The document goes through JSON so the validator sees the same value types
// a JSON suite would have.
func validate(data []byte) error {
	sch, err := suiteSchema()
	if err != nil {
		return err
	}

	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return errors.Annotate(err, "parsing YAML").Err()
	}
	asJSON, err := json.Marshal(doc)
	if err != nil {
		return errors.Annotate(err, "converting to JSON").Err()
	}
	v, err := jsonschema.UnmarshalJSON(bytes.NewReader(asJSON))
	if err != nil {
		return errors.Annotate(err, "converting to JSON").Err()
	}
	return sch.Validate(v)
}

// prepare checks what the schema cannot express and compiles patterns.
func (s *Suite) prepare() error {
	seen := make(map[string]bool, len(s.Checks))
	for _, c := range s.Checks {
		if seen[c.Name] {
			return errors.Reason("duplicate check name %q", c.Name).Err()
		}
		seen[c.Name] = true

		for _, t := range []*Text{c.Stdout, c.Stderr} {
			if t == nil || t.Matches == nil {
				continue
			}
			re, err := regexp.Compile(*t.Matches)
			if err != nil {
				return errors.Annotate(err, "check %q", c.Name).Err()
			}
			t.re = re
		}
	}
	return nil
}

// Matcher returns the Matcher for a `matches` or `glob` Text, or nil.
func (t *Text) Matcher() assertables.Matcher {
	switch {
	case t.re != nil:
		return t.re
	case t.Matches != nil:
		return regexp.MustCompile(*t.Matches)
	case t.Glob != nil:
		return assertables.Glob(*t.Glob)
	}
	return nil
}
