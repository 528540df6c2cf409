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

package assertables

import (
	"runtime"
	"strings"

	"go.chromium.org/assertables/comparison"
	"go.chromium.org/assertables/internal/source"
)

// callSite is the location of a call to an exported assertion.
type callSite struct {
	name string
	file string
	line int
	ok   bool
}

// caller must be called directly from the exported assertion function.
func caller(name string) callSite {
	_, file, line, ok := runtime.Caller(2)
	return callSite{name: name, file: file, line: line, ok: ok}
}

// family is the assertion family name, without the Debug prefix or the
// AsResult suffix.
func (c callSite) family() string {
	return strings.TrimSuffix(strings.TrimPrefix(c.name, "Debug"), "AsResult")
}

func (c callSite) args() []string {
	if !c.ok {
		return nil
	}
	args, err := source.CallArgs(c.file, c.line, c.name)
	if err != nil {
		return nil
	}
	return args
}

// labels returns the source text of the first len(params) arguments, falling
// back to the parameter name for each argument which cannot be recovered.
func (c callSite) labels(params ...string) []string {
	args := c.args()
	ret := make([]string, len(params))
	for i, p := range params {
		if i < len(args) {
			ret[i] = args[i]
		} else {
			ret[i] = p
		}
	}
	return ret
}

// pairLabel labels a (value, error) operand, which may be passed either as
// one multi-value call `f()` or as two arguments `v, err`.
func (c callSite) pairLabel(param string) string {
	switch args := c.args(); len(args) {
	case 0:
		return param
	case 1:
		return args[0]
	default:
		return args[0] + ", " + args[1]
	}
}

// builder starts a summary for this call's family.
func (c callSite) builder(typeArgs ...any) *comparison.SummaryBuilder {
	return comparison.NewSummaryBuilder("assertables."+c.family(), typeArgs...)
}
