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

// Package typed wraps cmp.Diff with the registry's default options.
package typed

import (
	"reflect"

	"github.com/google/go-cmp/cmp"

	"go.chromium.org/assertables/internal/registry"
)

// exportAll lets the diff look into unexported fields. Diagnostics should
// never panic just because an operand is a struct with private state.
var exportAll = cmp.Exporter(func(reflect.Type) bool { return true })

// Diff returns a human readable diff of `want` and `got`, or "" if they are
// equal under the registered options.
//
// If cmp cannot diff the values (e.g. it panics on an unsupported type), Diff
// returns "".
func Diff[T any](want, got T, opts ...cmp.Option) (diff string) {
	defer func() {
		if recover() != nil {
			diff = ""
		}
	}()
	allOpts := append(registry.GetCmpOptions(), exportAll)
	allOpts = append(allOpts, opts...)
	return cmp.Diff(want, got, allOpts...)
}
