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

// Package registry holds the process-wide go-cmp options used whenever an
// assertion failure renders a structural diff of its operands.
//
// By default this includes:
//   - "google.golang.org/protobuf/testing/protocmp".Transform(), so proto
//     messages diff field-by-field instead of through their internal state.
//   - cmpopts.EquateNaNs(), so a NaN operand does not make every diff line
//     differ.
//   - reflect.Type values compare with `==`.
//   - Functions compare by their function pointer.
package registry

import (
	"reflect"
	"slices"
	"sync"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"google.golang.org/protobuf/testing/protocmp"
)

var (
	mu       sync.Mutex
	defaults = []cmp.Option{
		protocmp.Transform(),
		cmpopts.EquateNaNs(),
		cmp.FilterPath(func(p cmp.Path) bool {
			return p.Last().Type() == reflect.TypeFor[reflect.Type]()
		}, cmp.Comparer(func(a, b any) bool {
			return a == b
		})),
		cmp.FilterPath(func(p cmp.Path) bool {
			return p.Last().Type().Kind() == reflect.Func
		}, cmp.Transformer("func.pointer", func(f any) uintptr {
			if f == nil {
				return 0
			}
			return reflect.ValueOf(f).Pointer()
		})),
	}
)

// RegisterCmpOption adds an option to every diff rendered by assertables in
// this process.
//
// Panics if opt is nil.
func RegisterCmpOption(opt cmp.Option) {
	if opt == nil {
		panic("cannot register nil option")
	}
	mu.Lock()
	defer mu.Unlock()
	defaults = append(defaults, opt)
}

// GetCmpOptions returns a copy of the registered options.
func GetCmpOptions() []cmp.Option {
	mu.Lock()
	defer mu.Unlock()
	return slices.Clone(defaults)
}
