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

package errors

import (
	"fmt"
)

// MultiError is a simple `error` implementation which represents multiple
// `error` objects in one.
type MultiError []error

// MaybeAdd adds `err` to `me` if `err` is not nil.
func (me *MultiError) MaybeAdd(err error) {
	if err != nil {
		*me = append(*me, err)
	}
}

// AsError returns an `error` interface for this MultiError only if it has
// any non-nil elements.
func (me MultiError) AsError() error {
	if me.First() == nil {
		return nil
	}
	return me
}

// First returns the first non-nil error, or nil.
func (me MultiError) First() error {
	for _, e := range me {
		if e != nil {
			return e
		}
	}
	return nil
}

// Summary returns the number of non-nil errors and the first of them.
func (me MultiError) Summary() (n int, first error) {
	for _, e := range me {
		if e != nil {
			if n == 0 {
				first = e
			}
			n++
		}
	}
	return
}

func (me MultiError) Error() string {
	n, first := me.Summary()
	switch n {
	case 0:
		return "(0 errors)"
	case 1:
		return first.Error()
	case 2:
		return fmt.Sprintf("%s (and 1 other error)", first)
	}
	return fmt.Sprintf("%s (and %d other errors)", first, n-1)
}

// Unwrap returns the contained errors, for errors.Is and errors.As.
func (me MultiError) Unwrap() []error {
	return me
}
