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
	"fmt"

	"go.chromium.org/assertables/failure"
)

// result converts a summary into an error without producing a typed nil.
func result(s *failure.Summary) error {
	if s == nil {
		return nil
	}
	return s
}

// customMessage formats the trailing msg arguments of a panicking assertion.
//
// A single argument is formatted with %v. Otherwise a leading string is used
// as a format string for the rest.
func customMessage(msg []any) string {
	switch {
	case len(msg) == 0:
		return ""
	case len(msg) == 1:
		return fmt.Sprintf("%v", msg[0])
	}
	if format, ok := msg[0].(string); ok {
		return fmt.Sprintf(format, msg[1:]...)
	}
	return fmt.Sprint(msg...)
}

// raise panics with `s` if it is not nil.
func raise(s *failure.Summary, msg []any) {
	if s == nil {
		return
	}
	if m := customMessage(msg); m != "" {
		s.Message = m
	}
	panic(s)
}
