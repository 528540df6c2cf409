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

// Package assertables provides declarative assertions for tests and
// programs.
//
// Every assertion family comes in three forms:
//
//	LtAsResult(a, b)  // returns an error (a *failure.Summary) and never panics
//	Lt(a, b)          // panics with that error, or with a custom message
//	DebugLt(a, b)     // like Lt, unless built with -tags assertables_nodebug
//
// Some families return a payload on success, e.g. the value inside an Ok
// result or the lengths compared by LenEq:
//
//	n := assertables.Ok(strconv.Atoi("12"))
//	la, lb := assertables.LenEq("x", "y")
//
// When an assertion fails, the returned error names the failed comparison and
// describes every operand with its source text ("label") and value ("debug"):
//
//	assertables.Lt[int] FAILED
//	Because: expected a < b
//	a label: x
//	a debug: 2
//	b label: y
//	b debug: 1
//
// Labels are read from the caller's source file. If the source is not
// available, the parameter names are used instead.
//
// Use go.chromium.org/assertables/check and go.chromium.org/assertables/assert
// to report failures through a testing.TB instead of panicking.
package assertables
