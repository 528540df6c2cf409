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

// Package failure holds the data model of a failed assertion.
//
// A Summary names the comparison which failed and carries an ordered list of
// Findings (operand labels, operand values, derived values, diffs) which
// explain the failure. Summaries are produced by the assertions in
// go.chromium.org/assertables and rendered for humans with RenderCLI.
//
// *Summary implements `error`, so the Result tier of every assertion can
// return it directly.
package failure

import (
	"errors"
)

// FindingLogLevel indicates how important a Finding is when rendering.
type FindingLogLevel int

const (
	// LevelError findings are always rendered in full.
	LevelError FindingLogLevel = iota
	// LevelWarn findings are rendered in full, but are long enough that
	// a diff finding usually accompanies them.
	LevelWarn
	// LevelInfo findings are only rendered in full in verbose mode.
	LevelInfo
)

// FindingTypeHint tells a renderer how the Value of a Finding is shaped.
type FindingTypeHint int

const (
	// HintText is plain text.
	HintText FindingTypeHint = iota
	// HintCmpDiff is the output of cmp.Diff.
	HintCmpDiff
	// HintUnifiedDiff is a unified diff ("---", "+++", "@@" headers).
	HintUnifiedDiff
	// HintTextDiff is an inline character diff using [-removed-]{+added+}
	// markers.
	HintTextDiff
)

// Comparison identifies the assertion which produced a Summary.
type Comparison struct {
	// Name is the qualified name of the assertion family, e.g.
	// "assertables.Lt".
	Name string

	// TypeArguments are the Go type arguments the assertion was instantiated
	// with, e.g. ["int"].
	TypeArguments []string
}

// Finding is a single named fact about a failure.
type Finding struct {
	Name  string
	Value []string
	Level FindingLogLevel
	Type  FindingTypeHint
}

// Frame is a single source location.
type Frame struct {
	Filename string
	Lineno   int64
}

// Stack is a named list of source locations, e.g. the "at" context added by
// truth.LineContext.
type Stack struct {
	Name   string
	Frames []*Frame
}

// Summary describes a failed assertion.
type Summary struct {
	Comparison    Comparison
	Findings      []*Finding
	SourceContext []*Stack

	// Message, if set, is a caller supplied message which replaces the
	// generated diagnostic in Error().
	Message string

	// Cause is the upstream error (spawning a process, reading a file, decoding
	// its contents) which prevented the comparison from running at all.
	Cause error
}

var _ error = (*Summary)(nil)

// Error renders the summary with all findings (verbose, no color).
//
// If a custom Message was supplied it is returned instead.
func (s *Summary) Error() string {
	if s == nil {
		return ""
	}
	if s.Message != "" {
		return s.Message
	}
	return RenderCLI{Verbose: true}.Summary("", s)
}

// Unwrap returns Cause.
func (s *Summary) Unwrap() error {
	if s == nil {
		return nil
	}
	return s.Cause
}

// Finding returns the first Finding with the given name, or nil.
func (s *Summary) Finding(name string) *Finding {
	if s == nil {
		return nil
	}
	for _, f := range s.Findings {
		if f.Name == name {
			return f
		}
	}
	return nil
}

// From extracts the *Summary from err, if there is one.
func From(err error) (*Summary, bool) {
	var s *Summary
	if errors.As(err, &s) && s != nil {
		return s, true
	}
	return nil, false
}

// IsAcquisition returns true if err is a Summary for an assertion which could
// not obtain its operands (spawn failure, read failure, invalid UTF-8, ...),
// as opposed to one whose predicate was false.
func IsAcquisition(err error) bool {
	s, ok := From(err)
	return ok && s.Cause != nil
}
