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

// Package comparison builds failure.Summary values.
//
// The assertions in go.chromium.org/assertables describe their operands with
// a SummaryBuilder: one "label" and one "debug" finding per operand, followed
// by derived values and, for long values, a diff.
package comparison

import (
	"fmt"
	"reflect"
	"strings"

	"go.chromium.org/assertables/failure"
)

// SummaryBuilder has methods to help construct a failure.Summary.
//
// Methods return the builder so calls can be chained. The zero value is not
// usable; use NewSummaryBuilder.
type SummaryBuilder struct {
	*failure.Summary
}

// TypeOf returns the reflect.Type of T, suitable for passing to
// NewSummaryBuilder even when T is an interface type.
func TypeOf[T any]() reflect.Type {
	return reflect.TypeFor[T]()
}

// NewSummaryBuilder returns a SummaryBuilder for the comparison named `name`.
//
// Each typeArg is rendered into Comparison.TypeArguments: a reflect.Type is
// rendered with its String method, any other value with %T.
func NewSummaryBuilder(name string, typeArgs ...any) *SummaryBuilder {
	var args []string
	if len(typeArgs) > 0 {
		args = make([]string, len(typeArgs))
		for i, ta := range typeArgs {
			if rt, ok := ta.(reflect.Type); ok {
				args[i] = rt.String()
			} else {
				args[i] = fmt.Sprintf("%T", ta)
			}
		}
	}
	return &SummaryBuilder{&failure.Summary{
		Comparison: failure.Comparison{Name: name, TypeArguments: args},
	}}
}

func (sb *SummaryBuilder) add(name string, level failure.FindingLogLevel, hint failure.FindingTypeHint, value ...string) *SummaryBuilder {
	sb.Findings = append(sb.Findings, &failure.Finding{
		Name:  name,
		Value: value,
		Level: level,
		Type:  hint,
	})
	return sb
}

// AddFinding adds a finding with the given lines as its value.
func (sb *SummaryBuilder) AddFinding(name string, value ...string) *SummaryBuilder {
	return sb.add(name, failure.LevelError, failure.HintText, value...)
}

// AddFindingf adds a finding whose value is a formatted string, split on
// newlines.
func (sb *SummaryBuilder) AddFindingf(name, format string, args ...any) *SummaryBuilder {
	return sb.AddFinding(name, strings.Split(fmt.Sprintf(format, args...), "\n")...)
}

// AddVerboseFinding adds a finding which is only rendered in verbose mode.
func (sb *SummaryBuilder) AddVerboseFinding(name string, value ...string) *SummaryBuilder {
	return sb.add(name, failure.LevelInfo, failure.HintText, value...)
}

// Because adds a "Because" finding explaining which predicate did not hold.
func (sb *SummaryBuilder) Because(format string, args ...any) *SummaryBuilder {
	return sb.AddFindingf("Because", format, args...)
}

// Actual adds an "Actual" finding with the debug rendering of `value`.
func (sb *SummaryBuilder) Actual(value any) *SummaryBuilder {
	return sb.AddFinding("Actual", Debug(value))
}

// Expected adds an "Expected" finding with the debug rendering of `value`.
func (sb *SummaryBuilder) Expected(value any) *SummaryBuilder {
	return sb.AddFinding("Expected", Debug(value))
}

// Derived adds a finding for a value computed from an operand, such as
// "len(a)" or "a stdout".
func (sb *SummaryBuilder) Derived(name string, value any) *SummaryBuilder {
	return sb.AddFinding(name, Debug(value)).WarnIfLong()
}

// Operand adds the "<role> label" and "<role> debug" findings for one operand
// of an assertion.
func (sb *SummaryBuilder) Operand(role, label string, value any) *SummaryBuilder {
	return sb.AddFinding(role+" label", label).
		AddFinding(role+" debug", Debug(value)).WarnIfLong()
}

// OperandError adds the "<role> label" and "<role> error" findings for an
// operand whose value could not be obtained.
func (sb *SummaryBuilder) OperandError(role, label string, err error) *SummaryBuilder {
	return sb.AddFinding(role+" label", label).
		AddFindingf(role+" error", "%s", err)
}

// Cause records the upstream error which kept the comparison from running.
//
// The first cause wins.
func (sb *SummaryBuilder) Cause(err error) *SummaryBuilder {
	if sb.Summary.Cause == nil {
		sb.Summary.Cause = err
	}
	return sb
}

// WarnIfLong marks the most recently added finding as LevelWarn if its value
// is long.
//
// "Long" is defined as a Value with multiple lines or which has > 30
// characters in one line.
func (sb *SummaryBuilder) WarnIfLong() *SummaryBuilder {
	if len(sb.Findings) == 0 {
		return sb
	}
	last := sb.Findings[len(sb.Findings)-1]
	if last.Level == failure.LevelError && isLong(last.Value...) {
		last.Level = failure.LevelWarn
	}
	return sb
}

func isLong(lines ...string) bool {
	if len(lines) > 1 {
		return true
	}
	for _, line := range lines {
		if len(line) > 30 || strings.Contains(line, "\n") {
			return true
		}
	}
	return false
}

// GetSummary returns the built summary, or nil if sb is nil.
func (sb *SummaryBuilder) GetSummary() *failure.Summary {
	if sb == nil {
		return nil
	}
	return sb.Summary
}
