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
	"errors"
	"fmt"
)

// annotatedError is an error with a reason and tags, wrapping an inner error.
type annotatedError struct {
	inner  error
	reason string
	tags   map[TagKey]any
}

var _ Wrapped = (*annotatedError)(nil)

func (e *annotatedError) Error() string {
	switch {
	case e.reason == "" && e.inner != nil:
		return e.inner.Error()
	case e.inner == nil:
		return e.reason
	}
	return fmt.Sprintf("%s: %s", e.reason, e.inner)
}

func (e *annotatedError) Unwrap() error     { return e.inner }
func (e *annotatedError) InnerError() error { return e.inner }

// Annotator is a builder for annotating errors. Obtain one by calling Annotate
// on an existing error or using Reason.
type Annotator struct {
	err *annotatedError
}

// Annotate captures `err` with an optional reason.
//
// If err is nil, the Annotator is inert and Err returns nil.
func Annotate(err error, reason string, args ...any) *Annotator {
	if err == nil {
		return &Annotator{}
	}
	return &Annotator{&annotatedError{inner: err, reason: fmt.Sprintf(reason, args...)}}
}

// Reason builds a new error with the given reason and no inner error.
func Reason(reason string, args ...any) *Annotator {
	return &Annotator{&annotatedError{reason: fmt.Sprintf(reason, args...)}}
}

// Tag adds tags to this error.
func (a *Annotator) Tag(tags ...TagValueGenerator) *Annotator {
	if a.err == nil {
		return a
	}
	for _, t := range tags {
		key, value := t.GenerateErrorTagValue()
		if a.err.tags == nil {
			a.err.tags = map[TagKey]any{}
		}
		a.err.tags[key] = value
	}
	return a
}

// Err returns the finalized annotated error, or nil if the Annotator was
// created from a nil error.
func (a *Annotator) Err() error {
	if a.err == nil {
		return nil
	}
	return a.err
}

// New is errors.New from the standard library, tagged with `tags`.
func New(msg string, tags ...TagValueGenerator) error {
	if len(tags) == 0 {
		return errors.New(msg)
	}
	return Reason("%s", msg).Tag(tags...).Err()
}

// Is is errors.Is from the standard library.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As is errors.As from the standard library.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// Unwrap is errors.Unwrap from the standard library.
func Unwrap(err error) error {
	return errors.Unwrap(err)
}
