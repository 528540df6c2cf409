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

package logging

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"strings"
)

// ErrorKey is the Fields key for an error value.
const ErrorKey = "error"

// Fields is a set of key/value pairs attached to every message logged with
// a Context.
type Fields map[string]any

// String renders the fields as {"key":value, ...} with sorted keys.
func (f Fields) String() string {
	parts := make([]string, 0, len(f))
	for _, k := range slices.Sorted(maps.Keys(f)) {
		v := f[k]
		if err, ok := v.(error); ok {
			v = err.Error()
		}
		if s, ok := v.(string); ok {
			parts = append(parts, fmt.Sprintf("%q:%q", k, s))
		} else {
			parts = append(parts, fmt.Sprintf("%q:%#v", k, v))
		}
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

type fieldsKeyType struct{}

var fieldsKey fieldsKeyType

// SetFields returns a Context with `fields` added to its existing fields.
func SetFields(ctx context.Context, fields Fields) context.Context {
	merged := maps.Clone(GetFields(ctx))
	if merged == nil {
		merged = Fields{}
	}
	maps.Copy(merged, fields)
	return context.WithValue(ctx, fieldsKey, merged)
}

// SetField is SetFields with a single field.
func SetField(ctx context.Context, key string, value any) context.Context {
	return SetFields(ctx, Fields{key: value})
}

// SetError returns a context with its error field set.
func SetError(ctx context.Context, err error) context.Context {
	return SetField(ctx, ErrorKey, err)
}

// GetFields returns the fields of the Context, or nil.
func GetFields(ctx context.Context) Fields {
	if f, ok := ctx.Value(fieldsKey).(Fields); ok {
		return f
	}
	return nil
}
