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

// Package logging is a context-scoped logging facade.
//
// The Logger lives in a context.Context, installed by a backend such as
// gologger, and is used through the package-level functions:
//
//	ctx = gologger.StdConfig.Use(ctx)
//	logging.Infof(ctx, "running %d checks", n)
//
// With no Logger installed, messages are discarded.
package logging

import (
	"context"
)

// Logger is a logging backend.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warningf(format string, args ...any)
	Errorf(format string, args ...any)

	// LogCall logs a message at level l. calldepth is the number of frames
	// between the user's call and LogCall, for source attribution.
	LogCall(l Level, calldepth int, format string, args []any)
}

// Factory returns a Logger bound to a Context.
type Factory func(context.Context) Logger

type factoryKeyType struct{}

var factoryKey factoryKeyType

// SetFactory sets the Logger factory for this context.
func SetFactory(ctx context.Context, f Factory) context.Context {
	return context.WithValue(ctx, factoryKey, f)
}

// GetFactory returns the Logger factory of the Context, or nil.
func GetFactory(ctx context.Context) Factory {
	if f, ok := ctx.Value(factoryKey).(Factory); ok {
		return f
	}
	return nil
}

// Get returns the current Logger, or a Null logger if none is installed.
func Get(ctx context.Context) Logger {
	if f := GetFactory(ctx); f != nil {
		if l := f(ctx); l != nil {
			return l
		}
	}
	return Null
}

type nullLogger struct{}

// Null is a Logger which discards everything.
var Null Logger = nullLogger{}

func (nullLogger) Debugf(string, ...any)              {}
func (nullLogger) Infof(string, ...any)               {}
func (nullLogger) Warningf(string, ...any)            {}
func (nullLogger) Errorf(string, ...any)              {}
func (nullLogger) LogCall(Level, int, string, []any) {}
