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

// Package gologger is a logging.Logger implementation backed by
// github.com/op/go-logging.
package gologger

import (
	"context"
	"fmt"
	"io"
	"os"

	gol "github.com/op/go-logging"

	"go.chromium.org/assertables/internal/logging"
)

// StandardFormat first prints process ID, time, filename, logging level
// and sequence number, all colored. Then the message.
const StandardFormat = `%{color} [P%{pid} %{time:15:04:05.000} %{shortfile} %{level:.4s} %{id:03x}]` +
	`%{color:reset} %{message}`

// StdConfig is the LoggerConfig used by Use and Get: StandardFormat to
// stderr.
var StdConfig = LoggerConfig{
	Format: StandardFormat,
	Out:    os.Stderr,
}

// LoggerConfig owns a go-logging Logger writing to Out.
type LoggerConfig struct {
	// Format is a go-logging format string. Defaults to StandardFormat.
	Format string
	// Out is where messages are written. Defaults to stderr.
	Out io.Writer
}

func (lc *LoggerConfig) newGoLogger() *gol.Logger {
	format := lc.Format
	if format == "" {
		format = StandardFormat
	}
	out := lc.Out
	if out == nil {
		out = os.Stderr
	}

	backend := gol.AddModuleLevel(gol.NewBackendFormatter(
		gol.NewLogBackend(out, "", 0),
		gol.MustStringFormatter(format)))
	// Filtering happens in LogCall, based on the Context.
	backend.SetLevel(gol.DEBUG, "")

	l := gol.MustGetLogger("")
	l.ExtraCalldepth = 2
	l.SetBackend(backend)
	return l
}

// NewLogger returns a logging.Logger writing through a new go-logging
// Logger, filtered by the level of ctx.
func (lc *LoggerConfig) NewLogger(ctx context.Context) logging.Logger {
	if ctx == nil {
		ctx = context.Background()
	}
	return &loggerImpl{l: lc.newGoLogger(), ctx: ctx}
}

// Use installs a Logger built from this config into the Context.
func (lc *LoggerConfig) Use(ctx context.Context) context.Context {
	l := lc.newGoLogger()
	return logging.SetFactory(ctx, func(ctx context.Context) logging.Logger {
		return &loggerImpl{l: l, ctx: ctx}
	})
}

// New creates a logging.Logger writing to `w` with StandardFormat.
func New(w io.Writer) logging.Logger {
	lc := LoggerConfig{Format: StandardFormat, Out: w}
	return lc.NewLogger(nil)
}

// Use adds a StdConfig logger to the context.
func Use(ctx context.Context) context.Context {
	return StdConfig.Use(ctx)
}

type loggerImpl struct {
	l   *gol.Logger
	ctx context.Context
}

func (li *loggerImpl) Debugf(format string, args ...any) {
	li.LogCall(logging.Debug, 1, format, args)
}

func (li *loggerImpl) Infof(format string, args ...any) {
	li.LogCall(logging.Info, 1, format, args)
}

func (li *loggerImpl) Warningf(format string, args ...any) {
	li.LogCall(logging.Warning, 1, format, args)
}

func (li *loggerImpl) Errorf(format string, args ...any) {
	li.LogCall(logging.Error, 1, format, args)
}

func (li *loggerImpl) LogCall(l logging.Level, calldepth int, format string, args []any) {
	if !logging.IsLogging(li.ctx, l) {
		return
	}
	msg := fmt.Sprintf(format, args...)
	if fields := logging.GetFields(li.ctx); len(fields) > 0 {
		msg = fmt.Sprintf("%-44s%s", msg, fields)
	}

	// go-logging expects a format string; pass the message as an argument.
	switch l {
	case logging.Debug:
		li.l.Debugf("%s", msg)
	case logging.Info:
		li.l.Infof("%s", msg)
	case logging.Warning:
		li.l.Warningf("%s", msg)
	default:
		li.l.Errorf("%s", msg)
	}
}
