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
	"errors"
	"flag"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

type recordingLogger struct {
	nullLogger
	levels []Level
	msgs   []string
}

func (r *recordingLogger) LogCall(l Level, calldepth int, format string, args []any) {
	r.levels = append(r.levels, l)
	r.msgs = append(r.msgs, format)
}

func TestLogging(t *testing.T) {
	Convey(`Levels`, t, func() {
		So(GetLevel(context.Background()), ShouldEqual, DefaultLevel)
		c := SetLevel(context.Background(), Warning)
		So(IsLogging(c, Info), ShouldBeFalse)
		So(IsLogging(c, Error), ShouldBeTrue)

		Convey(`can be parsed as a flag`, func() {
			var l Level
			fs := flag.NewFlagSet("test", flag.ContinueOnError)
			fs.Var(&l, "log-level", "")
			So(fs.Parse([]string{"-log-level", "debug"}), ShouldBeNil)
			So(l, ShouldEqual, Debug)
			So(l.Set("loud"), ShouldNotBeNil)
			So(Warning.String(), ShouldEqual, "warning")
		})
	})

	Convey(`Fields`, t, func() {
		c := SetFields(context.Background(), Fields{"a": 1})
		c = SetError(c, errors.New("boom"))
		So(len(GetFields(c)), ShouldEqual, 2)
		So(GetFields(c).String(), ShouldEqual, `{"a":1, "error":"boom"}`)
	})

	Convey(`Package functions use the installed Logger`, t, func() {
		rec := &recordingLogger{}
		c := SetFactory(context.Background(), func(context.Context) Logger { return rec })
		Debugf(c, "d")
		Warningf(c, "w")
		Logf(c, Error, "e")
		So(rec.levels, ShouldResemble, []Level{Debug, Warning, Error})
		So(rec.msgs, ShouldResemble, []string{"d", "w", "e"})
	})
}
