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
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/dustin/go-humanize"

	"go.chromium.org/assertables/comparison"
	"go.chromium.org/assertables/failure"
	"go.chromium.org/assertables/internal/errors"
	"go.chromium.org/assertables/internal/procout"
)

// ErrInvalidUTF8 is the Cause of failures where a file, reader or process
// produced bytes which are not valid UTF-8.
var ErrInvalidUTF8 = errors.New("invalid UTF-8")

// text is a string operand obtained from a file, a reader or a process.
type text struct {
	role   string
	params []string
	label  string
	debug  any
	kind   string
	value  string
	err    error
}

func (t *text) describe(sb *comparison.SummaryBuilder) {
	sb.Operand(t.role, t.label, t.debug)
	if t.err != nil {
		sb.AddFindingf(t.role+" error", "%s", t.err).Cause(t.err)
		return
	}
	sb.Derived(t.role+" "+t.kind, t.value).
		AddVerboseFinding(t.role+" "+t.kind+" size", humanize.Bytes(uint64(len(t.value))))
}

// labelTexts labels ts from the call site, and returns the labels of the
// `extra` parameters which follow them.
func labelTexts(site callSite, ts []*text, extra ...string) []string {
	var params []string
	for _, t := range ts {
		params = append(params, t.params...)
	}
	l := site.labels(append(params, extra...)...)
	i := 0
	for _, t := range ts {
		t.label = strings.Join(l[i:i+len(t.params)], ", ")
		i += len(t.params)
	}
	return l[i:]
}

// unavailable adds a Because finding for the first text which could not be
// obtained, and reports whether there was one.
func unavailable(sb *comparison.SummaryBuilder, ts ...*text) bool {
	for _, t := range ts {
		if t.err != nil {
			sb.Because("could not obtain the %s of %s", t.kind, t.role)
			return true
		}
	}
	return false
}

func decode(b []byte, what string) (string, error) {
	if !utf8.Valid(b) {
		return "", errors.Annotate(ErrInvalidUTF8, "decoding %s", what).Err()
	}
	return string(b), nil
}

func fileText(role, path string) text {
	t := text{role: role, params: []string{role}, debug: path, kind: "contents"}
	b, err := os.ReadFile(path)
	if err != nil {
		t.err = errors.Annotate(err, "reading file").Err()
		return t
	}
	t.value, t.err = decode(b, strconv.Quote(path))
	return t
}

func readerText(role string, r io.Reader) text {
	t := text{role: role, params: []string{role}, debug: goString(fmt.Sprintf("%T", r)), kind: "contents"}
	if gs, ok := r.(fmt.GoStringer); ok {
		t.debug = goString(gs.GoString())
	}
	if r == nil {
		t.err = errors.Reason("nil reader").Err()
		return t
	}
	b, err := io.ReadAll(r)
	if err != nil {
		t.err = errors.Annotate(err, "reading").Err()
		return t
	}
	t.value, t.err = decode(b, "reader contents")
	return t
}

type stream int

const (
	stdout stream = iota
	stderr
)

func (s stream) String() string {
	if s == stderr {
		return "stderr"
	}
	return "stdout"
}

func cmdDebug(cmd *exec.Cmd) any {
	if cmd == nil {
		return nil
	}
	args := make([]string, len(cmd.Args))
	for i, a := range cmd.Args {
		args[i] = strconv.Quote(a)
	}
	return goString("exec.Command(" + strings.Join(args, ", ") + ")")
}

func runCmd(cmd *exec.Cmd) (*procout.Output, error) {
	return procout.Run(context.Background(), cmd)
}

func commandText(role string, params []string, cmd *exec.Cmd, s stream) text {
	t := text{role: role, params: params, debug: cmdDebug(cmd), kind: s.String()}
	out, err := runCmd(cmd)
	if err != nil {
		t.err = err
		return t
	}
	raw := out.Stdout
	if s == stderr {
		raw = out.Stderr
	}
	t.value, t.err = decode(raw, s.String())
	return t
}

func programText(role string, program string, args []string, s stream) text {
	return commandText(role, []string{role + "Program", role + "Args"}, exec.Command(program, args...), s)
}

func textPair(site callSite, r relation, a, b text) (string, string, *failure.Summary) {
	if a.err == nil && b.err == nil && holds(r, a.value, b.value) {
		return a.value, b.value, nil
	}
	labelTexts(site, []*text{&a, &b})
	sb := site.builder()
	if !unavailable(sb, &a, &b) {
		sb.Because("expected a %s %s b %s", a.kind, r, b.kind)
	}
	a.describe(sb)
	b.describe(sb)
	if a.err == nil && b.err == nil {
		sb.SmartStringDiff("a "+a.kind, a.value, "b "+b.kind, b.value)
	}
	return a.value, b.value, sb.Summary
}

func textX(site callSite, r relation, a text, x string) (string, *failure.Summary) {
	if a.err == nil && holds(r, a.value, x) {
		return a.value, nil
	}
	l := labelTexts(site, []*text{&a}, "x")
	sb := site.builder()
	if !unavailable(sb, &a) {
		sb.Because("expected a %s %s x", a.kind, r)
	}
	a.describe(sb)
	sb.Operand("x", l[0], x)
	if a.err == nil {
		sb.SmartStringDiff("a "+a.kind, a.value, "x", x)
	}
	return a.value, sb.Summary
}

func textContains(site callSite, a text, containee string) (string, *failure.Summary) {
	if a.err == nil && strings.Contains(a.value, containee) {
		return a.value, nil
	}
	l := labelTexts(site, []*text{&a}, "containee")
	sb := site.builder()
	if !unavailable(sb, &a) {
		sb.Because("expected a %s to contain containee", a.kind)
	}
	a.describe(sb)
	return a.value, sb.Operand("containee", l[0], containee).Summary
}

func textMatch(site callSite, a text, matcher Matcher) (string, *failure.Summary) {
	var ok bool
	var err error
	if a.err == nil && matcher != nil {
		ok, err = matches(matcher, a.value)
		if err == nil && ok {
			return a.value, nil
		}
	}
	l := labelTexts(site, []*text{&a}, "matcher")
	sb := site.builder()
	switch {
	case unavailable(sb, &a):
	case matcher == nil:
		sb.Because("matcher is nil")
	case err != nil:
		sb.Because("invalid pattern: %s", err)
	default:
		sb.Because("expected matcher to match a %s", a.kind)
	}
	a.describe(sb)
	return a.value, sb.Operand("matcher", l[0], matcherDebug(matcher)).Summary
}
