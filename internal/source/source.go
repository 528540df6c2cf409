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

// Package source recovers the source text of the arguments of a call, given
// the file and line of the call site.
//
// This is how assertion failures name their operands: the label of operand
// `a` in `assertables.Lt(len(items), limit)` is "len(items)".
package source

import (
	"bytes"
	"go/ast"
	"go/format"
	"go/parser"
	"go/token"
	"sync"

	"go.chromium.org/assertables/internal/errors"
)

type parsedFile struct {
	fset *token.FileSet
	file *ast.File
	err  error
}

var (
	cacheMu sync.Mutex
	cache   = map[string]*parsedFile{}
)

func parse(filename string) (*token.FileSet, *ast.File, error) {
	cacheMu.Lock()
	defer cacheMu.Unlock()

	if p, ok := cache[filename]; ok {
		return p.fset, p.file, p.err
	}
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, filename, nil, parser.SkipObjectResolution)
	if err != nil {
		err = errors.Annotate(err, "failed to parse source file %s", filename).Err()
	}
	cache[filename] = &parsedFile{fset, file, err}
	return fset, file, err
}

// funcName returns the name of the called function: `Lt` for `Lt(...)`,
// `assertables.Lt(...)` and `assertables.Lt[int](...)`.
func funcName(fun ast.Expr) string {
	switch f := fun.(type) {
	case *ast.Ident:
		return f.Name
	case *ast.SelectorExpr:
		return f.Sel.Name
	case *ast.IndexExpr:
		return funcName(f.X)
	case *ast.IndexListExpr:
		return funcName(f.X)
	case *ast.ParenExpr:
		return funcName(f.X)
	}
	return ""
}

// CallExpr finds the innermost call to a function called `name` whose source
// span includes `line`.
func CallExpr(fset *token.FileSet, file *ast.File, line int, name string) (*ast.CallExpr, error) {
	var found *ast.CallExpr
	ast.Inspect(file, func(n ast.Node) bool {
		if n == nil {
			return false
		}
		start, end := fset.Position(n.Pos()).Line, fset.Position(n.End()).Line
		if line < start || line > end {
			return false
		}
		if call, ok := n.(*ast.CallExpr); ok && funcName(call.Fun) == name {
			found = call
		}
		return true
	})
	if found == nil {
		return nil, errors.Reason("no call to %s found on line %d", name, line).Err()
	}
	return found, nil
}

// FormatNode renders an AST node as Go source.
func FormatNode(fset *token.FileSet, node ast.Node) (string, error) {
	buf := new(bytes.Buffer)
	if err := format.Node(buf, fset, node); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// CallArgs returns the source text of every argument of the innermost call
// to a function called `name` on `line` of `filename`.
func CallArgs(filename string, line int, name string) ([]string, error) {
	fset, file, err := parse(filename)
	if err != nil {
		return nil, err
	}
	call, err := CallExpr(fset, file, line, name)
	if err != nil {
		return nil, errors.Annotate(err, "call from %s:%d", filename, line).Err()
	}
	args := make([]string, len(call.Args))
	for i, arg := range call.Args {
		if args[i], err = FormatNode(fset, arg); err != nil {
			return nil, err
		}
	}
	return args, nil
}
