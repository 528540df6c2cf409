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
	"bytes"
	"reflect"
	"strings"
)

type lener interface {
	Len() int
}

// lengthOf returns the length of v, and false if v has no length.
//
// Strings, slices, arrays, maps, channels, pointers to arrays and values with
// a `Len() int` method have a length.
func lengthOf(v any) (int, bool) {
	if l, ok := v.(lener); ok {
		return l.Len(), true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String, reflect.Slice, reflect.Array, reflect.Map, reflect.Chan:
		return rv.Len(), true
	case reflect.Pointer:
		if rv.Type().Elem().Kind() == reflect.Array {
			return rv.Type().Elem().Len(), true
		}
	}
	return 0, false
}

// containsMethod calls `container.Contains(containee)` if container has a
// Contains method returning bool which accepts containee.
func containsMethod(container, containee any) (found, ok bool) {
	if container == nil {
		return false, false
	}
	m := reflect.ValueOf(container).MethodByName("Contains")
	if !m.IsValid() {
		return false, false
	}
	mt := m.Type()
	if mt.NumIn() != 1 || mt.NumOut() != 1 || mt.Out(0).Kind() != reflect.Bool {
		return false, false
	}
	in := mt.In(0)
	if mt.IsVariadic() {
		in = in.Elem()
	}
	arg := reflect.ValueOf(containee)
	if !arg.IsValid() {
		switch in.Kind() {
		case reflect.Interface, reflect.Pointer, reflect.Slice, reflect.Map, reflect.Chan, reflect.Func:
			arg = reflect.Zero(in)
		default:
			return false, false
		}
	}
	if !arg.Type().AssignableTo(in) {
		return false, false
	}
	return m.Call([]reflect.Value{arg})[0].Bool(), true
}

// containsValue reports whether containee is in container, and false for ok
// if containment is not defined for the pair.
//
//   - string: substring (string containee) or rune (rune containee)
//   - []byte: byte subsequence ([]byte containee)
//   - slice or array: an element reflect.DeepEqual to containee
//   - map: a key equal to containee
//   - anything with a `Contains(T) bool` method accepting containee
func containsValue(container, containee any) (found, ok bool) {
	if found, ok := containsMethod(container, containee); ok {
		return found, true
	}
	switch c := container.(type) {
	case string:
		switch x := containee.(type) {
		case string:
			return strings.Contains(c, x), true
		case rune:
			return strings.ContainsRune(c, x), true
		}
		return false, false
	case []byte:
		if x, isBytes := containee.([]byte); isBytes {
			return bytes.Contains(c, x), true
		}
	}

	rv := reflect.ValueOf(container)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		for i := range rv.Len() {
			if reflect.DeepEqual(rv.Index(i).Interface(), containee) {
				return true, true
			}
		}
		return false, true
	case reflect.Map:
		key := reflect.ValueOf(containee)
		if !key.IsValid() || !key.Type().AssignableTo(rv.Type().Key()) {
			return false, false
		}
		return rv.MapIndex(key).IsValid(), true
	}
	return false, false
}

// hasAffix reports whether whole starts (or, with suffix, ends) with part.
//
// Both must be strings, or both must be slices or arrays.
func hasAffix(whole, part any, suffix bool) (found, ok bool) {
	if w, isStr := whole.(string); isStr {
		p, isStr := part.(string)
		if !isStr {
			return false, false
		}
		if suffix {
			return strings.HasSuffix(w, p), true
		}
		return strings.HasPrefix(w, p), true
	}

	wv, pv := reflect.ValueOf(whole), reflect.ValueOf(part)
	if !isSequence(wv) || !isSequence(pv) {
		return false, false
	}
	if pv.Len() > wv.Len() {
		return false, true
	}
	offset := 0
	if suffix {
		offset = wv.Len() - pv.Len()
	}
	for i := range pv.Len() {
		if !reflect.DeepEqual(wv.Index(offset+i).Interface(), pv.Index(i).Interface()) {
			return false, true
		}
	}
	return true, true
}

func isSequence(v reflect.Value) bool {
	return v.Kind() == reflect.Slice || v.Kind() == reflect.Array
}
