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
	"cmp"

	"golang.org/x/exp/constraints"
)

// Number is any integer or floating point type.
type Number interface {
	constraints.Integer | constraints.Float
}

// Float is any floating point type.
type Float interface {
	constraints.Float
}

type relation int

const (
	relEq relation = iota
	relNe
	relLt
	relLe
	relGt
	relGe
)

func (r relation) String() string {
	switch r {
	case relEq:
		return "=="
	case relNe:
		return "!="
	case relLt:
		return "<"
	case relLe:
		return "<="
	case relGt:
		return ">"
	case relGe:
		return ">="
	}
	return "?"
}

// parseRelation maps an operator to a relation.
func parseRelation(op string) (relation, bool) {
	for r := relEq; r <= relGe; r++ {
		if r.String() == op {
			return r, true
		}
	}
	return 0, false
}

// holds reports whether `a r b`. NaN compares false for every relation except
// !=, as with the Go operators.
func holds[T cmp.Ordered](r relation, a, b T) bool {
	switch r {
	case relEq:
		return a == b
	case relNe:
		return a != b
	case relLt:
		return a < b
	case relLe:
		return a <= b
	case relGt:
		return a > b
	case relGe:
		return a >= b
	}
	return false
}

// holdsEq is holds for types which are only comparable. It accepts relEq and
// relNe.
func holdsEq[T comparable](r relation, a, b T) bool {
	if r == relNe {
		return a != b
	}
	return a == b
}
