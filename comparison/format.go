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

package comparison

import (
	"fmt"
	"strconv"
)

// Debug renders `value` the way assertion diagnostics show operands.
//
//   - nil renders as "nil"
//   - strings are quoted
//   - fmt.GoStringer values use GoString
//   - errors render as error("message")
//   - everything else uses %#v
func Debug(value any) string {
	switch v := value.(type) {
	case nil:
		return "nil"
	case string:
		return strconv.Quote(v)
	case fmt.GoStringer:
		return v.GoString()
	case error:
		return fmt.Sprintf("error(%q)", v.Error())
	}
	return fmt.Sprintf("%#v", value)
}
