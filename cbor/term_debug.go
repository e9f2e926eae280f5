// Copyright 2026 Blink Labs Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cbor

import (
	"bytes"
	"fmt"
)

// DumpTermStructure generates a compact string representing a Term for
// debugging and error messages
func DumpTermStructure(term Term) string {
	var ret bytes.Buffer
	switch v := term.(type) {
	case UnsignedTerm:
		return fmt.Sprintf("%d", uint64(v))
	case NegativeTerm:
		return v.Value.String()
	case BytesTerm:
		return fmt.Sprintf("<bytes> (length %d)", len(v))
	case TextTerm:
		return fmt.Sprintf("%q", string(v))
	case BoolTerm:
		return fmt.Sprintf("%t", bool(v))
	case FloatTerm:
		return fmt.Sprintf("%g", float64(v))
	case NullTerm:
		return "null"
	case ArrayTerm:
		ret.WriteString("[")
		for idx, item := range v {
			ret.WriteString(DumpTermStructure(item))
			if idx < (len(v) - 1) {
				ret.WriteString(", ")
			}
		}
		ret.WriteString("]")
	case MapTerm:
		ret.WriteString("{")
		for idx, pair := range v {
			ret.WriteString(DumpTermStructure(pair.Key))
			ret.WriteString(" => ")
			ret.WriteString(DumpTermStructure(pair.Value))
			if idx < (len(v) - 1) {
				ret.WriteString(", ")
			}
		}
		ret.WriteString("}")
	case TaggedTerm:
		return fmt.Sprintf("%d(%s)", v.Number, DumpTermStructure(v.Content))
	default:
		return fmt.Sprintf("%#v", v)
	}
	return ret.String()
}
