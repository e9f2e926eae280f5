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
	"fmt"
	"strings"
)

// TaggedSum is a CBOR-encoded sum value: one constructor of an algebraic
// data type applied to its positional fields
type TaggedSum struct {
	Tag    uint64
	Fields []Term
}

// AsTaggedSum recognizes a Term as a constructor application. Two wire
// forms are accepted, since the ledger uses both:
//
//   - a non-empty array whose first element is an unsigned integer:
//     tag is that integer, fields are the remaining elements
//   - a semantic tag wrapping an array: tag is the semantic tag number,
//     fields are all of the array's elements
//
// Anything else is not a sum.
func AsTaggedSum(term Term) (TaggedSum, bool) {
	switch v := term.(type) {
	case ArrayTerm:
		if len(v) == 0 {
			return TaggedSum{}, false
		}
		tagTerm, ok := v[0].(UnsignedTerm)
		if !ok {
			return TaggedSum{}, false
		}
		return TaggedSum{
			Tag:    uint64(tagTerm),
			Fields: v[1:],
		}, true
	case TaggedTerm:
		wrapped, ok := v.Content.(ArrayTerm)
		if !ok {
			return TaggedSum{}, false
		}
		return TaggedSum{
			Tag:    v.Number,
			Fields: wrapped,
		}, true
	default:
		return TaggedSum{}, false
	}
}

func (s TaggedSum) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "TaggedSum (Tag %d, Fields [", s.Tag)
	for idx, field := range s.Fields {
		sb.WriteString(DumpTermStructure(field))
		if idx < (len(s.Fields) - 1) {
			sb.WriteString(", ")
		}
	}
	sb.WriteString("])")
	return sb.String()
}
