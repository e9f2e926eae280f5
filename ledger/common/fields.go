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

package common

import (
	"fmt"

	"github.com/blinklabs-io/txrej/cbor"
)

// ExpectFields checks that a constructor carries exactly the expected
// number of fields and returns them in wire order. The context string
// names the constructor and its expected shape for the error message.
func ExpectFields(
	fields []cbor.Term,
	count int,
	context string,
) ([]cbor.Term, error) {
	if len(fields) != count {
		return nil, MalformedError{Context: context}
	}
	return fields, nil
}

// ExpectNoFields checks that a constructor carries no fields
func ExpectNoFields(fields []cbor.Term, context string) error {
	if len(fields) != 0 {
		return MalformedError{Context: context}
	}
	return nil
}

// ExpectSingleField returns the constructor's only field
func ExpectSingleField(fields []cbor.Term, context string) (cbor.Term, error) {
	if len(fields) != 1 {
		return nil, MalformedError{Context: context}
	}
	return fields[0], nil
}

// ExpectTwoFields returns the constructor's two fields in wire order
func ExpectTwoFields(
	fields []cbor.Term,
	context string,
) (cbor.Term, cbor.Term, error) {
	if len(fields) != 2 {
		return nil, nil, MalformedError{Context: context}
	}
	return fields[0], fields[1], nil
}

// FieldCountContext builds the standard arity-mismatch context string for
// a constructor
func FieldCountContext(constructor string, count int) string {
	plural := "s"
	if count == 1 {
		plural = ""
	}
	return fmt.Sprintf("%s expects %d field%s", constructor, count, plural)
}

// UnwrapBytes extracts a raw byte string from a term. Byte-string-typed
// fields sometimes arrive wrapped in an extra single-element array or an
// extra semantic tag relative to the raw bytes, so wrappers are peeled
// repeatedly until a byte string is found.
func UnwrapBytes(term cbor.Term, context string) ([]byte, error) {
	for {
		switch v := term.(type) {
		case cbor.BytesTerm:
			return v.Bytes(), nil
		case cbor.ArrayTerm:
			if len(v) != 1 {
				return nil, MalformedError{Context: context}
			}
			term = v[0]
		case cbor.TaggedTerm:
			term = v.Content
		default:
			return nil, MalformedError{Context: context}
		}
	}
}
