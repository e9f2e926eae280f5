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
	"errors"
	"fmt"
)

// Sentinel errors so callers can classify decode failures with errors.Is
var (
	ErrCbor      = errors.New("CBOR decoding failed")
	ErrMalformed = errors.New("malformed predicate failure")
)

// CborError indicates that the raw bytes were not well-formed CBOR or
// were truncated. It carries the underlying decoder's diagnostic.
type CborError struct {
	Err error
}

func (e CborError) Error() string {
	return fmt.Sprintf("CBOR decoding error: %v", e.Err)
}

func (e CborError) Unwrap() error { return e.Err }

func (CborError) Is(target error) bool {
	return target == ErrCbor
}

// MalformedError indicates that the CBOR decoded successfully but did not
// match the expected shape at some point. The context string names the
// expectation that failed.
type MalformedError struct {
	Context string
}

func (e MalformedError) Error() string {
	return "malformed predicate failure: " + e.Context
}

func (MalformedError) Is(target error) bool {
	return target == ErrMalformed
}

// NewCborError wraps an underlying CBOR decoder error
func NewCborError(err error) error {
	return CborError{Err: err}
}

// NewMalformedError builds a structural error with the given context
func NewMalformedError(context string) error {
	return MalformedError{Context: context}
}
