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

// Package cbor provides the CBOR plumbing underneath the reject-reason
// decoders. It wraps github.com/fxamacker/cbor/v2 with Cardano-specific
// tag handling and adds a schema-free Term model.
//
// # Key Types
//
//   - Term: structural view of one decoded CBOR item, preserving array
//     order, map entry order (with duplicate keys), and the full negative
//     integer range
//   - TaggedSum: a recognized constructor application, either a plain
//     [tag, field...] array or a semantic tag wrapping a field array
//   - Value: legacy any-typed view kept for generic fallback decoding
//   - ByteString: bytestrings usable as map keys
//   - StructAsArray: embed to decode a struct from a CBOR array
//
// Decoding never imposes a depth or size limit of its own beyond the
// nesting ceiling of the underlying library; callers handling untrusted
// input should bound input size externally.
package cbor
