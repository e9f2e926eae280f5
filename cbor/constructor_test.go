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

package cbor_test

import (
	"testing"

	"github.com/blinklabs-io/txrej/cbor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAsTaggedSumArrayForm(t *testing.T) {
	term := cbor.ArrayTerm{
		cbor.UnsignedTerm(5),
		cbor.ArrayTerm{cbor.UnsignedTerm(1)},
		cbor.TextTerm("payload"),
	}
	sum, ok := cbor.AsTaggedSum(term)
	require.True(t, ok)
	assert.Equal(t, uint64(5), sum.Tag)
	require.Len(t, sum.Fields, 2)
	assert.Equal(t, cbor.ArrayTerm{cbor.UnsignedTerm(1)}, sum.Fields[0])
	assert.Equal(t, cbor.TextTerm("payload"), sum.Fields[1])
}

func TestAsTaggedSumSemanticTagForm(t *testing.T) {
	term := cbor.TaggedTerm{
		Number: 122,
		Content: cbor.ArrayTerm{
			cbor.TextTerm("a"),
			cbor.UnsignedTerm(9),
		},
	}
	sum, ok := cbor.AsTaggedSum(term)
	require.True(t, ok)
	assert.Equal(t, uint64(122), sum.Tag)
	require.Len(t, sum.Fields, 2)
	assert.Equal(t, cbor.TextTerm("a"), sum.Fields[0])
	assert.Equal(t, cbor.UnsignedTerm(9), sum.Fields[1])
}

func TestAsTaggedSumZeroFieldConstructors(t *testing.T) {
	// [8] is a constructor with no fields
	sum, ok := cbor.AsTaggedSum(cbor.ArrayTerm{cbor.UnsignedTerm(8)})
	require.True(t, ok)
	assert.Equal(t, uint64(8), sum.Tag)
	assert.Len(t, sum.Fields, 0)
	// 8([]) is the same constructor in semantic tag form
	sum, ok = cbor.AsTaggedSum(
		cbor.TaggedTerm{Number: 8, Content: cbor.ArrayTerm{}},
	)
	require.True(t, ok)
	assert.Equal(t, uint64(8), sum.Tag)
	assert.Len(t, sum.Fields, 0)
}

func TestAsTaggedSumRejectsNonSums(t *testing.T) {
	nonSums := []cbor.Term{
		// Empty array has no tag position
		cbor.ArrayTerm{},
		// Array head must be an unsigned integer
		cbor.ArrayTerm{cbor.TextTerm("nope"), cbor.UnsignedTerm(1)},
		cbor.ArrayTerm{cbor.NewNegativeTerm(-1)},
		// Scalars are never sums
		cbor.UnsignedTerm(7),
		cbor.TextTerm("seven"),
		cbor.BytesTerm{0x07},
		cbor.NullTerm{},
		// A semantic tag must wrap an array
		cbor.TaggedTerm{Number: 5, Content: cbor.UnsignedTerm(1)},
		// Maps are not sums
		cbor.MapTerm{
			{Key: cbor.UnsignedTerm(0), Value: cbor.UnsignedTerm(1)},
		},
	}
	for _, term := range nonSums {
		_, ok := cbor.AsTaggedSum(term)
		assert.False(t, ok, "expected non-sum: %s", cbor.DumpTermStructure(term))
	}
}
