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

package common_test

import (
	"testing"

	"github.com/blinklabs-io/txrej/cbor"
	"github.com/blinklabs-io/txrej/ledger/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpectFields(t *testing.T) {
	fields := []cbor.Term{cbor.UnsignedTerm(1), cbor.TextTerm("x")}
	got, err := common.ExpectFields(fields, 2, "TestConstructor expects 2 fields")
	require.NoError(t, err)
	assert.Equal(t, fields, got)
	_, err = common.ExpectFields(fields, 1, "TestConstructor expects 1 field")
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrMalformed)
	assert.Contains(t, err.Error(), "TestConstructor expects 1 field")
}

func TestExpectSingleField(t *testing.T) {
	field, err := common.ExpectSingleField(
		[]cbor.Term{cbor.UnsignedTerm(42)},
		"ctx",
	)
	require.NoError(t, err)
	assert.Equal(t, cbor.UnsignedTerm(42), field)
	_, err = common.ExpectSingleField([]cbor.Term{}, "ctx")
	assert.ErrorIs(t, err, common.ErrMalformed)
	_, err = common.ExpectSingleField(
		[]cbor.Term{cbor.UnsignedTerm(1), cbor.UnsignedTerm(2)},
		"ctx",
	)
	assert.ErrorIs(t, err, common.ErrMalformed)
}

func TestExpectTwoFields(t *testing.T) {
	first, second, err := common.ExpectTwoFields(
		[]cbor.Term{cbor.UnsignedTerm(1), cbor.UnsignedTerm(2)},
		"ctx",
	)
	require.NoError(t, err)
	assert.Equal(t, cbor.UnsignedTerm(1), first)
	assert.Equal(t, cbor.UnsignedTerm(2), second)
	_, _, err = common.ExpectTwoFields(
		[]cbor.Term{cbor.UnsignedTerm(1)},
		"ctx",
	)
	assert.ErrorIs(t, err, common.ErrMalformed)
}

func TestExpectNoFields(t *testing.T) {
	require.NoError(t, common.ExpectNoFields([]cbor.Term{}, "ctx"))
	err := common.ExpectNoFields([]cbor.Term{cbor.UnsignedTerm(1)}, "ctx")
	assert.ErrorIs(t, err, common.ErrMalformed)
}

func TestFieldCountContext(t *testing.T) {
	assert.Equal(
		t,
		"InvalidMetadata expects 0 fields",
		common.FieldCountContext("InvalidMetadata", 0),
	)
	assert.Equal(
		t,
		"MissingTxMetadata expects 1 field",
		common.FieldCountContext("MissingTxMetadata", 1),
	)
	assert.Equal(
		t,
		"MaxTxSizeUtxo expects 2 fields",
		common.FieldCountContext("MaxTxSizeUtxo", 2),
	)
}

func TestUnwrapBytes(t *testing.T) {
	rawBytes := []byte{0xde, 0xad, 0xbe, 0xef}
	wrapTestDefs := []cbor.Term{
		// Bare byte string
		cbor.BytesTerm(rawBytes),
		// One array layer
		cbor.ArrayTerm{cbor.BytesTerm(rawBytes)},
		// Two array layers
		cbor.ArrayTerm{cbor.ArrayTerm{cbor.BytesTerm(rawBytes)}},
		// Semantic tag layer
		cbor.TaggedTerm{Number: 24, Content: cbor.BytesTerm(rawBytes)},
		// Mixed layers
		cbor.ArrayTerm{
			cbor.TaggedTerm{Number: 24, Content: cbor.BytesTerm(rawBytes)},
		},
	}
	for _, testDef := range wrapTestDefs {
		unwrapped, err := common.UnwrapBytes(testDef, "ctx")
		require.NoError(
			t,
			err,
			"test term: %s",
			cbor.DumpTermStructure(testDef),
		)
		assert.Equal(t, rawBytes, unwrapped)
	}
}

func TestUnwrapBytesRejectsNonBytes(t *testing.T) {
	badTestDefs := []cbor.Term{
		cbor.UnsignedTerm(1),
		cbor.TextTerm("deadbeef"),
		// Multi-element arrays are not wrappers
		cbor.ArrayTerm{
			cbor.BytesTerm{0x01},
			cbor.BytesTerm{0x02},
		},
		cbor.ArrayTerm{},
	}
	for _, testDef := range badTestDefs {
		_, err := common.UnwrapBytes(testDef, "ctx")
		assert.ErrorIs(
			t,
			err,
			common.ErrMalformed,
			"test term: %s",
			cbor.DumpTermStructure(testDef),
		)
	}
}
