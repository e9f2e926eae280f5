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

package ledger_test

import (
	"encoding/hex"
	"testing"

	"github.com/blinklabs-io/txrej/ledger"
	"github.com/blinklabs-io/txrej/ledger/conway"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testEnvelopeHex = "820881820282028201820681581c" +
	"00112233445566778899aabbccddeeff00112233445566778899aabb"

func TestNewTxSubmitErrorFromCbor(t *testing.T) {
	cborData, err := hex.DecodeString(testEnvelopeHex)
	require.NoError(t, err)
	newErr, err := ledger.NewTxSubmitErrorFromCbor(cborData)
	require.NoError(t, err)
	txErr, ok := newErr.(*conway.TxValidationError)
	require.True(t, ok, "expected TxValidationError, got %T", newErr)
	assert.Equal(t, uint64(8), txErr.ContextTag)
	require.Len(t, txErr.Failures, 1)
}

func TestNewTxSubmitErrorFromCborFallback(t *testing.T) {
	// Valid CBOR that isn't a rejection envelope falls back to the
	// generic error
	cborData, err := hex.DecodeString("6474657874")
	require.NoError(t, err)
	newErr, err := ledger.NewTxSubmitErrorFromCbor(cborData)
	require.NoError(t, err)
	genericErr, ok := newErr.(*ledger.GenericError)
	require.True(t, ok, "expected GenericError, got %T", newErr)
	assert.Equal(t, "GenericError (text)", genericErr.Error())
}

func TestNewTxSubmitErrorFromCborInvalid(t *testing.T) {
	cborData, err := hex.DecodeString("83")
	require.NoError(t, err)
	_, err = ledger.NewTxSubmitErrorFromCbor(cborData)
	assert.Error(t, err)
}

func TestGetEraById(t *testing.T) {
	era := ledger.GetEraById(ledger.EraIdConway)
	require.NotNil(t, era)
	assert.Equal(t, "Conway", era.Name)
	require.NotNil(t, era.DecodeFailures)
	cborData, err := hex.DecodeString(testEnvelopeHex)
	require.NoError(t, err)
	failures, err := era.DecodeFailures(cborData)
	require.NoError(t, err)
	assert.Len(t, failures, 1)
	// Shelley has no typed decoder wired
	era = ledger.GetEraById(ledger.EraIdShelley)
	require.NotNil(t, era)
	assert.Equal(t, "Shelley", era.Name)
	assert.Nil(t, era.DecodeFailures)
	// Unknown era IDs return nil
	assert.Nil(t, ledger.GetEraById(99))
}
