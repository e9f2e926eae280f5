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

package conway_test

import (
	"encoding/hex"
	"strings"
	"sync"
	"testing"

	"github.com/blinklabs-io/txrej/cbor"
	"github.com/blinklabs-io/txrej/ledger/common"
	"github.com/blinklabs-io/txrej/ledger/conway"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

const testPoolHashHex = "00112233445566778899aabbccddeeff00112233445566778899aabb"

// [8, [[2, [2, [1, [6, [h'<pool hash>']]]]]]]
const testEnvelopeHex = "820881820282028201820681581c" + testPoolHashHex

func TestNewTxValidationErrorFromCbor(t *testing.T) {
	cborData, err := hex.DecodeString(testEnvelopeHex)
	require.NoError(t, err)
	txErr, err := conway.NewTxValidationErrorFromCbor(cborData)
	require.NoError(t, err)
	assert.Equal(t, uint64(8), txErr.ContextTag)
	require.Len(t, txErr.Failures, 1)
	certsFailure, ok := txErr.Failures[0].(*conway.ConwayCertsFailure)
	require.True(t, ok, "expected ConwayCertsFailure, got %T", txErr.Failures[0])
	certFailure, ok := certsFailure.Err.(*conway.CertFailure)
	require.True(t, ok, "expected CertFailure, got %T", certsFailure.Err)
	delegFailure, ok := certFailure.Err.(*conway.DelegFailure)
	require.True(t, ok, "expected DelegFailure, got %T", certFailure.Err)
	poolNotRegistered, ok := delegFailure.Err.(*conway.DelegateeStakePoolNotRegisteredDELEG)
	require.True(
		t,
		ok,
		"expected DelegateeStakePoolNotRegisteredDELEG, got %T",
		delegFailure.Err,
	)
	assert.Equal(t, testPoolHashHex, poolNotRegistered.PoolKeyHash.String())
	// The rendered failure includes the bech32 pool ID
	assert.Contains(t, txErr.Error(), "ConwayCertsFailure (CertFailure (DelegFailure (DelegateeStakePoolNotRegisteredDELEG (KeyHash pool1")
}

func TestNewTxValidationErrorFromCborRejectsBadEnvelopes(t *testing.T) {
	badTestDefs := []struct {
		cborHex string
		reason  string
	}{
		{"05", "bare integer"},
		{"83080808", "three-element array"},
		{"82617881820282028201820681581c" + testPoolHashHex, "text context tag"},
		{"820805", "failure list is not an array"},
		{"8308", "truncated"},
	}
	for _, testDef := range badTestDefs {
		cborData, err := hex.DecodeString(testDef.cborHex)
		require.NoError(t, err)
		_, err = conway.NewTxValidationErrorFromCbor(cborData)
		assert.Error(t, err, "expected error: %s", testDef.reason)
	}
}

func TestNewTxValidationErrorFromCborAllOrNothing(t *testing.T) {
	// [8, [[8], [4]]]: InvalidMetadata is fine at the UTXOW level but [4]
	// at the LEDGER level is ConwayWdrlNotDelegatedToDRep missing its
	// field, so the whole envelope must fail
	cborData, err := hex.DecodeString("820882820181088104")
	require.NoError(t, err)
	_, err = conway.NewTxValidationErrorFromCbor(cborData)
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrMalformed)
	assert.Contains(t, err.Error(), "failure 1")
}

func TestDecodeLedgerFailureUnknownTag(t *testing.T) {
	term := cbor.ArrayTerm{
		cbor.UnsignedTerm(99),
		cbor.UnsignedTerm(1),
		cbor.TextTerm("future payload"),
	}
	failure, err := conway.DecodeLedgerFailure(term)
	require.NoError(t, err)
	unknown, ok := failure.(*conway.UnknownLedgerFailure)
	require.True(t, ok, "expected UnknownLedgerFailure, got %T", failure)
	assert.Equal(t, uint64(99), unknown.Sum.Tag)
	assert.Len(t, unknown.Sum.Fields, 2)
	assert.Contains(t, unknown.Error(), "UnknownLedgerFailure")
}

func TestDecodeLedgerFailureUnknownTagAnyArity(t *testing.T) {
	// Unknown tags never fail arity checks, whatever their field count
	for fieldCount := 0; fieldCount < 5; fieldCount++ {
		term := cbor.ArrayTerm{cbor.UnsignedTerm(1000)}
		for i := 0; i < fieldCount; i++ {
			term = append(term, cbor.UnsignedTerm(uint64(i)))
		}
		failure, err := conway.DecodeLedgerFailure(term)
		require.NoError(t, err)
		unknown, ok := failure.(*conway.UnknownLedgerFailure)
		require.True(t, ok, "expected UnknownLedgerFailure, got %T", failure)
		assert.Len(t, unknown.Sum.Fields, fieldCount)
	}
}

func TestDecodeLedgerFailureArityMismatch(t *testing.T) {
	badTestDefs := []struct {
		term    cbor.Term
		context string
	}{
		// ConwayWdrlNotDelegatedToDRep with no field
		{
			term:    cbor.ArrayTerm{cbor.UnsignedTerm(4)},
			context: "ConwayWdrlNotDelegatedToDRep expects 1 field",
		},
		// ConwayMempoolFailure with an extra field
		{
			term: cbor.ArrayTerm{
				cbor.UnsignedTerm(7),
				cbor.TextTerm("msg"),
				cbor.UnsignedTerm(1),
			},
			context: "ConwayMempoolFailure expects 1 field",
		},
		// ConwayTreasuryValueMismatch with one field instead of two
		{
			term: cbor.ArrayTerm{
				cbor.UnsignedTerm(5),
				cbor.UnsignedTerm(100),
			},
			context: "ConwayTreasuryValueMismatch expects 2 fields",
		},
	}
	for _, testDef := range badTestDefs {
		_, err := conway.DecodeLedgerFailure(testDef.term)
		require.Error(t, err)
		assert.ErrorIs(t, err, common.ErrMalformed)
		assert.Contains(t, err.Error(), testDef.context)
	}
}

func TestDecodeUtxowFailureArityMismatch(t *testing.T) {
	// InvalidMetadata carries no fields
	term := cbor.ArrayTerm{cbor.UnsignedTerm(8), cbor.UnsignedTerm(1)}
	_, err := conway.DecodeUtxowFailure(term)
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrMalformed)
	assert.Contains(t, err.Error(), "InvalidMetadata expects 0 fields")
}

func TestDecodeUtxowFailureMetadataHash(t *testing.T) {
	hashBytes := common.Blake2b256Hash([]byte("metadata")).Bytes()
	// Byte-string payloads arrive both bare and array-wrapped
	wrapTestDefs := []cbor.Term{
		cbor.BytesTerm(hashBytes),
		cbor.ArrayTerm{cbor.BytesTerm(hashBytes)},
	}
	for _, wrapped := range wrapTestDefs {
		term := cbor.ArrayTerm{cbor.UnsignedTerm(5), wrapped}
		failure, err := conway.DecodeUtxowFailure(term)
		require.NoError(t, err)
		missingHash, ok := failure.(*conway.MissingTxBodyMetadataHash)
		require.True(t, ok, "expected MissingTxBodyMetadataHash, got %T", failure)
		assert.Equal(t, hashBytes, missingHash.Hash.Bytes())
	}
}

func TestDecodeUtxoFailureRecursion(t *testing.T) {
	// UTXOW tag 0 wraps UTXO, UTXO tag 0 wraps UTXOS
	term := cbor.ArrayTerm{
		cbor.UnsignedTerm(0),
		cbor.ArrayTerm{
			cbor.UnsignedTerm(0),
			cbor.ArrayTerm{
				cbor.UnsignedTerm(1),
				cbor.ArrayTerm{},
			},
		},
	}
	failure, err := conway.DecodeUtxowFailure(term)
	require.NoError(t, err)
	utxoFailure, ok := failure.(*conway.UtxoFailure)
	require.True(t, ok, "expected UtxoFailure, got %T", failure)
	utxosFailure, ok := utxoFailure.Err.(*conway.UtxosFailure)
	require.True(t, ok, "expected UtxosFailure, got %T", utxoFailure.Err)
	collectErrors, ok := utxosFailure.Err.(*conway.CollectErrors)
	require.True(t, ok, "expected CollectErrors, got %T", utxosFailure.Err)
	assert.Equal(t, cbor.ArrayTerm{}, collectErrors.Errors)
}

func TestDecodeLedgerFailureSemanticTagForm(t *testing.T) {
	// 7(["mempool full"]) is the semantic tag rendering of
	// ConwayMempoolFailure
	term := cbor.TaggedTerm{
		Number:  7,
		Content: cbor.ArrayTerm{cbor.TextTerm("mempool full")},
	}
	failure, err := conway.DecodeLedgerFailure(term)
	require.NoError(t, err)
	mempoolFailure, ok := failure.(*conway.ConwayMempoolFailure)
	require.True(t, ok, "expected ConwayMempoolFailure, got %T", failure)
	assert.Equal(t, cbor.TextTerm("mempool full"), mempoolFailure.Message)
}

func TestDecodeGovFailure(t *testing.T) {
	term := cbor.ArrayTerm{
		cbor.UnsignedTerm(3),
		cbor.ArrayTerm{
			cbor.UnsignedTerm(4),
			cbor.UnsignedTerm(100000000),
			cbor.UnsignedTerm(50000000),
		},
	}
	failure, err := conway.DecodeLedgerFailure(term)
	require.NoError(t, err)
	govFailure, ok := failure.(*conway.ConwayGovFailure)
	require.True(t, ok, "expected ConwayGovFailure, got %T", failure)
	depositIncorrect, ok := govFailure.Err.(*conway.ProposalDepositIncorrect)
	require.True(
		t,
		ok,
		"expected ProposalDepositIncorrect, got %T",
		govFailure.Err,
	)
	assert.Equal(t, cbor.UnsignedTerm(100000000), depositIncorrect.Supplied)
	assert.Equal(t, cbor.UnsignedTerm(50000000), depositIncorrect.Expected)
}

func TestDecodeCertsFailureRetiredTag(t *testing.T) {
	// CERTS tag 0 was retired, so it routes to the unknown catch-all
	// instead of failing
	term := cbor.ArrayTerm{cbor.UnsignedTerm(0), cbor.UnsignedTerm(1)}
	failure, err := conway.DecodeCertsFailure(term)
	require.NoError(t, err)
	unknown, ok := failure.(*conway.UnknownCertsFailure)
	require.True(t, ok, "expected UnknownCertsFailure, got %T", failure)
	assert.Equal(t, uint64(0), unknown.Sum.Tag)
}

func TestDecodeGovCertFailure(t *testing.T) {
	term := cbor.ArrayTerm{
		cbor.UnsignedTerm(3),
		cbor.ArrayTerm{
			cbor.UnsignedTerm(3),
			cbor.ArrayTerm{
				cbor.UnsignedTerm(0),
				cbor.BytesTerm(
					common.Blake2b224Hash([]byte("committee member")).Bytes(),
				),
			},
		},
	}
	failure, err := conway.DecodeCertFailure(term)
	require.NoError(t, err)
	govCertFailure, ok := failure.(*conway.GovCertFailure)
	require.True(t, ok, "expected GovCertFailure, got %T", failure)
	resigned, ok := govCertFailure.Err.(*conway.ConwayCommitteeHasPreviouslyResigned)
	require.True(
		t,
		ok,
		"expected ConwayCommitteeHasPreviouslyResigned, got %T",
		govCertFailure.Err,
	)
	assert.Contains(t, resigned.Error(), "ConwayCommitteeHasPreviouslyResigned")
}

func TestRuleCataloguesMatchDecoders(t *testing.T) {
	// Spot-check the catalogue names used for arity error messages
	name, ok := conway.LedgerRuleCatalogue.Name(conway.LedgerFailureCertsFailure)
	require.True(t, ok)
	assert.Equal(t, "ConwayCertsFailure", name)
	name, ok = conway.DelegRuleCatalogue.Name(conway.DelegFailureDelegateeStakePoolNotRegistered)
	require.True(t, ok)
	assert.Equal(t, "DelegateeStakePoolNotRegisteredDELEG", name)
	_, ok = conway.CertsRuleCatalogue.Name(0)
	assert.False(t, ok)
}

// makeSumTerm builds a sum with the requested field count. A nested
// unknown-tag sum works as a payload for every constructor, including the
// recursive wrappers, since unknown tags decode successfully at any level.
func makeSumTerm(tag uint64, fieldCount int, byteField bool) cbor.Term {
	term := cbor.ArrayTerm{cbor.UnsignedTerm(tag)}
	if byteField {
		term = append(
			term,
			cbor.BytesTerm(common.Blake2b256Hash([]byte("payload")).Bytes()),
		)
		return term
	}
	for i := 0; i < fieldCount; i++ {
		term = append(term, cbor.ArrayTerm{cbor.UnsignedTerm(9999)})
	}
	return term
}

func TestCatalogueTotality(t *testing.T) {
	// Every catalogued tag must decode to a typed failure, never to the
	// unknown catch-all. Field counts per tag, with byte-payload
	// constructors flagged.
	levelTestDefs := []struct {
		catalogue  common.Catalogue
		decode     func(cbor.Term) (error, error)
		unknown    string
		arities    map[uint64]int
		byteFields map[uint64]bool
	}{
		{
			catalogue: conway.LedgerRuleCatalogue,
			decode: func(term cbor.Term) (error, error) {
				return conway.DecodeLedgerFailure(term)
			},
			unknown: "UnknownLedgerFailure",
			arities: map[uint64]int{1: 1, 2: 1, 3: 1, 4: 1, 5: 2, 6: 2, 7: 1},
		},
		{
			catalogue: conway.UtxowRuleCatalogue,
			decode: func(term cbor.Term) (error, error) {
				return conway.DecodeUtxowFailure(term)
			},
			unknown: "UnknownUtxowFailure",
			arities: map[uint64]int{
				0: 1, 1: 1, 2: 1, 3: 1, 4: 1, 5: 1, 6: 1, 7: 2, 8: 0,
				9: 1, 10: 1, 11: 2, 12: 2, 13: 2, 14: 1, 15: 1, 16: 1, 17: 1,
			},
			byteFields: map[uint64]bool{5: true, 6: true},
		},
		{
			catalogue: conway.UtxoRuleCatalogue,
			decode: func(term cbor.Term) (error, error) {
				return conway.DecodeUtxoFailure(term)
			},
			unknown: "UnknownUtxoFailure",
			arities: map[uint64]int{
				0: 1, 1: 1, 2: 2, 3: 2, 4: 0, 5: 2, 6: 2, 7: 2, 8: 2,
				9: 1, 10: 1, 11: 1, 12: 2, 13: 1, 14: 2, 15: 1, 16: 2,
				17: 1, 18: 2, 19: 0, 20: 2, 21: 1, 22: 1,
			},
		},
		{
			catalogue: conway.UtxosRuleCatalogue,
			decode: func(term cbor.Term) (error, error) {
				return conway.DecodeUtxosFailure(term)
			},
			unknown: "UnknownUtxosFailure",
			arities: map[uint64]int{0: 2, 1: 1},
		},
		{
			catalogue: conway.CertsRuleCatalogue,
			decode: func(term cbor.Term) (error, error) {
				return conway.DecodeCertsFailure(term)
			},
			unknown: "UnknownCertsFailure",
			arities: map[uint64]int{1: 1, 2: 1},
		},
		{
			catalogue: conway.CertRuleCatalogue,
			decode: func(term cbor.Term) (error, error) {
				return conway.DecodeCertFailure(term)
			},
			unknown: "UnknownCertFailure",
			arities: map[uint64]int{1: 1, 2: 1, 3: 1},
		},
		{
			catalogue: conway.DelegRuleCatalogue,
			decode: func(term cbor.Term) (error, error) {
				return conway.DecodeDelegFailure(term)
			},
			unknown: "UnknownDelegFailure",
			arities: map[uint64]int{
				1: 1, 2: 1, 3: 1, 4: 1, 5: 1, 6: 1,
			},
			byteFields: map[uint64]bool{6: true},
		},
		{
			catalogue: conway.GovCertRuleCatalogue,
			decode: func(term cbor.Term) (error, error) {
				return conway.DecodeGovCertFailure(term)
			},
			unknown: "UnknownGovCertFailure",
			arities: map[uint64]int{0: 1, 1: 1, 2: 2, 3: 1, 4: 2, 5: 1},
		},
		{
			catalogue: conway.GovRuleCatalogue,
			decode: func(term cbor.Term) (error, error) {
				return conway.DecodeGovFailure(term)
			},
			unknown: "UnknownGovFailure",
			arities: map[uint64]int{
				0: 1, 1: 1, 2: 2, 3: 2, 4: 2, 5: 1, 6: 1, 7: 1, 8: 1,
				9: 1, 10: 2, 11: 2, 12: 1, 13: 1, 14: 1, 15: 1, 16: 1,
				17: 1,
			},
		},
	}
	for _, levelDef := range levelTestDefs {
		require.Equal(
			t,
			len(levelDef.arities),
			len(levelDef.catalogue),
			"arity table out of sync for %s level",
			levelDef.unknown,
		)
		for tag, fieldCount := range levelDef.arities {
			name, ok := levelDef.catalogue.Name(tag)
			require.True(t, ok, "tag %d missing from catalogue", tag)
			term := makeSumTerm(tag, fieldCount, levelDef.byteFields[tag])
			failure, err := levelDef.decode(term)
			require.NoError(t, err, "constructor %s (tag %d)", name, tag)
			assert.NotContains(
				t,
				failure.Error(),
				levelDef.unknown,
				"constructor %s (tag %d) decoded as unknown",
				name,
				tag,
			)
		}
	}
}

func TestConcurrentDecode(t *testing.T) {
	defer goleak.VerifyNone(t)
	cborData, err := hex.DecodeString(testEnvelopeHex)
	require.NoError(t, err)
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				txErr, err := conway.NewTxValidationErrorFromCbor(cborData)
				if err != nil {
					t.Errorf("unexpected error: %s", err)
					return
				}
				if !strings.Contains(txErr.Error(), "DelegFailure") {
					t.Errorf("unexpected rendering: %s", txErr.Error())
					return
				}
			}
		}()
	}
	wg.Wait()
}
