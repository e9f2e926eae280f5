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

package conway

import (
	"fmt"
	"strings"

	"github.com/blinklabs-io/txrej/cbor"
	"github.com/blinklabs-io/txrej/ledger/common"
)

// TxValidationError is a decoded transaction rejection envelope: the
// envelope's context tag plus every failure it carries. It implements
// error so it can be returned directly from submission paths.
type TxValidationError struct {
	ContextTag uint64
	Failures   []LedgerPredFailure
}

func (e *TxValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("ConwayTxValidationError (ApplyTxError ([")
	for idx, failure := range e.Failures {
		sb.WriteString(failure.Error())
		if idx < (len(e.Failures) - 1) {
			sb.WriteString(", ")
		}
	}
	sb.WriteString("]))")
	return sb.String()
}

// NewTxValidationErrorFromCbor decodes a rejection envelope of the form
// [context_tag, [failure, ...]]. Decoding is all-or-nothing: if any
// failure in the list is malformed, the whole envelope fails.
func NewTxValidationErrorFromCbor(data []byte) (*TxValidationError, error) {
	term, _, err := cbor.DecodeTerm(data)
	if err != nil {
		return nil, common.NewCborError(err)
	}
	envelope, ok := term.(cbor.ArrayTerm)
	if !ok || len(envelope) != 2 {
		return nil, common.NewMalformedError(
			"envelope must be a two-element array",
		)
	}
	contextTag, ok := envelope[0].(cbor.UnsignedTerm)
	if !ok {
		return nil, common.NewMalformedError(
			"envelope context tag must be an unsigned integer",
		)
	}
	failureTerms, ok := envelope[1].(cbor.ArrayTerm)
	if !ok {
		return nil, common.NewMalformedError(
			"envelope failure list must be an array",
		)
	}
	failures := make([]LedgerPredFailure, 0, len(failureTerms))
	for idx, failureTerm := range failureTerms {
		failure, err := DecodeLedgerFailure(failureTerm)
		if err != nil {
			return nil, fmt.Errorf("failure %d: %w", idx, err)
		}
		failures = append(failures, failure)
	}
	return &TxValidationError{
		ContextTag: contextTag.Uint64(),
		Failures:   failures,
	}, nil
}

// DecodeLedgerFailures decodes a rejection envelope and returns just the
// failure list
func DecodeLedgerFailures(data []byte) ([]LedgerPredFailure, error) {
	newErr, err := NewTxValidationErrorFromCbor(data)
	if err != nil {
		return nil, err
	}
	return newErr.Failures, nil
}

func expectSum(term cbor.Term) (cbor.TaggedSum, error) {
	sum, ok := cbor.AsTaggedSum(term)
	if !ok {
		return cbor.TaggedSum{}, common.NewMalformedError(
			"expected a tagged sum",
		)
	}
	return sum, nil
}

func singleField(sum cbor.TaggedSum, constructor string) (cbor.Term, error) {
	return common.ExpectSingleField(
		sum.Fields,
		common.FieldCountContext(constructor, 1),
	)
}

func twoFields(
	sum cbor.TaggedSum,
	constructor string,
) (cbor.Term, cbor.Term, error) {
	return common.ExpectTwoFields(
		sum.Fields,
		common.FieldCountContext(constructor, 2),
	)
}

func noFields(sum cbor.TaggedSum, constructor string) error {
	return common.ExpectNoFields(
		sum.Fields,
		common.FieldCountContext(constructor, 0),
	)
}

// DecodeLedgerFailure decodes a single LEDGER rule failure. Unknown tags
// decode successfully as UnknownLedgerFailure, which keeps the decoder
// forward-compatible with constructors added in later node versions.
func DecodeLedgerFailure(term cbor.Term) (LedgerPredFailure, error) {
	sum, err := expectSum(term)
	if err != nil {
		return nil, err
	}
	name, known := LedgerRuleCatalogue.Name(sum.Tag)
	if !known {
		return &UnknownLedgerFailure{Sum: sum}, nil
	}
	switch sum.Tag {
	case LedgerFailureUtxowFailure:
		field, err := singleField(sum, name)
		if err != nil {
			return nil, err
		}
		inner, err := DecodeUtxowFailure(field)
		if err != nil {
			return nil, err
		}
		return &ConwayUtxowFailure{Err: inner}, nil
	case LedgerFailureCertsFailure:
		field, err := singleField(sum, name)
		if err != nil {
			return nil, err
		}
		inner, err := DecodeCertsFailure(field)
		if err != nil {
			return nil, err
		}
		return &ConwayCertsFailure{Err: inner}, nil
	case LedgerFailureGovFailure:
		field, err := singleField(sum, name)
		if err != nil {
			return nil, err
		}
		inner, err := DecodeGovFailure(field)
		if err != nil {
			return nil, err
		}
		return &ConwayGovFailure{Err: inner}, nil
	case LedgerFailureWdrlNotDelegatedToDRep:
		field, err := singleField(sum, name)
		if err != nil {
			return nil, err
		}
		return &ConwayWdrlNotDelegatedToDRep{KeyHashes: field}, nil
	case LedgerFailureTreasuryValueMismatch:
		supplied, expected, err := twoFields(sum, name)
		if err != nil {
			return nil, err
		}
		return &ConwayTreasuryValueMismatch{
			Supplied: supplied,
			Expected: expected,
		}, nil
	case LedgerFailureTxRefScriptsSizeTooBig:
		actual, maxSize, err := twoFields(sum, name)
		if err != nil {
			return nil, err
		}
		return &ConwayTxRefScriptsSizeTooBig{
			ActualSize: actual,
			MaxSize:    maxSize,
		}, nil
	case LedgerFailureMempoolFailure:
		field, err := singleField(sum, name)
		if err != nil {
			return nil, err
		}
		return &ConwayMempoolFailure{Message: field}, nil
	}
	return &UnknownLedgerFailure{Sum: sum}, nil
}

// DecodeUtxowFailure decodes a single UTXOW rule failure
func DecodeUtxowFailure(term cbor.Term) (UtxowPredFailure, error) {
	sum, err := expectSum(term)
	if err != nil {
		return nil, err
	}
	name, known := UtxowRuleCatalogue.Name(sum.Tag)
	if !known {
		return &UnknownUtxowFailure{Sum: sum}, nil
	}
	switch sum.Tag {
	case UtxowFailureUtxoFailure:
		field, err := singleField(sum, name)
		if err != nil {
			return nil, err
		}
		inner, err := DecodeUtxoFailure(field)
		if err != nil {
			return nil, err
		}
		return &UtxoFailure{Err: inner}, nil
	case UtxowFailureInvalidWitnesses:
		field, err := singleField(sum, name)
		if err != nil {
			return nil, err
		}
		return &InvalidWitnessesUTXOW{Witnesses: field}, nil
	case UtxowFailureMissingVKeyWitnesses:
		field, err := singleField(sum, name)
		if err != nil {
			return nil, err
		}
		return &MissingVKeyWitnessesUTXOW{KeyHashes: field}, nil
	case UtxowFailureMissingScriptWitnesses:
		field, err := singleField(sum, name)
		if err != nil {
			return nil, err
		}
		return &MissingScriptWitnessesUTXOW{ScriptHashes: field}, nil
	case UtxowFailureScriptWitnessNotValidating:
		field, err := singleField(sum, name)
		if err != nil {
			return nil, err
		}
		return &ScriptWitnessNotValidatingUTXOW{ScriptHashes: field}, nil
	case UtxowFailureMissingTxBodyMetadataHash:
		field, err := singleField(sum, name)
		if err != nil {
			return nil, err
		}
		hashBytes, err := common.UnwrapBytes(
			field,
			"MissingTxBodyMetadataHash hash must be a byte string",
		)
		if err != nil {
			return nil, err
		}
		return &MissingTxBodyMetadataHash{
			Hash: common.NewBlake2b256(hashBytes),
		}, nil
	case UtxowFailureMissingTxMetadata:
		field, err := singleField(sum, name)
		if err != nil {
			return nil, err
		}
		hashBytes, err := common.UnwrapBytes(
			field,
			"MissingTxMetadata hash must be a byte string",
		)
		if err != nil {
			return nil, err
		}
		return &MissingTxMetadata{
			Hash: common.NewBlake2b256(hashBytes),
		}, nil
	case UtxowFailureConflictingMetadataHash:
		supplied, expected, err := twoFields(sum, name)
		if err != nil {
			return nil, err
		}
		return &ConflictingMetadataHash{
			Supplied: supplied,
			Expected: expected,
		}, nil
	case UtxowFailureInvalidMetadata:
		if err := noFields(sum, name); err != nil {
			return nil, err
		}
		return &InvalidMetadata{}, nil
	case UtxowFailureExtraneousScriptWitnesses:
		field, err := singleField(sum, name)
		if err != nil {
			return nil, err
		}
		return &ExtraneousScriptWitnessesUTXOW{ScriptHashes: field}, nil
	case UtxowFailureMissingRedeemers:
		field, err := singleField(sum, name)
		if err != nil {
			return nil, err
		}
		return &MissingRedeemers{Redeemers: field}, nil
	case UtxowFailureMissingRequiredDatums:
		missing, provided, err := twoFields(sum, name)
		if err != nil {
			return nil, err
		}
		return &MissingRequiredDatums{
			Missing:  missing,
			Provided: provided,
		}, nil
	case UtxowFailureNotAllowedSupplementalDatums:
		disallowed, acceptable, err := twoFields(sum, name)
		if err != nil {
			return nil, err
		}
		return &NotAllowedSupplementalDatums{
			Disallowed: disallowed,
			Acceptable: acceptable,
		}, nil
	case UtxowFailurePPViewHashesDontMatch:
		supplied, expected, err := twoFields(sum, name)
		if err != nil {
			return nil, err
		}
		return &PPViewHashesDontMatch{
			Supplied: supplied,
			Expected: expected,
		}, nil
	case UtxowFailureUnspendableUTxONoDatumHash:
		field, err := singleField(sum, name)
		if err != nil {
			return nil, err
		}
		return &UnspendableUTxONoDatumHash{Inputs: field}, nil
	case UtxowFailureExtraRedeemers:
		field, err := singleField(sum, name)
		if err != nil {
			return nil, err
		}
		return &ExtraRedeemers{Redeemers: field}, nil
	case UtxowFailureMalformedScriptWitnesses:
		field, err := singleField(sum, name)
		if err != nil {
			return nil, err
		}
		return &MalformedScriptWitnesses{ScriptHashes: field}, nil
	case UtxowFailureMalformedReferenceScripts:
		field, err := singleField(sum, name)
		if err != nil {
			return nil, err
		}
		return &MalformedReferenceScripts{ScriptHashes: field}, nil
	}
	return &UnknownUtxowFailure{Sum: sum}, nil
}

// DecodeUtxoFailure decodes a single UTXO rule failure
func DecodeUtxoFailure(term cbor.Term) (UtxoPredFailure, error) {
	sum, err := expectSum(term)
	if err != nil {
		return nil, err
	}
	name, known := UtxoRuleCatalogue.Name(sum.Tag)
	if !known {
		return &UnknownUtxoFailure{Sum: sum}, nil
	}
	switch sum.Tag {
	case UtxoFailureUtxosFailure:
		field, err := singleField(sum, name)
		if err != nil {
			return nil, err
		}
		inner, err := DecodeUtxosFailure(field)
		if err != nil {
			return nil, err
		}
		return &UtxosFailure{Err: inner}, nil
	case UtxoFailureBadInputsUtxo:
		field, err := singleField(sum, name)
		if err != nil {
			return nil, err
		}
		return &BadInputsUtxo{Inputs: field}, nil
	case UtxoFailureOutsideValidityIntervalUtxo:
		interval, slot, err := twoFields(sum, name)
		if err != nil {
			return nil, err
		}
		return &OutsideValidityIntervalUtxo{
			ValidityInterval: interval,
			Slot:             slot,
		}, nil
	case UtxoFailureMaxTxSizeUtxo:
		actual, maxSize, err := twoFields(sum, name)
		if err != nil {
			return nil, err
		}
		return &MaxTxSizeUtxo{ActualSize: actual, MaxSize: maxSize}, nil
	case UtxoFailureInputSetEmptyUtxo:
		if err := noFields(sum, name); err != nil {
			return nil, err
		}
		return &InputSetEmptyUtxo{}, nil
	case UtxoFailureFeeTooSmallUtxo:
		minimum, supplied, err := twoFields(sum, name)
		if err != nil {
			return nil, err
		}
		return &FeeTooSmallUtxo{
			MinimumFee:  minimum,
			SuppliedFee: supplied,
		}, nil
	case UtxoFailureValueNotConservedUtxo:
		consumed, produced, err := twoFields(sum, name)
		if err != nil {
			return nil, err
		}
		return &ValueNotConservedUtxo{
			Consumed: consumed,
			Produced: produced,
		}, nil
	case UtxoFailureWrongNetwork:
		networkId, addresses, err := twoFields(sum, name)
		if err != nil {
			return nil, err
		}
		return &WrongNetwork{
			ExpectedNetworkId: networkId,
			Addresses:         addresses,
		}, nil
	case UtxoFailureWrongNetworkWithdrawal:
		networkId, accounts, err := twoFields(sum, name)
		if err != nil {
			return nil, err
		}
		return &WrongNetworkWithdrawal{
			ExpectedNetworkId: networkId,
			RewardAccounts:    accounts,
		}, nil
	case UtxoFailureOutputTooSmallUtxo:
		field, err := singleField(sum, name)
		if err != nil {
			return nil, err
		}
		return &OutputTooSmallUtxo{Outputs: field}, nil
	case UtxoFailureOutputBootAddrAttrsTooBig:
		field, err := singleField(sum, name)
		if err != nil {
			return nil, err
		}
		return &OutputBootAddrAttrsTooBig{Outputs: field}, nil
	case UtxoFailureOutputTooBigUtxo:
		field, err := singleField(sum, name)
		if err != nil {
			return nil, err
		}
		return &OutputTooBigUtxo{Outputs: field}, nil
	case UtxoFailureInsufficientCollateral:
		balance, required, err := twoFields(sum, name)
		if err != nil {
			return nil, err
		}
		return &InsufficientCollateral{
			BalanceComputed:    balance,
			RequiredCollateral: required,
		}, nil
	case UtxoFailureScriptsNotPaidUtxo:
		field, err := singleField(sum, name)
		if err != nil {
			return nil, err
		}
		return &ScriptsNotPaidUtxo{Utxos: field}, nil
	case UtxoFailureExUnitsTooBigUtxo:
		actual, maxUnits, err := twoFields(sum, name)
		if err != nil {
			return nil, err
		}
		return &ExUnitsTooBigUtxo{
			ActualUnits: actual,
			MaxUnits:    maxUnits,
		}, nil
	case UtxoFailureCollateralContainsNonADA:
		field, err := singleField(sum, name)
		if err != nil {
			return nil, err
		}
		return &CollateralContainsNonADA{Value: field}, nil
	case UtxoFailureWrongNetworkInTxBody:
		actual, declared, err := twoFields(sum, name)
		if err != nil {
			return nil, err
		}
		return &WrongNetworkInTxBody{
			ActualNetworkId: actual,
			TxBodyNetworkId: declared,
		}, nil
	case UtxoFailureOutsideForecast:
		field, err := singleField(sum, name)
		if err != nil {
			return nil, err
		}
		return &OutsideForecast{Slot: field}, nil
	case UtxoFailureTooManyCollateralInputs:
		actual, maxInputs, err := twoFields(sum, name)
		if err != nil {
			return nil, err
		}
		return &TooManyCollateralInputs{
			ActualInputs: actual,
			MaxInputs:    maxInputs,
		}, nil
	case UtxoFailureNoCollateralInputs:
		if err := noFields(sum, name); err != nil {
			return nil, err
		}
		return &NoCollateralInputs{}, nil
	case UtxoFailureIncorrectTotalCollateralField:
		balance, declared, err := twoFields(sum, name)
		if err != nil {
			return nil, err
		}
		return &IncorrectTotalCollateralField{
			BalanceComputed: balance,
			DeclaredTotal:   declared,
		}, nil
	case UtxoFailureBabbageOutputTooSmallUtxo:
		field, err := singleField(sum, name)
		if err != nil {
			return nil, err
		}
		return &BabbageOutputTooSmallUtxo{Outputs: field}, nil
	case UtxoFailureBabbageNonDisjointRefInputs:
		field, err := singleField(sum, name)
		if err != nil {
			return nil, err
		}
		return &BabbageNonDisjointRefInputs{Inputs: field}, nil
	}
	return &UnknownUtxoFailure{Sum: sum}, nil
}

// DecodeUtxosFailure decodes a single UTXOS rule failure
func DecodeUtxosFailure(term cbor.Term) (UtxosPredFailure, error) {
	sum, err := expectSum(term)
	if err != nil {
		return nil, err
	}
	name, known := UtxosRuleCatalogue.Name(sum.Tag)
	if !known {
		return &UnknownUtxosFailure{Sum: sum}, nil
	}
	switch sum.Tag {
	case UtxosFailureValidationTagMismatch:
		isValid, description, err := twoFields(sum, name)
		if err != nil {
			return nil, err
		}
		return &ValidationTagMismatch{
			IsValid:     isValid,
			Description: description,
		}, nil
	case UtxosFailureCollectErrors:
		field, err := singleField(sum, name)
		if err != nil {
			return nil, err
		}
		return &CollectErrors{Errors: field}, nil
	}
	return &UnknownUtxosFailure{Sum: sum}, nil
}

// DecodeCertsFailure decodes a single CERTS rule failure
func DecodeCertsFailure(term cbor.Term) (CertsPredFailure, error) {
	sum, err := expectSum(term)
	if err != nil {
		return nil, err
	}
	name, known := CertsRuleCatalogue.Name(sum.Tag)
	if !known {
		return &UnknownCertsFailure{Sum: sum}, nil
	}
	switch sum.Tag {
	case CertsFailureWithdrawalsNotInRewards:
		field, err := singleField(sum, name)
		if err != nil {
			return nil, err
		}
		return &WithdrawalsNotInRewards{Withdrawals: field}, nil
	case CertsFailureCertFailure:
		field, err := singleField(sum, name)
		if err != nil {
			return nil, err
		}
		inner, err := DecodeCertFailure(field)
		if err != nil {
			return nil, err
		}
		return &CertFailure{Err: inner}, nil
	}
	return &UnknownCertsFailure{Sum: sum}, nil
}

// DecodeCertFailure decodes a single CERT rule failure
func DecodeCertFailure(term cbor.Term) (CertPredFailure, error) {
	sum, err := expectSum(term)
	if err != nil {
		return nil, err
	}
	name, known := CertRuleCatalogue.Name(sum.Tag)
	if !known {
		return &UnknownCertFailure{Sum: sum}, nil
	}
	switch sum.Tag {
	case CertFailureDelegFailure:
		field, err := singleField(sum, name)
		if err != nil {
			return nil, err
		}
		inner, err := DecodeDelegFailure(field)
		if err != nil {
			return nil, err
		}
		return &DelegFailure{Err: inner}, nil
	case CertFailurePoolFailure:
		field, err := singleField(sum, name)
		if err != nil {
			return nil, err
		}
		return &PoolFailure{Failure: field}, nil
	case CertFailureGovCertFailure:
		field, err := singleField(sum, name)
		if err != nil {
			return nil, err
		}
		inner, err := DecodeGovCertFailure(field)
		if err != nil {
			return nil, err
		}
		return &GovCertFailure{Err: inner}, nil
	}
	return &UnknownCertFailure{Sum: sum}, nil
}

// DecodeDelegFailure decodes a single DELEG rule failure
func DecodeDelegFailure(term cbor.Term) (DelegPredFailure, error) {
	sum, err := expectSum(term)
	if err != nil {
		return nil, err
	}
	name, known := DelegRuleCatalogue.Name(sum.Tag)
	if !known {
		return &UnknownDelegFailure{Sum: sum}, nil
	}
	switch sum.Tag {
	case DelegFailureIncorrectDeposit:
		field, err := singleField(sum, name)
		if err != nil {
			return nil, err
		}
		return &IncorrectDepositDELEG{Deposit: field}, nil
	case DelegFailureStakeKeyRegistered:
		field, err := singleField(sum, name)
		if err != nil {
			return nil, err
		}
		return &StakeKeyRegisteredDELEG{Credential: field}, nil
	case DelegFailureStakeKeyNotRegistered:
		field, err := singleField(sum, name)
		if err != nil {
			return nil, err
		}
		return &StakeKeyNotRegisteredDELEG{Credential: field}, nil
	case DelegFailureStakeKeyHasNonZeroRewardAccountBalance:
		field, err := singleField(sum, name)
		if err != nil {
			return nil, err
		}
		return &StakeKeyHasNonZeroRewardAccountBalanceDELEG{
			Balance: field,
		}, nil
	case DelegFailureDelegateeDRepNotRegistered:
		field, err := singleField(sum, name)
		if err != nil {
			return nil, err
		}
		return &DelegateeDRepNotRegisteredDELEG{DRep: field}, nil
	case DelegFailureDelegateeStakePoolNotRegistered:
		field, err := singleField(sum, name)
		if err != nil {
			return nil, err
		}
		hashBytes, err := common.UnwrapBytes(
			field,
			"DelegateeStakePoolNotRegisteredDELEG pool key hash must be a byte string",
		)
		if err != nil {
			return nil, err
		}
		return &DelegateeStakePoolNotRegisteredDELEG{
			PoolKeyHash: common.NewBlake2b224(hashBytes),
		}, nil
	}
	return &UnknownDelegFailure{Sum: sum}, nil
}

// DecodeGovCertFailure decodes a single GOVCERT rule failure
func DecodeGovCertFailure(term cbor.Term) (GovCertPredFailure, error) {
	sum, err := expectSum(term)
	if err != nil {
		return nil, err
	}
	name, known := GovCertRuleCatalogue.Name(sum.Tag)
	if !known {
		return &UnknownGovCertFailure{Sum: sum}, nil
	}
	switch sum.Tag {
	case GovCertFailureDRepAlreadyRegistered:
		field, err := singleField(sum, name)
		if err != nil {
			return nil, err
		}
		return &ConwayDRepAlreadyRegistered{Credential: field}, nil
	case GovCertFailureDRepNotRegistered:
		field, err := singleField(sum, name)
		if err != nil {
			return nil, err
		}
		return &ConwayDRepNotRegistered{Credential: field}, nil
	case GovCertFailureDRepIncorrectDeposit:
		supplied, expected, err := twoFields(sum, name)
		if err != nil {
			return nil, err
		}
		return &ConwayDRepIncorrectDeposit{
			Supplied: supplied,
			Expected: expected,
		}, nil
	case GovCertFailureCommitteeHasPreviouslyResigned:
		field, err := singleField(sum, name)
		if err != nil {
			return nil, err
		}
		return &ConwayCommitteeHasPreviouslyResigned{Credential: field}, nil
	case GovCertFailureDRepIncorrectRefund:
		supplied, expected, err := twoFields(sum, name)
		if err != nil {
			return nil, err
		}
		return &ConwayDRepIncorrectRefund{
			Supplied: supplied,
			Expected: expected,
		}, nil
	case GovCertFailureCommitteeIsUnknown:
		field, err := singleField(sum, name)
		if err != nil {
			return nil, err
		}
		return &ConwayCommitteeIsUnknown{Credential: field}, nil
	}
	return &UnknownGovCertFailure{Sum: sum}, nil
}

// DecodeGovFailure decodes a single GOV rule failure
func DecodeGovFailure(term cbor.Term) (GovPredFailure, error) {
	sum, err := expectSum(term)
	if err != nil {
		return nil, err
	}
	name, known := GovRuleCatalogue.Name(sum.Tag)
	if !known {
		return &UnknownGovFailure{Sum: sum}, nil
	}
	switch sum.Tag {
	case GovFailureGovActionsDoNotExist:
		field, err := singleField(sum, name)
		if err != nil {
			return nil, err
		}
		return &GovActionsDoNotExist{GovActionIds: field}, nil
	case GovFailureMalformedProposal:
		field, err := singleField(sum, name)
		if err != nil {
			return nil, err
		}
		return &MalformedProposal{GovAction: field}, nil
	case GovFailureProposalProcedureNetworkIdMismatch:
		account, networkId, err := twoFields(sum, name)
		if err != nil {
			return nil, err
		}
		return &ProposalProcedureNetworkIdMismatch{
			RewardAccount:     account,
			ExpectedNetworkId: networkId,
		}, nil
	case GovFailureTreasuryWithdrawalsNetworkIdMismatch:
		accounts, networkId, err := twoFields(sum, name)
		if err != nil {
			return nil, err
		}
		return &TreasuryWithdrawalsNetworkIdMismatch{
			RewardAccounts:    accounts,
			ExpectedNetworkId: networkId,
		}, nil
	case GovFailureProposalDepositIncorrect:
		supplied, expected, err := twoFields(sum, name)
		if err != nil {
			return nil, err
		}
		return &ProposalDepositIncorrect{
			Supplied: supplied,
			Expected: expected,
		}, nil
	case GovFailureDisallowedVoters:
		field, err := singleField(sum, name)
		if err != nil {
			return nil, err
		}
		return &DisallowedVoters{Voters: field}, nil
	case GovFailureConflictingCommitteeUpdate:
		field, err := singleField(sum, name)
		if err != nil {
			return nil, err
		}
		return &ConflictingCommitteeUpdate{Members: field}, nil
	case GovFailureExpirationEpochTooSmall:
		field, err := singleField(sum, name)
		if err != nil {
			return nil, err
		}
		return &ExpirationEpochTooSmall{Expirations: field}, nil
	case GovFailureInvalidPrevGovActionId:
		field, err := singleField(sum, name)
		if err != nil {
			return nil, err
		}
		return &InvalidPrevGovActionId{Proposal: field}, nil
	case GovFailureVotingOnExpiredGovAction:
		field, err := singleField(sum, name)
		if err != nil {
			return nil, err
		}
		return &VotingOnExpiredGovAction{Votes: field}, nil
	case GovFailureProposalCantFollow:
		prev, version, err := twoFields(sum, name)
		if err != nil {
			return nil, err
		}
		return &ProposalCantFollow{
			PrevGovActionId: prev,
			ProtocolVersion: version,
		}, nil
	case GovFailureInvalidPolicyHash:
		supplied, expected, err := twoFields(sum, name)
		if err != nil {
			return nil, err
		}
		return &InvalidPolicyHash{
			SuppliedHash: supplied,
			ExpectedHash: expected,
		}, nil
	case GovFailureDisallowedProposalDuringBootstrap:
		field, err := singleField(sum, name)
		if err != nil {
			return nil, err
		}
		return &DisallowedProposalDuringBootstrap{Proposal: field}, nil
	case GovFailureDisallowedVotesDuringBootstrap:
		field, err := singleField(sum, name)
		if err != nil {
			return nil, err
		}
		return &DisallowedVotesDuringBootstrap{Votes: field}, nil
	case GovFailureVotersDoNotExist:
		field, err := singleField(sum, name)
		if err != nil {
			return nil, err
		}
		return &VotersDoNotExist{Voters: field}, nil
	case GovFailureZeroTreasuryWithdrawals:
		field, err := singleField(sum, name)
		if err != nil {
			return nil, err
		}
		return &ZeroTreasuryWithdrawals{GovAction: field}, nil
	case GovFailureProposalReturnAccountDoesNotExist:
		field, err := singleField(sum, name)
		if err != nil {
			return nil, err
		}
		return &ProposalReturnAccountDoesNotExist{ReturnAccount: field}, nil
	case GovFailureTreasuryWithdrawalReturnAccountsDoNotExist:
		field, err := singleField(sum, name)
		if err != nil {
			return nil, err
		}
		return &TreasuryWithdrawalReturnAccountsDoNotExist{
			ReturnAccounts: field,
		}, nil
	}
	return &UnknownGovFailure{Sum: sum}, nil
}
