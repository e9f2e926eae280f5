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

	"github.com/blinklabs-io/txrej/cbor"
	"github.com/blinklabs-io/txrej/ledger/common"
)

// LedgerPredFailure is a failure from the LEDGER rule, the top level of
// the predicate failure hierarchy
type LedgerPredFailure interface {
	error
	isLedgerPredFailure()
}

// UtxowPredFailure is a failure from the UTXOW rule
type UtxowPredFailure interface {
	error
	isUtxowPredFailure()
}

// UtxoPredFailure is a failure from the UTXO rule
type UtxoPredFailure interface {
	error
	isUtxoPredFailure()
}

// UtxosPredFailure is a failure from the UTXOS rule
type UtxosPredFailure interface {
	error
	isUtxosPredFailure()
}

// CertsPredFailure is a failure from the CERTS rule
type CertsPredFailure interface {
	error
	isCertsPredFailure()
}

// CertPredFailure is a failure from the CERT rule
type CertPredFailure interface {
	error
	isCertPredFailure()
}

// DelegPredFailure is a failure from the DELEG rule
type DelegPredFailure interface {
	error
	isDelegPredFailure()
}

// GovCertPredFailure is a failure from the GOVCERT rule
type GovCertPredFailure interface {
	error
	isGovCertPredFailure()
}

// GovPredFailure is a failure from the GOV rule
type GovPredFailure interface {
	error
	isGovPredFailure()
}

//
// LEDGER rule failures
//

type ConwayUtxowFailure struct {
	Err UtxowPredFailure
}

func (*ConwayUtxowFailure) isLedgerPredFailure() {}

func (e *ConwayUtxowFailure) Error() string {
	return fmt.Sprintf("ConwayUtxowFailure (%s)", e.Err)
}

func (e *ConwayUtxowFailure) Unwrap() error {
	return e.Err
}

type ConwayCertsFailure struct {
	Err CertsPredFailure
}

func (*ConwayCertsFailure) isLedgerPredFailure() {}

func (e *ConwayCertsFailure) Error() string {
	return fmt.Sprintf("ConwayCertsFailure (%s)", e.Err)
}

func (e *ConwayCertsFailure) Unwrap() error {
	return e.Err
}

type ConwayGovFailure struct {
	Err GovPredFailure
}

func (*ConwayGovFailure) isLedgerPredFailure() {}

func (e *ConwayGovFailure) Error() string {
	return fmt.Sprintf("ConwayGovFailure (%s)", e.Err)
}

func (e *ConwayGovFailure) Unwrap() error {
	return e.Err
}

type ConwayWdrlNotDelegatedToDRep struct {
	KeyHashes cbor.Term
}

func (*ConwayWdrlNotDelegatedToDRep) isLedgerPredFailure() {}

func (e *ConwayWdrlNotDelegatedToDRep) Error() string {
	return fmt.Sprintf(
		"ConwayWdrlNotDelegatedToDRep (%s)",
		cbor.DumpTermStructure(e.KeyHashes),
	)
}

type ConwayTreasuryValueMismatch struct {
	Supplied cbor.Term
	Expected cbor.Term
}

func (*ConwayTreasuryValueMismatch) isLedgerPredFailure() {}

func (e *ConwayTreasuryValueMismatch) Error() string {
	return fmt.Sprintf(
		"ConwayTreasuryValueMismatch (Supplied %s, Expected %s)",
		cbor.DumpTermStructure(e.Supplied),
		cbor.DumpTermStructure(e.Expected),
	)
}

type ConwayTxRefScriptsSizeTooBig struct {
	ActualSize cbor.Term
	MaxSize    cbor.Term
}

func (*ConwayTxRefScriptsSizeTooBig) isLedgerPredFailure() {}

func (e *ConwayTxRefScriptsSizeTooBig) Error() string {
	return fmt.Sprintf(
		"ConwayTxRefScriptsSizeTooBig (ActualSize %s, MaxSize %s)",
		cbor.DumpTermStructure(e.ActualSize),
		cbor.DumpTermStructure(e.MaxSize),
	)
}

type ConwayMempoolFailure struct {
	Message cbor.Term
}

func (*ConwayMempoolFailure) isLedgerPredFailure() {}

func (e *ConwayMempoolFailure) Error() string {
	return fmt.Sprintf(
		"ConwayMempoolFailure (%s)",
		cbor.DumpTermStructure(e.Message),
	)
}

// UnknownLedgerFailure holds a LEDGER rule failure whose tag isn't in
// the catalogue. The raw tagged sum is retained for callers that want
// to inspect it.
type UnknownLedgerFailure struct {
	Sum cbor.TaggedSum
}

func (*UnknownLedgerFailure) isLedgerPredFailure() {}

func (e *UnknownLedgerFailure) Error() string {
	return fmt.Sprintf("UnknownLedgerFailure (%s)", e.Sum.String())
}

//
// UTXOW rule failures
//

type UtxoFailure struct {
	Err UtxoPredFailure
}

func (*UtxoFailure) isUtxowPredFailure() {}

func (e *UtxoFailure) Error() string {
	return fmt.Sprintf("UtxoFailure (%s)", e.Err)
}

func (e *UtxoFailure) Unwrap() error {
	return e.Err
}

type InvalidWitnessesUTXOW struct {
	Witnesses cbor.Term
}

func (*InvalidWitnessesUTXOW) isUtxowPredFailure() {}

func (e *InvalidWitnessesUTXOW) Error() string {
	return fmt.Sprintf(
		"InvalidWitnessesUTXOW (%s)",
		cbor.DumpTermStructure(e.Witnesses),
	)
}

type MissingVKeyWitnessesUTXOW struct {
	KeyHashes cbor.Term
}

func (*MissingVKeyWitnessesUTXOW) isUtxowPredFailure() {}

func (e *MissingVKeyWitnessesUTXOW) Error() string {
	return fmt.Sprintf(
		"MissingVKeyWitnessesUTXOW (%s)",
		cbor.DumpTermStructure(e.KeyHashes),
	)
}

type MissingScriptWitnessesUTXOW struct {
	ScriptHashes cbor.Term
}

func (*MissingScriptWitnessesUTXOW) isUtxowPredFailure() {}

func (e *MissingScriptWitnessesUTXOW) Error() string {
	return fmt.Sprintf(
		"MissingScriptWitnessesUTXOW (%s)",
		cbor.DumpTermStructure(e.ScriptHashes),
	)
}

type ScriptWitnessNotValidatingUTXOW struct {
	ScriptHashes cbor.Term
}

func (*ScriptWitnessNotValidatingUTXOW) isUtxowPredFailure() {}

func (e *ScriptWitnessNotValidatingUTXOW) Error() string {
	return fmt.Sprintf(
		"ScriptWitnessNotValidatingUTXOW (%s)",
		cbor.DumpTermStructure(e.ScriptHashes),
	)
}

type MissingTxBodyMetadataHash struct {
	Hash common.MetadataHash
}

func (*MissingTxBodyMetadataHash) isUtxowPredFailure() {}

func (e *MissingTxBodyMetadataHash) Error() string {
	return fmt.Sprintf("MissingTxBodyMetadataHash (%s)", e.Hash)
}

type MissingTxMetadata struct {
	Hash common.MetadataHash
}

func (*MissingTxMetadata) isUtxowPredFailure() {}

func (e *MissingTxMetadata) Error() string {
	return fmt.Sprintf("MissingTxMetadata (%s)", e.Hash)
}

type ConflictingMetadataHash struct {
	Supplied cbor.Term
	Expected cbor.Term
}

func (*ConflictingMetadataHash) isUtxowPredFailure() {}

func (e *ConflictingMetadataHash) Error() string {
	return fmt.Sprintf(
		"ConflictingMetadataHash (Supplied %s, Expected %s)",
		cbor.DumpTermStructure(e.Supplied),
		cbor.DumpTermStructure(e.Expected),
	)
}

type InvalidMetadata struct{}

func (*InvalidMetadata) isUtxowPredFailure() {}

func (e *InvalidMetadata) Error() string {
	return "InvalidMetadata"
}

type ExtraneousScriptWitnessesUTXOW struct {
	ScriptHashes cbor.Term
}

func (*ExtraneousScriptWitnessesUTXOW) isUtxowPredFailure() {}

func (e *ExtraneousScriptWitnessesUTXOW) Error() string {
	return fmt.Sprintf(
		"ExtraneousScriptWitnessesUTXOW (%s)",
		cbor.DumpTermStructure(e.ScriptHashes),
	)
}

type MissingRedeemers struct {
	Redeemers cbor.Term
}

func (*MissingRedeemers) isUtxowPredFailure() {}

func (e *MissingRedeemers) Error() string {
	return fmt.Sprintf(
		"MissingRedeemers (%s)",
		cbor.DumpTermStructure(e.Redeemers),
	)
}

type MissingRequiredDatums struct {
	Missing  cbor.Term
	Provided cbor.Term
}

func (*MissingRequiredDatums) isUtxowPredFailure() {}

func (e *MissingRequiredDatums) Error() string {
	return fmt.Sprintf(
		"MissingRequiredDatums (Missing %s, Provided %s)",
		cbor.DumpTermStructure(e.Missing),
		cbor.DumpTermStructure(e.Provided),
	)
}

type NotAllowedSupplementalDatums struct {
	Disallowed cbor.Term
	Acceptable cbor.Term
}

func (*NotAllowedSupplementalDatums) isUtxowPredFailure() {}

func (e *NotAllowedSupplementalDatums) Error() string {
	return fmt.Sprintf(
		"NotAllowedSupplementalDatums (Disallowed %s, Acceptable %s)",
		cbor.DumpTermStructure(e.Disallowed),
		cbor.DumpTermStructure(e.Acceptable),
	)
}

type PPViewHashesDontMatch struct {
	Supplied cbor.Term
	Expected cbor.Term
}

func (*PPViewHashesDontMatch) isUtxowPredFailure() {}

func (e *PPViewHashesDontMatch) Error() string {
	return fmt.Sprintf(
		"PPViewHashesDontMatch (Supplied %s, Expected %s)",
		cbor.DumpTermStructure(e.Supplied),
		cbor.DumpTermStructure(e.Expected),
	)
}

type UnspendableUTxONoDatumHash struct {
	Inputs cbor.Term
}

func (*UnspendableUTxONoDatumHash) isUtxowPredFailure() {}

func (e *UnspendableUTxONoDatumHash) Error() string {
	return fmt.Sprintf(
		"UnspendableUTxONoDatumHash (%s)",
		cbor.DumpTermStructure(e.Inputs),
	)
}

type ExtraRedeemers struct {
	Redeemers cbor.Term
}

func (*ExtraRedeemers) isUtxowPredFailure() {}

func (e *ExtraRedeemers) Error() string {
	return fmt.Sprintf(
		"ExtraRedeemers (%s)",
		cbor.DumpTermStructure(e.Redeemers),
	)
}

type MalformedScriptWitnesses struct {
	ScriptHashes cbor.Term
}

func (*MalformedScriptWitnesses) isUtxowPredFailure() {}

func (e *MalformedScriptWitnesses) Error() string {
	return fmt.Sprintf(
		"MalformedScriptWitnesses (%s)",
		cbor.DumpTermStructure(e.ScriptHashes),
	)
}

type MalformedReferenceScripts struct {
	ScriptHashes cbor.Term
}

func (*MalformedReferenceScripts) isUtxowPredFailure() {}

func (e *MalformedReferenceScripts) Error() string {
	return fmt.Sprintf(
		"MalformedReferenceScripts (%s)",
		cbor.DumpTermStructure(e.ScriptHashes),
	)
}

type UnknownUtxowFailure struct {
	Sum cbor.TaggedSum
}

func (*UnknownUtxowFailure) isUtxowPredFailure() {}

func (e *UnknownUtxowFailure) Error() string {
	return fmt.Sprintf("UnknownUtxowFailure (%s)", e.Sum.String())
}

//
// UTXO rule failures
//

type UtxosFailure struct {
	Err UtxosPredFailure
}

func (*UtxosFailure) isUtxoPredFailure() {}

func (e *UtxosFailure) Error() string {
	return fmt.Sprintf("UtxosFailure (%s)", e.Err)
}

func (e *UtxosFailure) Unwrap() error {
	return e.Err
}

type BadInputsUtxo struct {
	Inputs cbor.Term
}

func (*BadInputsUtxo) isUtxoPredFailure() {}

func (e *BadInputsUtxo) Error() string {
	return fmt.Sprintf("BadInputsUtxo (%s)", cbor.DumpTermStructure(e.Inputs))
}

type OutsideValidityIntervalUtxo struct {
	ValidityInterval cbor.Term
	Slot             cbor.Term
}

func (*OutsideValidityIntervalUtxo) isUtxoPredFailure() {}

func (e *OutsideValidityIntervalUtxo) Error() string {
	return fmt.Sprintf(
		"OutsideValidityIntervalUtxo (ValidityInterval %s, Slot %s)",
		cbor.DumpTermStructure(e.ValidityInterval),
		cbor.DumpTermStructure(e.Slot),
	)
}

type MaxTxSizeUtxo struct {
	ActualSize cbor.Term
	MaxSize    cbor.Term
}

func (*MaxTxSizeUtxo) isUtxoPredFailure() {}

func (e *MaxTxSizeUtxo) Error() string {
	return fmt.Sprintf(
		"MaxTxSizeUtxo (ActualSize %s, MaxSize %s)",
		cbor.DumpTermStructure(e.ActualSize),
		cbor.DumpTermStructure(e.MaxSize),
	)
}

type InputSetEmptyUtxo struct{}

func (*InputSetEmptyUtxo) isUtxoPredFailure() {}

func (e *InputSetEmptyUtxo) Error() string {
	return "InputSetEmptyUtxo"
}

type FeeTooSmallUtxo struct {
	MinimumFee  cbor.Term
	SuppliedFee cbor.Term
}

func (*FeeTooSmallUtxo) isUtxoPredFailure() {}

func (e *FeeTooSmallUtxo) Error() string {
	return fmt.Sprintf(
		"FeeTooSmallUtxo (MinimumFee %s, SuppliedFee %s)",
		cbor.DumpTermStructure(e.MinimumFee),
		cbor.DumpTermStructure(e.SuppliedFee),
	)
}

type ValueNotConservedUtxo struct {
	Consumed cbor.Term
	Produced cbor.Term
}

func (*ValueNotConservedUtxo) isUtxoPredFailure() {}

func (e *ValueNotConservedUtxo) Error() string {
	return fmt.Sprintf(
		"ValueNotConservedUtxo (Consumed %s, Produced %s)",
		cbor.DumpTermStructure(e.Consumed),
		cbor.DumpTermStructure(e.Produced),
	)
}

type WrongNetwork struct {
	ExpectedNetworkId cbor.Term
	Addresses         cbor.Term
}

func (*WrongNetwork) isUtxoPredFailure() {}

func (e *WrongNetwork) Error() string {
	return fmt.Sprintf(
		"WrongNetwork (ExpectedNetworkId %s, Addresses %s)",
		cbor.DumpTermStructure(e.ExpectedNetworkId),
		cbor.DumpTermStructure(e.Addresses),
	)
}

type WrongNetworkWithdrawal struct {
	ExpectedNetworkId cbor.Term
	RewardAccounts    cbor.Term
}

func (*WrongNetworkWithdrawal) isUtxoPredFailure() {}

func (e *WrongNetworkWithdrawal) Error() string {
	return fmt.Sprintf(
		"WrongNetworkWithdrawal (ExpectedNetworkId %s, RewardAccounts %s)",
		cbor.DumpTermStructure(e.ExpectedNetworkId),
		cbor.DumpTermStructure(e.RewardAccounts),
	)
}

type OutputTooSmallUtxo struct {
	Outputs cbor.Term
}

func (*OutputTooSmallUtxo) isUtxoPredFailure() {}

func (e *OutputTooSmallUtxo) Error() string {
	return fmt.Sprintf(
		"OutputTooSmallUtxo (%s)",
		cbor.DumpTermStructure(e.Outputs),
	)
}

type OutputBootAddrAttrsTooBig struct {
	Outputs cbor.Term
}

func (*OutputBootAddrAttrsTooBig) isUtxoPredFailure() {}

func (e *OutputBootAddrAttrsTooBig) Error() string {
	return fmt.Sprintf(
		"OutputBootAddrAttrsTooBig (%s)",
		cbor.DumpTermStructure(e.Outputs),
	)
}

type OutputTooBigUtxo struct {
	Outputs cbor.Term
}

func (*OutputTooBigUtxo) isUtxoPredFailure() {}

func (e *OutputTooBigUtxo) Error() string {
	return fmt.Sprintf(
		"OutputTooBigUtxo (%s)",
		cbor.DumpTermStructure(e.Outputs),
	)
}

type InsufficientCollateral struct {
	BalanceComputed    cbor.Term
	RequiredCollateral cbor.Term
}

func (*InsufficientCollateral) isUtxoPredFailure() {}

func (e *InsufficientCollateral) Error() string {
	return fmt.Sprintf(
		"InsufficientCollateral (BalanceComputed %s, RequiredCollateral %s)",
		cbor.DumpTermStructure(e.BalanceComputed),
		cbor.DumpTermStructure(e.RequiredCollateral),
	)
}

type ScriptsNotPaidUtxo struct {
	Utxos cbor.Term
}

func (*ScriptsNotPaidUtxo) isUtxoPredFailure() {}

func (e *ScriptsNotPaidUtxo) Error() string {
	return fmt.Sprintf(
		"ScriptsNotPaidUtxo (%s)",
		cbor.DumpTermStructure(e.Utxos),
	)
}

type ExUnitsTooBigUtxo struct {
	ActualUnits cbor.Term
	MaxUnits    cbor.Term
}

func (*ExUnitsTooBigUtxo) isUtxoPredFailure() {}

func (e *ExUnitsTooBigUtxo) Error() string {
	return fmt.Sprintf(
		"ExUnitsTooBigUtxo (ActualUnits %s, MaxUnits %s)",
		cbor.DumpTermStructure(e.ActualUnits),
		cbor.DumpTermStructure(e.MaxUnits),
	)
}

type CollateralContainsNonADA struct {
	Value cbor.Term
}

func (*CollateralContainsNonADA) isUtxoPredFailure() {}

func (e *CollateralContainsNonADA) Error() string {
	return fmt.Sprintf(
		"CollateralContainsNonADA (%s)",
		cbor.DumpTermStructure(e.Value),
	)
}

type WrongNetworkInTxBody struct {
	ActualNetworkId cbor.Term
	TxBodyNetworkId cbor.Term
}

func (*WrongNetworkInTxBody) isUtxoPredFailure() {}

func (e *WrongNetworkInTxBody) Error() string {
	return fmt.Sprintf(
		"WrongNetworkInTxBody (ActualNetworkId %s, TxBodyNetworkId %s)",
		cbor.DumpTermStructure(e.ActualNetworkId),
		cbor.DumpTermStructure(e.TxBodyNetworkId),
	)
}

type OutsideForecast struct {
	Slot cbor.Term
}

func (*OutsideForecast) isUtxoPredFailure() {}

func (e *OutsideForecast) Error() string {
	return fmt.Sprintf("OutsideForecast (%s)", cbor.DumpTermStructure(e.Slot))
}

type TooManyCollateralInputs struct {
	ActualInputs cbor.Term
	MaxInputs    cbor.Term
}

func (*TooManyCollateralInputs) isUtxoPredFailure() {}

func (e *TooManyCollateralInputs) Error() string {
	return fmt.Sprintf(
		"TooManyCollateralInputs (ActualInputs %s, MaxInputs %s)",
		cbor.DumpTermStructure(e.ActualInputs),
		cbor.DumpTermStructure(e.MaxInputs),
	)
}

type NoCollateralInputs struct{}

func (*NoCollateralInputs) isUtxoPredFailure() {}

func (e *NoCollateralInputs) Error() string {
	return "NoCollateralInputs"
}

type IncorrectTotalCollateralField struct {
	BalanceComputed cbor.Term
	DeclaredTotal   cbor.Term
}

func (*IncorrectTotalCollateralField) isUtxoPredFailure() {}

func (e *IncorrectTotalCollateralField) Error() string {
	return fmt.Sprintf(
		"IncorrectTotalCollateralField (BalanceComputed %s, DeclaredTotal %s)",
		cbor.DumpTermStructure(e.BalanceComputed),
		cbor.DumpTermStructure(e.DeclaredTotal),
	)
}

type BabbageOutputTooSmallUtxo struct {
	Outputs cbor.Term
}

func (*BabbageOutputTooSmallUtxo) isUtxoPredFailure() {}

func (e *BabbageOutputTooSmallUtxo) Error() string {
	return fmt.Sprintf(
		"BabbageOutputTooSmallUtxo (%s)",
		cbor.DumpTermStructure(e.Outputs),
	)
}

type BabbageNonDisjointRefInputs struct {
	Inputs cbor.Term
}

func (*BabbageNonDisjointRefInputs) isUtxoPredFailure() {}

func (e *BabbageNonDisjointRefInputs) Error() string {
	return fmt.Sprintf(
		"BabbageNonDisjointRefInputs (%s)",
		cbor.DumpTermStructure(e.Inputs),
	)
}

type UnknownUtxoFailure struct {
	Sum cbor.TaggedSum
}

func (*UnknownUtxoFailure) isUtxoPredFailure() {}

func (e *UnknownUtxoFailure) Error() string {
	return fmt.Sprintf("UnknownUtxoFailure (%s)", e.Sum.String())
}

//
// UTXOS rule failures
//

type ValidationTagMismatch struct {
	IsValid     cbor.Term
	Description cbor.Term
}

func (*ValidationTagMismatch) isUtxosPredFailure() {}

func (e *ValidationTagMismatch) Error() string {
	return fmt.Sprintf(
		"ValidationTagMismatch (IsValid %s, Description %s)",
		cbor.DumpTermStructure(e.IsValid),
		cbor.DumpTermStructure(e.Description),
	)
}

type CollectErrors struct {
	Errors cbor.Term
}

func (*CollectErrors) isUtxosPredFailure() {}

func (e *CollectErrors) Error() string {
	return fmt.Sprintf("CollectErrors (%s)", cbor.DumpTermStructure(e.Errors))
}

type UnknownUtxosFailure struct {
	Sum cbor.TaggedSum
}

func (*UnknownUtxosFailure) isUtxosPredFailure() {}

func (e *UnknownUtxosFailure) Error() string {
	return fmt.Sprintf("UnknownUtxosFailure (%s)", e.Sum.String())
}

//
// CERTS rule failures
//

type WithdrawalsNotInRewards struct {
	Withdrawals cbor.Term
}

func (*WithdrawalsNotInRewards) isCertsPredFailure() {}

func (e *WithdrawalsNotInRewards) Error() string {
	return fmt.Sprintf(
		"WithdrawalsNotInRewards (%s)",
		cbor.DumpTermStructure(e.Withdrawals),
	)
}

type CertFailure struct {
	Err CertPredFailure
}

func (*CertFailure) isCertsPredFailure() {}

func (e *CertFailure) Error() string {
	return fmt.Sprintf("CertFailure (%s)", e.Err)
}

func (e *CertFailure) Unwrap() error {
	return e.Err
}

type UnknownCertsFailure struct {
	Sum cbor.TaggedSum
}

func (*UnknownCertsFailure) isCertsPredFailure() {}

func (e *UnknownCertsFailure) Error() string {
	return fmt.Sprintf("UnknownCertsFailure (%s)", e.Sum.String())
}

//
// CERT rule failures
//

type DelegFailure struct {
	Err DelegPredFailure
}

func (*DelegFailure) isCertPredFailure() {}

func (e *DelegFailure) Error() string {
	return fmt.Sprintf("DelegFailure (%s)", e.Err)
}

func (e *DelegFailure) Unwrap() error {
	return e.Err
}

// PoolFailure carries its payload opaquely since the POOL rule has no
// tagged catalogue of its own here
type PoolFailure struct {
	Failure cbor.Term
}

func (*PoolFailure) isCertPredFailure() {}

func (e *PoolFailure) Error() string {
	return fmt.Sprintf("PoolFailure (%s)", cbor.DumpTermStructure(e.Failure))
}

type GovCertFailure struct {
	Err GovCertPredFailure
}

func (*GovCertFailure) isCertPredFailure() {}

func (e *GovCertFailure) Error() string {
	return fmt.Sprintf("GovCertFailure (%s)", e.Err)
}

func (e *GovCertFailure) Unwrap() error {
	return e.Err
}

type UnknownCertFailure struct {
	Sum cbor.TaggedSum
}

func (*UnknownCertFailure) isCertPredFailure() {}

func (e *UnknownCertFailure) Error() string {
	return fmt.Sprintf("UnknownCertFailure (%s)", e.Sum.String())
}

//
// DELEG rule failures
//

type IncorrectDepositDELEG struct {
	Deposit cbor.Term
}

func (*IncorrectDepositDELEG) isDelegPredFailure() {}

func (e *IncorrectDepositDELEG) Error() string {
	return fmt.Sprintf(
		"IncorrectDepositDELEG (%s)",
		cbor.DumpTermStructure(e.Deposit),
	)
}

type StakeKeyRegisteredDELEG struct {
	Credential cbor.Term
}

func (*StakeKeyRegisteredDELEG) isDelegPredFailure() {}

func (e *StakeKeyRegisteredDELEG) Error() string {
	return fmt.Sprintf(
		"StakeKeyRegisteredDELEG (%s)",
		cbor.DumpTermStructure(e.Credential),
	)
}

type StakeKeyNotRegisteredDELEG struct {
	Credential cbor.Term
}

func (*StakeKeyNotRegisteredDELEG) isDelegPredFailure() {}

func (e *StakeKeyNotRegisteredDELEG) Error() string {
	return fmt.Sprintf(
		"StakeKeyNotRegisteredDELEG (%s)",
		cbor.DumpTermStructure(e.Credential),
	)
}

type StakeKeyHasNonZeroRewardAccountBalanceDELEG struct {
	Balance cbor.Term
}

func (*StakeKeyHasNonZeroRewardAccountBalanceDELEG) isDelegPredFailure() {}

func (e *StakeKeyHasNonZeroRewardAccountBalanceDELEG) Error() string {
	return fmt.Sprintf(
		"StakeKeyHasNonZeroRewardAccountBalanceDELEG (%s)",
		cbor.DumpTermStructure(e.Balance),
	)
}

type DelegateeDRepNotRegisteredDELEG struct {
	DRep cbor.Term
}

func (*DelegateeDRepNotRegisteredDELEG) isDelegPredFailure() {}

func (e *DelegateeDRepNotRegisteredDELEG) Error() string {
	return fmt.Sprintf(
		"DelegateeDRepNotRegisteredDELEG (%s)",
		cbor.DumpTermStructure(e.DRep),
	)
}

type DelegateeStakePoolNotRegisteredDELEG struct {
	PoolKeyHash common.PoolKeyHash
}

func (*DelegateeStakePoolNotRegisteredDELEG) isDelegPredFailure() {}

func (e *DelegateeStakePoolNotRegisteredDELEG) Error() string {
	return fmt.Sprintf(
		"DelegateeStakePoolNotRegisteredDELEG (KeyHash %s)",
		e.PoolKeyHash.Bech32("pool"),
	)
}

type UnknownDelegFailure struct {
	Sum cbor.TaggedSum
}

func (*UnknownDelegFailure) isDelegPredFailure() {}

func (e *UnknownDelegFailure) Error() string {
	return fmt.Sprintf("UnknownDelegFailure (%s)", e.Sum.String())
}

//
// GOVCERT rule failures
//

type ConwayDRepAlreadyRegistered struct {
	Credential cbor.Term
}

func (*ConwayDRepAlreadyRegistered) isGovCertPredFailure() {}

func (e *ConwayDRepAlreadyRegistered) Error() string {
	return fmt.Sprintf(
		"ConwayDRepAlreadyRegistered (%s)",
		cbor.DumpTermStructure(e.Credential),
	)
}

type ConwayDRepNotRegistered struct {
	Credential cbor.Term
}

func (*ConwayDRepNotRegistered) isGovCertPredFailure() {}

func (e *ConwayDRepNotRegistered) Error() string {
	return fmt.Sprintf(
		"ConwayDRepNotRegistered (%s)",
		cbor.DumpTermStructure(e.Credential),
	)
}

type ConwayDRepIncorrectDeposit struct {
	Supplied cbor.Term
	Expected cbor.Term
}

func (*ConwayDRepIncorrectDeposit) isGovCertPredFailure() {}

func (e *ConwayDRepIncorrectDeposit) Error() string {
	return fmt.Sprintf(
		"ConwayDRepIncorrectDeposit (Supplied %s, Expected %s)",
		cbor.DumpTermStructure(e.Supplied),
		cbor.DumpTermStructure(e.Expected),
	)
}

type ConwayCommitteeHasPreviouslyResigned struct {
	Credential cbor.Term
}

func (*ConwayCommitteeHasPreviouslyResigned) isGovCertPredFailure() {}

func (e *ConwayCommitteeHasPreviouslyResigned) Error() string {
	return fmt.Sprintf(
		"ConwayCommitteeHasPreviouslyResigned (%s)",
		cbor.DumpTermStructure(e.Credential),
	)
}

type ConwayDRepIncorrectRefund struct {
	Supplied cbor.Term
	Expected cbor.Term
}

func (*ConwayDRepIncorrectRefund) isGovCertPredFailure() {}

func (e *ConwayDRepIncorrectRefund) Error() string {
	return fmt.Sprintf(
		"ConwayDRepIncorrectRefund (Supplied %s, Expected %s)",
		cbor.DumpTermStructure(e.Supplied),
		cbor.DumpTermStructure(e.Expected),
	)
}

type ConwayCommitteeIsUnknown struct {
	Credential cbor.Term
}

func (*ConwayCommitteeIsUnknown) isGovCertPredFailure() {}

func (e *ConwayCommitteeIsUnknown) Error() string {
	return fmt.Sprintf(
		"ConwayCommitteeIsUnknown (%s)",
		cbor.DumpTermStructure(e.Credential),
	)
}

type UnknownGovCertFailure struct {
	Sum cbor.TaggedSum
}

func (*UnknownGovCertFailure) isGovCertPredFailure() {}

func (e *UnknownGovCertFailure) Error() string {
	return fmt.Sprintf("UnknownGovCertFailure (%s)", e.Sum.String())
}

//
// GOV rule failures
//

type GovActionsDoNotExist struct {
	GovActionIds cbor.Term
}

func (*GovActionsDoNotExist) isGovPredFailure() {}

func (e *GovActionsDoNotExist) Error() string {
	return fmt.Sprintf(
		"GovActionsDoNotExist (%s)",
		cbor.DumpTermStructure(e.GovActionIds),
	)
}

type MalformedProposal struct {
	GovAction cbor.Term
}

func (*MalformedProposal) isGovPredFailure() {}

func (e *MalformedProposal) Error() string {
	return fmt.Sprintf(
		"MalformedProposal (%s)",
		cbor.DumpTermStructure(e.GovAction),
	)
}

type ProposalProcedureNetworkIdMismatch struct {
	RewardAccount     cbor.Term
	ExpectedNetworkId cbor.Term
}

func (*ProposalProcedureNetworkIdMismatch) isGovPredFailure() {}

func (e *ProposalProcedureNetworkIdMismatch) Error() string {
	return fmt.Sprintf(
		"ProposalProcedureNetworkIdMismatch (RewardAccount %s, ExpectedNetworkId %s)",
		cbor.DumpTermStructure(e.RewardAccount),
		cbor.DumpTermStructure(e.ExpectedNetworkId),
	)
}

type TreasuryWithdrawalsNetworkIdMismatch struct {
	RewardAccounts    cbor.Term
	ExpectedNetworkId cbor.Term
}

func (*TreasuryWithdrawalsNetworkIdMismatch) isGovPredFailure() {}

func (e *TreasuryWithdrawalsNetworkIdMismatch) Error() string {
	return fmt.Sprintf(
		"TreasuryWithdrawalsNetworkIdMismatch (RewardAccounts %s, ExpectedNetworkId %s)",
		cbor.DumpTermStructure(e.RewardAccounts),
		cbor.DumpTermStructure(e.ExpectedNetworkId),
	)
}

type ProposalDepositIncorrect struct {
	Supplied cbor.Term
	Expected cbor.Term
}

func (*ProposalDepositIncorrect) isGovPredFailure() {}

func (e *ProposalDepositIncorrect) Error() string {
	return fmt.Sprintf(
		"ProposalDepositIncorrect (Supplied %s, Expected %s)",
		cbor.DumpTermStructure(e.Supplied),
		cbor.DumpTermStructure(e.Expected),
	)
}

type DisallowedVoters struct {
	Voters cbor.Term
}

func (*DisallowedVoters) isGovPredFailure() {}

func (e *DisallowedVoters) Error() string {
	return fmt.Sprintf(
		"DisallowedVoters (%s)",
		cbor.DumpTermStructure(e.Voters),
	)
}

type ConflictingCommitteeUpdate struct {
	Members cbor.Term
}

func (*ConflictingCommitteeUpdate) isGovPredFailure() {}

func (e *ConflictingCommitteeUpdate) Error() string {
	return fmt.Sprintf(
		"ConflictingCommitteeUpdate (%s)",
		cbor.DumpTermStructure(e.Members),
	)
}

type ExpirationEpochTooSmall struct {
	Expirations cbor.Term
}

func (*ExpirationEpochTooSmall) isGovPredFailure() {}

func (e *ExpirationEpochTooSmall) Error() string {
	return fmt.Sprintf(
		"ExpirationEpochTooSmall (%s)",
		cbor.DumpTermStructure(e.Expirations),
	)
}

type InvalidPrevGovActionId struct {
	Proposal cbor.Term
}

func (*InvalidPrevGovActionId) isGovPredFailure() {}

func (e *InvalidPrevGovActionId) Error() string {
	return fmt.Sprintf(
		"InvalidPrevGovActionId (%s)",
		cbor.DumpTermStructure(e.Proposal),
	)
}

type VotingOnExpiredGovAction struct {
	Votes cbor.Term
}

func (*VotingOnExpiredGovAction) isGovPredFailure() {}

func (e *VotingOnExpiredGovAction) Error() string {
	return fmt.Sprintf(
		"VotingOnExpiredGovAction (%s)",
		cbor.DumpTermStructure(e.Votes),
	)
}

type ProposalCantFollow struct {
	PrevGovActionId cbor.Term
	ProtocolVersion cbor.Term
}

func (*ProposalCantFollow) isGovPredFailure() {}

func (e *ProposalCantFollow) Error() string {
	return fmt.Sprintf(
		"ProposalCantFollow (PrevGovActionId %s, ProtocolVersion %s)",
		cbor.DumpTermStructure(e.PrevGovActionId),
		cbor.DumpTermStructure(e.ProtocolVersion),
	)
}

type InvalidPolicyHash struct {
	SuppliedHash cbor.Term
	ExpectedHash cbor.Term
}

func (*InvalidPolicyHash) isGovPredFailure() {}

func (e *InvalidPolicyHash) Error() string {
	return fmt.Sprintf(
		"InvalidPolicyHash (SuppliedHash %s, ExpectedHash %s)",
		cbor.DumpTermStructure(e.SuppliedHash),
		cbor.DumpTermStructure(e.ExpectedHash),
	)
}

type DisallowedProposalDuringBootstrap struct {
	Proposal cbor.Term
}

func (*DisallowedProposalDuringBootstrap) isGovPredFailure() {}

func (e *DisallowedProposalDuringBootstrap) Error() string {
	return fmt.Sprintf(
		"DisallowedProposalDuringBootstrap (%s)",
		cbor.DumpTermStructure(e.Proposal),
	)
}

type DisallowedVotesDuringBootstrap struct {
	Votes cbor.Term
}

func (*DisallowedVotesDuringBootstrap) isGovPredFailure() {}

func (e *DisallowedVotesDuringBootstrap) Error() string {
	return fmt.Sprintf(
		"DisallowedVotesDuringBootstrap (%s)",
		cbor.DumpTermStructure(e.Votes),
	)
}

type VotersDoNotExist struct {
	Voters cbor.Term
}

func (*VotersDoNotExist) isGovPredFailure() {}

func (e *VotersDoNotExist) Error() string {
	return fmt.Sprintf(
		"VotersDoNotExist (%s)",
		cbor.DumpTermStructure(e.Voters),
	)
}

type ZeroTreasuryWithdrawals struct {
	GovAction cbor.Term
}

func (*ZeroTreasuryWithdrawals) isGovPredFailure() {}

func (e *ZeroTreasuryWithdrawals) Error() string {
	return fmt.Sprintf(
		"ZeroTreasuryWithdrawals (%s)",
		cbor.DumpTermStructure(e.GovAction),
	)
}

type ProposalReturnAccountDoesNotExist struct {
	ReturnAccount cbor.Term
}

func (*ProposalReturnAccountDoesNotExist) isGovPredFailure() {}

func (e *ProposalReturnAccountDoesNotExist) Error() string {
	return fmt.Sprintf(
		"ProposalReturnAccountDoesNotExist (%s)",
		cbor.DumpTermStructure(e.ReturnAccount),
	)
}

type TreasuryWithdrawalReturnAccountsDoNotExist struct {
	ReturnAccounts cbor.Term
}

func (*TreasuryWithdrawalReturnAccountsDoNotExist) isGovPredFailure() {}

func (e *TreasuryWithdrawalReturnAccountsDoNotExist) Error() string {
	return fmt.Sprintf(
		"TreasuryWithdrawalReturnAccountsDoNotExist (%s)",
		cbor.DumpTermStructure(e.ReturnAccounts),
	)
}

type UnknownGovFailure struct {
	Sum cbor.TaggedSum
}

func (*UnknownGovFailure) isGovPredFailure() {}

func (e *UnknownGovFailure) Error() string {
	return fmt.Sprintf("UnknownGovFailure (%s)", e.Sum.String())
}
