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
	"github.com/blinklabs-io/txrej/ledger/common"
)

const (
	EraIdConway   = 6
	EraNameConway = "Conway"
)

// Constructor tags for the LEDGER rule
const (
	LedgerFailureUtxowFailure           = 1
	LedgerFailureCertsFailure           = 2
	LedgerFailureGovFailure             = 3
	LedgerFailureWdrlNotDelegatedToDRep = 4
	LedgerFailureTreasuryValueMismatch  = 5
	LedgerFailureTxRefScriptsSizeTooBig = 6
	LedgerFailureMempoolFailure         = 7
)

// Constructor tags for the UTXOW rule
const (
	UtxowFailureUtxoFailure                  = 0
	UtxowFailureInvalidWitnesses             = 1
	UtxowFailureMissingVKeyWitnesses         = 2
	UtxowFailureMissingScriptWitnesses       = 3
	UtxowFailureScriptWitnessNotValidating   = 4
	UtxowFailureMissingTxBodyMetadataHash    = 5
	UtxowFailureMissingTxMetadata            = 6
	UtxowFailureConflictingMetadataHash      = 7
	UtxowFailureInvalidMetadata              = 8
	UtxowFailureExtraneousScriptWitnesses    = 9
	UtxowFailureMissingRedeemers             = 10
	UtxowFailureMissingRequiredDatums        = 11
	UtxowFailureNotAllowedSupplementalDatums = 12
	UtxowFailurePPViewHashesDontMatch        = 13
	UtxowFailureUnspendableUTxONoDatumHash   = 14
	UtxowFailureExtraRedeemers               = 15
	UtxowFailureMalformedScriptWitnesses     = 16
	UtxowFailureMalformedReferenceScripts    = 17
)

// Constructor tags for the UTXO rule
const (
	UtxoFailureUtxosFailure                  = 0
	UtxoFailureBadInputsUtxo                 = 1
	UtxoFailureOutsideValidityIntervalUtxo   = 2
	UtxoFailureMaxTxSizeUtxo                 = 3
	UtxoFailureInputSetEmptyUtxo             = 4
	UtxoFailureFeeTooSmallUtxo               = 5
	UtxoFailureValueNotConservedUtxo         = 6
	UtxoFailureWrongNetwork                  = 7
	UtxoFailureWrongNetworkWithdrawal        = 8
	UtxoFailureOutputTooSmallUtxo            = 9
	UtxoFailureOutputBootAddrAttrsTooBig     = 10
	UtxoFailureOutputTooBigUtxo              = 11
	UtxoFailureInsufficientCollateral        = 12
	UtxoFailureScriptsNotPaidUtxo            = 13
	UtxoFailureExUnitsTooBigUtxo             = 14
	UtxoFailureCollateralContainsNonADA      = 15
	UtxoFailureWrongNetworkInTxBody          = 16
	UtxoFailureOutsideForecast               = 17
	UtxoFailureTooManyCollateralInputs       = 18
	UtxoFailureNoCollateralInputs            = 19
	UtxoFailureIncorrectTotalCollateralField = 20
	UtxoFailureBabbageOutputTooSmallUtxo     = 21
	UtxoFailureBabbageNonDisjointRefInputs   = 22
)

// Constructor tags for the UTXOS rule
const (
	UtxosFailureValidationTagMismatch = 0
	UtxosFailureCollectErrors         = 1
)

// Constructor tags for the CERTS rule. Tag 0 was retired upstream and is
// deliberately absent.
const (
	CertsFailureWithdrawalsNotInRewards = 1
	CertsFailureCertFailure             = 2
)

// Constructor tags for the CERT rule
const (
	CertFailureDelegFailure   = 1
	CertFailurePoolFailure    = 2
	CertFailureGovCertFailure = 3
)

// Constructor tags for the DELEG rule
const (
	DelegFailureIncorrectDeposit                       = 1
	DelegFailureStakeKeyRegistered                     = 2
	DelegFailureStakeKeyNotRegistered                  = 3
	DelegFailureStakeKeyHasNonZeroRewardAccountBalance = 4
	DelegFailureDelegateeDRepNotRegistered             = 5
	DelegFailureDelegateeStakePoolNotRegistered        = 6
)

// Constructor tags for the GOVCERT rule
const (
	GovCertFailureDRepAlreadyRegistered          = 0
	GovCertFailureDRepNotRegistered              = 1
	GovCertFailureDRepIncorrectDeposit           = 2
	GovCertFailureCommitteeHasPreviouslyResigned = 3
	GovCertFailureDRepIncorrectRefund            = 4
	GovCertFailureCommitteeIsUnknown             = 5
)

// Constructor tags for the GOV rule
const (
	GovFailureGovActionsDoNotExist                       = 0
	GovFailureMalformedProposal                          = 1
	GovFailureProposalProcedureNetworkIdMismatch         = 2
	GovFailureTreasuryWithdrawalsNetworkIdMismatch       = 3
	GovFailureProposalDepositIncorrect                   = 4
	GovFailureDisallowedVoters                           = 5
	GovFailureConflictingCommitteeUpdate                 = 6
	GovFailureExpirationEpochTooSmall                    = 7
	GovFailureInvalidPrevGovActionId                     = 8
	GovFailureVotingOnExpiredGovAction                   = 9
	GovFailureProposalCantFollow                         = 10
	GovFailureInvalidPolicyHash                          = 11
	GovFailureDisallowedProposalDuringBootstrap          = 12
	GovFailureDisallowedVotesDuringBootstrap             = 13
	GovFailureVotersDoNotExist                           = 14
	GovFailureZeroTreasuryWithdrawals                    = 15
	GovFailureProposalReturnAccountDoesNotExist          = 16
	GovFailureTreasuryWithdrawalReturnAccountsDoNotExist = 17
)

// LedgerRuleCatalogue names the constructors of the LEDGER rule
var LedgerRuleCatalogue = common.Catalogue{
	LedgerFailureUtxowFailure:           "ConwayUtxowFailure",
	LedgerFailureCertsFailure:           "ConwayCertsFailure",
	LedgerFailureGovFailure:             "ConwayGovFailure",
	LedgerFailureWdrlNotDelegatedToDRep: "ConwayWdrlNotDelegatedToDRep",
	LedgerFailureTreasuryValueMismatch:  "ConwayTreasuryValueMismatch",
	LedgerFailureTxRefScriptsSizeTooBig: "ConwayTxRefScriptsSizeTooBig",
	LedgerFailureMempoolFailure:         "ConwayMempoolFailure",
}

// UtxowRuleCatalogue names the constructors of the UTXOW rule
var UtxowRuleCatalogue = common.Catalogue{
	UtxowFailureUtxoFailure:                  "UtxoFailure",
	UtxowFailureInvalidWitnesses:             "InvalidWitnessesUTXOW",
	UtxowFailureMissingVKeyWitnesses:         "MissingVKeyWitnessesUTXOW",
	UtxowFailureMissingScriptWitnesses:       "MissingScriptWitnessesUTXOW",
	UtxowFailureScriptWitnessNotValidating:   "ScriptWitnessNotValidatingUTXOW",
	UtxowFailureMissingTxBodyMetadataHash:    "MissingTxBodyMetadataHash",
	UtxowFailureMissingTxMetadata:            "MissingTxMetadata",
	UtxowFailureConflictingMetadataHash:      "ConflictingMetadataHash",
	UtxowFailureInvalidMetadata:              "InvalidMetadata",
	UtxowFailureExtraneousScriptWitnesses:    "ExtraneousScriptWitnessesUTXOW",
	UtxowFailureMissingRedeemers:             "MissingRedeemers",
	UtxowFailureMissingRequiredDatums:        "MissingRequiredDatums",
	UtxowFailureNotAllowedSupplementalDatums: "NotAllowedSupplementalDatums",
	UtxowFailurePPViewHashesDontMatch:        "PPViewHashesDontMatch",
	UtxowFailureUnspendableUTxONoDatumHash:   "UnspendableUTxONoDatumHash",
	UtxowFailureExtraRedeemers:               "ExtraRedeemers",
	UtxowFailureMalformedScriptWitnesses:     "MalformedScriptWitnesses",
	UtxowFailureMalformedReferenceScripts:    "MalformedReferenceScripts",
}

// UtxoRuleCatalogue names the constructors of the UTXO rule
var UtxoRuleCatalogue = common.Catalogue{
	UtxoFailureUtxosFailure:                  "UtxosFailure",
	UtxoFailureBadInputsUtxo:                 "BadInputsUtxo",
	UtxoFailureOutsideValidityIntervalUtxo:   "OutsideValidityIntervalUtxo",
	UtxoFailureMaxTxSizeUtxo:                 "MaxTxSizeUtxo",
	UtxoFailureInputSetEmptyUtxo:             "InputSetEmptyUtxo",
	UtxoFailureFeeTooSmallUtxo:               "FeeTooSmallUtxo",
	UtxoFailureValueNotConservedUtxo:         "ValueNotConservedUtxo",
	UtxoFailureWrongNetwork:                  "WrongNetwork",
	UtxoFailureWrongNetworkWithdrawal:        "WrongNetworkWithdrawal",
	UtxoFailureOutputTooSmallUtxo:            "OutputTooSmallUtxo",
	UtxoFailureOutputBootAddrAttrsTooBig:     "OutputBootAddrAttrsTooBig",
	UtxoFailureOutputTooBigUtxo:              "OutputTooBigUtxo",
	UtxoFailureInsufficientCollateral:        "InsufficientCollateral",
	UtxoFailureScriptsNotPaidUtxo:            "ScriptsNotPaidUtxo",
	UtxoFailureExUnitsTooBigUtxo:             "ExUnitsTooBigUtxo",
	UtxoFailureCollateralContainsNonADA:      "CollateralContainsNonADA",
	UtxoFailureWrongNetworkInTxBody:          "WrongNetworkInTxBody",
	UtxoFailureOutsideForecast:               "OutsideForecast",
	UtxoFailureTooManyCollateralInputs:       "TooManyCollateralInputs",
	UtxoFailureNoCollateralInputs:            "NoCollateralInputs",
	UtxoFailureIncorrectTotalCollateralField: "IncorrectTotalCollateralField",
	UtxoFailureBabbageOutputTooSmallUtxo:     "BabbageOutputTooSmallUtxo",
	UtxoFailureBabbageNonDisjointRefInputs:   "BabbageNonDisjointRefInputs",
}

// UtxosRuleCatalogue names the constructors of the UTXOS rule
var UtxosRuleCatalogue = common.Catalogue{
	UtxosFailureValidationTagMismatch: "ValidationTagMismatch",
	UtxosFailureCollectErrors:         "CollectErrors",
}

// CertsRuleCatalogue names the constructors of the CERTS rule
var CertsRuleCatalogue = common.Catalogue{
	CertsFailureWithdrawalsNotInRewards: "WithdrawalsNotInRewards",
	CertsFailureCertFailure:             "CertFailure",
}

// CertRuleCatalogue names the constructors of the CERT rule
var CertRuleCatalogue = common.Catalogue{
	CertFailureDelegFailure:   "DelegFailure",
	CertFailurePoolFailure:    "PoolFailure",
	CertFailureGovCertFailure: "GovCertFailure",
}

// DelegRuleCatalogue names the constructors of the DELEG rule
var DelegRuleCatalogue = common.Catalogue{
	DelegFailureIncorrectDeposit:                       "IncorrectDepositDELEG",
	DelegFailureStakeKeyRegistered:                     "StakeKeyRegisteredDELEG",
	DelegFailureStakeKeyNotRegistered:                  "StakeKeyNotRegisteredDELEG",
	DelegFailureStakeKeyHasNonZeroRewardAccountBalance: "StakeKeyHasNonZeroRewardAccountBalanceDELEG",
	DelegFailureDelegateeDRepNotRegistered:             "DelegateeDRepNotRegisteredDELEG",
	DelegFailureDelegateeStakePoolNotRegistered:        "DelegateeStakePoolNotRegisteredDELEG",
}

// GovCertRuleCatalogue names the constructors of the GOVCERT rule
var GovCertRuleCatalogue = common.Catalogue{
	GovCertFailureDRepAlreadyRegistered:          "ConwayDRepAlreadyRegistered",
	GovCertFailureDRepNotRegistered:              "ConwayDRepNotRegistered",
	GovCertFailureDRepIncorrectDeposit:           "ConwayDRepIncorrectDeposit",
	GovCertFailureCommitteeHasPreviouslyResigned: "ConwayCommitteeHasPreviouslyResigned",
	GovCertFailureDRepIncorrectRefund:            "ConwayDRepIncorrectRefund",
	GovCertFailureCommitteeIsUnknown:             "ConwayCommitteeIsUnknown",
}

// GovRuleCatalogue names the constructors of the GOV rule
var GovRuleCatalogue = common.Catalogue{
	GovFailureGovActionsDoNotExist:                       "GovActionsDoNotExist",
	GovFailureMalformedProposal:                          "MalformedProposal",
	GovFailureProposalProcedureNetworkIdMismatch:         "ProposalProcedureNetworkIdMismatch",
	GovFailureTreasuryWithdrawalsNetworkIdMismatch:       "TreasuryWithdrawalsNetworkIdMismatch",
	GovFailureProposalDepositIncorrect:                   "ProposalDepositIncorrect",
	GovFailureDisallowedVoters:                           "DisallowedVoters",
	GovFailureConflictingCommitteeUpdate:                 "ConflictingCommitteeUpdate",
	GovFailureExpirationEpochTooSmall:                    "ExpirationEpochTooSmall",
	GovFailureInvalidPrevGovActionId:                     "InvalidPrevGovActionId",
	GovFailureVotingOnExpiredGovAction:                   "VotingOnExpiredGovAction",
	GovFailureProposalCantFollow:                         "ProposalCantFollow",
	GovFailureInvalidPolicyHash:                          "InvalidPolicyHash",
	GovFailureDisallowedProposalDuringBootstrap:          "DisallowedProposalDuringBootstrap",
	GovFailureDisallowedVotesDuringBootstrap:             "DisallowedVotesDuringBootstrap",
	GovFailureVotersDoNotExist:                           "VotersDoNotExist",
	GovFailureZeroTreasuryWithdrawals:                    "ZeroTreasuryWithdrawals",
	GovFailureProposalReturnAccountDoesNotExist:          "ProposalReturnAccountDoesNotExist",
	GovFailureTreasuryWithdrawalReturnAccountsDoNotExist: "TreasuryWithdrawalReturnAccountsDoNotExist",
}
