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

// Package shelley holds the constructor tag catalogues for the Shelley
// era predicate failure rules. There is no typed decoder wired for this
// era yet, but the catalogues record the wire tags, including the gaps
// left by retired constructors.
package shelley

import (
	"github.com/blinklabs-io/txrej/ledger/common"
)

const (
	EraIdShelley   = 1
	EraNameShelley = "Shelley"
)

// PpupRuleCatalogue names the constructors of the PPUP rule
var PpupRuleCatalogue = common.Catalogue{
	0: "NonGenesisUpdatePPUP",
	1: "PPUpdateWrongEpoch",
	2: "PVCannotFollowPPUP",
}

// UtxoRuleCatalogue names the constructors of the UTXO rule
var UtxoRuleCatalogue = common.Catalogue{
	0:  "BadInputsUTxO",
	1:  "ExpiredUTxO",
	2:  "MaxTxSizeUTxO",
	3:  "InputSetEmptyUTxO",
	4:  "FeeTooSmallUTxO",
	5:  "ValueNotConservedUTxO",
	6:  "OutputTooSmallUTxO",
	7:  "UpdateFailure",
	8:  "WrongNetwork",
	9:  "WrongNetworkWithdrawal",
	10: "OutputBootAddrAttrsTooBig",
}

// UtxowRuleCatalogue names the constructors of the UTXOW rule
var UtxowRuleCatalogue = common.Catalogue{
	0:  "InvalidWitnessesUTXOW",
	1:  "MissingVKeyWitnessesUTXOW",
	2:  "MissingScriptWitnessesUTXOW",
	3:  "ScriptWitnessNotValidatingUTXOW",
	4:  "UtxoFailure",
	5:  "MIRInsufficientGenesisSigsUTXOW",
	6:  "MissingTxBodyMetadataHash",
	7:  "MissingTxMetadata",
	8:  "ConflictingMetadataHash",
	9:  "InvalidMetadata",
	10: "ExtraneousScriptWitnessesUTXOW",
}

// DelegRuleCatalogue names the constructors of the DELEG rule. Tag 10 is
// absent on the wire.
var DelegRuleCatalogue = common.Catalogue{
	0:  "StakeKeyAlreadyRegistered",
	1:  "StakeKeyNotRegistered",
	2:  "StakeKeyNonZeroAccountBalance",
	3:  "StakeDelegationImpossible",
	4:  "WrongCertificateType",
	5:  "GenesisKeyNotInMapping",
	6:  "DuplicateGenesisDelegate",
	7:  "InsufficientForInstantaneousRewards",
	8:  "MIRCertificateTooLateInEpoch",
	9:  "DuplicateGenesisVRF",
	11: "MIRTransferNotCurrentlyAllowed",
	12: "MIRNegativesNotCurrentlyAllowed",
	13: "InsufficientForTransfer",
	14: "MIRProducesNegativeUpdate",
	15: "MIRNegativeTransfer",
}

// PoolRuleCatalogue names the constructors of the POOL rule. Tag 2 is
// absent on the wire.
var PoolRuleCatalogue = common.Catalogue{
	0: "StakePoolNotRegisteredOnKey",
	1: "StakePoolRetirementWrongEpoch",
	3: "StakePoolCostTooLow",
	4: "WrongNetworkPOOL",
	5: "PoolMetadataHashTooBig",
	6: "VRFKeyHashAlreadyRegistered",
}

// DelegsRuleCatalogue names the constructors of the DELEGS rule
var DelegsRuleCatalogue = common.Catalogue{
	0: "DelegateeNotRegistered",
	1: "WithdrawalsNotInRewards",
	2: "DelplFailure",
}

// DelplRuleCatalogue names the constructors of the DELPL rule
var DelplRuleCatalogue = common.Catalogue{
	0: "PoolFailure",
	1: "DelegFailure",
}

// LedgerRuleCatalogue names the constructors of the LEDGER rule
var LedgerRuleCatalogue = common.Catalogue{
	0: "UtxowFailure",
	1: "DelegsFailure",
}
