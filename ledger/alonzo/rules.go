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

// Package alonzo holds the constructor tag catalogues for the Alonzo era
// predicate failure rules. There is no typed decoder wired for this era
// yet.
package alonzo

import (
	"github.com/blinklabs-io/txrej/ledger/common"
)

const (
	EraIdAlonzo   = 4
	EraNameAlonzo = "Alonzo"
)

// UtxoRuleCatalogue names the constructors of the UTXO rule. Tag 11 is
// absent on the wire.
var UtxoRuleCatalogue = common.Catalogue{
	0:  "BadInputsUTxO",
	1:  "OutsideValidityIntervalUTxO",
	2:  "MaxTxSizeUTxO",
	3:  "InputSetEmptyUTxO",
	4:  "FeeTooSmallUTxO",
	5:  "ValueNotConservedUTxO",
	6:  "OutputTooSmallUTxO",
	7:  "UtxosFailure",
	8:  "WrongNetwork",
	9:  "WrongNetworkWithdrawal",
	10: "OutputBootAddrAttrsTooBig",
	12: "OutputTooBigUTxO",
	13: "InsufficientCollateral",
	14: "ScriptsNotPaidUTxO",
	15: "ExUnitsTooBigUTxO",
	16: "CollateralContainsNonADA",
	17: "WrongNetworkInTxBody",
	18: "OutsideForecast",
	19: "TooManyCollateralInputs",
	20: "NoCollateralInputs",
}

// UtxosRuleCatalogue names the constructors of the UTXOS rule
var UtxosRuleCatalogue = common.Catalogue{
	0: "ValidationTagMismatch",
	1: "CollectErrors",
	2: "UpdateFailure",
}

// UtxowRuleCatalogue names the constructors of the UTXOW rule. Tag 5 is
// absent on the wire.
var UtxowRuleCatalogue = common.Catalogue{
	0: "ShelleyInAlonzoUtxowPredFailure",
	1: "MissingRedeemers",
	2: "MissingRequiredDatums",
	3: "NotAllowedSupplementalDatums",
	4: "PPViewHashesDontMatch",
	6: "UnspendableUTxONoDatumHash",
	7: "ExtraRedeemers",
	8: "ScriptIntegrityHashMismatch",
}

// BbodyRuleCatalogue names the constructors of the BBODY rule
var BbodyRuleCatalogue = common.Catalogue{
	0: "ShelleyInAlonzoBbodyPredFailure",
	1: "TooManyExUnits",
}
