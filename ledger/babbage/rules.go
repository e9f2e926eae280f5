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

// Package babbage holds the constructor tag catalogues for the Babbage
// era predicate failure rules. Both rules start numbering at 1. There is
// no typed decoder wired for this era yet.
package babbage

import (
	"github.com/blinklabs-io/txrej/ledger/common"
)

const (
	EraIdBabbage   = 5
	EraNameBabbage = "Babbage"
)

// UtxoRuleCatalogue names the constructors of the UTXO rule
var UtxoRuleCatalogue = common.Catalogue{
	1: "AlonzoInBabbageUtxoPredFailure",
	2: "IncorrectTotalCollateralField",
	3: "BabbageOutputTooSmallUTxO",
	4: "BabbageNonDisjointRefInputs",
}

// UtxowRuleCatalogue names the constructors of the UTXOW rule
var UtxowRuleCatalogue = common.Catalogue{
	1: "AlonzoInBabbageUtxowPredFailure",
	2: "UtxoFailure",
	3: "MalformedScriptWitnesses",
	4: "MalformedReferenceScripts",
	5: "ScriptIntegrityHashMismatch",
}
