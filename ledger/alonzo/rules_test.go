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

package alonzo_test

import (
	"testing"

	"github.com/blinklabs-io/txrej/ledger/alonzo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUtxoRuleCatalogueGap(t *testing.T) {
	// Tag 11 is a deliberate gap in the UTXO catalogue
	_, ok := alonzo.UtxoRuleCatalogue.Name(11)
	assert.False(t, ok)
	name, ok := alonzo.UtxoRuleCatalogue.Name(12)
	require.True(t, ok)
	assert.Equal(t, "OutputTooBigUTxO", name)
}

func TestUtxowRuleCatalogueGap(t *testing.T) {
	// Tag 5 is a deliberate gap in the UTXOW catalogue
	_, ok := alonzo.UtxowRuleCatalogue.Name(5)
	assert.False(t, ok)
	name, ok := alonzo.UtxowRuleCatalogue.Name(6)
	require.True(t, ok)
	assert.Equal(t, "UnspendableUTxONoDatumHash", name)
}
