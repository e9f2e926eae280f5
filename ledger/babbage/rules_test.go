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

package babbage_test

import (
	"testing"

	"github.com/blinklabs-io/txrej/ledger/babbage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogueNumberingStartsAtOne(t *testing.T) {
	// Both Babbage rules number their constructors from 1
	_, ok := babbage.UtxoRuleCatalogue.Name(0)
	assert.False(t, ok)
	_, ok = babbage.UtxowRuleCatalogue.Name(0)
	assert.False(t, ok)
	name, ok := babbage.UtxoRuleCatalogue.Name(1)
	require.True(t, ok)
	assert.Equal(t, "AlonzoInBabbageUtxoPredFailure", name)
	name, ok = babbage.UtxowRuleCatalogue.Name(2)
	require.True(t, ok)
	assert.Equal(t, "UtxoFailure", name)
}
