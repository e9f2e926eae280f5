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

package ledger

import (
	"github.com/blinklabs-io/txrej/ledger/conway"
)

const (
	EraIdByron   = 0
	EraIdShelley = 1
	EraIdAllegra = 2
	EraIdMary    = 3
	EraIdAlonzo  = 4
	EraIdBabbage = 5
	EraIdConway  = 6
)

type Era struct {
	Id   uint8
	Name string
	// DecodeFailures decodes a transaction rejection envelope into a list
	// of typed predicate failures. It's nil for eras without a typed
	// decoder.
	DecodeFailures func([]byte) ([]error, error)
}

var eras = map[uint8]Era{
	EraIdByron: {
		Id:   EraIdByron,
		Name: "Byron",
	},
	EraIdShelley: {
		Id:   EraIdShelley,
		Name: "Shelley",
	},
	EraIdAllegra: {
		Id:   EraIdAllegra,
		Name: "Allegra",
	},
	EraIdMary: {
		Id:   EraIdMary,
		Name: "Mary",
	},
	EraIdAlonzo: {
		Id:   EraIdAlonzo,
		Name: "Alonzo",
	},
	EraIdBabbage: {
		Id:   EraIdBabbage,
		Name: "Babbage",
	},
	EraIdConway: {
		Id:             EraIdConway,
		Name:           "Conway",
		DecodeFailures: decodeConwayFailures,
	},
}

func GetEraById(eraId uint8) *Era {
	era, ok := eras[eraId]
	if !ok {
		return nil
	}
	return &era
}

func decodeConwayFailures(data []byte) ([]error, error) {
	newErr, err := conway.NewTxValidationErrorFromCbor(data)
	if err != nil {
		return nil, err
	}
	failures := make([]error, 0, len(newErr.Failures))
	for _, failure := range newErr.Failures {
		failures = append(failures, failure)
	}
	return failures, nil
}
