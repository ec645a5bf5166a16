// Copyright 2025 Blink Labs Software
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

const (
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
}

var eras = map[uint8]Era{
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
		Id:   EraIdConway,
		Name: "Conway",
	},
}

func GetEraById(eraId uint8) *Era {
	era, ok := eras[eraId]
	if !ok {
		return nil
	}
	return &era
}

// bodyKeyEra returns the first era that allows a transaction body key
func bodyKeyEra(key uint) uint8 {
	switch {
	case key <= bodyKeyAuxDataHash:
		return EraIdShelley
	case key == bodyKeyValidityIntervalStart:
		return EraIdAllegra
	case key == bodyKeyMint:
		return EraIdMary
	case key <= bodyKeyNetworkId:
		return EraIdAlonzo
	case key <= bodyKeyReferenceInputs:
		return EraIdBabbage
	}
	return EraIdConway
}

// minimumEra returns the earliest era whose transaction format supports
// every feature used by the transaction. Transactions from a later era that
// only use older features report the older era
func (t *Transaction) minimumEra() uint8 {
	ret := t.body.minEra
	raise := func(eraId uint8) {
		ret = max(ret, eraId)
	}
	if t.hasValidityFlag {
		raise(EraIdAlonzo)
	}
	for _, output := range t.body.TxOutputs {
		if output.Assets().Len() > 0 {
			raise(EraIdMary)
		}
		if output.DatumHash != nil {
			raise(EraIdAlonzo)
		}
		if !output.IsLegacy() {
			raise(EraIdBabbage)
		}
	}
	if len(t.witnessSet.Redeemers) > 0 || len(t.witnessSet.PlutusData) > 0 {
		raise(EraIdAlonzo)
	}
	for _, cert := range t.body.TxCertificates {
		if cert.CertificateType() >= CertificateTypeRegistration {
			raise(EraIdConway)
		}
	}
	if t.witnessSet.conwayRedeemers {
		raise(EraIdConway)
	}
	return ret
}

// Era returns the earliest era able to carry the transaction
func (t *Transaction) Era() Era {
	if era := GetEraById(t.minimumEra()); era != nil {
		return *era
	}
	return eras[EraIdShelley]
}
