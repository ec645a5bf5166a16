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

import (
	"fmt"

	"github.com/blinklabs-io/gouroboros/cbor"
	"github.com/blinklabs-io/gouroboros/ledger/common"
)

const (
	witnessKeyVkey       = 0
	witnessKeyRedeemers  = 5
	witnessKeyPlutusData = 4
)

type RedeemerTag uint8

const (
	RedeemerTagSpend    RedeemerTag = 0
	RedeemerTagMint     RedeemerTag = 1
	RedeemerTagCert     RedeemerTag = 2
	RedeemerTagReward   RedeemerTag = 3
	RedeemerTagVoting   RedeemerTag = 4
	RedeemerTagProposal RedeemerTag = 5
)

// VkeyWitness is a verification key and the signature it produced
type VkeyWitness struct {
	cbor.StructAsArray
	Vkey      []byte
	Signature []byte
}

// KeyHash returns the Blake2b-224 hash of the verification key
func (w VkeyWitness) KeyHash() common.Blake2b224 {
	return common.Blake2b224Hash(w.Vkey)
}

type ExUnits struct {
	cbor.StructAsArray
	Memory uint64
	Steps  uint64
}

// Redeemer is a redeemer entry from either the legacy array encoding or the
// Conway map encoding
type Redeemer struct {
	Tag     RedeemerTag
	Index   uint32
	Data    *Datum
	ExUnits ExUnits
}

type TransactionWitnessSet struct {
	cborData        []byte
	VkeyWitnesses   []VkeyWitness
	Redeemers       []Redeemer
	PlutusData      []*Datum
	conwayRedeemers bool
}

func NewTransactionWitnessSetFromCbor(cborData []byte) (*TransactionWitnessSet, error) {
	var ret TransactionWitnessSet
	if err := ret.UnmarshalCBOR(cborData); err != nil {
		return nil, err
	}
	return &ret, nil
}

func (w *TransactionWitnessSet) UnmarshalCBOR(cborData []byte) error {
	w.cborData = cborData
	var fields map[uint]cbor.RawMessage
	if _, err := cbor.Decode(cborData, &fields); err != nil {
		return err
	}
	if raw, ok := fields[witnessKeyVkey]; ok {
		if err := decodeSet(raw, &w.VkeyWitnesses); err != nil {
			return fmt.Errorf("decode vkey witnesses error: %w", err)
		}
	}
	if raw, ok := fields[witnessKeyPlutusData]; ok {
		var items []cbor.RawMessage
		if err := decodeSet(raw, &items); err != nil {
			return fmt.Errorf("decode plutus data witnesses error: %w", err)
		}
		for _, item := range items {
			w.PlutusData = append(w.PlutusData, NewDatumFromCbor(item))
		}
	}
	if raw, ok := fields[witnessKeyRedeemers]; ok {
		redeemers, err := decodeRedeemers(raw)
		if err != nil {
			return fmt.Errorf("decode redeemers error: %w", err)
		}
		w.Redeemers = redeemers
		w.conwayRedeemers = isCborMap(raw)
	}
	return nil
}

func (w TransactionWitnessSet) Cbor() []byte {
	return w.cborData
}

func decodeRedeemers(cborData []byte) ([]Redeemer, error) {
	if isCborMap(cborData) {
		return decodeRedeemerMap(cborData)
	}
	var entries []struct {
		cbor.StructAsArray
		Tag     RedeemerTag
		Index   uint32
		Data    cbor.RawMessage
		ExUnits ExUnits
	}
	if _, err := cbor.Decode(cborData, &entries); err != nil {
		return nil, err
	}
	ret := make([]Redeemer, 0, len(entries))
	for _, entry := range entries {
		ret = append(
			ret,
			Redeemer{
				Tag:     entry.Tag,
				Index:   entry.Index,
				Data:    NewDatumFromCbor(entry.Data),
				ExUnits: entry.ExUnits,
			},
		)
	}
	return ret, nil
}

func decodeRedeemerMap(cborData []byte) ([]Redeemer, error) {
	var ret []Redeemer
	err := walkMap(cborData, func(key, value cbor.RawMessage) error {
		var tmpKey struct {
			cbor.StructAsArray
			Tag   RedeemerTag
			Index uint32
		}
		if _, err := cbor.Decode(key, &tmpKey); err != nil {
			return fmt.Errorf("decode redeemer key error: %w", err)
		}
		var tmpValue struct {
			cbor.StructAsArray
			Data    cbor.RawMessage
			ExUnits ExUnits
		}
		if _, err := cbor.Decode(value, &tmpValue); err != nil {
			return fmt.Errorf("decode redeemer value error: %w", err)
		}
		ret = append(
			ret,
			Redeemer{
				Tag:     tmpKey.Tag,
				Index:   tmpKey.Index,
				Data:    NewDatumFromCbor(tmpValue.Data),
				ExUnits: tmpValue.ExUnits,
			},
		)
		return nil
	})
	return ret, err
}
