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
	"errors"
	"fmt"

	"github.com/blinklabs-io/gouroboros/cbor"
	"github.com/blinklabs-io/gouroboros/ledger/common"
	"github.com/blinklabs-io/plutigo/data"
)

const (
	outputKeyAddress     = 0
	outputKeyAmount      = 1
	outputKeyDatumOption = 2
	outputKeyScriptRef   = 3
)

const (
	DatumOptionTypeHash = 0
	DatumOptionTypeData = 1
)

// Value is an amount of lovelace with optional native assets
type Value struct {
	Coin   uint64
	Assets *MultiAsset[MultiAssetTypeOutput]
}

func (v *Value) UnmarshalCBOR(cborData []byte) error {
	if isCborArray(cborData) {
		var tmp struct {
			cbor.StructAsArray
			Coin   uint64
			Assets cbor.RawMessage
		}
		if _, err := cbor.Decode(cborData, &tmp); err != nil {
			return err
		}
		v.Coin = tmp.Coin
		v.Assets = &MultiAsset[MultiAssetTypeOutput]{}
		return v.Assets.UnmarshalCBOR(tmp.Assets)
	}
	_, err := cbor.Decode(cborData, &v.Coin)
	return err
}

// Datum is a Plutus data value along with its original encoding. Data is nil
// when the encoding could not be decoded as Plutus data
type Datum struct {
	cborData []byte
	Data     data.PlutusData
}

func NewDatumFromCbor(cborData []byte) *Datum {
	ret := &Datum{cborData: cborData}
	if pd, err := data.Decode(cborData); err == nil {
		ret.Data = pd
	}
	return ret
}

func (d *Datum) Cbor() []byte {
	return d.cborData
}

// TransactionOutput is a transaction output in either the legacy array form
// or the post-Alonzo map form
type TransactionOutput struct {
	cborData      []byte
	OutputAddress common.Address
	OutputAmount  Value
	DatumHash     *common.Blake2b256
	InlineDatum   *Datum
	ScriptRef     cbor.RawMessage
	legacyOutput  bool
}

func NewTransactionOutputFromCbor(cborData []byte) (*TransactionOutput, error) {
	var ret TransactionOutput
	if err := ret.UnmarshalCBOR(cborData); err != nil {
		return nil, err
	}
	return &ret, nil
}

func (o *TransactionOutput) UnmarshalCBOR(cborData []byte) error {
	o.cborData = cborData
	if isCborArray(cborData) {
		return o.unmarshalLegacy(cborData)
	}
	if !isCborMap(cborData) {
		return errors.New("transaction output is neither an array nor a map")
	}
	var fields map[uint]cbor.RawMessage
	if _, err := cbor.Decode(cborData, &fields); err != nil {
		return err
	}
	addrRaw, ok := fields[outputKeyAddress]
	if !ok {
		return errors.New("transaction output has no address")
	}
	if _, err := cbor.Decode(addrRaw, &o.OutputAddress); err != nil {
		return fmt.Errorf("decode output address error: %w", err)
	}
	if amountRaw, ok := fields[outputKeyAmount]; ok {
		if err := o.OutputAmount.UnmarshalCBOR(amountRaw); err != nil {
			return fmt.Errorf("decode output amount error: %w", err)
		}
	}
	if datumRaw, ok := fields[outputKeyDatumOption]; ok {
		if err := o.unmarshalDatumOption(datumRaw); err != nil {
			return fmt.Errorf("decode output datum option error: %w", err)
		}
	}
	if scriptRaw, ok := fields[outputKeyScriptRef]; ok {
		o.ScriptRef = scriptRaw
	}
	return nil
}

func (o *TransactionOutput) unmarshalLegacy(cborData []byte) error {
	var items []cbor.RawMessage
	if _, err := cbor.Decode(cborData, &items); err != nil {
		return err
	}
	if len(items) < 2 || len(items) > 3 {
		return fmt.Errorf("unexpected legacy output item count: %d", len(items))
	}
	o.legacyOutput = true
	if _, err := cbor.Decode(items[0], &o.OutputAddress); err != nil {
		return fmt.Errorf("decode output address error: %w", err)
	}
	if err := o.OutputAmount.UnmarshalCBOR(items[1]); err != nil {
		return fmt.Errorf("decode output amount error: %w", err)
	}
	if len(items) == 3 {
		var datumHash common.Blake2b256
		if _, err := cbor.Decode(items[2], &datumHash); err != nil {
			return fmt.Errorf("decode output datum hash error: %w", err)
		}
		o.DatumHash = &datumHash
	}
	return nil
}

func (o *TransactionOutput) unmarshalDatumOption(cborData []byte) error {
	datumOptionType, err := cbor.DecodeIdFromList(cborData)
	if err != nil {
		return err
	}
	switch datumOptionType {
	case DatumOptionTypeHash:
		var tmp struct {
			cbor.StructAsArray
			Type int
			Hash common.Blake2b256
		}
		if _, err := cbor.Decode(cborData, &tmp); err != nil {
			return err
		}
		o.DatumHash = &tmp.Hash
	case DatumOptionTypeData:
		var tmp struct {
			cbor.StructAsArray
			Type     int
			DataCbor []byte
		}
		if _, err := cbor.Decode(cborData, &tmp); err != nil {
			return err
		}
		o.InlineDatum = NewDatumFromCbor(tmp.DataCbor)
	default:
		return fmt.Errorf("unsupported datum option type: %d", datumOptionType)
	}
	return nil
}

func (o TransactionOutput) Address() common.Address {
	return o.OutputAddress
}

func (o TransactionOutput) Amount() uint64 {
	return o.OutputAmount.Coin
}

func (o TransactionOutput) Assets() *MultiAsset[MultiAssetTypeOutput] {
	return o.OutputAmount.Assets
}

// HasScriptRef reports whether the output carries a reference script
func (o TransactionOutput) HasScriptRef() bool {
	return len(o.ScriptRef) > 0
}

// IsLegacy reports whether the output used the pre-Babbage array encoding
func (o TransactionOutput) IsLegacy() bool {
	return o.legacyOutput
}

func (o TransactionOutput) Cbor() []byte {
	return o.cborData
}
