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

package txview

import (
	"github.com/bytedance/sonic"
)

// TxInfo is the normalized view of a transaction
type TxInfo struct {
	TxHash                string         `json:"txHash"`
	Era                   string         `json:"era"`
	TxRaw                 string         `json:"txRaw"`
	TxOuts                []TxOut        `json:"txOuts"`
	TxInInfos             []TxInInfo     `json:"txInInfos"`
	TxRefInInfos          []TxInInfo     `json:"txRefInInfos"`
	Collaterals           []TxInInfo     `json:"collaterals,omitempty"`
	Signers               []Signer       `json:"signers"`
	Witnesses             []Witness      `json:"witnesses"`
	ValidityIntervalStart *uint64        `json:"validityIntervalStart,omitempty"`
	Ttl                   *uint64        `json:"ttl,omitempty"`
	Fee                   uint64         `json:"fee"`
	Mint                  []MintEntry    `json:"mint,omitempty"`
	Certificates          []Certificate  `json:"certificates,omitempty"`
	Redeemers             []Redeemer     `json:"redeemers,omitempty"`
	Withdrawals           []Withdrawal   `json:"withdrawals,omitempty"`
	Metadata              map[string]any `json:"metadata,omitempty"`
	CollateralReturn      *TxOut         `json:"collateralReturn,omitempty"`
	TotalCollateral       *uint64        `json:"totalCollateral,omitempty"`
	ScriptIntegrityHash   string         `json:"scriptIntegrityHash,omitempty"`
	NetworkId             *uint8         `json:"networkId,omitempty"`
	IsValid               bool           `json:"isValid"`
}

type labeledValue struct {
	Value string `json:"value"`
	Alias string `json:"alias"`
}

func marshalLabeled(value string, alias string) ([]byte, error) {
	if alias == "" {
		return sonic.Marshal(value)
	}
	return sonic.Marshal(labeledValue{Value: value, Alias: alias})
}

// Address is a bech32 address with an optional human readable alias
type Address struct {
	Value string
	Alias string
}

func (a Address) String() string {
	return a.Value
}

func (a Address) MarshalJSON() ([]byte, error) {
	return marshalLabeled(a.Value, a.Alias)
}

// Signer is a required signer key hash with an optional alias
type Signer struct {
	Value string
	Alias string
}

func (s Signer) String() string {
	return s.Value
}

func (s Signer) MarshalJSON() ([]byte, error) {
	return marshalLabeled(s.Value, s.Alias)
}

// Witness is a witness verification key with an optional alias
type Witness struct {
	Value string
	Alias string
}

func (w Witness) String() string {
	return w.Value
}

func (w Witness) MarshalJSON() ([]byte, error) {
	return marshalLabeled(w.Value, w.Alias)
}

type Value struct {
	Coins  uint64      `json:"coins"`
	Assets *MultiAsset `json:"assets,omitempty"`
}

type TxOut struct {
	Address           Address `json:"address"`
	AddressScriptHash string  `json:"address_script_hash,omitempty"`
	Value             Value   `json:"value"`
	DatumHash         string  `json:"datum_hash,omitempty"`
	Datum             any     `json:"datum,omitempty"`
	DatumInline       bool    `json:"datum_inline"`
}

// TxInInfo is a resolved transaction input. The embedded output has the
// Unresolved address and no value when the spent output couldn't be found
type TxInInfo struct {
	TransactionId string `json:"transaction_id"`
	OutputIndex   uint32 `json:"output_index"`
	TxOut
}

func (i TxInInfo) Resolved() bool {
	return i.Address.Value != UnresolvedAddress
}

type MintEntry struct {
	PolicyId string           `json:"policyId"`
	Assets   map[string]int64 `json:"assets"`
}

type Certificate struct {
	Type   string         `json:"type"`
	Detail map[string]any `json:"detail"`
}

type ExUnits struct {
	Mem   uint64 `json:"mem"`
	Steps uint64 `json:"steps"`
}

type Redeemer struct {
	Purpose string  `json:"purpose"`
	Index   uint32  `json:"index"`
	Data    any     `json:"data"`
	ExUnits ExUnits `json:"exUnits"`
}

type Withdrawal struct {
	StakeAddress string `json:"stakeAddress"`
	Amount       uint64 `json:"amount"`
}
