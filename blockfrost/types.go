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

package blockfrost

// Amount is a single entry of a UTxO's amount list
type Amount struct {
	Unit     string `json:"unit"`
	Quantity string `json:"quantity"`
}

// Utxo is a transaction input or output as returned by /txs/{hash}/utxos
type Utxo struct {
	Address             string   `json:"address"`
	TxHash              string   `json:"tx_hash"`
	TxIndex             uint32   `json:"tx_index"`
	OutputIndex         uint32   `json:"output_index"`
	Amount              []Amount `json:"amount"`
	InlineDatum         *string  `json:"inline_datum"`
	DataHash            *string  `json:"data_hash"`
	ReferenceScriptHash *string  `json:"reference_script_hash"`
	Collateral          bool     `json:"collateral"`
	Reference           bool     `json:"reference"`
}

// TxUtxos is the full response of /txs/{hash}/utxos
type TxUtxos struct {
	Hash    string `json:"hash"`
	Inputs  []Utxo `json:"inputs"`
	Outputs []Utxo `json:"outputs"`
}

// AssetQuantity is a non-lovelace amount, keyed by the concatenated policy ID
// and asset name hex
type AssetQuantity struct {
	Unit     string
	Quantity uint64
}

// ResolvedUtxo is a single output located within a fetched UTxO set. Assets
// keep the order of the response. InlineDatum holds the parsed JSON value or
// the raw string when it isn't valid JSON
type ResolvedUtxo struct {
	Address     string
	OutputIndex uint32
	Lovelace    uint64
	Assets      []AssetQuantity
	DatumHash   string
	InlineDatum any
	ScriptHash  string
}

type datumResponse struct {
	JsonValue any `json:"json_value"`
}
