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
	"bytes"
	"strconv"

	"github.com/blinklabs-io/txview/blockfrost"
	"github.com/blinklabs-io/txview/ledger"
	"github.com/bytedance/sonic"
)

// AssetEntry is a single asset quantity within a MultiAsset
type AssetEntry struct {
	AssetId  string
	Quantity uint64
}

// MultiAsset maps asset IDs (policy ID hex followed by asset name hex) to
// quantities. Entries keep their insertion order, which is also the order of
// the JSON object produced by MarshalJSON
type MultiAsset struct {
	entries []AssetEntry
	index   map[string]int
}

func NewMultiAsset() *MultiAsset {
	return &MultiAsset{
		index: make(map[string]int),
	}
}

// Set stores the quantity for an asset ID. Setting an existing ID replaces
// its quantity and keeps its position
func (m *MultiAsset) Set(assetId string, quantity uint64) {
	if m.index == nil {
		m.index = make(map[string]int)
	}
	if idx, ok := m.index[assetId]; ok {
		m.entries[idx].Quantity = quantity
		return
	}
	m.index[assetId] = len(m.entries)
	m.entries = append(m.entries, AssetEntry{AssetId: assetId, Quantity: quantity})
}

func (m *MultiAsset) Get(assetId string) (uint64, bool) {
	if m == nil {
		return 0, false
	}
	idx, ok := m.index[assetId]
	if !ok {
		return 0, false
	}
	return m.entries[idx].Quantity, true
}

func (m *MultiAsset) Len() int {
	if m == nil {
		return 0
	}
	return len(m.entries)
}

func (m *MultiAsset) Entries() []AssetEntry {
	if m == nil {
		return nil
	}
	return m.entries
}

// AssetIds returns the asset IDs in insertion order
func (m *MultiAsset) AssetIds() []string {
	if m == nil {
		return nil
	}
	ret := make([]string, 0, len(m.entries))
	for _, entry := range m.entries {
		ret = append(ret, entry.AssetId)
	}
	return ret
}

func (m *MultiAsset) MarshalJSON() ([]byte, error) {
	if m == nil {
		return []byte("null"), nil
	}
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, entry := range m.entries {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := sonic.MarshalString(entry.AssetId)
		if err != nil {
			return nil, err
		}
		buf.WriteString(key)
		buf.WriteByte(':')
		buf.WriteString(strconv.FormatUint(entry.Quantity, 10))
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// multiAssetFromLedger flattens a decoded output multi-asset in CBOR order.
// It returns nil when there are no assets
func multiAssetFromLedger(assets *ledger.MultiAsset[ledger.MultiAssetTypeOutput]) *MultiAsset {
	if assets.Len() == 0 {
		return nil
	}
	ret := NewMultiAsset()
	for _, policy := range assets.Policies() {
		policyId := policy.PolicyId.String()
		for _, asset := range policy.Assets {
			ret.Set(policyId+asset.NameHex(), asset.Amount)
		}
	}
	return ret
}

// multiAssetFromResolved keeps the order of the indexer response. It returns
// nil when there are no assets
func multiAssetFromResolved(assets []blockfrost.AssetQuantity) *MultiAsset {
	if len(assets) == 0 {
		return nil
	}
	ret := NewMultiAsset()
	for _, asset := range assets {
		ret.Set(asset.Unit, asset.Quantity)
	}
	return ret
}
