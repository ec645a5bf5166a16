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
	"encoding/hex"
	"fmt"

	"github.com/blinklabs-io/gouroboros/cbor"
	"github.com/blinklabs-io/gouroboros/ledger/common"
)

type MultiAssetTypeOutput = uint64

type MultiAssetTypeMint = int64

// Asset is a single asset quantity under a policy
type Asset[T int64 | uint64] struct {
	Name   []byte
	Amount T
}

// NameHex returns the hex-encoded asset name, which may be empty
func (a Asset[T]) NameHex() string {
	return hex.EncodeToString(a.Name)
}

// PolicyAssets groups the assets of a single policy
type PolicyAssets[T int64 | uint64] struct {
	PolicyId common.Blake2b224
	Assets   []Asset[T]
}

// MultiAsset is a policy/asset quantity map that keeps the order in which
// entries were encoded
type MultiAsset[T int64 | uint64] struct {
	policies []PolicyAssets[T]
}

func (m *MultiAsset[T]) UnmarshalCBOR(data []byte) error {
	m.policies = nil
	return walkMap(data, func(key, value cbor.RawMessage) error {
		var policyId common.Blake2b224
		if _, err := cbor.Decode(key, &policyId); err != nil {
			return fmt.Errorf("decode policy ID error: %w", err)
		}
		entry := PolicyAssets[T]{PolicyId: policyId}
		err := walkMap(value, func(nameRaw, amountRaw cbor.RawMessage) error {
			var name []byte
			if _, err := cbor.Decode(nameRaw, &name); err != nil {
				return fmt.Errorf("decode asset name error: %w", err)
			}
			var amount T
			if _, err := cbor.Decode(amountRaw, &amount); err != nil {
				return fmt.Errorf("decode asset amount error: %w", err)
			}
			entry.Assets = append(
				entry.Assets,
				Asset[T]{Name: name, Amount: amount},
			)
			return nil
		})
		if err != nil {
			return err
		}
		m.policies = append(m.policies, entry)
		return nil
	})
}

// Policies returns the policies in encoded order
func (m *MultiAsset[T]) Policies() []PolicyAssets[T] {
	if m == nil {
		return nil
	}
	return m.policies
}

// Len returns the total number of assets across all policies
func (m *MultiAsset[T]) Len() int {
	if m == nil {
		return 0
	}
	ret := 0
	for _, p := range m.policies {
		ret += len(p.Assets)
	}
	return ret
}

