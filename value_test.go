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
	"testing"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMultiAssetOrder(t *testing.T) {
	ma := NewMultiAsset()
	ma.Set("ff00", 5)
	ma.Set("aa00", 7)
	ma.Set("cc", 1)
	// Replacing keeps the original position
	ma.Set("ff00", 9)

	assert.Equal(t, 3, ma.Len())
	assert.Equal(t, []string{"ff00", "aa00", "cc"}, ma.AssetIds())
	qty, ok := ma.Get("ff00")
	require.True(t, ok)
	assert.Equal(t, uint64(9), qty)
	_, ok = ma.Get("missing")
	assert.False(t, ok)

	out, err := sonic.MarshalString(Value{Coins: 1, Assets: ma})
	require.NoError(t, err)
	assert.Equal(t, `{"coins":1,"assets":{"ff00":9,"aa00":7,"cc":1}}`, out)
}

func TestMultiAssetNil(t *testing.T) {
	var ma *MultiAsset
	assert.Equal(t, 0, ma.Len())
	assert.Nil(t, ma.AssetIds())
	assert.Nil(t, ma.Entries())

	out, err := sonic.MarshalString(Value{Coins: 1})
	require.NoError(t, err)
	assert.Equal(t, `{"coins":1}`, out)
}

func TestMultiAssetZeroValue(t *testing.T) {
	var ma MultiAsset
	ma.Set("01", 1)
	assert.Equal(t, []string{"01"}, ma.AssetIds())
}

func TestLabeledMarshal(t *testing.T) {
	testDefs := []struct {
		name     string
		value    any
		expected string
	}{
		{name: "AddressBare", value: Address{Value: "addr1x"}, expected: `"addr1x"`},
		{
			name:     "AddressAlias",
			value:    Address{Value: "addr1x", Alias: "treasury"},
			expected: `{"value":"addr1x","alias":"treasury"}`,
		},
		{name: "SignerBare", value: Signer{Value: "0e"}, expected: `"0e"`},
		{
			name:     "WitnessAlias",
			value:    Witness{Value: "a7", Alias: "admin"},
			expected: `{"value":"a7","alias":"admin"}`,
		},
	}
	for _, testDef := range testDefs {
		t.Run(testDef.name, func(t *testing.T) {
			out, err := sonic.MarshalString(testDef.value)
			require.NoError(t, err)
			assert.Equal(t, testDef.expected, out)
		})
	}
}
