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

package main

import (
	"strings"
	"testing"

	"github.com/blinklabs-io/txview"
	"github.com/blinklabs-io/txview/formatter"
	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const usdcxMarkerTokenHex = "555344435850726f746f636f6c506172616d6574657273"

func markerAssets() *txview.MultiAsset {
	ret := txview.NewMultiAsset()
	ret.Set(strings.Repeat("ab", 28)+usdcxMarkerTokenHex, 1)
	return ret
}

func TestNewOutputFormattedDatums(t *testing.T) {
	info := &txview.TxInfo{
		TxHash: "00",
		TxOuts: []txview.TxOut{
			{Value: txview.Value{Coins: 1, Assets: markerAssets()}, Datum: "not a datum"},
			// Marker without a datum
			{Value: txview.Value{Coins: 1, Assets: markerAssets()}},
			// Datum without assets
			{Value: txview.Value{Coins: 1}, Datum: "not a datum"},
		},
	}
	out := newOutput(info)
	require.Len(t, out.FormattedDatums, 1)
	assert.Equal(t, 0, out.FormattedDatums[0].OutputIndex)
	assert.Equal(t, formatter.USDCXProtocolParametersLabel, out.FormattedDatums[0].Label)
	assert.Equal(t, "not a datum", out.FormattedDatums[0].Formatted)

	encoded, err := sonic.MarshalString(out)
	require.NoError(t, err)
	var decoded map[string]any
	require.NoError(t, sonic.UnmarshalString(encoded, &decoded))
	assert.Equal(t, "00", decoded["txHash"])
	assert.Contains(t, decoded, "formattedDatums")
}

func TestNewOutputNoMatches(t *testing.T) {
	out := newOutput(&txview.TxInfo{TxOuts: []txview.TxOut{{}}})
	assert.Nil(t, out.FormattedDatums)

	encoded, err := sonic.MarshalString(out)
	require.NoError(t, err)
	assert.NotContains(t, encoded, "formattedDatums")
}
