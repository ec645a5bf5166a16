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

package formatter_test

import (
	"encoding/json"
	"math/big"
	"testing"

	"github.com/blinklabs-io/plutigo/data"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blinklabs-io/txview/formatter"
	"github.com/blinklabs-io/txview/plutusdata"
)

const (
	testPolicyId          = "b2b2b2b2b2b2b2b2b2b2b2b2b2b2b2b2b2b2b2b2b2b2b2b2b2b2b2b2"
	usdcxTokenNameHex     = "555344435850726f746f636f6c506172616d6574657273"
	usdcxAssetId          = testPolicyId + usdcxTokenNameHex
	unregisteredAssetId   = testPolicyId + "746f6b42"
	testCredentialHashHex = "01010101010101010101010101010101010101010101010101010101"
)

func usdcxDatum(tag uint, fieldCount int) any {
	fields := []data.PlutusData{
		data.NewByteString([]byte{0xaa}),
		data.NewConstr(
			0,
			data.NewConstr(1, data.NewByteString([]byte{0x01, 0x02})),
			data.NewConstr(
				0,
				data.NewConstr(0, data.NewConstr(0, data.NewByteString([]byte{0x03}))),
			),
		),
		data.NewByteString([]byte{0xbb}),
		data.NewList(data.NewByteString([]byte{0x0c}), data.NewByteString([]byte{0x0d})),
		data.NewList(),
		data.NewByteString([]byte{0xdd}),
		data.NewList(data.NewByteString([]byte{0x0e})),
		data.NewInteger(big.NewInt(2)),
		data.NewConstr(1),
		data.NewByteString([]byte{0xee}),
		data.NewInteger(big.NewInt(1000000)),
	}
	return plutusdata.ToJSON(data.NewConstr(tag, fields[:fieldCount]...))
}

func TestMatch(t *testing.T) {
	testDefs := []struct {
		name     string
		assetIds []string
		matched  bool
	}{
		{name: "Empty", assetIds: nil},
		{name: "Registered", assetIds: []string{usdcxAssetId}, matched: true},
		{name: "RegisteredAfterOthers", assetIds: []string{unregisteredAssetId, testPolicyId, usdcxAssetId}, matched: true},
		{name: "PolicyOnly", assetIds: []string{testPolicyId}},
		{name: "Unregistered", assetIds: []string{unregisteredAssetId}},
		{name: "OddLength", assetIds: []string{testPolicyId + "555"}},
		{name: "InvalidHex", assetIds: []string{testPolicyId + "zz"}},
		{name: "ShortId", assetIds: []string{usdcxTokenNameHex}},
	}
	for _, testDef := range testDefs {
		t.Run(testDef.name, func(t *testing.T) {
			_, ok := formatter.Match(testDef.assetIds)
			if ok != testDef.matched {
				t.Fatalf("did not get expected match result: got %v, wanted %v", ok, testDef.matched)
			}
		})
	}
}

type assetList []string

func (a assetList) AssetIds() []string {
	return a
}

func TestMatchFirstWins(t *testing.T) {
	formatter.Register("FirstMarker", func(datum any) formatter.Result {
		return formatter.Result{Label: "FirstMarker", Formatted: datum}
	})
	f, ok := formatter.MatchAssets(
		assetList{testPolicyId + "46697273744d61726b6572", usdcxAssetId},
	)
	require.True(t, ok)
	assert.Equal(t, "FirstMarker", f(nil).Label)
	f, ok = formatter.MatchAssets(
		assetList{usdcxAssetId, testPolicyId + "46697273744d61726b6572"},
	)
	require.True(t, ok)
	assert.Equal(t, formatter.USDCXProtocolParametersLabel, f(nil).Label)
	_, ok = formatter.MatchAssets(nil)
	assert.False(t, ok)
}

func TestFormatUSDCXProtocolParameters(t *testing.T) {
	f, ok := formatter.Match([]string{usdcxAssetId})
	require.True(t, ok)
	result := f(usdcxDatum(0, 11))
	assert.Equal(t, formatter.USDCXProtocolParametersLabel, result.Label)
	formatted, ok := result.Formatted.(map[string]any)
	require.True(t, ok, "formatted is %T", result.Formatted)
	assert.Equal(t, "1.00 ADA (1000000 lovelace)", formatted["minDepositFee"])
	assert.Equal(t, "aa", formatted["mintingLogicScriptHash"])
	assert.Equal(t, "Script: 0102 / Stake(PubKey: 03)", formatted["feeScriptAddress"])
	assert.Equal(t, "bb", formatted["usdcxPolicyId"])
	assert.Equal(t, []string{"0c", "0d"}, formatted["circleAttestationKeys"])
	assert.Equal(t, []string{}, formatted["cardanoAttestationKeys"])
	assert.Equal(t, "dd", formatted["domainManagerKey"])
	assert.Equal(t, []string{"0e"}, formatted["adminKeys"])
	assert.Equal(t, int64(2), formatted["adminSignatureThreshold"])
	assert.Equal(t, true, formatted["isPaused"])
	assert.Equal(t, "ee", formatted["nonceListScriptHash"])
}

func TestFormatUSDCXProtocolParametersFallback(t *testing.T) {
	testDefs := []struct {
		name  string
		datum any
	}{
		{name: "WrongTag", datum: usdcxDatum(1, 11)},
		{name: "TooFewFields", datum: usdcxDatum(0, 10)},
		{name: "NotConstr", datum: "d87980"},
		{name: "Nil", datum: nil},
	}
	for _, testDef := range testDefs {
		t.Run(testDef.name, func(t *testing.T) {
			result := formatter.FormatUSDCXProtocolParameters(testDef.datum)
			assert.Equal(t, formatter.USDCXProtocolParametersLabel, result.Label)
			assert.Equal(t, testDef.datum, result.Formatted)
		})
	}
}

func TestFormatUSDCXProtocolParametersDetailedSchema(t *testing.T) {
	// Blockfrost json_value form, numbers decoded as float64
	datum := map[string]any{
		"constructor": float64(0),
		"fields": []any{
			map[string]any{"bytes": "aa"},
			map[string]any{
				"constructor": float64(0),
				"fields": []any{
					map[string]any{"constructor": float64(0), "fields": []any{map[string]any{"bytes": testCredentialHashHex}}},
					map[string]any{"constructor": float64(1), "fields": []any{}},
				},
			},
			map[string]any{"bytes": "bb"},
			map[string]any{"list": []any{map[string]any{"bytes": "0c"}}},
			map[string]any{"list": []any{}},
			map[string]any{"bytes": "dd"},
			map[string]any{"list": []any{}},
			map[string]any{"int": float64(3)},
			map[string]any{"constructor": float64(0), "fields": []any{}},
			map[string]any{"bytes": "ee"},
			map[string]any{"int": float64(2500000)},
		},
	}
	result := formatter.FormatUSDCXProtocolParameters(datum)
	formatted, ok := result.Formatted.(map[string]any)
	require.True(t, ok, "formatted is %T", result.Formatted)
	assert.Equal(t, "2.50 ADA (2500000 lovelace)", formatted["minDepositFee"])
	assert.Equal(t, "PubKey: "+testCredentialHashHex, formatted["feeScriptAddress"])
	assert.Equal(t, []string{"0c"}, formatted["circleAttestationKeys"])
	assert.Equal(t, int64(3), formatted["adminSignatureThreshold"])
	assert.Equal(t, false, formatted["isPaused"])
}

func TestFormatUSDCXProtocolParametersJSONNumbers(t *testing.T) {
	// Blockfrost json_value form decoded with json.Number
	datum := map[string]any{
		"constructor": json.Number("0"),
		"fields": []any{
			map[string]any{"bytes": "aa"},
			map[string]any{
				"constructor": json.Number("0"),
				"fields": []any{
					map[string]any{"constructor": json.Number("1"), "fields": []any{map[string]any{"bytes": testCredentialHashHex}}},
					map[string]any{"constructor": json.Number("1"), "fields": []any{}},
				},
			},
			map[string]any{"bytes": "bb"},
			map[string]any{"list": []any{}},
			map[string]any{"list": []any{}},
			map[string]any{"bytes": "dd"},
			map[string]any{"list": []any{}},
			map[string]any{"int": json.Number("2")},
			map[string]any{"constructor": json.Number("1"), "fields": []any{}},
			map[string]any{"bytes": "ee"},
			map[string]any{"int": json.Number("18446744073709551617")},
		},
	}
	result := formatter.FormatUSDCXProtocolParameters(datum)
	formatted, ok := result.Formatted.(map[string]any)
	require.True(t, ok, "formatted is %T", result.Formatted)
	assert.Equal(t, "18446744073709.55 ADA (18446744073709551617 lovelace)", formatted["minDepositFee"])
	assert.Equal(t, "Script: "+testCredentialHashHex, formatted["feeScriptAddress"])
	assert.Equal(t, int64(2), formatted["adminSignatureThreshold"])
	assert.Equal(t, true, formatted["isPaused"])
}
