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

package formatter

import (
	"encoding/json"
	"fmt"
	"math"
	"math/big"
	"strconv"

	"github.com/bytedance/sonic"
	"github.com/shopspring/decimal"
)

// The helpers below accept both the projected datum tree (hex strings,
// decimal strings, arrays and {"constructor", "fields"} objects) and the
// detailed JSON schema returned by Blockfrost ({"bytes"}, {"int"}, {"list"})

const lovelacePerAda = 6

func getBytes(field any) string {
	switch v := field.(type) {
	case string:
		return v
	case map[string]any:
		if b, ok := v["bytes"].(string); ok {
			return b
		}
	}
	return ""
}

func getInt(field any) *big.Int {
	switch v := field.(type) {
	case string:
		if ret, ok := new(big.Int).SetString(v, 10); ok {
			return ret
		}
	case int64:
		return big.NewInt(v)
	case uint64:
		return new(big.Int).SetUint64(v)
	case int:
		return big.NewInt(int64(v))
	case json.Number:
		if ret, ok := new(big.Int).SetString(v.String(), 10); ok {
			return ret
		}
	case float64:
		if v == math.Trunc(v) && !math.IsInf(v, 0) {
			ret, _ := big.NewFloat(v).Int(nil)
			return ret
		}
	case *big.Int:
		if v != nil {
			return v
		}
	case map[string]any:
		if inner, ok := v["int"]; ok {
			return getInt(inner)
		}
	}
	return new(big.Int)
}

func getBytesList(field any) []string {
	var items []any
	switch v := field.(type) {
	case []any:
		items = v
	case map[string]any:
		items, _ = v["list"].([]any)
	}
	ret := make([]string, 0, len(items))
	for _, item := range items {
		ret = append(ret, getBytes(item))
	}
	return ret
}

// getConstr returns the tag and fields of a constructor node
func getConstr(field any) (uint64, []any, bool) {
	v, ok := field.(map[string]any)
	if !ok {
		return 0, nil, false
	}
	var tag uint64
	switch t := v["constructor"].(type) {
	case uint64:
		tag = t
	case int64:
		if t < 0 {
			return 0, nil, false
		}
		tag = uint64(t)
	case int:
		if t < 0 {
			return 0, nil, false
		}
		tag = uint64(t)
	case float64:
		if t < 0 || t != math.Trunc(t) {
			return 0, nil, false
		}
		tag = uint64(t)
	case json.Number:
		parsed, err := strconv.ParseUint(t.String(), 10, 64)
		if err != nil {
			return 0, nil, false
		}
		tag = parsed
	case string:
		parsed, err := strconv.ParseUint(t, 10, 64)
		if err != nil {
			return 0, nil, false
		}
		tag = parsed
	default:
		return 0, nil, false
	}
	fields, _ := v["fields"].([]any)
	return tag, fields, true
}

// isBoolTrue decodes a Plutus boolean, where True is constructor 1
func isBoolTrue(field any) bool {
	tag, _, ok := getConstr(field)
	return ok && tag == 1
}

func credentialString(field any) (string, string) {
	tag, fields, _ := getConstr(field)
	credType := "Script"
	if tag == 0 {
		credType = "PubKey"
	}
	var credHash string
	if len(fields) > 0 {
		credHash = getBytes(fields[0])
	}
	return credType, credHash
}

// formatPlutusAddress renders an on-chain address structure,
// Constr 0 [Credential, Maybe StakingCredential]
func formatPlutusAddress(field any) string {
	tag, fields, ok := getConstr(field)
	if !ok || tag != 0 || len(fields) < 2 {
		return jsonString(field)
	}
	credType, credHash := credentialString(fields[0])
	ret := credType + ": " + credHash
	// Just (Constr 0 [StakingHash (Constr 0 [Credential])])
	if stakeTag, stakeFields, ok := getConstr(fields[1]); ok && stakeTag == 0 && len(stakeFields) > 0 {
		if innerTag, innerFields, ok := getConstr(stakeFields[0]); ok && innerTag == 0 && len(innerFields) > 0 {
			stakeType, stakeHash := credentialString(innerFields[0])
			ret += fmt.Sprintf(" / Stake(%s: %s)", stakeType, stakeHash)
		}
	}
	return ret
}

// formatLovelace renders an amount as "<ada> ADA (<lovelace> lovelace)"
func formatLovelace(lovelace *big.Int) string {
	ada := decimal.NewFromBigInt(lovelace, -lovelacePerAda)
	return fmt.Sprintf("%s ADA (%s lovelace)", ada.StringFixed(2), lovelace.String())
}

// intValue returns a number when it is exactly representable in JSON and a
// decimal string otherwise
func intValue(v *big.Int) any {
	if v.IsInt64() {
		i := v.Int64()
		if i <= 1<<53-1 && i >= -(1<<53-1) {
			return i
		}
	}
	return v.String()
}

func jsonString(v any) string {
	ret, err := sonic.MarshalString(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return ret
}
