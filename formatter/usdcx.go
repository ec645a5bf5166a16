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

const USDCXProtocolParametersLabel = "USDCXProtocolParameters"

const usdcxProtocolParametersFieldCount = 11

// FormatUSDCXProtocolParameters renders the USDCx protocol parameters datum,
// a constructor 0 record of 11 positional fields
func FormatUSDCXProtocolParameters(datum any) (ret Result) {
	ret = Result{Label: USDCXProtocolParametersLabel, Formatted: datum}
	defer func() {
		if r := recover(); r != nil {
			ret = Result{Label: USDCXProtocolParametersLabel, Formatted: datum}
		}
	}()
	tag, f, ok := getConstr(datum)
	if !ok || tag != 0 || len(f) < usdcxProtocolParametersFieldCount {
		return ret
	}
	ret.Formatted = map[string]any{
		"mintingLogicScriptHash":  getBytes(f[0]),
		"feeScriptAddress":        formatPlutusAddress(f[1]),
		"usdcxPolicyId":           getBytes(f[2]),
		"circleAttestationKeys":   getBytesList(f[3]),
		"cardanoAttestationKeys":  getBytesList(f[4]),
		"domainManagerKey":        getBytes(f[5]),
		"adminKeys":               getBytesList(f[6]),
		"adminSignatureThreshold": intValue(getInt(f[7])),
		"isPaused":                isBoolTrue(f[8]),
		"nonceListScriptHash":     getBytes(f[9]),
		"minDepositFee":           formatLovelace(getInt(f[10])),
	}
	return ret
}
