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

// Package formatter maps marker tokens found in an output's assets to
// formatters that render the output's datum in an application specific way.
package formatter

import (
	"encoding/hex"
	"sync"
)

// PolicyIdHexLength is the length of the policy ID prefix of an asset ID
const PolicyIdHexLength = 56

// Result is the output of a Formatter
type Result struct {
	Label     string `json:"label"`
	Formatted any    `json:"formatted"`
}

// Formatter renders a projected datum tree. It must not panic or fail, and
// returns the datum unchanged under its label when the shape doesn't match
type Formatter func(datum any) Result

// AssetLister is implemented by asset collections that can list their asset
// IDs (policy ID hex followed by asset name hex) in order
type AssetLister interface {
	AssetIds() []string
}

var (
	registryMutex sync.RWMutex
	registry      = make(map[string]Formatter)
)

func init() {
	registerHandlers(registry)
}

// Register adds a formatter for outputs holding a token with the given
// (decoded) name, replacing any existing formatter for that name
func Register(tokenName string, f Formatter) {
	registryMutex.Lock()
	defer registryMutex.Unlock()
	registry[tokenName] = f
}

// Match returns the formatter of the first asset ID whose token name is
// registered. Asset IDs without a token name or whose token name isn't valid
// hex are skipped
func Match(assetIds []string) (Formatter, bool) {
	registryMutex.RLock()
	defer registryMutex.RUnlock()
	for _, assetId := range assetIds {
		name, ok := tokenName(assetId)
		if !ok {
			continue
		}
		if f, ok := registry[name]; ok {
			return f, true
		}
	}
	return nil, false
}

// MatchAssets is Match on the asset IDs of an asset collection
func MatchAssets(assets AssetLister) (Formatter, bool) {
	if assets == nil {
		return nil, false
	}
	return Match(assets.AssetIds())
}

func tokenName(assetId string) (string, bool) {
	if len(assetId) <= PolicyIdHexLength {
		return "", false
	}
	nameBytes, err := hex.DecodeString(assetId[PolicyIdHexLength:])
	if err != nil {
		return "", false
	}
	return string(nameBytes), true
}

func registerHandlers(m map[string]Formatter) {
	m[USDCXProtocolParametersLabel] = FormatUSDCXProtocolParameters
}
