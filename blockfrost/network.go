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

import "fmt"

type Network string

const (
	NetworkMainnet Network = "mainnet"
	NetworkPreprod Network = "preprod"
	NetworkPreview Network = "preview"
)

var networkBaseURLs = map[Network]string{
	NetworkMainnet: "https://cardano-mainnet.blockfrost.io/api/v0",
	NetworkPreprod: "https://cardano-preprod.blockfrost.io/api/v0",
	NetworkPreview: "https://cardano-preview.blockfrost.io/api/v0",
}

// ParseNetwork returns the Network with the given name
func ParseNetwork(name string) (Network, error) {
	network := Network(name)
	if _, ok := networkBaseURLs[network]; !ok {
		return "", fmt.Errorf("unknown network: %s", name)
	}
	return network, nil
}

// BaseURL returns the API endpoint for the network
func (n Network) BaseURL() (string, error) {
	baseURL, ok := networkBaseURLs[n]
	if !ok {
		return "", fmt.Errorf("unknown network: %s", string(n))
	}
	return baseURL, nil
}

func (n Network) String() string {
	return string(n)
}
