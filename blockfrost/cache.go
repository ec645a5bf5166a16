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

import "sync"

// Cache stores fetched UTxO sets by transaction hash. Confirmed transaction
// outputs never change, so entries are never invalidated
type Cache interface {
	Get(txHash string) (*TxUtxos, bool)
	Set(txHash string, utxos *TxUtxos)
}

// MemoryCache is an unbounded in-memory Cache. The first value stored for a
// key wins
type MemoryCache struct {
	sync.RWMutex
	entries map[string]*TxUtxos
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{
		entries: make(map[string]*TxUtxos),
	}
}

func (c *MemoryCache) Get(txHash string) (*TxUtxos, bool) {
	c.RLock()
	defer c.RUnlock()
	utxos, ok := c.entries[txHash]
	return utxos, ok
}

func (c *MemoryCache) Set(txHash string, utxos *TxUtxos) {
	c.Lock()
	defer c.Unlock()
	if _, ok := c.entries[txHash]; ok {
		return
	}
	c.entries[txHash] = utxos
}

func (c *MemoryCache) Len() int {
	c.RLock()
	defer c.RUnlock()
	return len(c.entries)
}
