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
	"context"

	"github.com/blinklabs-io/txview/blockfrost"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// UtxoResolver looks up the outputs spent by transaction inputs.
	// *blockfrost.Client implements it
	UtxoResolver interface {
		FetchUtxoSet(ctx context.Context, txHash string) (*blockfrost.TxUtxos, error)
		ResolvePointer(ctx context.Context, txHash string, outputIndex uint32) (*blockfrost.ResolvedUtxo, error)
	}

	// DatumFetcher looks up a datum by its hash. A nil result means the datum
	// is unknown
	DatumFetcher interface {
		FetchDatumByHash(ctx context.Context, datumHash string) any
	}
)

var (
	_ UtxoResolver = (*blockfrost.Client)(nil)
	_ DatumFetcher = (*blockfrost.Client)(nil)
)
