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
	"encoding/hex"
	"fmt"
	"log/slog"

	"github.com/blinklabs-io/plutigo/data"
	"github.com/blinklabs-io/txview/blockfrost"
	"github.com/blinklabs-io/txview/ledger"
	"github.com/blinklabs-io/txview/plutusdata"
)

// UnresolvedAddress is the address of an input whose spent output couldn't be
// looked up
const UnresolvedAddress = "Unresolved"

// ProgressFunc receives human readable progress messages
type ProgressFunc func(message string)

// ResolveAll resolves each input pointer to the output it spends. The UTxO set
// of every distinct transaction is fetched once, in first-seen order, before
// the pointers are resolved in their original order. The result always has
// one entry per pointer, with a placeholder for any pointer that couldn't be
// resolved
func ResolveAll(
	ctx context.Context,
	pointers []ledger.TransactionInput,
	resolver UtxoResolver,
	progress ProgressFunc,
	logger *slog.Logger,
) []TxInInfo {
	if progress == nil {
		progress = func(string) {}
	}
	if logger == nil {
		logger = slog.Default()
	}
	txHashes := uniqueTxHashes(pointers)
	for i, txHash := range txHashes {
		progress(fmt.Sprintf("Resolving inputs from tx %d/%d...", i+1, len(txHashes)))
		if _, err := resolver.FetchUtxoSet(ctx, txHash); err != nil {
			logger.Warn(
				"failed to fetch UTxO set",
				"tx_hash", txHash,
				"error", err,
			)
		}
	}
	ret := make([]TxInInfo, 0, len(pointers))
	for _, pointer := range pointers {
		txHash := pointer.Id().String()
		resolved, err := resolver.ResolvePointer(ctx, txHash, pointer.Index())
		if err != nil {
			logger.Debug(
				"failed to resolve input",
				"input", pointer.String(),
				"error", err,
			)
			ret = append(ret, unresolvedTxInInfo(txHash, pointer.Index()))
			continue
		}
		ret = append(ret, newTxInInfo(txHash, pointer.Index(), resolved))
	}
	return ret
}

func uniqueTxHashes(pointers []ledger.TransactionInput) []string {
	seen := make(map[string]struct{}, len(pointers))
	ret := make([]string, 0, len(pointers))
	for _, pointer := range pointers {
		txHash := pointer.Id().String()
		if _, ok := seen[txHash]; ok {
			continue
		}
		seen[txHash] = struct{}{}
		ret = append(ret, txHash)
	}
	return ret
}

func unresolvedTxInInfo(txHash string, outputIndex uint32) TxInInfo {
	return TxInInfo{
		TransactionId: txHash,
		OutputIndex:   outputIndex,
		TxOut: TxOut{
			Address: Address{Value: UnresolvedAddress},
		},
	}
}

func newTxInInfo(txHash string, outputIndex uint32, resolved *blockfrost.ResolvedUtxo) TxInInfo {
	ret := TxInInfo{
		TransactionId: txHash,
		OutputIndex:   outputIndex,
		TxOut: TxOut{
			Address: Address{Value: resolved.Address},
			Value: Value{
				Coins:  resolved.Lovelace,
				Assets: multiAssetFromResolved(resolved.Assets),
			},
			DatumHash:         resolved.DatumHash,
			AddressScriptHash: resolved.ScriptHash,
		},
	}
	if resolved.InlineDatum != nil {
		ret.DatumInline = true
		ret.Datum = projectResolvedDatum(resolved.InlineDatum)
	}
	return ret
}

// projectResolvedDatum decodes an inline datum that the indexer returned as
// CBOR hex. Anything else is projected as-is
func projectResolvedDatum(datum any) any {
	if datumHex, ok := datum.(string); ok {
		if cborData, err := hex.DecodeString(datumHex); err == nil && len(cborData) > 0 {
			if pd, err := data.Decode(cborData); err == nil {
				return plutusdata.ToJSON(pd)
			}
		}
	}
	return plutusdata.ToJSON(datum)
}
