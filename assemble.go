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
	"strconv"

	"github.com/blinklabs-io/gouroboros/ledger/common"
	"github.com/blinklabs-io/txview/ledger"
	"github.com/blinklabs-io/txview/plutusdata"
)

// AddressScriptHashPlaceholder marks decoded outputs that carry a reference
// script
const AddressScriptHashPlaceholder = "has_script"

const metadataCborKey = "cbor"

var redeemerPurposes = map[ledger.RedeemerTag]string{
	ledger.RedeemerTagSpend:    "spend",
	ledger.RedeemerTagMint:     "mint",
	ledger.RedeemerTagCert:     "certificate",
	ledger.RedeemerTagReward:   "withdrawal",
	ledger.RedeemerTagVoting:   "vote",
	ledger.RedeemerTagProposal: "propose",
}

type assembler struct {
	resolver    UtxoResolver
	progress    ProgressFunc
	logger      *slog.Logger
	aliases     map[string]string
	datumLookup bool
	datums      map[string]*ledger.Datum
}

// Decode parses a hex encoded transaction
func Decode(cborHex string) (*ledger.Transaction, error) {
	tx, err := ledger.NewTransactionFromHex(cborHex)
	if err != nil {
		return nil, fmt.Errorf("decode transaction: %w", err)
	}
	return tx, nil
}

// Assemble decodes a hex encoded transaction and builds its normalized view,
// resolving all inputs through the resolver. Only decoding errors are
// returned. Inputs that can't be resolved are included as placeholders
func Assemble(
	ctx context.Context,
	cborHex string,
	resolver UtxoResolver,
	opts ...AssembleOptionFunc,
) (*TxInfo, error) {
	a := &assembler{
		resolver: resolver,
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.progress == nil {
		a.progress = func(string) {}
	}
	if a.logger == nil {
		a.logger = slog.Default()
	}
	a.progress("Decoding CBOR...")
	tx, err := Decode(cborHex)
	if err != nil {
		return nil, err
	}
	return a.assemble(ctx, cborHex, tx), nil
}

func (a *assembler) assemble(ctx context.Context, cborHex string, tx *ledger.Transaction) *TxInfo {
	body := tx.Body()
	info := &TxInfo{
		TxHash:          tx.Hash().String(),
		Era:             tx.Era().Name,
		TxRaw:           cborHex,
		Fee:             tx.Fee(),
		IsValid:         tx.IsValid(),
		TxRefInInfos:    []TxInInfo{},
		TotalCollateral: body.TxTotalCollateral,
		NetworkId:       body.TxNetworkId,
	}
	if a.datumLookup {
		a.datums = witnessDatums(tx.WitnessSet())
	}
	// Inputs
	a.progress("Resolving transaction inputs...")
	info.TxInInfos = a.resolveInputs(ctx, tx.Inputs())
	if refInputs := tx.ReferenceInputs(); len(refInputs) > 0 {
		a.progress("Resolving reference inputs...")
		info.TxRefInInfos = a.resolveInputs(ctx, refInputs)
	}
	if collateral := tx.Collateral(); len(collateral) > 0 {
		a.progress("Resolving collateral inputs...")
		info.Collaterals = a.resolveInputs(ctx, collateral)
	}
	// Outputs
	a.progress("Mapping outputs...")
	info.TxOuts = make([]TxOut, 0, len(tx.Outputs()))
	for _, output := range tx.Outputs() {
		info.TxOuts = append(info.TxOuts, a.mapOutput(ctx, output))
	}
	if body.TxCollateralReturn != nil {
		collateralReturn := a.mapOutput(ctx, *body.TxCollateralReturn)
		info.CollateralReturn = &collateralReturn
	}
	// Signers and witnesses
	info.Signers = make([]Signer, 0, len(tx.RequiredSigners()))
	for _, signer := range tx.RequiredSigners() {
		value := signer.String()
		info.Signers = append(info.Signers, Signer{Value: value, Alias: a.aliases[value]})
	}
	info.Witnesses = make([]Witness, 0, len(tx.VkeyWitnesses()))
	for _, witness := range tx.VkeyWitnesses() {
		value := hex.EncodeToString(witness.Vkey)
		info.Witnesses = append(info.Witnesses, Witness{Value: value, Alias: a.aliases[value]})
	}
	info.Mint = mintEntries(tx.Mint())
	for _, cert := range tx.Certificates() {
		info.Certificates = append(info.Certificates, ClassifyCertificate(cert))
	}
	for _, redeemer := range tx.Redeemers() {
		info.Redeemers = append(info.Redeemers, mapRedeemer(redeemer))
	}
	for _, withdrawal := range tx.Withdrawals() {
		info.Withdrawals = append(
			info.Withdrawals,
			Withdrawal{
				StakeAddress: withdrawal.StakeAddress(),
				Amount:       withdrawal.Amount,
			},
		)
	}
	info.Metadata = a.metadata(tx)
	if body.TxScriptDataHash != nil {
		info.ScriptIntegrityHash = body.TxScriptDataHash.String()
	}
	info.ValidityIntervalStart = body.TxValidityIntervalStart
	info.Ttl = body.TxTtl
	a.progress("Done!")
	return info
}

func (a *assembler) resolveInputs(ctx context.Context, pointers []ledger.TransactionInput) []TxInInfo {
	ret := ResolveAll(ctx, pointers, a.resolver, a.progress, a.logger)
	for i := range ret {
		ret[i].Address.Alias = a.aliases[ret[i].Address.Value]
		if a.datumLookup && ret[i].DatumHash != "" && ret[i].Datum == nil {
			ret[i].Datum = a.lookupDatum(ctx, ret[i].DatumHash)
		}
	}
	return ret
}

func (a *assembler) mapOutput(ctx context.Context, output ledger.TransactionOutput) TxOut {
	address := output.Address().String()
	ret := TxOut{
		Address: Address{Value: address, Alias: a.aliases[address]},
		Value: Value{
			Coins:  output.Amount(),
			Assets: multiAssetFromLedger(output.Assets()),
		},
	}
	if output.DatumHash != nil {
		ret.DatumHash = output.DatumHash.String()
	}
	if output.InlineDatum != nil {
		ret.DatumInline = true
		ret.Datum = projectDatum(output.InlineDatum)
	} else if a.datumLookup && ret.DatumHash != "" {
		ret.Datum = a.lookupDatum(ctx, ret.DatumHash)
	}
	if output.HasScriptRef() {
		ret.AddressScriptHash = AddressScriptHashPlaceholder
	}
	return ret
}

// lookupDatum prefers a datum included in the transaction witnesses over a
// remote lookup
func (a *assembler) lookupDatum(ctx context.Context, datumHash string) any {
	if datum, ok := a.datums[datumHash]; ok {
		return projectDatum(datum)
	}
	fetcher, ok := a.resolver.(DatumFetcher)
	if !ok {
		return nil
	}
	datum := fetcher.FetchDatumByHash(ctx, datumHash)
	if datum == nil {
		return nil
	}
	return plutusdata.ToJSON(datum)
}

func (a *assembler) metadata(tx *ledger.Transaction) map[string]any {
	entries, err := tx.Metadata()
	if err != nil {
		a.logger.Warn(
			"failed to decode transaction metadata",
			"tx_hash", tx.Hash().String(),
			"error", err,
		)
		return map[string]any{
			metadataCborKey: hex.EncodeToString(tx.AuxDataCbor()),
		}
	}
	if len(entries) == 0 {
		return nil
	}
	ret := make(map[string]any, len(entries))
	for _, entry := range entries {
		ret[strconv.FormatUint(entry.Label, 10)] = plutusdata.ToJSON(entry.Value)
	}
	return ret
}

func witnessDatums(witnessSet *ledger.TransactionWitnessSet) map[string]*ledger.Datum {
	if witnessSet == nil {
		return nil
	}
	ret := make(map[string]*ledger.Datum, len(witnessSet.PlutusData))
	for _, datum := range witnessSet.PlutusData {
		ret[common.Blake2b256Hash(datum.Cbor()).String()] = datum
	}
	return ret
}

func projectDatum(datum *ledger.Datum) any {
	if datum == nil {
		return nil
	}
	if datum.Data != nil {
		return plutusdata.ToJSON(datum.Data)
	}
	return plutusdata.ToJSON(datum)
}

// mintEntries groups minted assets by policy ID in first-seen order
func mintEntries(mint *ledger.MultiAsset[ledger.MultiAssetTypeMint]) []MintEntry {
	if mint.Len() == 0 {
		return nil
	}
	var ret []MintEntry
	policyIdx := make(map[string]int)
	for _, policy := range mint.Policies() {
		policyId := policy.PolicyId.String()
		idx, ok := policyIdx[policyId]
		if !ok {
			idx = len(ret)
			policyIdx[policyId] = idx
			ret = append(
				ret,
				MintEntry{
					PolicyId: policyId,
					Assets:   make(map[string]int64),
				},
			)
		}
		for _, asset := range policy.Assets {
			ret[idx].Assets[asset.NameHex()] = asset.Amount
		}
	}
	return ret
}

func mapRedeemer(redeemer ledger.Redeemer) Redeemer {
	purpose, ok := redeemerPurposes[redeemer.Tag]
	if !ok {
		purpose = strconv.Itoa(int(redeemer.Tag))
	}
	return Redeemer{
		Purpose: purpose,
		Index:   redeemer.Index,
		Data:    projectDatum(redeemer.Data),
		ExUnits: ExUnits{
			Mem:   redeemer.ExUnits.Memory,
			Steps: redeemer.ExUnits.Steps,
		},
	}
}
