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

package ledger_test

import (
	"encoding/hex"
	"testing"

	"github.com/blinklabs-io/plutigo/data"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blinklabs-io/txview/internal/test"
	"github.com/blinklabs-io/txview/ledger"
)

func TestNewTransactionFromHexConway(t *testing.T) {
	tx, err := ledger.NewTransactionFromHex(test.ConwayTxHex)
	require.NoError(t, err)
	assert.Equal(t, test.ConwayTxHash, tx.Hash().String())
	require.Len(t, tx.Inputs(), 1)
	assert.Equal(
		t,
		"279184037d249e397d97293738370756da559718fcdefae9924834840046b37b#1",
		tx.Inputs()[0].String(),
	)
	require.Len(t, tx.Outputs(), 2)
	expectedAmounts := []uint64{11110000, 4940724996}
	for idx, output := range tx.Outputs() {
		assert.Equal(t, test.ConwayTxAddress, output.Address().String())
		assert.Equal(t, expectedAmounts[idx], output.Amount())
		assert.Nil(t, output.Assets())
		assert.True(t, output.IsLegacy())
	}
	assert.Equal(t, uint64(168845), tx.Fee())
	body := tx.Body()
	require.NotNil(t, body.TxTtl)
	assert.Equal(t, uint64(81986791), *body.TxTtl)
	// Key 8 is present with a value of zero
	require.NotNil(t, body.TxValidityIntervalStart)
	assert.Equal(t, uint64(0), *body.TxValidityIntervalStart)
	require.Len(t, tx.VkeyWitnesses(), 1)
	assert.Equal(
		t,
		test.ConwayTxWitnessKeyHash,
		tx.VkeyWitnesses()[0].KeyHash().String(),
	)
	assert.True(t, tx.IsValid())
	metadata, err := tx.Metadata()
	require.NoError(t, err)
	assert.Nil(t, metadata)
}

func TestNewTransactionFromHexRich(t *testing.T) {
	tx, err := ledger.NewTransactionFromHex(test.RichTxHex)
	require.NoError(t, err)
	assert.Equal(t, test.RichTxHash, tx.Hash().String())

	expectedInputs := []string{
		"aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa#0",
		"aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa#1",
		"bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb#2",
	}
	require.Len(t, tx.Inputs(), len(expectedInputs))
	for idx, input := range tx.Inputs() {
		assert.Equal(t, expectedInputs[idx], input.String())
	}
	require.Len(t, tx.ReferenceInputs(), 1)
	assert.Equal(t, uint32(3), tx.ReferenceInputs()[0].Index())
	require.Len(t, tx.Collateral(), 1)
	assert.Equal(t, uint32(0), tx.Collateral()[0].Index())

	outputs := tx.Outputs()
	require.Len(t, outputs, 3)
	// Map output with assets, inline datum and reference script
	assert.Equal(t, test.RichBaseAddress, outputs[0].Address().String())
	assert.Equal(t, uint64(2000000), outputs[0].Amount())
	assert.False(t, outputs[0].IsLegacy())
	assert.True(t, outputs[0].HasScriptRef())
	assert.Nil(t, outputs[0].DatumHash)
	require.NotNil(t, outputs[0].InlineDatum)
	assert.Equal(
		t,
		test.RichInlineDatumHex,
		hex.EncodeToString(outputs[0].InlineDatum.Cbor()),
	)
	constr, ok := outputs[0].InlineDatum.Data.(*data.Constr)
	require.True(t, ok, "inline datum is %T", outputs[0].InlineDatum.Data)
	assert.Equal(t, uint(0), constr.Tag)
	assert.Len(t, constr.Fields, 3)
	assets := outputs[0].Assets()
	require.NotNil(t, assets)
	policies := assets.Policies()
	require.Len(t, policies, 2)
	assert.Equal(t, "b2b2b2b2b2b2b2b2b2b2b2b2b2b2b2b2b2b2b2b2b2b2b2b2b2b2b2b2", policies[0].PolicyId.String())
	assert.Equal(t, "a1a1a1a1a1a1a1a1a1a1a1a1a1a1a1a1a1a1a1a1a1a1a1a1a1a1a1a1", policies[1].PolicyId.String())
	require.Len(t, policies[1].Assets, 2)
	assert.Equal(t, "", policies[1].Assets[0].NameHex())
	assert.Equal(t, uint64(7), policies[1].Assets[0].Amount)
	assert.Equal(t, "55534443", policies[1].Assets[1].NameHex())
	assert.Equal(t, uint64(3), policies[1].Assets[1].Amount)
	assert.Equal(t, 3, assets.Len())
	require.Len(t, policies[0].Assets, 1)
	assert.Equal(t, "tokB", string(policies[0].Assets[0].Name))
	assert.Equal(t, uint64(5), policies[0].Assets[0].Amount)
	// Legacy output with datum hash
	assert.True(t, outputs[1].IsLegacy())
	assert.Equal(t, test.RichEnterpriseAddress, outputs[1].Address().String())
	require.NotNil(t, outputs[1].DatumHash)
	assert.Equal(t, "d1d1d1d1d1d1d1d1d1d1d1d1d1d1d1d1d1d1d1d1d1d1d1d1d1d1d1d1d1d1d1d1", outputs[1].DatumHash.String())
	// Map output with datum hash option
	assert.Equal(t, test.RichScriptAddress, outputs[2].Address().String())
	require.NotNil(t, outputs[2].DatumHash)
	assert.Nil(t, outputs[2].InlineDatum)
	assert.False(t, outputs[2].HasScriptRef())

	body := tx.Body()
	assert.Equal(t, uint64(200000), tx.Fee())
	require.NotNil(t, body.TxTtl)
	assert.Equal(t, uint64(1000), *body.TxTtl)
	require.NotNil(t, body.TxValidityIntervalStart)
	assert.Equal(t, uint64(900), *body.TxValidityIntervalStart)
	require.NotNil(t, body.TxNetworkId)
	assert.Equal(t, uint8(1), *body.TxNetworkId)
	require.NotNil(t, body.TxScriptDataHash)
	assert.Equal(t, "0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b", body.TxScriptDataHash.String())
	require.NotNil(t, body.TxAuxDataHash)
	require.NotNil(t, body.TxTotalCollateral)
	assert.Equal(t, uint64(300000), *body.TxTotalCollateral)
	require.NotNil(t, body.TxCollateralReturn)
	assert.Equal(t, uint64(4000000), body.TxCollateralReturn.Amount())
	require.Len(t, tx.RequiredSigners(), 1)
	assert.Equal(t, "0e0e0e0e0e0e0e0e0e0e0e0e0e0e0e0e0e0e0e0e0e0e0e0e0e0e0e0e", tx.RequiredSigners()[0].String())

	withdrawals := tx.Withdrawals()
	require.Len(t, withdrawals, 1)
	assert.Equal(t, test.RichStakeAddress, withdrawals[0].StakeAddress())
	assert.Equal(t, uint64(12345), withdrawals[0].Amount)

	mint := tx.Mint()
	require.NotNil(t, mint)
	require.Len(t, mint.Policies(), 1)
	mintAssets := mint.Policies()[0].Assets
	require.Len(t, mintAssets, 2)
	assert.Equal(t, "AAA", string(mintAssets[0].Name))
	assert.Equal(t, int64(10), mintAssets[0].Amount)
	assert.Equal(t, "BBB", string(mintAssets[1].Name))
	assert.Equal(t, int64(-2), mintAssets[1].Amount)

	expectedCertTypes := []uint{0, 2, 4, 9, 16, 7}
	certs := tx.Certificates()
	require.Len(t, certs, len(expectedCertTypes))
	for idx, cert := range certs {
		assert.Equal(t, expectedCertTypes[idx], cert.CertificateType())
	}

	redeemers := tx.Redeemers()
	require.Len(t, redeemers, 2)
	assert.Equal(t, ledger.RedeemerTagSpend, redeemers[0].Tag)
	assert.Equal(t, uint32(0), redeemers[0].Index)
	assert.Equal(t, uint64(1000), redeemers[0].ExUnits.Memory)
	assert.Equal(t, uint64(2000), redeemers[0].ExUnits.Steps)
	spendData, ok := redeemers[0].Data.Data.(*data.Constr)
	require.True(t, ok)
	require.Len(t, spendData.Fields, 1)
	spendInt, ok := spendData.Fields[0].(*data.Integer)
	require.True(t, ok)
	assert.Equal(t, int64(42), spendInt.Inner.Int64())
	assert.Equal(t, ledger.RedeemerTagMint, redeemers[1].Tag)
	assert.Equal(t, uint64(3000), redeemers[1].ExUnits.Memory)
	assert.Equal(t, uint64(4000), redeemers[1].ExUnits.Steps)

	require.Len(t, tx.VkeyWitnesses(), 1)
	assert.True(t, tx.IsValid())

	metadata, err := tx.Metadata()
	require.NoError(t, err)
	require.Len(t, metadata, 1)
	assert.Equal(t, uint64(674), metadata[0].Label)
	assert.Equal(
		t,
		map[any]any{"msg": []any{"hello"}},
		metadata[0].Value,
	)
}

func TestNewTransactionFromHexMary(t *testing.T) {
	tx, err := ledger.NewTransactionFromHex(test.MaryTxHex)
	require.NoError(t, err)
	assert.Equal(t, test.MaryTxHash, tx.Hash().String())
	assert.True(t, tx.IsValid())
	assert.Nil(t, tx.Body().TxTtl)
	assert.Nil(t, tx.Body().TxValidityIntervalStart)
	require.Len(t, tx.Outputs(), 1)
	assets := tx.Outputs()[0].Assets()
	require.NotNil(t, assets)
	assert.Equal(t, 1, assets.Len())
	redeemers := tx.Redeemers()
	require.Len(t, redeemers, 1)
	assert.Equal(t, ledger.RedeemerTagSpend, redeemers[0].Tag)
	assert.Equal(t, uint64(10), redeemers[0].ExUnits.Memory)
	assert.Equal(t, uint64(20), redeemers[0].ExUnits.Steps)
	metadata, err := tx.Metadata()
	require.NoError(t, err)
	assert.Nil(t, metadata)
}

func TestNewTransactionFromHexErrors(t *testing.T) {
	testDefs := []struct {
		name  string
		txHex string
	}{
		{name: "Empty", txHex: ""},
		{name: "NotHex", txHex: "zz"},
		{name: "OddLength", txHex: "84a"},
		{name: "NotArray", txHex: "a0"},
		{name: "Truncated", txHex: test.ConwayTxHex[:100]},
		{name: "TrailingBytes", txHex: test.ConwayTxHex + "00"},
		{name: "WrongItemCount", txHex: "8100"},
		{
			name:  "ByronTx",
			txHex: "839f8200d8185824825820a12a839c25a01fa5d118167db5acdbd9e38172ae8f00e5ac0a4997ef792a200700ff9f8282d818584283581c6c9982e7f2b6dcc5eaa880e8014568913c8868d9f0f86eb687b2633ca101581e581c010d876783fb2b4d0d17c86df29af8d35356ed3d1827bf4744f06700001a8dc672c11a000f4240ffa0",
		},
	}
	for _, testDef := range testDefs {
		t.Run(testDef.name, func(t *testing.T) {
			if _, err := ledger.NewTransactionFromHex(testDef.txHex); err == nil {
				t.Fatalf("did not get expected error for %q", testDef.txHex)
			}
		})
	}
}
