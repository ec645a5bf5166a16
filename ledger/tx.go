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

package ledger

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/blinklabs-io/gouroboros/cbor"
	"github.com/blinklabs-io/gouroboros/ledger/common"
)

// Transaction is a decoded Shelley through Conway era transaction
type Transaction struct {
	cborData        []byte
	body            *TransactionBody
	witnessSet      *TransactionWitnessSet
	isValid         bool
	hasValidityFlag bool
	auxData         cbor.RawMessage
}

// NewTransactionFromHex decodes a hex-encoded transaction. Surrounding
// whitespace is ignored
func NewTransactionFromHex(txHex string) (*Transaction, error) {
	txBytes, err := hex.DecodeString(strings.TrimSpace(txHex))
	if err != nil {
		return nil, fmt.Errorf("decode transaction hex error: %w", err)
	}
	return NewTransactionFromCbor(txBytes)
}

func NewTransactionFromCbor(data []byte) (*Transaction, error) {
	if len(data) == 0 {
		return nil, errors.New("empty transaction CBOR")
	}
	var items []cbor.RawMessage
	bytesRead, err := cbor.Decode(data, &items)
	if err != nil {
		return nil, fmt.Errorf("decode transaction error: %w", err)
	}
	if bytesRead != len(data) {
		return nil, fmt.Errorf(
			"decode transaction error: %d trailing bytes",
			len(data)-bytesRead,
		)
	}
	tx := &Transaction{
		cborData: data,
		isValid:  true,
	}
	switch len(items) {
	case 3:
		// Shelley through Mary: body, witness set, auxiliary data
		tx.auxData = items[2]
	case 4:
		// Alonzo onward adds the validity flag before the auxiliary data
		if _, err := cbor.Decode(items[2], &tx.isValid); err != nil {
			return nil, fmt.Errorf("decode transaction validity flag error: %w", err)
		}
		tx.auxData = items[3]
		tx.hasValidityFlag = true
	case 2:
		return nil, errors.New("decode transaction error: Byron transactions are not supported")
	default:
		return nil, fmt.Errorf(
			"decode transaction error: unexpected item count %d",
			len(items),
		)
	}
	if tx.body, err = NewTransactionBodyFromCbor(items[0]); err != nil {
		return nil, err
	}
	if tx.witnessSet, err = NewTransactionWitnessSetFromCbor(items[1]); err != nil {
		return nil, fmt.Errorf("decode transaction witness set error: %w", err)
	}
	return tx, nil
}

func (t *Transaction) Hash() common.Blake2b256 {
	return t.body.Hash()
}

func (t *Transaction) Body() *TransactionBody {
	return t.body
}

func (t *Transaction) WitnessSet() *TransactionWitnessSet {
	return t.witnessSet
}

func (t *Transaction) IsValid() bool {
	return t.isValid
}

func (t *Transaction) Cbor() []byte {
	return t.cborData
}

func (t *Transaction) Inputs() []TransactionInput {
	return t.body.TxInputs
}

func (t *Transaction) Outputs() []TransactionOutput {
	return t.body.TxOutputs
}

func (t *Transaction) ReferenceInputs() []TransactionInput {
	return t.body.TxReferenceInputs
}

func (t *Transaction) Collateral() []TransactionInput {
	return t.body.TxCollateral
}

func (t *Transaction) Fee() uint64 {
	return t.body.TxFee
}

func (t *Transaction) Certificates() []Certificate {
	return t.body.TxCertificates
}

func (t *Transaction) Withdrawals() []Withdrawal {
	return t.body.TxWithdrawals
}

func (t *Transaction) Mint() *MultiAsset[MultiAssetTypeMint] {
	return t.body.TxMint
}

func (t *Transaction) RequiredSigners() []common.Blake2b224 {
	return t.body.TxRequiredSigners
}

func (t *Transaction) Redeemers() []Redeemer {
	return t.witnessSet.Redeemers
}

func (t *Transaction) VkeyWitnesses() []VkeyWitness {
	return t.witnessSet.VkeyWitnesses
}

// AuxDataCbor returns the raw auxiliary data, which is CBOR null when the
// transaction has none
func (t *Transaction) AuxDataCbor() []byte {
	return t.auxData
}

// Metadata returns the transaction metadata entries in encoded order, or nil
// if the transaction carries no metadata
func (t *Transaction) Metadata() ([]MetadatumEntry, error) {
	metadata, err := metadataFromAuxData(t.auxData)
	if err != nil {
		return nil, fmt.Errorf("decode auxiliary data error: %w", err)
	}
	return decodeMetadata(metadata)
}
