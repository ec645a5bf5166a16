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
	"bytes"
	"encoding/hex"
	"fmt"

	"github.com/blinklabs-io/gouroboros/cbor"
	"github.com/blinklabs-io/gouroboros/ledger/common"
	"golang.org/x/crypto/blake2b"
)

const (
	bodyKeyInputs                = 0
	bodyKeyOutputs               = 1
	bodyKeyFee                   = 2
	bodyKeyTtl                   = 3
	bodyKeyCertificates          = 4
	bodyKeyWithdrawals           = 5
	bodyKeyAuxDataHash           = 7
	bodyKeyValidityIntervalStart = 8
	bodyKeyMint                  = 9
	bodyKeyScriptDataHash        = 11
	bodyKeyCollateral            = 13
	bodyKeyRequiredSigners       = 14
	bodyKeyNetworkId             = 15
	bodyKeyCollateralReturn      = 16
	bodyKeyTotalCollateral       = 17
	bodyKeyReferenceInputs       = 18
)

// Withdrawal is a reward withdrawal from a stake address
type Withdrawal struct {
	RewardAccount []byte
	Amount        uint64
}

// StakeAddress returns the bech32 form of the reward account, falling back
// to hex when the bytes aren't a valid address
func (w Withdrawal) StakeAddress() string {
	addr, err := common.NewAddressFromBytes(w.RewardAccount)
	if err != nil {
		return hex.EncodeToString(w.RewardAccount)
	}
	return addr.String()
}

// TransactionBody is the body of a Shelley or later transaction. Optional
// fields are nil when the corresponding key is absent
type TransactionBody struct {
	cborData                []byte
	TxInputs                []TransactionInput
	TxOutputs               []TransactionOutput
	TxFee                   uint64
	TxTtl                   *uint64
	TxCertificates          []Certificate
	TxWithdrawals           []Withdrawal
	TxAuxDataHash           *common.Blake2b256
	TxValidityIntervalStart *uint64
	TxMint                  *MultiAsset[MultiAssetTypeMint]
	TxScriptDataHash        *common.Blake2b256
	TxCollateral            []TransactionInput
	TxRequiredSigners       []common.Blake2b224
	TxNetworkId             *uint8
	TxCollateralReturn      *TransactionOutput
	TxTotalCollateral       *uint64
	TxReferenceInputs       []TransactionInput
	minEra                  uint8
}

func NewTransactionBodyFromCbor(data []byte) (*TransactionBody, error) {
	var ret TransactionBody
	if err := ret.UnmarshalCBOR(data); err != nil {
		return nil, fmt.Errorf("decode transaction body error: %w", err)
	}
	return &ret, nil
}

func (b *TransactionBody) UnmarshalCBOR(data []byte) error {
	b.cborData = data
	var fields map[uint]cbor.RawMessage
	if _, err := cbor.Decode(data, &fields); err != nil {
		return err
	}
	b.minEra = EraIdShelley
	for key, raw := range fields {
		if err := b.decodeField(key, raw); err != nil {
			return fmt.Errorf("body key %d: %w", key, err)
		}
		b.minEra = max(b.minEra, bodyKeyEra(key))
		// Set tags on inputs were introduced with Conway
		if key == bodyKeyInputs && bytes.HasPrefix(raw, cborTagSetPrefix) {
			b.minEra = EraIdConway
		}
	}
	return nil
}

func (b *TransactionBody) decodeField(key uint, raw cbor.RawMessage) error {
	var err error
	switch key {
	case bodyKeyInputs:
		b.TxInputs, err = decodeInputs(raw)
	case bodyKeyOutputs:
		err = decodeSet(raw, &b.TxOutputs)
	case bodyKeyFee:
		_, err = cbor.Decode(raw, &b.TxFee)
	case bodyKeyTtl:
		b.TxTtl, err = decodeOptional[uint64](raw)
	case bodyKeyCertificates:
		b.TxCertificates, err = decodeCertificates(raw)
	case bodyKeyWithdrawals:
		b.TxWithdrawals, err = decodeWithdrawals(raw)
	case bodyKeyAuxDataHash:
		b.TxAuxDataHash, err = decodeOptional[common.Blake2b256](raw)
	case bodyKeyValidityIntervalStart:
		b.TxValidityIntervalStart, err = decodeOptional[uint64](raw)
	case bodyKeyMint:
		b.TxMint = &MultiAsset[MultiAssetTypeMint]{}
		err = b.TxMint.UnmarshalCBOR(raw)
	case bodyKeyScriptDataHash:
		b.TxScriptDataHash, err = decodeOptional[common.Blake2b256](raw)
	case bodyKeyCollateral:
		b.TxCollateral, err = decodeInputs(raw)
	case bodyKeyRequiredSigners:
		err = decodeSet(raw, &b.TxRequiredSigners)
	case bodyKeyNetworkId:
		b.TxNetworkId, err = decodeOptional[uint8](raw)
	case bodyKeyCollateralReturn:
		b.TxCollateralReturn, err = NewTransactionOutputFromCbor(raw)
	case bodyKeyTotalCollateral:
		b.TxTotalCollateral, err = decodeOptional[uint64](raw)
	case bodyKeyReferenceInputs:
		b.TxReferenceInputs, err = decodeInputs(raw)
	}
	// Other keys (update proposals, governance procedures, treasury values)
	// are not part of the view
	return err
}

func decodeOptional[T any](raw cbor.RawMessage) (*T, error) {
	var tmp T
	if _, err := cbor.Decode(raw, &tmp); err != nil {
		return nil, err
	}
	return &tmp, nil
}

func decodeWithdrawals(data []byte) ([]Withdrawal, error) {
	var ret []Withdrawal
	err := walkMap(data, func(key, value cbor.RawMessage) error {
		var tmpWithdrawal Withdrawal
		if _, err := cbor.Decode(key, &tmpWithdrawal.RewardAccount); err != nil {
			return fmt.Errorf("decode reward account error: %w", err)
		}
		if _, err := cbor.Decode(value, &tmpWithdrawal.Amount); err != nil {
			return fmt.Errorf("decode withdrawal amount error: %w", err)
		}
		ret = append(ret, tmpWithdrawal)
		return nil
	})
	return ret, err
}

// Hash returns the transaction ID, the Blake2b-256 hash of the body as encoded
func (b *TransactionBody) Hash() common.Blake2b256 {
	return common.Blake2b256(blake2b.Sum256(b.cborData))
}

func (b *TransactionBody) Cbor() []byte {
	return b.cborData
}
