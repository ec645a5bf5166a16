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
	"fmt"

	"github.com/blinklabs-io/gouroboros/cbor"
	"github.com/blinklabs-io/gouroboros/ledger/common"
)

// TransactionInput is a pointer to a previous transaction output
type TransactionInput struct {
	cbor.StructAsArray
	TxId        common.Blake2b256
	OutputIndex uint32
}

func NewTransactionInput(txId string, outputIndex uint32) (TransactionInput, error) {
	var ret TransactionInput
	tmpId, err := hex.DecodeString(txId)
	if err != nil {
		return ret, fmt.Errorf("decode transaction ID error: %w", err)
	}
	if len(tmpId) != common.Blake2b256Size {
		return ret, fmt.Errorf("invalid transaction ID length: %d", len(tmpId))
	}
	ret.TxId = common.NewBlake2b256(tmpId)
	ret.OutputIndex = outputIndex
	return ret, nil
}

func (i TransactionInput) Id() common.Blake2b256 {
	return i.TxId
}

func (i TransactionInput) Index() uint32 {
	return i.OutputIndex
}

func (i TransactionInput) String() string {
	return fmt.Sprintf("%s#%d", i.TxId.String(), i.OutputIndex)
}

func decodeInputs(data []byte) ([]TransactionInput, error) {
	var ret []TransactionInput
	if err := decodeSet(data, &ret); err != nil {
		return nil, err
	}
	return ret, nil
}
