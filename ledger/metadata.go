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
	"errors"
	"fmt"

	"github.com/blinklabs-io/gouroboros/cbor"
	_cbor "github.com/fxamacker/cbor/v2"
)

var cborTagAuxDataPrefix = []byte{0xd9, 0x01, 0x03}

var cborNull = []byte{0xf6}

var metadataDecMode _cbor.DecMode

func init() {
	var err error
	metadataDecMode, err = _cbor.DecOptions{
		MaxNestedLevels: 256,
	}.DecMode()
	if err != nil {
		panic(err)
	}
}

// MetadatumEntry is a single labelled transaction metadatum
type MetadatumEntry struct {
	Label uint64
	Value any
}

// metadataFromAuxData extracts the transaction metadata map from auxiliary
// data in any of the Shelley, Allegra/Mary or Alonzo+ encodings
func metadataFromAuxData(auxData []byte) (cbor.RawMessage, error) {
	if len(auxData) == 0 || bytes.Equal(auxData, cborNull) {
		return nil, nil
	}
	switch {
	case bytes.HasPrefix(auxData, cborTagAuxDataPrefix):
		var fields map[uint]cbor.RawMessage
		if _, err := cbor.Decode(auxData[len(cborTagAuxDataPrefix):], &fields); err != nil {
			return nil, err
		}
		return fields[0], nil
	case isCborMap(auxData):
		return auxData, nil
	case isCborArray(auxData):
		var items []cbor.RawMessage
		if _, err := cbor.Decode(auxData, &items); err != nil {
			return nil, err
		}
		if len(items) == 0 {
			return nil, errors.New("empty auxiliary data array")
		}
		return items[0], nil
	}
	return nil, fmt.Errorf("unsupported auxiliary data encoding: %#x", auxData[0])
}

// decodeMetadata decodes a metadata map into labelled entries in encoded
// order. Values are decoded generically: maps become map[any]any, byte
// strings []byte and integers uint64, int64 or *big.Int
func decodeMetadata(data []byte) ([]MetadatumEntry, error) {
	if len(data) == 0 || bytes.Equal(data, cborNull) {
		return nil, nil
	}
	var ret []MetadatumEntry
	err := walkMap(data, func(key, value cbor.RawMessage) error {
		var label uint64
		if _, err := cbor.Decode(key, &label); err != nil {
			return fmt.Errorf("decode metadata label error: %w", err)
		}
		var tmpValue any
		if err := metadataDecMode.Unmarshal(value, &tmpValue); err != nil {
			return fmt.Errorf("decode metadatum %d error: %w", label, err)
		}
		ret = append(ret, MetadatumEntry{Label: label, Value: tmpValue})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ret, nil
}
