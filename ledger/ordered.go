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
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/blinklabs-io/gouroboros/cbor"
	_cbor "github.com/fxamacker/cbor/v2"
)

const (
	cborMajorTypeMask  = 0xe0
	cborMajorTypeMap   = 0xa0
	cborMajorTypeArray = 0x80
	cborAddInfoMask    = 0x1f
	cborIndefinite     = 0x1f
	cborBreak          = 0xff
)

var cborTagSetPrefix = []byte{0xd9, 0x01, 0x02}

// mapHeader returns the number of pairs in the CBOR map at the start of data
// and the size of the header. An indefinite length map reports -1 pairs
func mapHeader(data []byte) (int, int, error) {
	if len(data) == 0 {
		return 0, 0, errors.New("empty CBOR data")
	}
	if data[0]&cborMajorTypeMask != cborMajorTypeMap {
		return 0, 0, fmt.Errorf(
			"expected CBOR map, found major type %d",
			data[0]>>5,
		)
	}
	addInfo := data[0] & cborAddInfoMask
	switch {
	case addInfo < 24:
		return int(addInfo), 1, nil
	case addInfo == cborIndefinite:
		return -1, 1, nil
	}
	var size int
	switch addInfo {
	case 24:
		size = 1
	case 25:
		size = 2
	case 26:
		size = 4
	case 27:
		size = 8
	default:
		return 0, 0, fmt.Errorf("invalid CBOR map header: %#x", data[0])
	}
	if len(data) < 1+size {
		return 0, 0, errors.New("truncated CBOR map header")
	}
	var count uint64
	switch size {
	case 1:
		count = uint64(data[1])
	case 2:
		count = uint64(binary.BigEndian.Uint16(data[1:3]))
	case 4:
		count = uint64(binary.BigEndian.Uint32(data[1:5]))
	case 8:
		count = binary.BigEndian.Uint64(data[1:9])
	}
	// Each pair needs at least two bytes
	if count > uint64(len(data)) {
		return 0, 0, fmt.Errorf("CBOR map length %d exceeds available data", count)
	}
	return int(count), 1 + size, nil
}

// walkMap calls fn for each key/value pair of a CBOR map in encoded order
func walkMap(data []byte, fn func(key, value cbor.RawMessage) error) error {
	count, offset, err := mapHeader(data)
	if err != nil {
		return err
	}
	dec := _cbor.NewDecoder(bytes.NewReader(data[offset:]))
	for i := 0; count < 0 || i < count; i++ {
		if count < 0 {
			pos := offset + dec.NumBytesRead()
			if pos >= len(data) {
				return errors.New("unterminated indefinite length CBOR map")
			}
			if data[pos] == cborBreak {
				break
			}
		}
		var key, value cbor.RawMessage
		if err := dec.Decode(&key); err != nil {
			return fmt.Errorf("decode map key error: %w", err)
		}
		if err := dec.Decode(&value); err != nil {
			return fmt.Errorf("decode map value error: %w", err)
		}
		if err := fn(key, value); err != nil {
			return err
		}
	}
	return nil
}

// stripSetTag removes a leading tag 258 (set) from CBOR data
func stripSetTag(data []byte) []byte {
	if bytes.HasPrefix(data, cborTagSetPrefix) {
		return data[len(cborTagSetPrefix):]
	}
	return data
}

// decodeSet decodes a CBOR array that may be wrapped in a set tag
func decodeSet(data []byte, dest any) error {
	_, err := cbor.Decode(stripSetTag(data), dest)
	return err
}

func isCborArray(data []byte) bool {
	return len(data) > 0 && data[0]&cborMajorTypeMask == cborMajorTypeArray
}

func isCborMap(data []byte) bool {
	return len(data) > 0 && data[0]&cborMajorTypeMask == cborMajorTypeMap
}
