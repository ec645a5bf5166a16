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

// Package plutusdata projects Plutus data values into plain JSON-compatible
// trees
package plutusdata

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"math"
	"math/big"
	"strconv"

	"github.com/blinklabs-io/plutigo/data"
	"github.com/bytedance/sonic"
	_cbor "github.com/fxamacker/cbor/v2"
)

// MaxSafeInteger is the largest integer that survives a round trip through
// an IEEE 754 double
const MaxSafeInteger = 1<<53 - 1

// CborProvider is implemented by values that carry their original CBOR
type CborProvider interface {
	Cbor() []byte
}

// ToJSON recursively converts a Plutus data value, generic CBOR value or
// already projected JSON value into a tree of maps, slices, strings, numbers,
// booleans and nil. Integers outside the safe range and all Plutus integers
// become decimal strings, byte strings become hex and constructors become
// {"constructor": tag, "fields": [...]}. It never panics
func ToJSON(v any) (ret any) {
	defer func() {
		if r := recover(); r != nil {
			ret = fmt.Sprint(v)
		}
	}()
	return project(v)
}

func project(v any) any {
	switch val := v.(type) {
	case nil:
		return nil
	case *data.Constr:
		fields := make([]any, 0, len(val.Fields))
		for _, field := range val.Fields {
			fields = append(fields, project(field))
		}
		return map[string]any{
			"constructor": uint64(val.Tag),
			"fields":      fields,
		}
	case *data.Map:
		ret := make(map[string]any, len(val.Pairs))
		for _, pair := range val.Pairs {
			ret[keyString(pair[0])] = project(pair[1])
		}
		return ret
	case *data.List:
		ret := make([]any, 0, len(val.Items))
		for _, item := range val.Items {
			ret = append(ret, project(item))
		}
		return ret
	case *data.Integer:
		return val.Inner.String()
	case *data.ByteString:
		return hex.EncodeToString(val.Inner)
	case *big.Int:
		return val.String()
	case big.Int:
		return val.String()
	case []byte:
		return hex.EncodeToString(val)
	case _cbor.ByteString:
		// Byte string map keys in generically decoded CBOR
		return hex.EncodeToString([]byte(val))
	case string, bool:
		return val
	case int:
		return projectSigned(int64(val))
	case int8:
		return projectSigned(int64(val))
	case int16:
		return projectSigned(int64(val))
	case int32:
		return projectSigned(int64(val))
	case int64:
		return projectSigned(val)
	case uint:
		return projectUnsigned(uint64(val))
	case uint8:
		return projectUnsigned(uint64(val))
	case uint16:
		return projectUnsigned(uint64(val))
	case uint32:
		return projectUnsigned(uint64(val))
	case uint64:
		return projectUnsigned(val)
	case float32:
		return projectFloat(float64(val))
	case float64:
		return projectFloat(val)
	case json.Number:
		return projectNumber(val)
	case []any:
		ret := make([]any, 0, len(val))
		for _, item := range val {
			ret = append(ret, project(item))
		}
		return ret
	case map[string]any:
		ret := make(map[string]any, len(val))
		for k, item := range val {
			ret[k] = project(item)
		}
		return ret
	case map[any]any:
		ret := make(map[string]any, len(val))
		for k, item := range val {
			ret[keyString(k)] = project(item)
		}
		return ret
	case CborProvider:
		return hex.EncodeToString(val.Cbor())
	}
	return fmt.Sprint(v)
}

func projectSigned(v int64) any {
	if v > MaxSafeInteger || v < -MaxSafeInteger {
		return strconv.FormatInt(v, 10)
	}
	return v
}

func projectUnsigned(v uint64) any {
	if v > MaxSafeInteger {
		return strconv.FormatUint(v, 10)
	}
	return v
}

// projectNumber handles JSON numbers decoded without loss of precision
func projectNumber(v json.Number) any {
	if i, err := v.Int64(); err == nil {
		return projectSigned(i)
	}
	if i, ok := new(big.Int).SetString(v.String(), 10); ok {
		return i.String()
	}
	if f, err := v.Float64(); err == nil {
		return projectFloat(f)
	}
	return v.String()
}

func projectFloat(v float64) any {
	if math.IsNaN(v) || math.IsInf(v, 0) || math.Abs(v) > MaxSafeInteger {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return v
}

// keyString renders a map key as an object key. Scalar keys use their
// projected form and compound keys their JSON encoding
func keyString(k any) string {
	projected := project(k)
	switch key := projected.(type) {
	case string:
		return key
	case int64, uint64, float64, bool:
		return fmt.Sprint(key)
	}
	ret, err := sonic.MarshalString(projected)
	if err != nil {
		return fmt.Sprint(projected)
	}
	return ret
}
