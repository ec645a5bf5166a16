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

package main

import (
	"github.com/blinklabs-io/txview"
	"github.com/blinklabs-io/txview/formatter"
)

type formattedDatum struct {
	OutputIndex int    `json:"outputIndex"`
	Label       string `json:"label"`
	Formatted   any    `json:"formatted"`
}

type output struct {
	*txview.TxInfo
	FormattedDatums []formattedDatum `json:"formattedDatums,omitempty"`
}

// newOutput applies any matching datum formatter to each output with a datum
func newOutput(info *txview.TxInfo) output {
	ret := output{TxInfo: info}
	for idx, txOut := range info.TxOuts {
		if txOut.Datum == nil {
			continue
		}
		format, ok := formatter.MatchAssets(txOut.Value.Assets)
		if !ok {
			continue
		}
		result := format(txOut.Datum)
		ret.FormattedDatums = append(
			ret.FormattedDatums,
			formattedDatum{
				OutputIndex: idx,
				Label:       result.Label,
				Formatted:   result.Formatted,
			},
		)
	}
	return ret
}
