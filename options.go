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
	"log/slog"
)

type AssembleOptionFunc func(*assembler)

// WithProgressFunc specifies a callback that receives progress messages
// while a transaction is assembled
func WithProgressFunc(progress ProgressFunc) AssembleOptionFunc {
	return func(a *assembler) {
		a.progress = progress
	}
}

// WithLogger specifies the logger to use. This defaults to slog.Default()
func WithLogger(logger *slog.Logger) AssembleOptionFunc {
	return func(a *assembler) {
		a.logger = logger
	}
}

// WithAliases specifies human readable aliases for addresses, required
// signers and witness keys
func WithAliases(aliases map[string]string) AssembleOptionFunc {
	return func(a *assembler) {
		a.aliases = aliases
	}
}

// WithDatumLookup enables filling in the datum for outputs and inputs that
// only carry a datum hash. Datums are taken from the transaction witnesses,
// or fetched when the resolver implements DatumFetcher
func WithDatumLookup(datumLookup bool) AssembleOptionFunc {
	return func(a *assembler) {
		a.datumLookup = datumLookup
	}
}
