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

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blinklabs-io/txview/internal/test"
	"github.com/blinklabs-io/txview/ledger"
)

func TestNewCertificateFromCbor(t *testing.T) {
	testDefs := []struct {
		name         string
		cborHex      string
		expectedType uint
		check        func(*testing.T, ledger.Certificate)
	}{
		{
			name:         "StakeRegistration",
			cborHex:      "82008200581c02020202020202020202020202020202020202020202020202020202",
			expectedType: ledger.CertificateTypeStakeRegistration,
			check: func(t *testing.T, cert ledger.Certificate) {
				c, ok := cert.(ledger.StakeRegistrationCertificate)
				require.True(t, ok, "got %T", cert)
				assert.Equal(t, uint(ledger.CredentialTypeAddrKeyHash), c.StakeCredential.CredType)
				assert.Equal(t, "02020202020202020202020202020202020202020202020202020202", c.StakeCredential.Hash().String())
			},
		},
		{
			name:         "PoolRegistration",
			cborHex:      "8a03581c0a0a0a0a0a0a0a0a0a0a0a0a0a0a0a0a0a0a0a0a0a0a0a0a0a0a0a0a58200b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b1a1dcd65001a1443fd00d81e82011832581de102020202020202020202020202020202020202020202020202020202d9010281581c0c0c0c0c0c0c0c0c0c0c0c0c0c0c0c0c0c0c0c0c0c0c0c0c0c0c0c0c8082781d68747470733a2f2f6578616d706c652e6f72672f706f6f6c2e6a736f6e58200d0d0d0d0d0d0d0d0d0d0d0d0d0d0d0d0d0d0d0d0d0d0d0d0d0d0d0d0d0d0d0d",
			expectedType: ledger.CertificateTypePoolRegistration,
			check: func(t *testing.T, cert ledger.Certificate) {
				c, ok := cert.(ledger.PoolRegistrationCertificate)
				require.True(t, ok, "got %T", cert)
				assert.Equal(t, uint64(500000000), c.Pledge)
				assert.Equal(t, uint64(340000000), c.Cost)
				owners, err := c.Owners()
				require.NoError(t, err)
				require.Len(t, owners, 1)
				require.NotNil(t, c.PoolMetadata)
				assert.Equal(t, "https://example.org/pool.json", c.PoolMetadata.Url)
			},
		},
		{
			name:         "PoolRetirement",
			cborHex:      "8304581c0a0a0a0a0a0a0a0a0a0a0a0a0a0a0a0a0a0a0a0a0a0a0a0a0a0a0a0a190140",
			expectedType: ledger.CertificateTypePoolRetirement,
			check: func(t *testing.T, cert ledger.Certificate) {
				c, ok := cert.(ledger.PoolRetirementCertificate)
				require.True(t, ok, "got %T", cert)
				assert.Equal(t, uint64(320), c.Epoch)
			},
		},
		{
			name:         "VoteDelegationAbstain",
			cborHex:      "83098200581c020202020202020202020202020202020202020202020202020202028102",
			expectedType: ledger.CertificateTypeVoteDelegation,
			check: func(t *testing.T, cert ledger.Certificate) {
				c, ok := cert.(ledger.VoteDelegationCertificate)
				require.True(t, ok, "got %T", cert)
				assert.Equal(t, ledger.DrepTypeAbstain, c.Drep.Type)
				assert.Empty(t, c.Drep.Credential)
			},
		},
		{
			name:         "StakeVoteDelegation",
			cborHex:      "840a8200581c02020202020202020202020202020202020202020202020202020202581c0a0a0a0a0a0a0a0a0a0a0a0a0a0a0a0a0a0a0a0a0a0a0a0a0a0a0a0a8200581c09090909090909090909090909090909090909090909090909090909",
			expectedType: ledger.CertificateTypeStakeVoteDelegation,
			check: func(t *testing.T, cert ledger.Certificate) {
				c, ok := cert.(ledger.StakeVoteDelegationCertificate)
				require.True(t, ok, "got %T", cert)
				assert.Equal(t, ledger.DrepTypeAddrKeyHash, c.Drep.Type)
				assert.Equal(t, "09090909090909090909090909090909090909090909090909090909", hex.EncodeToString(c.Drep.Credential))
			},
		},
		{
			name:         "UpdateDrepWithoutAnchor",
			cborHex:      "83128200581c05050505050505050505050505050505050505050505050505050505f6",
			expectedType: ledger.CertificateTypeUpdateDrep,
			check: func(t *testing.T, cert ledger.Certificate) {
				c, ok := cert.(ledger.UpdateDrepCertificate)
				require.True(t, ok, "got %T", cert)
				assert.Nil(t, c.Anchor)
			},
		},
		{
			name:         "Unknown",
			cborHex:      "821863f6",
			expectedType: 99,
			check: func(t *testing.T, cert ledger.Certificate) {
				_, ok := cert.(ledger.UnknownCertificate)
				require.True(t, ok, "got %T", cert)
			},
		},
	}
	for _, testDef := range testDefs {
		t.Run(testDef.name, func(t *testing.T) {
			cert, err := ledger.NewCertificateFromCbor(test.DecodeHexString(testDef.cborHex))
			require.NoError(t, err)
			assert.Equal(t, testDef.expectedType, cert.CertificateType())
			if testDef.check != nil {
				testDef.check(t, cert)
			}
		})
	}
}

func TestNewCertificateFromCborMissingField(t *testing.T) {
	// Pool retirement without the epoch
	_, err := ledger.NewCertificateFromCbor(
		test.DecodeHexString("8204581c0a0a0a0a0a0a0a0a0a0a0a0a0a0a0a0a0a0a0a0a0a0a0a0a0a0a0a0a"),
	)
	require.Error(t, err)
}
