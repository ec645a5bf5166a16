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
	"encoding/hex"
	"fmt"
	"strconv"

	"github.com/blinklabs-io/gouroboros/ledger/common"
	"github.com/blinklabs-io/txview/ledger"
	"github.com/blinklabs-io/txview/plutusdata"
	"github.com/btcsuite/btcd/btcutil/bech32"
)

// Certificate kind names
const (
	CertKindStakeRegistration               = "StakeRegistration"
	CertKindStakeDeregistration             = "StakeDeregistration"
	CertKindStakeDelegation                 = "StakeDelegation"
	CertKindPoolRegistration                = "PoolRegistration"
	CertKindPoolRetirement                  = "PoolRetirement"
	CertKindGenesisKeyDelegation            = "GenesisKeyDelegation"
	CertKindMoveInstantaneousRewards        = "MoveInstantaneousRewards"
	CertKindVoteDelegation                  = "VoteDelegation"
	CertKindStakeVoteDelegation             = "StakeVoteDelegation"
	CertKindStakeRegistrationDelegation     = "StakeRegistrationDelegation"
	CertKindVoteRegistrationDelegation      = "VoteRegistrationDelegation"
	CertKindStakeVoteRegistrationDelegation = "StakeVoteRegistrationDelegation"
	CertKindAuthorizeCommitteeHot           = "AuthorizeCommitteeHot"
	CertKindResignCommitteeCold             = "ResignCommitteeCold"
	CertKindRegisterDrep                    = "RegisterDelegateRepresentative"
	CertKindUnregisterDrep                  = "UnregisterDelegateRepresentative"
	CertKindUpdateDrep                      = "UpdateDelegateRepresentative"
	CertKindUnknown                         = "Unknown"
)

const (
	poolIdPrefix = "pool"

	drepAbstain      = "abstain"
	drepNoConfidence = "no_confidence"
)

// ClassifyCertificate maps a decoded certificate to its kind name and the
// details relevant for display
func ClassifyCertificate(cert ledger.Certificate) Certificate {
	d := certDetail{}
	var kind string
	switch c := cert.(type) {
	case ledger.StakeRegistrationCertificate:
		kind = CertKindStakeRegistration
		d.stakeCredential(c.StakeCredential)
	case ledger.RegistrationCertificate:
		kind = CertKindStakeRegistration
		d.stakeCredential(c.StakeCredential)
		d.deposit(c.Amount)
	case ledger.StakeDeregistrationCertificate:
		kind = CertKindStakeDeregistration
		d.stakeCredential(c.StakeCredential)
	case ledger.DeregistrationCertificate:
		kind = CertKindStakeDeregistration
		d.stakeCredential(c.StakeCredential)
		d.deposit(c.Amount)
	case ledger.StakeDelegationCertificate:
		kind = CertKindStakeDelegation
		d.stakeCredential(c.StakeCredential)
		d.poolId(c.PoolKeyHash)
	case ledger.PoolRegistrationCertificate:
		kind = CertKindPoolRegistration
		d.poolId(c.Operator)
	case ledger.PoolRetirementCertificate:
		kind = CertKindPoolRetirement
		d.poolId(c.PoolKeyHash)
		d["epoch"] = c.Epoch
	case ledger.GenesisKeyDelegationCertificate:
		kind = CertKindGenesisKeyDelegation
	case ledger.MoveInstantaneousRewardsCertificate:
		kind = CertKindMoveInstantaneousRewards
	case ledger.VoteDelegationCertificate:
		kind = CertKindVoteDelegation
		d.stakeCredential(c.StakeCredential)
		d.drep(c.Drep)
	case ledger.StakeVoteDelegationCertificate:
		kind = CertKindStakeVoteDelegation
		d.stakeCredential(c.StakeCredential)
		d.poolId(c.PoolKeyHash)
		d.drep(c.Drep)
	case ledger.StakeRegistrationDelegationCertificate:
		kind = CertKindStakeRegistrationDelegation
		d.stakeCredential(c.StakeCredential)
		d.poolId(c.PoolKeyHash)
		d.deposit(c.Amount)
	case ledger.VoteRegistrationDelegationCertificate:
		kind = CertKindVoteRegistrationDelegation
		d.stakeCredential(c.StakeCredential)
		d.drep(c.Drep)
		d.deposit(c.Amount)
	case ledger.StakeVoteRegistrationDelegationCertificate:
		kind = CertKindStakeVoteRegistrationDelegation
		d.stakeCredential(c.StakeCredential)
		d.poolId(c.PoolKeyHash)
		d.drep(c.Drep)
		d.deposit(c.Amount)
	case ledger.AuthCommitteeHotCertificate:
		kind = CertKindAuthorizeCommitteeHot
	case ledger.ResignCommitteeColdCertificate:
		kind = CertKindResignCommitteeCold
		d.anchor(c.Anchor)
	case ledger.RegistrationDrepCertificate:
		kind = CertKindRegisterDrep
		d["dRep"] = c.DrepCredential.Hash().String()
		d.deposit(c.Amount)
		d.anchor(c.Anchor)
	case ledger.DeregistrationDrepCertificate:
		kind = CertKindUnregisterDrep
		d["dRep"] = c.DrepCredential.Hash().String()
		d.deposit(c.Amount)
	case ledger.UpdateDrepCertificate:
		kind = CertKindUpdateDrep
		d["dRep"] = c.DrepCredential.Hash().String()
		d.anchor(c.Anchor)
	default:
		kind = CertKindUnknown
	}
	return Certificate{Type: kind, Detail: d}
}

type certDetail map[string]any

func (d certDetail) stakeCredential(cred ledger.Credential) {
	d["stakeCredential"] = cred.Hash().String()
}

func (d certDetail) poolId(poolKeyHash common.Blake2b224) {
	d["poolId"] = encodePoolId(poolKeyHash.Bytes())
}

func (d certDetail) deposit(amount uint64) {
	d["deposit"] = strconv.FormatUint(amount, 10)
}

func (d certDetail) anchor(anchor *ledger.GovAnchor) {
	if anchor == nil {
		return
	}
	d["anchor"] = map[string]any{
		"url":      anchor.Url,
		"dataHash": anchor.DataHash.String(),
	}
}

func (d certDetail) drep(drep ledger.Drep) {
	switch drep.Type {
	case ledger.DrepTypeAbstain:
		d["dRep"] = drepAbstain
	case ledger.DrepTypeNoConfidence:
		d["dRep"] = drepNoConfidence
	default:
		d["dRep"] = hex.EncodeToString(drep.Credential)
	}
}

// encodePoolId returns the bech32 pool ID, or the hex key hash if it can't be
// encoded
func encodePoolId(poolKeyHash []byte) string {
	conv, err := bech32.ConvertBits(poolKeyHash, 8, 5, true)
	if err != nil {
		return hex.EncodeToString(poolKeyHash)
	}
	ret, err := bech32.Encode(poolIdPrefix, conv)
	if err != nil {
		return hex.EncodeToString(poolKeyHash)
	}
	return ret
}

// CertificateFields is an untyped certificate record, such as one parsed from
// JSON
type CertificateFields map[string]any

func (f CertificateFields) has(name string) bool {
	_, ok := f[name]
	return ok
}

// ClassifyFields determines a certificate kind from the fields present on an
// untyped record. An explicit "type" string is used as-is. Otherwise the
// first matching rule wins
func ClassifyFields(fields CertificateFields) Certificate {
	return Certificate{
		Type:   classifyFieldsKind(fields),
		Detail: fieldsDetail(fields),
	}
}

func classifyFieldsKind(fields CertificateFields) string {
	if kind, ok := fields["type"].(string); ok && kind != "" {
		return kind
	}
	switch {
	case fields.has("poolParameters"):
		return CertKindPoolRegistration
	case fields.has("poolId") && fields.has("epoch"):
		return CertKindPoolRetirement
	case fields.has("stakeCredential") && fields.has("poolId"):
		return CertKindStakeDelegation
	case fields.has("stakeCredential") && fields.has("deposit"):
		return CertKindStakeRegistration
	case fields.has("stakeCredential"):
		return CertKindStakeDeregistration
	case fields.has("dRep"):
		return CertKindVoteDelegation
	}
	return CertKindUnknown
}

func fieldsDetail(fields CertificateFields) certDetail {
	d := certDetail{}
	if v, ok := fields["stakeCredential"]; ok {
		d["stakeCredential"] = hashString(v)
	}
	if v, ok := fields["poolId"]; ok {
		d["poolId"] = fmt.Sprint(v)
	}
	if v, ok := fields["epoch"]; ok {
		d["epoch"] = plutusdata.ToJSON(v)
	}
	if v, ok := fields["deposit"]; ok {
		d["deposit"] = fmt.Sprint(v)
	}
	if v, ok := fields["anchor"].(map[string]any); ok && v != nil {
		d["anchor"] = map[string]any{
			"url":      fmt.Sprint(v["url"]),
			"dataHash": hashString(v["dataHash"]),
		}
	}
	if v, ok := fields["dRep"]; ok {
		d["dRep"] = hashString(v)
	}
	return d
}

// hashString unwraps credential-like values of the form {"hash": ...}
func hashString(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case []byte:
		return hex.EncodeToString(val)
	case map[string]any:
		if h, ok := val["hash"]; ok {
			return hashString(h)
		}
	}
	return fmt.Sprint(v)
}
