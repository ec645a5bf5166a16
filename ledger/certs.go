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
	"errors"
	"fmt"

	"github.com/blinklabs-io/gouroboros/cbor"
	"github.com/blinklabs-io/gouroboros/ledger/common"
)

const (
	CertificateTypeStakeRegistration               = 0
	CertificateTypeStakeDeregistration             = 1
	CertificateTypeStakeDelegation                 = 2
	CertificateTypePoolRegistration                = 3
	CertificateTypePoolRetirement                  = 4
	CertificateTypeGenesisKeyDelegation            = 5
	CertificateTypeMoveInstantaneousRewards        = 6
	CertificateTypeRegistration                    = 7
	CertificateTypeDeregistration                  = 8
	CertificateTypeVoteDelegation                  = 9
	CertificateTypeStakeVoteDelegation             = 10
	CertificateTypeStakeRegistrationDelegation     = 11
	CertificateTypeVoteRegistrationDelegation      = 12
	CertificateTypeStakeVoteRegistrationDelegation = 13
	CertificateTypeAuthCommitteeHot                = 14
	CertificateTypeResignCommitteeCold             = 15
	CertificateTypeRegistrationDrep                = 16
	CertificateTypeDeregistrationDrep              = 17
	CertificateTypeUpdateDrep                      = 18
)

const (
	CredentialTypeAddrKeyHash = 0
	CredentialTypeScriptHash  = 1
)

const (
	DrepTypeAddrKeyHash  = 0
	DrepTypeScriptHash   = 1
	DrepTypeAbstain      = 2
	DrepTypeNoConfidence = 3
)

// Certificate is implemented by each of the certificate types below and by
// UnknownCertificate
type Certificate interface {
	CertificateType() uint
	isCertificate()
}

type Credential struct {
	cbor.StructAsArray
	CredType   uint
	Credential common.Blake2b224
}

func (c Credential) Hash() common.Blake2b224 {
	return c.Credential
}

type Drep struct {
	Type       int
	Credential []byte
}

func (d *Drep) UnmarshalCBOR(data []byte) error {
	var items []cbor.RawMessage
	if _, err := cbor.Decode(data, &items); err != nil {
		return err
	}
	if len(items) == 0 {
		return errors.New("empty DRep")
	}
	if _, err := cbor.Decode(items[0], &d.Type); err != nil {
		return err
	}
	switch d.Type {
	case DrepTypeAddrKeyHash, DrepTypeScriptHash:
		if len(items) != 2 {
			return fmt.Errorf("DRep type %d without credential", d.Type)
		}
		if _, err := cbor.Decode(items[1], &d.Credential); err != nil {
			return err
		}
	case DrepTypeAbstain, DrepTypeNoConfidence:
	default:
		return fmt.Errorf("unknown DRep type: %d", d.Type)
	}
	return nil
}

type GovAnchor struct {
	cbor.StructAsArray
	Url      string
	DataHash common.Blake2b256
}

type PoolMetadata struct {
	cbor.StructAsArray
	Url  string
	Hash common.Blake2b256
}

type StakeRegistrationCertificate struct {
	cbor.StructAsArray
	CertType        uint
	StakeCredential Credential
}

type StakeDeregistrationCertificate struct {
	cbor.StructAsArray
	CertType        uint
	StakeCredential Credential
}

type StakeDelegationCertificate struct {
	cbor.StructAsArray
	CertType        uint
	StakeCredential Credential
	PoolKeyHash     common.Blake2b224
}

type PoolRegistrationCertificate struct {
	cbor.StructAsArray
	CertType      uint
	Operator      common.Blake2b224
	VrfKeyHash    common.Blake2b256
	Pledge        uint64
	Cost          uint64
	Margin        cbor.Rat
	RewardAccount []byte
	PoolOwners    cbor.RawMessage
	Relays        cbor.RawMessage
	PoolMetadata  *PoolMetadata
}

// Owners returns the pool owner key hashes
func (c PoolRegistrationCertificate) Owners() ([]common.Blake2b224, error) {
	var ret []common.Blake2b224
	if err := decodeSet(c.PoolOwners, &ret); err != nil {
		return nil, err
	}
	return ret, nil
}

type PoolRetirementCertificate struct {
	cbor.StructAsArray
	CertType    uint
	PoolKeyHash common.Blake2b224
	Epoch       uint64
}

type GenesisKeyDelegationCertificate struct {
	cbor.StructAsArray
	CertType            uint
	GenesisHash         []byte
	GenesisDelegateHash []byte
	VrfKeyHash          []byte
}

type MoveInstantaneousRewardsCertificate struct {
	cbor.StructAsArray
	CertType uint
	Reward   cbor.RawMessage
}

type RegistrationCertificate struct {
	cbor.StructAsArray
	CertType        uint
	StakeCredential Credential
	Amount          uint64
}

type DeregistrationCertificate struct {
	cbor.StructAsArray
	CertType        uint
	StakeCredential Credential
	Amount          uint64
}

type VoteDelegationCertificate struct {
	cbor.StructAsArray
	CertType        uint
	StakeCredential Credential
	Drep            Drep
}

type StakeVoteDelegationCertificate struct {
	cbor.StructAsArray
	CertType        uint
	StakeCredential Credential
	PoolKeyHash     common.Blake2b224
	Drep            Drep
}

type StakeRegistrationDelegationCertificate struct {
	cbor.StructAsArray
	CertType        uint
	StakeCredential Credential
	PoolKeyHash     common.Blake2b224
	Amount          uint64
}

type VoteRegistrationDelegationCertificate struct {
	cbor.StructAsArray
	CertType        uint
	StakeCredential Credential
	Drep            Drep
	Amount          uint64
}

type StakeVoteRegistrationDelegationCertificate struct {
	cbor.StructAsArray
	CertType        uint
	StakeCredential Credential
	PoolKeyHash     common.Blake2b224
	Drep            Drep
	Amount          uint64
}

type AuthCommitteeHotCertificate struct {
	cbor.StructAsArray
	CertType       uint
	ColdCredential Credential
	HotCredential  Credential
}

type ResignCommitteeColdCertificate struct {
	cbor.StructAsArray
	CertType       uint
	ColdCredential Credential
	Anchor         *GovAnchor
}

type RegistrationDrepCertificate struct {
	cbor.StructAsArray
	CertType       uint
	DrepCredential Credential
	Amount         uint64
	Anchor         *GovAnchor
}

type DeregistrationDrepCertificate struct {
	cbor.StructAsArray
	CertType       uint
	DrepCredential Credential
	Amount         uint64
}

type UpdateDrepCertificate struct {
	cbor.StructAsArray
	CertType       uint
	DrepCredential Credential
	Anchor         *GovAnchor
}

// UnknownCertificate holds a certificate with a type this package doesn't know
type UnknownCertificate struct {
	CertType uint
	Raw      cbor.RawMessage
}

func (c StakeRegistrationCertificate) CertificateType() uint               { return c.CertType }
func (c StakeDeregistrationCertificate) CertificateType() uint             { return c.CertType }
func (c StakeDelegationCertificate) CertificateType() uint                 { return c.CertType }
func (c PoolRegistrationCertificate) CertificateType() uint                { return c.CertType }
func (c PoolRetirementCertificate) CertificateType() uint                  { return c.CertType }
func (c GenesisKeyDelegationCertificate) CertificateType() uint            { return c.CertType }
func (c MoveInstantaneousRewardsCertificate) CertificateType() uint        { return c.CertType }
func (c RegistrationCertificate) CertificateType() uint                    { return c.CertType }
func (c DeregistrationCertificate) CertificateType() uint                  { return c.CertType }
func (c VoteDelegationCertificate) CertificateType() uint                  { return c.CertType }
func (c StakeVoteDelegationCertificate) CertificateType() uint             { return c.CertType }
func (c StakeRegistrationDelegationCertificate) CertificateType() uint     { return c.CertType }
func (c VoteRegistrationDelegationCertificate) CertificateType() uint      { return c.CertType }
func (c StakeVoteRegistrationDelegationCertificate) CertificateType() uint { return c.CertType }
func (c AuthCommitteeHotCertificate) CertificateType() uint                { return c.CertType }
func (c ResignCommitteeColdCertificate) CertificateType() uint             { return c.CertType }
func (c RegistrationDrepCertificate) CertificateType() uint                { return c.CertType }
func (c DeregistrationDrepCertificate) CertificateType() uint              { return c.CertType }
func (c UpdateDrepCertificate) CertificateType() uint                      { return c.CertType }
func (c UnknownCertificate) CertificateType() uint                         { return c.CertType }

func (StakeRegistrationCertificate) isCertificate()               {}
func (StakeDeregistrationCertificate) isCertificate()             {}
func (StakeDelegationCertificate) isCertificate()                 {}
func (PoolRegistrationCertificate) isCertificate()                {}
func (PoolRetirementCertificate) isCertificate()                  {}
func (GenesisKeyDelegationCertificate) isCertificate()            {}
func (MoveInstantaneousRewardsCertificate) isCertificate()        {}
func (RegistrationCertificate) isCertificate()                    {}
func (DeregistrationCertificate) isCertificate()                  {}
func (VoteDelegationCertificate) isCertificate()                  {}
func (StakeVoteDelegationCertificate) isCertificate()             {}
func (StakeRegistrationDelegationCertificate) isCertificate()     {}
func (VoteRegistrationDelegationCertificate) isCertificate()      {}
func (StakeVoteRegistrationDelegationCertificate) isCertificate() {}
func (AuthCommitteeHotCertificate) isCertificate()                {}
func (ResignCommitteeColdCertificate) isCertificate()             {}
func (RegistrationDrepCertificate) isCertificate()                {}
func (DeregistrationDrepCertificate) isCertificate()              {}
func (UpdateDrepCertificate) isCertificate()                      {}
func (UnknownCertificate) isCertificate()                         {}

// NewCertificateFromCbor decodes a single certificate based on its type ID.
// Types outside the known range are returned as UnknownCertificate
func NewCertificateFromCbor(data []byte) (Certificate, error) {
	certType, err := cbor.DecodeIdFromList(data)
	if err != nil {
		return nil, err
	}
	var tmpCert Certificate
	switch certType {
	case CertificateTypeStakeRegistration:
		tmpCert = &StakeRegistrationCertificate{}
	case CertificateTypeStakeDeregistration:
		tmpCert = &StakeDeregistrationCertificate{}
	case CertificateTypeStakeDelegation:
		tmpCert = &StakeDelegationCertificate{}
	case CertificateTypePoolRegistration:
		tmpCert = &PoolRegistrationCertificate{}
	case CertificateTypePoolRetirement:
		tmpCert = &PoolRetirementCertificate{}
	case CertificateTypeGenesisKeyDelegation:
		tmpCert = &GenesisKeyDelegationCertificate{}
	case CertificateTypeMoveInstantaneousRewards:
		tmpCert = &MoveInstantaneousRewardsCertificate{}
	case CertificateTypeRegistration:
		tmpCert = &RegistrationCertificate{}
	case CertificateTypeDeregistration:
		tmpCert = &DeregistrationCertificate{}
	case CertificateTypeVoteDelegation:
		tmpCert = &VoteDelegationCertificate{}
	case CertificateTypeStakeVoteDelegation:
		tmpCert = &StakeVoteDelegationCertificate{}
	case CertificateTypeStakeRegistrationDelegation:
		tmpCert = &StakeRegistrationDelegationCertificate{}
	case CertificateTypeVoteRegistrationDelegation:
		tmpCert = &VoteRegistrationDelegationCertificate{}
	case CertificateTypeStakeVoteRegistrationDelegation:
		tmpCert = &StakeVoteRegistrationDelegationCertificate{}
	case CertificateTypeAuthCommitteeHot:
		tmpCert = &AuthCommitteeHotCertificate{}
	case CertificateTypeResignCommitteeCold:
		tmpCert = &ResignCommitteeColdCertificate{}
	case CertificateTypeRegistrationDrep:
		tmpCert = &RegistrationDrepCertificate{}
	case CertificateTypeDeregistrationDrep:
		tmpCert = &DeregistrationDrepCertificate{}
	case CertificateTypeUpdateDrep:
		tmpCert = &UpdateDrepCertificate{}
	default:
		if certType < 0 {
			return nil, fmt.Errorf("invalid certificate type: %d", certType)
		}
		return UnknownCertificate{CertType: uint(certType), Raw: data}, nil
	}
	if _, err := cbor.Decode(data, tmpCert); err != nil {
		return nil, fmt.Errorf(
			"decode certificate type %d error: %w",
			certType,
			err,
		)
	}
	return derefCertificate(tmpCert), nil
}

// derefCertificate returns certificates by value so type switches only need
// to handle one form
func derefCertificate(cert Certificate) Certificate {
	switch c := cert.(type) {
	case *StakeRegistrationCertificate:
		return *c
	case *StakeDeregistrationCertificate:
		return *c
	case *StakeDelegationCertificate:
		return *c
	case *PoolRegistrationCertificate:
		return *c
	case *PoolRetirementCertificate:
		return *c
	case *GenesisKeyDelegationCertificate:
		return *c
	case *MoveInstantaneousRewardsCertificate:
		return *c
	case *RegistrationCertificate:
		return *c
	case *DeregistrationCertificate:
		return *c
	case *VoteDelegationCertificate:
		return *c
	case *StakeVoteDelegationCertificate:
		return *c
	case *StakeRegistrationDelegationCertificate:
		return *c
	case *VoteRegistrationDelegationCertificate:
		return *c
	case *StakeVoteRegistrationDelegationCertificate:
		return *c
	case *AuthCommitteeHotCertificate:
		return *c
	case *ResignCommitteeColdCertificate:
		return *c
	case *RegistrationDrepCertificate:
		return *c
	case *DeregistrationDrepCertificate:
		return *c
	case *UpdateDrepCertificate:
		return *c
	}
	return cert
}

func decodeCertificates(data []byte) ([]Certificate, error) {
	var items []cbor.RawMessage
	if err := decodeSet(data, &items); err != nil {
		return nil, err
	}
	ret := make([]Certificate, 0, len(items))
	for idx, item := range items {
		cert, err := NewCertificateFromCbor(item)
		if err != nil {
			return nil, fmt.Errorf("certificate %d: %w", idx, err)
		}
		ret = append(ret, cert)
	}
	return ret, nil
}
