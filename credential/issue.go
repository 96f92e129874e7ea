// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2021 EduChain Vietnam
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package credential

import (
	"encoding/json"

	"github.com/bitmark-inc/logger"

	"github.com/educhain-vn/eduledgerd/audit"
	"github.com/educhain-vn/eduledgerd/fault"
	"github.com/educhain-vn/eduledgerd/ledger"
)

// IssueVC - record a new verifiable credential under its hash
func (d *credentialData) IssueVC(ctx ledger.Context, hash string, metadata string, issuer string, signature string) (*ledger.Result, error) {
	key := []byte(hash)
	if d.poolCredentials.Has(key) {
		return nil, fault.CredentialAlreadyExists
	}

	cred := Credential{
		Hash:      hash,
		Metadata:  metadata,
		Issuer:    issuer,
		Signature: signature,
		Revoked:   false,
	}
	d.storeCredential(&cred)

	audit.Get().Record(ctx, "issue_vc", hash)

	return ledger.NewResult("issue_vc").Add("issuer", ctx.Caller), nil
}

// RevokeVC - permanently mark a credential revoked
//
// only the recorded issuer may revoke; revocation never reverts
func (d *credentialData) RevokeVC(ctx ledger.Context, hash string) (*ledger.Result, error) {
	cred, err := d.GetCredential(hash)
	if nil != err {
		return nil, err
	}
	if cred.Issuer != ctx.Caller {
		return nil, fault.NotCredentialIssuer
	}
	if cred.Revoked {
		return nil, fault.CredentialAlreadyRevoked
	}

	cred.Revoked = true
	d.storeCredential(cred)

	audit.Get().Record(ctx, "revoke_vc", hash)

	return ledger.NewResult("revoke_vc").Add("hash", hash), nil
}

// GetCredential - point lookup by hash
func (d *credentialData) GetCredential(hash string) (*Credential, error) {
	buffer := d.poolCredentials.Get([]byte(hash))
	if nil == buffer {
		return nil, fault.CredentialNotFound
	}
	var cred Credential
	err := json.Unmarshal(buffer, &cred)
	if nil != err {
		return nil, err
	}
	return &cred, nil
}

// IsRevoked - revocation status; a missing credential reads as not
// revoked rather than an error
func (d *credentialData) IsRevoked(hash string) (bool, error) {
	cred, err := d.GetCredential(hash)
	if fault.CredentialNotFound == err {
		return false, nil
	} else if nil != err {
		return false, err
	}
	return cred.Revoked, nil
}

func (d *credentialData) storeCredential(cred *Credential) {
	buffer, err := json.Marshal(cred)
	logger.PanicIfError("credential.store", err)
	d.poolCredentials.Put([]byte(cred.Hash), buffer)
}
