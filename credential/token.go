// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2021 EduChain Vietnam
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package credential

import (
	"encoding/json"
	"fmt"

	"github.com/bitmark-inc/logger"

	"github.com/educhain-vn/eduledgerd/audit"
	"github.com/educhain-vn/eduledgerd/fault"
	"github.com/educhain-vn/eduledgerd/ledger"
)

// MintNFT - create an NFT for an existing credential
//
// the caller becomes the issuer, the recipient the first owner; the
// credential is back-linked to the token
func (d *credentialData) MintNFT(ctx ledger.Context, tokenID string, credentialHash string, recipient string, metadataURI string) (*ledger.Result, error) {
	key := []byte(tokenID)
	if d.poolTokens.Has(key) {
		return nil, fault.TokenAlreadyExists
	}

	cred, err := d.GetCredential(credentialHash)
	if nil != err {
		return nil, err
	}

	token := Token{
		TokenID:        tokenID,
		CredentialHash: credentialHash,
		Owner:          recipient,
		Issuer:         ctx.Caller,
		MetadataURI:    metadataURI,
		IssuedAt:       ctx.Seconds(),
		Transferred:    false,
	}
	d.storeToken(&token)

	cred.LinkedToken = tokenID
	d.storeCredential(cred)

	audit.Get().Record(ctx, "mint_nft", fmt.Sprintf("token_id: %s, credential: %s", tokenID, credentialHash))

	return ledger.NewResult("mint_credential_nft").
		Add("token_id", tokenID).
		Add("credential_hash", credentialHash).
		Add("recipient", recipient), nil
}

// TransferNFT - move ownership to the recipient
//
// only the current owner may transfer
func (d *credentialData) TransferNFT(ctx ledger.Context, tokenID string, recipient string) (*ledger.Result, error) {
	token, err := d.GetNFT(tokenID)
	if nil != err {
		return nil, err
	}
	if token.Owner != ctx.Caller {
		return nil, fault.NotTokenOwner
	}

	token.Owner = recipient
	token.Transferred = true
	d.storeToken(token)

	audit.Get().Record(ctx, "transfer_nft", fmt.Sprintf("token_id: %s, to: %s", tokenID, recipient))

	return ledger.NewResult("transfer_credential_nft").
		Add("token_id", tokenID).
		Add("recipient", recipient), nil
}

// BurnNFT - delete the token record entirely
//
// owner or issuer may burn; afterwards the token id reads as not
// found, indistinguishable from never having existed
func (d *credentialData) BurnNFT(ctx ledger.Context, tokenID string) (*ledger.Result, error) {
	token, err := d.GetNFT(tokenID)
	if nil != err {
		return nil, err
	}
	if token.Owner != ctx.Caller && token.Issuer != ctx.Caller {
		return nil, fault.NotTokenOwnerOrIssuer
	}

	d.poolTokens.Delete([]byte(tokenID))

	audit.Get().Record(ctx, "burn_nft", fmt.Sprintf("token_id: %s", tokenID))

	return ledger.NewResult("burn_credential_nft").Add("token_id", tokenID), nil
}

// GetNFT - point lookup by token id
func (d *credentialData) GetNFT(tokenID string) (*Token, error) {
	buffer := d.poolTokens.Get([]byte(tokenID))
	if nil == buffer {
		return nil, fault.TokenNotFound
	}
	var token Token
	err := json.Unmarshal(buffer, &token)
	if nil != err {
		return nil, err
	}
	return &token, nil
}

// NFTsByOwner - all tokens currently owned by one identity
func (d *credentialData) NFTsByOwner(owner string) ([]Token, error) {
	return d.filterTokens(func(t *Token) bool { return t.Owner == owner })
}

// NFTsByIssuer - all tokens minted by one identity
func (d *credentialData) NFTsByIssuer(issuer string) ([]Token, error) {
	return d.filterTokens(func(t *Token) bool { return t.Issuer == issuer })
}

// linear scan of the token pool; no secondary index is maintained
func (d *credentialData) filterTokens(match func(*Token) bool) ([]Token, error) {
	tokens := []Token{}
	err := d.poolTokens.Map(func(key []byte, value []byte) error {
		var token Token
		err := json.Unmarshal(value, &token)
		if nil != err {
			return err
		}
		if match(&token) {
			tokens = append(tokens, token)
		}
		return nil
	})
	if nil != err {
		return nil, err
	}
	return tokens, nil
}

func (d *credentialData) storeToken(token *Token) {
	buffer, err := json.Marshal(token)
	logger.PanicIfError("credential.storeToken", err)
	d.poolTokens.Put([]byte(token.TokenID), buffer)
}
