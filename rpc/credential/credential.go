// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2021 EduChain Vietnam
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package credential

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/educhain-vn/eduledgerd/credential"
	"github.com/educhain-vn/eduledgerd/ledger"
	"github.com/educhain-vn/eduledgerd/rpc/ratelimit"
	"github.com/educhain-vn/eduledgerd/rpc/request"
)

// Credential
// ----------

// Credential - type for the RPC
type Credential struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Ledger  credential.Ledger
}

const (
	rateLimitCredential = 200
	rateBurstCredential = 100
)

func New(log *logger.L, l credential.Ledger) *Credential {
	return &Credential{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitCredential, rateBurstCredential),
		Ledger:  l,
	}
}

// Credential issue/revoke
// -----------------------

// IssueArguments - arguments for issuing a verifiable credential
type IssueArguments struct {
	request.Access
	Hash      string `json:"hash"`
	Metadata  string `json:"metadata"`
	Issuer    string `json:"issuer"`
	Signature string `json:"signature"`
}

// Issue - record a signed credential hash
func (c *Credential) Issue(arguments *IssueArguments, reply *request.Reply) error {

	if err := ratelimit.Limit(c.Limiter); nil != err {
		return err
	}

	c.Log.Infof("Credential.Issue: %+v", arguments)

	result, err := request.Transact(func() (*ledger.Result, error) {
		return c.Ledger.IssueVC(arguments.Context(), arguments.Hash, arguments.Metadata, arguments.Issuer, arguments.Signature)
	})
	if nil != err {
		return err
	}

	reply.Set(result)
	return nil
}

// RevokeArguments - arguments for revoking a credential
type RevokeArguments struct {
	request.Access
	Hash string `json:"hash"`
}

// Revoke - mark a credential revoked, issuer only
func (c *Credential) Revoke(arguments *RevokeArguments, reply *request.Reply) error {

	if err := ratelimit.Limit(c.Limiter); nil != err {
		return err
	}

	c.Log.Infof("Credential.Revoke: %+v", arguments)

	result, err := request.Transact(func() (*ledger.Result, error) {
		return c.Ledger.RevokeVC(arguments.Context(), arguments.Hash)
	})
	if nil != err {
		return err
	}

	reply.Set(result)
	return nil
}

// Credential tokens
// -----------------

// MintTokenArguments - arguments for minting a credential token
type MintTokenArguments struct {
	request.Access
	TokenId        string `json:"token_id"`
	CredentialHash string `json:"credential_hash"`
	Recipient      string `json:"recipient"`
	MetadataURI    string `json:"metadata_uri"`
}

// MintToken - mint the token for an issued credential
func (c *Credential) MintToken(arguments *MintTokenArguments, reply *request.Reply) error {

	if err := ratelimit.Limit(c.Limiter); nil != err {
		return err
	}

	c.Log.Infof("Credential.MintToken: %+v", arguments)

	result, err := request.Transact(func() (*ledger.Result, error) {
		return c.Ledger.MintNFT(arguments.Context(), arguments.TokenId, arguments.CredentialHash, arguments.Recipient, arguments.MetadataURI)
	})
	if nil != err {
		return err
	}

	reply.Set(result)
	return nil
}

// TransferTokenArguments - arguments for a token transfer
type TransferTokenArguments struct {
	request.Access
	TokenId   string `json:"token_id"`
	Recipient string `json:"recipient"`
}

// TransferToken - move a token to a new owner, owner only
func (c *Credential) TransferToken(arguments *TransferTokenArguments, reply *request.Reply) error {

	if err := ratelimit.Limit(c.Limiter); nil != err {
		return err
	}

	c.Log.Infof("Credential.TransferToken: %+v", arguments)

	result, err := request.Transact(func() (*ledger.Result, error) {
		return c.Ledger.TransferNFT(arguments.Context(), arguments.TokenId, arguments.Recipient)
	})
	if nil != err {
		return err
	}

	reply.Set(result)
	return nil
}

// BurnTokenArguments - arguments for destroying a token
type BurnTokenArguments struct {
	request.Access
	TokenId string `json:"token_id"`
}

// BurnToken - destroy a token, owner or issuer only
func (c *Credential) BurnToken(arguments *BurnTokenArguments, reply *request.Reply) error {

	if err := ratelimit.Limit(c.Limiter); nil != err {
		return err
	}

	c.Log.Infof("Credential.BurnToken: %+v", arguments)

	result, err := request.Transact(func() (*ledger.Result, error) {
		return c.Ledger.BurnNFT(arguments.Context(), arguments.TokenId)
	})
	if nil != err {
		return err
	}

	reply.Set(result)
	return nil
}

// School nodes
// ------------

// RegisterSchoolArguments - arguments for registering a school node
type RegisterSchoolArguments struct {
	request.Access
	DID             string `json:"did"`
	Name            string `json:"name"`
	ServiceEndpoint string `json:"service_endpoint"`
	NodeId          string `json:"node_id"`
}

// RegisterSchool - register a school node under its DID
func (c *Credential) RegisterSchool(arguments *RegisterSchoolArguments, reply *request.Reply) error {

	if err := ratelimit.Limit(c.Limiter); nil != err {
		return err
	}

	c.Log.Infof("Credential.RegisterSchool: %+v", arguments)

	result, err := request.Transact(func() (*ledger.Result, error) {
		return c.Ledger.RegisterSchoolNode(arguments.Context(), arguments.DID, arguments.Name, arguments.ServiceEndpoint, arguments.NodeId)
	})
	if nil != err {
		return err
	}

	reply.Set(result)
	return nil
}

// UpdateSchoolArguments - arguments for updating a school node
//
// nil fields are left unchanged
type UpdateSchoolArguments struct {
	request.Access
	DID             string  `json:"did"`
	Name            *string `json:"name,omitempty"`
	ServiceEndpoint *string `json:"service_endpoint,omitempty"`
	Active          *bool   `json:"active,omitempty"`
}

// UpdateSchool - change school node fields, registrant only
func (c *Credential) UpdateSchool(arguments *UpdateSchoolArguments, reply *request.Reply) error {

	if err := ratelimit.Limit(c.Limiter); nil != err {
		return err
	}

	c.Log.Infof("Credential.UpdateSchool: did: %s", arguments.DID)

	result, err := request.Transact(func() (*ledger.Result, error) {
		return c.Ledger.UpdateSchoolNode(arguments.Context(), arguments.DID, arguments.Name, arguments.ServiceEndpoint, arguments.Active)
	})
	if nil != err {
		return err
	}

	reply.Set(result)
	return nil
}

// DeactivateSchoolArguments - arguments for deactivating a school node
type DeactivateSchoolArguments struct {
	request.Access
	DID string `json:"did"`
}

// DeactivateSchool - switch a school node off, registrant only
func (c *Credential) DeactivateSchool(arguments *DeactivateSchoolArguments, reply *request.Reply) error {

	if err := ratelimit.Limit(c.Limiter); nil != err {
		return err
	}

	c.Log.Infof("Credential.DeactivateSchool: %+v", arguments)

	result, err := request.Transact(func() (*ledger.Result, error) {
		return c.Ledger.DeactivateSchoolNode(arguments.Context(), arguments.DID)
	})
	if nil != err {
		return err
	}

	reply.Set(result)
	return nil
}

// Queries
// -------

// GetArguments - select one credential by hash
type GetArguments struct {
	Hash string `json:"hash"`
}

// Get - read one credential
func (c *Credential) Get(arguments *GetArguments, reply *credential.Credential) error {

	if err := ratelimit.Limit(c.Limiter); nil != err {
		return err
	}

	return request.Query(func() error {
		record, err := c.Ledger.GetCredential(arguments.Hash)
		if nil != err {
			return err
		}

		*reply = *record
		return nil
	})
}

// StatusReply - revocation status of a credential
type StatusReply struct {
	Revoked bool `json:"revoked"`
}

// Status - report revocation, false for unknown hashes
func (c *Credential) Status(arguments *GetArguments, reply *StatusReply) error {

	if err := ratelimit.Limit(c.Limiter); nil != err {
		return err
	}

	return request.Query(func() error {
		revoked, err := c.Ledger.IsRevoked(arguments.Hash)
		if nil != err {
			return err
		}

		reply.Revoked = revoked
		return nil
	})
}

// GetTokenArguments - select one token by identifier
type GetTokenArguments struct {
	TokenId string `json:"token_id"`
}

// GetToken - read one credential token
func (c *Credential) GetToken(arguments *GetTokenArguments, reply *credential.Token) error {

	if err := ratelimit.Limit(c.Limiter); nil != err {
		return err
	}

	return request.Query(func() error {
		token, err := c.Ledger.GetNFT(arguments.TokenId)
		if nil != err {
			return err
		}

		*reply = *token
		return nil
	})
}

// TokensArguments - select tokens by owner or issuer
type TokensArguments struct {
	Owner  string `json:"owner,omitempty"`
	Issuer string `json:"issuer,omitempty"`
}

// TokensReply - result of a token list query
type TokensReply struct {
	Tokens []credential.Token `json:"tokens"`
}

// Tokens - list tokens for an owner or an issuer
func (c *Credential) Tokens(arguments *TokensArguments, reply *TokensReply) error {

	if err := ratelimit.Limit(c.Limiter); nil != err {
		return err
	}

	return request.Query(func() error {
		var tokens []credential.Token
		var err error
		if "" != arguments.Owner {
			tokens, err = c.Ledger.NFTsByOwner(arguments.Owner)
		} else {
			tokens, err = c.Ledger.NFTsByIssuer(arguments.Issuer)
		}
		if nil != err {
			return err
		}

		reply.Tokens = tokens
		return nil
	})
}

// GetSchoolArguments - select one school node by DID
type GetSchoolArguments struct {
	DID string `json:"did"`
}

// GetSchool - read one school node
func (c *Credential) GetSchool(arguments *GetSchoolArguments, reply *credential.SchoolNode) error {

	if err := ratelimit.Limit(c.Limiter); nil != err {
		return err
	}

	return request.Query(func() error {
		node, err := c.Ledger.GetSchoolNode(arguments.DID)
		if nil != err {
			return err
		}

		*reply = *node
		return nil
	})
}

// SchoolsArguments - filter for the school list
type SchoolsArguments struct {
	ActiveOnly bool `json:"active_only"`
}

// SchoolsReply - result of the school list query
type SchoolsReply struct {
	Schools []credential.SchoolNode `json:"schools"`
}

// Schools - list registered school nodes
func (c *Credential) Schools(arguments *SchoolsArguments, reply *SchoolsReply) error {

	if err := ratelimit.Limit(c.Limiter); nil != err {
		return err
	}

	return request.Query(func() error {
		nodes, err := c.Ledger.ListSchoolNodes(arguments.ActiveOnly)
		if nil != err {
			return err
		}

		reply.Schools = nodes
		return nil
	})
}
