// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2021 EduChain Vietnam
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package credential - verifiable credentials, credential NFTs and
// school node registrations
//
// Execute operations stage their writes in the current store
// transaction; the caller commits or aborts.  All guards run before
// any write is staged.
package credential

import (
	"github.com/educhain-vn/eduledgerd/ledger"
	"github.com/educhain-vn/eduledgerd/storage"
)

// Ledger - credential transitions and queries
type Ledger interface {
	IssueVC(ctx ledger.Context, hash string, metadata string, issuer string, signature string) (*ledger.Result, error)
	RevokeVC(ctx ledger.Context, hash string) (*ledger.Result, error)
	MintNFT(ctx ledger.Context, tokenID string, credentialHash string, recipient string, metadataURI string) (*ledger.Result, error)
	TransferNFT(ctx ledger.Context, tokenID string, recipient string) (*ledger.Result, error)
	BurnNFT(ctx ledger.Context, tokenID string) (*ledger.Result, error)
	RegisterSchoolNode(ctx ledger.Context, did string, name string, serviceEndpoint string, nodeID string) (*ledger.Result, error)
	UpdateSchoolNode(ctx ledger.Context, did string, name *string, serviceEndpoint *string, active *bool) (*ledger.Result, error)
	DeactivateSchoolNode(ctx ledger.Context, did string) (*ledger.Result, error)

	GetCredential(hash string) (*Credential, error)
	IsRevoked(hash string) (bool, error)
	GetNFT(tokenID string) (*Token, error)
	NFTsByOwner(owner string) ([]Token, error)
	NFTsByIssuer(issuer string) ([]Token, error)
	GetSchoolNode(did string) (*SchoolNode, error)
	ListSchoolNodes(activeOnly bool) ([]SchoolNode, error)
}

type credentialData struct {
	poolCredentials storage.Handle
	poolTokens      storage.Handle
	poolSchools     storage.Handle
}

var data credentialData

// Initialise - attach the credential pools
func Initialise(credentials, tokens, schools storage.Handle) {
	data = credentialData{
		poolCredentials: credentials,
		poolTokens:      tokens,
		poolSchools:     schools,
	}
}

// Get - return the Ledger interface
func Get() Ledger {
	return &data
}
