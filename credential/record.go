// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2021 EduChain Vietnam
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package credential

// Credential - a verifiable credential anchored by its hash
//
// LinkedToken is set when a credential NFT is minted from the
// credential and keeps the historical "nft_token_id" wire name
type Credential struct {
	Hash        string `json:"hash"`
	Metadata    string `json:"metadata"`
	Issuer      string `json:"issuer"`
	Signature   string `json:"signature"`
	Revoked     bool   `json:"revoked"`
	LinkedToken string `json:"nft_token_id,omitempty"`
}

// Token - an NFT wrapping one credential
type Token struct {
	TokenID        string `json:"token_id"`
	CredentialHash string `json:"credential_hash"`
	Owner          string `json:"owner"`
	Issuer         string `json:"issuer"`
	MetadataURI    string `json:"metadata_uri"`
	IssuedAt       uint64 `json:"issued_at"`
	Transferred    bool   `json:"transferred"`
}

// SchoolNode - a school registered as a network node
type SchoolNode struct {
	DID             string `json:"did"`
	Name            string `json:"name"`
	Address         string `json:"address"`
	NodeID          string `json:"node_id"`
	ServiceEndpoint string `json:"service_endpoint"`
	Active          bool   `json:"active"`
	RegisteredAt    uint64 `json:"registered_at"`
}
