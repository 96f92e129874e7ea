// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2021 EduChain Vietnam
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package research - research output fingerprints and plagiarism
// bounties
//
// A hash record anchors one research artifact (SHA-256 of the data)
// to its registering owner; a DOI NFT can later be minted onto the
// record.  Plagiarism claims reference an original and a plagiarized
// hash and pay a bounty in RESEARCH tokens when rewarded.
package research

import (
	"github.com/educhain-vn/eduledgerd/ledger"
	"github.com/educhain-vn/eduledgerd/storage"
)

// HashRecord - one registered research fingerprint
type HashRecord struct {
	Hash      string   `json:"hash"`
	Owner     string   `json:"owner"`
	Timestamp uint64   `json:"timestamp"`
	CID       string   `json:"cid,omitempty"`
	DOI       string   `json:"doi,omitempty"`
	Authors   []string `json:"authors,omitempty"`
	NFTID     string   `json:"nft_id,omitempty"`
}

// BountyClaim - one plagiarism claim
type BountyClaim struct {
	OriginalHash    string `json:"original_hash"`
	PlagiarizedHash string `json:"plagiarized_hash"`
	Claimer         string `json:"claimer"`
	Rewarded        bool   `json:"rewarded"`
}

// Ledger - research transitions and queries
type Ledger interface {
	RegisterHash(ctx ledger.Context, hash string, cid string, doi string, authors []string) (*ledger.Result, error)
	MintDOINFT(ctx ledger.Context, hash string, doi string) (*ledger.Result, error)
	SubmitPlagiarism(ctx ledger.Context, originalHash string, plagiarizedHash string) (*ledger.Result, error)
	RewardBounty(ctx ledger.Context, claimID string) (*ledger.Result, error)

	GetHashRecord(hash string) (*HashRecord, error)
	GetBountyClaim(claimID string) (*BountyClaim, error)
}

type researchData struct {
	poolHashes   storage.Handle
	poolBounties storage.Handle
}

var data researchData

// Initialise - attach the research pools
func Initialise(hashes, bounties storage.Handle) {
	data = researchData{
		poolHashes:   hashes,
		poolBounties: bounties,
	}
}

// Get - return the Ledger interface
func Get() Ledger {
	return &data
}
