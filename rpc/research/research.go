// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2021 EduChain Vietnam
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package research

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/educhain-vn/eduledgerd/ledger"
	"github.com/educhain-vn/eduledgerd/research"
	"github.com/educhain-vn/eduledgerd/rpc/ratelimit"
	"github.com/educhain-vn/eduledgerd/rpc/request"
)

// Research
// --------

// Research - type for the RPC
type Research struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Ledger  research.Ledger
}

const (
	rateLimitResearch = 200
	rateBurstResearch = 100
)

func New(log *logger.L, l research.Ledger) *Research {
	return &Research{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitResearch, rateBurstResearch),
		Ledger:  l,
	}
}

// Hash registry
// -------------

// RegisterArguments - arguments for registering a work hash
type RegisterArguments struct {
	request.Access
	Hash    string   `json:"hash"`
	CID     string   `json:"cid"`
	DOI     string   `json:"doi"`
	Authors []string `json:"authors"`
}

// Register - record a research work hash for the caller
func (r *Research) Register(arguments *RegisterArguments, reply *request.Reply) error {

	if err := ratelimit.Limit(r.Limiter); nil != err {
		return err
	}

	r.Log.Infof("Research.Register: %+v", arguments)

	result, err := request.Transact(func() (*ledger.Result, error) {
		return r.Ledger.RegisterHash(arguments.Context(), arguments.Hash, arguments.CID, arguments.DOI, arguments.Authors)
	})
	if nil != err {
		return err
	}

	reply.Set(result)
	return nil
}

// MintDOIArguments - arguments for minting the DOI token of a work
type MintDOIArguments struct {
	request.Access
	Hash string `json:"hash"`
	DOI  string `json:"doi"`
}

// MintDOI - attach a DOI token to a registered work, owner only
func (r *Research) MintDOI(arguments *MintDOIArguments, reply *request.Reply) error {

	if err := ratelimit.Limit(r.Limiter); nil != err {
		return err
	}

	r.Log.Infof("Research.MintDOI: %+v", arguments)

	result, err := request.Transact(func() (*ledger.Result, error) {
		return r.Ledger.MintDOINFT(arguments.Context(), arguments.Hash, arguments.DOI)
	})
	if nil != err {
		return err
	}

	reply.Set(result)
	return nil
}

// Plagiarism bounties
// -------------------

// ClaimArguments - arguments for reporting a plagiarized work
type ClaimArguments struct {
	request.Access
	OriginalHash    string `json:"original_hash"`
	PlagiarizedHash string `json:"plagiarized_hash"`
}

// SubmitClaim - file a plagiarism claim
func (r *Research) SubmitClaim(arguments *ClaimArguments, reply *request.Reply) error {

	if err := ratelimit.Limit(r.Limiter); nil != err {
		return err
	}

	r.Log.Infof("Research.SubmitClaim: %+v", arguments)

	result, err := request.Transact(func() (*ledger.Result, error) {
		return r.Ledger.SubmitPlagiarism(arguments.Context(), arguments.OriginalHash, arguments.PlagiarizedHash)
	})
	if nil != err {
		return err
	}

	reply.Set(result)
	return nil
}

// RewardArguments - select one claim by identifier
type RewardArguments struct {
	request.Access
	ClaimId string `json:"claim_id"`
}

// Reward - pay the bounty for an open claim, once
func (r *Research) Reward(arguments *RewardArguments, reply *request.Reply) error {

	if err := ratelimit.Limit(r.Limiter); nil != err {
		return err
	}

	r.Log.Infof("Research.Reward: %+v", arguments)

	result, err := request.Transact(func() (*ledger.Result, error) {
		return r.Ledger.RewardBounty(arguments.Context(), arguments.ClaimId)
	})
	if nil != err {
		return err
	}

	reply.Set(result)
	return nil
}

// Queries
// -------

// GetArguments - select one work by hash
type GetArguments struct {
	Hash string `json:"hash"`
}

// Get - read one hash record
func (r *Research) Get(arguments *GetArguments, reply *research.HashRecord) error {

	if err := ratelimit.Limit(r.Limiter); nil != err {
		return err
	}

	return request.Query(func() error {
		record, err := r.Ledger.GetHashRecord(arguments.Hash)
		if nil != err {
			return err
		}

		*reply = *record
		return nil
	})
}

// GetClaimArguments - select one claim by identifier
type GetClaimArguments struct {
	ClaimId string `json:"claim_id"`
}

// GetClaim - read one bounty claim
func (r *Research) GetClaim(arguments *GetClaimArguments, reply *research.BountyClaim) error {

	if err := ratelimit.Limit(r.Limiter); nil != err {
		return err
	}

	return request.Query(func() error {
		claim, err := r.Ledger.GetBountyClaim(arguments.ClaimId)
		if nil != err {
			return err
		}

		*reply = *claim
		return nil
	})
}
