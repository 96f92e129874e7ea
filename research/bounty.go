// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2021 EduChain Vietnam
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package research

import (
	"encoding/json"
	"fmt"

	"github.com/bitmark-inc/logger"

	"github.com/educhain-vn/eduledgerd/audit"
	"github.com/educhain-vn/eduledgerd/currency"
	"github.com/educhain-vn/eduledgerd/fault"
	"github.com/educhain-vn/eduledgerd/ledger"
)

// BountyReward - RESEARCH tokens paid per rewarded claim
const BountyReward = 100

// SubmitPlagiarism - file a claim against a registered hash
//
// the claim id embeds the submission second, so one claimer can file
// the same pair again in a later block
func (d *researchData) SubmitPlagiarism(ctx ledger.Context, originalHash string, plagiarizedHash string) (*ledger.Result, error) {
	claimID := fmt.Sprintf("%s:%s:%d", originalHash, plagiarizedHash, ctx.Seconds())

	if d.poolBounties.Has([]byte(claimID)) {
		return nil, fault.BountyClaimAlreadyExists
	}

	claim := BountyClaim{
		OriginalHash:    originalHash,
		PlagiarizedHash: plagiarizedHash,
		Claimer:         ctx.Caller,
		Rewarded:        false,
	}
	d.storeClaim(claimID, &claim)

	audit.Get().Record(ctx, "submit_plagiarism", claimID)

	return ledger.NewResult("submit_plagiarism").Add("claim_id", claimID), nil
}

// RewardBounty - mark a claim rewarded and pay the claimer
//
// any caller may trigger the reward; the flag is monotonic so the
// bounty is paid at most once
func (d *researchData) RewardBounty(ctx ledger.Context, claimID string) (*ledger.Result, error) {
	claim, err := d.GetBountyClaim(claimID)
	if nil != err {
		return nil, err
	}
	if claim.Rewarded {
		return nil, fault.BountyAlreadyRewarded
	}

	claim.Rewarded = true
	d.storeClaim(claimID, claim)

	audit.Get().Record(ctx, "reward_bounty", claimID)

	return ledger.NewResult("reward_bounty").
		Add("claim_id", claimID).
		Send(claim.Claimer, BountyReward, currency.Research), nil
}

// GetBountyClaim - point lookup by claim id
func (d *researchData) GetBountyClaim(claimID string) (*BountyClaim, error) {
	buffer := d.poolBounties.Get([]byte(claimID))
	if nil == buffer {
		return nil, fault.BountyClaimNotFound
	}
	var claim BountyClaim
	err := json.Unmarshal(buffer, &claim)
	if nil != err {
		return nil, err
	}
	return &claim, nil
}

func (d *researchData) storeClaim(claimID string, claim *BountyClaim) {
	buffer, err := json.Marshal(claim)
	logger.PanicIfError("research.storeClaim", err)
	d.poolBounties.Put([]byte(claimID), buffer)
}
