// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2021 EduChain Vietnam
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package escrow - tuition payment escrow
//
// A payer locks funds towards a school; the school attests enrollment
// and either party then releases the funds to the school.  Release is
// one-shot.
package escrow

import (
	"encoding/json"
	"fmt"

	"github.com/bitmark-inc/logger"

	"github.com/educhain-vn/eduledgerd/audit"
	"github.com/educhain-vn/eduledgerd/currency"
	"github.com/educhain-vn/eduledgerd/fault"
	"github.com/educhain-vn/eduledgerd/ledger"
	"github.com/educhain-vn/eduledgerd/storage"
)

// Escrow - one tuition escrow
type Escrow struct {
	Payer             string            `json:"payer"`
	School            string            `json:"school"`
	Amount            uint64            `json:"amount"`
	Denom             currency.Currency `json:"denom"`
	Released          bool              `json:"released"`
	ProofOfEnrollment bool              `json:"proof_of_enrollment"`
}

// Ledger - escrow transitions and queries
type Ledger interface {
	CreateEscrow(ctx ledger.Context, school string, amount uint64, denom currency.Currency) (*ledger.Result, error)
	SetProofOfEnrollment(ctx ledger.Context, escrowID string) (*ledger.Result, error)
	Release(ctx ledger.Context, escrowID string) (*ledger.Result, error)

	GetEscrow(escrowID string) (*Escrow, error)
}

type escrowData struct {
	poolEscrows storage.Handle
}

var data escrowData

// Initialise - attach the escrow pool
func Initialise(escrows storage.Handle) {
	data = escrowData{
		poolEscrows: escrows,
	}
}

// Get - return the Ledger interface
func Get() Ledger {
	return &data
}

// CreateEscrow - lock attached funds towards a school
//
// the escrow id is payer-school-seconds, so the same pair in the same
// second collides; the attached funds must cover the amount
func (d *escrowData) CreateEscrow(ctx ledger.Context, school string, amount uint64, denom currency.Currency) (*ledger.Result, error) {
	escrowID := fmt.Sprintf("%s-%s-%d", ctx.Caller, school, ctx.Seconds())

	if d.poolEscrows.Has([]byte(escrowID)) {
		return nil, fault.EscrowAlreadyExists
	}
	if ctx.Sent(denom) < amount {
		return nil, fault.InsufficientFunds
	}

	escrow := Escrow{
		Payer:             ctx.Caller,
		School:            school,
		Amount:            amount,
		Denom:             denom,
		Released:          false,
		ProofOfEnrollment: false,
	}
	d.storeEscrow(escrowID, &escrow)

	audit.Get().Record(ctx, "create_escrow", escrowID)

	return ledger.NewResult("create_escrow").Add("escrow_id", escrowID), nil
}

// SetProofOfEnrollment - school attests the student enrolled
func (d *escrowData) SetProofOfEnrollment(ctx ledger.Context, escrowID string) (*ledger.Result, error) {
	escrow, err := d.GetEscrow(escrowID)
	if nil != err {
		return nil, err
	}
	if escrow.School != ctx.Caller {
		return nil, fault.NotEscrowSchool
	}

	escrow.ProofOfEnrollment = true
	d.storeEscrow(escrowID, escrow)

	audit.Get().Record(ctx, "set_proof_of_enrollment", escrowID)

	return ledger.NewResult("set_proof_of_enrollment").Add("escrow_id", escrowID), nil
}

// Release - pay the locked amount out to the school
//
// requires proof of enrollment; payer or school may trigger; the
// released flag guarantees the funds move at most once
func (d *escrowData) Release(ctx ledger.Context, escrowID string) (*ledger.Result, error) {
	escrow, err := d.GetEscrow(escrowID)
	if nil != err {
		return nil, err
	}
	if escrow.Released {
		return nil, fault.EscrowAlreadyReleased
	}
	if !escrow.ProofOfEnrollment {
		return nil, fault.ProofOfEnrollmentMissing
	}
	if escrow.Payer != ctx.Caller && escrow.School != ctx.Caller {
		return nil, fault.NotEscrowParticipant
	}

	escrow.Released = true
	d.storeEscrow(escrowID, escrow)

	audit.Get().Record(ctx, "release", escrowID)

	return ledger.NewResult("release").
		Add("escrow_id", escrowID).
		Send(escrow.School, escrow.Amount, escrow.Denom), nil
}

// GetEscrow - point lookup by escrow id
func (d *escrowData) GetEscrow(escrowID string) (*Escrow, error) {
	buffer := d.poolEscrows.Get([]byte(escrowID))
	if nil == buffer {
		return nil, fault.EscrowNotFound
	}
	var escrow Escrow
	err := json.Unmarshal(buffer, &escrow)
	if nil != err {
		return nil, err
	}
	return &escrow, nil
}

func (d *escrowData) storeEscrow(escrowID string, escrow *Escrow) {
	buffer, err := json.Marshal(escrow)
	logger.PanicIfError("escrow.store", err)
	d.poolEscrows.Put([]byte(escrowID), buffer)
}
