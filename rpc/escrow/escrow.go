// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2021 EduChain Vietnam
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package escrow

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/educhain-vn/eduledgerd/currency"
	"github.com/educhain-vn/eduledgerd/escrow"
	"github.com/educhain-vn/eduledgerd/ledger"
	"github.com/educhain-vn/eduledgerd/rpc/ratelimit"
	"github.com/educhain-vn/eduledgerd/rpc/request"
)

// Escrow
// ------

// Escrow - type for the RPC
type Escrow struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Ledger  escrow.Ledger
}

const (
	rateLimitEscrow = 200
	rateBurstEscrow = 100
)

func New(log *logger.L, l escrow.Ledger) *Escrow {
	return &Escrow{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitEscrow, rateBurstEscrow),
		Ledger:  l,
	}
}

// CreateArguments - arguments for opening a tuition escrow
//
// the attached funds must cover the amount in the named denomination
type CreateArguments struct {
	request.Access
	School string            `json:"school"`
	Amount uint64            `json:"amount"`
	Denom  currency.Currency `json:"denom"`
}

// Create - open an escrow from the caller towards a school
func (e *Escrow) Create(arguments *CreateArguments, reply *request.Reply) error {

	if err := ratelimit.Limit(e.Limiter); nil != err {
		return err
	}

	e.Log.Infof("Escrow.Create: %+v", arguments)

	result, err := request.Transact(func() (*ledger.Result, error) {
		return e.Ledger.CreateEscrow(arguments.Context(), arguments.School, arguments.Amount, arguments.Denom)
	})
	if nil != err {
		return err
	}

	reply.Set(result)
	return nil
}

// EscrowArguments - select one escrow
type EscrowArguments struct {
	request.Access
	EscrowId string `json:"escrow_id"`
}

// Attest - record proof of enrollment, school only
func (e *Escrow) Attest(arguments *EscrowArguments, reply *request.Reply) error {

	if err := ratelimit.Limit(e.Limiter); nil != err {
		return err
	}

	e.Log.Infof("Escrow.Attest: %+v", arguments)

	result, err := request.Transact(func() (*ledger.Result, error) {
		return e.Ledger.SetProofOfEnrollment(arguments.Context(), arguments.EscrowId)
	})
	if nil != err {
		return err
	}

	reply.Set(result)
	return nil
}

// Release - pay the escrowed amount to the school, once
func (e *Escrow) Release(arguments *EscrowArguments, reply *request.Reply) error {

	if err := ratelimit.Limit(e.Limiter); nil != err {
		return err
	}

	e.Log.Infof("Escrow.Release: %+v", arguments)

	result, err := request.Transact(func() (*ledger.Result, error) {
		return e.Ledger.Release(arguments.Context(), arguments.EscrowId)
	})
	if nil != err {
		return err
	}

	reply.Set(result)
	return nil
}

// GetArguments - select one escrow by identifier
type GetArguments struct {
	EscrowId string `json:"escrow_id"`
}

// Get - read one escrow
func (e *Escrow) Get(arguments *GetArguments, reply *escrow.Escrow) error {

	if err := ratelimit.Limit(e.Limiter); nil != err {
		return err
	}

	return request.Query(func() error {
		record, err := e.Ledger.GetEscrow(arguments.EscrowId)
		if nil != err {
			return err
		}

		*reply = *record
		return nil
	})
}
