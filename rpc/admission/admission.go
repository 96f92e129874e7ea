// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2021 EduChain Vietnam
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package admission

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/educhain-vn/eduledgerd/admission"
	"github.com/educhain-vn/eduledgerd/ledger"
	"github.com/educhain-vn/eduledgerd/rpc/ratelimit"
	"github.com/educhain-vn/eduledgerd/rpc/request"
)

// Admission
// ---------

// Admission - type for the RPC
type Admission struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Ledger  admission.Ledger
}

const (
	rateLimitAdmission = 200
	rateBurstAdmission = 100
)

func New(log *logger.L, l admission.Ledger) *Admission {
	return &Admission{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitAdmission, rateBurstAdmission),
		Ledger:  l,
	}
}

// Seats
// -----

// SeatArguments - select one seat
type SeatArguments struct {
	request.Access
	SeatId string `json:"seat_id"`
}

// MintSeat - create one admission seat
func (a *Admission) MintSeat(arguments *SeatArguments, reply *request.Reply) error {

	if err := ratelimit.Limit(a.Limiter); nil != err {
		return err
	}

	a.Log.Infof("Admission.MintSeat: %+v", arguments)

	result, err := request.Transact(func() (*ledger.Result, error) {
		return a.Ledger.MintSeat(arguments.Context(), arguments.SeatId)
	})
	if nil != err {
		return err
	}

	reply.Set(result)
	return nil
}

// BurnSeat - retire a seat from further matching
func (a *Admission) BurnSeat(arguments *SeatArguments, reply *request.Reply) error {

	if err := ratelimit.Limit(a.Limiter); nil != err {
		return err
	}

	a.Log.Infof("Admission.BurnSeat: %+v", arguments)

	result, err := request.Transact(func() (*ledger.Result, error) {
		return a.Ledger.BurnSeat(arguments.Context(), arguments.SeatId)
	})
	if nil != err {
		return err
	}

	reply.Set(result)
	return nil
}

// Scores and matching
// -------------------

// ScoreArguments - one candidate score
type ScoreArguments struct {
	request.Access
	SubjectId string `json:"candidate_hash"`
	Score     uint32 `json:"score"`
}

// PushScore - upsert a candidate score
func (a *Admission) PushScore(arguments *ScoreArguments, reply *request.Reply) error {

	if err := ratelimit.Limit(a.Limiter); nil != err {
		return err
	}

	a.Log.Infof("Admission.PushScore: %+v", arguments)

	result, err := request.Transact(func() (*ledger.Result, error) {
		return a.Ledger.PushScore(arguments.Context(), arguments.SubjectId, arguments.Score)
	})
	if nil != err {
		return err
	}

	reply.Set(result)
	return nil
}

// MatchArguments - no parameters beyond the caller
type MatchArguments struct {
	request.Access
}

// RunMatching - assign available seats to candidates by score
func (a *Admission) RunMatching(arguments *MatchArguments, reply *request.Reply) error {

	if err := ratelimit.Limit(a.Limiter); nil != err {
		return err
	}

	a.Log.Infof("Admission.RunMatching: caller: %s", arguments.Caller)

	result, err := request.Transact(func() (*ledger.Result, error) {
		return a.Ledger.RunMatching(arguments.Context())
	})
	if nil != err {
		return err
	}

	reply.Set(result)
	return nil
}

// Queries
// -------

// GetSeatArguments - select one seat by identifier
type GetSeatArguments struct {
	SeatId string `json:"seat_id"`
}

// GetSeat - read one seat
func (a *Admission) GetSeat(arguments *GetSeatArguments, reply *admission.Seat) error {

	if err := ratelimit.Limit(a.Limiter); nil != err {
		return err
	}

	return request.Query(func() error {
		seat, err := a.Ledger.GetSeat(arguments.SeatId)
		if nil != err {
			return err
		}

		*reply = *seat
		return nil
	})
}

// SubjectArguments - select one candidate
type SubjectArguments struct {
	SubjectId string `json:"candidate_hash"`
}

// GetScore - read one candidate score
func (a *Admission) GetScore(arguments *SubjectArguments, reply *admission.Score) error {

	if err := ratelimit.Limit(a.Limiter); nil != err {
		return err
	}

	return request.Query(func() error {
		score, err := a.Ledger.GetScore(arguments.SubjectId)
		if nil != err {
			return err
		}

		*reply = *score
		return nil
	})
}

// GetResult - read one candidate's matching result
func (a *Admission) GetResult(arguments *SubjectArguments, reply *admission.Result) error {

	if err := ratelimit.Limit(a.Limiter); nil != err {
		return err
	}

	return request.Query(func() error {
		result, err := a.Ledger.GetResult(arguments.SubjectId)
		if nil != err {
			return err
		}

		*reply = *result
		return nil
	})
}

// ResultsArguments - no parameters
type ResultsArguments struct {
}

// ResultsReply - result of the full matching list query
type ResultsReply struct {
	Results []admission.Result `json:"results"`
}

// Results - list all matching results of the last run
func (a *Admission) Results(arguments *ResultsArguments, reply *ResultsReply) error {

	if err := ratelimit.Limit(a.Limiter); nil != err {
		return err
	}

	return request.Query(func() error {
		results, err := a.Ledger.ListResults()
		if nil != err {
			return err
		}

		reply.Results = results
		return nil
	})
}
