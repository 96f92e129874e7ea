// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2021 EduChain Vietnam
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package admission

import (
	"encoding/json"

	"github.com/bitmark-inc/logger"

	"github.com/educhain-vn/eduledgerd/audit"
	"github.com/educhain-vn/eduledgerd/fault"
	"github.com/educhain-vn/eduledgerd/ledger"
)

// MintSeat - create an unassigned seat
func (d *admissionData) MintSeat(ctx ledger.Context, seatID string) (*ledger.Result, error) {
	if d.poolSeats.Has([]byte(seatID)) {
		return nil, fault.SeatAlreadyExists
	}

	seat := Seat{
		ID:      seatID,
		Retired: false,
	}
	d.storeSeat(&seat)

	audit.Get().Record(ctx, "mint_seat_nft", seatID)

	return ledger.NewResult("mint_seat_nft").Add("seat_id", seatID), nil
}

// BurnSeat - permanently retire a seat from allocation
func (d *admissionData) BurnSeat(ctx ledger.Context, seatID string) (*ledger.Result, error) {
	seat, err := d.GetSeat(seatID)
	if nil != err {
		return nil, err
	}
	if seat.Retired {
		return nil, fault.SeatAlreadyRetired
	}

	seat.Retired = true
	d.storeSeat(seat)

	audit.Get().Record(ctx, "burn_seat_nft", seatID)

	return ledger.NewResult("burn_seat_nft").Add("seat_id", seatID), nil
}

// PushScore - upsert the score for one candidate, latest write wins
func (d *admissionData) PushScore(ctx ledger.Context, subjectID string, score uint32) (*ledger.Result, error) {
	record := Score{
		SubjectID: subjectID,
		Score:     score,
	}
	buffer, err := json.Marshal(&record)
	logger.PanicIfError("admission.PushScore", err)
	d.poolScores.Put([]byte(subjectID), buffer)

	audit.Get().Record(ctx, "push_score", subjectID)

	return ledger.NewResult("push_score").Add("candidate_hash", subjectID), nil
}

// GetSeat - point lookup by seat id
func (d *admissionData) GetSeat(seatID string) (*Seat, error) {
	buffer := d.poolSeats.Get([]byte(seatID))
	if nil == buffer {
		return nil, fault.SeatNotFound
	}
	var seat Seat
	err := json.Unmarshal(buffer, &seat)
	if nil != err {
		return nil, err
	}
	return &seat, nil
}

// GetScore - point lookup by candidate
func (d *admissionData) GetScore(subjectID string) (*Score, error) {
	buffer := d.poolScores.Get([]byte(subjectID))
	if nil == buffer {
		return nil, fault.ScoreNotFound
	}
	var score Score
	err := json.Unmarshal(buffer, &score)
	if nil != err {
		return nil, err
	}
	return &score, nil
}

// GetResult - latest matching outcome for one candidate
func (d *admissionData) GetResult(subjectID string) (*Result, error) {
	buffer := d.poolResults.Get([]byte(subjectID))
	if nil == buffer {
		return nil, fault.ResultNotFound
	}
	var result Result
	err := json.Unmarshal(buffer, &result)
	if nil != err {
		return nil, err
	}
	return &result, nil
}

// ListResults - all results of the latest runs, ascending candidate order
func (d *admissionData) ListResults() ([]Result, error) {
	results := []Result{}
	err := d.poolResults.Map(func(key []byte, value []byte) error {
		var result Result
		err := json.Unmarshal(value, &result)
		if nil != err {
			return err
		}
		results = append(results, result)
		return nil
	})
	if nil != err {
		return nil, err
	}
	return results, nil
}

func (d *admissionData) storeSeat(seat *Seat) {
	buffer, err := json.Marshal(seat)
	logger.PanicIfError("admission.storeSeat", err)
	d.poolSeats.Put([]byte(seat.ID), buffer)
}
