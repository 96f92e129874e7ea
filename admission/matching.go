// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2021 EduChain Vietnam
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package admission

import (
	"encoding/json"
	"sort"
	"strconv"

	"github.com/bitmark-inc/logger"

	"github.com/educhain-vn/eduledgerd/audit"
	"github.com/educhain-vn/eduledgerd/ledger"
)

// RunMatching - greedy single-pass seat assignment
//
// Candidates are ranked by score descending with ties broken by
// ascending candidate id, so the ranking is a total order independent
// of insertion history.  Available seats (not retired, no holder) are
// taken in ascending key scan order and are NOT re-sorted: the i-th
// ranked candidate receives the i-th scanned seat.  Candidates beyond
// the seat count get a not-admitted result.  Every candidate's result
// is rewritten on each run; re-running with unchanged input is
// idempotent because winners' seats now have holders and drop out of
// the available list while their results are recomputed identically.
func (d *admissionData) RunMatching(ctx ledger.Context) (*ledger.Result, error) {
	scores := []Score{}
	err := d.poolScores.Map(func(key []byte, value []byte) error {
		var score Score
		err := json.Unmarshal(value, &score)
		if nil != err {
			return err
		}
		scores = append(scores, score)
		return nil
	})
	if nil != err {
		return nil, err
	}

	seats := []Seat{}
	err = d.poolSeats.Map(func(key []byte, value []byte) error {
		var seat Seat
		err := json.Unmarshal(value, &seat)
		if nil != err {
			return err
		}
		if !seat.Retired && "" == seat.Holder {
			seats = append(seats, seat)
		}
		return nil
	})
	if nil != err {
		return nil, err
	}

	sort.Slice(scores, func(i, j int) bool {
		if scores[i].Score != scores[j].Score {
			return scores[i].Score > scores[j].Score
		}
		return scores[i].SubjectID < scores[j].SubjectID
	})

	for i, candidate := range scores {
		result := Result{
			SubjectID: candidate.SubjectID,
			Admitted:  false,
			Score:     candidate.Score,
		}
		if i < len(seats) {
			seat := seats[i]
			seat.Holder = candidate.SubjectID
			d.storeSeat(&seat)
			result.SeatID = seat.ID
			result.Admitted = true
		}

		buffer, err := json.Marshal(&result)
		logger.PanicIfError("admission.RunMatching", err)
		d.poolResults.Put([]byte(result.SubjectID), buffer)
	}

	audit.Get().Record(ctx, "run_matching", strconv.Itoa(len(scores)))

	return ledger.NewResult("run_matching").
		Add("assigned", strconv.Itoa(len(scores))), nil
}
