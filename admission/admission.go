// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2021 EduChain Vietnam
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package admission - seat allocation for candidate admission
//
// Seats are minted as NFT-like records, candidates push scores, and a
// matching run greedily assigns the highest scores to the available
// seats.  The run is deterministic so any node replaying the same
// transitions reaches the same assignments.
package admission

import (
	"github.com/educhain-vn/eduledgerd/ledger"
	"github.com/educhain-vn/eduledgerd/storage"
)

// Seat - one admission seat
//
// Holder is empty while the seat is unassigned; Retired is permanent
type Seat struct {
	ID      string `json:"id"`
	Holder  string `json:"owner,omitempty"`
	Retired bool   `json:"burned"`
}

// Score - latest pushed score for one candidate, no history kept
type Score struct {
	SubjectID string `json:"candidate_hash"`
	Score     uint32 `json:"score"`
}

// Result - outcome of the latest matching run for one candidate
type Result struct {
	SubjectID string `json:"candidate_hash"`
	SeatID    string `json:"seat_id,omitempty"`
	Admitted  bool   `json:"admitted"`
	Score     uint32 `json:"score"`
}

// Ledger - admission transitions and queries
type Ledger interface {
	MintSeat(ctx ledger.Context, seatID string) (*ledger.Result, error)
	BurnSeat(ctx ledger.Context, seatID string) (*ledger.Result, error)
	PushScore(ctx ledger.Context, subjectID string, score uint32) (*ledger.Result, error)
	RunMatching(ctx ledger.Context) (*ledger.Result, error)

	GetSeat(seatID string) (*Seat, error)
	GetScore(subjectID string) (*Score, error)
	GetResult(subjectID string) (*Result, error)
	ListResults() ([]Result, error)
}

type admissionData struct {
	poolSeats   storage.Handle
	poolScores  storage.Handle
	poolResults storage.Handle
}

var data admissionData

// Initialise - attach the admission pools
func Initialise(seats, scores, results storage.Handle) {
	data = admissionData{
		poolSeats:   seats,
		poolScores:  scores,
		poolResults: results,
	}
}

// Get - return the Ledger interface
func Get() Ledger {
	return &data
}
